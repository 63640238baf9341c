package schema

import (
	"embed"
	"fmt"
)

// Ids of the embedded schemas.
const (
	BareSchemaID      = "https://chart-manifest.dev/schemas/manifest.schema.json"
	EnvelopedSchemaID = "https://chart-manifest.dev/schemas/jim_manifest.schema.json"
)

//go:embed schemas/*.json
var embeddedFS embed.FS

var embeddedRoots = []struct {
	id   string
	path string
}{
	{BareSchemaID, "schemas/manifest.schema.json"},
	{EnvelopedSchemaID, "schemas/jim_manifest.schema.json"},
}

// EmbeddedFS exposes the unbundled schema sources.
func EmbeddedFS() embed.FS {
	return embeddedFS
}

// RegisterEmbedded bundles the bare and enveloped manifest schemas and
// registers them on e. Calling it again is a no-op.
func RegisterEmbedded(e Engine) error {
	for _, root := range embeddedRoots {
		if e.Has(root.id) {
			continue
		}

		doc, err := Bundle(embeddedFS, root.path)
		if err != nil {
			return fmt.Errorf("bundling %s: %w", root.path, err)
		}

		if _, err := e.Register(doc); err != nil {
			return fmt.Errorf("registering %s: %w", root.path, err)
		}
	}

	return nil
}
