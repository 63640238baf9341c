package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
)

const filePerm = 0o644

// LoadFile downloads and parses a manifest from a file path or URL.
func LoadFile(ctx context.Context, url string) (*Manifest, error) {
	data, err := afs.New().DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", url, err)
	}

	return Parse(data)
}

// Parse parses JSON data into a Manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest JSON: %w", err)
	}

	return &m, nil
}

// Marshal serializes a document as JSON, indented when pretty is set.
func Marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}

	return json.Marshal(v)
}

// WriteFile serializes v and uploads it to the given path or URL.
func WriteFile(ctx context.Context, v any, url string, pretty bool) error {
	data, err := Marshal(v, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := afs.New().Upload(ctx, url, filePerm, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", url, err)
	}

	return nil
}
