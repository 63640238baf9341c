package schema

import "fmt"

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind selects which registered schema a document is validated against.
type Kind int

const (
	// KindAuto infers the kind from the document's shape.
	KindAuto Kind = iota // auto
	// KindBare is a plain manifest.
	KindBare // bare
	// KindEnveloped is a manifest carrying its interaction map under EnvelopeKey.
	KindEnveloped // enveloped
)

// EnvelopeKey is the top-level key marking an enveloped manifest.
const EnvelopeKey = "jim"

// ParseKind parses the String form of a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", KindAuto.String():
		return KindAuto, nil
	case KindBare.String():
		return KindBare, nil
	case KindEnveloped.String():
		return KindEnveloped, nil
	default:
		return KindAuto, fmt.Errorf("invalid kind %q (must be auto, bare, or enveloped)", s)
	}
}

// Sniff infers the kind of a decoded JSON document.
func Sniff(instance any) Kind {
	if obj, ok := instance.(map[string]any); ok {
		if _, ok := obj[EnvelopeKey]; ok {
			return KindEnveloped
		}
	}

	return KindBare
}

// SchemaID returns the id of the embedded schema for k. KindAuto has none.
func (k Kind) SchemaID() string {
	switch k {
	case KindBare:
		return BareSchemaID
	case KindEnveloped:
		return EnvelopedSchemaID
	default:
		return ""
	}
}
