package diagnostic

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Report describes the most specific failure of a validation run.
type Report struct {
	// Keyword is the failing schema keyword.
	Keyword string
	// Schema is the subschema holding the keyword.
	Schema any
	// SchemaPath addresses Schema in the schema document.
	SchemaPath string
	// Missing lists absent properties for a "required" failure.
	Missing []string
	// Instance is the offending value.
	Instance any
	// InstancePath addresses Instance in the validated document.
	InstancePath string
}

// String renders the report. Every field has its own labelled line; the
// instance is indented JSON.
func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Error Keyword: %s\n", r.Keyword)
	fmt.Fprintf(&b, "Schema: %s\n", encode(r.Schema, false))
	fmt.Fprintf(&b, "Schema Path: %s\n", r.SchemaPath)

	if len(r.Missing) > 0 {
		fmt.Fprintf(&b, "Missing required properties: %s\n", strings.Join(r.Missing, ", "))
	}

	fmt.Fprintf(&b, "Error Instance: %s\n", encode(r.Instance, true))
	fmt.Fprintf(&b, "Error Path: %s", r.InstancePath)

	return b.String()
}

func encode(v any, indent bool) string {
	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(data)
}
