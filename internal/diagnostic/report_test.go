package diagnostic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_String(t *testing.T) {
	r := Report{
		Keyword:      "required",
		Schema:       []any{"title", "type"},
		SchemaPath:   "$.properties.datasets.items.required",
		Missing:      []string{"title", "type"},
		Instance:     map[string]any{"series": []any{}},
		InstancePath: "$.datasets[0]",
	}

	lines := strings.Split(r.String(), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Error Keyword: required", lines[0])
	assert.Equal(t, `Schema: ["title","type"]`, lines[1])
	assert.Equal(t, "Schema Path: $.properties.datasets.items.required", lines[2])
	assert.Equal(t, "Missing required properties: title, type", lines[3])
	assert.Equal(t, "Error Instance: {", lines[4])
	assert.Equal(t, `  "series": []`, lines[5])
	assert.Equal(t, "}", lines[6])
	assert.Equal(t, "Error Path: $.datasets[0]", lines[7])
}

func TestReport_StringWithoutMissing(t *testing.T) {
	r := Report{Keyword: "type", Schema: map[string]any{"type": "string"}, SchemaPath: "$", InstancePath: "$.x", Instance: 3}

	s := r.String()
	assert.NotContains(t, s, "Missing")
	assert.Contains(t, s, "Error Instance: 3\n")
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddWarning("w", "careful", "")
	assert.False(t, d.HasErrors())

	var other Diagnostics
	other.AddError(CodeMalformedJSON, "bad", "a.json")
	other.AddError(CodeInvalidManifest, "worse", "b.json")
	d.Merge(other)

	require.True(t, d.HasErrors())
	assert.Equal(t, "a.json: [malformed-json] bad\nb.json: [invalid-manifest] worse", d.Error().Error())
	assert.Equal(t, "warning", d.Warnings[0].Severity.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
