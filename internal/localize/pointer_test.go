package localize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"root", "#", "$"},
		{"simple", "#/datasets", "$.datasets"},
		{"index", "#/datasets/0/series/12", "$.datasets[0].series[12]"},
		{"defs", "#/$defs/series/required", "$['$defs'].series.required"},
		{"non identifier", "#/properties/my-key", "$.properties['my-key']"},
		{"digit in name", "#/x1/2b", "$.x1['2b']"},
		{"tilde escapes", "#/a~1b/c~0d", "$['a/b']['c~d']"},
		{"percent encoded", "#/a%20b", "$['a b']"},
		{"quote", "#/it's", `$['it\'s']`},
		{"empty segment", "#/", "$['']"},
		{"backslash", "#/a%5Cb", `$['a\\b']`},
		{"encoded percent", "#/growth%20%25", "$['growth %']"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToJSONPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToJSONPath_Errors(t *testing.T) {
	for _, input := range []string{"", "/datasets", "#datasets", "#/a~2", "#/%zz"} {
		t.Run(input, func(t *testing.T) {
			_, err := ToJSONPath(input)
			assert.Error(t, err)
		})
	}
}
