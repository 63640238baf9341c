package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"chart-manifest/internal/schema"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
log_level: debug
pretty: true
default_kind: enveloped
schemas:
  - schemas/custom.json
`))
	require.NoError(t, err)

	assert.True(t, c.Pretty)
	assert.Equal(t, []string{"schemas/custom.json"}, c.Schemas)

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	kind, err := c.Kind()
	require.NoError(t, err)
	assert.Equal(t, schema.KindEnveloped, kind)
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte(`pretty: false`))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "auto", c.DefaultKind)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"bad yaml", "log_level: [", "failed to parse config YAML"},
		{"bad level", "log_level: loud", "invalid log_level"},
		{"bad kind", "default_kind: root", "invalid default_kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart-manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o600))

	c, err := LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "warn", c.LogLevel)

	_, err = LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
