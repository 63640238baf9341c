// Package config loads CLI settings from YAML.
package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"chart-manifest/internal/schema"
)

// Config holds CLI settings. Flags override it.
type Config struct {
	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level"`
	// Pretty indents JSON output.
	Pretty bool `yaml:"pretty"`
	// DefaultKind is used when validate gets no --kind.
	DefaultKind string `yaml:"default_kind"`
	// Schemas are schema files registered before the embedded ones. A file
	// reusing an embedded "$id" replaces that schema.
	Schemas []string `yaml:"schemas"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile reads and parses a config file from a path or URL.
func LoadFile(ctx context.Context, url string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", url, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and checks it.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.DefaultKind == "" {
		c.DefaultKind = schema.KindAuto.String()
	}
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	if _, err := c.Kind(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log_level: %w", err)
	}

	return lvl, nil
}

// Kind parses DefaultKind.
func (c *Config) Kind() (schema.Kind, error) {
	k, err := schema.ParseKind(c.DefaultKind)
	if err != nil {
		return schema.KindAuto, fmt.Errorf("invalid default_kind: %w", err)
	}

	return k, nil
}
