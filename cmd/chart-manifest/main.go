// Package main provides the CLI entrypoint for chart-manifest.
//
// chart-manifest works with declarative chart manifests:
//   - validates them against the bundled JSON schemas
//   - generates interaction maps pairing datapoints with DOM selectors
//   - merges external data tables into manifests
//   - bundles multi-file schemas into one document
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chart-manifest/internal/config"
	"chart-manifest/internal/manifest"
	"chart-manifest/internal/schema"
)

// errInvalid is returned after diagnostics were already printed.
var errInvalid = errors.New("invalid manifest")

type app struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	logger   *zap.Logger
	registry *schema.Registry
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}

		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "chart-manifest",
		Short:             "Validate chart manifests and generate interaction maps",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newValidateCmd(a),
		newJimCmd(a),
		newMergeCmd(a),
		newBundleCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a.cfg = config.Default()

	if a.configPath != "" {
		cfg, err := config.LoadFile(ctx, a.configPath)
		if err != nil {
			return err
		}

		a.cfg = cfg
	}

	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}

	lvl, err := a.cfg.Level()
	if err != nil {
		return err
	}

	logger, err := newLogger(lvl)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	a.logger = logger
	a.registry = schema.NewRegistry(schema.WithLogger(logger.Named("schema")))

	for _, url := range a.cfg.Schemas {
		if err := registerSchemaFile(cmd, a.registry, url); err != nil {
			return err
		}
	}

	return nil
}

func newLogger(lvl zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

func registerSchemaFile(cmd *cobra.Command, reg *schema.Registry, url string) error {
	data, err := afs.New().DownloadWithURL(cmd.Context(), url)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", url, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse schema %s: %w", url, err)
	}

	if _, err := reg.Register(doc); err != nil {
		return fmt.Errorf("failed to register schema %s: %w", url, err)
	}

	return nil
}

// emit writes v as JSON to out, or to the file at path when it is set.
func (a *app) emit(cmd *cobra.Command, v any, path string, pretty bool) error {
	pretty = pretty || a.cfg.Pretty

	if path != "" {
		if err := manifest.WriteFile(cmd.Context(), v, path, pretty); err != nil {
			return err
		}

		a.logger.Info("wrote output", zap.String("path", path))

		return nil
	}

	data, err := manifest.Marshal(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	return writeLine(cmd.OutOrStdout(), data)
}

func writeLine(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}
