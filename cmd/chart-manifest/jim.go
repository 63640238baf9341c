package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chart-manifest/internal/jim"
	"chart-manifest/internal/manifest"
	"chart-manifest/internal/merge"
)

type jimOptions struct {
	data     string
	envelope bool
	output   string
	pretty   bool
}

func newJimCmd(a *app) *cobra.Command {
	var opts jimOptions

	cmd := &cobra.Command{
		Use:   "jim FILE",
		Short: "Generate the interaction map of a manifest",
		Long: `Generates the interaction map (JIM) for the first dataset of a manifest.
Records come from the manifest when inline, otherwise from --data or the
dataset's external data reference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runJim(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.data, "data", "", "External data table (json, yaml, csv, xlsx)")
	cmd.Flags().BoolVar(&opts.envelope, "envelope", false, "Emit the manifest with the map under \"jim\"")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func (a *app) runJim(cmd *cobra.Command, file string, opts jimOptions) error {
	m, err := manifest.LoadFile(cmd.Context(), file)
	if err != nil {
		return err
	}

	ds, err := m.Primary()
	if err != nil {
		return err
	}

	if opts.data != "" && ds.Data.IsInline() {
		a.logger.Warn("manifest data is inline; ignoring data table", zap.String("data", opts.data))
	}

	var external manifest.ExternalData
	if !ds.Data.IsInline() {
		if external, err = loadExternal(cmd.Context(), file, opts.data, ds); err != nil {
			return err
		}
	}

	j, err := jim.Generate(m, external)
	if err != nil {
		return err
	}

	a.logger.Debug("generated interaction map",
		zap.String("file", file),
		zap.Int("selectors", j.Selectors.Len()))

	for _, c := range j.Selectors.Collisions() {
		a.logger.Warn("datapoints share a DOM selector",
			zap.String("dom", c.DOM),
			zap.Strings("paths", c.Paths))
	}

	if !opts.envelope {
		return a.emit(cmd, j, opts.output, opts.pretty)
	}

	if !ds.Data.IsInline() {
		// The envelope must carry the records the map points at.
		if m, err = merge.Merge(m, external); err != nil {
			return err
		}
	}

	return a.emit(cmd, jim.NewEnvelope(m, j), opts.output, opts.pretty)
}
