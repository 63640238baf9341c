package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chart-manifest/internal/manifest"
	"chart-manifest/internal/merge"
)

func newMergeCmd(a *app) *cobra.Command {
	var (
		data   string
		output string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "merge FILE",
		Short: "Merge an external data table into a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			ds, err := m.Primary()
			if err != nil {
				return err
			}

			if data == "" && ds.Data.IsInline() {
				return errors.New("manifest data is inline; pass --data to merge a table")
			}

			external, err := loadExternal(cmd.Context(), args[0], data, ds)
			if err != nil {
				return err
			}

			merged, err := merge.Merge(m, external)
			if err != nil {
				return err
			}

			a.logger.Debug("merged data table",
				zap.String("file", args[0]),
				zap.Int("series", len(external)))

			return a.emit(cmd, merged, output, pretty)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "External data table (default: the manifest's data reference)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
