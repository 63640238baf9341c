package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"chart-manifest/internal/schema"
)

func newBundleCmd(a *app) *cobra.Command {
	var (
		output string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "bundle SCHEMA",
		Short: "Inline the relative $refs of a schema into one document",
		Long: `Resolves every "$ref" starting with "." against the schema's directory,
merging each referenced file's "$defs" into the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, name := filepath.Split(args[0])
			if dir == "" {
				dir = "."
			}

			doc, err := schema.Bundle(os.DirFS(dir), name)
			if err != nil {
				return err
			}

			return a.emit(cmd, doc, output, pretty)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
