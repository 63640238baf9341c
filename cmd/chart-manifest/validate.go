package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chart-manifest/internal/diagnostic"
	"chart-manifest/internal/schema"
	"chart-manifest/internal/validate"
)

func newValidateCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate manifests against the bundled schemas",
		Long: `Validates each manifest and prints a diagnostic for every invalid one.
The schema is chosen by --kind; "auto" treats documents with a top-level
"jim" key as enveloped and everything else as bare.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args, kind)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Schema kind: auto, bare, enveloped (default from config)")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, files []string, kindFlag string) error {
	kind, err := a.cfg.Kind()
	if err != nil {
		return err
	}

	if kindFlag != "" {
		if kind, err = schema.ParseKind(kindFlag); err != nil {
			return err
		}
	}

	v, err := validate.New(a.registry, validate.WithLogger(a.logger.Named("validate")))
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics

	for _, file := range files {
		data, err := readFile(cmd.Context(), file)
		if err != nil {
			diags.AddError(diagnostic.CodeUnreadable, err.Error(), file)
			continue
		}

		res, err := v.ValidateBytes(cmd.Context(), data, kind)
		if err != nil {
			diags.AddError(diagnostic.CodeMalformedJSON, err.Error(), file)
			continue
		}

		if !res.Valid {
			diags.AddError(diagnostic.CodeInvalidManifest, "\n"+res.Diagnostic, file)
			continue
		}

		a.logger.Debug("manifest valid", zap.String("file", file))
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", file)
	}

	if !diags.HasErrors() {
		return nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), diags.Error())

	return errInvalid
}
