// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/selcolors/selcolors/internal/config"
	"github.com/selcolors/selcolors/internal/export"
	"github.com/selcolors/selcolors/internal/issue"
	"github.com/selcolors/selcolors/pkg/catalog"

	"github.com/spf13/cobra"
)

type exportFlags struct {
	format string
	output string
}

func newExportCommand(app *App) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export <snapshot>",
		Short: "Write the catalog as JSON, YAML, TOML or CUE",
		Long: `Write the catalog of the current selection in a machine-readable format.

The format defaults to export.format from the configuration. Without
--output the report is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.report(runExport(app, flags, args[0]))
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: json, yaml, toml or cue")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}

func runExport(app *App, flags *exportFlags, path string) error {
	format := app.cfg.Export.Format
	if flags.format != "" {
		format = config.ExportFormat(flags.format)
	}
	if valid, errs := format.IsValid(); !valid {
		return exportError(path, errs[0])
	}

	host, err := openHost(path)
	if err != nil {
		return err
	}

	report := export.NewReport(path, catalog.NewSession(host).Recollect())

	if flags.output == "" {
		if err := export.Write(app.stdout, report, format); err != nil {
			return exportError(path, err)
		}
		return nil
	}

	data, err := export.Encode(report, format)
	if err != nil {
		return exportError(path, err)
	}
	if err := os.WriteFile(flags.output, data, 0o644); err != nil {
		return exportError(flags.output, err)
	}
	fmt.Fprintf(app.stdout, "Wrote %s report to %s\n", format, flags.output)
	return nil
}

func exportError(resource string, err error) error {
	return newServiceError(issue.NewErrorContext().
		WithOperation("export catalog").
		WithResource(resource).
		WithSuggestion("Use one of: json, yaml, toml, cue").
		Wrap(err).
		BuildError(), issue.ExportFailedId, "")
}
