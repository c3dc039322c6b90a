// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/selcolors/selcolors/internal/config"
	"github.com/selcolors/selcolors/internal/issue"

	"github.com/spf13/cobra"
)

func newConfigCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage selcolors configuration",
		Long: `Manage the selcolors configuration file.

The configuration is a CUE file read from $XDG_CONFIG_HOME/selcolors/config.cue,
then ./config.cue. --config selects a file explicitly.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return app.report(runConfigShow(app))
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return app.report(runConfigPath(app))
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a default configuration file",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return app.report(runConfigInit(app))
			},
		},
		&cobra.Command{
			Use:   "dump",
			Short: "Print the effective configuration as CUE",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				if err := configLoadError(app); err != nil {
					return app.report(err)
				}
				fmt.Fprint(app.stdout, config.GenerateCUE(app.cfg))
				return nil
			},
		},
	)

	return cmd
}

func runConfigShow(app *App) error {
	if err := configLoadError(app); err != nil {
		return err
	}

	cfg := app.cfg
	source := app.cfgPath
	if source == "" {
		source = "(defaults)"
	}

	out := app.stdout
	fmt.Fprintln(out, TitleStyle.Render("Configuration"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", KeyStyle.Render("source:"), source)
	fmt.Fprintln(out)
	fmt.Fprintln(out, SubtitleStyle.Render("ui"))
	fmt.Fprintf(out, "  %s %s\n", KeyStyle.Render("color_scheme:"), cfg.UI.ColorScheme)
	fmt.Fprintf(out, "  %s %t\n", KeyStyle.Render("verbose:"), cfg.UI.Verbose)
	fmt.Fprintf(out, "  %s %t\n", KeyStyle.Render("interactive:"), cfg.UI.Interactive)
	fmt.Fprintln(out, SubtitleStyle.Render("log"))
	fmt.Fprintf(out, "  %s %s\n", KeyStyle.Render("level:"), cfg.Log.Level)
	fmt.Fprintln(out, SubtitleStyle.Render("watch"))
	fmt.Fprintf(out, "  %s %s\n", KeyStyle.Render("debounce:"), cfg.Watch.Debounce)
	fmt.Fprintf(out, "  %s %v\n", KeyStyle.Render("ignore:"), cfg.Watch.Ignore)
	fmt.Fprintln(out, SubtitleStyle.Render("export"))
	fmt.Fprintf(out, "  %s %s\n", KeyStyle.Render("format:"), cfg.Export.Format)
	fmt.Fprintln(out, SubtitleStyle.Render("preview"))
	fmt.Fprintf(out, "  %s %d\n", KeyStyle.Render("gradient_steps:"), cfg.Preview.GradientSteps)
	return nil
}

func runConfigPath(app *App) error {
	if app.cfgPath != "" {
		fmt.Fprintln(app.stdout, app.cfgPath)
		return nil
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return configError(err)
	}
	fmt.Fprintln(app.stdout, filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func runConfigInit(app *App) error {
	path, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return configError(err)
	}
	if !created {
		fmt.Fprintf(app.stdout, "%s %s\n", WarningStyle.Render("Configuration already exists:"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created"), path)
	return nil
}

// configLoadError reports a configuration that failed to load. Other
// commands fall back to defaults; the config commands surface the failure.
func configLoadError(app *App) error {
	if app.cfgErr == nil {
		return nil
	}
	return configError(app.cfgErr)
}

func configError(err error) error {
	return newServiceError(err, issue.ConfigLoadFailedId, "")
}
