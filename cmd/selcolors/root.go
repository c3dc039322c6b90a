// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the command tree around app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "selcolors",
		Short: "Collect and select the colors used by a layer selection",
		Long: TitleStyle.Render("selcolors") + SubtitleStyle.Render(" - collect and select the colors of a layer selection") + `

selcolors reads a document snapshot (CUE or JSON) holding a layer tree,
the document swatches and the ids of the selected layers. It lists every
distinct solid color and gradient used by the selection, with the layers
that use each one, and can select the layers behind any entry.

` + SubtitleStyle.Render("Examples:") + `
  selcolors collect board.cue         List the colors of the selection
  selcolors select board.cue 0 -w     Select the layers using option 0
  selcolors select board.cue -i       Pick an option interactively
  selcolors watch board.cue           Reprint when the selection changes
  selcolors export board.cue -f yaml  Export the catalog`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.init(cmd.Context())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.restoreLogger()
		},
	}

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/selcolors/config.cue)")
	rootCmd.PersistentFlags().BoolVarP(&app.flags.interactive, "interactive", "i", false, "prompt for an option when none is given")

	rootCmd.AddCommand(
		newCollectCommand(app),
		newSelectCommand(app),
		newWatchCommand(app),
		newExportCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the command's exit code.
// It is called by main.main().
func Execute() {
	os.Exit(run(context.Background(), NewApp(Dependencies{}), os.Args[1:]))
}

// run executes the command tree with args and returns the exit code.
func run(ctx context.Context, app *App, args []string) int {
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// handleError prints errors that were not already reported by a command.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
