// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/selcolors/selcolors/internal/issue"
	"github.com/selcolors/selcolors/internal/watch"
	"github.com/selcolors/selcolors/pkg/catalog"

	"github.com/spf13/cobra"
)

func newWatchCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <snapshot>",
		Short: "Reprint the catalog whenever the selection changes",
		Long: `Print the catalog of the current selection, then watch the snapshot file
and print it again each time the saved selection changes.

Edits that leave the selection as it was are not reprinted. A snapshot that
fails to parse keeps the last good document; a deleted snapshot means there
is no active document. Press ctrl+c to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.report(runWatch(cmd.Context(), app, args[0]))
		},
	}
}

func runWatch(ctx context.Context, app *App, path string) error {
	host, err := openHost(path)
	if err != nil {
		return err
	}

	debounce, err := app.cfg.Watch.DebounceDuration()
	if err != nil {
		return watchError(path, err)
	}

	session := catalog.NewSession(host)
	stop := session.Subscribe(func(res catalog.Result) {
		app.printResult(app.stdout, path, res)
	})
	defer stop()
	session.Recollect()

	w, err := watch.New(watch.Config{
		Files:    []string{path},
		Ignore:   app.cfg.Watch.Ignore,
		Debounce: debounce,
		Logger:   slog.Default(),
		OnChange: func(_ context.Context, _ []string) error {
			if err := host.reload(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				app.warn(err)
				return nil
			}
			if _, ran := session.Refresh(); !ran {
				slog.Debug("selection unchanged", "path", path)
			}
			return nil
		},
	})
	if err != nil {
		return watchError(path, err)
	}

	fmt.Fprintln(app.stderr, SubtitleStyle.Render(fmt.Sprintf("Watching %s (ctrl+c to stop)", path)))
	if err := w.Run(ctx); err != nil {
		return watchError(path, err)
	}
	return nil
}

func watchError(path string, err error) error {
	return newServiceError(issue.NewErrorContext().
		WithOperation("watch document").
		WithResource(path).
		WithSuggestion("Check the watch settings with 'selcolors config show'").
		Wrap(err).
		BuildError(), issue.WatchFailedId, "")
}
