// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/selcolors/selcolors/internal/config"
	"github.com/selcolors/selcolors/internal/issue"
	"github.com/selcolors/selcolors/internal/tui"
	"github.com/selcolors/selcolors/pkg/catalog"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer; every command handler receives an App.
	App struct {
		Config config.Provider
		Picker Picker

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		flags    rootFlags
		cfg      *config.Config
		cfgPath  string
		cfgErr   error
		logger   *log.Logger
		prevSlog *slog.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Picker Picker
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Picker asks the user to choose a catalog option.
	Picker interface {
		Pick(cat *catalog.Catalog, opts tui.PickOptions) (int, error)
	}

	// PickerFunc adapts a function to the Picker interface.
	PickerFunc func(cat *catalog.Catalog, opts tui.PickOptions) (int, error)

	rootFlags struct {
		configPath  string
		verbose     bool
		interactive bool
	}
)

// Pick calls f.
func (f PickerFunc) Pick(cat *catalog.Catalog, opts tui.PickOptions) (int, error) {
	return f(cat, opts)
}

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Picker == nil {
		deps.Picker = PickerFunc(tui.PickOption)
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config: deps.Config,
		Picker: deps.Picker,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
	}
}

// init loads configuration and installs the logger. A configuration error
// is reported as a warning and defaults are used, so that a broken config
// file never blocks read-only commands.
func (a *App) init(ctx context.Context) {
	cfg, path, err := a.Config.Resolve(ctx, config.LoadOptions{ConfigFilePath: a.flags.configPath})
	if err != nil {
		a.cfgErr = err
		cfg = config.DefaultConfig()
	}
	a.cfg, a.cfgPath = cfg, path

	if !a.flags.verbose {
		a.flags.verbose = cfg.UI.Verbose
	}
	if !a.flags.interactive {
		a.flags.interactive = cfg.UI.Interactive
	}

	level := cfg.Log.Level.String()
	if a.flags.verbose {
		level = config.LogLevelDebug.String()
	}
	parsed, parseErr := log.ParseLevel(level)
	if parseErr != nil {
		parsed = log.InfoLevel
	}

	a.logger = log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  parsed,
	})
	a.prevSlog = slog.Default()
	slog.SetDefault(slog.New(a.logger))

	if a.cfgErr != nil {
		a.warn(a.cfgErr)
	}
}

// restoreLogger undoes the slog default installed by init.
func (a *App) restoreLogger() {
	if a.prevSlog != nil {
		slog.SetDefault(a.prevSlog)
		a.prevSlog = nil
	}
}

func (a *App) warn(err error) {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		a.logger.Warn(strings.TrimSpace(ae.Format(a.flags.verbose)))
		return
	}
	a.logger.Warn(err.Error())
}

// renderer returns a catalog renderer for stdout.
func (a *App) renderer() *tui.Renderer {
	return tui.NewRenderer(a.stdout, a.cfg.Preview.GradientSteps)
}

// promptConfig returns the prompt configuration bound to the App's streams.
func (a *App) promptConfig() tui.Config {
	cfg := tui.DefaultConfig()
	cfg.Input = a.stdin
	cfg.Output = a.stderr
	return cfg
}
