// SPDX-License-Identifier: MPL-2.0

// Package watch reruns a callback when a document snapshot changes on disk.
//
// Editors often replace a file by writing a temporary and renaming it over
// the original, so the watcher registers the file's parent directory and
// filters events by name. Events inside the debounce window are coalesced
// into one callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 150 * time.Millisecond

// ErrAlreadyRunning is returned when Run is called a second time.
var ErrAlreadyRunning = errors.New("watch: Run called more than once")

// defaultIgnores are editor and OS artifacts that never trigger a callback.
var defaultIgnores = []string{
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.#*",
	"**/.DS_Store",
}

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Files are the paths whose changes trigger the callback. Each file's
		// directory is registered; the file itself need not exist yet.
		Files []string

		// Ignore are doublestar globs, matched against the slash-separated
		// absolute path without its leading slash, that never trigger the
		// callback. They are merged
		// with the built-in ignores.
		Ignore []string

		// Debounce is the quiet period after the last event before the
		// callback fires. Zero or negative values use the default.
		Debounce time.Duration

		// OnChange receives the changed files, sorted. A nil callback is a
		// no-op. Errors are logged and do not stop the watcher.
		OnChange func(ctx context.Context, changed []string) error

		// Logger receives diagnostics. nil uses slog.Default().
		Logger *slog.Logger
	}

	// Watcher fires a debounced callback when watched files change. Run must
	// be called exactly once.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		targets  map[string]struct{}
		ignores  []string
		debounce time.Duration
		log      *slog.Logger
		started  atomic.Bool
	}
)

// New creates a Watcher for cfg.Files. Every pattern is validated eagerly.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Files) == 0 {
		return nil, errors.New("watch: no files to watch")
	}
	if err := validatePatterns(cfg.Ignore); err != nil {
		return nil, err
	}

	targets := make(map[string]struct{}, len(cfg.Files))
	dirs := make(map[string]struct{}, len(cfg.Files))
	for _, f := range cfg.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve %q: %w", f, err)
		}
		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	for _, dir := range slices.Sorted(maps.Keys(dirs)) {
		if err := fsw.Add(dir); err != nil {
			fsw.Close() //nolint:errcheck // best-effort cleanup
			return nil, fmt.Errorf("watch: add directory %q: %w", dir, err)
		}
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		targets:  targets,
		ignores:  slices.Concat(defaultIgnores, cfg.Ignore),
		debounce: debounce,
		log:      logger,
	}, nil
}

// Run blocks until ctx is canceled, dispatching debounced callbacks. It
// returns nil on cancellation and an error when fsnotify fails fatally.
// Callbacks never overlap: a timer that fires while one is running is
// rescheduled.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			w.log.Debug("callback still running, rescheduling")
			mu.Lock()
			timer.Reset(w.debounce)
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if w.cfg.OnChange == nil {
			return
		}
		if err := w.cfg.OnChange(ctx, changed); err != nil {
			w.log.Error("watch callback failed", "err", err)
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		if err := w.fsw.Close(); err != nil {
			w.log.Warn("close fsnotify", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: fsnotify event channel closed unexpectedly")
			}
			if !w.relevant(evt) {
				continue
			}
			w.log.Debug("file changed", "path", evt.Name, "op", evt.Op.String())

			mu.Lock()
			pending[filepath.Clean(evt.Name)] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: fsnotify error channel closed unexpectedly")
			}
			if isFatal(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			w.log.Warn("fsnotify error", "err", err)
		}
	}
}

// relevant reports whether evt names a watched file and is not ignored.
// Chmod-only events are dropped.
func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if evt.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(evt.Name)
	if _, ok := w.targets[name]; !ok {
		return false
	}
	return !w.isIgnored(name)
}

// isIgnored returns true if path matches any ignore pattern.
func (w *Watcher) isIgnored(path string) bool {
	normalized := strings.TrimPrefix(filepath.ToSlash(path), "/")
	for _, pat := range w.ignores {
		if matched, err := doublestar.Match(pat, normalized); err == nil && matched {
			return true
		}
	}
	return false
}

// Exists reports whether every watched file is present. A snapshot that is
// mid-replace may briefly be missing.
func (w *Watcher) Exists() bool {
	for path := range w.targets {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}

// validatePatterns checks that every pattern is a valid doublestar glob.
func validatePatterns(patterns []string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("watch: invalid ignore pattern %q: %w", pat, doublestar.ErrBadPattern)
		}
	}
	return nil
}
