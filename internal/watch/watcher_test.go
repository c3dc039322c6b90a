// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/selcolors/selcolors/internal/testutil"

	"github.com/fsnotify/fsnotify"
)

// TestWatcherDebounce verifies that rapid writes to the watched file are
// coalesced into a single callback.
func TestWatcherDebounce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "board.cue")
	writeFile(t, target, "v0")

	var (
		mu      sync.Mutex
		calls   int
		changed []string
	)
	done := make(chan struct{}, 1)

	w, err := New(Config{
		Files:    []string{target},
		Debounce: 100 * time.Millisecond,
		OnChange: func(_ context.Context, files []string) error {
			mu.Lock()
			defer mu.Unlock()
			calls++
			changed = files
			select {
			case done <- struct{}{}:
			default:
			}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	for i := range 3 {
		writeFile(t, target, string(rune('a'+i)))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
	time.Sleep(250 * time.Millisecond)

	cancel()
	if err := <-errCh; err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("expected 1 debounced callback, got %d", calls)
	}
	if len(changed) != 1 || changed[0] != target {
		t.Errorf("changed = %v, want [%s]", changed, target)
	}
}

// TestWatcherIgnoresSiblings verifies that other files in the watched
// directory never trigger the callback.
func TestWatcherIgnoresSiblings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "board.cue")

	fired := make(chan []string, 4)
	w, err := New(Config{
		Files:    []string{target},
		Debounce: 50 * time.Millisecond,
		OnChange: func(_ context.Context, files []string) error {
			fired <- files
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	writeFile(t, filepath.Join(dir, "other.cue"), "x")
	writeFile(t, filepath.Join(dir, "board.cue.swp"), "x")

	select {
	case files := <-fired:
		t.Fatalf("unexpected callback for %v", files)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Fatalf("Run() error: %v", err)
	}
}

func TestWatcher_Relevant(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "board.cue")
	ignored := filepath.Join(dir, "cache", "board.cue")

	testutil.MustMkdirAll(t, filepath.Dir(ignored), 0o755)

	w, err := New(Config{
		Files:  []string{target, ignored},
		Ignore: []string{"**/cache/**"},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { testutil.MustClose(t, w.fsw) })

	tests := []struct {
		name string
		evt  fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"create after rename", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"sibling", fsnotify.Event{Name: filepath.Join(dir, "x.cue"), Op: fsnotify.Write}, false},
		{"ignored target", fsnotify.Event{Name: ignored, Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		if got := w.relevant(tt.evt); got != tt.want {
			t.Errorf("%s: relevant() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWatcherContextCancel(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "board.cue")
	w, err := New(Config{Files: []string{target}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcherDoubleRunError(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "board.cue")
	w, err := New(Config{Files: []string{target}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)

	if err := w.Run(ctx); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() = %v, want ErrAlreadyRunning", err)
	}

	cancel()
	<-errCh
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); err == nil {
		t.Error("expected error without files")
	}
	if _, err := New(Config{Files: []string{filepath.Join(t.TempDir(), "a.cue")}, Ignore: []string{"[unclosed"}}); err == nil {
		t.Error("expected error for invalid ignore pattern")
	}
}

func TestWatcher_Exists(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "board.cue")
	w, err := New(Config{Files: []string{target}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { testutil.MustClose(t, w.fsw) })

	if w.Exists() {
		t.Error("Exists() = true before the file is written")
	}
	writeFile(t, target, "x")
	if !w.Exists() {
		t.Error("Exists() = false after the file is written")
	}
}

func TestDefaultIgnores(t *testing.T) {
	t.Parallel()

	got := DefaultIgnores()
	if len(got) == 0 {
		t.Fatal("expected built-in ignores")
	}
	got[0] = "mutated"
	if DefaultIgnores()[0] == "mutated" {
		t.Error("DefaultIgnores() should return a copy")
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	testutil.MustWriteFile(t, filepath.Dir(path), filepath.Base(path), data)
}
