// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/selcolors/selcolors/internal/issue"
	"github.com/selcolors/selcolors/pkg/layer"
)

// snapshotHost is a layer.Host backed by a snapshot file. The active
// document is swapped on reload; a missing file means no active document.
type snapshotHost struct {
	path string

	mu   sync.RWMutex
	snap *layer.Snapshot
}

// ActiveDocument implements layer.Host.
func (h *snapshotHost) ActiveDocument() (layer.Document, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.snap == nil {
		return nil, false
	}
	return h.snap, true
}

// snapshot returns the current snapshot, or nil.
func (h *snapshotHost) snapshot() *layer.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// reload parses the file again. A parse error keeps the previous document;
// a missing file clears it.
func (h *snapshotHost) reload() error {
	snap, err := loadSnapshot(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.mu.Lock()
			h.snap = nil
			h.mu.Unlock()
		}
		return err
	}

	h.mu.Lock()
	h.snap = snap
	h.mu.Unlock()
	return nil
}

// openHost loads path and returns a host for it.
func openHost(path string) (*snapshotHost, error) {
	h := &snapshotHost{path: path}
	if err := h.reload(); err != nil {
		return nil, err
	}
	return h, nil
}

// loadSnapshot parses a snapshot file, mapping failures to issue pages.
func loadSnapshot(path string) (*layer.Snapshot, error) {
	snap, err := layer.Parse(path)
	if err == nil {
		return snap, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return nil, newServiceError(issue.NewErrorContext().
			WithOperation("load document").
			WithResource(path).
			WithSuggestion("Check the snapshot path").
			Wrap(err).
			BuildError(), issue.DocumentNotFoundId, "")
	}

	return nil, newServiceError(issue.NewErrorContext().
		WithOperation("load document").
		WithResource(path).
		WithSuggestion("Run with --verbose to see the full error chain").
		Wrap(err).
		BuildError(), issue.DocumentParseErrorId, "")
}

// writeSnapshot persists snap back to its file.
func writeSnapshot(snap *layer.Snapshot) error {
	if err := snap.Write(); err != nil {
		return newServiceError(issue.NewErrorContext().
			WithOperation("write document").
			WithResource(snap.Path()).
			WithSuggestion("Check that the file is writable").
			Wrap(err).
			BuildError(), issue.DocumentWriteFailedId, "")
	}
	return nil
}
