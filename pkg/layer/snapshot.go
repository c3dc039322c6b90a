// SPDX-License-Identifier: MPL-2.0

package layer

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/selcolors/selcolors/pkg/cueutil"
)

// ErrDuplicateID is the sentinel error wrapped by DuplicateIDError.
var ErrDuplicateID = errors.New("duplicate layer id")

var (
	//go:embed document_schema.cue
	documentSchema []byte

	_ Document = (*Snapshot)(nil)
	_ Finder   = (*Snapshot)(nil)
)

type (
	// DuplicateIDError is returned when two layers of a snapshot share an id.
	DuplicateIDError struct {
		Value ID
	}

	// Snapshot is a document loaded from a CUE or JSON file. It implements
	// Document and Finder. A Snapshot is not safe for concurrent mutation.
	Snapshot struct {
		Selection  []ID     `json:"selection"`
		SwatchList []Swatch `json:"swatches,omitempty"`
		Layers     []*Layer `json:"layers"`

		path  string
		index map[ID]*Layer
	}
)

// Error implements the error interface for DuplicateIDError.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate layer id %q", e.Value)
}

// Unwrap returns ErrDuplicateID for errors.Is() compatibility.
func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }

// Schema returns the embedded CUE schema snapshots are validated against.
func Schema() []byte { return slices.Clone(documentSchema) }

// NewSnapshot builds an in-memory snapshot. It does not validate ids.
func NewSnapshot(layers []*Layer, swatches []Swatch, selection ...ID) *Snapshot {
	s := &Snapshot{Selection: selection, SwatchList: swatches, Layers: layers}
	s.reindex()
	return s
}

// Parse reads and validates the snapshot at path.
func Parse(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return ParseBytes(data, path)
}

// ParseBytes decodes a snapshot from CUE or JSON data. path is used in
// error messages and as the write-back target.
func ParseBytes(data []byte, path string) (*Snapshot, error) {
	result, err := cueutil.ParseAndDecode[Snapshot](documentSchema, data, "#Document", cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}

	s := result.Value
	s.path = path
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.reindex()
	return s, nil
}

// Path returns the file the snapshot was loaded from.
func (s *Snapshot) Path() string { return s.path }

// SetPath changes the write-back target.
func (s *Snapshot) SetPath(path string) { s.path = path }

// Validate checks that every layer id is non-empty and unique.
func (s *Snapshot) Validate() error {
	var errs []error
	seen := make(map[ID]struct{})
	Walk(s.Layers, func(l *Layer) bool {
		if ok, idErrs := l.ID.IsValid(); !ok {
			errs = append(errs, idErrs...)
			return true
		}
		if _, dup := seen[l.ID]; dup {
			errs = append(errs, &DuplicateIDError{Value: l.ID})
			return true
		}
		seen[l.ID] = struct{}{}
		return true
	})
	return errors.Join(errs...)
}

// SelectedLayers returns the layers named by Selection, in selection order.
// Ids that no longer exist are skipped.
func (s *Snapshot) SelectedLayers() []*Layer {
	layers := make([]*Layer, 0, len(s.Selection))
	for _, id := range s.Selection {
		if l, ok := s.LayerByID(id); ok {
			layers = append(layers, l)
		}
	}
	return layers
}

// Swatches returns the document swatch list.
func (s *Snapshot) Swatches() []Swatch { return s.SwatchList }

// SetSelection replaces the selection with the ids of layers.
func (s *Snapshot) SetSelection(layers []*Layer) {
	ids := make([]ID, 0, len(layers))
	for _, l := range layers {
		if l != nil {
			ids = append(ids, l.ID)
		}
	}
	s.Selection = ids
}

// LayerByID looks id up in the live layer tree.
func (s *Snapshot) LayerByID(id ID) (*Layer, bool) {
	if s.index == nil {
		s.reindex()
	}
	l, ok := s.index[id]
	return l, ok
}

// RemoveLayer detaches the layer with the given id, and its subtree, from
// the tree. It reports whether a layer was removed.
func (s *Snapshot) RemoveLayer(id ID) bool {
	removed := removeFrom(&s.Layers, id)
	if removed {
		s.reindex()
	}
	return removed
}

// Encode renders the snapshot in the format implied by its path: JSON for
// ".json" files, CUE otherwise.
func (s *Snapshot) Encode() ([]byte, error) {
	// The schema rejects null lists.
	if s.Selection == nil {
		s.Selection = []ID{}
	}
	if s.Layers == nil {
		s.Layers = []*Layer{}
	}

	if strings.EqualFold(filepath.Ext(s.path), ".json") {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}
		return append(out, '\n'), nil
	}
	return cueutil.Encode(s)
}

// Write persists the snapshot to its path.
func (s *Snapshot) Write() error {
	if s.path == "" {
		return errors.New("document has no path")
	}
	data, err := s.Encode()
	if err != nil {
		return err
	}
	info, err := os.Stat(s.path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(s.path, data, mode); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (s *Snapshot) reindex() {
	s.index = make(map[ID]*Layer)
	Walk(s.Layers, func(l *Layer) bool {
		if _, exists := s.index[l.ID]; !exists {
			s.index[l.ID] = l
		}
		return true
	})
}

func removeFrom(layers *[]*Layer, id ID) bool {
	for i, l := range *layers {
		if l == nil {
			continue
		}
		if l.ID == id {
			*layers = slices.Delete(*layers, i, i+1)
			return true
		}
		if removeFrom(&l.Children, id) {
			return true
		}
	}
	return false
}
