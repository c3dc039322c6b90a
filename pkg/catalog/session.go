// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/selcolors/selcolors/pkg/layer"
)

const (
	// StatusNoDocument means the host has no active document.
	StatusNoDocument Status = iota + 1
	// StatusNoSelection means the active document has no selected layers.
	StatusNoSelection
	// StatusEmpty means the selection uses no colors or gradients.
	StatusEmpty
	// StatusReady means the catalog has at least one entry.
	StatusReady
)

type (
	// Status describes the outcome of a collection pass.
	Status int

	// Result is the outcome of a collection pass. Catalog is never nil.
	Result struct {
		Status       Status
		Catalog      *Catalog
		SelectionIDs []layer.ID
	}

	// Session keeps the catalog of a host's current selection up to date.
	// Passes are serialized; observers are called outside the lock, in
	// registration order.
	Session struct {
		host layer.Host

		mu        sync.Mutex
		collected bool
		hadDoc    bool
		current   Result
		observers []observer
		nextID    int
	}

	observer struct {
		id int
		fn func(Result)
	}
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusNoDocument:
		return "no document"
	case StatusNoSelection:
		return "no selection"
	case StatusEmpty:
		return "no colors found"
	case StatusReady:
		return "ready"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// NewSession creates a session for host. No pass runs until Recollect or
// Refresh is called.
func NewSession(host layer.Host) *Session {
	return &Session{
		host:    host,
		current: Result{Status: StatusNoDocument, Catalog: Build(nil)},
	}
}

// Recollect runs a pass unconditionally and notifies observers.
func (s *Session) Recollect() Result {
	s.mu.Lock()
	doc, hasDoc := s.activeDocument()
	res := s.collectLocked(doc, hasDoc)
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	notify(observers, res)
	return res
}

// Refresh runs a pass only when the document's selection differs from the
// one the current catalog was built from. It reports whether a pass ran.
func (s *Session) Refresh() (Result, bool) {
	s.mu.Lock()
	doc, hasDoc := s.activeDocument()

	var ids []layer.ID
	if hasDoc {
		ids = SelectionIDs(doc.SelectedLayers())
	}
	if s.collected && hasDoc == s.hadDoc && !HasSelectionChanged(s.current.SelectionIDs, ids) {
		res := s.current
		s.mu.Unlock()
		return res, false
	}

	res := s.collectLocked(doc, hasDoc)
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	notify(observers, res)
	return res, true
}

// Current returns the result of the latest pass.
func (s *Session) Current() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers fn to receive every pass result. The returned
// function removes the registration.
func (s *Session) Subscribe(fn func(Result)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(o observer) bool { return o.id == id })
	}
}

// Select resolves option against the current catalog and selects the
// matching layers in the active document. The catalog is kept: the new
// selection is recorded as current so the next Refresh does not rebuild it.
func (s *Session) Select(option int) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, _ := s.activeDocument()
	sel := Resolve(doc, s.current.Catalog, option)
	if sel.Status == StatusSelected {
		s.current.SelectionIDs = SelectionIDs(sel.Layers)
	}
	return sel
}

func (s *Session) activeDocument() (layer.Document, bool) {
	if s.host == nil {
		return nil, false
	}
	doc, ok := s.host.ActiveDocument()
	if !ok || doc == nil {
		return nil, false
	}
	return doc, true
}

func (s *Session) collectLocked(doc layer.Document, hasDoc bool) Result {
	s.collected = true
	s.hadDoc = hasDoc

	var res Result
	switch {
	case !hasDoc:
		res = Result{Status: StatusNoDocument, Catalog: Build(nil)}
	default:
		selected := doc.SelectedLayers()
		ids := SelectionIDs(selected)
		if len(ids) == 0 {
			res = Result{Status: StatusNoSelection, Catalog: Build(nil), SelectionIDs: ids}
			break
		}
		cat := Build(Collect(selected, BuildSwatchIndex(doc)))
		res = Result{Status: StatusReady, Catalog: cat, SelectionIDs: ids}
		if cat.Empty() {
			res.Status = StatusEmpty
		}
	}

	slog.Debug("collected selection colors",
		"status", res.Status.String(),
		"layers", len(res.SelectionIDs),
		"solids", len(res.Catalog.Solids),
		"gradients", len(res.Catalog.Gradients))

	s.current = res
	return res
}

func notify(observers []observer, res Result) {
	for _, o := range observers {
		o.fn(res)
	}
}
