// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"

	"github.com/selcolors/selcolors/pkg/layer"
)

const (
	// StatusSelected means at least one layer was selected.
	StatusSelected SelectionStatus = iota + 1
	// StatusOutOfRange means the option index does not exist.
	StatusOutOfRange
	// StatusNoLayers means none of the entry's layers still resolve.
	StatusNoLayers
)

type (
	// SelectionStatus is the outcome of Resolve.
	SelectionStatus int

	// Selection is the result of resolving a catalog option.
	Selection struct {
		Status SelectionStatus
		Option int
		Layers []*layer.Layer
	}
)

// String returns the string representation of the SelectionStatus.
func (s SelectionStatus) String() string {
	switch s {
	case StatusSelected:
		return "selected"
	case StatusOutOfRange:
		return "out of range"
	case StatusNoLayers:
		return "no layers"
	default:
		return fmt.Sprintf("SelectionStatus(%d)", int(s))
	}
}

// Count returns the number of layers actually selected.
func (s Selection) Count() int { return len(s.Layers) }

// Message is the user-facing summary of the selection.
func (s Selection) Message() string {
	switch s.Status {
	case StatusSelected:
		return "Selected " + CountLabel(len(s.Layers))
	case StatusOutOfRange:
		return fmt.Sprintf("Option %d is out of range", s.Option)
	default:
		return "No layers found"
	}
}

// Resolve selects, in doc, the layers that use the entry behind option.
//
// When doc implements layer.Finder every id is looked up fresh and ids that
// no longer resolve are dropped. Otherwise the references captured by the
// collection pass are used. The document is only modified when at least one
// layer resolves.
func Resolve(doc layer.Document, cat *Catalog, option int) Selection {
	ids, ok := cat.LayerIDs(option)
	if !ok {
		return Selection{Status: StatusOutOfRange, Option: option}
	}
	if doc == nil {
		return Selection{Status: StatusNoLayers, Option: option}
	}

	lookup := cat.cachedLayer
	if finder, ok := doc.(layer.Finder); ok {
		lookup = finder.LayerByID
	}

	layers := make([]*layer.Layer, 0, len(ids))
	for _, id := range ids {
		if l, ok := lookup(id); ok && l != nil {
			layers = append(layers, l)
		}
	}
	if len(layers) == 0 {
		return Selection{Status: StatusNoLayers, Option: option}
	}

	doc.SetSelection(layers)
	return Selection{Status: StatusSelected, Option: option, Layers: layers}
}
