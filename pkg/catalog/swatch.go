// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"github.com/selcolors/selcolors/pkg/layer"
	"github.com/selcolors/selcolors/pkg/paint"
)

// SwatchIndex maps swatch ids to swatch names for one collection pass.
// The zero value is an empty index.
type SwatchIndex struct {
	names map[paint.SwatchID]string
}

// BuildSwatchIndex indexes the swatches of doc. A nil document yields an
// empty index.
func BuildSwatchIndex(doc layer.Document) SwatchIndex {
	if doc == nil {
		return SwatchIndex{}
	}
	return NewSwatchIndex(doc.Swatches())
}

// NewSwatchIndex registers every swatch that has an id, a name and a color.
// When two swatches share an id the first one wins.
func NewSwatchIndex(swatches []layer.Swatch) SwatchIndex {
	names := make(map[paint.SwatchID]string, len(swatches))
	for _, sw := range swatches {
		if sw.ID == "" || sw.Name == "" {
			continue
		}
		if _, ok := paint.NormalizeColor(sw.Color); !ok {
			continue
		}
		if _, exists := names[sw.ID]; !exists {
			names[sw.ID] = sw.Name
		}
	}
	return SwatchIndex{names: names}
}

// Name returns the name registered for id.
func (i SwatchIndex) Name(id paint.SwatchID) (string, bool) {
	name, ok := i.names[id]
	return name, ok
}

// Len returns the number of registered swatches.
func (i SwatchIndex) Len() int { return len(i.names) }
