// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/selcolors/selcolors/pkg/layer"
)

const (
	// OptionSolid refers to an entry of Catalog.Solids.
	OptionSolid OptionKind = iota + 1
	// OptionGradient refers to an entry of Catalog.Gradients.
	OptionGradient
)

type (
	// OptionKind tags an option with the catalog array it indexes.
	OptionKind int

	// Option is one pickable row: an index into Solids or Gradients.
	Option struct {
		Kind  OptionKind `json:"kind" yaml:"kind" toml:"kind"`
		Index int        `json:"index" yaml:"index" toml:"index"`
	}

	// Catalog is the ordered, deduplicated result of a pass. It is never
	// modified after Build returns.
	Catalog struct {
		Solids    []SolidEntry    `json:"solids" yaml:"solids" toml:"solids"`
		Gradients []GradientEntry `json:"gradients" yaml:"gradients" toml:"gradients"`
		Options   []Option        `json:"options" yaml:"options" toml:"options"`

		layers map[layer.ID]*layer.Layer
	}
)

// String returns the string representation of the OptionKind.
func (k OptionKind) String() string {
	switch k {
	case OptionSolid:
		return "solid"
	case OptionGradient:
		return "gradient"
	default:
		return fmt.Sprintf("OptionKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k OptionKind) MarshalText() ([]byte, error) {
	switch k {
	case OptionSolid, OptionGradient:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown option kind %d", int(k))
	}
}

// UnmarshalText decodes a kind name.
func (k *OptionKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "solid":
		*k = OptionSolid
	case "gradient":
		*k = OptionGradient
	default:
		return fmt.Errorf("unknown option kind %q", text)
	}
	return nil
}

// Build orders the entries of c into a Catalog.
//
// Solids that reference a swatch come first; within each group entries are
// ordered by descending layer count, then by insertion order. Gradients are
// ordered by descending layer count, then by insertion order. Options lists
// every solid followed by every gradient. A nil collection yields an empty
// catalog.
func Build(c *Collection) *Catalog {
	if c == nil {
		c = newCollection()
	}

	solids := c.Solids()
	slices.SortStableFunc(solids, func(a, b SolidEntry) int {
		if a.IsSwatchRef != b.IsSwatchRef {
			if a.IsSwatchRef {
				return -1
			}
			return 1
		}
		return cmp.Or(
			cmp.Compare(len(b.LayerIDs), len(a.LayerIDs)),
			cmp.Compare(a.Order, b.Order),
		)
	})

	gradients := c.Gradients()
	slices.SortStableFunc(gradients, func(a, b GradientEntry) int {
		return cmp.Or(
			cmp.Compare(len(b.LayerIDs), len(a.LayerIDs)),
			cmp.Compare(a.Order, b.Order),
		)
	})

	options := make([]Option, 0, len(solids)+len(gradients))
	for i := range solids {
		options = append(options, Option{Kind: OptionSolid, Index: i})
	}
	for i := range gradients {
		options = append(options, Option{Kind: OptionGradient, Index: i})
	}

	return &Catalog{
		Solids:    solids,
		Gradients: gradients,
		Options:   options,
		layers:    maps.Clone(c.layers),
	}
}

// Empty reports whether the catalog has no entries.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.Options) == 0
}

// Len returns the number of options.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Options)
}

// LayerIDs returns the layers that use the entry behind option.
func (c *Catalog) LayerIDs(option int) ([]layer.ID, bool) {
	if c == nil || option < 0 || option >= len(c.Options) {
		return nil, false
	}
	opt := c.Options[option]
	switch opt.Kind {
	case OptionSolid:
		return c.Solids[opt.Index].LayerIDs, true
	case OptionGradient:
		return c.Gradients[opt.Index].LayerIDs, true
	default:
		return nil, false
	}
}

// cachedLayer returns the reference captured when the catalog was built.
func (c *Catalog) cachedLayer(id layer.ID) (*layer.Layer, bool) {
	l, ok := c.layers[id]
	return l, ok
}
