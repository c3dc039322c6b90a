// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"log/slog"
	"slices"

	"github.com/selcolors/selcolors/pkg/layer"
	"github.com/selcolors/selcolors/pkg/paint"
)

type (
	// SolidEntry is a distinct solid color and the layers that use it.
	SolidEntry struct {
		Color       paint.Color `json:"color" yaml:"color" toml:"color"`
		SwatchName  string      `json:"swatchName,omitempty" yaml:"swatchName,omitempty" toml:"swatchName,omitempty"`
		IsSwatchRef bool        `json:"isSwatchRef" yaml:"isSwatchRef" toml:"isSwatchRef"`
		// LayerIDs lists contributing layers in first-seen order.
		LayerIDs []layer.ID `json:"layerIds" yaml:"layerIds" toml:"layerIds"`
		// Order is the position at which the entry was first seen.
		Order int `json:"-" yaml:"-" toml:"-"`
	}

	// GradientEntry is a distinct gradient and the layers that use it.
	GradientEntry struct {
		Gradient paint.Gradient `json:"gradient" yaml:"gradient" toml:"gradient"`
		LayerIDs []layer.ID     `json:"layerIds" yaml:"layerIds" toml:"layerIds"`
		Order    int            `json:"-" yaml:"-" toml:"-"`
	}

	// Collection is the result of one collection pass: two deduplicated
	// accumulators in insertion order plus the layers visited by the pass.
	Collection struct {
		solids     []SolidEntry
		solidIndex map[SolidKey]int
		solidSeen  []map[layer.ID]struct{}

		gradients     []GradientEntry
		gradientIndex map[GradientKey]int
		gradientSeen  []map[layer.ID]struct{}

		layers map[layer.ID]*layer.Layer
	}
)

func newCollection() *Collection {
	return &Collection{
		solidIndex:    make(map[SolidKey]int),
		gradientIndex: make(map[GradientKey]int),
		layers:        make(map[layer.ID]*layer.Layer),
	}
}

// CollectDocument runs a pass over the selected layers of doc. A nil
// document yields an empty collection.
func CollectDocument(doc layer.Document) *Collection {
	if doc == nil {
		return newCollection()
	}
	return Collect(doc.SelectedLayers(), BuildSwatchIndex(doc))
}

// Collect walks roots depth-first in pre-order and accumulates every enabled
// fill, border and text color. A layer's own paint sources are visited
// before its children. Layers and documents are never modified.
func Collect(roots []*layer.Layer, idx SwatchIndex) *Collection {
	c := newCollection()
	layer.Walk(roots, func(l *layer.Layer) bool {
		c.visit(l, idx)
		return true
	})
	return c
}

func (c *Collection) visit(l *layer.Layer, idx SwatchIndex) {
	if _, seen := c.layers[l.ID]; !seen {
		c.layers[l.ID] = l
	}

	for _, src := range l.Style.Fills {
		c.addSource(l.ID, src, idx)
	}
	for _, src := range l.Style.Borders {
		c.addSource(l.ID, src, idx)
	}

	if l.Type.IsText() {
		if color, ok := paint.NormalizeColor(l.Style.TextColor); ok {
			ref, hasRef := l.Style.TextSwatchRef()
			c.addSolid(l.ID, color, ref, hasRef, idx)
		}
	}
}

func (c *Collection) addSource(id layer.ID, src paint.Source, idx SwatchIndex) {
	if !src.Enabled {
		return
	}

	kind, ok := src.FillType.Kind()
	if !ok {
		slog.Debug("skipping paint source", "layer", id, "fillType", src.FillType)
		return
	}

	switch kind {
	case paint.SourceSolid:
		color, ok := paint.NormalizeColor(src.Color)
		if !ok {
			return
		}
		ref, hasRef := src.SwatchRef()
		c.addSolid(id, color, ref, hasRef, idx)
	case paint.SourceGradient:
		g, ok := paint.NormalizeGradient(src.Gradient)
		if !ok {
			return
		}
		c.addGradient(id, g)
	}
}

func (c *Collection) addSolid(id layer.ID, color paint.Color, ref paint.SwatchID, hasRef bool, idx SwatchIndex) {
	var (
		name  string
		isRef bool
	)
	if hasRef {
		name, isRef = idx.Name(ref)
		if !isRef {
			slog.Debug("swatch reference not in document, treating as literal", "layer", id, "swatch", ref)
		}
	}

	key := solidKey(color, name, isRef)
	i, exists := c.solidIndex[key]
	if !exists {
		i = len(c.solids)
		c.solidIndex[key] = i
		c.solids = append(c.solids, SolidEntry{
			Color:       color,
			SwatchName:  key.SwatchName,
			IsSwatchRef: isRef,
			Order:       i,
		})
		c.solidSeen = append(c.solidSeen, make(map[layer.ID]struct{}))
	}
	if _, dup := c.solidSeen[i][id]; !dup {
		c.solidSeen[i][id] = struct{}{}
		c.solids[i].LayerIDs = append(c.solids[i].LayerIDs, id)
	}
}

func (c *Collection) addGradient(id layer.ID, g paint.Gradient) {
	key := gradientKey(g)
	i, exists := c.gradientIndex[key]
	if !exists {
		i = len(c.gradients)
		c.gradientIndex[key] = i
		c.gradients = append(c.gradients, GradientEntry{Gradient: g, Order: i})
		c.gradientSeen = append(c.gradientSeen, make(map[layer.ID]struct{}))
	}
	if _, dup := c.gradientSeen[i][id]; !dup {
		c.gradientSeen[i][id] = struct{}{}
		c.gradients[i].LayerIDs = append(c.gradients[i].LayerIDs, id)
	}
}

// Solids returns a copy of the solid entries in insertion order.
func (c *Collection) Solids() []SolidEntry {
	out := make([]SolidEntry, len(c.solids))
	for i, e := range c.solids {
		e.LayerIDs = slices.Clone(e.LayerIDs)
		out[i] = e
	}
	return out
}

// Gradients returns a copy of the gradient entries in insertion order.
func (c *Collection) Gradients() []GradientEntry {
	out := make([]GradientEntry, len(c.gradients))
	for i, e := range c.gradients {
		e.LayerIDs = slices.Clone(e.LayerIDs)
		e.Gradient.Stops = slices.Clone(e.Gradient.Stops)
		out[i] = e
	}
	return out
}

// Layer returns the layer visited under id during the pass.
func (c *Collection) Layer(id layer.ID) (*layer.Layer, bool) {
	l, ok := c.layers[id]
	return l, ok
}

// Empty reports whether the pass found no colors and no gradients.
func (c *Collection) Empty() bool {
	return len(c.solids) == 0 && len(c.gradients) == 0
}
