// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"github.com/selcolors/selcolors/pkg/layer"
	"github.com/selcolors/selcolors/pkg/paint"
)

// plainDocument is a Document without a Finder capability.
type plainDocument struct {
	selected []*layer.Layer
	swatches []layer.Swatch
	set      [][]*layer.Layer
}

func (d *plainDocument) SelectedLayers() []*layer.Layer { return d.selected }
func (d *plainDocument) Swatches() []layer.Swatch       { return d.swatches }
func (d *plainDocument) SetSelection(layers []*layer.Layer) {
	d.set = append(d.set, layers)
	d.selected = layers
}

func solid(color paint.ColorValue) paint.Source {
	return paint.Source{Enabled: true, FillType: paint.FillColor, Color: color}
}

func swatchFill(color paint.ColorValue, id paint.SwatchID) paint.Source {
	s := solid(color)
	s.Swatch = id
	return s
}

func disabled(color paint.ColorValue) paint.Source {
	s := solid(color)
	s.Enabled = false
	return s
}

func gradient(kind string, stops ...paint.StopSpec) paint.Source {
	return paint.Source{
		Enabled:  true,
		FillType: paint.FillGradient,
		Gradient: &paint.GradientSpec{GradientType: kind, Stops: stops},
	}
}

func stop(color paint.ColorValue, pos float64) paint.StopSpec {
	return paint.StopSpec{Color: color, Position: pos}
}

func shape(id layer.ID, fills []paint.Source, children ...*layer.Layer) *layer.Layer {
	return &layer.Layer{ID: id, Type: layer.TypeShape, Style: layer.Style{Fills: fills}, Children: children}
}

func text(id layer.ID, color paint.ColorValue) *layer.Layer {
	return &layer.Layer{ID: id, Type: layer.TypeText, Style: layer.Style{TextColor: color}}
}

var brandSwatches = []layer.Swatch{
	{ID: "sw-red", Name: "Brand Red", Color: "#FF0000"},
	{ID: "sw-ink", Name: "Ink", Color: "#111111"},
}

// boardTree is a small tree that exercises every contribution path.
func boardTree() []*layer.Layer {
	return []*layer.Layer{
		shape("card",
			[]paint.Source{swatchFill("#ff0000", "sw-red"), disabled("#00FF00")},
			shape("icon", []paint.Source{solid("#FF0000"), swatchFill("#FF0000", "sw-red")}),
			text("caption", "#11111180"),
			shape("glow", []paint.Source{gradient("Radial", stop("#000000", 0), stop("#FFFFFF", 1))}),
		),
		shape("button",
			[]paint.Source{solid("#ff0000")},
			shape("shine", []paint.Source{gradient("1", stop("#000000", 0), stop("#FFFFFF", 1))}),
		),
	}
}
