// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"strconv"
)

const (
	solidBullet    = "●"
	gradientBullet = "◐"
)

// Summary counts the entries of a catalog.
type Summary struct {
	Solids    int `json:"solids" yaml:"solids" toml:"solids"`
	Gradients int `json:"gradients" yaml:"gradients" toml:"gradients"`
}

// CountLabel renders a layer count: "1 layer", "3 layers".
func CountLabel(n int) string {
	if n == 1 {
		return "1 layer"
	}
	return strconv.Itoa(n) + " layers"
}

// Label is the swatch name for swatch references and the color otherwise.
func (e SolidEntry) Label() string {
	if e.IsSwatchRef && e.SwatchName != "" {
		return e.SwatchName
	}
	return e.Color.String()
}

// Label is the gradient kind.
func (e GradientEntry) Label() string {
	return e.Gradient.Kind.String()
}

// OptionLabel renders option as a single pickable row, e.g.
// "● Brand Red · 3 layers" or "◐ Radial · 1 layer".
func (c *Catalog) OptionLabel(option int) (string, bool) {
	if c == nil || option < 0 || option >= len(c.Options) {
		return "", false
	}
	opt := c.Options[option]
	switch opt.Kind {
	case OptionSolid:
		e := c.Solids[opt.Index]
		return fmt.Sprintf("%s %s · %s", solidBullet, e.Label(), CountLabel(len(e.LayerIDs))), true
	case OptionGradient:
		e := c.Gradients[opt.Index]
		return fmt.Sprintf("%s %s · %s", gradientBullet, e.Label(), CountLabel(len(e.LayerIDs))), true
	default:
		return "", false
	}
}

// Labels renders every option in order.
func (c *Catalog) Labels() []string {
	labels := make([]string, 0, c.Len())
	for i := range c.Len() {
		l, _ := c.OptionLabel(i)
		labels = append(labels, l)
	}
	return labels
}

// Summary counts the catalog entries.
func (c *Catalog) Summary() Summary {
	if c == nil {
		return Summary{}
	}
	return Summary{Solids: len(c.Solids), Gradients: len(c.Gradients)}
}

// SolidHeader is the section header for solid entries.
func (s Summary) SolidHeader() string { return fmt.Sprintf("SOLID COLORS (%d)", s.Solids) }

// GradientHeader is the section header for gradient entries.
func (s Summary) GradientHeader() string { return fmt.Sprintf("GRADIENTS (%d)", s.Gradients) }

func (s Summary) String() string {
	return fmt.Sprintf("%d solid colors, %d gradients", s.Solids, s.Gradients)
}
