// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/selcolors/selcolors/pkg/catalog"
	"github.com/selcolors/selcolors/pkg/paint"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	chipGlyph      = "██"
	stripGlyph     = "█"
	unknownGlyph   = "??"
	defaultSamples = 16
)

// Renderer draws catalogs with color chips. Colors degrade to the
// terminal's profile; under termenv.Ascii only the glyphs remain.
type Renderer struct {
	lg      *lipgloss.Renderer
	samples int

	header lipgloss.Style
	number lipgloss.Style
	muted  lipgloss.Style
}

// NewRenderer creates a Renderer for output written to w. samples is the
// number of chips in a gradient strip; values below 2 use the default.
func NewRenderer(w io.Writer, samples int) *Renderer {
	if samples < 2 {
		samples = defaultSamples
	}
	lg := lipgloss.NewRenderer(w)
	return &Renderer{
		lg:      lg,
		samples: samples,
		header:  lg.NewStyle().Bold(true),
		number:  lg.NewStyle().Faint(true),
		muted:   lg.NewStyle().Faint(true).Italic(true),
	}
}

// SetColorProfile forces a color profile, e.g. termenv.Ascii for plain
// output.
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.lg.SetColorProfile(p)
}

// Chip renders a single color swatch. Colors that are not hex literals
// render as a placeholder.
func (r *Renderer) Chip(c paint.Color) string {
	if !c.IsHex() {
		return r.muted.Render(unknownGlyph)
	}
	return r.lg.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render(chipGlyph)
}

// Strip renders a gradient as a row of sampled chips.
func (r *Renderer) Strip(g paint.Gradient) string {
	var sb strings.Builder
	for _, c := range g.Samples(r.samples) {
		if !c.IsHex() {
			sb.WriteString(r.muted.Render("?"))
			continue
		}
		sb.WriteString(r.lg.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render(stripGlyph))
	}
	return sb.String()
}

// Catalog renders both catalog sections. Each row starts with the option
// number accepted by "selcolors select".
func (r *Renderer) Catalog(cat *catalog.Catalog) string {
	summary := cat.Summary()
	width := len(strconv.Itoa(max(cat.Len()-1, 0)))

	var sb strings.Builder
	option := 0

	if summary.Solids > 0 {
		sb.WriteString(r.header.Render(summary.SolidHeader()))
		sb.WriteByte('\n')
		for _, e := range cat.Solids {
			r.row(&sb, width, option, r.Chip(e.Color), e.Label(), len(e.LayerIDs))
			option++
		}
	}

	if summary.Gradients > 0 {
		if summary.Solids > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.header.Render(summary.GradientHeader()))
		sb.WriteByte('\n')
		for _, e := range cat.Gradients {
			r.row(&sb, width, option, r.Strip(e.Gradient), e.Label(), len(e.LayerIDs))
			option++
		}
	}

	return sb.String()
}

func (r *Renderer) row(sb *strings.Builder, width, option int, swatch, label string, layers int) {
	fmt.Fprintf(sb, "  %s  %s  %s %s\n",
		r.number.Render(fmt.Sprintf("%*d", width, option)),
		swatch,
		label,
		r.muted.Render("· "+catalog.CountLabel(layers)),
	)
}
