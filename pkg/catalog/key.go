// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"strconv"
	"strings"

	"github.com/selcolors/selcolors/pkg/paint"
)

type (
	// SolidKey is the identity of a solid catalog entry. Opacity is compared
	// in hundredths so rounding noise cannot split an entry.
	SolidKey struct {
		Hex         string
		Centi       int
		IsSwatchRef bool
		SwatchName  string
	}

	// GradientKey is the identity of a gradient catalog entry. Stops is an
	// order-preserving encoding of every stop's color, opacity and position.
	GradientKey struct {
		Kind  paint.GradientKind
		Stops string
	}
)

func solidKey(c paint.Color, swatchName string, isRef bool) SolidKey {
	k := SolidKey{Hex: c.Hex, Centi: c.Centi(), IsSwatchRef: isRef}
	if isRef {
		k.SwatchName = swatchName
	}
	return k
}

func gradientKey(g paint.Gradient) GradientKey {
	var b strings.Builder
	for i, s := range g.Stops {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(s.Color.Hex)
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(s.Color.Centi()))
		b.WriteByte('@')
		b.WriteString(strconv.FormatFloat(s.Position, 'g', -1, 64))
	}
	return GradientKey{Kind: g.Kind, Stops: b.String()}
}
