// SPDX-License-Identifier: MPL-2.0

package paint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// rgbHexLen is the length of a "#RRGGBB" value.
	rgbHexLen = 7
	// rgbaHexLen is the length of a "#RRGGBBAA" value.
	rgbaHexLen = 9
)

type (
	// ColorValue is a raw color as the host stores it: "#RRGGBB", "#RRGGBBAA",
	// or an opaque token. The zero value means "no color".
	ColorValue string

	// Color is the canonical form of a ColorValue.
	Color struct {
		// Hex is the upper-cased "#RRGGBB" value (or the upper-cased opaque
		// token when the input was not a hex color).
		Hex string `json:"hex" yaml:"hex" toml:"hex"`
		// Opacity is in [0,1], rounded to two decimals.
		Opacity float64 `json:"opacity" yaml:"opacity" toml:"opacity"`
	}
)

// String returns the string representation of the ColorValue.
func (v ColorValue) String() string { return string(v) }

// NormalizeColor converts a raw color into its canonical form.
// It reports false only for the empty value.
func NormalizeColor(v ColorValue) (Color, bool) {
	raw := string(v)
	if raw == "" {
		return Color{}, false
	}

	if strings.HasPrefix(raw, "#") {
		switch len(raw) {
		case rgbaHexLen:
			alpha, err := strconv.ParseUint(raw[rgbHexLen:], 16, 8)
			if err != nil {
				break
			}
			return Color{
				Hex:     strings.ToUpper(raw[:rgbHexLen]),
				Opacity: roundOpacity(float64(alpha) / 255),
			}, true
		case rgbHexLen:
			return Color{Hex: strings.ToUpper(raw), Opacity: 1}, true
		}
	}

	return Color{Hex: strings.ToUpper(raw), Opacity: 1}, true
}

// Centi returns the opacity in hundredths. Two colors with the same Centi
// value are equal for identity purposes.
func (c Color) Centi() int {
	return int(math.Round(c.Opacity * 100))
}

// Translucent reports whether the color has an opacity below 100%.
func (c Color) Translucent() bool {
	return c.Centi() < 100
}

// IsHex reports whether Hex is a parseable "#RRGGBB" value rather than an
// opaque fallback token.
func (c Color) IsHex() bool {
	if len(c.Hex) != rgbHexLen {
		return false
	}
	_, err := colorful.Hex(c.Hex)
	return err == nil
}

// String renders the color as "#RRGGBB", followed by " (NN%)" when the
// color is translucent.
func (c Color) String() string {
	if c.Translucent() {
		return fmt.Sprintf("%s (%d%%)", c.Hex, c.Centi())
	}
	return c.Hex
}

// roundOpacity clamps to [0,1] and rounds to two decimals.
func roundOpacity(o float64) float64 {
	o = math.Max(0, math.Min(1, o))
	return math.Round(o*100) / 100
}
