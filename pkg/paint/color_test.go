// SPDX-License-Identifier: MPL-2.0

package paint

import (
	"math"
	"testing"
)

func TestNormalizeColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   ColorValue
		wantOK  bool
		hex     string
		opacity float64
	}{
		{name: "empty", input: "", wantOK: false},
		{name: "rgb lowercase", input: "#a1b2c3", wantOK: true, hex: "#A1B2C3", opacity: 1},
		{name: "rgba opaque", input: "#112233FF", wantOK: true, hex: "#112233", opacity: 1},
		{name: "rgba half", input: "#11223380", wantOK: true, hex: "#112233", opacity: 0.5},
		{name: "rgba transparent", input: "#11223300", wantOK: true, hex: "#112233", opacity: 0},
		{name: "rgba lowercase alpha", input: "#abcdef1a", wantOK: true, hex: "#ABCDEF", opacity: 0.1},
		{name: "bad alpha falls back", input: "#112233ZZ", wantOK: true, hex: "#112233ZZ", opacity: 1},
		{name: "short hex falls back", input: "#abc", wantOK: true, hex: "#ABC", opacity: 1},
		{name: "opaque token", input: "rgba(1,2,3,0.5)", wantOK: true, hex: "RGBA(1,2,3,0.5)", opacity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NormalizeColor(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeColor(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Hex != tt.hex {
				t.Errorf("Hex = %q, want %q", got.Hex, tt.hex)
			}
			if math.Abs(got.Opacity-tt.opacity) > 0.01 {
				t.Errorf("Opacity = %v, want %v", got.Opacity, tt.opacity)
			}
		})
	}
}

func TestNormalizeColor_OpacityHasTwoDecimals(t *testing.T) {
	t.Parallel()

	for alpha := range 256 {
		raw := ColorValue("#000000" + hexByte(alpha))
		c, ok := NormalizeColor(raw)
		if !ok {
			t.Fatalf("NormalizeColor(%q) reported no color", raw)
		}
		if scaled := c.Opacity * 100; math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Fatalf("NormalizeColor(%q).Opacity = %v, not rounded to 2 decimals", raw, c.Opacity)
		}
	}
}

func TestColor_String(t *testing.T) {
	t.Parallel()

	if got := (Color{Hex: "#FF0000", Opacity: 1}).String(); got != "#FF0000" {
		t.Errorf("opaque String() = %q", got)
	}
	if got := (Color{Hex: "#FF0000", Opacity: 0.5}).String(); got != "#FF0000 (50%)" {
		t.Errorf("translucent String() = %q", got)
	}
}

func TestColor_IsHex(t *testing.T) {
	t.Parallel()

	if !(Color{Hex: "#00FF00"}).IsHex() {
		t.Error("#00FF00 should be hex")
	}
	if (Color{Hex: "RED"}).IsHex() {
		t.Error("RED should not be hex")
	}
}

func hexByte(b int) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}
