// SPDX-License-Identifier: MPL-2.0

package paint

import (
	"errors"
	"testing"
)

func TestParseGradientKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want GradientKind
	}{
		{"", GradientLinear},
		{"Linear", GradientLinear},
		{"0", GradientLinear},
		{"Radial", GradientRadial},
		{"1", GradientRadial},
		{"Angular", GradientAngular},
		{"2", GradientAngular},
		{"Diamond", GradientLinear},
	}

	for _, tt := range tests {
		if got := ParseGradientKind(tt.tag); got != tt.want {
			t.Errorf("ParseGradientKind(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestGradientKind_IsValid(t *testing.T) {
	t.Parallel()

	if ok, _ := GradientRadial.IsValid(); !ok {
		t.Error("Radial should be valid")
	}
	ok, errs := GradientKind("Conic").IsValid()
	if ok {
		t.Fatal("Conic should be invalid")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidGradientKind) {
		t.Errorf("errors = %v, want ErrInvalidGradientKind", errs)
	}
}

func TestNormalizeGradient(t *testing.T) {
	t.Parallel()

	t.Run("nil spec", func(t *testing.T) {
		t.Parallel()
		if _, ok := NormalizeGradient(nil); ok {
			t.Error("expected no gradient for nil spec")
		}
	})

	t.Run("no stops", func(t *testing.T) {
		t.Parallel()
		if _, ok := NormalizeGradient(&GradientSpec{GradientType: "Radial"}); ok {
			t.Error("expected no gradient without stops")
		}
	})

	t.Run("drops stops without color", func(t *testing.T) {
		t.Parallel()

		g, ok := NormalizeGradient(&GradientSpec{
			GradientType: "2",
			Stops: []StopSpec{
				{Color: "#ff0000", Position: 0},
				{Color: "", Position: 0.5},
				{Color: "#0000ff80", Position: 1},
			},
		})
		if !ok {
			t.Fatal("expected gradient")
		}
		if g.Kind != GradientAngular {
			t.Errorf("Kind = %q, want Angular", g.Kind)
		}
		if len(g.Stops) != 2 {
			t.Fatalf("len(Stops) = %d, want 2", len(g.Stops))
		}
		if g.Stops[1].Color.Hex != "#0000FF" || g.Stops[1].Color.Opacity != 0.5 {
			t.Errorf("second stop = %+v", g.Stops[1])
		}
	})

	t.Run("all stops dropped", func(t *testing.T) {
		t.Parallel()
		if _, ok := NormalizeGradient(&GradientSpec{Stops: []StopSpec{{Position: 0}}}); ok {
			t.Error("expected no gradient when every stop is dropped")
		}
	})
}

func TestGradient_At(t *testing.T) {
	t.Parallel()

	g := Gradient{
		Kind: GradientLinear,
		Stops: []Stop{
			{Color: Color{Hex: "#000000", Opacity: 1}, Position: 0},
			{Color: Color{Hex: "#FFFFFF", Opacity: 0}, Position: 1},
		},
	}

	start, _ := g.At(0)
	if start.Hex != "#000000" || start.Opacity != 1 {
		t.Errorf("At(0) = %+v", start)
	}
	end, _ := g.At(1)
	if end.Hex != "#FFFFFF" || end.Opacity != 0 {
		t.Errorf("At(1) = %+v", end)
	}
	mid, _ := g.At(0.5)
	if mid.Opacity != 0.5 {
		t.Errorf("At(0.5).Opacity = %v, want 0.5", mid.Opacity)
	}
	if mid.Hex == "#000000" || mid.Hex == "#FFFFFF" {
		t.Errorf("At(0.5).Hex = %q, want an intermediate color", mid.Hex)
	}

	if _, ok := (Gradient{}).At(0.5); ok {
		t.Error("empty gradient should report no color")
	}

	single := Gradient{Stops: []Stop{{Color: Color{Hex: "#123456", Opacity: 1}, Position: 0.3}}}
	if c, _ := single.At(0.9); c.Hex != "#123456" {
		t.Errorf("single stop At = %q", c.Hex)
	}
}

func TestGradient_Samples(t *testing.T) {
	t.Parallel()

	g := Gradient{Stops: []Stop{
		{Color: Color{Hex: "#FF0000", Opacity: 1}, Position: 0},
		{Color: Color{Hex: "#0000FF", Opacity: 1}, Position: 1},
	}}

	samples := g.Samples(5)
	if len(samples) != 5 {
		t.Fatalf("len(Samples(5)) = %d", len(samples))
	}
	if samples[0].Hex != "#FF0000" || samples[4].Hex != "#0000FF" {
		t.Errorf("endpoints = %q, %q", samples[0].Hex, samples[4].Hex)
	}
	if g.Samples(0) != nil {
		t.Error("Samples(0) should be nil")
	}
}
