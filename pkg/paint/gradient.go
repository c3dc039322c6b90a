// SPDX-License-Identifier: MPL-2.0

package paint

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// GradientLinear is the default gradient kind.
	GradientLinear GradientKind = "Linear"
	// GradientRadial radiates from a center point.
	GradientRadial GradientKind = "Radial"
	// GradientAngular sweeps around a center point.
	GradientAngular GradientKind = "Angular"
)

// ErrInvalidGradientKind is the sentinel error wrapped by InvalidGradientKindError.
var ErrInvalidGradientKind = errors.New("invalid gradient kind")

type (
	// GradientKind is the canonical gradient shape.
	GradientKind string

	// InvalidGradientKindError is returned when a GradientKind value is not recognized.
	// It wraps ErrInvalidGradientKind for errors.Is() compatibility.
	InvalidGradientKindError struct {
		Value GradientKind
	}

	// StopSpec is a gradient stop as the host stores it.
	StopSpec struct {
		Color    ColorValue `json:"color"`
		Position float64    `json:"position"`
	}

	// GradientSpec is a gradient as the host stores it. GradientType is a
	// host tag: "Linear", "Radial", "Angular" or their numeric forms "0",
	// "1", "2".
	GradientSpec struct {
		GradientType string     `json:"gradientType,omitempty"`
		Stops        []StopSpec `json:"stops"`
	}

	// Stop is a normalized gradient stop.
	Stop struct {
		Color    Color   `json:"color" yaml:"color" toml:"color"`
		Position float64 `json:"position" yaml:"position" toml:"position"`
	}

	// Gradient is the canonical form of a GradientSpec. Stop order is
	// significant.
	Gradient struct {
		Kind  GradientKind `json:"kind" yaml:"kind" toml:"kind"`
		Stops []Stop       `json:"stops" yaml:"stops" toml:"stops"`
	}
)

// String returns the string representation of the GradientKind.
func (k GradientKind) String() string { return string(k) }

// IsValid returns whether the GradientKind is one of the defined kinds,
// and a list of validation errors if it is not.
func (k GradientKind) IsValid() (bool, []error) {
	switch k {
	case GradientLinear, GradientRadial, GradientAngular:
		return true, nil
	default:
		return false, []error{&InvalidGradientKindError{Value: k}}
	}
}

// Error implements the error interface for InvalidGradientKindError.
func (e *InvalidGradientKindError) Error() string {
	return fmt.Sprintf("invalid gradient kind %q (valid: Linear, Radial, Angular)", e.Value)
}

// Unwrap returns ErrInvalidGradientKind for errors.Is() compatibility.
func (e *InvalidGradientKindError) Unwrap() error { return ErrInvalidGradientKind }

// ParseGradientKind maps a host gradient tag to a GradientKind.
// Unknown tags default to GradientLinear.
func ParseGradientKind(tag string) GradientKind {
	switch strings.TrimSpace(tag) {
	case "Radial", "1":
		return GradientRadial
	case "Angular", "2":
		return GradientAngular
	default:
		return GradientLinear
	}
}

// NormalizeGradient converts a host gradient into its canonical form.
// Stops whose color does not normalize are dropped. It reports false when
// spec is nil or no stop survives.
func NormalizeGradient(spec *GradientSpec) (Gradient, bool) {
	if spec == nil || len(spec.Stops) == 0 {
		return Gradient{}, false
	}

	stops := make([]Stop, 0, len(spec.Stops))
	for i, s := range spec.Stops {
		c, ok := NormalizeColor(s.Color)
		if !ok {
			slog.Debug("dropping gradient stop without color", "stop", i)
			continue
		}
		stops = append(stops, Stop{Color: c, Position: s.Position})
	}
	if len(stops) == 0 {
		return Gradient{}, false
	}

	return Gradient{Kind: ParseGradientKind(spec.GradientType), Stops: stops}, true
}

// At samples the gradient at position t by interpolating linearly between
// the two stops that bracket t. A single-stop gradient is that stop's color
// everywhere. Stops whose Hex is not a parseable color are returned as-is
// instead of being blended. It reports false for a gradient without stops.
func (g Gradient) At(t float64) (Color, bool) {
	switch len(g.Stops) {
	case 0:
		return Color{}, false
	case 1:
		return g.Stops[0].Color, true
	}

	left, right := g.Stops[0], g.Stops[len(g.Stops)-1]
	for i := 0; i < len(g.Stops)-1; i++ {
		if t >= g.Stops[i].Position && t <= g.Stops[i+1].Position {
			left, right = g.Stops[i], g.Stops[i+1]
			break
		}
	}

	var f float64
	if span := right.Position - left.Position; span > 0 {
		f = (t - left.Position) / span
	}
	f = max(0, min(1, f))

	lc, lerr := colorful.Hex(left.Color.Hex)
	rc, rerr := colorful.Hex(right.Color.Hex)
	if lerr != nil || rerr != nil {
		return left.Color, true
	}

	blended := lc.BlendRgb(rc, f).Clamped()
	return Color{
		Hex:     strings.ToUpper(blended.Hex()),
		Opacity: roundOpacity(left.Color.Opacity + (right.Color.Opacity-left.Color.Opacity)*f),
	}, true
}

// Samples returns n evenly spaced colors across [0,1]. It returns nil when
// n < 1 or the gradient has no stops.
func (g Gradient) Samples(n int) []Color {
	if n < 1 || len(g.Stops) == 0 {
		return nil
	}
	out := make([]Color, 0, n)
	for i := range n {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c, _ := g.At(t)
		out = append(out, c)
	}
	return out
}
