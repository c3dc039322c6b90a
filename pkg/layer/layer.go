// SPDX-License-Identifier: MPL-2.0

package layer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/selcolors/selcolors/pkg/paint"
)

const (
	// TypeText is a text layer. Only text layers carry a text color.
	TypeText Type = "Text"
	// TypeShape is a vector shape layer.
	TypeShape Type = "Shape"
	// TypeGroup groups child layers.
	TypeGroup Type = "Group"
	// TypeArtboard is a top-level artboard.
	TypeArtboard Type = "Artboard"
	// TypeImage is a bitmap layer.
	TypeImage Type = "Image"
	// TypeSymbol is a symbol instance.
	TypeSymbol Type = "Symbol"
)

var (
	// ErrInvalidID is the sentinel error wrapped by InvalidIDError.
	ErrInvalidID = errors.New("invalid layer id")
	// ErrInvalidType is the sentinel error wrapped by InvalidTypeError.
	ErrInvalidType = errors.New("invalid layer type")
)

type (
	// ID is a stable, host-assigned layer identifier.
	ID string

	// InvalidIDError is returned when an ID is empty or whitespace-only.
	// It wraps ErrInvalidID for errors.Is() compatibility.
	InvalidIDError struct {
		Value ID
	}

	// Type is the host layer kind.
	Type string

	// InvalidTypeError is returned when a Type value is not recognized.
	// It wraps ErrInvalidType for errors.Is() compatibility.
	InvalidTypeError struct {
		Value Type
	}

	// Style holds the color-bearing attributes of a layer.
	Style struct {
		Fills     []paint.Source   `json:"fills,omitempty"`
		Borders   []paint.Source   `json:"borders,omitempty"`
		TextColor paint.ColorValue `json:"textColor,omitempty"`
		// TextColorSwatch links the text color to a document swatch.
		TextColorSwatch paint.SwatchID `json:"textColorSwatchId,omitempty"`
	}

	// Layer is a node of the host layer tree.
	Layer struct {
		ID       ID       `json:"id"`
		Name     string   `json:"name,omitempty"`
		Type     Type     `json:"type"`
		Style    Style    `json:"style"`
		Children []*Layer `json:"layers,omitempty"`
	}

	// Swatch is a named, document-level shared color.
	Swatch struct {
		ID    paint.SwatchID   `json:"id"`
		Name  string           `json:"name"`
		Color paint.ColorValue `json:"color,omitempty"`
	}
)

// String returns the string representation of the ID.
func (id ID) String() string { return string(id) }

// IsValid returns whether the ID is non-empty and not whitespace-only,
// and a list of validation errors if it is not.
func (id ID) IsValid() (bool, []error) {
	if strings.TrimSpace(string(id)) == "" {
		return false, []error{&InvalidIDError{Value: id}}
	}
	return true, nil
}

// Error implements the error interface for InvalidIDError.
func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid layer id %q: must not be empty", e.Value)
}

// Unwrap returns ErrInvalidID for errors.Is() compatibility.
func (e *InvalidIDError) Unwrap() error { return ErrInvalidID }

// String returns the string representation of the Type.
func (t Type) String() string { return string(t) }

// IsText reports whether layers of this type carry a text color.
func (t Type) IsText() bool { return t == TypeText }

// IsValid returns whether the Type is one of the defined layer kinds,
// and a list of validation errors if it is not.
func (t Type) IsValid() (bool, []error) {
	switch t {
	case TypeText, TypeShape, TypeGroup, TypeArtboard, TypeImage, TypeSymbol:
		return true, nil
	default:
		return false, []error{&InvalidTypeError{Value: t}}
	}
}

// Error implements the error interface for InvalidTypeError.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid layer type %q (valid: Text, Shape, Group, Artboard, Image, Symbol)", e.Value)
}

// Unwrap returns ErrInvalidType for errors.Is() compatibility.
func (e *InvalidTypeError) Unwrap() error { return ErrInvalidType }

// TextSwatchRef reports the swatch linked to the text color, if any.
func (s Style) TextSwatchRef() (paint.SwatchID, bool) {
	if strings.TrimSpace(string(s.TextColorSwatch)) == "" {
		return "", false
	}
	return s.TextColorSwatch, true
}

// Walk visits every non-nil layer under roots in depth-first pre-order,
// children in their given order. Returning false from fn skips the layer's
// children.
func Walk(roots []*Layer, fn func(*Layer) bool) {
	for _, l := range roots {
		if l == nil {
			continue
		}
		if fn(l) {
			Walk(l.Children, fn)
		}
	}
}
