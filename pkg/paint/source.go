// SPDX-License-Identifier: MPL-2.0

package paint

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FillColor marks a solid paint source.
	FillColor FillType = "Color"
	// FillGradient marks a gradient paint source.
	FillGradient FillType = "Gradient"
	// FillPattern marks an image pattern; patterns carry no collectable color.
	FillPattern FillType = "Pattern"

	// SourceSolid is a paint source that carries a single color.
	SourceSolid SourceKind = iota + 1
	// SourceGradient is a paint source that carries a gradient.
	SourceGradient
)

var (
	// ErrInvalidFillType is the sentinel error wrapped by InvalidFillTypeError.
	ErrInvalidFillType = errors.New("invalid fill type")
	// ErrInvalidSwatchID is the sentinel error wrapped by InvalidSwatchIDError.
	ErrInvalidSwatchID = errors.New("invalid swatch id")
)

type (
	// FillType is the host tag of a paint source. Hosts use either names
	// ("Color", "Gradient", "Pattern") or their numeric forms ("0", "1", "2").
	FillType string

	// InvalidFillTypeError is returned when a FillType value is not recognized.
	// It wraps ErrInvalidFillType for errors.Is() compatibility.
	InvalidFillTypeError struct {
		Value FillType
	}

	// SourceKind is the collectable kind of a paint source.
	SourceKind int

	// SwatchID identifies a document swatch. The zero value means "no swatch".
	SwatchID string

	// InvalidSwatchIDError is returned when a non-empty SwatchID is
	// whitespace-only.
	InvalidSwatchIDError struct {
		Value SwatchID
	}

	// Source is a single fill or border attached to a layer.
	Source struct {
		// Enabled reports whether the host renders this paint. Disabled
		// sources never contribute to a catalog.
		Enabled bool `json:"enabled"`
		// FillType selects between the solid and gradient payloads.
		FillType FillType `json:"fillType,omitempty"`
		// Color is the raw solid color.
		Color ColorValue `json:"color,omitempty"`
		// Swatch links the solid color to a document swatch, when the host
		// exposes that link.
		Swatch SwatchID `json:"swatchId,omitempty"`
		// Gradient is the raw gradient payload.
		Gradient *GradientSpec `json:"gradient,omitempty"`
	}
)

// String returns the string representation of the FillType.
func (f FillType) String() string { return string(f) }

// Kind maps the host tag to a collectable kind. The zero value is treated
// as a solid color. Patterns and unknown tags report false.
func (f FillType) Kind() (SourceKind, bool) {
	switch strings.TrimSpace(string(f)) {
	case "", "Color", "0":
		return SourceSolid, true
	case "Gradient", "1":
		return SourceGradient, true
	default:
		return 0, false
	}
}

// IsValid returns whether the FillType is a known host tag,
// and a list of validation errors if it is not.
func (f FillType) IsValid() (bool, []error) {
	switch strings.TrimSpace(string(f)) {
	case "", "Color", "0", "Gradient", "1", "Pattern", "2":
		return true, nil
	default:
		return false, []error{&InvalidFillTypeError{Value: f}}
	}
}

// Error implements the error interface for InvalidFillTypeError.
func (e *InvalidFillTypeError) Error() string {
	return fmt.Sprintf("invalid fill type %q (valid: Color, Gradient, Pattern, 0, 1, 2)", e.Value)
}

// Unwrap returns ErrInvalidFillType for errors.Is() compatibility.
func (e *InvalidFillTypeError) Unwrap() error { return ErrInvalidFillType }

// String returns the string representation of the SourceKind.
func (k SourceKind) String() string {
	switch k {
	case SourceSolid:
		return "solid"
	case SourceGradient:
		return "gradient"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// String returns the string representation of the SwatchID.
func (id SwatchID) String() string { return string(id) }

// IsValid returns whether the SwatchID is valid.
// The zero value ("") is valid (means "no swatch").
// Non-zero values must not be whitespace-only.
func (id SwatchID) IsValid() (bool, []error) {
	if id != "" && strings.TrimSpace(string(id)) == "" {
		return false, []error{&InvalidSwatchIDError{Value: id}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSwatchIDError.
func (e *InvalidSwatchIDError) Error() string {
	return fmt.Sprintf("invalid swatch id %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidSwatchID for errors.Is() compatibility.
func (e *InvalidSwatchIDError) Unwrap() error { return ErrInvalidSwatchID }

// SwatchRef reports the swatch this source is linked to, if the host
// exposed one.
func (s Source) SwatchRef() (SwatchID, bool) {
	if strings.TrimSpace(string(s.Swatch)) == "" {
		return "", false
	}
	return s.Swatch, true
}
