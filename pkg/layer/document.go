// SPDX-License-Identifier: MPL-2.0

package layer

type (
	// Document is the part of a host document the catalog needs.
	Document interface {
		// SelectedLayers returns the current selection roots.
		SelectedLayers() []*Layer
		// Swatches returns the document swatch list.
		Swatches() []Swatch
		// SetSelection clears the current selection and selects layers.
		SetSelection(layers []*Layer)
	}

	// Finder is implemented by documents that can look a layer up by id
	// against their live state.
	Finder interface {
		LayerByID(id ID) (*Layer, bool)
	}

	// Host yields the active document, if there is one.
	Host interface {
		ActiveDocument() (Document, bool)
	}

	// HostFunc adapts a function to the Host interface.
	HostFunc func() (Document, bool)
)

// ActiveDocument calls f.
func (f HostFunc) ActiveDocument() (Document, bool) { return f() }
