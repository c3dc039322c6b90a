// SPDX-License-Identifier: MPL-2.0

// Package layer defines the host data model consumed by the color catalog:
// layers and their style attributes, document swatches, and the narrow
// Document/Host contracts through which the catalog reads the current
// selection and writes a new one.
//
// Snapshot is the in-repo Document: a decoded CUE or JSON file holding the
// layer tree, the swatch list and the selected layer ids.
package layer
