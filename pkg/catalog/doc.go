// SPDX-License-Identifier: MPL-2.0

// Package catalog collects the colors and gradients used by a layer
// selection, deduplicates them by canonical identity, and orders them for
// interactive picking.
//
// A pass runs Collect (or CollectDocument) over the selected layers, then
// Build to produce an immutable Catalog. Resolve maps a picked option back to
// the layers that use it and selects them in the document. Session ties the
// pieces to a Host and recollects whenever the selection changes.
package catalog
