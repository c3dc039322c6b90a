// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the selcolors CLI commands.
//
// Every command reads a document snapshot (see package layer), collects the
// colors and gradients used by the selected layers and either prints the
// catalog, resolves an option back to layers, watches the snapshot for
// selection changes or exports the catalog.
package cmd
