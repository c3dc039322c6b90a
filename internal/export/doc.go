// SPDX-License-Identifier: MPL-2.0

// Package export serializes a color catalog as JSON, YAML, TOML or CUE.
package export
