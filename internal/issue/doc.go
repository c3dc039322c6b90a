// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown issue
// pages that the CLI renders with glamour when a command fails.
package issue
