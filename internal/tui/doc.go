// SPDX-License-Identifier: MPL-2.0

// Package tui renders color catalogs for the terminal and lets the user pick
// a catalog option interactively. Prompts are built on charmbracelet/huh and
// rendering on charmbracelet/lipgloss.
package tui
