// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple, used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorSuccess is green, used for completed actions.
	ColorSuccess = lipgloss.Color("#10B981")
	// ColorError is red, used for failures.
	ColorError = lipgloss.Color("#EF4444")
	// ColorWarning is amber, used for statuses that need attention.
	ColorWarning = lipgloss.Color("#F59E0B")
	// ColorHighlight is blue, used for keys, paths and commands.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary text and placeholders.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error headers.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for statuses such as an empty selection.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// KeyStyle is for config keys, paths and command names.
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
