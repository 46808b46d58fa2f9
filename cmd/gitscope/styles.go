// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across all CLI
// output. Designed for dark terminal backgrounds with good contrast.
const (
	// ColorPrimary is purple - used for titles, headers, and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles, secondary text, and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for resolved values and positive outcomes.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings and attention-needed items.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for keys, paths, and interactive elements.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Base styles - reusable lipgloss styles built from the color palette.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and de-emphasized notes.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// KeyStyle is for field names and configuration keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// ValueStyle is for resolved values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error prefixes.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning prefixes.
	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)
)
