package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants for consistent theming
var (
	// Primary colors
	colorBlue   = lipgloss.Color("blue")
	colorYellow = lipgloss.Color("yellow")
	colorWhite  = lipgloss.Color("white")

	// Gray scale (for subtle elements)
	colorGray243 = lipgloss.Color("243") // Medium gray
	colorGray244 = lipgloss.Color("244") // Subtle gray
	colorGray245 = lipgloss.Color("245") // Light gray
	colorGray237 = lipgloss.Color("237") // Border gray

	// Diff colors
	colorGreen142 = lipgloss.Color("142") // Soft green (diff content)
	colorGreen86  = lipgloss.Color("86")  // Bright green (added lines)
	colorRed203   = lipgloss.Color("203") // Soft red (diff content)
	colorRed196   = lipgloss.Color("196") // Bright red (removed lines)

	// Accent colors
	colorSoftBlue75 = lipgloss.Color("75")  // Soft blue (selection)
	colorSoftYellow = lipgloss.Color("229") // Soft warm yellow
)

// Predefined styles for reuse
var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	modeIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	viewModeIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorGreen86).
				Bold(true)

	headerSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorGray237)

	subtleStyle = lipgloss.NewStyle().
			Foreground(colorGray244)

	readyStyle = lipgloss.NewStyle().
			Foreground(colorGreen86).
			Bold(true)

	// Pair labels, coloured like the panel they describe
	leftLabelStyle = lipgloss.NewStyle().
			Foreground(colorRed203).
			Bold(true)

	rightLabelStyle = lipgloss.NewStyle().
			Foreground(colorGreen142).
			Bold(true)

	// Diff styles
	diffAddedStyle = lipgloss.NewStyle().
			Foreground(colorGreen142).
			Bold(true)

	diffRemovedStyle = lipgloss.NewStyle().
				Foreground(colorRed203).
				Strikethrough(true)

	diffAddedPrefixStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")). // Vibrant bright green for + prefix
				Bold(true)

	diffRemovedPrefixStyle = lipgloss.NewStyle().
				Foreground(colorRed196).
				Bold(true)

	diffContextStyle = lipgloss.NewStyle().
				Foreground(colorGray245)

	diffLineNumStyle = lipgloss.NewStyle().
				Foreground(colorGray244)

	currentChangeGutterStyle = lipgloss.NewStyle().
					Foreground(colorSoftYellow).
					Bold(true)

	// Stats styles
	statsAddedStyle = lipgloss.NewStyle().
			Foreground(colorGreen86).
			Bold(true)

	statsRemovedStyle = lipgloss.NewStyle().
				Foreground(colorRed196).
				Bold(true)

	statsModifiedStyle = lipgloss.NewStyle().
				Foreground(colorSoftYellow).
				Bold(true)

	statsSubtleStyle = lipgloss.NewStyle().
				Foreground(colorGray244)

	// Border styles
	panelBaseStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray237)

	// Help modal styles
	helpTitleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Underline(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true).
			Width(10)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	helpSectionStyle = lipgloss.NewStyle().
				Foreground(colorSoftBlue75).
				Bold(true).
				MarginTop(1)

	// Error styles
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed203).
			Bold(true)

	panelInfoStyle = lipgloss.NewStyle().
			Foreground(colorGray243).
			Italic(true)

	footerBaseStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	footerStatusStyle = lipgloss.NewStyle().
				Foreground(colorYellow)
)

// kindStyles returns the prefix and content styles for a line kind
func kindStyles(kind SegmentKind) (prefix string, prefixStyle, contentStyle lipgloss.Style) {
	switch kind {
	case SegmentAdded:
		return "+", diffAddedPrefixStyle, diffAddedStyle
	case SegmentRemoved:
		return "-", diffRemovedPrefixStyle, diffRemovedStyle
	default:
		return " ", diffContextStyle, diffContextStyle
	}
}
