package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help modal
func (m Model) renderHelp() string {
	if !m.showHelp {
		return ""
	}

	modalWidth, modalHeight := helpModalDimensions(m.width, m.height)
	modalStyle := lipgloss.NewStyle().
		Width(max(1, modalWidth)).
		Height(max(1, modalHeight)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Padding(1, 2)

	var content strings.Builder
	content.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	for _, section := range m.keys.FullHelp() {
		content.WriteString(helpSectionStyle.Render(section.Title))
		content.WriteString("\n")
		for _, binding := range section.Bindings {
			help := binding.Help()
			keys := helpKeyStyle.Render(fmt.Sprintf(" %-9s", help.Key))
			content.WriteString(keys + " " + helpDescStyle.Render(help.Desc) + "\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("Press ? or esc to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalStyle.Render(content.String()))
}
