package main

// Layout constants for the TUI
const (
	// Header and footer dimensions
	headerRows = 3 // title, pair/stats line, separator
	footerRows = 1

	// Panel layout
	panelBorderRows = 2 // Rows consumed by panel borders (top + bottom)
	panelBorderCols = 2

	// Line number formatting
	lineNumWidth = 5 // Width in characters for the line number gutter

	// Draft labels on the pair line share the width left after the stats
	minLabelWidth      = 12
	pairLineStatsWidth = 36

	// Rows kept above a change when jumping to it
	changeLeadRows = 2

	// Help modal dimensions
	helpModalMaxWidth  = 64
	helpModalMaxHeight = 32
	helpModalPadding   = 4 // Padding around help modal (2 on each side)
)

// contentHeight calculates the height available between header and footer
func contentHeight(totalHeight int) int {
	return max(1, totalHeight-headerRows-footerRows)
}

// panelContentHeight calculates the content height inside a panel (accounting for borders)
func panelContentHeight(panelHeight int) int {
	return max(0, panelHeight-panelBorderRows)
}

// sideBySideWidths splits the total width between the left and right panels
func sideBySideWidths(totalWidth int) (left, right int) {
	left = totalWidth / 2
	return left, totalWidth - left
}

// helpModalDimensions calculates the dimensions for the help modal
func helpModalDimensions(screenWidth, screenHeight int) (width, height int) {
	width = min(helpModalMaxWidth, screenWidth-helpModalPadding)
	height = min(helpModalMaxHeight, screenHeight-helpModalPadding)
	return width, height
}
