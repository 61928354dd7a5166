package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.renderHelp()
	}

	height := contentHeight(m.height)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderContent(height),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := []string{
		headerStyle.Render("nissaya_compare"),
		subtleStyle.Render(fmt.Sprintf("%d/%d drafts", m.store.Loaded(), maxDocuments)),
		viewModeIndicatorStyle.Render("[" + m.viewMode.String() + "]"),
		modeIndicatorStyle.Render("[" + m.compareMode.String() + "]"),
		subtleStyle.Render("[" + m.engine.String() + "]"),
	}
	if m.store.Comparable() {
		title = append(title, readyStyle.Render("✓ ready to compare"))
	}
	if !m.showHelp {
		title = append(title, subtleStyle.Render("Press ? for help"))
	}

	separator := headerSeparatorStyle.Render(strings.Repeat("─", max(0, m.width)))
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(title, " "), m.renderPairLine(), separator)
}

// renderPairLine shows which drafts are compared and the change summary
func (m Model) renderPairLine() string {
	if !m.store.Comparable() {
		return subtleStyle.Render("Load at least 2 drafts to compare")
	}

	pair := m.active
	if m.result != nil {
		pair = m.result.Pair
	}
	labelWidth := max(minLabelWidth, (m.width-pairLineStatsWidth)/2)
	parts := []string{
		leftLabelStyle.Render(truncateLabel(m.store.Label(pair.Left), labelWidth)),
		subtleStyle.Render("→"),
		rightLabelStyle.Render(truncateLabel(m.store.Label(pair.Right), labelWidth)),
	}
	if m.result != nil {
		parts = append(parts, m.renderStats(*m.result))
	}
	return strings.Join(parts, " ")
}

// truncateLabel shortens a draft label to width terminal cells
func truncateLabel(label string, width int) string {
	return runewidth.Truncate(label, width, "…")
}

func (m Model) renderStats(result ComparisonResult) string {
	if result.Mode == WordMode {
		return statsSubtleStyle.Render("(") +
			statsAddedStyle.Render(fmt.Sprintf("+%d", result.WordStats.AddedChars)) + " " +
			statsRemovedStyle.Render(fmt.Sprintf("-%d", result.WordStats.RemovedChars)) +
			statsSubtleStyle.Render(" chars)")
	}

	stats := result.Stats
	if !stats.HasChanges() {
		return statsSubtleStyle.Render("(identical)")
	}

	summary := statsSubtleStyle.Render("(") +
		statsAddedStyle.Render(fmt.Sprintf("+%d", stats.Added)) + " " +
		statsRemovedStyle.Render(fmt.Sprintf("-%d", stats.Removed)) + " " +
		statsModifiedStyle.Render(fmt.Sprintf("~%d", stats.Modified)) +
		statsSubtleStyle.Render(")")

	if index, _, ok := m.nav.Current(); ok {
		summary += statsSubtleStyle.Render(fmt.Sprintf(" change %d/%d", index+1, m.nav.Total()))
	}
	return summary
}

func (m Model) renderContent(height int) string {
	if m.result == nil {
		return m.renderPanel(m.width, height, []string{panelInfoStyle.Render(m.emptyMessage())}, 0, true)
	}

	if m.result.Mode == WordMode {
		lines := m.renderWordLines(*m.result)
		return m.renderPanel(m.width, height, lines, m.scroll, true)
	}

	if m.viewMode == SideBySideView {
		leftWidth, rightWidth := sideBySideWidths(m.width)
		left := m.renderPanel(leftWidth, height, m.renderLines(m.result.Lines.Left, m.result.Pair.Left), m.leftScroll, false)
		right := m.renderPanel(rightWidth, height, m.renderLines(m.result.Lines.Right, m.result.Pair.Right), m.rightScroll, false)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	return m.renderPanel(m.width, height, m.renderLines(m.result.Lines.Inline, m.result.Pair.Right), m.scroll, true)
}

func (m Model) emptyMessage() string {
	switch {
	case m.store.Loaded() == 0:
		return "No drafts loaded. Pass up to 4 .txt files (or REV:path) on the command line."
	case !m.store.Comparable():
		return "Load at least 2 drafts to compare"
	default:
		return "Comparing..."
	}
}

// renderLines renders numbered lines, marking the lines of the current
// change group in the gutter.
func (m Model) renderLines(lines []ReconciledLine, slot int) []string {
	currentGroup := 0
	if index, _, ok := m.nav.Current(); ok {
		currentGroup = index + 1
	}

	doc, _ := m.store.Get(slot)
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		prefix, prefixStyle, contentStyle := kindStyles(line.Kind)

		gutter := " "
		if currentGroup != 0 && line.ChangeGroup == currentGroup {
			gutter = currentChangeGutterStyle.Render("▌")
		}

		num := diffLineNumStyle.Render(fmt.Sprintf("%*d", lineNumWidth, line.LineNumber))

		content := line.Content
		if content == "" {
			content = " "
		}
		if line.Kind == SegmentUnchanged {
			content = m.highlighter.Highlight(content, doc.Name)
		} else {
			content = contentStyle.Render(content)
		}

		rendered = append(rendered, gutter+num+" "+prefixStyle.Render(prefix)+" "+content)
	}
	return rendered
}

// wordModeLines splits a word edit script into display lines, each a list
// of styled fragments.
func wordModeLines(segments []DiffSegment) [][]DiffSegment {
	lines := [][]DiffSegment{nil}
	for _, segment := range segments {
		parts := strings.Split(segment.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], DiffSegment{Text: part, Kind: segment.Kind})
			}
		}
	}
	if len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (m Model) renderWordLines(result ComparisonResult) []string {
	lines := wordModeLines(result.Segments)
	rendered := make([]string, 0, len(lines))
	for _, fragments := range lines {
		var b strings.Builder
		for _, fragment := range fragments {
			_, _, style := kindStyles(fragment.Kind)
			b.WriteString(style.Render(fragment.Text))
		}
		rendered = append(rendered, b.String())
	}
	return rendered
}

// renderPanel draws the visible window of lines inside a bordered panel
func (m Model) renderPanel(width, height int, lines []string, scroll int, active bool) string {
	internalHeight := panelContentHeight(height)
	start, end := visibleRange(scroll, internalHeight, len(lines))

	visible := make([]string, 0, internalHeight)
	visible = append(visible, lines[start:end]...)
	for len(visible) < internalHeight {
		visible = append(visible, "")
	}

	innerWidth := max(0, width-panelBorderCols)
	panelStyle := panelBaseStyle.
		Width(innerWidth).
		Height(internalHeight).
		MaxWidth(width).
		MaxHeight(height)
	if active {
		panelStyle = panelStyle.BorderForeground(colorBlue)
	}

	clipped := make([]string, len(visible))
	for i, line := range visible {
		clipped[i] = lipgloss.NewStyle().MaxWidth(innerWidth).Render(line)
	}
	return panelStyle.Render(strings.Join(clipped, "\n"))
}

func (m Model) renderFooter() string {
	if m.prompting {
		return m.renderPrompt()
	}

	if m.err != nil {
		msg := "Error: " + m.err.Error()
		if isDiffError(m.err) && m.result != nil {
			msg += " (showing previous comparison)"
		}
		return errorStyle.Render(msg)
	}

	help := []string{
		footerKeyStyle.Render("[n/N]") + " Change",
		footerKeyStyle.Render("[↑↓]") + " Scroll",
		footerKeyStyle.Render("[o]") + " Load",
		footerKeyStyle.Render("[tab/a/b]") + " Drafts",
		footerKeyStyle.Render("[v]") + " View",
		footerKeyStyle.Render("[w]") + " Words",
		footerKeyStyle.Render("[e]") + " Export",
		footerKeyStyle.Render("[q]") + " Quit",
	}
	if m.status != "" {
		help = append(help, footerStatusStyle.Render(m.status))
	}
	return footerBaseStyle.Render(strings.Join(help, " • "))
}

// renderPrompt shows the load prompt with its target slot
func (m Model) renderPrompt() string {
	hints := make([]string, 0, 3)
	for _, binding := range m.keys.PromptHelp() {
		help := binding.Help()
		hints = append(hints, footerKeyStyle.Render("["+help.Key+"]")+" "+help.Desc)
	}
	label := footerKeyStyle.Render(fmt.Sprintf("Load into Draft %d:", m.promptSlot+1))
	return footerBaseStyle.Render(label + " " + m.prompt.View() + "  " + strings.Join(hints, " • "))
}
