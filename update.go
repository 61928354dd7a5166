package main

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// errorDisplayTime is how long an error stays in the footer
const errorDisplayTime = 5 * time.Second

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case documentLoadedMsg:
		return m.handleDocumentLoaded(msg)

	case documentLoadFailedMsg:
		if !m.isCurrentLoad(msg.slot, msg.generation) {
			return m, nil
		}
		m.logger.Error("load draft", msg.err, map[string]any{
			"slot":   msg.slot + 1,
			"source": msg.source,
		})
		cmd := m.showError(msg.err)
		return m, cmd

	case compareDoneMsg:
		if !m.comparer.IsCurrent(msg.generation) {
			m.logger.Debug("discard stale comparison", map[string]any{
				"generation": msg.generation,
			})
			return m, nil
		}
		result := msg.result
		m.result = &result
		m.nav.Reset(result.Lines.ChangeIndex)
		m.resetScroll()
		m.logger.Info("comparison ready", map[string]any{
			"left":     result.Pair.Left + 1,
			"right":    result.Pair.Right + 1,
			"mode":     result.Mode.String(),
			"changes":  result.Stats.TotalChanges,
			"added":    result.Stats.Added,
			"removed":  result.Stats.Removed,
			"modified": result.Stats.Modified,
		})
		return m, nil

	case compareFailedMsg:
		if !m.comparer.IsCurrent(msg.generation) {
			return m, nil
		}
		m.logger.Error("compare drafts", msg.err, nil)
		cmd := m.showError(msg.err)
		return m, cmd

	case FSChangeMsg:
		var cmds []tea.Cmd
		if slot, ok := m.store.SlotForSource(msg.source); ok {
			m.logger.Info("draft changed on disk", map[string]any{
				"slot":   slot + 1,
				"source": msg.source,
			})
			cmds = append(cmds, m.LoadDocument(slot, msg.source))
		}
		if m.watcher != nil {
			cmds = append(cmds, m.watcher.WaitForChange())
		}
		return m, tea.Batch(cmds...)

	case exportDoneMsg:
		m.status = "Exported " + msg.path
		m.logger.Info("comparison exported", map[string]any{"path": msg.path})
		return m, nil

	case errMsg:
		m.logger.Error("background error", msg.err, nil)
		cmd := m.showError(msg.err)
		return m, cmd

	case clearErrorMsg:
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompting {
		return m.handlePromptKey(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Close):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.NextChange):
		m.moveToChange(m.nav.Next())

	case key.Matches(msg, m.keys.PrevChange):
		m.moveToChange(m.nav.Previous())

	case key.Matches(msg, m.keys.JumpChange):
		n, _ := strconv.Atoi(msg.String())
		m.moveToChange(m.nav.GoTo(n - 1))

	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)

	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.pageSize())

	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.pageSize())

	case key.Matches(msg, m.keys.Top):
		m.resetScroll()

	case key.Matches(msg, m.keys.Bottom):
		m.scrollBy(m.totalRows())

	case key.Matches(msg, m.keys.ToggleView):
		if m.viewMode == InlineView {
			m.viewMode = SideBySideView
		} else {
			m.viewMode = InlineView
		}
		m.realignToCurrentChange()

	case key.Matches(msg, m.keys.ToggleMode):
		if m.compareMode == LineMode {
			m.compareMode = WordMode
		} else {
			m.compareMode = LineMode
		}
		cmd := m.requestCompare()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleEngine):
		if m.engine == EngineDifflib {
			m.engine = EngineDMP
		} else {
			m.engine = EngineDifflib
		}
		cmd := m.requestCompare()
		return m, cmd

	case key.Matches(msg, m.keys.LoadDraft):
		cmd := m.openPrompt()
		return m, cmd

	case key.Matches(msg, m.keys.NextPair):
		cmd := m.selectPair(m.nextAdjacentPair())
		return m, cmd

	case key.Matches(msg, m.keys.CycleLeft):
		docs := m.store.List()
		cmd := m.selectPair(m.active.WithLeft(nextLoadedSlot(docs, m.active.Left, m.active.Right)))
		return m, cmd

	case key.Matches(msg, m.keys.CycleRight):
		docs := m.store.List()
		cmd := m.selectPair(m.active.WithRight(nextLoadedSlot(docs, m.active.Right, m.active.Left)))
		return m, cmd

	case key.Matches(msg, m.keys.ClearRight):
		cmd := m.clearSlot(m.active.Right)
		return m, cmd

	case key.Matches(msg, m.keys.ResetAll):
		cmd := m.resetDocuments()
		return m, cmd

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCurrent()
	}

	return m, nil
}

// openPrompt asks for a draft path, targeting the first empty slot or the
// right draft of the active pair when every slot is filled.
func (m *Model) openPrompt() tea.Cmd {
	slot, ok := m.store.FirstEmptySlot()
	if !ok {
		slot = m.active.Right
	}
	m.promptSlot = slot
	m.prompting = true
	m.prompt.SetValue("")
	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PromptQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.PromptCancel):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, m.keys.PromptSlot):
		m.promptSlot = (m.promptSlot + 1) % maxDocuments
		return m, nil

	case key.Matches(msg, m.keys.PromptSubmit):
		source := strings.TrimSpace(m.prompt.Value())
		slot := m.promptSlot
		m.closePrompt()
		if source == "" {
			return m, nil
		}
		m.status = "Loading " + source
		m.logger.Debug("load requested", map[string]any{
			"slot":   slot + 1,
			"source": source,
		})
		return m, m.LoadDocument(slot, source)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) handleDocumentLoaded(msg documentLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.isCurrentLoad(msg.slot, msg.generation) {
		m.logger.Debug("discard load for cleared slot", map[string]any{
			"slot":   msg.slot + 1,
			"source": msg.source,
		})
		return m, nil
	}
	previous, _ := m.store.Get(msg.slot)
	if err := m.store.Load(msg.slot, msg.content, msg.name, msg.source); err != nil {
		cmd := m.showError(err)
		return m, cmd
	}
	if previous.Source != msg.source {
		m.unwatchUnused(previous.Source)
	}

	if m.watcher != nil && !parseDocumentSource(msg.source, m.loaderDir()).isRevision() {
		if err := m.watcher.Watch(msg.source, absPath(msg.source, m.loaderDir())); err != nil {
			m.logger.Warn("watch draft", map[string]any{
				"source": msg.source,
				"error":  err.Error(),
			})
		}
	}

	m.logger.Info("draft loaded", map[string]any{
		"slot": msg.slot + 1,
		"name": msg.name,
	})
	cmd := m.requestCompare()
	return m, cmd
}

func (m *Model) selectPair(pair Pair) tea.Cmd {
	if pair == m.active {
		return nil
	}
	m.active = pair
	return m.requestCompare()
}

// nextAdjacentPair cycles through consecutive loaded pairs
func (m Model) nextAdjacentPair() Pair {
	pairs := AdjacentPairs(m.store.List())
	if len(pairs) == 0 {
		return m.active
	}
	for i, pair := range pairs {
		if pair == m.active {
			return pairs[(i+1)%len(pairs)]
		}
	}
	return pairs[0]
}

func (m *Model) clearSlot(slot int) tea.Cmd {
	doc, err := m.store.Get(slot)
	if err != nil || !doc.Loaded() {
		return nil
	}
	_ = m.store.Clear(slot)
	m.loadGen[slot]++
	m.unwatchUnused(doc.Source)
	m.logger.Info("draft unloaded", map[string]any{"slot": slot + 1})
	return m.requestCompare()
}

// unwatchUnused stops watching source once no slot holds it
func (m *Model) unwatchUnused(source string) {
	if m.watcher == nil || source == "" {
		return
	}
	if _, ok := m.store.SlotForSource(source); ok {
		return
	}
	m.watcher.Unwatch(source)
}

func (m *Model) resetDocuments() tea.Cmd {
	if m.watcher != nil {
		for _, doc := range m.store.List() {
			if doc.Source != "" {
				m.watcher.Unwatch(doc.Source)
			}
		}
	}
	m.store.Reset()
	for slot := range m.loadGen {
		m.loadGen[slot]++
	}
	m.active = DefaultPair
	m.status = ""
	return m.requestCompare()
}

func (m Model) exportCurrent() tea.Cmd {
	if m.result == nil {
		return nil
	}
	result := *m.result
	left, _ := m.store.Get(result.Pair.Left)
	right, _ := m.store.Get(result.Pair.Right)
	dir := m.exportDir

	return func() tea.Msg {
		path, err := ExportComparison(dir, result, left, right)
		if err != nil {
			return errMsg{err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m *Model) showError(err error) tea.Cmd {
	m.err = err
	return tea.Tick(errorDisplayTime, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

func (m Model) loaderDir() string {
	if m.loader == nil {
		return ""
	}
	return m.loader.cwd
}

// isDiffError reports whether err came from a failed comparison
func isDiffError(err error) bool {
	var diffErr *DiffError
	return errors.As(err, &diffErr)
}

// Scrolling

// moveToChange scrolls so the change starting at inline line is visible
func (m *Model) moveToChange(line int, ok bool) {
	if !ok || m.result == nil {
		return
	}
	m.scrollToInlineLine(line)
}

func (m *Model) realignToCurrentChange() {
	if _, line, ok := m.nav.Current(); ok {
		m.scrollToInlineLine(line)
		return
	}
	m.clampScroll()
}

// scrollToInlineLine positions every panel on the inline line number line.
// Side-by-side panels scroll to the matching row of their own numbering.
func (m *Model) scrollToInlineLine(line int) {
	inline := m.result.Lines.Inline
	leftRow, rightRow := panelRowsForInlineLine(inline, line)

	m.scroll = line - 1 - changeLeadRows
	m.leftScroll = leftRow - changeLeadRows
	m.rightScroll = rightRow - changeLeadRows
	m.clampScroll()
}

// panelRowsForInlineLine returns the zero-based left and right panel rows
// that line up with inline line number line.
func panelRowsForInlineLine(inline []ReconciledLine, line int) (leftRow, rightRow int) {
	for _, l := range inline {
		if l.LineNumber >= line {
			break
		}
		if l.Kind != SegmentAdded {
			leftRow++
		}
		if l.Kind != SegmentRemoved {
			rightRow++
		}
	}
	return leftRow, rightRow
}

func (m *Model) scrollBy(delta int) {
	m.scroll += delta
	m.leftScroll += delta
	m.rightScroll += delta
	m.clampScroll()
}

func (m *Model) resetScroll() {
	m.scroll = 0
	m.leftScroll = 0
	m.rightScroll = 0
}

func (m *Model) clampScroll() {
	rows := m.pageSize()
	m.scroll = clamp(m.scroll, 0, max(0, m.totalRows()-rows))
	if m.result != nil {
		m.leftScroll = clamp(m.leftScroll, 0, max(0, len(m.result.Lines.Left)-rows))
		m.rightScroll = clamp(m.rightScroll, 0, max(0, len(m.result.Lines.Right)-rows))
	} else {
		m.leftScroll = 0
		m.rightScroll = 0
	}
}

// pageSize is the number of content rows inside a panel
func (m Model) pageSize() int {
	return max(1, panelContentHeight(contentHeight(m.height)))
}

// totalRows is the number of rows the current view can scroll through
func (m Model) totalRows() int {
	if m.result == nil {
		return 0
	}
	if m.result.Mode == WordMode {
		return len(wordModeLines(m.result.Segments))
	}
	if m.viewMode == SideBySideView {
		return max(len(m.result.Lines.Left), len(m.result.Lines.Right))
	}
	return len(m.result.Lines.Inline)
}
