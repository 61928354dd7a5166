package main

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoLoader = errors.New("no document loader configured")

// ViewMode selects how a line comparison is drawn
type ViewMode int

const (
	InlineView ViewMode = iota
	SideBySideView
)

// String returns the string representation of the view mode
func (v ViewMode) String() string {
	if v == SideBySideView {
		return "Side-by-side"
	}
	return "Inline"
}

// Config holds the start-up options parsed from the command line
type Config struct {
	Sources     []string
	ViewMode    ViewMode
	CompareMode CompareMode
	Engine      DiffEngine
	ExportDir   string
}

// Model holds the application state
type Model struct {
	store  DocumentStore
	active Pair

	viewMode    ViewMode
	compareMode CompareMode
	engine      DiffEngine

	// result is the last successful comparison; it stays on screen when a
	// newer comparison fails.
	result   *ComparisonResult
	nav      Navigator
	comparer Comparer

	// loadGen is bumped when a slot is cleared so loads started before the
	// clear are dropped when they finish.
	loadGen [maxDocuments]uint64

	scroll      int // inline and word views
	leftScroll  int // side-by-side left panel
	rightScroll int // side-by-side right panel

	// prompt reads a draft path while prompting is set
	prompt     textinput.Model
	prompting  bool
	promptSlot int

	width    int
	height   int
	showHelp bool
	quitting bool
	status   string
	err      error

	initialSources []string
	exportDir      string

	keys        KeyMap
	loader      *DocumentLoader
	watcher     *Watcher
	highlighter *SyntaxHighlighter
	logger      *Logger
}

// NewModel creates a new model
func NewModel(cfg Config, loader *DocumentLoader, watcher *Watcher, logger *Logger) Model {
	prompt := textinput.New()
	prompt.Placeholder = "chapter1.txt or HEAD~1:chapter1.txt"
	prompt.CharLimit = 4096

	return Model{
		prompt:         prompt,
		active:         DefaultPair,
		viewMode:       cfg.ViewMode,
		compareMode:    cfg.CompareMode,
		engine:         cfg.Engine,
		initialSources: cfg.Sources,
		exportDir:      cfg.ExportDir,
		keys:           defaultKeyMap(),
		loader:         loader,
		watcher:        watcher,
		highlighter:    NewSyntaxHighlighter(),
		logger:         logger,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.initialSources)+1)
	for slot, source := range m.initialSources {
		if slot >= maxDocuments {
			break
		}
		cmds = append(cmds, m.LoadDocument(slot, source))
	}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.WaitForChange())
	}
	return tea.Batch(cmds...)
}

// LoadDocument reads source into slot
func (m Model) LoadDocument(slot int, source string) tea.Cmd {
	loader := m.loader
	generation := m.slotGeneration(slot)
	return func() tea.Msg {
		if loader == nil {
			return documentLoadFailedMsg{slot: slot, generation: generation, source: source, err: errNoLoader}
		}
		content, name, err := loader.Load(source)
		if err != nil {
			return documentLoadFailedMsg{slot: slot, generation: generation, source: source, err: err}
		}
		return documentLoadedMsg{slot: slot, generation: generation, source: source, name: name, content: content}
	}
}

func (m Model) slotGeneration(slot int) uint64 {
	if slot < 0 || slot >= maxDocuments {
		return 0
	}
	return m.loadGen[slot]
}

// isCurrentLoad reports whether a load started at generation may still fill slot
func (m Model) isCurrentLoad(slot int, generation uint64) bool {
	return m.slotGeneration(slot) == generation
}

// requestCompare starts a comparison of the active pair. Results of earlier
// requests that are still running will be discarded when they arrive.
func (m *Model) requestCompare() tea.Cmd {
	generation := m.comparer.Next()

	if !m.store.Comparable() {
		m.result = nil
		m.nav.Reset(nil)
		m.resetScroll()
		return nil
	}

	pair := ValidPair(m.store.List(), m.active)
	m.active = pair

	left, _ := m.store.Get(pair.Left)
	right, _ := m.store.Get(pair.Right)
	mode := m.compareMode
	engine := m.engine

	return func() tea.Msg {
		result, err := Compare(pair, left.Content, right.Content, mode, engine)
		if err != nil {
			return compareFailedMsg{generation: generation, err: err}
		}
		return compareDoneMsg{generation: generation, result: result}
	}
}

// Messages

type documentLoadedMsg struct {
	slot       int
	generation uint64
	source     string
	name       string
	content    string
}

type documentLoadFailedMsg struct {
	slot       int
	generation uint64
	source     string
	err        error
}

type compareDoneMsg struct {
	generation uint64
	result     ComparisonResult
}

type compareFailedMsg struct {
	generation uint64
	err        error
}

type exportDoneMsg struct {
	path string
}

type errMsg struct {
	err error
}

type clearErrorMsg struct{}
