package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the application
type KeyMap struct {
	NextChange key.Binding
	PrevChange key.Binding
	JumpChange key.Binding

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	LoadDraft  key.Binding
	NextPair   key.Binding
	CycleLeft  key.Binding
	CycleRight key.Binding
	ClearRight key.Binding
	ResetAll   key.Binding

	ToggleView   key.Binding
	ToggleMode   key.Binding
	ToggleEngine key.Binding
	Export       key.Binding

	Quit  key.Binding
	Help  key.Binding
	Close key.Binding

	// load prompt
	PromptSubmit key.Binding
	PromptSlot   key.Binding
	PromptCancel key.Binding
	PromptQuit   key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		NextChange: key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n/]", "Next change (wraps)")),
		PrevChange: key.NewBinding(key.WithKeys("N", "["), key.WithHelp("N/[", "Previous change (wraps)")),
		JumpChange: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Jump to change by number"),
		),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "Scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "Scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "Page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "Page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "Jump to top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "Jump to bottom")),

		LoadDraft:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "Load a draft into a slot")),
		NextPair:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "Next adjacent pair of drafts")),
		CycleLeft:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Cycle left draft")),
		CycleRight: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "Cycle right draft")),
		ClearRight: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Unload right draft")),
		ResetAll:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "Unload all drafts")),

		ToggleView:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Toggle inline/side-by-side")),
		ToggleMode:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "Toggle line/word comparison")),
		ToggleEngine: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "Switch diff engine")),
		Export:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Export comparison report")),

		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q/ctrl+c", "Quit application")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Show/hide this help screen")),
		Close: key.NewBinding(key.WithKeys("?", "esc"), key.WithHelp("esc", "Close help")),

		PromptSubmit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		PromptSlot:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "slot")),
		PromptCancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		PromptQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// keySection is one titled group on the help screen
type keySection struct {
	Title    string
	Bindings []key.Binding
}

// PromptHelp returns the bindings active while the load prompt is open
func (k KeyMap) PromptHelp() []key.Binding {
	return []key.Binding{k.PromptSubmit, k.PromptSlot, k.PromptCancel}
}

// FullHelp returns the bindings grouped the way the help screen shows them
func (k KeyMap) FullHelp() []keySection {
	return []keySection{
		{"Changes", []key.Binding{k.NextChange, k.PrevChange, k.JumpChange}},
		{"Scrolling", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom}},
		{"Drafts", []key.Binding{k.LoadDraft, k.NextPair, k.CycleLeft, k.CycleRight, k.ClearRight, k.ResetAll}},
		{"View", []key.Binding{k.ToggleView, k.ToggleMode, k.ToggleEngine, k.Export}},
		{"System", []key.Binding{k.Quit, k.Help}},
	}
}
