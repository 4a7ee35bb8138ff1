// Package tui provides the interactive review interface for flash. It is a
// thin terminal adapter: all card-selection and priority policy lives in
// internal/review, and this package only translates key events into review
// inputs and renders the session's current card.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"flash/cmd/flash/ui"
	"flash/internal/review"
)

// keyMap declares the bindings the review screen understands. Any key not
// matched here is a plain acknowledgement.
type keyMap struct {
	Rate1 key.Binding
	Rate2 key.Binding
	Rate3 key.Binding
	Rate4 key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Rate1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "xeric"),
		),
		Rate2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "easy"),
		),
		Rate3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "normal"),
		),
		Rate4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "difficult"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c", "ctrl+d", "ctrl+z"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rate1, k.Rate2, k.Rate3, k.Rate4},
		{k.Quit},
	}
}

// Model is the bubbletea model for one review run. It owns no deck state
// beyond display metadata; the session mutates cards, and the caller saves
// the deck after the program exits.
type Model struct {
	session *review.Session
	styles  ui.Styles
	keys    keyMap
	help    help.Model

	deckName string
	deckSize int

	width  int
	height int
	ready  bool
}

// New builds the review model for an already-planned session.
func New(session *review.Session, deckName string, deckSize int) Model {
	return Model{
		session:  session,
		styles:   ui.DefaultStyles(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		deckName: deckName,
		deckSize: deckSize,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	// A fully drained plan quits on the first frame.
	if m.session.Phase() == review.PhaseDone {
		return tea.Quit
	}
	return nil
}
