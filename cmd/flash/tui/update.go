package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"flash/internal/review"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		phase := m.session.Apply(m.translateKey(msg))
		if phase == review.PhaseDone {
			// Quit unwinds the whole run in one step; the deck write
			// happens in cmd/flash after the program returns.
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// translateKey maps a terminal key event onto a review input. Rating keys
// only count as ratings on the answer screen; everywhere else any non-exit
// key is a plain acknowledgement.
func (m Model) translateKey(msg tea.KeyMsg) review.Input {
	if key.Matches(msg, m.keys.Quit) {
		return review.Quit
	}
	if m.session.Phase() == review.PhaseAnswer {
		switch {
		case key.Matches(msg, m.keys.Rate1):
			return review.RateLowest
		case key.Matches(msg, m.keys.Rate2):
			return review.RateLow
		case key.Matches(msg, m.keys.Rate3):
			return review.RateNormal
		case key.Matches(msg, m.keys.Rate4):
			return review.RateHighest
		}
	}
	return review.Acknowledge
}
