package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flash/internal/review"
)

const bannerText = "Flash Cards for the Terminal"

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading deck..."
	}
	card := m.session.Current()
	if card == nil {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		"",
		m.styles.QuestionHeading.Render("Question:"),
		m.styles.Body.Render(card.Question),
	}

	if m.session.Phase() == review.PhaseAnswer {
		sections = append(sections,
			"",
			m.styles.AnswerHeading.Render("Answer:"),
			m.styles.Body.Render(card.Answer),
			m.styles.RenderDivider(m.width),
			"",
			m.styles.Label.Render("How difficult was the question?"),
			"",
			m.renderRatingRow(),
		)
	}

	sections = append(sections, m.styles.Footer.Render(m.help.View(m.keys)))

	return m.styles.Content.Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// renderHeader shows the run banner and the card's metadata. Priority is
// displayed 1-based, matching the rating keys.
func (m Model) renderHeader() string {
	card := m.session.Current()

	banner := m.styles.Banner.Render(bannerText)
	if m.width > lipgloss.Width(banner) {
		banner = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, banner)
	}

	var sb strings.Builder
	sb.WriteString(banner + "\n")
	sb.WriteString(m.styles.Label.Render("Deck name: ") + m.deckName + "\n")
	sb.WriteString(m.styles.Label.Render("Cards in deck: ") + fmt.Sprint(m.deckSize) + "\n")
	sb.WriteString(m.styles.Label.Render("Cards remaining in run: ") + fmt.Sprint(m.session.Remaining()) + "\n")
	sb.WriteString(m.styles.Label.Render("Question category: ") + card.Subject + "\n")
	sb.WriteString(m.styles.Label.Render("Question priority: ") + fmt.Sprint(card.Priority+1))
	return sb.String()
}

func (m Model) renderRatingRow() string {
	return strings.Join([]string{
		m.styles.RateXeric.Render("Xeric") + " [1]",
		m.styles.RateEasy.Render("Easy") + " [2]",
		m.styles.RateNormal.Render("Normal") + " [3]",
		m.styles.RateDifficult.Render("Difficult") + " [4]",
	}, "  ")
}
