// Package ui provides the visual styling for the flash terminal interface,
// with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, same in both modes. The rating row reuses them: easy is
// green, normal is yellow, difficult is red.
var (
	Green  = lipgloss.Color("#8BC34A")
	Yellow = lipgloss.Color("#FFC107")
	Red    = lipgloss.Color("#e53935")
	Blue   = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Accent:     Green,
		Muted:      lipgloss.Color("#6b7280"),
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    Green,
		Accent:     Green,
		Muted:      lipgloss.Color("#8a94a6"),
		IsDark:     true,
	}
}

// DetectTheme picks a theme from the terminal environment, defaulting to
// light mode.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; ANSI indexes 0-6 and 8 are
	// dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("FLASH_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components of the review screen.
type Styles struct {
	Theme Theme

	// Layout
	Banner  lipgloss.Style
	Divider lipgloss.Style
	Content lipgloss.Style
	Footer  lipgloss.Style

	// Text
	Label lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style

	// Card sections
	QuestionHeading lipgloss.Style
	AnswerHeading   lipgloss.Style

	// Rating row
	RateXeric     lipgloss.Style
	RateEasy      lipgloss.Style
	RateNormal    lipgloss.Style
	RateDifficult lipgloss.Style

	// Status
	Error lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Banner: lipgloss.NewStyle().
			Bold(true).
			Reverse(true).
			Padding(0, 2),

		Divider: lipgloss.NewStyle().
			Reverse(true),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		QuestionHeading: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		AnswerHeading: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		RateXeric: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		RateEasy: lipgloss.NewStyle().
			Foreground(Green),

		RateNormal: lipgloss.NewStyle().
			Foreground(Yellow),

		RateDifficult: lipgloss.NewStyle().
			Foreground(Red),

		Error: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 80
	}
	return s.Divider.Render(strings.Repeat("=", width))
}
