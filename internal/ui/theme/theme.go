// Package theme defines the shared lipgloss palette and styles for the
// CLI surfaces.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, high-contrast, dyslexia-friendly
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Word is for the decoding target itself: big, spaced, unmissable.
	Word = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Feedback = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)
)

// Progress
var (
	XP = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Streak = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	MasteryHigh = lipgloss.NewStyle().
			Foreground(Success)

	MasteryLow = lipgloss.NewStyle().
			Foreground(Error)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// Mastery returns the style for a mastery value: green at or above the
// review threshold, red below.
func Mastery(value int) lipgloss.Style {
	if value >= 70 {
		return MasteryHigh
	}
	return MasteryLow
}
