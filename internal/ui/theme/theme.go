package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: Norwegian flag blue and red on a calm dark background.
var (
	Primary   = lipgloss.Color("#1976D2") // Quiz Blue
	Secondary = lipgloss.Color("#64B5F6") // Light Blue
	Accent    = lipgloss.Color("#BA0C2F") // Flag Red
	Success   = lipgloss.Color("#4CAF50") // Green
	Error     = lipgloss.Color("#F44336") // Red
	Text      = lipgloss.Color("#F8F9FA") // Off White
	TextDim   = lipgloss.Color("#6C757D") // Grey
	BgCard    = lipgloss.Color("#15263F") // Card Blue
	Border    = lipgloss.Color("#2C3E58") // Slate Blue
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
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// QuestionCard has a thick blue left edge like the prompt card of the web quiz.
	QuestionCard = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(Primary).
			Padding(1, 2)

	Badge = lipgloss.NewStyle().
		Foreground(Primary).
		Background(lipgloss.Color("#E3F2FD")).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	SuccessBox = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(Success).
			Padding(0, 2)

	ErrorBox = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(Error).
			Padding(0, 2)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
