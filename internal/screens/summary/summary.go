package summary

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cdiazbas/norwegian-quiz/internal/bank"
	"github.com/cdiazbas/norwegian-quiz/internal/router"
	"github.com/cdiazbas/norwegian-quiz/internal/screen"
	"github.com/cdiazbas/norwegian-quiz/internal/session"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/components"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/layout"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/theme"
)

// SummaryScreen shows the running statistics of the session.
type SummaryScreen struct {
	session *session.Session
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for s.
func New(s *session.Session) *SummaryScreen {
	return &SummaryScreen{session: s, summary: session.BuildSummary(s)}
}

// Init refreshes the snapshot.
func (s *SummaryScreen) Init() tea.Cmd {
	s.summary = session.BuildSummary(s.session)
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Estadísticas"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Volver"},
		{Key: "Esc", Description: "Menú"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	cw := min(width-8, 60)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))

	var b strings.Builder
	b.WriteString("\n")

	// Counters.
	counter := func(label string, value int, fg color.Color) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ") +
			lipgloss.NewStyle().Foreground(fg).Bold(true).Render(fmt.Sprintf("%d", value))
	}
	counters := counter("Correctas:", sum.TotalCorrect, theme.Success) + "      " +
		counter("Incorrectas:", sum.TotalQuestions-sum.TotalCorrect, theme.Error) + "      " +
		counter("Total:", sum.TotalQuestions, theme.Text)
	b.WriteString(center(counters))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Precisión", sum.Accuracy, true, cw)
	b.WriteString(center(bar.View()))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Tiempo de sesión: %d:%02d", mins, secs))))
	b.WriteString("\n\n")

	// Bank.
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Banco de preguntas")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n\n")

	line := func(label string, n int, active bool) string {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		marker := "  "
		if active {
			style = style.Foreground(theme.Primary).Bold(true)
			marker = "▸ "
		}
		text := fmt.Sprintf("%s%-28s %4d", marker, label, n)
		return center(style.Render(text))
	}

	b.WriteString(line(bank.AllCategories, sum.BankSize, sum.Category == bank.AllCategories))
	b.WriteString("\n")

	names := make([]string, 0, len(sum.CategoryCounts))
	for name := range sum.CategoryCounts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		b.WriteString(line(name, sum.CategoryCounts[name], name == sum.Category))
		b.WriteString("\n")
	}

	if sum.Category != bank.AllCategories && sum.CategorySize == 0 {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("La categoría %q no tiene preguntas.", sum.Category))))
		b.WriteString("\n")
	}

	return b.String()
}
