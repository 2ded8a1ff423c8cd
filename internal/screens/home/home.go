package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cdiazbas/norwegian-quiz/internal/router"
	"github.com/cdiazbas/norwegian-quiz/internal/screen"
	"github.com/cdiazbas/norwegian-quiz/internal/screens/category"
	"github.com/cdiazbas/norwegian-quiz/internal/screens/quiz"
	"github.com/cdiazbas/norwegian-quiz/internal/screens/summary"
	"github.com/cdiazbas/norwegian-quiz/internal/session"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/components"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/theme"
)

// Menu positions.
const (
	itemNewQuestion = iota
	itemContinue
	itemCategory
	itemStats
	itemQuit
)

// HomeScreen is the main menu.
type HomeScreen struct {
	session *session.Session
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over s.
func New(s *session.Session) *HomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factory()}
			}
		}
	}

	items := []components.MenuItem{
		itemNewQuestion: {Label: "Nueva pregunta", Action: push(func() screen.Screen { return quiz.NewRound(s) })},
		itemContinue:    {Label: "Continuar", Action: push(func() screen.Screen { return quiz.New(s) })},
		itemCategory:    {Action: push(func() screen.Screen { return category.New(s) })},
		itemStats:       {Label: "Estadísticas", Action: push(func() screen.Screen { return summary.New(s) })},
		itemQuit:        {Label: "Salir", Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{
		session: s,
		menu:    components.NewMenu(items),
	}
	h.refresh()
	return h
}

// refresh updates labels that depend on session state.
func (h *HomeScreen) refresh() {
	h.menu.SetLabel(itemCategory, "Categoría: "+h.session.Category())
	h.menu.Items[itemContinue].Disabled = h.session.Phase() == session.PhaseUnasked
	if h.menu.Items[h.menu.Selected].Disabled {
		h.menu.Selected = itemNewQuestion
	}
}

// Init runs whenever the home screen becomes active again.
func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Norwegian B2 Quiz"))
	sections = append(sections, theme.Subtitle.Render("Practica tu noruego nivel B2"))

	st := h.session.State()
	info := fmt.Sprintf("%d preguntas en el banco  ·  %d/%d correctas",
		h.session.BankSize(), st.CorrectCount, st.TotalCount)
	sections = append(sections, theme.Hint.Render(info))

	menu := theme.Card.Width(min(width-4, 40)).Render(strings.TrimRight(h.menu.View(), "\n"))
	sections = append(sections, menu)

	content := lipgloss.JoinVertical(lipgloss.Center, interleave(sections, "")...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}

// interleave puts sep between every pair of elements.
func interleave(items []string, sep string) []string {
	out := make([]string, 0, 2*len(items))
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
