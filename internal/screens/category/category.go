package category

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cdiazbas/norwegian-quiz/internal/router"
	"github.com/cdiazbas/norwegian-quiz/internal/screen"
	"github.com/cdiazbas/norwegian-quiz/internal/session"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/components"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/layout"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/theme"
)

// CategoryScreen lets the learner pick the category filter.
type CategoryScreen struct {
	session *session.Session
	menu    components.Menu
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryScreen)(nil)

// New creates a picker over s.Categories() with the active filter preselected.
func New(s *session.Session) *CategoryScreen {
	c := &CategoryScreen{session: s}

	categories := s.Categories()
	items := make([]components.MenuItem, len(categories))
	for i, name := range categories {
		items[i] = components.MenuItem{
			Label:  name,
			Action: c.choose(name),
		}
	}

	c.menu = components.NewMenu(items)
	for i, name := range categories {
		if name == s.Category() {
			c.menu.Selected = i
			break
		}
	}
	return c
}

func (c *CategoryScreen) choose(name string) func() tea.Cmd {
	return func() tea.Cmd {
		c.session.SetCategory(name)
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
}

func (c *CategoryScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoryScreen) Title() string {
	return "Categoría"
}

func (c *CategoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Esc", Description: "Cancelar"},
	}
}

func (c *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CategoryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Elige una categoría"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).
		Render(fmt.Sprintf("Actual: %s", c.session.Category())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, c.menu.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
