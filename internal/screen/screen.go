package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/cdiazbas/norwegian-quiz/internal/ui/layout"
)

// Screen is one page of the quiz UI. The router owns a stack of them.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area (header and footer are drawn by the app).
	View(width, height int) string

	// Title is shown in the header. An empty title hides it.
	Title() string
}

// KeyHintProvider is implemented by screens that want their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
