package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/cdiazbas/norwegian-quiz/internal/router"
	"github.com/cdiazbas/norwegian-quiz/internal/screen"
	"github.com/cdiazbas/norwegian-quiz/internal/screens/home"
	"github.com/cdiazbas/norwegian-quiz/internal/screens/welcome"
	"github.com/cdiazbas/norwegian-quiz/internal/session"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Session     *session.Session
	Logger      *zap.Logger
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	logger  *zap.Logger
	width   int
	height  int
}

// newAppModel creates the root model, starting at the welcome splash unless
// opts.SkipWelcome is set.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	homeFactory := func() screen.Screen { return home.New(opts.Session) }

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router:  router.New(initial),
		session: opts.Session,
		logger:  logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Info("quit requested")
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg:
		m.logger.Debug("push screen", zap.String("screen", msg.Screen.Title()))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var score layout.Score
	if m.session != nil {
		st := m.session.State()
		score = layout.Score{Correct: st.CorrectCount, Total: st.TotalCount}
	}
	header := layout.RenderHeader(title, score, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, p.KeyHints()...)
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Elegir"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Salir"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("run app: no session")
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}

	sum := session.BuildSummary(opts.Session)
	if opts.Logger != nil {
		opts.Logger.Info("session finished",
			zap.Int("total", sum.TotalQuestions),
			zap.Int("correct", sum.TotalCorrect),
			zap.Float64("accuracy", sum.Accuracy),
			zap.Duration("duration", sum.Duration),
		)
	}
	return nil
}
