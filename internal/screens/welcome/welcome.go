package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cdiazbas/norwegian-quiz/internal/router"
	"github.com/cdiazbas/norwegian-quiz/internal/screen"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	flagEnd      = 500 * time.Millisecond
	bannerEnd    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Practica tu noruego nivel B2"

// flag rows: red field, white/blue cross.
var flagRows = []string{
	"rr w b w rrrrrrrr",
	"rr w b w rrrrrrrr",
	"ww w b w wwwwwwww",
	"bb b b b bbbbbbbb",
	"ww w b w wwwwwwww",
	"rr w b w rrrrrrrr",
	"rr w b w rrrrrrrr",
}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func renderFlag() string {
	red := lipgloss.NewStyle().Foreground(theme.Accent)
	white := lipgloss.NewStyle().Foreground(theme.Text)
	blue := lipgloss.NewStyle().Foreground(theme.Primary)

	lines := make([]string, 0, len(flagRows))
	for _, row := range flagRows {
		var b strings.Builder
		for _, c := range row {
			switch c {
			case 'r':
				b.WriteString(red.Render("██"))
			case 'w':
				b.WriteString(white.Render("██"))
			case 'b':
				b.WriteString(blue.Render("██"))
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if w.elapsed >= flagEnd {
		sections = append(sections, renderFlag())
	}

	if w.elapsed >= bannerEnd {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		sections = append(sections, tagline, "")

		hintStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
		// Blink the hint once the animation has settled.
		if w.elapsed < totalDur || w.tickCount%10 < 7 {
			sections = append(sections, hintStyle.Render("pulsa cualquier tecla para empezar"))
		} else {
			sections = append(sections, "")
		}
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
