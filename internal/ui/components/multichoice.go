package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cdiazbas/norwegian-quiz/internal/session"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice renders the shuffled options of the active question and
// tracks the cursor. It never decides correctness itself; once Reveal is
// called it colours options from their DisplayOption flags.
type MultiChoice struct {
	Options  []session.DisplayOption
	Cursor   int
	Revealed bool
	Chosen   string
}

// NewMultiChoice creates a multiple-choice component for options.
func NewMultiChoice(options []session.DisplayOption) MultiChoice {
	return MultiChoice{Options: options}
}

// Update moves the cursor. Number keys 1-3 and letters a-c jump directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, NavKeys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(kmsg, NavKeys.Down):
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	default:
		if idx, ok := directIndex(kmsg.String()); ok && idx < len(m.Options) {
			m.Cursor = idx
		}
	}

	return m, nil
}

// directIndex maps "1".."4" and "a".."d" to an option index.
func directIndex(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch c := s[0]; {
	case c >= '1' && c <= '4':
		return int(c - '1'), true
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	}
	return 0, false
}

// Current returns the option text under the cursor ("" if there are no options).
func (m MultiChoice) Current() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Options) {
		return ""
	}
	return m.Options[m.Cursor].Text
}

// Reveal freezes the component and marks chosen as the evaluated answer.
func (m *MultiChoice) Reveal(chosen string) {
	m.Revealed = true
	m.Chosen = chosen
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabels[i], opt.Text)

		var style lipgloss.Style
		switch {
		case m.Revealed && opt.IsCorrect:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && opt.Text == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
