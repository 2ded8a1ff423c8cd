package quiz

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/cdiazbas/norwegian-quiz/internal/bank"
	"github.com/cdiazbas/norwegian-quiz/internal/screen"
	sess "github.com/cdiazbas/norwegian-quiz/internal/session"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/components"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/layout"
)

// KeyMap holds the quiz screen bindings.
type KeyMap struct {
	NewQuestion key.Binding
	Evaluate    key.Binding
}

// Keys are the default quiz bindings.
var Keys = KeyMap{
	NewQuestion: key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("N", "Nueva pregunta")),
	Evaluate:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Evaluar")),
}

// QuizScreen drives one Session: draw, choose, evaluate.
type QuizScreen struct {
	session *sess.Session
	choice  components.MultiChoice
	result  *sess.Result
	empty   bool
	errMsg  string
	fresh   bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen bound to s. The session outlives the screen so
// counters survive leaving and re-entering the quiz. A question is drawn on
// Init only if none is active.
func New(s *sess.Session) *QuizScreen {
	q := &QuizScreen{session: s}
	q.syncChoice()
	return q
}

// NewRound is like New but always draws a fresh question on Init.
func NewRound(s *sess.Session) *QuizScreen {
	q := New(s)
	q.fresh = true
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	if !q.fresh && q.session.Phase() != sess.PhaseUnasked {
		return nil
	}
	q.fresh = false
	return func() tea.Msg { return drawQuestionMsg{} }
}

func (q *QuizScreen) Title() string {
	return "Pregunta"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if q.session.Phase() == sess.PhaseAsked {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Opción"},
			layout.KeyHint{Key: "Enter", Description: "Evaluar"},
		)
	}
	hints = append(hints,
		layout.KeyHint{Key: "N", Description: "Nueva pregunta"},
		layout.KeyHint{Key: "Esc", Description: "Menú"},
	)
	return hints
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case drawQuestionMsg:
		q.drawQuestion()
		return q, nil

	case tea.KeyPressMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.NewQuestion):
		q.drawQuestion()
		return q, nil

	case key.Matches(msg, Keys.Evaluate):
		switch q.session.Phase() {
		case sess.PhaseAsked:
			q.evaluate()
		case sess.PhaseEvaluated:
			q.drawQuestion()
		}
		return q, nil
	}

	if q.session.Phase() == sess.PhaseAsked {
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) drawQuestion() {
	q.result = nil
	q.errMsg = ""
	q.empty = false
	q.choice = components.MultiChoice{}

	err := q.session.NewQuestion()
	switch {
	case errors.Is(err, bank.ErrEmptyBank):
		q.empty = true
	case err != nil:
		q.errMsg = err.Error()
	}
	q.syncChoice()
}

func (q *QuizScreen) evaluate() {
	if err := q.session.SelectAnswer(q.choice.Current()); err != nil {
		q.errMsg = err.Error()
		return
	}
	res, err := q.session.Submit()
	if err != nil {
		q.errMsg = err.Error()
		return
	}
	q.result = res
	q.syncChoice()
}

// syncChoice rebuilds the option list from the session state, keeping the
// cursor when the options are unchanged.
func (q *QuizScreen) syncChoice() {
	st := q.session.State()
	cursor := q.choice.Cursor
	if !sameOptions(q.choice.Options, st.CurrentOptions) {
		cursor = 0
	}
	q.choice = components.NewMultiChoice(st.CurrentOptions)
	q.choice.Cursor = cursor
	if st.Evaluated {
		q.choice.Reveal(st.SelectedAnswer)
		if q.result == nil {
			q.result = st.Result
		}
	}
}

func sameOptions(a, b []sess.DisplayOption) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
