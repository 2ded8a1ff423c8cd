package session

import "github.com/cdiazbas/norwegian-quiz/internal/bank"

// Phase is the lifecycle phase of the current question instance.
type Phase int

const (
	PhaseUnasked   Phase = iota // No question drawn yet (or none available)
	PhaseAsked                  // Question shown, not yet evaluated
	PhaseEvaluated              // Answer submitted and scored
)

func (p Phase) String() string {
	switch p {
	case PhaseAsked:
		return "asked"
	case PhaseEvaluated:
		return "evaluated"
	}
	return "unasked"
}

// DisplayOption is one answer option as shown for the active question.
type DisplayOption struct {
	Text      string
	IsCorrect bool
}

// SessionState is the mutable state of one quiz session. The question
// fields are replaced wholesale on every new question; the counters
// accumulate for the lifetime of the session.
type SessionState struct {
	// ID is an opaque identifier for this session.
	ID string

	// Category is the active category filter (bank.AllCategories for none).
	Category string

	// CurrentQuestion is the active question, nil before the first draw
	// or after a draw found nothing eligible.
	CurrentQuestion *bank.QuestionRecord

	// CurrentOptions holds the shuffled options of CurrentQuestion.
	CurrentOptions []DisplayOption

	// SelectedAnswer is the chosen option text ("" when nothing is selected).
	SelectedAnswer string

	// Evaluated is true once the current question has been submitted.
	Evaluated bool

	// Result is the evaluation of the current question, nil until Evaluated.
	Result *Result

	// CorrectCount is the number of correctly answered questions.
	CorrectCount int

	// TotalCount is the number of questions drawn.
	TotalCount int
}

// Phase derives the lifecycle phase from the state.
func (st *SessionState) Phase() Phase {
	switch {
	case st.CurrentQuestion == nil:
		return PhaseUnasked
	case st.Evaluated:
		return PhaseEvaluated
	}
	return PhaseAsked
}

// Accuracy returns CorrectCount/TotalCount as a percentage, 0 when no
// question has been drawn.
func (st *SessionState) Accuracy() float64 {
	if st.TotalCount == 0 {
		return 0
	}
	return float64(st.CorrectCount) / float64(st.TotalCount) * 100
}

func (st *SessionState) clearQuestion() {
	st.CurrentQuestion = nil
	st.CurrentOptions = nil
	st.SelectedAnswer = ""
	st.Evaluated = false
	st.Result = nil
}

func (st *SessionState) clone() SessionState {
	c := *st
	if st.CurrentQuestion != nil {
		q := st.CurrentQuestion.Clone()
		c.CurrentQuestion = &q
	}
	if st.CurrentOptions != nil {
		c.CurrentOptions = make([]DisplayOption, len(st.CurrentOptions))
		copy(c.CurrentOptions, st.CurrentOptions)
	}
	if st.Result != nil {
		r := *st.Result
		c.Result = &r
	}
	return c
}
