package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cdiazbas/norwegian-quiz/internal/bank"
)

// Session owns the state of one learner's quiz session and is the only
// place it is mutated. A Session is not safe for concurrent use; the bank
// it draws from may be shared.
type Session struct {
	bank      *bank.Bank
	rng       Rand
	logger    *zap.Logger
	state     SessionState
	startTime time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithRand injects the random source used for sampling and shuffling.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithCategory sets the initial category filter.
func WithCategory(category string) Option {
	return func(s *Session) { s.SetCategory(category) }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.state.ID = id }
}

// New creates a session over b with zeroed counters and no active question.
func New(b *bank.Bank, opts ...Option) *Session {
	s := &Session{
		bank:   b,
		logger: zap.NewNop(),
		state: SessionState{
			ID:       uuid.New().String(),
			Category: bank.AllCategories,
		},
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	s.logger = s.logger.With(zap.String("session_id", s.state.ID))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.state.ID
}

// State returns a copy of the current state for rendering.
func (s *Session) State() SessionState {
	return s.state.clone()
}

// Phase returns the phase of the current question instance.
func (s *Session) Phase() Phase {
	return s.state.Phase()
}

// Accuracy returns the running accuracy as a percentage.
func (s *Session) Accuracy() float64 {
	return s.state.Accuracy()
}

// BankSize returns the total number of questions in the bank.
func (s *Session) BankSize() int {
	return s.bank.Len()
}

// Category returns the active category filter.
func (s *Session) Category() string {
	return s.state.Category
}

// Categories returns the selectable filters: bank.AllCategories followed
// by the bank's categories.
func (s *Session) Categories() []string {
	return slices.Insert(s.bank.Categories(), 0, bank.AllCategories)
}

// SetCategory changes the filter used by the next NewQuestion call.
// Surrounding spaces are ignored; an empty category resets the filter.
func (s *Session) SetCategory(category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = bank.AllCategories
	}
	s.state.Category = category
}

// NewQuestion draws a question, shuffles its options and opens it for
// answering. If nothing is eligible the current question is cleared, the
// counters are left alone and an error wrapping bank.ErrEmptyBank is
// returned.
func (s *Session) NewQuestion() error {
	q, err := s.bank.Sample(s.rng, s.state.Category)
	if err != nil {
		s.state.clearQuestion()
		if errors.Is(err, bank.ErrEmptyBank) {
			s.logger.Info("no question available", zap.String("category", s.state.Category))
		}
		return err
	}

	s.state.clearQuestion()
	s.state.CurrentQuestion = q
	s.state.CurrentOptions = BuildOptions(q, s.rng)
	s.state.TotalCount++

	s.logger.Debug("question drawn",
		zap.Int("question_id", q.ID),
		zap.String("category", q.Category),
		zap.Int("total", s.state.TotalCount),
	)
	return nil
}

// SelectAnswer records text as the selected option. The text must match
// one of the current options and the question must not be evaluated yet;
// otherwise ErrInvalidSelection is returned and the state is unchanged.
func (s *Session) SelectAnswer(text string) error {
	switch s.state.Phase() {
	case PhaseUnasked:
		return fmt.Errorf("%w: no active question", ErrInvalidSelection)
	case PhaseEvaluated:
		return fmt.Errorf("%w: question already evaluated", ErrInvalidSelection)
	}

	for _, opt := range s.state.CurrentOptions {
		if opt.Text == text {
			s.state.SelectedAnswer = text
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not a current option", ErrInvalidSelection, text)
}

// Submit evaluates the selected answer. Without an active question or a
// selection it does nothing and returns (nil, nil). Evaluation happens once
// per question: later calls return the stored result and leave the
// counters untouched.
func (s *Session) Submit() (*Result, error) {
	st := &s.state
	if st.CurrentQuestion == nil || st.SelectedAnswer == "" {
		return nil, nil
	}
	if st.Evaluated {
		r := *st.Result
		return &r, nil
	}

	res, err := Evaluate(st.CurrentOptions, st.SelectedAnswer, st.CurrentQuestion)
	if err != nil {
		s.logger.Error("evaluate answer", zap.Error(err))
		return nil, err
	}

	st.Evaluated = true
	st.Result = &res
	if res.IsCorrect {
		st.CorrectCount++
	}

	s.logger.Debug("answer evaluated",
		zap.Int("question_id", st.CurrentQuestion.ID),
		zap.Bool("correct", res.IsCorrect),
		zap.Int("correct_count", st.CorrectCount),
		zap.Int("total", st.TotalCount),
	)

	out := res
	return &out, nil
}
