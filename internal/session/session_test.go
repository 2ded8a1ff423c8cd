package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdiazbas/norwegian-quiz/internal/bank"
)

// seqRand replays a fixed sequence of IntN results. Shuffle is a
// Fisher-Yates pass driven by the same sequence, so tests can predict
// exact permutations.
type seqRand struct {
	seq []int
	pos int
}

func (r *seqRand) IntN(n int) int {
	if r.pos >= len(r.seq) {
		return 0
	}
	v := r.seq[r.pos]
	r.pos++
	return v % n
}

func (r *seqRand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.IntN(i+1))
	}
}

func verbQuestion() bank.QuestionRecord {
	return bank.QuestionRecord{
		Category:     "Verb",
		Prompt:       "Hva betyr 'å gå'?",
		Options:      [3]string{"to go", "to eat", "to sleep"},
		CorrectIndex: 1,
		Explanations: map[int]string{
			1: "Correct, å gå = to go",
			2: "No, that's to eat",
			3: "No, that's to sleep",
		},
	}
}

func prepQuestion() bank.QuestionRecord {
	return bank.QuestionRecord{
		Category:     "Preposisjoner",
		Prompt:       "Jeg bor ___ Oslo.",
		Options:      [3]string{"på", "i", "til"},
		CorrectIndex: 2,
		Explanations: map[int]string{
			1: "«i» se usa con ciudades.",
			2: "«på» se usa con islas.",
			3: "«til» indica dirección.",
		},
	}
}

func oneRowSession(rng Rand) *Session {
	return New(bank.New([]bank.QuestionRecord{verbQuestion()}), WithRand(rng), WithID("test-session-id"))
}

func optionTexts(opts []DisplayOption) []string {
	texts := make([]string, len(opts))
	for i, o := range opts {
		texts[i] = o.Text
	}
	return texts
}

func TestNew_InitialState(t *testing.T) {
	s := oneRowSession(&seqRand{})
	st := s.State()

	assert.Equal(t, "test-session-id", st.ID)
	assert.Nil(t, st.CurrentQuestion)
	assert.Nil(t, st.CurrentOptions)
	assert.Empty(t, st.SelectedAnswer)
	assert.False(t, st.Evaluated)
	assert.Zero(t, st.CorrectCount)
	assert.Zero(t, st.TotalCount)
	assert.Equal(t, bank.AllCategories, st.Category)
	assert.Equal(t, PhaseUnasked, s.Phase())
	assert.Equal(t, 1, s.BankSize())
}

func TestNew_GeneratesID(t *testing.T) {
	a := New(bank.New(nil))
	b := New(bank.New(nil))
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewQuestion_ExactShuffle(t *testing.T) {
	// IntN calls: sample (0), shuffle i=2 (0), shuffle i=1 (1).
	s := oneRowSession(&seqRand{seq: []int{0, 0, 1}})

	require.NoError(t, s.NewQuestion())
	st := s.State()

	assert.Equal(t, []DisplayOption{
		{Text: "to sleep", IsCorrect: false},
		{Text: "to eat", IsCorrect: false},
		{Text: "to go", IsCorrect: true},
	}, st.CurrentOptions)
	assert.Equal(t, 1, st.TotalCount)
	assert.Equal(t, PhaseAsked, s.Phase())
}

func TestNewQuestion_PermutationWithOneCorrect(t *testing.T) {
	b := bank.New([]bank.QuestionRecord{verbQuestion(), prepQuestion()})
	s := New(b, WithRand(NewRand(42)))

	for i := 0; i < 200; i++ {
		require.NoError(t, s.NewQuestion())
		st := s.State()

		q := st.CurrentQuestion
		require.NotNil(t, q)
		assert.ElementsMatch(t, q.Options[:], optionTexts(st.CurrentOptions))

		correct := 0
		for _, o := range st.CurrentOptions {
			if o.IsCorrect {
				correct++
				assert.Equal(t, q.CorrectOption(), o.Text)
			}
		}
		assert.Equal(t, 1, correct)
		assert.Equal(t, i+1, st.TotalCount)
	}
}

func TestNewQuestion_ShuffleIsUniform(t *testing.T) {
	s := oneRowSession(NewRand(7))
	counts := make(map[[3]string]int)

	const draws = 6000
	for i := 0; i < draws; i++ {
		require.NoError(t, s.NewQuestion())
		texts := optionTexts(s.State().CurrentOptions)
		counts[[3]string{texts[0], texts[1], texts[2]}]++
	}

	require.Len(t, counts, 6, "all 3! orderings should appear")
	for perm, n := range counts {
		assert.InDelta(t, draws/6, n, 200, "ordering %v", perm)
	}
}

func TestNewQuestion_ResetsSelectionAndEvaluation(t *testing.T) {
	s := oneRowSession(&seqRand{})
	require.NoError(t, s.NewQuestion())
	require.NoError(t, s.SelectAnswer("to go"))
	_, err := s.Submit()
	require.NoError(t, err)
	require.Equal(t, PhaseEvaluated, s.Phase())

	require.NoError(t, s.NewQuestion())
	st := s.State()
	assert.Empty(t, st.SelectedAnswer)
	assert.False(t, st.Evaluated)
	assert.Nil(t, st.Result)
	assert.Equal(t, PhaseAsked, s.Phase())
	assert.Equal(t, 1, st.CorrectCount)
	assert.Equal(t, 2, st.TotalCount)
}

func TestNewQuestion_EmptyAfterFilter(t *testing.T) {
	s := oneRowSession(&seqRand{})
	require.NoError(t, s.NewQuestion())
	before := s.State()

	s.SetCategory("Substantiv")
	err := s.NewQuestion()

	if !errors.Is(err, bank.ErrEmptyBank) {
		t.Fatalf("expected ErrEmptyBank, got %v", err)
	}
	st := s.State()
	assert.Nil(t, st.CurrentQuestion)
	assert.Nil(t, st.CurrentOptions)
	assert.Equal(t, before.TotalCount, st.TotalCount)
	assert.Equal(t, before.CorrectCount, st.CorrectCount)
	assert.Equal(t, PhaseUnasked, s.Phase())
}

func TestNewQuestion_EmptyBank(t *testing.T) {
	s := New(bank.New(nil), WithRand(&seqRand{}))
	err := s.NewQuestion()
	assert.ErrorIs(t, err, bank.ErrEmptyBank)
	assert.Zero(t, s.State().TotalCount)
}

func TestSetCategory(t *testing.T) {
	b := bank.New([]bank.QuestionRecord{verbQuestion(), prepQuestion()})
	s := New(b, WithRand(&seqRand{}), WithCategory("Preposisjoner"))

	require.NoError(t, s.NewQuestion())
	assert.Equal(t, "Preposisjoner", s.State().CurrentQuestion.Category)

	s.SetCategory("  Verb ")
	assert.Equal(t, "Verb", s.Category())
	require.NoError(t, s.NewQuestion())
	assert.Equal(t, "Verb", s.State().CurrentQuestion.Category)

	s.SetCategory("")
	assert.Equal(t, bank.AllCategories, s.Category())
	s.SetCategory("   ")
	assert.Equal(t, bank.AllCategories, s.Category())
	assert.Equal(t, []string{bank.AllCategories, "Preposisjoner", "Verb"}, s.Categories())
}

func TestScenario_CorrectAnswer(t *testing.T) {
	s := oneRowSession(NewRand(1))
	require.NoError(t, s.NewQuestion())
	assert.ElementsMatch(t, []string{"to go", "to eat", "to sleep"}, optionTexts(s.State().CurrentOptions))

	require.NoError(t, s.SelectAnswer("to go"))
	res, err := s.Submit()
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, res.IsCorrect)
	assert.Equal(t, "Correct, å gå = to go", res.Explanation)
	assert.Equal(t, "to go", res.CorrectText)

	st := s.State()
	assert.Equal(t, 1, st.CorrectCount)
	assert.Equal(t, 1, st.TotalCount)
	assert.InDelta(t, 100.0, s.Accuracy(), 1e-9)
}

func TestScenario_WrongAnswer(t *testing.T) {
	s := oneRowSession(NewRand(1))
	require.NoError(t, s.NewQuestion())

	require.NoError(t, s.SelectAnswer("to eat"))
	res, err := s.Submit()
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.False(t, res.IsCorrect)
	assert.Equal(t, "No, that's to eat", res.Explanation)
	assert.Equal(t, "to go", res.CorrectText)
	assert.Equal(t, "Correct, å gå = to go", res.CorrectExplanation)

	st := s.State()
	assert.Equal(t, 0, st.CorrectCount)
	assert.Equal(t, 1, st.TotalCount)
	assert.Zero(t, s.Accuracy())
}

func TestSubmit_Idempotent(t *testing.T) {
	s := oneRowSession(NewRand(3))
	require.NoError(t, s.NewQuestion())
	require.NoError(t, s.SelectAnswer("to go"))

	first, err := s.Submit()
	require.NoError(t, err)
	second, err := s.Submit()
	require.NoError(t, err)
	third, err := s.Submit()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, 1, s.State().CorrectCount)
}

func TestSubmit_NoOpWithoutQuestionOrSelection(t *testing.T) {
	s := oneRowSession(&seqRand{})

	res, err := s.Submit()
	assert.NoError(t, err)
	assert.Nil(t, res)

	require.NoError(t, s.NewQuestion())
	res, err = s.Submit()
	assert.NoError(t, err)
	assert.Nil(t, res)
	assert.False(t, s.State().Evaluated)
	assert.Equal(t, PhaseAsked, s.Phase())
}

func TestSelectAnswer_Validation(t *testing.T) {
	s := oneRowSession(&seqRand{})

	err := s.SelectAnswer("to go")
	assert.ErrorIs(t, err, ErrInvalidSelection, "no active question")

	require.NoError(t, s.NewQuestion())
	err = s.SelectAnswer("to run")
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Empty(t, s.State().SelectedAnswer)

	require.NoError(t, s.SelectAnswer("to sleep"))
	require.NoError(t, s.SelectAnswer("to eat"))
	assert.Equal(t, "to eat", s.State().SelectedAnswer)

	_, err = s.Submit()
	require.NoError(t, err)

	err = s.SelectAnswer("to go")
	assert.ErrorIs(t, err, ErrInvalidSelection, "evaluated question is closed")
	assert.Equal(t, "to eat", s.State().SelectedAnswer)
}

func TestState_ReturnsCopy(t *testing.T) {
	s := oneRowSession(&seqRand{})
	require.NoError(t, s.NewQuestion())

	st := s.State()
	st.CurrentOptions[0].IsCorrect = !st.CurrentOptions[0].IsCorrect
	st.TotalCount = 99

	fresh := s.State()
	assert.NotEqual(t, st.CurrentOptions[0], fresh.CurrentOptions[0])
	assert.Equal(t, 1, fresh.TotalCount)
}

func TestState_QuestionIsolatedFromBankAndOtherSessions(t *testing.T) {
	b := bank.New([]bank.QuestionRecord{verbQuestion()})
	s1 := New(b, WithRand(&seqRand{}))
	s2 := New(b, WithRand(&seqRand{}))
	require.NoError(t, s1.NewQuestion())

	st := s1.State()
	st.CurrentQuestion.Prompt = "changed"
	st.CurrentQuestion.Explanations[1] = "changed"

	assert.Equal(t, "Hva betyr 'å gå'?", s1.State().CurrentQuestion.Prompt)
	assert.Equal(t, "Correct, å gå = to go", s1.State().CurrentQuestion.Explanation(1))

	require.NoError(t, s2.NewQuestion())
	assert.Equal(t, "Hva betyr 'å gå'?", s2.State().CurrentQuestion.Prompt)
	assert.Equal(t, "Correct, å gå = to go", b.Records()[0].Explanation(1))

	require.NoError(t, s1.SelectAnswer("to go"))
	res, err := s1.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Correct, å gå = to go", res.Explanation)
}

func TestCounters_Accumulate(t *testing.T) {
	b := bank.New([]bank.QuestionRecord{verbQuestion(), prepQuestion()})
	s := New(b, WithRand(NewRand(99)))

	wantCorrect := 0
	for i := 0; i < 20; i++ {
		require.NoError(t, s.NewQuestion())
		st := s.State()
		pick := st.CurrentOptions[i%3]
		require.NoError(t, s.SelectAnswer(pick.Text))
		res, err := s.Submit()
		require.NoError(t, err)
		assert.Equal(t, pick.IsCorrect, res.IsCorrect)
		if pick.IsCorrect {
			wantCorrect++
		}
	}

	st := s.State()
	assert.Equal(t, 20, st.TotalCount)
	assert.Equal(t, wantCorrect, st.CorrectCount)
	assert.InDelta(t, float64(wantCorrect)/20*100, s.Accuracy(), 1e-9)
}

func TestBuildSummary(t *testing.T) {
	s := oneRowSession(NewRand(5))
	require.NoError(t, s.NewQuestion())
	require.NoError(t, s.SelectAnswer("to go"))
	_, err := s.Submit()
	require.NoError(t, err)
	require.NoError(t, s.NewQuestion())

	sum := BuildSummary(s)
	assert.Equal(t, "test-session-id", sum.SessionID)
	assert.Equal(t, 2, sum.TotalQuestions)
	assert.Equal(t, 1, sum.TotalCorrect)
	assert.InDelta(t, 50.0, sum.Accuracy, 1e-9)
	assert.Equal(t, 1, sum.BankSize)
	assert.Equal(t, bank.AllCategories, sum.Category)
	assert.Equal(t, 1, sum.CategorySize)
	assert.Equal(t, map[string]int{"Verb": 1}, sum.CategoryCounts)

	s.SetCategory("Substantiv")
	assert.Equal(t, 0, BuildSummary(s).CategorySize)
}

func TestPhase_String(t *testing.T) {
	if PhaseUnasked.String() != "unasked" || PhaseAsked.String() != "asked" || PhaseEvaluated.String() != "evaluated" {
		t.Errorf("unexpected phase names: %s %s %s", PhaseUnasked, PhaseAsked, PhaseEvaluated)
	}
}
