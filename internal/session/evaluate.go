package session

import (
	"fmt"

	"github.com/cdiazbas/norwegian-quiz/internal/bank"
)

// Result is the outcome of evaluating a selected option.
type Result struct {
	// IsCorrect reports whether the selected option is the correct one.
	IsCorrect bool

	// Selected is the option text that was evaluated.
	Selected string

	// SelectedSlot is the 1-based source slot of Selected.
	SelectedSlot int

	// Explanation is the feedback text for the selection.
	Explanation string

	// CorrectText is the text of the correct option.
	CorrectText string

	// CorrectExplanation accompanies CorrectText on wrong answers.
	CorrectExplanation string
}

// BuildOptions tags the question's options with their correctness and
// returns them in a uniformly random order.
func BuildOptions(q *bank.QuestionRecord, rng Rand) []DisplayOption {
	opts := make([]DisplayOption, len(q.Options))
	for i, text := range q.Options {
		opts[i] = DisplayOption{
			Text:      text,
			IsCorrect: i+1 == q.CorrectIndex,
		}
	}
	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// Evaluate scores selected against the displayed options of q.
//
// A correct answer always carries the explanation of source slot 1,
// whichever slot the correct option came from. A wrong answer carries the
// explanation of the source slot the selected text came from.
func Evaluate(options []DisplayOption, selected string, q *bank.QuestionRecord) (Result, error) {
	var chosen, correct *DisplayOption
	for i := range options {
		if options[i].Text == selected {
			chosen = &options[i]
		}
		if options[i].IsCorrect {
			correct = &options[i]
		}
	}
	if chosen == nil {
		return Result{}, fmt.Errorf("%w: %q is not a current option", ErrInconsistent, selected)
	}
	if correct == nil {
		return Result{}, fmt.Errorf("%w: no option is marked correct", ErrInconsistent)
	}

	slot := q.Slot(selected)
	if slot == 0 {
		return Result{}, fmt.Errorf("%w: %q is not an option of question %d", ErrInconsistent, selected, q.ID)
	}

	res := Result{
		IsCorrect:          chosen.IsCorrect,
		Selected:           selected,
		SelectedSlot:       slot,
		CorrectText:        correct.Text,
		CorrectExplanation: q.Explanation(1),
	}
	if res.IsCorrect {
		res.Explanation = q.Explanation(1)
	} else {
		res.Explanation = q.Explanation(slot)
	}
	return res, nil
}
