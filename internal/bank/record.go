package bank

// NumOptions is the number of answer options every question carries.
const NumOptions = 3

// AllCategories is the category filter value that disables filtering.
const AllCategories = "Todas"

// QuestionRecord is one quiz item loaded from the bank.
type QuestionRecord struct {
	// ID is the 0-based row position in the source.
	ID int

	// Category is a free-form label such as "Verb" or "Preposisjoner".
	Category string

	// Prompt is the question text.
	Prompt string

	// Options holds the answer texts in source order (slots 1..3).
	Options [NumOptions]string

	// CorrectIndex is the 1-based slot of the correct option.
	CorrectIndex int

	// Explanations maps slot 1..3 to its explanation text.
	Explanations map[int]string
}

// Clone returns a copy of q that shares no memory with it.
func (q QuestionRecord) Clone() QuestionRecord {
	c := q
	if q.Explanations != nil {
		c.Explanations = make(map[int]string, len(q.Explanations))
		for slot, text := range q.Explanations {
			c.Explanations[slot] = text
		}
	}
	return c
}

// CorrectOption returns the text of the correct option.
func (q QuestionRecord) CorrectOption() string {
	return q.Options[q.CorrectIndex-1]
}

// Slot returns the 1-based source slot of the given option text,
// or 0 if the text is not one of the question's options.
func (q QuestionRecord) Slot(text string) int {
	for i, opt := range q.Options {
		if opt == text {
			return i + 1
		}
	}
	return 0
}

// Explanation returns the explanation for a 1-based slot.
func (q QuestionRecord) Explanation(slot int) string {
	return q.Explanations[slot]
}
