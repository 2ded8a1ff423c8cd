package bank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedIntner returns values from a fixed sequence, modulo n.
type fixedIntner struct {
	seq []int
	pos int
}

func (f *fixedIntner) IntN(n int) int {
	v := f.seq[f.pos%len(f.seq)]
	f.pos++
	return v % n
}

func testRecords() []QuestionRecord {
	return []QuestionRecord{
		{Category: "Verb", Prompt: "q0", Options: [3]string{"a", "b", "c"}, CorrectIndex: 1, Explanations: map[int]string{1: "e1", 2: "e2", 3: "e3"}},
		{Category: "Ordforråd", Prompt: "q1", Options: [3]string{"d", "e", "f"}, CorrectIndex: 2, Explanations: map[int]string{1: "e1", 2: "e2", 3: "e3"}},
		{Category: "Verb", Prompt: "q2", Options: [3]string{"g", "h", "i"}, CorrectIndex: 3, Explanations: map[int]string{1: "e1", 2: "e2", 3: "e3"}},
	}
}

func TestNew_AssignsIDsAndCategories(t *testing.T) {
	b := New(testRecords())

	require.Equal(t, 3, b.Len())
	for i, r := range b.Records() {
		assert.Equal(t, i, r.ID)
	}
	assert.Equal(t, []string{"Ordforråd", "Verb"}, b.Categories())
	assert.Equal(t, map[string]int{"Verb": 2, "Ordforråd": 1}, b.CategoryCounts())
}

func TestRecords_ReturnsCopy(t *testing.T) {
	b := New(testRecords())
	recs := b.Records()
	recs[0].Prompt = "mutated"

	recs[0].Explanations[1] = "mutated"

	fresh := b.Records()[0]
	if fresh.Prompt != "q0" {
		t.Error("Records() must not expose the bank's backing slice")
	}
	if fresh.Explanation(1) != "e1" {
		t.Errorf("Explanation(1) = %q, want %q", fresh.Explanation(1), "e1")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := testRecords()
	b := New(in)
	in[0].Prompt = "mutated"
	in[0].Explanations[2] = "mutated"

	got := b.Records()[0]
	assert.Equal(t, "q0", got.Prompt)
	assert.Equal(t, "e2", got.Explanation(2))
}

func TestSample_ReturnsPrivateCopy(t *testing.T) {
	b := New(testRecords())

	q, err := b.Sample(&fixedIntner{seq: []int{0}}, "")
	require.NoError(t, err)
	q.Prompt = "mutated"
	q.Explanations[1] = "mutated"

	again, err := b.Sample(&fixedIntner{seq: []int{0}}, "")
	require.NoError(t, err)
	assert.Equal(t, "q0", again.Prompt)
	assert.Equal(t, "e1", again.Explanation(1))
}

func TestQuestionRecord_Clone(t *testing.T) {
	q := testRecords()[0]
	c := q.Clone()
	c.Explanations[3] = "changed"
	assert.Equal(t, "e3", q.Explanation(3))

	empty := QuestionRecord{Prompt: "p"}
	assert.Nil(t, empty.Clone().Explanations)
}

func TestSample_Unfiltered(t *testing.T) {
	b := New(testRecords())
	rng := &fixedIntner{seq: []int{2, 0, 1}}

	tests := []string{"q2", "q0", "q1"}
	for _, want := range tests {
		q, err := b.Sample(rng, "")
		require.NoError(t, err)
		assert.Equal(t, want, q.Prompt)
	}
}

func TestSample_AllCategoriesIsUnfiltered(t *testing.T) {
	b := New(testRecords())
	q, err := b.Sample(&fixedIntner{seq: []int{1}}, AllCategories)
	require.NoError(t, err)
	assert.Equal(t, "q1", q.Prompt)
}

func TestSample_CategoryFilter(t *testing.T) {
	b := New(testRecords())
	rng := &fixedIntner{seq: []int{0, 1}}

	q, err := b.Sample(rng, "Verb")
	require.NoError(t, err)
	assert.Equal(t, "q0", q.Prompt)

	q, err = b.Sample(rng, "Verb")
	require.NoError(t, err)
	assert.Equal(t, "q2", q.Prompt)
}

func TestSample_FilterMatchesNothing(t *testing.T) {
	b := New(testRecords())
	_, err := b.Sample(&fixedIntner{seq: []int{0}}, "Substantiv")
	if !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("expected ErrEmptyBank, got %v", err)
	}
}

func TestSample_EmptyBank(t *testing.T) {
	b := New(nil)
	_, err := b.Sample(&fixedIntner{seq: []int{0}}, "")
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestSample_Uniform(t *testing.T) {
	b := New(testRecords())
	counts := make(map[string]int)
	rng := &fixedIntner{seq: []int{0, 1, 2}}
	for i := 0; i < 300; i++ {
		q, err := b.Sample(rng, "")
		require.NoError(t, err)
		counts[q.Prompt]++
	}
	for _, p := range []string{"q0", "q1", "q2"} {
		assert.Equal(t, 100, counts[p], "prompt %s", p)
	}
}

func TestQuestionRecord_Slot(t *testing.T) {
	q := testRecords()[1]

	assert.Equal(t, 1, q.Slot("d"))
	assert.Equal(t, 3, q.Slot("f"))
	assert.Equal(t, 0, q.Slot("zzz"))
	assert.Equal(t, "e", q.CorrectOption())
	assert.Equal(t, "e3", q.Explanation(3))
}
