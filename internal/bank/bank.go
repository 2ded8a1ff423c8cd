package bank

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Intner draws a uniform integer in [0, n).
type Intner interface {
	IntN(n int) int
}

// Bank is an immutable, ordered collection of questions.
// It is never mutated after construction and may be shared freely.
type Bank struct {
	path       string
	records    []QuestionRecord
	categories []string
}

// New builds a Bank from already validated records. Record IDs are
// reassigned to their position.
func New(records []QuestionRecord) *Bank {
	recs := make([]QuestionRecord, len(records))
	for i, r := range records {
		recs[i] = r.Clone()
	}

	seen := make(map[string]bool)
	var cats []string
	for i := range recs {
		recs[i].ID = i
		if !seen[recs[i].Category] {
			seen[recs[i].Category] = true
			cats = append(cats, recs[i].Category)
		}
	}
	slices.Sort(cats)

	return &Bank{records: recs, categories: cats}
}

// Load reads a question bank from path. The format is chosen by file
// extension, ".csv" or ".json". Every failure is reported as a *LoadError.
func Load(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var records []QuestionRecord
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = decodeCSV(path, f)
	case ".json":
		records, err = decodeJSON(path, f)
	default:
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupported, ext)}
	}
	if err != nil {
		return nil, err
	}

	b := New(records)
	b.path = path
	return b, nil
}

// Path returns the source the bank was loaded from ("" for in-memory banks).
func (b *Bank) Path() string {
	return b.path
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.records)
}

// Records returns a copy of all records in source order.
func (b *Bank) Records() []QuestionRecord {
	out := make([]QuestionRecord, len(b.records))
	for i, r := range b.records {
		out[i] = r.Clone()
	}
	return out
}

// Categories returns the distinct categories, sorted.
func (b *Bank) Categories() []string {
	return slices.Clone(b.categories)
}

// CategoryCounts returns the number of questions per category.
func (b *Bank) CategoryCounts() map[string]int {
	counts := make(map[string]int, len(b.categories))
	for _, r := range b.records {
		counts[r.Category]++
	}
	return counts
}

// Matches reports whether a question passes the category filter.
// An empty filter or AllCategories matches everything.
func Matches(q *QuestionRecord, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return q.Category == category
}

// Sample draws one question uniformly at random from the rows that match
// category. It returns ErrEmptyBank if none match. The returned record is
// a private copy.
func (b *Bank) Sample(rng Intner, category string) (*QuestionRecord, error) {
	eligible := make([]int, 0, len(b.records))
	for i := range b.records {
		if Matches(&b.records[i], category) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		if category == "" || category == AllCategories {
			return nil, ErrEmptyBank
		}
		return nil, fmt.Errorf("category %q: %w", category, ErrEmptyBank)
	}

	q := b.records[eligible[rng.IntN(len(eligible))]].Clone()
	return &q, nil
}
