package session

import (
	"time"

	"github.com/cdiazbas/norwegian-quiz/internal/bank"
)

// Summary holds the data displayed on the statistics screen.
type Summary struct {
	SessionID      string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64 // percentage, 0-100
	BankSize       int
	Category       string
	CategorySize   int            // questions eligible under Category
	CategoryCounts map[string]int // questions per bank category
}

// BuildSummary creates a Summary from the session's counters.
func BuildSummary(s *Session) *Summary {
	counts := s.bank.CategoryCounts()

	size := s.bank.Len()
	if s.state.Category != bank.AllCategories {
		size = counts[s.state.Category]
	}

	return &Summary{
		SessionID:      s.state.ID,
		Duration:       time.Since(s.startTime),
		TotalQuestions: s.state.TotalCount,
		TotalCorrect:   s.state.CorrectCount,
		Accuracy:       s.state.Accuracy(),
		BankSize:       s.bank.Len(),
		Category:       s.state.Category,
		CategorySize:   size,
		CategoryCounts: counts,
	}
}
