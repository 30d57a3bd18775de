package usecase

import (
	"sync"

	"JaundiceAnalyzer/internal/domain"
)

// Results collects per-article outcomes from concurrently running jobs.
type Results struct {
	mu    sync.Mutex
	items []domain.AnalysisResult
}

// NewResults preallocates room for the expected number of jobs.
func NewResults(capacity int) *Results {
	return &Results{items: make([]domain.AnalysisResult, 0, capacity)}
}

// Add appends one outcome; safe for concurrent use.
func (r *Results) Add(result domain.AnalysisResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, result)
}

// Len returns the number of collected outcomes.
func (r *Results) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Items returns a copy of the collected outcomes in completion order.
func (r *Results) Items() []domain.AnalysisResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AnalysisResult, len(r.items))
	copy(out, r.items)
	return out
}
