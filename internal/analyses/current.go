package analyses

import (
	"context"
	"sync"
)

// CurrentStore holds the most recent successful result. It is the only state
// shared between requests and is safe for concurrent use.
type CurrentStore struct {
	mu     sync.RWMutex
	result *Result
}

// NewCurrentStore constructs an empty CurrentStore.
func NewCurrentStore() *CurrentStore {
	return &CurrentStore{}
}

// Set replaces the current result. Results are never merged; the last call wins.
func (s *CurrentStore) Set(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	items := make([]AnalysisResultItem, len(result.Items))
	copy(items, result.Items)
	result.Items = items

	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
	return nil
}

// Get returns the current result, or ErrNotFound when nothing has been analyzed yet.
func (s *CurrentStore) Get(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return Result{}, ErrNotFound
	}
	out := *s.result
	out.Items = make([]AnalysisResultItem, len(s.result.Items))
	copy(out.Items, s.result.Items)
	return out, nil
}

// Items returns the current record sequence, empty when nothing has been analyzed.
func (s *CurrentStore) Items(ctx context.Context) []AnalysisResultItem {
	result, err := s.Get(ctx)
	if err != nil {
		return []AnalysisResultItem{}
	}
	return result.Items
}

// Reset clears the current result.
func (s *CurrentStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
}
