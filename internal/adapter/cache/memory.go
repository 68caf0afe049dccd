package cache

import (
	"context"
	"sync"

	"indexprice/internal/domain/model"
)

// MemoryRunStore is used when Redis is disabled. It keeps the last
// history results per ticker for the lifetime of the process.
type MemoryRunStore struct {
	mu      sync.RWMutex
	history int
	runs    map[string][]model.RunResult
}

func NewMemoryRunStore(history int) *MemoryRunStore {
	if history <= 0 {
		history = DefaultHistory
	}
	return &MemoryRunStore{
		history: history,
		runs:    make(map[string][]model.RunResult),
	}
}

func (m *MemoryRunStore) SaveRun(_ context.Context, result model.RunResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	runs := append([]model.RunResult{result}, m.runs[result.Ticker]...)
	if len(runs) > m.history {
		runs = runs[:m.history]
	}
	m.runs[result.Ticker] = runs
	return nil
}

func (m *MemoryRunStore) RecentRuns(_ context.Context, ticker string, limit int) ([]model.RunResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := m.runs[ticker]
	if limit < len(runs) {
		runs = runs[:max(limit, 0)]
	}
	out := make([]model.RunResult, len(runs))
	copy(out, runs)
	return out, nil
}

func (m *MemoryRunStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryRunStore) Close() error {
	return nil
}
