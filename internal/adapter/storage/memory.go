package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"indexprice/internal/domain/model"
)

type memTxKey struct{}

type memTx struct {
	mu     sync.Mutex
	staged []model.Tick
}

// MemoryStore keeps ticks in process. Inserts made inside WithinTx become
// visible only when the transaction function returns nil.
type MemoryStore struct {
	mu     sync.RWMutex
	ticks  []model.Tick
	nextID int64
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		return fn(ctx)
	}

	tx := &memTx{}
	if err := fn(context.WithValue(ctx, memTxKey{}, tx)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks = append(m.ticks, tx.staged...)
	return nil
}

func (m *MemoryStore) Insert(ctx context.Context, tick model.Tick) (model.Tick, error) {
	if err := ctx.Err(); err != nil {
		return model.Tick{}, err
	}

	m.mu.Lock()
	m.nextID++
	tick.ID = m.nextID
	tick.Timestamp = tick.Timestamp.UTC()
	tick.CreatedAt = m.now().UTC()

	tx, inTx := ctx.Value(memTxKey{}).(*memTx)
	if !inTx {
		m.ticks = append(m.ticks, tick)
	}
	m.mu.Unlock()

	if inTx {
		tx.mu.Lock()
		tx.staged = append(tx.staged, tick)
		tx.mu.Unlock()
	}
	return tick, nil
}

func (m *MemoryStore) ListByTicker(ctx context.Context, ticker string, offset, limit int) ([]model.Tick, error) {
	return m.page(ctx, func(t model.Tick) bool { return t.Ticker == ticker }, offset, limit)
}

func (m *MemoryStore) LatestByTicker(ctx context.Context, ticker string) (*model.Tick, error) {
	ticks, err := m.ListByTicker(ctx, ticker, 0, 1)
	if err != nil || len(ticks) == 0 {
		return nil, err
	}
	return &ticks[0], nil
}

func (m *MemoryStore) RangeByTicker(ctx context.Context, ticker string, start, end time.Time, offset, limit int) ([]model.Tick, error) {
	return m.page(ctx, func(t model.Tick) bool {
		return t.Ticker == ticker && !t.Timestamp.Before(start) && t.Timestamp.Before(end)
	}, offset, limit)
}

func (m *MemoryStore) CountByTicker(ctx context.Context, ticker string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, t := range m.ticks {
		if t.Ticker == ticker {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) page(ctx context.Context, match func(model.Tick) bool, offset, limit int) ([]model.Tick, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	matched := make([]model.Tick, 0)
	for _, t := range m.ticks {
		if match(t) {
			matched = append(matched, t)
		}
	}
	m.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].Timestamp.After(matched[j].Timestamp)
		}
		return matched[i].ID > matched[j].ID
	})

	if offset >= len(matched) {
		return []model.Tick{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}
