package port

import (
	"context"
	"time"

	"indexprice/internal/domain/model"
)

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock

// TickRepository persists and queries price ticks. Results are ordered by
// timestamp descending, ties broken by id descending.
type TickRepository interface {
	// WithinTx runs fn in a transaction. Insert calls made with the ctx passed
	// to fn join that transaction. The transaction is committed only if fn
	// returns nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	Insert(ctx context.Context, tick model.Tick) (model.Tick, error)
	ListByTicker(ctx context.Context, ticker string, offset, limit int) ([]model.Tick, error)
	// LatestByTicker returns nil, nil when the ticker has no ticks.
	LatestByTicker(ctx context.Context, ticker string) (*model.Tick, error)
	RangeByTicker(ctx context.Context, ticker string, start, end time.Time, offset, limit int) ([]model.Tick, error)
	CountByTicker(ctx context.Context, ticker string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}
