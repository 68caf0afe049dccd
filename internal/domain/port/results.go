package port

import (
	"context"

	"indexprice/internal/domain/model"
)

//go:generate mockgen -source=results.go -destination=mock/results_mock.go -package=mock

// RunResultStore keeps recent ingestion run outcomes per ticker.
type RunResultStore interface {
	SaveRun(ctx context.Context, result model.RunResult) error
	// RecentRuns returns up to limit results for ticker, newest first.
	RecentRuns(ctx context.Context, ticker string, limit int) ([]model.RunResult, error)
	Ping(ctx context.Context) error
	Close() error
}
