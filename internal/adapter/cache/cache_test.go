package cache_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"indexprice/internal/adapter/cache"
	"indexprice/internal/domain/model"
	"indexprice/internal/domain/port"
)

func run(ticker string, n int, at time.Time) model.RunResult {
	return model.RunResult{
		RunID:      fmt.Sprintf("run-%d", n),
		Ticker:     ticker,
		State:      model.RunDone,
		Outcome:    model.OutcomeSuccess,
		Attempts:   1,
		TickID:     int64(n),
		StartedAt:  at,
		FinishedAt: at.Add(time.Second),
	}
}

func TestMemoryRunStore(t *testing.T) {
	t.Parallel()

	runStoreTests(t, cache.NewMemoryRunStore(3), "btc_usd")
}

func TestRedisRunStore(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	store, err := cache.NewRedisRunStore(context.Background(), url, time.Hour, 3)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	// unique ticker so reruns do not see earlier results
	runStoreTests(t, store, fmt.Sprintf("t%d_usd", time.Now().UnixNano()%1e6))
}

func runStoreTests(t *testing.T, store port.RunResultStore, ticker string) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, store.Ping(ctx))

	empty, err := store.RecentRuns(ctx, ticker, 10)
	require.NoError(t, err)
	require.Empty(t, empty)

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.SaveRun(ctx, run(ticker, i, now.Add(time.Duration(i)*time.Minute))))
	}

	// history is capped at 3, newest first
	got, err := store.RecentRuns(ctx, ticker, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "run-5", got[0].RunID)
	require.Equal(t, "run-4", got[1].RunID)
	require.Equal(t, "run-3", got[2].RunID)
	require.Equal(t, model.OutcomeSuccess, got[0].Outcome)
	require.True(t, got[0].FinishedAt.Equal(now.Add(5*time.Minute+time.Second)))

	one, err := store.RecentRuns(ctx, ticker, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	require.Equal(t, "run-5", one[0].RunID)
}
