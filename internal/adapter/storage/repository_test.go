package storage_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"indexprice/internal/adapter/storage"
	"indexprice/internal/domain/model"
	"indexprice/internal/domain/port"
)

var base = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func tick(ticker, price string, ts time.Time) model.Tick {
	return model.Tick{Ticker: ticker, Price: decimal.RequireFromString(price), Timestamp: ts}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	runRepositoryTests(t, func(t *testing.T) port.TickRepository {
		return storage.NewMemoryStore()
	})
}

func TestPostgresAdapter(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	repo, err := storage.NewPostgresAdapter(ctx, url, storage.PoolOptions{MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.InitSchema(ctx))

	runRepositoryTests(t, func(t *testing.T) port.TickRepository {
		require.NoError(t, repo.Truncate(ctx))
		return repo
	})
}

// runRepositoryTests runs sequentially so a shared database can be truncated
// between cases.
func runRepositoryTests(t *testing.T, newRepo func(t *testing.T) port.TickRepository) {
	ctx := context.Background()

	t.Run("insert assigns id and created_at", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Insert(ctx, tick("btc_usd", "42000.5", base))
		require.NoError(t, err)
		second, err := repo.Insert(ctx, tick("btc_usd", "42001", base.Add(time.Minute)))
		require.NoError(t, err)

		require.NotZero(t, first.ID)
		require.Greater(t, second.ID, first.ID)
		require.False(t, first.CreatedAt.IsZero())
		require.True(t, first.Timestamp.Equal(base))
	})

	t.Run("price keeps eight decimal places", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Insert(ctx, tick("btc_usd", "12345.67890123", base))
		require.NoError(t, err)

		latest, err := repo.LatestByTicker(ctx, "btc_usd")
		require.NoError(t, err)
		require.NotNil(t, latest)
		require.Equal(t, "12345.67890123", latest.Price.StringFixed(8))
	})

	t.Run("list orders newest first and pages", func(t *testing.T) {
		repo := newRepo(t)

		for i, p := range []string{"100", "200", "300"} {
			_, err := repo.Insert(ctx, tick("btc_usd", p, base.Add(time.Duration(i)*time.Minute)))
			require.NoError(t, err)
		}
		_, err := repo.Insert(ctx, tick("eth_usd", "5", base.Add(time.Hour)))
		require.NoError(t, err)

		all, err := repo.ListByTicker(ctx, "btc_usd", 0, 100)
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, "300", all[0].Price.String())
		require.Equal(t, "200", all[1].Price.String())
		require.Equal(t, "100", all[2].Price.String())

		page, err := repo.ListByTicker(ctx, "btc_usd", 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.Equal(t, "200", page[0].Price.String())

		beyond, err := repo.ListByTicker(ctx, "btc_usd", 10, 5)
		require.NoError(t, err)
		require.Empty(t, beyond)

		n, err := repo.CountByTicker(ctx, "btc_usd")
		require.NoError(t, err)
		require.EqualValues(t, 3, n)
	})

	t.Run("equal timestamps break ties by id", func(t *testing.T) {
		repo := newRepo(t)

		older, err := repo.Insert(ctx, tick("btc_usd", "1", base))
		require.NoError(t, err)
		newer, err := repo.Insert(ctx, tick("btc_usd", "2", base))
		require.NoError(t, err)

		all, err := repo.ListByTicker(ctx, "btc_usd", 0, 10)
		require.NoError(t, err)
		require.Equal(t, []int64{newer.ID, older.ID}, []int64{all[0].ID, all[1].ID})

		latest, err := repo.LatestByTicker(ctx, "btc_usd")
		require.NoError(t, err)
		require.Equal(t, newer.ID, latest.ID)
	})

	t.Run("latest is nil without ticks", func(t *testing.T) {
		repo := newRepo(t)

		latest, err := repo.LatestByTicker(ctx, "eth_usd")
		require.NoError(t, err)
		require.Nil(t, latest)
	})

	t.Run("range is start inclusive and end exclusive", func(t *testing.T) {
		repo := newRepo(t)

		for i := 0; i < 4; i++ {
			_, err := repo.Insert(ctx, tick("btc_usd", "1", base.Add(time.Duration(i)*time.Hour)))
			require.NoError(t, err)
		}

		got, err := repo.RangeByTicker(ctx, "btc_usd", base.Add(time.Hour), base.Add(3*time.Hour), 0, 100)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.True(t, got[0].Timestamp.Equal(base.Add(2*time.Hour)))
		require.True(t, got[1].Timestamp.Equal(base.Add(time.Hour)))

		empty, err := repo.RangeByTicker(ctx, "eth_usd", base, base.Add(24*time.Hour), 0, 100)
		require.NoError(t, err)
		require.Empty(t, empty)
	})

	t.Run("rolled back insert is not visible", func(t *testing.T) {
		repo := newRepo(t)
		boom := errors.New("boom")

		err := repo.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := repo.Insert(ctx, tick("btc_usd", "1", base)); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		n, err := repo.CountByTicker(ctx, "btc_usd")
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("committed insert is visible", func(t *testing.T) {
		repo := newRepo(t)

		var saved model.Tick
		err := repo.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			saved, err = repo.Insert(ctx, tick("btc_usd", "1", base))
			return err
		})
		require.NoError(t, err)

		latest, err := repo.LatestByTicker(ctx, "btc_usd")
		require.NoError(t, err)
		require.Equal(t, saved.ID, latest.ID)
	})
}
