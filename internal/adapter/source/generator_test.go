package source_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"indexprice/internal/adapter/source"
	"indexprice/internal/domain/model"
)

func TestGenerator_RandomWalk(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	gen := source.NewGenerator(slog.New(slog.NewTextHandler(io.Discard, nil)),
		source.WithSeed(7),
		source.WithClock(func() time.Time { return now }),
	)

	prev := decimal.NewFromInt(60000)
	for i := 0; i < 20; i++ {
		raw, err := gen.FetchIndexPrice(context.Background(), "btc_usd")
		require.NoError(t, err)
		require.Equal(t, now.UnixMilli(), raw.TimestampMs)

		tick, err := model.Normalize(raw, "btc")
		require.NoError(t, err)
		require.True(t, tick.Price.IsPositive())

		// each step moves at most half a percent
		limit := prev.Mul(decimal.RequireFromString("0.0051"))
		require.True(t, tick.Price.Sub(prev).Abs().LessThanOrEqual(limit), "step %s -> %s", prev, tick.Price)
		prev = tick.Price
	}
}

func TestGenerator_FailureRate(t *testing.T) {
	t.Parallel()

	gen := source.NewGenerator(slog.New(slog.NewTextHandler(io.Discard, nil)), source.WithFailureRate(1))

	_, err := gen.FetchIndexPrice(context.Background(), "eth_usd")
	require.ErrorIs(t, err, model.ErrSourceUnavailable)
}

func TestGenerator_CanceledContext(t *testing.T) {
	t.Parallel()

	gen := source.NewGenerator(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.FetchIndexPrice(ctx, "eth_usd")
	require.ErrorIs(t, err, model.ErrSourceUnavailable)
}
