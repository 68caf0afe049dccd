package worker_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"indexprice/internal/concurrency/worker"
	"indexprice/internal/domain/model"
)

type runnerFunc func(ctx context.Context, job model.IngestJob) model.RunResult

func (f runnerFunc) Run(ctx context.Context, job model.IngestJob) model.RunResult { return f(ctx, job) }

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestPool_OneResultPerJob(t *testing.T) {
	t.Parallel()

	runner := runnerFunc(func(_ context.Context, job model.IngestJob) model.RunResult {
		return model.RunResult{Ticker: job.Ticker, Outcome: model.OutcomeSuccess}
	})
	pool := worker.NewPool(3, runner, discard())

	in := make(chan model.IngestJob)
	out := pool.Start(context.Background(), in)

	go func() {
		defer close(in)
		for i := 0; i < 10; i++ {
			in <- model.IngestJob{Ticker: "btc_usd"}
		}
	}()

	n := 0
	for r := range out {
		require.Equal(t, "btc_usd", r.Ticker)
		n++
	}
	require.Equal(t, 10, n)
}

func TestPool_SlowJobDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var once sync.Once
	runner := runnerFunc(func(_ context.Context, job model.IngestJob) model.RunResult {
		if job.Ticker == "btc_usd" {
			<-release
		}
		return model.RunResult{Ticker: job.Ticker}
	})
	pool := worker.NewPool(2, runner, discard())

	in := make(chan model.IngestJob, 2)
	in <- model.IngestJob{Ticker: "btc_usd"}
	in <- model.IngestJob{Ticker: "eth_usd"}
	close(in)

	out := pool.Start(context.Background(), in)
	defer once.Do(func() { close(release) })

	select {
	case r := <-out:
		require.Equal(t, "eth_usd", r.Ticker)
	case <-time.After(time.Second):
		t.Fatal("eth_usd run was blocked by btc_usd")
	}

	once.Do(func() { close(release) })
	r := <-out
	require.Equal(t, "btc_usd", r.Ticker)
}

func TestPool_StopsOnCancel(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	runner := runnerFunc(func(_ context.Context, job model.IngestJob) model.RunResult {
		calls.Add(1)
		return model.RunResult{Ticker: job.Ticker}
	})

	ctx, cancel := context.WithCancel(context.Background())
	out := worker.NewPool(0, runner, discard()).Start(ctx, make(chan model.IngestJob))
	cancel()

	select {
	case _, ok := <-out:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("pool did not stop")
	}
	require.Zero(t, calls.Load())
}

func TestPool_DeliversResultFinishedAfterCancel(t *testing.T) {
	t.Parallel()

	// Arrange: a job that only returns once the pool context is canceled.
	started := make(chan struct{})
	runner := runnerFunc(func(ctx context.Context, job model.IngestJob) model.RunResult {
		close(started)
		<-ctx.Done()
		return model.RunResult{Ticker: job.Ticker, Outcome: model.OutcomeRetryableFailure}
	})

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan model.IngestJob, 1)
	in <- model.IngestJob{Ticker: "btc_usd"}
	out := worker.NewPool(1, runner, discard()).Start(ctx, in)

	// Act
	<-started
	cancel()

	// Assert: the in-flight result is still delivered before out closes.
	select {
	case r, ok := <-out:
		require.True(t, ok)
		require.Equal(t, "btc_usd", r.Ticker)
	case <-time.After(time.Second):
		t.Fatal("in-flight result was not delivered")
	}
	_, ok := <-out
	require.False(t, ok)
}
