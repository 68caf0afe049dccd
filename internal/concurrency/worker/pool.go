package worker

import (
	"context"
	"log/slog"
	"sync"

	"indexprice/internal/domain/model"
)

// Runner executes one ingestion job and reports its outcome.
type Runner interface {
	Run(ctx context.Context, job model.IngestJob) model.RunResult
}

// Pool runs ingestion jobs on a fixed number of workers.
type Pool struct {
	workers int
	runner  Runner
	logger  *slog.Logger
}

func NewPool(workers int, runner Runner, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		runner:  runner,
		logger:  logger,
	}
}

// Start reads jobs from in until it is closed or ctx is done. The returned
// channel carries one result per started job, including jobs that finish
// after ctx is done, and is closed when all workers exit. Callers must drain
// it.
func (p *Pool) Start(ctx context.Context, in <-chan model.IngestJob) <-chan model.RunResult {
	out := make(chan model.RunResult)
	var wg sync.WaitGroup

	wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func(id int) {
			defer wg.Done()
			p.workerLoop(ctx, id, in, out)
		}(i)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func (p *Pool) workerLoop(ctx context.Context, id int, in <-chan model.IngestJob, out chan<- model.RunResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-in:
			if !ok {
				return
			}
			p.logger.Debug("worker: picked up job", "worker", id, "ticker", job.Ticker)
			// The result is always delivered; readers drain out until it closes.
			out <- p.runner.Run(ctx, job)
		}
	}
}
