package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"indexprice/internal/concurrency/fanin"
	"indexprice/internal/concurrency/worker"
	"indexprice/internal/domain/model"
	"indexprice/internal/domain/port"
)

const saveResultTimeout = 5 * time.Second

type IngestionConfig struct {
	Currencies       []string
	Interval         time.Duration
	MaxAttempts      int
	RetryDelay       time.Duration
	AttemptTimeout   time.Duration
	WorkersPerTicker int
}

// IngestionService fetches, normalizes and persists one tick per run, and
// schedules runs for every configured currency.
type IngestionService struct {
	source  port.PriceSource
	repo    port.TickRepository
	results port.RunResultStore
	logger  *slog.Logger
	cfg     IngestionConfig
	newID   func() string
	now     func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewIngestionService(source port.PriceSource, repo port.TickRepository, results port.RunResultStore, cfg IngestionConfig, logger *slog.Logger) *IngestionService {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.WorkersPerTicker <= 0 {
		cfg.WorkersPerTicker = 1
	}
	if len(cfg.Currencies) == 0 {
		cfg.Currencies = model.DefaultCurrencies
	}

	return &IngestionService{
		source:  source,
		repo:    repo,
		results: results,
		logger:  logger,
		cfg:     cfg,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Run performs one ingestion run with retries. It never panics on fetch or
// store failures; the outcome is reported in the returned RunResult.
func (s *IngestionService) Run(ctx context.Context, job model.IngestJob) model.RunResult {
	if job.Ticker == "" {
		job.Ticker = model.TickerFor(job.Currency)
	}

	result := model.RunResult{
		RunID:       s.newID(),
		Ticker:      job.Ticker,
		State:       model.RunPending,
		ScheduledAt: job.ScheduledAt,
		StartedAt:   s.now().UTC(),
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.cfg.RetryDelay), uint64(s.cfg.MaxAttempts-1)),
		ctx,
	)

	var saved model.Tick
	err := backoff.RetryNotify(func() error {
		result.Attempts++
		tick, err := s.attempt(ctx, job, &result)
		if err != nil {
			return err
		}
		saved = tick
		return nil
	}, policy, func(err error, next time.Duration) {
		s.logger.Warn("ingestion attempt failed, retrying",
			"ticker", job.Ticker, "run_id", result.RunID, "attempt", result.Attempts, "retry_in", next, "error", err)
	})

	result.FinishedAt = s.now().UTC()
	switch {
	case err == nil:
		result.State = model.RunDone
		result.Outcome = model.OutcomeSuccess
		result.TickID = saved.ID
	case errors.Is(err, model.ErrMalformedObservation):
		result.State = model.RunFailed
		result.Outcome = model.OutcomeFatalFailure
		result.Error = err.Error()
	default:
		result.State = model.RunFailed
		result.Outcome = model.OutcomeRetryableFailure
		result.Error = err.Error()
	}
	return result
}

// attempt runs one fetch, normalize, persist cycle. Malformed data is
// returned as a permanent error so it is not retried.
func (s *IngestionService) attempt(ctx context.Context, job model.IngestJob, result *model.RunResult) (model.Tick, error) {
	if s.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.AttemptTimeout)
		defer cancel()
	}

	result.State = model.RunFetching
	raw, err := s.source.FetchIndexPrice(ctx, job.Ticker)
	if err != nil {
		if errors.Is(err, model.ErrMalformedObservation) {
			return model.Tick{}, backoff.Permanent(err)
		}
		return model.Tick{}, fmt.Errorf("fetching %s: %w", job.Ticker, err)
	}

	result.State = model.RunNormalizing
	tick, err := model.Normalize(raw, job.Currency)
	if err != nil {
		return model.Tick{}, backoff.Permanent(err)
	}

	result.State = model.RunPersisting
	var saved model.Tick
	err = s.repo.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.repo.Insert(ctx, tick)
		return err
	})
	if err != nil {
		return model.Tick{}, fmt.Errorf("persisting %s tick: %w", job.Ticker, err)
	}
	return saved, nil
}

// RunOnce runs a single ingestion for currency and records the result.
func (s *IngestionService) RunOnce(ctx context.Context, currency string) model.RunResult {
	result := s.Run(ctx, model.IngestJob{
		Currency:    currency,
		Ticker:      model.TickerFor(currency),
		ScheduledAt: s.now().UTC(),
	})
	s.record(result)
	return result
}

// Start schedules a run per currency immediately and then every interval.
// Each currency has its own worker pool, so a hanging or retrying run only
// delays later runs of the same currency.
func (s *IngestionService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return errors.New("ingestion service already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	outputs := make([]<-chan model.RunResult, 0, len(s.cfg.Currencies))
	for _, currency := range s.cfg.Currencies {
		pool := worker.NewPool(s.cfg.WorkersPerTicker, s, s.logger.With("currency", currency))
		outputs = append(outputs, pool.Start(runCtx, s.schedule(runCtx, currency)))
	}

	// Results are drained until every pool exits so runs that finish during
	// shutdown are still recorded.
	results := fanin.FanIn(context.Background(), outputs...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range results {
			s.record(r)
		}
	}()

	s.cancel = cancel
	s.done = done
	s.logger.Info("ingestion service started",
		"currencies", s.cfg.Currencies, "interval", s.cfg.Interval.String(), "workers_per_ticker", s.cfg.WorkersPerTicker, "source", s.source.Name())
	return nil
}

// Stop cancels scheduling and in-flight runs and waits for workers to exit.
func (s *IngestionService) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("ingestion service stopped")
}

func (s *IngestionService) schedule(ctx context.Context, currency string) <-chan model.IngestJob {
	out := make(chan model.IngestJob)
	ticker := model.TickerFor(currency)

	go func() {
		defer close(out)
		t := time.NewTicker(s.cfg.Interval)
		defer t.Stop()

		for {
			job := model.IngestJob{Currency: currency, Ticker: ticker, ScheduledAt: s.now().UTC()}
			select {
			case out <- job:
			case <-ctx.Done():
				return
			}

			select {
			case <-t.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (s *IngestionService) record(r model.RunResult) {
	log := s.logger.With("ticker", r.Ticker, "run_id", r.RunID, "attempts", r.Attempts)
	switch r.Outcome {
	case model.OutcomeSuccess:
		log.Info("ingested tick", "tick_id", r.TickID, "scheduled_at", r.ScheduledAt, "duration", r.FinishedAt.Sub(r.StartedAt))
	case model.OutcomeFatalFailure:
		log.Error("ingestion run failed on malformed data", "error", r.Error)
	default:
		log.Error("ingestion run failed", "error", r.Error)
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveResultTimeout)
	defer cancel()
	if err := s.results.SaveRun(ctx, r); err != nil {
		s.logger.Warn("failed to save run result", "ticker", r.Ticker, "run_id", r.RunID, "error", err)
	}
}
