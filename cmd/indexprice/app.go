package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"indexprice/internal/adapter/cache"
	"indexprice/internal/adapter/handler"
	"indexprice/internal/adapter/source"
	"indexprice/internal/adapter/storage"
	"indexprice/internal/application/service"
	"indexprice/internal/application/usecase"
	"indexprice/internal/domain/model"
	"indexprice/internal/domain/port"
	"indexprice/internal/infrastructure/config"
	"indexprice/internal/infrastructure/server"
)

type App struct {
	config    *config.Config
	logger    *slog.Logger
	mode      model.SourceMode
	tickers   model.TickerSet
	repo      port.TickRepository
	results   port.RunResultStore
	server    *server.Server
	ingestion *service.IngestionService
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	mode, err := cfg.SourceMode()
	if err != nil {
		return nil, err
	}

	app := &App{
		config:  cfg,
		logger:  log,
		mode:    mode,
		tickers: model.NewTickerSet(cfg.Ingestion.Currencies),
	}

	if app.repo, err = app.openRepository(ctx); err != nil {
		return nil, err
	}
	if app.results, err = app.openResultStore(ctx); err != nil {
		app.repo.Close()
		return nil, err
	}
	return app, nil
}

func (a *App) openRepository(ctx context.Context) (port.TickRepository, error) {
	if a.config.Database.Store == "memory" {
		a.logger.Warn("using in-memory tick store, data is lost on exit")
		return storage.NewMemoryStore(), nil
	}

	pg, err := storage.NewPostgresAdapter(ctx, a.config.PostgresDSN(), storage.PoolOptions{
		MaxOpenConns:    a.config.Database.MaxOpenConns,
		MaxIdleConns:    a.config.Database.MaxIdleConns,
		ConnMaxLifetime: a.config.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}
	if err := pg.InitSchema(ctx); err != nil {
		pg.Close()
		return nil, err
	}
	a.logger.Info("database initialized")
	return pg, nil
}

func (a *App) openResultStore(ctx context.Context) (port.RunResultStore, error) {
	if !a.config.Redis.Enabled {
		return cache.NewMemoryRunStore(a.config.Redis.History), nil
	}

	rs, err := cache.NewRedisRunStore(ctx, a.config.RedisURL(), a.config.Redis.ResultTTL, a.config.Redis.History)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	return rs, nil
}

func (a *App) priceSource() port.PriceSource {
	if a.mode == model.TestMode {
		return source.NewGenerator(a.logger, source.WithFailureRate(a.config.Source.FailureRate))
	}
	return source.NewDeribitClient(
		source.WithBaseURL(a.config.Source.BaseURL),
		source.WithTimeout(a.config.Source.Timeout),
		source.WithLogger(a.logger),
	)
}

func (a *App) ingestionService() *service.IngestionService {
	if a.ingestion == nil {
		a.ingestion = service.NewIngestionService(a.priceSource(), a.repo, a.results, service.IngestionConfig{
			Currencies:       a.config.Ingestion.Currencies,
			Interval:         a.config.Ingestion.Interval,
			MaxAttempts:      a.config.Ingestion.MaxAttempts,
			RetryDelay:       a.config.Ingestion.RetryDelay,
			AttemptTimeout:   a.config.Ingestion.AttemptTimeout,
			WorkersPerTicker: a.config.Ingestion.WorkersPerTicker,
		}, a.logger)
	}
	return a.ingestion
}

func (a *App) router() http.Handler {
	return handler.NewRouter(
		handler.RouterConfig{BasePath: a.config.API.BasePath, RequestTimeout: a.config.Server.RequestTimeout},
		handler.NewPriceHandler(usecase.NewPriceUseCase(a.repo, a.tickers), a.logger),
		handler.NewHealthHandler(a.repo, a.results, a.mode, a.logger),
		handler.NewTasksHandler(a.results, a.tickers, a.logger),
		a.logger,
	)
}

// run starts the requested components and blocks until ctx is done or the
// HTTP server fails.
func (a *App) run(ctx context.Context, withAPI, withIngestion bool) error {
	errCh := make(chan error, 1)

	if withAPI {
		a.server = server.NewServer(a.config.Server.Port, a.router(), server.Options{
			ReadTimeout:  a.config.Server.ReadTimeout,
			WriteTimeout: a.config.Server.WriteTimeout,
		}, a.logger)
		go func() {
			if err := a.server.Start(); err != nil {
				errCh <- err
			}
		}()
	}

	if withIngestion {
		if err := a.ingestionService().Start(ctx); err != nil {
			a.shutdown()
			return err
		}
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutting down gracefully")
	case runErr = <-errCh:
	}

	a.shutdown()
	return runErr
}

func (a *App) shutdown() {
	if a.ingestion != nil {
		a.ingestion.Stop()
	}

	if a.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			a.logger.Error("shutdown error", "error", err)
		}
	}

	a.close()
	a.logger.Info("shutdown complete")
}

func (a *App) close() {
	if err := a.results.Close(); err != nil {
		a.logger.Error("failed to close result store", "error", err)
	}
	if err := a.repo.Close(); err != nil {
		a.logger.Error("failed to close tick store", "error", err)
	}
}

const startupTimeout = 30 * time.Second
