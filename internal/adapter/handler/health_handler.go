package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"indexprice/internal/domain/model"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	storage pinger
	results pinger
	mode    model.SourceMode
	logger  *slog.Logger
}

func NewHealthHandler(storage, results pinger, mode model.SourceMode, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		results: results,
		mode:    mode,
		logger:  logger,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "healthy"
	resultsStatus := "healthy"
	overallStatus := "healthy"

	if err := h.storage.Ping(ctx); err != nil {
		dbStatus = "unhealthy"
		overallStatus = "degraded"
		h.logger.Warn("database health check failed", "error", err)
	}

	if err := h.results.Ping(ctx); err != nil {
		resultsStatus = "unhealthy"
		overallStatus = "degraded"
		h.logger.Warn("result store health check failed", "error", err)
	}

	response := map[string]interface{}{
		"status": overallStatus,
		"mode":   h.mode.String(),
		"checks": map[string]string{
			"database": dbStatus,
			"results":  resultsStatus,
		},
	}

	statusCode := http.StatusOK
	if overallStatus == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, response)
}
