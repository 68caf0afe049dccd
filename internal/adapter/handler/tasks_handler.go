package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"indexprice/internal/application/usecase"
	"indexprice/internal/domain/model"
	"indexprice/internal/domain/port"
)

const (
	defaultTaskLimit = 20
	maxTaskLimit     = 50
)

// TasksHandler lists recent ingestion runs for a ticker.
type TasksHandler struct {
	results port.RunResultStore
	tickers model.TickerSet
	logger  *slog.Logger
}

func NewTasksHandler(results port.RunResultStore, tickers model.TickerSet, logger *slog.Logger) *TasksHandler {
	return &TasksHandler{
		results: results,
		tickers: tickers,
		logger:  logger,
	}
}

type tasksResponse struct {
	Ticker string            `json:"ticker"`
	Runs   []model.RunResult `json:"runs"`
}

func (h *TasksHandler) RecentRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ticker, err := usecase.ValidateTicker(h.tickers, q.Get("ticker"))
	if err != nil {
		handleError(w, r, h.logger, err, "Error fetching tasks")
		return
	}

	limit := defaultTaskLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTaskLimit {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and "+strconv.Itoa(maxTaskLimit))
			return
		}
		limit = n
	}

	runs, err := h.results.RecentRuns(r.Context(), ticker, limit)
	if err != nil {
		handleError(w, r, h.logger, err, "Error fetching tasks")
		return
	}
	if runs == nil {
		runs = []model.RunResult{}
	}

	writeJSON(w, http.StatusOK, tasksResponse{Ticker: ticker, Runs: runs})
}
