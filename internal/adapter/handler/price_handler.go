package handler

import (
	"log/slog"
	"net/http"

	"indexprice/internal/application/usecase"
)

type PriceHandler struct {
	useCase *usecase.PriceUseCase
	logger  *slog.Logger
}

func NewPriceHandler(useCase *usecase.PriceUseCase, logger *slog.Logger) *PriceHandler {
	return &PriceHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// ListPrices serves GET /prices?ticker=&skip=&limit=.
func (h *PriceHandler) ListPrices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	skip, limit, err := usecase.ParsePage(q.Get("skip"), q.Get("limit"))
	if err != nil {
		handleError(w, r, h.logger, err, "Error fetching prices")
		return
	}

	page, err := h.useCase.ListPrices(r.Context(), q.Get("ticker"), skip, limit)
	if err != nil {
		handleError(w, r, h.logger, err, "Error fetching prices")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// GetLatestPrice serves GET /latest?ticker=.
func (h *PriceHandler) GetLatestPrice(w http.ResponseWriter, r *http.Request) {
	latest, err := h.useCase.GetLatestPrice(r.Context(), r.URL.Query().Get("ticker"))
	if err != nil {
		handleError(w, r, h.logger, err, "Error fetching latest price")
		return
	}

	writeJSON(w, http.StatusOK, latest)
}

// GetPricesByDate serves GET /prices-by-date?ticker=&start_date=&end_date=&skip=&limit=.
func (h *PriceHandler) GetPricesByDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	skip, limit, err := usecase.ParsePage(q.Get("skip"), q.Get("limit"))
	if err != nil {
		handleError(w, r, h.logger, err, "Error fetching prices by date")
		return
	}

	page, err := h.useCase.GetPricesByDate(r.Context(), q.Get("ticker"), q.Get("start_date"), q.Get("end_date"), skip, limit)
	if err != nil {
		handleError(w, r, h.logger, err, "Error fetching prices by date")
		return
	}

	writeJSON(w, http.StatusOK, page)
}
