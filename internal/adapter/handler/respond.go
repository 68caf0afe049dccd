package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"indexprice/internal/domain/model"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// handleError maps domain errors to status codes. Validation and not-found
// messages are returned verbatim; anything else gets the generic message.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, generic string) {
	var verr *model.ValidationError
	var nf *model.NotFoundError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Message)
	default:
		logger.Error(generic, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, generic)
	}
}
