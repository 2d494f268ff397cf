package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Glassyflute/adboard/internal/entity"
	"github.com/Glassyflute/adboard/internal/port/repository"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps the error taxonomy to status codes: validation failures
// become 422 with the field→messages map as body, unresolved references
// become 404, bad query parameters 400, everything else 500.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var verrs entity.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusUnprocessableEntity, verrs)
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidParameter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("request failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func respondDeleted(w http.ResponseWriter, id int64) {
	writeJSON(w, http.StatusOK, map[string]int64{"id deleted": id})
}
