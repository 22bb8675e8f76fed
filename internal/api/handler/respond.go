package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseUserID reads the userId path parameter, writing a 400 when it is not a UUID.
func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

// writeServiceError maps domain errors to problem responses. notFound is the
// detail used for ErrNotFound, failure the detail for anything unexpected.
func writeServiceError(w http.ResponseWriter, err error, notFound, failure string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(notFound).Write(w)
	case errors.Is(err, domain.ErrConflict):
		problem.Conflict("A record with this ID already exists").Write(w)
	case errors.Is(err, domain.ErrInvalidPeriod):
		problem.BadRequest("period must be one of 7, 14 or 30").Write(w)
	case errors.Is(err, domain.ErrMalformedRecord):
		problem.MalformedRecord(err.Error()).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	default:
		problem.InternalError(failure).Write(w)
	}
}
