package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/api/validation"
	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/service"
	"github.com/blaisecz/cogni-tracker/pkg/problem"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create handles POST /v1/users/{userId}/sessions
// @Summary Record a game session
// @Description Append a completed game. Without emaId the latest check-in within the link window is linked, and isBaselineSession is taken from it.
// @Tags sessions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateSessionRequest true "Game result"
// @Success 201 {object} domain.GameSession
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "ID already used"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sessions [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to record session")
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// List handles GET /v1/users/{userId}/sessions
// @Summary List game sessions
// @Description Paginated session history, newest first. Filter by time range and game.
// @Tags sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of range (RFC3339)" format(date-time)
// @Param to query string false "End of range (RFC3339)" format(date-time)
// @Param game_type query string false "Game type" Enums(GO_NO_GO, VISUOSPATIAL_GRID, SIMON_SEQUENCE, VISUAL_SEARCH)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SessionListResponse
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sessions [get]
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseSessionFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list sessions")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseSessionFilter(r *http.Request) (domain.SessionFilter, []problem.FieldError) {
	var filter domain.SessionFilter
	var fieldErrors []problem.FieldError
	q := r.URL.Query()

	if fromStr := q.Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := q.Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if gt := q.Get("game_type"); gt != "" {
		gameType := domain.GameType(gt)
		if !gameType.Valid() {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "game_type",
				Message: "must be one of: GO_NO_GO, VISUOSPATIAL_GRID, SIMON_SEQUENCE, VISUAL_SEARCH",
			})
		} else {
			filter.GameType = &gameType
		}
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = q.Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
