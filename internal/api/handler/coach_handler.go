package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/cogni-tracker/internal/api/validation"
	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/service"
	"github.com/blaisecz/cogni-tracker/pkg/problem"
)

type CoachHandler struct {
	service service.CoachService
}

func NewCoachHandler(service service.CoachService) *CoachHandler {
	return &CoachHandler{service: service}
}

// Ask handles POST /v1/users/{userId}/coach
// @Summary Ask the AI coach
// @Description Answers a question using the user's 30-day report as context. Generator failures return the fallback text with fallback=true, never an error status. traceId is set when Langfuse is enabled and can be rated via the feedback endpoint.
// @Tags coach
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CoachRequest true "Question"
// @Success 200 {object} domain.CoachReply
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/coach [post]
func (h *CoachHandler) Ask(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.CoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	reply, err := h.service.Ask(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to answer")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

// Feedback handles POST /v1/users/{userId}/coach/feedback
// @Summary Rate a coach reply
// @Description Records a 1-5 rating and optional comment against the reply's traceId.
// @Tags coach
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CoachFeedbackRequest true "Feedback"
// @Success 204 "Feedback recorded"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/coach/feedback [post]
func (h *CoachHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.CoachFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, err, "User not found", "Failed to record feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
