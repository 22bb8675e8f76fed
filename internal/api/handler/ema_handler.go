package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/cogni-tracker/internal/api/validation"
	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/service"
	"github.com/blaisecz/cogni-tracker/pkg/problem"
)

type EMAHandler struct {
	service service.EMAService
}

func NewEMAHandler(service service.EMAService) *EMAHandler {
	return &EMAHandler{service: service}
}

// Create handles POST /v1/users/{userId}/emas
// @Summary Record a check-in
// @Description Append a mood, sleep and context check-in. Records are immutable; reusing an ID is a conflict.
// @Tags emas
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateEMARequest true "Check-in"
// @Success 201 {object} domain.EMAResponse
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "ID already used"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/emas [post]
func (h *EMAHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.CreateEMARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	ema, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to record check-in")
		return
	}

	writeJSON(w, http.StatusCreated, ema.ToResponse())
}

// List handles GET /v1/users/{userId}/emas
// @Summary List check-ins
// @Description All check-ins of the user in chronological order.
// @Tags emas
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {array} domain.EMAResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/emas [get]
func (h *EMAHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	emas, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list check-ins")
		return
	}

	resp := make([]domain.EMAResponse, len(emas))
	for i := range emas {
		resp[i] = emas[i].ToResponse()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Latest handles GET /v1/users/{userId}/emas/latest
// @Summary Most recent check-in
// @Tags emas
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.EMAResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found or no check-ins"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/emas/latest [get]
func (h *EMAHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	ema, err := h.service.Latest(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "No check-in found", "Failed to get check-in")
		return
	}

	writeJSON(w, http.StatusOK, ema.ToResponse())
}
