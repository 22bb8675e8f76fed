package handler

import (
	"net/http"
	"strconv"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/service"
	"github.com/blaisecz/cogni-tracker/pkg/problem"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Summary handles GET /v1/users/{userId}/analytics
// @Summary All-time analytics
// @Description Per-game averages, sleep impact, baseline comparison, peak hour, error correlation and fatigue. summary is null when the user has no sessions.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.AnalyticsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics [get]
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to compute analytics")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Profile handles GET /v1/users/{userId}/profile
// @Summary Lifetime profile statistics
// @Description Totals, streaks in local calendar days, average score and favorite game.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.ProfileStats
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/profile [get]
func (h *AnalyticsHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to compute profile")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Report handles GET /v1/users/{userId}/reports
// @Summary Period report
// @Description Aggregated report over the last 7, 14 or 30 days with coaching insights. With narrative=true an AI summary is attached; when generation fails the fallback text is returned and narrativeFallback is true.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param period query integer false "Period in days" Enums(7, 14, 30) default(7)
// @Param narrative query boolean false "Attach an AI narrative" default(false)
// @Success 200 {object} domain.Report
// @Failure 400 {object} problem.Problem "Invalid period"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/reports [get]
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	period := domain.PeriodWeek
	if p := r.URL.Query().Get("period"); p != "" {
		days, err := strconv.Atoi(p)
		if err != nil {
			problem.BadRequest("period must be one of 7, 14 or 30").Write(w)
			return
		}
		period = domain.ReportPeriod(days)
	}

	narrative := false
	if n := r.URL.Query().Get("narrative"); n != "" {
		v, err := strconv.ParseBool(n)
		if err != nil {
			problem.BadRequest("narrative must be a boolean").Write(w)
			return
		}
		narrative = v
	}

	report, err := h.service.Report(r.Context(), userID, period, narrative)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to build report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
