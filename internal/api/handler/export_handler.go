package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/service"
	"github.com/blaisecz/cogni-tracker/pkg/problem"
)

// MaxImportBytes caps the size of an import document.
const MaxImportBytes = 10 << 20

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(service service.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export handles GET /v1/users/{userId}/export
// @Summary Export all records
// @Description Every check-in and session of the user as one JSON document.
// @Tags export
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.DataExport
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/export [get]
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	doc, err := h.service.Export(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to export records")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="cogni-export-%s.json"`, userID))
	writeJSON(w, http.StatusOK, doc)
}

// Import handles POST /v1/users/{userId}/import
// @Summary Import records
// @Description Appends records from an export document. Records whose ID already exists are skipped. One malformed record rejects the whole document.
// @Tags export
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.DataExport true "Export document"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 413 {object} problem.Problem "Document too large"
// @Failure 422 {object} problem.Problem "Malformed record"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/import [post]
func (h *ExportHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			problem.PayloadTooLarge(fmt.Sprintf("Import documents are limited to %d bytes", MaxImportBytes)).Write(w)
			return
		}
		problem.BadRequest("Failed to read body").Write(w)
		return
	}

	doc, err := domain.ParseDataExport(body)
	if err != nil {
		problem.MalformedRecord(err.Error()).Write(w)
		return
	}

	result, err := h.service.Import(r.Context(), userID, doc)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to import records")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
