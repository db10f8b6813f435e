package handler

import (
	"log"
	"net/http"

	"sugarsense/internal/service"
)

// ExportHandler handles CSV export endpoints
type ExportHandler struct {
	exportSvc *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportSvc *service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ParticipantsCSV handles GET /v1/export/participants.csv
func (h *ExportHandler) ParticipantsCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="participants.csv"`)

	if err := h.exportSvc.WriteParticipantsCSV(r.Context(), w); err != nil {
		// Headers are already out; all we can do is log
		log.Printf("csv export failed: %v", err)
	}
}
