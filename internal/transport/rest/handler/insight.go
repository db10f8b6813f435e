package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"sugarsense/internal/service"
)

// InsightHandler handles AI insight endpoints
type InsightHandler struct {
	insightSvc *service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightSvc *service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// Get handles GET /v1/insights?lang=it|en
func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")

	report, err := h.insightSvc.Get(r.Context(), lang)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Refresh handles POST /v1/insights/refresh
func (h *InsightHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")

	// Regeneration calls the LLM; don't hold the request open for it
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		if _, err := h.insightSvc.Refresh(ctx, lang); err != nil {
			log.Printf("insight refresh failed: %v", err)
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "generating"})
}
