package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sugarsense/internal/service"
)

// RankingHandler handles ranking and leaderboard endpoints
type RankingHandler struct {
	rankingSvc *service.RankingService
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(rankingSvc *service.RankingService) *RankingHandler {
	return &RankingHandler{rankingSvc: rankingSvc}
}

// GetRanking handles GET /v1/ranking
func (h *RankingHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.rankingSvc.GetRanking(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ranking": ranking})
}

// GetStats handles GET /v1/ranking/stats
func (h *RankingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rankingSvc.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetRank handles GET /v1/ranking/{participantId}
func (h *RankingHandler) GetRank(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["participantId"]
	rank, ok, err := h.rankingSvc.GetRank(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "participant not in ranking")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"participantId": id, "rank": rank})
}

// GetLeaderboard handles GET /v1/leaderboard?limit=N
func (h *RankingHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := h.rankingSvc.GetLeaderboard(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
