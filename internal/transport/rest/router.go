package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"sugarsense/internal/service"
	"sugarsense/internal/transport/rest/handler"
	"sugarsense/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	FoodService        *service.FoodService
	ConfigService      *service.ConfigService
	ParticipantService *service.ParticipantService
	RankingService     *service.RankingService
	InsightService     *service.InsightService
	ExportService      *service.ExportService
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	foodHandler := handler.NewFoodHandler(c.FoodService)
	configHandler := handler.NewConfigHandler(c.ConfigService)
	participantHandler := handler.NewParticipantHandler(c.ParticipantService)
	rankingHandler := handler.NewRankingHandler(c.RankingService)
	insightHandler := handler.NewInsightHandler(c.InsightService)
	exportHandler := handler.NewExportHandler(c.ExportService)
	wsHandler := ws.NewHandler(c.WSHub)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Reference foods
	v1.HandleFunc("/foods", foodHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/foods", foodHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/foods/{foodId}", foodHandler.Update).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/foods/{foodId}", foodHandler.Delete).Methods("DELETE", "OPTIONS")

	// Experience configuration
	v1.HandleFunc("/config", configHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/config", configHandler.Update).Methods("PUT", "OPTIONS")

	// Participants
	v1.HandleFunc("/participants", participantHandler.Complete).Methods("POST", "OPTIONS")
	v1.HandleFunc("/participants", participantHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/participants", participantHandler.PurgeAll).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/participants/{participantId}", participantHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/participants/{participantId}/nickname", participantHandler.UpdateNickname).Methods("PATCH", "OPTIONS")

	// Ranking; the stats route must come before the wildcard
	v1.HandleFunc("/ranking", rankingHandler.GetRanking).Methods("GET", "OPTIONS")
	v1.HandleFunc("/ranking/stats", rankingHandler.GetStats).Methods("GET", "OPTIONS")
	v1.HandleFunc("/ranking/{participantId}", rankingHandler.GetRank).Methods("GET", "OPTIONS")
	v1.HandleFunc("/leaderboard", rankingHandler.GetLeaderboard).Methods("GET", "OPTIONS")

	// AI insights
	v1.HandleFunc("/insights", insightHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/insights/refresh", insightHandler.Refresh).Methods("POST", "OPTIONS")

	// Export
	v1.HandleFunc("/export/participants.csv", exportHandler.ParticipantsCSV).Methods("GET", "OPTIONS")

	// WebSocket (admin dashboard live updates)
	v1.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
