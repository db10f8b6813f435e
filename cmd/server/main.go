package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sugarsense/internal/cache"
	"sugarsense/internal/config"
	"sugarsense/internal/repository"
	"sugarsense/internal/service"
	"sugarsense/internal/transport/rest"
	"sugarsense/internal/transport/ws"
)

// @title SugarSense API
// @version 1.0
// @description Sugar perception survey with scoring, leaderboard and AI insights
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Log AI model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Insights model: %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("  API Key: configured ✓")
	} else {
		log.Println("  API Key: NOT SET (using mock insights)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	foodRepo := repository.NewFoodRepo(db)
	participantRepo := repository.NewParticipantRepo(db)
	configRepo := repository.NewConfigRepo(db)
	insightRepo := repository.NewInsightRepo(db)

	// Initialize caches
	leaderboard := cache.NewLeaderboardCache(rdb)
	insightCache := cache.NewInsightCache(rdb)

	// Initialize services
	foodSvc := service.NewFoodService(foodRepo)
	configSvc := service.NewConfigService(configRepo, foodRepo)
	participantSvc := service.NewParticipantService(participantRepo, foodRepo, configSvc, leaderboard)
	rankingSvc := service.NewRankingService(participantRepo, configSvc, leaderboard)
	gemini := service.NewGeminiClient()
	insightSvc := service.NewInsightService(participantRepo, foodRepo, configSvc, insightRepo, insightCache, gemini)
	exportSvc := service.NewExportService(rankingSvc)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	participantSvc.SetBroadcaster(wsHub)
	insightSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		FoodService:        foodSvc,
		ConfigService:      configSvc,
		ParticipantService: participantSvc,
		RankingService:     rankingSvc,
		InsightService:     insightSvc,
		ExportService:      exportSvc,
		WSHub:              wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET/POST /v1/foods")
		log.Println("  GET/PUT  /v1/config")
		log.Println("  POST/GET/DELETE /v1/participants")
		log.Println("  GET  /v1/ranking")
		log.Println("  GET  /v1/leaderboard")
		log.Println("  GET/POST /v1/insights")
		log.Println("  GET  /v1/export/participants.csv")
		log.Println("  WS   /v1/ws/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
