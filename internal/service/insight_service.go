package service

import (
	"context"
	"log"
	"time"

	"sugarsense/internal/cache"
	"sugarsense/internal/model"
	"sugarsense/internal/repository"
	"sugarsense/internal/scoring"
)

// InsightService produces the AI-generated narrative over aggregated
// results. Reports are cached per language; the stored record set is only
// re-aggregated on refresh.
type InsightService struct {
	participantRepo repository.ParticipantRepo
	foodRepo        repository.FoodRepo
	configSvc       *ConfigService
	insightRepo     repository.InsightRepo
	insightCache    cache.InsightCache
	gemini          *GeminiClient
	broadcaster     Broadcaster
}

// NewInsightService creates a new insight service
func NewInsightService(
	participantRepo repository.ParticipantRepo,
	foodRepo repository.FoodRepo,
	configSvc *ConfigService,
	insightRepo repository.InsightRepo,
	insightCache cache.InsightCache,
	gemini *GeminiClient,
) *InsightService {
	return &InsightService{
		participantRepo: participantRepo,
		foodRepo:        foodRepo,
		configSvc:       configSvc,
		insightRepo:     insightRepo,
		insightCache:    insightCache,
		gemini:          gemini,
	}
}

// SetBroadcaster injects the WebSocket broadcaster
func (s *InsightService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Get returns the insight report for a language, generating it on first
// request. Cache first, then Mongo, then a fresh generation.
func (s *InsightService) Get(ctx context.Context, language string) (*model.InsightReport, error) {
	language = normalizeLanguage(language)

	if report, err := s.insightCache.Get(ctx, language); err == nil && report != nil {
		return report, nil
	}

	report, err := s.insightRepo.Get(ctx, language)
	if err != nil {
		return nil, err
	}
	if report != nil {
		if err := s.insightCache.Set(ctx, report); err != nil {
			log.Printf("insight cache set failed: %v", err)
		}
		return report, nil
	}

	return s.Refresh(ctx, language)
}

// Refresh re-aggregates the stored records and regenerates the report
func (s *InsightService) Refresh(ctx context.Context, language string) (*model.InsightReport, error) {
	language = normalizeLanguage(language)

	stats, err := s.BuildStats(ctx, language)
	if err != nil {
		return nil, err
	}

	report, err := s.gemini.GenerateInsights(ctx, stats, language)
	if err != nil {
		return nil, err
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	if err := s.insightRepo.Save(ctx, report); err != nil {
		return nil, err
	}
	if err := s.insightCache.Set(ctx, report); err != nil {
		log.Printf("insight cache set failed: %v", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast("insights_ready", map[string]string{"language": language})
	}

	return report, nil
}

// BuildStats aggregates the full record set into the generator payload
func (s *InsightService) BuildStats(ctx context.Context, language string) (*model.AggregateStats, error) {
	participants, err := s.participantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	foods, err := s.foodRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.configSvc.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	stats := scoring.Aggregate(participants, foods, cfg.Pairs, cfg.PairThreshold, language)
	return &stats, nil
}

func normalizeLanguage(language string) string {
	if language == "en" {
		return "en"
	}
	return "it" // Italian-first exhibit
}
