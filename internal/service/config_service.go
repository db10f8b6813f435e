package service

import (
	"context"
	"errors"
	"fmt"

	"sugarsense/internal/model"
	"sugarsense/internal/repository"
	"sugarsense/internal/scoring"
)

var ErrUnknownPairFood = errors.New("comparison pair references an unknown food")

// ConfigService manages the single active experience configuration
type ConfigService struct {
	configRepo repository.ConfigRepo
	foodRepo   repository.FoodRepo
}

// NewConfigService creates a new config service
func NewConfigService(configRepo repository.ConfigRepo, foodRepo repository.FoodRepo) *ConfigService {
	return &ConfigService{
		configRepo: configRepo,
		foodRepo:   foodRepo,
	}
}

// GetActive returns the active configuration. A missing document resolves to
// an empty configuration with the default pair threshold, never an error.
func (s *ConfigService) GetActive(ctx context.Context) (*model.ExperienceConfig, error) {
	cfg, err := s.configRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &model.ExperienceConfig{
			Pairs:         []model.ComparisonPair{},
			PairThreshold: scoring.DefaultPairThreshold,
		}
	}
	if cfg.PairThreshold <= 0 {
		cfg.PairThreshold = scoring.DefaultPairThreshold
	}
	return cfg, nil
}

// Update replaces the active configuration after checking that every pair
// references existing foods.
func (s *ConfigService) Update(ctx context.Context, cfg *model.ExperienceConfig) error {
	foods, err := s.foodRepo.List(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(foods))
	for _, f := range foods {
		known[f.ID] = true
	}
	for _, pair := range cfg.Pairs {
		if !known[pair.FoodAID] || !known[pair.FoodBID] {
			return fmt.Errorf("%w: %s vs %s", ErrUnknownPairFood, pair.FoodAID, pair.FoodBID)
		}
	}

	if cfg.PairThreshold <= 0 {
		cfg.PairThreshold = scoring.DefaultPairThreshold
	}
	return s.configRepo.SaveActive(ctx, cfg)
}
