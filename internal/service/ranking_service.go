package service

import (
	"context"

	"sugarsense/internal/cache"
	"sugarsense/internal/repository"
	"sugarsense/internal/scoring"
)

// RankingService produces the authoritative ranking by recomputing every
// score from the stored records, and serves the fast cached leaderboard for
// dashboard polling.
type RankingService struct {
	participantRepo repository.ParticipantRepo
	configSvc       *ConfigService
	leaderboard     cache.LeaderboardCache
}

// NewRankingService creates a new ranking service
func NewRankingService(
	participantRepo repository.ParticipantRepo,
	configSvc *ConfigService,
	leaderboard cache.LeaderboardCache,
) *RankingService {
	return &RankingService{
		participantRepo: participantRepo,
		configSvc:       configSvc,
		leaderboard:     leaderboard,
	}
}

// GetRanking recomputes the full ranking from the stored records
func (s *RankingService) GetRanking(ctx context.Context) ([]scoring.RankedParticipant, error) {
	participants, err := s.participantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.configSvc.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.GenerateRanking(participants, cfg.Pairs, cfg.PairThreshold), nil
}

// GetRank returns a participant's dense rank. The second return is false
// when the participant does not exist.
func (s *RankingService) GetRank(ctx context.Context, participantID string) (int, bool, error) {
	ranking, err := s.GetRanking(ctx)
	if err != nil {
		return 0, false, err
	}
	rank, ok := scoring.FindParticipantRank(participantID, ranking)
	return rank, ok, nil
}

// GetStats aggregates the current ranking
func (s *RankingService) GetStats(ctx context.Context) (scoring.Stats, error) {
	ranking, err := s.GetRanking(ctx)
	if err != nil {
		return scoring.Stats{}, err
	}
	return scoring.RankingStats(ranking), nil
}

// GetLeaderboard serves the cached top-N, enriched with nicknames. Intended
// for frequent dashboard polling; may lag the authoritative ranking briefly.
func (s *RankingService) GetLeaderboard(ctx context.Context, limit int) ([]cache.LeaderboardEntry, error) {
	entries, err := s.leaderboard.GetTop(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	participants, err := s.participantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	nicknames := make(map[string]string, len(participants))
	for _, p := range participants {
		nicknames[p.ID] = p.Nickname
	}
	for i := range entries {
		entries[i].Nickname = nicknames[entries[i].ParticipantID]
	}
	return entries, nil
}
