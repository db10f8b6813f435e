package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"sugarsense/internal/cache"
	"sugarsense/internal/model"
	"sugarsense/internal/repository"
	"sugarsense/internal/scoring"
)

var ErrParticipantNotFound = errors.New("participant not found")

// CompleteFlowRequest is the payload submitted when a participant finishes
// the experience.
type CompleteFlowRequest struct {
	Nickname     string                       `json:"nickname,omitempty"`
	Profile      model.Profile                `json:"profile"`
	Part2        map[string]interface{}       `json:"part2,omitempty"`
	Part3        map[string]string            `json:"part3,omitempty"`
	Part4        *model.AwarenessResponse     `json:"part4_awareness,omitempty"`
	Measurements map[string]model.Measurement `json:"measurements,omitempty"`
}

// ScoredParticipant is a participant record together with its recomputed
// score tuple.
type ScoredParticipant struct {
	Participant model.Participant `json:"participant"`
	scoring.Score
}

// ParticipantService handles the participant lifecycle: flow completion,
// nickname updates, listing and the bulk admin purge.
type ParticipantService struct {
	participantRepo repository.ParticipantRepo
	foodRepo        repository.FoodRepo
	configSvc       *ConfigService
	leaderboard     cache.LeaderboardCache
	broadcaster     Broadcaster
}

// NewParticipantService creates a new participant service
func NewParticipantService(
	participantRepo repository.ParticipantRepo,
	foodRepo repository.FoodRepo,
	configSvc *ConfigService,
	leaderboard cache.LeaderboardCache,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		foodRepo:        foodRepo,
		configSvc:       configSvc,
		leaderboard:     leaderboard,
	}
}

// SetBroadcaster injects the WebSocket broadcaster
func (s *ParticipantService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Complete stores a finished flow. The active foods are snapshotted into the
// record so later configuration edits cannot change historical scores. The
// submission is never rejected for being partial; scoring degrades instead.
func (s *ParticipantService) Complete(ctx context.Context, req *CompleteFlowRequest) (*ScoredParticipant, error) {
	foods, err := s.foodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	participant := &model.Participant{
		ID:           uuid.New().String(),
		Nickname:     req.Nickname,
		Profile:      req.Profile,
		Part2:        req.Part2,
		Part3:        req.Part3,
		Part4:        req.Part4,
		Measurements: req.Measurements,
		Foods:        foods,
		CreatedAt:    time.Now(),
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, err
	}

	cfg, err := s.configSvc.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	score := scoring.TotalScore(participant, cfg.Pairs, cfg.PairThreshold)

	if err := s.leaderboard.UpdateScore(ctx, participant.ID, score.Total); err != nil {
		// The stored record is authoritative; a cache miss only delays the
		// live leaderboard.
		log.Printf("leaderboard update failed for %s: %v", participant.ID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast("participant_completed", map[string]interface{}{
			"participantId": participant.ID,
			"nickname":      participant.Nickname,
			"totalScore":    score.Total,
		})
		s.broadcaster.Broadcast("leaderboard_update", nil)
	}

	return &ScoredParticipant{Participant: *participant, Score: score}, nil
}

// Get returns one participant with its recomputed score tuple
func (s *ParticipantService) Get(ctx context.Context, id string) (*ScoredParticipant, error) {
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, nil
	}

	cfg, err := s.configSvc.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	score := scoring.TotalScore(participant, cfg.Pairs, cfg.PairThreshold)
	return &ScoredParticipant{Participant: *participant, Score: score}, nil
}

// List returns all participant records in completion order
func (s *ParticipantService) List(ctx context.Context) ([]model.Participant, error) {
	return s.participantRepo.List(ctx)
}

// UpdateNickname sets the display nickname added after flow completion
func (s *ParticipantService) UpdateNickname(ctx context.Context, id, nickname string) error {
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if participant == nil {
		return ErrParticipantNotFound
	}
	return s.participantRepo.UpdateNickname(ctx, id, nickname)
}

// PurgeAll removes every participant record and resets the leaderboard
func (s *ParticipantService) PurgeAll(ctx context.Context) (int64, error) {
	deleted, err := s.participantRepo.PurgeAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.leaderboard.Clear(ctx); err != nil {
		log.Printf("leaderboard clear failed: %v", err)
	}
	if s.broadcaster != nil {
		s.broadcaster.Broadcast("participants_purged", map[string]interface{}{
			"deleted": deleted,
		})
	}
	return deleted, nil
}
