package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// leaderboardKey is the single active experience leaderboard ZSET
const leaderboardKey = "experience:active:lb"

// LeaderboardCache handles Redis ZSET operations for the live leaderboard.
// It is acceleration only: the authoritative ranking is always recomputed
// from the stored participant records.
type LeaderboardCache interface {
	UpdateScore(ctx context.Context, participantID string, score float64) error
	GetTop(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	GetRank(ctx context.Context, participantID string) (int64, error)
	Clear(ctx context.Context) error
}

// LeaderboardEntry is a single cached leaderboard row
type LeaderboardEntry struct {
	ParticipantID string  `json:"participantId"`
	Nickname      string  `json:"nickname,omitempty"`
	Score         float64 `json:"score"`
	Rank          int     `json:"rank"`
}

type leaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{
		client: client,
	}
}

func (c *leaderboardCache) UpdateScore(ctx context.Context, participantID string, score float64) error {
	return c.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  score,
		Member: participantID,
	}).Err()
}

func (c *leaderboardCache) GetTop(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(results))
	for i, z := range results {
		entries[i] = LeaderboardEntry{
			ParticipantID: z.Member.(string),
			Score:         z.Score,
			Rank:          i + 1,
		}
	}
	return entries, nil
}

func (c *leaderboardCache) GetRank(ctx context.Context, participantID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, leaderboardKey, participantID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}

func (c *leaderboardCache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, leaderboardKey).Err()
}
