package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sugarsense/internal/model"
)

// InsightCache holds generated insight reports so repeated dashboard loads
// don't hit Mongo or the Gemini API.
type InsightCache interface {
	Get(ctx context.Context, language string) (*model.InsightReport, error)
	Set(ctx context.Context, report *model.InsightReport) error
	Invalidate(ctx context.Context, language string) error
}

type insightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightCache creates a new insight cache
func NewInsightCache(client *redis.Client) InsightCache {
	return &insightCache{
		client: client,
		ttl:    6 * time.Hour,
	}
}

func (c *insightCache) key(language string) string {
	return fmt.Sprintf("insights:%s", language)
}

func (c *insightCache) Get(ctx context.Context, language string) (*model.InsightReport, error) {
	data, err := c.client.Get(ctx, c.key(language)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.InsightReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *insightCache) Set(ctx context.Context, report *model.InsightReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(report.Language), data, c.ttl).Err()
}

func (c *insightCache) Invalidate(ctx context.Context, language string) error {
	return c.client.Del(ctx, c.key(language)).Err()
}
