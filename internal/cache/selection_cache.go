package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pulsecheck/internal/model"
)

// SelectionCache stores the resolved question set for one (user, date,
// mode, max) tuple. Variation resolution is stable per calendar day, so
// entries expire at local end of day.
type SelectionCache interface {
	Set(ctx context.Context, userID string, day time.Time, mode model.SelectionMode, max int, questions []model.ResolvedQuestion) error
	Get(ctx context.Context, userID string, day time.Time, mode model.SelectionMode, max int) ([]model.ResolvedQuestion, error)
	Invalidate(ctx context.Context, userID string, day time.Time) error
}

type selectionCache struct {
	client *redis.Client
}

func NewSelectionCache(client *redis.Client) SelectionCache {
	return &selectionCache{
		client: client,
	}
}

func (c *selectionCache) key(userID string, day time.Time, mode model.SelectionMode, max int) string {
	return fmt.Sprintf("questions:%s:%s:%s:%d", userID, day.Format("2006-01-02"), mode, max)
}

func (c *selectionCache) Set(ctx context.Context, userID string, day time.Time, mode model.SelectionMode, max int, questions []model.ResolvedQuestion) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID, day, mode, max), data, untilEndOfDay(day)).Err()
}

// Get returns nil, nil on a cache miss
func (c *selectionCache) Get(ctx context.Context, userID string, day time.Time, mode model.SelectionMode, max int) ([]model.ResolvedQuestion, error) {
	data, err := c.client.Get(ctx, c.key(userID, day, mode, max)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var questions []model.ResolvedQuestion
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// Invalidate drops every cached selection for the user on the given day,
// e.g. after a new check-in changes their signals.
func (c *selectionCache) Invalidate(ctx context.Context, userID string, day time.Time) error {
	pattern := fmt.Sprintf("questions:%s:%s:*", userID, day.Format("2006-01-02"))
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func untilEndOfDay(day time.Time) time.Duration {
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
	ttl := end.Sub(day)
	if ttl < time.Minute {
		return time.Minute
	}
	return ttl
}
