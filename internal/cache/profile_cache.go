package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pulsecheck/internal/model"
)

// ProfileCache keeps focus-area preferences warm; profiles change rarely
type ProfileCache interface {
	Set(ctx context.Context, profile *model.Profile) error
	Get(ctx context.Context, userID string) (*model.Profile, error)
	Delete(ctx context.Context, userID string) error
}

type profileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProfileCache(client *redis.Client) ProfileCache {
	return &profileCache{
		client: client,
		ttl:    time.Hour,
	}
}

func (c *profileCache) Set(ctx context.Context, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "profile:"+profile.UserID, data, c.ttl).Err()
}

// Get returns nil, nil on a cache miss
func (c *profileCache) Get(ctx context.Context, userID string) (*model.Profile, error) {
	data, err := c.client.Get(ctx, "profile:"+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var profile model.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *profileCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, "profile:"+userID).Err()
}
