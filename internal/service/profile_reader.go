package service

import (
	"context"
	"log/slog"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
	"pulsecheck/internal/selection"
)

// cachedProfileReader is the ProfileReader handed to the context builder:
// redis first, mongo on miss, write-back best effort.
type cachedProfileReader struct {
	repo  repository.ProfileRepo
	cache cache.ProfileCache
}

// NewCachedProfileReader wraps the profile repo with the redis cache
func NewCachedProfileReader(repo repository.ProfileRepo, profileCache cache.ProfileCache) selection.ProfileReader {
	return &cachedProfileReader{
		repo:  repo,
		cache: profileCache,
	}
}

func (r *cachedProfileReader) Get(ctx context.Context, userID string) (*model.Profile, error) {
	if r.cache != nil {
		profile, err := r.cache.Get(ctx, userID)
		if err != nil {
			slog.Warn("profile cache read failed", "user_id", userID, "error", err)
		} else if profile != nil {
			return profile, nil
		}
	}

	profile, err := r.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil && r.cache != nil {
		if err := r.cache.Set(ctx, profile); err != nil {
			slog.Warn("profile cache write failed", "user_id", userID, "error", err)
		}
	}
	return profile, nil
}
