// Package cache_driver persists the saved-articles cache envelope in Redis.
// Writes replace the whole envelope in a single SET, so a concurrent reader
// always observes either the previous envelope or the new one, never a
// partial state.
package cache_driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"newsreader/domain"
	apperrors "newsreader/utils/errors"
	"newsreader/utils/logger"

	"github.com/redis/go-redis/v9"
)

const savedArticlesKeyPrefix = "newsreader:saved_articles:"

type CacheDriver struct {
	client *redis.Client
}

func NewCacheDriver(client *redis.Client) *CacheDriver {
	return &CacheDriver{client: client}
}

// NewRedisClient dials Redis from a connection URL.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

// GetEnvelope reads the cached envelope for a user. A cache miss returns
// (nil, nil); staleness is judged by the caller against the validity window.
func (d *CacheDriver) GetEnvelope(ctx context.Context, userID string) (*domain.CacheEnvelope, error) {
	raw, err := d.client.Get(ctx, savedArticlesKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.SafeError("error reading cache envelope", "error", err, "user_id", userID)
		return nil, apperrors.CacheError("error reading cache envelope", err, map[string]interface{}{
			"user_id": userID,
		})
	}

	var envelope domain.CacheEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		// A corrupt envelope is treated as a miss; the next write overwrites it.
		logger.SafeWarn("discarding corrupt cache envelope", "error", err, "user_id", userID)
		return nil, nil
	}

	return &envelope, nil
}

// PutEnvelope overwrites the user's envelope atomically.
func (d *CacheDriver) PutEnvelope(ctx context.Context, userID string, envelope *domain.CacheEnvelope) error {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal cache envelope: %w", err)
	}

	if err := d.client.Set(ctx, savedArticlesKeyPrefix+userID, raw, 0).Err(); err != nil {
		logger.SafeError("error writing cache envelope", "error", err, "user_id", userID)
		return apperrors.CacheError("error writing cache envelope", err, map[string]interface{}{
			"user_id": userID,
		})
	}

	return nil
}
