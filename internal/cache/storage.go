// Package cache keeps hot read models in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
)

// StorageKey is the Redis key holding the active storage locations.
const StorageKey = "dispatch:storage:active"

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type storageSource interface {
	ListActive(ctx context.Context) ([]domain.StorageLocation, error)
}

// StorageLocations is a read-through cache of active storage locations.
// Redis failures fall back to the source.
type StorageLocations struct {
	client redisClient
	source storageSource
	ttl    time.Duration
	logger logx.Logger
}

// NewStorageLocations wraps source with a Redis cache. A nil client disables caching.
func NewStorageLocations(client redisClient, source storageSource, ttl time.Duration, logger logx.Logger) *StorageLocations {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &StorageLocations{client: client, source: source, ttl: ttl, logger: logger}
}

type cachedLocation struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	City     string  `json:"city"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	IsActive bool    `json:"is_active"`
}

// ListActive returns the cached list, loading and storing it on a miss.
func (c *StorageLocations) ListActive(ctx context.Context) ([]domain.StorageLocation, error) {
	if c.client == nil {
		return c.source.ListActive(ctx)
	}

	raw, err := c.client.Get(ctx, StorageKey).Bytes()
	switch {
	case err == nil:
		out, decErr := decode(raw)
		if decErr == nil {
			return out, nil
		}
		c.logger.Warn("storage cache decode failed", logx.Err(decErr))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("storage cache get failed", logx.Err(err))
	}

	out, err := c.source.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	data, err := encode(out)
	if err != nil {
		return out, nil
	}
	if err := c.client.Set(ctx, StorageKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("storage cache set failed", logx.Err(err))
	}
	return out, nil
}

func encode(in []domain.StorageLocation) ([]byte, error) {
	rows := make([]cachedLocation, 0, len(in))
	for _, l := range in {
		rows = append(rows, cachedLocation{
			ID:       l.ID,
			Name:     l.Name,
			Address:  l.Address,
			City:     l.City,
			Lat:      l.Point.Lat,
			Lon:      l.Point.Lon,
			IsActive: l.IsActive,
		})
	}
	return json.Marshal(rows)
}

func decode(raw []byte) ([]domain.StorageLocation, error) {
	var rows []cachedLocation
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.StorageLocation, 0, len(rows))
	for _, r := range rows {
		l := domain.StorageLocation{
			ID:       r.ID,
			Name:     r.Name,
			Address:  r.Address,
			City:     r.City,
			IsActive: r.IsActive,
		}
		l.Point.Lat, l.Point.Lon = r.Lat, r.Lon
		out = append(out, l)
	}
	return out, nil
}
