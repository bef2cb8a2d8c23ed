// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preciouskorir/voting-system/models"
)

const (
	// Redis key prefix for per-county candidate lists
	candidateKeyPrefix = "voting:candidates:"
)

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// Redis is a CandidateCache shared by every server instance pointing at the
// same Redis. Entries expire through Redis TTLs.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis constructs a Redis-backed candidate cache.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, county string) ([]models.Candidate, bool, error) {
	raw, err := r.client.Get(ctx, candidateKeyPrefix+county).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached candidates: %w", err)
	}

	var candidates []models.Candidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, false, fmt.Errorf("decode cached candidates: %w", err)
	}
	return candidates, true, nil
}

func (r *Redis) Set(ctx context.Context, county string, candidates []models.Candidate) error {
	raw, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("encode candidates: %w", err)
	}
	// SET with expiry is atomic, so readers never see an entry without a TTL
	if err := r.client.Set(ctx, candidateKeyPrefix+county, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache candidates: %w", err)
	}
	return nil
}
