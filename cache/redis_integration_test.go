//go:build integration

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/preciouskorir/voting-system/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *Redis
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = NewRedis(s.redis.Client, time.Minute)
}

func (s *RedisCacheSuite) TearDownSuite() {
	s.redis.Terminate(context.Background())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()

	_, ok, err := s.cache.Get(ctx, "Baringo")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.cache.Set(ctx, "Baringo", testCandidates()))

	got, ok, err := s.cache.Get(ctx, "Baringo")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(testCandidates(), got)
}

func (s *RedisCacheSuite) TestEntriesCarryTTL() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "Mombasa", testCandidates()))

	ttl, err := s.redis.Client.TTL(ctx, candidateKeyPrefix+"Mombasa").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

func (s *RedisCacheSuite) TestCorruptEntryIsAnError() {
	ctx := context.Background()
	s.Require().NoError(s.redis.Client.Set(ctx, candidateKeyPrefix+"Kisumu", "not json", time.Minute).Err())

	_, ok, err := s.cache.Get(ctx, "Kisumu")
	s.Error(err)
	s.False(ok)
}
