// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"

	"golang.org/x/sync/singleflight"

	"github.com/preciouskorir/voting-system/cache"
	"github.com/preciouskorir/voting-system/metrics"
)

// Service is the voting integrity engine. It holds no mutable state of its
// own beyond the optional candidate cache; every invariant is enforced by
// the store.
type Service struct {
	db      *sql.DB
	cache   cache.CandidateCache
	metrics *metrics.Metrics
	group   singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithCandidateCache serves candidate listings through c.
func WithCandidateCache(c cache.CandidateCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithMetrics records outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a Service over a provisioned database.
func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{db: db}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Metrics returns the metrics the service records on, possibly nil.
func (s *Service) Metrics() *metrics.Metrics {
	return s.metrics
}
