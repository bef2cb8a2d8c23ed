// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/preciouskorir/voting-system/models"
)

// CandidateCache stores the candidate list visible to voters of one county.
// Entries never include vote counts, so staleness only matters if the
// candidate roster itself changes.
type CandidateCache interface {
	Get(ctx context.Context, county string) ([]models.Candidate, bool, error)
	Set(ctx context.Context, county string, candidates []models.Candidate) error
}

type memoryEntry struct {
	candidates []models.Candidate
	expiresAt  time.Time
}

// Memory is an in-process CandidateCache with a fixed TTL.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory creates an in-process cache whose entries expire after ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) Get(_ context.Context, county string) ([]models.Candidate, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[county]
	m.mu.RUnlock()

	if !ok || !m.now().Before(entry.expiresAt) {
		return nil, false, nil
	}
	return slices.Clone(entry.candidates), true, nil
}

func (m *Memory) Set(_ context.Context, county string, candidates []models.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[county] = memoryEntry{
		candidates: slices.Clone(candidates),
		expiresAt:  m.now().Add(m.ttl),
	}
	return nil
}
