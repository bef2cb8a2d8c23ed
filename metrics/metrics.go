// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for vote_cast_total.
const (
	OutcomeAccepted         = "accepted"
	OutcomeAlreadyVoted     = "already_voted"
	OutcomeIneligible       = "ineligible"
	OutcomeUnknownCandidate = "unknown_candidate"
	OutcomeUnknownVoter     = "unknown_voter"
	OutcomeError            = "error"
)

// Login result labels.
const (
	LoginOK      = "ok"
	LoginUnknown = "unknown"
	LoginInvalid = "invalid"
	LoginError   = "error"
)

// Metrics provides observability for the voting service.
type Metrics struct {
	// Vote casting outcomes, one increment per CastVote call
	VotesCast *prometheus.CounterVec

	// CastVote latency including the transaction commit
	CastLatency prometheus.Histogram

	// Login outcomes: "ok", "unknown", "invalid", "error"
	Logins *prometheus.CounterVec

	// Candidate list cache lookups: "hit", "miss", "error"
	CandidateCache *prometheus.CounterVec
}

// New creates a Metrics instance registered with reg. A nil reg falls back to
// the default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		VotesCast: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "voting_votes_cast_total",
			Help: "Vote casting attempts by outcome",
		}, []string{"outcome", "category"}),

		CastLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "voting_cast_duration_seconds",
			Help:    "Duration of vote casting including the store transaction",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "voting_logins_total",
			Help: "Voter login attempts by result",
		}, []string{"result"}),

		CandidateCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "voting_candidate_cache_lookups_total",
			Help: "Candidate list cache lookups by result",
		}, []string{"result"}),
	}
}

// IncrementVote records a CastVote outcome. category is empty when the
// candidate could not be resolved.
func (m *Metrics) IncrementVote(outcome, category string) {
	if m != nil {
		m.VotesCast.WithLabelValues(outcome, category).Inc()
	}
}

// ObserveCastLatency records the total CastVote duration.
func (m *Metrics) ObserveCastLatency(d time.Duration) {
	if m != nil {
		m.CastLatency.Observe(d.Seconds())
	}
}

// IncrementLogin records a login result.
func (m *Metrics) IncrementLogin(result string) {
	if m != nil {
		m.Logins.WithLabelValues(result).Inc()
	}
}

// RecordCacheLookup records a candidate cache hit, miss or error.
func (m *Metrics) RecordCacheLookup(result string) {
	if m != nil {
		m.CandidateCache.WithLabelValues(result).Inc()
	}
}
