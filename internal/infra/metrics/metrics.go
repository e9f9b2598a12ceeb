// Package metrics exposes prometheus collectors for the matching and session state machines.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

// Outcome labels for match responses.
const (
	OutcomeApplied  = "applied"
	OutcomeReplayed = "replayed"
	OutcomeConflict = "conflict"
	OutcomeExpired  = "expired"
)

// Metrics groups every collector the service records.
type Metrics struct {
	MatchesCreated      prometheus.Counter
	MatchResponses      *prometheus.CounterVec
	MutualAccepts       prometheus.Counter
	MatchesExpired      prometheus.Counter
	SessionsCompleted   prometheus.Counter
	ReputationCache     *prometheus.CounterVec
	DiscoveryCandidates prometheus.Histogram
	SweeperRuns         *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MatchesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "wingman_matches_created_total",
			Help: "Total number of pending matches created",
		}),
		MatchResponses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wingman_match_responses_total",
			Help: "Match responses by action and outcome",
		}, []string{"action", "outcome"}),
		MutualAccepts: factory.NewCounter(prometheus.CounterOpts{
			Name: "wingman_mutual_accepts_total",
			Help: "Total number of matches that reached mutual acceptance",
		}),
		MatchesExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "wingman_matches_expired_total",
			Help: "Total number of pending matches expired",
		}),
		SessionsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "wingman_sessions_completed_total",
			Help: "Total number of sessions completed by mutual confirmation",
		}),
		ReputationCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wingman_reputation_cache_total",
			Help: "Reputation cache lookups by result",
		}, []string{"result"}),
		DiscoveryCandidates: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wingman_discovery_candidates",
			Help:    "Number of candidates returned per discovery run",
			Buckets: prometheus.LinearBuckets(0, 2, 11),
		}),
		SweeperRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wingman_sweeper_runs_total",
			Help: "Sweeper runs by result",
		}, []string{"result"}),
	}
}

// NewDefault registers the collectors on the default prometheus registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewDefault,
		func() prometheus.Registerer { return prometheus.DefaultRegisterer },
	),
)
