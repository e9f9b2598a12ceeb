package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.MatchesCreated.Inc()
	m.MatchResponses.WithLabelValues("accept", OutcomeApplied).Inc()
	m.ReputationCache.WithLabelValues("hit").Add(2)
	m.DiscoveryCandidates.Observe(3)

	assert.InDelta(t, 1, testutil.ToFloat64(m.MatchesCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.MatchResponses.WithLabelValues("accept", OutcomeApplied)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.ReputationCache.WithLabelValues("hit")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "wingman_matches_created_total")
	assert.Contains(t, names, "wingman_discovery_candidates")
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
