package impl

import (
	"context"
	"testing"
	"time"

	"wingman/internal/domain/constants"
	"wingman/internal/domain/entity"
	"wingman/internal/errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeperService_Sweep_ExpiresAndRematches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	requester, candidate, match := pairUsers(t, f)
	f.clock.Advance(time.Minute)
	fresh := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)

	f.clock.Advance(49 * time.Hour)

	report, err := f.match.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Expired)
	assert.Equal(t, 2, report.Rematched)
	assert.Equal(t, entity.MatchStatusExpired, f.storedMatch(match.ID).Status)

	for _, user := range []uuid.UUID{requester, candidate, fresh} {
		matches, err := f.match.ListMatches(ctx, user, 0)
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	}

	// A second run finds nothing left to do.
	again, err := f.match.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Expired)
	assert.Zero(t, again.Rematched)
}

func TestSweeperService_Sweep_SkipsUsersNotSeeking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	requester, _, _ := pairUsers(t, f)
	f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)

	f.store.mu.Lock()
	f.store.profiles[requester].IsSeeking = false
	f.store.mu.Unlock()

	f.clock.Advance(49 * time.Hour)

	report, err := f.match.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Expired)
	assert.Equal(t, 1, report.Rematched)
}

func TestSweeperService_Sweep_LeavesAnsweredMatches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	b := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	declined := f.seedMatch(a, b, entity.MatchStatusDeclined)

	f.clock.Advance(49 * time.Hour)

	report, err := f.match.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Expired)
	assert.Equal(t, entity.MatchStatusDeclined, f.storedMatch(declined.ID).Status)
}

func TestSweeperService_Sweep_RedispatchesUnconfirmedAccepts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	b := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	accepted := f.seedMatch(a, b, entity.MatchStatusAccepted)

	// Too recent: the original dispatch may still be in flight.
	report, err := f.match.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Redispatched)

	f.clock.Advance(11 * time.Minute)
	f.publisher.err = errors.New("broker unavailable")

	report, err = f.match.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Redispatched)
	assert.Nil(t, f.storedMatch(accepted.ID).SideEffectsDispatchedAt)

	f.publisher.err = nil

	report, err = f.match.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Redispatched)
	assert.Equal(t, 1, f.publisher.count(constants.EventMatchAccepted))
	assert.NotNil(t, f.storedMatch(accepted.ID).SideEffectsDispatchedAt)

	report, err = f.match.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Redispatched)
	assert.InDelta(t, 4, testutil.ToFloat64(f.metrics.SweeperRuns.WithLabelValues("ok")), 0)
}
