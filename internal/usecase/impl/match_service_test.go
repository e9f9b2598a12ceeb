package impl

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"wingman/internal/domain/constants"
	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/errors"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairUsers seeds a requester and one compatible candidate in the same city and
// creates a pending match between them.
func pairUsers(t *testing.T, f *fixture) (requester, candidate uuid.UUID, match *entity.WingmanMatch) {
	t.Helper()

	requester = f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	candidate = f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)

	outcome, err := f.match.RequestMatch(context.Background(), usecase.MatchRequest{UserID: requester})
	require.NoError(t, err)
	require.NotNil(t, outcome.Match)

	return requester, candidate, outcome.Match
}

func TestMatchService_RequestMatch_CreatesPendingMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	requester := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	candidate := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceIntermediate)

	outcome, err := f.match.RequestMatch(ctx, usecase.MatchRequest{UserID: requester})
	require.NoError(t, err)
	require.NotNil(t, outcome.Match)

	match := outcome.Match
	assert.False(t, outcome.NoCandidates)
	assert.Equal(t, candidate, outcome.Candidate.UserID)
	assert.Equal(t, entity.MatchStatusPending, match.Status)
	assert.True(t, match.IsParticipant(requester))
	assert.True(t, match.IsParticipant(candidate))
	assert.Equal(t, f.clock.Now().Add(48*time.Hour), match.ExpiresAt)

	a, b := entity.CanonicalPair(requester, candidate)
	assert.Equal(t, a, match.UserAID)
	assert.Equal(t, b, match.UserBID)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.MatchesCreated), 0)
}

func TestMatchService_RequestMatch_NoCandidates(t *testing.T) {
	f := newFixture(t)

	requester := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)

	outcome, err := f.match.RequestMatch(context.Background(), usecase.MatchRequest{UserID: requester})
	require.NoError(t, err)
	assert.True(t, outcome.NoCandidates)
	assert.Nil(t, outcome.Match)
}

func TestMatchService_RequestMatch_LocationRequired(t *testing.T) {
	f := newFixture(t)

	_, err := f.match.RequestMatch(context.Background(), usecase.MatchRequest{UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestMatchService_RequestMatch_IdempotencyKeyReplays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	requester := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)

	req := usecase.MatchRequest{UserID: requester, IdempotencyKey: "retry-1"}

	first, err := f.match.RequestMatch(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, first.Match)
	assert.False(t, first.Replayed)

	second, err := f.match.RequestMatch(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, second.Match)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Match.ID, second.Match.ID)

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	assert.Len(t, f.store.matches, 1)
}

func TestMatchService_RequestMatch_DuplicatePairRetriesNextCandidate(t *testing.T) {
	f := newFixture(t)

	requester := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	taken := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	f.clock.Advance(time.Minute)
	next := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)

	// A concurrent request claimed the pair between discovery and insert.
	f.store.createMatchErr = func(m *entity.WingmanMatch) error {
		if m.IsParticipant(taken) {
			return repository.ErrDuplicateMatch
		}

		return nil
	}

	outcome, err := f.match.RequestMatch(context.Background(), usecase.MatchRequest{UserID: requester})
	require.NoError(t, err)
	require.NotNil(t, outcome.Match)
	assert.True(t, outcome.Match.IsParticipant(next))
}

func TestMatchService_Respond_MutualAccept(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	requester, candidate, match := pairUsers(t, f)

	first, err := f.match.Respond(ctx, usecase.RespondInput{MatchID: match.ID, UserID: requester, Action: entity.MatchActionAccept})
	require.NoError(t, err)
	assert.False(t, first.MutualAccept)
	assert.Equal(t, entity.MatchStatusPending, first.Match.Status)
	assert.Equal(t, entity.ResponderAccepted, first.Match.ResponderStatusOf(first.Match.SideOf(requester)))

	second, err := f.match.Respond(ctx, usecase.RespondInput{MatchID: match.ID, UserID: candidate, Action: entity.MatchActionAccept})
	require.NoError(t, err)
	assert.True(t, second.MutualAccept)
	assert.Equal(t, entity.MatchStatusAccepted, second.Match.Status)

	f.drain(t)
	assert.Equal(t, 1, f.publisher.count(constants.EventMatchAccepted))
	assert.NotNil(t, f.storedMatch(match.ID).SideEffectsDispatchedAt)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.MutualAccepts), 0)
}

func TestMatchService_Respond_ConcurrentAcceptsFireOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	requester, candidate, match := pairUsers(t, f)

	const perSide = 10

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		mutuals int
		errs    []error
	)
	for i := range perSide * 2 {
		user := requester
		if i%2 == 1 {
			user = candidate
		}
		wg.Go(func() {
			result, err := f.match.Respond(ctx, usecase.RespondInput{MatchID: match.ID, UserID: user, Action: entity.MatchActionAccept})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)

				return
			}
			if result.MutualAccept {
				mutuals++
			}
		})
	}
	wg.Wait()
	f.drain(t)

	assert.Empty(t, errs)
	assert.Equal(t, 1, mutuals)
	assert.Equal(t, 1, f.publisher.count(constants.EventMatchAccepted))
	assert.Equal(t, entity.MatchStatusAccepted, f.storedMatch(match.ID).Status)

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	assert.Equal(t, 1, f.store.dispatchedMarks)
}

func TestMatchService_Respond_RepeatedActionIsReplayed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	requester, _, match := pairUsers(t, f)

	input := usecase.RespondInput{MatchID: match.ID, UserID: requester, Action: entity.MatchActionAccept}
	_, err := f.match.Respond(ctx, input)
	require.NoError(t, err)

	again, err := f.match.Respond(ctx, input)
	require.NoError(t, err)
	assert.True(t, again.AlreadyHandled)
	assert.False(t, again.MutualAccept)
}

func TestMatchService_Respond_ChangedAnswerConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	requester, _, match := pairUsers(t, f)

	_, err := f.match.Respond(ctx, usecase.RespondInput{MatchID: match.ID, UserID: requester, Action: entity.MatchActionAccept})
	require.NoError(t, err)

	_, err = f.match.Respond(ctx, usecase.RespondInput{MatchID: match.ID, UserID: requester, Action: entity.MatchActionDecline})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyResponded)
}

func TestMatchService_Respond_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	requester, _, match := pairUsers(t, f)

	tests := []struct {
		name    string
		input   usecase.RespondInput
		wantErr error
	}{
		{
			name:    "unknown action",
			input:   usecase.RespondInput{MatchID: match.ID, UserID: requester, Action: "maybe"},
			wantErr: domainerrors.ErrInvalidAction,
		},
		{
			name:    "unknown match",
			input:   usecase.RespondInput{MatchID: uuid.New(), UserID: requester, Action: entity.MatchActionAccept},
			wantErr: domainerrors.ErrMatchNotFound,
		},
		{
			name:    "outsider",
			input:   usecase.RespondInput{MatchID: match.ID, UserID: uuid.New(), Action: entity.MatchActionAccept},
			wantErr: domainerrors.ErrNotParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.match.Respond(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMatchService_Respond_DeclineOffersReplacement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	requester := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	first := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	f.clock.Advance(time.Minute)
	second := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)

	outcome, err := f.match.RequestMatch(ctx, usecase.MatchRequest{UserID: requester})
	require.NoError(t, err)
	require.True(t, outcome.Match.IsParticipant(first))

	result, err := f.match.Respond(ctx, usecase.RespondInput{MatchID: outcome.Match.ID, UserID: requester, Action: entity.MatchActionDecline})
	require.NoError(t, err)
	assert.Equal(t, entity.MatchStatusDeclined, result.Match.Status)
	assert.False(t, result.MutualAccept)

	require.NotNil(t, result.Replacement)
	require.NotNil(t, result.Replacement.Match)
	assert.True(t, result.Replacement.Match.IsParticipant(second))
	assert.False(t, result.Replacement.Match.IsParticipant(first))

	f.drain(t)
	assert.Equal(t, 1, f.publisher.count(constants.EventMatchDeclined))
	assert.Zero(t, f.publisher.count(constants.EventMatchAccepted))

	// Declined is terminal for the partner as well.
	_, err = f.match.Respond(ctx, usecase.RespondInput{MatchID: outcome.Match.ID, UserID: first, Action: entity.MatchActionAccept})
	assert.ErrorIs(t, err, domainerrors.ErrMatchNotPending)
}

func TestMatchService_Respond_AfterDeadlineExpiresLazily(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, candidate, match := pairUsers(t, f)

	f.clock.Advance(49 * time.Hour)

	_, err := f.match.Respond(ctx, usecase.RespondInput{MatchID: match.ID, UserID: candidate, Action: entity.MatchActionAccept})
	require.ErrorIs(t, err, domainerrors.ErrMatchExpired)
	assert.Equal(t, entity.MatchStatusExpired, f.storedMatch(match.ID).Status)
}

func TestMatchService_Respond_LosesRaceToSweeper(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	requester, _, match := pairUsers(t, f)

	// The response is read at the deadline; the sweeper commits an hour later,
	// before the conditional write lands.
	f.clock.Advance(48 * time.Hour)
	f.store.beforeRecordResponse = func() {
		f.store.beforeRecordResponse = nil
		f.clock.Advance(time.Hour)

		report, err := f.match.Sweep(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, report.Expired)
	}

	_, err := f.match.Respond(ctx, usecase.RespondInput{MatchID: match.ID, UserID: requester, Action: entity.MatchActionAccept})
	require.ErrorIs(t, err, domainerrors.ErrMatchExpired)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, entity.MatchStatusExpired, f.storedMatch(match.ID).Status)
}

func TestMatchService_Respond_PublishFailureLeavesMatchUndispatched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	requester, candidate, match := pairUsers(t, f)

	f.publisher.err = errors.New("broker unavailable")

	_, err := f.match.Respond(ctx, usecase.RespondInput{MatchID: match.ID, UserID: requester, Action: entity.MatchActionAccept})
	require.NoError(t, err)
	result, err := f.match.Respond(ctx, usecase.RespondInput{MatchID: match.ID, UserID: candidate, Action: entity.MatchActionAccept})
	require.NoError(t, err)
	assert.True(t, result.MutualAccept)

	f.drain(t)
	assert.Nil(t, f.storedMatch(match.ID).SideEffectsDispatchedAt)
}

func TestMatchService_GetMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	requester, _, match := pairUsers(t, f)

	got, err := f.match.GetMatch(ctx, requester, match.ID)
	require.NoError(t, err)
	assert.Equal(t, match.ID, got.ID)

	_, err = f.match.GetMatch(ctx, uuid.New(), match.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotParticipant)

	_, err = f.match.GetMatch(ctx, requester, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrMatchNotFound)
}

func TestMatchService_ListMatches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	requester, candidate, _ := pairUsers(t, f)

	other := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	f.seedMatch(candidate, other, entity.MatchStatusPending)

	mine, err := f.match.ListMatches(ctx, requester, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := f.match.ListMatches(ctx, candidate, 500)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)
}
