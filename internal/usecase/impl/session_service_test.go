package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"wingman/internal/domain/constants"
	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionFixture seeds an accepted match and a session scheduled one hour ahead.
type sessionFixture struct {
	*fixture
	userA, userB uuid.UUID
	accepted     *entity.WingmanMatch
	scheduled    *entity.WingmanSession
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := newFixture(t)
	a := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	b := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	match := f.seedMatch(a, b, entity.MatchStatusAccepted)

	session, err := f.session.CreateSession(context.Background(), usecase.CreateSessionInput{
		MatchID:       match.ID,
		UserID:        a,
		VenueName:     "Rainey Street",
		ScheduledTime: f.clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	return &sessionFixture{fixture: f, userA: a, userB: b, accepted: match, scheduled: session}
}

func TestSessionService_CreateSession_Scheduled(t *testing.T) {
	sf := newSessionFixture(t)

	assert.Equal(t, entity.SessionStatusScheduled, sf.scheduled.Status)
	assert.Equal(t, sf.accepted.ID, sf.scheduled.MatchID)
	assert.Equal(t, sf.userA, sf.scheduled.CreatedBy)
	assert.False(t, sf.scheduled.ConfirmedByA)
	assert.False(t, sf.scheduled.ConfirmedByB)

	sf.drain(t)
	assert.Equal(t, 1, sf.publisher.count(constants.EventSessionScheduled))
}

func TestSessionService_CreateSession_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	b := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	pending := f.seedMatch(a, b, entity.MatchStatusPending)
	c := f.addUser("Austin", entity.PrivacyCityOnly, entity.ExperienceBeginner)
	accepted := f.seedMatch(a, c, entity.MatchStatusAccepted)
	when := f.clock.Now().Add(time.Hour)

	tests := []struct {
		name    string
		input   usecase.CreateSessionInput
		wantErr error
	}{
		{
			name:    "blank venue",
			input:   usecase.CreateSessionInput{MatchID: accepted.ID, UserID: a, VenueName: "  ", ScheduledTime: when},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing time",
			input:   usecase.CreateSessionInput{MatchID: accepted.ID, UserID: a, VenueName: "Bar"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown match",
			input:   usecase.CreateSessionInput{MatchID: uuid.New(), UserID: a, VenueName: "Bar", ScheduledTime: when},
			wantErr: domainerrors.ErrMatchNotFound,
		},
		{
			name:    "outsider",
			input:   usecase.CreateSessionInput{MatchID: accepted.ID, UserID: b, VenueName: "Bar", ScheduledTime: when},
			wantErr: domainerrors.ErrNotParticipant,
		},
		{
			name:    "pending match",
			input:   usecase.CreateSessionInput{MatchID: pending.ID, UserID: a, VenueName: "Bar", ScheduledTime: when},
			wantErr: domainerrors.ErrMatchNotAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.session.CreateSession(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionService_CreateSession_RetryReturnsExisting(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	again, err := sf.session.CreateSession(ctx, usecase.CreateSessionInput{
		MatchID:       sf.accepted.ID,
		UserID:        sf.userA,
		VenueName:     "Rainey Street",
		ScheduledTime: sf.scheduled.ScheduledTime,
	})
	require.NoError(t, err)
	assert.Equal(t, sf.scheduled.ID, again.ID)

	_, err = sf.session.CreateSession(ctx, usecase.CreateSessionInput{
		MatchID:       sf.accepted.ID,
		UserID:        sf.userB,
		VenueName:     "Sixth Street",
		ScheduledTime: sf.scheduled.ScheduledTime,
	})
	assert.ErrorIs(t, err, domainerrors.ErrActiveSessionExists)

	sf.drain(t)
	assert.Equal(t, 1, sf.publisher.count(constants.EventSessionScheduled))
}

func TestSessionService_ConfirmCompletion_BeforeStart(t *testing.T) {
	sf := newSessionFixture(t)

	_, err := sf.session.ConfirmCompletion(context.Background(), sf.userA, sf.scheduled.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotStarted)
}

func TestSessionService_ConfirmCompletion_BothSidesComplete(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()
	sf.clock.Advance(2 * time.Hour)

	// Prime the cache so invalidation is observable.
	before, err := sf.reputation.GetReputation(ctx, sf.userA)
	require.NoError(t, err)
	assert.Equal(t, 0, before.Score)

	first, err := sf.session.ConfirmCompletion(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)
	assert.False(t, first.Completed)
	assert.False(t, first.AlreadyConfirmed)

	second, err := sf.session.ConfirmCompletion(ctx, sf.userB, sf.scheduled.ID)
	require.NoError(t, err)
	assert.True(t, second.Completed)
	require.NotNil(t, second.Session.CompletedAt)

	again, err := sf.session.ConfirmCompletion(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)
	assert.True(t, again.AlreadyConfirmed)
	assert.True(t, again.Completed)

	assert.Equal(t, 1, sf.profile(sf.userA).CompletedSessions)
	assert.Equal(t, 1, sf.profile(sf.userB).CompletedSessions)

	after, err := sf.reputation.GetReputation(ctx, sf.userA)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Score)
	assert.Equal(t, entity.BadgeGreen, after.BadgeColor)

	sf.drain(t)
	assert.Equal(t, 1, sf.publisher.count(constants.EventSessionCompleted))
}

func TestSessionService_ConfirmCompletion_ConcurrentCountsOnce(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()
	sf.clock.Advance(2 * time.Hour)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		errs      []error
		completed int
	)
	for i := range 20 {
		user := sf.userA
		if i%2 == 1 {
			user = sf.userB
		}
		wg.Go(func() {
			result, err := sf.session.ConfirmCompletion(ctx, user, sf.scheduled.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)

				return
			}
			if result.Completed {
				completed++
			}
		})
	}
	wg.Wait()
	sf.drain(t)

	assert.Empty(t, errs)
	assert.Positive(t, completed)
	assert.Equal(t, 1, sf.profile(sf.userA).CompletedSessions)
	assert.Equal(t, 1, sf.profile(sf.userB).CompletedSessions)
	assert.InDelta(t, 1, testutil.ToFloat64(sf.metrics.SessionsCompleted), 0)
	assert.Equal(t, 1, sf.publisher.count(constants.EventSessionCompleted))
}

func TestSessionService_CompleteSession_RequiresBothConfirmations(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()
	sf.clock.Advance(2 * time.Hour)

	_, err := sf.session.ConfirmCompletion(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)

	_, err = sf.session.CompleteSession(ctx, sf.userA, sf.scheduled.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConfirmationIncomplete)
}

func TestSessionService_StartSession(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	_, err := sf.session.StartSession(ctx, sf.userB, sf.scheduled.ID)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotStarted)

	sf.clock.Advance(time.Hour)

	started, err := sf.session.StartSession(ctx, sf.userB, sf.scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusInProgress, started.Status)

	again, err := sf.session.StartSession(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusInProgress, again.Status)

	// Confirmation works from in_progress as well.
	_, err = sf.session.ConfirmCompletion(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)
	result, err := sf.session.ConfirmCompletion(ctx, sf.userB, sf.scheduled.ID)
	require.NoError(t, err)
	assert.True(t, result.Completed)
}

func TestSessionService_CancelSession(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	cancelled, err := sf.session.CancelSession(ctx, sf.userB, sf.scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusCancelled, cancelled.Status)

	again, err := sf.session.CancelSession(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusCancelled, again.Status)

	sf.clock.Advance(2 * time.Hour)
	_, err = sf.session.ConfirmCompletion(ctx, sf.userA, sf.scheduled.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionTerminal)

	// The match can plan a new session once the old one is terminal.
	_, err = sf.session.CreateSession(ctx, usecase.CreateSessionInput{
		MatchID:       sf.accepted.ID,
		UserID:        sf.userB,
		VenueName:     "South Congress",
		ScheduledTime: sf.clock.Now().Add(time.Hour),
	})
	assert.NoError(t, err)
}

func TestSessionService_ReportNoShow(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	_, err := sf.session.ReportNoShow(ctx, sf.userA, sf.scheduled.ID)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotStarted)

	sf.clock.Advance(2 * time.Hour)

	reported, err := sf.session.ReportNoShow(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusNoShow, reported.Status)
	require.NotNil(t, reported.NoShowUserID)
	assert.Equal(t, sf.userB, *reported.NoShowUserID)

	again, err := sf.session.ReportNoShow(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, reported.ID, again.ID)

	rep, err := sf.reputation.GetReputation(ctx, sf.userB)
	require.NoError(t, err)
	assert.Equal(t, -1, rep.Score)
	assert.Equal(t, entity.BadgeRed, rep.BadgeColor)

	reporterRep, err := sf.reputation.GetReputation(ctx, sf.userA)
	require.NoError(t, err)
	assert.Equal(t, 0, reporterRep.Score)
}

func TestSessionService_ReportNoShow_AfterOwnConfirmation(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()
	sf.clock.Advance(2 * time.Hour)

	_, err := sf.session.ConfirmCompletion(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)

	_, err = sf.session.ReportNoShow(ctx, sf.userA, sf.scheduled.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestSessionService_GetSession_ParticipantsOnly(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	got, err := sf.session.GetSession(ctx, sf.userB, sf.scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, sf.scheduled.ID, got.ID)

	_, err = sf.session.GetSession(ctx, uuid.New(), sf.scheduled.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotParticipant)

	_, err = sf.session.GetSession(ctx, sf.userA, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_CheckInQR(t *testing.T) {
	sf := newSessionFixture(t)
	ctx := context.Background()

	png, err := sf.session.GenerateCheckInQR(ctx, sf.userA, sf.scheduled.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = sf.session.ConfirmByQR(ctx, sf.userB, "not-a-session")
	require.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)

	sf.clock.Advance(2 * time.Hour)
	result, err := sf.session.ConfirmByQR(ctx, sf.userB, sf.scheduled.ID.String())
	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.True(t, result.Session.IsConfirmedBy(sf.accepted.SideOf(sf.userB)))
	assert.False(t, result.Session.IsConfirmedBy(sf.accepted.SideOf(sf.userA)))
}
