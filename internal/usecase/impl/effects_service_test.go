package impl

import (
	"context"
	"testing"
	"time"

	"wingman/internal/domain/constants"
	"wingman/internal/domain/entity"
	"wingman/internal/domain/service"
	"wingman/internal/errors"
	mockService "wingman/internal/mocks/service"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type effectsServiceFixtures struct {
	handler  service.EventHandler
	store    *memStore
	chat     *mockService.MockChatProvisioner
	notifier *mockService.MockNotifier
}

func createTestEffectsService(t *testing.T) effectsServiceFixtures {
	store := newMemStore()
	chat := mockService.NewMockChatProvisioner(t)
	notifier := mockService.NewMockNotifier(t)

	handler := NewEffectsService(EffectsServiceParams{
		Matches:  &memMatchRepo{store},
		Sessions: &memSessionRepo{store},
		Chat:     chat,
		Notifier: notifier,
		Logger:   discardLogger(),
	})

	return effectsServiceFixtures{handler: handler, store: store, chat: chat, notifier: notifier}
}

func (fx effectsServiceFixtures) seedMatch(status entity.MatchStatus) *entity.WingmanMatch {
	match := entity.NewPendingMatch(uuid.New(), uuid.New(), 0, 0, time.Now(), time.Hour)
	match.Status = status
	fx.store.matches[match.ID] = cloneMatch(match)

	return match
}

func eventFor(eventType string, match *entity.WingmanMatch) *entity.EngagementEvent {
	return &entity.EngagementEvent{
		Type:       eventType,
		MatchID:    match.ID,
		UserAID:    match.UserAID,
		UserBID:    match.UserBID,
		ActorID:    match.UserAID,
		OccurredAt: time.Now(),
	}
}

func TestEffectsService_MatchAccepted_ProvisionsAndNotifies(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	match := fx.seedMatch(entity.MatchStatusAccepted)

	fx.chat.EXPECT().
		ProvisionChannel(mock.Anything, match.ID, match.UserAID, match.UserBID).
		Return(&entity.ChatChannel{ID: uuid.New(), MatchID: match.ID}, nil)
	fx.notifier.EXPECT().
		NotifyMatchAccepted(mock.Anything, mock.MatchedBy(func(m *entity.WingmanMatch) bool { return m.ID == match.ID })).
		Return(nil)

	err := fx.handler.HandleEvent(ctx, eventFor(constants.EventMatchAccepted, match))
	require.NoError(t, err)
}

func TestEffectsService_MatchAccepted_ProvisionFailureIsRetryable(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	match := fx.seedMatch(entity.MatchStatusAccepted)

	fx.chat.EXPECT().
		ProvisionChannel(mock.Anything, match.ID, match.UserAID, match.UserBID).
		Return(nil, errors.New("chat backend down"))

	err := fx.handler.HandleEvent(ctx, eventFor(constants.EventMatchAccepted, match))
	require.Error(t, err)
	assert.True(t, usecase.IsRetryableError(err))
}

func TestEffectsService_MatchAccepted_NotificationFailureIsSwallowed(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	match := fx.seedMatch(entity.MatchStatusAccepted)

	fx.chat.EXPECT().
		ProvisionChannel(mock.Anything, match.ID, match.UserAID, match.UserBID).
		Return(&entity.ChatChannel{ID: uuid.New()}, nil)
	fx.notifier.EXPECT().NotifyMatchAccepted(mock.Anything, mock.Anything).Return(errors.New("fcm down"))

	assert.NoError(t, fx.handler.HandleEvent(ctx, eventFor(constants.EventMatchAccepted, match)))
}

func TestEffectsService_MatchAccepted_IgnoresStaleEvent(t *testing.T) {
	fx := createTestEffectsService(t)

	match := fx.seedMatch(entity.MatchStatusExpired)

	assert.NoError(t, fx.handler.HandleEvent(context.Background(), eventFor(constants.EventMatchAccepted, match)))
}

func TestEffectsService_MatchDeclined_NotifiesPartner(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	match := fx.seedMatch(entity.MatchStatusDeclined)
	event := eventFor(constants.EventMatchDeclined, match)

	fx.notifier.EXPECT().NotifyMatchDeclined(mock.Anything, mock.Anything, event.ActorID).Return(nil)

	assert.NoError(t, fx.handler.HandleEvent(ctx, event))
}

func TestEffectsService_SessionScheduled(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	match := fx.seedMatch(entity.MatchStatusAccepted)
	session := &entity.WingmanSession{ID: uuid.New(), MatchID: match.ID, CreatedBy: match.UserAID, VenueName: "Rainey Street"}
	fx.store.sessions[session.ID] = session

	event := eventFor(constants.EventSessionScheduled, match)
	event.SessionID = &session.ID

	fx.notifier.EXPECT().
		NotifySessionScheduled(mock.Anything, mock.Anything, mock.MatchedBy(func(s *entity.WingmanSession) bool { return s.ID == session.ID })).
		Return(nil)

	assert.NoError(t, fx.handler.HandleEvent(ctx, event))

	missing := eventFor(constants.EventSessionScheduled, match)
	unknown := uuid.New()
	missing.SessionID = &unknown

	err := fx.handler.HandleEvent(ctx, missing)
	require.Error(t, err)
	assert.False(t, usecase.IsRetryableError(err))
}

func TestEffectsService_PermanentFailures(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	match := fx.seedMatch(entity.MatchStatusAccepted)

	t.Run("unknown event type", func(t *testing.T) {
		err := fx.handler.HandleEvent(ctx, eventFor("match.teleported", match))
		require.ErrorIs(t, err, usecase.ErrUnknownEventType)
		assert.False(t, usecase.IsRetryableError(err))
	})

	t.Run("unknown match", func(t *testing.T) {
		err := fx.handler.HandleEvent(ctx, &entity.EngagementEvent{Type: constants.EventMatchAccepted, MatchID: uuid.New()})
		require.Error(t, err)
		assert.False(t, usecase.IsRetryableError(err))
	})

	t.Run("session completed is a no-op", func(t *testing.T) {
		assert.NoError(t, fx.handler.HandleEvent(ctx, eventFor(constants.EventSessionCompleted, match)))
	})
}
