package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/errors"
	mockUsecase "wingman/internal/mocks/usecase"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMatchHandler(t *testing.T) (*MatchHandler, *mockUsecase.MockMatchUsecase) {
	uc := mockUsecase.NewMockMatchUsecase(t)
	h := NewMatchHandler(MatchHandlerParams{
		MatchUC: uc,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, uc
}

func testMatch(a, b uuid.UUID) *entity.WingmanMatch {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	return entity.NewPendingMatch(a, b, 0, 0, now, 48*time.Hour)
}

func TestMatchHandler_CreateMatch_Created(t *testing.T) {
	h, uc := createTestMatchHandler(t)
	userID, other := uuid.New(), uuid.New()
	match := testMatch(userID, other)

	uc.EXPECT().RequestMatch(mock.Anything, usecase.MatchRequest{UserID: userID, IdempotencyKey: "retry-1"}).
		Return(&usecase.MatchOutcome{Match: match}, nil)

	c, rec := newTestContext(testRequest{
		method:  http.MethodPost,
		target:  "/api/v1/matches",
		userID:  userID,
		headers: map[string]string{HeaderIdempotencyKey: "retry-1"},
	})

	require.NoError(t, h.CreateMatch(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var outcome usecase.MatchOutcome
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &outcome))
	require.NotNil(t, outcome.Match)
	assert.Equal(t, match.ID, outcome.Match.ID)
	assert.False(t, outcome.NoCandidates)
}

func TestMatchHandler_CreateMatch_ReplayAndNoCandidates(t *testing.T) {
	cases := []struct {
		name    string
		outcome func(a, b uuid.UUID) *usecase.MatchOutcome
	}{
		{
			name: "replayed",
			outcome: func(a, b uuid.UUID) *usecase.MatchOutcome {
				return &usecase.MatchOutcome{Match: testMatch(a, b), Replayed: true}
			},
		},
		{
			name: "no candidates",
			outcome: func(uuid.UUID, uuid.UUID) *usecase.MatchOutcome {
				return &usecase.MatchOutcome{NoCandidates: true}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, uc := createTestMatchHandler(t)
			userID := uuid.New()
			uc.EXPECT().RequestMatch(mock.Anything, mock.Anything).Return(tc.outcome(userID, uuid.New()), nil)

			c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/matches", userID: userID})

			require.NoError(t, h.CreateMatch(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestMatchHandler_CreateMatch_Unauthenticated(t *testing.T) {
	h, _ := createTestMatchHandler(t)

	c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/matches"})

	require.NoError(t, h.CreateMatch(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeEnvelope(t, rec).Error.Code)
}

func TestMatchHandler_Respond_Accepted(t *testing.T) {
	h, uc := createTestMatchHandler(t)
	userID, other := uuid.New(), uuid.New()
	match := testMatch(userID, other)

	uc.EXPECT().Respond(mock.Anything, usecase.RespondInput{
		MatchID: match.ID,
		UserID:  userID,
		Action:  entity.MatchActionAccept,
	}).Return(&usecase.RespondResult{Match: match, AlreadyHandled: true}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/v1/matches/" + match.ID.String() + "/respond",
		body:   `{"action":"accept"}`,
		userID: userID,
		params: map[string]string{"id": match.ID.String()},
	})

	require.NoError(t, h.Respond(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result usecase.RespondResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.True(t, result.AlreadyHandled)
}

func TestMatchHandler_Respond_Rejections(t *testing.T) {
	matchID := uuid.New()

	cases := []struct {
		name       string
		id         string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "malformed id", id: "not-a-uuid", body: `{"action":"accept"}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_ID"},
		{name: "unknown action", id: matchID.String(), body: `{"action":"maybe"}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{name: "missing action", id: matchID.String(), body: `{}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{name: "expired", id: matchID.String(), body: `{"action":"accept"}`, ucErr: domainerrors.ErrMatchExpired, wantStatus: http.StatusConflict, wantCode: "MATCH_EXPIRED"},
		{name: "changed answer", id: matchID.String(), body: `{"action":"decline"}`, ucErr: domainerrors.ErrAlreadyResponded, wantStatus: http.StatusConflict, wantCode: "ALREADY_RESPONDED"},
		{name: "not participant", id: matchID.String(), body: `{"action":"accept"}`, ucErr: domainerrors.ErrNotParticipant, wantStatus: http.StatusForbidden, wantCode: "NOT_PARTICIPANT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, uc := createTestMatchHandler(t)
			if tc.ucErr != nil {
				uc.EXPECT().Respond(mock.Anything, mock.Anything).Return(nil, errors.WithStack(tc.ucErr))
			}

			c, rec := newTestContext(testRequest{
				method: http.MethodPost,
				target: "/api/v1/matches/" + tc.id + "/respond",
				body:   tc.body,
				userID: uuid.New(),
				params: map[string]string{"id": tc.id},
			})

			require.NoError(t, h.Respond(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.wantCode, env.Error.Code)
		})
	}
}

func TestMatchHandler_Respond_ValidationDetails(t *testing.T) {
	h, _ := createTestMatchHandler(t)
	matchID := uuid.New().String()

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/v1/matches/" + matchID + "/respond",
		body:   `{"action":"maybe"}`,
		userID: uuid.New(),
		params: map[string]string{"id": matchID},
	})

	require.NoError(t, h.Respond(c))
	assert.Contains(t, rec.Body.String(), `"field":"action"`)
}

func TestMatchHandler_ListMatches(t *testing.T) {
	h, uc := createTestMatchHandler(t)
	userID := uuid.New()
	uc.EXPECT().ListMatches(mock.Anything, userID, 5).Return(nil, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/matches?limit=5", userID: userID})

	require.NoError(t, h.ListMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}

func TestMatchHandler_ListMatches_InvalidLimit(t *testing.T) {
	h, _ := createTestMatchHandler(t)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/matches?limit=-1", userID: uuid.New()})

	require.NoError(t, h.ListMatches(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandler_GetMatch_NotFound(t *testing.T) {
	h, uc := createTestMatchHandler(t)
	userID, matchID := uuid.New(), uuid.New()
	uc.EXPECT().GetMatch(mock.Anything, userID, matchID).Return(nil, errors.WithStack(domainerrors.ErrMatchNotFound))

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/v1/matches/" + matchID.String(),
		userID: userID,
		params: map[string]string{"id": matchID.String()},
	})

	require.NoError(t, h.GetMatch(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMatchHandler_UnexpectedErrorBubblesUp(t *testing.T) {
	h, uc := createTestMatchHandler(t)
	userID, matchID := uuid.New(), uuid.New()
	uc.EXPECT().GetMatch(mock.Anything, userID, matchID).Return(nil, errors.New("connection reset"))

	c, _ := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/v1/matches/" + matchID.String(),
		userID: userID,
		params: map[string]string{"id": matchID.String()},
	})

	// Left for the centralized error handler
	assert.Error(t, h.GetMatch(c))
}
