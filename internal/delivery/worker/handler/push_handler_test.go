package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/constants"
	"wingman/internal/domain/entity"
	"wingman/internal/errors"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type recordingHandler struct {
	err       error
	events    []*entity.EngagementEvent
	requestID string
}

func (r *recordingHandler) HandleEvent(ctx context.Context, event *entity.EngagementEvent) error {
	r.events = append(r.events, event)
	r.requestID = deliverycontext.GetRequestIDFromContext(ctx)

	return r.err
}

func newTestPushHandler(events *recordingHandler) *PushHandler {
	return &PushHandler{
		handler: events,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func pushBody(t *testing.T, data string, attrs map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/engagement"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event entity.EngagementEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(t *testing.T, h *PushHandler, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	matchID := uuid.New()
	event := entity.EngagementEvent{
		Type:    constants.EventMatchAccepted,
		MatchID: matchID,
		UserAID: uuid.New(),
		UserBID: uuid.New(),
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		handlerErr error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "handled",
			body:       func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "retryable failure asks for redelivery",
			body:       func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			handlerErr: usecase.NewRetryableError(errors.New("chat provider down")),
			wantStatus: http.StatusServiceUnavailable,
			wantCalls:  1,
		},
		{
			name:       "permanent failure is acknowledged",
			body:       func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			handlerErr: errors.New("match vanished"),
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "data is not base64",
			body:       func(t *testing.T) string { return pushBody(t, "%%%", nil) },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "event without match id",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, entity.EngagementEvent{Type: constants.EventMatchDeclined}), nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "envelope is not json",
			body:       func(*testing.T) string { return `{"message":` },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &recordingHandler{err: tt.handlerErr}
			h := newTestPushHandler(events)

			rec := doPush(t, h, tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.Len(t, events.events, tt.wantCalls)
			if tt.wantCalls > 0 {
				assert.Equal(t, matchID, events.events[0].MatchID)
			}
		})
	}
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	events := &recordingHandler{}
	h := newTestPushHandler(events)
	body := pushBody(t, encodeEvent(t, entity.EngagementEvent{
		Type:    constants.EventSessionCompleted,
		MatchID: uuid.New(),
	}), map[string]string{"request_id": "req-from-api"})

	rec := doPush(t, h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-from-api", events.requestID)
}

func TestPushHandler_RequestIDGenerated(t *testing.T) {
	events := &recordingHandler{}
	h := newTestPushHandler(events)
	body := pushBody(t, encodeEvent(t, entity.EngagementEvent{
		Type:    constants.EventSessionCompleted,
		MatchID: uuid.New(),
	}), nil)

	doPush(t, h, body, nil)

	_, err := uuid.Parse(events.requestID)
	assert.NoError(t, err)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	body := func(t *testing.T) string {
		return pushBody(t, encodeEvent(t, entity.EngagementEvent{Type: constants.EventMatchAccepted, MatchID: uuid.New()}), nil)
	}

	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		err        error
		wantStatus int
	}{
		{
			name:       "google issuer",
			header:     "Bearer good",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "validation failure",
			header:     "Bearer bad",
			err:        errors.New("signature mismatch"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "foreign issuer",
			header:     "Bearer other",
			payload:    &idtoken.Payload{Issuer: "https://example.com"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unverified email",
			header:     "Bearer unverified",
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &recordingHandler{}
			h := newTestPushHandler(events)
			h.audience = "https://worker.example.com/pubsub/push"
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, h.audience, audience)
				assert.NotEmpty(t, token)

				return tt.payload, tt.err
			}

			headers := map[string]string{}
			if tt.header != "" {
				headers[echo.HeaderAuthorization] = tt.header
			}

			rec := doPush(t, h, body(t), headers)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
