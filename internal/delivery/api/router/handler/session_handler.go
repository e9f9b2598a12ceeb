package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wingman/internal/delivery/api/middleware"
	"wingman/internal/delivery/api/response"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the session state machine.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// CreateSessionRequest schedules a session under an accepted match.
type CreateSessionRequest struct {
	MatchID       string    `json:"match_id" validate:"required,uuid"`
	VenueName     string    `json:"venue_name" validate:"required,max=200"`
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
	Notes         string    `json:"notes" validate:"max=1000"`
}

// ConfirmByQRRequest carries the payload scanned from the partner's QR code.
type ConfirmByQRRequest struct {
	QRData string `json:"qr_data" validate:"required,max=512"`
}

// sessionAction is a participant-scoped transition on one session.
type sessionAction func(c echo.Context, userID, sessionID uuid.UUID) (any, error)

// CreateSession schedules a session. Retrying with the same body returns the existing session.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	session, err := h.sessionUC.CreateSession(c.Request().Context(), usecase.CreateSessionInput{
		MatchID:       uuid.MustParse(req.MatchID),
		UserID:        userID,
		VenueName:     req.VenueName,
		ScheduledTime: req.ScheduledTime,
		Notes:         req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// GetSession returns one session to its participants.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return h.withSession(c, func(c echo.Context, userID, sessionID uuid.UUID) (any, error) {
		return h.sessionUC.GetSession(c.Request().Context(), userID, sessionID)
	})
}

// ConfirmCompletion records the caller's confirmation.
func (h *SessionHandler) ConfirmCompletion(c echo.Context) error {
	return h.withSession(c, func(c echo.Context, userID, sessionID uuid.UUID) (any, error) {
		return h.sessionUC.ConfirmCompletion(c.Request().Context(), userID, sessionID)
	})
}

// CompleteSession completes a session both participants confirmed.
func (h *SessionHandler) CompleteSession(c echo.Context) error {
	return h.withSession(c, func(c echo.Context, userID, sessionID uuid.UUID) (any, error) {
		return h.sessionUC.CompleteSession(c.Request().Context(), userID, sessionID)
	})
}

// StartSession marks a scheduled session as in progress.
func (h *SessionHandler) StartSession(c echo.Context) error {
	return h.withSession(c, func(c echo.Context, userID, sessionID uuid.UUID) (any, error) {
		return h.sessionUC.StartSession(c.Request().Context(), userID, sessionID)
	})
}

// CancelSession cancels a session that has not finished.
func (h *SessionHandler) CancelSession(c echo.Context) error {
	return h.withSession(c, func(c echo.Context, userID, sessionID uuid.UUID) (any, error) {
		return h.sessionUC.CancelSession(c.Request().Context(), userID, sessionID)
	})
}

// ReportNoShow marks the caller's partner as absent.
func (h *SessionHandler) ReportNoShow(c echo.Context) error {
	return h.withSession(c, func(c echo.Context, userID, sessionID uuid.UUID) (any, error) {
		return h.sessionUC.ReportNoShow(c.Request().Context(), userID, sessionID)
	})
}

// GetCheckInQR renders the PNG check-in code the partner scans.
func (h *SessionHandler) GetCheckInQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "session")
	}

	png, err := h.sessionUC.GenerateCheckInQR(c.Request().Context(), userID, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ConfirmByQR confirms completion for the scanning user.
func (h *SessionHandler) ConfirmByQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ConfirmByQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	result, err := h.sessionUC.ConfirmByQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *SessionHandler) withSession(c echo.Context, action sessionAction) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "session")
	}

	result, err := action(c, userID, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
