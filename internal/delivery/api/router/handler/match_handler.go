package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"wingman/internal/delivery/api/middleware"
	"wingman/internal/delivery/api/response"
	"wingman/internal/domain/entity"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey lets clients retry POST /matches safely.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
	Logger  *slog.Logger
}

// MatchHandler exposes the match state machine.
type MatchHandler struct {
	matchUC usecase.MatchUsecase
	logger  *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchUC: params.MatchUC,
		logger:  params.Logger,
	}
}

// RespondRequest is a participant's answer to a pending match.
type RespondRequest struct {
	Action entity.MatchAction `json:"action" validate:"required,oneof=accept decline"`
}

// CreateMatch asks discovery for the best candidate and opens a pending match.
// A 200 with no_candidates set means nobody is available right now.
func (h *MatchHandler) CreateMatch(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	key := c.Request().Header.Get(HeaderIdempotencyKey)
	if len(key) > maxIdempotencyKeyLength {
		return response.BadRequest(c, "INVALID_IDEMPOTENCY_KEY", "Idempotency-Key is too long")
	}

	outcome, err := h.matchUC.RequestMatch(c.Request().Context(), usecase.MatchRequest{
		UserID:         userID,
		IdempotencyKey: key,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if outcome.Match != nil && !outcome.Replayed {
		status = http.StatusCreated
	}

	return response.Success(c, status, outcome)
}

// ListMatches returns the caller's matches, newest first.
func (h *MatchHandler) ListMatches(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
		}
		limit = parsed
	}

	matches, err := h.matchUC.ListMatches(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if matches == nil {
		matches = []*entity.WingmanMatch{}
	}

	return response.Success(c, http.StatusOK, matches)
}

// GetMatch returns one match to its participants.
func (h *MatchHandler) GetMatch(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "match")
	}

	match, err := h.matchUC.GetMatch(c.Request().Context(), userID, matchID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, match)
}

// Respond records accept or decline. Replaying the same action returns the
// unchanged match with already_handled set.
func (h *MatchHandler) Respond(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "match")
	}

	var req RespondRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	result, err := h.matchUC.Respond(c.Request().Context(), usecase.RespondInput{
		MatchID: matchID,
		UserID:  userID,
		Action:  req.Action,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
