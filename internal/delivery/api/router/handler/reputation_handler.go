package handler

import (
	"net/http"

	"wingman/internal/delivery/api/middleware"
	"wingman/internal/delivery/api/response"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const selfAlias = "me"

// ReputationHandler serves reputation snapshots.
type ReputationHandler struct {
	reputationUC usecase.ReputationUsecase
}

// NewReputationHandler is the constructor for ReputationHandler.
func NewReputationHandler(reputationUC usecase.ReputationUsecase) *ReputationHandler {
	return &ReputationHandler{reputationUC: reputationUC}
}

// GetReputation returns the cached reputation of a user; "me" resolves to the caller.
func (h *ReputationHandler) GetReputation(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	userID := callerID
	if raw := c.Param("id"); raw != selfAlias {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return invalidID(c, "user")
		}
		userID = parsed
	}

	reputation, err := h.reputationUC.GetReputation(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reputation)
}
