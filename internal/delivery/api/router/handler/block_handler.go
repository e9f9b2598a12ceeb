package handler

import (
	"net/http"

	"wingman/internal/delivery/api/middleware"
	"wingman/internal/delivery/api/response"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BlockHandler manages the caller's block list.
type BlockHandler struct {
	blockUC usecase.BlockUsecase
}

// NewBlockHandler is the constructor for BlockHandler.
func NewBlockHandler(blockUC usecase.BlockUsecase) *BlockHandler {
	return &BlockHandler{blockUC: blockUC}
}

// BlockUserRequest names the user to block.
type BlockUserRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// BlockUser hides the named user from the caller's discovery, in both directions.
func (h *BlockHandler) BlockUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req BlockUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid block input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}
	blockedID := uuid.MustParse(req.UserID)

	if err := h.blockUC.BlockUser(c.Request().Context(), userID, blockedID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UnblockUser removes a block the caller created.
func (h *BlockHandler) UnblockUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	blockedID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return invalidID(c, "user")
	}

	if err := h.blockUC.UnblockUser(c.Request().Context(), userID, blockedID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
