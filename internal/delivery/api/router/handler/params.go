package handler

import (
	"wingman/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// unauthorized answers requests that reached a handler without an authenticated caller.
func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

func invalidID(c echo.Context, resource string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+resource+" ID")
}
