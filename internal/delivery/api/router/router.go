// Package router contains routing for the API delivery.
package router

import (
	"wingman/internal/delivery/api/middleware"
	"wingman/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler    *handler.ProfileHandler
	LocationHandler   *handler.LocationHandler
	CandidateHandler  *handler.CandidateHandler
	MatchHandler      *handler.MatchHandler
	SessionHandler    *handler.SessionHandler
	ReputationHandler *handler.ReputationHandler
	BlockHandler      *handler.BlockHandler
	DeviceHandler     *handler.DeviceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler    *handler.ProfileHandler
	locationHandler   *handler.LocationHandler
	candidateHandler  *handler.CandidateHandler
	matchHandler      *handler.MatchHandler
	sessionHandler    *handler.SessionHandler
	reputationHandler *handler.ReputationHandler
	blockHandler      *handler.BlockHandler
	deviceHandler     *handler.DeviceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:    params.ProfileHandler,
		locationHandler:   params.LocationHandler,
		candidateHandler:  params.CandidateHandler,
		matchHandler:      params.MatchHandler,
		sessionHandler:    params.SessionHandler,
		reputationHandler: params.ReputationHandler,
		blockHandler:      params.BlockHandler,
		deviceHandler:     params.DeviceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/profile", r.profileHandler.GetProfile)
	apiV1.PUT("/profile", r.profileHandler.UpdateProfile)

	apiV1.GET("/locations/me", r.locationHandler.GetLocation)
	apiV1.PUT("/locations/me", r.locationHandler.UpdateLocation)

	apiV1.GET("/candidates", r.candidateHandler.ListCandidates)

	matchesGroup := apiV1.Group("/matches")
	{
		matchesGroup.POST("", r.matchHandler.CreateMatch)
		matchesGroup.GET("", r.matchHandler.ListMatches)
		matchesGroup.GET("/:id", r.matchHandler.GetMatch)
		matchesGroup.POST("/:id/respond", r.matchHandler.Respond)
	}

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.CreateSession)
		sessionsGroup.POST("/qr/confirm", r.sessionHandler.ConfirmByQR)
		sessionsGroup.GET("/:id", r.sessionHandler.GetSession)
		sessionsGroup.GET("/:id/qr", r.sessionHandler.GetCheckInQR)
		sessionsGroup.POST("/:id/confirm", r.sessionHandler.ConfirmCompletion)
		sessionsGroup.POST("/:id/complete", r.sessionHandler.CompleteSession)
		sessionsGroup.POST("/:id/start", r.sessionHandler.StartSession)
		sessionsGroup.POST("/:id/cancel", r.sessionHandler.CancelSession)
		sessionsGroup.POST("/:id/no-show", r.sessionHandler.ReportNoShow)
	}

	// "me" resolves to the caller
	apiV1.GET("/users/:id/reputation", r.reputationHandler.GetReputation)

	blocksGroup := apiV1.Group("/blocks")
	{
		blocksGroup.POST("", r.blockHandler.BlockUser)
		blocksGroup.DELETE("/:userId", r.blockHandler.UnblockUser)
	}

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}
}
