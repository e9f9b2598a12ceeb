package notification

import (
	"context"
	"log/slog"

	"wingman/config"
	"wingman/internal/domain/service"

	"go.uber.org/fx"
)

// PushParams holds dependencies for the PushSender provider
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender returns the Firebase sender, or a no-op sender when Firebase is not configured.
func NewPushSender(params PushParams) (service.PushSender, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return noopPushSender{}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}

// NewEmailSender returns the SMTP sender, or a no-op sender when SMTP is not configured.
func NewEmailSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	if cfg.Email == nil || cfg.Email.SMTPHost == "" {
		logger.Info("SMTP not configured, email notifications disabled")

		return noopEmailSender{}, nil
	}

	return NewSMTPEmailService(cfg.Email)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewPushSender,
		NewEmailSender,
		NewNotifier,
	),
)
