package main

import (
	"context"
	"log/slog"
	"os"

	"wingman/config"
	"wingman/internal/delivery"
	"wingman/internal/delivery/api"
	"wingman/internal/delivery/api/middleware"
	"wingman/internal/delivery/api/router/handler"
	"wingman/internal/delivery/sweeper"
	"wingman/internal/domain/service"
	"wingman/internal/infra/auth"
	"wingman/internal/infra/block"
	"wingman/internal/infra/cache"
	"wingman/internal/infra/chat"
	logs "wingman/internal/infra/log"
	"wingman/internal/infra/metrics"
	"wingman/internal/infra/notification"
	"wingman/internal/infra/persistence/postgres"
	"wingman/internal/infra/pubsub"
	"wingman/internal/infra/qrcode"
	"wingman/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		cache.Module,
		pubsub.Module,
		notification.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewLocationRepository,
			postgres.NewProfileRepository,
			postgres.NewMatchRepository,
			postgres.NewSessionRepository,
			postgres.NewIdempotencyRepository,
			postgres.NewBlockRepository,
			postgres.NewChatChannelRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			block.NewBlockList,
			chat.NewProvisioner,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the check-in QR code service from config
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewLocationService,
			impl.NewReputationService,
			impl.NewDiscoveryService,
			impl.NewEventDispatcher,
			impl.NewMatchService,
			impl.NewSweeperService,
			impl.NewSessionService,
			impl.NewBlockService,
			impl.NewDeviceService,
			// Consumed by the in-process publisher when pubsub.provider is empty
			impl.NewEffectsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewLocationHandler,
			handler.NewCandidateHandler,
			handler.NewMatchHandler,
			handler.NewSessionHandler,
			handler.NewReputationHandler,
			handler.NewBlockHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				sweeper.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
