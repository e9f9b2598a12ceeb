package main

import (
	"context"
	"log/slog"
	"os"

	"wingman/config"
	"wingman/internal/delivery"
	"wingman/internal/delivery/worker"
	"wingman/internal/delivery/worker/handler"
	"wingman/internal/infra/chat"
	logs "wingman/internal/infra/log"
	"wingman/internal/infra/notification"
	"wingman/internal/infra/persistence/postgres"
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
		notification.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMatchRepository,
			postgres.NewSessionRepository,
			postgres.NewProfileRepository,
			postgres.NewDeviceRepository,
			postgres.NewChatChannelRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			chat.NewProvisioner,
			impl.NewEffectsService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
