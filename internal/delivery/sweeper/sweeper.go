// Package sweeper runs the match expiry sweeper on a fixed interval.
package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wingman/config"
	"wingman/internal/delivery"
	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/lifecycle"
	"wingman/internal/errors"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Params holds dependencies for the sweeper delivery, injected by Fx.
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Sweeper usecase.SweeperUsecase
}

type sweeperDelivery struct {
	interval time.Duration
	enabled  bool
	sweeper  usecase.SweeperUsecase
	logger   *slog.Logger

	cancel context.CancelFunc
	mu     sync.Mutex
	done   chan struct{}
}

// New creates the sweeper delivery. It stops with the fx app.
func New(params Params) delivery.Delivery {
	d := newSweeperDelivery(params.Cfg.Sweeper, params.Sweeper, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: d.stop,
	})

	return d
}

func newSweeperDelivery(cfg *config.SweeperConfig, sweeper usecase.SweeperUsecase, logger *slog.Logger) *sweeperDelivery {
	return &sweeperDelivery{
		interval: cfg.Interval,
		enabled:  cfg.Enabled,
		sweeper:  sweeper,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Serve sweeps once immediately, then on every tick until stopped.
func (d *sweeperDelivery) Serve(ctx context.Context) error {
	defer close(d.done)

	if !d.enabled {
		d.logger.Info("Sweeper disabled")

		return nil
	}
	if d.interval <= 0 {
		return errors.Errorf("sweeper interval must be positive, got %s", d.interval)
	}

	ctx, cancel := context.WithCancel(ctx)
	d.mu.Lock()
	d.cancel = cancel
	d.mu.Unlock()
	defer cancel()

	d.logger.Info("Starting match expiry sweeper", slog.Duration("interval", d.interval))

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		d.runOnce(ctx)

		select {
		case <-ctx.Done():
			d.logger.Info("Match expiry sweeper stopped")

			return nil
		case <-ticker.C:
		}
	}
}

func (d *sweeperDelivery) runOnce(ctx context.Context) {
	runID := uuid.NewString()
	logger := d.logger.With(slog.String("request_id", runID))
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	report, err := d.sweeper.Sweep(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.Error("Sweep failed", slog.Any("error", err))

		return
	}

	if report.Expired > 0 || report.Redispatched > 0 {
		logger.Info("Sweep completed",
			slog.Int("expired", report.Expired),
			slog.Int("rematched", report.Rematched),
			slog.Int("redispatched", report.Redispatched),
		)
	}
}

func (d *sweeperDelivery) stop(ctx context.Context) error {
	d.mu.Lock()
	cancel := d.cancel
	d.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	waitCtx, done := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer done()

	select {
	case <-d.done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "sweeper did not stop in time")
	}
}
