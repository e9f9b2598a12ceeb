// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/entity"
	"wingman/internal/domain/repository"
	"wingman/internal/domain/service"
	"wingman/internal/errors"
	"wingman/internal/infra/metrics"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ReputationServiceParams holds dependencies for the reputation service
type ReputationServiceParams struct {
	fx.In

	Sessions repository.SessionRepository
	Cache    service.ReputationCache
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// reputationService implements the ReputationUsecase interface.
type reputationService struct {
	sessions repository.SessionRepository
	cache    service.ReputationCache
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// NewReputationService is the constructor for reputationService.
func NewReputationService(params ReputationServiceParams) usecase.ReputationUsecase {
	return &reputationService{
		sessions: params.Sessions,
		cache:    params.Cache,
		metrics:  params.Metrics,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *reputationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetReputation serves from cache and recomputes from session history on a miss or a cache failure.
func (srv *reputationService) GetReputation(ctx context.Context, userID uuid.UUID) (*entity.Reputation, error) {
	rep, err := srv.cache.Get(ctx, userID)
	switch {
	case err == nil:
		srv.metrics.ReputationCache.WithLabelValues("hit").Inc()

		return rep, nil
	case errors.Is(err, service.ErrCacheMiss):
		srv.metrics.ReputationCache.WithLabelValues("miss").Inc()
	default:
		srv.metrics.ReputationCache.WithLabelValues("error").Inc()
		srv.log(ctx).Warn("Reputation cache read failed, computing directly",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}

	completed, noShows, err := srv.sessions.CountSessionOutcomes(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count session outcomes")
	}

	rep = entity.NewReputation(userID, completed, noShows, srv.now().UTC())

	if err := srv.cache.Set(ctx, rep); err != nil {
		srv.log(ctx).Warn("Reputation cache write failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}

	return rep, nil
}

func (srv *reputationService) GetReputations(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Reputation, error) {
	out := make(map[uuid.UUID]*entity.Reputation, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	cached, err := srv.cache.GetMany(ctx, userIDs)
	cacheUp := err == nil
	if !cacheUp {
		srv.metrics.ReputationCache.WithLabelValues("error").Inc()
		srv.log(ctx).Warn("Reputation cache batch read failed, computing directly",
			slog.Int("users", len(userIDs)),
			slog.Any("error", err),
		)
	}

	misses := make([]uuid.UUID, 0, len(userIDs))
	seen := make(map[uuid.UUID]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if rep, ok := cached[id]; ok {
			out[id] = rep
			continue
		}
		misses = append(misses, id)
	}

	srv.metrics.ReputationCache.WithLabelValues("hit").Add(float64(len(out)))
	if cacheUp {
		srv.metrics.ReputationCache.WithLabelValues("miss").Add(float64(len(misses)))
	}
	if len(misses) == 0 {
		return out, nil
	}

	counts, err := srv.sessions.CountSessionOutcomesFor(ctx, misses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count session outcomes")
	}

	now := srv.now().UTC()
	computed := make([]*entity.Reputation, 0, len(misses))
	for _, id := range misses {
		c := counts[id]
		rep := entity.NewReputation(id, c.Completed, c.NoShows, now)
		out[id] = rep
		computed = append(computed, rep)
	}

	// A backend that just failed the read is not retried for the write.
	if cacheUp {
		if err := srv.cache.SetMany(ctx, computed); err != nil {
			srv.log(ctx).Warn("Reputation cache batch write failed",
				slog.Int("users", len(computed)),
				slog.Any("error", err),
			)
		}
	}

	return out, nil
}

func (srv *reputationService) Invalidate(ctx context.Context, userIDs ...uuid.UUID) {
	if err := srv.cache.Delete(ctx, userIDs...); err != nil {
		srv.log(ctx).Warn("Reputation cache invalidation failed",
			slog.Int("users", len(userIDs)),
			slog.Any("error", err),
		)
	}
}
