package impl

import (
	"context"
	"log/slog"
	"time"

	"wingman/internal/domain/constants"
	"wingman/internal/errors"
	"wingman/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultSweepBatchSize   = 100
	defaultRedispatchWindow = 10 * time.Minute
)

// NewSweeperService is the constructor for the expiry sweeper. It shares the
// match state machine's transitions.
func NewSweeperService(params MatchServiceParams) usecase.SweeperUsecase {
	return newMatchService(params)
}

// Sweep expires stale pending matches and replays undispatched mutual accepts.
func (srv *matchService) Sweep(ctx context.Context) (*usecase.SweepReport, error) {
	report := &usecase.SweepReport{}
	now := srv.now().UTC()

	batch, redispatchAfter := defaultSweepBatchSize, defaultRedispatchWindow
	if srv.sweeperCfg != nil {
		if srv.sweeperCfg.BatchSize > 0 {
			batch = srv.sweeperCfg.BatchSize
		}
		if srv.sweeperCfg.RedispatchAfter > 0 {
			redispatchAfter = srv.sweeperCfg.RedispatchAfter
		}
	}

	stale, err := srv.matches.FindExpiredPending(ctx, now, batch)
	if err != nil {
		srv.metrics.SweeperRuns.WithLabelValues("error").Inc()

		return report, errors.Wrap(err, "failed to find expired matches")
	}

	for _, match := range stale {
		applied, err := srv.expire(ctx, match, now)
		if err != nil {
			srv.log(ctx).Warn("Sweeper failed to expire match", slog.String("match_id", match.ID.String()), slog.Any("error", err))

			continue
		}
		if !applied {
			// A participant's response got there first.
			continue
		}
		report.Expired++

		for _, userID := range []uuid.UUID{match.UserAID, match.UserBID} {
			if srv.rematchIfSeeking(ctx, userID) {
				report.Rematched++
			}
		}
	}

	undispatched, err := srv.matches.FindUndispatchedAccepted(ctx, now.Add(-redispatchAfter), batch)
	if err != nil {
		srv.metrics.SweeperRuns.WithLabelValues("error").Inc()

		return report, errors.Wrap(err, "failed to find undispatched matches")
	}

	for _, match := range undispatched {
		event := srv.matchEvent(constants.EventMatchAccepted, match, uuid.Nil)
		if err := srv.dispatcher.Publish(ctx, event); err != nil {
			continue
		}
		srv.markDispatched(ctx, match.ID)
		report.Redispatched++
	}

	srv.metrics.SweeperRuns.WithLabelValues("ok").Inc()
	if report.Expired > 0 || report.Redispatched > 0 {
		srv.log(ctx).Info("Sweep finished",
			slog.Int("expired", report.Expired),
			slog.Int("rematched", report.Rematched),
			slog.Int("redispatched", report.Redispatched),
		)
	}

	return report, nil
}

// rematchIfSeeking offers a fresh match to a participant of an expired match.
func (srv *matchService) rematchIfSeeking(ctx context.Context, userID uuid.UUID) bool {
	profile, err := srv.profiles.FindProfileByUserID(ctx, userID)
	if err != nil || !profile.IsSeeking {
		return false
	}

	outcome, err := srv.createMatch(ctx, userID, nil, "")
	if err != nil {
		srv.log(ctx).Debug("Re-match after expiry skipped", slog.String("user_id", userID.String()), slog.Any("error", err))

		return false
	}

	return outcome.Match != nil
}

var (
	_ usecase.MatchUsecase   = (*matchService)(nil)
	_ usecase.SweeperUsecase = (*matchService)(nil)
)
