package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"wingman/config"
	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/domain/service"
	"wingman/internal/errors"
	"wingman/internal/infra/geo"
	"wingman/internal/infra/metrics"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// DiscoveryServiceParams holds dependencies for the discovery service
type DiscoveryServiceParams struct {
	fx.In

	Config     *config.Config
	Locations  repository.LocationRepository
	Profiles   repository.ProfileRepository
	BlockList  service.BlockList
	Reputation usecase.ReputationUsecase
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// discoveryService implements the DiscoveryUsecase interface.
type discoveryService struct {
	cfg        *config.MatchingConfig
	locations  repository.LocationRepository
	profiles   repository.ProfileRepository
	blockList  service.BlockList
	reputation usecase.ReputationUsecase
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		cfg:        params.Config.Matching,
		locations:  params.Locations,
		profiles:   params.Profiles,
		blockList:  params.BlockList,
		reputation: params.Reputation,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

func (srv *discoveryService) FindCandidates(ctx context.Context, userID uuid.UUID, exclude map[uuid.UUID]struct{}) ([]*entity.Candidate, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	searcher, err := srv.locations.FindLocationByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find searcher location")
	}

	// Hidden searchers get an empty pool; the pool query enforces the same rule.
	if searcher.PrivacyMode == entity.PrivacyHidden {
		return []*entity.Candidate{}, nil
	}

	profile, err := srv.profiles.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find searcher profile")
	}

	blocked, err := srv.blockList.BlockedWith(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load block list")
	}

	skip := make([]uuid.UUID, 0, len(exclude)+len(blocked))
	for id := range exclude {
		skip = append(skip, id)
	}
	for id := range blocked {
		if _, dup := exclude[id]; !dup {
			skip = append(skip, id)
		}
	}

	query := repository.CandidatePoolQuery{
		SearcherID:          userID,
		SearcherCity:        entity.NormalizeCity(searcher.City),
		SearcherExperience:  profile.ExperienceLevel,
		MaxTravelDistance:   searcher.MaxTravelDistance,
		SameCityProxyMiles:  srv.cfg.SameCityProxyMiles,
		OtherCityProxyMiles: srv.cfg.OtherCityProxyMiles,
		Exclude:             skip,
		Limit:               srv.cfg.CandidatePoolSize,
	}
	if searcher.HasCoordinates() {
		query.Latitude, query.Longitude = searcher.Latitude, searcher.Longitude
	}

	pool, err := srv.locations.FindCandidatePool(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate pool")
	}

	// The pool is already filtered; these checks only recompute the match attributes
	// and drop rows that sit on the radius boundary after float rounding.
	candidates := make([]*entity.Candidate, 0, len(pool))
	for _, row := range pool {
		candidateID := row.Location.UserID
		if candidateID == userID {
			continue
		}

		experience := entity.CompareExperience(profile.ExperienceLevel, row.ExperienceLevel)
		if experience == entity.ExperienceMatchNone {
			continue
		}

		distance, isProxy := srv.distance(searcher, &row.Location)
		if !isProxy && distance > float64(searcher.MaxTravelDistance) {
			continue
		}

		candidates = append(candidates, &entity.Candidate{
			UserID:           candidateID,
			DisplayName:      row.DisplayName,
			City:             row.Location.City,
			DistanceMiles:    distance,
			DistanceIsProxy:  isProxy,
			ExperienceLevel:  row.ExperienceLevel,
			ExperienceMatch:  experience,
			ProfileCreatedAt: row.ProfileCreatedAt,
		})
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.UserID)
	}

	reputations, err := srv.reputation.GetReputations(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate reputations")
	}
	for _, c := range candidates {
		if rep, ok := reputations[c.UserID]; ok {
			c.Reputation = rep.Score
			c.BadgeColor = rep.BadgeColor
		}
	}

	rankCandidates(candidates)
	if limit := srv.cfg.CandidateLimit; limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	srv.metrics.DiscoveryCandidates.Observe(float64(len(candidates)))
	log.Debug("Discovery finished",
		slog.String("user_id", userID.String()),
		slog.Int("pool", len(pool)),
		slog.Int("candidates", len(candidates)),
	)

	return candidates, nil
}

// distance uses haversine when both sides expose coordinates and the city proxy otherwise.
func (srv *discoveryService) distance(searcher, candidate *entity.UserLocation) (miles float64, isProxy bool) {
	if searcher.HasCoordinates() && candidate.HasCoordinates() {
		return geo.HaversineMiles(*searcher.Latitude, *searcher.Longitude, *candidate.Latitude, *candidate.Longitude), false
	}

	if searcher.SameCity(candidate) {
		return srv.cfg.SameCityProxyMiles, true
	}

	return srv.cfg.OtherCityProxyMiles, true
}

// rankCandidates orders by distance ascending, reputation descending, then longest waiting.
func rankCandidates(candidates []*entity.Candidate) {
	slices.SortStableFunc(candidates, func(a, b *entity.Candidate) int {
		return cmp.Or(
			cmp.Compare(a.DistanceMiles, b.DistanceMiles),
			cmp.Compare(b.Reputation, a.Reputation),
			a.ProfileCreatedAt.Compare(b.ProfileCreatedAt),
		)
	})
}
