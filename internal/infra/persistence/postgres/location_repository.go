package postgres

import (
	"context"

	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/infra/geo"
	"wingman/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// candidatePoolQuery reads the geo index for one searcher. Hidden rows never leave the
// database and coordinates are only projected for precise rows. A hidden searcher gets
// no rows at all. Blocks, experience compatibility and the travel radius are enforced
// before the LIMIT. Rows come back in ranking order (distance, clamped reputation from
// session history, longest waiting), so the cut only drops rows that rank below every
// row it keeps, even inside a large same-city tie.
const candidatePoolQuery = `
	WITH pool AS (
	  SELECT l.user_id,
	         CASE WHEN l.privacy_mode = 'precise' THEN l.latitude END  AS latitude,
	         CASE WHEN l.privacy_mode = 'precise' THEN l.longitude END AS longitude,
	         l.city,
	         l.privacy_mode,
	         l.max_travel_distance,
	         l.created_at,
	         l.updated_at,
	         p.experience_level,
	         p.display_name,
	         p.created_at AS profile_created_at,
	         CASE WHEN @precise AND l.privacy_mode = 'precise'
	                   AND l.latitude IS NOT NULL AND l.longitude IS NOT NULL
	           THEN 2 * CAST(@radius AS double precision) * asin(least(1.0, sqrt(
	                  power(sin(radians(l.latitude - CAST(@lat AS double precision)) / 2), 2) +
	                  cos(radians(CAST(@lat AS double precision))) * cos(radians(l.latitude)) *
	                  power(sin(radians(l.longitude - CAST(@lon AS double precision)) / 2), 2))))
	         END AS exact_miles,
	         lower(btrim(regexp_replace(l.city, '\s+', ' ', 'g'))) = @city AS same_city,
	         greatest(CAST(@min_score AS integer), least(CAST(@max_score AS integer),
	                  CAST(o.net AS integer))) AS reputation
	  FROM user_locations l
	  JOIN wingman_profiles p ON p.user_id = l.user_id
	  LEFT JOIN LATERAL (
	    SELECT COUNT(*) FILTER (WHERE s.status = 'completed')
	         - COUNT(*) FILTER (WHERE s.status = 'no_show' AND s.no_show_user_id = l.user_id) AS net
	    FROM wingman_sessions s
	    JOIN wingman_matches sm ON sm.id = s.match_id
	    WHERE sm.user_a_id = l.user_id OR sm.user_b_id = l.user_id
	  ) o ON true
	  WHERE l.user_id NOT IN @exclude
	    AND l.privacy_mode <> 'hidden'
	    AND p.is_seeking = true
	    AND abs(CASE p.experience_level WHEN 'intermediate' THEN 1 WHEN 'advanced' THEN 2 ELSE 0 END
	            - CAST(@rank AS integer)) <= 1
	    AND EXISTS (
	      SELECT 1 FROM user_locations s
	      WHERE s.user_id = @searcher AND s.privacy_mode <> 'hidden'
	    )
	    AND NOT EXISTS (
	      SELECT 1 FROM wingman_matches m
	      WHERE (m.user_a_id = @searcher AND m.user_b_id = l.user_id)
	         OR (m.user_b_id = @searcher AND m.user_a_id = l.user_id)
	    )
	    AND NOT EXISTS (
	      SELECT 1 FROM user_blocks b
	      WHERE (b.blocker_id = @searcher AND b.blocked_id = l.user_id)
	         OR (b.blocker_id = l.user_id AND b.blocked_id = @searcher)
	    )
	)
	SELECT user_id, latitude, longitude, city, privacy_mode, max_travel_distance,
	       created_at, updated_at, experience_level, display_name, profile_created_at
	FROM pool
	WHERE exact_miles IS NULL OR exact_miles <= CAST(@max_distance AS double precision)
	ORDER BY COALESCE(exact_miles,
	                  CASE WHEN same_city THEN CAST(@same_proxy AS double precision)
	                       ELSE CAST(@other_proxy AS double precision) END) ASC,
	         reputation DESC,
	         profile_created_at ASC
	LIMIT @limit
`

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// UpsertLocation stores the owner's location, replacing any previous record.
func (repo *locationRepository) UpsertLocation(ctx context.Context, location *entity.UserLocation) error {
	location.City = entity.CleanCity(location.City)
	locationM := fromLocationDomain(location)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "city", "privacy_mode", "max_travel_distance", "updated_at"}),
		}).
		Create(locationM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("max_travel_distance out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert location")
	}

	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByUserID returns the owner's own record, coordinates included.
func (repo *locationRepository) FindLocationByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindCandidatePool returns seeking users eligible to be paired with the searcher.
func (repo *locationRepository) FindCandidatePool(ctx context.Context, query repository.CandidatePoolQuery) ([]*entity.CandidateRow, error) {
	var rows []*model.CandidatePoolRow

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(candidatePoolQuery, candidatePoolParams(query)).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read candidate pool")
	}

	candidates := make([]*entity.CandidateRow, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, toCandidateRow(row))
	}

	return candidates, nil
}

// candidatePoolParams binds a pool query. The searcher is always in the exclusion list,
// which also keeps NOT IN from ever expanding an empty list.
func candidatePoolParams(query repository.CandidatePoolQuery) map[string]any {
	exclude := make([]uuid.UUID, 0, len(query.Exclude)+1)
	exclude = append(exclude, query.SearcherID)
	for _, id := range query.Exclude {
		if id != query.SearcherID {
			exclude = append(exclude, id)
		}
	}

	params := map[string]any{
		"searcher":     query.SearcherID,
		"exclude":      exclude,
		"city":         entity.NormalizeCity(query.SearcherCity),
		"rank":         query.SearcherExperience.MatchRank(),
		"precise":      false,
		"lat":          0.0,
		"lon":          0.0,
		"radius":       geo.EarthRadiusMiles,
		"max_distance": query.MaxTravelDistance,
		"same_proxy":   query.SameCityProxyMiles,
		"other_proxy":  query.OtherCityProxyMiles,
		"min_score":    entity.MinReputationScore,
		"max_score":    entity.MaxReputationScore,
		"limit":        nil,
	}
	if query.Latitude != nil && query.Longitude != nil {
		params["precise"] = true
		params["lat"] = *query.Latitude
		params["lon"] = *query.Longitude
	}
	if query.Limit > 0 {
		params["limit"] = query.Limit
	}

	return params
}

// --- Mapper Functions ---

func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		UserID:            data.UserID,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		City:              data.City,
		PrivacyMode:       entity.PrivacyMode(data.PrivacyMode),
		MaxTravelDistance: data.MaxTravelDistance,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		UserID:            data.UserID,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		City:              entity.CleanCity(data.City),
		PrivacyMode:       string(data.PrivacyMode),
		MaxTravelDistance: data.MaxTravelDistance,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toCandidateRow(row *model.CandidatePoolRow) *entity.CandidateRow {
	return &entity.CandidateRow{
		Location: entity.UserLocation{
			UserID:            row.UserID,
			Latitude:          row.Latitude,
			Longitude:         row.Longitude,
			City:              row.City,
			PrivacyMode:       entity.PrivacyMode(row.PrivacyMode),
			MaxTravelDistance: row.MaxTravelDistance,
			CreatedAt:         row.CreatedAt,
			UpdatedAt:         row.UpdatedAt,
		},
		ExperienceLevel:  entity.ExperienceLevel(row.ExperienceLevel),
		DisplayName:      row.DisplayName,
		ProfileCreatedAt: row.ProfileCreatedAt,
	}
}
