// Package cache holds the redis-backed reputation cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"wingman/config"
	"wingman/internal/domain/entity"
	"wingman/internal/domain/service"
	"wingman/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultTTL = 5 * time.Minute

type redisReputationCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisReputationCache wraps a redis client as a ReputationCache.
func NewRedisReputationCache(client redis.UniversalClient, prefix string, ttl time.Duration) service.ReputationCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisReputationCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *redisReputationCache) key(userID uuid.UUID) string {
	return c.prefix + userID.String()
}

func (c *redisReputationCache) keys(userIDs []uuid.UUID) []string {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, c.key(id))
	}

	return keys
}

func (c *redisReputationCache) Get(ctx context.Context, userID uuid.UUID) (*entity.Reputation, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}

	rep := new(entity.Reputation)
	if err := json.Unmarshal(raw, rep); err != nil {
		// A corrupt entry behaves as a miss; the next Set overwrites it.
		return nil, service.ErrCacheMiss
	}

	return rep, nil
}

// GetMany reads every entry with one MGET. Missing and corrupt entries are left out.
func (c *redisReputationCache) GetMany(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Reputation, error) {
	out := make(map[uuid.UUID]*entity.Reputation, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	values, err := c.client.MGet(ctx, c.keys(userIDs)...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis mget")
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		rep := new(entity.Reputation)
		if err := json.Unmarshal([]byte(raw), rep); err != nil {
			continue
		}
		out[userIDs[i]] = rep
	}

	return out, nil
}

func (c *redisReputationCache) Set(ctx context.Context, rep *entity.Reputation) error {
	raw, err := json.Marshal(rep)
	if err != nil {
		return errors.Wrap(err, "marshal reputation")
	}

	if err := c.client.Set(ctx, c.key(rep.UserID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

// SetMany writes every entry in one pipelined round trip.
func (c *redisReputationCache) SetMany(ctx context.Context, reps []*entity.Reputation) error {
	if len(reps) == 0 {
		return nil
	}

	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, rep := range reps {
			raw, err := json.Marshal(rep)
			if err != nil {
				return errors.Wrap(err, "marshal reputation")
			}
			pipe.Set(ctx, c.key(rep.UserID), raw, c.ttl)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "redis pipelined set")
	}

	return nil
}

func (c *redisReputationCache) Delete(ctx context.Context, userIDs ...uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, c.keys(userIDs)...).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}

	return nil
}

// noopReputationCache always misses, so every read takes the direct computation path.
type noopReputationCache struct{}

func (noopReputationCache) Get(context.Context, uuid.UUID) (*entity.Reputation, error) {
	return nil, service.ErrCacheMiss
}

func (noopReputationCache) GetMany(context.Context, []uuid.UUID) (map[uuid.UUID]*entity.Reputation, error) {
	return map[uuid.UUID]*entity.Reputation{}, nil
}

func (noopReputationCache) Set(context.Context, *entity.Reputation) error { return nil }

func (noopReputationCache) SetMany(context.Context, []*entity.Reputation) error { return nil }

func (noopReputationCache) Delete(context.Context, ...uuid.UUID) error { return nil }

// NewNoopReputationCache returns a cache that stores nothing.
func NewNoopReputationCache() service.ReputationCache {
	return noopReputationCache{}
}

// Params holds dependencies for the cache provider
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRedisClient builds a redis client from config. The configured timeouts apply to
// URL and address configuration alike and are kept well under the request budget, so
// an unresponsive redis fails a read in time for the direct computation to run.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, errors.Wrap(err, "parse redis url")
		}
		opts = parsed
	}

	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
		opts.PoolTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	if cfg.MaxRetries != 0 {
		opts.MaxRetries = cfg.MaxRetries
	}

	return redis.NewClient(opts), nil
}

// New provides the reputation cache. Without redis configuration it falls back to the no-op cache.
func New(params Params) (service.ReputationCache, error) {
	redisCfg := params.Config.Redis
	if redisCfg == nil || (redisCfg.URL == "" && redisCfg.Addr == "") {
		params.Logger.Info("Redis not configured, reputation cache disabled")

		return NewNoopReputationCache(), nil
	}

	client, err := NewRedisClient(redisCfg)
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The cache is optional, an unreachable redis only degrades reads.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, reputation reads will fall back", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	var ttl time.Duration
	var prefix string
	if params.Config.Reputation != nil {
		ttl = params.Config.Reputation.CacheTTL
		prefix = params.Config.Reputation.KeyPrefix
	}

	return NewRedisReputationCache(client, prefix, ttl), nil
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
