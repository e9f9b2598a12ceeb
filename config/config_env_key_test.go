package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"sweeper": map[string]any{
			"redispatchAfter": "10m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SWEEPER_REDISPATCHAFTER", want: "sweeper.redispatchAfter"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.Matching = &MatchingConfig{CandidateLimit: 3}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.RequestTimeout)
	assert.Equal(t, 48*time.Hour, cfg.Matching.MatchExpiry)
	assert.Equal(t, 3, cfg.Matching.CandidateLimit)
	assert.Equal(t, 200, cfg.Matching.CandidatePoolSize)
	assert.InDelta(t, 5.0, cfg.Matching.SameCityProxyMiles, 0)
	assert.InDelta(t, 10000.0, cfg.Matching.OtherCityProxyMiles, 0)
	assert.Equal(t, 5*time.Minute, cfg.Reputation.CacheTTL)
	assert.True(t, cfg.Sweeper.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.Sweeper.Interval)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.Metrics)
}

func TestApplyDefaults_KeepsExplicitSweeperSettings(t *testing.T) {
	cfg := &Config{Sweeper: &SweeperConfig{Enabled: false, Interval: time.Minute}}

	applyDefaults(cfg)

	assert.False(t, cfg.Sweeper.Enabled)
	assert.Equal(t, time.Minute, cfg.Sweeper.Interval)
	assert.Equal(t, 100, cfg.Sweeper.BatchSize)
}

func TestApplyDefaults_RedisTimeoutsFitRequestBudget(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379", ReadTimeout: 100 * time.Millisecond}}

	applyDefaults(cfg)

	assert.Equal(t, 250*time.Millisecond, cfg.Redis.DialTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Redis.ReadTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Redis.WriteTimeout)
	assert.Less(t, cfg.Redis.DialTimeout+cfg.Redis.ReadTimeout, cfg.HTTP.Timeouts.RequestTimeout)
}
