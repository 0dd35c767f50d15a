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
		"proximity": map[string]any{
			"candidatePadding": 1.1,
		},
		"realtime": map[string]any{
			"autoActivateOnLocationReport": true,
		},
		"pubsub": map[string]any{
			"subscriptionId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PROXIMITY_CANDIDATEPADDING", want: "proximity.candidatePadding"},
		{envKey: "REALTIME_AUTOACTIVATEONLOCATIONREPORT", want: "realtime.autoActivateOnLocationReport"},
		{envKey: "PUBSUB_SUBSCRIPTIONID", want: "pubsub.subscriptionId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "memory", cfg.Proximity.Backend)
	assert.InDelta(t, 1.1, cfg.Proximity.CandidatePadding, 1e-9)
	assert.InDelta(t, 10.0, cfg.Search.DefaultMaxDistanceKm, 1e-9)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, 50, cfg.Search.MaxLimit)
	assert.Equal(t, 50, cfg.History.Cap)
	assert.Equal(t, 10, cfg.History.SuggestionWindow)
	assert.Equal(t, []string{"fruits", "vegetables", "dairy", "snacks"}, cfg.History.DefaultSuggestions)
	assert.True(t, cfg.Realtime.AutoActivateOnLocationReport)
	assert.Equal(t, "local", cfg.Broadcast.Provider)
	assert.Less(t, cfg.Realtime.PingInterval, cfg.Realtime.PongWait)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Realtime: &RealtimeConfig{
			AutoActivateOnLocationReport: false,
			PongWait:                     30 * time.Second,
			PingInterval:                 10 * time.Second,
		},
		Proximity: &ProximityConfig{Backend: "redis", CandidatePadding: 1.3},
	}
	applyDefaults(cfg)

	assert.False(t, cfg.Realtime.AutoActivateOnLocationReport)
	assert.Equal(t, 10*time.Second, cfg.Realtime.PingInterval)
	assert.Equal(t, "redis", cfg.Proximity.Backend)
	assert.InDelta(t, 1.3, cfg.Proximity.CandidatePadding, 1e-9)
}
