package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"sqlitePath":   "plans.db",
			"maxOpenConns": 10,
		},
		"generative": map[string]any{
			"apiKey":  "",
			"baseUrl": "",
		},
		"planner": map[string]any{
			"generationBaseDelay": "1s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_SQLITEPATH", want: "database.sqlitePath"},
		{envKey: "DATABASE_MAXOPENCONNS", want: "database.maxOpenConns"},
		{envKey: "GENERATIVE_APIKEY", want: "generative.apiKey"},
		{envKey: "GENERATIVE_BASEURL", want: "generative.baseUrl"},
		{envKey: "PLANNER_GENERATIONBASEDELAY", want: "planner.generationBaseDelay"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
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

func TestApplyDefaults_FallsBackToConventionalEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("NEON_DATABASE_URL", "postgres://neon/plans")
	t.Setenv("GEMINI_API_KEY", "key-123")

	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Database)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://neon/plans", cfg.Database.URL)
	assert.Equal(t, "key-123", cfg.Generative.APIKey)
	assert.Equal(t, GenerativeProviderGemini, cfg.Generative.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Generative.Model)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 3, cfg.Planner.GenerationAttempts)
	assert.Equal(t, time.Second, cfg.Planner.GenerationBaseDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Planner.CacheBaseDelay)
	assert.InDelta(t, 0.1, cfg.Planner.Temperature, 1e-9)
}

func TestApplyDefaults_DatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://primary/plans")
	t.Setenv("NEON_DATABASE_URL", "postgres://neon/plans")

	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "postgres://primary/plans", cfg.Database.URL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg := &Config{
		Generative: &GenerativeConfig{Provider: GenerativeProviderVertex, APIKey: "from-file"},
		Planner:    &PlannerConfig{GenerationAttempts: 5},
	}
	applyDefaults(cfg)

	assert.Equal(t, GenerativeProviderVertex, cfg.Generative.Provider)
	assert.Equal(t, "from-file", cfg.Generative.APIKey)
	assert.Equal(t, 5, cfg.Planner.GenerationAttempts)
}
