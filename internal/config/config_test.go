package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "Model",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"QUIZ_LLM_ENABLED", "QUIZ_TIMEOUT", "QUIZ_MAX_TOKENS", "QUIZ_TEMPERATURE", "QUIZ_CONCURRENCY",
		"GUIDE_LANGUAGE", "GUIDE_OFFER_SIZE", "GUIDE_MAX_TOKENS", "GUIDE_TIMEOUT",
		"SESSION_STORE", "SESSION_STORE_PATH", "REDIS_URL", "SESSION_TTL", "SESSION_PURGE_INTERVAL",
		"LOG_LEVEL", "CATALOG_FILE", "CORS_ORIGINS",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.Equal(t, "museum-guide", cfg.Telemetry.ServiceName)
	assert.False(t, cfg.AI.Enabled())
	assert.False(t, cfg.OpenAI.Enabled())
	assert.True(t, cfg.Quiz.LLMEnabled)
	assert.Equal(t, 8*time.Second, cfg.Quiz.Timeout)
	assert.Equal(t, 500, cfg.Quiz.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Quiz.Temperature, 1e-6)
	assert.Equal(t, 4, cfg.Quiz.Concurrency)
	assert.Equal(t, "ko", cfg.Guide.Language)
	assert.Equal(t, 10, cfg.Guide.OfferSize)
	assert.Equal(t, "memory", cfg.Store.Engine)
	assert.Equal(t, 24*time.Hour, cfg.Store.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Store.PurgeInterval)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("QUIZ_LLM_ENABLED", "false")
	t.Setenv("QUIZ_TIMEOUT", "2s")
	t.Setenv("QUIZ_CONCURRENCY", "0")
	t.Setenv("GUIDE_LANGUAGE", "EN")
	t.Setenv("SESSION_STORE", "bolt")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Quiz.LLMEnabled)
	assert.Equal(t, 2*time.Second, cfg.Quiz.Timeout)
	assert.Equal(t, 1, cfg.Quiz.Concurrency)
	assert.Equal(t, "en", cfg.Guide.Language)
	assert.Equal(t, "bolt", cfg.Store.Engine)
	assert.Equal(t, "data/sessions.bolt", cfg.Store.Path)
	assert.True(t, cfg.OpenAI.Enabled())
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "collector:4318", cfg.Telemetry.Endpoint)
	assert.False(t, cfg.Telemetry.Insecure)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                        "80 80",
		"QUIZ_TIMEOUT":                "soon",
		"QUIZ_LLM_ENABLED":            "maybe",
		"GUIDE_LANGUAGE":              "fr",
		"SESSION_STORE":               "mongo",
		"QUIZ_MAX_TOKENS":             "many",
		"OTEL_EXPORTER_OTLP_INSECURE": "sometimes",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestAIConfigEnabled(t *testing.T) {
	assert.True(t, AIConfig{Model: "m", APIKey: "k"}.Enabled())
	assert.True(t, AIConfig{Model: "m", AccessKey: "a", SecretKey: "s"}.Enabled())
	assert.False(t, AIConfig{APIKey: "k"}.Enabled())
	assert.False(t, AIConfig{Model: "m", AccessKey: "a"}.Enabled())
}
