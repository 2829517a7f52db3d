package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS",
	"OPENAI_API_URL", "OPENAI_API_KEY", "OPENAI_MODEL",
	"OPENAI_TEMPERATURE", "OPENAI_MAX_TOKENS", "OPENAI_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestFromViperDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "https://api.openai.com/v1/", cfg.OpenAI.BaseURL)
	assert.Equal(t, DefaultModel, cfg.OpenAI.Model)
	assert.Equal(t, 0.7, cfg.OpenAI.Temperature)
	assert.Equal(t, int64(500), cfg.OpenAI.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.OpenAI.Timeout)
	assert.False(t, cfg.OpenAI.Enabled())
}

func TestFromViperEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://admin.example.com")
	t.Setenv("OPENAI_API_URL", "https://proxy.example.com/v1/chat/completions")
	t.Setenv("OPENAI_API_KEY", "  sk-test  ")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_TEMPERATURE", "0.2")
	t.Setenv("OPENAI_MAX_TOKENS", "256")
	t.Setenv("OPENAI_TIMEOUT", "5s")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"http://localhost:3000", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "https://proxy.example.com/v1/", cfg.OpenAI.BaseURL)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.True(t, cfg.OpenAI.Enabled())
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 0.2, cfg.OpenAI.Temperature)
	assert.Equal(t, int64(256), cfg.OpenAI.MaxTokens)
	assert.Equal(t, 5*time.Second, cfg.OpenAI.Timeout)
}

func TestFromViperRejectsInvalidValues(t *testing.T) {
	testCases := map[string]string{
		"OPENAI_TIMEOUT":       "-1s",
		"OPENAI_TIMEOUT=soon":  "soon",
		"OPENAI_TIMEOUT=500ms": "500ms",
		"OPENAI_MAX_TOKENS":    "0",
		"OPENAI_TEMPERATURE":   "3.5",
		"CORS_ALLOWED_ORIGINS": "localhost:3000",
	}

	for key, value := range testCases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			name, _, _ := strings.Cut(key, "=")
			t.Setenv(name, value)

			_, err := FromViper(newViper())
			assert.Error(t, err)
		})
	}
}

func TestParseTimeout(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Duration
	}{
		{"30", 30 * time.Second},
		{" 45 ", 45 * time.Second},
		{"30s", 30 * time.Second},
		{"1m30s", 90 * time.Second},
		{"1500ms", 1500 * time.Millisecond},
	}

	for _, tc := range testCases {
		got, err := ParseTimeout(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, got, "input %q", tc.input)
	}

	_, err := ParseTimeout("thirty")
	assert.Error(t, err)
}

func TestFromViperTimeoutWithoutUnitIsSeconds(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_TIMEOUT", "30")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.OpenAI.Timeout)
}

func TestNormalizeBaseURL(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", "https://api.openai.com/v1/"},
		{"https://api.openai.com/v1", "https://api.openai.com/v1/"},
		{"https://api.openai.com/v1/", "https://api.openai.com/v1/"},
		{"https://api.openai.com/v1/chat/completions", "https://api.openai.com/v1/"},
		{"http://localhost:8089/openai/", "http://localhost:8089/openai/"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizeBaseURL(tc.input), "input %q", tc.input)
	}
}
