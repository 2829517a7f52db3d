package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"athena.merchant/go-api/pkg/global"
)

const (
	DefaultOpenAIURL = "https://api.openai.com/v1"
	DefaultModel     = "gpt-3.5-turbo"
)

// Config holds the application configuration
type Config struct {
	Port        string
	Environment string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
	OpenAI      OpenAIConfig
}

// OpenAIConfig describes the chat-completion endpoint used for insights.
// An empty APIKey selects the rule-based fallback for every question.
type OpenAIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int64
	Timeout     time.Duration
}

func (c OpenAIConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "3001")
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("openai_api_url", DefaultOpenAIURL)
	v.SetDefault("openai_model", DefaultModel)
	v.SetDefault("openai_temperature", 0.7)
	v.SetDefault("openai_max_tokens", 500)
	v.SetDefault("openai_timeout", "30s")
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	timeout, err := ParseTimeout(v.GetString("openai_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: OPENAI_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:        v.GetString("port"),
		Environment: v.GetString("env"),
		LogLevel:    strings.ToLower(v.GetString("log_level")),
		LogFormat:   strings.ToLower(v.GetString("log_format")),
		CORSOrigins: global.SplitCSV(v.GetString("cors_allowed_origins")),
		OpenAI: OpenAIConfig{
			BaseURL:     NormalizeBaseURL(v.GetString("openai_api_url")),
			APIKey:      strings.TrimSpace(v.GetString("openai_api_key")),
			Model:       v.GetString("openai_model"),
			Temperature: v.GetFloat64("openai_temperature"),
			MaxTokens:   v.GetInt64("openai_max_tokens"),
			Timeout:     timeout,
		},
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
		if cfg.IsProduction() {
			cfg.LogFormat = "json"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	for _, origin := range c.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must be * or start with http:// or https://", origin)
		}
	}
	if c.OpenAI.Model == "" {
		return errors.New("OPENAI_MODEL must not be empty")
	}
	if c.OpenAI.Timeout < time.Second {
		return fmt.Errorf("OPENAI_TIMEOUT must be at least 1s, got %s", c.OpenAI.Timeout)
	}
	if c.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", c.OpenAI.MaxTokens)
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2, got %v", c.OpenAI.Temperature)
	}
	return nil
}

// ParseTimeout reads a Go duration such as "45s" or "1m". A bare integer is
// taken as seconds.
func ParseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(raw)
}

// NormalizeBaseURL accepts either an API root or a full chat completions URL
// and returns the root with a trailing slash, which is what the client expects.
func NormalizeBaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		u = DefaultOpenAIURL
	}
	u = strings.TrimRight(u, "/")
	u = strings.TrimSuffix(u, "/chat/completions")
	return u + "/"
}
