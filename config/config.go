package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Collaborators
	Gemini GeminiConfig
	Speech SpeechConfig

	// Voice AI Chat specifics
	Catalog   CatalogConfig
	Scoring   ScoringConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the generative fallback collaborator.
// A missing API key aborts startup: the fallback path is not optional.
type GeminiConfig struct {
	APIKey          string
	Model           string
	FallbackTimeout time.Duration
}

// SpeechConfig configures the transcription collaborator. The
// credentials path is optional; without it the transcribe endpoint is
// disabled at startup.
type SpeechConfig struct {
	CredentialsPath string
}

type CatalogConfig struct {
	Path string
}

// ScoringConfig carries the fixed scoring constants. They are tuned
// against the current catalog value range, not derived from live data.
type ScoringConfig struct {
	MaxReward          float64
	HighThreshold      float64
	RecommendThreshold float64
	TopK               int
}

type SessionConfig struct {
	Size int
	TTL  time.Duration
}

type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.FallbackTimeout = viper.GetDuration("gemini.fallback_timeout")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Speech
	cfg.Speech.CredentialsPath = viper.GetString("speech.credentials_path")
	if creds := viper.GetString("speech_credentials"); creds != "" {
		cfg.Speech.CredentialsPath = creds
	}

	// Catalog
	cfg.Catalog.Path = viper.GetString("catalog.path")

	// Scoring
	cfg.Scoring.MaxReward = viper.GetFloat64("scoring.max_reward")
	cfg.Scoring.HighThreshold = viper.GetFloat64("scoring.high_threshold")
	cfg.Scoring.RecommendThreshold = viper.GetFloat64("scoring.recommend_threshold")
	cfg.Scoring.TopK = viper.GetInt("scoring.top_k")

	// Session
	cfg.Session.Size = viper.GetInt("session.size")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	// Rate limit
	cfg.RateLimit.PerSecond = viper.GetFloat64("rate_limit.per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Required credentials: the fallback collaborator must be reachable,
	// otherwise requests that miss every rule have no terminal response.
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured - set gemini.api_key in config.yaml or GEMINI_API_KEY")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.fallback_timeout", "15s")

	viper.SetDefault("catalog.path", "./config/catalog.yaml")

	viper.SetDefault("scoring.max_reward", 15)
	viper.SetDefault("scoring.high_threshold", 15)
	viper.SetDefault("scoring.recommend_threshold", 10)
	viper.SetDefault("scoring.top_k", 3)

	viper.SetDefault("session.size", 1024)
	viper.SetDefault("session.ttl", "30m")

	viper.SetDefault("rate_limit.per_second", 5)
	viper.SetDefault("rate_limit.burst", 10)
}
