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

	// Generation
	Gemini     GeminiConfig
	Playground PlaygroundConfig
	Chat       ChatConfig

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

type GeminiConfig struct {
	APIKey       string
	DefaultModel string
}

type PlaygroundConfig struct {
	History HistoryConfig
}

// HistoryConfig bounds the per-browser run history.
type HistoryConfig struct {
	MaxStored    int
	DisplayLimit int
	SessionTTL   time.Duration
	MaxSessions  int
}

type ChatConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

// RateLimitConfig applies to the generation routes. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

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

	// Gemini. GEMINI_API_KEY maps onto gemini.api_key through the key replacer.
	cfg.Gemini.APIKey = strings.TrimSpace(viper.GetString("gemini.api_key"))
	cfg.Gemini.DefaultModel = viper.GetString("gemini.default_model")
	if cfg.Gemini.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.Playground.History.MaxStored = viper.GetInt("playground.history.max_stored")
	cfg.Playground.History.DisplayLimit = viper.GetInt("playground.history.display_limit")
	cfg.Playground.History.SessionTTL = viper.GetDuration("playground.history.session_ttl")
	cfg.Playground.History.MaxSessions = viper.GetInt("playground.history.max_sessions")

	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")
	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Playground.History.MaxStored <= 0 {
		return fmt.Errorf("playground.history.max_stored must be positive, got %d", cfg.Playground.History.MaxStored)
	}
	if cfg.Playground.History.DisplayLimit <= 0 {
		return fmt.Errorf("playground.history.display_limit must be positive, got %d", cfg.Playground.History.DisplayLimit)
	}
	if cfg.Chat.MaxSessions <= 0 {
		return fmt.Errorf("chat.max_sessions must be positive, got %d", cfg.Chat.MaxSessions)
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative, got %d", cfg.RateLimit.RequestsPerMin)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Gemini
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.default_model", "gemini-2.5-flash")

	// Playground history
	viper.SetDefault("playground.history.max_stored", 50)
	viper.SetDefault("playground.history.display_limit", 5)
	viper.SetDefault("playground.history.session_ttl", "24h")
	viper.SetDefault("playground.history.max_sessions", 1000)

	// Chat
	viper.SetDefault("chat.session_ttl", "1h")
	viper.SetDefault("chat.max_sessions", 1000)

	viper.SetDefault("rate_limit.requests_per_min", 30)
}
