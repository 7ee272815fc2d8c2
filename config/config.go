package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration shared by the client and the development API.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Logging
	Logger LoggerConfig

	// Remote collection resource
	API APIConfig

	// Development API server
	HTTPServer HTTPServerConfig
	RateLimit  RateLimitConfig

	// Terminal client
	Client ClientConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type APIConfig struct {
	BaseURL           string
	Timeout           time.Duration // 0 disables the per-request timeout
	ValidateResponses bool
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type RateLimitConfig struct {
	Enabled    bool
	PerMin     int
	MaxClients int
	TTL        time.Duration
}

type ClientConfig struct {
	LogFile string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/todo-sync/.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/todo-sync/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.API.BaseURL = strings.TrimRight(v.GetString("api.base_url"), "/")
	cfg.API.Timeout = v.GetDuration("api.timeout")
	cfg.API.ValidateResponses = v.GetBool("api.validate_responses")
	// TODO_API_URL wins over api.base_url.
	if apiURL := v.GetString("todo_api_url"); apiURL != "" {
		cfg.API.BaseURL = strings.TrimRight(apiURL, "/")
	}

	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")
	cfg.RateLimit.TTL = v.GetDuration("rate_limit.ttl")

	cfg.Client.LogFile = v.GetString("client.log_file")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("api.validate_responses", true)

	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.per_min", 600)
	v.SetDefault("rate_limit.max_clients", 1000)
	v.SetDefault("rate_limit.ttl", "5m")

	v.SetDefault("client.log_file", "todo-client.log")
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(cfg.API.BaseURL, "http://") && !strings.HasPrefix(cfg.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when rate limiting is enabled")
	}
	return nil
}
