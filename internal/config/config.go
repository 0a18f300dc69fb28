package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the global configuration, matching config/config.yaml.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	PokeAPI  PokeAPIConfig  `mapstructure:"pokeapi"`
	Sync     SyncConfig     `mapstructure:"sync"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int    `mapstructure:"port"` // listen port
	Mode string `mapstructure:"mode"` // gin mode: debug/release/test
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// PokeAPIConfig holds settings for the external Pokémon data source.
type PokeAPIConfig struct {
	BaseURL    string `mapstructure:"base_url"`    // e.g. https://pokeapi.co/api/v2
	Timeout    int    `mapstructure:"timeout"`     // request timeout in seconds
	RetryCount int    `mapstructure:"retry_count"` // retries per fetch
	Proxy      string `mapstructure:"proxy"`       // optional proxy address
	TotalCount int    `mapstructure:"total_count"` // upper bound for random lookups
}

// SyncConfig drives the optional catalog refresh job.
type SyncConfig struct {
	Cron      string `mapstructure:"cron"`       // cron expression; empty disables the job
	BatchSize int    `mapstructure:"batch_size"` // catalog entries refreshed per run
}

// LoadConfig reads config/config.yaml, with sensitive values overridable
// from .env / environment variables (env wins over yaml).
func LoadConfig() (*Config, error) {
	// .env is optional and never committed
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	viper.SetTypeByDefaultValue(true)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	overrideFromEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// overrideFromEnv applies environment overrides for deploy-specific values.
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("POKEAPI_BASE_URL"); v != "" {
		cfg.PokeAPI.BaseURL = v
	}
	if v := os.Getenv("POKEAPI_PROXY"); v != "" {
		cfg.PokeAPI.Proxy = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "debug"
	}
	if cfg.PokeAPI.BaseURL == "" {
		cfg.PokeAPI.BaseURL = "https://pokeapi.co/api/v2"
	}
	if cfg.PokeAPI.Timeout <= 0 {
		cfg.PokeAPI.Timeout = 10
	}
	if cfg.PokeAPI.TotalCount <= 0 {
		cfg.PokeAPI.TotalCount = 898
	}
	if cfg.Sync.BatchSize <= 0 {
		cfg.Sync.BatchSize = 20
	}
}
