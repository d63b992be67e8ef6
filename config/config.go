package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Favorites FavoritesConfig `yaml:"favorites"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// CatalogConfig controls how the property catalog is seeded.
type CatalogConfig struct {
	SeedPath  string        `yaml:"seed_path"` // empty means the embedded dataset
	LatencyMS int           `yaml:"latency_ms"`
	Latency   time.Duration `yaml:"-"` // Ignored by YAML parser
}

// FavoritesConfig selects and configures the favorites persistence slot.
type FavoritesConfig struct {
	Backend   string        `yaml:"backend"` // "file" or "database"
	SlotKey   string        `yaml:"slot_key"`
	FilePath  string        `yaml:"file_path"`
	Database  SlotDBConfig  `yaml:"database"`
	LatencyMS int           `yaml:"latency_ms"`
	Latency   time.Duration `yaml:"-"`
}

// SlotDBConfig holds the database connection configuration for the slot backend.
type SlotDBConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}

	if cfg.Favorites.Backend == "" {
		cfg.Favorites.Backend = "file"
	}
	if cfg.Favorites.SlotKey == "" {
		cfg.Favorites.SlotKey = "savedProperties"
	}
	if cfg.Favorites.FilePath == "" {
		cfg.Favorites.FilePath = "./data/saved_properties.json"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	cfg.Catalog.Latency = time.Duration(cfg.Catalog.LatencyMS) * time.Millisecond
	cfg.Favorites.Latency = time.Duration(cfg.Favorites.LatencyMS) * time.Millisecond

	return &cfg, nil
}
