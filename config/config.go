package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"fave/auth"
)

// Store drivers accepted in configuration.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config defines server configuration. Defaults are overridden first by the
// optional YAML file named in FAVE_CONFIG_PATH, then by environment
// variables.
type Config struct {
	Addr    string              `yaml:"addr"`
	Store   StoreConfig         `yaml:"store"`
	Auth    auth.ProviderConfig `yaml:"auth"`
	Session SessionConfig       `yaml:"session"`
}

type StoreConfig struct {
	// Driver is one of memory, sqlite, postgres.
	Driver string `yaml:"driver"`

	// Path is the sqlite database file.
	Path string `yaml:"path"`

	// DatabaseURL is the postgres connection string.
	DatabaseURL string `yaml:"database_url"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// Load reads configuration. A missing .env file is not an error.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		Addr: ":8080",
		Store: StoreConfig{
			Driver: StoreSQLite,
			Path:   "fave.db",
		},
		Auth: auth.ProviderConfig{
			Kind: auth.ProviderGoogle,
		},
		Session: SessionConfig{
			TTL: auth.DefaultSessionTTL,
		},
	}

	if path := os.Getenv("FAVE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if addr := os.Getenv("FAVE_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if driver := os.Getenv("FAVE_STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if path := os.Getenv("FAVE_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Store.DatabaseURL = url
	}
	if kind := os.Getenv("FAVE_AUTH_PROVIDER"); kind != "" {
		cfg.Auth.Kind = kind
	}
	if audience := os.Getenv("FAVE_GOOGLE_AUDIENCE"); audience != "" {
		cfg.Auth.GoogleAudience = audience
	}
	if ttlStr := os.Getenv("FAVE_SESSION_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FAVE_SESSION_TTL: %w", err)
		}
		cfg.Session.TTL = ttl
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StoreSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("sqlite store requires a path")
		}
	case StorePostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("postgres store requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
