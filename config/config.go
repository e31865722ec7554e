package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type StorageType string

const (
	StoragePostgres StorageType = "postgres"
	StorageMemory   StorageType = "memory"
)

type Config struct {
	Port                  int           `env:"PORT" envDefault:"9090"`
	DatabaseURL           string        `env:"DATABASE_URL"`
	StorageType           StorageType   `env:"STORAGE_TYPE" envDefault:"postgres"`
	AuthUserHeader        string        `env:"AUTH_USER_HEADER" envDefault:"X-Auth-User"`
	UserCacheTTL          time.Duration `env:"USER_CACHE_TTL" envDefault:"1m"`
	ClubTimezone          string        `env:"CLUB_TIMEZONE" envDefault:"UTC"`
	BlockOverdueBorrowers bool          `env:"BLOCK_OVERDUE_BORROWERS" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Default().With("component", "config").Debug("no .env file loaded", "err", err)
	}

	return Parse()
}

// Parse builds a Config from the process environment and validates it.
func Parse() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Location is the club's time zone, used to decide what "today" is.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ClubTimezone)

	if err != nil {
		return nil, fmt.Errorf("invalid CLUB_TIMEZONE '%v': %w", c.ClubTimezone, err)
	}

	return loc, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) validate() error {
	switch c.StorageType {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for %v storage", c.StorageType)
		}
	default:
		return fmt.Errorf("unknown STORAGE_TYPE '%v'", c.StorageType)
	}

	if c.AuthUserHeader == "" {
		return fmt.Errorf("AUTH_USER_HEADER cannot be empty")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}
