package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
)

// Catalog sources
const (
	CatalogSourceCSV      = "csv"
	CatalogSourcePostgres = "postgres"
	CatalogSourceDrive    = "drive"
)

// Config holds the service configuration read from the environment
type Config struct {
	Env      string `env:"ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"csv"`
	CatalogPath   string `env:"CATALOG_PATH" envDefault:"fits.csv"`

	// Postgres catalog source
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	// Google Drive catalog source
	DriveCatalogFileID string `env:"DRIVE_CATALOG_FILE_ID"`
	CredentialsPath    string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	MaxAttempts int `env:"OUTFIT_MAX_ATTEMPTS" envDefault:"40"`
}

// Load parses environment variables into Config and validates them
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.CatalogSource = strings.ToLower(strings.TrimSpace(cfg.CatalogSource))
	// PORT from some hosts doesn't include the colon, others do
	cfg.Port = strings.TrimPrefix(cfg.Port, ":")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected catalog source is fully configured
func (c Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("OUTFIT_MAX_ATTEMPTS must be greater than 0, got %d", c.MaxAttempts)
	}

	switch c.CatalogSource {
	case CatalogSourceCSV:
		if c.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH is required for the csv catalog source")
		}
	case CatalogSourcePostgres:
		if c.DatabaseURL == "" && (c.DBHost == "" || c.DBUser == "" || c.DBName == "") {
			return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
		}
	case CatalogSourceDrive:
		if c.DriveCatalogFileID == "" {
			return fmt.Errorf("DRIVE_CATALOG_FILE_ID is required for the drive catalog source")
		}
		if c.CredentialsPath == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q (expected csv, postgres or drive)", c.CatalogSource)
	}
	return nil
}

// IsProduction reports whether the service runs in production
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// PostgresDSN returns DATABASE_URL or builds a DSN from the individual variables
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
