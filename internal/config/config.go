package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	APIKey      string `env:"API_KEY"` // API key for authentication
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"sob-companion"`
	Version     string `env:"VERSION" envDefault:"dev"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/sob.db"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"sob"`

	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	// SeedDir overrides the embedded seed files when set
	SeedDir          string        `env:"SEED_DIR"`
	CatalogCacheSize int           `env:"CATALOG_CACHE_SIZE" envDefault:"256"`
	CatalogCacheTTL  time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`

	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	EventMaxRetries int           `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	DeadLetterPath  string        `env:"DEAD_LETTER_PATH" envDefault:"logs/deadletter.jsonl"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := LoadStorage()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// LoadStorage loads the configuration without requiring the API key.
// Operator tooling that never serves HTTP uses it.
func LoadStorage() (*Config, error) {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, namedParseError(err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: expected %s or %s", cfg.DBDriver, DriverSQLite, DriverPostgres)
	}

	if cfg.CatalogCacheSize < 1 {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_SIZE %d: must be at least 1", cfg.CatalogCacheSize)
	}

	return cfg, nil
}

// namedParseError reports a parse failure by the env var the operator set
// rather than the Go field it landed in.
func namedParseError(err error) error {
	var perr env.ParseError
	if !errors.As(err, &perr) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	key := perr.Name
	if field, ok := reflect.TypeOf(Config{}).FieldByName(perr.Name); ok {
		if tag, _, _ := strings.Cut(field.Tag.Get("env"), ","); tag != "" {
			key = tag
		}
	}
	return fmt.Errorf("invalid %s: %w", key, perr.Err)
}

// IsPostgres reports whether the Postgres driver is configured
func (c *Config) IsPostgres() bool {
	return c.DBDriver == DriverPostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
