package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// SeedFiles must all be present in a SEED_DIR override
var SeedFiles = []string{"classes.json", "items.json"}

// RequiredEnvVars must be set for every driver, besides ENV_SCHEMA_VERSION
var RequiredEnvVars = []string{
	"API_KEY",
}

// PostgresEnvVars must be set when DB_DRIVER is postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks the raw environment before Load parses it. All problems
// are reported together.
func ValidateEnv() error {
	var errs []error

	switch v := os.Getenv("ENV_SCHEMA_VERSION"); {
	case v == "":
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s)", ExpectedEnvSchemaVersion))
	case v != ExpectedEnvSchemaVersion:
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s; compare your .env with .env.example", ExpectedEnvSchemaVersion, v))
	}

	required := RequiredEnvVars
	switch driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER"))); driver {
	case "", DriverSQLite:
	case DriverPostgres:
		required = append(append([]string{}, RequiredEnvVars...), PostgresEnvVars...)
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not supported (use %s or %s)", driver, DriverSQLite, DriverPostgres))
	}

	var missing []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}

	return errors.Join(errs...)
}

// ValidateEnvWithWarnings runs ValidateEnv, then flags settings that work but
// are probably mistakes: example secrets and an incomplete seed override.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD is still the example value; set a real password")
	}
	if os.Getenv("API_KEY") == ExampleAPIKey {
		warnings = append(warnings, "API_KEY is still the example value; generate one with: openssl rand -hex 32")
	}
	warnings = append(warnings, seedDirWarnings(os.Getenv("SEED_DIR"))...)

	return warnings, nil
}

func seedDirWarnings(dir string) []string {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return []string{fmt.Sprintf("SEED_DIR %s is not a directory; the server will refuse to start", dir)}
	}
	var warnings []string
	for _, name := range SeedFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			warnings = append(warnings, fmt.Sprintf("SEED_DIR is missing %s", name))
		}
	}
	return warnings
}
