package config

// Database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Seed file names, resolved inside SEED_DIR or the embedded configs
const (
	SeedFileClasses = "classes.json"
	SeedFileItems   = "items.json"
)

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
