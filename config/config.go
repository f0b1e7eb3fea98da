package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// defaultDatabaseURL targets a local CockroachDB instance; any
	// Postgres-wire DSN works.
	defaultDatabaseURL = "postgresql://root@localhost:26257/company?sslmode=disable"
	defaultPort        = 6543
)

type Config struct {
	DatabaseURL string
	Port        int
}

// Load reads configuration from a .env file (if present) and the
// environment. DATABASE_URL and PORT override the defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL: defaultDatabaseURL,
		Port:        defaultPort,
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	return cfg
}
