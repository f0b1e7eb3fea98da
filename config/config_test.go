package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "postgresql://root@localhost:26257/company?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, 6543, cfg.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://app@db:26257/company")
	t.Setenv("PORT", "8080")

	cfg := Load()

	assert.Equal(t, "postgresql://app@db:26257/company", cfg.DatabaseURL)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadIgnoresBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := Load()

	assert.Equal(t, 6543, cfg.Port)
}
