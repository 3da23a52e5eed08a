package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("SERVER_ADDR", ":9999")
	os.Setenv("DB_DRIVER", "sqlite3")
	defer func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("SERVER_ADDR")
		os.Unsetenv("DB_DRIVER")
	}()

	cfg := Load()
	require.NotNil(t, cfg)

	// Environment overrides win over defaults.
	assert.Equal(t, ":9999", cfg.ServerAddr)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "test-secret", cfg.JWTSecret)

	// Untouched keys keep their defaults.
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)

	assert.Equal(t, cfg, Get())
}
