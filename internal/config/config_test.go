package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, ":8000", cfg.Addr())
	assert.False(t, cfg.HasStore())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "barbershop")
	t.Setenv("PORT", "9090")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.HasStore())
}

func TestHasStoreNeedsBothSettings(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "")

	assert.False(t, Load().HasStore())
}
