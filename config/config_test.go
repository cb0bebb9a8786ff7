package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := FromEnv()
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, 24, cfg.JWTExpireHours)
		assert.Equal(t, 10, cfg.DefaultPageSize)
		assert.Equal(t, 100, cfg.MaxPageSize)
		assert.Equal(t, "0 4 * * *", cfg.ReconcileSchedule)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("MAX_PAGE_SIZE", "50")
		t.Setenv("JWT_EXPIRE_HOURS", "2")

		cfg := FromEnv()
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "sqlite", cfg.DBDriver)
		assert.Equal(t, 50, cfg.MaxPageSize)
		assert.Equal(t, 2, cfg.JWTExpireHours)
	})

	t.Run("BadIntegerFallsBack", func(t *testing.T) {
		t.Setenv("SALT_ROUND", "many")
		assert.Equal(t, 10, FromEnv().SaltRound)
	})

	t.Run("PageSizeSanity", func(t *testing.T) {
		t.Setenv("DEFAULT_PAGE_SIZE", "0")
		t.Setenv("MAX_PAGE_SIZE", "5")

		cfg := FromEnv()
		assert.Equal(t, 10, cfg.DefaultPageSize)
		assert.Equal(t, 10, cfg.MaxPageSize)
	})
}
