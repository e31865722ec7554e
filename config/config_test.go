package config_test

import (
	"testing"
	"time"

	"github.com/hanksha/boardgame-club-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://club@localhost:5432/club")

		cfg, err := config.Parse()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, ":9090", cfg.Addr())
		assert.Equal(t, config.StoragePostgres, cfg.StorageType)
		assert.Equal(t, "X-Auth-User", cfg.AuthUserHeader)
		assert.Equal(t, time.Minute, cfg.UserCacheTTL)
		assert.False(t, cfg.BlockOverdueBorrowers)

		loc, err := cfg.Location()
		require.NoError(t, err)
		assert.Equal(t, time.UTC, loc)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("STORAGE_TYPE", "memory")
		t.Setenv("AUTH_USER_HEADER", "X-Forwarded-User")
		t.Setenv("USER_CACHE_TTL", "30s")
		t.Setenv("CLUB_TIMEZONE", "Europe/Madrid")
		t.Setenv("BLOCK_OVERDUE_BORROWERS", "true")

		cfg, err := config.Parse()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, config.StorageMemory, cfg.StorageType)
		assert.Equal(t, "X-Forwarded-User", cfg.AuthUserHeader)
		assert.Equal(t, 30*time.Second, cfg.UserCacheTTL)
		assert.Equal(t, "Europe/Madrid", cfg.ClubTimezone)
		assert.True(t, cfg.BlockOverdueBorrowers)
	})

	t.Run("postgres without database url", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := config.Parse()

		require.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("unknown storage", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "redis")

		_, err := config.Parse()

		require.ErrorContains(t, err, "STORAGE_TYPE")
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")

		_, err := config.Parse()

		require.ErrorContains(t, err, "parse env:")
	})

	t.Run("unknown time zone", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "memory")
		t.Setenv("CLUB_TIMEZONE", "Mars/Olympus")

		_, err := config.Parse()

		require.ErrorContains(t, err, "CLUB_TIMEZONE")
	})
}
