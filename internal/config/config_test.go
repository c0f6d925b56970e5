package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "sync", cfg.StatsReplaceMode)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, int64(200<<20), cfg.MaxUploadBytes())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", " SQLite ")
	t.Setenv("STATS_REPLACE_MODE", "Recreate")
	t.Setenv("CORS_ORIGINS", "https://a.uz,https://b.uz")
	t.Setenv("LANDING_CACHE_TTL", "30s")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "recreate", cfg.StatsReplaceMode)
	assert.Equal(t, []string{"https://a.uz", "https://b.uz"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.LandingCacheTTL)
	assert.True(t, cfg.IsProduction())
}

func TestLoadRejectsUnknownStatsMode(t *testing.T) {
	t.Setenv("STATS_REPLACE_MODE", "merge")
	_, err := Load()
	assert.Error(t, err)
}
