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

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 3, cfg.FetchRetries)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableSwagger)
	assert.Equal(t, 20, cfg.DefaultTopN)
	assert.False(t, cfg.AllowLocalSources)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DOMINANCE_ADDR", ":9090")
	t.Setenv("DOMINANCE_FETCH_TIMEOUT", "2s")
	t.Setenv("DOMINANCE_TOP_N", "5")
	t.Setenv("DOMINANCE_ALLOW_LOCAL_SOURCES", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 5, cfg.DefaultTopN)
	assert.True(t, cfg.AllowLocalSources)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("DOMINANCE_FETCH_RETRIES", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsMalformed(t *testing.T) {
	t.Setenv("DOMINANCE_TOP_N", "lots")
	_, err := Load()
	assert.Error(t, err)
}
