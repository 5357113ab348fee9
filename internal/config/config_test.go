package config

import (
	"testing"
	"time"

	infraconfig "frankfurter/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "FRANKFURTER_HOST", "FRANKFURTER_USER_AGENT", "QUIET_MODE", "REQUEST_TIMEOUT_MS", "CATALOG_STORE", "CATALOG_TTL_MS", "PROVIDER"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	require.Equal(t, "api.frankfurter.app", cfg.Host)
	require.True(t, cfg.Quiet)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "none", cfg.CatalogStore)
	require.Equal(t, "frankfurter", cfg.Provider)
	require.Equal(t, infraconfig.DefaultHTTPPort, cfg.Port)
	require.Equal(t, infraconfig.DefaultUserAgent, cfg.UserAgent)
	require.Equal(t, infraconfig.DefaultCatalogTTL, cfg.CatalogTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FRANKFURTER_HOST", "fx.internal")
	t.Setenv("QUIET_MODE", "false")
	t.Setenv("REQUEST_TIMEOUT_MS", "250")
	t.Setenv("REDIS_DB", "nope")
	t.Setenv("CATALOG_TTL_MS", "60000")
	cfg := Load()
	require.Equal(t, "fx.internal", cfg.Host)
	require.False(t, cfg.Quiet)
	require.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, time.Minute, cfg.CatalogTTL)
}
