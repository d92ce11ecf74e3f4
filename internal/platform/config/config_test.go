package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:8000", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "fx", cfg.Cache.Namespace)
	assert.Equal(t, 16, cfg.Cache.RefreshHour)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, `
server:
  addr: ":9090"
  allowed_origins: ["http://localhost:5173"]
upstream:
  base_url: "http://fx-api:8000"
  timeout: 3s
redis:
  host: cache
  port: "6380"
cache:
  refresh_hour: 7
  location: UTC
logging:
  level: debug
  format: text
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://fx-api:8000", cfg.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, 7, cfg.Cache.RefreshHour)
	assert.Equal(t, "fx", cfg.Cache.Namespace)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, time.UTC, cfg.CacheLocation())
}

func TestLoad_EnvOverrides(t *testing.T) {
	p := writeFile(t, "upstream:\n  base_url: http://from-file\n")
	t.Setenv("FX_API_BASE_URL", "http://from-env")
	t.Setenv("FX_API_TIMEOUT", "2s")
	t.Setenv("FX_API_RATE_LIMIT", "30")
	t.Setenv("ALLOWED_ORIGINS", "http://a, http://b ,")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_REFRESH_HOUR", "9")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env", cfg.Upstream.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 30, cfg.Upstream.RateLimit)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "redis", cfg.Redis.Host)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 9, cfg.Cache.RefreshHour)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "invalid yaml", yaml: "server: [unterminated"},
		{name: "bad timeout env", env: map[string]string{"FX_API_TIMEOUT": "soon"}},
		{name: "bad redis db", env: map[string]string{"REDIS_DB": "x"}},
		{name: "refresh hour out of range", yaml: "cache:\n  refresh_hour: 24\n"},
		{name: "zero timeout", yaml: "upstream:\n  timeout: 0s\n"},
		{name: "negative rate limit", yaml: "upstream:\n  rate_limit: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeFile(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv("FXDASH_CONFIG", "")
	assert.Equal(t, DefaultPath, Path())

	t.Setenv("FXDASH_CONFIG", "/etc/fx.yaml")
	assert.Equal(t, "/etc/fx.yaml", Path())
}

func TestCacheLocation_Fallback(t *testing.T) {
	cfg := Default()
	cfg.Cache.Location = "Nowhere/Special"
	assert.Equal(t, time.UTC, cfg.CacheLocation())
}
