package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, DriverSQLite, cfg.Storage.Driver)
	require.Equal(t, 7*24*time.Hour, cfg.Snapshot.TTL)
	require.Equal(t, 10, cfg.Insight.HistoryLimit)
	require.False(t, cfg.Archive.Enabled)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
  allowedOrigins: ["https://radar.example.com"]
storage:
  driver: memory
insight:
  baselineSalary: 1200000
  volatilityWindow: 30
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("SNAPSHOT_TTL", "30m")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("POSTGRES_MAX_CONNS", "12")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, DriverMemory, cfg.Storage.Driver)
	require.Equal(t, 1200000.0, cfg.Insight.BaselineSalary)
	require.Equal(t, 30, cfg.Insight.VolatilityWindow)
	require.Equal(t, 30*time.Minute, cfg.Snapshot.TTL)
	require.True(t, cfg.Snapshot.Redis.Enabled)
	require.Equal(t, int32(12), cfg.Storage.Postgres.MaxConns)
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not a map"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "empty address", mutate: func(c *Config) { c.HTTP.Address = "" }, errMsg: "http.address"},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mysql" }, errMsg: "storage.driver"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Storage.Driver = DriverPostgres }, errMsg: "storage.postgres.dsn"},
		{name: "redis without addr", mutate: func(c *Config) { c.Snapshot.Redis.Enabled = true }, errMsg: "snapshot.redis.addr"},
		{name: "archive without endpoint", mutate: func(c *Config) { c.Archive.Enabled = true }, errMsg: "archive.endpoint"},
		{name: "zero baseline salary", mutate: func(c *Config) { c.Insight.BaselineSalary = 0 }, errMsg: "baselineSalary"},
		{name: "tiny volatility window", mutate: func(c *Config) { c.Insight.VolatilityWindow = 1 }, errMsg: "volatilityWindow"},
		{name: "empty secret", mutate: func(c *Config) { c.Auth.Secret = " " }, errMsg: "auth.secret"},
		{name: "bad rate limit", mutate: func(c *Config) { c.HTTP.RateLimit.Burst = 0 }, errMsg: "burst"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errMsg)
		})
	}

	require.NoError(t, defaultConfig().Validate())
}
