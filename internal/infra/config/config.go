package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Storage  StorageConfig  `yaml:"storage"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Insight  InsightConfig  `yaml:"insight"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// AuthConfig controls token issuing.
type AuthConfig struct {
	Secret          string        `yaml:"secret"`
	TokenTTL        time.Duration `yaml:"tokenTtl"`
	RefreshTokenTTL time.Duration `yaml:"refreshTokenTtl"`
	GuestEmail      string        `yaml:"guestEmail"`
}

// StorageConfig selects where users and prediction history live.
type StorageConfig struct {
	Driver     string         `yaml:"driver"`
	SQLitePath string         `yaml:"sqlitePath"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// SnapshotConfig controls the per-user latest prediction store.
type SnapshotConfig struct {
	TTL   time.Duration `yaml:"ttl"`
	Redis RedisConfig   `yaml:"redis"`
}

// RedisConfig contains connection information for the snapshot store.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// ArchiveConfig holds S3-compatible storage settings for history exports.
type ArchiveConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Prefix    string `yaml:"prefix"`
}

// InsightConfig tunes the analytics views.
type InsightConfig struct {
	HistoryLimit     int     `yaml:"historyLimit"`
	MaxHistoryLimit  int     `yaml:"maxHistoryLimit"`
	VolatilityWindow int     `yaml:"volatilityWindow"`
	BaselineSalary   float64 `yaml:"baselineSalary"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	envString("HTTP_ADDRESS", &cfg.HTTP.Address)
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	envBool("HTTP_RATE_LIMIT_ENABLED", &cfg.HTTP.RateLimit.Enabled)
	envInt("HTTP_RATE_LIMIT_RPM", &cfg.HTTP.RateLimit.RequestsPerMinute)
	envInt("HTTP_RATE_LIMIT_BURST", &cfg.HTTP.RateLimit.Burst)

	envString("AUTH_SECRET", &cfg.Auth.Secret)
	envDuration("AUTH_TOKEN_TTL", &cfg.Auth.TokenTTL)
	envDuration("AUTH_REFRESH_TOKEN_TTL", &cfg.Auth.RefreshTokenTTL)
	envString("AUTH_GUEST_EMAIL", &cfg.Auth.GuestEmail)

	envString("STORAGE_DRIVER", &cfg.Storage.Driver)
	envString("STORAGE_SQLITE_PATH", &cfg.Storage.SQLitePath)
	envString("POSTGRES_DSN", &cfg.Storage.Postgres.DSN)
	envInt32("POSTGRES_MAX_CONNS", &cfg.Storage.Postgres.MaxConns)
	envInt32("POSTGRES_MIN_CONNS", &cfg.Storage.Postgres.MinConns)

	envDuration("SNAPSHOT_TTL", &cfg.Snapshot.TTL)
	envBool("REDIS_ENABLED", &cfg.Snapshot.Redis.Enabled)
	envString("REDIS_ADDR", &cfg.Snapshot.Redis.Addr)
	envString("REDIS_PREFIX", &cfg.Snapshot.Redis.Prefix)

	envBool("ARCHIVE_ENABLED", &cfg.Archive.Enabled)
	envString("ARCHIVE_ENDPOINT", &cfg.Archive.Endpoint)
	envString("ARCHIVE_ACCESS_KEY", &cfg.Archive.AccessKey)
	envString("ARCHIVE_SECRET_KEY", &cfg.Archive.SecretKey)
	envString("ARCHIVE_BUCKET", &cfg.Archive.Bucket)
	envString("ARCHIVE_REGION", &cfg.Archive.Region)
	envString("ARCHIVE_PREFIX", &cfg.Archive.Prefix)

	envInt("INSIGHT_HISTORY_LIMIT", &cfg.Insight.HistoryLimit)
	envInt("INSIGHT_MAX_HISTORY_LIMIT", &cfg.Insight.MaxHistoryLimit)
	envInt("INSIGHT_VOLATILITY_WINDOW", &cfg.Insight.VolatilityWindow)
	envFloat("INSIGHT_BASELINE_SALARY", &cfg.Insight.BaselineSalary)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func envInt32(key string, dst *int32) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			*dst = int32(parsed)
		}
	}
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
}

func envDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Auth: AuthConfig{
			Secret:          "dev-secret-change-me",
			TokenTTL:        time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			GuestEmail:      "guest@career-radar.local",
		},
		Storage: StorageConfig{
			Driver:     DriverSQLite,
			SQLitePath: "data/career-radar.db",
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Snapshot: SnapshotConfig{
			TTL: 7 * 24 * time.Hour,
			Redis: RedisConfig{
				Prefix: "career-radar",
			},
		},
		Archive: ArchiveConfig{
			Bucket: "career-radar",
			Region: "auto",
			Prefix: "exports",
		},
		Insight: InsightConfig{
			HistoryLimit:     10,
			MaxHistoryLimit:  100,
			VolatilityWindow: 20,
			BaselineSalary:   800000,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty")
	}
	if c.Auth.TokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return errors.New("auth token ttls must be positive")
	}
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			return errors.New("storage.sqlitePath cannot be empty for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.Postgres.DSN) == "" {
			return errors.New("storage.postgres.dsn cannot be empty for the postgres driver")
		}
	default:
		return fmt.Errorf("storage.driver %q is not one of memory, sqlite, postgres", c.Storage.Driver)
	}
	if c.Snapshot.TTL < 0 {
		return errors.New("snapshot.ttl cannot be negative")
	}
	if c.Snapshot.Redis.Enabled && strings.TrimSpace(c.Snapshot.Redis.Addr) == "" {
		return errors.New("snapshot.redis.addr cannot be empty when redis is enabled")
	}
	if c.Archive.Enabled {
		if strings.TrimSpace(c.Archive.Endpoint) == "" || strings.TrimSpace(c.Archive.Bucket) == "" {
			return errors.New("archive.endpoint and archive.bucket are required when the archive is enabled")
		}
	}
	if c.Insight.HistoryLimit <= 0 || c.Insight.MaxHistoryLimit < c.Insight.HistoryLimit {
		return errors.New("insight.historyLimit must be positive and not exceed insight.maxHistoryLimit")
	}
	if c.Insight.VolatilityWindow < 2 {
		return errors.New("insight.volatilityWindow must be at least 2")
	}
	if c.Insight.BaselineSalary <= 0 {
		return errors.New("insight.baselineSalary must be positive")
	}
	return nil
}
