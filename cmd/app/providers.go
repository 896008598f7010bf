package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/career-radar/internal/domain/assistant"
	"github.com/yanqian/career-radar/internal/domain/auth"
	"github.com/yanqian/career-radar/internal/domain/history"
	"github.com/yanqian/career-radar/internal/domain/insight"
	"github.com/yanqian/career-radar/internal/infra/archive"
	"github.com/yanqian/career-radar/internal/infra/config"
	"github.com/yanqian/career-radar/internal/infra/historyrepo"
	"github.com/yanqian/career-radar/internal/infra/snapshotstore"
	"github.com/yanqian/career-radar/internal/infra/sqlitedb"
	"github.com/yanqian/career-radar/internal/infra/userrepo"
)

// stores groups the repositories that share one storage backend.
type stores struct {
	users   auth.Repository
	history history.Repository
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.Secret,
		TokenTTL:        cfg.Auth.TokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		GuestEmail:      cfg.Auth.GuestEmail,
	}
}

func provideInsightConfig(cfg *config.Config) insight.Config {
	return insight.Config{
		HistoryLimit:     cfg.Insight.HistoryLimit,
		MaxHistoryLimit:  cfg.Insight.MaxHistoryLimit,
		VolatilityWindow: cfg.Insight.VolatilityWindow,
		BaselineSalary:   cfg.Insight.BaselineSalary,
		SnapshotTTL:      cfg.Snapshot.TTL,
	}
}

func provideAssistantConfig(cfg *config.Config) assistant.Config {
	return assistant.Config{
		BaselineSalary:   cfg.Insight.BaselineSalary,
		VolatilityWindow: cfg.Insight.VolatilityWindow,
	}
}

// provideStores opens the configured backend. Postgres failures fall back to
// memory so a missing database never blocks local development; a broken
// SQLite file is a hard error because the operator asked for it explicitly.
func provideStores(cfg *config.Config, logger *slog.Logger) (stores, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlitedb.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return stores{}, nil, err
		}
		st, err := sqliteStores(ctx, db)
		if err != nil {
			_ = db.Close()
			return stores{}, nil, err
		}
		logger.Info("sqlite storage enabled", "path", cfg.Storage.SQLitePath)
		return st, func() { _ = db.Close() }, nil
	case config.DriverPostgres:
		pool, err := openPostgres(ctx, cfg.Storage.Postgres)
		if err != nil {
			logger.Error("postgres unavailable, using memory storage", "error", err)
			return memoryStores(), func() {}, nil
		}
		st, err := postgresStores(ctx, pool)
		if err != nil {
			pool.Close()
			logger.Error("postgres schema setup failed, using memory storage", "error", err)
			return memoryStores(), func() {}, nil
		}
		logger.Info("postgres storage enabled")
		return st, pool.Close, nil
	default:
		logger.Info("memory storage enabled")
		return memoryStores(), func() {}, nil
	}
}

func memoryStores() stores {
	return stores{users: userrepo.NewMemoryRepository(), history: historyrepo.NewMemoryRepository()}
}

func sqliteStores(ctx context.Context, db *sql.DB) (stores, error) {
	users := userrepo.NewSQLiteRepository(db)
	if err := users.EnsureSchema(ctx); err != nil {
		return stores{}, fmt.Errorf("ensure users schema: %w", err)
	}
	predictions := historyrepo.NewSQLiteRepository(db)
	if err := predictions.EnsureSchema(ctx); err != nil {
		return stores{}, fmt.Errorf("ensure predictions schema: %w", err)
	}
	return stores{users: users, history: predictions}, nil
}

func postgresStores(ctx context.Context, pool *pgxpool.Pool) (stores, error) {
	users := userrepo.NewPostgresRepository(pool)
	if err := users.EnsureSchema(ctx); err != nil {
		return stores{}, fmt.Errorf("ensure users schema: %w", err)
	}
	predictions := historyrepo.NewPostgresRepository(pool)
	if err := predictions.EnsureSchema(ctx); err != nil {
		return stores{}, fmt.Errorf("ensure predictions schema: %w", err)
	}
	return stores{users: users, history: predictions}, nil
}

func openPostgres(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn not set")
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

func provideUserRepository(st stores) auth.Repository {
	return st.users
}

func provideHistoryRepository(st stores) history.Repository {
	return st.history
}

func provideSnapshotStore(cfg *config.Config, logger *slog.Logger) (insight.SnapshotStore, func()) {
	if !cfg.Snapshot.Redis.Enabled {
		return snapshotstore.NewMemoryStore(), func() {}
	}
	opt, err := buildValkeyOptions(cfg.Snapshot.Redis.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return snapshotstore.NewMemoryStore(), func() {}
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return snapshotstore.NewMemoryStore(), func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return snapshotstore.NewMemoryStore(), func() {}
	}
	logger.Info("valkey snapshot store enabled", "addr", cfg.Snapshot.Redis.Addr)
	return snapshotstore.NewValkeyStore(client, cfg.Snapshot.Redis.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

// provideArchive returns a nil Archive when exports are disabled; the insight
// service reports archive_disabled in that case.
func provideArchive(cfg *config.Config, logger *slog.Logger) (insight.Archive, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}
	store, err := archive.NewS3Archive(archive.Options{
		Endpoint:  cfg.Archive.Endpoint,
		AccessKey: cfg.Archive.AccessKey,
		SecretKey: cfg.Archive.SecretKey,
		Bucket:    cfg.Archive.Bucket,
		Region:    cfg.Archive.Region,
		Prefix:    cfg.Archive.Prefix,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init archive: %w", err)
	}
	return store, nil
}
