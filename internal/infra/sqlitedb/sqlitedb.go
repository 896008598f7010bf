// Package sqlitedb opens the CGO-free SQLite database used by the sqlite
// storage driver.
package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// TimeLayout is how timestamps are stored in TEXT columns.
const TimeLayout = time.RFC3339Nano

// LegacyTimeLayout is what SQLite's datetime('now') writes.
const LegacyTimeLayout = "2006-01-02 15:04:05"

// Open creates the parent directory if needed and opens path with WAL and a
// busy timeout. A single connection serialises writers.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite %s: %w", pragma, err)
		}
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// FormatTime renders t for storage.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a stored timestamp in either TimeLayout or
// LegacyTimeLayout (UTC). An empty value yields the zero time.
func ParseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(TimeLayout, raw)
	if err == nil {
		return t.UTC(), nil
	}
	if legacy, legacyErr := time.ParseInLocation(LegacyTimeLayout, raw, time.UTC); legacyErr == nil {
		return legacy, nil
	}
	return time.Time{}, fmt.Errorf("parse stored time %q: %w", raw, err)
}
