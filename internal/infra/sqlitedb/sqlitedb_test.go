package sqlitedb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "radar.db")
	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	require.Equal(t, 1, one)
}

func TestTimeRoundTrip(t *testing.T) {
	ts := time.Date(2026, 10, 14, 9, 30, 0, 123, time.FixedZone("IST", 5*3600+1800))
	got, err := ParseTime(FormatTime(ts))
	require.NoError(t, err)
	require.True(t, ts.Equal(got))
	require.Equal(t, time.UTC, got.Location())

	_, err = ParseTime("yesterday")
	require.Error(t, err)
}

func TestParseTime_LegacyAndEmpty(t *testing.T) {
	got, err := ParseTime("2026-10-14 09:20:20")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 10, 14, 9, 20, 20, 0, time.UTC), got)

	got, err = ParseTime("")
	require.NoError(t, err)
	require.True(t, got.IsZero())
}
