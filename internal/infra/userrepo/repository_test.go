package userrepo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/career-radar/internal/domain/auth"
	"github.com/yanqian/career-radar/internal/infra/sqlitedb"
)

func exerciseRepository(t *testing.T, repo auth.Repository) {
	t.Helper()
	ctx := context.Background()

	user, err := repo.Create(ctx, "a@b.com", "hash")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.False(t, user.CreatedAt.IsZero())

	_, err = repo.Create(ctx, "a@b.com", "other")
	require.True(t, errors.Is(err, auth.ErrEmailExists))

	byEmail, ok, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, "hash", byEmail.PasswordHash)

	byID, ok, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a@b.com", byID.Email)

	_, ok, err = repo.GetByEmail(ctx, "missing@b.com")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = repo.GetByID(ctx, user.ID+100)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryRepository(t *testing.T) {
	exerciseRepository(t, NewMemoryRepository())
}

func TestSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))
	exerciseRepository(t, repo)
}
