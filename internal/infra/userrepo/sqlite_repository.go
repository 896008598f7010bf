package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/yanqian/career-radar/internal/domain/auth"
	"github.com/yanqian/career-radar/internal/infra/sqlitedb"
	"github.com/yanqian/career-radar/pkg/util"
)

// SQLiteRepository persists users in a local SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository wraps an open database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// EnsureSchema creates the users table when missing.
func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`)
	return err
}

// Create inserts a new user row.
func (r *SQLiteRepository) Create(ctx context.Context, email, passwordHash string) (auth.User, error) {
	created := util.NowUTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, created_at) VALUES (?, ?, ?)`,
		email, passwordHash, sqlitedb.FormatTime(created),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return auth.User{}, auth.ErrEmailExists
		}
		return auth.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return auth.User{}, err
	}
	return auth.User{ID: id, Email: email, PasswordHash: passwordHash, CreatedAt: created}, nil
}

// GetByEmail fetches a user by email.
func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (auth.User, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = ?`, email)
	return scanSQLiteUser(row)
}

// GetByID fetches by primary key.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (auth.User, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE id = ?`, id)
	return scanSQLiteUser(row)
}

func scanSQLiteUser(row rowScanner) (auth.User, bool, error) {
	var (
		user    auth.User
		created string
	)
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, false, nil
		}
		return auth.User{}, false, err
	}
	ts, err := sqlitedb.ParseTime(created)
	if err != nil {
		return auth.User{}, false, err
	}
	user.CreatedAt = ts
	return user, true, nil
}

var _ auth.Repository = (*SQLiteRepository)(nil)
