package auth

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/career-radar/pkg/errors"
)

func newTestService(repo Repository) Service {
	return NewService(Config{
		Secret:          "test-secret",
		TokenTTL:        time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}, repo, newTestLogger())
}

func TestService_RegisterLoginAndRefresh(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	view, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "User@Example.com",
		Password: "pass1234",
	})
	require.NoError(t, err)
	require.Equal(t, "user@example.com", view.Email)
	require.False(t, view.Guest)
	require.NotZero(t, view.ID)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "pass1234",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, view.Email, resp.User.Email)

	claims, err := svc.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	require.Equal(t, view.ID, claims.UserID)
	require.Equal(t, view.Email, claims.Email)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)

	refreshed, err := svc.Refresh(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, resp.Token, refreshed.Token)
	require.Equal(t, resp.User.Email, refreshed.User.Email)

	profile, err := svc.Profile(context.Background(), view.ID)
	require.NoError(t, err)
	require.Equal(t, view.Email, profile.Email)
}

func TestService_DuplicateEmail(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "user@example.com",
		Password: "pass1234",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email:    "user@example.com",
		Password: "pass12345",
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "email_exists"))
}

func TestService_RegisterValidation(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "not-an-email", Password: "pass1234"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "short"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Register(context.Background(), RegisterRequest{Email: DefaultGuestEmail, Password: "pass1234"})
	require.True(t, apperrors.IsCode(err, "email_exists"))
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "pass1234"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrongpass"})
	require.True(t, apperrors.IsCode(err, "invalid_credentials"))

	_, err = svc.Login(context.Background(), LoginRequest{Email: "missing@b.com", Password: "pass1234"})
	require.True(t, apperrors.IsCode(err, "invalid_credentials"))
}

func TestService_GuestGetsFreshAccount(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	first, err := svc.Guest(context.Background())
	require.NoError(t, err)
	require.True(t, first.User.Guest)
	require.True(t, strings.HasPrefix(first.User.Email, "guest+"))
	require.True(t, strings.HasSuffix(first.User.Email, "@career-radar.local"))

	second, err := svc.Guest(context.Background())
	require.NoError(t, err)
	require.True(t, second.User.Guest)
	require.NotEqual(t, first.User.ID, second.User.ID)
	require.NotEqual(t, first.User.Email, second.User.Email)
	require.Len(t, repo.users, 2)

	claims, err := svc.ValidateToken(context.Background(), second.Token)
	require.NoError(t, err)
	require.Equal(t, second.User.ID, claims.UserID)

	_, err = svc.Login(context.Background(), LoginRequest{Email: first.User.Email, Password: "anything"})
	require.True(t, apperrors.IsCode(err, "invalid_credentials"))

	_, err = svc.Register(context.Background(), RegisterRequest{Email: "guest+mine@career-radar.local", Password: "pass1234"})
	require.True(t, apperrors.IsCode(err, "email_exists"))
}

func TestService_TokenTypesNotInterchangeable(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	resp, err := svc.Guest(context.Background())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), resp.RefreshToken)
	require.True(t, apperrors.IsCode(err, "invalid_token"))

	_, err = svc.Refresh(context.Background(), resp.Token)
	require.True(t, apperrors.IsCode(err, "invalid_token"))

	_, err = svc.ValidateToken(context.Background(), "garbage")
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestService_ExpiredToken(t *testing.T) {
	svc := NewService(Config{Secret: "s", TokenTTL: -time.Minute, RefreshTokenTTL: time.Hour}, newMemoryRepo(), newTestLogger())
	resp, err := svc.Guest(context.Background())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), resp.Token)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type memoryRepo struct {
	users map[int64]User
	seq   int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[int64]User)}
}

func (m *memoryRepo) Create(_ context.Context, email, passwordHash string) (User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return User{}, ErrEmailExists
		}
	}
	m.seq++
	user := User{
		ID:           m.seq,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryRepo) GetByEmail(_ context.Context, email string) (User, bool, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, true, nil
		}
	}
	return User{}, false, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (User, bool, error) {
	user, ok := m.users[id]
	return user, ok, nil
}
