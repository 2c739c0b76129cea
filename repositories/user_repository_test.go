package repositories

import (
	"amazon-shop/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepositoryCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash", "a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

	user := &models.User{Username: "alice", PasswordHash: "hash", Email: "a@x.com"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateDuplicateUsername(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash", "a@x.com").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation, Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), &models.User{Username: "alice", PasswordHash: "hash", Email: "a@x.com"})
	assert.ErrorIs(t, err, models.ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreatePassesOtherErrors(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	boom := errors.New("connection reset")

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("bob", "hash", "b@x.com").
		WillReturnError(boom)

	err := repo.Create(context.Background(), &models.User{Username: "bob", PasswordHash: "hash", Email: "b@x.com"})
	assert.ErrorIs(t, err, boom)
}

func TestUserRepositoryFindByUsername(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\$1").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "email", "created_at"}).
			AddRow(4, "alice", "hash", "a@x.com", now))

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: 4, Username: "alice", PasswordHash: "hash", Email: "a@x.com", CreatedAt: now}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(42).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
