package services

import (
	"amazon-shop/models"
	"amazon-shop/repositories/memory"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenUserStore struct{ *memory.UserStore }

func (brokenUserStore) FindByUsername(context.Context, string) (*models.User, error) {
	return nil, errors.New("connection refused")
}

func TestRegisterHashesPassword(t *testing.T) {
	users := memory.NewUserStore()
	svc := NewAuthService(users)

	user, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "pw1", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NotEqual(t, "pw1", user.PasswordHash)

	stored, err := users.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
	assert.Equal(t, "a@x.com", stored.Email)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(memory.NewUserStore())
	req := models.RegisterRequest{Username: "alice", Password: "pw1", Email: "a@x.com"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrUsernameTaken)
}

func TestLoginSucceedsOnlyOnExactMatch(t *testing.T) {
	svc := NewAuthService(memory.NewUserStore())
	ctx := context.Background()
	_, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "pw1", Email: "a@x.com"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	for _, req := range []models.LoginRequest{
		{Username: "alice", Password: "PW1"},
		{Username: "alice", Password: "pw1 "},
		{Username: "alice", Password: ""},
		{Username: "alice ", Password: "pw1"},
		{Username: " alice", Password: "pw1"},
		{Username: "bob", Password: "pw1"},
	} {
		_, err := svc.Login(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%+v", req)
	}
}

func TestLoginStorageErrorIsNotInvalidCredentials(t *testing.T) {
	svc := NewAuthService(brokenUserStore{memory.NewUserStore()})
	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw1"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
