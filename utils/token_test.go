package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tokens := NewSessionTokens("secret", time.Hour)

	signed, err := tokens.Generate("sid-123")
	require.NoError(t, err)

	sid, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", sid)
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	signed, err := NewSessionTokens("secret", time.Hour).Generate("sid")
	require.NoError(t, err)

	_, err = NewSessionTokens("other", time.Hour).Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionTokenExpires(t *testing.T) {
	tokens := NewSessionTokens("secret", time.Minute)
	signed, err := tokens.Generate("sid")
	require.NoError(t, err)

	tokens.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = tokens.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionTokenRejectsTampering(t *testing.T) {
	tokens := NewSessionTokens("secret", time.Hour)
	_, err := tokens.Validate("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestRandomTokenUnique(t *testing.T) {
	a, err := RandomToken()
	require.NoError(t, err)
	b, err := RandomToken()
	require.NoError(t, err)
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}
