package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestExpiry(t *testing.T) {
	exp := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	token := sign(t, jwt.MapClaims{"sub": "42", "exp": exp.Unix()})

	got, ok, err := Expiry(token)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestCheck(t *testing.T) {
	exp := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	token := sign(t, jwt.MapClaims{"exp": exp.Unix()})

	assert.NoError(t, Check(token, exp.Add(-time.Minute)))
	assert.ErrorIs(t, Check(token, exp), ErrSessionExpired)
	assert.ErrorIs(t, Check(token, exp.Add(time.Hour)), ErrSessionExpired)
}

func TestCheck_NoExpiry(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "42"})

	assert.NoError(t, Check(token, time.Now()))
}

func TestCheck_Malformed(t *testing.T) {
	assert.ErrorIs(t, Check("not-a-jwt", time.Now()), ErrMalformedToken)
}
