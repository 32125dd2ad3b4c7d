package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", h)
	assert.True(t, CheckPassword(h, "correct horse"))
	assert.False(t, CheckPassword(h, "wrong horse"))
}

func TestTokenRoundTrip(t *testing.T) {
	tk := NewTokens("s3cret", 0)
	assert.Equal(t, DefaultTokenTTL, tk.TTL())

	raw, exp, err := tk.Make("user-1", "doc@clinic.org")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), exp, 5*time.Second)

	c, err := tk.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserID)
	assert.Equal(t, "doc@clinic.org", c.Email)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	raw, _, err := NewTokens("one", time.Minute).Make("u", "")
	require.NoError(t, err)
	_, err = NewTokens("two", time.Minute).Parse(raw)
	assert.Error(t, err)
}

func TestTokenExpires(t *testing.T) {
	tk := NewTokens("s3cret", time.Minute)
	base := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	tk.now = func() time.Time { return base }
	raw, _, err := tk.Make("u", "")
	require.NoError(t, err)

	tk.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = tk.Parse(raw)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenRejectsNoneAlg(t *testing.T) {
	c := Claims{UserID: "u"}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewTokens("s3cret", time.Minute).Parse(raw)
	assert.Error(t, err)
}
