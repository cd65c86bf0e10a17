package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAdapter_RoundTrip(t *testing.T) {
	issuer, verifier := NewJWTAdapter("test-secret")

	token, err := issuer.Issue("session-123", "admin@ieee.org")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestJWTAdapter_TokenHasNoExpiry(t *testing.T) {
	issuer, _ := NewJWTAdapter("test-secret")

	token, err := issuer.Issue("session-123", "admin@ieee.org")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Nil(t, claims.ExpiresAt, "session tokens only die on logout")
	assert.Equal(t, "admin@ieee.org", claims.Email)
}

func TestJWTAdapter_RejectsWrongSecret(t *testing.T) {
	issuer, _ := NewJWTAdapter("secret-a")
	_, verifier := NewJWTAdapter("secret-b")

	token, err := issuer.Issue("session-123", "admin@ieee.org")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTAdapter_RejectsGarbage(t *testing.T) {
	_, verifier := NewJWTAdapter("test-secret")

	_, err := verifier.Verify("not.a.token")
	assert.Error(t, err)
}

func TestJWTAdapter_RejectsAlgNone(t *testing.T) {
	_, verifier := NewJWTAdapter("test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "session-123"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}
