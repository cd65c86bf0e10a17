package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chapterhub/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type jwtAdapter struct {
	secret []byte
}

// NewJWTAdapter returns a TokenIssuer/TokenVerifier pair that signs admin
// session tokens with HS256 using the given secret. Tokens carry no expiry:
// the session ends only on explicit logout.
func NewJWTAdapter(secret string) (domain.TokenIssuer, domain.TokenVerifier) {
	a := &jwtAdapter{secret: []byte(secret)}
	return a, a
}

func (a *jwtAdapter) Issue(sessionID, email string) (string, error) {
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  sessionID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (a *jwtAdapter) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, nil
}
