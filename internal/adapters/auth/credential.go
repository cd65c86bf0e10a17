// Package auth provides the credential, token, and session adapters behind
// the admin gate.
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"chapterhub/internal/domain"
)

type staticVerifier struct {
	email        string
	passwordHash []byte
}

// NewStaticVerifier returns a CredentialVerifier for the single configured
// admin credential. The password is bcrypt-hashed at construction so the
// plaintext is not kept around; swapping in a real identity provider only
// means replacing this implementation.
func NewStaticVerifier(email, password string) (domain.CredentialVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &staticVerifier{email: email, passwordHash: hash}, nil
}

// Verify returns ErrInvalidCredentials on any mismatch, without revealing
// which half failed.
func (v *staticVerifier) Verify(email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
	if !emailOK || !passwordOK {
		return domain.ErrInvalidCredentials
	}
	return nil
}
