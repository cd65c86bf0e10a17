package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"chapterhub/internal/domain"
)

// ErrSessionClosed reports a token whose session was logged out (or never
// recorded). The route guard treats it like any other failed check.
var ErrSessionClosed = errors.New("session closed")

type adminGate struct {
	credentials domain.CredentialVerifier
	issuer      domain.TokenIssuer
	tokens      domain.TokenVerifier
	sessions    domain.SessionStore
	adminEmail  string
}

// NewAdminGate wires the credential verifier, token adapter, and session
// store into the two-state gate guarding the admin area.
func NewAdminGate(credentials domain.CredentialVerifier, issuer domain.TokenIssuer, tokens domain.TokenVerifier, sessions domain.SessionStore, adminEmail string) domain.AdminGate {
	return &adminGate{
		credentials: credentials,
		issuer:      issuer,
		tokens:      tokens,
		sessions:    sessions,
		adminEmail:  adminEmail,
	}
}

// Login verifies the submitted pair and, on success, records a fresh session
// and returns its bearer token. Any mismatch surfaces ErrInvalidCredentials
// and leaves the gate anonymous. The session has no expiry; only Logout
// closes it.
func (g *adminGate) Login(ctx context.Context, email, password string) (string, error) {
	if err := g.credentials.Verify(email, password); err != nil {
		return "", err
	}
	sessionID := uuid.NewString()
	token, err := g.issuer.Issue(sessionID, g.adminEmail)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if err := g.sessions.Put(ctx, sessionID); err != nil {
		return "", fmt.Errorf("record session: %w", err)
	}
	return token, nil
}

// Logout closes the session the token belongs to. An invalid token is a
// no-op: the holder was never authenticated.
func (g *adminGate) Logout(ctx context.Context, token string) error {
	sessionID, err := g.tokens.Verify(token)
	if err != nil {
		return nil
	}
	if err := g.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Check is the route-guard decision: the token must verify and its session
// must still be recorded.
func (g *adminGate) Check(ctx context.Context, token string) error {
	sessionID, err := g.tokens.Verify(token)
	if err != nil {
		return fmt.Errorf("verify token: %w", err)
	}
	ok, err := g.sessions.Has(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if !ok {
		return ErrSessionClosed
	}
	return nil
}
