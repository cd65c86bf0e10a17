package domain

import "context"

// CredentialVerifier checks a submitted credential pair. Implementations
// return ErrInvalidCredentials on any mismatch so callers cannot distinguish
// a wrong email from a wrong password.
type CredentialVerifier interface {
	Verify(email, password string) error
}

// TokenIssuer issues a bearer token for an authenticated admin session.
type TokenIssuer interface {
	Issue(sessionID, email string) (string, error)
}

// TokenVerifier verifies a token and returns the session ID it carries.
type TokenVerifier interface {
	Verify(token string) (sessionID string, err error)
}

// SessionStore persists the active admin session flag independently of the
// catalog. A recorded session survives restarts and is removed only by an
// explicit logout.
type SessionStore interface {
	Put(ctx context.Context, sessionID string) error
	Has(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// AdminGate is the two-state authentication gate in front of the admin area.
// Login moves anonymous to authenticated; Logout moves back. Check is the
// route-guard decision: it passes only for a token whose session is still
// recorded.
type AdminGate interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Logout(ctx context.Context, token string) error
	Check(ctx context.Context, token string) error
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}
