package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	h "chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"
)

// BearerToken extracts the token from an Authorization: Bearer header.
// Returns "" when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// RequireAdmin returns a wrapper enforcing the admin gate on a route: the
// request must carry a Bearer token whose session the gate still accepts.
// Failures answer 401 and do not call next; an API client is expected to
// send the user back to the login screen on that signal.
func RequireAdmin(gate domain.AdminGate, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing bearer token")
				return
			}
			if err := gate.Check(r.Context(), token); err != nil {
				logger.Debug("admin gate rejected request", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or logged-out session")
				return
			}
			next(w, r)
		}
	}
}
