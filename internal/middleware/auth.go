package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mmynk/utilityportal/internal/apperr"
	"github.com/mmynk/utilityportal/internal/auth"
	"github.com/mmynk/utilityportal/internal/httpx"
	"github.com/mmynk/utilityportal/internal/metrics"
)

const bearerPrefix = "Bearer "

// Client-facing auth gate messages.
const (
	MsgMissingToken = "Missing token"
	MsgInvalidToken = "Invalid or expired token"
)

// TokenVerifier verifies a session token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// BearerToken extracts the token from an Authorization header value.
// It returns "" when the header is absent, uses another scheme, or carries no token.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// RequireAuth returns a middleware that verifies the bearer token on every request.
// Requests without a valid token are answered with 401 and never reach next;
// otherwise the caller's identity is attached to the request context.
func RequireAuth(verifier TokenVerifier, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				m.AuthRejected("missing")
				httpx.WriteError(w, apperr.Unauthenticated(MsgMissingToken))
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				m.AuthRejected("invalid")
				slog.Debug("Token rejected", "path", r.URL.Path, "error", err)
				httpx.WriteError(w, apperr.Unauthenticated(MsgInvalidToken))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
