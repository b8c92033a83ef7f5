package middleware

import (
	"context"
	"net/http"
	"strings"

	"amy-custom/internal/auth"

	"go.uber.org/zap"
)

type contextKey string

const (
	// AdminTokenKey holds the bearer token of the active admin session so
	// the logout handler can revoke it.
	AdminTokenKey contextKey = "admin_token"
)

// AdminAuthMiddleware gates catalog mutations behind the admin session.
// It extracts a bearer token and checks it against the gate; anything else
// is answered with a denial notice. The gate is a cosmetic shared-secret
// check, not a real security boundary.
func AdminAuthMiddleware(gate auth.Gate, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug("Missing authorization header")
				RespondWithError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Debug("Invalid authorization header format")
				RespondWithError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			token := parts[1]
			if !gate.Authenticated(token) {
				logger.Debug("Unknown or revoked admin session token")
				RespondWithError(w, http.StatusUnauthorized, "admin session required")
				return
			}

			ctx := context.WithValue(r.Context(), AdminTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminToken extracts the admin session token from the request context.
func GetAdminToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AdminTokenKey).(string)
	return token, ok
}
