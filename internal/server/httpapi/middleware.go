package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vibesbook/backend/internal/common"
	"github.com/vibesbook/backend/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// authenticate is the authorization gate: it extracts the bearer token,
// verifies it, and binds the resulting identity to the request context.
// Requests without a token get 401; requests with a malformed or expired
// token get 403. The gate holds no per-request state beyond the secret.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			s.writeError(r.Context(), w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				s.logger.Info(r.Context(), "Rejected expired token")
			} else {
				s.logger.Info(r.Context(), "Rejected invalid token")
			}
			s.writeError(r.Context(), w, http.StatusForbidden, "Invalid or expired token.")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFromContext returns the identity bound by the gate, or nil when the
// request did not pass through it.
func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}
