package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
)

// Authenticator resolves a bearer token to the caller's claims.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*auth.Claims, error)
}

// AuthMiddleware requires "Authorization: Bearer <jwt>" and stores the claims
// on the request context.
func AuthMiddleware(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				common.RespondServiceError(w, start, &apperr.AuthError{Message: constants.MsgUnauthorized})
				return
			}

			claims, err := authenticator.Authenticate(r.Context(), strings.TrimSpace(token))
			if err != nil {
				common.RespondServiceError(w, start, err)
				return
			}

			rememberClaims(r.Context(), claims)
			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
