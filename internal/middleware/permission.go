package middleware

import (
	"context"
	"net/http"
	"time"

	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/logging"
)

// PermissionChecker answers RBAC questions for a role.
type PermissionChecker interface {
	HasPermission(ctx context.Context, role constants.UserRole, resource, action string) (bool, error)
}

// RequirePermission rejects callers whose role lacks resource:action. It must
// run after AuthMiddleware.
func RequirePermission(checker PermissionChecker, resource, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				common.RespondError(w, start, nil, constants.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			allowed, err := checker.HasPermission(r.Context(), claims.Role, resource, action)
			if err != nil {
				common.RespondServiceError(w, start, err)
				return
			}
			if !allowed {
				logging.Warn("Permission denied",
					"user_id", claims.UserID,
					"role", claims.Role,
					"permission", resource+":"+action,
				)
				common.RespondError(w, start, nil, constants.MsgForbidden, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
