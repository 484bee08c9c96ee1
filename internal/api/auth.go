package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
)

// Login handles POST /api/v1/auth/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req requests.LoginRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}

		resp, err := h.deps.Services.Users.Login(r.Context(), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Logged in", resp)
	}
}

// Me handles GET /api/v1/me
func (h *Handlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		me, err := h.deps.Services.Users.Me(r.Context(), claims.UserID)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Current user", me)
	}
}
