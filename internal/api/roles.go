package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/models/dtos/requests"
)

func (h *Handlers) ListRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		roles, err := h.deps.Services.RBAC.ListRoles(r.Context())
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Roles fetched", roles)
	}
}

func (h *Handlers) GetRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		role, err := h.deps.Services.RBAC.GetRole(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Role fetched", role)
	}
}

func (h *Handlers) CreateRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req requests.CreateRoleRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		role, err := h.deps.Services.RBAC.CreateRole(r.Context(), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Role created", role, http.StatusCreated)
	}
}

func (h *Handlers) GrantPermission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.GrantPermissionRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		role, err := h.deps.Services.RBAC.Grant(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Permission granted", role)
	}
}

func (h *Handlers) RevokePermission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		req := requests.GrantPermissionRequest{
			Resource: r.URL.Query().Get("resource"),
			Action:   r.URL.Query().Get("action"),
		}
		role, err := h.deps.Services.RBAC.Revoke(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Permission revoked", role)
	}
}

func (h *Handlers) ListPermissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		perms, err := h.deps.Services.RBAC.ListPermissions(r.Context())
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Permissions fetched", perms)
	}
}
