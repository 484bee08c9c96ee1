package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/models/dtos/requests"
)

func (h *Handlers) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		page, err := h.deps.Services.Users.List(r.Context(), queryBool(r, "includeInactive"), queryInt(r, "limit"), queryInt(r, "offset"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Users fetched", page)
	}
}

func (h *Handlers) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req requests.CreateUserRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		user, err := h.deps.Services.Users.Create(r.Context(), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "User created", user, http.StatusCreated)
	}
}

func (h *Handlers) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		user, err := h.deps.Services.Users.Get(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "User fetched", user)
	}
}

func (h *Handlers) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.UpdateUserRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		user, err := h.deps.Services.Users.Update(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "User updated", user)
	}
}

// DeactivateUser handles DELETE /users/{id}. Accounts are deactivated, never removed.
func (h *Handlers) DeactivateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		if err := h.deps.Services.Users.Deactivate(r.Context(), id); err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "User deactivated", nil)
	}
}
