package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
)

func (h *Handlers) ListMakerspaces() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		spaces, err := h.deps.Services.Makerspaces.List(r.Context(),
			constants.District(r.URL.Query().Get("district")),
			queryBool(r, "includeInactive"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Makerspaces fetched", spaces)
	}
}

func (h *Handlers) CreateMakerspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req requests.CreateMakerspaceRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		space, err := h.deps.Services.Makerspaces.Create(r.Context(), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Makerspace created", space, http.StatusCreated)
	}
}

func (h *Handlers) GetMakerspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		space, err := h.deps.Services.Makerspaces.Get(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Makerspace fetched", space)
	}
}

func (h *Handlers) UpdateMakerspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.UpdateMakerspaceRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		space, err := h.deps.Services.Makerspaces.Update(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Makerspace updated", space)
	}
}

// DeactivateMakerspace handles DELETE /makerspaces/{id}
func (h *Handlers) DeactivateMakerspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		if err := h.deps.Services.Makerspaces.Deactivate(r.Context(), id); err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Makerspace deactivated", nil)
	}
}

// MakerspaceBusinesses handles GET /makerspaces/{id}/businesses
func (h *Handlers) MakerspaceBusinesses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		links, err := h.deps.Services.Relationships.BusinessesOfMakerspace(r.Context(), id, queryBool(r, "includeInactive"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Businesses fetched", links)
	}
}
