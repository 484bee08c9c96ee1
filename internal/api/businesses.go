package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
)

func (h *Handlers) ListBusinesses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()
		filter := requests.BusinessFilter{
			District:  constants.District(q.Get("district")),
			Sector:    constants.Sector(q.Get("sector")),
			DareModel: constants.DareModel(q.Get("dareModel")),
			Search:    q.Get("search"),
			Limit:     queryInt(r, "limit"),
			Offset:    queryInt(r, "offset"),
		}
		page, err := h.deps.Services.Businesses.List(r.Context(), filter)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Businesses fetched", page)
	}
}

// CreateBusiness handles POST /businesses. youthIds become the initial owners.
func (h *Handlers) CreateBusiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req requests.CreateBusinessRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		business, err := h.deps.Services.Businesses.CreateBusiness(r.Context(), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Business created", business, http.StatusCreated)
	}
}

func (h *Handlers) GetBusiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		business, err := h.deps.Services.Businesses.Get(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Business fetched", business)
	}
}

func (h *Handlers) UpdateBusiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.UpdateBusinessRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		business, err := h.deps.Services.Businesses.Update(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Business updated", business)
	}
}

func (h *Handlers) DeleteBusiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		if err := h.deps.Services.Businesses.Delete(r.Context(), id); err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Business deleted", nil)
	}
}
