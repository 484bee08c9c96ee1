package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
)

const maxImportBytes = 5 << 20

func (h *Handlers) ListYouth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()
		filter := requests.YouthFilter{
			District:       constants.District(q.Get("district")),
			DareModel:      constants.DareModel(q.Get("dareModel")),
			TrainingStatus: q.Get("trainingStatus"),
			Search:         q.Get("search"),
			Limit:          queryInt(r, "limit"),
			Offset:         queryInt(r, "offset"),
		}
		page, err := h.deps.Services.Youth.List(r.Context(), filter)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Youth fetched", page)
	}
}

func (h *Handlers) CreateYouth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req requests.CreateYouthRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		youth, err := h.deps.Services.Youth.Create(r.Context(), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Youth profile created", youth, http.StatusCreated)
	}
}

func (h *Handlers) GetYouth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		youth, err := h.deps.Services.Youth.Get(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Youth profile fetched", youth)
	}
}

func (h *Handlers) UpdateYouth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.UpdateYouthRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		youth, err := h.deps.Services.Youth.Update(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Youth profile updated", youth)
	}
}

func (h *Handlers) DeleteYouth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		if err := h.deps.Services.Youth.Delete(r.Context(), id); err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Youth profile deleted", nil)
	}
}

// ImportYouth handles POST /youth/import with a text/csv body.
func (h *Handlers) ImportYouth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		body := http.MaxBytesReader(w, r.Body, maxImportBytes)
		report, err := h.deps.Services.Youth.ImportCSV(r.Context(), body, queryBool(r, "dryRun"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Youth import processed", report)
	}
}

// YouthBusinesses handles GET /youth/{id}/businesses
func (h *Handlers) YouthBusinesses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		links, err := h.deps.Services.Relationships.BusinessesOfYouth(r.Context(), id, queryBool(r, "includeInactive"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Businesses fetched", links)
	}
}
