package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
)

// RecordTracking handles POST /businesses/{id}/tracking
func (h *Handlers) RecordTracking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.RecordTrackingRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		record, err := h.deps.Services.Tracking.Record(r.Context(), id, auth.UserIDPtr(r.Context()), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Tracking recorded", record, http.StatusCreated)
	}
}

// ListTracking handles GET /businesses/{id}/tracking, most recent period first.
func (h *Handlers) ListTracking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		page, err := h.deps.Services.Tracking.List(r.Context(), id, queryInt(r, "limit"), queryInt(r, "offset"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Tracking fetched", page)
	}
}

// TrackingSummary handles GET /businesses/{id}/tracking/summary
func (h *Handlers) TrackingSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		summary, err := h.deps.Services.Tracking.Summary(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Tracking summary", summary)
	}
}

func (h *Handlers) GetTracking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		record, err := h.deps.Services.Tracking.Get(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Tracking record fetched", record)
	}
}

func (h *Handlers) UpdateTracking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.UpdateTrackingRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		record, err := h.deps.Services.Tracking.Update(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Tracking record updated", record)
	}
}

// VerifyTracking handles POST /tracking/{id}/verify. The caller is the verifier.
func (h *Handlers) VerifyTracking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgUnauthorized, http.StatusUnauthorized)
			return
		}
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		record, err := h.deps.Services.Tracking.Verify(r.Context(), id, claims.UserID)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Tracking record verified", record)
	}
}
