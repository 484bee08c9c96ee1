package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
)

// ListAssessments handles GET /feasibility?businessId=&status=
func (h *Handlers) ListAssessments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		page, err := h.deps.Services.Feasibility.List(r.Context(),
			queryUint(r, "businessId"),
			constants.FeasibilityStatus(r.URL.Query().Get("status")),
			queryInt(r, "limit"), queryInt(r, "offset"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Assessments fetched", page)
	}
}

func (h *Handlers) CreateAssessment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req requests.CreateAssessmentRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		view, err := h.deps.Services.Feasibility.Create(r.Context(), auth.UserIDPtr(r.Context()), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Assessment created", view, http.StatusCreated)
	}
}

func (h *Handlers) GetAssessment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		view, err := h.deps.Services.Feasibility.Get(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Assessment fetched", view)
	}
}

func (h *Handlers) UpdateAssessment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.UpdateAssessmentRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		view, err := h.deps.Services.Feasibility.Update(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Assessment updated", view)
	}
}

// TransitionAssessment handles POST /feasibility/{id}/status
func (h *Handlers) TransitionAssessment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.AssessmentStatusRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		view, err := h.deps.Services.Feasibility.Transition(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Assessment status changed", view)
	}
}

// ReviewAssessment handles POST /feasibility/{id}/review. The caller is the reviewer.
func (h *Handlers) ReviewAssessment() http.HandlerFunc {
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
		var req requests.ReviewAssessmentRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		view, err := h.deps.Services.Feasibility.Review(r.Context(), id, claims.UserID, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Assessment reviewed", view)
	}
}
