package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/models/dtos/requests"
)

// BusinessYouth handles GET /businesses/{id}/youth
func (h *Handlers) BusinessYouth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		links, err := h.deps.Services.Relationships.YouthOfBusiness(r.Context(), id, queryBool(r, "includeInactive"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Youth fetched", links)
	}
}

// AssignYouth handles POST /businesses/{id}/youth
func (h *Handlers) AssignYouth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.AssignYouthRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		link, err := h.deps.Services.Relationships.AssignYouth(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Youth assigned", link, http.StatusCreated)
	}
}

// UnassignYouth handles DELETE /businesses/{id}/youth/{youthId}
func (h *Handlers) UnassignYouth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		youthID, ok := pathID(w, r, initTime, "youthId")
		if !ok {
			return
		}
		if err := h.deps.Services.Relationships.UnassignYouth(r.Context(), id, youthID); err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Youth unassigned", nil)
	}
}

// BusinessMentors handles GET /businesses/{id}/mentors
func (h *Handlers) BusinessMentors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		links, err := h.deps.Services.Relationships.MentorsOfBusiness(r.Context(), id, queryBool(r, "includeInactive"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Mentors fetched", links)
	}
}

// AssignMentor handles POST /businesses/{id}/mentors
func (h *Handlers) AssignMentor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.AssignMentorRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		link, err := h.deps.Services.Relationships.AssignMentor(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Mentor assigned", link, http.StatusCreated)
	}
}

// UpdateMentorship handles PATCH /businesses/{id}/mentors/{mentorId}
func (h *Handlers) UpdateMentorship() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		mentorID, ok := pathID(w, r, initTime, "mentorId")
		if !ok {
			return
		}
		var req requests.UpdateMentorshipRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		link, err := h.deps.Services.Relationships.UpdateMentorship(r.Context(), id, mentorID, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Mentorship updated", link)
	}
}

// UnassignMentor handles DELETE /businesses/{id}/mentors/{mentorId}
func (h *Handlers) UnassignMentor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		mentorID, ok := pathID(w, r, initTime, "mentorId")
		if !ok {
			return
		}
		if err := h.deps.Services.Relationships.UnassignMentor(r.Context(), id, mentorID); err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Mentor unassigned", nil)
	}
}

// BusinessMakerspace handles GET /businesses/{id}/makerspace
func (h *Handlers) BusinessMakerspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		assignment, err := h.deps.Services.Relationships.ActiveMakerspace(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Makerspace assignment fetched", assignment)
	}
}

// AssignMakerspace handles PUT /businesses/{id}/makerspace. Moving a business
// that already has a makerspace needs "transfer": true.
func (h *Handlers) AssignMakerspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.AssignMakerspaceRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		assignment, err := h.deps.Services.Relationships.AssignMakerspace(r.Context(), id, auth.UserIDPtr(r.Context()), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Makerspace assigned", assignment)
	}
}

// UnassignMakerspace handles DELETE /businesses/{id}/makerspace
func (h *Handlers) UnassignMakerspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		if err := h.deps.Services.Relationships.UnassignMakerspace(r.Context(), id); err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Makerspace unassigned", nil)
	}
}
