package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
)

func (h *Handlers) ListMentors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		mentors, err := h.deps.Services.Mentors.List(r.Context(),
			constants.District(r.URL.Query().Get("district")),
			queryBool(r, "includeInactive"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Mentors fetched", mentors)
	}
}

func (h *Handlers) CreateMentor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		var req requests.CreateMentorRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		mentor, err := h.deps.Services.Mentors.Create(r.Context(), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Mentor created", mentor, http.StatusCreated)
	}
}

func (h *Handlers) GetMentor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		mentor, err := h.deps.Services.Mentors.Get(r.Context(), id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Mentor fetched", mentor)
	}
}

func (h *Handlers) UpdateMentor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.UpdateMentorRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		mentor, err := h.deps.Services.Mentors.Update(r.Context(), id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Mentor updated", mentor)
	}
}

// MentorBusinesses handles GET /mentors/{id}/businesses
func (h *Handlers) MentorBusinesses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		links, err := h.deps.Services.Relationships.BusinessesOfMentor(r.Context(), id, queryBool(r, "includeInactive"))
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Businesses fetched", links)
	}
}

// ListMessages handles GET /mentors/{id}/businesses/{businessId}/messages
func (h *Handlers) ListMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		businessID, ok := pathID(w, r, initTime, "businessId")
		if !ok {
			return
		}
		msgs, err := h.deps.Services.Mentors.Messages(r.Context(), id, businessID)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Messages fetched", msgs)
	}
}

func (h *Handlers) PostMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		businessID, ok := pathID(w, r, initTime, "businessId")
		if !ok {
			return
		}
		var req requests.CreateMessageRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		msg, err := h.deps.Services.Mentors.PostMessage(r.Context(), id, businessID, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Message sent", msg, http.StatusCreated)
	}
}

// MarkMessageRead handles POST /mentors/{id}/businesses/{businessId}/messages/{messageId}/read
func (h *Handlers) MarkMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		businessID, ok := pathID(w, r, initTime, "businessId")
		if !ok {
			return
		}
		messageID, ok := pathID(w, r, initTime, "messageId")
		if !ok {
			return
		}
		if err := h.deps.Services.Mentors.MarkMessageRead(r.Context(), id, businessID, messageID); err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Message marked read", nil)
	}
}
