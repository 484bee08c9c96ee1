package api

import (
	"context"
	"net/http"
	"time"

	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/models/dtos/requests"
)

// resourceOps binds the resource endpoints to one owner kind.
type resourceOps struct {
	list    func(ctx context.Context, ownerID uint) (any, error)
	create  func(ctx context.Context, ownerID uint, req *requests.CreateResourceRequest) (any, error)
	get     func(ctx context.Context, ownerID, id uint) (any, error)
	update  func(ctx context.Context, ownerID, id uint, req *requests.UpdateResourceRequest) (any, error)
	remove  func(ctx context.Context, ownerID, id uint) error
	addCost func(ctx context.Context, ownerID, id uint, by *uint, req *requests.AddResourceCostRequest) (any, error)
	summary func(ctx context.Context, ownerID, id uint) (any, error)
}

func (h *Handlers) makerspaceResources() resourceOps {
	svc := h.deps.Services.Resources
	return resourceOps{
		list: func(ctx context.Context, owner uint) (any, error) { return svc.ListMakerspaceResources(ctx, owner) },
		create: func(ctx context.Context, owner uint, req *requests.CreateResourceRequest) (any, error) {
			return svc.CreateMakerspaceResource(ctx, owner, req)
		},
		get: func(ctx context.Context, owner, id uint) (any, error) { return svc.GetMakerspaceResource(ctx, owner, id) },
		update: func(ctx context.Context, owner, id uint, req *requests.UpdateResourceRequest) (any, error) {
			return svc.UpdateMakerspaceResource(ctx, owner, id, req)
		},
		remove: svc.DeleteMakerspaceResource,
		addCost: func(ctx context.Context, owner, id uint, by *uint, req *requests.AddResourceCostRequest) (any, error) {
			return svc.AddMakerspaceResourceCost(ctx, owner, id, by, req)
		},
		summary: func(ctx context.Context, owner, id uint) (any, error) {
			return svc.MakerspaceResourceCostSummary(ctx, owner, id)
		},
	}
}

func (h *Handlers) businessResources() resourceOps {
	svc := h.deps.Services.Resources
	return resourceOps{
		list: func(ctx context.Context, owner uint) (any, error) { return svc.ListBusinessResources(ctx, owner) },
		create: func(ctx context.Context, owner uint, req *requests.CreateResourceRequest) (any, error) {
			return svc.CreateBusinessResource(ctx, owner, req)
		},
		get: func(ctx context.Context, owner, id uint) (any, error) { return svc.GetBusinessResource(ctx, owner, id) },
		update: func(ctx context.Context, owner, id uint, req *requests.UpdateResourceRequest) (any, error) {
			return svc.UpdateBusinessResource(ctx, owner, id, req)
		},
		remove: svc.DeleteBusinessResource,
		addCost: func(ctx context.Context, owner, id uint, by *uint, req *requests.AddResourceCostRequest) (any, error) {
			return svc.AddBusinessResourceCost(ctx, owner, id, by, req)
		},
		summary: func(ctx context.Context, owner, id uint) (any, error) {
			return svc.BusinessResourceCostSummary(ctx, owner, id)
		},
	}
}

// ResourceHandlers is the endpoint set for one owner kind. Routes supply the
// owner id as {id} and the resource id as {resourceId}.
type ResourceHandlers struct {
	List        http.HandlerFunc
	Create      http.HandlerFunc
	Get         http.HandlerFunc
	Update      http.HandlerFunc
	Delete      http.HandlerFunc
	AddCost     http.HandlerFunc
	CostSummary http.HandlerFunc
}

func (h *Handlers) MakerspaceResources() ResourceHandlers {
	return h.resourceHandlers(h.makerspaceResources())
}

func (h *Handlers) BusinessResources() ResourceHandlers {
	return h.resourceHandlers(h.businessResources())
}

func (h *Handlers) resourceHandlers(ops resourceOps) ResourceHandlers {
	return ResourceHandlers{
		List:        h.listResources(ops),
		Create:      h.createResource(ops),
		Get:         h.getResource(ops),
		Update:      h.updateResource(ops),
		Delete:      h.deleteResource(ops),
		AddCost:     h.addResourceCost(ops),
		CostSummary: h.resourceCostSummary(ops),
	}
}

func (h *Handlers) listResources(ops resourceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		owner, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		items, err := ops.list(r.Context(), owner)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Resources fetched", items)
	}
}

func (h *Handlers) createResource(ops resourceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		owner, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		var req requests.CreateResourceRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		item, err := ops.create(r.Context(), owner, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Resource created", item, http.StatusCreated)
	}
}

func (h *Handlers) getResource(ops resourceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		owner, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		id, ok := pathID(w, r, initTime, "resourceId")
		if !ok {
			return
		}
		item, err := ops.get(r.Context(), owner, id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Resource fetched", item)
	}
}

func (h *Handlers) updateResource(ops resourceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		owner, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		id, ok := pathID(w, r, initTime, "resourceId")
		if !ok {
			return
		}
		var req requests.UpdateResourceRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		item, err := ops.update(r.Context(), owner, id, &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Resource updated", item)
	}
}

func (h *Handlers) deleteResource(ops resourceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		owner, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		id, ok := pathID(w, r, initTime, "resourceId")
		if !ok {
			return
		}
		if err := ops.remove(r.Context(), owner, id); err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Resource deleted", nil)
	}
}

func (h *Handlers) addResourceCost(ops resourceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		owner, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		id, ok := pathID(w, r, initTime, "resourceId")
		if !ok {
			return
		}
		var req requests.AddResourceCostRequest
		if !decodeJSON(w, r, initTime, &req) {
			return
		}
		entry, err := ops.addCost(r.Context(), owner, id, auth.UserIDPtr(r.Context()), &req)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Cost recorded", entry, http.StatusCreated)
	}
}

func (h *Handlers) resourceCostSummary(ops resourceOps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		owner, ok := pathID(w, r, initTime, "id")
		if !ok {
			return
		}
		id, ok := pathID(w, r, initTime, "resourceId")
		if !ok {
			return
		}
		summary, err := ops.summary(r.Context(), owner, id)
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Cost summary", summary)
	}
}
