package api

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/common"
)

// DashboardStats handles GET /api/v1/dashboard/stats
func (h *Handlers) DashboardStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		stats, err := h.deps.Services.Dashboard.Stats(r.Context())
		if err != nil {
			common.RespondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Dashboard stats", stats)
	}
}
