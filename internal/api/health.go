package api

import (
	"context"
	"net/http"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/models/entities"
)

// probe times check and turns its error into a dependency entry.
func probe(ctx context.Context, check func(context.Context) error) entities.DependencyHealth {
	started := time.Now()
	err := check(ctx)
	h := entities.DependencyHealth{State: "ok", LatencyMs: time.Since(started).Milliseconds()}
	if err != nil {
		h.State = "down"
		h.Detail = err.Error()
	}
	return h
}

// HealthCheck handles GET /healthCheck. It answers 503 when a dependency is down.
func (h *Handlers) HealthCheck(upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		report := entities.HealthReport{
			Dependencies: map[string]entities.DependencyHealth{
				"database": probe(ctx, h.deps.Services.Dashboard.Ping),
			},
			UpSince: upSince,
			Uptime:  time.Since(upSince).Round(time.Second).String(),
		}

		if redisClient := h.deps.Redis; redisClient != nil {
			report.Dependencies["redis"] = probe(ctx, func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			})
		} else {
			report.Dependencies["cache"] = entities.DependencyHealth{State: "ok", Detail: "in-memory"}
		}

		report.Status = "ok"
		code := http.StatusOK
		if !report.Healthy() {
			report.Status = "down"
			code = http.StatusServiceUnavailable
		}
		common.RespondSuccess(w, initTime, report.Status, report, code)
	}
}
