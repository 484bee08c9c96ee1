package routes

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/api"
	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	AllowedOrigins []string
	Gatherer       prometheus.Gatherer
	UpSince        time.Time
}

func RegisterRoutes(deps *api.Dependencies, opts RouterOptions) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	handlers := api.NewHandlers(deps)

	r.Get("/healthCheck", handlers.HealthCheck(opts.UpSince))
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	RegisterAPIRoutes(r, deps, handlers)

	logging.Info("Router initialized with metrics and logging middleware")
	return r
}
