package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type requestIDKey struct{}

const requestIDHeader = "X-Request-ID"

// MetricsMiddleware records HTTP metrics for each request and logs completion.
func MetricsMiddleware(metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if metricsReg != nil {
				inFlight := metricsReg.HTTPRequestsInFlight.WithLabelValues(r.Method)
				inFlight.Inc()
				defer inFlight.Dec()
			}

			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			// Handlers below this point fill in claims on a derived request,
			// so the user id is read back through this holder.
			holder := &claimsHolder{}
			r = r.WithContext(context.WithValue(r.Context(), claimsHolderKey{}, holder))

			next.ServeHTTP(wrapped, r)

			// The route pattern is only complete once chi has finished routing.
			routePattern := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				routePattern = rctx.RoutePattern()
			}

			duration := time.Since(start).Seconds()
			statusCode := strconv.Itoa(wrapped.statusCode)

			if metricsReg != nil {
				metricsReg.HTTPRequestsTotal.WithLabelValues(routePattern, r.Method, statusCode).Inc()
				metricsReg.HTTPRequestDuration.WithLabelValues(routePattern, r.Method).Observe(duration)
			}

			var userID uint
			if holder.claims != nil {
				userID = holder.claims.UserID
			}

			logging.Info("HTTP request completed",
				"request_id", GetRequestID(r.Context()),
				"method", r.Method,
				"endpoint", routePattern,
				"status_code", wrapped.statusCode,
				"duration_ms", int(duration*1000),
				"user_id", userID,
			)
		})
	}
}

type claimsHolderKey struct{}

type claimsHolder struct {
	claims *auth.Claims
}

// rememberClaims lets MetricsMiddleware log the authenticated user.
func rememberClaims(ctx context.Context, claims *auth.Claims) {
	if holder, ok := ctx.Value(claimsHolderKey{}).(*claimsHolder); ok {
		holder.claims = claims
	}
}

// RequestIDMiddleware adds a request ID to the context if not present
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		w.Header().Set(requestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.written {
		r.statusCode = code
		r.written = true
		r.ResponseWriter.WriteHeader(code)
	}
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.written {
		r.statusCode = http.StatusOK
		r.written = true
	}
	return r.ResponseWriter.Write(b)
}
