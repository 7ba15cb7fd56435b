package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"school-activities/internal/common/metrics"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID returns the request identifier attached by the middleware, or
// empty when none is present.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		route := r.URL.Path
		status := strconv.Itoa(rec.status)

		metrics.HTTPRequestDuration.WithLabelValues(route, r.Method, status).Observe(duration.Seconds())
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), route, status)
			s.obs.RecordRequestDuration(r.Context(), duration, route)
		}

		s.logger.Info("request handled", map[string]interface{}{
			"requestId": RequestID(r.Context()),
			"method":    r.Method,
			"path":      route,
			"status":    rec.status,
			"duration":  duration.String(),
		})
	})
}
