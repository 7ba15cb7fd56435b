// Package api exposes the activity registry over HTTP.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"school-activities/internal/cache"
	"school-activities/internal/common/logger"
	"school-activities/internal/common/observability"
	"school-activities/internal/notify"
	"school-activities/internal/registry"
)

// Server wires the registry, the optional snapshot cache, and the notifier
// behind the HTTP routes.
type Server struct {
	registry  *registry.Registry
	cache     *cache.SnapshotCache // nil when caching is disabled
	notifier  notify.Notifier
	logger    logger.Logger
	obs       *observability.Observability
	staticDir string
}

// Option customizes a Server.
type Option func(*Server)

// WithCache enables the Redis snapshot cache.
func WithCache(c *cache.SnapshotCache) Option {
	return func(s *Server) { s.cache = c }
}

// WithNotifier sets the confirmation notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Server) { s.notifier = n }
}

// WithObservability sets the OTel request recorder.
func WithObservability(o *observability.Observability) Option {
	return func(s *Server) { s.obs = o }
}

// WithStaticDir sets the directory served under /static/.
func WithStaticDir(dir string) Option {
	return func(s *Server) { s.staticDir = dir }
}

// NewServer creates a Server for the given registry.
func NewServer(reg *registry.Registry, log logger.Logger, opts ...Option) *Server {
	s := &Server{
		registry:  reg,
		notifier:  notify.Noop{},
		logger:    log,
		staticDir: "web/static",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the route table. Method+path patterns leave the activity
// name URL-decoded in the path value.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
	mux.HandleFunc("GET /activities", s.handleListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", s.handleSignup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", s.handleUnregister)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s.withRequestID(s.withRequestLogging(mux))
}
