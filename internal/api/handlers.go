package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"school-activities/internal/common/errors"
	"school-activities/internal/common/metrics"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.cache != nil {
		if snapshot, ok := s.cache.Get(ctx); ok {
			writeJSON(w, http.StatusOK, snapshot)
			return
		}
	}

	snapshot := s.registry.List()

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot); err != nil {
			s.logger.WithError(err).Warn("snapshot cache write failed", nil)
		}
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	email, ok := studentEmail(r)
	if !ok {
		s.writeError(w, errors.NewInvalidEmailError())
		return
	}

	if _, err := s.registry.Signup(name, email); err != nil {
		s.writeError(w, err)
		return
	}

	metrics.SignupsTotal.WithLabelValues(name).Inc()
	s.invalidateSnapshot(ctx)

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})

	s.notifier.SignupConfirmation(ctx, email, name)
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	email, ok := studentEmail(r)
	if !ok {
		s.writeError(w, errors.NewInvalidEmailError())
		return
	}

	if _, err := s.registry.Unregister(name, email); err != nil {
		s.writeError(w, err)
		return
	}

	metrics.UnregistrationsTotal.WithLabelValues(name).Inc()
	s.invalidateSnapshot(ctx)

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})

	s.notifier.UnregisterConfirmation(ctx, email, name)
}

func studentEmail(r *http.Request) (string, bool) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	return email, email != ""
}

func (s *Server) invalidateSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WithError(err).Warn("snapshot cache invalidation failed", nil)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if regErr, ok := errors.AsRegistrationError(err); ok {
		metrics.RegistrationErrorsTotal.WithLabelValues(string(regErr.Code)).Inc()
		writeJSON(w, regErr.HTTPStatus(), errorResponse{
			Detail: regErr.Message,
			Code:   string(regErr.Code),
		})
		return
	}

	s.logger.WithError(err).Error("unexpected handler error", nil)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
