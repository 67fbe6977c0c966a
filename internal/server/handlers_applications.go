package server

import (
	"encoding/json"
	"net/http"

	"github.com/JavierGuerrero99/talento-hub/internal/applications"
)

// CommentRequest is the payload for attaching a comment to an
// application.
type CommentRequest struct {
	Asunto  string `json:"asunto,omitempty"`
	Mensaje string `json:"mensaje" validate:"required"`
}

// StatusRequest is the payload for changing an application's status.
type StatusRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// handleListApplications returns the normalized application rows of one
// vacancy, with favorites already merged in.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.sessionClient(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := pathID(r)
	if id.IsZero() {
		s.errorResponse(w, http.StatusBadRequest, "Invalid vacancy ID")
		return
	}

	// A fresh session per request: the gateway is stateless, the
	// optimistic overlay only matters to long-lived callers like the CLI.
	rows, err := applications.NewSession(client, id).Refresh(r.Context())
	if err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"applications": rows})
}

// handleSubmitComment attaches a comment to an application.
func (s *Server) handleSubmitComment(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.sessionClient(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := pathID(r)
	if id.IsZero() {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := client.SubmitComment(r.Context(), id, req.Asunto, req.Mensaje); err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"message": "Comment submitted"})
}

// handleUpdateStatus changes an application's status.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.sessionClient(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := pathID(r)
	if id.IsZero() {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := client.UpdateStatus(r.Context(), id, req.Estado); err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Status updated"})
}
