package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
	"github.com/JavierGuerrero99/talento-hub/internal/vacancies"
)

// CreateVacancyRequest is the payload for creating a vacancy. Field
// names follow the legacy backend's Spanish schema.
type CreateVacancyRequest struct {
	Titulo      string `json:"titulo" validate:"required,min=3"`
	Descripcion string `json:"descripcion,omitempty"`
	Ciudad      string `json:"ciudad,omitempty"`
	Estado      string `json:"estado,omitempty"`
}

// pathID coerces the {id} path segment into a canonical identifier.
func pathID(r *http.Request) record.ID {
	return record.CoerceID(r.PathValue("id"))
}

// handleListVacancies returns the normalized vacancy list.
func (s *Server) handleListVacancies(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.sessionClient(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	views, err := vacancies.NewService(client).List(r.Context())
	if err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"vacancies": views})
}

// handleMyVacancies returns the vacancies assigned to the session user.
func (s *Server) handleMyVacancies(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.sessionClient(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	ident, err := identityFor(r, client, sess)
	if err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}

	views, err := vacancies.NewService(client).Mine(r.Context(), ident.UserID, ident.Email)
	if err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"vacancies": views})
}

// handleCreateVacancy creates a vacancy on the legacy backend.
func (s *Server) handleCreateVacancy(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.sessionClient(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req CreateVacancyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	fields := record.Record{"titulo": req.Titulo}
	if req.Descripcion != "" {
		fields["descripcion"] = req.Descripcion
	}
	if req.Ciudad != "" {
		fields["ciudad"] = req.Ciudad
	}
	if req.Estado != "" {
		fields["estado"] = req.Estado
	}

	created, err := client.CreateVacancy(r.Context(), fields)
	if err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateVacancy forwards a loose update payload to the backend.
func (s *Server) handleUpdateVacancy(w http.ResponseWriter, r *http.Request) {
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

	var fields record.Record
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(fields) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Empty update payload")
		return
	}

	if err := client.UpdateVacancy(r.Context(), id, fields); err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Vacancy updated"})
}

// handleDeleteVacancy deletes a vacancy.
func (s *Server) handleDeleteVacancy(w http.ResponseWriter, r *http.Request) {
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

	if err := client.DeleteVacancy(r.Context(), id); err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleVacancyReport proxies the vacancy metrics PDF.
func (s *Server) handleVacancyReport(w http.ResponseWriter, r *http.Request) {
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

	data, filename, err := client.ExportVacancyPDF(r.Context(), id)
	if err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
