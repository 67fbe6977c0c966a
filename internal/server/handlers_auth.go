package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/JavierGuerrero99/talento-hub/internal/db"
	"github.com/JavierGuerrero99/talento-hub/internal/upstream"
)

// LoginRequest is the gateway login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the gateway token. The upstream access token
// never leaves the gateway.
type LoginResponse struct {
	Token  string `json:"token"`
	Email  string `json:"email,omitempty"`
	UserID string `json:"user_id,omitempty"`
}

// handleLogin exchanges credentials for a gateway token. The upstream
// access token is stored in a new session; the response only carries the
// gateway JWT naming that session.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	accessToken, err := s.upstream.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if HTTPStatus(err) == http.StatusUnauthorized {
			credErr := &ErrInvalidCredentials{}
			s.errorResponse(w, http.StatusUnauthorized, credErr.Error())
			return
		}
		s.upstreamError(w, r, nil, err)
		return
	}

	// Identity comes from the token claims, completed from the profile
	// endpoint. A failure here is not fatal: assignment filtering just
	// degrades for this session.
	authed := s.upstream.WithToken(accessToken)
	ident, err := authed.ResolveIdentity(r.Context())
	if err != nil {
		log.Printf("Could not resolve identity for %s: %v", req.Email, err)
	}
	if ident.Email == "" {
		ident.Email = req.Email
	}

	sessionID, err := s.sessions.CreateSession(r.Context(), ident.UserID.Key(), ident.Email, accessToken)
	if err != nil {
		log.Printf("Error creating session: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	token, err := s.jwtService.GenerateToken(sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, LoginResponse{
		Token:  token,
		Email:  ident.Email,
		UserID: ident.UserID.Key(),
	})
}

// handleLogout revokes the gateway session.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, sess, err := s.sessionClient(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.sessions.RevokeSession(r.Context(), sess.ID); err != nil {
		log.Printf("Error revoking session %s: %v", sess.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to revoke session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// identityFor resolves the session user's identity for assignment
// filtering, preferring the stored token claims over an extra upstream
// call.
func identityFor(r *http.Request, client *upstream.Client, sess *db.Session) (upstream.Identity, error) {
	ident := upstream.IdentityFromToken(sess.AccessToken)
	if ident.Email == "" {
		ident.Email = sess.UserEmail
	}
	if !ident.UserID.IsZero() && ident.Email != "" {
		return ident, nil
	}
	return client.ResolveIdentity(r.Context())
}

// extractValidationErrors extracts validation error messages from
// validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
