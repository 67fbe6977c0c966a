// Package server provides the HTTP gateway in front of the legacy
// Talento-Hub backend.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/JavierGuerrero99/talento-hub/internal/upstream"
)

// ErrInvalidCredentials indicates the upstream rejected a login.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "correo o contraseña incorrectos"
}

// ErrSessionNotFound indicates an unknown or revoked gateway session.
type ErrSessionNotFound struct {
	SessionID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Upstream failures surface as 502 except auth rejections, which revoke
// the session and surface as 401.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrSessionNotFound:
		return http.StatusUnauthorized
	case *ErrValidation:
		return http.StatusBadRequest
	}

	if errors.Is(err, upstream.ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
