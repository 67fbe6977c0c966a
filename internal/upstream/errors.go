package upstream

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned on HTTP 401. Callers react by clearing the
// stored access token (CLI) or revoking the gateway session (server).
var ErrUnauthorized = errors.New("credenciales no válidas o sesión vencida")

// Error describes a failed call against the legacy backend.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
