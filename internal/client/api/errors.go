package api

import (
	"errors"
	"fmt"
	"strings"
)

// Error sentinels for the gateway's response policy. Match with errors.Is;
// ValidationError is extracted with errors.As.
var (
	// ErrInvalidCredentials is a 401 from the sign-in endpoint itself.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionExpired is a 401 from any other endpoint. By the time a
	// caller sees it the session store has already been cleared.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotFound is a 404 for a missing resource.
	ErrNotFound = errors.New("resource not found")

	// ErrUnavailable covers transport failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")
)

// Issue is one field-level validation message from a 422 response.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError carries the backend's structured 422 payload through to
// the caller unmodified; the gateway does not interpret field semantics.
type ValidationError struct {
	Issues []Issue `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		if i.Field != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", i.Field, i.Message))
			continue
		}
		msgs = append(msgs, i.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}
