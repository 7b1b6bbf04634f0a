package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty request text, too many tags, bad room name).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ValidationMessage returns the human-readable part of a wrapped
// ErrValidation, e.g. "service.ChatService.Post: validation error: text is
// required" → "text is required". Other errors are returned whole.
func ValidationMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
