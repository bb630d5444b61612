package tui

import (
	"errors"
	"strings"

	"github.com/promptdeck/promptdeck/internal/adapter"
	"github.com/promptdeck/promptdeck/internal/client"
)

// humanizeError turns gateway and store errors into status-line text. The
// typed gateway errors get specific wording; anything else is shown as-is
// unless it looks like a connectivity failure.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthenticated), errors.Is(err, adapter.ErrUnauthorized):
		return "you must be signed in for that"
	case errors.Is(err, adapter.ErrPermissionDenied):
		return "you can only modify commands you created"
	case errors.Is(err, adapter.ErrDuplicate):
		return "a command with this title already exists"
	case errors.Is(err, adapter.ErrNotFound):
		return "that command no longer exists"
	case errors.Is(err, adapter.ErrMissingRequiredField):
		return "a required field is missing"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "the command service is unreachable"
	}

	return err.Error()
}
