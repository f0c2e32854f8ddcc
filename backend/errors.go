package backend

import (
	"errors"
	"fmt"
)

// Error taxonomy for everything the gateway asks of the backend. Every
// failed call maps onto exactly one of these; handlers turn them into
// dismissible notices and never crash a page.
var (
	// ErrNetwork: transport failure, no response at all.
	ErrNetwork = errors.New("backend unreachable")
	// ErrAuth: 401, or no usable token before the call was attempted.
	ErrAuth = errors.New("not authenticated")
	// ErrForbidden: 403, authenticated but not allowed.
	ErrForbidden = errors.New("access denied")
	// ErrNotFound: 404, the entity is gone.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate: the itinerary already holds this attraction.
	ErrDuplicate = errors.New("already added")
	// ErrServer: 5xx or a response we could not make sense of.
	ErrServer = errors.New("server error")
)

// ValidationError carries the backend's message for any other 4xx
// rejection, e.g. a missing form field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// statusError maps an HTTP status plus the backend's error message to
// the taxonomy above.
func statusError(status int, msg string) error {
	switch {
	case status == 401:
		return fmt.Errorf("%w: %s", ErrAuth, msg)
	case status == 403:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case status == 404:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case status == 400 && msg == "Already added":
		return ErrDuplicate
	case status >= 400 && status < 500:
		if msg == "" {
			msg = fmt.Sprintf("request rejected (%d)", status)
		}
		return &ValidationError{Message: msg}
	default:
		return fmt.Errorf("%w: status %d", ErrServer, status)
	}
}
