package gateway

import (
	"errors"
	"fmt"
)

// ErrSessionExpired marks the one failure the client handles globally: the
// backend declared the session over. Call sites silence it instead of
// surfacing a notice; the forced re-authentication dialog takes over.
var ErrSessionExpired = errors.New("session expired")

// APIError carries the HTTP status and the server-supplied message of a
// failed call. The message is shown to the user as a transient notice.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// UserMessage extracts the text a failed call should show the user: the
// server-supplied message when present, a generic fallback otherwise.
// Session expiry yields an empty string since it is never shown inline.
func UserMessage(err error) string {
	if err == nil || errors.Is(err, ErrSessionExpired) {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "An error occurred."
}
