package careapi

import (
	"encoding/json"
	"fmt"
)

// APIError carries the structured error payload returned by the care platform
// on a non-success response. The payload is arbitrary JSON and is surfaced to
// the user verbatim.
type APIError struct {
	StatusCode int
	Payload    json.RawMessage
}

func (e *APIError) Error() string {
	if len(e.Payload) == 0 {
		return fmt.Sprintf("care api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("care api: status %d: %s", e.StatusCode, string(e.Payload))
}

// Message returns the payload for user display, falling back to the bare
// status when the platform sent no body.
func (e *APIError) Message() string {
	if len(e.Payload) == 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return string(e.Payload)
}
