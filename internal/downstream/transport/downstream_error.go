package transport

import "fmt"

// downstreamPayload is the wire shape of a failed remote call: an HTTP
// status-equivalent code, a human description, and an optional
// field→messages map when the failure is a validation error. The
// validation mapper reconstructs its verdict from this shape.
type downstreamPayload struct {
	Code        int                 `json:"code"`
	Description string              `json:"description"`
	Payload     map[string][]string `json:"payload"`
}

// DownstreamError is the captured shape of a failed remote call,
// attached as the cause of every HttpClient-kind error the downstream
// client layer returns. StatusCode is the transport-level HTTP status;
// Code and Payload, when non-zero/non-nil, come from a parsed
// downstreamPayload body.
type DownstreamError struct {
	StatusCode  int
	Code        int
	Description string
	Payload     map[string][]string
	Body        []byte
}

func (e *DownstreamError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("downstream call failed with status %d", e.StatusCode)
}

// HasStructuredPayload reports whether the response body parsed into a
// non-empty field-level payload, the precondition the validation
// mapper requires before attempting to rebuild a Validate error.
func (e *DownstreamError) HasStructuredPayload() bool {
	return len(e.Payload) > 0
}
