package catalog

import "fmt"

const (
	// KindUpstreamError tags errors produced by a non-2xx backend response.
	KindUpstreamError = "UpstreamError"
	// LoadFailedMessage is the fixed message of every UpstreamError.
	LoadFailedMessage = "Could not load the item"
)

// UpstreamError reports that the backend answered with a non-success status.
// The response body is never carried.
type UpstreamError struct {
	Kind    string `json:"kind"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewUpstreamError creates an UpstreamError for status.
func NewUpstreamError(status int) *UpstreamError {
	return &UpstreamError{
		Kind:    KindUpstreamError,
		Status:  status,
		Message: LoadFailedMessage,
	}
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// DecodeError reports a success response whose body is not a valid envelope.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode envelope: %s: %v", e.Reason, e.Err)
	}
	return "decode envelope: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
