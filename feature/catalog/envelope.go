package catalog

import (
	"encoding/json"
	"fmt"
	"io"
)

// Envelope is the backend's response wrapper; the payload lives under "data".
type Envelope[T any] struct {
	Data T `json:"data"`
}

// DecodeEnvelope reads the whole body and unwraps it.
// A body that is not JSON, or that has no "data" key, fails with a *DecodeError.
// An explicit "data": null decodes to the zero value of T.
func DecodeEnvelope[T any](r io.Reader) (Envelope[T], error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return Envelope[T]{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Envelope[T]{}, &DecodeError{Reason: "malformed JSON body", Err: err}
	}
	if raw.Data == nil {
		return Envelope[T]{}, &DecodeError{Reason: `missing "data" field`}
	}

	var env Envelope[T]
	if err := json.Unmarshal(raw.Data, &env.Data); err != nil {
		return Envelope[T]{}, &DecodeError{Reason: `unexpected "data" shape`, Err: err}
	}
	return env, nil
}
