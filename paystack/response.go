package paystack

import (
	"encoding/json"
	"fmt"
)

// Response is the normalized envelope around every Paystack API call.
// Status is the sole authoritative success signal: a 4xx response with a
// well-formed body still produces a Response with Status=false rather than
// an error, so callers can inspect declined requests without error-driven
// control flow.
type Response struct {
	// StatusCode is the HTTP status of the underlying response.
	StatusCode int

	// Status reports whether the API call achieved its side effect.
	Status bool

	// Message is the human-readable message returned by the API.
	Message string

	// Data is the resource-specific payload, left undecoded. Nil when the
	// response body carried no data key.
	Data json.RawMessage
}

// HasData reports whether the response carried a non-null data payload.
func (r *Response) HasData() bool {
	return len(r.Data) > 0 && string(r.Data) != "null"
}

// UnmarshalData decodes the data payload into v.
func (r *Response) UnmarshalData(v any) error {
	if !r.HasData() {
		return fmt.Errorf("response has no data payload")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
