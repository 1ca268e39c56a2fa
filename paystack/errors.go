package paystack

import (
	"errors"
	"fmt"
)

// ErrPayStack is the base error every taxonomy kind unwraps to. Callers that
// do not care which kind they got can match broadly:
//
//	if errors.Is(err, paystack.ErrPayStack) { ... }
var ErrPayStack = errors.New("paystack client error")

// SecretKeyError indicates the secret key was missing or empty at client
// construction. It is returned before any network I/O is attempted.
type SecretKeyError struct {
	Message string
}

// Error implements the error interface
func (e *SecretKeyError) Error() string {
	return e.Message
}

func (e *SecretKeyError) Unwrap() error { return ErrPayStack }

// TypeValueError indicates a value failed a required check, such as a
// malformed secret key or an unrecognized enum value passed to a wrapper.
type TypeValueError struct {
	Field string
	Value any
}

// Error implements the error interface
func (e *TypeValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Value)
}

func (e *TypeValueError) Unwrap() error { return ErrPayStack }

// InvalidRequestMethodError indicates an HTTP verb outside GET, POST, PUT
// and DELETE was passed to the request executor.
type InvalidRequestMethodError struct {
	Method string
}

// Error implements the error interface
func (e *InvalidRequestMethodError) Error() string {
	return fmt.Sprintf("invalid HTTP method %q: supported methods are GET, POST, PUT, DELETE", e.Method)
}

func (e *InvalidRequestMethodError) Unwrap() error { return ErrPayStack }

// APIError indicates the remote API broke the response protocol: a 5xx
// status or a body that could not be decoded as a response envelope.
// Logical failures reported by the API (status=false in a well-formed
// envelope) are NOT errors; they surface through Response.Status.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("paystack API error: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return ErrPayStack }

// IsServerError reports whether the error came from a 5xx response.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError indicates the API could not be reached at all: DNS
// failure, connection refused, timeout. It wraps the underlying transport
// error so callers can inspect it with errors.As.
type ConnectionError struct {
	Err error
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to paystack failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is reports this kind as part of the client error taxonomy so that
// errors.Is(err, ErrPayStack) still matches despite Unwrap returning the
// transport error.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrPayStack
}
