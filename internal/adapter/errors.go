package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrVersionNotFound  = errors.New("protocol version not found in response")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrSessionClosed    = errors.New("session closed")
	ErrConnectTimeout   = errors.New("connect timed out")
	ErrDeviceStore      = errors.New("device store unavailable")
)

// StatusError is an error that carries a network status code.
type StatusError struct {
	Code int
	Err  error
}

// Error implements error.
func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("status %d", e.Code)
	}
	return fmt.Sprintf("status %d: %v", e.Code, e.Err)
}

// Unwrap returns the underlying error.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusCode returns the network status code.
func (e *StatusError) StatusCode() int {
	return e.Code
}

// StatusCodeOf extracts the status code carried anywhere in err's chain.
// It returns false when err carries none.
func StatusCodeOf(err error) (int, bool) {
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		return coded.StatusCode(), true
	}
	return 0, false
}
