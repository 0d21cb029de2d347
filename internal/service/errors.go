package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wa-sender/models"
)

var (
	ErrInvalidFormat = errors.New("invalid phone number format")
	ErrNotConnected  = errors.New("not connected")

	ErrManagerRunning        = errors.New("connection manager is already running")
	ErrEventStreamEnded      = errors.New("session event stream ended without close")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// TerminatedError is returned by [ConnectionManager.Run] when the session was
// closed with a reason that must not be retried.
type TerminatedError struct {
	Reason     models.DisconnectReason
	StatusCode int
	Err        error
}

func (e *TerminatedError) Error() string {
	return fmt.Sprintf("session terminated (%s, status %d): %v", e.Reason, e.StatusCode, e.Err)
}

func (e *TerminatedError) Unwrap() error {
	return e.Err
}

// Recovery returns the operator instructions for the termination reason.
func (e *TerminatedError) Recovery() string {
	switch e.Reason {
	case models.ReasonLoggedOut:
		return "the linked device was logged out: clear the stored session and pair again"
	case models.ReasonBadSession:
		return "the stored session is corrupted: clear the stored session and pair again"
	default:
		return "clear the stored session and pair again"
	}
}
