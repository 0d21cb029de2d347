package service

import (
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/models"
)

// ReconnectPolicy decides whether and when a closed session is reopened.
type ReconnectPolicy struct {
	// RetryDelay is used after a timeout or a lost connection.
	RetryDelay time.Duration
	// FallbackRetryDelay is used after any other non-terminal close.
	FallbackRetryDelay time.Duration
}

// NewReconnectPolicy builds the policy from the connection settings.
func NewReconnectPolicy(cfg config.ClientConnection) ReconnectPolicy {
	return ReconnectPolicy{
		RetryDelay:         cfg.RetryDelay,
		FallbackRetryDelay: cfg.FallbackRetryDelay,
	}
}

// Next returns the delay before the next attempt. retry is false for terminal
// reasons.
func (p ReconnectPolicy) Next(reason models.DisconnectReason) (delay time.Duration, retry bool) {
	switch reason {
	case models.ReasonLoggedOut, models.ReasonBadSession:
		return 0, false
	case models.ReasonTimedOut, models.ReasonConnectionLost:
		return p.RetryDelay, true
	default:
		return p.FallbackRetryDelay, true
	}
}
