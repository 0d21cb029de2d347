// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status codes carried by a session close. They follow the HTTP-like codes the
// messaging network uses in its stream errors and connect failures.
const (
	// StatusUnknown is used when the transport closed without any status.
	StatusUnknown = 0
	// StatusLoggedOut: the linked device was removed from the phone.
	StatusLoggedOut = 401
	// StatusNotFound: the addressed account does not exist. Only seen on sends.
	StatusNotFound = 404
	// StatusTimedOut: a request or the pairing window timed out.
	StatusTimedOut = 408
	// StatusConnectionLost: keep-alive pings went unanswered. The network
	// reports it with the same code as a timeout.
	StatusConnectionLost = StatusTimedOut
	// StatusConnectionClosed: the socket was closed without a stream error.
	StatusConnectionClosed = 428
	// StatusConnectionReplaced: another client opened the same session.
	StatusConnectionReplaced = 440
	// StatusBadSession: the stored session material cannot be used.
	StatusBadSession = 500
	// StatusServiceUnavailable: the remote endpoint refused the connection.
	StatusServiceUnavailable = 503
	// StatusRestartRequired: the server asked the client to reconnect.
	StatusRestartRequired = 515
)

// DisconnectReason is the classification of a session close.
type DisconnectReason int

const (
	// ReasonOther covers every close that is not specifically classified.
	ReasonOther DisconnectReason = iota
	// ReasonLoggedOut means the stored credentials were revoked.
	ReasonLoggedOut
	// ReasonBadSession means the stored credentials are corrupted.
	ReasonBadSession
	// ReasonTimedOut means the session stopped answering in time.
	ReasonTimedOut
	// ReasonConnectionLost means the session stopped answering keep-alives.
	// It shares status 408 with ReasonTimedOut, so [ClassifyDisconnect]
	// reports that code as ReasonTimedOut; both retry after the same delay.
	ReasonConnectionLost
)

// ClassifyDisconnect maps a transport status code to a [DisconnectReason].
// A plain socket close (428) is not a timeout and falls into ReasonOther.
func ClassifyDisconnect(statusCode int) DisconnectReason {
	switch statusCode {
	case StatusLoggedOut:
		return ReasonLoggedOut
	case StatusBadSession:
		return ReasonBadSession
	case StatusTimedOut:
		return ReasonTimedOut
	default:
		return ReasonOther
	}
}

// Terminal reports whether a close with this reason must not be retried.
func (r DisconnectReason) Terminal() bool {
	return r == ReasonLoggedOut || r == ReasonBadSession
}

// String returns the lower-case name of the reason.
func (r DisconnectReason) String() string {
	switch r {
	case ReasonLoggedOut:
		return "logged_out"
	case ReasonBadSession:
		return "bad_session"
	case ReasonTimedOut:
		return "timed_out"
	case ReasonConnectionLost:
		return "connection_lost"
	default:
		return "other"
	}
}
