// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionState is the lifecycle state of the single messaging session owned
// by the process. Only the connection manager moves it between values.
type ConnectionState int32

const (
	// StateInitializing means a session is being opened with stored credentials.
	StateInitializing ConnectionState = iota
	// StateAwaitingPairing means the transport issued a pairing challenge and
	// the manager waits for the operator to scan it on the phone.
	StateAwaitingPairing
	// StateConnected means the session is authenticated and can send messages.
	StateConnected
	// StateReconnecting means the session closed and a retry timer is pending.
	StateReconnecting
	// StateTerminated means the session was rejected and will not be retried
	// until the operator resets the stored credentials.
	StateTerminated
)

// String returns the lower-case name of the state.
func (s ConnectionState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAwaitingPairing:
		return "awaiting_pairing"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
