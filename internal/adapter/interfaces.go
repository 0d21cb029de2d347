// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstractions for talking to
// the messaging network.
//
// The primary abstraction is [Transport], which opens a [Session] from the
// stored credentials. A session reports everything that happens on the wire
// through a single typed event channel ([Session.Events]) so that the
// connection manager can consume it from one goroutine. The package ships a
// whatsmeow-backed implementation ([NewWhatsAppTransport]) and an HTTP
// protocol version source ([NewVersionSource]).
//
// Errors that carry a network status code are returned as [*StatusError] so
// that callers can classify them without knowing the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wa-sender/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport opens sessions with the messaging network.
type Transport interface {
	// Open starts a new session authenticated with creds and announcing
	// version. The returned session is already connecting; its progress is
	// reported through [Session.Events].
	//
	// An error that carries a network status is returned as [*StatusError].
	Open(ctx context.Context, creds models.Credentials, version models.ProtocolVersion) (Session, error)
}

// Session is a single live connection.
type Session interface {
	// Events returns the stream of session events. The stream carries at most
	// one [Closed] event; nothing is delivered after it. The channel is closed
	// by Close.
	Events() <-chan Event

	// Send delivers a text message to addr and returns the network message ID.
	Send(ctx context.Context, addr models.Address, text string) (string, error)

	// IsRegistered asks the network whether addr belongs to a registered
	// account.
	IsRegistered(ctx context.Context, addr models.Address) (bool, error)

	// Close tears the connection down. It is safe to call more than once.
	Close()
}

// VersionSource discovers the protocol version currently expected by the
// network.
type VersionSource interface {
	// Latest returns the current protocol version.
	Latest(ctx context.Context) (models.ProtocolVersion, error)
}
