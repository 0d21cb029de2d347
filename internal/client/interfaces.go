// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-wa-sender/models"
)

// Client is what the wasender commands drive: the long-running session,
// a single dispatch over a fresh session, and wiping the stored device.
type Client interface {
	// Run keeps the session alive until ctx ends, the UI quits or the
	// server terminates the session.
	Run(ctx context.Context) error

	// Send waits for the session to open, dispatches one message and stops.
	Send(ctx context.Context, phone, text string) (models.DispatchResult, error)

	// Reset deletes the stored credentials so the next run pairs again.
	Reset(ctx context.Context) error
}
