// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request validation errors. Callers can match against them with [errors.Is].
var (
	// ErrEmptyMessageText is returned when a send request carries no text.
	ErrEmptyMessageText = errors.New("message text is empty")

	// ErrEmptyPhone is returned when a send request carries no recipient.
	ErrEmptyPhone = errors.New("recipient phone is empty")
)
