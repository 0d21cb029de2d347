// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-wa-sender HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNoPhoneProvided is returned when a send request has a blank phone.
	MsgNoPhoneProvided = "no phone provided"

	// MsgNoTextProvided is returned when a send request has a blank text.
	MsgNoTextProvided = "no message text provided"

	// MsgInvalidPhoneFormat is returned when the phone has too few digits to
	// form a recipient address.
	MsgInvalidPhoneFormat = "invalid phone format"

	// MsgNotConnected is returned while the session is not connected
	// (pairing, reconnecting or terminated). The client may retry later.
	MsgNotConnected = "whatsapp session is not connected"

	// MsgRequestTimeout is returned when the send did not finish within the
	// configured request timeout.
	MsgRequestTimeout = "request timed out"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
