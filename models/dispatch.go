// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DispatchStatus is the tag of a [DispatchResult].
type DispatchStatus int

const (
	// DispatchSuccess means the network accepted the message.
	DispatchSuccess DispatchStatus = iota
	// DispatchNotRegistered means the recipient is not a network participant.
	DispatchNotRegistered
	// DispatchTransportError means the transport failed; Detail holds its message.
	DispatchTransportError
)

// String returns the lower-case name of the status.
func (s DispatchStatus) String() string {
	switch s {
	case DispatchSuccess:
		return "success"
	case DispatchNotRegistered:
		return "not_registered"
	case DispatchTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// DispatchResult is the outcome of a single send request.
type DispatchResult struct {
	// Status tags the outcome.
	Status DispatchStatus
	// Address is the resolved recipient.
	Address Address
	// MessageID is the network message ID on success.
	MessageID string
	// Detail carries the transport error message for DispatchTransportError.
	Detail string
}

// MessageRequest is the JSON body of a send request made through the HTTP API.
type MessageRequest struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// MessageResponse is the JSON representation of a [DispatchResult].
type MessageResponse struct {
	Status    string `json:"status"`
	Recipient string `json:"recipient,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// NewMessageResponse converts a [DispatchResult] into its JSON form.
func NewMessageResponse(result DispatchResult) MessageResponse {
	resp := MessageResponse{
		Status:    result.Status.String(),
		MessageID: result.MessageID,
		Detail:    result.Detail,
	}
	if !result.Address.IsZero() {
		resp.Recipient = result.Address.String()
	}
	return resp
}

// SessionResponse is the JSON body returned by the session status endpoint.
type SessionResponse struct {
	State   string `json:"state"`
	Account string `json:"account,omitempty"`
}
