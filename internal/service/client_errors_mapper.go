// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-wa-sender/internal/adapter"
	"github.com/MKhiriev/go-wa-sender/models"
)

// notRegisteredMarker is the text the network uses when the recipient has no
// account, matched case-insensitively.
const notRegisteredMarker = "not registered"

// mapSendError translates a failed send into a dispatch result.
func mapSendError(addr models.Address, err error) models.DispatchResult {
	if isNotRegistered(err) {
		return models.DispatchResult{Status: models.DispatchNotRegistered, Address: addr}
	}

	return models.DispatchResult{
		Status:  models.DispatchTransportError,
		Address: addr,
		Detail:  err.Error(),
	}
}

func isNotRegistered(err error) bool {
	if code, ok := adapter.StatusCodeOf(err); ok && code == models.StatusNotFound {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), notRegisteredMarker)
}
