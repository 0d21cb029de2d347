// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the API address is
// empty, which means the HTTP API is disabled.
var errNoHandlersAreCreated = errors.New("no handlers are created")
