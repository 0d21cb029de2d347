// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sender application runtime.
//
// It wires the connection manager, the operator TUI and the optional HTTP
// API into a single process lifecycle, and provides the one-shot send and
// session reset flows used by the command line.
package client
