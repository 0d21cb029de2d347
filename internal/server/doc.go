// Package server runs the local HTTP API.
//
// It provides the listener lifecycle: binding, serving and graceful shutdown
// when the surrounding context is cancelled.
package server
