// Package http implements the optional local HTTP API of the sender.
//
// It exposes route wiring, request handlers, and middleware. The API lets
// other programs on the machine send messages through the live session and
// inspect its state. Request tracing and access logging are handled here
// before requests are delegated to the service layer.
package http
