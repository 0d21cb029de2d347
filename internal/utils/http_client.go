// Package utils provides general-purpose helper utilities used across
// different parts of the application: HTTP response writing, HTTP client
// initialization and trace ID generation.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own connection pool. A zero
// timeout leaves requests bounded only by their context. An empty userAgent
// keeps the resty default.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10*time.Second, "")
//	resp, err := client.R().SetContext(ctx).Get("https://example.com")
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &HTTPClient{Client: client}
}
