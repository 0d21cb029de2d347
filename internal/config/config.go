// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-wa-sender application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Session holds the location of the persisted credentials and the
	// identity the linked device announces.
	Session Session `envPrefix:"SESSION_"`

	// Connection holds timeouts and the reconnect policy.
	Connection Connection `envPrefix:"CONNECTION_"`

	// Version holds the protocol version discovery settings.
	Version Version `envPrefix:"VERSION_"`

	// API holds the optional HTTP send API settings.
	API API `envPrefix:"API_"`

	// Log holds the log destination and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the WASENDER_CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Session describes where credentials live and how the device presents itself.
type Session struct {
	// AuthDir is the directory holding all persisted session material.
	// Deleting it forces the next run into pairing.
	// Env: WASENDER_SESSION_AUTH_DIR
	AuthDir string `env:"AUTH_DIR"`

	// DeviceName is shown in the phone's list of linked devices.
	// Env: WASENDER_SESSION_DEVICE_NAME
	DeviceName string `env:"DEVICE_NAME"`

	// OSName is the operating system/browser name announced on pairing.
	// Env: WASENDER_SESSION_OS_NAME
	OSName string `env:"OS_NAME"`
}

// Connection holds transport timeouts and the reconnect delays.
type Connection struct {
	// ConnectTimeout bounds opening the websocket and the handshake.
	// Env: WASENDER_CONNECTION_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// KeepAliveInterval is the interval between keep-alive pings.
	// Env: WASENDER_CONNECTION_KEEPALIVE_INTERVAL
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL"`

	// RetryDelay is the delay before reconnecting after a timeout or a lost
	// connection.
	// Env: WASENDER_CONNECTION_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// FallbackRetryDelay is the delay before reconnecting after any other
	// non-terminal close.
	// Env: WASENDER_CONNECTION_FALLBACK_RETRY_DELAY
	FallbackRetryDelay time.Duration `env:"FALLBACK_RETRY_DELAY"`

	// MinRecipientDigits is the minimum digit count of a recipient number.
	// Env: WASENDER_CONNECTION_MIN_RECIPIENT_DIGITS
	MinRecipientDigits int `env:"MIN_RECIPIENT_DIGITS"`
}

// Version holds the protocol version discovery settings.
type Version struct {
	// DiscoveryURL is fetched to find the latest web client revision.
	// Env: WASENDER_VERSION_DISCOVERY_URL
	DiscoveryURL string `env:"DISCOVERY_URL"`

	// DiscoveryTimeout bounds the discovery request.
	// Env: WASENDER_VERSION_DISCOVERY_TIMEOUT
	DiscoveryTimeout time.Duration `env:"DISCOVERY_TIMEOUT"`

	// Fallback is the last-known-good version used when discovery fails,
	// in "2.3000.1023223821" form.
	// Env: WASENDER_VERSION_FALLBACK
	Fallback string `env:"FALLBACK"`
}

// API holds the settings of the local HTTP send API.
type API struct {
	// HTTPAddress is the listen address in "host:port" form. Empty disables
	// the API.
	// Env: WASENDER_API_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single API request, including the send.
	// Env: WASENDER_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds the log destination and level.
type Log struct {
	// File is the client log file. Empty means wasender.log next to the executable.
	// Env: WASENDER_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: WASENDER_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. fs is the flag set the command parsed; only flags the user set
// explicitly take part in the merge.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
