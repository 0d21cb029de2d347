package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, an empty auth directory).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidConnectionConfigs indicates non-positive timeouts or delays,
	// or a minimum recipient digit count below one.
	ErrInvalidConnectionConfigs = errors.New("invalid connection configuration")
	// ErrInvalidVersionConfigs indicates a malformed fallback protocol version.
	ErrInvalidVersionConfigs = errors.New("invalid version configuration")
	// ErrInvalidAPIConfigs indicates an enabled API without a request timeout.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
)
