// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wa-sender/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Session.AuthDir) == "" {
		return fmt.Errorf("%w: empty auth dir", ErrInvalidSessionConfigs)
	}

	c := cfg.Connection
	if c.ConnectTimeout <= 0 || c.KeepAliveInterval <= 0 || c.RetryDelay <= 0 || c.FallbackRetryDelay <= 0 {
		return fmt.Errorf("%w: timeouts and delays must be positive", ErrInvalidConnectionConfigs)
	}
	if c.MinRecipientDigits < 1 {
		return fmt.Errorf("%w: min recipient digits must be at least 1", ErrInvalidConnectionConfigs)
	}

	if _, err := models.ParseProtocolVersion(cfg.Version.Fallback); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVersionConfigs, err)
	}

	if cfg.API.HTTPAddress != "" && cfg.API.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAPIConfigs)
	}

	return nil
}
