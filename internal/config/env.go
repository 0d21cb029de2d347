// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the application,
// e.g. WASENDER_SESSION_AUTH_DIR.
const EnvPrefix = "WASENDER_"

// parseEnv populates cfg from WASENDER_* environment variables. Field names
// come from the `env` and `envPrefix` tags on [StructuredConfig].
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
