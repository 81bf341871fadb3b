// Package config loads process configuration from environment
// variables and provides the fatal-exit helper used by CLI entry
// points.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv populates target's env-tagged fields from the process
// environment.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
