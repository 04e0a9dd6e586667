// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the application.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Durable.Driver {
	case DriverSQLite, DriverBolt:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Durable.Driver)
	}

	if cfg.Storage.Durable.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if cfg.App.FeaturedCount <= 0 {
		return fmt.Errorf("%w: featured count must be positive", ErrInvalidAppConfigs)
	}

	if _, err := language.Parse(cfg.App.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidAppConfigs, cfg.App.Locale, err)
	}

	if cfg.Pacing.LoadingDelay < 0 || cfg.Pacing.RedirectDelay < 0 {
		return ErrInvalidPacingConfigs
	}

	return nil
}
