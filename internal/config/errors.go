package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unparsable locale).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPacingConfigs indicates a negative pacing delay.
	ErrInvalidPacingConfigs = errors.New("invalid pacing configuration")
)
