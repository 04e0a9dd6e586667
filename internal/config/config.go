// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Durable storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// Default database files, one per driver so switching drivers never opens
// the other driver's file.
const (
	DefaultSQLiteDSN = "recookbook.db"
	DefaultBoltDSN   = "recookbook.bolt"
)

// StructuredConfig is the top-level configuration container for recook-book.
// It aggregates all sub-configurations and is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistent store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Pacing holds the cosmetic delays of the interactive flows.
	Pacing Pacing `envPrefix:"PACING_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string shown by the UI.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Locale is the BCP 47 tag used for alphabetical recipe sorting.
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`

	// FeaturedCount is how many recipes the home page features.
	// Env: APP_FEATURED_COUNT
	FeaturedCount int `env:"FEATURED_COUNT"`
}

// Storage groups persistent store settings.
type Storage struct {
	// Durable selects and configures the durable tier backend.
	Durable Durable `envPrefix:"DURABLE_"`

	// SkipSampleRecipes disables seeding the catalog with the bundled
	// sample recipes when it is empty.
	// Env: STORAGE_SKIP_SAMPLE_RECIPES
	SkipSampleRecipes bool `env:"SKIP_SAMPLE_RECIPES"`
}

// Durable holds the durable tier backend settings.
type Durable struct {
	// Driver is either "sqlite" or "bolt".
	// Env: STORAGE_DURABLE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the path of the database file. Empty selects the driver's
	// default, see [DefaultDSN].
	// Env: STORAGE_DURABLE_DSN
	DSN string `env:"DSN"`
}

// DefaultDSN returns the database file used when driver has no DSN set, or
// "" for an unknown driver.
func DefaultDSN(driver string) string {
	switch driver {
	case DriverSQLite:
		return DefaultSQLiteDSN
	case DriverBolt:
		return DefaultBoltDSN
	default:
		return ""
	}
}

// Pacing holds the simulated latencies of the interactive flows. They only
// affect presentation and may be zero.
type Pacing struct {
	// LoadingDelay is waited before a signup or login is processed.
	// Env: PACING_LOADING_DELAY
	LoadingDelay time.Duration `env:"LOADING_DELAY"`

	// RedirectDelay is waited before a redirect is followed.
	// Env: PACING_REDIRECT_DELAY
	RedirectDelay time.Duration `env:"REDIRECT_DELAY"`
}

// Log holds logger settings.
type Log struct {
	// File is the log file path; empty means next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults returns the configuration used when no source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       "dev",
			Locale:        "en",
			FeaturedCount: 3,
		},
		Storage: Storage{
			Durable: Durable{
				Driver: DriverSQLite,
			},
		},
		Pacing: Pacing{
			LoadingDelay:  1500 * time.Millisecond,
			RedirectDelay: 2 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (fs may be nil)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
