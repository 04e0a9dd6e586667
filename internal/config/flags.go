package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by RegisterFlags.
const (
	FlagConfig        = "config"
	FlagDriver        = "driver"
	FlagDSN           = "db"
	FlagLocale        = "locale"
	FlagLogFile       = "log-file"
	FlagLogLevel      = "log-level"
	FlagLoadingDelay  = "loading-delay"
	FlagRedirectDelay = "redirect-delay"
	FlagSkipSamples   = "skip-sample-recipes"
)

// RegisterFlags declares every configuration flag on fs. It is meant to be
// called on the persistent flag set of the root command.
//
// Flags:
//
//	-c/--config          json file path with configs
//	--driver             durable storage driver (sqlite | bolt)
//	-d/--db              durable storage file path
//	--locale             locale used for alphabetical sorting
//	--log-file           log file path
//	--log-level          log level
//	--loading-delay      simulated loading delay (e.g. "1.5s", "0s")
//	--redirect-delay     delay before redirects are followed
//	--skip-sample-recipes  do not seed an empty catalog
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagDriver, "", "Durable storage driver: sqlite | bolt")
	fs.StringP(FlagDSN, "d", "", "Durable storage file path")
	fs.String(FlagLocale, "", "Locale used for alphabetical sorting (e.g. en, de)")
	fs.String(FlagLogFile, "", "Log file path")
	fs.String(FlagLogLevel, "", "Log level: debug | info | warn | error")
	fs.Duration(FlagLoadingDelay, 0, "Simulated loading delay (e.g. 1.5s)")
	fs.Duration(FlagRedirectDelay, 0, "Delay before redirects are followed (e.g. 2s)")
	fs.Bool(FlagSkipSamples, false, "Do not seed an empty catalog with sample recipes")
}

// parseFlags reads the values registered by RegisterFlags from an already
// parsed fs. Flags that were never registered are treated as unset.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	str := func(name string, dst *string) {
		if err != nil || fs.Lookup(name) == nil {
			return
		}
		*dst, err = fs.GetString(name)
	}

	str(FlagConfig, &cfg.JSONFilePath)
	str(FlagDriver, &cfg.Storage.Durable.Driver)
	str(FlagDSN, &cfg.Storage.Durable.DSN)
	str(FlagLocale, &cfg.App.Locale)
	str(FlagLogFile, &cfg.Log.File)
	str(FlagLogLevel, &cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	if fs.Lookup(FlagLoadingDelay) != nil {
		if cfg.Pacing.LoadingDelay, err = fs.GetDuration(FlagLoadingDelay); err != nil {
			return nil, fmt.Errorf("error reading flags: %w", err)
		}
	}
	if fs.Lookup(FlagRedirectDelay) != nil {
		if cfg.Pacing.RedirectDelay, err = fs.GetDuration(FlagRedirectDelay); err != nil {
			return nil, fmt.Errorf("error reading flags: %w", err)
		}
	}
	if fs.Lookup(FlagSkipSamples) != nil {
		if cfg.Storage.SkipSampleRecipes, err = fs.GetBool(FlagSkipSamples); err != nil {
			return nil, fmt.Errorf("error reading flags: %w", err)
		}
	}

	return cfg, nil
}
