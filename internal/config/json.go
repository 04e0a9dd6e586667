package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// are accepted as Go duration strings ("1.5s") or as integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		Locale        string `json:"locale"`
		FeaturedCount int    `json:"featured_count"`
	} `json:"app,omitempty"`

	Storage struct {
		Durable struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"durable,omitempty"`
		SkipSampleRecipes bool `json:"skip_sample_recipes"`
	} `json:"storage,omitempty"`

	Pacing struct {
		LoadingDelay  Duration `json:"loading_delay"`
		RedirectDelay Duration `json:"redirect_delay"`
	} `json:"pacing,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			Locale:        jsonCfg.App.Locale,
			FeaturedCount: jsonCfg.App.FeaturedCount,
		},
		Storage: Storage{
			Durable: Durable{
				Driver: jsonCfg.Storage.Durable.Driver,
				DSN:    jsonCfg.Storage.Durable.DSN,
			},
			SkipSampleRecipes: jsonCfg.Storage.SkipSampleRecipes,
		},
		Pacing: Pacing{
			LoadingDelay:  time.Duration(jsonCfg.Pacing.LoadingDelay),
			RedirectDelay: time.Duration(jsonCfg.Pacing.RedirectDelay),
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
