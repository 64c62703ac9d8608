package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	API struct {
		BaseURL        string   `json:"base_url"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Cache struct {
		Disabled bool      `json:"disabled"`
		TTL      *Duration `json:"ttl"`
		Dir      string    `json:"dir"`
	} `json:"cache,omitempty"`

	Auth struct {
		File string `json:"file"`
	} `json:"auth,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			Token:          jsonCfg.API.Token,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Cache: Cache{
			Disabled: jsonCfg.Cache.Disabled,
			TTL:      jsonTTL(jsonCfg.Cache.TTL),
			Dir:      jsonCfg.Cache.Dir,
		},
		Auth: Auth{
			File: jsonCfg.Auth.File,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

func jsonTTL(d *Duration) *time.Duration {
	if d == nil {
		return nil
	}
	ttl := time.Duration(*d)
	return &ttl
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
