// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package config

import (
	"time"
)

// Config is the top-level configuration container for the taskdesk client.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All env lookups additionally carry the global TASKDESK_ prefix, so the
// base URL for example is read from TASKDESK_API_BASE_URL.
type Config struct {
	// API holds settings for the remote Taskdesk service connection.
	API API `envPrefix:"API_"`

	// Cache holds settings for the local sync cache.
	Cache Cache `envPrefix:"CACHE_"`

	// Auth holds settings for local credential storage.
	Auth Auth `envPrefix:"AUTH_"`

	// Log holds diagnostic logging settings.
	Log Log `envPrefix:"LOG_"`

	// File is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables.
	// Env: TASKDESK_CONFIG
	File string `env:"CONFIG"`
}

// API holds connection settings for the remote Taskdesk service.
type API struct {
	// BaseURL is the root URL of the service API
	// (e.g. "https://api.taskdesk.io").
	// Env: TASKDESK_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is an API token that, when set, takes precedence over the
	// credential saved by `taskdesk auth login`.
	// Env: TASKDESK_API_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request before the client cancels it (e.g. "30s").
	// Env: TASKDESK_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds settings for the local sync cache.
type Cache struct {
	// Disabled turns the local cache off entirely. Every command then
	// talks to the service directly.
	// Env: TASKDESK_CACHE_DISABLED
	Disabled bool `env:"DISABLED"`

	// TTL is how long cached data is considered fresh. A read within
	// the TTL is served locally without any network traffic; an explicit
	// zero means every read refreshes first. The pointer distinguishes
	// "unset, use the default" from that explicit zero across the merge.
	// Env: TASKDESK_CACHE_TTL
	TTL *time.Duration `env:"TTL"`

	// Dir is the directory holding the cache database.
	// Env: TASKDESK_CACHE_DIR
	Dir string `env:"DIR"`
}

// Auth holds settings for local credential storage.
type Auth struct {
	// File is the path of the credential file written by
	// `taskdesk auth login`.
	// Env: TASKDESK_AUTH_FILE
	File string `env:"FILE"`
}

// Log holds diagnostic logging settings.
type Log struct {
	// Level is the minimum level written to the log file
	// ("debug", "info", "warn", "error").
	// Env: TASKDESK_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Empty disables logging.
	// Env: TASKDESK_LOG_FILE
	File string `env:"FILE"`
}

// Load assembles, merges, and validates the client configuration.
//
// fileOverride, when non-empty, names the JSON config file to use and must
// exist. Otherwise the path is taken from TASKDESK_CONFIG, falling back to
// the per-user default location, either of which may be absent.
//
// Sources are merged field by field with the following priority (highest
// first): environment variables, JSON file, defaults.
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func Load(fileOverride string) (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON(fileOverride).
		withDefaults().
		build()
}
