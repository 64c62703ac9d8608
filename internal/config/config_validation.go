// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [Config] satisfies all client
// invariants before it is used at startup. Validation runs before the
// cache or the API client are constructed, so a broken configuration can
// never produce a half-working session.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping one of the package sentinel errors otherwise.
func (cfg *Config) validate() error {
	if err := validateBaseURL(cfg.API.BaseURL); err != nil {
		return err
	}

	if cfg.API.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s",
			ErrInvalidAPIConfig, cfg.API.RequestTimeout)
	}

	if cfg.Cache.TTL == nil || *cfg.Cache.TTL < 0 {
		return fmt.Errorf("%w: ttl must not be negative", ErrInvalidCacheConfig)
	}

	if cfg.Cache.Dir == "" {
		return fmt.Errorf("%w: cache directory is not set", ErrInvalidCacheConfig)
	}

	if cfg.Auth.File == "" {
		return fmt.Errorf("%w: credential file path is not set", ErrInvalidAuthConfig)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidLogConfig, cfg.Log.Level)
	}

	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: base url is not set", ErrInvalidAPIConfig)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: base url: %v", ErrInvalidAPIConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base url %q must be http(s) with a host", ErrInvalidAPIConfig, raw)
	}

	return nil
}
