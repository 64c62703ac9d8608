package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid. A validation failure is
// fatal: the client refuses to start rather than run half-configured.
var (
	// ErrInvalidAPIConfig indicates invalid remote service settings
	// (for example, an unparseable base URL or non-positive timeout).
	ErrInvalidAPIConfig = errors.New("invalid api configuration")
	// ErrInvalidCacheConfig indicates invalid local cache settings
	// (for example, a negative TTL or missing cache directory).
	ErrInvalidCacheConfig = errors.New("invalid cache configuration")
	// ErrInvalidAuthConfig indicates invalid credential storage settings.
	ErrInvalidAuthConfig = errors.New("invalid auth configuration")
	// ErrInvalidLogConfig indicates invalid logging settings
	// (for example, an unknown log level).
	ErrInvalidLogConfig = errors.New("invalid log configuration")
)
