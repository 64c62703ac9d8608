package config

import (
	"os"
	"path/filepath"
	"time"
)

// Built-in defaults applied underneath every other source.
const (
	// DefaultBaseURL is the production Taskdesk API endpoint.
	DefaultBaseURL = "https://api.taskdesk.io"

	// DefaultRequestTimeout bounds every outbound request.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultCacheTTL is how long cached data is served without a
	// refresh.
	DefaultCacheTTL = 60 * time.Second

	// DefaultLogLevel keeps the log file quiet unless something is off.
	DefaultLogLevel = "warn"
)

func defaultConfig() *Config {
	ttl := DefaultCacheTTL
	cacheDir := defaultCacheDir()

	var logFile string
	if cacheDir != "" {
		logFile = filepath.Join(cacheDir, "taskdesk.log")
	}

	return &Config{
		API: API{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Cache: Cache{
			TTL: &ttl,
			Dir: cacheDir,
		},
		Auth: Auth{
			File: defaultAuthFile(),
		},
		Log: Log{
			Level: DefaultLogLevel,
			File:  logFile,
		},
	}
}

// defaultCacheDir is the per-user state directory for the cache database
// and logs, e.g. ~/.cache/taskdesk on Linux.
func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "taskdesk")
}

// defaultConfigPath is the per-user config file location,
// e.g. ~/.config/taskdesk/config.json on Linux.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "taskdesk", "config.json")
}

// defaultAuthFile is the per-user credential file location,
// e.g. ~/.config/taskdesk/credentials.json on Linux.
func defaultAuthFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "taskdesk", "credentials.json")
}
