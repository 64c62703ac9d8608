package cache

import "errors"

var (
	// ErrNotFound is returned when a requested entity is not in the cache.
	ErrNotFound = errors.New("entity not found in cache")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("cache store is closed")

	// ErrDisabled is returned by explicit refreshes when the cache is
	// turned off in configuration.
	ErrDisabled = errors.New("cache is disabled")

	errNoDue = errors.New("task has no due date")
)
