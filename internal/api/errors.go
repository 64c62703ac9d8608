package api

import "errors"

var (
	// ErrRemoteUnavailable marks failures where the service could not be
	// reached or could not answer: transport errors, 5xx responses,
	// timeouts, and rate limiting. The cache treats these as "serve what
	// we have".
	ErrRemoteUnavailable = errors.New("taskdesk service unavailable")

	// ErrRemoteRejected marks requests the service received and refused.
	// Retrying without changing the request will not help.
	ErrRemoteRejected = errors.New("taskdesk service rejected the request")

	// Status-specific errors, wrapped alongside the category above.
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
)
