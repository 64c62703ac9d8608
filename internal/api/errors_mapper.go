package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	// 408 and 429 behave like outages: the request was fine, the
	// service just cannot take it right now.
	if code >= http.StatusInternalServerError ||
		code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: http %d: %s", ErrRemoteUnavailable, code, body)
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrRemoteRejected, ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrRemoteRejected, ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrRemoteRejected, ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrRemoteRejected, ErrNotFound, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteRejected, code, body)
	}
}

// transportErr marks a request that never produced an HTTP response.
func transportErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrRemoteUnavailable, err)
}
