// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

// Package paginate implements the cursor pagination shared by the live
// list endpoints and the cached list commands: an opaque cursor walks a
// result set in stable page-sized steps, so output looks the same
// whether it came from the service or from the local cache.
package paginate

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the page size used when the caller asks for none.
	DefaultLimit = 50

	// MaxLimit caps the page size a caller may request.
	MaxLimit = 200

	// cursorTag versions the cursor format. Cursors from other sources
	// (or other versions of this format) are rejected, not misread.
	cursorTag = "offset:v1:"
)

// ErrBadCursor is returned for cursors this package did not produce.
var ErrBadCursor = errors.New("malformed pagination cursor")

// Page is one page of results plus the cursor for the next one.
// NextCursor is nil on the final page.
type Page[T any] struct {
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

// Slice pages through an already-materialized result set. An empty
// cursor starts from the beginning; limit is clamped to [1, MaxLimit]
// with DefaultLimit substituted for zero and negative values.
//
// The input order is the page order, so callers sort before paging.
// A cursor pointing past the end yields an empty final page.
func Slice[T any](items []T, cursor string, limit int) (Page[T], error) {
	offset := 0
	if cursor != "" {
		var err error
		if offset, err = decodeOffset(cursor); err != nil {
			return Page[T]{}, err
		}
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if offset >= len(items) {
		return Page[T]{Results: []T{}}, nil
	}

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	page := Page[T]{Results: items[offset:end]}
	if end < len(items) {
		next := encodeOffset(end)
		page.NextCursor = &next
	}
	return page, nil
}

func encodeOffset(offset int) string {
	return base64.URLEncoding.EncodeToString([]byte(cursorTag + strconv.Itoa(offset)))
}

func decodeOffset(cursor string) (int, error) {
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCursor, cursor)
	}

	rest, ok := strings.CutPrefix(string(raw), cursorTag)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadCursor, cursor)
	}

	offset, err := strconv.Atoi(rest)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadCursor, cursor)
	}
	return offset, nil
}
