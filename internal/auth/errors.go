// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package auth

import "errors"

// ErrNotLoggedIn is returned when no credential is saved.
var ErrNotLoggedIn = errors.New("not logged in")
