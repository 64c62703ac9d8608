// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

// Package auth persists the signed-in identity and drives the login,
// logout and status flows of the CLI.
//
// Credentials live in a mode-0600 JSON file under the user config
// directory. The [Service] keeps the local cache in step with the
// credential: logging into a different account wipes the cache, and
// logout clears it before the credential is removed so cached data
// never outlives the session that produced it.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/taskdesk/taskdesk-cli/internal/logger"
)

// Credentials is the persisted identity of the signed-in user.
type Credentials struct {
	Token    string    `json:"token"`
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name,omitempty"`
	SavedAt  time.Time `json:"saved_at"`
}

// FileStore reads and writes the credential file.
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore returns a credential store backed by the file at path.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Path returns the location of the credential file.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the saved credential. Returns ErrNotLoggedIn when the file
// does not exist.
func (f *FileStore) Load() (Credentials, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, ErrNotLoggedIn
		}
		return Credentials{}, fmt.Errorf("read credential file: %w", err)
	}

	var creds Credentials
	if err = json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("decode credential file: %w", err)
	}
	if creds.Token == "" {
		return Credentials{}, ErrNotLoggedIn
	}

	return creds, nil
}

// Save writes the credential with owner-only permissions. The write goes
// through a temp file and a rename so a crash cannot leave a truncated
// credential behind.
func (f *FileStore) Save(creds Credentials) error {
	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credential dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	if err = os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace credential file: %w", err)
	}

	return nil
}

// Delete removes the credential file. A missing file is not an error.
func (f *FileStore) Delete() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}
