// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/taskdesk/taskdesk-cli/internal/api"
	"github.com/taskdesk/taskdesk-cli/internal/cache"
	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/models"
)

// Service ties the credential store, the remote API and the local cache
// together for the auth commands.
type Service struct {
	creds  *FileStore
	client api.Client
	store  *cache.Store
	log    *logger.Logger
}

// NewService wires an auth service. store may be nil when the cache is
// disabled or unavailable; cache bookkeeping is then skipped.
func NewService(creds *FileStore, client api.Client, store *cache.Store, log *logger.Logger) *Service {
	return &Service{creds: creds, client: client, store: store, log: log}
}

// Login verifies the token against the service and saves it. When the
// cache holds data from a different account it is wiped before the new
// credential is written, so one account can never read another's tasks.
func (s *Service) Login(ctx context.Context, token string) (models.User, error) {
	s.client.SetToken(token)

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("verify token: %w", err)
	}

	if err = s.adoptAccount(ctx, user.ID); err != nil {
		return models.User{}, err
	}

	creds := Credentials{
		Token:    token,
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		SavedAt:  time.Now(),
	}
	if err = s.creds.Save(creds); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// adoptAccount prepares the local cache for userID. Data cached for a
// different account is cleared first.
func (s *Service) adoptAccount(ctx context.Context, userID string) error {
	if s.store == nil {
		return nil
	}

	cached, err := s.store.CurrentUserID(ctx)
	if err != nil {
		return fmt.Errorf("read cached account: %w", err)
	}
	if cached != "" && cached != userID {
		s.log.Info().
			Str("func", "auth.Service.adoptAccount").
			Msg("cache belongs to a different account, clearing")
		if err = s.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear cache of previous account: %w", err)
		}
	}

	if err = s.store.SetCurrentUserID(ctx, userID); err != nil {
		return fmt.Errorf("record cached account: %w", err)
	}
	return nil
}

// Logout clears the local cache and then removes the credential. The
// clear runs first and a failure aborts the logout, so cached data is
// never left behind without the credential that scoped it.
func (s *Service) Logout(ctx context.Context) error {
	if _, err := s.creds.Load(); err != nil {
		return err
	}

	if s.store != nil {
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
	}

	return s.creds.Delete()
}

// Status re-verifies the saved credential against the service and
// returns the fresh account profile. ErrNotLoggedIn when no credential
// is saved; remote errors pass through so the caller can distinguish a
// revoked token from an unreachable service.
func (s *Service) Status(ctx context.Context) (models.User, error) {
	creds, err := s.creds.Load()
	if err != nil {
		return models.User{}, err
	}

	s.client.SetToken(creds.Token)
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("verify saved token: %w", err)
	}
	return user, nil
}

// Credentials returns the saved credential without touching the network.
func (s *Service) Credentials() (Credentials, error) {
	return s.creds.Load()
}
