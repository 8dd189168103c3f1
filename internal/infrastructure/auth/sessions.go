// Package auth issues and resolves bearer session tokens. Tokens are
// opaque random identifiers held in a TTL store, so a restart or an
// expired TTL invalidates them without any persistence.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/Evowe/baseball-stats-api/internal/domain/account"
	"github.com/Evowe/baseball-stats-api/internal/platform/cache"
)

type SessionStore struct {
	store *cache.Store
}

func NewSessionStore(store *cache.Store) *SessionStore {
	return &SessionStore{store: store}
}

// Issue creates a new session for the principal and returns its token.
func (s *SessionStore) Issue(ctx context.Context, principal account.Principal) string {
	token := uuid.NewString()
	s.store.Set(ctx, token, principal)
	return token
}

// Resolve maps a bearer token back to its principal. An unknown or
// expired token resolves to false, never an error.
func (s *SessionStore) Resolve(ctx context.Context, token string) (account.Principal, bool) {
	value, ok := s.store.Get(ctx, token)
	if !ok {
		return account.Principal{}, false
	}

	principal, ok := value.(account.Principal)
	if !ok {
		return account.Principal{}, false
	}
	return principal, true
}

// Revoke drops the session, logging the principal out.
func (s *SessionStore) Revoke(ctx context.Context, token string) {
	s.store.Delete(ctx, token)
}
