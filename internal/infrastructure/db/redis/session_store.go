package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/venuepass/ticketing-api/internal/core/domain"
)

const sessionPrefix = "session:role:"

// SessionStore keeps identity → role bindings in Redis so several API
// processes can share them. Keys are written without expiry, matching the
// in-memory store's no-eviction contract.
//
// Key format: session:role:<identity>
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Resolve returns the role bound to identity, or domain.RoleUser when the key
// is absent. On a Redis failure it still returns domain.RoleUser alongside the
// error so callers that ignore the error fail closed.
func (s *SessionStore) Resolve(ctx context.Context, identity string) (domain.Role, error) {
	val, err := s.client.Get(ctx, s.key(identity)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.RoleUser, nil
	}
	if err != nil {
		return domain.RoleUser, fmt.Errorf("session resolve: %w", err)
	}
	return domain.ParseRole(val), nil
}

// Set binds role to identity with no expiry.
func (s *SessionStore) Set(ctx context.Context, identity string, role domain.Role) error {
	if err := s.client.Set(ctx, s.key(identity), string(domain.ParseRole(string(role))), 0).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *SessionStore) key(identity string) string {
	return sessionPrefix + identity
}
