// Package session holds the process-local session store.
package session

import (
	"context"
	"sync"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/pkg/metrics"
)

// MemoryStore maps client identities to roles for the lifetime of the process.
//
// Entries are never evicted: every identity that ever logs in stays in the
// map until restart. Restarting resets every caller to domain.RoleUser.
type MemoryStore struct {
	mu    sync.RWMutex
	roles map[string]domain.Role
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{roles: make(map[string]domain.Role)}
}

// Resolve returns the role bound to identity, or domain.RoleUser.
func (s *MemoryStore) Resolve(_ context.Context, identity string) (domain.Role, error) {
	s.mu.RLock()
	role, ok := s.roles[identity]
	s.mu.RUnlock()
	if !ok {
		return domain.RoleUser, nil
	}
	return role, nil
}

// Set binds role to identity, replacing any previous binding.
func (s *MemoryStore) Set(_ context.Context, identity string, role domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[identity] = domain.ParseRole(string(role))
	metrics.SessionsTracked.Set(float64(s.lenLocked()))
	return nil
}

// Len reports how many identities have a bound role.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lenLocked()
}

func (s *MemoryStore) lenLocked() int {
	return len(s.roles)
}
