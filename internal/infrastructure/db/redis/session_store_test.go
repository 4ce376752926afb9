package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/venuepass/ticketing-api/internal/core/domain"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func TestSessionStore_DefaultsToUser(t *testing.T) {
	s, _ := newTestStore(t)

	role, err := s.Resolve(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, role)
}

func TestSessionStore_SetResolve(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	require.NoError(t, s.Set(ctx, "10.0.0.1", domain.RoleAdmin))

	role, err := s.Resolve(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, role)

	require.Equal(t, "Admin", mustGet(t, mr, "session:role:10.0.0.1"))
	require.Zero(t, mr.TTL("session:role:10.0.0.1"), "session keys must not expire")
}

func TestSessionStore_ResolveFailsClosed(t *testing.T) {
	s, mr := newTestStore(t)
	mr.Close()

	role, err := s.Resolve(context.Background(), "10.0.0.1")
	require.Error(t, err)
	require.Equal(t, domain.RoleUser, role)
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}
