package mysql

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
)

// newFileProvider points both credential sets at one SQLite file so data
// survives the per-request connection being closed.
func newFileProvider(t *testing.T) *Provider {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickets.db")
	p, err := NewProvider(Config{Driver: "sqlite", UserDSN: path, AdminDSN: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	s, err := p.Acquire(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.(*Store).conn.ExecContext(context.Background(), `CREATE TABLE Users (
		UserID INTEGER PRIMARY KEY AUTOINCREMENT,
		FName  TEXT NOT NULL,
		LName  TEXT NOT NULL,
		Role   TEXT NOT NULL DEFAULT 'User'
	)`)
	require.NoError(t, err)
	return p
}

func TestProvider_RequiresBothDSNs(t *testing.T) {
	_, err := NewProvider(Config{Driver: "sqlite", UserDSN: "x.db"})
	require.Error(t, err)
}

func TestProvider_UnknownRoleGetsUserCredentials(t *testing.T) {
	p := newFileProvider(t)

	s, err := p.Acquire(context.Background(), domain.Role("root"))
	require.NoError(t, err)
	defer s.Close()
	require.Equal(t, domain.RoleUser, s.Role())
}

func TestProvider_RegisterUserIsNotDeduplicated(t *testing.T) {
	ctx := context.Background()
	p := newFileProvider(t)

	register := func() int64 {
		s, err := p.Acquire(ctx, domain.RoleUser)
		require.NoError(t, err)
		defer s.Close()
		id, err := s.RegisterUser(ctx, ports.RegisterUserInput{FName: "Bob", LName: "Das"})
		require.NoError(t, err)
		return id
	}

	first, second := register(), register()
	require.NotEqual(t, first, second)

	s, err := p.Acquire(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	defer s.Close()
	u, err := s.FindUserByFirstName(ctx, "Bob")
	require.NoError(t, err)
	require.Equal(t, first, u.UserID)
	require.Equal(t, domain.RoleUser, u.Role)
}

func TestProvider_BulkReadFailsWithoutPartialPayload(t *testing.T) {
	ctx := context.Background()
	p := newFileProvider(t)

	s, err := p.Acquire(ctx, domain.RoleUser)
	require.NoError(t, err)
	defer s.Close()

	// Users exists, Venue does not.
	data, err := s.BulkRead(ctx)
	require.Nil(t, data)
	require.ErrorIs(t, err, domain.ErrQueryFailed)
}

func TestProvider_ConnectFailure(t *testing.T) {
	dsn := DSN(DSNConfig{
		Host: "127.0.0.1", Port: 1, Database: "mini_project2",
		User: "app_user", ConnectTimeout: 200 * time.Millisecond,
	})
	p, err := NewProvider(Config{UserDSN: dsn, AdminDSN: dsn})
	require.NoError(t, err)
	defer p.Close()

	s, err := p.Acquire(context.Background(), domain.RoleUser)
	require.Nil(t, s)
	require.ErrorIs(t, err, domain.ErrConnectFailed)
}

func TestDSN(t *testing.T) {
	dsn := DSN(DSNConfig{Host: "db", Port: 3306, Database: "mini_project2", User: "app_admin", Password: "pw"})
	require.Contains(t, dsn, "app_admin:pw@tcp(db:3306)/mini_project2")
	require.Contains(t, dsn, "parseTime=true")
}
