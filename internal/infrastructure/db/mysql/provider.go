// Package mysql implements the role-scoped relational store: one credential
// set per role against the same logical database, with the engine's grants on
// each account acting as the authorization boundary.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	driver "github.com/go-sql-driver/mysql"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
	"github.com/venuepass/ticketing-api/internal/pkg/metrics"
)

const (
	defaultDriver         = "mysql"
	defaultConnectTimeout = 5 * time.Second
)

var sqlOpen = sql.Open

// Config holds one DSN per role. Both must point at the same logical database.
type Config struct {
	Driver       string
	UserDSN      string
	AdminDSN     string
	MaxOpenConns int
}

// DSNConfig describes one credential set for DSN.
type DSNConfig struct {
	Host           string
	Port           int
	Database       string
	User           string
	Password       string
	ConnectTimeout time.Duration
}

// DSN formats a go-sql-driver DSN. DATETIME columns are parsed into
// time.Time and the connect timeout bounds every dial.
func DSN(c DSNConfig) string {
	timeout := c.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	cfg := driver.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	cfg.DBName = c.Database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Timeout = timeout
	return cfg.FormatDSN()
}

// Provider hands out role-scoped connections.
//
// Each role owns a *sql.DB that keeps no idle connections, so the connection
// a request checks out is physically closed when the request releases it and
// is never handed to another request.
type Provider struct {
	pools map[domain.Role]*sql.DB
}

var _ ports.StoreProvider = (*Provider)(nil)

// NewProvider opens (lazily) the User and Admin pools.
func NewProvider(cfg Config) (*Provider, error) {
	drv := cfg.Driver
	if drv == "" {
		drv = defaultDriver
	}
	if cfg.UserDSN == "" || cfg.AdminDSN == "" {
		return nil, errors.New("mysql: both user and admin DSNs are required")
	}

	p := &Provider{pools: make(map[domain.Role]*sql.DB, 2)}
	for role, dsn := range map[domain.Role]string{
		domain.RoleUser:  cfg.UserDSN,
		domain.RoleAdmin: cfg.AdminDSN,
	} {
		db, err := sqlOpen(drv, dsn)
		if err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("mysql: open %s pool: %w", role, err)
		}
		db.SetMaxIdleConns(0)
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		p.pools[role] = db
	}
	return p, nil
}

// Acquire checks out a dedicated connection for role. Roles other than
// domain.RoleAdmin get the User credential set.
func (p *Provider) Acquire(ctx context.Context, role domain.Role) (ports.RoleStore, error) {
	role = domain.ParseRole(string(role))

	conn, err := p.pools[role].Conn(ctx)
	if err != nil {
		metrics.ConnectionFailuresTotal.WithLabelValues(string(role)).Inc()
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConnectFailed, role, err)
	}
	return newStore(conn, role), nil
}

// Ping checks that role's credential set can reach the database.
func (p *Provider) Ping(ctx context.Context, role domain.Role) error {
	return p.pools[domain.ParseRole(string(role))].PingContext(ctx)
}

// Close closes both pools.
func (p *Provider) Close() error {
	var errs []error
	for _, db := range p.pools {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
