package app

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
	"github.com/venuepass/ticketing-api/internal/infrastructure/db/mysql"
	"github.com/venuepass/ticketing-api/internal/infrastructure/db/redis"
	"github.com/venuepass/ticketing-api/internal/infrastructure/session"
	"github.com/venuepass/ticketing-api/internal/pkg/config"
)

type Infra struct {
	Provider *mysql.Provider
	Sessions ports.SessionStore
	// Redis is nil unless SESSION_BACKEND=redis.
	Redis *goredis.Client
}

func setupInfra(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Infra, error) {
	provider, err := mysql.NewProvider(mysql.Config{
		UserDSN:      mysql.DSN(dsnConfig(cfg.DB, cfg.DB.User)),
		AdminDSN:     mysql.DSN(dsnConfig(cfg.DB, cfg.DB.Admin)),
		MaxOpenConns: cfg.DB.MaxOpenConns,
	})
	if err != nil {
		return nil, err
	}

	for _, role := range []domain.Role{domain.RoleUser, domain.RoleAdmin} {
		if err := provider.Ping(ctx, role); err != nil {
			log.Warn().Err(err).Str("role", string(role)).Msg("database not reachable yet")
		}
	}

	infra := &Infra{Provider: provider}

	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			_ = provider.Close()
			return nil, fmt.Errorf("session backend: %w", err)
		}
		infra.Redis = client
		infra.Sessions = redis.NewSessionStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis session store ready")
	default:
		infra.Sessions = session.NewMemoryStore()
		log.Info().Msg("in-memory session store ready")
	}

	return infra, nil
}

// Close releases the database pools and the Redis client.
func (i *Infra) Close() error {
	var errs []error
	if err := i.Provider.Close(); err != nil {
		errs = append(errs, err)
	}
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func dsnConfig(db config.DBConfig, cred config.Credentials) mysql.DSNConfig {
	return mysql.DSNConfig{
		Host:           db.Host,
		Port:           db.Port,
		Database:       db.Name,
		User:           cred.Name,
		Password:       cred.Password,
		ConnectTimeout: db.ConnectTimeout,
	}
}
