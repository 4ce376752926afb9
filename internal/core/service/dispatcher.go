package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
	"github.com/venuepass/ticketing-api/internal/pkg/metrics"
)

// Dispatcher runs one operation per call against a connection scoped to the
// caller's role.
//
// Admin-only operations are refused here before any connection is opened.
// The same operations would also be refused by the engine for a User
// connection, so neither layer relies on the other.
type Dispatcher struct {
	sessions ports.SessionStore
	stores   ports.StoreProvider
	timeout  time.Duration
	log      zerolog.Logger
}

var _ ports.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher returns a Dispatcher. A positive timeout bounds every
// operation including connection acquisition.
func NewDispatcher(sessions ports.SessionStore, stores ports.StoreProvider, timeout time.Duration, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sessions: sessions,
		stores:   stores,
		timeout:  timeout,
		log:      log,
	}
}

// Dispatch executes call.Op. The acquired connection is released on every
// path, exactly once.
func (d *Dispatcher) Dispatch(ctx context.Context, call ports.Call) (env *ports.Envelope, err error) {
	op := call.Op
	log := d.log.With().
		Str("operation", op.Name).
		Stringer("access", op.Access).
		Str("identity", call.Identity).
		Str("role", string(call.Role)).
		Logger()

	start := time.Now()
	defer func() {
		metrics.OperationsTotal.WithLabelValues(op.Name, outcome(err)).Inc()
		metrics.OperationDuration.WithLabelValues(op.Name).Observe(time.Since(start).Seconds())
	}()

	if op.Access == ports.AccessAdmin && call.Role != domain.RoleAdmin {
		log.Info().Msg("admin operation refused")
		return nil, domain.ErrForbidden
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	connRole := connectionRole(op.Access, call.Role)
	store, err := d.stores.Acquire(ctx, connRole)
	if err != nil {
		log.Error().Err(err).Str("conn_role", string(connRole)).Msg("connection acquisition failed")
		if !errors.Is(err, domain.ErrConnectFailed) {
			err = fmt.Errorf("%w: %v", domain.ErrConnectFailed, err)
		}
		return nil, err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("connection release failed")
		}
	}()

	log.Debug().Str("conn_role", string(connRole)).Msg("dispatching")

	env, err = op.Run(ctx, store)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRejected):
			log.Warn().Err(err).Msg("write rejected by backing store")
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUserNotFound):
			log.Debug().Err(err).Msg("operation refused")
		default:
			log.Error().Err(err).Msg("operation failed")
		}
		return nil, err
	}

	if env.SessionRole != "" {
		if err := d.sessions.Set(ctx, call.Identity, env.SessionRole); err != nil {
			log.Error().Err(err).Msg("session update failed")
			return nil, fmt.Errorf("bind session: %w", err)
		}
		log.Info().Str("session_role", string(env.SessionRole)).Msg("session bound")
	}
	return env, nil
}

func connectionRole(access ports.Access, caller domain.Role) domain.Role {
	switch access {
	case ports.AccessAdmin, ports.AccessLogin:
		return domain.RoleAdmin
	default:
		return domain.ParseRole(string(caller))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrConnectFailed):
		return "connect_failed"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrRejected):
		return "rejected"
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
