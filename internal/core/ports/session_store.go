package ports

import (
	"context"

	"github.com/venuepass/ticketing-api/internal/core/domain"
)

// SessionStore maps a client identity to the role it last logged in as.
// Bindings are never removed.
type SessionStore interface {
	// Resolve returns the stored role, or domain.RoleUser when none exists.
	Resolve(ctx context.Context, identity string) (domain.Role, error)
	// Set overwrites the role bound to identity.
	Set(ctx context.Context, identity string, role domain.Role) error
}
