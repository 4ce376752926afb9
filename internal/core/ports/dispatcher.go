package ports

import (
	"context"

	"github.com/venuepass/ticketing-api/internal/core/domain"
)

// Access describes which role an operation requires and which credential set
// it runs under.
type Access int

const (
	// AccessCaller runs under the caller's resolved role.
	AccessCaller Access = iota
	// AccessAdmin requires the Admin role and runs under it.
	AccessAdmin
	// AccessLogin always runs under the Admin credential set, whatever the
	// caller's role: no role is known until login succeeds.
	AccessLogin
)

func (a Access) String() string {
	switch a {
	case AccessAdmin:
		return "admin"
	case AccessLogin:
		return "login"
	default:
		return "caller"
	}
}

// Envelope is the outcome of a successful operation.
type Envelope struct {
	Status int
	Body   any
	// SessionRole, when set, is bound to the caller's identity after the
	// operation succeeds.
	SessionRole domain.Role
}

// Operation is one entry of the dispatcher's operation set.
type Operation struct {
	Name   string
	Access Access
	Run    func(ctx context.Context, store RoleStore) (*Envelope, error)
}

// Call is a single dispatch request.
type Call struct {
	Identity string
	Role     domain.Role
	Op       Operation
}

// Dispatcher executes operations against a role-scoped store.
type Dispatcher interface {
	Dispatch(ctx context.Context, call Call) (*Envelope, error)
}
