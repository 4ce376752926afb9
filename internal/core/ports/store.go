package ports

import (
	"context"

	"github.com/venuepass/ticketing-api/internal/core/domain"
)

// Row is one result row keyed by column name, already normalised for JSON.
type Row = map[string]any

// Rows is a result set. Implementations return an empty, non-nil slice when
// a query matches nothing so it renders as [] rather than null.
type Rows []Row

// BulkData is the payload of the bulk read endpoint.
type BulkData struct {
	Users      Rows `json:"users"`
	Venues     Rows `json:"venues"`
	Events     Rows `json:"events"`
	Organisers Rows `json:"organisers"`
	Staff      Rows `json:"staff"`
	Security   Rows `json:"security"`
	Artists    Rows `json:"artists"`
	Lineup     Rows `json:"lineup"`
	Vendors    Rows `json:"vendors"`
	Stalls     Rows `json:"stalls"`
	// Tickets is always empty. Ticket rows are not exposed through the bulk
	// read; per-user history is served by the profile endpoint.
	Tickets Rows `json:"tickets"`
}

// AnalyticsReport is the payload of the admin analytics endpoint.
type AnalyticsReport struct {
	AvgPricePerEvent Rows `json:"avg_price_per_event"`
	TopTicketBuyers  Rows `json:"top_ticket_buyers"`
	VenueEvents      Rows `json:"venue_events"`
}

// Profile is the payload of the my_profile endpoint.
type Profile struct {
	UserID          int64   `json:"UserID"`
	TotalSpending   float64 `json:"total_spending"`
	Tickets         Rows    `json:"tickets"`
	Recommendations Rows    `json:"recommendations"`
}

// RegisterUserInput carries the fields of a new Users row.
type RegisterUserInput struct {
	FName string
	LName string
}

// BookTicketInput carries the arguments of the BookTicket procedure.
type BookTicketInput struct {
	UserID     int64
	EventID    int64
	TicketType string
	Price      float64
}

// AddStallInput carries the arguments of the AddStall procedure.
type AddStallInput struct {
	StallName string
	Type      string
	Rental    float64
	VendorID  int64
}

// RoleStore is a live database handle bound to one role's credentials. It is
// owned by a single request and must be released with Close exactly once.
type RoleStore interface {
	Role() domain.Role

	BulkRead(ctx context.Context) (*BulkData, error)
	Analytics(ctx context.Context, venue string) (*AnalyticsReport, error)
	FindUserByFirstName(ctx context.Context, fname string) (*domain.User, error)
	Profile(ctx context.Context, userID int64) (*Profile, error)

	// Writes. Each runs in its own transaction.
	RegisterUser(ctx context.Context, in RegisterUserInput) (int64, error)
	BookTicket(ctx context.Context, in BookTicketInput) error
	CancelEvent(ctx context.Context, eventID int64) error
	AddStall(ctx context.Context, in AddStallInput) error

	Close() error
}

// StoreProvider hands out role-scoped handles.
type StoreProvider interface {
	// Acquire opens a handle for role. Errors wrap domain.ErrConnectFailed.
	Acquire(ctx context.Context, role domain.Role) (RoleStore, error)
}
