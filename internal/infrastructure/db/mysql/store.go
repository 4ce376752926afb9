package mysql

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
)

// Store is a single checked-out connection bound to one role. It belongs to
// one request and is released with Close.
type Store struct {
	conn *sql.Conn
	role domain.Role

	closeOnce sync.Once
	closeErr  error
}

var _ ports.RoleStore = (*Store)(nil)

func newStore(conn *sql.Conn, role domain.Role) *Store {
	return &Store{conn: conn, role: role}
}

func (s *Store) Role() domain.Role { return s.role }

// Close returns the connection. Later calls are no-ops.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

// BulkRead runs the fixed read set in order. The first failing query aborts
// the whole read; no partial payload is returned.
func (s *Store) BulkRead(ctx context.Context) (*ports.BulkData, error) {
	data := &ports.BulkData{Tickets: ports.Rows{}}

	steps := []struct {
		name  string
		query string
		dst   *ports.Rows
	}{
		{"users", qUsers, &data.Users},
		{"venues", qVenues, &data.Venues},
		{"events", qEvents, &data.Events},
		{"organisers", qOrganisers, &data.Organisers},
		{"staff", qStaff, &data.Staff},
		{"security", qSecurity, &data.Security},
		{"artists", qArtists, &data.Artists},
		{"lineup", qLineup, &data.Lineup},
		{"vendors", qVendors, &data.Vendors},
		{"stalls", qStalls, &data.Stalls},
	}
	for _, step := range steps {
		rows, err := s.query(ctx, "bulk_read."+step.name, step.query)
		if err != nil {
			return nil, err
		}
		*step.dst = rows
	}
	return data, nil
}

// Analytics runs the three admin reports. Any failure aborts the report.
func (s *Store) Analytics(ctx context.Context, venue string) (*ports.AnalyticsReport, error) {
	avg, err := s.query(ctx, "analytics.avg_price", qAvgPricePerEvent)
	if err != nil {
		return nil, err
	}
	top, err := s.query(ctx, "analytics.top_buyers", qTopTicketBuyers)
	if err != nil {
		return nil, err
	}
	venueEvents, err := s.query(ctx, "analytics.venue_events", qVenueEvents, venue)
	if err != nil {
		return nil, err
	}
	return &ports.AnalyticsReport{
		AvgPricePerEvent: avg,
		TopTicketBuyers:  top,
		VenueEvents:      venueEvents,
	}, nil
}

// FindUserByFirstName returns the first Users row with the given FName.
func (s *Store) FindUserByFirstName(ctx context.Context, fname string) (*domain.User, error) {
	var (
		u    domain.User
		role sql.NullString
	)
	err := s.conn.QueryRowContext(ctx, qUserByFirstName, fname).Scan(&u.UserID, &u.FName, &u.LName, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, domain.QueryFailed("find_user", err)
	}
	u.Role = domain.ParseRole(role.String)
	return &u, nil
}

// Profile assembles spending, ticket history and recommendations for userID.
// These are plain reads and run outside a transaction.
func (s *Store) Profile(ctx context.Context, userID int64) (*ports.Profile, error) {
	var total sql.NullFloat64
	if err := s.conn.QueryRowContext(ctx, qTotalSpending, userID).Scan(&total); err != nil {
		return nil, domain.QueryFailed("profile.total_spending", err)
	}
	history, err := s.query(ctx, "profile.tickets", qTicketHistory, userID)
	if err != nil {
		return nil, err
	}
	recs, err := s.query(ctx, "profile.recommendations", qRecommendations, userID, domain.MaxRecommendations)
	if err != nil {
		return nil, err
	}
	return &ports.Profile{
		UserID:          userID,
		TotalSpending:   total.Float64,
		Tickets:         history,
		Recommendations: recs,
	}, nil
}

// RegisterUser inserts a Users row and returns its generated id. Identical
// submissions create distinct rows.
func (s *Store) RegisterUser(ctx context.Context, in ports.RegisterUserInput) (int64, error) {
	var id int64
	err := withTx(ctx, s.conn, "register_user", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, qInsertUser, in.FName, in.LName)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// BookTicket calls the BookTicket procedure, which inserts the ticket and its
// payment transaction together.
func (s *Store) BookTicket(ctx context.Context, in ports.BookTicketInput) error {
	return withTx(ctx, s.conn, "book_ticket", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, qBookTicket,
			in.UserID, in.EventID, in.TicketType, in.Price, domain.DefaultPaymentMethod)
		return err
	})
}

// CancelEvent calls the CancelEvent procedure. Accounts without EXECUTE on it
// are refused by the engine and the refusal comes back as a rejection.
func (s *Store) CancelEvent(ctx context.Context, eventID int64) error {
	return withTx(ctx, s.conn, "cancel_event", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, qCancelEvent, eventID)
		return err
	})
}

// AddStall calls the AddStall procedure.
func (s *Store) AddStall(ctx context.Context, in ports.AddStallInput) error {
	return withTx(ctx, s.conn, "add_stall", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, qAddStall, in.StallName, in.Type, in.Rental, in.VendorID)
		return err
	})
}

func (s *Store) query(ctx context.Context, op, query string, args ...any) (ports.Rows, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.QueryFailed(op, err)
	}
	defer func() { _ = rows.Close() }()

	out, err := scanRows(rows)
	if err != nil {
		return nil, domain.QueryFailed(op, err)
	}
	return out, nil
}
