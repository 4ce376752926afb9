package service

import (
	"context"
	"sync"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
)

type stubStore struct {
	role   domain.Role
	closed int

	bulkFn      func(ctx context.Context) (*ports.BulkData, error)
	analyticsFn func(ctx context.Context, venue string) (*ports.AnalyticsReport, error)
	findUserFn  func(ctx context.Context, fname string) (*domain.User, error)
	profileFn   func(ctx context.Context, userID int64) (*ports.Profile, error)
	registerFn  func(ctx context.Context, in ports.RegisterUserInput) (int64, error)
	bookFn      func(ctx context.Context, in ports.BookTicketInput) error
	cancelFn    func(ctx context.Context, eventID int64) error
	addStallFn  func(ctx context.Context, in ports.AddStallInput) error
}

func (s *stubStore) Role() domain.Role { return s.role }

func (s *stubStore) BulkRead(ctx context.Context) (*ports.BulkData, error) {
	return s.bulkFn(ctx)
}

func (s *stubStore) Analytics(ctx context.Context, venue string) (*ports.AnalyticsReport, error) {
	return s.analyticsFn(ctx, venue)
}

func (s *stubStore) FindUserByFirstName(ctx context.Context, fname string) (*domain.User, error) {
	return s.findUserFn(ctx, fname)
}

func (s *stubStore) Profile(ctx context.Context, userID int64) (*ports.Profile, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubStore) RegisterUser(ctx context.Context, in ports.RegisterUserInput) (int64, error) {
	return s.registerFn(ctx, in)
}

func (s *stubStore) BookTicket(ctx context.Context, in ports.BookTicketInput) error {
	return s.bookFn(ctx, in)
}

func (s *stubStore) CancelEvent(ctx context.Context, eventID int64) error {
	return s.cancelFn(ctx, eventID)
}

func (s *stubStore) AddStall(ctx context.Context, in ports.AddStallInput) error {
	return s.addStallFn(ctx, in)
}

func (s *stubStore) Close() error {
	s.closed++
	return nil
}

// stubProvider hands out the same store for every role and records which
// roles were requested.
type stubProvider struct {
	store    *stubStore
	err      error
	acquired []domain.Role
}

func (p *stubProvider) Acquire(_ context.Context, role domain.Role) (ports.RoleStore, error) {
	p.acquired = append(p.acquired, role)
	if p.err != nil {
		return nil, p.err
	}
	p.store.role = role
	return p.store, nil
}

type stubSessions struct {
	mu    sync.Mutex
	roles map[string]domain.Role
	err   error
}

func newStubSessions() *stubSessions {
	return &stubSessions{roles: make(map[string]domain.Role)}
}

func (s *stubSessions) Resolve(_ context.Context, identity string) (domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.roles[identity]; ok {
		return r, nil
	}
	return domain.RoleUser, nil
}

func (s *stubSessions) Set(_ context.Context, identity string, role domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.roles[identity] = role
	return nil
}
