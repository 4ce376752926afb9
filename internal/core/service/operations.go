package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
)

type messageResponse struct {
	Message string `json:"message"`
}

type registerUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"UserID"`
	FName   string `json:"FName"`
	LName   string `json:"LName"`
}

// BulkRead returns every entity set in one payload.
func BulkRead() ports.Operation {
	return ports.Operation{
		Name:   "bulk_read",
		Access: ports.AccessCaller,
		Run: func(ctx context.Context, s ports.RoleStore) (*ports.Envelope, error) {
			data, err := s.BulkRead(ctx)
			if err != nil {
				return nil, err
			}
			return &ports.Envelope{Status: http.StatusOK, Body: data}, nil
		},
	}
}

// Analytics returns the admin report for venue.
func Analytics(venue string) ports.Operation {
	return ports.Operation{
		Name:   "analytics",
		Access: ports.AccessAdmin,
		Run: func(ctx context.Context, s ports.RoleStore) (*ports.Envelope, error) {
			report, err := s.Analytics(ctx, venue)
			if err != nil {
				return nil, err
			}
			return &ports.Envelope{Status: http.StatusOK, Body: report}, nil
		},
	}
}

// Login looks the caller up by first name and binds the stored role to the
// caller's identity.
func Login(fname string) ports.Operation {
	return ports.Operation{
		Name:   "login",
		Access: ports.AccessLogin,
		Run: func(ctx context.Context, s ports.RoleStore) (*ports.Envelope, error) {
			name := strings.TrimSpace(fname)
			if name == "" {
				return nil, domain.Invalid("FName is required")
			}
			user, err := s.FindUserByFirstName(ctx, name)
			if err != nil {
				return nil, err
			}
			return &ports.Envelope{Status: http.StatusOK, Body: user, SessionRole: user.Role}, nil
		},
	}
}

// RegisterUser creates a user. Resubmitting the same names creates another user.
func RegisterUser(in ports.RegisterUserInput) ports.Operation {
	return ports.Operation{
		Name:   "register_user",
		Access: ports.AccessCaller,
		Run: func(ctx context.Context, s ports.RoleStore) (*ports.Envelope, error) {
			id, err := s.RegisterUser(ctx, in)
			if err != nil {
				return nil, err
			}
			return &ports.Envelope{Status: http.StatusCreated, Body: registerUserResponse{
				Message: "User added successfully!",
				UserID:  id,
				FName:   in.FName,
				LName:   in.LName,
			}}, nil
		},
	}
}

// BookTicket books one ticket and records its payment atomically.
func BookTicket(in ports.BookTicketInput) ports.Operation {
	return ports.Operation{
		Name:   "book_ticket",
		Access: ports.AccessCaller,
		Run: func(ctx context.Context, s ports.RoleStore) (*ports.Envelope, error) {
			if err := s.BookTicket(ctx, in); err != nil {
				return nil, err
			}
			return &ports.Envelope{Status: http.StatusOK, Body: messageResponse{Message: "Ticket booked successfully!"}}, nil
		},
	}
}

// CancelEvent cancels an event. Only the Admin credential set holds the
// privilege; for a User connection the engine refuses the call.
func CancelEvent(eventID int64) ports.Operation {
	return ports.Operation{
		Name:   "cancel_event",
		Access: ports.AccessCaller,
		Run: func(ctx context.Context, s ports.RoleStore) (*ports.Envelope, error) {
			if err := s.CancelEvent(ctx, eventID); err != nil {
				return nil, err
			}
			return &ports.Envelope{Status: http.StatusOK, Body: messageResponse{Message: "Event cancelled successfully!"}}, nil
		},
	}
}

// AddStall registers a vendor stall. Privileges as for CancelEvent.
func AddStall(in ports.AddStallInput) ports.Operation {
	return ports.Operation{
		Name:   "add_stall",
		Access: ports.AccessCaller,
		Run: func(ctx context.Context, s ports.RoleStore) (*ports.Envelope, error) {
			if err := s.AddStall(ctx, in); err != nil {
				return nil, err
			}
			return &ports.Envelope{Status: http.StatusCreated, Body: messageResponse{Message: "Stall added successfully!"}}, nil
		},
	}
}

// MyProfile returns spending, ticket history and recommendations for a user.
func MyProfile(userID int64) ports.Operation {
	return ports.Operation{
		Name:   "my_profile",
		Access: ports.AccessCaller,
		Run: func(ctx context.Context, s ports.RoleStore) (*ports.Envelope, error) {
			profile, err := s.Profile(ctx, userID)
			if err != nil {
				return nil, err
			}
			return &ports.Envelope{Status: http.StatusOK, Body: profile}, nil
		},
	}
}
