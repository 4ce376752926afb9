package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
)

func TestBookingHandler_BookTicket(t *testing.T) {
	stub := okDispatcher(http.StatusOK, map[string]string{"message": "Ticket booked successfully!"})
	h := NewBookingHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/book_ticket",
		`{"UserID":7,"EventID":3,"TicketType":"VIP","Price":2500.5}`, domain.RoleUser)
	if err := h.BookTicket(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := stub.calls[0].Op.Name; got != "book_ticket" {
		t.Fatalf("unexpected operation %s", got)
	}
}

func TestBookingHandler_BookTicket_RejectsBeforeDispatch(t *testing.T) {
	cases := map[string]string{
		"missing price":   `{"UserID":7,"EventID":3,"TicketType":"VIP"}`,
		"missing user":    `{"EventID":3,"TicketType":"VIP","Price":10}`,
		"wrong type":      `{"UserID":"seven","EventID":3,"TicketType":"VIP","Price":10}`,
		"negative price":  `{"UserID":7,"EventID":3,"TicketType":"VIP","Price":-1}`,
		"zero event":      `{"UserID":7,"EventID":0,"TicketType":"VIP","Price":10}`,
		"malformed json":  `{"UserID":7,`,
		"empty type":      `{"UserID":7,"EventID":3,"TicketType":"","Price":10}`,
	}
	for name, body := range cases {
		stub := &stubDispatcher{}
		h := NewBookingHandler(stub)
		c, _ := newJSONContext(http.MethodPost, "/api/book_ticket", body, domain.RoleUser)

		if err := h.BookTicket(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
		if len(stub.calls) != 0 {
			t.Fatalf("%s: dispatcher must not be called", name)
		}
	}
}

func TestBookingHandler_CancelEvent_RejectedForUser(t *testing.T) {
	engineMsg := "execute command denied to user 'app_user'@'%' for routine 'mini_project2.CancelEvent'"
	stub := &stubDispatcher{
		dispatchFn: func(_ context.Context, call ports.Call) (*ports.Envelope, error) {
			if call.Role != domain.RoleUser {
				t.Fatalf("expected caller role User, got %s", call.Role)
			}
			return nil, domain.Rejected("cancel_event", errors.New(engineMsg))
		},
	}
	h := NewBookingHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/api/cancel_event", `{"EventID":3}`, domain.RoleUser)
	err := h.CancelEvent(c)
	if !errors.Is(err, domain.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if err.Error() != engineMsg {
		t.Fatalf("expected engine message verbatim, got %q", err.Error())
	}
}

func TestBookingHandler_AddStall(t *testing.T) {
	stub := okDispatcher(http.StatusCreated, map[string]string{"message": "Stall added successfully!"})
	h := NewBookingHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/add_stall",
		`{"StallName":"Chai Point","Type":"Food","Rental":1500,"VendorID":2}`, domain.RoleAdmin)
	if err := h.AddStall(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := stub.calls[0].Role; got != domain.RoleAdmin {
		t.Fatalf("expected Admin role forwarded, got %s", got)
	}
}

func TestBookingHandler_MyProfile(t *testing.T) {
	stub := okDispatcher(http.StatusOK, &ports.Profile{UserID: 7, Tickets: ports.Rows{}, Recommendations: ports.Rows{}})
	h := NewBookingHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/my_profile", `{"UserID":7}`, domain.RoleUser)
	if err := h.MyProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"UserID":7,"total_spending":0,"tickets":[],"recommendations":[]}`+"\n" {
		t.Fatalf("unexpected body %s", got)
	}
}
