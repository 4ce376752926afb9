package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
)

type stubDispatcher struct {
	calls      []ports.Call
	dispatchFn func(ctx context.Context, call ports.Call) (*ports.Envelope, error)
}

func (s *stubDispatcher) Dispatch(ctx context.Context, call ports.Call) (*ports.Envelope, error) {
	s.calls = append(s.calls, call)
	return s.dispatchFn(ctx, call)
}

func okDispatcher(status int, body any) *stubDispatcher {
	return &stubDispatcher{
		dispatchFn: func(context.Context, ports.Call) (*ports.Envelope, error) {
			return &ports.Envelope{Status: status, Body: body}, nil
		},
	}
}

// newJSONContext builds a context as the Session middleware would leave it.
func newJSONContext(method, path, body string, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", "10.0.0.1")
	c.Set("role", role)
	return c, rec
}

