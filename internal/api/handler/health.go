package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/venuepass/ticketing-api/internal/core/domain"
)

const readinessTimeout = 3 * time.Second

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// RolePinger checks that a role's credential set can reach the database.
type RolePinger interface {
	Ping(ctx context.Context, role domain.Role) error
}

// ReadinessHandler handles GET /health/ready. It pings both credential sets
// and, when the session backend is Redis, the Redis server.
type ReadinessHandler struct {
	db    RolePinger
	redis *redis.Client
}

// NewReadinessHandler builds a ReadinessHandler. rdb may be nil.
func NewReadinessHandler(db RolePinger, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{db: db, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	check := func(name string, err error) {
		if err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			return
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	check("mysql_user", h.db.Ping(ctx, domain.RoleUser))
	check("mysql_admin", h.db.Ping(ctx, domain.RoleAdmin))
	if h.redis != nil {
		check("redis", h.redis.Ping(ctx).Err())
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
