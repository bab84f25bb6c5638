package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Banner handles GET /api/.
func (h *HealthHandler) Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Marketplace API running",
	})
}

// BrokerPinger is satisfied by the event publisher when a broker is configured.
type BrokerPinger interface {
	Ping(ctx context.Context) error
}

// HealthDependenciesHandler handles GET /health/ready, the readiness probe.
// Nil dependencies are not configured and reported as "disabled".
type HealthDependenciesHandler struct {
	mongo  *mongo.Database
	redis  *redis.Client
	broker BrokerPinger
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client, broker BrokerPinger) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		mongo:  db,
		redis:  rdb,
		broker: broker,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func check(err error) dependencyStatus {
	if err != nil {
		return dependencyStatus{Status: "unhealthy", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	disabled := dependencyStatus{Status: "disabled"}

	// --- MongoDB ping ---
	if h.mongo == nil {
		deps["mongodb"] = disabled
	} else {
		err := h.mongo.Client().Ping(ctx, nil)
		if err == nil {
			err = h.mongo.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		}
		deps["mongodb"] = check(err)
	}

	// --- Redis ping ---
	if h.redis == nil {
		deps["redis"] = disabled
	} else {
		deps["redis"] = check(h.redis.Ping(ctx).Err())
	}

	// --- Broker flush ---
	if h.broker == nil {
		deps["nats"] = disabled
	} else {
		deps["nats"] = check(h.broker.Ping(ctx))
	}

	healthy := true
	for _, d := range deps {
		if d.Status == "unhealthy" {
			healthy = false
		}
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
