package http

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/qvema/qvema-api/internal/infrastructure/http/handlers"
)

// RegisterProbes mounts the liveness and readiness endpoints. They sit
// outside authentication so orchestrators can reach them. rdb may be nil.
func RegisterProbes(e *echo.Echo, db handlers.DBPinger, rdb *redis.Client) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
}
