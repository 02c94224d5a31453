package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teambuh/slamon/pkg/database"
	"github.com/teambuh/slamon/pkg/timer"
	"github.com/teambuh/slamon/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// SystemHealthResponse is returned by GET /api/v1/system/health.
type SystemHealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
	Pools    []*timer.PoolHealth    `json:"worker_pools,omitempty"`
}

// healthHandler handles GET /health. Only the process's own dependencies
// are checked: an unhealthy Telegram API must not make the orchestrator
// restart the service.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.db.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   healthStatusUnhealthy,
			Version:  version.GitCommit,
			Database: dbHealth,
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, &HealthResponse{
		Status:   healthStatusHealthy,
		Version:  version.GitCommit,
		Database: dbHealth,
	})
}

// readyHandler handles GET /ready: a cheap liveness answer once routing
// is up.
func (s *Server) readyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// systemHealthHandler handles GET /api/v1/system/health with per-pool
// worker detail.
func (s *Server) systemHealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy
	dbHealth, err := s.db.Health(ctx)
	if err != nil {
		status = healthStatusUnhealthy
	}

	pools := make([]*timer.PoolHealth, 0, len(s.pools))
	for _, pool := range s.pools {
		health := pool.Health()
		pools = append(pools, health)
		if !health.IsHealthy && status == healthStatusHealthy {
			status = healthStatusDegraded
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, &SystemHealthResponse{
		Status:   status,
		Version:  version.GitCommit,
		Database: dbHealth,
		Pools:    pools,
	})
}
