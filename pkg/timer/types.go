// Package timer provides the durable timer store and worker infrastructure.
// Timers are rows in timer_jobs; firing survives process restarts because
// due jobs are claimed from the database, not from in-memory state.
package timer

import (
	"context"
	"errors"
	"time"

	"github.com/teambuh/slamon/ent"
)

// Sentinel errors for timer operations.
var (
	// ErrNoJobsAvailable indicates no due jobs are ready to claim.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrPermanent marks a handler failure that retrying cannot fix.
	// Jobs failing permanently are parked as failed immediately.
	ErrPermanent = errors.New("permanent job failure")
)

// Handler processes a single claimed timer job.
//
// Return values drive the job lifecycle:
//   - nil: job done, row deleted
//   - error wrapping ErrPermanent: row parked as failed
//   - any other error: job released back to scheduled with attempts+1,
//     parked as failed once attempts reach the configured maximum
type Handler interface {
	Handle(ctx context.Context, job *ent.TimerJob) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, job *ent.TimerJob) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, job *ent.TimerJob) error {
	return f(ctx, job)
}

// PoolHealth contains health information for one worker group.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	Group         string         `json:"group"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastRepair    time.Time      `json:"last_repair"`
	JobsRepaired  int            `json:"jobs_repaired"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
