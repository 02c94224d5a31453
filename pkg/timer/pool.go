package timer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/config"
)

// repairState tracks stale-claim repair metrics (thread-safe).
type repairState struct {
	mu           sync.Mutex
	lastRepair   time.Time
	jobsRepaired int
}

// Pool manages a group of workers that all handle the same job types with
// the same handler. Separate groups (SLA timers, escalations, delivery,
// surveys, reconciliation) run as separate pools so a slow group cannot
// starve the others.
type Pool struct {
	group    string
	podID    string
	store    *Store
	config   *config.WorkerConfig
	types    []timerjob.JobType
	handler  Handler
	count    int
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	repair repairState
}

// NewPool creates a worker pool for one job group. count overrides the
// configured worker count when positive (the reconciliation group runs
// with a single worker).
func NewPool(group, podID string, store *Store, cfg *config.WorkerConfig, types []timerjob.JobType, handler Handler, count int) *Pool {
	if count <= 0 {
		count = cfg.WorkerCount
	}
	return &Pool{
		group:   group,
		podID:   podID,
		store:   store,
		config:  cfg,
		types:   types,
		handler: handler,
		count:   count,
		workers: make([]*Worker, 0, count),
		stopCh:  make(chan struct{}),
	}
}

// Start spawns worker goroutines and the stale-claim repair background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call",
			"group", p.group, "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting timer worker pool",
		"group", p.group, "pod_id", p.podID, "worker_count", p.count)

	for i := 0; i < p.count; i++ {
		workerID := fmt.Sprintf("%s-%s-%d", p.podID, p.group, i)
		worker := NewWorker(workerID, p.podID, p.store, p.config, p.types, p.handler)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runStaleClaimRepair(ctx)
	}()

	slog.Info("Timer worker pool started", "group", p.group)
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current jobs before exiting (graceful shutdown).
func (p *Pool) Stop() {
	slog.Info("Stopping timer worker pool", "group", p.group)

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Timer worker pool stopped", "group", p.group)
}

// runStaleClaimRepair periodically releases jobs stuck in running.
// All pods run this independently; the update is idempotent.
func (p *Pool) runStaleClaimRepair(ctx context.Context) {
	ticker := time.NewTicker(p.config.StaleClaimInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			n, err := p.store.RepairStaleClaims(ctx, p.config.StaleClaimThreshold)
			if err != nil {
				slog.Error("Stale claim repair failed", "group", p.group, "error", err)
				continue
			}
			p.repair.mu.Lock()
			p.repair.lastRepair = time.Now()
			p.repair.jobsRepaired += n
			p.repair.mu.Unlock()
		}
	}
}

// Health returns the current health status of the pool.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.store.Depth(ctx, p.types...)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"group", p.group, "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: unreachable DB means not healthy.
	dbHealthy := errQ == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.repair.mu.Lock()
	lastRepair := p.repair.lastRepair
	jobsRepaired := p.repair.jobsRepaired
	p.repair.mu.Unlock()

	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:     isHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		Group:         p.group,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
		LastRepair:    lastRepair,
		JobsRepaired:  jobsRepaired,
	}
}
