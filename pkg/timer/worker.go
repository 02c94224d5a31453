package timer

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single timer worker that polls for and runs due jobs of its
// group's types.
type Worker struct {
	id       string
	podID    string
	store    *Store
	config   *config.WorkerConfig
	types    []timerjob.JobType
	handler  Handler
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new timer worker.
func NewWorker(id, podID string, store *Store, cfg *config.WorkerConfig, types []timerjob.JobType, handler Handler) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		store:        store,
		config:       cfg,
		types:        types,
		handler:      handler,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Timer worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Timer worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, timer worker shutting down")
			return
		default:
			if err := w.pollAndRun(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing timer job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndRun claims one due job and runs its handler.
func (w *Worker) pollAndRun(ctx context.Context) error {
	job, err := w.store.Claim(ctx, w.id, w.types...)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "job_type", job.JobType, "worker_id", w.id)
	log.Debug("Timer job claimed")

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	handleErr := w.handler.Handle(jobCtx, job)

	// Finalize with a background context: the job context may be
	// cancelled or expired, but the row must still be settled.
	switch {
	case handleErr == nil:
		if err := w.store.Complete(context.Background(), job.ID); err != nil {
			return err
		}
	case errors.Is(handleErr, ErrPermanent):
		log.Error("Timer job failed permanently", "error", handleErr)
		if err := w.store.Park(context.Background(), job.ID, job.Attempts+1); err != nil {
			return err
		}
	default:
		log.Warn("Timer job failed, releasing for retry",
			"attempts", job.Attempts+1, "error", handleErr)
		if err := w.store.Release(context.Background(), job, w.config.MaxAttempts); err != nil {
			return err
		}
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
