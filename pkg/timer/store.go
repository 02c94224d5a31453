package timer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/models"
)

// Store is the durable timer store backed by the timer_jobs table.
type Store struct {
	client *ent.Client
}

// NewStore creates a timer store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Schedule inserts a timer job. First-wins: if a job with the same id
// already exists the call is a no-op and returns nil, so a redelivered
// message can never move an armed timer.
func (s *Store) Schedule(ctx context.Context, id string, jobType timerjob.JobType, payload models.TimerPayload, dueAt time.Time) error {
	err := s.client.TimerJob.Create().
		SetID(id).
		SetJobType(jobType).
		SetPayload(payload).
		SetDueAt(dueAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			slog.Debug("Timer already scheduled", "job_id", id)
			return nil
		}
		return fmt.Errorf("failed to schedule timer %s: %w", id, err)
	}
	return nil
}

// ScheduleTx is Schedule inside an existing transaction, so a request and
// its timers commit atomically.
func (s *Store) ScheduleTx(ctx context.Context, tx *ent.Tx, id string, jobType timerjob.JobType, payload models.TimerPayload, dueAt time.Time) error {
	err := tx.TimerJob.Create().
		SetID(id).
		SetJobType(jobType).
		SetPayload(payload).
		SetDueAt(dueAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to schedule timer %s: %w", id, err)
	}
	return nil
}

// Cancel deletes a timer job by id. Cancelling a missing (already fired or
// never scheduled) timer is a no-op.
func (s *Store) Cancel(ctx context.Context, id string) error {
	err := s.client.TimerJob.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to cancel timer %s: %w", id, err)
	}
	return nil
}

// CancelRequestTimers removes every SLA timer armed for a request: warning,
// breach, and all escalation levels up to maxLevel. Called synchronously on
// resolution so no stale firing can race the status change.
func (s *Store) CancelRequestTimers(ctx context.Context, requestID string, maxLevel int) error {
	ids := []string{WarningJobID(requestID), BreachJobID(requestID)}
	for level := 2; level <= maxLevel; level++ {
		ids = append(ids, EscalationJobID(requestID, level))
	}

	n, err := s.client.TimerJob.Delete().
		Where(timerjob.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel timers for request %s: %w", requestID, err)
	}
	if n > 0 {
		slog.Debug("Cancelled request timers", "request_id", requestID, "count", n)
	}
	return nil
}

// Claim atomically claims the next due job of the given types using
// FOR UPDATE SKIP LOCKED. Jobs are claimed oldest-due first.
func (s *Store) Claim(ctx context.Context, workerID string, types ...timerjob.JobType) (*ent.TimerJob, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.TimerJob.Query().
		Where(
			timerjob.JobTypeIn(types...),
			timerjob.StatusEQ(timerjob.StatusScheduled),
			timerjob.DueAtLTE(time.Now()),
		).
		Order(ent.Asc(timerjob.FieldDueAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query due jobs: %w", err)
	}

	job, err = job.Update().
		SetStatus(timerjob.StatusRunning).
		SetLockedBy(workerID).
		SetLockedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return job, nil
}

// Complete removes a finished job. The job may already be gone if the
// request was resolved while the handler ran; that is not an error.
func (s *Store) Complete(ctx context.Context, id string) error {
	err := s.client.TimerJob.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to complete job %s: %w", id, err)
	}
	return nil
}

// Release returns a job to scheduled after a transient handler failure,
// bumping the attempt count. Once attempts reach maxAttempts the job is
// parked as failed for operator inspection instead.
func (s *Store) Release(ctx context.Context, job *ent.TimerJob, maxAttempts int) error {
	attempts := job.Attempts + 1
	if attempts >= maxAttempts {
		return s.Park(ctx, job.ID, attempts)
	}

	err := s.client.TimerJob.UpdateOneID(job.ID).
		SetStatus(timerjob.StatusScheduled).
		SetAttempts(attempts).
		ClearLockedBy().
		ClearLockedAt().
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to release job %s: %w", job.ID, err)
	}
	return nil
}

// Park marks a job failed. Parked jobs are never claimed again.
func (s *Store) Park(ctx context.Context, id string, attempts int) error {
	err := s.client.TimerJob.UpdateOneID(id).
		SetStatus(timerjob.StatusFailed).
		SetAttempts(attempts).
		ClearLockedBy().
		ClearLockedAt().
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to park job %s: %w", id, err)
	}
	slog.Warn("Timer job parked as failed", "job_id", id, "attempts", attempts)
	return nil
}

// RepairStaleClaims releases jobs stuck in running longer than threshold,
// typically after a worker crash. All pods run this independently; the
// conditional update keeps it idempotent.
func (s *Store) RepairStaleClaims(ctx context.Context, threshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-threshold)

	n, err := s.client.TimerJob.Update().
		Where(
			timerjob.StatusEQ(timerjob.StatusRunning),
			timerjob.LockedAtNotNil(),
			timerjob.LockedAtLT(cutoff),
		).
		SetStatus(timerjob.StatusScheduled).
		ClearLockedBy().
		ClearLockedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to repair stale claims: %w", err)
	}
	if n > 0 {
		slog.Warn("Released stale timer claims", "count", n)
	}
	return n, nil
}

// RepairStartupClaims releases jobs this pod held when it previously
// crashed. Called once during startup, before workers begin claiming.
func RepairStartupClaims(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.TimerJob.Update().
		Where(
			timerjob.StatusEQ(timerjob.StatusRunning),
			timerjob.LockedByHasPrefix(podID),
		).
		SetStatus(timerjob.StatusScheduled).
		ClearLockedBy().
		ClearLockedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to repair startup claims: %w", err)
	}
	if n > 0 {
		slog.Warn("Released startup timer claims from previous run", "pod_id", podID, "count", n)
	}
	return nil
}

// Depth returns the number of scheduled jobs of the given types.
func (s *Store) Depth(ctx context.Context, types ...timerjob.JobType) (int, error) {
	return s.client.TimerJob.Query().
		Where(
			timerjob.JobTypeIn(types...),
			timerjob.StatusEQ(timerjob.StatusScheduled),
		).
		Count(ctx)
}

// Exists reports whether a job with the given id is present in any state.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	return s.client.TimerJob.Query().
		Where(timerjob.IDEQ(id)).
		Exist(ctx)
}
