package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/models"
	testdb "github.com/teambuh/slamon/test/database"
)

func TestStore_ScheduleFirstWins(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	id := WarningJobID("req-1")
	first := time.Now().Add(10 * time.Minute)
	require.NoError(t, store.Schedule(ctx, id, timerjob.JobTypeWarning,
		models.TimerPayload{RequestID: "req-1", ChatID: -100}, first))

	// Second schedule with a different due time must not move the timer.
	require.NoError(t, store.Schedule(ctx, id, timerjob.JobTypeWarning,
		models.TimerPayload{RequestID: "req-1", ChatID: -100}, time.Now().Add(time.Hour)))

	job, err := client.TimerJob.Get(ctx, id)
	require.NoError(t, err)
	assert.WithinDuration(t, first, job.DueAt, time.Second)
	assert.Equal(t, "req-1", job.Payload.RequestID)
}

func TestStore_CancelIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	id := BreachJobID("req-2")
	require.NoError(t, store.Schedule(ctx, id, timerjob.JobTypeBreach,
		models.TimerPayload{RequestID: "req-2"}, time.Now().Add(time.Minute)))

	require.NoError(t, store.Cancel(ctx, id))
	// Cancelling again (already fired / never scheduled) is a no-op.
	require.NoError(t, store.Cancel(ctx, id))

	exists, err := store.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_CancelRequestTimers(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	due := time.Now().Add(time.Hour)
	require.NoError(t, store.Schedule(ctx, WarningJobID("req-3"), timerjob.JobTypeWarning,
		models.TimerPayload{RequestID: "req-3"}, due))
	require.NoError(t, store.Schedule(ctx, BreachJobID("req-3"), timerjob.JobTypeBreach,
		models.TimerPayload{RequestID: "req-3"}, due))
	require.NoError(t, store.Schedule(ctx, EscalationJobID("req-3", 2), timerjob.JobTypeEscalation,
		models.TimerPayload{RequestID: "req-3", Level: 2}, due))
	// A different request's timer must survive.
	require.NoError(t, store.Schedule(ctx, BreachJobID("req-other"), timerjob.JobTypeBreach,
		models.TimerPayload{RequestID: "req-other"}, due))

	require.NoError(t, store.CancelRequestTimers(ctx, "req-3", 5))

	count, err := client.TimerJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	exists, err := store.Exists(ctx, BreachJobID("req-other"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_ClaimOnlyDueJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	require.NoError(t, store.Schedule(ctx, WarningJobID("due"), timerjob.JobTypeWarning,
		models.TimerPayload{RequestID: "due"}, time.Now().Add(-time.Minute)))
	require.NoError(t, store.Schedule(ctx, WarningJobID("future"), timerjob.JobTypeWarning,
		models.TimerPayload{RequestID: "future"}, time.Now().Add(time.Hour)))

	job, err := store.Claim(ctx, "w-1", timerjob.JobTypeWarning)
	require.NoError(t, err)
	assert.Equal(t, WarningJobID("due"), job.ID)
	assert.Equal(t, timerjob.StatusRunning, job.Status)
	require.NotNil(t, job.LockedBy)
	assert.Equal(t, "w-1", *job.LockedBy)

	// The future job is not due yet.
	_, err = store.Claim(ctx, "w-1", timerjob.JobTypeWarning)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestStore_ClaimFiltersJobType(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	require.NoError(t, store.Schedule(ctx, DeliveryJobID("alert-1"), timerjob.JobTypeDelivery,
		models.TimerPayload{AlertID: "alert-1"}, time.Now().Add(-time.Second)))

	_, err := store.Claim(ctx, "w-1", timerjob.JobTypeWarning, timerjob.JobTypeBreach)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)

	job, err := store.Claim(ctx, "w-1", timerjob.JobTypeDelivery)
	require.NoError(t, err)
	assert.Equal(t, "alert-1", job.Payload.AlertID)
}

func TestStore_ReleaseBumpsAttemptsThenParks(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	id := BreachJobID("req-4")
	require.NoError(t, store.Schedule(ctx, id, timerjob.JobTypeBreach,
		models.TimerPayload{RequestID: "req-4"}, time.Now().Add(-time.Second)))

	job, err := store.Claim(ctx, "w-1", timerjob.JobTypeBreach)
	require.NoError(t, err)

	require.NoError(t, store.Release(ctx, job, 2))

	job, err = client.TimerJob.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, timerjob.StatusScheduled, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.Nil(t, job.LockedBy)

	// Second failure reaches max attempts and parks the job.
	job, err = store.Claim(ctx, "w-1", timerjob.JobTypeBreach)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, job, 2))

	job, err = client.TimerJob.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, timerjob.StatusFailed, job.Status)
	assert.Equal(t, 2, job.Attempts)

	// Parked jobs are never claimed.
	_, err = store.Claim(ctx, "w-1", timerjob.JobTypeBreach)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestStore_RepairStaleClaims(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	id := WarningJobID("req-5")
	require.NoError(t, store.Schedule(ctx, id, timerjob.JobTypeWarning,
		models.TimerPayload{RequestID: "req-5"}, time.Now().Add(-time.Minute)))

	_, err := store.Claim(ctx, "w-dead", timerjob.JobTypeWarning)
	require.NoError(t, err)

	// Backdate the claim to simulate a crashed worker.
	err = client.TimerJob.UpdateOneID(id).
		SetLockedAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := store.RepairStaleClaims(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	job, err := client.TimerJob.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, timerjob.StatusScheduled, job.Status)
	assert.Nil(t, job.LockedBy)
}

func TestStore_RepairStartupClaims(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	require.NoError(t, store.Schedule(ctx, WarningJobID("mine"), timerjob.JobTypeWarning,
		models.TimerPayload{RequestID: "mine"}, time.Now().Add(-time.Minute)))
	require.NoError(t, store.Schedule(ctx, WarningJobID("theirs"), timerjob.JobTypeWarning,
		models.TimerPayload{RequestID: "theirs"}, time.Now().Add(-time.Minute)))

	_, err := store.Claim(ctx, "pod-a-sla-timers-0", timerjob.JobTypeWarning)
	require.NoError(t, err)
	_, err = store.Claim(ctx, "pod-b-sla-timers-0", timerjob.JobTypeWarning)
	require.NoError(t, err)

	require.NoError(t, RepairStartupClaims(ctx, client.Client, "pod-a"))

	released, err := client.TimerJob.Query().
		Where(timerjob.StatusEQ(timerjob.StatusScheduled)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, released)
}

func TestLeaseLock_AcquireAndSteal(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	lockA := NewLeaseLock(client.Client, "reconcile", "pod-a", 5*time.Minute)
	lockB := NewLeaseLock(client.Client, "reconcile", "pod-b", 5*time.Minute)

	ok, err := lockA.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// Live lease cannot be taken by another holder.
	ok, err = lockB.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Released lease is immediately up for grabs.
	require.NoError(t, lockA.Release(ctx))
	ok, err = lockB.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// The previous holder can no longer renew.
	assert.Error(t, lockA.Renew(ctx))
	assert.NoError(t, lockB.Renew(ctx))
}

func TestLeaseLock_ExpiredLeaseIsStolen(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	lockA := NewLeaseLock(client.Client, "reconcile", "pod-a", time.Millisecond)
	lockB := NewLeaseLock(client.Client, "reconcile", "pod-b", 5*time.Minute)

	ok, err := lockA.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(10 * time.Millisecond)

	ok, err = lockB.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}
