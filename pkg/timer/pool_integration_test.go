package timer

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/config"
	"github.com/teambuh/slamon/pkg/models"
	testdb "github.com/teambuh/slamon/test/database"
)

func fastWorkerConfig() *config.WorkerConfig {
	cfg := config.DefaultWorkerConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.JobTimeout = 5 * time.Second
	cfg.MaxAttempts = 3
	return cfg
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}

func TestPool_ProcessesDueJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	var handled atomic.Int32
	handler := HandlerFunc(func(_ context.Context, job *ent.TimerJob) error {
		handled.Add(1)
		return nil
	})

	pool := NewPool("sla-timers", "pod-test", store, fastWorkerConfig(),
		[]timerjob.JobType{timerjob.JobTypeWarning, timerjob.JobTypeBreach}, handler, 0)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	for i := 0; i < 5; i++ {
		id := WarningJobID(fmt.Sprintf("req-%d", i))
		require.NoError(t, store.Schedule(ctx, id, timerjob.JobTypeWarning,
			models.TimerPayload{RequestID: fmt.Sprintf("req-%d", i)}, time.Now().Add(-time.Second)))
	}

	waitFor(t, 10*time.Second, func() bool { return handled.Load() == 5 })

	// Completed jobs are deleted.
	waitFor(t, 5*time.Second, func() bool {
		count, err := client.TimerJob.Query().Count(ctx)
		return err == nil && count == 0
	})
}

func TestPool_PermanentFailureParksJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	handler := HandlerFunc(func(_ context.Context, job *ent.TimerJob) error {
		return fmt.Errorf("chat gone: %w", ErrPermanent)
	})

	pool := NewPool("sla-timers", "pod-test", store, fastWorkerConfig(),
		[]timerjob.JobType{timerjob.JobTypeBreach}, handler, 1)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	id := BreachJobID("req-perm")
	require.NoError(t, store.Schedule(ctx, id, timerjob.JobTypeBreach,
		models.TimerPayload{RequestID: "req-perm"}, time.Now().Add(-time.Second)))

	waitFor(t, 10*time.Second, func() bool {
		job, err := client.TimerJob.Get(ctx, id)
		return err == nil && job.Status == timerjob.StatusFailed
	})
}

func TestPool_TransientFailureRetriesThenSucceeds(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	var calls atomic.Int32
	handler := HandlerFunc(func(_ context.Context, job *ent.TimerJob) error {
		if calls.Add(1) == 1 {
			return fmt.Errorf("transient database hiccup")
		}
		return nil
	})

	pool := NewPool("sla-timers", "pod-test", store, fastWorkerConfig(),
		[]timerjob.JobType{timerjob.JobTypeWarning}, handler, 1)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	id := WarningJobID("req-retry")
	require.NoError(t, store.Schedule(ctx, id, timerjob.JobTypeWarning,
		models.TimerPayload{RequestID: "req-retry"}, time.Now().Add(-time.Second)))

	waitFor(t, 10*time.Second, func() bool { return calls.Load() >= 2 })
	waitFor(t, 5*time.Second, func() bool {
		exists, err := store.Exists(ctx, id)
		return err == nil && !exists
	})
}

func TestPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	handler := HandlerFunc(func(_ context.Context, job *ent.TimerJob) error { return nil })
	pool := NewPool("escalations", "pod-test", store, fastWorkerConfig(),
		[]timerjob.JobType{timerjob.JobTypeEscalation}, handler, 2)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "escalations", health.Group)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
}
