package sla

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/timer"
)

func newReconciler(f *slaFixture, podID string) *Reconciler {
	return NewReconciler(f.client.Client, f.store, f.engine, f.settings, podID)
}

func TestReconciler_ReschedulesLostTimer(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -800100)
	// 30 minutes in, threshold 60: breach timer is missing but the window
	// is still open.
	f.createRequest(t, -800100, "req-rc1", 30*time.Minute)

	report, err := newReconciler(f, "pod-1").Sweep(ctx)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.TotalPending)
	assert.Equal(t, 1, report.Rescheduled)
	assert.Zero(t, report.Breached)

	job, err := f.client.TimerJob.Get(ctx, timer.BreachJobID("req-rc1"))
	require.NoError(t, err)
	// Residual delay: due roughly 30 minutes from now.
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), job.DueAt, time.Minute)

	// No request row was touched.
	req, err := f.client.ClientRequest.Get(ctx, "req-rc1")
	require.NoError(t, err)
	assert.Equal(t, clientrequest.StatusPending, req.Status)
}

func TestReconciler_SynthesizesOverdueBreach(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -800101)
	f.createRequest(t, -800101, "req-rc2", 90*time.Minute)

	report, err := newReconciler(f, "pod-1").Sweep(ctx)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.Breached)

	req, err := f.client.ClientRequest.Get(ctx, "req-rc2")
	require.NoError(t, err)
	assert.True(t, req.SLABreached)
	assert.Equal(t, clientrequest.StatusEscalated, req.Status)

	n, err := f.client.SLAAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A second sweep finds nothing to do: the request is escalated.
	report, err = newReconciler(f, "pod-1").Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.TotalPending)
}

func TestReconciler_SkipsArmedTimers(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -800102)
	f.createRequest(t, -800102, "req-rc3", 10*time.Minute)
	require.NoError(t, f.store.Schedule(ctx, timer.BreachJobID("req-rc3"), timerjob.JobTypeBreach,
		models.TimerPayload{RequestID: "req-rc3", ChatID: -800102}, time.Now().Add(50*time.Minute)))

	report, err := newReconciler(f, "pod-1").Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.AlreadyActive)
	assert.Zero(t, report.Rescheduled)
}

func TestReconciler_IgnoresDisabledChats(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	c := f.createChat(t, -800103)
	_, err := c.Update().SetSLAEnabled(false).Save(ctx)
	require.NoError(t, err)
	f.createRequest(t, -800103, "req-rc4", 90*time.Minute)

	report, err := newReconciler(f, "pod-1").Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.TotalPending)
}

func TestReconciler_LeaseSingleFlight(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	// Hold the lease as another instance.
	other := timer.NewLeaseLock(f.client.Client, "sla-reconciliation", "pod-other", time.Minute)
	acquired, err := other.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, acquired)

	report, err := newReconciler(f, "pod-1").Sweep(ctx)
	require.NoError(t, err)
	assert.Nil(t, report)
}
