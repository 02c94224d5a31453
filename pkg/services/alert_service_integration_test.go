package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent/slaalert"
	testdb "github.com/teambuh/slamon/test/database"
)

func TestAlertService_CreateIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -300100)
	createTestRequest(t, client.Client, -300100, "req-al-1", 1)

	next := time.Now().Add(30 * time.Minute)
	alert, err := svc.Create(ctx, CreateAlertInput{
		RequestID:        "req-al-1",
		AlertType:        slaalert.AlertTypeBreach,
		MinutesElapsed:   60,
		EscalationLevel:  1,
		RecipientIDs:     []string{"201"},
		NextEscalationAt: &next,
	})
	require.NoError(t, err)

	// A replayed timer firing must not produce a second open alert.
	dup, err := svc.Create(ctx, CreateAlertInput{
		RequestID:       "req-al-1",
		AlertType:       slaalert.AlertTypeBreach,
		MinutesElapsed:  61,
		EscalationLevel: 1,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	require.NotNil(t, dup)
	assert.Equal(t, alert.ID, dup.ID)

	n, err := client.SLAAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAlertService_NewLevelAfterResolveAllowed(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -300101)
	createTestRequest(t, client.Client, -300101, "req-al-2", 1)

	_, err := svc.Create(ctx, CreateAlertInput{
		RequestID: "req-al-2", AlertType: slaalert.AlertTypeBreach, EscalationLevel: 1,
	})
	require.NoError(t, err)

	n, err := svc.ResolveOpenForRequest(ctx, "req-al-2", slaalert.ResolvedActionAccountantResponded)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The partial index only covers open alerts: a later breach on the
	// same level (request reopened by reconciliation) may create a new one.
	_, err = svc.Create(ctx, CreateAlertInput{
		RequestID: "req-al-2", AlertType: slaalert.AlertTypeBreach, EscalationLevel: 1,
	})
	require.NoError(t, err)
}

func TestAlertService_ResolveSingle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -300102)
	createTestRequest(t, client.Client, -300102, "req-al-3", 1)

	alert, err := svc.Create(ctx, CreateAlertInput{
		RequestID: "req-al-3", AlertType: slaalert.AlertTypeWarning, EscalationLevel: 0,
	})
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, alert.ID, slaalert.ResolvedActionMarkResolved)
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAction)
	assert.Equal(t, slaalert.ResolvedActionMarkResolved, *resolved.ResolvedAction)

	// The first action wins.
	again, err := svc.Resolve(ctx, alert.ID, slaalert.ResolvedActionAutoExpired)
	assert.ErrorIs(t, err, ErrTerminalState)
	require.NotNil(t, again.ResolvedAction)
	assert.Equal(t, slaalert.ResolvedActionMarkResolved, *again.ResolvedAction)
}

func TestAlertService_RecordDelivery(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -300103)
	createTestRequest(t, client.Client, -300103, "req-al-4", 1)

	alert, err := svc.Create(ctx, CreateAlertInput{
		RequestID: "req-al-4", AlertType: slaalert.AlertTypeWarning,
		RecipientIDs: []string{"101", "202"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.RecordDelivery(ctx, alert.ID, 1, 1, slaalert.DeliveryStatusDelivered))

	got, err := svc.Get(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DeliveredCount)
	assert.Equal(t, 1, got.FailedCount)
	assert.Equal(t, slaalert.DeliveryStatusDelivered, got.DeliveryStatus)
}
