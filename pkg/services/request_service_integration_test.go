package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent/clientrequest"
	testdb "github.com/teambuh/slamon/test/database"
)

func TestRequestService_OldestOpen(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -200100)
	// received_at is immutable, so the backdated timestamp must be set at creation.
	_, err := client.ClientRequest.Create().
		SetID("req-a").
		SetChatID(-200100).
		SetMessageText("нужна справка по НДС").
		SetMessageID(1).
		SetClassification(clientrequest.ClassificationREQUEST).
		SetReceivedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	createTestRequest(t, client.Client, -200100, "req-b", 2)

	req, err := svc.OldestOpen(ctx, -200100)
	require.NoError(t, err)
	assert.Equal(t, "req-a", req.ID)

	// Answered requests no longer count as open.
	_, err = client.ClientRequest.UpdateOneID("req-a").
		SetStatus(clientrequest.StatusAnswered).
		Save(ctx)
	require.NoError(t, err)

	req, err = svc.OldestOpen(ctx, -200100)
	require.NoError(t, err)
	assert.Equal(t, "req-b", req.ID)
}

func TestRequestService_OldestOpenEmpty(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)

	createTestChat(t, client.Client, -200101)
	_, err := svc.OldestOpen(context.Background(), -200101)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequestService_UpdateStatusTerminalGuard(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -200102)
	createTestRequest(t, client.Client, -200102, "req-term", 1)

	_, err := svc.UpdateStatus(ctx, "req-term", clientrequest.StatusAnswered)
	require.NoError(t, err)

	// A late escalation timer must not reopen an answered request.
	_, err = svc.UpdateStatus(ctx, "req-term", clientrequest.StatusEscalated)
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestRequestService_MarkBreachedMonotonic(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -200103)
	createTestRequest(t, client.Client, -200103, "req-breach", 1)

	require.NoError(t, svc.MarkBreached(ctx, "req-breach"))
	require.NoError(t, svc.MarkBreached(ctx, "req-breach"))

	req, err := client.ClientRequest.Get(ctx, "req-breach")
	require.NoError(t, err)
	assert.True(t, req.SLABreached)
}

func TestRequestService_FindByMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -200104)
	createTestRequest(t, client.Client, -200104, "req-msg", 42)

	req, err := svc.FindByMessage(ctx, -200104, 42)
	require.NoError(t, err)
	assert.Equal(t, "req-msg", req.ID)

	_, err = svc.FindByMessage(ctx, -200104, 43)
	assert.ErrorIs(t, err, ErrNotFound)
}
