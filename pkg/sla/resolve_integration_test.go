package sla

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/timer"
)

func TestResolver_ReplyResolvesOldestOpen(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -700100)
	f.createRequest(t, -700100, "req-old", 55*time.Minute)
	f.createRequest(t, -700100, "req-new", 5*time.Minute)

	for _, id := range []string{"req-old", "req-new"} {
		require.NoError(t, f.store.Schedule(ctx, timer.BreachJobID(id), timerjob.JobTypeBreach,
			models.TimerPayload{RequestID: id, ChatID: -700100}, time.Now().Add(time.Hour)))
	}

	req, err := f.resolver.ResolveByReply(ctx, -700100, 0, 555)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, "req-old", req.ID)
	assert.Equal(t, clientrequest.StatusAnswered, req.Status)
	require.NotNil(t, req.ResponseTimeMinutes)
	assert.Equal(t, 55, *req.ResponseTimeMinutes)
	require.NotNil(t, req.ResponseMessageID)
	assert.Equal(t, int64(555), *req.ResponseMessageID)

	// The old request's timers are gone; the newer request keeps its own.
	exists, err := f.store.Exists(ctx, timer.BreachJobID("req-old"))
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = f.store.Exists(ctx, timer.BreachJobID("req-new"))
	require.NoError(t, err)
	assert.True(t, exists)

	// The survey is armed for the answered request.
	exists, err = f.store.Exists(ctx, timer.SurveyJobID("req-old"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestResolver_ThreadExactMatchBeatsFIFO(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -700101)
	f.createRequest(t, -700101, "req-first", 50*time.Minute)
	second := f.createRequest(t, -700101, "req-second", 10*time.Minute)
	_, err := f.client.ClientRequest.UpdateOne(second).SetMessageID(777).Save(ctx)
	require.NoError(t, err)

	// The accountant replied specifically to the second message.
	req, err := f.resolver.ResolveByReply(ctx, -700101, 777, 888)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, "req-second", req.ID)

	// The first request stays open.
	first, err := f.client.ClientRequest.Get(ctx, "req-first")
	require.NoError(t, err)
	assert.Equal(t, clientrequest.StatusPending, first.Status)
}

func TestResolver_ReplyResolvesEscalatedRequestAndAlerts(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -700102)
	f.createRequest(t, -700102, "req-esc", 65*time.Minute)
	require.NoError(t, f.engine.HandleBreach(ctx, f.breachJob("req-esc", -700102)))

	req, err := f.resolver.ResolveByReply(ctx, -700102, 0, 999)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, clientrequest.StatusAnswered, req.Status)

	alerts, err := f.client.SLAAlert.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.NotNil(t, alerts[0].ResolvedAction)
	assert.Equal(t, slaalert.ResolvedActionAccountantResponded, *alerts[0].ResolvedAction)

	// The scheduled L2 escalation was cancelled; a stray firing drops.
	exists, err := f.store.Exists(ctx, timer.EscalationJobID("req-esc", 2))
	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, f.engine.HandleEscalation(ctx, f.escalationJob("req-esc", -700102, 2)))
	n, err := f.client.SLAAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResolver_NoOpenRequestReturnsNil(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -700103)

	req, err := f.resolver.ResolveByReply(ctx, -700103, 0, 1)
	require.NoError(t, err)
	assert.Nil(t, req)
}

func TestResolver_ManagerResolveClosesRequest(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -700104)
	f.createRequest(t, -700104, "req-mgr", 65*time.Minute)
	require.NoError(t, f.engine.HandleBreach(ctx, f.breachJob("req-mgr", -700104)))

	alert, err := f.client.SLAAlert.Query().Only(ctx)
	require.NoError(t, err)

	req, err := f.resolver.ResolveByManager(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, clientrequest.StatusClosed, req.Status)

	resolved, err := f.client.SLAAlert.Get(ctx, alert.ID)
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAction)
	assert.Equal(t, slaalert.ResolvedActionMarkResolved, *resolved.ResolvedAction)

	// Pressing the button twice keeps the closed state.
	again, err := f.resolver.ResolveByManager(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, clientrequest.StatusClosed, again.Status)
}
