package sla

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/pkg/database"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/timer"
	testdb "github.com/teambuh/slamon/test/database"
)

type slaFixture struct {
	client   *database.Client
	store    *timer.Store
	engine   *Engine
	resolver *Resolver
	settings *services.SettingsService
	requests *services.RequestService
}

func newSLAFixture(t *testing.T) *slaFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := timer.NewStore(client.Client)
	settings := services.NewSettingsService(client.Client)
	requests := services.NewRequestService(client.Client)
	engine := NewEngine(client.Client, store, settings, nil)
	resolver := NewResolver(client.Client, store, requests, settings)
	return &slaFixture{
		client:   client,
		store:    store,
		engine:   engine,
		resolver: resolver,
		settings: settings,
		requests: requests,
	}
}

func (f *slaFixture) createChat(t *testing.T, id int64) *ent.Chat {
	t.Helper()
	c, err := f.client.Chat.Create().
		SetID(id).
		SetTitle("ООО Тест").
		SetChatType(chat.ChatTypeSupergroup).
		SetSLAEnabled(true).
		SetMonitoringEnabled(true).
		SetAccountantIds([]string{"acc-1"}).
		SetManagerIds([]string{"mgr-1"}).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func (f *slaFixture) createRequest(t *testing.T, chatID int64, id string, age time.Duration) *ent.ClientRequest {
	t.Helper()
	req, err := f.client.ClientRequest.Create().
		SetID(id).
		SetChatID(chatID).
		SetMessageText("вопрос по отчётности").
		SetMessageID(100).
		SetClassification(clientrequest.ClassificationREQUEST).
		SetReceivedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return req
}

func (f *slaFixture) warningJob(requestID string, chatID int64) *ent.TimerJob {
	return fakeJob(timer.WarningJobID(requestID), requestID, chatID, 0)
}

func (f *slaFixture) breachJob(requestID string, chatID int64) *ent.TimerJob {
	return fakeJob(timer.BreachJobID(requestID), requestID, chatID, 0)
}

func (f *slaFixture) escalationJob(requestID string, chatID int64, level int) *ent.TimerJob {
	return fakeJob(timer.EscalationJobID(requestID, level), requestID, chatID, level)
}

func TestEngine_WarningCreatesAlertAndDelivery(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -600100)
	f.createRequest(t, -600100, "req-w1", 48*time.Minute)

	require.NoError(t, f.engine.HandleWarning(ctx, f.warningJob("req-w1", -600100)))

	alerts, err := f.client.SLAAlert.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, slaalert.AlertTypeWarning, alerts[0].AlertType)
	assert.Equal(t, 0, alerts[0].EscalationLevel)
	assert.Equal(t, []string{"acc-1"}, alerts[0].RecipientIds)
	assert.Equal(t, 48, alerts[0].MinutesElapsed)

	exists, err := f.store.Exists(ctx, timer.DeliveryJobID(alerts[0].ID))
	require.NoError(t, err)
	assert.True(t, exists)

	// A replayed firing creates nothing new.
	require.NoError(t, f.engine.HandleWarning(ctx, f.warningJob("req-w1", -600100)))
	n, err := f.client.SLAAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEngine_WarningDropsOnTerminalRequest(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -600101)
	f.createRequest(t, -600101, "req-w2", 48*time.Minute)
	_, err := f.client.ClientRequest.UpdateOneID("req-w2").
		SetStatus(clientrequest.StatusAnswered).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.engine.HandleWarning(ctx, f.warningJob("req-w2", -600101)))

	n, err := f.client.SLAAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEngine_WarningDropsAfterBreach(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -600102)
	f.createRequest(t, -600102, "req-w3", 70*time.Minute)

	require.NoError(t, f.engine.HandleBreach(ctx, f.breachJob("req-w3", -600102)))
	// Late warning arrives after the breach materialized.
	require.NoError(t, f.engine.HandleWarning(ctx, f.warningJob("req-w3", -600102)))

	alerts, err := f.client.SLAAlert.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, slaalert.AlertTypeBreach, alerts[0].AlertType)
}

func TestEngine_BreachTransitionsAndSchedulesEscalation(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -600103)
	f.createRequest(t, -600103, "req-b1", 65*time.Minute)

	require.NoError(t, f.engine.HandleBreach(ctx, f.breachJob("req-b1", -600103)))

	req, err := f.client.ClientRequest.Get(ctx, "req-b1")
	require.NoError(t, err)
	assert.True(t, req.SLABreached)
	assert.Equal(t, clientrequest.StatusEscalated, req.Status)

	alerts, err := f.client.SLAAlert.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, 1, alerts[0].EscalationLevel)
	assert.NotNil(t, alerts[0].NextEscalationAt)

	exists, err := f.store.Exists(ctx, timer.EscalationJobID("req-b1", 2))
	require.NoError(t, err)
	assert.True(t, exists)

	// Replay is a no-op: status is already escalated.
	require.NoError(t, f.engine.HandleBreach(ctx, f.breachJob("req-b1", -600103)))
	n, err := f.client.SLAAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEngine_EscalationChainAutoExpiresAtMax(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	maxLevel := 3
	_, err := f.settings.Update(ctx, services.UpdateSettingsInput{MaxEscalationLevel: &maxLevel})
	require.NoError(t, err)

	f.createChat(t, -600104)
	f.createRequest(t, -600104, "req-e1", 65*time.Minute)

	require.NoError(t, f.engine.HandleBreach(ctx, f.breachJob("req-e1", -600104)))
	require.NoError(t, f.engine.HandleEscalation(ctx, f.escalationJob("req-e1", -600104, 2)))
	require.NoError(t, f.engine.HandleEscalation(ctx, f.escalationJob("req-e1", -600104, 3)))

	alerts, err := f.client.SLAAlert.Query().
		Order(ent.Asc(slaalert.FieldEscalationLevel)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	// Level 2 targets the manager/accountant union.
	assert.ElementsMatch(t, []string{"mgr-1", "acc-1"}, alerts[1].RecipientIds)

	// The whole chain is closed at max level.
	for _, a := range alerts {
		require.NotNil(t, a.ResolvedAction, "level %d", a.EscalationLevel)
		assert.Equal(t, slaalert.ResolvedActionAutoExpired, *a.ResolvedAction)
	}

	// No level 4 scheduled.
	exists, err := f.store.Exists(ctx, timer.EscalationJobID("req-e1", 4))
	require.NoError(t, err)
	assert.False(t, exists)

	// A stray escalation firing after expiry drops.
	require.NoError(t, f.engine.HandleEscalation(ctx, f.escalationJob("req-e1", -600104, 3)))
	n, err := f.client.SLAAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestEngine_EscalationDropsOnResolvedChain(t *testing.T) {
	f := newSLAFixture(t)
	ctx := context.Background()

	f.createChat(t, -600105)
	f.createRequest(t, -600105, "req-e2", 65*time.Minute)

	require.NoError(t, f.engine.HandleBreach(ctx, f.breachJob("req-e2", -600105)))
	_, err := f.client.SLAAlert.Update().
		SetResolvedAction(slaalert.ResolvedActionMarkResolved).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.engine.HandleEscalation(ctx, f.escalationJob("req-e2", -600105, 2)))

	n, err := f.client.SLAAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
