package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/clientrequest"
	testdb "github.com/teambuh/slamon/test/database"
)

func createTestChat(t *testing.T, client *ent.Client, id int64) *ent.Chat {
	t.Helper()
	c, err := client.Chat.Create().
		SetID(id).
		SetTitle("Acme LLC").
		SetChatType(chat.ChatTypeGroup).
		SetAccountantIds([]string{"101"}).
		SetManagerIds([]string{"201"}).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func createTestRequest(t *testing.T, client *ent.Client, chatID int64, id string, messageID int64) *ent.ClientRequest {
	t.Helper()
	req, err := client.ClientRequest.Create().
		SetID(id).
		SetChatID(chatID).
		SetMessageText("нужна справка по НДС").
		SetMessageID(messageID).
		SetClassification(clientrequest.ClassificationREQUEST).
		SetReceivedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return req
}

func TestChatService_UpsertSanitizesTitle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	c, err := svc.Upsert(ctx, UpsertChatInput{
		ID:       -100200,
		Title:    "  ООО Ромашка\x00​  ",
		ChatType: "supergroup",
	})
	require.NoError(t, err)
	assert.Equal(t, "ООО Ромашка", c.Title)
	assert.Equal(t, chat.ChatTypeSupergroup, c.ChatType)
	assert.False(t, c.SLAEnabled)
	assert.False(t, c.MonitoringEnabled)
}

func TestChatService_UpsertKeepsConfiguration(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -100201)
	enabled := true
	_, err := svc.Update(ctx, -100201, UpdateChatInput{SLAEnabled: &enabled, MonitoringEnabled: &enabled})
	require.NoError(t, err)

	// A repeat upsert (bot re-added, title changed) must not reset config.
	c, err := svc.Upsert(ctx, UpsertChatInput{ID: -100201, Title: "Acme Renamed", ChatType: "group"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", c.Title)
	assert.True(t, c.SLAEnabled)
	assert.True(t, c.MonitoringEnabled)
	assert.Equal(t, []string{"101"}, c.AccountantIds)
}

func TestChatService_UpdateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -100202)

	bad := 2000
	_, err := svc.Update(ctx, -100202, UpdateChatInput{SLAThresholdMinutes: &bad})
	assert.True(t, IsValidationError(err))

	threshold := 90
	c, err := svc.Update(ctx, -100202, UpdateChatInput{SLAThresholdMinutes: &threshold})
	require.NoError(t, err)
	require.NotNil(t, c.SLAThresholdMinutes)
	assert.Equal(t, 90, *c.SLAThresholdMinutes)

	// Zero clears the per-chat override back to the global default.
	zero := 0
	c, err = svc.Update(ctx, -100202, UpdateChatInput{SLAThresholdMinutes: &zero})
	require.NoError(t, err)
	assert.Nil(t, c.SLAThresholdMinutes)
}

func TestChatService_HandleBotRemoved(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	createTestChat(t, client.Client, -100203)
	require.NoError(t, svc.HandleBotRemoved(ctx, -100203))

	c, err := client.Chat.Get(ctx, -100203)
	require.NoError(t, err)
	assert.False(t, c.MonitoringEnabled)
	assert.False(t, c.SLAEnabled)
	assert.NotNil(t, c.DeletedAt)

	// Unknown chat is a no-op, not an error.
	require.NoError(t, svc.HandleBotRemoved(ctx, -999))
}

func TestChatService_Migrate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatService(client.Client)
	ctx := context.Background()

	old := createTestChat(t, client.Client, -100204)
	enabled := true
	threshold := 45
	_, err := svc.Update(ctx, old.ID, UpdateChatInput{
		SLAEnabled:          &enabled,
		MonitoringEnabled:   &enabled,
		SLAThresholdMinutes: &threshold,
	})
	require.NoError(t, err)
	createTestRequest(t, client.Client, old.ID, "req-mig-1", 10)
	createTestRequest(t, client.Client, old.ID, "req-mig-2", 11)

	newID := int64(-1000100204)
	require.NoError(t, svc.Migrate(ctx, old.ID, newID))

	migrated, err := client.Chat.Get(ctx, newID)
	require.NoError(t, err)
	assert.Equal(t, chat.ChatTypeSupergroup, migrated.ChatType)
	assert.True(t, migrated.SLAEnabled)
	require.NotNil(t, migrated.SLAThresholdMinutes)
	assert.Equal(t, 45, *migrated.SLAThresholdMinutes)
	assert.Equal(t, []string{"101"}, migrated.AccountantIds)

	// Children follow the chat.
	n, err := client.ClientRequest.Query().
		Where(clientrequest.ChatIDEQ(newID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// The old row is retired, not deleted.
	retired, err := client.Chat.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, "[MIGRATED] Acme LLC", retired.Title)
	assert.False(t, retired.MonitoringEnabled)
	assert.False(t, retired.SLAEnabled)
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "Acme", SanitizeTitle("  Acme\n\t"))
	assert.Equal(t, "ab", SanitizeTitle("a\x00\x1fb"))
	long := make([]rune, 300)
	for i := range long {
		long[i] = 'я'
	}
	assert.Len(t, []rune(SanitizeTitle(string(long))), 255)
}
