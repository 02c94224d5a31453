package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/chatinvitation"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/pkg/classify"
	"github.com/teambuh/slamon/pkg/config"
	"github.com/teambuh/slamon/pkg/database"
	"github.com/teambuh/slamon/pkg/services"
	testdb "github.com/teambuh/slamon/test/database"
)

func newCleanupFixture(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := NewService(
		&config.RetentionConfig{
			RequestRetentionDays: 180,
			MessageRetentionDays: 90,
			CleanupInterval:      time.Hour,
		},
		client.Client,
		classify.NewCache(client.Client, 24*time.Hour),
		services.NewInvitationService(client.Client),
	)
	return client, svc
}

func createChat(t *testing.T, client *database.Client, id int64) {
	t.Helper()
	_, err := client.Chat.Create().
		SetID(id).
		SetTitle("ООО Тест").
		SetChatType(chat.ChatTypeGroup).
		Save(context.Background())
	require.NoError(t, err)
}

func TestService_SoftDeletesOldAnsweredRequests(t *testing.T) {
	client, svc := newCleanupFixture(t)
	ctx := context.Background()
	createChat(t, client, -300100)

	old := client.ClientRequest.Create().
		SetID("req-old").
		SetChatID(-300100).
		SetMessageText("старый вопрос").
		SetMessageID(1).
		SetClassification(clientrequest.ClassificationREQUEST).
		SetStatus(clientrequest.StatusAnswered).
		SetReceivedAt(time.Now().AddDate(0, 0, -200)).
		SaveX(ctx)

	// A recent answered request and an old but still-open one stay.
	client.ClientRequest.Create().
		SetID("req-recent").
		SetChatID(-300100).
		SetMessageText("недавний вопрос").
		SetMessageID(2).
		SetClassification(clientrequest.ClassificationREQUEST).
		SetStatus(clientrequest.StatusAnswered).
		SetReceivedAt(time.Now().AddDate(0, 0, -10)).
		SaveX(ctx)
	client.ClientRequest.Create().
		SetID("req-open").
		SetChatID(-300100).
		SetMessageText("открытый вопрос").
		SetMessageID(3).
		SetClassification(clientrequest.ClassificationREQUEST).
		SetReceivedAt(time.Now().AddDate(0, 0, -200)).
		SaveX(ctx)

	svc.RunAll(ctx)

	got := client.ClientRequest.GetX(ctx, old.ID)
	assert.NotNil(t, got.DeletedAt)
	assert.Nil(t, client.ClientRequest.GetX(ctx, "req-recent").DeletedAt)
	assert.Nil(t, client.ClientRequest.GetX(ctx, "req-open").DeletedAt)
}

func TestService_PurgesOldMessages(t *testing.T) {
	client, svc := newCleanupFixture(t)
	ctx := context.Background()
	createChat(t, client, -300101)

	client.ChatMessage.Create().
		SetID("msg-old").
		SetChatID(-300101).
		SetMessageID(1).
		SetSenderID(42).
		SetText("старое сообщение").
		SetCreatedAt(time.Now().AddDate(0, 0, -100)).
		SaveX(ctx)
	client.ChatMessage.Create().
		SetID("msg-new").
		SetChatID(-300101).
		SetMessageID(2).
		SetSenderID(42).
		SetText("свежее сообщение").
		SaveX(ctx)

	svc.RunAll(ctx)

	n := client.ChatMessage.Query().CountX(ctx)
	assert.Equal(t, 1, n)
}

func TestService_ExpiresStaleInvitations(t *testing.T) {
	client, svc := newCleanupFixture(t)
	ctx := context.Background()
	createChat(t, client, -300102)

	invitations := services.NewInvitationService(client.Client)
	inv, err := invitations.Create(ctx, -300102, time.Minute)
	require.NoError(t, err)
	client.ChatInvitation.UpdateOneID(inv.ID).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		ExecX(ctx)

	svc.RunAll(ctx)

	got := client.ChatInvitation.GetX(ctx, inv.ID)
	assert.Equal(t, chatinvitation.StatusExpired, got.Status)
}
