package ingest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/chatmessage"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/pkg/classify"
	"github.com/teambuh/slamon/pkg/config"
	"github.com/teambuh/slamon/pkg/database"
	"github.com/teambuh/slamon/pkg/delivery"
	"github.com/teambuh/slamon/pkg/faq"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/sla"
	"github.com/teambuh/slamon/pkg/timer"
	testdb "github.com/teambuh/slamon/test/database"
)

type recordedSend struct {
	ChatID int64
	Text   string
}

type stubSender struct {
	mu        sync.Mutex
	sent      []recordedSend
	callbacks []string
}

func (s *stubSender) SendMessage(_ context.Context, chatID int64, text string, _ *tgbotapi.InlineKeyboardMarkup) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, recordedSend{ChatID: chatID, Text: text})
	return int64(len(s.sent)), nil
}

func (s *stubSender) EditMessageText(context.Context, int64, int64, string, *tgbotapi.InlineKeyboardMarkup) error {
	return nil
}

func (s *stubSender) AnswerCallback(_ context.Context, _ string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, text)
	return nil
}

func (s *stubSender) ExportChatInviteLink(context.Context, int64) (string, error) {
	return "", nil
}

type pipelineFixture struct {
	client   *database.Client
	sender   *stubSender
	store    *timer.Store
	pipeline *Pipeline
	faqs     *services.FAQService
	matcher  *faq.Matcher
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	sender := &stubSender{}
	store := timer.NewStore(client.Client)
	chats := services.NewChatService(client.Client)
	requests := services.NewRequestService(client.Client)
	messages := services.NewMessageService(client.Client)
	faqs := services.NewFAQService(client.Client)
	feedback := services.NewFeedbackService(client.Client)
	settings := services.NewSettingsService(client.Client)
	alerts := services.NewAlertService(client.Client)
	matcher := faq.NewMatcher(client.Client, faq.DefaultCacheTTL)
	resolver := sla.NewResolver(client.Client, store, requests, settings)
	deliverySvc := delivery.NewService(client.Client, sender, alerts, config.DeliveryConfig{
		MaxAttempts:    1,
		InitialBackoff: time.Millisecond,
		MaxElapsedTime: time.Second,
	})

	pipeline := NewPipeline(Deps{
		Client:     client.Client,
		Store:      store,
		Chats:      chats,
		Requests:   requests,
		Messages:   messages,
		FAQs:       faqs,
		Feedback:   feedback,
		Settings:   settings,
		Matcher:    matcher,
		Classifier: classify.NewClassifier(nil, nil, 0.7),
		Resolver:   resolver,
		Delivery:   deliverySvc,
		Sender:     sender,
	})
	return &pipelineFixture{
		client:   client,
		sender:   sender,
		store:    store,
		pipeline: pipeline,
		faqs:     faqs,
		matcher:  matcher,
	}
}

func (f *pipelineFixture) createChat(t *testing.T, id int64) *ent.Chat {
	t.Helper()
	c, err := f.client.Chat.Create().
		SetID(id).
		SetTitle("ООО Клиент").
		SetChatType(chat.ChatTypeSupergroup).
		SetSLAEnabled(true).
		SetMonitoringEnabled(true).
		SetAccountantIds([]string{"5001"}).
		SetManagerIds([]string{"6001"}).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func messageEvent(chatID, senderID, messageID int64, text string) *models.ChatEvent {
	return &models.ChatEvent{
		Type:      models.EventMessage,
		Chat:      models.EventChat{ID: chatID, Type: "supergroup", Title: "ООО Клиент"},
		From:      models.EventUser{ID: senderID, Username: "client"},
		MessageID: messageID,
		Text:      text,
		Date:      time.Now(),
	}
}

func TestPipeline_RequestOpensRowAndTimers(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	f.createChat(t, -500100)
	event := messageEvent(-500100, 42, 10, "Когда будет готов отчёт по НДС?")
	require.NoError(t, f.pipeline.HandleEvent(ctx, event))

	req, err := f.client.ClientRequest.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, clientrequest.StatusPending, req.Status)
	assert.Equal(t, clientrequest.ClassificationREQUEST, req.Classification)
	assert.Equal(t, int64(-500100), req.ChatID)
	assert.False(t, req.SLABreached)

	// Warning at T-offset (60-12=48 min) and breach at T (60 min).
	warn, err := f.client.TimerJob.Get(ctx, timer.WarningJobID(req.ID))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(48*time.Minute), warn.DueAt, time.Minute)
	breach, err := f.client.TimerJob.Get(ctx, timer.BreachJobID(req.ID))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), breach.DueAt, time.Minute)

	// The inbound message is linked to the request.
	msg, err := f.client.ChatMessage.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, msg.RequestID)
	assert.Equal(t, req.ID, *msg.RequestID)
}

func TestPipeline_SLADisabledChatGetsNoTimers(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	c := f.createChat(t, -500101)
	_, err := c.Update().SetSLAEnabled(false).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.pipeline.HandleEvent(ctx, messageEvent(-500101, 42, 11, "Сколько стоит справка?")))

	n, err := f.client.ClientRequest.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	jobs, err := f.client.TimerJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, jobs)
}

func TestPipeline_FAQShortCircuit(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	f.createChat(t, -500102)
	item, err := f.faqs.Create(ctx, services.CreateFAQInput{
		Question: "Какие реквизиты для оплаты?",
		Keywords: []string{"реквизиты"},
		Answer:   "Реквизиты закреплены в описании чата.",
	})
	require.NoError(t, err)
	f.matcher.Invalidate()

	require.NoError(t, f.pipeline.HandleEvent(ctx, messageEvent(-500102, 42, 12, "Подскажите реквизиты для оплаты счёта")))

	// The bot answered in-chat and opened no request.
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, int64(-500102), f.sender.sent[0].ChatID)
	assert.Contains(t, f.sender.sent[0].Text, "закреплены")

	n, err := f.client.ClientRequest.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	msg, err := f.client.ChatMessage.Query().Only(ctx)
	require.NoError(t, err)
	assert.True(t, msg.FaqHandled)

	got, err := f.faqs.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.UsageCount)
}

func TestPipeline_AccountantReplyResolvesRequest(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	f.createChat(t, -500103)
	require.NoError(t, f.pipeline.HandleEvent(ctx, messageEvent(-500103, 42, 13, "Почему не прошёл платёж?")))
	req, err := f.client.ClientRequest.Query().Only(ctx)
	require.NoError(t, err)

	reply := messageEvent(-500103, 5001, 14, "Платёж завис в банке, уже разбираемся")
	reply.From.Username = "accountant"
	require.NoError(t, f.pipeline.HandleEvent(ctx, reply))

	resolved, err := f.client.ClientRequest.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, clientrequest.StatusAnswered, resolved.Status)

	exists, err := f.store.Exists(ctx, timer.BreachJobID(req.ID))
	require.NoError(t, err)
	assert.False(t, exists)

	msgs, err := f.client.ChatMessage.Query().
		Where(chatmessage.FromAccountant(true)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].RequestID)
	assert.Equal(t, req.ID, *msgs[0].RequestID)
}

func TestPipeline_SpamRecordedWithoutRequest(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	f.createChat(t, -500104)
	require.NoError(t, f.pipeline.HandleEvent(ctx, messageEvent(-500104, 42, 15, "Жми сюда, казино и ставки")))

	n, err := f.client.ClientRequest.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	msgs, err := f.client.ChatMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, msgs)
}

func TestPipeline_OversizedMessageDropped(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	f.createChat(t, -500105)
	huge := strings.Repeat("а", maxMessageLen+1)
	require.NoError(t, f.pipeline.HandleEvent(ctx, messageEvent(-500105, 42, 16, huge)))

	msgs, err := f.client.ChatMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, msgs)
}

func TestPipeline_MonitoringDisabledSkips(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	c := f.createChat(t, -500106)
	_, err := c.Update().SetMonitoringEnabled(false).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.pipeline.HandleEvent(ctx, messageEvent(-500106, 42, 17, "Как оплатить счёт?")))
	msgs, err := f.client.ChatMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, msgs)
}

func TestPipeline_BotRemovedDisablesChat(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	f.createChat(t, -500107)
	require.NoError(t, f.pipeline.HandleEvent(ctx, &models.ChatEvent{
		Type: models.EventBotRemoved,
		Chat: models.EventChat{ID: -500107, Type: "supergroup"},
		Date: time.Now(),
	}))

	c, err := f.client.Chat.Get(ctx, -500107)
	require.NoError(t, err)
	assert.False(t, c.MonitoringEnabled)
	assert.False(t, c.SLAEnabled)
	assert.NotNil(t, c.DeletedAt)
}

func TestPipeline_MigrationRepointsRequests(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	f.createChat(t, -500108)
	require.NoError(t, f.pipeline.HandleEvent(ctx, messageEvent(-500108, 42, 18, "Нужна выписка по счёту")))

	require.NoError(t, f.pipeline.HandleEvent(ctx, &models.ChatEvent{
		Type:           models.EventChatMigrated,
		Chat:           models.EventChat{ID: -500108, Type: "group"},
		MigratedFromID: -500108,
		MigratedToID:   -100500108,
		Date:           time.Now(),
	}))

	req, err := f.client.ClientRequest.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(-100500108), req.ChatID)
}

func TestPipeline_PrivateChatIgnored(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	event := messageEvent(42, 42, 19, "Как дела?")
	event.Chat.Type = "private"
	require.NoError(t, f.pipeline.HandleEvent(ctx, event))

	n, err := f.client.Chat.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
