package delivery

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/config"
	"github.com/teambuh/slamon/pkg/database"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/telegram"
	testdb "github.com/teambuh/slamon/test/database"
)

type sentMessage struct {
	ChatID   int64
	Text     string
	Keyboard *tgbotapi.InlineKeyboardMarkup
}

// fakeSender records every send and can simulate blocked recipients and
// transient failures.
type fakeSender struct {
	mu        sync.Mutex
	sent      []sentMessage
	blocked   map[int64]bool
	failFirst map[int64]int
}

func newFakeSender() *fakeSender {
	return &fakeSender{blocked: map[int64]bool{}, failFirst: map[int64]int{}}
}

func (f *fakeSender) SendMessage(_ context.Context, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.blocked[chatID] {
		f.sent = append(f.sent, sentMessage{ChatID: chatID, Text: text, Keyboard: keyboard})
		return 0, telegram.ErrBlocked
	}
	if f.failFirst[chatID] > 0 {
		f.failFirst[chatID]--
		return 0, assert.AnError
	}
	f.sent = append(f.sent, sentMessage{ChatID: chatID, Text: text, Keyboard: keyboard})
	return int64(len(f.sent)), nil
}

func (f *fakeSender) EditMessageText(context.Context, int64, int64, string, *tgbotapi.InlineKeyboardMarkup) error {
	return nil
}

func (f *fakeSender) AnswerCallback(context.Context, string, string) error { return nil }

func (f *fakeSender) ExportChatInviteLink(context.Context, int64) (string, error) {
	return "", nil
}

func (f *fakeSender) sentTo(chatID int64) []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sentMessage
	for _, m := range f.sent {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

type deliveryFixture struct {
	client *database.Client
	sender *fakeSender
	alerts *services.AlertService
	svc    *Service
}

func newDeliveryFixture(t *testing.T) *deliveryFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	sender := newFakeSender()
	alerts := services.NewAlertService(client.Client)
	svc := NewService(client.Client, sender, alerts, config.DeliveryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxElapsedTime: time.Second,
	})
	return &deliveryFixture{client: client, sender: sender, alerts: alerts, svc: svc}
}

func (f *deliveryFixture) createChat(t *testing.T, id int64) *ent.Chat {
	t.Helper()
	c, err := f.client.Chat.Create().
		SetID(id).
		SetTitle("ООО Ромашка").
		SetChatType(chat.ChatTypeSupergroup).
		SetSLAEnabled(true).
		SetMonitoringEnabled(true).
		SetAccountantIds([]string{"101"}).
		SetManagerIds([]string{"201"}).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func (f *deliveryFixture) createRequest(t *testing.T, chatID int64, id string) *ent.ClientRequest {
	t.Helper()
	req, err := f.client.ClientRequest.Create().
		SetID(id).
		SetChatID(chatID).
		SetMessageText("когда будет готов отчёт?").
		SetMessageID(10).
		SetClassification(clientrequest.ClassificationREQUEST).
		SetClientUsername("ivanov").
		SetReceivedAt(time.Now().Add(-70 * time.Minute)).
		Save(context.Background())
	require.NoError(t, err)
	return req
}

func (f *deliveryFixture) createAlert(t *testing.T, requestID string, recipients []string) *ent.SLAAlert {
	t.Helper()
	alert, err := f.alerts.Create(context.Background(), services.CreateAlertInput{
		RequestID:       requestID,
		AlertType:       slaalert.AlertTypeBreach,
		MinutesElapsed:  70,
		EscalationLevel: 1,
		RecipientIDs:    recipients,
	})
	require.NoError(t, err)
	return alert
}

func deliveryJob(alertID string) *ent.TimerJob {
	return &ent.TimerJob{
		ID:      "sla:delivery:" + alertID + ":0",
		JobType: timerjob.JobTypeDelivery,
		Payload: models.TimerPayload{AlertID: alertID},
	}
}

func TestService_DeliversAlertToAllRecipients(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	f.createChat(t, -900100)
	f.createRequest(t, -900100, "req-d1")
	alert := f.createAlert(t, "req-d1", []string{"101", "201"})

	require.NoError(t, f.svc.HandleDelivery(ctx, deliveryJob(alert.ID)))

	require.Len(t, f.sender.sentTo(101), 1)
	require.Len(t, f.sender.sentTo(201), 1)
	msg := f.sender.sentTo(101)[0]
	assert.Contains(t, msg.Text, "Нарушение SLA")
	assert.Contains(t, msg.Text, "ООО Ромашка")
	assert.Contains(t, msg.Text, "@ivanov")
	require.NotNil(t, msg.Keyboard)

	got, err := f.alerts.Get(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, slaalert.DeliveryStatusDelivered, got.DeliveryStatus)
	assert.Equal(t, 2, got.DeliveredCount)
	assert.Equal(t, 0, got.FailedCount)
}

func TestService_BlockedRecipientDoesNotStopFanOut(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	f.createChat(t, -900101)
	f.createRequest(t, -900101, "req-d2")
	alert := f.createAlert(t, "req-d2", []string{"101", "201"})
	f.sender.blocked[101] = true

	require.NoError(t, f.svc.HandleDelivery(ctx, deliveryJob(alert.ID)))

	// The blocked recipient gets exactly one attempt, no retries.
	assert.Len(t, f.sender.sentTo(101), 1)
	assert.Len(t, f.sender.sentTo(201), 1)

	got, err := f.alerts.Get(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, slaalert.DeliveryStatusDelivered, got.DeliveryStatus)
	assert.Equal(t, 1, got.DeliveredCount)
	assert.Equal(t, 1, got.FailedCount)
}

func TestService_TransientFailureIsRetried(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	f.createChat(t, -900102)
	f.createRequest(t, -900102, "req-d3")
	alert := f.createAlert(t, "req-d3", []string{"101"})
	f.sender.failFirst[101] = 2

	require.NoError(t, f.svc.HandleDelivery(ctx, deliveryJob(alert.ID)))

	require.Len(t, f.sender.sentTo(101), 1)
	got, err := f.alerts.Get(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DeliveredCount)
}

func TestService_AllRecipientsFailedMarksAlertFailed(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	f.createChat(t, -900103)
	f.createRequest(t, -900103, "req-d4")
	alert := f.createAlert(t, "req-d4", []string{"101"})
	f.sender.blocked[101] = true

	require.NoError(t, f.svc.HandleDelivery(ctx, deliveryJob(alert.ID)))

	got, err := f.alerts.Get(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, slaalert.DeliveryStatusFailed, got.DeliveryStatus)
	assert.Equal(t, 0, got.DeliveredCount)
	assert.Equal(t, 1, got.FailedCount)
}

func TestService_ResolvedAlertIsNotDelivered(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	f.createChat(t, -900108)
	f.createRequest(t, -900108, "req-d9")
	alert := f.createAlert(t, "req-d9", []string{"101", "201"})

	// An accountant reply resolves the alert while the delivery job is
	// still waiting for a worker.
	_, err := f.alerts.Resolve(ctx, alert.ID, slaalert.ResolvedActionAccountantResponded)
	require.NoError(t, err)

	require.NoError(t, f.svc.HandleDelivery(ctx, deliveryJob(alert.ID)))

	assert.Empty(t, f.sender.sent)
	got, err := f.alerts.Get(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, slaalert.DeliveryStatusPending, got.DeliveryStatus)
}

func TestService_MissingAlertDropsJob(t *testing.T) {
	f := newDeliveryFixture(t)
	require.NoError(t, f.svc.HandleDelivery(context.Background(), deliveryJob("no-such-alert")))
	assert.Empty(t, f.sender.sent)
}

func TestService_LowRatingGoesToManagers(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	f.createChat(t, -900104)
	f.createRequest(t, -900104, "req-d5")
	_, err := f.client.GlobalSettings.Create().SetGlobalManagerIds([]string{"901", "201"}).Save(ctx)
	require.NoError(t, err)

	fb, err := f.client.FeedbackResponse.Create().
		SetID("fb-1").
		SetChatID(-900104).
		SetRating(2).
		SetComment("долго ждали").
		SetSubmittedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	job := &ent.TimerJob{
		ID:      "sla:delivery:fb-1:0",
		JobType: timerjob.JobTypeDelivery,
		Payload: models.TimerPayload{FeedbackID: fb.ID, RequestID: "req-d5"},
	}
	require.NoError(t, f.svc.HandleDelivery(ctx, job))

	// Chat manager 201 plus global manager 901, deduplicated. Accountants
	// are not in the low-rating audience.
	assert.Len(t, f.sender.sentTo(201), 1)
	assert.Len(t, f.sender.sentTo(901), 1)
	assert.Empty(t, f.sender.sentTo(101))
	msg := f.sender.sentTo(201)[0]
	assert.Contains(t, msg.Text, "Низкая оценка")
	assert.Contains(t, msg.Text, "2/5")
	assert.Contains(t, msg.Text, "долго ждали")
}

func TestService_SurveyOnlyForAnsweredRequests(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	f.createChat(t, -900105)
	req := f.createRequest(t, -900105, "req-d6")
	job := &ent.TimerJob{
		ID:      "sla:survey:req-d6:0",
		JobType: timerjob.JobTypeSurvey,
		Payload: models.TimerPayload{RequestID: "req-d6", ChatID: -900105},
	}

	// Still pending: no survey.
	require.NoError(t, f.svc.HandleSurvey(ctx, job))
	assert.Empty(t, f.sender.sentTo(-900105))

	_, err := req.Update().SetStatus(clientrequest.StatusAnswered).Save(ctx)
	require.NoError(t, err)
	require.NoError(t, f.svc.HandleSurvey(ctx, job))

	sent := f.sender.sentTo(-900105)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "оцените")
	require.NotNil(t, sent[0].Keyboard)
	assert.Len(t, sent[0].Keyboard.InlineKeyboard[0], 5)
}

func TestService_ReminderTargetsAlertRecipients(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	f.createChat(t, -900106)
	f.createRequest(t, -900106, "req-d7")
	alert := f.createAlert(t, "req-d7", []string{"101"})

	require.NoError(t, f.svc.SendReminder(ctx, alert.ID))

	sent := f.sender.sentTo(101)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "Напоминание")
	assert.Nil(t, sent[0].Keyboard)
}

func TestService_BreachNoticeGoesToClientChat(t *testing.T) {
	f := newDeliveryFixture(t)
	ctx := context.Background()

	c := f.createChat(t, -900107)
	req := f.createRequest(t, -900107, "req-d8")

	require.NoError(t, f.svc.NotifyChatOfBreach(ctx, c, req))
	sent := f.sender.sentTo(-900107)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "передан старшему специалисту")
}
