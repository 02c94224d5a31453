package telegram

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/teambuh/slamon/pkg/models"
)

// EventHandler consumes normalized chat events. Implemented by the
// ingestion pipeline.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *models.ChatEvent) error
}

// Normalize converts a raw bot update into a transport-neutral ChatEvent.
// Returns nil for update kinds the engine does not care about.
func Normalize(update tgbotapi.Update, botID int64) *models.ChatEvent {
	switch {
	case update.CallbackQuery != nil:
		return normalizeCallback(update.CallbackQuery)
	case update.MyChatMember != nil:
		return normalizeMembership(update.MyChatMember, botID)
	case update.Message != nil:
		return normalizeMessage(update.Message)
	default:
		return nil
	}
}

func normalizeMessage(msg *tgbotapi.Message) *models.ChatEvent {
	// Supergroup migration arrives as a service message in the old chat.
	if msg.MigrateToChatID != 0 {
		return &models.ChatEvent{
			Type:           models.EventChatMigrated,
			Chat:           chatOf(msg.Chat),
			MigratedFromID: msg.Chat.ID,
			MigratedToID:   msg.MigrateToChatID,
			Date:           time.Unix(int64(msg.Date), 0),
		}
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	event := &models.ChatEvent{
		Type:      models.EventMessage,
		Chat:      chatOf(msg.Chat),
		MessageID: int64(msg.MessageID),
		Text:      text,
		Date:      time.Unix(int64(msg.Date), 0),
	}
	if msg.From != nil {
		event.From = userOf(msg.From)
	}
	if msg.ReplyToMessage != nil {
		event.ReplyToMessageID = int64(msg.ReplyToMessage.MessageID)
		// The Bot API library predates forum topics; the reply target is
		// the closest thread anchor it exposes.
		event.ThreadID = event.ReplyToMessageID
	}
	return event
}

func normalizeCallback(cb *tgbotapi.CallbackQuery) *models.ChatEvent {
	event := &models.ChatEvent{
		Type: models.EventCallback,
		From: userOf(cb.From),
		Date: time.Now(),
		Callback: &models.EventCallbackData{
			ID:   cb.ID,
			Data: cb.Data,
		},
	}
	if cb.Message != nil {
		event.Chat = chatOf(cb.Message.Chat)
		event.Callback.MessageID = int64(cb.Message.MessageID)
	}
	return event
}

func normalizeMembership(member *tgbotapi.ChatMemberUpdated, botID int64) *models.ChatEvent {
	if member.NewChatMember.User == nil || member.NewChatMember.User.ID != botID {
		return nil
	}

	event := &models.ChatEvent{
		Type: models.EventMemberUpdated,
		Chat: chatOf(&member.Chat),
		From: userOf(&member.From),
		Date: time.Unix(int64(member.Date), 0),
	}

	switch member.NewChatMember.Status {
	case "member", "administrator":
		event.Type = models.EventBotAdded
	case "left", "kicked":
		event.Type = models.EventBotRemoved
	}
	return event
}

func chatOf(chat *tgbotapi.Chat) models.EventChat {
	if chat == nil {
		return models.EventChat{}
	}
	return models.EventChat{
		ID:    chat.ID,
		Type:  chat.Type,
		Title: chat.Title,
	}
}

func userOf(user *tgbotapi.User) models.EventUser {
	if user == nil {
		return models.EventUser{}
	}
	return models.EventUser{
		ID:        user.ID,
		Username:  user.UserName,
		FirstName: user.FirstName,
		IsBot:     user.IsBot,
	}
}

// Listener runs the long-polling update loop and feeds normalized events to
// the handler. Webhook deployments bypass this and post updates to the API
// instead.
type Listener struct {
	client  *BotClient
	handler EventHandler
}

// NewListener creates an update listener.
func NewListener(client *BotClient, handler EventHandler) *Listener {
	return &Listener{client: client, handler: handler}
}

// Run polls for updates until ctx is cancelled. Handler errors are logged,
// never fatal: one bad update must not stop the intake loop.
func (l *Listener) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	cfg.AllowedUpdates = []string{"message", "callback_query", "my_chat_member"}

	updates := l.client.bot.GetUpdatesChan(cfg)
	slog.Info("Telegram update listener started")

	for {
		select {
		case <-ctx.Done():
			l.client.bot.StopReceivingUpdates()
			slog.Info("Telegram update listener stopped")
			return
		case update, ok := <-updates:
			if !ok {
				slog.Info("Telegram update channel closed")
				return
			}
			event := Normalize(update, l.client.BotID())
			if event == nil {
				continue
			}
			if err := l.handler.HandleEvent(ctx, event); err != nil {
				slog.Error("Failed to handle chat event",
					"event_type", event.Type,
					"chat_id", event.Chat.ID,
					"error", err)
			}
		}
	}
}
