// Package ingest turns normalized chat events into SLA state: requests,
// timers, FAQ replies, and resolution of open obligations.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/classify"
	"github.com/teambuh/slamon/pkg/delivery"
	"github.com/teambuh/slamon/pkg/faq"
	"github.com/teambuh/slamon/pkg/metrics"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/sla"
	"github.com/teambuh/slamon/pkg/telegram"
	"github.com/teambuh/slamon/pkg/timer"
)

// maxMessageLen is the ingress cap on message text, in runes. Longer
// messages are dropped before any processing.
const maxMessageLen = 10000

// Deps bundles the pipeline's collaborators.
type Deps struct {
	Client     *ent.Client
	Store      *timer.Store
	Chats      *services.ChatService
	Requests   *services.RequestService
	Messages   *services.MessageService
	FAQs       *services.FAQService
	Feedback   *services.FeedbackService
	Settings   *services.SettingsService
	Matcher    *faq.Matcher
	Classifier *classify.Classifier
	Resolver   *sla.Resolver
	Delivery   *delivery.Service
	Sender     telegram.Sender
}

// Pipeline consumes chat events from the update listener or the webhook
// endpoint. Implements telegram.EventHandler.
type Pipeline struct {
	deps   Deps
	logger *slog.Logger
}

// NewPipeline creates the ingestion pipeline.
func NewPipeline(deps Deps) *Pipeline {
	if deps.Client == nil || deps.Store == nil || deps.Chats == nil ||
		deps.Requests == nil || deps.Messages == nil || deps.Settings == nil ||
		deps.Matcher == nil || deps.Classifier == nil || deps.Resolver == nil ||
		deps.Sender == nil {
		panic("NewPipeline: missing required dependency")
	}
	return &Pipeline{
		deps:   deps,
		logger: slog.With("component", "ingest"),
	}
}

// HandleEvent routes one normalized event.
func (p *Pipeline) HandleEvent(ctx context.Context, event *models.ChatEvent) error {
	switch event.Type {
	case models.EventMessage:
		return p.handleMessage(ctx, event)
	case models.EventCallback:
		return p.handleCallback(ctx, event)
	case models.EventBotAdded:
		return p.handleBotAdded(ctx, event)
	case models.EventBotRemoved:
		return p.deps.Chats.HandleBotRemoved(ctx, event.Chat.ID)
	case models.EventChatMigrated:
		return p.deps.Chats.Migrate(ctx, event.MigratedFromID, event.MigratedToID)
	default:
		return nil
	}
}

func (p *Pipeline) handleBotAdded(ctx context.Context, event *models.ChatEvent) error {
	if !supportedChatType(event.Chat.Type) {
		return nil
	}
	chat, err := p.deps.Chats.Upsert(ctx, services.UpsertChatInput{
		ID:       event.Chat.ID,
		Title:    event.Chat.Title,
		ChatType: event.Chat.Type,
	})
	if err != nil {
		return err
	}
	p.logger.Info("Bot added to chat", "chat_id", chat.ID, "title", chat.Title)
	return nil
}

func (p *Pipeline) handleMessage(ctx context.Context, event *models.ChatEvent) error {
	if event.From.IsBot || !supportedChatType(event.Chat.Type) {
		return nil
	}

	text := strings.TrimSpace(event.Text)
	if utf8.RuneCountInString(text) > maxMessageLen {
		metrics.MessagesIngested.WithLabelValues("rejected").Inc()
		p.logger.Warn("Dropping oversized message",
			"chat_id", event.Chat.ID, "message_id", event.MessageID)
		return nil
	}

	chat, err := p.deps.Chats.Upsert(ctx, services.UpsertChatInput{
		ID:       event.Chat.ID,
		Title:    event.Chat.Title,
		ChatType: event.Chat.Type,
	})
	if err != nil {
		return err
	}
	if !chat.MonitoringEnabled {
		metrics.MessagesIngested.WithLabelValues("skipped").Inc()
		return nil
	}
	if text == "" {
		// Stickers, photos without captions, service messages.
		return nil
	}

	senderID := strconv.FormatInt(event.From.ID, 10)
	if services.IsAccountant(chat, senderID) {
		return p.handleAccountantReply(ctx, chat, event, text)
	}

	if handled, err := p.tryFAQ(ctx, chat, event, text); err != nil {
		p.logger.Warn("FAQ matching failed, continuing without short-circuit",
			"chat_id", chat.ID, "error", err)
	} else if handled {
		return nil
	}

	verdict := p.deps.Classifier.Classify(ctx, text)
	switch verdict.Category {
	case classify.CategoryRequest:
		return p.openRequest(ctx, chat, event, text)
	case classify.CategoryClarification:
		return p.recordClarification(ctx, chat, event, text)
	default:
		// SPAM and GRATITUDE are kept for analytics only.
		_, err := p.deps.Messages.Record(ctx, services.RecordMessageInput{
			ChatID:         chat.ID,
			MessageID:      event.MessageID,
			SenderID:       event.From.ID,
			SenderUsername: event.From.Username,
			Text:           text,
		})
		if err != nil {
			return err
		}
		metrics.MessagesIngested.WithLabelValues(strings.ToLower(verdict.Category)).Inc()
		return nil
	}
}

func (p *Pipeline) handleAccountantReply(ctx context.Context, chat *ent.Chat, event *models.ChatEvent, text string) error {
	req, err := p.deps.Resolver.ResolveByReply(ctx, chat.ID, event.ReplyToMessageID, event.MessageID)
	if err != nil {
		return err
	}

	requestID := ""
	if req != nil {
		requestID = req.ID
	}
	_, err = p.deps.Messages.Record(ctx, services.RecordMessageInput{
		ChatID:         chat.ID,
		MessageID:      event.MessageID,
		SenderID:       event.From.ID,
		SenderUsername: event.From.Username,
		Text:           text,
		FromAccountant: true,
		RequestID:      requestID,
	})
	if err != nil {
		return err
	}
	metrics.MessagesIngested.WithLabelValues("accountant_reply").Inc()
	return nil
}

// tryFAQ answers the message from the FAQ base when a keyword match
// exists. A matched message opens no request and starts no timers.
func (p *Pipeline) tryFAQ(ctx context.Context, chat *ent.Chat, event *models.ChatEvent, text string) (bool, error) {
	match, err := p.deps.Matcher.Match(ctx, text)
	if err != nil {
		return false, err
	}
	if match == nil {
		return false, nil
	}

	if _, err := p.deps.Sender.SendMessage(ctx, chat.ID, match.Item.Answer, nil); err != nil {
		// The answer did not reach the chat, so the question must still go
		// through classification.
		return false, err
	}

	if _, err := p.deps.Messages.Record(ctx, services.RecordMessageInput{
		ChatID:         chat.ID,
		MessageID:      event.MessageID,
		SenderID:       event.From.ID,
		SenderUsername: event.From.Username,
		Text:           text,
		FAQHandled:     true,
	}); err != nil {
		return true, err
	}
	if p.deps.FAQs != nil {
		if err := p.deps.FAQs.RecordUsage(ctx, match.Item.ID); err != nil {
			p.logger.Warn("Failed to bump FAQ usage count",
				"faq_id", match.Item.ID, "error", err)
		}
	}
	metrics.MessagesIngested.WithLabelValues("faq").Inc()
	return true, nil
}

// openRequest persists a new pending request and arms its warning and
// breach timers in the same transaction.
func (p *Pipeline) openRequest(ctx context.Context, chat *ent.Chat, event *models.ChatEvent, text string) error {
	settings, err := p.deps.Settings.Get(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	requestID := uuid.New().String()

	tx, err := p.deps.Client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	create := tx.ClientRequest.Create().
		SetID(requestID).
		SetChatID(chat.ID).
		SetClientUsername(event.From.Username).
		SetClientID(event.From.ID).
		SetMessageText(text).
		SetMessageID(event.MessageID).
		SetClassification(clientrequest.ClassificationREQUEST).
		SetReceivedAt(now)
	if event.ThreadID != 0 {
		create.SetThreadID(strconv.FormatInt(event.ThreadID, 10))
	}
	if _, err := create.Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to create request in chat %d: %w", chat.ID, err)
	}

	if _, err := services.RecordTx(ctx, tx, services.RecordMessageInput{
		ChatID:         chat.ID,
		MessageID:      event.MessageID,
		SenderID:       event.From.ID,
		SenderUsername: event.From.Username,
		Text:           text,
		RequestID:      requestID,
	}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if chat.SLAEnabled {
		threshold := sla.EffectiveThreshold(chat, settings)
		payload := models.TimerPayload{
			RequestID:        requestID,
			ChatID:           chat.ID,
			ThresholdMinutes: threshold,
		}
		if warn := threshold - settings.WarningOffsetMinutes; warn > 0 {
			err = p.deps.Store.ScheduleTx(ctx, tx, timer.WarningJobID(requestID),
				timerjob.JobTypeWarning, payload, now.Add(time.Duration(warn)*time.Minute))
			if err != nil {
				_ = tx.Rollback()
				return err
			}
		}
		err = p.deps.Store.ScheduleTx(ctx, tx, timer.BreachJobID(requestID),
			timerjob.JobTypeBreach, payload, now.Add(time.Duration(threshold)*time.Minute))
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit request: %w", err)
	}

	metrics.MessagesIngested.WithLabelValues("request").Inc()
	p.logger.Info("Request opened",
		"request_id", requestID,
		"chat_id", chat.ID,
		"sla_enabled", chat.SLAEnabled)
	return nil
}

// recordClarification stores the message and, when it replies to a known
// request message, attaches it to that request without opening a new
// obligation.
func (p *Pipeline) recordClarification(ctx context.Context, chat *ent.Chat, event *models.ChatEvent, text string) error {
	requestID := ""
	if event.ReplyToMessageID != 0 {
		req, err := p.deps.Requests.FindByMessage(ctx, chat.ID, event.ReplyToMessageID)
		if err == nil && !services.IsTerminalStatus(req.Status) {
			requestID = req.ID
		}
	}

	_, err := p.deps.Messages.Record(ctx, services.RecordMessageInput{
		ChatID:         chat.ID,
		MessageID:      event.MessageID,
		SenderID:       event.From.ID,
		SenderUsername: event.From.Username,
		Text:           text,
		RequestID:      requestID,
	})
	if err != nil {
		return err
	}
	metrics.MessagesIngested.WithLabelValues("clarification").Inc()
	return nil
}

func supportedChatType(t string) bool {
	return t == "group" || t == "supergroup"
}
