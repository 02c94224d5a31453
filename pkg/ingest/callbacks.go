package ingest

import (
	"context"
	"errors"
	"time"

	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/delivery"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/telegram"
	"github.com/teambuh/slamon/pkg/timer"
)

// handleCallback routes an inline-keyboard button press.
func (p *Pipeline) handleCallback(ctx context.Context, event *models.ChatEvent) error {
	if event.Callback == nil {
		return nil
	}

	cb, err := telegram.ParseCallback(event.Callback.Data)
	if err != nil {
		p.logger.Warn("Ignoring unknown callback data", "data", event.Callback.Data)
		return p.answer(ctx, event, "")
	}

	switch cb.Action {
	case telegram.ActionResolve:
		return p.handleResolve(ctx, event, cb.AlertID)
	case telegram.ActionNotify:
		return p.handleNotify(ctx, event, cb.AlertID)
	case telegram.ActionSurveyRating:
		return p.handleSurveyRating(ctx, event, cb.DeliveryID, cb.Rating)
	case telegram.ActionViewFeedback:
		return p.handleViewFeedback(ctx, event, cb.FeedbackID)
	case telegram.ActionTemplateUse, telegram.ActionTemplateCancel:
		// Reply templates are composed client-side; the press only needs an
		// acknowledgement so the spinner stops.
		return p.answer(ctx, event, "")
	default:
		return nil
	}
}

func (p *Pipeline) handleResolve(ctx context.Context, event *models.ChatEvent, alertID string) error {
	req, err := p.deps.Resolver.ResolveByManager(ctx, alertID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return p.answer(ctx, event, "Обращение не найдено")
		}
		return err
	}

	p.logger.Info("Request closed via alert button",
		"request_id", req.ID, "alert_id", alertID, "by", event.From.ID)
	return p.answer(ctx, event, "✅ Обращение закрыто")
}

func (p *Pipeline) handleNotify(ctx context.Context, event *models.ChatEvent, alertID string) error {
	if p.deps.Delivery == nil {
		return p.answer(ctx, event, "")
	}
	if err := p.deps.Delivery.SendReminder(ctx, alertID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return p.answer(ctx, event, "Обращение уже закрыто")
		}
		return err
	}
	return p.answer(ctx, event, "🔔 Напоминание отправлено")
}

func (p *Pipeline) handleSurveyRating(ctx context.Context, event *models.ChatEvent, requestID string, rating int) error {
	// The survey lives in the client chat; the request carries the
	// authoritative chat id in case the button outlived a migration.
	chatID := event.Chat.ID
	if req, err := p.deps.Requests.Get(ctx, requestID); err == nil {
		chatID = req.ChatID
	}

	settings, err := p.deps.Settings.Get(ctx)
	if err != nil {
		return err
	}

	feedback, low, err := p.deps.Feedback.Submit(ctx, services.SubmitFeedbackInput{
		ChatID: chatID,
		Rating: rating,
	}, settings.LowRatingThreshold)
	if err != nil {
		return err
	}

	if low {
		err := p.deps.Store.Schedule(ctx, timer.DeliveryJobID(feedback.ID),
			timerjob.JobTypeDelivery,
			models.TimerPayload{FeedbackID: feedback.ID, RequestID: requestID, ChatID: chatID},
			time.Now())
		if err != nil {
			p.logger.Warn("Failed to enqueue low-rating alert",
				"feedback_id", feedback.ID, "error", err)
		}
	}

	p.logger.Info("Survey rating received",
		"chat_id", chatID, "rating", rating, "low", low)
	return p.answer(ctx, event, "Спасибо за оценку!")
}

func (p *Pipeline) handleViewFeedback(ctx context.Context, event *models.ChatEvent, feedbackID string) error {
	feedback, err := p.deps.Feedback.Get(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return p.answer(ctx, event, "Отзыв не найден")
		}
		return err
	}
	chat, err := p.deps.Chats.Get(ctx, feedback.ChatID)
	if err != nil {
		return err
	}

	// The details go to wherever the button was pressed (the manager's
	// alert conversation).
	if _, err := p.deps.Sender.SendMessage(ctx, event.Chat.ID,
		delivery.ComposeFeedbackDetails(feedback, chat), nil); err != nil {
		return err
	}
	return p.answer(ctx, event, "")
}

func (p *Pipeline) answer(ctx context.Context, event *models.ChatEvent, text string) error {
	if err := p.deps.Sender.AnswerCallback(ctx, event.Callback.ID, text); err != nil {
		p.logger.Warn("Failed to answer callback", "error", err)
	}
	return nil
}
