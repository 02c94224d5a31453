// Package delivery sends alerts, reminders, surveys, and low-rating
// notifications through the bot transport, with per-recipient retries.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/feedbackresponse"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/config"
	"github.com/teambuh/slamon/pkg/metrics"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/sla"
	"github.com/teambuh/slamon/pkg/telegram"
)

// Service delivers outbound notifications. It is the handler behind the
// alert-delivery worker group and also serves synchronous sends (reminder
// button, in-chat breach notice).
type Service struct {
	client *ent.Client
	sender telegram.Sender
	alerts *services.AlertService
	cfg    config.DeliveryConfig
	logger *slog.Logger
}

// NewService creates a delivery service.
func NewService(client *ent.Client, sender telegram.Sender, alerts *services.AlertService, cfg config.DeliveryConfig) *Service {
	if client == nil || sender == nil || alerts == nil {
		panic("NewService: client, sender and alerts must not be nil")
	}
	return &Service{
		client: client,
		sender: sender,
		alerts: alerts,
		cfg:    cfg,
		logger: slog.With("component", "delivery"),
	}
}

// HandleDelivery processes one delivery timer job: an SLA alert fan-out
// when the payload carries an alert id, a low-rating fan-out when it
// carries a feedback id.
func (s *Service) HandleDelivery(ctx context.Context, job *ent.TimerJob) error {
	metrics.TimersFired.WithLabelValues(string(timerjob.JobTypeDelivery)).Inc()

	if job.Payload.FeedbackID != "" {
		return s.deliverLowRating(ctx, job.Payload.FeedbackID, job.Payload.RequestID)
	}
	return s.deliverAlert(ctx, job.Payload.AlertID)
}

func (s *Service) deliverAlert(ctx context.Context, alertID string) error {
	alert, err := s.alerts.Get(ctx, alertID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			s.logger.Debug("Delivery dropped, alert gone", "alert_id", alertID)
			return nil
		}
		return err
	}
	// The alert may have been resolved between enqueue and claim, e.g. by
	// an accountant reply landing just before the breach fan-out.
	if alert.ResolvedAction != nil {
		s.logger.Debug("Delivery dropped, alert already resolved",
			"alert_id", alertID,
			"action", *alert.ResolvedAction)
		return nil
	}

	req, err := s.client.ClientRequest.Query().
		Where(clientrequest.IDEQ(alert.RequestID)).
		WithChat().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.logger.Debug("Delivery dropped, request gone", "alert_id", alertID)
			return nil
		}
		return fmt.Errorf("failed to load request for alert %s: %w", alertID, err)
	}

	text := ComposeAlert(alert, req, req.Edges.Chat)
	delivered, failed := s.fanOut(ctx, alert.RecipientIds, text, AlertKeyboard(alert.ID))

	status := slaalert.DeliveryStatusDelivered
	if delivered == 0 {
		status = slaalert.DeliveryStatusFailed
	}
	if err := s.alerts.RecordDelivery(ctx, alert.ID, delivered, failed, status); err != nil {
		return err
	}

	s.logger.Info("Alert delivered",
		"alert_id", alert.ID,
		"request_id", alert.RequestID,
		"level", alert.EscalationLevel,
		"delivered", delivered,
		"failed", failed)
	return nil
}

// deliverLowRating fans a poor survey rating out to the chat's managers
// and the global managers. Rosters are resolved at delivery time, not at
// enqueue time, so roster edits between the two take effect.
func (s *Service) deliverLowRating(ctx context.Context, feedbackID string, _ string) error {
	feedback, err := s.client.FeedbackResponse.Query().
		Where(feedbackresponse.IDEQ(feedbackID)).
		WithChat().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.logger.Debug("Low-rating delivery dropped, feedback gone", "feedback_id", feedbackID)
			return nil
		}
		return fmt.Errorf("failed to load feedback %s: %w", feedbackID, err)
	}

	settings, err := s.client.GlobalSettings.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			settings = &ent.GlobalSettings{}
		} else {
			return fmt.Errorf("failed to load settings: %w", err)
		}
	}

	recipients := sla.LowRatingRecipients(feedback.Edges.Chat, settings)
	if len(recipients) == 0 {
		s.logger.Warn("No managers configured for low-rating alert",
			"feedback_id", feedbackID, "chat_id", feedback.ChatID)
		return nil
	}

	text := ComposeLowRatingAlert(feedback, feedback.Edges.Chat)
	delivered, failed := s.fanOut(ctx, recipients, text, LowRatingKeyboard(feedback.ID))

	s.logger.Info("Low-rating alert delivered",
		"feedback_id", feedback.ID,
		"chat_id", feedback.ChatID,
		"rating", feedback.Rating,
		"delivered", delivered,
		"failed", failed)
	return nil
}

// HandleSurvey processes a survey timer job: the satisfaction question is
// posted into the client chat with rating buttons.
func (s *Service) HandleSurvey(ctx context.Context, job *ent.TimerJob) error {
	metrics.TimersFired.WithLabelValues(string(timerjob.JobTypeSurvey)).Inc()

	req, err := s.client.ClientRequest.Query().
		Where(clientrequest.IDEQ(job.Payload.RequestID)).
		WithChat().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load request %s: %w", job.Payload.RequestID, err)
	}
	// Surveys only follow answered requests; a closed or reopened request
	// gets none.
	if req.Status != clientrequest.StatusAnswered {
		s.logger.Debug("Survey dropped, request not answered",
			"request_id", req.ID, "status", req.Status)
		return nil
	}
	if !req.Edges.Chat.MonitoringEnabled {
		return nil
	}

	_, err = s.sender.SendMessage(ctx, req.ChatID, ComposeSurvey(), SurveyKeyboard(req.ID))
	if err != nil {
		if errors.Is(err, telegram.ErrBlocked) {
			s.logger.Warn("Survey not sent, chat unreachable", "chat_id", req.ChatID)
			return nil
		}
		return err
	}
	return nil
}

// NotifyChatOfBreach posts the breach notice into the client chat.
// Implements the engine's notifier seam.
func (s *Service) NotifyChatOfBreach(ctx context.Context, c *ent.Chat, req *ent.ClientRequest) error {
	_, err := s.sender.SendMessage(ctx, c.ID, ComposeBreachNotice(), nil)
	return err
}

// SendReminder re-pings the alert's recipients after a manager pressed the
// reminder button.
func (s *Service) SendReminder(ctx context.Context, alertID string) error {
	alert, err := s.alerts.Get(ctx, alertID)
	if err != nil {
		return err
	}
	req, err := s.client.ClientRequest.Query().
		Where(clientrequest.IDEQ(alert.RequestID)).
		WithChat().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to load request for alert %s: %w", alertID, err)
	}

	text := ComposeReminder(req, req.Edges.Chat)
	delivered, failed := s.fanOut(ctx, alert.RecipientIds, text, nil)
	s.logger.Info("Reminder sent",
		"alert_id", alertID, "delivered", delivered, "failed", failed)
	return nil
}

// fanOut sends the same message to every recipient with per-recipient
// retries. Blocked recipients fail fast; transient failures retry with
// exponential backoff until the attempt or time budget runs out. The
// delivery job itself always succeeds: outcomes are recorded, not
// replayed, so nobody receives the alert twice.
func (s *Service) fanOut(ctx context.Context, recipients []string, text string, keyboard *tgbotapi.InlineKeyboardMarkup) (delivered, failed int) {
	for _, recipient := range recipients {
		userID, err := strconv.ParseInt(recipient, 10, 64)
		if err != nil {
			s.logger.Warn("Skipping malformed recipient id", "recipient", recipient)
			failed++
			continue
		}

		if err := s.sendWithRetry(ctx, userID, text, keyboard); err != nil {
			failed++
			if errors.Is(err, telegram.ErrBlocked) {
				metrics.DeliveriesTotal.WithLabelValues("blocked").Inc()
				s.logger.Warn("Recipient unreachable", "recipient", userID)
			} else {
				metrics.DeliveriesTotal.WithLabelValues("failed").Inc()
				s.logger.Warn("Delivery to recipient failed", "recipient", userID, "error", err)
			}
			continue
		}
		delivered++
		metrics.DeliveriesTotal.WithLabelValues("delivered").Inc()
	}
	return delivered, failed
}

func (s *Service) sendWithRetry(ctx context.Context, userID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.cfg.InitialBackoff
	policy.MaxElapsedTime = s.cfg.MaxElapsedTime

	attempts := uint64(1)
	if s.cfg.MaxAttempts > 1 {
		attempts = uint64(s.cfg.MaxAttempts)
	}

	return backoff.Retry(func() error {
		_, err := s.sender.SendMessage(ctx, userID, text, keyboard)
		if err == nil {
			return nil
		}
		if errors.Is(err, telegram.ErrBlocked) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(policy, attempts-1), ctx))
}
