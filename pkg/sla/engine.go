// Package sla is the escalation engine: timer firings, recipient tiering,
// accountant-reply resolution, and reconciliation of lost timers. All
// handlers are replay-safe: a late or duplicated firing loads current
// request state and drops when the work is already done.
package sla

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/metrics"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/timer"
)

// BreachNotifier posts a breach notice into the client chat itself.
// Implemented by the delivery service; nil disables in-chat notices.
type BreachNotifier interface {
	NotifyChatOfBreach(ctx context.Context, chat *ent.Chat, request *ent.ClientRequest) error
}

// Engine handles warning, breach, and escalation timer firings.
type Engine struct {
	client   *ent.Client
	store    *timer.Store
	settings *services.SettingsService
	notifier BreachNotifier
	logger   *slog.Logger
}

// NewEngine creates the escalation engine. notifier may be nil.
func NewEngine(client *ent.Client, store *timer.Store, settings *services.SettingsService, notifier BreachNotifier) *Engine {
	if client == nil || store == nil || settings == nil {
		panic("NewEngine: client, store and settings must not be nil")
	}
	return &Engine{
		client:   client,
		store:    store,
		settings: settings,
		notifier: notifier,
		logger:   slog.With("component", "sla.engine"),
	}
}

// EffectiveThreshold returns the chat's SLA window in minutes: the per-chat
// override when set, otherwise the global default.
func EffectiveThreshold(chat *ent.Chat, settings *ent.GlobalSettings) int {
	if chat.SLAThresholdMinutes != nil {
		return *chat.SLAThresholdMinutes
	}
	return settings.DefaultSLAThresholdMinutes
}

// HandleWarning processes a warning timer firing.
func (e *Engine) HandleWarning(ctx context.Context, job *ent.TimerJob) error {
	metrics.TimersFired.WithLabelValues(string(timerjob.JobTypeWarning)).Inc()

	req, err := e.loadRequest(ctx, job.Payload.RequestID)
	if err != nil {
		return err
	}
	if req == nil || req.Status != clientrequest.StatusPending {
		e.logger.Debug("Warning dropped, request no longer pending",
			"request_id", job.Payload.RequestID)
		return nil
	}

	// A warning must not fire once the breach has been materialized, so
	// the guard checks open alerts at both level 0 and level 1.
	open, err := e.client.SLAAlert.Query().
		Where(
			slaalert.RequestIDEQ(req.ID),
			slaalert.EscalationLevelLTE(1),
			slaalert.ResolvedActionIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing alerts for request %s: %w", req.ID, err)
	}
	if open {
		e.logger.Debug("Warning dropped, alert already exists", "request_id", req.ID)
		return nil
	}

	settings, err := e.settings.Get(ctx)
	if err != nil {
		return err
	}
	recipients := ResolveRecipients(req.Edges.Chat, settings, 0)

	alert, err := e.client.SLAAlert.Create().
		SetID(uuid.New().String()).
		SetRequestID(req.ID).
		SetAlertType(slaalert.AlertTypeWarning).
		SetMinutesElapsed(minutesSince(req.ReceivedAt)).
		SetEscalationLevel(0).
		SetRecipientIds(recipients).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			e.logger.Debug("Warning alert already created", "request_id", req.ID)
			return nil
		}
		return fmt.Errorf("failed to create warning alert for request %s: %w", req.ID, err)
	}
	metrics.AlertsCreated.WithLabelValues(string(slaalert.AlertTypeWarning)).Inc()

	e.logger.Info("SLA warning raised",
		"request_id", req.ID,
		"chat_id", req.ChatID,
		"minutes_elapsed", alert.MinutesElapsed,
		"recipients", len(recipients))

	return e.enqueueDelivery(ctx, alert, req)
}

// HandleBreach processes a breach timer firing.
func (e *Engine) HandleBreach(ctx context.Context, job *ent.TimerJob) error {
	metrics.TimersFired.WithLabelValues(string(timerjob.JobTypeBreach)).Inc()
	return e.fireBreach(ctx, job.Payload.RequestID)
}

// fireBreach materializes the level-1 breach for a request. Shared by the
// breach timer handler and reconciliation's synthesized firing; all guards
// apply on both paths.
func (e *Engine) fireBreach(ctx context.Context, requestID string) error {
	req, err := e.loadRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil || services.IsTerminalStatus(req.Status) || req.Status == clientrequest.StatusEscalated {
		e.logger.Debug("Breach dropped, request already resolved or escalated",
			"request_id", requestID)
		return nil
	}

	settings, err := e.settings.Get(ctx)
	if err != nil {
		return err
	}
	recipients := ResolveRecipients(req.Edges.Chat, settings, 1)
	interval := time.Duration(settings.EscalationIntervalMinutes) * time.Minute

	// Breach flag, status change, and the L1 alert commit together.
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start breach transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.ClientRequest.UpdateOneID(req.ID).
		SetSLABreached(true).
		SetStatus(clientrequest.StatusEscalated).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark request %s breached: %w", req.ID, err)
	}

	create := tx.SLAAlert.Create().
		SetID(uuid.New().String()).
		SetRequestID(req.ID).
		SetAlertType(slaalert.AlertTypeBreach).
		SetMinutesElapsed(minutesSince(req.ReceivedAt)).
		SetEscalationLevel(1).
		SetRecipientIds(recipients)
	if settings.MaxEscalationLevel >= 2 {
		create.SetNextEscalationAt(time.Now().Add(interval))
	}
	alert, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			e.logger.Debug("Breach alert already exists", "request_id", req.ID)
			return nil
		}
		return fmt.Errorf("failed to create breach alert for request %s: %w", req.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit breach for request %s: %w", req.ID, err)
	}
	metrics.AlertsCreated.WithLabelValues(string(slaalert.AlertTypeBreach)).Inc()

	e.logger.Warn("SLA breached",
		"request_id", req.ID,
		"chat_id", req.ChatID,
		"minutes_elapsed", alert.MinutesElapsed,
		"recipients", len(recipients))

	// The in-chat notice is best-effort: a send failure must not re-run
	// the breach transition.
	if req.Edges.Chat.NotifyInChatOnBreach && e.notifier != nil {
		if err := e.notifier.NotifyChatOfBreach(ctx, req.Edges.Chat, req); err != nil {
			e.logger.Warn("In-chat breach notice failed",
				"chat_id", req.ChatID, "error", err)
		}
	}

	if err := e.enqueueDelivery(ctx, alert, req); err != nil {
		return err
	}
	if settings.MaxEscalationLevel >= 2 {
		return e.scheduleEscalation(ctx, req, 2, interval)
	}
	return nil
}

// HandleEscalation processes an escalation timer firing at payload.Level.
func (e *Engine) HandleEscalation(ctx context.Context, job *ent.TimerJob) error {
	metrics.TimersFired.WithLabelValues(string(timerjob.JobTypeEscalation)).Inc()

	level := job.Payload.Level
	req, err := e.loadRequest(ctx, job.Payload.RequestID)
	if err != nil {
		return err
	}
	if req == nil || services.IsTerminalStatus(req.Status) {
		e.logger.Debug("Escalation dropped, request terminal",
			"request_id", job.Payload.RequestID, "level", level)
		return nil
	}

	// The chain is over when its latest alert is already resolved.
	latest, err := e.client.SLAAlert.Query().
		Where(slaalert.RequestIDEQ(req.ID)).
		Order(ent.Desc(slaalert.FieldEscalationLevel), ent.Desc(slaalert.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load alert chain for request %s: %w", req.ID, err)
	}
	if latest == nil || latest.ResolvedAction != nil {
		e.logger.Debug("Escalation dropped, alert chain resolved",
			"request_id", req.ID, "level", level)
		return nil
	}
	if latest.EscalationLevel >= level {
		e.logger.Debug("Escalation dropped, level already materialized",
			"request_id", req.ID, "level", level)
		return nil
	}

	settings, err := e.settings.Get(ctx)
	if err != nil {
		return err
	}
	recipients := ResolveRecipients(req.Edges.Chat, settings, level)
	interval := time.Duration(settings.EscalationIntervalMinutes) * time.Minute
	final := level >= settings.MaxEscalationLevel

	create := e.client.SLAAlert.Create().
		SetID(uuid.New().String()).
		SetRequestID(req.ID).
		SetAlertType(slaalert.AlertTypeBreach).
		SetMinutesElapsed(minutesSince(req.ReceivedAt)).
		SetEscalationLevel(level).
		SetRecipientIds(recipients)
	if !final {
		create.SetNextEscalationAt(time.Now().Add(interval))
	}
	alert, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			e.logger.Debug("Escalation alert already exists",
				"request_id", req.ID, "level", level)
			return nil
		}
		return fmt.Errorf("failed to create escalation alert for request %s: %w", req.ID, err)
	}
	metrics.AlertsCreated.WithLabelValues(string(slaalert.AlertTypeBreach)).Inc()
	metrics.EscalationLevel.Observe(float64(level))

	e.logger.Warn("SLA escalation raised",
		"request_id", req.ID,
		"chat_id", req.ChatID,
		"level", level,
		"final", final,
		"recipients", len(recipients))

	if err := e.enqueueDelivery(ctx, alert, req); err != nil {
		return err
	}

	if final {
		// The ladder is exhausted: close the chain so no later firing can
		// extend it.
		_, err := e.client.SLAAlert.Update().
			Where(
				slaalert.RequestIDEQ(req.ID),
				slaalert.ResolvedActionIsNil(),
			).
			SetResolvedAction(slaalert.ResolvedActionAutoExpired).
			ClearNextEscalationAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to auto-expire alert chain for request %s: %w", req.ID, err)
		}
		e.logger.Info("Escalation chain auto-expired",
			"request_id", req.ID, "max_level", settings.MaxEscalationLevel)
		return nil
	}
	return e.scheduleEscalation(ctx, req, level+1, interval)
}

// loadRequest returns the request with its chat, or nil when it no longer
// exists (retention may have removed it).
func (e *Engine) loadRequest(ctx context.Context, requestID string) (*ent.ClientRequest, error) {
	req, err := e.client.ClientRequest.Query().
		Where(clientrequest.IDEQ(requestID)).
		WithChat().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	return req, nil
}

func (e *Engine) enqueueDelivery(ctx context.Context, alert *ent.SLAAlert, req *ent.ClientRequest) error {
	if len(alert.RecipientIds) == 0 {
		e.logger.Warn("No recipients configured, skipping alert delivery",
			"request_id", req.ID, "alert_id", alert.ID, "level", alert.EscalationLevel)
		return nil
	}
	return e.store.Schedule(ctx, timer.DeliveryJobID(alert.ID), timerjob.JobTypeDelivery,
		models.TimerPayload{
			AlertID:   alert.ID,
			RequestID: req.ID,
			ChatID:    req.ChatID,
		}, time.Now())
}

func (e *Engine) scheduleEscalation(ctx context.Context, req *ent.ClientRequest, level int, interval time.Duration) error {
	return e.store.Schedule(ctx, timer.EscalationJobID(req.ID, level), timerjob.JobTypeEscalation,
		models.TimerPayload{
			RequestID: req.ID,
			ChatID:    req.ChatID,
			Level:     level,
		}, time.Now().Add(interval))
}

func minutesSince(t time.Time) int {
	return int(time.Since(t).Minutes())
}
