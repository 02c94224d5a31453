package sla

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/metrics"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/services"
	"github.com/teambuh/slamon/pkg/timer"
)

// surveyDelay is how long after an answered request the satisfaction
// survey goes out.
const surveyDelay = time.Hour

// Resolver closes requests: by an inbound accountant reply or by a
// manager pressing the resolve button on an alert.
type Resolver struct {
	client   *ent.Client
	store    *timer.Store
	requests *services.RequestService
	settings *services.SettingsService
	logger   *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(client *ent.Client, store *timer.Store, requests *services.RequestService, settings *services.SettingsService) *Resolver {
	if client == nil || store == nil || requests == nil || settings == nil {
		panic("NewResolver: all collaborators must not be nil")
	}
	return &Resolver{
		client:   client,
		store:    store,
		requests: requests,
		settings: settings,
		logger:   slog.With("component", "sla.resolver"),
	}
}

// ResolveByReply resolves the request an accountant's message answers.
// A reply targeting a specific client message resolves that request;
// otherwise the oldest open request in the chat wins (FIFO). Returns the
// resolved request, or nil when no open request exists and the reply is
// just a chat message.
func (r *Resolver) ResolveByReply(ctx context.Context, chatID int64, replyToMessageID, responseMessageID int64) (*ent.ClientRequest, error) {
	req := r.findTarget(ctx, chatID, replyToMessageID)
	if req == nil {
		return nil, nil
	}
	if err := r.close(ctx, req, responseMessageID, clientrequest.StatusAnswered, slaalert.ResolvedActionAccountantResponded); err != nil {
		return nil, err
	}
	return r.requests.Get(ctx, req.ID)
}

// ResolveByManager closes the request behind an alert after a manager
// pressed the resolve button. Resolving an already-resolved alert is a
// no-op returning the current state.
func (r *Resolver) ResolveByManager(ctx context.Context, alertID string) (*ent.ClientRequest, error) {
	alert, err := r.client.SLAAlert.Get(ctx, alertID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load alert %s: %w", alertID, err)
	}

	req, err := r.requests.Get(ctx, alert.RequestID)
	if err != nil {
		return nil, err
	}
	if services.IsTerminalStatus(req.Status) {
		return req, nil
	}
	if err := r.close(ctx, req, 0, clientrequest.StatusClosed, slaalert.ResolvedActionMarkResolved); err != nil {
		return nil, err
	}
	return r.requests.Get(ctx, req.ID)
}

// findTarget picks the request a reply resolves: thread-exact when the
// reply references a client message that opened a request, FIFO otherwise.
func (r *Resolver) findTarget(ctx context.Context, chatID int64, replyToMessageID int64) *ent.ClientRequest {
	if replyToMessageID != 0 {
		req, err := r.requests.FindByMessage(ctx, chatID, replyToMessageID)
		if err == nil && !services.IsTerminalStatus(req.Status) {
			return req
		}
	}
	req, err := r.requests.OldestOpen(ctx, chatID)
	if err != nil {
		return nil
	}
	return req
}

// close cancels the request's timers and commits the terminal transition
// with the alert resolution in one transaction. Cancellation happens
// first: a timer firing racing the commit loads the terminal state and
// drops.
func (r *Resolver) close(ctx context.Context, req *ent.ClientRequest, responseMessageID int64, status clientrequest.Status, action slaalert.ResolvedAction) error {
	settings, err := r.settings.Get(ctx)
	if err != nil {
		return err
	}
	if err := r.store.CancelRequestTimers(ctx, req.ID, settings.MaxEscalationLevel); err != nil {
		return err
	}

	now := time.Now()
	responseMinutes := int(now.Sub(req.ReceivedAt).Minutes())

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start resolve transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	update := tx.ClientRequest.UpdateOneID(req.ID).
		SetStatus(status).
		SetAnsweredAt(now)
	if responseMessageID != 0 {
		update.SetResponseMessageID(responseMessageID)
	}
	if req.ResponseTimeMinutes == nil {
		update.SetResponseTimeMinutes(responseMinutes)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to close request %s: %w", req.ID, err)
	}

	if _, err := tx.SLAAlert.Update().
		Where(
			slaalert.RequestIDEQ(req.ID),
			slaalert.ResolvedActionIsNil(),
		).
		SetResolvedAction(action).
		ClearNextEscalationAt().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to resolve alerts for request %s: %w", req.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit resolution of request %s: %w", req.ID, err)
	}

	metrics.ResponseTime.Observe(float64(responseMinutes))
	r.logger.Info("Request resolved",
		"request_id", req.ID,
		"chat_id", req.ChatID,
		"status", status,
		"action", action,
		"response_time_minutes", responseMinutes)

	// Satisfaction survey goes out later; answered requests only.
	if status == clientrequest.StatusAnswered {
		if err := r.store.Schedule(ctx, timer.SurveyJobID(req.ID), timerjob.JobTypeSurvey,
			models.TimerPayload{RequestID: req.ID, ChatID: req.ChatID}, now.Add(surveyDelay)); err != nil {
			r.logger.Warn("Failed to schedule satisfaction survey",
				"request_id", req.ID, "error", err)
		}
	}
	return nil
}
