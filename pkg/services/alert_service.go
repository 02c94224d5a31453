package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/slaalert"
)

// CreateAlertInput describes a new warning or escalation alert.
type CreateAlertInput struct {
	RequestID        string
	AlertType        slaalert.AlertType
	MinutesElapsed   int
	EscalationLevel  int
	RecipientIDs     []string
	NextEscalationAt *time.Time
}

// AlertService manages SLA alerts. Creation is idempotent per
// (request, alert_type, level): a partial unique index over open alerts
// turns the duplicate insert from a late-firing timer replay into
// ErrAlreadyExists.
type AlertService struct {
	client *ent.Client
}

// NewAlertService creates a new AlertService.
func NewAlertService(client *ent.Client) *AlertService {
	if client == nil {
		panic("NewAlertService: client must not be nil")
	}
	return &AlertService{client: client}
}

// Create inserts a new open alert. When an open alert for the same
// (request, type, level) already exists, the existing alert is returned
// together with ErrAlreadyExists so callers can skip re-delivery.
func (s *AlertService) Create(ctx context.Context, input CreateAlertInput) (*ent.SLAAlert, error) {
	if input.RequestID == "" {
		return nil, NewValidationError("request_id", "required")
	}
	if input.EscalationLevel < 0 {
		return nil, NewValidationError("escalation_level", "must not be negative")
	}

	create := s.client.SLAAlert.Create().
		SetID(uuid.New().String()).
		SetRequestID(input.RequestID).
		SetAlertType(input.AlertType).
		SetMinutesElapsed(input.MinutesElapsed).
		SetEscalationLevel(input.EscalationLevel).
		SetRecipientIds(input.RecipientIDs)
	if input.NextEscalationAt != nil {
		create.SetNextEscalationAt(*input.NextEscalationAt)
	}

	alert, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, lookupErr := s.findOpen(ctx, input.RequestID, input.AlertType, input.EscalationLevel)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return existing, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create alert for request %s: %w", input.RequestID, err)
	}
	return alert, nil
}

func (s *AlertService) findOpen(ctx context.Context, requestID string, alertType slaalert.AlertType, level int) (*ent.SLAAlert, error) {
	alert, err := s.client.SLAAlert.Query().
		Where(
			slaalert.RequestIDEQ(requestID),
			slaalert.AlertTypeEQ(alertType),
			slaalert.EscalationLevelEQ(level),
			slaalert.ResolvedActionIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open alert for request %s: %w", requestID, err)
	}
	return alert, nil
}

// Get returns an alert by id.
func (s *AlertService) Get(ctx context.Context, id string) (*ent.SLAAlert, error) {
	alert, err := s.client.SLAAlert.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get alert %s: %w", id, err)
	}
	return alert, nil
}

// ListOpenByRequest returns the request's open alerts, newest level first.
func (s *AlertService) ListOpenByRequest(ctx context.Context, requestID string) ([]*ent.SLAAlert, error) {
	return s.client.SLAAlert.Query().
		Where(
			slaalert.RequestIDEQ(requestID),
			slaalert.ResolvedActionIsNil(),
		).
		Order(ent.Desc(slaalert.FieldEscalationLevel)).
		All(ctx)
}

// ResolveOpenForRequest closes every open alert of the request with the
// given action and returns how many were closed. Already-resolved alerts
// keep their original action.
func (s *AlertService) ResolveOpenForRequest(ctx context.Context, requestID string, action slaalert.ResolvedAction) (int, error) {
	n, err := s.client.SLAAlert.Update().
		Where(
			slaalert.RequestIDEQ(requestID),
			slaalert.ResolvedActionIsNil(),
		).
		SetResolvedAction(action).
		ClearNextEscalationAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve alerts for request %s: %w", requestID, err)
	}
	return n, nil
}

// Resolve closes a single alert if it is still open. Resolving an
// already-resolved alert returns ErrTerminalState.
func (s *AlertService) Resolve(ctx context.Context, id string, action slaalert.ResolvedAction) (*ent.SLAAlert, error) {
	n, err := s.client.SLAAlert.Update().
		Where(
			slaalert.IDEQ(id),
			slaalert.ResolvedActionIsNil(),
		).
		SetResolvedAction(action).
		ClearNextEscalationAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve alert %s: %w", id, err)
	}
	if n == 0 {
		alert, getErr := s.Get(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		return alert, ErrTerminalState
	}
	return s.Get(ctx, id)
}

// RecordDelivery stores the per-recipient delivery outcome on the alert.
func (s *AlertService) RecordDelivery(ctx context.Context, id string, delivered, failed int, status slaalert.DeliveryStatus) error {
	err := s.client.SLAAlert.UpdateOneID(id).
		SetDeliveredCount(delivered).
		SetFailedCount(failed).
		SetDeliveryStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record delivery for alert %s: %w", id, err)
	}
	return nil
}
