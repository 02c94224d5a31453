package services

import (
	"context"
	"fmt"

	"github.com/teambuh/slamon/ent"
)

// settingsID is the fixed primary key of the singleton settings row.
const settingsID = "default"

// UpdateSettingsInput carries runtime-tunable SLA parameters. Nil fields
// are left unchanged.
type UpdateSettingsInput struct {
	DefaultSLAThresholdMinutes *int
	WarningOffsetMinutes       *int
	EscalationIntervalMinutes  *int
	MaxEscalationLevel         *int
	GlobalManagerIDs           []string
	LowRatingThreshold         *int
	SLAConcurrency             *int
	SLARateLimitMax            *int
	SLARateLimitWindowMs       *int
	ReconcileIntervalMinutes   *int
}

// SettingsService manages the global_settings singleton row. Runtime-tunable
// SLA parameters live here; environment variables carry secrets only.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(client *ent.Client) *SettingsService {
	if client == nil {
		panic("NewSettingsService: client must not be nil")
	}
	return &SettingsService{client: client}
}

// Get returns the settings row, creating it with schema defaults on first
// use. Concurrent first reads are resolved by the insert conflict.
func (s *SettingsService) Get(ctx context.Context) (*ent.GlobalSettings, error) {
	settings, err := s.client.GlobalSettings.Get(ctx, settingsID)
	if err == nil {
		return settings, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings, err = s.client.GlobalSettings.Create().
		SetID(settingsID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.GlobalSettings.Get(ctx, settingsID)
		}
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}
	return settings, nil
}

// Update applies the non-nil fields of input and returns the updated row.
func (s *SettingsService) Update(ctx context.Context, input UpdateSettingsInput) (*ent.GlobalSettings, error) {
	if input.LowRatingThreshold != nil && (*input.LowRatingThreshold < 1 || *input.LowRatingThreshold > 5) {
		return nil, NewValidationError("low_rating_threshold", "must be between 1 and 5")
	}
	if input.DefaultSLAThresholdMinutes != nil && (*input.DefaultSLAThresholdMinutes < 1 || *input.DefaultSLAThresholdMinutes > 1440) {
		return nil, NewValidationError("default_sla_threshold_minutes", "must be between 1 and 1440")
	}
	if input.MaxEscalationLevel != nil && *input.MaxEscalationLevel < 1 {
		return nil, NewValidationError("max_escalation_level", "must be at least 1")
	}

	// Ensure the singleton exists before updating.
	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}

	update := s.client.GlobalSettings.UpdateOneID(settingsID)
	if input.DefaultSLAThresholdMinutes != nil {
		update.SetDefaultSLAThresholdMinutes(*input.DefaultSLAThresholdMinutes)
	}
	if input.WarningOffsetMinutes != nil {
		update.SetWarningOffsetMinutes(*input.WarningOffsetMinutes)
	}
	if input.EscalationIntervalMinutes != nil {
		update.SetEscalationIntervalMinutes(*input.EscalationIntervalMinutes)
	}
	if input.MaxEscalationLevel != nil {
		update.SetMaxEscalationLevel(*input.MaxEscalationLevel)
	}
	if input.GlobalManagerIDs != nil {
		update.SetGlobalManagerIds(input.GlobalManagerIDs)
	}
	if input.LowRatingThreshold != nil {
		update.SetLowRatingThreshold(*input.LowRatingThreshold)
	}
	if input.SLAConcurrency != nil {
		update.SetSLAConcurrency(*input.SLAConcurrency)
	}
	if input.SLARateLimitMax != nil {
		update.SetSLARateLimitMax(*input.SLARateLimitMax)
	}
	if input.SLARateLimitWindowMs != nil {
		update.SetSLARateLimitWindowMs(*input.SLARateLimitWindowMs)
	}
	if input.ReconcileIntervalMinutes != nil {
		update.SetReconcileIntervalMinutes(*input.ReconcileIntervalMinutes)
	}

	settings, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}
