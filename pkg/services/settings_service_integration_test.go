package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/teambuh/slamon/test/database"
)

func TestSettingsService_GetCreatesDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSettingsService(client.Client)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60, settings.DefaultSLAThresholdMinutes)
	assert.Equal(t, 12, settings.WarningOffsetMinutes)
	assert.Equal(t, 30, settings.EscalationIntervalMinutes)
	assert.Equal(t, 5, settings.MaxEscalationLevel)
	assert.Equal(t, 3, settings.LowRatingThreshold)
	assert.Equal(t, 5, settings.SLAConcurrency)
}

func TestSettingsService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSettingsService(client.Client)
	ctx := context.Background()

	threshold := 120
	level := 3
	settings, err := svc.Update(ctx, UpdateSettingsInput{
		DefaultSLAThresholdMinutes: &threshold,
		MaxEscalationLevel:         &level,
		GlobalManagerIDs:           []string{"900", "901"},
	})
	require.NoError(t, err)
	assert.Equal(t, 120, settings.DefaultSLAThresholdMinutes)
	assert.Equal(t, 3, settings.MaxEscalationLevel)
	assert.Equal(t, []string{"900", "901"}, settings.GlobalManagerIds)

	// Untouched fields keep their values.
	assert.Equal(t, 12, settings.WarningOffsetMinutes)
}

func TestSettingsService_UpdateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSettingsService(client.Client)
	ctx := context.Background()

	bad := 9
	_, err := svc.Update(ctx, UpdateSettingsInput{LowRatingThreshold: &bad})
	assert.True(t, IsValidationError(err))

	zero := 0
	_, err = svc.Update(ctx, UpdateSettingsInput{MaxEscalationLevel: &zero})
	assert.True(t, IsValidationError(err))
}
