package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data string
		want Callback
	}{
		{"notify_alert-123", Callback{Action: ActionNotify, AlertID: "alert-123"}},
		{"resolve_alert-123", Callback{Action: ActionResolve, AlertID: "alert-123"}},
		{"survey:rating:dlv-7:5", Callback{Action: ActionSurveyRating, DeliveryID: "dlv-7", Rating: 5}},
		{"survey:rating:dlv-7:1", Callback{Action: ActionSurveyRating, DeliveryID: "dlv-7", Rating: 1}},
		{"view_feedback_fb-9", Callback{Action: ActionViewFeedback, FeedbackID: "fb-9"}},
		{"template:use:tpl-1", Callback{Action: ActionTemplateUse, TemplateID: "tpl-1"}},
		{"template:cancel", Callback{Action: ActionTemplateCancel}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := ParseCallback(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseCallback_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"notify_",
		"resolve_",
		"survey:rating:dlv-7:0",
		"survey:rating:dlv-7:6",
		"survey:rating:dlv-7:abc",
		"survey:rating::3",
		"view_feedback_",
		"template:use:",
		"template:unknown",
		"something_else",
	}

	for _, data := range invalid {
		t.Run(data, func(t *testing.T) {
			_, err := ParseCallback(data)
			assert.ErrorIs(t, err, ErrUnknownCallback)
		})
	}
}

func TestCallbackDataBuilders_RoundTrip(t *testing.T) {
	cb, err := ParseCallback(NotifyCallbackData("a1"))
	require.NoError(t, err)
	assert.Equal(t, ActionNotify, cb.Action)

	cb, err = ParseCallback(ResolveCallbackData("a1"))
	require.NoError(t, err)
	assert.Equal(t, ActionResolve, cb.Action)

	cb, err = ParseCallback(SurveyCallbackData("d1", 3))
	require.NoError(t, err)
	assert.Equal(t, 3, cb.Rating)

	cb, err = ParseCallback(ViewFeedbackCallbackData("f1"))
	require.NoError(t, err)
	assert.Equal(t, "f1", cb.FeedbackID)
}
