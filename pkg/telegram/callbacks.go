package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnknownCallback indicates callback data outside the button grammar.
var ErrUnknownCallback = errors.New("unknown callback data")

// CallbackAction identifies which button was pressed.
type CallbackAction string

// Callback actions. The wire strings are fixed: buttons already delivered
// to managers keep working across deploys only if parsing stays stable.
const (
	ActionNotify         CallbackAction = "notify"
	ActionResolve        CallbackAction = "resolve"
	ActionSurveyRating   CallbackAction = "survey_rating"
	ActionViewFeedback   CallbackAction = "view_feedback"
	ActionTemplateUse    CallbackAction = "template_use"
	ActionTemplateCancel CallbackAction = "template_cancel"
)

// Callback is a parsed button press.
type Callback struct {
	Action     CallbackAction
	AlertID    string
	DeliveryID string
	Rating     int
	FeedbackID string
	TemplateID string
}

// ParseCallback parses inline keyboard callback data:
//
//	notify_{alertId}
//	resolve_{alertId}
//	survey:rating:{deliveryId}:{1..5}
//	view_feedback_{feedbackId}
//	template:use:{templateId}
//	template:cancel
func ParseCallback(data string) (*Callback, error) {
	switch {
	case strings.HasPrefix(data, "notify_"):
		id := strings.TrimPrefix(data, "notify_")
		if id == "" {
			return nil, ErrUnknownCallback
		}
		return &Callback{Action: ActionNotify, AlertID: id}, nil

	case strings.HasPrefix(data, "resolve_"):
		id := strings.TrimPrefix(data, "resolve_")
		if id == "" {
			return nil, ErrUnknownCallback
		}
		return &Callback{Action: ActionResolve, AlertID: id}, nil

	case strings.HasPrefix(data, "survey:rating:"):
		rest := strings.TrimPrefix(data, "survey:rating:")
		parts := strings.Split(rest, ":")
		if len(parts) != 2 || parts[0] == "" {
			return nil, ErrUnknownCallback
		}
		rating, err := strconv.Atoi(parts[1])
		if err != nil || rating < 1 || rating > 5 {
			return nil, ErrUnknownCallback
		}
		return &Callback{Action: ActionSurveyRating, DeliveryID: parts[0], Rating: rating}, nil

	case strings.HasPrefix(data, "view_feedback_"):
		id := strings.TrimPrefix(data, "view_feedback_")
		if id == "" {
			return nil, ErrUnknownCallback
		}
		return &Callback{Action: ActionViewFeedback, FeedbackID: id}, nil

	case data == "template:cancel":
		return &Callback{Action: ActionTemplateCancel}, nil

	case strings.HasPrefix(data, "template:use:"):
		id := strings.TrimPrefix(data, "template:use:")
		if id == "" {
			return nil, ErrUnknownCallback
		}
		return &Callback{Action: ActionTemplateUse, TemplateID: id}, nil

	default:
		return nil, ErrUnknownCallback
	}
}

// NotifyCallbackData builds the reminder button payload for an alert.
func NotifyCallbackData(alertID string) string { return "notify_" + alertID }

// ResolveCallbackData builds the resolve button payload for an alert.
func ResolveCallbackData(alertID string) string { return "resolve_" + alertID }

// SurveyCallbackData builds a rating button payload for a survey delivery.
func SurveyCallbackData(deliveryID string, rating int) string {
	return "survey:rating:" + deliveryID + ":" + strconv.Itoa(rating)
}

// ViewFeedbackCallbackData builds the inspect button payload for feedback.
func ViewFeedbackCallbackData(feedbackID string) string {
	return "view_feedback_" + feedbackID
}
