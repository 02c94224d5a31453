package models

// TimerPayload is the JSON body of a durable timer job. Only the fields
// relevant to the job's type are set: warning/breach/escalation jobs carry
// the request context, delivery jobs an alert id, survey jobs a feedback
// target.
type TimerPayload struct {
	RequestID        string `json:"request_id,omitempty"`
	ChatID           int64  `json:"chat_id,omitempty"`
	ThresholdMinutes int    `json:"threshold_minutes,omitempty"`
	Level            int    `json:"level,omitempty"`
	AlertID          string `json:"alert_id,omitempty"`
	FeedbackID       string `json:"feedback_id,omitempty"`
}
