package models

import "time"

// Event types produced by the update normalizer.
const (
	EventMessage       = "message"
	EventCallback      = "callback"
	EventBotAdded      = "bot_added"
	EventBotRemoved    = "bot_removed"
	EventChatMigrated  = "chat_migrated"
	EventMemberUpdated = "member_updated"
)

// EventChat identifies the chat an event originated in.
type EventChat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}

// EventUser identifies the sender of a message or callback.
type EventUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	IsBot     bool   `json:"is_bot,omitempty"`
}

// EventCallbackData carries a pressed inline-keyboard button.
type EventCallbackData struct {
	ID        string `json:"id"`
	Data      string `json:"data"`
	MessageID int64  `json:"message_id,omitempty"`
}

// ChatEvent is a transport-neutral view of an inbound bot update. The
// ingestion pipeline consumes these instead of raw Telegram updates so
// that classification and SLA logic stay independent of the bot API.
type ChatEvent struct {
	Type             string             `json:"type"`
	Chat             EventChat          `json:"chat"`
	From             EventUser          `json:"from"`
	MessageID        int64              `json:"message_id,omitempty"`
	Text             string             `json:"text,omitempty"`
	Date             time.Time          `json:"date"`
	ReplyToMessageID int64              `json:"reply_to_message_id,omitempty"`
	ThreadID         int64              `json:"thread_id,omitempty"`
	Callback         *EventCallbackData `json:"callback,omitempty"`
	MigratedFromID   int64              `json:"migrated_from_id,omitempty"`
	MigratedToID     int64              `json:"migrated_to_id,omitempty"`
}
