package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity —
// a record of every processed inbound message, whether or not it opened
// a request. FAQ-handled messages are recorded here with faq_handled set.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_message_id").
			Unique().
			Immutable(),
		field.Int64("chat_id"),
		field.Int64("message_id"),
		field.Int64("sender_id"),
		field.String("sender_username").
			Default(""),
		field.Text("text").
			Default(""),
		field.Bool("from_accountant").
			Default(false),
		field.Bool("faq_handled").
			Default(false),
		field.String("request_id").
			Optional().
			Nillable().
			Comment("Set when the message opened or answered a request"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chat", Chat.Type).
			Ref("messages").
			Field("chat_id").
			Unique().
			Required(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "message_id"),
		index.Fields("chat_id", "created_at"),
	}
}
