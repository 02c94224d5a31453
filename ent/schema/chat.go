package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chat holds the schema definition for a monitored Telegram chat.
// The external Telegram chat id is the primary key. Rows are never deleted:
// when the bot is removed, monitoring is switched off and the row retained.
type Chat struct {
	ent.Schema
}

// Fields of the Chat.
func (Chat) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("chat_id").
			Unique().
			Immutable().
			Comment("External Telegram chat id (negative for groups)"),
		field.String("title").
			Default("").
			MaxLen(255),
		field.Enum("chat_type").
			Values("group", "supergroup", "private").
			Default("group"),
		field.Bool("sla_enabled").
			Default(true),
		field.Int("sla_threshold_minutes").
			Optional().
			Nillable().
			Min(1).
			Max(1440).
			Comment("Per-chat override; nil falls back to global default"),
		field.Bool("monitoring_enabled").
			Default(true),
		field.Bool("is_24x7").
			Default(false),
		field.JSON("manager_ids", []string{}).
			Optional(),
		field.JSON("accountant_ids", []string{}).
			Optional(),
		field.Bool("notify_in_chat_on_breach").
			Default(false).
			Comment("Off by default to avoid chat-wide noise on breach"),
		field.Enum("client_tier").
			Values("standard", "priority").
			Default("standard"),
		field.String("invite_url").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete; set on bot removal"),
	}
}

// Edges of the Chat.
func (Chat) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("requests", ClientRequest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("feedback", FeedbackResponse.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("invitations", ChatInvitation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Chat.
func (Chat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("monitoring_enabled", "sla_enabled"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
