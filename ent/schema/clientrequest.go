package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClientRequest holds the schema definition for the ClientRequest entity —
// one client message that requires a human reply. This is the unit of SLA
// obligation. Only classification REQUEST carries active timers.
type ClientRequest struct {
	ent.Schema
}

// Fields of the ClientRequest.
func (ClientRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.Int64("chat_id").
			Comment("Mutable: repointed in bulk on supergroup migration"),
		field.String("client_username").
			Default(""),
		field.Int64("client_id").
			Optional().
			Comment("Telegram user id of the sender"),
		field.Text("message_text"),
		field.Int64("message_id").
			Comment("Telegram message id of the inbound message"),
		field.String("thread_id").
			Optional().
			Nillable().
			Comment("Links CLARIFICATION messages to an open prior request"),
		field.Enum("classification").
			Values("REQUEST", "SPAM", "GRATITUDE", "CLARIFICATION"),
		field.Time("received_at").
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "waiting_client", "transferred", "answered", "escalated", "closed").
			Default("pending"),
		field.Bool("sla_breached").
			Default(false).
			Comment("Monotonic: false -> true only"),
		field.Int64("response_message_id").
			Optional().
			Nillable(),
		field.Int("response_time_minutes").
			Optional().
			Nillable().
			Comment("Immutable once set"),
		field.Time("answered_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the ClientRequest.
func (ClientRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chat", Chat.Type).
			Ref("requests").
			Field("chat_id").
			Unique().
			Required(),
		edge.To("alerts", SLAAlert.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ClientRequest.
func (ClientRequest) Indexes() []ent.Index {
	return []ent.Index{
		// Open-request lookups: oldest pending/in_progress per chat.
		index.Fields("chat_id", "status", "received_at"),
		// Reconciliation sweep.
		index.Fields("status", "received_at"),
		index.Fields("chat_id", "message_id"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
