package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatInvitation holds the schema definition for the ChatInvitation entity —
// a single-use onboarding token bound to a chat. Redemption is atomic: the
// pending -> used transition is a conditional update so two concurrent
// redemptions cannot both succeed.
type ChatInvitation struct {
	ent.Schema
}

// Fields of the ChatInvitation.
func (ChatInvitation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("token").
			Unique().
			Immutable(),
		field.Int64("chat_id"),
		field.Enum("status").
			Values("pending", "used", "expired", "revoked").
			Default("pending"),
		field.Time("expires_at"),
		field.Int64("used_by").
			Optional().
			Nillable(),
		field.Time("used_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatInvitation.
func (ChatInvitation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chat", Chat.Type).
			Ref("invitations").
			Field("chat_id").
			Unique().
			Required(),
	}
}

// Indexes of the ChatInvitation.
func (ChatInvitation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "status"),
		index.Fields("status", "expires_at"),
	}
}
