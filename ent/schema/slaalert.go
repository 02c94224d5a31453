package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SLAAlert holds the schema definition for the SLAAlert entity — one
// escalation event (warning or breach at some level) attached to a request.
//
// Uniqueness invariant: at most one non-resolved alert per
// (request_id, alert_type, escalation_level). Ent cannot express the partial
// unique index, so it is created in pkg/database (CreatePartialUniqueIndexes).
type SLAAlert struct {
	ent.Schema
}

// Fields of the SLAAlert.
func (SLAAlert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.Enum("alert_type").
			Values("warning", "breach"),
		field.Int("minutes_elapsed").
			Comment("Minutes since received_at when the alert was created"),
		field.Int("escalation_level").
			Min(0).
			Comment("0 = warning, 1 = first breach, 2.. = escalations"),
		field.JSON("recipient_ids", []string{}).
			Optional(),
		field.Enum("delivery_status").
			Values("pending", "delivered", "failed").
			Default("pending"),
		field.Int("delivered_count").
			Default(0),
		field.Int("failed_count").
			Default(0),
		field.Time("next_escalation_at").
			Optional().
			Nillable(),
		field.Enum("resolved_action").
			Values("mark_resolved", "accountant_responded", "auto_expired").
			Optional().
			Nillable().
			Comment("nil while the alert is open"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SLAAlert.
func (SLAAlert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", ClientRequest.Type).
			Ref("alerts").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SLAAlert.
func (SLAAlert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "alert_type", "escalation_level"),
		index.Fields("delivery_status"),
		index.Fields("created_at"),
	}
}
