package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackResponse holds the schema definition for the FeedbackResponse
// entity — one survey answer. Ratings at or below the configured threshold
// trigger a low-rating alert to the chat's managers.
type FeedbackResponse struct {
	ent.Schema
}

// Fields of the FeedbackResponse.
func (FeedbackResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.Int64("chat_id"),
		field.Int("rating").
			Min(1).
			Max(5),
		field.Text("comment").
			Optional().
			Nillable(),
		field.Time("submitted_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the FeedbackResponse.
func (FeedbackResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chat", Chat.Type).
			Ref("feedback").
			Field("chat_id").
			Unique().
			Required(),
	}
}

// Indexes of the FeedbackResponse.
func (FeedbackResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "submitted_at"),
		index.Fields("rating"),
	}
}
