package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FAQItem holds the schema definition for the FAQItem entity — a canned
// answer matched by keyword against inbound messages before any AI
// classification runs.
type FAQItem struct {
	ent.Schema
}

// Fields of the FAQItem.
func (FAQItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("faq_id").
			Unique().
			Immutable(),
		field.Text("question"),
		field.JSON("keywords", []string{}),
		field.Text("answer"),
		field.Bool("is_active").
			Default(true),
		field.Int("usage_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the FAQItem.
func (FAQItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
