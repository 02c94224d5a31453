package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClassificationCache holds the schema definition for the ClassificationCache
// entity — a memo of AI classification results keyed by the SHA-256 of the
// normalized message text. Entries expire after a TTL and are purged by the
// retention cleanup loop.
type ClassificationCache struct {
	ent.Schema
}

// Fields of the ClassificationCache.
func (ClassificationCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("text_hash").
			Unique().
			Immutable().
			Comment("SHA-256 hex of the normalized text"),
		field.Enum("classification").
			Values("REQUEST", "SPAM", "GRATITUDE", "CLARIFICATION"),
		field.Float("confidence").
			Min(0).
			Max(1),
		field.String("source").
			Default("ai").
			Comment("ai or keyword; cache hits report source cache"),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ClassificationCache.
func (ClassificationCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
