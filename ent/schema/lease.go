package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Lease holds the schema definition for the Lease entity — a named
// expiring lock. Acquisition is a conditional insert-or-steal: a lease
// may be taken over only once its expires_at has passed. Used to keep
// the reconciliation sweep single-flight across instances.
type Lease struct {
	ent.Schema
}

// Fields of the Lease.
func (Lease) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lease_name").
			Unique().
			Immutable(),
		field.String("holder"),
		field.Time("expires_at"),
		field.Time("acquired_at").
			Default(time.Now),
	}
}
