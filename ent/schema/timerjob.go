package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/teambuh/slamon/pkg/models"
)

// TimerJob holds the schema definition for the TimerJob entity — a durable
// delayed task. The primary key is the deterministic job id
// (sla:{type}:{request_id}:{level}), which makes scheduling idempotent:
// a second schedule with the same id is a no-op (first-wins).
//
// Lifecycle: scheduled -> running -> removed. Transient handler failures
// release the job back to scheduled with a bumped attempt count; jobs that
// exhaust attempts are parked as failed for operator inspection.
type TimerJob struct {
	ent.Schema
}

// Fields of the TimerJob.
func (TimerJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("job_type").
			Values("warning", "breach", "escalation", "reconcile", "delivery", "survey"),
		field.JSON("payload", models.TimerPayload{}),
		field.Time("due_at"),
		field.Enum("status").
			Values("scheduled", "running", "failed").
			Default("scheduled"),
		field.Int("attempts").
			Default(0),
		field.String("locked_by").
			Optional().
			Nillable().
			Comment("Worker id holding the claim"),
		field.Time("locked_at").
			Optional().
			Nillable().
			Comment("For stale-claim repair"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TimerJob.
func (TimerJob) Indexes() []ent.Index {
	return []ent.Index{
		// Due-job claim path.
		index.Fields("job_type", "status", "due_at"),
		// Stale running-claim repair.
		index.Fields("status", "locked_at"),
	}
}
