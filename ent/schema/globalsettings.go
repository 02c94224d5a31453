package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// GlobalSettings holds the schema definition for the GlobalSettings entity —
// a singleton row (id "default") with runtime-tunable SLA parameters.
// Environment variables are reserved for secrets only; everything an admin
// may change at runtime lives here.
type GlobalSettings struct {
	ent.Schema
}

// Fields of the GlobalSettings.
func (GlobalSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("settings_id").
			Unique().
			Immutable(),
		field.Int("default_sla_threshold_minutes").
			Default(60).
			Min(1).
			Max(1440),
		field.Int("warning_offset_minutes").
			Default(12).
			Comment("Minutes before breach at which the warning fires"),
		field.Int("escalation_interval_minutes").
			Default(30),
		field.Int("max_escalation_level").
			Default(5),
		field.JSON("global_manager_ids", []string{}).
			Optional(),
		field.Int("low_rating_threshold").
			Default(3).
			Min(1).
			Max(5),
		field.Int("sla_concurrency").
			Default(5),
		field.Int("sla_rate_limit_max").
			Default(30),
		field.Int("sla_rate_limit_window_ms").
			Default(1000),
		field.Int("reconcile_interval_minutes").
			Default(5),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
