// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/teambuh/slamon/ent/globalsettings"
)

// GlobalSettings is the model entity for the GlobalSettings schema.
type GlobalSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DefaultSLAThresholdMinutes holds the value of the "default_sla_threshold_minutes" field.
	DefaultSLAThresholdMinutes int `json:"default_sla_threshold_minutes,omitempty"`
	// Minutes before breach at which the warning fires
	WarningOffsetMinutes int `json:"warning_offset_minutes,omitempty"`
	// EscalationIntervalMinutes holds the value of the "escalation_interval_minutes" field.
	EscalationIntervalMinutes int `json:"escalation_interval_minutes,omitempty"`
	// MaxEscalationLevel holds the value of the "max_escalation_level" field.
	MaxEscalationLevel int `json:"max_escalation_level,omitempty"`
	// GlobalManagerIds holds the value of the "global_manager_ids" field.
	GlobalManagerIds []string `json:"global_manager_ids,omitempty"`
	// LowRatingThreshold holds the value of the "low_rating_threshold" field.
	LowRatingThreshold int `json:"low_rating_threshold,omitempty"`
	// SLAConcurrency holds the value of the "sla_concurrency" field.
	SLAConcurrency int `json:"sla_concurrency,omitempty"`
	// SLARateLimitMax holds the value of the "sla_rate_limit_max" field.
	SLARateLimitMax int `json:"sla_rate_limit_max,omitempty"`
	// SLARateLimitWindowMs holds the value of the "sla_rate_limit_window_ms" field.
	SLARateLimitWindowMs int `json:"sla_rate_limit_window_ms,omitempty"`
	// ReconcileIntervalMinutes holds the value of the "reconcile_interval_minutes" field.
	ReconcileIntervalMinutes int `json:"reconcile_interval_minutes,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GlobalSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case globalsettings.FieldGlobalManagerIds:
			values[i] = new([]byte)
		case globalsettings.FieldDefaultSLAThresholdMinutes, globalsettings.FieldWarningOffsetMinutes, globalsettings.FieldEscalationIntervalMinutes, globalsettings.FieldMaxEscalationLevel, globalsettings.FieldLowRatingThreshold, globalsettings.FieldSLAConcurrency, globalsettings.FieldSLARateLimitMax, globalsettings.FieldSLARateLimitWindowMs, globalsettings.FieldReconcileIntervalMinutes:
			values[i] = new(sql.NullInt64)
		case globalsettings.FieldID:
			values[i] = new(sql.NullString)
		case globalsettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GlobalSettings fields.
func (_m *GlobalSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case globalsettings.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case globalsettings.FieldDefaultSLAThresholdMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_sla_threshold_minutes", values[i])
			} else if value.Valid {
				_m.DefaultSLAThresholdMinutes = int(value.Int64)
			}
		case globalsettings.FieldWarningOffsetMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field warning_offset_minutes", values[i])
			} else if value.Valid {
				_m.WarningOffsetMinutes = int(value.Int64)
			}
		case globalsettings.FieldEscalationIntervalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_interval_minutes", values[i])
			} else if value.Valid {
				_m.EscalationIntervalMinutes = int(value.Int64)
			}
		case globalsettings.FieldMaxEscalationLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_escalation_level", values[i])
			} else if value.Valid {
				_m.MaxEscalationLevel = int(value.Int64)
			}
		case globalsettings.FieldGlobalManagerIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field global_manager_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GlobalManagerIds); err != nil {
					return fmt.Errorf("unmarshal field global_manager_ids: %w", err)
				}
			}
		case globalsettings.FieldLowRatingThreshold:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field low_rating_threshold", values[i])
			} else if value.Valid {
				_m.LowRatingThreshold = int(value.Int64)
			}
		case globalsettings.FieldSLAConcurrency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sla_concurrency", values[i])
			} else if value.Valid {
				_m.SLAConcurrency = int(value.Int64)
			}
		case globalsettings.FieldSLARateLimitMax:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sla_rate_limit_max", values[i])
			} else if value.Valid {
				_m.SLARateLimitMax = int(value.Int64)
			}
		case globalsettings.FieldSLARateLimitWindowMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sla_rate_limit_window_ms", values[i])
			} else if value.Valid {
				_m.SLARateLimitWindowMs = int(value.Int64)
			}
		case globalsettings.FieldReconcileIntervalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reconcile_interval_minutes", values[i])
			} else if value.Valid {
				_m.ReconcileIntervalMinutes = int(value.Int64)
			}
		case globalsettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GlobalSettings.
// This includes values selected through modifiers, order, etc.
func (_m *GlobalSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GlobalSettings.
// Note that you need to call GlobalSettings.Unwrap() before calling this method if this GlobalSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GlobalSettings) Update() *GlobalSettingsUpdateOne {
	return NewGlobalSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GlobalSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GlobalSettings) Unwrap() *GlobalSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GlobalSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GlobalSettings) String() string {
	var builder strings.Builder
	builder.WriteString("GlobalSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("default_sla_threshold_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultSLAThresholdMinutes))
	builder.WriteString(", ")
	builder.WriteString("warning_offset_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.WarningOffsetMinutes))
	builder.WriteString(", ")
	builder.WriteString("escalation_interval_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationIntervalMinutes))
	builder.WriteString(", ")
	builder.WriteString("max_escalation_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxEscalationLevel))
	builder.WriteString(", ")
	builder.WriteString("global_manager_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.GlobalManagerIds))
	builder.WriteString(", ")
	builder.WriteString("low_rating_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowRatingThreshold))
	builder.WriteString(", ")
	builder.WriteString("sla_concurrency=")
	builder.WriteString(fmt.Sprintf("%v", _m.SLAConcurrency))
	builder.WriteString(", ")
	builder.WriteString("sla_rate_limit_max=")
	builder.WriteString(fmt.Sprintf("%v", _m.SLARateLimitMax))
	builder.WriteString(", ")
	builder.WriteString("sla_rate_limit_window_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.SLARateLimitWindowMs))
	builder.WriteString(", ")
	builder.WriteString("reconcile_interval_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReconcileIntervalMinutes))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GlobalSettingsSlice is a parsable slice of GlobalSettings.
type GlobalSettingsSlice []*GlobalSettings
