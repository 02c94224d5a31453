// Code generated by ent, DO NOT EDIT.

package globalsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the globalsettings type in the database.
	Label = "global_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "settings_id"
	// FieldDefaultSLAThresholdMinutes holds the string denoting the default_sla_threshold_minutes field in the database.
	FieldDefaultSLAThresholdMinutes = "default_sla_threshold_minutes"
	// FieldWarningOffsetMinutes holds the string denoting the warning_offset_minutes field in the database.
	FieldWarningOffsetMinutes = "warning_offset_minutes"
	// FieldEscalationIntervalMinutes holds the string denoting the escalation_interval_minutes field in the database.
	FieldEscalationIntervalMinutes = "escalation_interval_minutes"
	// FieldMaxEscalationLevel holds the string denoting the max_escalation_level field in the database.
	FieldMaxEscalationLevel = "max_escalation_level"
	// FieldGlobalManagerIds holds the string denoting the global_manager_ids field in the database.
	FieldGlobalManagerIds = "global_manager_ids"
	// FieldLowRatingThreshold holds the string denoting the low_rating_threshold field in the database.
	FieldLowRatingThreshold = "low_rating_threshold"
	// FieldSLAConcurrency holds the string denoting the sla_concurrency field in the database.
	FieldSLAConcurrency = "sla_concurrency"
	// FieldSLARateLimitMax holds the string denoting the sla_rate_limit_max field in the database.
	FieldSLARateLimitMax = "sla_rate_limit_max"
	// FieldSLARateLimitWindowMs holds the string denoting the sla_rate_limit_window_ms field in the database.
	FieldSLARateLimitWindowMs = "sla_rate_limit_window_ms"
	// FieldReconcileIntervalMinutes holds the string denoting the reconcile_interval_minutes field in the database.
	FieldReconcileIntervalMinutes = "reconcile_interval_minutes"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the globalsettings in the database.
	Table = "global_settings"
)

// Columns holds all SQL columns for globalsettings fields.
var Columns = []string{
	FieldID,
	FieldDefaultSLAThresholdMinutes,
	FieldWarningOffsetMinutes,
	FieldEscalationIntervalMinutes,
	FieldMaxEscalationLevel,
	FieldGlobalManagerIds,
	FieldLowRatingThreshold,
	FieldSLAConcurrency,
	FieldSLARateLimitMax,
	FieldSLARateLimitWindowMs,
	FieldReconcileIntervalMinutes,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDefaultSLAThresholdMinutes holds the default value on creation for the "default_sla_threshold_minutes" field.
	DefaultDefaultSLAThresholdMinutes int
	// DefaultSLAThresholdMinutesValidator is a validator for the "default_sla_threshold_minutes" field. It is called by the builders before save.
	DefaultSLAThresholdMinutesValidator func(int) error
	// DefaultWarningOffsetMinutes holds the default value on creation for the "warning_offset_minutes" field.
	DefaultWarningOffsetMinutes int
	// DefaultEscalationIntervalMinutes holds the default value on creation for the "escalation_interval_minutes" field.
	DefaultEscalationIntervalMinutes int
	// DefaultMaxEscalationLevel holds the default value on creation for the "max_escalation_level" field.
	DefaultMaxEscalationLevel int
	// DefaultLowRatingThreshold holds the default value on creation for the "low_rating_threshold" field.
	DefaultLowRatingThreshold int
	// LowRatingThresholdValidator is a validator for the "low_rating_threshold" field. It is called by the builders before save.
	LowRatingThresholdValidator func(int) error
	// DefaultSLAConcurrency holds the default value on creation for the "sla_concurrency" field.
	DefaultSLAConcurrency int
	// DefaultSLARateLimitMax holds the default value on creation for the "sla_rate_limit_max" field.
	DefaultSLARateLimitMax int
	// DefaultSLARateLimitWindowMs holds the default value on creation for the "sla_rate_limit_window_ms" field.
	DefaultSLARateLimitWindowMs int
	// DefaultReconcileIntervalMinutes holds the default value on creation for the "reconcile_interval_minutes" field.
	DefaultReconcileIntervalMinutes int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the GlobalSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDefaultSLAThresholdMinutes orders the results by the default_sla_threshold_minutes field.
func ByDefaultSLAThresholdMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultSLAThresholdMinutes, opts...).ToFunc()
}

// ByWarningOffsetMinutes orders the results by the warning_offset_minutes field.
func ByWarningOffsetMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarningOffsetMinutes, opts...).ToFunc()
}

// ByEscalationIntervalMinutes orders the results by the escalation_interval_minutes field.
func ByEscalationIntervalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationIntervalMinutes, opts...).ToFunc()
}

// ByMaxEscalationLevel orders the results by the max_escalation_level field.
func ByMaxEscalationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxEscalationLevel, opts...).ToFunc()
}

// ByLowRatingThreshold orders the results by the low_rating_threshold field.
func ByLowRatingThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowRatingThreshold, opts...).ToFunc()
}

// BySLAConcurrency orders the results by the sla_concurrency field.
func BySLAConcurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSLAConcurrency, opts...).ToFunc()
}

// BySLARateLimitMax orders the results by the sla_rate_limit_max field.
func BySLARateLimitMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSLARateLimitMax, opts...).ToFunc()
}

// BySLARateLimitWindowMs orders the results by the sla_rate_limit_window_ms field.
func BySLARateLimitWindowMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSLARateLimitWindowMs, opts...).ToFunc()
}

// ByReconcileIntervalMinutes orders the results by the reconcile_interval_minutes field.
func ByReconcileIntervalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReconcileIntervalMinutes, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
