// Code generated by ent, DO NOT EDIT.

package globalsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/teambuh/slamon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldContainsFold(FieldID, id))
}

// DefaultSLAThresholdMinutes applies equality check predicate on the "default_sla_threshold_minutes" field. It's identical to DefaultSLAThresholdMinutesEQ.
func DefaultSLAThresholdMinutes(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldDefaultSLAThresholdMinutes, v))
}

// WarningOffsetMinutes applies equality check predicate on the "warning_offset_minutes" field. It's identical to WarningOffsetMinutesEQ.
func WarningOffsetMinutes(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldWarningOffsetMinutes, v))
}

// EscalationIntervalMinutes applies equality check predicate on the "escalation_interval_minutes" field. It's identical to EscalationIntervalMinutesEQ.
func EscalationIntervalMinutes(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldEscalationIntervalMinutes, v))
}

// MaxEscalationLevel applies equality check predicate on the "max_escalation_level" field. It's identical to MaxEscalationLevelEQ.
func MaxEscalationLevel(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldMaxEscalationLevel, v))
}

// LowRatingThreshold applies equality check predicate on the "low_rating_threshold" field. It's identical to LowRatingThresholdEQ.
func LowRatingThreshold(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldLowRatingThreshold, v))
}

// SLAConcurrency applies equality check predicate on the "sla_concurrency" field. It's identical to SLAConcurrencyEQ.
func SLAConcurrency(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldSLAConcurrency, v))
}

// SLARateLimitMax applies equality check predicate on the "sla_rate_limit_max" field. It's identical to SLARateLimitMaxEQ.
func SLARateLimitMax(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldSLARateLimitMax, v))
}

// SLARateLimitWindowMs applies equality check predicate on the "sla_rate_limit_window_ms" field. It's identical to SLARateLimitWindowMsEQ.
func SLARateLimitWindowMs(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldSLARateLimitWindowMs, v))
}

// ReconcileIntervalMinutes applies equality check predicate on the "reconcile_interval_minutes" field. It's identical to ReconcileIntervalMinutesEQ.
func ReconcileIntervalMinutes(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldReconcileIntervalMinutes, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// DefaultSLAThresholdMinutesEQ applies the EQ predicate on the "default_sla_threshold_minutes" field.
func DefaultSLAThresholdMinutesEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldDefaultSLAThresholdMinutes, v))
}

// DefaultSLAThresholdMinutesNEQ applies the NEQ predicate on the "default_sla_threshold_minutes" field.
func DefaultSLAThresholdMinutesNEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldDefaultSLAThresholdMinutes, v))
}

// DefaultSLAThresholdMinutesIn applies the In predicate on the "default_sla_threshold_minutes" field.
func DefaultSLAThresholdMinutesIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldDefaultSLAThresholdMinutes, vs...))
}

// DefaultSLAThresholdMinutesNotIn applies the NotIn predicate on the "default_sla_threshold_minutes" field.
func DefaultSLAThresholdMinutesNotIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldDefaultSLAThresholdMinutes, vs...))
}

// DefaultSLAThresholdMinutesGT applies the GT predicate on the "default_sla_threshold_minutes" field.
func DefaultSLAThresholdMinutesGT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldDefaultSLAThresholdMinutes, v))
}

// DefaultSLAThresholdMinutesGTE applies the GTE predicate on the "default_sla_threshold_minutes" field.
func DefaultSLAThresholdMinutesGTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldDefaultSLAThresholdMinutes, v))
}

// DefaultSLAThresholdMinutesLT applies the LT predicate on the "default_sla_threshold_minutes" field.
func DefaultSLAThresholdMinutesLT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldDefaultSLAThresholdMinutes, v))
}

// DefaultSLAThresholdMinutesLTE applies the LTE predicate on the "default_sla_threshold_minutes" field.
func DefaultSLAThresholdMinutesLTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldDefaultSLAThresholdMinutes, v))
}

// WarningOffsetMinutesEQ applies the EQ predicate on the "warning_offset_minutes" field.
func WarningOffsetMinutesEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldWarningOffsetMinutes, v))
}

// WarningOffsetMinutesNEQ applies the NEQ predicate on the "warning_offset_minutes" field.
func WarningOffsetMinutesNEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldWarningOffsetMinutes, v))
}

// WarningOffsetMinutesIn applies the In predicate on the "warning_offset_minutes" field.
func WarningOffsetMinutesIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldWarningOffsetMinutes, vs...))
}

// WarningOffsetMinutesNotIn applies the NotIn predicate on the "warning_offset_minutes" field.
func WarningOffsetMinutesNotIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldWarningOffsetMinutes, vs...))
}

// WarningOffsetMinutesGT applies the GT predicate on the "warning_offset_minutes" field.
func WarningOffsetMinutesGT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldWarningOffsetMinutes, v))
}

// WarningOffsetMinutesGTE applies the GTE predicate on the "warning_offset_minutes" field.
func WarningOffsetMinutesGTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldWarningOffsetMinutes, v))
}

// WarningOffsetMinutesLT applies the LT predicate on the "warning_offset_minutes" field.
func WarningOffsetMinutesLT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldWarningOffsetMinutes, v))
}

// WarningOffsetMinutesLTE applies the LTE predicate on the "warning_offset_minutes" field.
func WarningOffsetMinutesLTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldWarningOffsetMinutes, v))
}

// EscalationIntervalMinutesEQ applies the EQ predicate on the "escalation_interval_minutes" field.
func EscalationIntervalMinutesEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldEscalationIntervalMinutes, v))
}

// EscalationIntervalMinutesNEQ applies the NEQ predicate on the "escalation_interval_minutes" field.
func EscalationIntervalMinutesNEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldEscalationIntervalMinutes, v))
}

// EscalationIntervalMinutesIn applies the In predicate on the "escalation_interval_minutes" field.
func EscalationIntervalMinutesIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldEscalationIntervalMinutes, vs...))
}

// EscalationIntervalMinutesNotIn applies the NotIn predicate on the "escalation_interval_minutes" field.
func EscalationIntervalMinutesNotIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldEscalationIntervalMinutes, vs...))
}

// EscalationIntervalMinutesGT applies the GT predicate on the "escalation_interval_minutes" field.
func EscalationIntervalMinutesGT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldEscalationIntervalMinutes, v))
}

// EscalationIntervalMinutesGTE applies the GTE predicate on the "escalation_interval_minutes" field.
func EscalationIntervalMinutesGTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldEscalationIntervalMinutes, v))
}

// EscalationIntervalMinutesLT applies the LT predicate on the "escalation_interval_minutes" field.
func EscalationIntervalMinutesLT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldEscalationIntervalMinutes, v))
}

// EscalationIntervalMinutesLTE applies the LTE predicate on the "escalation_interval_minutes" field.
func EscalationIntervalMinutesLTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldEscalationIntervalMinutes, v))
}

// MaxEscalationLevelEQ applies the EQ predicate on the "max_escalation_level" field.
func MaxEscalationLevelEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldMaxEscalationLevel, v))
}

// MaxEscalationLevelNEQ applies the NEQ predicate on the "max_escalation_level" field.
func MaxEscalationLevelNEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldMaxEscalationLevel, v))
}

// MaxEscalationLevelIn applies the In predicate on the "max_escalation_level" field.
func MaxEscalationLevelIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldMaxEscalationLevel, vs...))
}

// MaxEscalationLevelNotIn applies the NotIn predicate on the "max_escalation_level" field.
func MaxEscalationLevelNotIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldMaxEscalationLevel, vs...))
}

// MaxEscalationLevelGT applies the GT predicate on the "max_escalation_level" field.
func MaxEscalationLevelGT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldMaxEscalationLevel, v))
}

// MaxEscalationLevelGTE applies the GTE predicate on the "max_escalation_level" field.
func MaxEscalationLevelGTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldMaxEscalationLevel, v))
}

// MaxEscalationLevelLT applies the LT predicate on the "max_escalation_level" field.
func MaxEscalationLevelLT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldMaxEscalationLevel, v))
}

// MaxEscalationLevelLTE applies the LTE predicate on the "max_escalation_level" field.
func MaxEscalationLevelLTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldMaxEscalationLevel, v))
}

// GlobalManagerIdsIsNil applies the IsNil predicate on the "global_manager_ids" field.
func GlobalManagerIdsIsNil() predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIsNull(FieldGlobalManagerIds))
}

// GlobalManagerIdsNotNil applies the NotNil predicate on the "global_manager_ids" field.
func GlobalManagerIdsNotNil() predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotNull(FieldGlobalManagerIds))
}

// LowRatingThresholdEQ applies the EQ predicate on the "low_rating_threshold" field.
func LowRatingThresholdEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldLowRatingThreshold, v))
}

// LowRatingThresholdNEQ applies the NEQ predicate on the "low_rating_threshold" field.
func LowRatingThresholdNEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldLowRatingThreshold, v))
}

// LowRatingThresholdIn applies the In predicate on the "low_rating_threshold" field.
func LowRatingThresholdIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldLowRatingThreshold, vs...))
}

// LowRatingThresholdNotIn applies the NotIn predicate on the "low_rating_threshold" field.
func LowRatingThresholdNotIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldLowRatingThreshold, vs...))
}

// LowRatingThresholdGT applies the GT predicate on the "low_rating_threshold" field.
func LowRatingThresholdGT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldLowRatingThreshold, v))
}

// LowRatingThresholdGTE applies the GTE predicate on the "low_rating_threshold" field.
func LowRatingThresholdGTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldLowRatingThreshold, v))
}

// LowRatingThresholdLT applies the LT predicate on the "low_rating_threshold" field.
func LowRatingThresholdLT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldLowRatingThreshold, v))
}

// LowRatingThresholdLTE applies the LTE predicate on the "low_rating_threshold" field.
func LowRatingThresholdLTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldLowRatingThreshold, v))
}

// SLAConcurrencyEQ applies the EQ predicate on the "sla_concurrency" field.
func SLAConcurrencyEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldSLAConcurrency, v))
}

// SLAConcurrencyNEQ applies the NEQ predicate on the "sla_concurrency" field.
func SLAConcurrencyNEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldSLAConcurrency, v))
}

// SLAConcurrencyIn applies the In predicate on the "sla_concurrency" field.
func SLAConcurrencyIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldSLAConcurrency, vs...))
}

// SLAConcurrencyNotIn applies the NotIn predicate on the "sla_concurrency" field.
func SLAConcurrencyNotIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldSLAConcurrency, vs...))
}

// SLAConcurrencyGT applies the GT predicate on the "sla_concurrency" field.
func SLAConcurrencyGT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldSLAConcurrency, v))
}

// SLAConcurrencyGTE applies the GTE predicate on the "sla_concurrency" field.
func SLAConcurrencyGTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldSLAConcurrency, v))
}

// SLAConcurrencyLT applies the LT predicate on the "sla_concurrency" field.
func SLAConcurrencyLT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldSLAConcurrency, v))
}

// SLAConcurrencyLTE applies the LTE predicate on the "sla_concurrency" field.
func SLAConcurrencyLTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldSLAConcurrency, v))
}

// SLARateLimitMaxEQ applies the EQ predicate on the "sla_rate_limit_max" field.
func SLARateLimitMaxEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldSLARateLimitMax, v))
}

// SLARateLimitMaxNEQ applies the NEQ predicate on the "sla_rate_limit_max" field.
func SLARateLimitMaxNEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldSLARateLimitMax, v))
}

// SLARateLimitMaxIn applies the In predicate on the "sla_rate_limit_max" field.
func SLARateLimitMaxIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldSLARateLimitMax, vs...))
}

// SLARateLimitMaxNotIn applies the NotIn predicate on the "sla_rate_limit_max" field.
func SLARateLimitMaxNotIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldSLARateLimitMax, vs...))
}

// SLARateLimitMaxGT applies the GT predicate on the "sla_rate_limit_max" field.
func SLARateLimitMaxGT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldSLARateLimitMax, v))
}

// SLARateLimitMaxGTE applies the GTE predicate on the "sla_rate_limit_max" field.
func SLARateLimitMaxGTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldSLARateLimitMax, v))
}

// SLARateLimitMaxLT applies the LT predicate on the "sla_rate_limit_max" field.
func SLARateLimitMaxLT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldSLARateLimitMax, v))
}

// SLARateLimitMaxLTE applies the LTE predicate on the "sla_rate_limit_max" field.
func SLARateLimitMaxLTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldSLARateLimitMax, v))
}

// SLARateLimitWindowMsEQ applies the EQ predicate on the "sla_rate_limit_window_ms" field.
func SLARateLimitWindowMsEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldSLARateLimitWindowMs, v))
}

// SLARateLimitWindowMsNEQ applies the NEQ predicate on the "sla_rate_limit_window_ms" field.
func SLARateLimitWindowMsNEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldSLARateLimitWindowMs, v))
}

// SLARateLimitWindowMsIn applies the In predicate on the "sla_rate_limit_window_ms" field.
func SLARateLimitWindowMsIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldSLARateLimitWindowMs, vs...))
}

// SLARateLimitWindowMsNotIn applies the NotIn predicate on the "sla_rate_limit_window_ms" field.
func SLARateLimitWindowMsNotIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldSLARateLimitWindowMs, vs...))
}

// SLARateLimitWindowMsGT applies the GT predicate on the "sla_rate_limit_window_ms" field.
func SLARateLimitWindowMsGT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldSLARateLimitWindowMs, v))
}

// SLARateLimitWindowMsGTE applies the GTE predicate on the "sla_rate_limit_window_ms" field.
func SLARateLimitWindowMsGTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldSLARateLimitWindowMs, v))
}

// SLARateLimitWindowMsLT applies the LT predicate on the "sla_rate_limit_window_ms" field.
func SLARateLimitWindowMsLT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldSLARateLimitWindowMs, v))
}

// SLARateLimitWindowMsLTE applies the LTE predicate on the "sla_rate_limit_window_ms" field.
func SLARateLimitWindowMsLTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldSLARateLimitWindowMs, v))
}

// ReconcileIntervalMinutesEQ applies the EQ predicate on the "reconcile_interval_minutes" field.
func ReconcileIntervalMinutesEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldReconcileIntervalMinutes, v))
}

// ReconcileIntervalMinutesNEQ applies the NEQ predicate on the "reconcile_interval_minutes" field.
func ReconcileIntervalMinutesNEQ(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldReconcileIntervalMinutes, v))
}

// ReconcileIntervalMinutesIn applies the In predicate on the "reconcile_interval_minutes" field.
func ReconcileIntervalMinutesIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldReconcileIntervalMinutes, vs...))
}

// ReconcileIntervalMinutesNotIn applies the NotIn predicate on the "reconcile_interval_minutes" field.
func ReconcileIntervalMinutesNotIn(vs ...int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldReconcileIntervalMinutes, vs...))
}

// ReconcileIntervalMinutesGT applies the GT predicate on the "reconcile_interval_minutes" field.
func ReconcileIntervalMinutesGT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldReconcileIntervalMinutes, v))
}

// ReconcileIntervalMinutesGTE applies the GTE predicate on the "reconcile_interval_minutes" field.
func ReconcileIntervalMinutesGTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldReconcileIntervalMinutes, v))
}

// ReconcileIntervalMinutesLT applies the LT predicate on the "reconcile_interval_minutes" field.
func ReconcileIntervalMinutesLT(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldReconcileIntervalMinutes, v))
}

// ReconcileIntervalMinutesLTE applies the LTE predicate on the "reconcile_interval_minutes" field.
func ReconcileIntervalMinutesLTE(v int) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldReconcileIntervalMinutes, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GlobalSettings) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GlobalSettings) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GlobalSettings) predicate.GlobalSettings {
	return predicate.GlobalSettings(sql.NotPredicates(p))
}
