// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/teambuh/slamon/ent/globalsettings"
	"github.com/teambuh/slamon/ent/predicate"
)

// GlobalSettingsUpdate is the builder for updating GlobalSettings entities.
type GlobalSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *GlobalSettingsMutation
}

// Where appends a list predicates to the GlobalSettingsUpdate builder.
func (_u *GlobalSettingsUpdate) Where(ps ...predicate.GlobalSettings) *GlobalSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field.
func (_u *GlobalSettingsUpdate) SetDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpdate {
	_u.mutation.ResetDefaultSLAThresholdMinutes()
	_u.mutation.SetDefaultSLAThresholdMinutes(v)
	return _u
}

// SetNillableDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field if the given value is not nil.
func (_u *GlobalSettingsUpdate) SetNillableDefaultSLAThresholdMinutes(v *int) *GlobalSettingsUpdate {
	if v != nil {
		_u.SetDefaultSLAThresholdMinutes(*v)
	}
	return _u
}

// AddDefaultSLAThresholdMinutes adds value to the "default_sla_threshold_minutes" field.
func (_u *GlobalSettingsUpdate) AddDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpdate {
	_u.mutation.AddDefaultSLAThresholdMinutes(v)
	return _u
}

// SetWarningOffsetMinutes sets the "warning_offset_minutes" field.
func (_u *GlobalSettingsUpdate) SetWarningOffsetMinutes(v int) *GlobalSettingsUpdate {
	_u.mutation.ResetWarningOffsetMinutes()
	_u.mutation.SetWarningOffsetMinutes(v)
	return _u
}

// SetNillableWarningOffsetMinutes sets the "warning_offset_minutes" field if the given value is not nil.
func (_u *GlobalSettingsUpdate) SetNillableWarningOffsetMinutes(v *int) *GlobalSettingsUpdate {
	if v != nil {
		_u.SetWarningOffsetMinutes(*v)
	}
	return _u
}

// AddWarningOffsetMinutes adds value to the "warning_offset_minutes" field.
func (_u *GlobalSettingsUpdate) AddWarningOffsetMinutes(v int) *GlobalSettingsUpdate {
	_u.mutation.AddWarningOffsetMinutes(v)
	return _u
}

// SetEscalationIntervalMinutes sets the "escalation_interval_minutes" field.
func (_u *GlobalSettingsUpdate) SetEscalationIntervalMinutes(v int) *GlobalSettingsUpdate {
	_u.mutation.ResetEscalationIntervalMinutes()
	_u.mutation.SetEscalationIntervalMinutes(v)
	return _u
}

// SetNillableEscalationIntervalMinutes sets the "escalation_interval_minutes" field if the given value is not nil.
func (_u *GlobalSettingsUpdate) SetNillableEscalationIntervalMinutes(v *int) *GlobalSettingsUpdate {
	if v != nil {
		_u.SetEscalationIntervalMinutes(*v)
	}
	return _u
}

// AddEscalationIntervalMinutes adds value to the "escalation_interval_minutes" field.
func (_u *GlobalSettingsUpdate) AddEscalationIntervalMinutes(v int) *GlobalSettingsUpdate {
	_u.mutation.AddEscalationIntervalMinutes(v)
	return _u
}

// SetMaxEscalationLevel sets the "max_escalation_level" field.
func (_u *GlobalSettingsUpdate) SetMaxEscalationLevel(v int) *GlobalSettingsUpdate {
	_u.mutation.ResetMaxEscalationLevel()
	_u.mutation.SetMaxEscalationLevel(v)
	return _u
}

// SetNillableMaxEscalationLevel sets the "max_escalation_level" field if the given value is not nil.
func (_u *GlobalSettingsUpdate) SetNillableMaxEscalationLevel(v *int) *GlobalSettingsUpdate {
	if v != nil {
		_u.SetMaxEscalationLevel(*v)
	}
	return _u
}

// AddMaxEscalationLevel adds value to the "max_escalation_level" field.
func (_u *GlobalSettingsUpdate) AddMaxEscalationLevel(v int) *GlobalSettingsUpdate {
	_u.mutation.AddMaxEscalationLevel(v)
	return _u
}

// SetGlobalManagerIds sets the "global_manager_ids" field.
func (_u *GlobalSettingsUpdate) SetGlobalManagerIds(v []string) *GlobalSettingsUpdate {
	_u.mutation.SetGlobalManagerIds(v)
	return _u
}

// AppendGlobalManagerIds appends value to the "global_manager_ids" field.
func (_u *GlobalSettingsUpdate) AppendGlobalManagerIds(v []string) *GlobalSettingsUpdate {
	_u.mutation.AppendGlobalManagerIds(v)
	return _u
}

// ClearGlobalManagerIds clears the value of the "global_manager_ids" field.
func (_u *GlobalSettingsUpdate) ClearGlobalManagerIds() *GlobalSettingsUpdate {
	_u.mutation.ClearGlobalManagerIds()
	return _u
}

// SetLowRatingThreshold sets the "low_rating_threshold" field.
func (_u *GlobalSettingsUpdate) SetLowRatingThreshold(v int) *GlobalSettingsUpdate {
	_u.mutation.ResetLowRatingThreshold()
	_u.mutation.SetLowRatingThreshold(v)
	return _u
}

// SetNillableLowRatingThreshold sets the "low_rating_threshold" field if the given value is not nil.
func (_u *GlobalSettingsUpdate) SetNillableLowRatingThreshold(v *int) *GlobalSettingsUpdate {
	if v != nil {
		_u.SetLowRatingThreshold(*v)
	}
	return _u
}

// AddLowRatingThreshold adds value to the "low_rating_threshold" field.
func (_u *GlobalSettingsUpdate) AddLowRatingThreshold(v int) *GlobalSettingsUpdate {
	_u.mutation.AddLowRatingThreshold(v)
	return _u
}

// SetSLAConcurrency sets the "sla_concurrency" field.
func (_u *GlobalSettingsUpdate) SetSLAConcurrency(v int) *GlobalSettingsUpdate {
	_u.mutation.ResetSLAConcurrency()
	_u.mutation.SetSLAConcurrency(v)
	return _u
}

// SetNillableSLAConcurrency sets the "sla_concurrency" field if the given value is not nil.
func (_u *GlobalSettingsUpdate) SetNillableSLAConcurrency(v *int) *GlobalSettingsUpdate {
	if v != nil {
		_u.SetSLAConcurrency(*v)
	}
	return _u
}

// AddSLAConcurrency adds value to the "sla_concurrency" field.
func (_u *GlobalSettingsUpdate) AddSLAConcurrency(v int) *GlobalSettingsUpdate {
	_u.mutation.AddSLAConcurrency(v)
	return _u
}

// SetSLARateLimitMax sets the "sla_rate_limit_max" field.
func (_u *GlobalSettingsUpdate) SetSLARateLimitMax(v int) *GlobalSettingsUpdate {
	_u.mutation.ResetSLARateLimitMax()
	_u.mutation.SetSLARateLimitMax(v)
	return _u
}

// SetNillableSLARateLimitMax sets the "sla_rate_limit_max" field if the given value is not nil.
func (_u *GlobalSettingsUpdate) SetNillableSLARateLimitMax(v *int) *GlobalSettingsUpdate {
	if v != nil {
		_u.SetSLARateLimitMax(*v)
	}
	return _u
}

// AddSLARateLimitMax adds value to the "sla_rate_limit_max" field.
func (_u *GlobalSettingsUpdate) AddSLARateLimitMax(v int) *GlobalSettingsUpdate {
	_u.mutation.AddSLARateLimitMax(v)
	return _u
}

// SetSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field.
func (_u *GlobalSettingsUpdate) SetSLARateLimitWindowMs(v int) *GlobalSettingsUpdate {
	_u.mutation.ResetSLARateLimitWindowMs()
	_u.mutation.SetSLARateLimitWindowMs(v)
	return _u
}

// SetNillableSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field if the given value is not nil.
func (_u *GlobalSettingsUpdate) SetNillableSLARateLimitWindowMs(v *int) *GlobalSettingsUpdate {
	if v != nil {
		_u.SetSLARateLimitWindowMs(*v)
	}
	return _u
}

// AddSLARateLimitWindowMs adds value to the "sla_rate_limit_window_ms" field.
func (_u *GlobalSettingsUpdate) AddSLARateLimitWindowMs(v int) *GlobalSettingsUpdate {
	_u.mutation.AddSLARateLimitWindowMs(v)
	return _u
}

// SetReconcileIntervalMinutes sets the "reconcile_interval_minutes" field.
func (_u *GlobalSettingsUpdate) SetReconcileIntervalMinutes(v int) *GlobalSettingsUpdate {
	_u.mutation.ResetReconcileIntervalMinutes()
	_u.mutation.SetReconcileIntervalMinutes(v)
	return _u
}

// SetNillableReconcileIntervalMinutes sets the "reconcile_interval_minutes" field if the given value is not nil.
func (_u *GlobalSettingsUpdate) SetNillableReconcileIntervalMinutes(v *int) *GlobalSettingsUpdate {
	if v != nil {
		_u.SetReconcileIntervalMinutes(*v)
	}
	return _u
}

// AddReconcileIntervalMinutes adds value to the "reconcile_interval_minutes" field.
func (_u *GlobalSettingsUpdate) AddReconcileIntervalMinutes(v int) *GlobalSettingsUpdate {
	_u.mutation.AddReconcileIntervalMinutes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GlobalSettingsUpdate) SetUpdatedAt(v time.Time) *GlobalSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GlobalSettingsMutation object of the builder.
func (_u *GlobalSettingsUpdate) Mutation() *GlobalSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GlobalSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GlobalSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GlobalSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GlobalSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GlobalSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := globalsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GlobalSettingsUpdate) check() error {
	if v, ok := _u.mutation.DefaultSLAThresholdMinutes(); ok {
		if err := globalsettings.DefaultSLAThresholdMinutesValidator(v); err != nil {
			return &ValidationError{Name: "default_sla_threshold_minutes", err: fmt.Errorf(`ent: validator failed for field "GlobalSettings.default_sla_threshold_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LowRatingThreshold(); ok {
		if err := globalsettings.LowRatingThresholdValidator(v); err != nil {
			return &ValidationError{Name: "low_rating_threshold", err: fmt.Errorf(`ent: validator failed for field "GlobalSettings.low_rating_threshold": %w`, err)}
		}
	}
	return nil
}

func (_u *GlobalSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(globalsettings.Table, globalsettings.Columns, sqlgraph.NewFieldSpec(globalsettings.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DefaultSLAThresholdMinutes(); ok {
		_spec.SetField(globalsettings.FieldDefaultSLAThresholdMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultSLAThresholdMinutes(); ok {
		_spec.AddField(globalsettings.FieldDefaultSLAThresholdMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningOffsetMinutes(); ok {
		_spec.SetField(globalsettings.FieldWarningOffsetMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningOffsetMinutes(); ok {
		_spec.AddField(globalsettings.FieldWarningOffsetMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationIntervalMinutes(); ok {
		_spec.SetField(globalsettings.FieldEscalationIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationIntervalMinutes(); ok {
		_spec.AddField(globalsettings.FieldEscalationIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxEscalationLevel(); ok {
		_spec.SetField(globalsettings.FieldMaxEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxEscalationLevel(); ok {
		_spec.AddField(globalsettings.FieldMaxEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GlobalManagerIds(); ok {
		_spec.SetField(globalsettings.FieldGlobalManagerIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGlobalManagerIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, globalsettings.FieldGlobalManagerIds, value)
		})
	}
	if _u.mutation.GlobalManagerIdsCleared() {
		_spec.ClearField(globalsettings.FieldGlobalManagerIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LowRatingThreshold(); ok {
		_spec.SetField(globalsettings.FieldLowRatingThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowRatingThreshold(); ok {
		_spec.AddField(globalsettings.FieldLowRatingThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SLAConcurrency(); ok {
		_spec.SetField(globalsettings.FieldSLAConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSLAConcurrency(); ok {
		_spec.AddField(globalsettings.FieldSLAConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SLARateLimitMax(); ok {
		_spec.SetField(globalsettings.FieldSLARateLimitMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSLARateLimitMax(); ok {
		_spec.AddField(globalsettings.FieldSLARateLimitMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SLARateLimitWindowMs(); ok {
		_spec.SetField(globalsettings.FieldSLARateLimitWindowMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSLARateLimitWindowMs(); ok {
		_spec.AddField(globalsettings.FieldSLARateLimitWindowMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReconcileIntervalMinutes(); ok {
		_spec.SetField(globalsettings.FieldReconcileIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReconcileIntervalMinutes(); ok {
		_spec.AddField(globalsettings.FieldReconcileIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(globalsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{globalsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GlobalSettingsUpdateOne is the builder for updating a single GlobalSettings entity.
type GlobalSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GlobalSettingsMutation
}

// SetDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field.
func (_u *GlobalSettingsUpdateOne) SetDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpdateOne {
	_u.mutation.ResetDefaultSLAThresholdMinutes()
	_u.mutation.SetDefaultSLAThresholdMinutes(v)
	return _u
}

// SetNillableDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field if the given value is not nil.
func (_u *GlobalSettingsUpdateOne) SetNillableDefaultSLAThresholdMinutes(v *int) *GlobalSettingsUpdateOne {
	if v != nil {
		_u.SetDefaultSLAThresholdMinutes(*v)
	}
	return _u
}

// AddDefaultSLAThresholdMinutes adds value to the "default_sla_threshold_minutes" field.
func (_u *GlobalSettingsUpdateOne) AddDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpdateOne {
	_u.mutation.AddDefaultSLAThresholdMinutes(v)
	return _u
}

// SetWarningOffsetMinutes sets the "warning_offset_minutes" field.
func (_u *GlobalSettingsUpdateOne) SetWarningOffsetMinutes(v int) *GlobalSettingsUpdateOne {
	_u.mutation.ResetWarningOffsetMinutes()
	_u.mutation.SetWarningOffsetMinutes(v)
	return _u
}

// SetNillableWarningOffsetMinutes sets the "warning_offset_minutes" field if the given value is not nil.
func (_u *GlobalSettingsUpdateOne) SetNillableWarningOffsetMinutes(v *int) *GlobalSettingsUpdateOne {
	if v != nil {
		_u.SetWarningOffsetMinutes(*v)
	}
	return _u
}

// AddWarningOffsetMinutes adds value to the "warning_offset_minutes" field.
func (_u *GlobalSettingsUpdateOne) AddWarningOffsetMinutes(v int) *GlobalSettingsUpdateOne {
	_u.mutation.AddWarningOffsetMinutes(v)
	return _u
}

// SetEscalationIntervalMinutes sets the "escalation_interval_minutes" field.
func (_u *GlobalSettingsUpdateOne) SetEscalationIntervalMinutes(v int) *GlobalSettingsUpdateOne {
	_u.mutation.ResetEscalationIntervalMinutes()
	_u.mutation.SetEscalationIntervalMinutes(v)
	return _u
}

// SetNillableEscalationIntervalMinutes sets the "escalation_interval_minutes" field if the given value is not nil.
func (_u *GlobalSettingsUpdateOne) SetNillableEscalationIntervalMinutes(v *int) *GlobalSettingsUpdateOne {
	if v != nil {
		_u.SetEscalationIntervalMinutes(*v)
	}
	return _u
}

// AddEscalationIntervalMinutes adds value to the "escalation_interval_minutes" field.
func (_u *GlobalSettingsUpdateOne) AddEscalationIntervalMinutes(v int) *GlobalSettingsUpdateOne {
	_u.mutation.AddEscalationIntervalMinutes(v)
	return _u
}

// SetMaxEscalationLevel sets the "max_escalation_level" field.
func (_u *GlobalSettingsUpdateOne) SetMaxEscalationLevel(v int) *GlobalSettingsUpdateOne {
	_u.mutation.ResetMaxEscalationLevel()
	_u.mutation.SetMaxEscalationLevel(v)
	return _u
}

// SetNillableMaxEscalationLevel sets the "max_escalation_level" field if the given value is not nil.
func (_u *GlobalSettingsUpdateOne) SetNillableMaxEscalationLevel(v *int) *GlobalSettingsUpdateOne {
	if v != nil {
		_u.SetMaxEscalationLevel(*v)
	}
	return _u
}

// AddMaxEscalationLevel adds value to the "max_escalation_level" field.
func (_u *GlobalSettingsUpdateOne) AddMaxEscalationLevel(v int) *GlobalSettingsUpdateOne {
	_u.mutation.AddMaxEscalationLevel(v)
	return _u
}

// SetGlobalManagerIds sets the "global_manager_ids" field.
func (_u *GlobalSettingsUpdateOne) SetGlobalManagerIds(v []string) *GlobalSettingsUpdateOne {
	_u.mutation.SetGlobalManagerIds(v)
	return _u
}

// AppendGlobalManagerIds appends value to the "global_manager_ids" field.
func (_u *GlobalSettingsUpdateOne) AppendGlobalManagerIds(v []string) *GlobalSettingsUpdateOne {
	_u.mutation.AppendGlobalManagerIds(v)
	return _u
}

// ClearGlobalManagerIds clears the value of the "global_manager_ids" field.
func (_u *GlobalSettingsUpdateOne) ClearGlobalManagerIds() *GlobalSettingsUpdateOne {
	_u.mutation.ClearGlobalManagerIds()
	return _u
}

// SetLowRatingThreshold sets the "low_rating_threshold" field.
func (_u *GlobalSettingsUpdateOne) SetLowRatingThreshold(v int) *GlobalSettingsUpdateOne {
	_u.mutation.ResetLowRatingThreshold()
	_u.mutation.SetLowRatingThreshold(v)
	return _u
}

// SetNillableLowRatingThreshold sets the "low_rating_threshold" field if the given value is not nil.
func (_u *GlobalSettingsUpdateOne) SetNillableLowRatingThreshold(v *int) *GlobalSettingsUpdateOne {
	if v != nil {
		_u.SetLowRatingThreshold(*v)
	}
	return _u
}

// AddLowRatingThreshold adds value to the "low_rating_threshold" field.
func (_u *GlobalSettingsUpdateOne) AddLowRatingThreshold(v int) *GlobalSettingsUpdateOne {
	_u.mutation.AddLowRatingThreshold(v)
	return _u
}

// SetSLAConcurrency sets the "sla_concurrency" field.
func (_u *GlobalSettingsUpdateOne) SetSLAConcurrency(v int) *GlobalSettingsUpdateOne {
	_u.mutation.ResetSLAConcurrency()
	_u.mutation.SetSLAConcurrency(v)
	return _u
}

// SetNillableSLAConcurrency sets the "sla_concurrency" field if the given value is not nil.
func (_u *GlobalSettingsUpdateOne) SetNillableSLAConcurrency(v *int) *GlobalSettingsUpdateOne {
	if v != nil {
		_u.SetSLAConcurrency(*v)
	}
	return _u
}

// AddSLAConcurrency adds value to the "sla_concurrency" field.
func (_u *GlobalSettingsUpdateOne) AddSLAConcurrency(v int) *GlobalSettingsUpdateOne {
	_u.mutation.AddSLAConcurrency(v)
	return _u
}

// SetSLARateLimitMax sets the "sla_rate_limit_max" field.
func (_u *GlobalSettingsUpdateOne) SetSLARateLimitMax(v int) *GlobalSettingsUpdateOne {
	_u.mutation.ResetSLARateLimitMax()
	_u.mutation.SetSLARateLimitMax(v)
	return _u
}

// SetNillableSLARateLimitMax sets the "sla_rate_limit_max" field if the given value is not nil.
func (_u *GlobalSettingsUpdateOne) SetNillableSLARateLimitMax(v *int) *GlobalSettingsUpdateOne {
	if v != nil {
		_u.SetSLARateLimitMax(*v)
	}
	return _u
}

// AddSLARateLimitMax adds value to the "sla_rate_limit_max" field.
func (_u *GlobalSettingsUpdateOne) AddSLARateLimitMax(v int) *GlobalSettingsUpdateOne {
	_u.mutation.AddSLARateLimitMax(v)
	return _u
}

// SetSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field.
func (_u *GlobalSettingsUpdateOne) SetSLARateLimitWindowMs(v int) *GlobalSettingsUpdateOne {
	_u.mutation.ResetSLARateLimitWindowMs()
	_u.mutation.SetSLARateLimitWindowMs(v)
	return _u
}

// SetNillableSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field if the given value is not nil.
func (_u *GlobalSettingsUpdateOne) SetNillableSLARateLimitWindowMs(v *int) *GlobalSettingsUpdateOne {
	if v != nil {
		_u.SetSLARateLimitWindowMs(*v)
	}
	return _u
}

// AddSLARateLimitWindowMs adds value to the "sla_rate_limit_window_ms" field.
func (_u *GlobalSettingsUpdateOne) AddSLARateLimitWindowMs(v int) *GlobalSettingsUpdateOne {
	_u.mutation.AddSLARateLimitWindowMs(v)
	return _u
}

// SetReconcileIntervalMinutes sets the "reconcile_interval_minutes" field.
func (_u *GlobalSettingsUpdateOne) SetReconcileIntervalMinutes(v int) *GlobalSettingsUpdateOne {
	_u.mutation.ResetReconcileIntervalMinutes()
	_u.mutation.SetReconcileIntervalMinutes(v)
	return _u
}

// SetNillableReconcileIntervalMinutes sets the "reconcile_interval_minutes" field if the given value is not nil.
func (_u *GlobalSettingsUpdateOne) SetNillableReconcileIntervalMinutes(v *int) *GlobalSettingsUpdateOne {
	if v != nil {
		_u.SetReconcileIntervalMinutes(*v)
	}
	return _u
}

// AddReconcileIntervalMinutes adds value to the "reconcile_interval_minutes" field.
func (_u *GlobalSettingsUpdateOne) AddReconcileIntervalMinutes(v int) *GlobalSettingsUpdateOne {
	_u.mutation.AddReconcileIntervalMinutes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GlobalSettingsUpdateOne) SetUpdatedAt(v time.Time) *GlobalSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GlobalSettingsMutation object of the builder.
func (_u *GlobalSettingsUpdateOne) Mutation() *GlobalSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the GlobalSettingsUpdate builder.
func (_u *GlobalSettingsUpdateOne) Where(ps ...predicate.GlobalSettings) *GlobalSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GlobalSettingsUpdateOne) Select(field string, fields ...string) *GlobalSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GlobalSettings entity.
func (_u *GlobalSettingsUpdateOne) Save(ctx context.Context) (*GlobalSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GlobalSettingsUpdateOne) SaveX(ctx context.Context) *GlobalSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GlobalSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GlobalSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GlobalSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := globalsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GlobalSettingsUpdateOne) check() error {
	if v, ok := _u.mutation.DefaultSLAThresholdMinutes(); ok {
		if err := globalsettings.DefaultSLAThresholdMinutesValidator(v); err != nil {
			return &ValidationError{Name: "default_sla_threshold_minutes", err: fmt.Errorf(`ent: validator failed for field "GlobalSettings.default_sla_threshold_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LowRatingThreshold(); ok {
		if err := globalsettings.LowRatingThresholdValidator(v); err != nil {
			return &ValidationError{Name: "low_rating_threshold", err: fmt.Errorf(`ent: validator failed for field "GlobalSettings.low_rating_threshold": %w`, err)}
		}
	}
	return nil
}

func (_u *GlobalSettingsUpdateOne) sqlSave(ctx context.Context) (_node *GlobalSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(globalsettings.Table, globalsettings.Columns, sqlgraph.NewFieldSpec(globalsettings.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GlobalSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, globalsettings.FieldID)
		for _, f := range fields {
			if !globalsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != globalsettings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DefaultSLAThresholdMinutes(); ok {
		_spec.SetField(globalsettings.FieldDefaultSLAThresholdMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultSLAThresholdMinutes(); ok {
		_spec.AddField(globalsettings.FieldDefaultSLAThresholdMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningOffsetMinutes(); ok {
		_spec.SetField(globalsettings.FieldWarningOffsetMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningOffsetMinutes(); ok {
		_spec.AddField(globalsettings.FieldWarningOffsetMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationIntervalMinutes(); ok {
		_spec.SetField(globalsettings.FieldEscalationIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationIntervalMinutes(); ok {
		_spec.AddField(globalsettings.FieldEscalationIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxEscalationLevel(); ok {
		_spec.SetField(globalsettings.FieldMaxEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxEscalationLevel(); ok {
		_spec.AddField(globalsettings.FieldMaxEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GlobalManagerIds(); ok {
		_spec.SetField(globalsettings.FieldGlobalManagerIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGlobalManagerIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, globalsettings.FieldGlobalManagerIds, value)
		})
	}
	if _u.mutation.GlobalManagerIdsCleared() {
		_spec.ClearField(globalsettings.FieldGlobalManagerIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LowRatingThreshold(); ok {
		_spec.SetField(globalsettings.FieldLowRatingThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowRatingThreshold(); ok {
		_spec.AddField(globalsettings.FieldLowRatingThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SLAConcurrency(); ok {
		_spec.SetField(globalsettings.FieldSLAConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSLAConcurrency(); ok {
		_spec.AddField(globalsettings.FieldSLAConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SLARateLimitMax(); ok {
		_spec.SetField(globalsettings.FieldSLARateLimitMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSLARateLimitMax(); ok {
		_spec.AddField(globalsettings.FieldSLARateLimitMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SLARateLimitWindowMs(); ok {
		_spec.SetField(globalsettings.FieldSLARateLimitWindowMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSLARateLimitWindowMs(); ok {
		_spec.AddField(globalsettings.FieldSLARateLimitWindowMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReconcileIntervalMinutes(); ok {
		_spec.SetField(globalsettings.FieldReconcileIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReconcileIntervalMinutes(); ok {
		_spec.AddField(globalsettings.FieldReconcileIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(globalsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GlobalSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{globalsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
