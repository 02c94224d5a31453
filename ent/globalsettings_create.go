// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/teambuh/slamon/ent/globalsettings"
)

// GlobalSettingsCreate is the builder for creating a GlobalSettings entity.
type GlobalSettingsCreate struct {
	config
	mutation *GlobalSettingsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field.
func (_c *GlobalSettingsCreate) SetDefaultSLAThresholdMinutes(v int) *GlobalSettingsCreate {
	_c.mutation.SetDefaultSLAThresholdMinutes(v)
	return _c
}

// SetNillableDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableDefaultSLAThresholdMinutes(v *int) *GlobalSettingsCreate {
	if v != nil {
		_c.SetDefaultSLAThresholdMinutes(*v)
	}
	return _c
}

// SetWarningOffsetMinutes sets the "warning_offset_minutes" field.
func (_c *GlobalSettingsCreate) SetWarningOffsetMinutes(v int) *GlobalSettingsCreate {
	_c.mutation.SetWarningOffsetMinutes(v)
	return _c
}

// SetNillableWarningOffsetMinutes sets the "warning_offset_minutes" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableWarningOffsetMinutes(v *int) *GlobalSettingsCreate {
	if v != nil {
		_c.SetWarningOffsetMinutes(*v)
	}
	return _c
}

// SetEscalationIntervalMinutes sets the "escalation_interval_minutes" field.
func (_c *GlobalSettingsCreate) SetEscalationIntervalMinutes(v int) *GlobalSettingsCreate {
	_c.mutation.SetEscalationIntervalMinutes(v)
	return _c
}

// SetNillableEscalationIntervalMinutes sets the "escalation_interval_minutes" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableEscalationIntervalMinutes(v *int) *GlobalSettingsCreate {
	if v != nil {
		_c.SetEscalationIntervalMinutes(*v)
	}
	return _c
}

// SetMaxEscalationLevel sets the "max_escalation_level" field.
func (_c *GlobalSettingsCreate) SetMaxEscalationLevel(v int) *GlobalSettingsCreate {
	_c.mutation.SetMaxEscalationLevel(v)
	return _c
}

// SetNillableMaxEscalationLevel sets the "max_escalation_level" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableMaxEscalationLevel(v *int) *GlobalSettingsCreate {
	if v != nil {
		_c.SetMaxEscalationLevel(*v)
	}
	return _c
}

// SetGlobalManagerIds sets the "global_manager_ids" field.
func (_c *GlobalSettingsCreate) SetGlobalManagerIds(v []string) *GlobalSettingsCreate {
	_c.mutation.SetGlobalManagerIds(v)
	return _c
}

// SetLowRatingThreshold sets the "low_rating_threshold" field.
func (_c *GlobalSettingsCreate) SetLowRatingThreshold(v int) *GlobalSettingsCreate {
	_c.mutation.SetLowRatingThreshold(v)
	return _c
}

// SetNillableLowRatingThreshold sets the "low_rating_threshold" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableLowRatingThreshold(v *int) *GlobalSettingsCreate {
	if v != nil {
		_c.SetLowRatingThreshold(*v)
	}
	return _c
}

// SetSLAConcurrency sets the "sla_concurrency" field.
func (_c *GlobalSettingsCreate) SetSLAConcurrency(v int) *GlobalSettingsCreate {
	_c.mutation.SetSLAConcurrency(v)
	return _c
}

// SetNillableSLAConcurrency sets the "sla_concurrency" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableSLAConcurrency(v *int) *GlobalSettingsCreate {
	if v != nil {
		_c.SetSLAConcurrency(*v)
	}
	return _c
}

// SetSLARateLimitMax sets the "sla_rate_limit_max" field.
func (_c *GlobalSettingsCreate) SetSLARateLimitMax(v int) *GlobalSettingsCreate {
	_c.mutation.SetSLARateLimitMax(v)
	return _c
}

// SetNillableSLARateLimitMax sets the "sla_rate_limit_max" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableSLARateLimitMax(v *int) *GlobalSettingsCreate {
	if v != nil {
		_c.SetSLARateLimitMax(*v)
	}
	return _c
}

// SetSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field.
func (_c *GlobalSettingsCreate) SetSLARateLimitWindowMs(v int) *GlobalSettingsCreate {
	_c.mutation.SetSLARateLimitWindowMs(v)
	return _c
}

// SetNillableSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableSLARateLimitWindowMs(v *int) *GlobalSettingsCreate {
	if v != nil {
		_c.SetSLARateLimitWindowMs(*v)
	}
	return _c
}

// SetReconcileIntervalMinutes sets the "reconcile_interval_minutes" field.
func (_c *GlobalSettingsCreate) SetReconcileIntervalMinutes(v int) *GlobalSettingsCreate {
	_c.mutation.SetReconcileIntervalMinutes(v)
	return _c
}

// SetNillableReconcileIntervalMinutes sets the "reconcile_interval_minutes" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableReconcileIntervalMinutes(v *int) *GlobalSettingsCreate {
	if v != nil {
		_c.SetReconcileIntervalMinutes(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GlobalSettingsCreate) SetUpdatedAt(v time.Time) *GlobalSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GlobalSettingsCreate) SetNillableUpdatedAt(v *time.Time) *GlobalSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GlobalSettingsCreate) SetID(v string) *GlobalSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GlobalSettingsMutation object of the builder.
func (_c *GlobalSettingsCreate) Mutation() *GlobalSettingsMutation {
	return _c.mutation
}

// Save creates the GlobalSettings in the database.
func (_c *GlobalSettingsCreate) Save(ctx context.Context) (*GlobalSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GlobalSettingsCreate) SaveX(ctx context.Context) *GlobalSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GlobalSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GlobalSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GlobalSettingsCreate) defaults() {
	if _, ok := _c.mutation.DefaultSLAThresholdMinutes(); !ok {
		v := globalsettings.DefaultDefaultSLAThresholdMinutes
		_c.mutation.SetDefaultSLAThresholdMinutes(v)
	}
	if _, ok := _c.mutation.WarningOffsetMinutes(); !ok {
		v := globalsettings.DefaultWarningOffsetMinutes
		_c.mutation.SetWarningOffsetMinutes(v)
	}
	if _, ok := _c.mutation.EscalationIntervalMinutes(); !ok {
		v := globalsettings.DefaultEscalationIntervalMinutes
		_c.mutation.SetEscalationIntervalMinutes(v)
	}
	if _, ok := _c.mutation.MaxEscalationLevel(); !ok {
		v := globalsettings.DefaultMaxEscalationLevel
		_c.mutation.SetMaxEscalationLevel(v)
	}
	if _, ok := _c.mutation.LowRatingThreshold(); !ok {
		v := globalsettings.DefaultLowRatingThreshold
		_c.mutation.SetLowRatingThreshold(v)
	}
	if _, ok := _c.mutation.SLAConcurrency(); !ok {
		v := globalsettings.DefaultSLAConcurrency
		_c.mutation.SetSLAConcurrency(v)
	}
	if _, ok := _c.mutation.SLARateLimitMax(); !ok {
		v := globalsettings.DefaultSLARateLimitMax
		_c.mutation.SetSLARateLimitMax(v)
	}
	if _, ok := _c.mutation.SLARateLimitWindowMs(); !ok {
		v := globalsettings.DefaultSLARateLimitWindowMs
		_c.mutation.SetSLARateLimitWindowMs(v)
	}
	if _, ok := _c.mutation.ReconcileIntervalMinutes(); !ok {
		v := globalsettings.DefaultReconcileIntervalMinutes
		_c.mutation.SetReconcileIntervalMinutes(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := globalsettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GlobalSettingsCreate) check() error {
	if _, ok := _c.mutation.DefaultSLAThresholdMinutes(); !ok {
		return &ValidationError{Name: "default_sla_threshold_minutes", err: errors.New(`ent: missing required field "GlobalSettings.default_sla_threshold_minutes"`)}
	}
	if v, ok := _c.mutation.DefaultSLAThresholdMinutes(); ok {
		if err := globalsettings.DefaultSLAThresholdMinutesValidator(v); err != nil {
			return &ValidationError{Name: "default_sla_threshold_minutes", err: fmt.Errorf(`ent: validator failed for field "GlobalSettings.default_sla_threshold_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WarningOffsetMinutes(); !ok {
		return &ValidationError{Name: "warning_offset_minutes", err: errors.New(`ent: missing required field "GlobalSettings.warning_offset_minutes"`)}
	}
	if _, ok := _c.mutation.EscalationIntervalMinutes(); !ok {
		return &ValidationError{Name: "escalation_interval_minutes", err: errors.New(`ent: missing required field "GlobalSettings.escalation_interval_minutes"`)}
	}
	if _, ok := _c.mutation.MaxEscalationLevel(); !ok {
		return &ValidationError{Name: "max_escalation_level", err: errors.New(`ent: missing required field "GlobalSettings.max_escalation_level"`)}
	}
	if _, ok := _c.mutation.LowRatingThreshold(); !ok {
		return &ValidationError{Name: "low_rating_threshold", err: errors.New(`ent: missing required field "GlobalSettings.low_rating_threshold"`)}
	}
	if v, ok := _c.mutation.LowRatingThreshold(); ok {
		if err := globalsettings.LowRatingThresholdValidator(v); err != nil {
			return &ValidationError{Name: "low_rating_threshold", err: fmt.Errorf(`ent: validator failed for field "GlobalSettings.low_rating_threshold": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SLAConcurrency(); !ok {
		return &ValidationError{Name: "sla_concurrency", err: errors.New(`ent: missing required field "GlobalSettings.sla_concurrency"`)}
	}
	if _, ok := _c.mutation.SLARateLimitMax(); !ok {
		return &ValidationError{Name: "sla_rate_limit_max", err: errors.New(`ent: missing required field "GlobalSettings.sla_rate_limit_max"`)}
	}
	if _, ok := _c.mutation.SLARateLimitWindowMs(); !ok {
		return &ValidationError{Name: "sla_rate_limit_window_ms", err: errors.New(`ent: missing required field "GlobalSettings.sla_rate_limit_window_ms"`)}
	}
	if _, ok := _c.mutation.ReconcileIntervalMinutes(); !ok {
		return &ValidationError{Name: "reconcile_interval_minutes", err: errors.New(`ent: missing required field "GlobalSettings.reconcile_interval_minutes"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GlobalSettings.updated_at"`)}
	}
	return nil
}

func (_c *GlobalSettingsCreate) sqlSave(ctx context.Context) (*GlobalSettings, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected GlobalSettings.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GlobalSettingsCreate) createSpec() (*GlobalSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &GlobalSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(globalsettings.Table, sqlgraph.NewFieldSpec(globalsettings.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DefaultSLAThresholdMinutes(); ok {
		_spec.SetField(globalsettings.FieldDefaultSLAThresholdMinutes, field.TypeInt, value)
		_node.DefaultSLAThresholdMinutes = value
	}
	if value, ok := _c.mutation.WarningOffsetMinutes(); ok {
		_spec.SetField(globalsettings.FieldWarningOffsetMinutes, field.TypeInt, value)
		_node.WarningOffsetMinutes = value
	}
	if value, ok := _c.mutation.EscalationIntervalMinutes(); ok {
		_spec.SetField(globalsettings.FieldEscalationIntervalMinutes, field.TypeInt, value)
		_node.EscalationIntervalMinutes = value
	}
	if value, ok := _c.mutation.MaxEscalationLevel(); ok {
		_spec.SetField(globalsettings.FieldMaxEscalationLevel, field.TypeInt, value)
		_node.MaxEscalationLevel = value
	}
	if value, ok := _c.mutation.GlobalManagerIds(); ok {
		_spec.SetField(globalsettings.FieldGlobalManagerIds, field.TypeJSON, value)
		_node.GlobalManagerIds = value
	}
	if value, ok := _c.mutation.LowRatingThreshold(); ok {
		_spec.SetField(globalsettings.FieldLowRatingThreshold, field.TypeInt, value)
		_node.LowRatingThreshold = value
	}
	if value, ok := _c.mutation.SLAConcurrency(); ok {
		_spec.SetField(globalsettings.FieldSLAConcurrency, field.TypeInt, value)
		_node.SLAConcurrency = value
	}
	if value, ok := _c.mutation.SLARateLimitMax(); ok {
		_spec.SetField(globalsettings.FieldSLARateLimitMax, field.TypeInt, value)
		_node.SLARateLimitMax = value
	}
	if value, ok := _c.mutation.SLARateLimitWindowMs(); ok {
		_spec.SetField(globalsettings.FieldSLARateLimitWindowMs, field.TypeInt, value)
		_node.SLARateLimitWindowMs = value
	}
	if value, ok := _c.mutation.ReconcileIntervalMinutes(); ok {
		_spec.SetField(globalsettings.FieldReconcileIntervalMinutes, field.TypeInt, value)
		_node.ReconcileIntervalMinutes = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(globalsettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GlobalSettings.Create().
//		SetDefaultSLAThresholdMinutes(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GlobalSettingsUpsert) {
//			SetDefaultSLAThresholdMinutes(v+v).
//		}).
//		Exec(ctx)
func (_c *GlobalSettingsCreate) OnConflict(opts ...sql.ConflictOption) *GlobalSettingsUpsertOne {
	_c.conflict = opts
	return &GlobalSettingsUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GlobalSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GlobalSettingsCreate) OnConflictColumns(columns ...string) *GlobalSettingsUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GlobalSettingsUpsertOne{
		create: _c,
	}
}

type (
	// GlobalSettingsUpsertOne is the builder for "upsert"-ing
	//  one GlobalSettings node.
	GlobalSettingsUpsertOne struct {
		create *GlobalSettingsCreate
	}

	// GlobalSettingsUpsert is the "OnConflict" setter.
	GlobalSettingsUpsert struct {
		*sql.UpdateSet
	}
)

// SetDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field.
func (u *GlobalSettingsUpsert) SetDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldDefaultSLAThresholdMinutes, v)
	return u
}

// UpdateDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateDefaultSLAThresholdMinutes() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldDefaultSLAThresholdMinutes)
	return u
}

// AddDefaultSLAThresholdMinutes adds v to the "default_sla_threshold_minutes" field.
func (u *GlobalSettingsUpsert) AddDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpsert {
	u.Add(globalsettings.FieldDefaultSLAThresholdMinutes, v)
	return u
}

// SetWarningOffsetMinutes sets the "warning_offset_minutes" field.
func (u *GlobalSettingsUpsert) SetWarningOffsetMinutes(v int) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldWarningOffsetMinutes, v)
	return u
}

// UpdateWarningOffsetMinutes sets the "warning_offset_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateWarningOffsetMinutes() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldWarningOffsetMinutes)
	return u
}

// AddWarningOffsetMinutes adds v to the "warning_offset_minutes" field.
func (u *GlobalSettingsUpsert) AddWarningOffsetMinutes(v int) *GlobalSettingsUpsert {
	u.Add(globalsettings.FieldWarningOffsetMinutes, v)
	return u
}

// SetEscalationIntervalMinutes sets the "escalation_interval_minutes" field.
func (u *GlobalSettingsUpsert) SetEscalationIntervalMinutes(v int) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldEscalationIntervalMinutes, v)
	return u
}

// UpdateEscalationIntervalMinutes sets the "escalation_interval_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateEscalationIntervalMinutes() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldEscalationIntervalMinutes)
	return u
}

// AddEscalationIntervalMinutes adds v to the "escalation_interval_minutes" field.
func (u *GlobalSettingsUpsert) AddEscalationIntervalMinutes(v int) *GlobalSettingsUpsert {
	u.Add(globalsettings.FieldEscalationIntervalMinutes, v)
	return u
}

// SetMaxEscalationLevel sets the "max_escalation_level" field.
func (u *GlobalSettingsUpsert) SetMaxEscalationLevel(v int) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldMaxEscalationLevel, v)
	return u
}

// UpdateMaxEscalationLevel sets the "max_escalation_level" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateMaxEscalationLevel() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldMaxEscalationLevel)
	return u
}

// AddMaxEscalationLevel adds v to the "max_escalation_level" field.
func (u *GlobalSettingsUpsert) AddMaxEscalationLevel(v int) *GlobalSettingsUpsert {
	u.Add(globalsettings.FieldMaxEscalationLevel, v)
	return u
}

// SetGlobalManagerIds sets the "global_manager_ids" field.
func (u *GlobalSettingsUpsert) SetGlobalManagerIds(v []string) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldGlobalManagerIds, v)
	return u
}

// UpdateGlobalManagerIds sets the "global_manager_ids" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateGlobalManagerIds() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldGlobalManagerIds)
	return u
}

// ClearGlobalManagerIds clears the value of the "global_manager_ids" field.
func (u *GlobalSettingsUpsert) ClearGlobalManagerIds() *GlobalSettingsUpsert {
	u.SetNull(globalsettings.FieldGlobalManagerIds)
	return u
}

// SetLowRatingThreshold sets the "low_rating_threshold" field.
func (u *GlobalSettingsUpsert) SetLowRatingThreshold(v int) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldLowRatingThreshold, v)
	return u
}

// UpdateLowRatingThreshold sets the "low_rating_threshold" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateLowRatingThreshold() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldLowRatingThreshold)
	return u
}

// AddLowRatingThreshold adds v to the "low_rating_threshold" field.
func (u *GlobalSettingsUpsert) AddLowRatingThreshold(v int) *GlobalSettingsUpsert {
	u.Add(globalsettings.FieldLowRatingThreshold, v)
	return u
}

// SetSLAConcurrency sets the "sla_concurrency" field.
func (u *GlobalSettingsUpsert) SetSLAConcurrency(v int) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldSLAConcurrency, v)
	return u
}

// UpdateSLAConcurrency sets the "sla_concurrency" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateSLAConcurrency() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldSLAConcurrency)
	return u
}

// AddSLAConcurrency adds v to the "sla_concurrency" field.
func (u *GlobalSettingsUpsert) AddSLAConcurrency(v int) *GlobalSettingsUpsert {
	u.Add(globalsettings.FieldSLAConcurrency, v)
	return u
}

// SetSLARateLimitMax sets the "sla_rate_limit_max" field.
func (u *GlobalSettingsUpsert) SetSLARateLimitMax(v int) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldSLARateLimitMax, v)
	return u
}

// UpdateSLARateLimitMax sets the "sla_rate_limit_max" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateSLARateLimitMax() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldSLARateLimitMax)
	return u
}

// AddSLARateLimitMax adds v to the "sla_rate_limit_max" field.
func (u *GlobalSettingsUpsert) AddSLARateLimitMax(v int) *GlobalSettingsUpsert {
	u.Add(globalsettings.FieldSLARateLimitMax, v)
	return u
}

// SetSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field.
func (u *GlobalSettingsUpsert) SetSLARateLimitWindowMs(v int) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldSLARateLimitWindowMs, v)
	return u
}

// UpdateSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateSLARateLimitWindowMs() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldSLARateLimitWindowMs)
	return u
}

// AddSLARateLimitWindowMs adds v to the "sla_rate_limit_window_ms" field.
func (u *GlobalSettingsUpsert) AddSLARateLimitWindowMs(v int) *GlobalSettingsUpsert {
	u.Add(globalsettings.FieldSLARateLimitWindowMs, v)
	return u
}

// SetReconcileIntervalMinutes sets the "reconcile_interval_minutes" field.
func (u *GlobalSettingsUpsert) SetReconcileIntervalMinutes(v int) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldReconcileIntervalMinutes, v)
	return u
}

// UpdateReconcileIntervalMinutes sets the "reconcile_interval_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateReconcileIntervalMinutes() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldReconcileIntervalMinutes)
	return u
}

// AddReconcileIntervalMinutes adds v to the "reconcile_interval_minutes" field.
func (u *GlobalSettingsUpsert) AddReconcileIntervalMinutes(v int) *GlobalSettingsUpsert {
	u.Add(globalsettings.FieldReconcileIntervalMinutes, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GlobalSettingsUpsert) SetUpdatedAt(v time.Time) *GlobalSettingsUpsert {
	u.Set(globalsettings.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GlobalSettingsUpsert) UpdateUpdatedAt() *GlobalSettingsUpsert {
	u.SetExcluded(globalsettings.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GlobalSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(globalsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GlobalSettingsUpsertOne) UpdateNewValues() *GlobalSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(globalsettings.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GlobalSettings.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GlobalSettingsUpsertOne) Ignore() *GlobalSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GlobalSettingsUpsertOne) DoNothing() *GlobalSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GlobalSettingsCreate.OnConflict
// documentation for more info.
func (u *GlobalSettingsUpsertOne) Update(set func(*GlobalSettingsUpsert)) *GlobalSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GlobalSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field.
func (u *GlobalSettingsUpsertOne) SetDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetDefaultSLAThresholdMinutes(v)
	})
}

// AddDefaultSLAThresholdMinutes adds v to the "default_sla_threshold_minutes" field.
func (u *GlobalSettingsUpsertOne) AddDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddDefaultSLAThresholdMinutes(v)
	})
}

// UpdateDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateDefaultSLAThresholdMinutes() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateDefaultSLAThresholdMinutes()
	})
}

// SetWarningOffsetMinutes sets the "warning_offset_minutes" field.
func (u *GlobalSettingsUpsertOne) SetWarningOffsetMinutes(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetWarningOffsetMinutes(v)
	})
}

// AddWarningOffsetMinutes adds v to the "warning_offset_minutes" field.
func (u *GlobalSettingsUpsertOne) AddWarningOffsetMinutes(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddWarningOffsetMinutes(v)
	})
}

// UpdateWarningOffsetMinutes sets the "warning_offset_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateWarningOffsetMinutes() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateWarningOffsetMinutes()
	})
}

// SetEscalationIntervalMinutes sets the "escalation_interval_minutes" field.
func (u *GlobalSettingsUpsertOne) SetEscalationIntervalMinutes(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetEscalationIntervalMinutes(v)
	})
}

// AddEscalationIntervalMinutes adds v to the "escalation_interval_minutes" field.
func (u *GlobalSettingsUpsertOne) AddEscalationIntervalMinutes(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddEscalationIntervalMinutes(v)
	})
}

// UpdateEscalationIntervalMinutes sets the "escalation_interval_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateEscalationIntervalMinutes() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateEscalationIntervalMinutes()
	})
}

// SetMaxEscalationLevel sets the "max_escalation_level" field.
func (u *GlobalSettingsUpsertOne) SetMaxEscalationLevel(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetMaxEscalationLevel(v)
	})
}

// AddMaxEscalationLevel adds v to the "max_escalation_level" field.
func (u *GlobalSettingsUpsertOne) AddMaxEscalationLevel(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddMaxEscalationLevel(v)
	})
}

// UpdateMaxEscalationLevel sets the "max_escalation_level" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateMaxEscalationLevel() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateMaxEscalationLevel()
	})
}

// SetGlobalManagerIds sets the "global_manager_ids" field.
func (u *GlobalSettingsUpsertOne) SetGlobalManagerIds(v []string) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetGlobalManagerIds(v)
	})
}

// UpdateGlobalManagerIds sets the "global_manager_ids" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateGlobalManagerIds() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateGlobalManagerIds()
	})
}

// ClearGlobalManagerIds clears the value of the "global_manager_ids" field.
func (u *GlobalSettingsUpsertOne) ClearGlobalManagerIds() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.ClearGlobalManagerIds()
	})
}

// SetLowRatingThreshold sets the "low_rating_threshold" field.
func (u *GlobalSettingsUpsertOne) SetLowRatingThreshold(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetLowRatingThreshold(v)
	})
}

// AddLowRatingThreshold adds v to the "low_rating_threshold" field.
func (u *GlobalSettingsUpsertOne) AddLowRatingThreshold(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddLowRatingThreshold(v)
	})
}

// UpdateLowRatingThreshold sets the "low_rating_threshold" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateLowRatingThreshold() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateLowRatingThreshold()
	})
}

// SetSLAConcurrency sets the "sla_concurrency" field.
func (u *GlobalSettingsUpsertOne) SetSLAConcurrency(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetSLAConcurrency(v)
	})
}

// AddSLAConcurrency adds v to the "sla_concurrency" field.
func (u *GlobalSettingsUpsertOne) AddSLAConcurrency(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddSLAConcurrency(v)
	})
}

// UpdateSLAConcurrency sets the "sla_concurrency" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateSLAConcurrency() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateSLAConcurrency()
	})
}

// SetSLARateLimitMax sets the "sla_rate_limit_max" field.
func (u *GlobalSettingsUpsertOne) SetSLARateLimitMax(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetSLARateLimitMax(v)
	})
}

// AddSLARateLimitMax adds v to the "sla_rate_limit_max" field.
func (u *GlobalSettingsUpsertOne) AddSLARateLimitMax(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddSLARateLimitMax(v)
	})
}

// UpdateSLARateLimitMax sets the "sla_rate_limit_max" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateSLARateLimitMax() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateSLARateLimitMax()
	})
}

// SetSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field.
func (u *GlobalSettingsUpsertOne) SetSLARateLimitWindowMs(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetSLARateLimitWindowMs(v)
	})
}

// AddSLARateLimitWindowMs adds v to the "sla_rate_limit_window_ms" field.
func (u *GlobalSettingsUpsertOne) AddSLARateLimitWindowMs(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddSLARateLimitWindowMs(v)
	})
}

// UpdateSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateSLARateLimitWindowMs() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateSLARateLimitWindowMs()
	})
}

// SetReconcileIntervalMinutes sets the "reconcile_interval_minutes" field.
func (u *GlobalSettingsUpsertOne) SetReconcileIntervalMinutes(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetReconcileIntervalMinutes(v)
	})
}

// AddReconcileIntervalMinutes adds v to the "reconcile_interval_minutes" field.
func (u *GlobalSettingsUpsertOne) AddReconcileIntervalMinutes(v int) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddReconcileIntervalMinutes(v)
	})
}

// UpdateReconcileIntervalMinutes sets the "reconcile_interval_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateReconcileIntervalMinutes() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateReconcileIntervalMinutes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GlobalSettingsUpsertOne) SetUpdatedAt(v time.Time) *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GlobalSettingsUpsertOne) UpdateUpdatedAt() *GlobalSettingsUpsertOne {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GlobalSettingsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GlobalSettingsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GlobalSettingsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GlobalSettingsUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GlobalSettingsUpsertOne.ID is not supported by MySQL driver. Use GlobalSettingsUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GlobalSettingsUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GlobalSettingsCreateBulk is the builder for creating many GlobalSettings entities in bulk.
type GlobalSettingsCreateBulk struct {
	config
	err      error
	builders []*GlobalSettingsCreate
	conflict []sql.ConflictOption
}

// Save creates the GlobalSettings entities in the database.
func (_c *GlobalSettingsCreateBulk) Save(ctx context.Context) ([]*GlobalSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GlobalSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GlobalSettingsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GlobalSettingsCreateBulk) SaveX(ctx context.Context) []*GlobalSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GlobalSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GlobalSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GlobalSettings.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GlobalSettingsUpsert) {
//			SetDefaultSLAThresholdMinutes(v+v).
//		}).
//		Exec(ctx)
func (_c *GlobalSettingsCreateBulk) OnConflict(opts ...sql.ConflictOption) *GlobalSettingsUpsertBulk {
	_c.conflict = opts
	return &GlobalSettingsUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GlobalSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GlobalSettingsCreateBulk) OnConflictColumns(columns ...string) *GlobalSettingsUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GlobalSettingsUpsertBulk{
		create: _c,
	}
}

// GlobalSettingsUpsertBulk is the builder for "upsert"-ing
// a bulk of GlobalSettings nodes.
type GlobalSettingsUpsertBulk struct {
	create *GlobalSettingsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GlobalSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(globalsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GlobalSettingsUpsertBulk) UpdateNewValues() *GlobalSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(globalsettings.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GlobalSettings.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GlobalSettingsUpsertBulk) Ignore() *GlobalSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GlobalSettingsUpsertBulk) DoNothing() *GlobalSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GlobalSettingsCreateBulk.OnConflict
// documentation for more info.
func (u *GlobalSettingsUpsertBulk) Update(set func(*GlobalSettingsUpsert)) *GlobalSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GlobalSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field.
func (u *GlobalSettingsUpsertBulk) SetDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetDefaultSLAThresholdMinutes(v)
	})
}

// AddDefaultSLAThresholdMinutes adds v to the "default_sla_threshold_minutes" field.
func (u *GlobalSettingsUpsertBulk) AddDefaultSLAThresholdMinutes(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddDefaultSLAThresholdMinutes(v)
	})
}

// UpdateDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateDefaultSLAThresholdMinutes() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateDefaultSLAThresholdMinutes()
	})
}

// SetWarningOffsetMinutes sets the "warning_offset_minutes" field.
func (u *GlobalSettingsUpsertBulk) SetWarningOffsetMinutes(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetWarningOffsetMinutes(v)
	})
}

// AddWarningOffsetMinutes adds v to the "warning_offset_minutes" field.
func (u *GlobalSettingsUpsertBulk) AddWarningOffsetMinutes(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddWarningOffsetMinutes(v)
	})
}

// UpdateWarningOffsetMinutes sets the "warning_offset_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateWarningOffsetMinutes() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateWarningOffsetMinutes()
	})
}

// SetEscalationIntervalMinutes sets the "escalation_interval_minutes" field.
func (u *GlobalSettingsUpsertBulk) SetEscalationIntervalMinutes(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetEscalationIntervalMinutes(v)
	})
}

// AddEscalationIntervalMinutes adds v to the "escalation_interval_minutes" field.
func (u *GlobalSettingsUpsertBulk) AddEscalationIntervalMinutes(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddEscalationIntervalMinutes(v)
	})
}

// UpdateEscalationIntervalMinutes sets the "escalation_interval_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateEscalationIntervalMinutes() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateEscalationIntervalMinutes()
	})
}

// SetMaxEscalationLevel sets the "max_escalation_level" field.
func (u *GlobalSettingsUpsertBulk) SetMaxEscalationLevel(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetMaxEscalationLevel(v)
	})
}

// AddMaxEscalationLevel adds v to the "max_escalation_level" field.
func (u *GlobalSettingsUpsertBulk) AddMaxEscalationLevel(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddMaxEscalationLevel(v)
	})
}

// UpdateMaxEscalationLevel sets the "max_escalation_level" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateMaxEscalationLevel() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateMaxEscalationLevel()
	})
}

// SetGlobalManagerIds sets the "global_manager_ids" field.
func (u *GlobalSettingsUpsertBulk) SetGlobalManagerIds(v []string) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetGlobalManagerIds(v)
	})
}

// UpdateGlobalManagerIds sets the "global_manager_ids" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateGlobalManagerIds() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateGlobalManagerIds()
	})
}

// ClearGlobalManagerIds clears the value of the "global_manager_ids" field.
func (u *GlobalSettingsUpsertBulk) ClearGlobalManagerIds() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.ClearGlobalManagerIds()
	})
}

// SetLowRatingThreshold sets the "low_rating_threshold" field.
func (u *GlobalSettingsUpsertBulk) SetLowRatingThreshold(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetLowRatingThreshold(v)
	})
}

// AddLowRatingThreshold adds v to the "low_rating_threshold" field.
func (u *GlobalSettingsUpsertBulk) AddLowRatingThreshold(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddLowRatingThreshold(v)
	})
}

// UpdateLowRatingThreshold sets the "low_rating_threshold" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateLowRatingThreshold() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateLowRatingThreshold()
	})
}

// SetSLAConcurrency sets the "sla_concurrency" field.
func (u *GlobalSettingsUpsertBulk) SetSLAConcurrency(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetSLAConcurrency(v)
	})
}

// AddSLAConcurrency adds v to the "sla_concurrency" field.
func (u *GlobalSettingsUpsertBulk) AddSLAConcurrency(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddSLAConcurrency(v)
	})
}

// UpdateSLAConcurrency sets the "sla_concurrency" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateSLAConcurrency() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateSLAConcurrency()
	})
}

// SetSLARateLimitMax sets the "sla_rate_limit_max" field.
func (u *GlobalSettingsUpsertBulk) SetSLARateLimitMax(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetSLARateLimitMax(v)
	})
}

// AddSLARateLimitMax adds v to the "sla_rate_limit_max" field.
func (u *GlobalSettingsUpsertBulk) AddSLARateLimitMax(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddSLARateLimitMax(v)
	})
}

// UpdateSLARateLimitMax sets the "sla_rate_limit_max" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateSLARateLimitMax() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateSLARateLimitMax()
	})
}

// SetSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field.
func (u *GlobalSettingsUpsertBulk) SetSLARateLimitWindowMs(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetSLARateLimitWindowMs(v)
	})
}

// AddSLARateLimitWindowMs adds v to the "sla_rate_limit_window_ms" field.
func (u *GlobalSettingsUpsertBulk) AddSLARateLimitWindowMs(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddSLARateLimitWindowMs(v)
	})
}

// UpdateSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateSLARateLimitWindowMs() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateSLARateLimitWindowMs()
	})
}

// SetReconcileIntervalMinutes sets the "reconcile_interval_minutes" field.
func (u *GlobalSettingsUpsertBulk) SetReconcileIntervalMinutes(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetReconcileIntervalMinutes(v)
	})
}

// AddReconcileIntervalMinutes adds v to the "reconcile_interval_minutes" field.
func (u *GlobalSettingsUpsertBulk) AddReconcileIntervalMinutes(v int) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.AddReconcileIntervalMinutes(v)
	})
}

// UpdateReconcileIntervalMinutes sets the "reconcile_interval_minutes" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateReconcileIntervalMinutes() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateReconcileIntervalMinutes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GlobalSettingsUpsertBulk) SetUpdatedAt(v time.Time) *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GlobalSettingsUpsertBulk) UpdateUpdatedAt() *GlobalSettingsUpsertBulk {
	return u.Update(func(s *GlobalSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GlobalSettingsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GlobalSettingsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GlobalSettingsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GlobalSettingsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
