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
	"github.com/teambuh/slamon/ent/predicate"
	"github.com/teambuh/slamon/ent/slaalert"
)

// SLAAlertUpdate is the builder for updating SLAAlert entities.
type SLAAlertUpdate struct {
	config
	hooks    []Hook
	mutation *SLAAlertMutation
}

// Where appends a list predicates to the SLAAlertUpdate builder.
func (_u *SLAAlertUpdate) Where(ps ...predicate.SLAAlert) *SLAAlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *SLAAlertUpdate) SetAlertType(v slaalert.AlertType) *SLAAlertUpdate {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *SLAAlertUpdate) SetNillableAlertType(v *slaalert.AlertType) *SLAAlertUpdate {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetMinutesElapsed sets the "minutes_elapsed" field.
func (_u *SLAAlertUpdate) SetMinutesElapsed(v int) *SLAAlertUpdate {
	_u.mutation.ResetMinutesElapsed()
	_u.mutation.SetMinutesElapsed(v)
	return _u
}

// SetNillableMinutesElapsed sets the "minutes_elapsed" field if the given value is not nil.
func (_u *SLAAlertUpdate) SetNillableMinutesElapsed(v *int) *SLAAlertUpdate {
	if v != nil {
		_u.SetMinutesElapsed(*v)
	}
	return _u
}

// AddMinutesElapsed adds value to the "minutes_elapsed" field.
func (_u *SLAAlertUpdate) AddMinutesElapsed(v int) *SLAAlertUpdate {
	_u.mutation.AddMinutesElapsed(v)
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *SLAAlertUpdate) SetEscalationLevel(v int) *SLAAlertUpdate {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *SLAAlertUpdate) SetNillableEscalationLevel(v *int) *SLAAlertUpdate {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *SLAAlertUpdate) AddEscalationLevel(v int) *SLAAlertUpdate {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetRecipientIds sets the "recipient_ids" field.
func (_u *SLAAlertUpdate) SetRecipientIds(v []string) *SLAAlertUpdate {
	_u.mutation.SetRecipientIds(v)
	return _u
}

// AppendRecipientIds appends value to the "recipient_ids" field.
func (_u *SLAAlertUpdate) AppendRecipientIds(v []string) *SLAAlertUpdate {
	_u.mutation.AppendRecipientIds(v)
	return _u
}

// ClearRecipientIds clears the value of the "recipient_ids" field.
func (_u *SLAAlertUpdate) ClearRecipientIds() *SLAAlertUpdate {
	_u.mutation.ClearRecipientIds()
	return _u
}

// SetDeliveryStatus sets the "delivery_status" field.
func (_u *SLAAlertUpdate) SetDeliveryStatus(v slaalert.DeliveryStatus) *SLAAlertUpdate {
	_u.mutation.SetDeliveryStatus(v)
	return _u
}

// SetNillableDeliveryStatus sets the "delivery_status" field if the given value is not nil.
func (_u *SLAAlertUpdate) SetNillableDeliveryStatus(v *slaalert.DeliveryStatus) *SLAAlertUpdate {
	if v != nil {
		_u.SetDeliveryStatus(*v)
	}
	return _u
}

// SetDeliveredCount sets the "delivered_count" field.
func (_u *SLAAlertUpdate) SetDeliveredCount(v int) *SLAAlertUpdate {
	_u.mutation.ResetDeliveredCount()
	_u.mutation.SetDeliveredCount(v)
	return _u
}

// SetNillableDeliveredCount sets the "delivered_count" field if the given value is not nil.
func (_u *SLAAlertUpdate) SetNillableDeliveredCount(v *int) *SLAAlertUpdate {
	if v != nil {
		_u.SetDeliveredCount(*v)
	}
	return _u
}

// AddDeliveredCount adds value to the "delivered_count" field.
func (_u *SLAAlertUpdate) AddDeliveredCount(v int) *SLAAlertUpdate {
	_u.mutation.AddDeliveredCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *SLAAlertUpdate) SetFailedCount(v int) *SLAAlertUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *SLAAlertUpdate) SetNillableFailedCount(v *int) *SLAAlertUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *SLAAlertUpdate) AddFailedCount(v int) *SLAAlertUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetNextEscalationAt sets the "next_escalation_at" field.
func (_u *SLAAlertUpdate) SetNextEscalationAt(v time.Time) *SLAAlertUpdate {
	_u.mutation.SetNextEscalationAt(v)
	return _u
}

// SetNillableNextEscalationAt sets the "next_escalation_at" field if the given value is not nil.
func (_u *SLAAlertUpdate) SetNillableNextEscalationAt(v *time.Time) *SLAAlertUpdate {
	if v != nil {
		_u.SetNextEscalationAt(*v)
	}
	return _u
}

// ClearNextEscalationAt clears the value of the "next_escalation_at" field.
func (_u *SLAAlertUpdate) ClearNextEscalationAt() *SLAAlertUpdate {
	_u.mutation.ClearNextEscalationAt()
	return _u
}

// SetResolvedAction sets the "resolved_action" field.
func (_u *SLAAlertUpdate) SetResolvedAction(v slaalert.ResolvedAction) *SLAAlertUpdate {
	_u.mutation.SetResolvedAction(v)
	return _u
}

// SetNillableResolvedAction sets the "resolved_action" field if the given value is not nil.
func (_u *SLAAlertUpdate) SetNillableResolvedAction(v *slaalert.ResolvedAction) *SLAAlertUpdate {
	if v != nil {
		_u.SetResolvedAction(*v)
	}
	return _u
}

// ClearResolvedAction clears the value of the "resolved_action" field.
func (_u *SLAAlertUpdate) ClearResolvedAction() *SLAAlertUpdate {
	_u.mutation.ClearResolvedAction()
	return _u
}

// Mutation returns the SLAAlertMutation object of the builder.
func (_u *SLAAlertUpdate) Mutation() *SLAAlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SLAAlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SLAAlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SLAAlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SLAAlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SLAAlertUpdate) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := slaalert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.alert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EscalationLevel(); ok {
		if err := slaalert.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.escalation_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryStatus(); ok {
		if err := slaalert.DeliveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "delivery_status", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.delivery_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResolvedAction(); ok {
		if err := slaalert.ResolvedActionValidator(v); err != nil {
			return &ValidationError{Name: "resolved_action", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.resolved_action": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SLAAlert.request"`)
	}
	return nil
}

func (_u *SLAAlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slaalert.Table, slaalert.Columns, sqlgraph.NewFieldSpec(slaalert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(slaalert.FieldAlertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinutesElapsed(); ok {
		_spec.SetField(slaalert.FieldMinutesElapsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutesElapsed(); ok {
		_spec.AddField(slaalert.FieldMinutesElapsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(slaalert.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(slaalert.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecipientIds(); ok {
		_spec.SetField(slaalert.FieldRecipientIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecipientIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, slaalert.FieldRecipientIds, value)
		})
	}
	if _u.mutation.RecipientIdsCleared() {
		_spec.ClearField(slaalert.FieldRecipientIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeliveryStatus(); ok {
		_spec.SetField(slaalert.FieldDeliveryStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeliveredCount(); ok {
		_spec.SetField(slaalert.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveredCount(); ok {
		_spec.AddField(slaalert.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(slaalert.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(slaalert.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextEscalationAt(); ok {
		_spec.SetField(slaalert.FieldNextEscalationAt, field.TypeTime, value)
	}
	if _u.mutation.NextEscalationAtCleared() {
		_spec.ClearField(slaalert.FieldNextEscalationAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAction(); ok {
		_spec.SetField(slaalert.FieldResolvedAction, field.TypeEnum, value)
	}
	if _u.mutation.ResolvedActionCleared() {
		_spec.ClearField(slaalert.FieldResolvedAction, field.TypeEnum)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slaalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SLAAlertUpdateOne is the builder for updating a single SLAAlert entity.
type SLAAlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SLAAlertMutation
}

// SetAlertType sets the "alert_type" field.
func (_u *SLAAlertUpdateOne) SetAlertType(v slaalert.AlertType) *SLAAlertUpdateOne {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *SLAAlertUpdateOne) SetNillableAlertType(v *slaalert.AlertType) *SLAAlertUpdateOne {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetMinutesElapsed sets the "minutes_elapsed" field.
func (_u *SLAAlertUpdateOne) SetMinutesElapsed(v int) *SLAAlertUpdateOne {
	_u.mutation.ResetMinutesElapsed()
	_u.mutation.SetMinutesElapsed(v)
	return _u
}

// SetNillableMinutesElapsed sets the "minutes_elapsed" field if the given value is not nil.
func (_u *SLAAlertUpdateOne) SetNillableMinutesElapsed(v *int) *SLAAlertUpdateOne {
	if v != nil {
		_u.SetMinutesElapsed(*v)
	}
	return _u
}

// AddMinutesElapsed adds value to the "minutes_elapsed" field.
func (_u *SLAAlertUpdateOne) AddMinutesElapsed(v int) *SLAAlertUpdateOne {
	_u.mutation.AddMinutesElapsed(v)
	return _u
}

// SetEscalationLevel sets the "escalation_level" field.
func (_u *SLAAlertUpdateOne) SetEscalationLevel(v int) *SLAAlertUpdateOne {
	_u.mutation.ResetEscalationLevel()
	_u.mutation.SetEscalationLevel(v)
	return _u
}

// SetNillableEscalationLevel sets the "escalation_level" field if the given value is not nil.
func (_u *SLAAlertUpdateOne) SetNillableEscalationLevel(v *int) *SLAAlertUpdateOne {
	if v != nil {
		_u.SetEscalationLevel(*v)
	}
	return _u
}

// AddEscalationLevel adds value to the "escalation_level" field.
func (_u *SLAAlertUpdateOne) AddEscalationLevel(v int) *SLAAlertUpdateOne {
	_u.mutation.AddEscalationLevel(v)
	return _u
}

// SetRecipientIds sets the "recipient_ids" field.
func (_u *SLAAlertUpdateOne) SetRecipientIds(v []string) *SLAAlertUpdateOne {
	_u.mutation.SetRecipientIds(v)
	return _u
}

// AppendRecipientIds appends value to the "recipient_ids" field.
func (_u *SLAAlertUpdateOne) AppendRecipientIds(v []string) *SLAAlertUpdateOne {
	_u.mutation.AppendRecipientIds(v)
	return _u
}

// ClearRecipientIds clears the value of the "recipient_ids" field.
func (_u *SLAAlertUpdateOne) ClearRecipientIds() *SLAAlertUpdateOne {
	_u.mutation.ClearRecipientIds()
	return _u
}

// SetDeliveryStatus sets the "delivery_status" field.
func (_u *SLAAlertUpdateOne) SetDeliveryStatus(v slaalert.DeliveryStatus) *SLAAlertUpdateOne {
	_u.mutation.SetDeliveryStatus(v)
	return _u
}

// SetNillableDeliveryStatus sets the "delivery_status" field if the given value is not nil.
func (_u *SLAAlertUpdateOne) SetNillableDeliveryStatus(v *slaalert.DeliveryStatus) *SLAAlertUpdateOne {
	if v != nil {
		_u.SetDeliveryStatus(*v)
	}
	return _u
}

// SetDeliveredCount sets the "delivered_count" field.
func (_u *SLAAlertUpdateOne) SetDeliveredCount(v int) *SLAAlertUpdateOne {
	_u.mutation.ResetDeliveredCount()
	_u.mutation.SetDeliveredCount(v)
	return _u
}

// SetNillableDeliveredCount sets the "delivered_count" field if the given value is not nil.
func (_u *SLAAlertUpdateOne) SetNillableDeliveredCount(v *int) *SLAAlertUpdateOne {
	if v != nil {
		_u.SetDeliveredCount(*v)
	}
	return _u
}

// AddDeliveredCount adds value to the "delivered_count" field.
func (_u *SLAAlertUpdateOne) AddDeliveredCount(v int) *SLAAlertUpdateOne {
	_u.mutation.AddDeliveredCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *SLAAlertUpdateOne) SetFailedCount(v int) *SLAAlertUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *SLAAlertUpdateOne) SetNillableFailedCount(v *int) *SLAAlertUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *SLAAlertUpdateOne) AddFailedCount(v int) *SLAAlertUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetNextEscalationAt sets the "next_escalation_at" field.
func (_u *SLAAlertUpdateOne) SetNextEscalationAt(v time.Time) *SLAAlertUpdateOne {
	_u.mutation.SetNextEscalationAt(v)
	return _u
}

// SetNillableNextEscalationAt sets the "next_escalation_at" field if the given value is not nil.
func (_u *SLAAlertUpdateOne) SetNillableNextEscalationAt(v *time.Time) *SLAAlertUpdateOne {
	if v != nil {
		_u.SetNextEscalationAt(*v)
	}
	return _u
}

// ClearNextEscalationAt clears the value of the "next_escalation_at" field.
func (_u *SLAAlertUpdateOne) ClearNextEscalationAt() *SLAAlertUpdateOne {
	_u.mutation.ClearNextEscalationAt()
	return _u
}

// SetResolvedAction sets the "resolved_action" field.
func (_u *SLAAlertUpdateOne) SetResolvedAction(v slaalert.ResolvedAction) *SLAAlertUpdateOne {
	_u.mutation.SetResolvedAction(v)
	return _u
}

// SetNillableResolvedAction sets the "resolved_action" field if the given value is not nil.
func (_u *SLAAlertUpdateOne) SetNillableResolvedAction(v *slaalert.ResolvedAction) *SLAAlertUpdateOne {
	if v != nil {
		_u.SetResolvedAction(*v)
	}
	return _u
}

// ClearResolvedAction clears the value of the "resolved_action" field.
func (_u *SLAAlertUpdateOne) ClearResolvedAction() *SLAAlertUpdateOne {
	_u.mutation.ClearResolvedAction()
	return _u
}

// Mutation returns the SLAAlertMutation object of the builder.
func (_u *SLAAlertUpdateOne) Mutation() *SLAAlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the SLAAlertUpdate builder.
func (_u *SLAAlertUpdateOne) Where(ps ...predicate.SLAAlert) *SLAAlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SLAAlertUpdateOne) Select(field string, fields ...string) *SLAAlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SLAAlert entity.
func (_u *SLAAlertUpdateOne) Save(ctx context.Context) (*SLAAlert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SLAAlertUpdateOne) SaveX(ctx context.Context) *SLAAlert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SLAAlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SLAAlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SLAAlertUpdateOne) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := slaalert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.alert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EscalationLevel(); ok {
		if err := slaalert.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.escalation_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryStatus(); ok {
		if err := slaalert.DeliveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "delivery_status", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.delivery_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResolvedAction(); ok {
		if err := slaalert.ResolvedActionValidator(v); err != nil {
			return &ValidationError{Name: "resolved_action", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.resolved_action": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SLAAlert.request"`)
	}
	return nil
}

func (_u *SLAAlertUpdateOne) sqlSave(ctx context.Context) (_node *SLAAlert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slaalert.Table, slaalert.Columns, sqlgraph.NewFieldSpec(slaalert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SLAAlert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slaalert.FieldID)
		for _, f := range fields {
			if !slaalert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slaalert.FieldID {
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
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(slaalert.FieldAlertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinutesElapsed(); ok {
		_spec.SetField(slaalert.FieldMinutesElapsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutesElapsed(); ok {
		_spec.AddField(slaalert.FieldMinutesElapsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EscalationLevel(); ok {
		_spec.SetField(slaalert.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEscalationLevel(); ok {
		_spec.AddField(slaalert.FieldEscalationLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecipientIds(); ok {
		_spec.SetField(slaalert.FieldRecipientIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecipientIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, slaalert.FieldRecipientIds, value)
		})
	}
	if _u.mutation.RecipientIdsCleared() {
		_spec.ClearField(slaalert.FieldRecipientIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeliveryStatus(); ok {
		_spec.SetField(slaalert.FieldDeliveryStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeliveredCount(); ok {
		_spec.SetField(slaalert.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveredCount(); ok {
		_spec.AddField(slaalert.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(slaalert.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(slaalert.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextEscalationAt(); ok {
		_spec.SetField(slaalert.FieldNextEscalationAt, field.TypeTime, value)
	}
	if _u.mutation.NextEscalationAtCleared() {
		_spec.ClearField(slaalert.FieldNextEscalationAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAction(); ok {
		_spec.SetField(slaalert.FieldResolvedAction, field.TypeEnum, value)
	}
	if _u.mutation.ResolvedActionCleared() {
		_spec.ClearField(slaalert.FieldResolvedAction, field.TypeEnum)
	}
	_node = &SLAAlert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slaalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
