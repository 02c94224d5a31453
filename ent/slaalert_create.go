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
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/slaalert"
)

// SLAAlertCreate is the builder for creating a SLAAlert entity.
type SLAAlertCreate struct {
	config
	mutation *SLAAlertMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRequestID sets the "request_id" field.
func (_c *SLAAlertCreate) SetRequestID(v string) *SLAAlertCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetAlertType sets the "alert_type" field.
func (_c *SLAAlertCreate) SetAlertType(v slaalert.AlertType) *SLAAlertCreate {
	_c.mutation.SetAlertType(v)
	return _c
}

// SetMinutesElapsed sets the "minutes_elapsed" field.
func (_c *SLAAlertCreate) SetMinutesElapsed(v int) *SLAAlertCreate {
	_c.mutation.SetMinutesElapsed(v)
	return _c
}

// SetEscalationLevel sets the "escalation_level" field.
func (_c *SLAAlertCreate) SetEscalationLevel(v int) *SLAAlertCreate {
	_c.mutation.SetEscalationLevel(v)
	return _c
}

// SetRecipientIds sets the "recipient_ids" field.
func (_c *SLAAlertCreate) SetRecipientIds(v []string) *SLAAlertCreate {
	_c.mutation.SetRecipientIds(v)
	return _c
}

// SetDeliveryStatus sets the "delivery_status" field.
func (_c *SLAAlertCreate) SetDeliveryStatus(v slaalert.DeliveryStatus) *SLAAlertCreate {
	_c.mutation.SetDeliveryStatus(v)
	return _c
}

// SetNillableDeliveryStatus sets the "delivery_status" field if the given value is not nil.
func (_c *SLAAlertCreate) SetNillableDeliveryStatus(v *slaalert.DeliveryStatus) *SLAAlertCreate {
	if v != nil {
		_c.SetDeliveryStatus(*v)
	}
	return _c
}

// SetDeliveredCount sets the "delivered_count" field.
func (_c *SLAAlertCreate) SetDeliveredCount(v int) *SLAAlertCreate {
	_c.mutation.SetDeliveredCount(v)
	return _c
}

// SetNillableDeliveredCount sets the "delivered_count" field if the given value is not nil.
func (_c *SLAAlertCreate) SetNillableDeliveredCount(v *int) *SLAAlertCreate {
	if v != nil {
		_c.SetDeliveredCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *SLAAlertCreate) SetFailedCount(v int) *SLAAlertCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *SLAAlertCreate) SetNillableFailedCount(v *int) *SLAAlertCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetNextEscalationAt sets the "next_escalation_at" field.
func (_c *SLAAlertCreate) SetNextEscalationAt(v time.Time) *SLAAlertCreate {
	_c.mutation.SetNextEscalationAt(v)
	return _c
}

// SetNillableNextEscalationAt sets the "next_escalation_at" field if the given value is not nil.
func (_c *SLAAlertCreate) SetNillableNextEscalationAt(v *time.Time) *SLAAlertCreate {
	if v != nil {
		_c.SetNextEscalationAt(*v)
	}
	return _c
}

// SetResolvedAction sets the "resolved_action" field.
func (_c *SLAAlertCreate) SetResolvedAction(v slaalert.ResolvedAction) *SLAAlertCreate {
	_c.mutation.SetResolvedAction(v)
	return _c
}

// SetNillableResolvedAction sets the "resolved_action" field if the given value is not nil.
func (_c *SLAAlertCreate) SetNillableResolvedAction(v *slaalert.ResolvedAction) *SLAAlertCreate {
	if v != nil {
		_c.SetResolvedAction(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SLAAlertCreate) SetCreatedAt(v time.Time) *SLAAlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SLAAlertCreate) SetNillableCreatedAt(v *time.Time) *SLAAlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SLAAlertCreate) SetID(v string) *SLAAlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the ClientRequest entity.
func (_c *SLAAlertCreate) SetRequest(v *ClientRequest) *SLAAlertCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the SLAAlertMutation object of the builder.
func (_c *SLAAlertCreate) Mutation() *SLAAlertMutation {
	return _c.mutation
}

// Save creates the SLAAlert in the database.
func (_c *SLAAlertCreate) Save(ctx context.Context) (*SLAAlert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SLAAlertCreate) SaveX(ctx context.Context) *SLAAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SLAAlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SLAAlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SLAAlertCreate) defaults() {
	if _, ok := _c.mutation.DeliveryStatus(); !ok {
		v := slaalert.DefaultDeliveryStatus
		_c.mutation.SetDeliveryStatus(v)
	}
	if _, ok := _c.mutation.DeliveredCount(); !ok {
		v := slaalert.DefaultDeliveredCount
		_c.mutation.SetDeliveredCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := slaalert.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := slaalert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SLAAlertCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "SLAAlert.request_id"`)}
	}
	if _, ok := _c.mutation.AlertType(); !ok {
		return &ValidationError{Name: "alert_type", err: errors.New(`ent: missing required field "SLAAlert.alert_type"`)}
	}
	if v, ok := _c.mutation.AlertType(); ok {
		if err := slaalert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.alert_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinutesElapsed(); !ok {
		return &ValidationError{Name: "minutes_elapsed", err: errors.New(`ent: missing required field "SLAAlert.minutes_elapsed"`)}
	}
	if _, ok := _c.mutation.EscalationLevel(); !ok {
		return &ValidationError{Name: "escalation_level", err: errors.New(`ent: missing required field "SLAAlert.escalation_level"`)}
	}
	if v, ok := _c.mutation.EscalationLevel(); ok {
		if err := slaalert.EscalationLevelValidator(v); err != nil {
			return &ValidationError{Name: "escalation_level", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.escalation_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeliveryStatus(); !ok {
		return &ValidationError{Name: "delivery_status", err: errors.New(`ent: missing required field "SLAAlert.delivery_status"`)}
	}
	if v, ok := _c.mutation.DeliveryStatus(); ok {
		if err := slaalert.DeliveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "delivery_status", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.delivery_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeliveredCount(); !ok {
		return &ValidationError{Name: "delivered_count", err: errors.New(`ent: missing required field "SLAAlert.delivered_count"`)}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "SLAAlert.failed_count"`)}
	}
	if v, ok := _c.mutation.ResolvedAction(); ok {
		if err := slaalert.ResolvedActionValidator(v); err != nil {
			return &ValidationError{Name: "resolved_action", err: fmt.Errorf(`ent: validator failed for field "SLAAlert.resolved_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SLAAlert.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "SLAAlert.request"`)}
	}
	return nil
}

func (_c *SLAAlertCreate) sqlSave(ctx context.Context) (*SLAAlert, error) {
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
			return nil, fmt.Errorf("unexpected SLAAlert.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SLAAlertCreate) createSpec() (*SLAAlert, *sqlgraph.CreateSpec) {
	var (
		_node = &SLAAlert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slaalert.Table, sqlgraph.NewFieldSpec(slaalert.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AlertType(); ok {
		_spec.SetField(slaalert.FieldAlertType, field.TypeEnum, value)
		_node.AlertType = value
	}
	if value, ok := _c.mutation.MinutesElapsed(); ok {
		_spec.SetField(slaalert.FieldMinutesElapsed, field.TypeInt, value)
		_node.MinutesElapsed = value
	}
	if value, ok := _c.mutation.EscalationLevel(); ok {
		_spec.SetField(slaalert.FieldEscalationLevel, field.TypeInt, value)
		_node.EscalationLevel = value
	}
	if value, ok := _c.mutation.RecipientIds(); ok {
		_spec.SetField(slaalert.FieldRecipientIds, field.TypeJSON, value)
		_node.RecipientIds = value
	}
	if value, ok := _c.mutation.DeliveryStatus(); ok {
		_spec.SetField(slaalert.FieldDeliveryStatus, field.TypeEnum, value)
		_node.DeliveryStatus = value
	}
	if value, ok := _c.mutation.DeliveredCount(); ok {
		_spec.SetField(slaalert.FieldDeliveredCount, field.TypeInt, value)
		_node.DeliveredCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(slaalert.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.NextEscalationAt(); ok {
		_spec.SetField(slaalert.FieldNextEscalationAt, field.TypeTime, value)
		_node.NextEscalationAt = &value
	}
	if value, ok := _c.mutation.ResolvedAction(); ok {
		_spec.SetField(slaalert.FieldResolvedAction, field.TypeEnum, value)
		_node.ResolvedAction = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(slaalert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   slaalert.RequestTable,
			Columns: []string{slaalert.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SLAAlert.Create().
//		SetRequestID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SLAAlertUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *SLAAlertCreate) OnConflict(opts ...sql.ConflictOption) *SLAAlertUpsertOne {
	_c.conflict = opts
	return &SLAAlertUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SLAAlert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SLAAlertCreate) OnConflictColumns(columns ...string) *SLAAlertUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SLAAlertUpsertOne{
		create: _c,
	}
}

type (
	// SLAAlertUpsertOne is the builder for "upsert"-ing
	//  one SLAAlert node.
	SLAAlertUpsertOne struct {
		create *SLAAlertCreate
	}

	// SLAAlertUpsert is the "OnConflict" setter.
	SLAAlertUpsert struct {
		*sql.UpdateSet
	}
)

// SetAlertType sets the "alert_type" field.
func (u *SLAAlertUpsert) SetAlertType(v slaalert.AlertType) *SLAAlertUpsert {
	u.Set(slaalert.FieldAlertType, v)
	return u
}

// UpdateAlertType sets the "alert_type" field to the value that was provided on create.
func (u *SLAAlertUpsert) UpdateAlertType() *SLAAlertUpsert {
	u.SetExcluded(slaalert.FieldAlertType)
	return u
}

// SetMinutesElapsed sets the "minutes_elapsed" field.
func (u *SLAAlertUpsert) SetMinutesElapsed(v int) *SLAAlertUpsert {
	u.Set(slaalert.FieldMinutesElapsed, v)
	return u
}

// UpdateMinutesElapsed sets the "minutes_elapsed" field to the value that was provided on create.
func (u *SLAAlertUpsert) UpdateMinutesElapsed() *SLAAlertUpsert {
	u.SetExcluded(slaalert.FieldMinutesElapsed)
	return u
}

// AddMinutesElapsed adds v to the "minutes_elapsed" field.
func (u *SLAAlertUpsert) AddMinutesElapsed(v int) *SLAAlertUpsert {
	u.Add(slaalert.FieldMinutesElapsed, v)
	return u
}

// SetEscalationLevel sets the "escalation_level" field.
func (u *SLAAlertUpsert) SetEscalationLevel(v int) *SLAAlertUpsert {
	u.Set(slaalert.FieldEscalationLevel, v)
	return u
}

// UpdateEscalationLevel sets the "escalation_level" field to the value that was provided on create.
func (u *SLAAlertUpsert) UpdateEscalationLevel() *SLAAlertUpsert {
	u.SetExcluded(slaalert.FieldEscalationLevel)
	return u
}

// AddEscalationLevel adds v to the "escalation_level" field.
func (u *SLAAlertUpsert) AddEscalationLevel(v int) *SLAAlertUpsert {
	u.Add(slaalert.FieldEscalationLevel, v)
	return u
}

// SetRecipientIds sets the "recipient_ids" field.
func (u *SLAAlertUpsert) SetRecipientIds(v []string) *SLAAlertUpsert {
	u.Set(slaalert.FieldRecipientIds, v)
	return u
}

// UpdateRecipientIds sets the "recipient_ids" field to the value that was provided on create.
func (u *SLAAlertUpsert) UpdateRecipientIds() *SLAAlertUpsert {
	u.SetExcluded(slaalert.FieldRecipientIds)
	return u
}

// ClearRecipientIds clears the value of the "recipient_ids" field.
func (u *SLAAlertUpsert) ClearRecipientIds() *SLAAlertUpsert {
	u.SetNull(slaalert.FieldRecipientIds)
	return u
}

// SetDeliveryStatus sets the "delivery_status" field.
func (u *SLAAlertUpsert) SetDeliveryStatus(v slaalert.DeliveryStatus) *SLAAlertUpsert {
	u.Set(slaalert.FieldDeliveryStatus, v)
	return u
}

// UpdateDeliveryStatus sets the "delivery_status" field to the value that was provided on create.
func (u *SLAAlertUpsert) UpdateDeliveryStatus() *SLAAlertUpsert {
	u.SetExcluded(slaalert.FieldDeliveryStatus)
	return u
}

// SetDeliveredCount sets the "delivered_count" field.
func (u *SLAAlertUpsert) SetDeliveredCount(v int) *SLAAlertUpsert {
	u.Set(slaalert.FieldDeliveredCount, v)
	return u
}

// UpdateDeliveredCount sets the "delivered_count" field to the value that was provided on create.
func (u *SLAAlertUpsert) UpdateDeliveredCount() *SLAAlertUpsert {
	u.SetExcluded(slaalert.FieldDeliveredCount)
	return u
}

// AddDeliveredCount adds v to the "delivered_count" field.
func (u *SLAAlertUpsert) AddDeliveredCount(v int) *SLAAlertUpsert {
	u.Add(slaalert.FieldDeliveredCount, v)
	return u
}

// SetFailedCount sets the "failed_count" field.
func (u *SLAAlertUpsert) SetFailedCount(v int) *SLAAlertUpsert {
	u.Set(slaalert.FieldFailedCount, v)
	return u
}

// UpdateFailedCount sets the "failed_count" field to the value that was provided on create.
func (u *SLAAlertUpsert) UpdateFailedCount() *SLAAlertUpsert {
	u.SetExcluded(slaalert.FieldFailedCount)
	return u
}

// AddFailedCount adds v to the "failed_count" field.
func (u *SLAAlertUpsert) AddFailedCount(v int) *SLAAlertUpsert {
	u.Add(slaalert.FieldFailedCount, v)
	return u
}

// SetNextEscalationAt sets the "next_escalation_at" field.
func (u *SLAAlertUpsert) SetNextEscalationAt(v time.Time) *SLAAlertUpsert {
	u.Set(slaalert.FieldNextEscalationAt, v)
	return u
}

// UpdateNextEscalationAt sets the "next_escalation_at" field to the value that was provided on create.
func (u *SLAAlertUpsert) UpdateNextEscalationAt() *SLAAlertUpsert {
	u.SetExcluded(slaalert.FieldNextEscalationAt)
	return u
}

// ClearNextEscalationAt clears the value of the "next_escalation_at" field.
func (u *SLAAlertUpsert) ClearNextEscalationAt() *SLAAlertUpsert {
	u.SetNull(slaalert.FieldNextEscalationAt)
	return u
}

// SetResolvedAction sets the "resolved_action" field.
func (u *SLAAlertUpsert) SetResolvedAction(v slaalert.ResolvedAction) *SLAAlertUpsert {
	u.Set(slaalert.FieldResolvedAction, v)
	return u
}

// UpdateResolvedAction sets the "resolved_action" field to the value that was provided on create.
func (u *SLAAlertUpsert) UpdateResolvedAction() *SLAAlertUpsert {
	u.SetExcluded(slaalert.FieldResolvedAction)
	return u
}

// ClearResolvedAction clears the value of the "resolved_action" field.
func (u *SLAAlertUpsert) ClearResolvedAction() *SLAAlertUpsert {
	u.SetNull(slaalert.FieldResolvedAction)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SLAAlert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(slaalert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SLAAlertUpsertOne) UpdateNewValues() *SLAAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(slaalert.FieldID)
		}
		if _, exists := u.create.mutation.RequestID(); exists {
			s.SetIgnore(slaalert.FieldRequestID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(slaalert.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SLAAlert.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SLAAlertUpsertOne) Ignore() *SLAAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SLAAlertUpsertOne) DoNothing() *SLAAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SLAAlertCreate.OnConflict
// documentation for more info.
func (u *SLAAlertUpsertOne) Update(set func(*SLAAlertUpsert)) *SLAAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SLAAlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetAlertType sets the "alert_type" field.
func (u *SLAAlertUpsertOne) SetAlertType(v slaalert.AlertType) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetAlertType(v)
	})
}

// UpdateAlertType sets the "alert_type" field to the value that was provided on create.
func (u *SLAAlertUpsertOne) UpdateAlertType() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateAlertType()
	})
}

// SetMinutesElapsed sets the "minutes_elapsed" field.
func (u *SLAAlertUpsertOne) SetMinutesElapsed(v int) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetMinutesElapsed(v)
	})
}

// AddMinutesElapsed adds v to the "minutes_elapsed" field.
func (u *SLAAlertUpsertOne) AddMinutesElapsed(v int) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.AddMinutesElapsed(v)
	})
}

// UpdateMinutesElapsed sets the "minutes_elapsed" field to the value that was provided on create.
func (u *SLAAlertUpsertOne) UpdateMinutesElapsed() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateMinutesElapsed()
	})
}

// SetEscalationLevel sets the "escalation_level" field.
func (u *SLAAlertUpsertOne) SetEscalationLevel(v int) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetEscalationLevel(v)
	})
}

// AddEscalationLevel adds v to the "escalation_level" field.
func (u *SLAAlertUpsertOne) AddEscalationLevel(v int) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.AddEscalationLevel(v)
	})
}

// UpdateEscalationLevel sets the "escalation_level" field to the value that was provided on create.
func (u *SLAAlertUpsertOne) UpdateEscalationLevel() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateEscalationLevel()
	})
}

// SetRecipientIds sets the "recipient_ids" field.
func (u *SLAAlertUpsertOne) SetRecipientIds(v []string) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetRecipientIds(v)
	})
}

// UpdateRecipientIds sets the "recipient_ids" field to the value that was provided on create.
func (u *SLAAlertUpsertOne) UpdateRecipientIds() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateRecipientIds()
	})
}

// ClearRecipientIds clears the value of the "recipient_ids" field.
func (u *SLAAlertUpsertOne) ClearRecipientIds() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.ClearRecipientIds()
	})
}

// SetDeliveryStatus sets the "delivery_status" field.
func (u *SLAAlertUpsertOne) SetDeliveryStatus(v slaalert.DeliveryStatus) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetDeliveryStatus(v)
	})
}

// UpdateDeliveryStatus sets the "delivery_status" field to the value that was provided on create.
func (u *SLAAlertUpsertOne) UpdateDeliveryStatus() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateDeliveryStatus()
	})
}

// SetDeliveredCount sets the "delivered_count" field.
func (u *SLAAlertUpsertOne) SetDeliveredCount(v int) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetDeliveredCount(v)
	})
}

// AddDeliveredCount adds v to the "delivered_count" field.
func (u *SLAAlertUpsertOne) AddDeliveredCount(v int) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.AddDeliveredCount(v)
	})
}

// UpdateDeliveredCount sets the "delivered_count" field to the value that was provided on create.
func (u *SLAAlertUpsertOne) UpdateDeliveredCount() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateDeliveredCount()
	})
}

// SetFailedCount sets the "failed_count" field.
func (u *SLAAlertUpsertOne) SetFailedCount(v int) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetFailedCount(v)
	})
}

// AddFailedCount adds v to the "failed_count" field.
func (u *SLAAlertUpsertOne) AddFailedCount(v int) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.AddFailedCount(v)
	})
}

// UpdateFailedCount sets the "failed_count" field to the value that was provided on create.
func (u *SLAAlertUpsertOne) UpdateFailedCount() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateFailedCount()
	})
}

// SetNextEscalationAt sets the "next_escalation_at" field.
func (u *SLAAlertUpsertOne) SetNextEscalationAt(v time.Time) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetNextEscalationAt(v)
	})
}

// UpdateNextEscalationAt sets the "next_escalation_at" field to the value that was provided on create.
func (u *SLAAlertUpsertOne) UpdateNextEscalationAt() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateNextEscalationAt()
	})
}

// ClearNextEscalationAt clears the value of the "next_escalation_at" field.
func (u *SLAAlertUpsertOne) ClearNextEscalationAt() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.ClearNextEscalationAt()
	})
}

// SetResolvedAction sets the "resolved_action" field.
func (u *SLAAlertUpsertOne) SetResolvedAction(v slaalert.ResolvedAction) *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetResolvedAction(v)
	})
}

// UpdateResolvedAction sets the "resolved_action" field to the value that was provided on create.
func (u *SLAAlertUpsertOne) UpdateResolvedAction() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateResolvedAction()
	})
}

// ClearResolvedAction clears the value of the "resolved_action" field.
func (u *SLAAlertUpsertOne) ClearResolvedAction() *SLAAlertUpsertOne {
	return u.Update(func(s *SLAAlertUpsert) {
		s.ClearResolvedAction()
	})
}

// Exec executes the query.
func (u *SLAAlertUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SLAAlertCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SLAAlertUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SLAAlertUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SLAAlertUpsertOne.ID is not supported by MySQL driver. Use SLAAlertUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SLAAlertUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SLAAlertCreateBulk is the builder for creating many SLAAlert entities in bulk.
type SLAAlertCreateBulk struct {
	config
	err      error
	builders []*SLAAlertCreate
	conflict []sql.ConflictOption
}

// Save creates the SLAAlert entities in the database.
func (_c *SLAAlertCreateBulk) Save(ctx context.Context) ([]*SLAAlert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SLAAlert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SLAAlertMutation)
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
func (_c *SLAAlertCreateBulk) SaveX(ctx context.Context) []*SLAAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SLAAlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SLAAlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SLAAlert.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SLAAlertUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *SLAAlertCreateBulk) OnConflict(opts ...sql.ConflictOption) *SLAAlertUpsertBulk {
	_c.conflict = opts
	return &SLAAlertUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SLAAlert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SLAAlertCreateBulk) OnConflictColumns(columns ...string) *SLAAlertUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SLAAlertUpsertBulk{
		create: _c,
	}
}

// SLAAlertUpsertBulk is the builder for "upsert"-ing
// a bulk of SLAAlert nodes.
type SLAAlertUpsertBulk struct {
	create *SLAAlertCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SLAAlert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(slaalert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SLAAlertUpsertBulk) UpdateNewValues() *SLAAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(slaalert.FieldID)
			}
			if _, exists := b.mutation.RequestID(); exists {
				s.SetIgnore(slaalert.FieldRequestID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(slaalert.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SLAAlert.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SLAAlertUpsertBulk) Ignore() *SLAAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SLAAlertUpsertBulk) DoNothing() *SLAAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SLAAlertCreateBulk.OnConflict
// documentation for more info.
func (u *SLAAlertUpsertBulk) Update(set func(*SLAAlertUpsert)) *SLAAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SLAAlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetAlertType sets the "alert_type" field.
func (u *SLAAlertUpsertBulk) SetAlertType(v slaalert.AlertType) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetAlertType(v)
	})
}

// UpdateAlertType sets the "alert_type" field to the value that was provided on create.
func (u *SLAAlertUpsertBulk) UpdateAlertType() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateAlertType()
	})
}

// SetMinutesElapsed sets the "minutes_elapsed" field.
func (u *SLAAlertUpsertBulk) SetMinutesElapsed(v int) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetMinutesElapsed(v)
	})
}

// AddMinutesElapsed adds v to the "minutes_elapsed" field.
func (u *SLAAlertUpsertBulk) AddMinutesElapsed(v int) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.AddMinutesElapsed(v)
	})
}

// UpdateMinutesElapsed sets the "minutes_elapsed" field to the value that was provided on create.
func (u *SLAAlertUpsertBulk) UpdateMinutesElapsed() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateMinutesElapsed()
	})
}

// SetEscalationLevel sets the "escalation_level" field.
func (u *SLAAlertUpsertBulk) SetEscalationLevel(v int) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetEscalationLevel(v)
	})
}

// AddEscalationLevel adds v to the "escalation_level" field.
func (u *SLAAlertUpsertBulk) AddEscalationLevel(v int) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.AddEscalationLevel(v)
	})
}

// UpdateEscalationLevel sets the "escalation_level" field to the value that was provided on create.
func (u *SLAAlertUpsertBulk) UpdateEscalationLevel() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateEscalationLevel()
	})
}

// SetRecipientIds sets the "recipient_ids" field.
func (u *SLAAlertUpsertBulk) SetRecipientIds(v []string) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetRecipientIds(v)
	})
}

// UpdateRecipientIds sets the "recipient_ids" field to the value that was provided on create.
func (u *SLAAlertUpsertBulk) UpdateRecipientIds() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateRecipientIds()
	})
}

// ClearRecipientIds clears the value of the "recipient_ids" field.
func (u *SLAAlertUpsertBulk) ClearRecipientIds() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.ClearRecipientIds()
	})
}

// SetDeliveryStatus sets the "delivery_status" field.
func (u *SLAAlertUpsertBulk) SetDeliveryStatus(v slaalert.DeliveryStatus) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetDeliveryStatus(v)
	})
}

// UpdateDeliveryStatus sets the "delivery_status" field to the value that was provided on create.
func (u *SLAAlertUpsertBulk) UpdateDeliveryStatus() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateDeliveryStatus()
	})
}

// SetDeliveredCount sets the "delivered_count" field.
func (u *SLAAlertUpsertBulk) SetDeliveredCount(v int) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetDeliveredCount(v)
	})
}

// AddDeliveredCount adds v to the "delivered_count" field.
func (u *SLAAlertUpsertBulk) AddDeliveredCount(v int) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.AddDeliveredCount(v)
	})
}

// UpdateDeliveredCount sets the "delivered_count" field to the value that was provided on create.
func (u *SLAAlertUpsertBulk) UpdateDeliveredCount() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateDeliveredCount()
	})
}

// SetFailedCount sets the "failed_count" field.
func (u *SLAAlertUpsertBulk) SetFailedCount(v int) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetFailedCount(v)
	})
}

// AddFailedCount adds v to the "failed_count" field.
func (u *SLAAlertUpsertBulk) AddFailedCount(v int) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.AddFailedCount(v)
	})
}

// UpdateFailedCount sets the "failed_count" field to the value that was provided on create.
func (u *SLAAlertUpsertBulk) UpdateFailedCount() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateFailedCount()
	})
}

// SetNextEscalationAt sets the "next_escalation_at" field.
func (u *SLAAlertUpsertBulk) SetNextEscalationAt(v time.Time) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetNextEscalationAt(v)
	})
}

// UpdateNextEscalationAt sets the "next_escalation_at" field to the value that was provided on create.
func (u *SLAAlertUpsertBulk) UpdateNextEscalationAt() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateNextEscalationAt()
	})
}

// ClearNextEscalationAt clears the value of the "next_escalation_at" field.
func (u *SLAAlertUpsertBulk) ClearNextEscalationAt() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.ClearNextEscalationAt()
	})
}

// SetResolvedAction sets the "resolved_action" field.
func (u *SLAAlertUpsertBulk) SetResolvedAction(v slaalert.ResolvedAction) *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.SetResolvedAction(v)
	})
}

// UpdateResolvedAction sets the "resolved_action" field to the value that was provided on create.
func (u *SLAAlertUpsertBulk) UpdateResolvedAction() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.UpdateResolvedAction()
	})
}

// ClearResolvedAction clears the value of the "resolved_action" field.
func (u *SLAAlertUpsertBulk) ClearResolvedAction() *SLAAlertUpsertBulk {
	return u.Update(func(s *SLAAlertUpsert) {
		s.ClearResolvedAction()
	})
}

// Exec executes the query.
func (u *SLAAlertUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SLAAlertCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SLAAlertCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SLAAlertUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
