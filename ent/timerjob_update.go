// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/teambuh/slamon/ent/predicate"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/models"
)

// TimerJobUpdate is the builder for updating TimerJob entities.
type TimerJobUpdate struct {
	config
	hooks    []Hook
	mutation *TimerJobMutation
}

// Where appends a list predicates to the TimerJobUpdate builder.
func (_u *TimerJobUpdate) Where(ps ...predicate.TimerJob) *TimerJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *TimerJobUpdate) SetJobType(v timerjob.JobType) *TimerJobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *TimerJobUpdate) SetNillableJobType(v *timerjob.JobType) *TimerJobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TimerJobUpdate) SetPayload(v models.TimerPayload) *TimerJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *TimerJobUpdate) SetNillablePayload(v *models.TimerPayload) *TimerJobUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *TimerJobUpdate) SetDueAt(v time.Time) *TimerJobUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *TimerJobUpdate) SetNillableDueAt(v *time.Time) *TimerJobUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TimerJobUpdate) SetStatus(v timerjob.Status) *TimerJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TimerJobUpdate) SetNillableStatus(v *timerjob.Status) *TimerJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TimerJobUpdate) SetAttempts(v int) *TimerJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TimerJobUpdate) SetNillableAttempts(v *int) *TimerJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TimerJobUpdate) AddAttempts(v int) *TimerJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *TimerJobUpdate) SetLockedBy(v string) *TimerJobUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *TimerJobUpdate) SetNillableLockedBy(v *string) *TimerJobUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *TimerJobUpdate) ClearLockedBy() *TimerJobUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *TimerJobUpdate) SetLockedAt(v time.Time) *TimerJobUpdate {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *TimerJobUpdate) SetNillableLockedAt(v *time.Time) *TimerJobUpdate {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *TimerJobUpdate) ClearLockedAt() *TimerJobUpdate {
	_u.mutation.ClearLockedAt()
	return _u
}

// Mutation returns the TimerJobMutation object of the builder.
func (_u *TimerJobUpdate) Mutation() *TimerJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TimerJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimerJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TimerJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimerJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimerJobUpdate) check() error {
	if v, ok := _u.mutation.JobType(); ok {
		if err := timerjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "TimerJob.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := timerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimerJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TimerJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timerjob.Table, timerjob.Columns, sqlgraph.NewFieldSpec(timerjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(timerjob.FieldJobType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(timerjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(timerjob.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(timerjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(timerjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(timerjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(timerjob.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(timerjob.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(timerjob.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(timerjob.FieldLockedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timerjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TimerJobUpdateOne is the builder for updating a single TimerJob entity.
type TimerJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimerJobMutation
}

// SetJobType sets the "job_type" field.
func (_u *TimerJobUpdateOne) SetJobType(v timerjob.JobType) *TimerJobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *TimerJobUpdateOne) SetNillableJobType(v *timerjob.JobType) *TimerJobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TimerJobUpdateOne) SetPayload(v models.TimerPayload) *TimerJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *TimerJobUpdateOne) SetNillablePayload(v *models.TimerPayload) *TimerJobUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *TimerJobUpdateOne) SetDueAt(v time.Time) *TimerJobUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *TimerJobUpdateOne) SetNillableDueAt(v *time.Time) *TimerJobUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TimerJobUpdateOne) SetStatus(v timerjob.Status) *TimerJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TimerJobUpdateOne) SetNillableStatus(v *timerjob.Status) *TimerJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TimerJobUpdateOne) SetAttempts(v int) *TimerJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TimerJobUpdateOne) SetNillableAttempts(v *int) *TimerJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TimerJobUpdateOne) AddAttempts(v int) *TimerJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *TimerJobUpdateOne) SetLockedBy(v string) *TimerJobUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *TimerJobUpdateOne) SetNillableLockedBy(v *string) *TimerJobUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *TimerJobUpdateOne) ClearLockedBy() *TimerJobUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *TimerJobUpdateOne) SetLockedAt(v time.Time) *TimerJobUpdateOne {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *TimerJobUpdateOne) SetNillableLockedAt(v *time.Time) *TimerJobUpdateOne {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *TimerJobUpdateOne) ClearLockedAt() *TimerJobUpdateOne {
	_u.mutation.ClearLockedAt()
	return _u
}

// Mutation returns the TimerJobMutation object of the builder.
func (_u *TimerJobUpdateOne) Mutation() *TimerJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the TimerJobUpdate builder.
func (_u *TimerJobUpdateOne) Where(ps ...predicate.TimerJob) *TimerJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TimerJobUpdateOne) Select(field string, fields ...string) *TimerJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TimerJob entity.
func (_u *TimerJobUpdateOne) Save(ctx context.Context) (*TimerJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimerJobUpdateOne) SaveX(ctx context.Context) *TimerJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TimerJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimerJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimerJobUpdateOne) check() error {
	if v, ok := _u.mutation.JobType(); ok {
		if err := timerjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "TimerJob.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := timerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimerJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TimerJobUpdateOne) sqlSave(ctx context.Context) (_node *TimerJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timerjob.Table, timerjob.Columns, sqlgraph.NewFieldSpec(timerjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TimerJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timerjob.FieldID)
		for _, f := range fields {
			if !timerjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != timerjob.FieldID {
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
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(timerjob.FieldJobType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(timerjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(timerjob.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(timerjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(timerjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(timerjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(timerjob.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(timerjob.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(timerjob.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(timerjob.FieldLockedAt, field.TypeTime)
	}
	_node = &TimerJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timerjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
