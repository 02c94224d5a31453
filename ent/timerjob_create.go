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
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/models"
)

// TimerJobCreate is the builder for creating a TimerJob entity.
type TimerJobCreate struct {
	config
	mutation *TimerJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobType sets the "job_type" field.
func (_c *TimerJobCreate) SetJobType(v timerjob.JobType) *TimerJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *TimerJobCreate) SetPayload(v models.TimerPayload) *TimerJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *TimerJobCreate) SetDueAt(v time.Time) *TimerJobCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TimerJobCreate) SetStatus(v timerjob.Status) *TimerJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TimerJobCreate) SetNillableStatus(v *timerjob.Status) *TimerJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TimerJobCreate) SetAttempts(v int) *TimerJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TimerJobCreate) SetNillableAttempts(v *int) *TimerJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *TimerJobCreate) SetLockedBy(v string) *TimerJobCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *TimerJobCreate) SetNillableLockedBy(v *string) *TimerJobCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *TimerJobCreate) SetLockedAt(v time.Time) *TimerJobCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *TimerJobCreate) SetNillableLockedAt(v *time.Time) *TimerJobCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimerJobCreate) SetCreatedAt(v time.Time) *TimerJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimerJobCreate) SetNillableCreatedAt(v *time.Time) *TimerJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TimerJobCreate) SetID(v string) *TimerJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TimerJobMutation object of the builder.
func (_c *TimerJobCreate) Mutation() *TimerJobMutation {
	return _c.mutation
}

// Save creates the TimerJob in the database.
func (_c *TimerJobCreate) Save(ctx context.Context) (*TimerJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimerJobCreate) SaveX(ctx context.Context) *TimerJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimerJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimerJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimerJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := timerjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := timerjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timerjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimerJobCreate) check() error {
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "TimerJob.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := timerjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "TimerJob.job_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "TimerJob.payload"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "TimerJob.due_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TimerJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := timerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimerJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TimerJob.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TimerJob.created_at"`)}
	}
	return nil
}

func (_c *TimerJobCreate) sqlSave(ctx context.Context) (*TimerJob, error) {
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
			return nil, fmt.Errorf("unexpected TimerJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TimerJobCreate) createSpec() (*TimerJob, *sqlgraph.CreateSpec) {
	var (
		_node = &TimerJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timerjob.Table, sqlgraph.NewFieldSpec(timerjob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(timerjob.FieldJobType, field.TypeEnum, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(timerjob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(timerjob.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(timerjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(timerjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(timerjob.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(timerjob.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timerjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TimerJob.Create().
//		SetJobType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimerJobUpsert) {
//			SetJobType(v+v).
//		}).
//		Exec(ctx)
func (_c *TimerJobCreate) OnConflict(opts ...sql.ConflictOption) *TimerJobUpsertOne {
	_c.conflict = opts
	return &TimerJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimerJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimerJobCreate) OnConflictColumns(columns ...string) *TimerJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimerJobUpsertOne{
		create: _c,
	}
}

type (
	// TimerJobUpsertOne is the builder for "upsert"-ing
	//  one TimerJob node.
	TimerJobUpsertOne struct {
		create *TimerJobCreate
	}

	// TimerJobUpsert is the "OnConflict" setter.
	TimerJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetJobType sets the "job_type" field.
func (u *TimerJobUpsert) SetJobType(v timerjob.JobType) *TimerJobUpsert {
	u.Set(timerjob.FieldJobType, v)
	return u
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *TimerJobUpsert) UpdateJobType() *TimerJobUpsert {
	u.SetExcluded(timerjob.FieldJobType)
	return u
}

// SetPayload sets the "payload" field.
func (u *TimerJobUpsert) SetPayload(v models.TimerPayload) *TimerJobUpsert {
	u.Set(timerjob.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *TimerJobUpsert) UpdatePayload() *TimerJobUpsert {
	u.SetExcluded(timerjob.FieldPayload)
	return u
}

// SetDueAt sets the "due_at" field.
func (u *TimerJobUpsert) SetDueAt(v time.Time) *TimerJobUpsert {
	u.Set(timerjob.FieldDueAt, v)
	return u
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *TimerJobUpsert) UpdateDueAt() *TimerJobUpsert {
	u.SetExcluded(timerjob.FieldDueAt)
	return u
}

// SetStatus sets the "status" field.
func (u *TimerJobUpsert) SetStatus(v timerjob.Status) *TimerJobUpsert {
	u.Set(timerjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TimerJobUpsert) UpdateStatus() *TimerJobUpsert {
	u.SetExcluded(timerjob.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *TimerJobUpsert) SetAttempts(v int) *TimerJobUpsert {
	u.Set(timerjob.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TimerJobUpsert) UpdateAttempts() *TimerJobUpsert {
	u.SetExcluded(timerjob.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *TimerJobUpsert) AddAttempts(v int) *TimerJobUpsert {
	u.Add(timerjob.FieldAttempts, v)
	return u
}

// SetLockedBy sets the "locked_by" field.
func (u *TimerJobUpsert) SetLockedBy(v string) *TimerJobUpsert {
	u.Set(timerjob.FieldLockedBy, v)
	return u
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *TimerJobUpsert) UpdateLockedBy() *TimerJobUpsert {
	u.SetExcluded(timerjob.FieldLockedBy)
	return u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *TimerJobUpsert) ClearLockedBy() *TimerJobUpsert {
	u.SetNull(timerjob.FieldLockedBy)
	return u
}

// SetLockedAt sets the "locked_at" field.
func (u *TimerJobUpsert) SetLockedAt(v time.Time) *TimerJobUpsert {
	u.Set(timerjob.FieldLockedAt, v)
	return u
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *TimerJobUpsert) UpdateLockedAt() *TimerJobUpsert {
	u.SetExcluded(timerjob.FieldLockedAt)
	return u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *TimerJobUpsert) ClearLockedAt() *TimerJobUpsert {
	u.SetNull(timerjob.FieldLockedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TimerJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timerjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimerJobUpsertOne) UpdateNewValues() *TimerJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(timerjob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(timerjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimerJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TimerJobUpsertOne) Ignore() *TimerJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimerJobUpsertOne) DoNothing() *TimerJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimerJobCreate.OnConflict
// documentation for more info.
func (u *TimerJobUpsertOne) Update(set func(*TimerJobUpsert)) *TimerJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimerJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobType sets the "job_type" field.
func (u *TimerJobUpsertOne) SetJobType(v timerjob.JobType) *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetJobType(v)
	})
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *TimerJobUpsertOne) UpdateJobType() *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateJobType()
	})
}

// SetPayload sets the "payload" field.
func (u *TimerJobUpsertOne) SetPayload(v models.TimerPayload) *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *TimerJobUpsertOne) UpdatePayload() *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdatePayload()
	})
}

// SetDueAt sets the "due_at" field.
func (u *TimerJobUpsertOne) SetDueAt(v time.Time) *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *TimerJobUpsertOne) UpdateDueAt() *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateDueAt()
	})
}

// SetStatus sets the "status" field.
func (u *TimerJobUpsertOne) SetStatus(v timerjob.Status) *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TimerJobUpsertOne) UpdateStatus() *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TimerJobUpsertOne) SetAttempts(v int) *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TimerJobUpsertOne) AddAttempts(v int) *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TimerJobUpsertOne) UpdateAttempts() *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetLockedBy sets the "locked_by" field.
func (u *TimerJobUpsertOne) SetLockedBy(v string) *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetLockedBy(v)
	})
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *TimerJobUpsertOne) UpdateLockedBy() *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateLockedBy()
	})
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *TimerJobUpsertOne) ClearLockedBy() *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.ClearLockedBy()
	})
}

// SetLockedAt sets the "locked_at" field.
func (u *TimerJobUpsertOne) SetLockedAt(v time.Time) *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetLockedAt(v)
	})
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *TimerJobUpsertOne) UpdateLockedAt() *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateLockedAt()
	})
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *TimerJobUpsertOne) ClearLockedAt() *TimerJobUpsertOne {
	return u.Update(func(s *TimerJobUpsert) {
		s.ClearLockedAt()
	})
}

// Exec executes the query.
func (u *TimerJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TimerJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimerJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TimerJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TimerJobUpsertOne.ID is not supported by MySQL driver. Use TimerJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TimerJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TimerJobCreateBulk is the builder for creating many TimerJob entities in bulk.
type TimerJobCreateBulk struct {
	config
	err      error
	builders []*TimerJobCreate
	conflict []sql.ConflictOption
}

// Save creates the TimerJob entities in the database.
func (_c *TimerJobCreateBulk) Save(ctx context.Context) ([]*TimerJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimerJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimerJobMutation)
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
func (_c *TimerJobCreateBulk) SaveX(ctx context.Context) []*TimerJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimerJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimerJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TimerJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimerJobUpsert) {
//			SetJobType(v+v).
//		}).
//		Exec(ctx)
func (_c *TimerJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *TimerJobUpsertBulk {
	_c.conflict = opts
	return &TimerJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimerJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimerJobCreateBulk) OnConflictColumns(columns ...string) *TimerJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimerJobUpsertBulk{
		create: _c,
	}
}

// TimerJobUpsertBulk is the builder for "upsert"-ing
// a bulk of TimerJob nodes.
type TimerJobUpsertBulk struct {
	create *TimerJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TimerJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timerjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimerJobUpsertBulk) UpdateNewValues() *TimerJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(timerjob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(timerjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimerJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TimerJobUpsertBulk) Ignore() *TimerJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimerJobUpsertBulk) DoNothing() *TimerJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimerJobCreateBulk.OnConflict
// documentation for more info.
func (u *TimerJobUpsertBulk) Update(set func(*TimerJobUpsert)) *TimerJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimerJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobType sets the "job_type" field.
func (u *TimerJobUpsertBulk) SetJobType(v timerjob.JobType) *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetJobType(v)
	})
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *TimerJobUpsertBulk) UpdateJobType() *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateJobType()
	})
}

// SetPayload sets the "payload" field.
func (u *TimerJobUpsertBulk) SetPayload(v models.TimerPayload) *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *TimerJobUpsertBulk) UpdatePayload() *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdatePayload()
	})
}

// SetDueAt sets the "due_at" field.
func (u *TimerJobUpsertBulk) SetDueAt(v time.Time) *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *TimerJobUpsertBulk) UpdateDueAt() *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateDueAt()
	})
}

// SetStatus sets the "status" field.
func (u *TimerJobUpsertBulk) SetStatus(v timerjob.Status) *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TimerJobUpsertBulk) UpdateStatus() *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TimerJobUpsertBulk) SetAttempts(v int) *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TimerJobUpsertBulk) AddAttempts(v int) *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TimerJobUpsertBulk) UpdateAttempts() *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetLockedBy sets the "locked_by" field.
func (u *TimerJobUpsertBulk) SetLockedBy(v string) *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetLockedBy(v)
	})
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *TimerJobUpsertBulk) UpdateLockedBy() *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateLockedBy()
	})
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *TimerJobUpsertBulk) ClearLockedBy() *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.ClearLockedBy()
	})
}

// SetLockedAt sets the "locked_at" field.
func (u *TimerJobUpsertBulk) SetLockedAt(v time.Time) *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.SetLockedAt(v)
	})
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *TimerJobUpsertBulk) UpdateLockedAt() *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.UpdateLockedAt()
	})
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *TimerJobUpsertBulk) ClearLockedAt() *TimerJobUpsertBulk {
	return u.Update(func(s *TimerJobUpsert) {
		s.ClearLockedAt()
	})
}

// Exec executes the query.
func (u *TimerJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TimerJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TimerJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimerJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
