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
	"github.com/teambuh/slamon/ent/classificationcache"
)

// ClassificationCacheCreate is the builder for creating a ClassificationCache entity.
type ClassificationCacheCreate struct {
	config
	mutation *ClassificationCacheMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetClassification sets the "classification" field.
func (_c *ClassificationCacheCreate) SetClassification(v classificationcache.Classification) *ClassificationCacheCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ClassificationCacheCreate) SetConfidence(v float64) *ClassificationCacheCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ClassificationCacheCreate) SetSource(v string) *ClassificationCacheCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ClassificationCacheCreate) SetNillableSource(v *string) *ClassificationCacheCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ClassificationCacheCreate) SetExpiresAt(v time.Time) *ClassificationCacheCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClassificationCacheCreate) SetCreatedAt(v time.Time) *ClassificationCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClassificationCacheCreate) SetNillableCreatedAt(v *time.Time) *ClassificationCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClassificationCacheCreate) SetID(v string) *ClassificationCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ClassificationCacheMutation object of the builder.
func (_c *ClassificationCacheCreate) Mutation() *ClassificationCacheMutation {
	return _c.mutation
}

// Save creates the ClassificationCache in the database.
func (_c *ClassificationCacheCreate) Save(ctx context.Context) (*ClassificationCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClassificationCacheCreate) SaveX(ctx context.Context) *ClassificationCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassificationCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassificationCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClassificationCacheCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := classificationcache.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := classificationcache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClassificationCacheCreate) check() error {
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "ClassificationCache.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := classificationcache.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ClassificationCache.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ClassificationCache.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := classificationcache.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ClassificationCache.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ClassificationCache.source"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ClassificationCache.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClassificationCache.created_at"`)}
	}
	return nil
}

func (_c *ClassificationCacheCreate) sqlSave(ctx context.Context) (*ClassificationCache, error) {
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
			return nil, fmt.Errorf("unexpected ClassificationCache.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClassificationCacheCreate) createSpec() (*ClassificationCache, *sqlgraph.CreateSpec) {
	var (
		_node = &ClassificationCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(classificationcache.Table, sqlgraph.NewFieldSpec(classificationcache.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(classificationcache.FieldClassification, field.TypeEnum, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(classificationcache.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(classificationcache.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(classificationcache.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(classificationcache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClassificationCache.Create().
//		SetClassification(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClassificationCacheUpsert) {
//			SetClassification(v+v).
//		}).
//		Exec(ctx)
func (_c *ClassificationCacheCreate) OnConflict(opts ...sql.ConflictOption) *ClassificationCacheUpsertOne {
	_c.conflict = opts
	return &ClassificationCacheUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClassificationCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClassificationCacheCreate) OnConflictColumns(columns ...string) *ClassificationCacheUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClassificationCacheUpsertOne{
		create: _c,
	}
}

type (
	// ClassificationCacheUpsertOne is the builder for "upsert"-ing
	//  one ClassificationCache node.
	ClassificationCacheUpsertOne struct {
		create *ClassificationCacheCreate
	}

	// ClassificationCacheUpsert is the "OnConflict" setter.
	ClassificationCacheUpsert struct {
		*sql.UpdateSet
	}
)

// SetClassification sets the "classification" field.
func (u *ClassificationCacheUpsert) SetClassification(v classificationcache.Classification) *ClassificationCacheUpsert {
	u.Set(classificationcache.FieldClassification, v)
	return u
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *ClassificationCacheUpsert) UpdateClassification() *ClassificationCacheUpsert {
	u.SetExcluded(classificationcache.FieldClassification)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *ClassificationCacheUpsert) SetConfidence(v float64) *ClassificationCacheUpsert {
	u.Set(classificationcache.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ClassificationCacheUpsert) UpdateConfidence() *ClassificationCacheUpsert {
	u.SetExcluded(classificationcache.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *ClassificationCacheUpsert) AddConfidence(v float64) *ClassificationCacheUpsert {
	u.Add(classificationcache.FieldConfidence, v)
	return u
}

// SetSource sets the "source" field.
func (u *ClassificationCacheUpsert) SetSource(v string) *ClassificationCacheUpsert {
	u.Set(classificationcache.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ClassificationCacheUpsert) UpdateSource() *ClassificationCacheUpsert {
	u.SetExcluded(classificationcache.FieldSource)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ClassificationCacheUpsert) SetExpiresAt(v time.Time) *ClassificationCacheUpsert {
	u.Set(classificationcache.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ClassificationCacheUpsert) UpdateExpiresAt() *ClassificationCacheUpsert {
	u.SetExcluded(classificationcache.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClassificationCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(classificationcache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClassificationCacheUpsertOne) UpdateNewValues() *ClassificationCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(classificationcache.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(classificationcache.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClassificationCache.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClassificationCacheUpsertOne) Ignore() *ClassificationCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClassificationCacheUpsertOne) DoNothing() *ClassificationCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClassificationCacheCreate.OnConflict
// documentation for more info.
func (u *ClassificationCacheUpsertOne) Update(set func(*ClassificationCacheUpsert)) *ClassificationCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClassificationCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetClassification sets the "classification" field.
func (u *ClassificationCacheUpsertOne) SetClassification(v classificationcache.Classification) *ClassificationCacheUpsertOne {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *ClassificationCacheUpsertOne) UpdateClassification() *ClassificationCacheUpsertOne {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.UpdateClassification()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ClassificationCacheUpsertOne) SetConfidence(v float64) *ClassificationCacheUpsertOne {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ClassificationCacheUpsertOne) AddConfidence(v float64) *ClassificationCacheUpsertOne {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ClassificationCacheUpsertOne) UpdateConfidence() *ClassificationCacheUpsertOne {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.UpdateConfidence()
	})
}

// SetSource sets the "source" field.
func (u *ClassificationCacheUpsertOne) SetSource(v string) *ClassificationCacheUpsertOne {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ClassificationCacheUpsertOne) UpdateSource() *ClassificationCacheUpsertOne {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.UpdateSource()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ClassificationCacheUpsertOne) SetExpiresAt(v time.Time) *ClassificationCacheUpsertOne {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ClassificationCacheUpsertOne) UpdateExpiresAt() *ClassificationCacheUpsertOne {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *ClassificationCacheUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClassificationCacheCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClassificationCacheUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClassificationCacheUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ClassificationCacheUpsertOne.ID is not supported by MySQL driver. Use ClassificationCacheUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClassificationCacheUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClassificationCacheCreateBulk is the builder for creating many ClassificationCache entities in bulk.
type ClassificationCacheCreateBulk struct {
	config
	err      error
	builders []*ClassificationCacheCreate
	conflict []sql.ConflictOption
}

// Save creates the ClassificationCache entities in the database.
func (_c *ClassificationCacheCreateBulk) Save(ctx context.Context) ([]*ClassificationCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClassificationCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClassificationCacheMutation)
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
func (_c *ClassificationCacheCreateBulk) SaveX(ctx context.Context) []*ClassificationCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassificationCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassificationCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClassificationCache.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClassificationCacheUpsert) {
//			SetClassification(v+v).
//		}).
//		Exec(ctx)
func (_c *ClassificationCacheCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClassificationCacheUpsertBulk {
	_c.conflict = opts
	return &ClassificationCacheUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClassificationCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClassificationCacheCreateBulk) OnConflictColumns(columns ...string) *ClassificationCacheUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClassificationCacheUpsertBulk{
		create: _c,
	}
}

// ClassificationCacheUpsertBulk is the builder for "upsert"-ing
// a bulk of ClassificationCache nodes.
type ClassificationCacheUpsertBulk struct {
	create *ClassificationCacheCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClassificationCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(classificationcache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClassificationCacheUpsertBulk) UpdateNewValues() *ClassificationCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(classificationcache.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(classificationcache.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClassificationCache.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClassificationCacheUpsertBulk) Ignore() *ClassificationCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClassificationCacheUpsertBulk) DoNothing() *ClassificationCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClassificationCacheCreateBulk.OnConflict
// documentation for more info.
func (u *ClassificationCacheUpsertBulk) Update(set func(*ClassificationCacheUpsert)) *ClassificationCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClassificationCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetClassification sets the "classification" field.
func (u *ClassificationCacheUpsertBulk) SetClassification(v classificationcache.Classification) *ClassificationCacheUpsertBulk {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *ClassificationCacheUpsertBulk) UpdateClassification() *ClassificationCacheUpsertBulk {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.UpdateClassification()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ClassificationCacheUpsertBulk) SetConfidence(v float64) *ClassificationCacheUpsertBulk {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ClassificationCacheUpsertBulk) AddConfidence(v float64) *ClassificationCacheUpsertBulk {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ClassificationCacheUpsertBulk) UpdateConfidence() *ClassificationCacheUpsertBulk {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.UpdateConfidence()
	})
}

// SetSource sets the "source" field.
func (u *ClassificationCacheUpsertBulk) SetSource(v string) *ClassificationCacheUpsertBulk {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ClassificationCacheUpsertBulk) UpdateSource() *ClassificationCacheUpsertBulk {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.UpdateSource()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ClassificationCacheUpsertBulk) SetExpiresAt(v time.Time) *ClassificationCacheUpsertBulk {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ClassificationCacheUpsertBulk) UpdateExpiresAt() *ClassificationCacheUpsertBulk {
	return u.Update(func(s *ClassificationCacheUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *ClassificationCacheUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ClassificationCacheCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClassificationCacheCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClassificationCacheUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
