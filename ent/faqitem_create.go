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
	"github.com/teambuh/slamon/ent/faqitem"
)

// FAQItemCreate is the builder for creating a FAQItem entity.
type FAQItemCreate struct {
	config
	mutation *FAQItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestion sets the "question" field.
func (_c *FAQItemCreate) SetQuestion(v string) *FAQItemCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *FAQItemCreate) SetKeywords(v []string) *FAQItemCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *FAQItemCreate) SetAnswer(v string) *FAQItemCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *FAQItemCreate) SetIsActive(v bool) *FAQItemCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *FAQItemCreate) SetNillableIsActive(v *bool) *FAQItemCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *FAQItemCreate) SetUsageCount(v int) *FAQItemCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *FAQItemCreate) SetNillableUsageCount(v *int) *FAQItemCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FAQItemCreate) SetCreatedAt(v time.Time) *FAQItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FAQItemCreate) SetNillableCreatedAt(v *time.Time) *FAQItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FAQItemCreate) SetUpdatedAt(v time.Time) *FAQItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FAQItemCreate) SetNillableUpdatedAt(v *time.Time) *FAQItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FAQItemCreate) SetID(v string) *FAQItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FAQItemMutation object of the builder.
func (_c *FAQItemCreate) Mutation() *FAQItemMutation {
	return _c.mutation
}

// Save creates the FAQItem in the database.
func (_c *FAQItemCreate) Save(ctx context.Context) (*FAQItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FAQItemCreate) SaveX(ctx context.Context) *FAQItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FAQItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FAQItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FAQItemCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := faqitem.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := faqitem.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := faqitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := faqitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FAQItemCreate) check() error {
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "FAQItem.question"`)}
	}
	if _, ok := _c.mutation.Keywords(); !ok {
		return &ValidationError{Name: "keywords", err: errors.New(`ent: missing required field "FAQItem.keywords"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "FAQItem.answer"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "FAQItem.is_active"`)}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "FAQItem.usage_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FAQItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FAQItem.updated_at"`)}
	}
	return nil
}

func (_c *FAQItemCreate) sqlSave(ctx context.Context) (*FAQItem, error) {
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
			return nil, fmt.Errorf("unexpected FAQItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FAQItemCreate) createSpec() (*FAQItem, *sqlgraph.CreateSpec) {
	var (
		_node = &FAQItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(faqitem.Table, sqlgraph.NewFieldSpec(faqitem.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(faqitem.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(faqitem.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(faqitem.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(faqitem.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(faqitem.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(faqitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(faqitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FAQItem.Create().
//		SetQuestion(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FAQItemUpsert) {
//			SetQuestion(v+v).
//		}).
//		Exec(ctx)
func (_c *FAQItemCreate) OnConflict(opts ...sql.ConflictOption) *FAQItemUpsertOne {
	_c.conflict = opts
	return &FAQItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FAQItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FAQItemCreate) OnConflictColumns(columns ...string) *FAQItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FAQItemUpsertOne{
		create: _c,
	}
}

type (
	// FAQItemUpsertOne is the builder for "upsert"-ing
	//  one FAQItem node.
	FAQItemUpsertOne struct {
		create *FAQItemCreate
	}

	// FAQItemUpsert is the "OnConflict" setter.
	FAQItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestion sets the "question" field.
func (u *FAQItemUpsert) SetQuestion(v string) *FAQItemUpsert {
	u.Set(faqitem.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *FAQItemUpsert) UpdateQuestion() *FAQItemUpsert {
	u.SetExcluded(faqitem.FieldQuestion)
	return u
}

// SetKeywords sets the "keywords" field.
func (u *FAQItemUpsert) SetKeywords(v []string) *FAQItemUpsert {
	u.Set(faqitem.FieldKeywords, v)
	return u
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *FAQItemUpsert) UpdateKeywords() *FAQItemUpsert {
	u.SetExcluded(faqitem.FieldKeywords)
	return u
}

// SetAnswer sets the "answer" field.
func (u *FAQItemUpsert) SetAnswer(v string) *FAQItemUpsert {
	u.Set(faqitem.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *FAQItemUpsert) UpdateAnswer() *FAQItemUpsert {
	u.SetExcluded(faqitem.FieldAnswer)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *FAQItemUpsert) SetIsActive(v bool) *FAQItemUpsert {
	u.Set(faqitem.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *FAQItemUpsert) UpdateIsActive() *FAQItemUpsert {
	u.SetExcluded(faqitem.FieldIsActive)
	return u
}

// SetUsageCount sets the "usage_count" field.
func (u *FAQItemUpsert) SetUsageCount(v int) *FAQItemUpsert {
	u.Set(faqitem.FieldUsageCount, v)
	return u
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *FAQItemUpsert) UpdateUsageCount() *FAQItemUpsert {
	u.SetExcluded(faqitem.FieldUsageCount)
	return u
}

// AddUsageCount adds v to the "usage_count" field.
func (u *FAQItemUpsert) AddUsageCount(v int) *FAQItemUpsert {
	u.Add(faqitem.FieldUsageCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FAQItemUpsert) SetUpdatedAt(v time.Time) *FAQItemUpsert {
	u.Set(faqitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FAQItemUpsert) UpdateUpdatedAt() *FAQItemUpsert {
	u.SetExcluded(faqitem.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FAQItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(faqitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FAQItemUpsertOne) UpdateNewValues() *FAQItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(faqitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(faqitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FAQItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FAQItemUpsertOne) Ignore() *FAQItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FAQItemUpsertOne) DoNothing() *FAQItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FAQItemCreate.OnConflict
// documentation for more info.
func (u *FAQItemUpsertOne) Update(set func(*FAQItemUpsert)) *FAQItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FAQItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestion sets the "question" field.
func (u *FAQItemUpsertOne) SetQuestion(v string) *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *FAQItemUpsertOne) UpdateQuestion() *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateQuestion()
	})
}

// SetKeywords sets the "keywords" field.
func (u *FAQItemUpsertOne) SetKeywords(v []string) *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetKeywords(v)
	})
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *FAQItemUpsertOne) UpdateKeywords() *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateKeywords()
	})
}

// SetAnswer sets the "answer" field.
func (u *FAQItemUpsertOne) SetAnswer(v string) *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *FAQItemUpsertOne) UpdateAnswer() *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateAnswer()
	})
}

// SetIsActive sets the "is_active" field.
func (u *FAQItemUpsertOne) SetIsActive(v bool) *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *FAQItemUpsertOne) UpdateIsActive() *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateIsActive()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *FAQItemUpsertOne) SetUsageCount(v int) *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *FAQItemUpsertOne) AddUsageCount(v int) *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *FAQItemUpsertOne) UpdateUsageCount() *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateUsageCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FAQItemUpsertOne) SetUpdatedAt(v time.Time) *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FAQItemUpsertOne) UpdateUpdatedAt() *FAQItemUpsertOne {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FAQItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FAQItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FAQItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FAQItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FAQItemUpsertOne.ID is not supported by MySQL driver. Use FAQItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FAQItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FAQItemCreateBulk is the builder for creating many FAQItem entities in bulk.
type FAQItemCreateBulk struct {
	config
	err      error
	builders []*FAQItemCreate
	conflict []sql.ConflictOption
}

// Save creates the FAQItem entities in the database.
func (_c *FAQItemCreateBulk) Save(ctx context.Context) ([]*FAQItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FAQItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FAQItemMutation)
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
func (_c *FAQItemCreateBulk) SaveX(ctx context.Context) []*FAQItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FAQItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FAQItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FAQItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FAQItemUpsert) {
//			SetQuestion(v+v).
//		}).
//		Exec(ctx)
func (_c *FAQItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *FAQItemUpsertBulk {
	_c.conflict = opts
	return &FAQItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FAQItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FAQItemCreateBulk) OnConflictColumns(columns ...string) *FAQItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FAQItemUpsertBulk{
		create: _c,
	}
}

// FAQItemUpsertBulk is the builder for "upsert"-ing
// a bulk of FAQItem nodes.
type FAQItemUpsertBulk struct {
	create *FAQItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FAQItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(faqitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FAQItemUpsertBulk) UpdateNewValues() *FAQItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(faqitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(faqitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FAQItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FAQItemUpsertBulk) Ignore() *FAQItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FAQItemUpsertBulk) DoNothing() *FAQItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FAQItemCreateBulk.OnConflict
// documentation for more info.
func (u *FAQItemUpsertBulk) Update(set func(*FAQItemUpsert)) *FAQItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FAQItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestion sets the "question" field.
func (u *FAQItemUpsertBulk) SetQuestion(v string) *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *FAQItemUpsertBulk) UpdateQuestion() *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateQuestion()
	})
}

// SetKeywords sets the "keywords" field.
func (u *FAQItemUpsertBulk) SetKeywords(v []string) *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetKeywords(v)
	})
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *FAQItemUpsertBulk) UpdateKeywords() *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateKeywords()
	})
}

// SetAnswer sets the "answer" field.
func (u *FAQItemUpsertBulk) SetAnswer(v string) *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *FAQItemUpsertBulk) UpdateAnswer() *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateAnswer()
	})
}

// SetIsActive sets the "is_active" field.
func (u *FAQItemUpsertBulk) SetIsActive(v bool) *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *FAQItemUpsertBulk) UpdateIsActive() *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateIsActive()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *FAQItemUpsertBulk) SetUsageCount(v int) *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *FAQItemUpsertBulk) AddUsageCount(v int) *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *FAQItemUpsertBulk) UpdateUsageCount() *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateUsageCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FAQItemUpsertBulk) SetUpdatedAt(v time.Time) *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FAQItemUpsertBulk) UpdateUpdatedAt() *FAQItemUpsertBulk {
	return u.Update(func(s *FAQItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FAQItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FAQItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FAQItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FAQItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
