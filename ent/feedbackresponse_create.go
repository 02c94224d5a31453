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
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/feedbackresponse"
)

// FeedbackResponseCreate is the builder for creating a FeedbackResponse entity.
type FeedbackResponseCreate struct {
	config
	mutation *FeedbackResponseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatID sets the "chat_id" field.
func (_c *FeedbackResponseCreate) SetChatID(v int64) *FeedbackResponseCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *FeedbackResponseCreate) SetRating(v int) *FeedbackResponseCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *FeedbackResponseCreate) SetComment(v string) *FeedbackResponseCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *FeedbackResponseCreate) SetNillableComment(v *string) *FeedbackResponseCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *FeedbackResponseCreate) SetSubmittedAt(v time.Time) *FeedbackResponseCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *FeedbackResponseCreate) SetNillableSubmittedAt(v *time.Time) *FeedbackResponseCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedbackResponseCreate) SetID(v string) *FeedbackResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *FeedbackResponseCreate) SetChat(v *Chat) *FeedbackResponseCreate {
	return _c.SetChatID(v.ID)
}

// Mutation returns the FeedbackResponseMutation object of the builder.
func (_c *FeedbackResponseCreate) Mutation() *FeedbackResponseMutation {
	return _c.mutation
}

// Save creates the FeedbackResponse in the database.
func (_c *FeedbackResponseCreate) Save(ctx context.Context) (*FeedbackResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackResponseCreate) SaveX(ctx context.Context) *FeedbackResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackResponseCreate) defaults() {
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := feedbackresponse.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackResponseCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "FeedbackResponse.chat_id"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "FeedbackResponse.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := feedbackresponse.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "FeedbackResponse.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "FeedbackResponse.submitted_at"`)}
	}
	if len(_c.mutation.ChatIDs()) == 0 {
		return &ValidationError{Name: "chat", err: errors.New(`ent: missing required edge "FeedbackResponse.chat"`)}
	}
	return nil
}

func (_c *FeedbackResponseCreate) sqlSave(ctx context.Context) (*FeedbackResponse, error) {
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
			return nil, fmt.Errorf("unexpected FeedbackResponse.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedbackResponseCreate) createSpec() (*FeedbackResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbackresponse.Table, sqlgraph.NewFieldSpec(feedbackresponse.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(feedbackresponse.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(feedbackresponse.FieldComment, field.TypeString, value)
		_node.Comment = &value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(feedbackresponse.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbackresponse.ChatTable,
			Columns: []string{feedbackresponse.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChatID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FeedbackResponse.Create().
//		SetChatID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedbackResponseUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedbackResponseCreate) OnConflict(opts ...sql.ConflictOption) *FeedbackResponseUpsertOne {
	_c.conflict = opts
	return &FeedbackResponseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FeedbackResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedbackResponseCreate) OnConflictColumns(columns ...string) *FeedbackResponseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedbackResponseUpsertOne{
		create: _c,
	}
}

type (
	// FeedbackResponseUpsertOne is the builder for "upsert"-ing
	//  one FeedbackResponse node.
	FeedbackResponseUpsertOne struct {
		create *FeedbackResponseCreate
	}

	// FeedbackResponseUpsert is the "OnConflict" setter.
	FeedbackResponseUpsert struct {
		*sql.UpdateSet
	}
)

// SetChatID sets the "chat_id" field.
func (u *FeedbackResponseUpsert) SetChatID(v int64) *FeedbackResponseUpsert {
	u.Set(feedbackresponse.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *FeedbackResponseUpsert) UpdateChatID() *FeedbackResponseUpsert {
	u.SetExcluded(feedbackresponse.FieldChatID)
	return u
}

// SetRating sets the "rating" field.
func (u *FeedbackResponseUpsert) SetRating(v int) *FeedbackResponseUpsert {
	u.Set(feedbackresponse.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *FeedbackResponseUpsert) UpdateRating() *FeedbackResponseUpsert {
	u.SetExcluded(feedbackresponse.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *FeedbackResponseUpsert) AddRating(v int) *FeedbackResponseUpsert {
	u.Add(feedbackresponse.FieldRating, v)
	return u
}

// SetComment sets the "comment" field.
func (u *FeedbackResponseUpsert) SetComment(v string) *FeedbackResponseUpsert {
	u.Set(feedbackresponse.FieldComment, v)
	return u
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *FeedbackResponseUpsert) UpdateComment() *FeedbackResponseUpsert {
	u.SetExcluded(feedbackresponse.FieldComment)
	return u
}

// ClearComment clears the value of the "comment" field.
func (u *FeedbackResponseUpsert) ClearComment() *FeedbackResponseUpsert {
	u.SetNull(feedbackresponse.FieldComment)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FeedbackResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(feedbackresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FeedbackResponseUpsertOne) UpdateNewValues() *FeedbackResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(feedbackresponse.FieldID)
		}
		if _, exists := u.create.mutation.SubmittedAt(); exists {
			s.SetIgnore(feedbackresponse.FieldSubmittedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FeedbackResponse.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FeedbackResponseUpsertOne) Ignore() *FeedbackResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedbackResponseUpsertOne) DoNothing() *FeedbackResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedbackResponseCreate.OnConflict
// documentation for more info.
func (u *FeedbackResponseUpsertOne) Update(set func(*FeedbackResponseUpsert)) *FeedbackResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedbackResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *FeedbackResponseUpsertOne) SetChatID(v int64) *FeedbackResponseUpsertOne {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *FeedbackResponseUpsertOne) UpdateChatID() *FeedbackResponseUpsertOne {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.UpdateChatID()
	})
}

// SetRating sets the "rating" field.
func (u *FeedbackResponseUpsertOne) SetRating(v int) *FeedbackResponseUpsertOne {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *FeedbackResponseUpsertOne) AddRating(v int) *FeedbackResponseUpsertOne {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *FeedbackResponseUpsertOne) UpdateRating() *FeedbackResponseUpsertOne {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.UpdateRating()
	})
}

// SetComment sets the "comment" field.
func (u *FeedbackResponseUpsertOne) SetComment(v string) *FeedbackResponseUpsertOne {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *FeedbackResponseUpsertOne) UpdateComment() *FeedbackResponseUpsertOne {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *FeedbackResponseUpsertOne) ClearComment() *FeedbackResponseUpsertOne {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.ClearComment()
	})
}

// Exec executes the query.
func (u *FeedbackResponseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedbackResponseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedbackResponseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FeedbackResponseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FeedbackResponseUpsertOne.ID is not supported by MySQL driver. Use FeedbackResponseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FeedbackResponseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FeedbackResponseCreateBulk is the builder for creating many FeedbackResponse entities in bulk.
type FeedbackResponseCreateBulk struct {
	config
	err      error
	builders []*FeedbackResponseCreate
	conflict []sql.ConflictOption
}

// Save creates the FeedbackResponse entities in the database.
func (_c *FeedbackResponseCreateBulk) Save(ctx context.Context) ([]*FeedbackResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackResponseMutation)
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
func (_c *FeedbackResponseCreateBulk) SaveX(ctx context.Context) []*FeedbackResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FeedbackResponse.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedbackResponseUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedbackResponseCreateBulk) OnConflict(opts ...sql.ConflictOption) *FeedbackResponseUpsertBulk {
	_c.conflict = opts
	return &FeedbackResponseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FeedbackResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedbackResponseCreateBulk) OnConflictColumns(columns ...string) *FeedbackResponseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedbackResponseUpsertBulk{
		create: _c,
	}
}

// FeedbackResponseUpsertBulk is the builder for "upsert"-ing
// a bulk of FeedbackResponse nodes.
type FeedbackResponseUpsertBulk struct {
	create *FeedbackResponseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FeedbackResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(feedbackresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FeedbackResponseUpsertBulk) UpdateNewValues() *FeedbackResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(feedbackresponse.FieldID)
			}
			if _, exists := b.mutation.SubmittedAt(); exists {
				s.SetIgnore(feedbackresponse.FieldSubmittedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FeedbackResponse.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FeedbackResponseUpsertBulk) Ignore() *FeedbackResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedbackResponseUpsertBulk) DoNothing() *FeedbackResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedbackResponseCreateBulk.OnConflict
// documentation for more info.
func (u *FeedbackResponseUpsertBulk) Update(set func(*FeedbackResponseUpsert)) *FeedbackResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedbackResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *FeedbackResponseUpsertBulk) SetChatID(v int64) *FeedbackResponseUpsertBulk {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *FeedbackResponseUpsertBulk) UpdateChatID() *FeedbackResponseUpsertBulk {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.UpdateChatID()
	})
}

// SetRating sets the "rating" field.
func (u *FeedbackResponseUpsertBulk) SetRating(v int) *FeedbackResponseUpsertBulk {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *FeedbackResponseUpsertBulk) AddRating(v int) *FeedbackResponseUpsertBulk {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *FeedbackResponseUpsertBulk) UpdateRating() *FeedbackResponseUpsertBulk {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.UpdateRating()
	})
}

// SetComment sets the "comment" field.
func (u *FeedbackResponseUpsertBulk) SetComment(v string) *FeedbackResponseUpsertBulk {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *FeedbackResponseUpsertBulk) UpdateComment() *FeedbackResponseUpsertBulk {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *FeedbackResponseUpsertBulk) ClearComment() *FeedbackResponseUpsertBulk {
	return u.Update(func(s *FeedbackResponseUpsert) {
		s.ClearComment()
	})
}

// Exec executes the query.
func (u *FeedbackResponseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FeedbackResponseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedbackResponseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedbackResponseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
