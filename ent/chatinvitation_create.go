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
	"github.com/teambuh/slamon/ent/chatinvitation"
)

// ChatInvitationCreate is the builder for creating a ChatInvitation entity.
type ChatInvitationCreate struct {
	config
	mutation *ChatInvitationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatID sets the "chat_id" field.
func (_c *ChatInvitationCreate) SetChatID(v int64) *ChatInvitationCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChatInvitationCreate) SetStatus(v chatinvitation.Status) *ChatInvitationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChatInvitationCreate) SetNillableStatus(v *chatinvitation.Status) *ChatInvitationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ChatInvitationCreate) SetExpiresAt(v time.Time) *ChatInvitationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetUsedBy sets the "used_by" field.
func (_c *ChatInvitationCreate) SetUsedBy(v int64) *ChatInvitationCreate {
	_c.mutation.SetUsedBy(v)
	return _c
}

// SetNillableUsedBy sets the "used_by" field if the given value is not nil.
func (_c *ChatInvitationCreate) SetNillableUsedBy(v *int64) *ChatInvitationCreate {
	if v != nil {
		_c.SetUsedBy(*v)
	}
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *ChatInvitationCreate) SetUsedAt(v time.Time) *ChatInvitationCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_c *ChatInvitationCreate) SetNillableUsedAt(v *time.Time) *ChatInvitationCreate {
	if v != nil {
		_c.SetUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatInvitationCreate) SetCreatedAt(v time.Time) *ChatInvitationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatInvitationCreate) SetNillableCreatedAt(v *time.Time) *ChatInvitationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatInvitationCreate) SetID(v string) *ChatInvitationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *ChatInvitationCreate) SetChat(v *Chat) *ChatInvitationCreate {
	return _c.SetChatID(v.ID)
}

// Mutation returns the ChatInvitationMutation object of the builder.
func (_c *ChatInvitationCreate) Mutation() *ChatInvitationMutation {
	return _c.mutation
}

// Save creates the ChatInvitation in the database.
func (_c *ChatInvitationCreate) Save(ctx context.Context) (*ChatInvitation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatInvitationCreate) SaveX(ctx context.Context) *ChatInvitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatInvitationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatInvitationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatInvitationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := chatinvitation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatinvitation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatInvitationCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "ChatInvitation.chat_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ChatInvitation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := chatinvitation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatInvitation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ChatInvitation.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatInvitation.created_at"`)}
	}
	if len(_c.mutation.ChatIDs()) == 0 {
		return &ValidationError{Name: "chat", err: errors.New(`ent: missing required edge "ChatInvitation.chat"`)}
	}
	return nil
}

func (_c *ChatInvitationCreate) sqlSave(ctx context.Context) (*ChatInvitation, error) {
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
			return nil, fmt.Errorf("unexpected ChatInvitation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatInvitationCreate) createSpec() (*ChatInvitation, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatInvitation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatinvitation.Table, sqlgraph.NewFieldSpec(chatinvitation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(chatinvitation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(chatinvitation.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.UsedBy(); ok {
		_spec.SetField(chatinvitation.FieldUsedBy, field.TypeInt64, value)
		_node.UsedBy = &value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(chatinvitation.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatinvitation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatinvitation.ChatTable,
			Columns: []string{chatinvitation.ChatColumn},
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
//	client.ChatInvitation.Create().
//		SetChatID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatInvitationUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatInvitationCreate) OnConflict(opts ...sql.ConflictOption) *ChatInvitationUpsertOne {
	_c.conflict = opts
	return &ChatInvitationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatInvitation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatInvitationCreate) OnConflictColumns(columns ...string) *ChatInvitationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatInvitationUpsertOne{
		create: _c,
	}
}

type (
	// ChatInvitationUpsertOne is the builder for "upsert"-ing
	//  one ChatInvitation node.
	ChatInvitationUpsertOne struct {
		create *ChatInvitationCreate
	}

	// ChatInvitationUpsert is the "OnConflict" setter.
	ChatInvitationUpsert struct {
		*sql.UpdateSet
	}
)

// SetChatID sets the "chat_id" field.
func (u *ChatInvitationUpsert) SetChatID(v int64) *ChatInvitationUpsert {
	u.Set(chatinvitation.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatInvitationUpsert) UpdateChatID() *ChatInvitationUpsert {
	u.SetExcluded(chatinvitation.FieldChatID)
	return u
}

// SetStatus sets the "status" field.
func (u *ChatInvitationUpsert) SetStatus(v chatinvitation.Status) *ChatInvitationUpsert {
	u.Set(chatinvitation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatInvitationUpsert) UpdateStatus() *ChatInvitationUpsert {
	u.SetExcluded(chatinvitation.FieldStatus)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ChatInvitationUpsert) SetExpiresAt(v time.Time) *ChatInvitationUpsert {
	u.Set(chatinvitation.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ChatInvitationUpsert) UpdateExpiresAt() *ChatInvitationUpsert {
	u.SetExcluded(chatinvitation.FieldExpiresAt)
	return u
}

// SetUsedBy sets the "used_by" field.
func (u *ChatInvitationUpsert) SetUsedBy(v int64) *ChatInvitationUpsert {
	u.Set(chatinvitation.FieldUsedBy, v)
	return u
}

// UpdateUsedBy sets the "used_by" field to the value that was provided on create.
func (u *ChatInvitationUpsert) UpdateUsedBy() *ChatInvitationUpsert {
	u.SetExcluded(chatinvitation.FieldUsedBy)
	return u
}

// AddUsedBy adds v to the "used_by" field.
func (u *ChatInvitationUpsert) AddUsedBy(v int64) *ChatInvitationUpsert {
	u.Add(chatinvitation.FieldUsedBy, v)
	return u
}

// ClearUsedBy clears the value of the "used_by" field.
func (u *ChatInvitationUpsert) ClearUsedBy() *ChatInvitationUpsert {
	u.SetNull(chatinvitation.FieldUsedBy)
	return u
}

// SetUsedAt sets the "used_at" field.
func (u *ChatInvitationUpsert) SetUsedAt(v time.Time) *ChatInvitationUpsert {
	u.Set(chatinvitation.FieldUsedAt, v)
	return u
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *ChatInvitationUpsert) UpdateUsedAt() *ChatInvitationUpsert {
	u.SetExcluded(chatinvitation.FieldUsedAt)
	return u
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *ChatInvitationUpsert) ClearUsedAt() *ChatInvitationUpsert {
	u.SetNull(chatinvitation.FieldUsedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChatInvitation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatinvitation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatInvitationUpsertOne) UpdateNewValues() *ChatInvitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chatinvitation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatinvitation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatInvitation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatInvitationUpsertOne) Ignore() *ChatInvitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatInvitationUpsertOne) DoNothing() *ChatInvitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatInvitationCreate.OnConflict
// documentation for more info.
func (u *ChatInvitationUpsertOne) Update(set func(*ChatInvitationUpsert)) *ChatInvitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatInvitationUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *ChatInvitationUpsertOne) SetChatID(v int64) *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatInvitationUpsertOne) UpdateChatID() *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateChatID()
	})
}

// SetStatus sets the "status" field.
func (u *ChatInvitationUpsertOne) SetStatus(v chatinvitation.Status) *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatInvitationUpsertOne) UpdateStatus() *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateStatus()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ChatInvitationUpsertOne) SetExpiresAt(v time.Time) *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ChatInvitationUpsertOne) UpdateExpiresAt() *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetUsedBy sets the "used_by" field.
func (u *ChatInvitationUpsertOne) SetUsedBy(v int64) *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetUsedBy(v)
	})
}

// AddUsedBy adds v to the "used_by" field.
func (u *ChatInvitationUpsertOne) AddUsedBy(v int64) *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.AddUsedBy(v)
	})
}

// UpdateUsedBy sets the "used_by" field to the value that was provided on create.
func (u *ChatInvitationUpsertOne) UpdateUsedBy() *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateUsedBy()
	})
}

// ClearUsedBy clears the value of the "used_by" field.
func (u *ChatInvitationUpsertOne) ClearUsedBy() *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.ClearUsedBy()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *ChatInvitationUpsertOne) SetUsedAt(v time.Time) *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *ChatInvitationUpsertOne) UpdateUsedAt() *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateUsedAt()
	})
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *ChatInvitationUpsertOne) ClearUsedAt() *ChatInvitationUpsertOne {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.ClearUsedAt()
	})
}

// Exec executes the query.
func (u *ChatInvitationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatInvitationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatInvitationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatInvitationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChatInvitationUpsertOne.ID is not supported by MySQL driver. Use ChatInvitationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatInvitationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatInvitationCreateBulk is the builder for creating many ChatInvitation entities in bulk.
type ChatInvitationCreateBulk struct {
	config
	err      error
	builders []*ChatInvitationCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatInvitation entities in the database.
func (_c *ChatInvitationCreateBulk) Save(ctx context.Context) ([]*ChatInvitation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatInvitation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatInvitationMutation)
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
func (_c *ChatInvitationCreateBulk) SaveX(ctx context.Context) []*ChatInvitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatInvitationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatInvitationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatInvitation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatInvitationUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatInvitationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatInvitationUpsertBulk {
	_c.conflict = opts
	return &ChatInvitationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatInvitation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatInvitationCreateBulk) OnConflictColumns(columns ...string) *ChatInvitationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatInvitationUpsertBulk{
		create: _c,
	}
}

// ChatInvitationUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatInvitation nodes.
type ChatInvitationUpsertBulk struct {
	create *ChatInvitationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatInvitation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatinvitation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatInvitationUpsertBulk) UpdateNewValues() *ChatInvitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chatinvitation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatinvitation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatInvitation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatInvitationUpsertBulk) Ignore() *ChatInvitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatInvitationUpsertBulk) DoNothing() *ChatInvitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatInvitationCreateBulk.OnConflict
// documentation for more info.
func (u *ChatInvitationUpsertBulk) Update(set func(*ChatInvitationUpsert)) *ChatInvitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatInvitationUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *ChatInvitationUpsertBulk) SetChatID(v int64) *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatInvitationUpsertBulk) UpdateChatID() *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateChatID()
	})
}

// SetStatus sets the "status" field.
func (u *ChatInvitationUpsertBulk) SetStatus(v chatinvitation.Status) *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatInvitationUpsertBulk) UpdateStatus() *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateStatus()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ChatInvitationUpsertBulk) SetExpiresAt(v time.Time) *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ChatInvitationUpsertBulk) UpdateExpiresAt() *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetUsedBy sets the "used_by" field.
func (u *ChatInvitationUpsertBulk) SetUsedBy(v int64) *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetUsedBy(v)
	})
}

// AddUsedBy adds v to the "used_by" field.
func (u *ChatInvitationUpsertBulk) AddUsedBy(v int64) *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.AddUsedBy(v)
	})
}

// UpdateUsedBy sets the "used_by" field to the value that was provided on create.
func (u *ChatInvitationUpsertBulk) UpdateUsedBy() *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateUsedBy()
	})
}

// ClearUsedBy clears the value of the "used_by" field.
func (u *ChatInvitationUpsertBulk) ClearUsedBy() *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.ClearUsedBy()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *ChatInvitationUpsertBulk) SetUsedAt(v time.Time) *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *ChatInvitationUpsertBulk) UpdateUsedAt() *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.UpdateUsedAt()
	})
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *ChatInvitationUpsertBulk) ClearUsedAt() *ChatInvitationUpsertBulk {
	return u.Update(func(s *ChatInvitationUpsert) {
		s.ClearUsedAt()
	})
}

// Exec executes the query.
func (u *ChatInvitationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatInvitationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatInvitationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatInvitationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
