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
	"github.com/teambuh/slamon/ent/chatmessage"
)

// ChatMessageCreate is the builder for creating a ChatMessage entity.
type ChatMessageCreate struct {
	config
	mutation *ChatMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatID sets the "chat_id" field.
func (_c *ChatMessageCreate) SetChatID(v int64) *ChatMessageCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *ChatMessageCreate) SetMessageID(v int64) *ChatMessageCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetSenderID sets the "sender_id" field.
func (_c *ChatMessageCreate) SetSenderID(v int64) *ChatMessageCreate {
	_c.mutation.SetSenderID(v)
	return _c
}

// SetSenderUsername sets the "sender_username" field.
func (_c *ChatMessageCreate) SetSenderUsername(v string) *ChatMessageCreate {
	_c.mutation.SetSenderUsername(v)
	return _c
}

// SetNillableSenderUsername sets the "sender_username" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableSenderUsername(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetSenderUsername(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *ChatMessageCreate) SetText(v string) *ChatMessageCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableText(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetFromAccountant sets the "from_accountant" field.
func (_c *ChatMessageCreate) SetFromAccountant(v bool) *ChatMessageCreate {
	_c.mutation.SetFromAccountant(v)
	return _c
}

// SetNillableFromAccountant sets the "from_accountant" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableFromAccountant(v *bool) *ChatMessageCreate {
	if v != nil {
		_c.SetFromAccountant(*v)
	}
	return _c
}

// SetFaqHandled sets the "faq_handled" field.
func (_c *ChatMessageCreate) SetFaqHandled(v bool) *ChatMessageCreate {
	_c.mutation.SetFaqHandled(v)
	return _c
}

// SetNillableFaqHandled sets the "faq_handled" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableFaqHandled(v *bool) *ChatMessageCreate {
	if v != nil {
		_c.SetFaqHandled(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *ChatMessageCreate) SetRequestID(v string) *ChatMessageCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableRequestID(v *string) *ChatMessageCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatMessageCreate) SetCreatedAt(v time.Time) *ChatMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatMessageCreate) SetNillableCreatedAt(v *time.Time) *ChatMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatMessageCreate) SetID(v string) *ChatMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *ChatMessageCreate) SetChat(v *Chat) *ChatMessageCreate {
	return _c.SetChatID(v.ID)
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_c *ChatMessageCreate) Mutation() *ChatMessageMutation {
	return _c.mutation
}

// Save creates the ChatMessage in the database.
func (_c *ChatMessageCreate) Save(ctx context.Context) (*ChatMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatMessageCreate) SaveX(ctx context.Context) *ChatMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatMessageCreate) defaults() {
	if _, ok := _c.mutation.SenderUsername(); !ok {
		v := chatmessage.DefaultSenderUsername
		_c.mutation.SetSenderUsername(v)
	}
	if _, ok := _c.mutation.Text(); !ok {
		v := chatmessage.DefaultText
		_c.mutation.SetText(v)
	}
	if _, ok := _c.mutation.FromAccountant(); !ok {
		v := chatmessage.DefaultFromAccountant
		_c.mutation.SetFromAccountant(v)
	}
	if _, ok := _c.mutation.FaqHandled(); !ok {
		v := chatmessage.DefaultFaqHandled
		_c.mutation.SetFaqHandled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatMessageCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "ChatMessage.chat_id"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "ChatMessage.message_id"`)}
	}
	if _, ok := _c.mutation.SenderID(); !ok {
		return &ValidationError{Name: "sender_id", err: errors.New(`ent: missing required field "ChatMessage.sender_id"`)}
	}
	if _, ok := _c.mutation.SenderUsername(); !ok {
		return &ValidationError{Name: "sender_username", err: errors.New(`ent: missing required field "ChatMessage.sender_username"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "ChatMessage.text"`)}
	}
	if _, ok := _c.mutation.FromAccountant(); !ok {
		return &ValidationError{Name: "from_accountant", err: errors.New(`ent: missing required field "ChatMessage.from_accountant"`)}
	}
	if _, ok := _c.mutation.FaqHandled(); !ok {
		return &ValidationError{Name: "faq_handled", err: errors.New(`ent: missing required field "ChatMessage.faq_handled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatMessage.created_at"`)}
	}
	if len(_c.mutation.ChatIDs()) == 0 {
		return &ValidationError{Name: "chat", err: errors.New(`ent: missing required edge "ChatMessage.chat"`)}
	}
	return nil
}

func (_c *ChatMessageCreate) sqlSave(ctx context.Context) (*ChatMessage, error) {
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
			return nil, fmt.Errorf("unexpected ChatMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatMessageCreate) createSpec() (*ChatMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatmessage.Table, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(chatmessage.FieldMessageID, field.TypeInt64, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.SenderID(); ok {
		_spec.SetField(chatmessage.FieldSenderID, field.TypeInt64, value)
		_node.SenderID = value
	}
	if value, ok := _c.mutation.SenderUsername(); ok {
		_spec.SetField(chatmessage.FieldSenderUsername, field.TypeString, value)
		_node.SenderUsername = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(chatmessage.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.FromAccountant(); ok {
		_spec.SetField(chatmessage.FieldFromAccountant, field.TypeBool, value)
		_node.FromAccountant = value
	}
	if value, ok := _c.mutation.FaqHandled(); ok {
		_spec.SetField(chatmessage.FieldFaqHandled, field.TypeBool, value)
		_node.FaqHandled = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(chatmessage.FieldRequestID, field.TypeString, value)
		_node.RequestID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatmessage.ChatTable,
			Columns: []string{chatmessage.ChatColumn},
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
//	client.ChatMessage.Create().
//		SetChatID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatMessageUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatMessageCreate) OnConflict(opts ...sql.ConflictOption) *ChatMessageUpsertOne {
	_c.conflict = opts
	return &ChatMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatMessageCreate) OnConflictColumns(columns ...string) *ChatMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatMessageUpsertOne{
		create: _c,
	}
}

type (
	// ChatMessageUpsertOne is the builder for "upsert"-ing
	//  one ChatMessage node.
	ChatMessageUpsertOne struct {
		create *ChatMessageCreate
	}

	// ChatMessageUpsert is the "OnConflict" setter.
	ChatMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetChatID sets the "chat_id" field.
func (u *ChatMessageUpsert) SetChatID(v int64) *ChatMessageUpsert {
	u.Set(chatmessage.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateChatID() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldChatID)
	return u
}

// SetMessageID sets the "message_id" field.
func (u *ChatMessageUpsert) SetMessageID(v int64) *ChatMessageUpsert {
	u.Set(chatmessage.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateMessageID() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldMessageID)
	return u
}

// AddMessageID adds v to the "message_id" field.
func (u *ChatMessageUpsert) AddMessageID(v int64) *ChatMessageUpsert {
	u.Add(chatmessage.FieldMessageID, v)
	return u
}

// SetSenderID sets the "sender_id" field.
func (u *ChatMessageUpsert) SetSenderID(v int64) *ChatMessageUpsert {
	u.Set(chatmessage.FieldSenderID, v)
	return u
}

// UpdateSenderID sets the "sender_id" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateSenderID() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldSenderID)
	return u
}

// AddSenderID adds v to the "sender_id" field.
func (u *ChatMessageUpsert) AddSenderID(v int64) *ChatMessageUpsert {
	u.Add(chatmessage.FieldSenderID, v)
	return u
}

// SetSenderUsername sets the "sender_username" field.
func (u *ChatMessageUpsert) SetSenderUsername(v string) *ChatMessageUpsert {
	u.Set(chatmessage.FieldSenderUsername, v)
	return u
}

// UpdateSenderUsername sets the "sender_username" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateSenderUsername() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldSenderUsername)
	return u
}

// SetText sets the "text" field.
func (u *ChatMessageUpsert) SetText(v string) *ChatMessageUpsert {
	u.Set(chatmessage.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateText() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldText)
	return u
}

// SetFromAccountant sets the "from_accountant" field.
func (u *ChatMessageUpsert) SetFromAccountant(v bool) *ChatMessageUpsert {
	u.Set(chatmessage.FieldFromAccountant, v)
	return u
}

// UpdateFromAccountant sets the "from_accountant" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateFromAccountant() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldFromAccountant)
	return u
}

// SetFaqHandled sets the "faq_handled" field.
func (u *ChatMessageUpsert) SetFaqHandled(v bool) *ChatMessageUpsert {
	u.Set(chatmessage.FieldFaqHandled, v)
	return u
}

// UpdateFaqHandled sets the "faq_handled" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateFaqHandled() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldFaqHandled)
	return u
}

// SetRequestID sets the "request_id" field.
func (u *ChatMessageUpsert) SetRequestID(v string) *ChatMessageUpsert {
	u.Set(chatmessage.FieldRequestID, v)
	return u
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *ChatMessageUpsert) UpdateRequestID() *ChatMessageUpsert {
	u.SetExcluded(chatmessage.FieldRequestID)
	return u
}

// ClearRequestID clears the value of the "request_id" field.
func (u *ChatMessageUpsert) ClearRequestID() *ChatMessageUpsert {
	u.SetNull(chatmessage.FieldRequestID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatMessageUpsertOne) UpdateNewValues() *ChatMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chatmessage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatMessageUpsertOne) Ignore() *ChatMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatMessageUpsertOne) DoNothing() *ChatMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatMessageCreate.OnConflict
// documentation for more info.
func (u *ChatMessageUpsertOne) Update(set func(*ChatMessageUpsert)) *ChatMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *ChatMessageUpsertOne) SetChatID(v int64) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateChatID() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateChatID()
	})
}

// SetMessageID sets the "message_id" field.
func (u *ChatMessageUpsertOne) SetMessageID(v int64) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetMessageID(v)
	})
}

// AddMessageID adds v to the "message_id" field.
func (u *ChatMessageUpsertOne) AddMessageID(v int64) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.AddMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateMessageID() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateMessageID()
	})
}

// SetSenderID sets the "sender_id" field.
func (u *ChatMessageUpsertOne) SetSenderID(v int64) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetSenderID(v)
	})
}

// AddSenderID adds v to the "sender_id" field.
func (u *ChatMessageUpsertOne) AddSenderID(v int64) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.AddSenderID(v)
	})
}

// UpdateSenderID sets the "sender_id" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateSenderID() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateSenderID()
	})
}

// SetSenderUsername sets the "sender_username" field.
func (u *ChatMessageUpsertOne) SetSenderUsername(v string) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetSenderUsername(v)
	})
}

// UpdateSenderUsername sets the "sender_username" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateSenderUsername() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateSenderUsername()
	})
}

// SetText sets the "text" field.
func (u *ChatMessageUpsertOne) SetText(v string) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateText() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateText()
	})
}

// SetFromAccountant sets the "from_accountant" field.
func (u *ChatMessageUpsertOne) SetFromAccountant(v bool) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetFromAccountant(v)
	})
}

// UpdateFromAccountant sets the "from_accountant" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateFromAccountant() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateFromAccountant()
	})
}

// SetFaqHandled sets the "faq_handled" field.
func (u *ChatMessageUpsertOne) SetFaqHandled(v bool) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetFaqHandled(v)
	})
}

// UpdateFaqHandled sets the "faq_handled" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateFaqHandled() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateFaqHandled()
	})
}

// SetRequestID sets the "request_id" field.
func (u *ChatMessageUpsertOne) SetRequestID(v string) *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *ChatMessageUpsertOne) UpdateRequestID() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateRequestID()
	})
}

// ClearRequestID clears the value of the "request_id" field.
func (u *ChatMessageUpsertOne) ClearRequestID() *ChatMessageUpsertOne {
	return u.Update(func(s *ChatMessageUpsert) {
		s.ClearRequestID()
	})
}

// Exec executes the query.
func (u *ChatMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChatMessageUpsertOne.ID is not supported by MySQL driver. Use ChatMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatMessageCreateBulk is the builder for creating many ChatMessage entities in bulk.
type ChatMessageCreateBulk struct {
	config
	err      error
	builders []*ChatMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatMessage entities in the database.
func (_c *ChatMessageCreateBulk) Save(ctx context.Context) ([]*ChatMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatMessageMutation)
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
func (_c *ChatMessageCreateBulk) SaveX(ctx context.Context) []*ChatMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatMessageUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatMessageUpsertBulk {
	_c.conflict = opts
	return &ChatMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatMessageCreateBulk) OnConflictColumns(columns ...string) *ChatMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatMessageUpsertBulk{
		create: _c,
	}
}

// ChatMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatMessage nodes.
type ChatMessageUpsertBulk struct {
	create *ChatMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatMessageUpsertBulk) UpdateNewValues() *ChatMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chatmessage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatMessageUpsertBulk) Ignore() *ChatMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatMessageUpsertBulk) DoNothing() *ChatMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatMessageCreateBulk.OnConflict
// documentation for more info.
func (u *ChatMessageUpsertBulk) Update(set func(*ChatMessageUpsert)) *ChatMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *ChatMessageUpsertBulk) SetChatID(v int64) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateChatID() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateChatID()
	})
}

// SetMessageID sets the "message_id" field.
func (u *ChatMessageUpsertBulk) SetMessageID(v int64) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetMessageID(v)
	})
}

// AddMessageID adds v to the "message_id" field.
func (u *ChatMessageUpsertBulk) AddMessageID(v int64) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.AddMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateMessageID() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateMessageID()
	})
}

// SetSenderID sets the "sender_id" field.
func (u *ChatMessageUpsertBulk) SetSenderID(v int64) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetSenderID(v)
	})
}

// AddSenderID adds v to the "sender_id" field.
func (u *ChatMessageUpsertBulk) AddSenderID(v int64) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.AddSenderID(v)
	})
}

// UpdateSenderID sets the "sender_id" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateSenderID() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateSenderID()
	})
}

// SetSenderUsername sets the "sender_username" field.
func (u *ChatMessageUpsertBulk) SetSenderUsername(v string) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetSenderUsername(v)
	})
}

// UpdateSenderUsername sets the "sender_username" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateSenderUsername() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateSenderUsername()
	})
}

// SetText sets the "text" field.
func (u *ChatMessageUpsertBulk) SetText(v string) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateText() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateText()
	})
}

// SetFromAccountant sets the "from_accountant" field.
func (u *ChatMessageUpsertBulk) SetFromAccountant(v bool) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetFromAccountant(v)
	})
}

// UpdateFromAccountant sets the "from_accountant" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateFromAccountant() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateFromAccountant()
	})
}

// SetFaqHandled sets the "faq_handled" field.
func (u *ChatMessageUpsertBulk) SetFaqHandled(v bool) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetFaqHandled(v)
	})
}

// UpdateFaqHandled sets the "faq_handled" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateFaqHandled() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateFaqHandled()
	})
}

// SetRequestID sets the "request_id" field.
func (u *ChatMessageUpsertBulk) SetRequestID(v string) *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *ChatMessageUpsertBulk) UpdateRequestID() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.UpdateRequestID()
	})
}

// ClearRequestID clears the value of the "request_id" field.
func (u *ChatMessageUpsertBulk) ClearRequestID() *ChatMessageUpsertBulk {
	return u.Update(func(s *ChatMessageUpsert) {
		s.ClearRequestID()
	})
}

// Exec executes the query.
func (u *ChatMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
