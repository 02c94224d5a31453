// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/chatmessage"
	"github.com/teambuh/slamon/ent/predicate"
)

// ChatMessageUpdate is the builder for updating ChatMessage entities.
type ChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageMutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdate) Where(ps ...predicate.ChatMessage) *ChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ChatMessageUpdate) SetChatID(v int64) *ChatMessageUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableChatID(v *int64) *ChatMessageUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ChatMessageUpdate) SetMessageID(v int64) *ChatMessageUpdate {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableMessageID(v *int64) *ChatMessageUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *ChatMessageUpdate) AddMessageID(v int64) *ChatMessageUpdate {
	_u.mutation.AddMessageID(v)
	return _u
}

// SetSenderID sets the "sender_id" field.
func (_u *ChatMessageUpdate) SetSenderID(v int64) *ChatMessageUpdate {
	_u.mutation.ResetSenderID()
	_u.mutation.SetSenderID(v)
	return _u
}

// SetNillableSenderID sets the "sender_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableSenderID(v *int64) *ChatMessageUpdate {
	if v != nil {
		_u.SetSenderID(*v)
	}
	return _u
}

// AddSenderID adds value to the "sender_id" field.
func (_u *ChatMessageUpdate) AddSenderID(v int64) *ChatMessageUpdate {
	_u.mutation.AddSenderID(v)
	return _u
}

// SetSenderUsername sets the "sender_username" field.
func (_u *ChatMessageUpdate) SetSenderUsername(v string) *ChatMessageUpdate {
	_u.mutation.SetSenderUsername(v)
	return _u
}

// SetNillableSenderUsername sets the "sender_username" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableSenderUsername(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetSenderUsername(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChatMessageUpdate) SetText(v string) *ChatMessageUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableText(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetFromAccountant sets the "from_accountant" field.
func (_u *ChatMessageUpdate) SetFromAccountant(v bool) *ChatMessageUpdate {
	_u.mutation.SetFromAccountant(v)
	return _u
}

// SetNillableFromAccountant sets the "from_accountant" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableFromAccountant(v *bool) *ChatMessageUpdate {
	if v != nil {
		_u.SetFromAccountant(*v)
	}
	return _u
}

// SetFaqHandled sets the "faq_handled" field.
func (_u *ChatMessageUpdate) SetFaqHandled(v bool) *ChatMessageUpdate {
	_u.mutation.SetFaqHandled(v)
	return _u
}

// SetNillableFaqHandled sets the "faq_handled" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableFaqHandled(v *bool) *ChatMessageUpdate {
	if v != nil {
		_u.SetFaqHandled(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *ChatMessageUpdate) SetRequestID(v string) *ChatMessageUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableRequestID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *ChatMessageUpdate) ClearRequestID() *ChatMessageUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *ChatMessageUpdate) SetChat(v *Chat) *ChatMessageUpdate {
	return _u.SetChatID(v.ID)
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdate) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *ChatMessageUpdate) ClearChat() *ChatMessageUpdate {
	_u.mutation.ClearChat()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdate) check() error {
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.chat"`)
	}
	return nil
}

func (_u *ChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(chatmessage.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(chatmessage.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SenderID(); ok {
		_spec.SetField(chatmessage.FieldSenderID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSenderID(); ok {
		_spec.AddField(chatmessage.FieldSenderID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SenderUsername(); ok {
		_spec.SetField(chatmessage.FieldSenderUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chatmessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromAccountant(); ok {
		_spec.SetField(chatmessage.FieldFromAccountant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FaqHandled(); ok {
		_spec.SetField(chatmessage.FieldFaqHandled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(chatmessage.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(chatmessage.FieldRequestID, field.TypeString)
	}
	if _u.mutation.ChatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageUpdateOne is the builder for updating a single ChatMessage entity.
type ChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageMutation
}

// SetChatID sets the "chat_id" field.
func (_u *ChatMessageUpdateOne) SetChatID(v int64) *ChatMessageUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableChatID(v *int64) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ChatMessageUpdateOne) SetMessageID(v int64) *ChatMessageUpdateOne {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableMessageID(v *int64) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *ChatMessageUpdateOne) AddMessageID(v int64) *ChatMessageUpdateOne {
	_u.mutation.AddMessageID(v)
	return _u
}

// SetSenderID sets the "sender_id" field.
func (_u *ChatMessageUpdateOne) SetSenderID(v int64) *ChatMessageUpdateOne {
	_u.mutation.ResetSenderID()
	_u.mutation.SetSenderID(v)
	return _u
}

// SetNillableSenderID sets the "sender_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableSenderID(v *int64) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetSenderID(*v)
	}
	return _u
}

// AddSenderID adds value to the "sender_id" field.
func (_u *ChatMessageUpdateOne) AddSenderID(v int64) *ChatMessageUpdateOne {
	_u.mutation.AddSenderID(v)
	return _u
}

// SetSenderUsername sets the "sender_username" field.
func (_u *ChatMessageUpdateOne) SetSenderUsername(v string) *ChatMessageUpdateOne {
	_u.mutation.SetSenderUsername(v)
	return _u
}

// SetNillableSenderUsername sets the "sender_username" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableSenderUsername(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetSenderUsername(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChatMessageUpdateOne) SetText(v string) *ChatMessageUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableText(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetFromAccountant sets the "from_accountant" field.
func (_u *ChatMessageUpdateOne) SetFromAccountant(v bool) *ChatMessageUpdateOne {
	_u.mutation.SetFromAccountant(v)
	return _u
}

// SetNillableFromAccountant sets the "from_accountant" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableFromAccountant(v *bool) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetFromAccountant(*v)
	}
	return _u
}

// SetFaqHandled sets the "faq_handled" field.
func (_u *ChatMessageUpdateOne) SetFaqHandled(v bool) *ChatMessageUpdateOne {
	_u.mutation.SetFaqHandled(v)
	return _u
}

// SetNillableFaqHandled sets the "faq_handled" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableFaqHandled(v *bool) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetFaqHandled(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *ChatMessageUpdateOne) SetRequestID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableRequestID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *ChatMessageUpdateOne) ClearRequestID() *ChatMessageUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *ChatMessageUpdateOne) SetChat(v *Chat) *ChatMessageUpdateOne {
	return _u.SetChatID(v.ID)
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdateOne) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *ChatMessageUpdateOne) ClearChat() *ChatMessageUpdateOne {
	_u.mutation.ClearChat()
	return _u
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdateOne) Where(ps ...predicate.ChatMessage) *ChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageUpdateOne) Select(field string, fields ...string) *ChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessage entity.
func (_u *ChatMessageUpdateOne) Save(ctx context.Context) (*ChatMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) SaveX(ctx context.Context) *ChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdateOne) check() error {
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.chat"`)
	}
	return nil
}

func (_u *ChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessage.FieldID)
		for _, f := range fields {
			if !chatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatmessage.FieldID {
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
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(chatmessage.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(chatmessage.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SenderID(); ok {
		_spec.SetField(chatmessage.FieldSenderID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSenderID(); ok {
		_spec.AddField(chatmessage.FieldSenderID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SenderUsername(); ok {
		_spec.SetField(chatmessage.FieldSenderUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chatmessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromAccountant(); ok {
		_spec.SetField(chatmessage.FieldFromAccountant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FaqHandled(); ok {
		_spec.SetField(chatmessage.FieldFaqHandled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(chatmessage.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(chatmessage.FieldRequestID, field.TypeString)
	}
	if _u.mutation.ChatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
