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
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/chatinvitation"
	"github.com/teambuh/slamon/ent/predicate"
)

// ChatInvitationUpdate is the builder for updating ChatInvitation entities.
type ChatInvitationUpdate struct {
	config
	hooks    []Hook
	mutation *ChatInvitationMutation
}

// Where appends a list predicates to the ChatInvitationUpdate builder.
func (_u *ChatInvitationUpdate) Where(ps ...predicate.ChatInvitation) *ChatInvitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ChatInvitationUpdate) SetChatID(v int64) *ChatInvitationUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatInvitationUpdate) SetNillableChatID(v *int64) *ChatInvitationUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatInvitationUpdate) SetStatus(v chatinvitation.Status) *ChatInvitationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatInvitationUpdate) SetNillableStatus(v *chatinvitation.Status) *ChatInvitationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ChatInvitationUpdate) SetExpiresAt(v time.Time) *ChatInvitationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ChatInvitationUpdate) SetNillableExpiresAt(v *time.Time) *ChatInvitationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsedBy sets the "used_by" field.
func (_u *ChatInvitationUpdate) SetUsedBy(v int64) *ChatInvitationUpdate {
	_u.mutation.ResetUsedBy()
	_u.mutation.SetUsedBy(v)
	return _u
}

// SetNillableUsedBy sets the "used_by" field if the given value is not nil.
func (_u *ChatInvitationUpdate) SetNillableUsedBy(v *int64) *ChatInvitationUpdate {
	if v != nil {
		_u.SetUsedBy(*v)
	}
	return _u
}

// AddUsedBy adds value to the "used_by" field.
func (_u *ChatInvitationUpdate) AddUsedBy(v int64) *ChatInvitationUpdate {
	_u.mutation.AddUsedBy(v)
	return _u
}

// ClearUsedBy clears the value of the "used_by" field.
func (_u *ChatInvitationUpdate) ClearUsedBy() *ChatInvitationUpdate {
	_u.mutation.ClearUsedBy()
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *ChatInvitationUpdate) SetUsedAt(v time.Time) *ChatInvitationUpdate {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *ChatInvitationUpdate) SetNillableUsedAt(v *time.Time) *ChatInvitationUpdate {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *ChatInvitationUpdate) ClearUsedAt() *ChatInvitationUpdate {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *ChatInvitationUpdate) SetChat(v *Chat) *ChatInvitationUpdate {
	return _u.SetChatID(v.ID)
}

// Mutation returns the ChatInvitationMutation object of the builder.
func (_u *ChatInvitationUpdate) Mutation() *ChatInvitationMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *ChatInvitationUpdate) ClearChat() *ChatInvitationUpdate {
	_u.mutation.ClearChat()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatInvitationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatInvitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatInvitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatInvitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatInvitationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatinvitation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatInvitation.status": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatInvitation.chat"`)
	}
	return nil
}

func (_u *ChatInvitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatinvitation.Table, chatinvitation.Columns, sqlgraph.NewFieldSpec(chatinvitation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatinvitation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(chatinvitation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UsedBy(); ok {
		_spec.SetField(chatinvitation.FieldUsedBy, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUsedBy(); ok {
		_spec.AddField(chatinvitation.FieldUsedBy, field.TypeInt64, value)
	}
	if _u.mutation.UsedByCleared() {
		_spec.ClearField(chatinvitation.FieldUsedBy, field.TypeInt64)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(chatinvitation.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(chatinvitation.FieldUsedAt, field.TypeTime)
	}
	if _u.mutation.ChatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatinvitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatInvitationUpdateOne is the builder for updating a single ChatInvitation entity.
type ChatInvitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatInvitationMutation
}

// SetChatID sets the "chat_id" field.
func (_u *ChatInvitationUpdateOne) SetChatID(v int64) *ChatInvitationUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatInvitationUpdateOne) SetNillableChatID(v *int64) *ChatInvitationUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatInvitationUpdateOne) SetStatus(v chatinvitation.Status) *ChatInvitationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatInvitationUpdateOne) SetNillableStatus(v *chatinvitation.Status) *ChatInvitationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ChatInvitationUpdateOne) SetExpiresAt(v time.Time) *ChatInvitationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ChatInvitationUpdateOne) SetNillableExpiresAt(v *time.Time) *ChatInvitationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsedBy sets the "used_by" field.
func (_u *ChatInvitationUpdateOne) SetUsedBy(v int64) *ChatInvitationUpdateOne {
	_u.mutation.ResetUsedBy()
	_u.mutation.SetUsedBy(v)
	return _u
}

// SetNillableUsedBy sets the "used_by" field if the given value is not nil.
func (_u *ChatInvitationUpdateOne) SetNillableUsedBy(v *int64) *ChatInvitationUpdateOne {
	if v != nil {
		_u.SetUsedBy(*v)
	}
	return _u
}

// AddUsedBy adds value to the "used_by" field.
func (_u *ChatInvitationUpdateOne) AddUsedBy(v int64) *ChatInvitationUpdateOne {
	_u.mutation.AddUsedBy(v)
	return _u
}

// ClearUsedBy clears the value of the "used_by" field.
func (_u *ChatInvitationUpdateOne) ClearUsedBy() *ChatInvitationUpdateOne {
	_u.mutation.ClearUsedBy()
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *ChatInvitationUpdateOne) SetUsedAt(v time.Time) *ChatInvitationUpdateOne {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *ChatInvitationUpdateOne) SetNillableUsedAt(v *time.Time) *ChatInvitationUpdateOne {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *ChatInvitationUpdateOne) ClearUsedAt() *ChatInvitationUpdateOne {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *ChatInvitationUpdateOne) SetChat(v *Chat) *ChatInvitationUpdateOne {
	return _u.SetChatID(v.ID)
}

// Mutation returns the ChatInvitationMutation object of the builder.
func (_u *ChatInvitationUpdateOne) Mutation() *ChatInvitationMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *ChatInvitationUpdateOne) ClearChat() *ChatInvitationUpdateOne {
	_u.mutation.ClearChat()
	return _u
}

// Where appends a list predicates to the ChatInvitationUpdate builder.
func (_u *ChatInvitationUpdateOne) Where(ps ...predicate.ChatInvitation) *ChatInvitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatInvitationUpdateOne) Select(field string, fields ...string) *ChatInvitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatInvitation entity.
func (_u *ChatInvitationUpdateOne) Save(ctx context.Context) (*ChatInvitation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatInvitationUpdateOne) SaveX(ctx context.Context) *ChatInvitation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatInvitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatInvitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatInvitationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatinvitation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatInvitation.status": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatInvitation.chat"`)
	}
	return nil
}

func (_u *ChatInvitationUpdateOne) sqlSave(ctx context.Context) (_node *ChatInvitation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatinvitation.Table, chatinvitation.Columns, sqlgraph.NewFieldSpec(chatinvitation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatInvitation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatinvitation.FieldID)
		for _, f := range fields {
			if !chatinvitation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatinvitation.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatinvitation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(chatinvitation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UsedBy(); ok {
		_spec.SetField(chatinvitation.FieldUsedBy, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUsedBy(); ok {
		_spec.AddField(chatinvitation.FieldUsedBy, field.TypeInt64, value)
	}
	if _u.mutation.UsedByCleared() {
		_spec.ClearField(chatinvitation.FieldUsedBy, field.TypeInt64)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(chatinvitation.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(chatinvitation.FieldUsedAt, field.TypeTime)
	}
	if _u.mutation.ChatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatInvitation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatinvitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
