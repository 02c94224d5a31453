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
	"github.com/teambuh/slamon/ent/feedbackresponse"
	"github.com/teambuh/slamon/ent/predicate"
)

// FeedbackResponseUpdate is the builder for updating FeedbackResponse entities.
type FeedbackResponseUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackResponseMutation
}

// Where appends a list predicates to the FeedbackResponseUpdate builder.
func (_u *FeedbackResponseUpdate) Where(ps ...predicate.FeedbackResponse) *FeedbackResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *FeedbackResponseUpdate) SetChatID(v int64) *FeedbackResponseUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *FeedbackResponseUpdate) SetNillableChatID(v *int64) *FeedbackResponseUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackResponseUpdate) SetRating(v int) *FeedbackResponseUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackResponseUpdate) SetNillableRating(v *int) *FeedbackResponseUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FeedbackResponseUpdate) AddRating(v int) *FeedbackResponseUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackResponseUpdate) SetComment(v string) *FeedbackResponseUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackResponseUpdate) SetNillableComment(v *string) *FeedbackResponseUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *FeedbackResponseUpdate) ClearComment() *FeedbackResponseUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *FeedbackResponseUpdate) SetChat(v *Chat) *FeedbackResponseUpdate {
	return _u.SetChatID(v.ID)
}

// Mutation returns the FeedbackResponseMutation object of the builder.
func (_u *FeedbackResponseUpdate) Mutation() *FeedbackResponseMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *FeedbackResponseUpdate) ClearChat() *FeedbackResponseUpdate {
	_u.mutation.ClearChat()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackResponseUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedbackresponse.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "FeedbackResponse.rating": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackResponse.chat"`)
	}
	return nil
}

func (_u *FeedbackResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackresponse.Table, feedbackresponse.Columns, sqlgraph.NewFieldSpec(feedbackresponse.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedbackresponse.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(feedbackresponse.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedbackresponse.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(feedbackresponse.FieldComment, field.TypeString)
	}
	if _u.mutation.ChatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackResponseUpdateOne is the builder for updating a single FeedbackResponse entity.
type FeedbackResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackResponseMutation
}

// SetChatID sets the "chat_id" field.
func (_u *FeedbackResponseUpdateOne) SetChatID(v int64) *FeedbackResponseUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *FeedbackResponseUpdateOne) SetNillableChatID(v *int64) *FeedbackResponseUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackResponseUpdateOne) SetRating(v int) *FeedbackResponseUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackResponseUpdateOne) SetNillableRating(v *int) *FeedbackResponseUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FeedbackResponseUpdateOne) AddRating(v int) *FeedbackResponseUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackResponseUpdateOne) SetComment(v string) *FeedbackResponseUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackResponseUpdateOne) SetNillableComment(v *string) *FeedbackResponseUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *FeedbackResponseUpdateOne) ClearComment() *FeedbackResponseUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *FeedbackResponseUpdateOne) SetChat(v *Chat) *FeedbackResponseUpdateOne {
	return _u.SetChatID(v.ID)
}

// Mutation returns the FeedbackResponseMutation object of the builder.
func (_u *FeedbackResponseUpdateOne) Mutation() *FeedbackResponseMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *FeedbackResponseUpdateOne) ClearChat() *FeedbackResponseUpdateOne {
	_u.mutation.ClearChat()
	return _u
}

// Where appends a list predicates to the FeedbackResponseUpdate builder.
func (_u *FeedbackResponseUpdateOne) Where(ps ...predicate.FeedbackResponse) *FeedbackResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackResponseUpdateOne) Select(field string, fields ...string) *FeedbackResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackResponse entity.
func (_u *FeedbackResponseUpdateOne) Save(ctx context.Context) (*FeedbackResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackResponseUpdateOne) SaveX(ctx context.Context) *FeedbackResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackResponseUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedbackresponse.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "FeedbackResponse.rating": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackResponse.chat"`)
	}
	return nil
}

func (_u *FeedbackResponseUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackresponse.Table, feedbackresponse.Columns, sqlgraph.NewFieldSpec(feedbackresponse.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackresponse.FieldID)
		for _, f := range fields {
			if !feedbackresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackresponse.FieldID {
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
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedbackresponse.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(feedbackresponse.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedbackresponse.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(feedbackresponse.FieldComment, field.TypeString)
	}
	if _u.mutation.ChatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FeedbackResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
