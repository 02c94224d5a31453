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
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/predicate"
	"github.com/teambuh/slamon/ent/slaalert"
)

// ClientRequestUpdate is the builder for updating ClientRequest entities.
type ClientRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ClientRequestMutation
}

// Where appends a list predicates to the ClientRequestUpdate builder.
func (_u *ClientRequestUpdate) Where(ps ...predicate.ClientRequest) *ClientRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ClientRequestUpdate) SetChatID(v int64) *ClientRequestUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableChatID(v *int64) *ClientRequestUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetClientUsername sets the "client_username" field.
func (_u *ClientRequestUpdate) SetClientUsername(v string) *ClientRequestUpdate {
	_u.mutation.SetClientUsername(v)
	return _u
}

// SetNillableClientUsername sets the "client_username" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableClientUsername(v *string) *ClientRequestUpdate {
	if v != nil {
		_u.SetClientUsername(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ClientRequestUpdate) SetClientID(v int64) *ClientRequestUpdate {
	_u.mutation.ResetClientID()
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableClientID(v *int64) *ClientRequestUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// AddClientID adds value to the "client_id" field.
func (_u *ClientRequestUpdate) AddClientID(v int64) *ClientRequestUpdate {
	_u.mutation.AddClientID(v)
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *ClientRequestUpdate) ClearClientID() *ClientRequestUpdate {
	_u.mutation.ClearClientID()
	return _u
}

// SetMessageText sets the "message_text" field.
func (_u *ClientRequestUpdate) SetMessageText(v string) *ClientRequestUpdate {
	_u.mutation.SetMessageText(v)
	return _u
}

// SetNillableMessageText sets the "message_text" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableMessageText(v *string) *ClientRequestUpdate {
	if v != nil {
		_u.SetMessageText(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ClientRequestUpdate) SetMessageID(v int64) *ClientRequestUpdate {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableMessageID(v *int64) *ClientRequestUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *ClientRequestUpdate) AddMessageID(v int64) *ClientRequestUpdate {
	_u.mutation.AddMessageID(v)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *ClientRequestUpdate) SetThreadID(v string) *ClientRequestUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableThreadID(v *string) *ClientRequestUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *ClientRequestUpdate) ClearThreadID() *ClientRequestUpdate {
	_u.mutation.ClearThreadID()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *ClientRequestUpdate) SetClassification(v clientrequest.Classification) *ClientRequestUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableClassification(v *clientrequest.Classification) *ClientRequestUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClientRequestUpdate) SetStatus(v clientrequest.Status) *ClientRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableStatus(v *clientrequest.Status) *ClientRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSLABreached sets the "sla_breached" field.
func (_u *ClientRequestUpdate) SetSLABreached(v bool) *ClientRequestUpdate {
	_u.mutation.SetSLABreached(v)
	return _u
}

// SetNillableSLABreached sets the "sla_breached" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableSLABreached(v *bool) *ClientRequestUpdate {
	if v != nil {
		_u.SetSLABreached(*v)
	}
	return _u
}

// SetResponseMessageID sets the "response_message_id" field.
func (_u *ClientRequestUpdate) SetResponseMessageID(v int64) *ClientRequestUpdate {
	_u.mutation.ResetResponseMessageID()
	_u.mutation.SetResponseMessageID(v)
	return _u
}

// SetNillableResponseMessageID sets the "response_message_id" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableResponseMessageID(v *int64) *ClientRequestUpdate {
	if v != nil {
		_u.SetResponseMessageID(*v)
	}
	return _u
}

// AddResponseMessageID adds value to the "response_message_id" field.
func (_u *ClientRequestUpdate) AddResponseMessageID(v int64) *ClientRequestUpdate {
	_u.mutation.AddResponseMessageID(v)
	return _u
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (_u *ClientRequestUpdate) ClearResponseMessageID() *ClientRequestUpdate {
	_u.mutation.ClearResponseMessageID()
	return _u
}

// SetResponseTimeMinutes sets the "response_time_minutes" field.
func (_u *ClientRequestUpdate) SetResponseTimeMinutes(v int) *ClientRequestUpdate {
	_u.mutation.ResetResponseTimeMinutes()
	_u.mutation.SetResponseTimeMinutes(v)
	return _u
}

// SetNillableResponseTimeMinutes sets the "response_time_minutes" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableResponseTimeMinutes(v *int) *ClientRequestUpdate {
	if v != nil {
		_u.SetResponseTimeMinutes(*v)
	}
	return _u
}

// AddResponseTimeMinutes adds value to the "response_time_minutes" field.
func (_u *ClientRequestUpdate) AddResponseTimeMinutes(v int) *ClientRequestUpdate {
	_u.mutation.AddResponseTimeMinutes(v)
	return _u
}

// ClearResponseTimeMinutes clears the value of the "response_time_minutes" field.
func (_u *ClientRequestUpdate) ClearResponseTimeMinutes() *ClientRequestUpdate {
	_u.mutation.ClearResponseTimeMinutes()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *ClientRequestUpdate) SetAnsweredAt(v time.Time) *ClientRequestUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableAnsweredAt(v *time.Time) *ClientRequestUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *ClientRequestUpdate) ClearAnsweredAt() *ClientRequestUpdate {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClientRequestUpdate) SetDeletedAt(v time.Time) *ClientRequestUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClientRequestUpdate) SetNillableDeletedAt(v *time.Time) *ClientRequestUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClientRequestUpdate) ClearDeletedAt() *ClientRequestUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *ClientRequestUpdate) SetChat(v *Chat) *ClientRequestUpdate {
	return _u.SetChatID(v.ID)
}

// AddAlertIDs adds the "alerts" edge to the SLAAlert entity by IDs.
func (_u *ClientRequestUpdate) AddAlertIDs(ids ...string) *ClientRequestUpdate {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the SLAAlert entity.
func (_u *ClientRequestUpdate) AddAlerts(v ...*SLAAlert) *ClientRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// Mutation returns the ClientRequestMutation object of the builder.
func (_u *ClientRequestUpdate) Mutation() *ClientRequestMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *ClientRequestUpdate) ClearChat() *ClientRequestUpdate {
	_u.mutation.ClearChat()
	return _u
}

// ClearAlerts clears all "alerts" edges to the SLAAlert entity.
func (_u *ClientRequestUpdate) ClearAlerts() *ClientRequestUpdate {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to SLAAlert entities by IDs.
func (_u *ClientRequestUpdate) RemoveAlertIDs(ids ...string) *ClientRequestUpdate {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to SLAAlert entities.
func (_u *ClientRequestUpdate) RemoveAlerts(v ...*SLAAlert) *ClientRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientRequestUpdate) check() error {
	if v, ok := _u.mutation.Classification(); ok {
		if err := clientrequest.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ClientRequest.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clientrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClientRequest.status": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClientRequest.chat"`)
	}
	return nil
}

func (_u *ClientRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientrequest.Table, clientrequest.Columns, sqlgraph.NewFieldSpec(clientrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientUsername(); ok {
		_spec.SetField(clientrequest.FieldClientUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(clientrequest.FieldClientID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClientID(); ok {
		_spec.AddField(clientrequest.FieldClientID, field.TypeInt64, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(clientrequest.FieldClientID, field.TypeInt64)
	}
	if value, ok := _u.mutation.MessageText(); ok {
		_spec.SetField(clientrequest.FieldMessageText, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(clientrequest.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(clientrequest.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(clientrequest.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(clientrequest.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(clientrequest.FieldClassification, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clientrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SLABreached(); ok {
		_spec.SetField(clientrequest.FieldSLABreached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseMessageID(); ok {
		_spec.SetField(clientrequest.FieldResponseMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMessageID(); ok {
		_spec.AddField(clientrequest.FieldResponseMessageID, field.TypeInt64, value)
	}
	if _u.mutation.ResponseMessageIDCleared() {
		_spec.ClearField(clientrequest.FieldResponseMessageID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ResponseTimeMinutes(); ok {
		_spec.SetField(clientrequest.FieldResponseTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMinutes(); ok {
		_spec.AddField(clientrequest.FieldResponseTimeMinutes, field.TypeInt, value)
	}
	if _u.mutation.ResponseTimeMinutesCleared() {
		_spec.ClearField(clientrequest.FieldResponseTimeMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(clientrequest.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(clientrequest.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clientrequest.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clientrequest.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ChatCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientrequest.ChatTable,
			Columns: []string{clientrequest.ChatColumn},
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
			Table:   clientrequest.ChatTable,
			Columns: []string{clientrequest.ChatColumn},
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
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientrequest.AlertsTable,
			Columns: []string{clientrequest.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slaalert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientrequest.AlertsTable,
			Columns: []string{clientrequest.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slaalert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientrequest.AlertsTable,
			Columns: []string{clientrequest.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slaalert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientRequestUpdateOne is the builder for updating a single ClientRequest entity.
type ClientRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientRequestMutation
}

// SetChatID sets the "chat_id" field.
func (_u *ClientRequestUpdateOne) SetChatID(v int64) *ClientRequestUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableChatID(v *int64) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetClientUsername sets the "client_username" field.
func (_u *ClientRequestUpdateOne) SetClientUsername(v string) *ClientRequestUpdateOne {
	_u.mutation.SetClientUsername(v)
	return _u
}

// SetNillableClientUsername sets the "client_username" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableClientUsername(v *string) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetClientUsername(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ClientRequestUpdateOne) SetClientID(v int64) *ClientRequestUpdateOne {
	_u.mutation.ResetClientID()
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableClientID(v *int64) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// AddClientID adds value to the "client_id" field.
func (_u *ClientRequestUpdateOne) AddClientID(v int64) *ClientRequestUpdateOne {
	_u.mutation.AddClientID(v)
	return _u
}

// ClearClientID clears the value of the "client_id" field.
func (_u *ClientRequestUpdateOne) ClearClientID() *ClientRequestUpdateOne {
	_u.mutation.ClearClientID()
	return _u
}

// SetMessageText sets the "message_text" field.
func (_u *ClientRequestUpdateOne) SetMessageText(v string) *ClientRequestUpdateOne {
	_u.mutation.SetMessageText(v)
	return _u
}

// SetNillableMessageText sets the "message_text" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableMessageText(v *string) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetMessageText(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ClientRequestUpdateOne) SetMessageID(v int64) *ClientRequestUpdateOne {
	_u.mutation.ResetMessageID()
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableMessageID(v *int64) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// AddMessageID adds value to the "message_id" field.
func (_u *ClientRequestUpdateOne) AddMessageID(v int64) *ClientRequestUpdateOne {
	_u.mutation.AddMessageID(v)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *ClientRequestUpdateOne) SetThreadID(v string) *ClientRequestUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableThreadID(v *string) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *ClientRequestUpdateOne) ClearThreadID() *ClientRequestUpdateOne {
	_u.mutation.ClearThreadID()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *ClientRequestUpdateOne) SetClassification(v clientrequest.Classification) *ClientRequestUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableClassification(v *clientrequest.Classification) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClientRequestUpdateOne) SetStatus(v clientrequest.Status) *ClientRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableStatus(v *clientrequest.Status) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSLABreached sets the "sla_breached" field.
func (_u *ClientRequestUpdateOne) SetSLABreached(v bool) *ClientRequestUpdateOne {
	_u.mutation.SetSLABreached(v)
	return _u
}

// SetNillableSLABreached sets the "sla_breached" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableSLABreached(v *bool) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetSLABreached(*v)
	}
	return _u
}

// SetResponseMessageID sets the "response_message_id" field.
func (_u *ClientRequestUpdateOne) SetResponseMessageID(v int64) *ClientRequestUpdateOne {
	_u.mutation.ResetResponseMessageID()
	_u.mutation.SetResponseMessageID(v)
	return _u
}

// SetNillableResponseMessageID sets the "response_message_id" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableResponseMessageID(v *int64) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetResponseMessageID(*v)
	}
	return _u
}

// AddResponseMessageID adds value to the "response_message_id" field.
func (_u *ClientRequestUpdateOne) AddResponseMessageID(v int64) *ClientRequestUpdateOne {
	_u.mutation.AddResponseMessageID(v)
	return _u
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (_u *ClientRequestUpdateOne) ClearResponseMessageID() *ClientRequestUpdateOne {
	_u.mutation.ClearResponseMessageID()
	return _u
}

// SetResponseTimeMinutes sets the "response_time_minutes" field.
func (_u *ClientRequestUpdateOne) SetResponseTimeMinutes(v int) *ClientRequestUpdateOne {
	_u.mutation.ResetResponseTimeMinutes()
	_u.mutation.SetResponseTimeMinutes(v)
	return _u
}

// SetNillableResponseTimeMinutes sets the "response_time_minutes" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableResponseTimeMinutes(v *int) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetResponseTimeMinutes(*v)
	}
	return _u
}

// AddResponseTimeMinutes adds value to the "response_time_minutes" field.
func (_u *ClientRequestUpdateOne) AddResponseTimeMinutes(v int) *ClientRequestUpdateOne {
	_u.mutation.AddResponseTimeMinutes(v)
	return _u
}

// ClearResponseTimeMinutes clears the value of the "response_time_minutes" field.
func (_u *ClientRequestUpdateOne) ClearResponseTimeMinutes() *ClientRequestUpdateOne {
	_u.mutation.ClearResponseTimeMinutes()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *ClientRequestUpdateOne) SetAnsweredAt(v time.Time) *ClientRequestUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableAnsweredAt(v *time.Time) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *ClientRequestUpdateOne) ClearAnsweredAt() *ClientRequestUpdateOne {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClientRequestUpdateOne) SetDeletedAt(v time.Time) *ClientRequestUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClientRequestUpdateOne) SetNillableDeletedAt(v *time.Time) *ClientRequestUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClientRequestUpdateOne) ClearDeletedAt() *ClientRequestUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *ClientRequestUpdateOne) SetChat(v *Chat) *ClientRequestUpdateOne {
	return _u.SetChatID(v.ID)
}

// AddAlertIDs adds the "alerts" edge to the SLAAlert entity by IDs.
func (_u *ClientRequestUpdateOne) AddAlertIDs(ids ...string) *ClientRequestUpdateOne {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the SLAAlert entity.
func (_u *ClientRequestUpdateOne) AddAlerts(v ...*SLAAlert) *ClientRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// Mutation returns the ClientRequestMutation object of the builder.
func (_u *ClientRequestUpdateOne) Mutation() *ClientRequestMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *ClientRequestUpdateOne) ClearChat() *ClientRequestUpdateOne {
	_u.mutation.ClearChat()
	return _u
}

// ClearAlerts clears all "alerts" edges to the SLAAlert entity.
func (_u *ClientRequestUpdateOne) ClearAlerts() *ClientRequestUpdateOne {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to SLAAlert entities by IDs.
func (_u *ClientRequestUpdateOne) RemoveAlertIDs(ids ...string) *ClientRequestUpdateOne {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to SLAAlert entities.
func (_u *ClientRequestUpdateOne) RemoveAlerts(v ...*SLAAlert) *ClientRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// Where appends a list predicates to the ClientRequestUpdate builder.
func (_u *ClientRequestUpdateOne) Where(ps ...predicate.ClientRequest) *ClientRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientRequestUpdateOne) Select(field string, fields ...string) *ClientRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientRequest entity.
func (_u *ClientRequestUpdateOne) Save(ctx context.Context) (*ClientRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientRequestUpdateOne) SaveX(ctx context.Context) *ClientRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Classification(); ok {
		if err := clientrequest.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ClientRequest.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clientrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClientRequest.status": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClientRequest.chat"`)
	}
	return nil
}

func (_u *ClientRequestUpdateOne) sqlSave(ctx context.Context) (_node *ClientRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientrequest.Table, clientrequest.Columns, sqlgraph.NewFieldSpec(clientrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClientRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientrequest.FieldID)
		for _, f := range fields {
			if !clientrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clientrequest.FieldID {
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
	if value, ok := _u.mutation.ClientUsername(); ok {
		_spec.SetField(clientrequest.FieldClientUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(clientrequest.FieldClientID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClientID(); ok {
		_spec.AddField(clientrequest.FieldClientID, field.TypeInt64, value)
	}
	if _u.mutation.ClientIDCleared() {
		_spec.ClearField(clientrequest.FieldClientID, field.TypeInt64)
	}
	if value, ok := _u.mutation.MessageText(); ok {
		_spec.SetField(clientrequest.FieldMessageText, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(clientrequest.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMessageID(); ok {
		_spec.AddField(clientrequest.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(clientrequest.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(clientrequest.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(clientrequest.FieldClassification, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clientrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SLABreached(); ok {
		_spec.SetField(clientrequest.FieldSLABreached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseMessageID(); ok {
		_spec.SetField(clientrequest.FieldResponseMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMessageID(); ok {
		_spec.AddField(clientrequest.FieldResponseMessageID, field.TypeInt64, value)
	}
	if _u.mutation.ResponseMessageIDCleared() {
		_spec.ClearField(clientrequest.FieldResponseMessageID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ResponseTimeMinutes(); ok {
		_spec.SetField(clientrequest.FieldResponseTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMinutes(); ok {
		_spec.AddField(clientrequest.FieldResponseTimeMinutes, field.TypeInt, value)
	}
	if _u.mutation.ResponseTimeMinutesCleared() {
		_spec.ClearField(clientrequest.FieldResponseTimeMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(clientrequest.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(clientrequest.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clientrequest.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clientrequest.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ChatCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientrequest.ChatTable,
			Columns: []string{clientrequest.ChatColumn},
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
			Table:   clientrequest.ChatTable,
			Columns: []string{clientrequest.ChatColumn},
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
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientrequest.AlertsTable,
			Columns: []string{clientrequest.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slaalert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientrequest.AlertsTable,
			Columns: []string{clientrequest.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slaalert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientrequest.AlertsTable,
			Columns: []string{clientrequest.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(slaalert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClientRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
