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
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/slaalert"
)

// ClientRequestCreate is the builder for creating a ClientRequest entity.
type ClientRequestCreate struct {
	config
	mutation *ClientRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatID sets the "chat_id" field.
func (_c *ClientRequestCreate) SetChatID(v int64) *ClientRequestCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetClientUsername sets the "client_username" field.
func (_c *ClientRequestCreate) SetClientUsername(v string) *ClientRequestCreate {
	_c.mutation.SetClientUsername(v)
	return _c
}

// SetNillableClientUsername sets the "client_username" field if the given value is not nil.
func (_c *ClientRequestCreate) SetNillableClientUsername(v *string) *ClientRequestCreate {
	if v != nil {
		_c.SetClientUsername(*v)
	}
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ClientRequestCreate) SetClientID(v int64) *ClientRequestCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_c *ClientRequestCreate) SetNillableClientID(v *int64) *ClientRequestCreate {
	if v != nil {
		_c.SetClientID(*v)
	}
	return _c
}

// SetMessageText sets the "message_text" field.
func (_c *ClientRequestCreate) SetMessageText(v string) *ClientRequestCreate {
	_c.mutation.SetMessageText(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *ClientRequestCreate) SetMessageID(v int64) *ClientRequestCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *ClientRequestCreate) SetThreadID(v string) *ClientRequestCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_c *ClientRequestCreate) SetNillableThreadID(v *string) *ClientRequestCreate {
	if v != nil {
		_c.SetThreadID(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *ClientRequestCreate) SetClassification(v clientrequest.Classification) *ClientRequestCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *ClientRequestCreate) SetReceivedAt(v time.Time) *ClientRequestCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClientRequestCreate) SetStatus(v clientrequest.Status) *ClientRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClientRequestCreate) SetNillableStatus(v *clientrequest.Status) *ClientRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSLABreached sets the "sla_breached" field.
func (_c *ClientRequestCreate) SetSLABreached(v bool) *ClientRequestCreate {
	_c.mutation.SetSLABreached(v)
	return _c
}

// SetNillableSLABreached sets the "sla_breached" field if the given value is not nil.
func (_c *ClientRequestCreate) SetNillableSLABreached(v *bool) *ClientRequestCreate {
	if v != nil {
		_c.SetSLABreached(*v)
	}
	return _c
}

// SetResponseMessageID sets the "response_message_id" field.
func (_c *ClientRequestCreate) SetResponseMessageID(v int64) *ClientRequestCreate {
	_c.mutation.SetResponseMessageID(v)
	return _c
}

// SetNillableResponseMessageID sets the "response_message_id" field if the given value is not nil.
func (_c *ClientRequestCreate) SetNillableResponseMessageID(v *int64) *ClientRequestCreate {
	if v != nil {
		_c.SetResponseMessageID(*v)
	}
	return _c
}

// SetResponseTimeMinutes sets the "response_time_minutes" field.
func (_c *ClientRequestCreate) SetResponseTimeMinutes(v int) *ClientRequestCreate {
	_c.mutation.SetResponseTimeMinutes(v)
	return _c
}

// SetNillableResponseTimeMinutes sets the "response_time_minutes" field if the given value is not nil.
func (_c *ClientRequestCreate) SetNillableResponseTimeMinutes(v *int) *ClientRequestCreate {
	if v != nil {
		_c.SetResponseTimeMinutes(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *ClientRequestCreate) SetAnsweredAt(v time.Time) *ClientRequestCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *ClientRequestCreate) SetNillableAnsweredAt(v *time.Time) *ClientRequestCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ClientRequestCreate) SetDeletedAt(v time.Time) *ClientRequestCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ClientRequestCreate) SetNillableDeletedAt(v *time.Time) *ClientRequestCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClientRequestCreate) SetID(v string) *ClientRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *ClientRequestCreate) SetChat(v *Chat) *ClientRequestCreate {
	return _c.SetChatID(v.ID)
}

// AddAlertIDs adds the "alerts" edge to the SLAAlert entity by IDs.
func (_c *ClientRequestCreate) AddAlertIDs(ids ...string) *ClientRequestCreate {
	_c.mutation.AddAlertIDs(ids...)
	return _c
}

// AddAlerts adds the "alerts" edges to the SLAAlert entity.
func (_c *ClientRequestCreate) AddAlerts(v ...*SLAAlert) *ClientRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertIDs(ids...)
}

// Mutation returns the ClientRequestMutation object of the builder.
func (_c *ClientRequestCreate) Mutation() *ClientRequestMutation {
	return _c.mutation
}

// Save creates the ClientRequest in the database.
func (_c *ClientRequestCreate) Save(ctx context.Context) (*ClientRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientRequestCreate) SaveX(ctx context.Context) *ClientRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientRequestCreate) defaults() {
	if _, ok := _c.mutation.ClientUsername(); !ok {
		v := clientrequest.DefaultClientUsername
		_c.mutation.SetClientUsername(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := clientrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SLABreached(); !ok {
		v := clientrequest.DefaultSLABreached
		_c.mutation.SetSLABreached(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientRequestCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "ClientRequest.chat_id"`)}
	}
	if _, ok := _c.mutation.ClientUsername(); !ok {
		return &ValidationError{Name: "client_username", err: errors.New(`ent: missing required field "ClientRequest.client_username"`)}
	}
	if _, ok := _c.mutation.MessageText(); !ok {
		return &ValidationError{Name: "message_text", err: errors.New(`ent: missing required field "ClientRequest.message_text"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "ClientRequest.message_id"`)}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "ClientRequest.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := clientrequest.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ClientRequest.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "ClientRequest.received_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ClientRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := clientrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClientRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SLABreached(); !ok {
		return &ValidationError{Name: "sla_breached", err: errors.New(`ent: missing required field "ClientRequest.sla_breached"`)}
	}
	if len(_c.mutation.ChatIDs()) == 0 {
		return &ValidationError{Name: "chat", err: errors.New(`ent: missing required edge "ClientRequest.chat"`)}
	}
	return nil
}

func (_c *ClientRequestCreate) sqlSave(ctx context.Context) (*ClientRequest, error) {
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
			return nil, fmt.Errorf("unexpected ClientRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClientRequestCreate) createSpec() (*ClientRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientrequest.Table, sqlgraph.NewFieldSpec(clientrequest.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ClientUsername(); ok {
		_spec.SetField(clientrequest.FieldClientUsername, field.TypeString, value)
		_node.ClientUsername = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(clientrequest.FieldClientID, field.TypeInt64, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.MessageText(); ok {
		_spec.SetField(clientrequest.FieldMessageText, field.TypeString, value)
		_node.MessageText = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(clientrequest.FieldMessageID, field.TypeInt64, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(clientrequest.FieldThreadID, field.TypeString, value)
		_node.ThreadID = &value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(clientrequest.FieldClassification, field.TypeEnum, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(clientrequest.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(clientrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SLABreached(); ok {
		_spec.SetField(clientrequest.FieldSLABreached, field.TypeBool, value)
		_node.SLABreached = value
	}
	if value, ok := _c.mutation.ResponseMessageID(); ok {
		_spec.SetField(clientrequest.FieldResponseMessageID, field.TypeInt64, value)
		_node.ResponseMessageID = &value
	}
	if value, ok := _c.mutation.ResponseTimeMinutes(); ok {
		_spec.SetField(clientrequest.FieldResponseTimeMinutes, field.TypeInt, value)
		_node.ResponseTimeMinutes = &value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(clientrequest.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(clientrequest.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
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
		_node.ChatID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientRequest.Create().
//		SetChatID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientRequestUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientRequestCreate) OnConflict(opts ...sql.ConflictOption) *ClientRequestUpsertOne {
	_c.conflict = opts
	return &ClientRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientRequestCreate) OnConflictColumns(columns ...string) *ClientRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientRequestUpsertOne{
		create: _c,
	}
}

type (
	// ClientRequestUpsertOne is the builder for "upsert"-ing
	//  one ClientRequest node.
	ClientRequestUpsertOne struct {
		create *ClientRequestCreate
	}

	// ClientRequestUpsert is the "OnConflict" setter.
	ClientRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetChatID sets the "chat_id" field.
func (u *ClientRequestUpsert) SetChatID(v int64) *ClientRequestUpsert {
	u.Set(clientrequest.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateChatID() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldChatID)
	return u
}

// SetClientUsername sets the "client_username" field.
func (u *ClientRequestUpsert) SetClientUsername(v string) *ClientRequestUpsert {
	u.Set(clientrequest.FieldClientUsername, v)
	return u
}

// UpdateClientUsername sets the "client_username" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateClientUsername() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldClientUsername)
	return u
}

// SetClientID sets the "client_id" field.
func (u *ClientRequestUpsert) SetClientID(v int64) *ClientRequestUpsert {
	u.Set(clientrequest.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateClientID() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldClientID)
	return u
}

// AddClientID adds v to the "client_id" field.
func (u *ClientRequestUpsert) AddClientID(v int64) *ClientRequestUpsert {
	u.Add(clientrequest.FieldClientID, v)
	return u
}

// ClearClientID clears the value of the "client_id" field.
func (u *ClientRequestUpsert) ClearClientID() *ClientRequestUpsert {
	u.SetNull(clientrequest.FieldClientID)
	return u
}

// SetMessageText sets the "message_text" field.
func (u *ClientRequestUpsert) SetMessageText(v string) *ClientRequestUpsert {
	u.Set(clientrequest.FieldMessageText, v)
	return u
}

// UpdateMessageText sets the "message_text" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateMessageText() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldMessageText)
	return u
}

// SetMessageID sets the "message_id" field.
func (u *ClientRequestUpsert) SetMessageID(v int64) *ClientRequestUpsert {
	u.Set(clientrequest.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateMessageID() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldMessageID)
	return u
}

// AddMessageID adds v to the "message_id" field.
func (u *ClientRequestUpsert) AddMessageID(v int64) *ClientRequestUpsert {
	u.Add(clientrequest.FieldMessageID, v)
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *ClientRequestUpsert) SetThreadID(v string) *ClientRequestUpsert {
	u.Set(clientrequest.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateThreadID() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldThreadID)
	return u
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *ClientRequestUpsert) ClearThreadID() *ClientRequestUpsert {
	u.SetNull(clientrequest.FieldThreadID)
	return u
}

// SetClassification sets the "classification" field.
func (u *ClientRequestUpsert) SetClassification(v clientrequest.Classification) *ClientRequestUpsert {
	u.Set(clientrequest.FieldClassification, v)
	return u
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateClassification() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldClassification)
	return u
}

// SetStatus sets the "status" field.
func (u *ClientRequestUpsert) SetStatus(v clientrequest.Status) *ClientRequestUpsert {
	u.Set(clientrequest.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateStatus() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldStatus)
	return u
}

// SetSLABreached sets the "sla_breached" field.
func (u *ClientRequestUpsert) SetSLABreached(v bool) *ClientRequestUpsert {
	u.Set(clientrequest.FieldSLABreached, v)
	return u
}

// UpdateSLABreached sets the "sla_breached" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateSLABreached() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldSLABreached)
	return u
}

// SetResponseMessageID sets the "response_message_id" field.
func (u *ClientRequestUpsert) SetResponseMessageID(v int64) *ClientRequestUpsert {
	u.Set(clientrequest.FieldResponseMessageID, v)
	return u
}

// UpdateResponseMessageID sets the "response_message_id" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateResponseMessageID() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldResponseMessageID)
	return u
}

// AddResponseMessageID adds v to the "response_message_id" field.
func (u *ClientRequestUpsert) AddResponseMessageID(v int64) *ClientRequestUpsert {
	u.Add(clientrequest.FieldResponseMessageID, v)
	return u
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (u *ClientRequestUpsert) ClearResponseMessageID() *ClientRequestUpsert {
	u.SetNull(clientrequest.FieldResponseMessageID)
	return u
}

// SetResponseTimeMinutes sets the "response_time_minutes" field.
func (u *ClientRequestUpsert) SetResponseTimeMinutes(v int) *ClientRequestUpsert {
	u.Set(clientrequest.FieldResponseTimeMinutes, v)
	return u
}

// UpdateResponseTimeMinutes sets the "response_time_minutes" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateResponseTimeMinutes() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldResponseTimeMinutes)
	return u
}

// AddResponseTimeMinutes adds v to the "response_time_minutes" field.
func (u *ClientRequestUpsert) AddResponseTimeMinutes(v int) *ClientRequestUpsert {
	u.Add(clientrequest.FieldResponseTimeMinutes, v)
	return u
}

// ClearResponseTimeMinutes clears the value of the "response_time_minutes" field.
func (u *ClientRequestUpsert) ClearResponseTimeMinutes() *ClientRequestUpsert {
	u.SetNull(clientrequest.FieldResponseTimeMinutes)
	return u
}

// SetAnsweredAt sets the "answered_at" field.
func (u *ClientRequestUpsert) SetAnsweredAt(v time.Time) *ClientRequestUpsert {
	u.Set(clientrequest.FieldAnsweredAt, v)
	return u
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateAnsweredAt() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldAnsweredAt)
	return u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *ClientRequestUpsert) ClearAnsweredAt() *ClientRequestUpsert {
	u.SetNull(clientrequest.FieldAnsweredAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClientRequestUpsert) SetDeletedAt(v time.Time) *ClientRequestUpsert {
	u.Set(clientrequest.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClientRequestUpsert) UpdateDeletedAt() *ClientRequestUpsert {
	u.SetExcluded(clientrequest.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClientRequestUpsert) ClearDeletedAt() *ClientRequestUpsert {
	u.SetNull(clientrequest.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClientRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientRequestUpsertOne) UpdateNewValues() *ClientRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clientrequest.FieldID)
		}
		if _, exists := u.create.mutation.ReceivedAt(); exists {
			s.SetIgnore(clientrequest.FieldReceivedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClientRequestUpsertOne) Ignore() *ClientRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientRequestUpsertOne) DoNothing() *ClientRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientRequestCreate.OnConflict
// documentation for more info.
func (u *ClientRequestUpsertOne) Update(set func(*ClientRequestUpsert)) *ClientRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *ClientRequestUpsertOne) SetChatID(v int64) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateChatID() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateChatID()
	})
}

// SetClientUsername sets the "client_username" field.
func (u *ClientRequestUpsertOne) SetClientUsername(v string) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetClientUsername(v)
	})
}

// UpdateClientUsername sets the "client_username" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateClientUsername() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateClientUsername()
	})
}

// SetClientID sets the "client_id" field.
func (u *ClientRequestUpsertOne) SetClientID(v int64) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetClientID(v)
	})
}

// AddClientID adds v to the "client_id" field.
func (u *ClientRequestUpsertOne) AddClientID(v int64) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.AddClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateClientID() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateClientID()
	})
}

// ClearClientID clears the value of the "client_id" field.
func (u *ClientRequestUpsertOne) ClearClientID() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearClientID()
	})
}

// SetMessageText sets the "message_text" field.
func (u *ClientRequestUpsertOne) SetMessageText(v string) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetMessageText(v)
	})
}

// UpdateMessageText sets the "message_text" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateMessageText() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateMessageText()
	})
}

// SetMessageID sets the "message_id" field.
func (u *ClientRequestUpsertOne) SetMessageID(v int64) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetMessageID(v)
	})
}

// AddMessageID adds v to the "message_id" field.
func (u *ClientRequestUpsertOne) AddMessageID(v int64) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.AddMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateMessageID() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateMessageID()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *ClientRequestUpsertOne) SetThreadID(v string) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateThreadID() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *ClientRequestUpsertOne) ClearThreadID() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearThreadID()
	})
}

// SetClassification sets the "classification" field.
func (u *ClientRequestUpsertOne) SetClassification(v clientrequest.Classification) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateClassification() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateClassification()
	})
}

// SetStatus sets the "status" field.
func (u *ClientRequestUpsertOne) SetStatus(v clientrequest.Status) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateStatus() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateStatus()
	})
}

// SetSLABreached sets the "sla_breached" field.
func (u *ClientRequestUpsertOne) SetSLABreached(v bool) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetSLABreached(v)
	})
}

// UpdateSLABreached sets the "sla_breached" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateSLABreached() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateSLABreached()
	})
}

// SetResponseMessageID sets the "response_message_id" field.
func (u *ClientRequestUpsertOne) SetResponseMessageID(v int64) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetResponseMessageID(v)
	})
}

// AddResponseMessageID adds v to the "response_message_id" field.
func (u *ClientRequestUpsertOne) AddResponseMessageID(v int64) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.AddResponseMessageID(v)
	})
}

// UpdateResponseMessageID sets the "response_message_id" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateResponseMessageID() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateResponseMessageID()
	})
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (u *ClientRequestUpsertOne) ClearResponseMessageID() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearResponseMessageID()
	})
}

// SetResponseTimeMinutes sets the "response_time_minutes" field.
func (u *ClientRequestUpsertOne) SetResponseTimeMinutes(v int) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetResponseTimeMinutes(v)
	})
}

// AddResponseTimeMinutes adds v to the "response_time_minutes" field.
func (u *ClientRequestUpsertOne) AddResponseTimeMinutes(v int) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.AddResponseTimeMinutes(v)
	})
}

// UpdateResponseTimeMinutes sets the "response_time_minutes" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateResponseTimeMinutes() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateResponseTimeMinutes()
	})
}

// ClearResponseTimeMinutes clears the value of the "response_time_minutes" field.
func (u *ClientRequestUpsertOne) ClearResponseTimeMinutes() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearResponseTimeMinutes()
	})
}

// SetAnsweredAt sets the "answered_at" field.
func (u *ClientRequestUpsertOne) SetAnsweredAt(v time.Time) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetAnsweredAt(v)
	})
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateAnsweredAt() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateAnsweredAt()
	})
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *ClientRequestUpsertOne) ClearAnsweredAt() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearAnsweredAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClientRequestUpsertOne) SetDeletedAt(v time.Time) *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClientRequestUpsertOne) UpdateDeletedAt() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClientRequestUpsertOne) ClearDeletedAt() *ClientRequestUpsertOne {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ClientRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClientRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClientRequestUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ClientRequestUpsertOne.ID is not supported by MySQL driver. Use ClientRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClientRequestUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClientRequestCreateBulk is the builder for creating many ClientRequest entities in bulk.
type ClientRequestCreateBulk struct {
	config
	err      error
	builders []*ClientRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the ClientRequest entities in the database.
func (_c *ClientRequestCreateBulk) Save(ctx context.Context) ([]*ClientRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientRequestMutation)
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
func (_c *ClientRequestCreateBulk) SaveX(ctx context.Context) []*ClientRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientRequestUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClientRequestUpsertBulk {
	_c.conflict = opts
	return &ClientRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientRequestCreateBulk) OnConflictColumns(columns ...string) *ClientRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientRequestUpsertBulk{
		create: _c,
	}
}

// ClientRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of ClientRequest nodes.
type ClientRequestUpsertBulk struct {
	create *ClientRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClientRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientRequestUpsertBulk) UpdateNewValues() *ClientRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clientrequest.FieldID)
			}
			if _, exists := b.mutation.ReceivedAt(); exists {
				s.SetIgnore(clientrequest.FieldReceivedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClientRequestUpsertBulk) Ignore() *ClientRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientRequestUpsertBulk) DoNothing() *ClientRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientRequestCreateBulk.OnConflict
// documentation for more info.
func (u *ClientRequestUpsertBulk) Update(set func(*ClientRequestUpsert)) *ClientRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *ClientRequestUpsertBulk) SetChatID(v int64) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateChatID() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateChatID()
	})
}

// SetClientUsername sets the "client_username" field.
func (u *ClientRequestUpsertBulk) SetClientUsername(v string) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetClientUsername(v)
	})
}

// UpdateClientUsername sets the "client_username" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateClientUsername() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateClientUsername()
	})
}

// SetClientID sets the "client_id" field.
func (u *ClientRequestUpsertBulk) SetClientID(v int64) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetClientID(v)
	})
}

// AddClientID adds v to the "client_id" field.
func (u *ClientRequestUpsertBulk) AddClientID(v int64) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.AddClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateClientID() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateClientID()
	})
}

// ClearClientID clears the value of the "client_id" field.
func (u *ClientRequestUpsertBulk) ClearClientID() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearClientID()
	})
}

// SetMessageText sets the "message_text" field.
func (u *ClientRequestUpsertBulk) SetMessageText(v string) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetMessageText(v)
	})
}

// UpdateMessageText sets the "message_text" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateMessageText() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateMessageText()
	})
}

// SetMessageID sets the "message_id" field.
func (u *ClientRequestUpsertBulk) SetMessageID(v int64) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetMessageID(v)
	})
}

// AddMessageID adds v to the "message_id" field.
func (u *ClientRequestUpsertBulk) AddMessageID(v int64) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.AddMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateMessageID() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateMessageID()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *ClientRequestUpsertBulk) SetThreadID(v string) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateThreadID() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *ClientRequestUpsertBulk) ClearThreadID() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearThreadID()
	})
}

// SetClassification sets the "classification" field.
func (u *ClientRequestUpsertBulk) SetClassification(v clientrequest.Classification) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateClassification() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateClassification()
	})
}

// SetStatus sets the "status" field.
func (u *ClientRequestUpsertBulk) SetStatus(v clientrequest.Status) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateStatus() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateStatus()
	})
}

// SetSLABreached sets the "sla_breached" field.
func (u *ClientRequestUpsertBulk) SetSLABreached(v bool) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetSLABreached(v)
	})
}

// UpdateSLABreached sets the "sla_breached" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateSLABreached() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateSLABreached()
	})
}

// SetResponseMessageID sets the "response_message_id" field.
func (u *ClientRequestUpsertBulk) SetResponseMessageID(v int64) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetResponseMessageID(v)
	})
}

// AddResponseMessageID adds v to the "response_message_id" field.
func (u *ClientRequestUpsertBulk) AddResponseMessageID(v int64) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.AddResponseMessageID(v)
	})
}

// UpdateResponseMessageID sets the "response_message_id" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateResponseMessageID() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateResponseMessageID()
	})
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (u *ClientRequestUpsertBulk) ClearResponseMessageID() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearResponseMessageID()
	})
}

// SetResponseTimeMinutes sets the "response_time_minutes" field.
func (u *ClientRequestUpsertBulk) SetResponseTimeMinutes(v int) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetResponseTimeMinutes(v)
	})
}

// AddResponseTimeMinutes adds v to the "response_time_minutes" field.
func (u *ClientRequestUpsertBulk) AddResponseTimeMinutes(v int) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.AddResponseTimeMinutes(v)
	})
}

// UpdateResponseTimeMinutes sets the "response_time_minutes" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateResponseTimeMinutes() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateResponseTimeMinutes()
	})
}

// ClearResponseTimeMinutes clears the value of the "response_time_minutes" field.
func (u *ClientRequestUpsertBulk) ClearResponseTimeMinutes() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearResponseTimeMinutes()
	})
}

// SetAnsweredAt sets the "answered_at" field.
func (u *ClientRequestUpsertBulk) SetAnsweredAt(v time.Time) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetAnsweredAt(v)
	})
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateAnsweredAt() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateAnsweredAt()
	})
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *ClientRequestUpsertBulk) ClearAnsweredAt() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearAnsweredAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClientRequestUpsertBulk) SetDeletedAt(v time.Time) *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClientRequestUpsertBulk) UpdateDeletedAt() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClientRequestUpsertBulk) ClearDeletedAt() *ClientRequestUpsertBulk {
	return u.Update(func(s *ClientRequestUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ClientRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ClientRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClientRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
