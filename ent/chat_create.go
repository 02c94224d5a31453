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
	"github.com/teambuh/slamon/ent/chatmessage"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/feedbackresponse"
)

// ChatCreate is the builder for creating a Chat entity.
type ChatCreate struct {
	config
	mutation *ChatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *ChatCreate) SetTitle(v string) *ChatCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ChatCreate) SetNillableTitle(v *string) *ChatCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetChatType sets the "chat_type" field.
func (_c *ChatCreate) SetChatType(v chat.ChatType) *ChatCreate {
	_c.mutation.SetChatType(v)
	return _c
}

// SetNillableChatType sets the "chat_type" field if the given value is not nil.
func (_c *ChatCreate) SetNillableChatType(v *chat.ChatType) *ChatCreate {
	if v != nil {
		_c.SetChatType(*v)
	}
	return _c
}

// SetSLAEnabled sets the "sla_enabled" field.
func (_c *ChatCreate) SetSLAEnabled(v bool) *ChatCreate {
	_c.mutation.SetSLAEnabled(v)
	return _c
}

// SetNillableSLAEnabled sets the "sla_enabled" field if the given value is not nil.
func (_c *ChatCreate) SetNillableSLAEnabled(v *bool) *ChatCreate {
	if v != nil {
		_c.SetSLAEnabled(*v)
	}
	return _c
}

// SetSLAThresholdMinutes sets the "sla_threshold_minutes" field.
func (_c *ChatCreate) SetSLAThresholdMinutes(v int) *ChatCreate {
	_c.mutation.SetSLAThresholdMinutes(v)
	return _c
}

// SetNillableSLAThresholdMinutes sets the "sla_threshold_minutes" field if the given value is not nil.
func (_c *ChatCreate) SetNillableSLAThresholdMinutes(v *int) *ChatCreate {
	if v != nil {
		_c.SetSLAThresholdMinutes(*v)
	}
	return _c
}

// SetMonitoringEnabled sets the "monitoring_enabled" field.
func (_c *ChatCreate) SetMonitoringEnabled(v bool) *ChatCreate {
	_c.mutation.SetMonitoringEnabled(v)
	return _c
}

// SetNillableMonitoringEnabled sets the "monitoring_enabled" field if the given value is not nil.
func (_c *ChatCreate) SetNillableMonitoringEnabled(v *bool) *ChatCreate {
	if v != nil {
		_c.SetMonitoringEnabled(*v)
	}
	return _c
}

// SetIs24x7 sets the "is_24x7" field.
func (_c *ChatCreate) SetIs24x7(v bool) *ChatCreate {
	_c.mutation.SetIs24x7(v)
	return _c
}

// SetNillableIs24x7 sets the "is_24x7" field if the given value is not nil.
func (_c *ChatCreate) SetNillableIs24x7(v *bool) *ChatCreate {
	if v != nil {
		_c.SetIs24x7(*v)
	}
	return _c
}

// SetManagerIds sets the "manager_ids" field.
func (_c *ChatCreate) SetManagerIds(v []string) *ChatCreate {
	_c.mutation.SetManagerIds(v)
	return _c
}

// SetAccountantIds sets the "accountant_ids" field.
func (_c *ChatCreate) SetAccountantIds(v []string) *ChatCreate {
	_c.mutation.SetAccountantIds(v)
	return _c
}

// SetNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field.
func (_c *ChatCreate) SetNotifyInChatOnBreach(v bool) *ChatCreate {
	_c.mutation.SetNotifyInChatOnBreach(v)
	return _c
}

// SetNillableNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field if the given value is not nil.
func (_c *ChatCreate) SetNillableNotifyInChatOnBreach(v *bool) *ChatCreate {
	if v != nil {
		_c.SetNotifyInChatOnBreach(*v)
	}
	return _c
}

// SetClientTier sets the "client_tier" field.
func (_c *ChatCreate) SetClientTier(v chat.ClientTier) *ChatCreate {
	_c.mutation.SetClientTier(v)
	return _c
}

// SetNillableClientTier sets the "client_tier" field if the given value is not nil.
func (_c *ChatCreate) SetNillableClientTier(v *chat.ClientTier) *ChatCreate {
	if v != nil {
		_c.SetClientTier(*v)
	}
	return _c
}

// SetInviteURL sets the "invite_url" field.
func (_c *ChatCreate) SetInviteURL(v string) *ChatCreate {
	_c.mutation.SetInviteURL(v)
	return _c
}

// SetNillableInviteURL sets the "invite_url" field if the given value is not nil.
func (_c *ChatCreate) SetNillableInviteURL(v *string) *ChatCreate {
	if v != nil {
		_c.SetInviteURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatCreate) SetCreatedAt(v time.Time) *ChatCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatCreate) SetNillableCreatedAt(v *time.Time) *ChatCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatCreate) SetUpdatedAt(v time.Time) *ChatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatCreate) SetNillableUpdatedAt(v *time.Time) *ChatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ChatCreate) SetDeletedAt(v time.Time) *ChatCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ChatCreate) SetNillableDeletedAt(v *time.Time) *ChatCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatCreate) SetID(v int64) *ChatCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRequestIDs adds the "requests" edge to the ClientRequest entity by IDs.
func (_c *ChatCreate) AddRequestIDs(ids ...string) *ChatCreate {
	_c.mutation.AddRequestIDs(ids...)
	return _c
}

// AddRequests adds the "requests" edges to the ClientRequest entity.
func (_c *ChatCreate) AddRequests(v ...*ClientRequest) *ChatCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRequestIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_c *ChatCreate) AddMessageIDs(ids ...string) *ChatCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_c *ChatCreate) AddMessages(v ...*ChatMessage) *ChatCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the FeedbackResponse entity by IDs.
func (_c *ChatCreate) AddFeedbackIDs(ids ...string) *ChatCreate {
	_c.mutation.AddFeedbackIDs(ids...)
	return _c
}

// AddFeedback adds the "feedback" edges to the FeedbackResponse entity.
func (_c *ChatCreate) AddFeedback(v ...*FeedbackResponse) *ChatCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeedbackIDs(ids...)
}

// AddInvitationIDs adds the "invitations" edge to the ChatInvitation entity by IDs.
func (_c *ChatCreate) AddInvitationIDs(ids ...string) *ChatCreate {
	_c.mutation.AddInvitationIDs(ids...)
	return _c
}

// AddInvitations adds the "invitations" edges to the ChatInvitation entity.
func (_c *ChatCreate) AddInvitations(v ...*ChatInvitation) *ChatCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvitationIDs(ids...)
}

// Mutation returns the ChatMutation object of the builder.
func (_c *ChatCreate) Mutation() *ChatMutation {
	return _c.mutation
}

// Save creates the Chat in the database.
func (_c *ChatCreate) Save(ctx context.Context) (*Chat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatCreate) SaveX(ctx context.Context) *Chat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := chat.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.ChatType(); !ok {
		v := chat.DefaultChatType
		_c.mutation.SetChatType(v)
	}
	if _, ok := _c.mutation.SLAEnabled(); !ok {
		v := chat.DefaultSLAEnabled
		_c.mutation.SetSLAEnabled(v)
	}
	if _, ok := _c.mutation.MonitoringEnabled(); !ok {
		v := chat.DefaultMonitoringEnabled
		_c.mutation.SetMonitoringEnabled(v)
	}
	if _, ok := _c.mutation.Is24x7(); !ok {
		v := chat.DefaultIs24x7
		_c.mutation.SetIs24x7(v)
	}
	if _, ok := _c.mutation.NotifyInChatOnBreach(); !ok {
		v := chat.DefaultNotifyInChatOnBreach
		_c.mutation.SetNotifyInChatOnBreach(v)
	}
	if _, ok := _c.mutation.ClientTier(); !ok {
		v := chat.DefaultClientTier
		_c.mutation.SetClientTier(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chat.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Chat.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := chat.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Chat.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChatType(); !ok {
		return &ValidationError{Name: "chat_type", err: errors.New(`ent: missing required field "Chat.chat_type"`)}
	}
	if v, ok := _c.mutation.ChatType(); ok {
		if err := chat.ChatTypeValidator(v); err != nil {
			return &ValidationError{Name: "chat_type", err: fmt.Errorf(`ent: validator failed for field "Chat.chat_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SLAEnabled(); !ok {
		return &ValidationError{Name: "sla_enabled", err: errors.New(`ent: missing required field "Chat.sla_enabled"`)}
	}
	if v, ok := _c.mutation.SLAThresholdMinutes(); ok {
		if err := chat.SLAThresholdMinutesValidator(v); err != nil {
			return &ValidationError{Name: "sla_threshold_minutes", err: fmt.Errorf(`ent: validator failed for field "Chat.sla_threshold_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MonitoringEnabled(); !ok {
		return &ValidationError{Name: "monitoring_enabled", err: errors.New(`ent: missing required field "Chat.monitoring_enabled"`)}
	}
	if _, ok := _c.mutation.Is24x7(); !ok {
		return &ValidationError{Name: "is_24x7", err: errors.New(`ent: missing required field "Chat.is_24x7"`)}
	}
	if _, ok := _c.mutation.NotifyInChatOnBreach(); !ok {
		return &ValidationError{Name: "notify_in_chat_on_breach", err: errors.New(`ent: missing required field "Chat.notify_in_chat_on_breach"`)}
	}
	if _, ok := _c.mutation.ClientTier(); !ok {
		return &ValidationError{Name: "client_tier", err: errors.New(`ent: missing required field "Chat.client_tier"`)}
	}
	if v, ok := _c.mutation.ClientTier(); ok {
		if err := chat.ClientTierValidator(v); err != nil {
			return &ValidationError{Name: "client_tier", err: fmt.Errorf(`ent: validator failed for field "Chat.client_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Chat.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Chat.updated_at"`)}
	}
	return nil
}

func (_c *ChatCreate) sqlSave(ctx context.Context) (*Chat, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatCreate) createSpec() (*Chat, *sqlgraph.CreateSpec) {
	var (
		_node = &Chat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chat.Table, sqlgraph.NewFieldSpec(chat.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(chat.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ChatType(); ok {
		_spec.SetField(chat.FieldChatType, field.TypeEnum, value)
		_node.ChatType = value
	}
	if value, ok := _c.mutation.SLAEnabled(); ok {
		_spec.SetField(chat.FieldSLAEnabled, field.TypeBool, value)
		_node.SLAEnabled = value
	}
	if value, ok := _c.mutation.SLAThresholdMinutes(); ok {
		_spec.SetField(chat.FieldSLAThresholdMinutes, field.TypeInt, value)
		_node.SLAThresholdMinutes = &value
	}
	if value, ok := _c.mutation.MonitoringEnabled(); ok {
		_spec.SetField(chat.FieldMonitoringEnabled, field.TypeBool, value)
		_node.MonitoringEnabled = value
	}
	if value, ok := _c.mutation.Is24x7(); ok {
		_spec.SetField(chat.FieldIs24x7, field.TypeBool, value)
		_node.Is24x7 = value
	}
	if value, ok := _c.mutation.ManagerIds(); ok {
		_spec.SetField(chat.FieldManagerIds, field.TypeJSON, value)
		_node.ManagerIds = value
	}
	if value, ok := _c.mutation.AccountantIds(); ok {
		_spec.SetField(chat.FieldAccountantIds, field.TypeJSON, value)
		_node.AccountantIds = value
	}
	if value, ok := _c.mutation.NotifyInChatOnBreach(); ok {
		_spec.SetField(chat.FieldNotifyInChatOnBreach, field.TypeBool, value)
		_node.NotifyInChatOnBreach = value
	}
	if value, ok := _c.mutation.ClientTier(); ok {
		_spec.SetField(chat.FieldClientTier, field.TypeEnum, value)
		_node.ClientTier = value
	}
	if value, ok := _c.mutation.InviteURL(); ok {
		_spec.SetField(chat.FieldInviteURL, field.TypeString, value)
		_node.InviteURL = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chat.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(chat.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.RequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chat.RequestsTable,
			Columns: []string{chat.RequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chat.MessagesTable,
			Columns: []string{chat.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeedbackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chat.FeedbackTable,
			Columns: []string{chat.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackresponse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InvitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chat.InvitationsTable,
			Columns: []string{chat.InvitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatinvitation.FieldID, field.TypeString),
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
//	client.Chat.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatCreate) OnConflict(opts ...sql.ConflictOption) *ChatUpsertOne {
	_c.conflict = opts
	return &ChatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatCreate) OnConflictColumns(columns ...string) *ChatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatUpsertOne{
		create: _c,
	}
}

type (
	// ChatUpsertOne is the builder for "upsert"-ing
	//  one Chat node.
	ChatUpsertOne struct {
		create *ChatCreate
	}

	// ChatUpsert is the "OnConflict" setter.
	ChatUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ChatUpsert) SetTitle(v string) *ChatUpsert {
	u.Set(chat.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChatUpsert) UpdateTitle() *ChatUpsert {
	u.SetExcluded(chat.FieldTitle)
	return u
}

// SetChatType sets the "chat_type" field.
func (u *ChatUpsert) SetChatType(v chat.ChatType) *ChatUpsert {
	u.Set(chat.FieldChatType, v)
	return u
}

// UpdateChatType sets the "chat_type" field to the value that was provided on create.
func (u *ChatUpsert) UpdateChatType() *ChatUpsert {
	u.SetExcluded(chat.FieldChatType)
	return u
}

// SetSLAEnabled sets the "sla_enabled" field.
func (u *ChatUpsert) SetSLAEnabled(v bool) *ChatUpsert {
	u.Set(chat.FieldSLAEnabled, v)
	return u
}

// UpdateSLAEnabled sets the "sla_enabled" field to the value that was provided on create.
func (u *ChatUpsert) UpdateSLAEnabled() *ChatUpsert {
	u.SetExcluded(chat.FieldSLAEnabled)
	return u
}

// SetSLAThresholdMinutes sets the "sla_threshold_minutes" field.
func (u *ChatUpsert) SetSLAThresholdMinutes(v int) *ChatUpsert {
	u.Set(chat.FieldSLAThresholdMinutes, v)
	return u
}

// UpdateSLAThresholdMinutes sets the "sla_threshold_minutes" field to the value that was provided on create.
func (u *ChatUpsert) UpdateSLAThresholdMinutes() *ChatUpsert {
	u.SetExcluded(chat.FieldSLAThresholdMinutes)
	return u
}

// AddSLAThresholdMinutes adds v to the "sla_threshold_minutes" field.
func (u *ChatUpsert) AddSLAThresholdMinutes(v int) *ChatUpsert {
	u.Add(chat.FieldSLAThresholdMinutes, v)
	return u
}

// ClearSLAThresholdMinutes clears the value of the "sla_threshold_minutes" field.
func (u *ChatUpsert) ClearSLAThresholdMinutes() *ChatUpsert {
	u.SetNull(chat.FieldSLAThresholdMinutes)
	return u
}

// SetMonitoringEnabled sets the "monitoring_enabled" field.
func (u *ChatUpsert) SetMonitoringEnabled(v bool) *ChatUpsert {
	u.Set(chat.FieldMonitoringEnabled, v)
	return u
}

// UpdateMonitoringEnabled sets the "monitoring_enabled" field to the value that was provided on create.
func (u *ChatUpsert) UpdateMonitoringEnabled() *ChatUpsert {
	u.SetExcluded(chat.FieldMonitoringEnabled)
	return u
}

// SetIs24x7 sets the "is_24x7" field.
func (u *ChatUpsert) SetIs24x7(v bool) *ChatUpsert {
	u.Set(chat.FieldIs24x7, v)
	return u
}

// UpdateIs24x7 sets the "is_24x7" field to the value that was provided on create.
func (u *ChatUpsert) UpdateIs24x7() *ChatUpsert {
	u.SetExcluded(chat.FieldIs24x7)
	return u
}

// SetManagerIds sets the "manager_ids" field.
func (u *ChatUpsert) SetManagerIds(v []string) *ChatUpsert {
	u.Set(chat.FieldManagerIds, v)
	return u
}

// UpdateManagerIds sets the "manager_ids" field to the value that was provided on create.
func (u *ChatUpsert) UpdateManagerIds() *ChatUpsert {
	u.SetExcluded(chat.FieldManagerIds)
	return u
}

// ClearManagerIds clears the value of the "manager_ids" field.
func (u *ChatUpsert) ClearManagerIds() *ChatUpsert {
	u.SetNull(chat.FieldManagerIds)
	return u
}

// SetAccountantIds sets the "accountant_ids" field.
func (u *ChatUpsert) SetAccountantIds(v []string) *ChatUpsert {
	u.Set(chat.FieldAccountantIds, v)
	return u
}

// UpdateAccountantIds sets the "accountant_ids" field to the value that was provided on create.
func (u *ChatUpsert) UpdateAccountantIds() *ChatUpsert {
	u.SetExcluded(chat.FieldAccountantIds)
	return u
}

// ClearAccountantIds clears the value of the "accountant_ids" field.
func (u *ChatUpsert) ClearAccountantIds() *ChatUpsert {
	u.SetNull(chat.FieldAccountantIds)
	return u
}

// SetNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field.
func (u *ChatUpsert) SetNotifyInChatOnBreach(v bool) *ChatUpsert {
	u.Set(chat.FieldNotifyInChatOnBreach, v)
	return u
}

// UpdateNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field to the value that was provided on create.
func (u *ChatUpsert) UpdateNotifyInChatOnBreach() *ChatUpsert {
	u.SetExcluded(chat.FieldNotifyInChatOnBreach)
	return u
}

// SetClientTier sets the "client_tier" field.
func (u *ChatUpsert) SetClientTier(v chat.ClientTier) *ChatUpsert {
	u.Set(chat.FieldClientTier, v)
	return u
}

// UpdateClientTier sets the "client_tier" field to the value that was provided on create.
func (u *ChatUpsert) UpdateClientTier() *ChatUpsert {
	u.SetExcluded(chat.FieldClientTier)
	return u
}

// SetInviteURL sets the "invite_url" field.
func (u *ChatUpsert) SetInviteURL(v string) *ChatUpsert {
	u.Set(chat.FieldInviteURL, v)
	return u
}

// UpdateInviteURL sets the "invite_url" field to the value that was provided on create.
func (u *ChatUpsert) UpdateInviteURL() *ChatUpsert {
	u.SetExcluded(chat.FieldInviteURL)
	return u
}

// ClearInviteURL clears the value of the "invite_url" field.
func (u *ChatUpsert) ClearInviteURL() *ChatUpsert {
	u.SetNull(chat.FieldInviteURL)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatUpsert) SetUpdatedAt(v time.Time) *ChatUpsert {
	u.Set(chat.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatUpsert) UpdateUpdatedAt() *ChatUpsert {
	u.SetExcluded(chat.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ChatUpsert) SetDeletedAt(v time.Time) *ChatUpsert {
	u.Set(chat.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ChatUpsert) UpdateDeletedAt() *ChatUpsert {
	u.SetExcluded(chat.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ChatUpsert) ClearDeletedAt() *ChatUpsert {
	u.SetNull(chat.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatUpsertOne) UpdateNewValues() *ChatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chat.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chat.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatUpsertOne) Ignore() *ChatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatUpsertOne) DoNothing() *ChatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatCreate.OnConflict
// documentation for more info.
func (u *ChatUpsertOne) Update(set func(*ChatUpsert)) *ChatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ChatUpsertOne) SetTitle(v string) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateTitle() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateTitle()
	})
}

// SetChatType sets the "chat_type" field.
func (u *ChatUpsertOne) SetChatType(v chat.ChatType) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetChatType(v)
	})
}

// UpdateChatType sets the "chat_type" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateChatType() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateChatType()
	})
}

// SetSLAEnabled sets the "sla_enabled" field.
func (u *ChatUpsertOne) SetSLAEnabled(v bool) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetSLAEnabled(v)
	})
}

// UpdateSLAEnabled sets the "sla_enabled" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateSLAEnabled() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateSLAEnabled()
	})
}

// SetSLAThresholdMinutes sets the "sla_threshold_minutes" field.
func (u *ChatUpsertOne) SetSLAThresholdMinutes(v int) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetSLAThresholdMinutes(v)
	})
}

// AddSLAThresholdMinutes adds v to the "sla_threshold_minutes" field.
func (u *ChatUpsertOne) AddSLAThresholdMinutes(v int) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.AddSLAThresholdMinutes(v)
	})
}

// UpdateSLAThresholdMinutes sets the "sla_threshold_minutes" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateSLAThresholdMinutes() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateSLAThresholdMinutes()
	})
}

// ClearSLAThresholdMinutes clears the value of the "sla_threshold_minutes" field.
func (u *ChatUpsertOne) ClearSLAThresholdMinutes() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.ClearSLAThresholdMinutes()
	})
}

// SetMonitoringEnabled sets the "monitoring_enabled" field.
func (u *ChatUpsertOne) SetMonitoringEnabled(v bool) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetMonitoringEnabled(v)
	})
}

// UpdateMonitoringEnabled sets the "monitoring_enabled" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateMonitoringEnabled() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateMonitoringEnabled()
	})
}

// SetIs24x7 sets the "is_24x7" field.
func (u *ChatUpsertOne) SetIs24x7(v bool) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetIs24x7(v)
	})
}

// UpdateIs24x7 sets the "is_24x7" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateIs24x7() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateIs24x7()
	})
}

// SetManagerIds sets the "manager_ids" field.
func (u *ChatUpsertOne) SetManagerIds(v []string) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetManagerIds(v)
	})
}

// UpdateManagerIds sets the "manager_ids" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateManagerIds() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateManagerIds()
	})
}

// ClearManagerIds clears the value of the "manager_ids" field.
func (u *ChatUpsertOne) ClearManagerIds() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.ClearManagerIds()
	})
}

// SetAccountantIds sets the "accountant_ids" field.
func (u *ChatUpsertOne) SetAccountantIds(v []string) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetAccountantIds(v)
	})
}

// UpdateAccountantIds sets the "accountant_ids" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateAccountantIds() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateAccountantIds()
	})
}

// ClearAccountantIds clears the value of the "accountant_ids" field.
func (u *ChatUpsertOne) ClearAccountantIds() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.ClearAccountantIds()
	})
}

// SetNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field.
func (u *ChatUpsertOne) SetNotifyInChatOnBreach(v bool) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetNotifyInChatOnBreach(v)
	})
}

// UpdateNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateNotifyInChatOnBreach() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateNotifyInChatOnBreach()
	})
}

// SetClientTier sets the "client_tier" field.
func (u *ChatUpsertOne) SetClientTier(v chat.ClientTier) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetClientTier(v)
	})
}

// UpdateClientTier sets the "client_tier" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateClientTier() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateClientTier()
	})
}

// SetInviteURL sets the "invite_url" field.
func (u *ChatUpsertOne) SetInviteURL(v string) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetInviteURL(v)
	})
}

// UpdateInviteURL sets the "invite_url" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateInviteURL() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateInviteURL()
	})
}

// ClearInviteURL clears the value of the "invite_url" field.
func (u *ChatUpsertOne) ClearInviteURL() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.ClearInviteURL()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatUpsertOne) SetUpdatedAt(v time.Time) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateUpdatedAt() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ChatUpsertOne) SetDeletedAt(v time.Time) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateDeletedAt() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ChatUpsertOne) ClearDeletedAt() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ChatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatCreateBulk is the builder for creating many Chat entities in bulk.
type ChatCreateBulk struct {
	config
	err      error
	builders []*ChatCreate
	conflict []sql.ConflictOption
}

// Save creates the Chat entities in the database.
func (_c *ChatCreateBulk) Save(ctx context.Context) ([]*Chat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *ChatCreateBulk) SaveX(ctx context.Context) []*Chat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Chat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatUpsertBulk {
	_c.conflict = opts
	return &ChatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatCreateBulk) OnConflictColumns(columns ...string) *ChatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatUpsertBulk{
		create: _c,
	}
}

// ChatUpsertBulk is the builder for "upsert"-ing
// a bulk of Chat nodes.
type ChatUpsertBulk struct {
	create *ChatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatUpsertBulk) UpdateNewValues() *ChatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chat.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chat.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatUpsertBulk) Ignore() *ChatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatUpsertBulk) DoNothing() *ChatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatCreateBulk.OnConflict
// documentation for more info.
func (u *ChatUpsertBulk) Update(set func(*ChatUpsert)) *ChatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ChatUpsertBulk) SetTitle(v string) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateTitle() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateTitle()
	})
}

// SetChatType sets the "chat_type" field.
func (u *ChatUpsertBulk) SetChatType(v chat.ChatType) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetChatType(v)
	})
}

// UpdateChatType sets the "chat_type" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateChatType() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateChatType()
	})
}

// SetSLAEnabled sets the "sla_enabled" field.
func (u *ChatUpsertBulk) SetSLAEnabled(v bool) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetSLAEnabled(v)
	})
}

// UpdateSLAEnabled sets the "sla_enabled" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateSLAEnabled() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateSLAEnabled()
	})
}

// SetSLAThresholdMinutes sets the "sla_threshold_minutes" field.
func (u *ChatUpsertBulk) SetSLAThresholdMinutes(v int) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetSLAThresholdMinutes(v)
	})
}

// AddSLAThresholdMinutes adds v to the "sla_threshold_minutes" field.
func (u *ChatUpsertBulk) AddSLAThresholdMinutes(v int) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.AddSLAThresholdMinutes(v)
	})
}

// UpdateSLAThresholdMinutes sets the "sla_threshold_minutes" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateSLAThresholdMinutes() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateSLAThresholdMinutes()
	})
}

// ClearSLAThresholdMinutes clears the value of the "sla_threshold_minutes" field.
func (u *ChatUpsertBulk) ClearSLAThresholdMinutes() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.ClearSLAThresholdMinutes()
	})
}

// SetMonitoringEnabled sets the "monitoring_enabled" field.
func (u *ChatUpsertBulk) SetMonitoringEnabled(v bool) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetMonitoringEnabled(v)
	})
}

// UpdateMonitoringEnabled sets the "monitoring_enabled" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateMonitoringEnabled() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateMonitoringEnabled()
	})
}

// SetIs24x7 sets the "is_24x7" field.
func (u *ChatUpsertBulk) SetIs24x7(v bool) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetIs24x7(v)
	})
}

// UpdateIs24x7 sets the "is_24x7" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateIs24x7() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateIs24x7()
	})
}

// SetManagerIds sets the "manager_ids" field.
func (u *ChatUpsertBulk) SetManagerIds(v []string) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetManagerIds(v)
	})
}

// UpdateManagerIds sets the "manager_ids" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateManagerIds() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateManagerIds()
	})
}

// ClearManagerIds clears the value of the "manager_ids" field.
func (u *ChatUpsertBulk) ClearManagerIds() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.ClearManagerIds()
	})
}

// SetAccountantIds sets the "accountant_ids" field.
func (u *ChatUpsertBulk) SetAccountantIds(v []string) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetAccountantIds(v)
	})
}

// UpdateAccountantIds sets the "accountant_ids" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateAccountantIds() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateAccountantIds()
	})
}

// ClearAccountantIds clears the value of the "accountant_ids" field.
func (u *ChatUpsertBulk) ClearAccountantIds() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.ClearAccountantIds()
	})
}

// SetNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field.
func (u *ChatUpsertBulk) SetNotifyInChatOnBreach(v bool) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetNotifyInChatOnBreach(v)
	})
}

// UpdateNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateNotifyInChatOnBreach() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateNotifyInChatOnBreach()
	})
}

// SetClientTier sets the "client_tier" field.
func (u *ChatUpsertBulk) SetClientTier(v chat.ClientTier) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetClientTier(v)
	})
}

// UpdateClientTier sets the "client_tier" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateClientTier() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateClientTier()
	})
}

// SetInviteURL sets the "invite_url" field.
func (u *ChatUpsertBulk) SetInviteURL(v string) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetInviteURL(v)
	})
}

// UpdateInviteURL sets the "invite_url" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateInviteURL() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateInviteURL()
	})
}

// ClearInviteURL clears the value of the "invite_url" field.
func (u *ChatUpsertBulk) ClearInviteURL() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.ClearInviteURL()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatUpsertBulk) SetUpdatedAt(v time.Time) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateUpdatedAt() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ChatUpsertBulk) SetDeletedAt(v time.Time) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateDeletedAt() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ChatUpsertBulk) ClearDeletedAt() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ChatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
