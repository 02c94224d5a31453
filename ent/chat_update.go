// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/chatinvitation"
	"github.com/teambuh/slamon/ent/chatmessage"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/feedbackresponse"
	"github.com/teambuh/slamon/ent/predicate"
)

// ChatUpdate is the builder for updating Chat entities.
type ChatUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMutation
}

// Where appends a list predicates to the ChatUpdate builder.
func (_u *ChatUpdate) Where(ps ...predicate.Chat) *ChatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChatUpdate) SetTitle(v string) *ChatUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableTitle(v *string) *ChatUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetChatType sets the "chat_type" field.
func (_u *ChatUpdate) SetChatType(v chat.ChatType) *ChatUpdate {
	_u.mutation.SetChatType(v)
	return _u
}

// SetNillableChatType sets the "chat_type" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableChatType(v *chat.ChatType) *ChatUpdate {
	if v != nil {
		_u.SetChatType(*v)
	}
	return _u
}

// SetSLAEnabled sets the "sla_enabled" field.
func (_u *ChatUpdate) SetSLAEnabled(v bool) *ChatUpdate {
	_u.mutation.SetSLAEnabled(v)
	return _u
}

// SetNillableSLAEnabled sets the "sla_enabled" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableSLAEnabled(v *bool) *ChatUpdate {
	if v != nil {
		_u.SetSLAEnabled(*v)
	}
	return _u
}

// SetSLAThresholdMinutes sets the "sla_threshold_minutes" field.
func (_u *ChatUpdate) SetSLAThresholdMinutes(v int) *ChatUpdate {
	_u.mutation.ResetSLAThresholdMinutes()
	_u.mutation.SetSLAThresholdMinutes(v)
	return _u
}

// SetNillableSLAThresholdMinutes sets the "sla_threshold_minutes" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableSLAThresholdMinutes(v *int) *ChatUpdate {
	if v != nil {
		_u.SetSLAThresholdMinutes(*v)
	}
	return _u
}

// AddSLAThresholdMinutes adds value to the "sla_threshold_minutes" field.
func (_u *ChatUpdate) AddSLAThresholdMinutes(v int) *ChatUpdate {
	_u.mutation.AddSLAThresholdMinutes(v)
	return _u
}

// ClearSLAThresholdMinutes clears the value of the "sla_threshold_minutes" field.
func (_u *ChatUpdate) ClearSLAThresholdMinutes() *ChatUpdate {
	_u.mutation.ClearSLAThresholdMinutes()
	return _u
}

// SetMonitoringEnabled sets the "monitoring_enabled" field.
func (_u *ChatUpdate) SetMonitoringEnabled(v bool) *ChatUpdate {
	_u.mutation.SetMonitoringEnabled(v)
	return _u
}

// SetNillableMonitoringEnabled sets the "monitoring_enabled" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableMonitoringEnabled(v *bool) *ChatUpdate {
	if v != nil {
		_u.SetMonitoringEnabled(*v)
	}
	return _u
}

// SetIs24x7 sets the "is_24x7" field.
func (_u *ChatUpdate) SetIs24x7(v bool) *ChatUpdate {
	_u.mutation.SetIs24x7(v)
	return _u
}

// SetNillableIs24x7 sets the "is_24x7" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableIs24x7(v *bool) *ChatUpdate {
	if v != nil {
		_u.SetIs24x7(*v)
	}
	return _u
}

// SetManagerIds sets the "manager_ids" field.
func (_u *ChatUpdate) SetManagerIds(v []string) *ChatUpdate {
	_u.mutation.SetManagerIds(v)
	return _u
}

// AppendManagerIds appends value to the "manager_ids" field.
func (_u *ChatUpdate) AppendManagerIds(v []string) *ChatUpdate {
	_u.mutation.AppendManagerIds(v)
	return _u
}

// ClearManagerIds clears the value of the "manager_ids" field.
func (_u *ChatUpdate) ClearManagerIds() *ChatUpdate {
	_u.mutation.ClearManagerIds()
	return _u
}

// SetAccountantIds sets the "accountant_ids" field.
func (_u *ChatUpdate) SetAccountantIds(v []string) *ChatUpdate {
	_u.mutation.SetAccountantIds(v)
	return _u
}

// AppendAccountantIds appends value to the "accountant_ids" field.
func (_u *ChatUpdate) AppendAccountantIds(v []string) *ChatUpdate {
	_u.mutation.AppendAccountantIds(v)
	return _u
}

// ClearAccountantIds clears the value of the "accountant_ids" field.
func (_u *ChatUpdate) ClearAccountantIds() *ChatUpdate {
	_u.mutation.ClearAccountantIds()
	return _u
}

// SetNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field.
func (_u *ChatUpdate) SetNotifyInChatOnBreach(v bool) *ChatUpdate {
	_u.mutation.SetNotifyInChatOnBreach(v)
	return _u
}

// SetNillableNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableNotifyInChatOnBreach(v *bool) *ChatUpdate {
	if v != nil {
		_u.SetNotifyInChatOnBreach(*v)
	}
	return _u
}

// SetClientTier sets the "client_tier" field.
func (_u *ChatUpdate) SetClientTier(v chat.ClientTier) *ChatUpdate {
	_u.mutation.SetClientTier(v)
	return _u
}

// SetNillableClientTier sets the "client_tier" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableClientTier(v *chat.ClientTier) *ChatUpdate {
	if v != nil {
		_u.SetClientTier(*v)
	}
	return _u
}

// SetInviteURL sets the "invite_url" field.
func (_u *ChatUpdate) SetInviteURL(v string) *ChatUpdate {
	_u.mutation.SetInviteURL(v)
	return _u
}

// SetNillableInviteURL sets the "invite_url" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableInviteURL(v *string) *ChatUpdate {
	if v != nil {
		_u.SetInviteURL(*v)
	}
	return _u
}

// ClearInviteURL clears the value of the "invite_url" field.
func (_u *ChatUpdate) ClearInviteURL() *ChatUpdate {
	_u.mutation.ClearInviteURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatUpdate) SetUpdatedAt(v time.Time) *ChatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ChatUpdate) SetDeletedAt(v time.Time) *ChatUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableDeletedAt(v *time.Time) *ChatUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ChatUpdate) ClearDeletedAt() *ChatUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddRequestIDs adds the "requests" edge to the ClientRequest entity by IDs.
func (_u *ChatUpdate) AddRequestIDs(ids ...string) *ChatUpdate {
	_u.mutation.AddRequestIDs(ids...)
	return _u
}

// AddRequests adds the "requests" edges to the ClientRequest entity.
func (_u *ChatUpdate) AddRequests(v ...*ClientRequest) *ChatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequestIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChatUpdate) AddMessageIDs(ids ...string) *ChatUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChatUpdate) AddMessages(v ...*ChatMessage) *ChatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the FeedbackResponse entity by IDs.
func (_u *ChatUpdate) AddFeedbackIDs(ids ...string) *ChatUpdate {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the FeedbackResponse entity.
func (_u *ChatUpdate) AddFeedback(v ...*FeedbackResponse) *ChatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// AddInvitationIDs adds the "invitations" edge to the ChatInvitation entity by IDs.
func (_u *ChatUpdate) AddInvitationIDs(ids ...string) *ChatUpdate {
	_u.mutation.AddInvitationIDs(ids...)
	return _u
}

// AddInvitations adds the "invitations" edges to the ChatInvitation entity.
func (_u *ChatUpdate) AddInvitations(v ...*ChatInvitation) *ChatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvitationIDs(ids...)
}

// Mutation returns the ChatMutation object of the builder.
func (_u *ChatUpdate) Mutation() *ChatMutation {
	return _u.mutation
}

// ClearRequests clears all "requests" edges to the ClientRequest entity.
func (_u *ChatUpdate) ClearRequests() *ChatUpdate {
	_u.mutation.ClearRequests()
	return _u
}

// RemoveRequestIDs removes the "requests" edge to ClientRequest entities by IDs.
func (_u *ChatUpdate) RemoveRequestIDs(ids ...string) *ChatUpdate {
	_u.mutation.RemoveRequestIDs(ids...)
	return _u
}

// RemoveRequests removes "requests" edges to ClientRequest entities.
func (_u *ChatUpdate) RemoveRequests(v ...*ClientRequest) *ChatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequestIDs(ids...)
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChatUpdate) ClearMessages() *ChatUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChatUpdate) RemoveMessageIDs(ids ...string) *ChatUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChatUpdate) RemoveMessages(v ...*ChatMessage) *ChatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearFeedback clears all "feedback" edges to the FeedbackResponse entity.
func (_u *ChatUpdate) ClearFeedback() *ChatUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to FeedbackResponse entities by IDs.
func (_u *ChatUpdate) RemoveFeedbackIDs(ids ...string) *ChatUpdate {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to FeedbackResponse entities.
func (_u *ChatUpdate) RemoveFeedback(v ...*FeedbackResponse) *ChatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// ClearInvitations clears all "invitations" edges to the ChatInvitation entity.
func (_u *ChatUpdate) ClearInvitations() *ChatUpdate {
	_u.mutation.ClearInvitations()
	return _u
}

// RemoveInvitationIDs removes the "invitations" edge to ChatInvitation entities by IDs.
func (_u *ChatUpdate) RemoveInvitationIDs(ids ...string) *ChatUpdate {
	_u.mutation.RemoveInvitationIDs(ids...)
	return _u
}

// RemoveInvitations removes "invitations" edges to ChatInvitation entities.
func (_u *ChatUpdate) RemoveInvitations(v ...*ChatInvitation) *ChatUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := chat.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Chat.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChatType(); ok {
		if err := chat.ChatTypeValidator(v); err != nil {
			return &ValidationError{Name: "chat_type", err: fmt.Errorf(`ent: validator failed for field "Chat.chat_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SLAThresholdMinutes(); ok {
		if err := chat.SLAThresholdMinutesValidator(v); err != nil {
			return &ValidationError{Name: "sla_threshold_minutes", err: fmt.Errorf(`ent: validator failed for field "Chat.sla_threshold_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientTier(); ok {
		if err := chat.ClientTierValidator(v); err != nil {
			return &ValidationError{Name: "client_tier", err: fmt.Errorf(`ent: validator failed for field "Chat.client_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chat.Table, chat.Columns, sqlgraph.NewFieldSpec(chat.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chat.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChatType(); ok {
		_spec.SetField(chat.FieldChatType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SLAEnabled(); ok {
		_spec.SetField(chat.FieldSLAEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SLAThresholdMinutes(); ok {
		_spec.SetField(chat.FieldSLAThresholdMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSLAThresholdMinutes(); ok {
		_spec.AddField(chat.FieldSLAThresholdMinutes, field.TypeInt, value)
	}
	if _u.mutation.SLAThresholdMinutesCleared() {
		_spec.ClearField(chat.FieldSLAThresholdMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.MonitoringEnabled(); ok {
		_spec.SetField(chat.FieldMonitoringEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Is24x7(); ok {
		_spec.SetField(chat.FieldIs24x7, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ManagerIds(); ok {
		_spec.SetField(chat.FieldManagerIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedManagerIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chat.FieldManagerIds, value)
		})
	}
	if _u.mutation.ManagerIdsCleared() {
		_spec.ClearField(chat.FieldManagerIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.AccountantIds(); ok {
		_spec.SetField(chat.FieldAccountantIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAccountantIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chat.FieldAccountantIds, value)
		})
	}
	if _u.mutation.AccountantIdsCleared() {
		_spec.ClearField(chat.FieldAccountantIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotifyInChatOnBreach(); ok {
		_spec.SetField(chat.FieldNotifyInChatOnBreach, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClientTier(); ok {
		_spec.SetField(chat.FieldClientTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InviteURL(); ok {
		_spec.SetField(chat.FieldInviteURL, field.TypeString, value)
	}
	if _u.mutation.InviteURLCleared() {
		_spec.ClearField(chat.FieldInviteURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chat.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(chat.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(chat.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.RequestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequestsIDs(); len(nodes) > 0 && !_u.mutation.RequestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvitationsIDs(); len(nodes) > 0 && !_u.mutation.InvitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatUpdateOne is the builder for updating a single Chat entity.
type ChatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMutation
}

// SetTitle sets the "title" field.
func (_u *ChatUpdateOne) SetTitle(v string) *ChatUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableTitle(v *string) *ChatUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetChatType sets the "chat_type" field.
func (_u *ChatUpdateOne) SetChatType(v chat.ChatType) *ChatUpdateOne {
	_u.mutation.SetChatType(v)
	return _u
}

// SetNillableChatType sets the "chat_type" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableChatType(v *chat.ChatType) *ChatUpdateOne {
	if v != nil {
		_u.SetChatType(*v)
	}
	return _u
}

// SetSLAEnabled sets the "sla_enabled" field.
func (_u *ChatUpdateOne) SetSLAEnabled(v bool) *ChatUpdateOne {
	_u.mutation.SetSLAEnabled(v)
	return _u
}

// SetNillableSLAEnabled sets the "sla_enabled" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableSLAEnabled(v *bool) *ChatUpdateOne {
	if v != nil {
		_u.SetSLAEnabled(*v)
	}
	return _u
}

// SetSLAThresholdMinutes sets the "sla_threshold_minutes" field.
func (_u *ChatUpdateOne) SetSLAThresholdMinutes(v int) *ChatUpdateOne {
	_u.mutation.ResetSLAThresholdMinutes()
	_u.mutation.SetSLAThresholdMinutes(v)
	return _u
}

// SetNillableSLAThresholdMinutes sets the "sla_threshold_minutes" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableSLAThresholdMinutes(v *int) *ChatUpdateOne {
	if v != nil {
		_u.SetSLAThresholdMinutes(*v)
	}
	return _u
}

// AddSLAThresholdMinutes adds value to the "sla_threshold_minutes" field.
func (_u *ChatUpdateOne) AddSLAThresholdMinutes(v int) *ChatUpdateOne {
	_u.mutation.AddSLAThresholdMinutes(v)
	return _u
}

// ClearSLAThresholdMinutes clears the value of the "sla_threshold_minutes" field.
func (_u *ChatUpdateOne) ClearSLAThresholdMinutes() *ChatUpdateOne {
	_u.mutation.ClearSLAThresholdMinutes()
	return _u
}

// SetMonitoringEnabled sets the "monitoring_enabled" field.
func (_u *ChatUpdateOne) SetMonitoringEnabled(v bool) *ChatUpdateOne {
	_u.mutation.SetMonitoringEnabled(v)
	return _u
}

// SetNillableMonitoringEnabled sets the "monitoring_enabled" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableMonitoringEnabled(v *bool) *ChatUpdateOne {
	if v != nil {
		_u.SetMonitoringEnabled(*v)
	}
	return _u
}

// SetIs24x7 sets the "is_24x7" field.
func (_u *ChatUpdateOne) SetIs24x7(v bool) *ChatUpdateOne {
	_u.mutation.SetIs24x7(v)
	return _u
}

// SetNillableIs24x7 sets the "is_24x7" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableIs24x7(v *bool) *ChatUpdateOne {
	if v != nil {
		_u.SetIs24x7(*v)
	}
	return _u
}

// SetManagerIds sets the "manager_ids" field.
func (_u *ChatUpdateOne) SetManagerIds(v []string) *ChatUpdateOne {
	_u.mutation.SetManagerIds(v)
	return _u
}

// AppendManagerIds appends value to the "manager_ids" field.
func (_u *ChatUpdateOne) AppendManagerIds(v []string) *ChatUpdateOne {
	_u.mutation.AppendManagerIds(v)
	return _u
}

// ClearManagerIds clears the value of the "manager_ids" field.
func (_u *ChatUpdateOne) ClearManagerIds() *ChatUpdateOne {
	_u.mutation.ClearManagerIds()
	return _u
}

// SetAccountantIds sets the "accountant_ids" field.
func (_u *ChatUpdateOne) SetAccountantIds(v []string) *ChatUpdateOne {
	_u.mutation.SetAccountantIds(v)
	return _u
}

// AppendAccountantIds appends value to the "accountant_ids" field.
func (_u *ChatUpdateOne) AppendAccountantIds(v []string) *ChatUpdateOne {
	_u.mutation.AppendAccountantIds(v)
	return _u
}

// ClearAccountantIds clears the value of the "accountant_ids" field.
func (_u *ChatUpdateOne) ClearAccountantIds() *ChatUpdateOne {
	_u.mutation.ClearAccountantIds()
	return _u
}

// SetNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field.
func (_u *ChatUpdateOne) SetNotifyInChatOnBreach(v bool) *ChatUpdateOne {
	_u.mutation.SetNotifyInChatOnBreach(v)
	return _u
}

// SetNillableNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableNotifyInChatOnBreach(v *bool) *ChatUpdateOne {
	if v != nil {
		_u.SetNotifyInChatOnBreach(*v)
	}
	return _u
}

// SetClientTier sets the "client_tier" field.
func (_u *ChatUpdateOne) SetClientTier(v chat.ClientTier) *ChatUpdateOne {
	_u.mutation.SetClientTier(v)
	return _u
}

// SetNillableClientTier sets the "client_tier" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableClientTier(v *chat.ClientTier) *ChatUpdateOne {
	if v != nil {
		_u.SetClientTier(*v)
	}
	return _u
}

// SetInviteURL sets the "invite_url" field.
func (_u *ChatUpdateOne) SetInviteURL(v string) *ChatUpdateOne {
	_u.mutation.SetInviteURL(v)
	return _u
}

// SetNillableInviteURL sets the "invite_url" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableInviteURL(v *string) *ChatUpdateOne {
	if v != nil {
		_u.SetInviteURL(*v)
	}
	return _u
}

// ClearInviteURL clears the value of the "invite_url" field.
func (_u *ChatUpdateOne) ClearInviteURL() *ChatUpdateOne {
	_u.mutation.ClearInviteURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatUpdateOne) SetUpdatedAt(v time.Time) *ChatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ChatUpdateOne) SetDeletedAt(v time.Time) *ChatUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableDeletedAt(v *time.Time) *ChatUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ChatUpdateOne) ClearDeletedAt() *ChatUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddRequestIDs adds the "requests" edge to the ClientRequest entity by IDs.
func (_u *ChatUpdateOne) AddRequestIDs(ids ...string) *ChatUpdateOne {
	_u.mutation.AddRequestIDs(ids...)
	return _u
}

// AddRequests adds the "requests" edges to the ClientRequest entity.
func (_u *ChatUpdateOne) AddRequests(v ...*ClientRequest) *ChatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRequestIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChatUpdateOne) AddMessageIDs(ids ...string) *ChatUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChatUpdateOne) AddMessages(v ...*ChatMessage) *ChatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the FeedbackResponse entity by IDs.
func (_u *ChatUpdateOne) AddFeedbackIDs(ids ...string) *ChatUpdateOne {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the FeedbackResponse entity.
func (_u *ChatUpdateOne) AddFeedback(v ...*FeedbackResponse) *ChatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// AddInvitationIDs adds the "invitations" edge to the ChatInvitation entity by IDs.
func (_u *ChatUpdateOne) AddInvitationIDs(ids ...string) *ChatUpdateOne {
	_u.mutation.AddInvitationIDs(ids...)
	return _u
}

// AddInvitations adds the "invitations" edges to the ChatInvitation entity.
func (_u *ChatUpdateOne) AddInvitations(v ...*ChatInvitation) *ChatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvitationIDs(ids...)
}

// Mutation returns the ChatMutation object of the builder.
func (_u *ChatUpdateOne) Mutation() *ChatMutation {
	return _u.mutation
}

// ClearRequests clears all "requests" edges to the ClientRequest entity.
func (_u *ChatUpdateOne) ClearRequests() *ChatUpdateOne {
	_u.mutation.ClearRequests()
	return _u
}

// RemoveRequestIDs removes the "requests" edge to ClientRequest entities by IDs.
func (_u *ChatUpdateOne) RemoveRequestIDs(ids ...string) *ChatUpdateOne {
	_u.mutation.RemoveRequestIDs(ids...)
	return _u
}

// RemoveRequests removes "requests" edges to ClientRequest entities.
func (_u *ChatUpdateOne) RemoveRequests(v ...*ClientRequest) *ChatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRequestIDs(ids...)
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChatUpdateOne) ClearMessages() *ChatUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChatUpdateOne) RemoveMessageIDs(ids ...string) *ChatUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChatUpdateOne) RemoveMessages(v ...*ChatMessage) *ChatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearFeedback clears all "feedback" edges to the FeedbackResponse entity.
func (_u *ChatUpdateOne) ClearFeedback() *ChatUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to FeedbackResponse entities by IDs.
func (_u *ChatUpdateOne) RemoveFeedbackIDs(ids ...string) *ChatUpdateOne {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to FeedbackResponse entities.
func (_u *ChatUpdateOne) RemoveFeedback(v ...*FeedbackResponse) *ChatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// ClearInvitations clears all "invitations" edges to the ChatInvitation entity.
func (_u *ChatUpdateOne) ClearInvitations() *ChatUpdateOne {
	_u.mutation.ClearInvitations()
	return _u
}

// RemoveInvitationIDs removes the "invitations" edge to ChatInvitation entities by IDs.
func (_u *ChatUpdateOne) RemoveInvitationIDs(ids ...string) *ChatUpdateOne {
	_u.mutation.RemoveInvitationIDs(ids...)
	return _u
}

// RemoveInvitations removes "invitations" edges to ChatInvitation entities.
func (_u *ChatUpdateOne) RemoveInvitations(v ...*ChatInvitation) *ChatUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvitationIDs(ids...)
}

// Where appends a list predicates to the ChatUpdate builder.
func (_u *ChatUpdateOne) Where(ps ...predicate.Chat) *ChatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatUpdateOne) Select(field string, fields ...string) *ChatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chat entity.
func (_u *ChatUpdateOne) Save(ctx context.Context) (*Chat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatUpdateOne) SaveX(ctx context.Context) *Chat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := chat.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Chat.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChatType(); ok {
		if err := chat.ChatTypeValidator(v); err != nil {
			return &ValidationError{Name: "chat_type", err: fmt.Errorf(`ent: validator failed for field "Chat.chat_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SLAThresholdMinutes(); ok {
		if err := chat.SLAThresholdMinutesValidator(v); err != nil {
			return &ValidationError{Name: "sla_threshold_minutes", err: fmt.Errorf(`ent: validator failed for field "Chat.sla_threshold_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientTier(); ok {
		if err := chat.ClientTierValidator(v); err != nil {
			return &ValidationError{Name: "client_tier", err: fmt.Errorf(`ent: validator failed for field "Chat.client_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatUpdateOne) sqlSave(ctx context.Context) (_node *Chat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chat.Table, chat.Columns, sqlgraph.NewFieldSpec(chat.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chat.FieldID)
		for _, f := range fields {
			if !chat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chat.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chat.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChatType(); ok {
		_spec.SetField(chat.FieldChatType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SLAEnabled(); ok {
		_spec.SetField(chat.FieldSLAEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SLAThresholdMinutes(); ok {
		_spec.SetField(chat.FieldSLAThresholdMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSLAThresholdMinutes(); ok {
		_spec.AddField(chat.FieldSLAThresholdMinutes, field.TypeInt, value)
	}
	if _u.mutation.SLAThresholdMinutesCleared() {
		_spec.ClearField(chat.FieldSLAThresholdMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.MonitoringEnabled(); ok {
		_spec.SetField(chat.FieldMonitoringEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Is24x7(); ok {
		_spec.SetField(chat.FieldIs24x7, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ManagerIds(); ok {
		_spec.SetField(chat.FieldManagerIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedManagerIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chat.FieldManagerIds, value)
		})
	}
	if _u.mutation.ManagerIdsCleared() {
		_spec.ClearField(chat.FieldManagerIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.AccountantIds(); ok {
		_spec.SetField(chat.FieldAccountantIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAccountantIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chat.FieldAccountantIds, value)
		})
	}
	if _u.mutation.AccountantIdsCleared() {
		_spec.ClearField(chat.FieldAccountantIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotifyInChatOnBreach(); ok {
		_spec.SetField(chat.FieldNotifyInChatOnBreach, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClientTier(); ok {
		_spec.SetField(chat.FieldClientTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InviteURL(); ok {
		_spec.SetField(chat.FieldInviteURL, field.TypeString, value)
	}
	if _u.mutation.InviteURLCleared() {
		_spec.ClearField(chat.FieldInviteURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chat.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(chat.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(chat.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.RequestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRequestsIDs(); len(nodes) > 0 && !_u.mutation.RequestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvitationsIDs(); len(nodes) > 0 && !_u.mutation.InvitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Chat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
