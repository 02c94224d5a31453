// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/chatinvitation"
	"github.com/teambuh/slamon/ent/chatmessage"
	"github.com/teambuh/slamon/ent/classificationcache"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/faqitem"
	"github.com/teambuh/slamon/ent/feedbackresponse"
	"github.com/teambuh/slamon/ent/globalsettings"
	"github.com/teambuh/slamon/ent/lease"
	"github.com/teambuh/slamon/ent/predicate"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/ent/timerjob"
	"github.com/teambuh/slamon/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChat                = "Chat"
	TypeChatInvitation      = "ChatInvitation"
	TypeChatMessage         = "ChatMessage"
	TypeClassificationCache = "ClassificationCache"
	TypeClientRequest       = "ClientRequest"
	TypeFAQItem             = "FAQItem"
	TypeFeedbackResponse    = "FeedbackResponse"
	TypeGlobalSettings      = "GlobalSettings"
	TypeLease               = "Lease"
	TypeSLAAlert            = "SLAAlert"
	TypeTimerJob            = "TimerJob"
)

// ChatMutation represents an operation that mutates the Chat nodes in the graph.
type ChatMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int64
	title                    *string
	chat_type                *chat.ChatType
	sla_enabled              *bool
	sla_threshold_minutes    *int
	addsla_threshold_minutes *int
	monitoring_enabled       *bool
	is_24x7                  *bool
	manager_ids              *[]string
	appendmanager_ids        []string
	accountant_ids           *[]string
	appendaccountant_ids     []string
	notify_in_chat_on_breach *bool
	client_tier              *chat.ClientTier
	invite_url               *string
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	requests                 map[string]struct{}
	removedrequests          map[string]struct{}
	clearedrequests          bool
	messages                 map[string]struct{}
	removedmessages          map[string]struct{}
	clearedmessages          bool
	feedback                 map[string]struct{}
	removedfeedback          map[string]struct{}
	clearedfeedback          bool
	invitations              map[string]struct{}
	removedinvitations       map[string]struct{}
	clearedinvitations       bool
	done                     bool
	oldValue                 func(context.Context) (*Chat, error)
	predicates               []predicate.Chat
}

var _ ent.Mutation = (*ChatMutation)(nil)

// chatOption allows management of the mutation configuration using functional options.
type chatOption func(*ChatMutation)

// newChatMutation creates new mutation for the Chat entity.
func newChatMutation(c config, op Op, opts ...chatOption) *ChatMutation {
	m := &ChatMutation{
		config:        c,
		op:            op,
		typ:           TypeChat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatID sets the ID field of the mutation.
func withChatID(id int64) chatOption {
	return func(m *ChatMutation) {
		var (
			err   error
			once  sync.Once
			value *Chat
		)
		m.oldValue = func(ctx context.Context) (*Chat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChat sets the old Chat of the mutation.
func withChat(node *Chat) chatOption {
	return func(m *ChatMutation) {
		m.oldValue = func(context.Context) (*Chat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Chat entities.
func (m *ChatMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ChatMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChatMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ChatMutation) ResetTitle() {
	m.title = nil
}

// SetChatType sets the "chat_type" field.
func (m *ChatMutation) SetChatType(ct chat.ChatType) {
	m.chat_type = &ct
}

// ChatType returns the value of the "chat_type" field in the mutation.
func (m *ChatMutation) ChatType() (r chat.ChatType, exists bool) {
	v := m.chat_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChatType returns the old "chat_type" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldChatType(ctx context.Context) (v chat.ChatType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatType: %w", err)
	}
	return oldValue.ChatType, nil
}

// ResetChatType resets all changes to the "chat_type" field.
func (m *ChatMutation) ResetChatType() {
	m.chat_type = nil
}

// SetSLAEnabled sets the "sla_enabled" field.
func (m *ChatMutation) SetSLAEnabled(b bool) {
	m.sla_enabled = &b
}

// SLAEnabled returns the value of the "sla_enabled" field in the mutation.
func (m *ChatMutation) SLAEnabled() (r bool, exists bool) {
	v := m.sla_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldSLAEnabled returns the old "sla_enabled" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldSLAEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSLAEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSLAEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSLAEnabled: %w", err)
	}
	return oldValue.SLAEnabled, nil
}

// ResetSLAEnabled resets all changes to the "sla_enabled" field.
func (m *ChatMutation) ResetSLAEnabled() {
	m.sla_enabled = nil
}

// SetSLAThresholdMinutes sets the "sla_threshold_minutes" field.
func (m *ChatMutation) SetSLAThresholdMinutes(i int) {
	m.sla_threshold_minutes = &i
	m.addsla_threshold_minutes = nil
}

// SLAThresholdMinutes returns the value of the "sla_threshold_minutes" field in the mutation.
func (m *ChatMutation) SLAThresholdMinutes() (r int, exists bool) {
	v := m.sla_threshold_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldSLAThresholdMinutes returns the old "sla_threshold_minutes" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldSLAThresholdMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSLAThresholdMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSLAThresholdMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSLAThresholdMinutes: %w", err)
	}
	return oldValue.SLAThresholdMinutes, nil
}

// AddSLAThresholdMinutes adds i to the "sla_threshold_minutes" field.
func (m *ChatMutation) AddSLAThresholdMinutes(i int) {
	if m.addsla_threshold_minutes != nil {
		*m.addsla_threshold_minutes += i
	} else {
		m.addsla_threshold_minutes = &i
	}
}

// AddedSLAThresholdMinutes returns the value that was added to the "sla_threshold_minutes" field in this mutation.
func (m *ChatMutation) AddedSLAThresholdMinutes() (r int, exists bool) {
	v := m.addsla_threshold_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearSLAThresholdMinutes clears the value of the "sla_threshold_minutes" field.
func (m *ChatMutation) ClearSLAThresholdMinutes() {
	m.sla_threshold_minutes = nil
	m.addsla_threshold_minutes = nil
	m.clearedFields[chat.FieldSLAThresholdMinutes] = struct{}{}
}

// SLAThresholdMinutesCleared returns if the "sla_threshold_minutes" field was cleared in this mutation.
func (m *ChatMutation) SLAThresholdMinutesCleared() bool {
	_, ok := m.clearedFields[chat.FieldSLAThresholdMinutes]
	return ok
}

// ResetSLAThresholdMinutes resets all changes to the "sla_threshold_minutes" field.
func (m *ChatMutation) ResetSLAThresholdMinutes() {
	m.sla_threshold_minutes = nil
	m.addsla_threshold_minutes = nil
	delete(m.clearedFields, chat.FieldSLAThresholdMinutes)
}

// SetMonitoringEnabled sets the "monitoring_enabled" field.
func (m *ChatMutation) SetMonitoringEnabled(b bool) {
	m.monitoring_enabled = &b
}

// MonitoringEnabled returns the value of the "monitoring_enabled" field in the mutation.
func (m *ChatMutation) MonitoringEnabled() (r bool, exists bool) {
	v := m.monitoring_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringEnabled returns the old "monitoring_enabled" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldMonitoringEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringEnabled: %w", err)
	}
	return oldValue.MonitoringEnabled, nil
}

// ResetMonitoringEnabled resets all changes to the "monitoring_enabled" field.
func (m *ChatMutation) ResetMonitoringEnabled() {
	m.monitoring_enabled = nil
}

// SetIs24x7 sets the "is_24x7" field.
func (m *ChatMutation) SetIs24x7(b bool) {
	m.is_24x7 = &b
}

// Is24x7 returns the value of the "is_24x7" field in the mutation.
func (m *ChatMutation) Is24x7() (r bool, exists bool) {
	v := m.is_24x7
	if v == nil {
		return
	}
	return *v, true
}

// OldIs24x7 returns the old "is_24x7" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldIs24x7(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIs24x7 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIs24x7 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIs24x7: %w", err)
	}
	return oldValue.Is24x7, nil
}

// ResetIs24x7 resets all changes to the "is_24x7" field.
func (m *ChatMutation) ResetIs24x7() {
	m.is_24x7 = nil
}

// SetManagerIds sets the "manager_ids" field.
func (m *ChatMutation) SetManagerIds(s []string) {
	m.manager_ids = &s
	m.appendmanager_ids = nil
}

// ManagerIds returns the value of the "manager_ids" field in the mutation.
func (m *ChatMutation) ManagerIds() (r []string, exists bool) {
	v := m.manager_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldManagerIds returns the old "manager_ids" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldManagerIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManagerIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManagerIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManagerIds: %w", err)
	}
	return oldValue.ManagerIds, nil
}

// AppendManagerIds adds s to the "manager_ids" field.
func (m *ChatMutation) AppendManagerIds(s []string) {
	m.appendmanager_ids = append(m.appendmanager_ids, s...)
}

// AppendedManagerIds returns the list of values that were appended to the "manager_ids" field in this mutation.
func (m *ChatMutation) AppendedManagerIds() ([]string, bool) {
	if len(m.appendmanager_ids) == 0 {
		return nil, false
	}
	return m.appendmanager_ids, true
}

// ClearManagerIds clears the value of the "manager_ids" field.
func (m *ChatMutation) ClearManagerIds() {
	m.manager_ids = nil
	m.appendmanager_ids = nil
	m.clearedFields[chat.FieldManagerIds] = struct{}{}
}

// ManagerIdsCleared returns if the "manager_ids" field was cleared in this mutation.
func (m *ChatMutation) ManagerIdsCleared() bool {
	_, ok := m.clearedFields[chat.FieldManagerIds]
	return ok
}

// ResetManagerIds resets all changes to the "manager_ids" field.
func (m *ChatMutation) ResetManagerIds() {
	m.manager_ids = nil
	m.appendmanager_ids = nil
	delete(m.clearedFields, chat.FieldManagerIds)
}

// SetAccountantIds sets the "accountant_ids" field.
func (m *ChatMutation) SetAccountantIds(s []string) {
	m.accountant_ids = &s
	m.appendaccountant_ids = nil
}

// AccountantIds returns the value of the "accountant_ids" field in the mutation.
func (m *ChatMutation) AccountantIds() (r []string, exists bool) {
	v := m.accountant_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountantIds returns the old "accountant_ids" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldAccountantIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountantIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountantIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountantIds: %w", err)
	}
	return oldValue.AccountantIds, nil
}

// AppendAccountantIds adds s to the "accountant_ids" field.
func (m *ChatMutation) AppendAccountantIds(s []string) {
	m.appendaccountant_ids = append(m.appendaccountant_ids, s...)
}

// AppendedAccountantIds returns the list of values that were appended to the "accountant_ids" field in this mutation.
func (m *ChatMutation) AppendedAccountantIds() ([]string, bool) {
	if len(m.appendaccountant_ids) == 0 {
		return nil, false
	}
	return m.appendaccountant_ids, true
}

// ClearAccountantIds clears the value of the "accountant_ids" field.
func (m *ChatMutation) ClearAccountantIds() {
	m.accountant_ids = nil
	m.appendaccountant_ids = nil
	m.clearedFields[chat.FieldAccountantIds] = struct{}{}
}

// AccountantIdsCleared returns if the "accountant_ids" field was cleared in this mutation.
func (m *ChatMutation) AccountantIdsCleared() bool {
	_, ok := m.clearedFields[chat.FieldAccountantIds]
	return ok
}

// ResetAccountantIds resets all changes to the "accountant_ids" field.
func (m *ChatMutation) ResetAccountantIds() {
	m.accountant_ids = nil
	m.appendaccountant_ids = nil
	delete(m.clearedFields, chat.FieldAccountantIds)
}

// SetNotifyInChatOnBreach sets the "notify_in_chat_on_breach" field.
func (m *ChatMutation) SetNotifyInChatOnBreach(b bool) {
	m.notify_in_chat_on_breach = &b
}

// NotifyInChatOnBreach returns the value of the "notify_in_chat_on_breach" field in the mutation.
func (m *ChatMutation) NotifyInChatOnBreach() (r bool, exists bool) {
	v := m.notify_in_chat_on_breach
	if v == nil {
		return
	}
	return *v, true
}

// OldNotifyInChatOnBreach returns the old "notify_in_chat_on_breach" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldNotifyInChatOnBreach(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotifyInChatOnBreach is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotifyInChatOnBreach requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotifyInChatOnBreach: %w", err)
	}
	return oldValue.NotifyInChatOnBreach, nil
}

// ResetNotifyInChatOnBreach resets all changes to the "notify_in_chat_on_breach" field.
func (m *ChatMutation) ResetNotifyInChatOnBreach() {
	m.notify_in_chat_on_breach = nil
}

// SetClientTier sets the "client_tier" field.
func (m *ChatMutation) SetClientTier(ct chat.ClientTier) {
	m.client_tier = &ct
}

// ClientTier returns the value of the "client_tier" field in the mutation.
func (m *ChatMutation) ClientTier() (r chat.ClientTier, exists bool) {
	v := m.client_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldClientTier returns the old "client_tier" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldClientTier(ctx context.Context) (v chat.ClientTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientTier: %w", err)
	}
	return oldValue.ClientTier, nil
}

// ResetClientTier resets all changes to the "client_tier" field.
func (m *ChatMutation) ResetClientTier() {
	m.client_tier = nil
}

// SetInviteURL sets the "invite_url" field.
func (m *ChatMutation) SetInviteURL(s string) {
	m.invite_url = &s
}

// InviteURL returns the value of the "invite_url" field in the mutation.
func (m *ChatMutation) InviteURL() (r string, exists bool) {
	v := m.invite_url
	if v == nil {
		return
	}
	return *v, true
}

// OldInviteURL returns the old "invite_url" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldInviteURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInviteURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInviteURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInviteURL: %w", err)
	}
	return oldValue.InviteURL, nil
}

// ClearInviteURL clears the value of the "invite_url" field.
func (m *ChatMutation) ClearInviteURL() {
	m.invite_url = nil
	m.clearedFields[chat.FieldInviteURL] = struct{}{}
}

// InviteURLCleared returns if the "invite_url" field was cleared in this mutation.
func (m *ChatMutation) InviteURLCleared() bool {
	_, ok := m.clearedFields[chat.FieldInviteURL]
	return ok
}

// ResetInviteURL resets all changes to the "invite_url" field.
func (m *ChatMutation) ResetInviteURL() {
	m.invite_url = nil
	delete(m.clearedFields, chat.FieldInviteURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ChatMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ChatMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ChatMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[chat.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ChatMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[chat.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ChatMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, chat.FieldDeletedAt)
}

// AddRequestIDs adds the "requests" edge to the ClientRequest entity by ids.
func (m *ChatMutation) AddRequestIDs(ids ...string) {
	if m.requests == nil {
		m.requests = make(map[string]struct{})
	}
	for i := range ids {
		m.requests[ids[i]] = struct{}{}
	}
}

// ClearRequests clears the "requests" edge to the ClientRequest entity.
func (m *ChatMutation) ClearRequests() {
	m.clearedrequests = true
}

// RequestsCleared reports if the "requests" edge to the ClientRequest entity was cleared.
func (m *ChatMutation) RequestsCleared() bool {
	return m.clearedrequests
}

// RemoveRequestIDs removes the "requests" edge to the ClientRequest entity by IDs.
func (m *ChatMutation) RemoveRequestIDs(ids ...string) {
	if m.removedrequests == nil {
		m.removedrequests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.requests, ids[i])
		m.removedrequests[ids[i]] = struct{}{}
	}
}

// RemovedRequests returns the removed IDs of the "requests" edge to the ClientRequest entity.
func (m *ChatMutation) RemovedRequestsIDs() (ids []string) {
	for id := range m.removedrequests {
		ids = append(ids, id)
	}
	return
}

// RequestsIDs returns the "requests" edge IDs in the mutation.
func (m *ChatMutation) RequestsIDs() (ids []string) {
	for id := range m.requests {
		ids = append(ids, id)
	}
	return
}

// ResetRequests resets all changes to the "requests" edge.
func (m *ChatMutation) ResetRequests() {
	m.requests = nil
	m.clearedrequests = false
	m.removedrequests = nil
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *ChatMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *ChatMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *ChatMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *ChatMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *ChatMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddFeedbackIDs adds the "feedback" edge to the FeedbackResponse entity by ids.
func (m *ChatMutation) AddFeedbackIDs(ids ...string) {
	if m.feedback == nil {
		m.feedback = make(map[string]struct{})
	}
	for i := range ids {
		m.feedback[ids[i]] = struct{}{}
	}
}

// ClearFeedback clears the "feedback" edge to the FeedbackResponse entity.
func (m *ChatMutation) ClearFeedback() {
	m.clearedfeedback = true
}

// FeedbackCleared reports if the "feedback" edge to the FeedbackResponse entity was cleared.
func (m *ChatMutation) FeedbackCleared() bool {
	return m.clearedfeedback
}

// RemoveFeedbackIDs removes the "feedback" edge to the FeedbackResponse entity by IDs.
func (m *ChatMutation) RemoveFeedbackIDs(ids ...string) {
	if m.removedfeedback == nil {
		m.removedfeedback = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.feedback, ids[i])
		m.removedfeedback[ids[i]] = struct{}{}
	}
}

// RemovedFeedback returns the removed IDs of the "feedback" edge to the FeedbackResponse entity.
func (m *ChatMutation) RemovedFeedbackIDs() (ids []string) {
	for id := range m.removedfeedback {
		ids = append(ids, id)
	}
	return
}

// FeedbackIDs returns the "feedback" edge IDs in the mutation.
func (m *ChatMutation) FeedbackIDs() (ids []string) {
	for id := range m.feedback {
		ids = append(ids, id)
	}
	return
}

// ResetFeedback resets all changes to the "feedback" edge.
func (m *ChatMutation) ResetFeedback() {
	m.feedback = nil
	m.clearedfeedback = false
	m.removedfeedback = nil
}

// AddInvitationIDs adds the "invitations" edge to the ChatInvitation entity by ids.
func (m *ChatMutation) AddInvitationIDs(ids ...string) {
	if m.invitations == nil {
		m.invitations = make(map[string]struct{})
	}
	for i := range ids {
		m.invitations[ids[i]] = struct{}{}
	}
}

// ClearInvitations clears the "invitations" edge to the ChatInvitation entity.
func (m *ChatMutation) ClearInvitations() {
	m.clearedinvitations = true
}

// InvitationsCleared reports if the "invitations" edge to the ChatInvitation entity was cleared.
func (m *ChatMutation) InvitationsCleared() bool {
	return m.clearedinvitations
}

// RemoveInvitationIDs removes the "invitations" edge to the ChatInvitation entity by IDs.
func (m *ChatMutation) RemoveInvitationIDs(ids ...string) {
	if m.removedinvitations == nil {
		m.removedinvitations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.invitations, ids[i])
		m.removedinvitations[ids[i]] = struct{}{}
	}
}

// RemovedInvitations returns the removed IDs of the "invitations" edge to the ChatInvitation entity.
func (m *ChatMutation) RemovedInvitationsIDs() (ids []string) {
	for id := range m.removedinvitations {
		ids = append(ids, id)
	}
	return
}

// InvitationsIDs returns the "invitations" edge IDs in the mutation.
func (m *ChatMutation) InvitationsIDs() (ids []string) {
	for id := range m.invitations {
		ids = append(ids, id)
	}
	return
}

// ResetInvitations resets all changes to the "invitations" edge.
func (m *ChatMutation) ResetInvitations() {
	m.invitations = nil
	m.clearedinvitations = false
	m.removedinvitations = nil
}

// Where appends a list predicates to the ChatMutation builder.
func (m *ChatMutation) Where(ps ...predicate.Chat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chat).
func (m *ChatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.title != nil {
		fields = append(fields, chat.FieldTitle)
	}
	if m.chat_type != nil {
		fields = append(fields, chat.FieldChatType)
	}
	if m.sla_enabled != nil {
		fields = append(fields, chat.FieldSLAEnabled)
	}
	if m.sla_threshold_minutes != nil {
		fields = append(fields, chat.FieldSLAThresholdMinutes)
	}
	if m.monitoring_enabled != nil {
		fields = append(fields, chat.FieldMonitoringEnabled)
	}
	if m.is_24x7 != nil {
		fields = append(fields, chat.FieldIs24x7)
	}
	if m.manager_ids != nil {
		fields = append(fields, chat.FieldManagerIds)
	}
	if m.accountant_ids != nil {
		fields = append(fields, chat.FieldAccountantIds)
	}
	if m.notify_in_chat_on_breach != nil {
		fields = append(fields, chat.FieldNotifyInChatOnBreach)
	}
	if m.client_tier != nil {
		fields = append(fields, chat.FieldClientTier)
	}
	if m.invite_url != nil {
		fields = append(fields, chat.FieldInviteURL)
	}
	if m.created_at != nil {
		fields = append(fields, chat.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chat.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, chat.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chat.FieldTitle:
		return m.Title()
	case chat.FieldChatType:
		return m.ChatType()
	case chat.FieldSLAEnabled:
		return m.SLAEnabled()
	case chat.FieldSLAThresholdMinutes:
		return m.SLAThresholdMinutes()
	case chat.FieldMonitoringEnabled:
		return m.MonitoringEnabled()
	case chat.FieldIs24x7:
		return m.Is24x7()
	case chat.FieldManagerIds:
		return m.ManagerIds()
	case chat.FieldAccountantIds:
		return m.AccountantIds()
	case chat.FieldNotifyInChatOnBreach:
		return m.NotifyInChatOnBreach()
	case chat.FieldClientTier:
		return m.ClientTier()
	case chat.FieldInviteURL:
		return m.InviteURL()
	case chat.FieldCreatedAt:
		return m.CreatedAt()
	case chat.FieldUpdatedAt:
		return m.UpdatedAt()
	case chat.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chat.FieldTitle:
		return m.OldTitle(ctx)
	case chat.FieldChatType:
		return m.OldChatType(ctx)
	case chat.FieldSLAEnabled:
		return m.OldSLAEnabled(ctx)
	case chat.FieldSLAThresholdMinutes:
		return m.OldSLAThresholdMinutes(ctx)
	case chat.FieldMonitoringEnabled:
		return m.OldMonitoringEnabled(ctx)
	case chat.FieldIs24x7:
		return m.OldIs24x7(ctx)
	case chat.FieldManagerIds:
		return m.OldManagerIds(ctx)
	case chat.FieldAccountantIds:
		return m.OldAccountantIds(ctx)
	case chat.FieldNotifyInChatOnBreach:
		return m.OldNotifyInChatOnBreach(ctx)
	case chat.FieldClientTier:
		return m.OldClientTier(ctx)
	case chat.FieldInviteURL:
		return m.OldInviteURL(ctx)
	case chat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chat.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case chat.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chat.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chat.FieldChatType:
		v, ok := value.(chat.ChatType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatType(v)
		return nil
	case chat.FieldSLAEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSLAEnabled(v)
		return nil
	case chat.FieldSLAThresholdMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSLAThresholdMinutes(v)
		return nil
	case chat.FieldMonitoringEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringEnabled(v)
		return nil
	case chat.FieldIs24x7:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIs24x7(v)
		return nil
	case chat.FieldManagerIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManagerIds(v)
		return nil
	case chat.FieldAccountantIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountantIds(v)
		return nil
	case chat.FieldNotifyInChatOnBreach:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotifyInChatOnBreach(v)
		return nil
	case chat.FieldClientTier:
		v, ok := value.(chat.ClientTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientTier(v)
		return nil
	case chat.FieldInviteURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInviteURL(v)
		return nil
	case chat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chat.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case chat.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMutation) AddedFields() []string {
	var fields []string
	if m.addsla_threshold_minutes != nil {
		fields = append(fields, chat.FieldSLAThresholdMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chat.FieldSLAThresholdMinutes:
		return m.AddedSLAThresholdMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chat.FieldSLAThresholdMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSLAThresholdMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Chat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chat.FieldSLAThresholdMinutes) {
		fields = append(fields, chat.FieldSLAThresholdMinutes)
	}
	if m.FieldCleared(chat.FieldManagerIds) {
		fields = append(fields, chat.FieldManagerIds)
	}
	if m.FieldCleared(chat.FieldAccountantIds) {
		fields = append(fields, chat.FieldAccountantIds)
	}
	if m.FieldCleared(chat.FieldInviteURL) {
		fields = append(fields, chat.FieldInviteURL)
	}
	if m.FieldCleared(chat.FieldDeletedAt) {
		fields = append(fields, chat.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMutation) ClearField(name string) error {
	switch name {
	case chat.FieldSLAThresholdMinutes:
		m.ClearSLAThresholdMinutes()
		return nil
	case chat.FieldManagerIds:
		m.ClearManagerIds()
		return nil
	case chat.FieldAccountantIds:
		m.ClearAccountantIds()
		return nil
	case chat.FieldInviteURL:
		m.ClearInviteURL()
		return nil
	case chat.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Chat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMutation) ResetField(name string) error {
	switch name {
	case chat.FieldTitle:
		m.ResetTitle()
		return nil
	case chat.FieldChatType:
		m.ResetChatType()
		return nil
	case chat.FieldSLAEnabled:
		m.ResetSLAEnabled()
		return nil
	case chat.FieldSLAThresholdMinutes:
		m.ResetSLAThresholdMinutes()
		return nil
	case chat.FieldMonitoringEnabled:
		m.ResetMonitoringEnabled()
		return nil
	case chat.FieldIs24x7:
		m.ResetIs24x7()
		return nil
	case chat.FieldManagerIds:
		m.ResetManagerIds()
		return nil
	case chat.FieldAccountantIds:
		m.ResetAccountantIds()
		return nil
	case chat.FieldNotifyInChatOnBreach:
		m.ResetNotifyInChatOnBreach()
		return nil
	case chat.FieldClientTier:
		m.ResetClientTier()
		return nil
	case chat.FieldInviteURL:
		m.ResetInviteURL()
		return nil
	case chat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chat.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case chat.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.requests != nil {
		edges = append(edges, chat.EdgeRequests)
	}
	if m.messages != nil {
		edges = append(edges, chat.EdgeMessages)
	}
	if m.feedback != nil {
		edges = append(edges, chat.EdgeFeedback)
	}
	if m.invitations != nil {
		edges = append(edges, chat.EdgeInvitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chat.EdgeRequests:
		ids := make([]ent.Value, 0, len(m.requests))
		for id := range m.requests {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.feedback))
		for id := range m.feedback {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeInvitations:
		ids := make([]ent.Value, 0, len(m.invitations))
		for id := range m.invitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedrequests != nil {
		edges = append(edges, chat.EdgeRequests)
	}
	if m.removedmessages != nil {
		edges = append(edges, chat.EdgeMessages)
	}
	if m.removedfeedback != nil {
		edges = append(edges, chat.EdgeFeedback)
	}
	if m.removedinvitations != nil {
		edges = append(edges, chat.EdgeInvitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chat.EdgeRequests:
		ids := make([]ent.Value, 0, len(m.removedrequests))
		for id := range m.removedrequests {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.removedfeedback))
		for id := range m.removedfeedback {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeInvitations:
		ids := make([]ent.Value, 0, len(m.removedinvitations))
		for id := range m.removedinvitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedrequests {
		edges = append(edges, chat.EdgeRequests)
	}
	if m.clearedmessages {
		edges = append(edges, chat.EdgeMessages)
	}
	if m.clearedfeedback {
		edges = append(edges, chat.EdgeFeedback)
	}
	if m.clearedinvitations {
		edges = append(edges, chat.EdgeInvitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMutation) EdgeCleared(name string) bool {
	switch name {
	case chat.EdgeRequests:
		return m.clearedrequests
	case chat.EdgeMessages:
		return m.clearedmessages
	case chat.EdgeFeedback:
		return m.clearedfeedback
	case chat.EdgeInvitations:
		return m.clearedinvitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Chat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMutation) ResetEdge(name string) error {
	switch name {
	case chat.EdgeRequests:
		m.ResetRequests()
		return nil
	case chat.EdgeMessages:
		m.ResetMessages()
		return nil
	case chat.EdgeFeedback:
		m.ResetFeedback()
		return nil
	case chat.EdgeInvitations:
		m.ResetInvitations()
		return nil
	}
	return fmt.Errorf("unknown Chat edge %s", name)
}

// ChatInvitationMutation represents an operation that mutates the ChatInvitation nodes in the graph.
type ChatInvitationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	status        *chatinvitation.Status
	expires_at    *time.Time
	used_by       *int64
	addused_by    *int64
	used_at       *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	chat          *int64
	clearedchat   bool
	done          bool
	oldValue      func(context.Context) (*ChatInvitation, error)
	predicates    []predicate.ChatInvitation
}

var _ ent.Mutation = (*ChatInvitationMutation)(nil)

// chatinvitationOption allows management of the mutation configuration using functional options.
type chatinvitationOption func(*ChatInvitationMutation)

// newChatInvitationMutation creates new mutation for the ChatInvitation entity.
func newChatInvitationMutation(c config, op Op, opts ...chatinvitationOption) *ChatInvitationMutation {
	m := &ChatInvitationMutation{
		config:        c,
		op:            op,
		typ:           TypeChatInvitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatInvitationID sets the ID field of the mutation.
func withChatInvitationID(id string) chatinvitationOption {
	return func(m *ChatInvitationMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatInvitation
		)
		m.oldValue = func(ctx context.Context) (*ChatInvitation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatInvitation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatInvitation sets the old ChatInvitation of the mutation.
func withChatInvitation(node *ChatInvitation) chatinvitationOption {
	return func(m *ChatInvitationMutation) {
		m.oldValue = func(context.Context) (*ChatInvitation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatInvitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatInvitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatInvitation entities.
func (m *ChatInvitationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatInvitationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatInvitationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatInvitation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *ChatInvitationMutation) SetChatID(i int64) {
	m.chat = &i
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ChatInvitationMutation) ChatID() (r int64, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ChatInvitation entity.
// If the ChatInvitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatInvitationMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ChatInvitationMutation) ResetChatID() {
	m.chat = nil
}

// SetStatus sets the "status" field.
func (m *ChatInvitationMutation) SetStatus(c chatinvitation.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ChatInvitationMutation) Status() (r chatinvitation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ChatInvitation entity.
// If the ChatInvitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatInvitationMutation) OldStatus(ctx context.Context) (v chatinvitation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ChatInvitationMutation) ResetStatus() {
	m.status = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ChatInvitationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ChatInvitationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ChatInvitation entity.
// If the ChatInvitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatInvitationMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ChatInvitationMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetUsedBy sets the "used_by" field.
func (m *ChatInvitationMutation) SetUsedBy(i int64) {
	m.used_by = &i
	m.addused_by = nil
}

// UsedBy returns the value of the "used_by" field in the mutation.
func (m *ChatInvitationMutation) UsedBy() (r int64, exists bool) {
	v := m.used_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedBy returns the old "used_by" field's value of the ChatInvitation entity.
// If the ChatInvitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatInvitationMutation) OldUsedBy(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedBy: %w", err)
	}
	return oldValue.UsedBy, nil
}

// AddUsedBy adds i to the "used_by" field.
func (m *ChatInvitationMutation) AddUsedBy(i int64) {
	if m.addused_by != nil {
		*m.addused_by += i
	} else {
		m.addused_by = &i
	}
}

// AddedUsedBy returns the value that was added to the "used_by" field in this mutation.
func (m *ChatInvitationMutation) AddedUsedBy() (r int64, exists bool) {
	v := m.addused_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearUsedBy clears the value of the "used_by" field.
func (m *ChatInvitationMutation) ClearUsedBy() {
	m.used_by = nil
	m.addused_by = nil
	m.clearedFields[chatinvitation.FieldUsedBy] = struct{}{}
}

// UsedByCleared returns if the "used_by" field was cleared in this mutation.
func (m *ChatInvitationMutation) UsedByCleared() bool {
	_, ok := m.clearedFields[chatinvitation.FieldUsedBy]
	return ok
}

// ResetUsedBy resets all changes to the "used_by" field.
func (m *ChatInvitationMutation) ResetUsedBy() {
	m.used_by = nil
	m.addused_by = nil
	delete(m.clearedFields, chatinvitation.FieldUsedBy)
}

// SetUsedAt sets the "used_at" field.
func (m *ChatInvitationMutation) SetUsedAt(t time.Time) {
	m.used_at = &t
}

// UsedAt returns the value of the "used_at" field in the mutation.
func (m *ChatInvitationMutation) UsedAt() (r time.Time, exists bool) {
	v := m.used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedAt returns the old "used_at" field's value of the ChatInvitation entity.
// If the ChatInvitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatInvitationMutation) OldUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedAt: %w", err)
	}
	return oldValue.UsedAt, nil
}

// ClearUsedAt clears the value of the "used_at" field.
func (m *ChatInvitationMutation) ClearUsedAt() {
	m.used_at = nil
	m.clearedFields[chatinvitation.FieldUsedAt] = struct{}{}
}

// UsedAtCleared returns if the "used_at" field was cleared in this mutation.
func (m *ChatInvitationMutation) UsedAtCleared() bool {
	_, ok := m.clearedFields[chatinvitation.FieldUsedAt]
	return ok
}

// ResetUsedAt resets all changes to the "used_at" field.
func (m *ChatInvitationMutation) ResetUsedAt() {
	m.used_at = nil
	delete(m.clearedFields, chatinvitation.FieldUsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatInvitationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatInvitationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatInvitation entity.
// If the ChatInvitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatInvitationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatInvitationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *ChatInvitationMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[chatinvitation.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *ChatInvitationMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *ChatInvitationMutation) ChatIDs() (ids []int64) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *ChatInvitationMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the ChatInvitationMutation builder.
func (m *ChatInvitationMutation) Where(ps ...predicate.ChatInvitation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatInvitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatInvitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatInvitation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatInvitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatInvitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatInvitation).
func (m *ChatInvitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatInvitationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.chat != nil {
		fields = append(fields, chatinvitation.FieldChatID)
	}
	if m.status != nil {
		fields = append(fields, chatinvitation.FieldStatus)
	}
	if m.expires_at != nil {
		fields = append(fields, chatinvitation.FieldExpiresAt)
	}
	if m.used_by != nil {
		fields = append(fields, chatinvitation.FieldUsedBy)
	}
	if m.used_at != nil {
		fields = append(fields, chatinvitation.FieldUsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, chatinvitation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatInvitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatinvitation.FieldChatID:
		return m.ChatID()
	case chatinvitation.FieldStatus:
		return m.Status()
	case chatinvitation.FieldExpiresAt:
		return m.ExpiresAt()
	case chatinvitation.FieldUsedBy:
		return m.UsedBy()
	case chatinvitation.FieldUsedAt:
		return m.UsedAt()
	case chatinvitation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatInvitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatinvitation.FieldChatID:
		return m.OldChatID(ctx)
	case chatinvitation.FieldStatus:
		return m.OldStatus(ctx)
	case chatinvitation.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case chatinvitation.FieldUsedBy:
		return m.OldUsedBy(ctx)
	case chatinvitation.FieldUsedAt:
		return m.OldUsedAt(ctx)
	case chatinvitation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatInvitation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatInvitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatinvitation.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case chatinvitation.FieldStatus:
		v, ok := value.(chatinvitation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case chatinvitation.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case chatinvitation.FieldUsedBy:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedBy(v)
		return nil
	case chatinvitation.FieldUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedAt(v)
		return nil
	case chatinvitation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatInvitation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatInvitationMutation) AddedFields() []string {
	var fields []string
	if m.addused_by != nil {
		fields = append(fields, chatinvitation.FieldUsedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatInvitationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatinvitation.FieldUsedBy:
		return m.AddedUsedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatInvitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatinvitation.FieldUsedBy:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsedBy(v)
		return nil
	}
	return fmt.Errorf("unknown ChatInvitation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatInvitationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatinvitation.FieldUsedBy) {
		fields = append(fields, chatinvitation.FieldUsedBy)
	}
	if m.FieldCleared(chatinvitation.FieldUsedAt) {
		fields = append(fields, chatinvitation.FieldUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatInvitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatInvitationMutation) ClearField(name string) error {
	switch name {
	case chatinvitation.FieldUsedBy:
		m.ClearUsedBy()
		return nil
	case chatinvitation.FieldUsedAt:
		m.ClearUsedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatInvitation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatInvitationMutation) ResetField(name string) error {
	switch name {
	case chatinvitation.FieldChatID:
		m.ResetChatID()
		return nil
	case chatinvitation.FieldStatus:
		m.ResetStatus()
		return nil
	case chatinvitation.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case chatinvitation.FieldUsedBy:
		m.ResetUsedBy()
		return nil
	case chatinvitation.FieldUsedAt:
		m.ResetUsedAt()
		return nil
	case chatinvitation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatInvitation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatInvitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat != nil {
		edges = append(edges, chatinvitation.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatInvitationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatinvitation.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatInvitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatInvitationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatInvitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat {
		edges = append(edges, chatinvitation.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatInvitationMutation) EdgeCleared(name string) bool {
	switch name {
	case chatinvitation.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatInvitationMutation) ClearEdge(name string) error {
	switch name {
	case chatinvitation.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown ChatInvitation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatInvitationMutation) ResetEdge(name string) error {
	switch name {
	case chatinvitation.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown ChatInvitation edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op              Op
	typ             string
	id              *string
	message_id      *int64
	addmessage_id   *int64
	sender_id       *int64
	addsender_id    *int64
	sender_username *string
	text            *string
	from_accountant *bool
	faq_handled     *bool
	request_id      *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	chat            *int64
	clearedchat     bool
	done            bool
	oldValue        func(context.Context) (*ChatMessage, error)
	predicates      []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *ChatMessageMutation) SetChatID(i int64) {
	m.chat = &i
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ChatMessageMutation) ChatID() (r int64, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ChatMessageMutation) ResetChatID() {
	m.chat = nil
}

// SetMessageID sets the "message_id" field.
func (m *ChatMessageMutation) SetMessageID(i int64) {
	m.message_id = &i
	m.addmessage_id = nil
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *ChatMessageMutation) MessageID() (r int64, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldMessageID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// AddMessageID adds i to the "message_id" field.
func (m *ChatMessageMutation) AddMessageID(i int64) {
	if m.addmessage_id != nil {
		*m.addmessage_id += i
	} else {
		m.addmessage_id = &i
	}
}

// AddedMessageID returns the value that was added to the "message_id" field in this mutation.
func (m *ChatMessageMutation) AddedMessageID() (r int64, exists bool) {
	v := m.addmessage_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *ChatMessageMutation) ResetMessageID() {
	m.message_id = nil
	m.addmessage_id = nil
}

// SetSenderID sets the "sender_id" field.
func (m *ChatMessageMutation) SetSenderID(i int64) {
	m.sender_id = &i
	m.addsender_id = nil
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *ChatMessageMutation) SenderID() (r int64, exists bool) {
	v := m.sender_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSenderID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// AddSenderID adds i to the "sender_id" field.
func (m *ChatMessageMutation) AddSenderID(i int64) {
	if m.addsender_id != nil {
		*m.addsender_id += i
	} else {
		m.addsender_id = &i
	}
}

// AddedSenderID returns the value that was added to the "sender_id" field in this mutation.
func (m *ChatMessageMutation) AddedSenderID() (r int64, exists bool) {
	v := m.addsender_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *ChatMessageMutation) ResetSenderID() {
	m.sender_id = nil
	m.addsender_id = nil
}

// SetSenderUsername sets the "sender_username" field.
func (m *ChatMessageMutation) SetSenderUsername(s string) {
	m.sender_username = &s
}

// SenderUsername returns the value of the "sender_username" field in the mutation.
func (m *ChatMessageMutation) SenderUsername() (r string, exists bool) {
	v := m.sender_username
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderUsername returns the old "sender_username" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSenderUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderUsername: %w", err)
	}
	return oldValue.SenderUsername, nil
}

// ResetSenderUsername resets all changes to the "sender_username" field.
func (m *ChatMessageMutation) ResetSenderUsername() {
	m.sender_username = nil
}

// SetText sets the "text" field.
func (m *ChatMessageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ChatMessageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ChatMessageMutation) ResetText() {
	m.text = nil
}

// SetFromAccountant sets the "from_accountant" field.
func (m *ChatMessageMutation) SetFromAccountant(b bool) {
	m.from_accountant = &b
}

// FromAccountant returns the value of the "from_accountant" field in the mutation.
func (m *ChatMessageMutation) FromAccountant() (r bool, exists bool) {
	v := m.from_accountant
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAccountant returns the old "from_accountant" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldFromAccountant(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAccountant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAccountant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAccountant: %w", err)
	}
	return oldValue.FromAccountant, nil
}

// ResetFromAccountant resets all changes to the "from_accountant" field.
func (m *ChatMessageMutation) ResetFromAccountant() {
	m.from_accountant = nil
}

// SetFaqHandled sets the "faq_handled" field.
func (m *ChatMessageMutation) SetFaqHandled(b bool) {
	m.faq_handled = &b
}

// FaqHandled returns the value of the "faq_handled" field in the mutation.
func (m *ChatMessageMutation) FaqHandled() (r bool, exists bool) {
	v := m.faq_handled
	if v == nil {
		return
	}
	return *v, true
}

// OldFaqHandled returns the old "faq_handled" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldFaqHandled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFaqHandled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFaqHandled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFaqHandled: %w", err)
	}
	return oldValue.FaqHandled, nil
}

// ResetFaqHandled resets all changes to the "faq_handled" field.
func (m *ChatMessageMutation) ResetFaqHandled() {
	m.faq_handled = nil
}

// SetRequestID sets the "request_id" field.
func (m *ChatMessageMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ChatMessageMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *ChatMessageMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[chatmessage.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *ChatMessageMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ChatMessageMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, chatmessage.FieldRequestID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *ChatMessageMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[chatmessage.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *ChatMessageMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) ChatIDs() (ids []int64) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *ChatMessageMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.chat != nil {
		fields = append(fields, chatmessage.FieldChatID)
	}
	if m.message_id != nil {
		fields = append(fields, chatmessage.FieldMessageID)
	}
	if m.sender_id != nil {
		fields = append(fields, chatmessage.FieldSenderID)
	}
	if m.sender_username != nil {
		fields = append(fields, chatmessage.FieldSenderUsername)
	}
	if m.text != nil {
		fields = append(fields, chatmessage.FieldText)
	}
	if m.from_accountant != nil {
		fields = append(fields, chatmessage.FieldFromAccountant)
	}
	if m.faq_handled != nil {
		fields = append(fields, chatmessage.FieldFaqHandled)
	}
	if m.request_id != nil {
		fields = append(fields, chatmessage.FieldRequestID)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldChatID:
		return m.ChatID()
	case chatmessage.FieldMessageID:
		return m.MessageID()
	case chatmessage.FieldSenderID:
		return m.SenderID()
	case chatmessage.FieldSenderUsername:
		return m.SenderUsername()
	case chatmessage.FieldText:
		return m.Text()
	case chatmessage.FieldFromAccountant:
		return m.FromAccountant()
	case chatmessage.FieldFaqHandled:
		return m.FaqHandled()
	case chatmessage.FieldRequestID:
		return m.RequestID()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldChatID:
		return m.OldChatID(ctx)
	case chatmessage.FieldMessageID:
		return m.OldMessageID(ctx)
	case chatmessage.FieldSenderID:
		return m.OldSenderID(ctx)
	case chatmessage.FieldSenderUsername:
		return m.OldSenderUsername(ctx)
	case chatmessage.FieldText:
		return m.OldText(ctx)
	case chatmessage.FieldFromAccountant:
		return m.OldFromAccountant(ctx)
	case chatmessage.FieldFaqHandled:
		return m.OldFaqHandled(ctx)
	case chatmessage.FieldRequestID:
		return m.OldRequestID(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case chatmessage.FieldMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case chatmessage.FieldSenderID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case chatmessage.FieldSenderUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderUsername(v)
		return nil
	case chatmessage.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case chatmessage.FieldFromAccountant:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAccountant(v)
		return nil
	case chatmessage.FieldFaqHandled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFaqHandled(v)
		return nil
	case chatmessage.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_id != nil {
		fields = append(fields, chatmessage.FieldMessageID)
	}
	if m.addsender_id != nil {
		fields = append(fields, chatmessage.FieldSenderID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldMessageID:
		return m.AddedMessageID()
	case chatmessage.FieldSenderID:
		return m.AddedSenderID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageID(v)
		return nil
	case chatmessage.FieldSenderID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSenderID(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldRequestID) {
		fields = append(fields, chatmessage.FieldRequestID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldRequestID:
		m.ClearRequestID()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldChatID:
		m.ResetChatID()
		return nil
	case chatmessage.FieldMessageID:
		m.ResetMessageID()
		return nil
	case chatmessage.FieldSenderID:
		m.ResetSenderID()
		return nil
	case chatmessage.FieldSenderUsername:
		m.ResetSenderUsername()
		return nil
	case chatmessage.FieldText:
		m.ResetText()
		return nil
	case chatmessage.FieldFromAccountant:
		m.ResetFromAccountant()
		return nil
	case chatmessage.FieldFaqHandled:
		m.ResetFaqHandled()
		return nil
	case chatmessage.FieldRequestID:
		m.ResetRequestID()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat != nil {
		edges = append(edges, chatmessage.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat {
		edges = append(edges, chatmessage.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ClassificationCacheMutation represents an operation that mutates the ClassificationCache nodes in the graph.
type ClassificationCacheMutation struct {
	config
	op             Op
	typ            string
	id             *string
	classification *classificationcache.Classification
	confidence     *float64
	addconfidence  *float64
	source         *string
	expires_at     *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ClassificationCache, error)
	predicates     []predicate.ClassificationCache
}

var _ ent.Mutation = (*ClassificationCacheMutation)(nil)

// classificationcacheOption allows management of the mutation configuration using functional options.
type classificationcacheOption func(*ClassificationCacheMutation)

// newClassificationCacheMutation creates new mutation for the ClassificationCache entity.
func newClassificationCacheMutation(c config, op Op, opts ...classificationcacheOption) *ClassificationCacheMutation {
	m := &ClassificationCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeClassificationCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClassificationCacheID sets the ID field of the mutation.
func withClassificationCacheID(id string) classificationcacheOption {
	return func(m *ClassificationCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *ClassificationCache
		)
		m.oldValue = func(ctx context.Context) (*ClassificationCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClassificationCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClassificationCache sets the old ClassificationCache of the mutation.
func withClassificationCache(node *ClassificationCache) classificationcacheOption {
	return func(m *ClassificationCacheMutation) {
		m.oldValue = func(context.Context) (*ClassificationCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClassificationCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClassificationCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClassificationCache entities.
func (m *ClassificationCacheMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClassificationCacheMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClassificationCacheMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClassificationCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClassification sets the "classification" field.
func (m *ClassificationCacheMutation) SetClassification(c classificationcache.Classification) {
	m.classification = &c
}

// Classification returns the value of the "classification" field in the mutation.
func (m *ClassificationCacheMutation) Classification() (r classificationcache.Classification, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the ClassificationCache entity.
// If the ClassificationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationCacheMutation) OldClassification(ctx context.Context) (v classificationcache.Classification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *ClassificationCacheMutation) ResetClassification() {
	m.classification = nil
}

// SetConfidence sets the "confidence" field.
func (m *ClassificationCacheMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ClassificationCacheMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ClassificationCache entity.
// If the ClassificationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationCacheMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ClassificationCacheMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ClassificationCacheMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ClassificationCacheMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSource sets the "source" field.
func (m *ClassificationCacheMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ClassificationCacheMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ClassificationCache entity.
// If the ClassificationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationCacheMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ClassificationCacheMutation) ResetSource() {
	m.source = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ClassificationCacheMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ClassificationCacheMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ClassificationCache entity.
// If the ClassificationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationCacheMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ClassificationCacheMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClassificationCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClassificationCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClassificationCache entity.
// If the ClassificationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClassificationCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ClassificationCacheMutation builder.
func (m *ClassificationCacheMutation) Where(ps ...predicate.ClassificationCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClassificationCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClassificationCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClassificationCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClassificationCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClassificationCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClassificationCache).
func (m *ClassificationCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClassificationCacheMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.classification != nil {
		fields = append(fields, classificationcache.FieldClassification)
	}
	if m.confidence != nil {
		fields = append(fields, classificationcache.FieldConfidence)
	}
	if m.source != nil {
		fields = append(fields, classificationcache.FieldSource)
	}
	if m.expires_at != nil {
		fields = append(fields, classificationcache.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, classificationcache.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClassificationCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case classificationcache.FieldClassification:
		return m.Classification()
	case classificationcache.FieldConfidence:
		return m.Confidence()
	case classificationcache.FieldSource:
		return m.Source()
	case classificationcache.FieldExpiresAt:
		return m.ExpiresAt()
	case classificationcache.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClassificationCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case classificationcache.FieldClassification:
		return m.OldClassification(ctx)
	case classificationcache.FieldConfidence:
		return m.OldConfidence(ctx)
	case classificationcache.FieldSource:
		return m.OldSource(ctx)
	case classificationcache.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case classificationcache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClassificationCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassificationCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case classificationcache.FieldClassification:
		v, ok := value.(classificationcache.Classification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case classificationcache.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case classificationcache.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case classificationcache.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case classificationcache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClassificationCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClassificationCacheMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, classificationcache.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClassificationCacheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case classificationcache.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassificationCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	case classificationcache.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ClassificationCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClassificationCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClassificationCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClassificationCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClassificationCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClassificationCacheMutation) ResetField(name string) error {
	switch name {
	case classificationcache.FieldClassification:
		m.ResetClassification()
		return nil
	case classificationcache.FieldConfidence:
		m.ResetConfidence()
		return nil
	case classificationcache.FieldSource:
		m.ResetSource()
		return nil
	case classificationcache.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case classificationcache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClassificationCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClassificationCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClassificationCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClassificationCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClassificationCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClassificationCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClassificationCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClassificationCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClassificationCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClassificationCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClassificationCache edge %s", name)
}

// ClientRequestMutation represents an operation that mutates the ClientRequest nodes in the graph.
type ClientRequestMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	client_username          *string
	client_id                *int64
	addclient_id             *int64
	message_text             *string
	message_id               *int64
	addmessage_id            *int64
	thread_id                *string
	classification           *clientrequest.Classification
	received_at              *time.Time
	status                   *clientrequest.Status
	sla_breached             *bool
	response_message_id      *int64
	addresponse_message_id   *int64
	response_time_minutes    *int
	addresponse_time_minutes *int
	answered_at              *time.Time
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	chat                     *int64
	clearedchat              bool
	alerts                   map[string]struct{}
	removedalerts            map[string]struct{}
	clearedalerts            bool
	done                     bool
	oldValue                 func(context.Context) (*ClientRequest, error)
	predicates               []predicate.ClientRequest
}

var _ ent.Mutation = (*ClientRequestMutation)(nil)

// clientrequestOption allows management of the mutation configuration using functional options.
type clientrequestOption func(*ClientRequestMutation)

// newClientRequestMutation creates new mutation for the ClientRequest entity.
func newClientRequestMutation(c config, op Op, opts ...clientrequestOption) *ClientRequestMutation {
	m := &ClientRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeClientRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientRequestID sets the ID field of the mutation.
func withClientRequestID(id string) clientrequestOption {
	return func(m *ClientRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientRequest
		)
		m.oldValue = func(ctx context.Context) (*ClientRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientRequest sets the old ClientRequest of the mutation.
func withClientRequest(node *ClientRequest) clientrequestOption {
	return func(m *ClientRequestMutation) {
		m.oldValue = func(context.Context) (*ClientRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClientRequest entities.
func (m *ClientRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *ClientRequestMutation) SetChatID(i int64) {
	m.chat = &i
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ClientRequestMutation) ChatID() (r int64, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ClientRequestMutation) ResetChatID() {
	m.chat = nil
}

// SetClientUsername sets the "client_username" field.
func (m *ClientRequestMutation) SetClientUsername(s string) {
	m.client_username = &s
}

// ClientUsername returns the value of the "client_username" field in the mutation.
func (m *ClientRequestMutation) ClientUsername() (r string, exists bool) {
	v := m.client_username
	if v == nil {
		return
	}
	return *v, true
}

// OldClientUsername returns the old "client_username" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldClientUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientUsername: %w", err)
	}
	return oldValue.ClientUsername, nil
}

// ResetClientUsername resets all changes to the "client_username" field.
func (m *ClientRequestMutation) ResetClientUsername() {
	m.client_username = nil
}

// SetClientID sets the "client_id" field.
func (m *ClientRequestMutation) SetClientID(i int64) {
	m.client_id = &i
	m.addclient_id = nil
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ClientRequestMutation) ClientID() (r int64, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldClientID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// AddClientID adds i to the "client_id" field.
func (m *ClientRequestMutation) AddClientID(i int64) {
	if m.addclient_id != nil {
		*m.addclient_id += i
	} else {
		m.addclient_id = &i
	}
}

// AddedClientID returns the value that was added to the "client_id" field in this mutation.
func (m *ClientRequestMutation) AddedClientID() (r int64, exists bool) {
	v := m.addclient_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearClientID clears the value of the "client_id" field.
func (m *ClientRequestMutation) ClearClientID() {
	m.client_id = nil
	m.addclient_id = nil
	m.clearedFields[clientrequest.FieldClientID] = struct{}{}
}

// ClientIDCleared returns if the "client_id" field was cleared in this mutation.
func (m *ClientRequestMutation) ClientIDCleared() bool {
	_, ok := m.clearedFields[clientrequest.FieldClientID]
	return ok
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ClientRequestMutation) ResetClientID() {
	m.client_id = nil
	m.addclient_id = nil
	delete(m.clearedFields, clientrequest.FieldClientID)
}

// SetMessageText sets the "message_text" field.
func (m *ClientRequestMutation) SetMessageText(s string) {
	m.message_text = &s
}

// MessageText returns the value of the "message_text" field in the mutation.
func (m *ClientRequestMutation) MessageText() (r string, exists bool) {
	v := m.message_text
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageText returns the old "message_text" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldMessageText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageText: %w", err)
	}
	return oldValue.MessageText, nil
}

// ResetMessageText resets all changes to the "message_text" field.
func (m *ClientRequestMutation) ResetMessageText() {
	m.message_text = nil
}

// SetMessageID sets the "message_id" field.
func (m *ClientRequestMutation) SetMessageID(i int64) {
	m.message_id = &i
	m.addmessage_id = nil
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *ClientRequestMutation) MessageID() (r int64, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldMessageID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// AddMessageID adds i to the "message_id" field.
func (m *ClientRequestMutation) AddMessageID(i int64) {
	if m.addmessage_id != nil {
		*m.addmessage_id += i
	} else {
		m.addmessage_id = &i
	}
}

// AddedMessageID returns the value that was added to the "message_id" field in this mutation.
func (m *ClientRequestMutation) AddedMessageID() (r int64, exists bool) {
	v := m.addmessage_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *ClientRequestMutation) ResetMessageID() {
	m.message_id = nil
	m.addmessage_id = nil
}

// SetThreadID sets the "thread_id" field.
func (m *ClientRequestMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *ClientRequestMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *ClientRequestMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[clientrequest.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *ClientRequestMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[clientrequest.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *ClientRequestMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, clientrequest.FieldThreadID)
}

// SetClassification sets the "classification" field.
func (m *ClientRequestMutation) SetClassification(c clientrequest.Classification) {
	m.classification = &c
}

// Classification returns the value of the "classification" field in the mutation.
func (m *ClientRequestMutation) Classification() (r clientrequest.Classification, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldClassification(ctx context.Context) (v clientrequest.Classification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *ClientRequestMutation) ResetClassification() {
	m.classification = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *ClientRequestMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *ClientRequestMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *ClientRequestMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetStatus sets the "status" field.
func (m *ClientRequestMutation) SetStatus(c clientrequest.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ClientRequestMutation) Status() (r clientrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldStatus(ctx context.Context) (v clientrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ClientRequestMutation) ResetStatus() {
	m.status = nil
}

// SetSLABreached sets the "sla_breached" field.
func (m *ClientRequestMutation) SetSLABreached(b bool) {
	m.sla_breached = &b
}

// SLABreached returns the value of the "sla_breached" field in the mutation.
func (m *ClientRequestMutation) SLABreached() (r bool, exists bool) {
	v := m.sla_breached
	if v == nil {
		return
	}
	return *v, true
}

// OldSLABreached returns the old "sla_breached" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldSLABreached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSLABreached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSLABreached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSLABreached: %w", err)
	}
	return oldValue.SLABreached, nil
}

// ResetSLABreached resets all changes to the "sla_breached" field.
func (m *ClientRequestMutation) ResetSLABreached() {
	m.sla_breached = nil
}

// SetResponseMessageID sets the "response_message_id" field.
func (m *ClientRequestMutation) SetResponseMessageID(i int64) {
	m.response_message_id = &i
	m.addresponse_message_id = nil
}

// ResponseMessageID returns the value of the "response_message_id" field in the mutation.
func (m *ClientRequestMutation) ResponseMessageID() (r int64, exists bool) {
	v := m.response_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseMessageID returns the old "response_message_id" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldResponseMessageID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseMessageID: %w", err)
	}
	return oldValue.ResponseMessageID, nil
}

// AddResponseMessageID adds i to the "response_message_id" field.
func (m *ClientRequestMutation) AddResponseMessageID(i int64) {
	if m.addresponse_message_id != nil {
		*m.addresponse_message_id += i
	} else {
		m.addresponse_message_id = &i
	}
}

// AddedResponseMessageID returns the value that was added to the "response_message_id" field in this mutation.
func (m *ClientRequestMutation) AddedResponseMessageID() (r int64, exists bool) {
	v := m.addresponse_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseMessageID clears the value of the "response_message_id" field.
func (m *ClientRequestMutation) ClearResponseMessageID() {
	m.response_message_id = nil
	m.addresponse_message_id = nil
	m.clearedFields[clientrequest.FieldResponseMessageID] = struct{}{}
}

// ResponseMessageIDCleared returns if the "response_message_id" field was cleared in this mutation.
func (m *ClientRequestMutation) ResponseMessageIDCleared() bool {
	_, ok := m.clearedFields[clientrequest.FieldResponseMessageID]
	return ok
}

// ResetResponseMessageID resets all changes to the "response_message_id" field.
func (m *ClientRequestMutation) ResetResponseMessageID() {
	m.response_message_id = nil
	m.addresponse_message_id = nil
	delete(m.clearedFields, clientrequest.FieldResponseMessageID)
}

// SetResponseTimeMinutes sets the "response_time_minutes" field.
func (m *ClientRequestMutation) SetResponseTimeMinutes(i int) {
	m.response_time_minutes = &i
	m.addresponse_time_minutes = nil
}

// ResponseTimeMinutes returns the value of the "response_time_minutes" field in the mutation.
func (m *ClientRequestMutation) ResponseTimeMinutes() (r int, exists bool) {
	v := m.response_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMinutes returns the old "response_time_minutes" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldResponseTimeMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMinutes: %w", err)
	}
	return oldValue.ResponseTimeMinutes, nil
}

// AddResponseTimeMinutes adds i to the "response_time_minutes" field.
func (m *ClientRequestMutation) AddResponseTimeMinutes(i int) {
	if m.addresponse_time_minutes != nil {
		*m.addresponse_time_minutes += i
	} else {
		m.addresponse_time_minutes = &i
	}
}

// AddedResponseTimeMinutes returns the value that was added to the "response_time_minutes" field in this mutation.
func (m *ClientRequestMutation) AddedResponseTimeMinutes() (r int, exists bool) {
	v := m.addresponse_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseTimeMinutes clears the value of the "response_time_minutes" field.
func (m *ClientRequestMutation) ClearResponseTimeMinutes() {
	m.response_time_minutes = nil
	m.addresponse_time_minutes = nil
	m.clearedFields[clientrequest.FieldResponseTimeMinutes] = struct{}{}
}

// ResponseTimeMinutesCleared returns if the "response_time_minutes" field was cleared in this mutation.
func (m *ClientRequestMutation) ResponseTimeMinutesCleared() bool {
	_, ok := m.clearedFields[clientrequest.FieldResponseTimeMinutes]
	return ok
}

// ResetResponseTimeMinutes resets all changes to the "response_time_minutes" field.
func (m *ClientRequestMutation) ResetResponseTimeMinutes() {
	m.response_time_minutes = nil
	m.addresponse_time_minutes = nil
	delete(m.clearedFields, clientrequest.FieldResponseTimeMinutes)
}

// SetAnsweredAt sets the "answered_at" field.
func (m *ClientRequestMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *ClientRequestMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldAnsweredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (m *ClientRequestMutation) ClearAnsweredAt() {
	m.answered_at = nil
	m.clearedFields[clientrequest.FieldAnsweredAt] = struct{}{}
}

// AnsweredAtCleared returns if the "answered_at" field was cleared in this mutation.
func (m *ClientRequestMutation) AnsweredAtCleared() bool {
	_, ok := m.clearedFields[clientrequest.FieldAnsweredAt]
	return ok
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *ClientRequestMutation) ResetAnsweredAt() {
	m.answered_at = nil
	delete(m.clearedFields, clientrequest.FieldAnsweredAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ClientRequestMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ClientRequestMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ClientRequest entity.
// If the ClientRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientRequestMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ClientRequestMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[clientrequest.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ClientRequestMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[clientrequest.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ClientRequestMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, clientrequest.FieldDeletedAt)
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *ClientRequestMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[clientrequest.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *ClientRequestMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *ClientRequestMutation) ChatIDs() (ids []int64) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *ClientRequestMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// AddAlertIDs adds the "alerts" edge to the SLAAlert entity by ids.
func (m *ClientRequestMutation) AddAlertIDs(ids ...string) {
	if m.alerts == nil {
		m.alerts = make(map[string]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the SLAAlert entity.
func (m *ClientRequestMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the SLAAlert entity was cleared.
func (m *ClientRequestMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the SLAAlert entity by IDs.
func (m *ClientRequestMutation) RemoveAlertIDs(ids ...string) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the SLAAlert entity.
func (m *ClientRequestMutation) RemovedAlertsIDs() (ids []string) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *ClientRequestMutation) AlertsIDs() (ids []string) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *ClientRequestMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// Where appends a list predicates to the ClientRequestMutation builder.
func (m *ClientRequestMutation) Where(ps ...predicate.ClientRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientRequest).
func (m *ClientRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientRequestMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.chat != nil {
		fields = append(fields, clientrequest.FieldChatID)
	}
	if m.client_username != nil {
		fields = append(fields, clientrequest.FieldClientUsername)
	}
	if m.client_id != nil {
		fields = append(fields, clientrequest.FieldClientID)
	}
	if m.message_text != nil {
		fields = append(fields, clientrequest.FieldMessageText)
	}
	if m.message_id != nil {
		fields = append(fields, clientrequest.FieldMessageID)
	}
	if m.thread_id != nil {
		fields = append(fields, clientrequest.FieldThreadID)
	}
	if m.classification != nil {
		fields = append(fields, clientrequest.FieldClassification)
	}
	if m.received_at != nil {
		fields = append(fields, clientrequest.FieldReceivedAt)
	}
	if m.status != nil {
		fields = append(fields, clientrequest.FieldStatus)
	}
	if m.sla_breached != nil {
		fields = append(fields, clientrequest.FieldSLABreached)
	}
	if m.response_message_id != nil {
		fields = append(fields, clientrequest.FieldResponseMessageID)
	}
	if m.response_time_minutes != nil {
		fields = append(fields, clientrequest.FieldResponseTimeMinutes)
	}
	if m.answered_at != nil {
		fields = append(fields, clientrequest.FieldAnsweredAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, clientrequest.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientrequest.FieldChatID:
		return m.ChatID()
	case clientrequest.FieldClientUsername:
		return m.ClientUsername()
	case clientrequest.FieldClientID:
		return m.ClientID()
	case clientrequest.FieldMessageText:
		return m.MessageText()
	case clientrequest.FieldMessageID:
		return m.MessageID()
	case clientrequest.FieldThreadID:
		return m.ThreadID()
	case clientrequest.FieldClassification:
		return m.Classification()
	case clientrequest.FieldReceivedAt:
		return m.ReceivedAt()
	case clientrequest.FieldStatus:
		return m.Status()
	case clientrequest.FieldSLABreached:
		return m.SLABreached()
	case clientrequest.FieldResponseMessageID:
		return m.ResponseMessageID()
	case clientrequest.FieldResponseTimeMinutes:
		return m.ResponseTimeMinutes()
	case clientrequest.FieldAnsweredAt:
		return m.AnsweredAt()
	case clientrequest.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientrequest.FieldChatID:
		return m.OldChatID(ctx)
	case clientrequest.FieldClientUsername:
		return m.OldClientUsername(ctx)
	case clientrequest.FieldClientID:
		return m.OldClientID(ctx)
	case clientrequest.FieldMessageText:
		return m.OldMessageText(ctx)
	case clientrequest.FieldMessageID:
		return m.OldMessageID(ctx)
	case clientrequest.FieldThreadID:
		return m.OldThreadID(ctx)
	case clientrequest.FieldClassification:
		return m.OldClassification(ctx)
	case clientrequest.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case clientrequest.FieldStatus:
		return m.OldStatus(ctx)
	case clientrequest.FieldSLABreached:
		return m.OldSLABreached(ctx)
	case clientrequest.FieldResponseMessageID:
		return m.OldResponseMessageID(ctx)
	case clientrequest.FieldResponseTimeMinutes:
		return m.OldResponseTimeMinutes(ctx)
	case clientrequest.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	case clientrequest.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClientRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientrequest.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case clientrequest.FieldClientUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientUsername(v)
		return nil
	case clientrequest.FieldClientID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case clientrequest.FieldMessageText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageText(v)
		return nil
	case clientrequest.FieldMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case clientrequest.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case clientrequest.FieldClassification:
		v, ok := value.(clientrequest.Classification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case clientrequest.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case clientrequest.FieldStatus:
		v, ok := value.(clientrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case clientrequest.FieldSLABreached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSLABreached(v)
		return nil
	case clientrequest.FieldResponseMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseMessageID(v)
		return nil
	case clientrequest.FieldResponseTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMinutes(v)
		return nil
	case clientrequest.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	case clientrequest.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClientRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientRequestMutation) AddedFields() []string {
	var fields []string
	if m.addclient_id != nil {
		fields = append(fields, clientrequest.FieldClientID)
	}
	if m.addmessage_id != nil {
		fields = append(fields, clientrequest.FieldMessageID)
	}
	if m.addresponse_message_id != nil {
		fields = append(fields, clientrequest.FieldResponseMessageID)
	}
	if m.addresponse_time_minutes != nil {
		fields = append(fields, clientrequest.FieldResponseTimeMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clientrequest.FieldClientID:
		return m.AddedClientID()
	case clientrequest.FieldMessageID:
		return m.AddedMessageID()
	case clientrequest.FieldResponseMessageID:
		return m.AddedResponseMessageID()
	case clientrequest.FieldResponseTimeMinutes:
		return m.AddedResponseTimeMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clientrequest.FieldClientID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClientID(v)
		return nil
	case clientrequest.FieldMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageID(v)
		return nil
	case clientrequest.FieldResponseMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseMessageID(v)
		return nil
	case clientrequest.FieldResponseTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown ClientRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clientrequest.FieldClientID) {
		fields = append(fields, clientrequest.FieldClientID)
	}
	if m.FieldCleared(clientrequest.FieldThreadID) {
		fields = append(fields, clientrequest.FieldThreadID)
	}
	if m.FieldCleared(clientrequest.FieldResponseMessageID) {
		fields = append(fields, clientrequest.FieldResponseMessageID)
	}
	if m.FieldCleared(clientrequest.FieldResponseTimeMinutes) {
		fields = append(fields, clientrequest.FieldResponseTimeMinutes)
	}
	if m.FieldCleared(clientrequest.FieldAnsweredAt) {
		fields = append(fields, clientrequest.FieldAnsweredAt)
	}
	if m.FieldCleared(clientrequest.FieldDeletedAt) {
		fields = append(fields, clientrequest.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientRequestMutation) ClearField(name string) error {
	switch name {
	case clientrequest.FieldClientID:
		m.ClearClientID()
		return nil
	case clientrequest.FieldThreadID:
		m.ClearThreadID()
		return nil
	case clientrequest.FieldResponseMessageID:
		m.ClearResponseMessageID()
		return nil
	case clientrequest.FieldResponseTimeMinutes:
		m.ClearResponseTimeMinutes()
		return nil
	case clientrequest.FieldAnsweredAt:
		m.ClearAnsweredAt()
		return nil
	case clientrequest.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ClientRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientRequestMutation) ResetField(name string) error {
	switch name {
	case clientrequest.FieldChatID:
		m.ResetChatID()
		return nil
	case clientrequest.FieldClientUsername:
		m.ResetClientUsername()
		return nil
	case clientrequest.FieldClientID:
		m.ResetClientID()
		return nil
	case clientrequest.FieldMessageText:
		m.ResetMessageText()
		return nil
	case clientrequest.FieldMessageID:
		m.ResetMessageID()
		return nil
	case clientrequest.FieldThreadID:
		m.ResetThreadID()
		return nil
	case clientrequest.FieldClassification:
		m.ResetClassification()
		return nil
	case clientrequest.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case clientrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case clientrequest.FieldSLABreached:
		m.ResetSLABreached()
		return nil
	case clientrequest.FieldResponseMessageID:
		m.ResetResponseMessageID()
		return nil
	case clientrequest.FieldResponseTimeMinutes:
		m.ResetResponseTimeMinutes()
		return nil
	case clientrequest.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	case clientrequest.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ClientRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.chat != nil {
		edges = append(edges, clientrequest.EdgeChat)
	}
	if m.alerts != nil {
		edges = append(edges, clientrequest.EdgeAlerts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clientrequest.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	case clientrequest.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedalerts != nil {
		edges = append(edges, clientrequest.EdgeAlerts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientRequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case clientrequest.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchat {
		edges = append(edges, clientrequest.EdgeChat)
	}
	if m.clearedalerts {
		edges = append(edges, clientrequest.EdgeAlerts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case clientrequest.EdgeChat:
		return m.clearedchat
	case clientrequest.EdgeAlerts:
		return m.clearedalerts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientRequestMutation) ClearEdge(name string) error {
	switch name {
	case clientrequest.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown ClientRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientRequestMutation) ResetEdge(name string) error {
	switch name {
	case clientrequest.EdgeChat:
		m.ResetChat()
		return nil
	case clientrequest.EdgeAlerts:
		m.ResetAlerts()
		return nil
	}
	return fmt.Errorf("unknown ClientRequest edge %s", name)
}

// FAQItemMutation represents an operation that mutates the FAQItem nodes in the graph.
type FAQItemMutation struct {
	config
	op             Op
	typ            string
	id             *string
	question       *string
	keywords       *[]string
	appendkeywords []string
	answer         *string
	is_active      *bool
	usage_count    *int
	addusage_count *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*FAQItem, error)
	predicates     []predicate.FAQItem
}

var _ ent.Mutation = (*FAQItemMutation)(nil)

// faqitemOption allows management of the mutation configuration using functional options.
type faqitemOption func(*FAQItemMutation)

// newFAQItemMutation creates new mutation for the FAQItem entity.
func newFAQItemMutation(c config, op Op, opts ...faqitemOption) *FAQItemMutation {
	m := &FAQItemMutation{
		config:        c,
		op:            op,
		typ:           TypeFAQItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFAQItemID sets the ID field of the mutation.
func withFAQItemID(id string) faqitemOption {
	return func(m *FAQItemMutation) {
		var (
			err   error
			once  sync.Once
			value *FAQItem
		)
		m.oldValue = func(ctx context.Context) (*FAQItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FAQItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFAQItem sets the old FAQItem of the mutation.
func withFAQItem(node *FAQItem) faqitemOption {
	return func(m *FAQItemMutation) {
		m.oldValue = func(context.Context) (*FAQItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FAQItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FAQItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FAQItem entities.
func (m *FAQItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FAQItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FAQItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FAQItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestion sets the "question" field.
func (m *FAQItemMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *FAQItemMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the FAQItem entity.
// If the FAQItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQItemMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *FAQItemMutation) ResetQuestion() {
	m.question = nil
}

// SetKeywords sets the "keywords" field.
func (m *FAQItemMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *FAQItemMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the FAQItem entity.
// If the FAQItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQItemMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *FAQItemMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *FAQItemMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *FAQItemMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
}

// SetAnswer sets the "answer" field.
func (m *FAQItemMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *FAQItemMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the FAQItem entity.
// If the FAQItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQItemMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *FAQItemMutation) ResetAnswer() {
	m.answer = nil
}

// SetIsActive sets the "is_active" field.
func (m *FAQItemMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *FAQItemMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the FAQItem entity.
// If the FAQItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQItemMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *FAQItemMutation) ResetIsActive() {
	m.is_active = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *FAQItemMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *FAQItemMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the FAQItem entity.
// If the FAQItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQItemMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *FAQItemMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *FAQItemMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *FAQItemMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FAQItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FAQItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FAQItem entity.
// If the FAQItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FAQItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FAQItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FAQItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FAQItem entity.
// If the FAQItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FAQItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FAQItemMutation builder.
func (m *FAQItemMutation) Where(ps ...predicate.FAQItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FAQItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FAQItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FAQItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FAQItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FAQItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FAQItem).
func (m *FAQItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FAQItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.question != nil {
		fields = append(fields, faqitem.FieldQuestion)
	}
	if m.keywords != nil {
		fields = append(fields, faqitem.FieldKeywords)
	}
	if m.answer != nil {
		fields = append(fields, faqitem.FieldAnswer)
	}
	if m.is_active != nil {
		fields = append(fields, faqitem.FieldIsActive)
	}
	if m.usage_count != nil {
		fields = append(fields, faqitem.FieldUsageCount)
	}
	if m.created_at != nil {
		fields = append(fields, faqitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, faqitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FAQItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case faqitem.FieldQuestion:
		return m.Question()
	case faqitem.FieldKeywords:
		return m.Keywords()
	case faqitem.FieldAnswer:
		return m.Answer()
	case faqitem.FieldIsActive:
		return m.IsActive()
	case faqitem.FieldUsageCount:
		return m.UsageCount()
	case faqitem.FieldCreatedAt:
		return m.CreatedAt()
	case faqitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FAQItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case faqitem.FieldQuestion:
		return m.OldQuestion(ctx)
	case faqitem.FieldKeywords:
		return m.OldKeywords(ctx)
	case faqitem.FieldAnswer:
		return m.OldAnswer(ctx)
	case faqitem.FieldIsActive:
		return m.OldIsActive(ctx)
	case faqitem.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case faqitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case faqitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FAQItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FAQItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case faqitem.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case faqitem.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case faqitem.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case faqitem.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case faqitem.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case faqitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case faqitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FAQItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FAQItemMutation) AddedFields() []string {
	var fields []string
	if m.addusage_count != nil {
		fields = append(fields, faqitem.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FAQItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case faqitem.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FAQItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case faqitem.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown FAQItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FAQItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FAQItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FAQItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FAQItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FAQItemMutation) ResetField(name string) error {
	switch name {
	case faqitem.FieldQuestion:
		m.ResetQuestion()
		return nil
	case faqitem.FieldKeywords:
		m.ResetKeywords()
		return nil
	case faqitem.FieldAnswer:
		m.ResetAnswer()
		return nil
	case faqitem.FieldIsActive:
		m.ResetIsActive()
		return nil
	case faqitem.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case faqitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case faqitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FAQItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FAQItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FAQItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FAQItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FAQItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FAQItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FAQItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FAQItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FAQItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FAQItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FAQItem edge %s", name)
}

// FeedbackResponseMutation represents an operation that mutates the FeedbackResponse nodes in the graph.
type FeedbackResponseMutation struct {
	config
	op            Op
	typ           string
	id            *string
	rating        *int
	addrating     *int
	comment       *string
	submitted_at  *time.Time
	clearedFields map[string]struct{}
	chat          *int64
	clearedchat   bool
	done          bool
	oldValue      func(context.Context) (*FeedbackResponse, error)
	predicates    []predicate.FeedbackResponse
}

var _ ent.Mutation = (*FeedbackResponseMutation)(nil)

// feedbackresponseOption allows management of the mutation configuration using functional options.
type feedbackresponseOption func(*FeedbackResponseMutation)

// newFeedbackResponseMutation creates new mutation for the FeedbackResponse entity.
func newFeedbackResponseMutation(c config, op Op, opts ...feedbackresponseOption) *FeedbackResponseMutation {
	m := &FeedbackResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackResponseID sets the ID field of the mutation.
func withFeedbackResponseID(id string) feedbackresponseOption {
	return func(m *FeedbackResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackResponse
		)
		m.oldValue = func(ctx context.Context) (*FeedbackResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackResponse sets the old FeedbackResponse of the mutation.
func withFeedbackResponse(node *FeedbackResponse) feedbackresponseOption {
	return func(m *FeedbackResponseMutation) {
		m.oldValue = func(context.Context) (*FeedbackResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeedbackResponse entities.
func (m *FeedbackResponseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackResponseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackResponseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *FeedbackResponseMutation) SetChatID(i int64) {
	m.chat = &i
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *FeedbackResponseMutation) ChatID() (r int64, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the FeedbackResponse entity.
// If the FeedbackResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackResponseMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *FeedbackResponseMutation) ResetChatID() {
	m.chat = nil
}

// SetRating sets the "rating" field.
func (m *FeedbackResponseMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *FeedbackResponseMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the FeedbackResponse entity.
// If the FeedbackResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackResponseMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *FeedbackResponseMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *FeedbackResponseMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *FeedbackResponseMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetComment sets the "comment" field.
func (m *FeedbackResponseMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *FeedbackResponseMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the FeedbackResponse entity.
// If the FeedbackResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackResponseMutation) OldComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *FeedbackResponseMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[feedbackresponse.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *FeedbackResponseMutation) CommentCleared() bool {
	_, ok := m.clearedFields[feedbackresponse.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *FeedbackResponseMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, feedbackresponse.FieldComment)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *FeedbackResponseMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *FeedbackResponseMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the FeedbackResponse entity.
// If the FeedbackResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackResponseMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *FeedbackResponseMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *FeedbackResponseMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[feedbackresponse.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *FeedbackResponseMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *FeedbackResponseMutation) ChatIDs() (ids []int64) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *FeedbackResponseMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the FeedbackResponseMutation builder.
func (m *FeedbackResponseMutation) Where(ps ...predicate.FeedbackResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackResponse).
func (m *FeedbackResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackResponseMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.chat != nil {
		fields = append(fields, feedbackresponse.FieldChatID)
	}
	if m.rating != nil {
		fields = append(fields, feedbackresponse.FieldRating)
	}
	if m.comment != nil {
		fields = append(fields, feedbackresponse.FieldComment)
	}
	if m.submitted_at != nil {
		fields = append(fields, feedbackresponse.FieldSubmittedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbackresponse.FieldChatID:
		return m.ChatID()
	case feedbackresponse.FieldRating:
		return m.Rating()
	case feedbackresponse.FieldComment:
		return m.Comment()
	case feedbackresponse.FieldSubmittedAt:
		return m.SubmittedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbackresponse.FieldChatID:
		return m.OldChatID(ctx)
	case feedbackresponse.FieldRating:
		return m.OldRating(ctx)
	case feedbackresponse.FieldComment:
		return m.OldComment(ctx)
	case feedbackresponse.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbackresponse.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case feedbackresponse.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case feedbackresponse.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case feedbackresponse.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackResponseMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, feedbackresponse.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedbackresponse.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedbackresponse.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedbackresponse.FieldComment) {
		fields = append(fields, feedbackresponse.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackResponseMutation) ClearField(name string) error {
	switch name {
	case feedbackresponse.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown FeedbackResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackResponseMutation) ResetField(name string) error {
	switch name {
	case feedbackresponse.FieldChatID:
		m.ResetChatID()
		return nil
	case feedbackresponse.FieldRating:
		m.ResetRating()
		return nil
	case feedbackresponse.FieldComment:
		m.ResetComment()
		return nil
	case feedbackresponse.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat != nil {
		edges = append(edges, feedbackresponse.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedbackresponse.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat {
		edges = append(edges, feedbackresponse.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case feedbackresponse.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackResponseMutation) ClearEdge(name string) error {
	switch name {
	case feedbackresponse.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown FeedbackResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackResponseMutation) ResetEdge(name string) error {
	switch name {
	case feedbackresponse.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown FeedbackResponse edge %s", name)
}

// GlobalSettingsMutation represents an operation that mutates the GlobalSettings nodes in the graph.
type GlobalSettingsMutation struct {
	config
	op                               Op
	typ                              string
	id                               *string
	default_sla_threshold_minutes    *int
	adddefault_sla_threshold_minutes *int
	warning_offset_minutes           *int
	addwarning_offset_minutes        *int
	escalation_interval_minutes      *int
	addescalation_interval_minutes   *int
	max_escalation_level             *int
	addmax_escalation_level          *int
	global_manager_ids               *[]string
	appendglobal_manager_ids         []string
	low_rating_threshold             *int
	addlow_rating_threshold          *int
	sla_concurrency                  *int
	addsla_concurrency               *int
	sla_rate_limit_max               *int
	addsla_rate_limit_max            *int
	sla_rate_limit_window_ms         *int
	addsla_rate_limit_window_ms      *int
	reconcile_interval_minutes       *int
	addreconcile_interval_minutes    *int
	updated_at                       *time.Time
	clearedFields                    map[string]struct{}
	done                             bool
	oldValue                         func(context.Context) (*GlobalSettings, error)
	predicates                       []predicate.GlobalSettings
}

var _ ent.Mutation = (*GlobalSettingsMutation)(nil)

// globalsettingsOption allows management of the mutation configuration using functional options.
type globalsettingsOption func(*GlobalSettingsMutation)

// newGlobalSettingsMutation creates new mutation for the GlobalSettings entity.
func newGlobalSettingsMutation(c config, op Op, opts ...globalsettingsOption) *GlobalSettingsMutation {
	m := &GlobalSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeGlobalSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGlobalSettingsID sets the ID field of the mutation.
func withGlobalSettingsID(id string) globalsettingsOption {
	return func(m *GlobalSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *GlobalSettings
		)
		m.oldValue = func(ctx context.Context) (*GlobalSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GlobalSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGlobalSettings sets the old GlobalSettings of the mutation.
func withGlobalSettings(node *GlobalSettings) globalsettingsOption {
	return func(m *GlobalSettingsMutation) {
		m.oldValue = func(context.Context) (*GlobalSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GlobalSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GlobalSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GlobalSettings entities.
func (m *GlobalSettingsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GlobalSettingsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GlobalSettingsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GlobalSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDefaultSLAThresholdMinutes sets the "default_sla_threshold_minutes" field.
func (m *GlobalSettingsMutation) SetDefaultSLAThresholdMinutes(i int) {
	m.default_sla_threshold_minutes = &i
	m.adddefault_sla_threshold_minutes = nil
}

// DefaultSLAThresholdMinutes returns the value of the "default_sla_threshold_minutes" field in the mutation.
func (m *GlobalSettingsMutation) DefaultSLAThresholdMinutes() (r int, exists bool) {
	v := m.default_sla_threshold_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultSLAThresholdMinutes returns the old "default_sla_threshold_minutes" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldDefaultSLAThresholdMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultSLAThresholdMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultSLAThresholdMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultSLAThresholdMinutes: %w", err)
	}
	return oldValue.DefaultSLAThresholdMinutes, nil
}

// AddDefaultSLAThresholdMinutes adds i to the "default_sla_threshold_minutes" field.
func (m *GlobalSettingsMutation) AddDefaultSLAThresholdMinutes(i int) {
	if m.adddefault_sla_threshold_minutes != nil {
		*m.adddefault_sla_threshold_minutes += i
	} else {
		m.adddefault_sla_threshold_minutes = &i
	}
}

// AddedDefaultSLAThresholdMinutes returns the value that was added to the "default_sla_threshold_minutes" field in this mutation.
func (m *GlobalSettingsMutation) AddedDefaultSLAThresholdMinutes() (r int, exists bool) {
	v := m.adddefault_sla_threshold_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultSLAThresholdMinutes resets all changes to the "default_sla_threshold_minutes" field.
func (m *GlobalSettingsMutation) ResetDefaultSLAThresholdMinutes() {
	m.default_sla_threshold_minutes = nil
	m.adddefault_sla_threshold_minutes = nil
}

// SetWarningOffsetMinutes sets the "warning_offset_minutes" field.
func (m *GlobalSettingsMutation) SetWarningOffsetMinutes(i int) {
	m.warning_offset_minutes = &i
	m.addwarning_offset_minutes = nil
}

// WarningOffsetMinutes returns the value of the "warning_offset_minutes" field in the mutation.
func (m *GlobalSettingsMutation) WarningOffsetMinutes() (r int, exists bool) {
	v := m.warning_offset_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldWarningOffsetMinutes returns the old "warning_offset_minutes" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldWarningOffsetMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarningOffsetMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarningOffsetMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarningOffsetMinutes: %w", err)
	}
	return oldValue.WarningOffsetMinutes, nil
}

// AddWarningOffsetMinutes adds i to the "warning_offset_minutes" field.
func (m *GlobalSettingsMutation) AddWarningOffsetMinutes(i int) {
	if m.addwarning_offset_minutes != nil {
		*m.addwarning_offset_minutes += i
	} else {
		m.addwarning_offset_minutes = &i
	}
}

// AddedWarningOffsetMinutes returns the value that was added to the "warning_offset_minutes" field in this mutation.
func (m *GlobalSettingsMutation) AddedWarningOffsetMinutes() (r int, exists bool) {
	v := m.addwarning_offset_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetWarningOffsetMinutes resets all changes to the "warning_offset_minutes" field.
func (m *GlobalSettingsMutation) ResetWarningOffsetMinutes() {
	m.warning_offset_minutes = nil
	m.addwarning_offset_minutes = nil
}

// SetEscalationIntervalMinutes sets the "escalation_interval_minutes" field.
func (m *GlobalSettingsMutation) SetEscalationIntervalMinutes(i int) {
	m.escalation_interval_minutes = &i
	m.addescalation_interval_minutes = nil
}

// EscalationIntervalMinutes returns the value of the "escalation_interval_minutes" field in the mutation.
func (m *GlobalSettingsMutation) EscalationIntervalMinutes() (r int, exists bool) {
	v := m.escalation_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationIntervalMinutes returns the old "escalation_interval_minutes" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldEscalationIntervalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationIntervalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationIntervalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationIntervalMinutes: %w", err)
	}
	return oldValue.EscalationIntervalMinutes, nil
}

// AddEscalationIntervalMinutes adds i to the "escalation_interval_minutes" field.
func (m *GlobalSettingsMutation) AddEscalationIntervalMinutes(i int) {
	if m.addescalation_interval_minutes != nil {
		*m.addescalation_interval_minutes += i
	} else {
		m.addescalation_interval_minutes = &i
	}
}

// AddedEscalationIntervalMinutes returns the value that was added to the "escalation_interval_minutes" field in this mutation.
func (m *GlobalSettingsMutation) AddedEscalationIntervalMinutes() (r int, exists bool) {
	v := m.addescalation_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetEscalationIntervalMinutes resets all changes to the "escalation_interval_minutes" field.
func (m *GlobalSettingsMutation) ResetEscalationIntervalMinutes() {
	m.escalation_interval_minutes = nil
	m.addescalation_interval_minutes = nil
}

// SetMaxEscalationLevel sets the "max_escalation_level" field.
func (m *GlobalSettingsMutation) SetMaxEscalationLevel(i int) {
	m.max_escalation_level = &i
	m.addmax_escalation_level = nil
}

// MaxEscalationLevel returns the value of the "max_escalation_level" field in the mutation.
func (m *GlobalSettingsMutation) MaxEscalationLevel() (r int, exists bool) {
	v := m.max_escalation_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxEscalationLevel returns the old "max_escalation_level" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldMaxEscalationLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxEscalationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxEscalationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxEscalationLevel: %w", err)
	}
	return oldValue.MaxEscalationLevel, nil
}

// AddMaxEscalationLevel adds i to the "max_escalation_level" field.
func (m *GlobalSettingsMutation) AddMaxEscalationLevel(i int) {
	if m.addmax_escalation_level != nil {
		*m.addmax_escalation_level += i
	} else {
		m.addmax_escalation_level = &i
	}
}

// AddedMaxEscalationLevel returns the value that was added to the "max_escalation_level" field in this mutation.
func (m *GlobalSettingsMutation) AddedMaxEscalationLevel() (r int, exists bool) {
	v := m.addmax_escalation_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxEscalationLevel resets all changes to the "max_escalation_level" field.
func (m *GlobalSettingsMutation) ResetMaxEscalationLevel() {
	m.max_escalation_level = nil
	m.addmax_escalation_level = nil
}

// SetGlobalManagerIds sets the "global_manager_ids" field.
func (m *GlobalSettingsMutation) SetGlobalManagerIds(s []string) {
	m.global_manager_ids = &s
	m.appendglobal_manager_ids = nil
}

// GlobalManagerIds returns the value of the "global_manager_ids" field in the mutation.
func (m *GlobalSettingsMutation) GlobalManagerIds() (r []string, exists bool) {
	v := m.global_manager_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldGlobalManagerIds returns the old "global_manager_ids" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldGlobalManagerIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlobalManagerIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlobalManagerIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlobalManagerIds: %w", err)
	}
	return oldValue.GlobalManagerIds, nil
}

// AppendGlobalManagerIds adds s to the "global_manager_ids" field.
func (m *GlobalSettingsMutation) AppendGlobalManagerIds(s []string) {
	m.appendglobal_manager_ids = append(m.appendglobal_manager_ids, s...)
}

// AppendedGlobalManagerIds returns the list of values that were appended to the "global_manager_ids" field in this mutation.
func (m *GlobalSettingsMutation) AppendedGlobalManagerIds() ([]string, bool) {
	if len(m.appendglobal_manager_ids) == 0 {
		return nil, false
	}
	return m.appendglobal_manager_ids, true
}

// ClearGlobalManagerIds clears the value of the "global_manager_ids" field.
func (m *GlobalSettingsMutation) ClearGlobalManagerIds() {
	m.global_manager_ids = nil
	m.appendglobal_manager_ids = nil
	m.clearedFields[globalsettings.FieldGlobalManagerIds] = struct{}{}
}

// GlobalManagerIdsCleared returns if the "global_manager_ids" field was cleared in this mutation.
func (m *GlobalSettingsMutation) GlobalManagerIdsCleared() bool {
	_, ok := m.clearedFields[globalsettings.FieldGlobalManagerIds]
	return ok
}

// ResetGlobalManagerIds resets all changes to the "global_manager_ids" field.
func (m *GlobalSettingsMutation) ResetGlobalManagerIds() {
	m.global_manager_ids = nil
	m.appendglobal_manager_ids = nil
	delete(m.clearedFields, globalsettings.FieldGlobalManagerIds)
}

// SetLowRatingThreshold sets the "low_rating_threshold" field.
func (m *GlobalSettingsMutation) SetLowRatingThreshold(i int) {
	m.low_rating_threshold = &i
	m.addlow_rating_threshold = nil
}

// LowRatingThreshold returns the value of the "low_rating_threshold" field in the mutation.
func (m *GlobalSettingsMutation) LowRatingThreshold() (r int, exists bool) {
	v := m.low_rating_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldLowRatingThreshold returns the old "low_rating_threshold" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldLowRatingThreshold(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowRatingThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowRatingThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowRatingThreshold: %w", err)
	}
	return oldValue.LowRatingThreshold, nil
}

// AddLowRatingThreshold adds i to the "low_rating_threshold" field.
func (m *GlobalSettingsMutation) AddLowRatingThreshold(i int) {
	if m.addlow_rating_threshold != nil {
		*m.addlow_rating_threshold += i
	} else {
		m.addlow_rating_threshold = &i
	}
}

// AddedLowRatingThreshold returns the value that was added to the "low_rating_threshold" field in this mutation.
func (m *GlobalSettingsMutation) AddedLowRatingThreshold() (r int, exists bool) {
	v := m.addlow_rating_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowRatingThreshold resets all changes to the "low_rating_threshold" field.
func (m *GlobalSettingsMutation) ResetLowRatingThreshold() {
	m.low_rating_threshold = nil
	m.addlow_rating_threshold = nil
}

// SetSLAConcurrency sets the "sla_concurrency" field.
func (m *GlobalSettingsMutation) SetSLAConcurrency(i int) {
	m.sla_concurrency = &i
	m.addsla_concurrency = nil
}

// SLAConcurrency returns the value of the "sla_concurrency" field in the mutation.
func (m *GlobalSettingsMutation) SLAConcurrency() (r int, exists bool) {
	v := m.sla_concurrency
	if v == nil {
		return
	}
	return *v, true
}

// OldSLAConcurrency returns the old "sla_concurrency" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldSLAConcurrency(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSLAConcurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSLAConcurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSLAConcurrency: %w", err)
	}
	return oldValue.SLAConcurrency, nil
}

// AddSLAConcurrency adds i to the "sla_concurrency" field.
func (m *GlobalSettingsMutation) AddSLAConcurrency(i int) {
	if m.addsla_concurrency != nil {
		*m.addsla_concurrency += i
	} else {
		m.addsla_concurrency = &i
	}
}

// AddedSLAConcurrency returns the value that was added to the "sla_concurrency" field in this mutation.
func (m *GlobalSettingsMutation) AddedSLAConcurrency() (r int, exists bool) {
	v := m.addsla_concurrency
	if v == nil {
		return
	}
	return *v, true
}

// ResetSLAConcurrency resets all changes to the "sla_concurrency" field.
func (m *GlobalSettingsMutation) ResetSLAConcurrency() {
	m.sla_concurrency = nil
	m.addsla_concurrency = nil
}

// SetSLARateLimitMax sets the "sla_rate_limit_max" field.
func (m *GlobalSettingsMutation) SetSLARateLimitMax(i int) {
	m.sla_rate_limit_max = &i
	m.addsla_rate_limit_max = nil
}

// SLARateLimitMax returns the value of the "sla_rate_limit_max" field in the mutation.
func (m *GlobalSettingsMutation) SLARateLimitMax() (r int, exists bool) {
	v := m.sla_rate_limit_max
	if v == nil {
		return
	}
	return *v, true
}

// OldSLARateLimitMax returns the old "sla_rate_limit_max" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldSLARateLimitMax(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSLARateLimitMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSLARateLimitMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSLARateLimitMax: %w", err)
	}
	return oldValue.SLARateLimitMax, nil
}

// AddSLARateLimitMax adds i to the "sla_rate_limit_max" field.
func (m *GlobalSettingsMutation) AddSLARateLimitMax(i int) {
	if m.addsla_rate_limit_max != nil {
		*m.addsla_rate_limit_max += i
	} else {
		m.addsla_rate_limit_max = &i
	}
}

// AddedSLARateLimitMax returns the value that was added to the "sla_rate_limit_max" field in this mutation.
func (m *GlobalSettingsMutation) AddedSLARateLimitMax() (r int, exists bool) {
	v := m.addsla_rate_limit_max
	if v == nil {
		return
	}
	return *v, true
}

// ResetSLARateLimitMax resets all changes to the "sla_rate_limit_max" field.
func (m *GlobalSettingsMutation) ResetSLARateLimitMax() {
	m.sla_rate_limit_max = nil
	m.addsla_rate_limit_max = nil
}

// SetSLARateLimitWindowMs sets the "sla_rate_limit_window_ms" field.
func (m *GlobalSettingsMutation) SetSLARateLimitWindowMs(i int) {
	m.sla_rate_limit_window_ms = &i
	m.addsla_rate_limit_window_ms = nil
}

// SLARateLimitWindowMs returns the value of the "sla_rate_limit_window_ms" field in the mutation.
func (m *GlobalSettingsMutation) SLARateLimitWindowMs() (r int, exists bool) {
	v := m.sla_rate_limit_window_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldSLARateLimitWindowMs returns the old "sla_rate_limit_window_ms" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldSLARateLimitWindowMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSLARateLimitWindowMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSLARateLimitWindowMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSLARateLimitWindowMs: %w", err)
	}
	return oldValue.SLARateLimitWindowMs, nil
}

// AddSLARateLimitWindowMs adds i to the "sla_rate_limit_window_ms" field.
func (m *GlobalSettingsMutation) AddSLARateLimitWindowMs(i int) {
	if m.addsla_rate_limit_window_ms != nil {
		*m.addsla_rate_limit_window_ms += i
	} else {
		m.addsla_rate_limit_window_ms = &i
	}
}

// AddedSLARateLimitWindowMs returns the value that was added to the "sla_rate_limit_window_ms" field in this mutation.
func (m *GlobalSettingsMutation) AddedSLARateLimitWindowMs() (r int, exists bool) {
	v := m.addsla_rate_limit_window_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetSLARateLimitWindowMs resets all changes to the "sla_rate_limit_window_ms" field.
func (m *GlobalSettingsMutation) ResetSLARateLimitWindowMs() {
	m.sla_rate_limit_window_ms = nil
	m.addsla_rate_limit_window_ms = nil
}

// SetReconcileIntervalMinutes sets the "reconcile_interval_minutes" field.
func (m *GlobalSettingsMutation) SetReconcileIntervalMinutes(i int) {
	m.reconcile_interval_minutes = &i
	m.addreconcile_interval_minutes = nil
}

// ReconcileIntervalMinutes returns the value of the "reconcile_interval_minutes" field in the mutation.
func (m *GlobalSettingsMutation) ReconcileIntervalMinutes() (r int, exists bool) {
	v := m.reconcile_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldReconcileIntervalMinutes returns the old "reconcile_interval_minutes" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldReconcileIntervalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReconcileIntervalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReconcileIntervalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReconcileIntervalMinutes: %w", err)
	}
	return oldValue.ReconcileIntervalMinutes, nil
}

// AddReconcileIntervalMinutes adds i to the "reconcile_interval_minutes" field.
func (m *GlobalSettingsMutation) AddReconcileIntervalMinutes(i int) {
	if m.addreconcile_interval_minutes != nil {
		*m.addreconcile_interval_minutes += i
	} else {
		m.addreconcile_interval_minutes = &i
	}
}

// AddedReconcileIntervalMinutes returns the value that was added to the "reconcile_interval_minutes" field in this mutation.
func (m *GlobalSettingsMutation) AddedReconcileIntervalMinutes() (r int, exists bool) {
	v := m.addreconcile_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetReconcileIntervalMinutes resets all changes to the "reconcile_interval_minutes" field.
func (m *GlobalSettingsMutation) ResetReconcileIntervalMinutes() {
	m.reconcile_interval_minutes = nil
	m.addreconcile_interval_minutes = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GlobalSettingsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GlobalSettingsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GlobalSettings entity.
// If the GlobalSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GlobalSettingsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GlobalSettingsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GlobalSettingsMutation builder.
func (m *GlobalSettingsMutation) Where(ps ...predicate.GlobalSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GlobalSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GlobalSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GlobalSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GlobalSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GlobalSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GlobalSettings).
func (m *GlobalSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GlobalSettingsMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.default_sla_threshold_minutes != nil {
		fields = append(fields, globalsettings.FieldDefaultSLAThresholdMinutes)
	}
	if m.warning_offset_minutes != nil {
		fields = append(fields, globalsettings.FieldWarningOffsetMinutes)
	}
	if m.escalation_interval_minutes != nil {
		fields = append(fields, globalsettings.FieldEscalationIntervalMinutes)
	}
	if m.max_escalation_level != nil {
		fields = append(fields, globalsettings.FieldMaxEscalationLevel)
	}
	if m.global_manager_ids != nil {
		fields = append(fields, globalsettings.FieldGlobalManagerIds)
	}
	if m.low_rating_threshold != nil {
		fields = append(fields, globalsettings.FieldLowRatingThreshold)
	}
	if m.sla_concurrency != nil {
		fields = append(fields, globalsettings.FieldSLAConcurrency)
	}
	if m.sla_rate_limit_max != nil {
		fields = append(fields, globalsettings.FieldSLARateLimitMax)
	}
	if m.sla_rate_limit_window_ms != nil {
		fields = append(fields, globalsettings.FieldSLARateLimitWindowMs)
	}
	if m.reconcile_interval_minutes != nil {
		fields = append(fields, globalsettings.FieldReconcileIntervalMinutes)
	}
	if m.updated_at != nil {
		fields = append(fields, globalsettings.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GlobalSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case globalsettings.FieldDefaultSLAThresholdMinutes:
		return m.DefaultSLAThresholdMinutes()
	case globalsettings.FieldWarningOffsetMinutes:
		return m.WarningOffsetMinutes()
	case globalsettings.FieldEscalationIntervalMinutes:
		return m.EscalationIntervalMinutes()
	case globalsettings.FieldMaxEscalationLevel:
		return m.MaxEscalationLevel()
	case globalsettings.FieldGlobalManagerIds:
		return m.GlobalManagerIds()
	case globalsettings.FieldLowRatingThreshold:
		return m.LowRatingThreshold()
	case globalsettings.FieldSLAConcurrency:
		return m.SLAConcurrency()
	case globalsettings.FieldSLARateLimitMax:
		return m.SLARateLimitMax()
	case globalsettings.FieldSLARateLimitWindowMs:
		return m.SLARateLimitWindowMs()
	case globalsettings.FieldReconcileIntervalMinutes:
		return m.ReconcileIntervalMinutes()
	case globalsettings.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GlobalSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case globalsettings.FieldDefaultSLAThresholdMinutes:
		return m.OldDefaultSLAThresholdMinutes(ctx)
	case globalsettings.FieldWarningOffsetMinutes:
		return m.OldWarningOffsetMinutes(ctx)
	case globalsettings.FieldEscalationIntervalMinutes:
		return m.OldEscalationIntervalMinutes(ctx)
	case globalsettings.FieldMaxEscalationLevel:
		return m.OldMaxEscalationLevel(ctx)
	case globalsettings.FieldGlobalManagerIds:
		return m.OldGlobalManagerIds(ctx)
	case globalsettings.FieldLowRatingThreshold:
		return m.OldLowRatingThreshold(ctx)
	case globalsettings.FieldSLAConcurrency:
		return m.OldSLAConcurrency(ctx)
	case globalsettings.FieldSLARateLimitMax:
		return m.OldSLARateLimitMax(ctx)
	case globalsettings.FieldSLARateLimitWindowMs:
		return m.OldSLARateLimitWindowMs(ctx)
	case globalsettings.FieldReconcileIntervalMinutes:
		return m.OldReconcileIntervalMinutes(ctx)
	case globalsettings.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GlobalSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GlobalSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case globalsettings.FieldDefaultSLAThresholdMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultSLAThresholdMinutes(v)
		return nil
	case globalsettings.FieldWarningOffsetMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarningOffsetMinutes(v)
		return nil
	case globalsettings.FieldEscalationIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationIntervalMinutes(v)
		return nil
	case globalsettings.FieldMaxEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxEscalationLevel(v)
		return nil
	case globalsettings.FieldGlobalManagerIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlobalManagerIds(v)
		return nil
	case globalsettings.FieldLowRatingThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowRatingThreshold(v)
		return nil
	case globalsettings.FieldSLAConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSLAConcurrency(v)
		return nil
	case globalsettings.FieldSLARateLimitMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSLARateLimitMax(v)
		return nil
	case globalsettings.FieldSLARateLimitWindowMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSLARateLimitWindowMs(v)
		return nil
	case globalsettings.FieldReconcileIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReconcileIntervalMinutes(v)
		return nil
	case globalsettings.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GlobalSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GlobalSettingsMutation) AddedFields() []string {
	var fields []string
	if m.adddefault_sla_threshold_minutes != nil {
		fields = append(fields, globalsettings.FieldDefaultSLAThresholdMinutes)
	}
	if m.addwarning_offset_minutes != nil {
		fields = append(fields, globalsettings.FieldWarningOffsetMinutes)
	}
	if m.addescalation_interval_minutes != nil {
		fields = append(fields, globalsettings.FieldEscalationIntervalMinutes)
	}
	if m.addmax_escalation_level != nil {
		fields = append(fields, globalsettings.FieldMaxEscalationLevel)
	}
	if m.addlow_rating_threshold != nil {
		fields = append(fields, globalsettings.FieldLowRatingThreshold)
	}
	if m.addsla_concurrency != nil {
		fields = append(fields, globalsettings.FieldSLAConcurrency)
	}
	if m.addsla_rate_limit_max != nil {
		fields = append(fields, globalsettings.FieldSLARateLimitMax)
	}
	if m.addsla_rate_limit_window_ms != nil {
		fields = append(fields, globalsettings.FieldSLARateLimitWindowMs)
	}
	if m.addreconcile_interval_minutes != nil {
		fields = append(fields, globalsettings.FieldReconcileIntervalMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GlobalSettingsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case globalsettings.FieldDefaultSLAThresholdMinutes:
		return m.AddedDefaultSLAThresholdMinutes()
	case globalsettings.FieldWarningOffsetMinutes:
		return m.AddedWarningOffsetMinutes()
	case globalsettings.FieldEscalationIntervalMinutes:
		return m.AddedEscalationIntervalMinutes()
	case globalsettings.FieldMaxEscalationLevel:
		return m.AddedMaxEscalationLevel()
	case globalsettings.FieldLowRatingThreshold:
		return m.AddedLowRatingThreshold()
	case globalsettings.FieldSLAConcurrency:
		return m.AddedSLAConcurrency()
	case globalsettings.FieldSLARateLimitMax:
		return m.AddedSLARateLimitMax()
	case globalsettings.FieldSLARateLimitWindowMs:
		return m.AddedSLARateLimitWindowMs()
	case globalsettings.FieldReconcileIntervalMinutes:
		return m.AddedReconcileIntervalMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GlobalSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case globalsettings.FieldDefaultSLAThresholdMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultSLAThresholdMinutes(v)
		return nil
	case globalsettings.FieldWarningOffsetMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWarningOffsetMinutes(v)
		return nil
	case globalsettings.FieldEscalationIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEscalationIntervalMinutes(v)
		return nil
	case globalsettings.FieldMaxEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxEscalationLevel(v)
		return nil
	case globalsettings.FieldLowRatingThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowRatingThreshold(v)
		return nil
	case globalsettings.FieldSLAConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSLAConcurrency(v)
		return nil
	case globalsettings.FieldSLARateLimitMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSLARateLimitMax(v)
		return nil
	case globalsettings.FieldSLARateLimitWindowMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSLARateLimitWindowMs(v)
		return nil
	case globalsettings.FieldReconcileIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReconcileIntervalMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown GlobalSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GlobalSettingsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(globalsettings.FieldGlobalManagerIds) {
		fields = append(fields, globalsettings.FieldGlobalManagerIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GlobalSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GlobalSettingsMutation) ClearField(name string) error {
	switch name {
	case globalsettings.FieldGlobalManagerIds:
		m.ClearGlobalManagerIds()
		return nil
	}
	return fmt.Errorf("unknown GlobalSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GlobalSettingsMutation) ResetField(name string) error {
	switch name {
	case globalsettings.FieldDefaultSLAThresholdMinutes:
		m.ResetDefaultSLAThresholdMinutes()
		return nil
	case globalsettings.FieldWarningOffsetMinutes:
		m.ResetWarningOffsetMinutes()
		return nil
	case globalsettings.FieldEscalationIntervalMinutes:
		m.ResetEscalationIntervalMinutes()
		return nil
	case globalsettings.FieldMaxEscalationLevel:
		m.ResetMaxEscalationLevel()
		return nil
	case globalsettings.FieldGlobalManagerIds:
		m.ResetGlobalManagerIds()
		return nil
	case globalsettings.FieldLowRatingThreshold:
		m.ResetLowRatingThreshold()
		return nil
	case globalsettings.FieldSLAConcurrency:
		m.ResetSLAConcurrency()
		return nil
	case globalsettings.FieldSLARateLimitMax:
		m.ResetSLARateLimitMax()
		return nil
	case globalsettings.FieldSLARateLimitWindowMs:
		m.ResetSLARateLimitWindowMs()
		return nil
	case globalsettings.FieldReconcileIntervalMinutes:
		m.ResetReconcileIntervalMinutes()
		return nil
	case globalsettings.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GlobalSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GlobalSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GlobalSettingsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GlobalSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GlobalSettingsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GlobalSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GlobalSettingsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GlobalSettingsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GlobalSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GlobalSettingsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GlobalSettings edge %s", name)
}

// LeaseMutation represents an operation that mutates the Lease nodes in the graph.
type LeaseMutation struct {
	config
	op            Op
	typ           string
	id            *string
	holder        *string
	expires_at    *time.Time
	acquired_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Lease, error)
	predicates    []predicate.Lease
}

var _ ent.Mutation = (*LeaseMutation)(nil)

// leaseOption allows management of the mutation configuration using functional options.
type leaseOption func(*LeaseMutation)

// newLeaseMutation creates new mutation for the Lease entity.
func newLeaseMutation(c config, op Op, opts ...leaseOption) *LeaseMutation {
	m := &LeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeaseID sets the ID field of the mutation.
func withLeaseID(id string) leaseOption {
	return func(m *LeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *Lease
		)
		m.oldValue = func(ctx context.Context) (*Lease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLease sets the old Lease of the mutation.
func withLease(node *Lease) leaseOption {
	return func(m *LeaseMutation) {
		m.oldValue = func(context.Context) (*Lease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lease entities.
func (m *LeaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHolder sets the "holder" field.
func (m *LeaseMutation) SetHolder(s string) {
	m.holder = &s
}

// Holder returns the value of the "holder" field in the mutation.
func (m *LeaseMutation) Holder() (r string, exists bool) {
	v := m.holder
	if v == nil {
		return
	}
	return *v, true
}

// OldHolder returns the old "holder" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldHolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHolder: %w", err)
	}
	return oldValue.Holder, nil
}

// ResetHolder resets all changes to the "holder" field.
func (m *LeaseMutation) ResetHolder() {
	m.holder = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *LeaseMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *LeaseMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *LeaseMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *LeaseMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *LeaseMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *LeaseMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// Where appends a list predicates to the LeaseMutation builder.
func (m *LeaseMutation) Where(ps ...predicate.Lease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lease).
func (m *LeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeaseMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.holder != nil {
		fields = append(fields, lease.FieldHolder)
	}
	if m.expires_at != nil {
		fields = append(fields, lease.FieldExpiresAt)
	}
	if m.acquired_at != nil {
		fields = append(fields, lease.FieldAcquiredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lease.FieldHolder:
		return m.Holder()
	case lease.FieldExpiresAt:
		return m.ExpiresAt()
	case lease.FieldAcquiredAt:
		return m.AcquiredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lease.FieldHolder:
		return m.OldHolder(ctx)
	case lease.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case lease.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lease.FieldHolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHolder(v)
		return nil
	case lease.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case lease.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Lease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeaseMutation) ResetField(name string) error {
	switch name {
	case lease.FieldHolder:
		m.ResetHolder()
		return nil
	case lease.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case lease.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lease edge %s", name)
}

// SLAAlertMutation represents an operation that mutates the SLAAlert nodes in the graph.
type SLAAlertMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	alert_type          *slaalert.AlertType
	minutes_elapsed     *int
	addminutes_elapsed  *int
	escalation_level    *int
	addescalation_level *int
	recipient_ids       *[]string
	appendrecipient_ids []string
	delivery_status     *slaalert.DeliveryStatus
	delivered_count     *int
	adddelivered_count  *int
	failed_count        *int
	addfailed_count     *int
	next_escalation_at  *time.Time
	resolved_action     *slaalert.ResolvedAction
	created_at          *time.Time
	clearedFields       map[string]struct{}
	request             *string
	clearedrequest      bool
	done                bool
	oldValue            func(context.Context) (*SLAAlert, error)
	predicates          []predicate.SLAAlert
}

var _ ent.Mutation = (*SLAAlertMutation)(nil)

// slaalertOption allows management of the mutation configuration using functional options.
type slaalertOption func(*SLAAlertMutation)

// newSLAAlertMutation creates new mutation for the SLAAlert entity.
func newSLAAlertMutation(c config, op Op, opts ...slaalertOption) *SLAAlertMutation {
	m := &SLAAlertMutation{
		config:        c,
		op:            op,
		typ:           TypeSLAAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSLAAlertID sets the ID field of the mutation.
func withSLAAlertID(id string) slaalertOption {
	return func(m *SLAAlertMutation) {
		var (
			err   error
			once  sync.Once
			value *SLAAlert
		)
		m.oldValue = func(ctx context.Context) (*SLAAlert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SLAAlert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSLAAlert sets the old SLAAlert of the mutation.
func withSLAAlert(node *SLAAlert) slaalertOption {
	return func(m *SLAAlertMutation) {
		m.oldValue = func(context.Context) (*SLAAlert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SLAAlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SLAAlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SLAAlert entities.
func (m *SLAAlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SLAAlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SLAAlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SLAAlert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *SLAAlertMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *SLAAlertMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *SLAAlertMutation) ResetRequestID() {
	m.request = nil
}

// SetAlertType sets the "alert_type" field.
func (m *SLAAlertMutation) SetAlertType(st slaalert.AlertType) {
	m.alert_type = &st
}

// AlertType returns the value of the "alert_type" field in the mutation.
func (m *SLAAlertMutation) AlertType() (r slaalert.AlertType, exists bool) {
	v := m.alert_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertType returns the old "alert_type" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldAlertType(ctx context.Context) (v slaalert.AlertType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertType: %w", err)
	}
	return oldValue.AlertType, nil
}

// ResetAlertType resets all changes to the "alert_type" field.
func (m *SLAAlertMutation) ResetAlertType() {
	m.alert_type = nil
}

// SetMinutesElapsed sets the "minutes_elapsed" field.
func (m *SLAAlertMutation) SetMinutesElapsed(i int) {
	m.minutes_elapsed = &i
	m.addminutes_elapsed = nil
}

// MinutesElapsed returns the value of the "minutes_elapsed" field in the mutation.
func (m *SLAAlertMutation) MinutesElapsed() (r int, exists bool) {
	v := m.minutes_elapsed
	if v == nil {
		return
	}
	return *v, true
}

// OldMinutesElapsed returns the old "minutes_elapsed" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldMinutesElapsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinutesElapsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinutesElapsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinutesElapsed: %w", err)
	}
	return oldValue.MinutesElapsed, nil
}

// AddMinutesElapsed adds i to the "minutes_elapsed" field.
func (m *SLAAlertMutation) AddMinutesElapsed(i int) {
	if m.addminutes_elapsed != nil {
		*m.addminutes_elapsed += i
	} else {
		m.addminutes_elapsed = &i
	}
}

// AddedMinutesElapsed returns the value that was added to the "minutes_elapsed" field in this mutation.
func (m *SLAAlertMutation) AddedMinutesElapsed() (r int, exists bool) {
	v := m.addminutes_elapsed
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinutesElapsed resets all changes to the "minutes_elapsed" field.
func (m *SLAAlertMutation) ResetMinutesElapsed() {
	m.minutes_elapsed = nil
	m.addminutes_elapsed = nil
}

// SetEscalationLevel sets the "escalation_level" field.
func (m *SLAAlertMutation) SetEscalationLevel(i int) {
	m.escalation_level = &i
	m.addescalation_level = nil
}

// EscalationLevel returns the value of the "escalation_level" field in the mutation.
func (m *SLAAlertMutation) EscalationLevel() (r int, exists bool) {
	v := m.escalation_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationLevel returns the old "escalation_level" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldEscalationLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationLevel: %w", err)
	}
	return oldValue.EscalationLevel, nil
}

// AddEscalationLevel adds i to the "escalation_level" field.
func (m *SLAAlertMutation) AddEscalationLevel(i int) {
	if m.addescalation_level != nil {
		*m.addescalation_level += i
	} else {
		m.addescalation_level = &i
	}
}

// AddedEscalationLevel returns the value that was added to the "escalation_level" field in this mutation.
func (m *SLAAlertMutation) AddedEscalationLevel() (r int, exists bool) {
	v := m.addescalation_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetEscalationLevel resets all changes to the "escalation_level" field.
func (m *SLAAlertMutation) ResetEscalationLevel() {
	m.escalation_level = nil
	m.addescalation_level = nil
}

// SetRecipientIds sets the "recipient_ids" field.
func (m *SLAAlertMutation) SetRecipientIds(s []string) {
	m.recipient_ids = &s
	m.appendrecipient_ids = nil
}

// RecipientIds returns the value of the "recipient_ids" field in the mutation.
func (m *SLAAlertMutation) RecipientIds() (r []string, exists bool) {
	v := m.recipient_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientIds returns the old "recipient_ids" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldRecipientIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientIds: %w", err)
	}
	return oldValue.RecipientIds, nil
}

// AppendRecipientIds adds s to the "recipient_ids" field.
func (m *SLAAlertMutation) AppendRecipientIds(s []string) {
	m.appendrecipient_ids = append(m.appendrecipient_ids, s...)
}

// AppendedRecipientIds returns the list of values that were appended to the "recipient_ids" field in this mutation.
func (m *SLAAlertMutation) AppendedRecipientIds() ([]string, bool) {
	if len(m.appendrecipient_ids) == 0 {
		return nil, false
	}
	return m.appendrecipient_ids, true
}

// ClearRecipientIds clears the value of the "recipient_ids" field.
func (m *SLAAlertMutation) ClearRecipientIds() {
	m.recipient_ids = nil
	m.appendrecipient_ids = nil
	m.clearedFields[slaalert.FieldRecipientIds] = struct{}{}
}

// RecipientIdsCleared returns if the "recipient_ids" field was cleared in this mutation.
func (m *SLAAlertMutation) RecipientIdsCleared() bool {
	_, ok := m.clearedFields[slaalert.FieldRecipientIds]
	return ok
}

// ResetRecipientIds resets all changes to the "recipient_ids" field.
func (m *SLAAlertMutation) ResetRecipientIds() {
	m.recipient_ids = nil
	m.appendrecipient_ids = nil
	delete(m.clearedFields, slaalert.FieldRecipientIds)
}

// SetDeliveryStatus sets the "delivery_status" field.
func (m *SLAAlertMutation) SetDeliveryStatus(ss slaalert.DeliveryStatus) {
	m.delivery_status = &ss
}

// DeliveryStatus returns the value of the "delivery_status" field in the mutation.
func (m *SLAAlertMutation) DeliveryStatus() (r slaalert.DeliveryStatus, exists bool) {
	v := m.delivery_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryStatus returns the old "delivery_status" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldDeliveryStatus(ctx context.Context) (v slaalert.DeliveryStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryStatus: %w", err)
	}
	return oldValue.DeliveryStatus, nil
}

// ResetDeliveryStatus resets all changes to the "delivery_status" field.
func (m *SLAAlertMutation) ResetDeliveryStatus() {
	m.delivery_status = nil
}

// SetDeliveredCount sets the "delivered_count" field.
func (m *SLAAlertMutation) SetDeliveredCount(i int) {
	m.delivered_count = &i
	m.adddelivered_count = nil
}

// DeliveredCount returns the value of the "delivered_count" field in the mutation.
func (m *SLAAlertMutation) DeliveredCount() (r int, exists bool) {
	v := m.delivered_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredCount returns the old "delivered_count" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldDeliveredCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredCount: %w", err)
	}
	return oldValue.DeliveredCount, nil
}

// AddDeliveredCount adds i to the "delivered_count" field.
func (m *SLAAlertMutation) AddDeliveredCount(i int) {
	if m.adddelivered_count != nil {
		*m.adddelivered_count += i
	} else {
		m.adddelivered_count = &i
	}
}

// AddedDeliveredCount returns the value that was added to the "delivered_count" field in this mutation.
func (m *SLAAlertMutation) AddedDeliveredCount() (r int, exists bool) {
	v := m.adddelivered_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeliveredCount resets all changes to the "delivered_count" field.
func (m *SLAAlertMutation) ResetDeliveredCount() {
	m.delivered_count = nil
	m.adddelivered_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *SLAAlertMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *SLAAlertMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *SLAAlertMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *SLAAlertMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *SLAAlertMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetNextEscalationAt sets the "next_escalation_at" field.
func (m *SLAAlertMutation) SetNextEscalationAt(t time.Time) {
	m.next_escalation_at = &t
}

// NextEscalationAt returns the value of the "next_escalation_at" field in the mutation.
func (m *SLAAlertMutation) NextEscalationAt() (r time.Time, exists bool) {
	v := m.next_escalation_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextEscalationAt returns the old "next_escalation_at" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldNextEscalationAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextEscalationAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextEscalationAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextEscalationAt: %w", err)
	}
	return oldValue.NextEscalationAt, nil
}

// ClearNextEscalationAt clears the value of the "next_escalation_at" field.
func (m *SLAAlertMutation) ClearNextEscalationAt() {
	m.next_escalation_at = nil
	m.clearedFields[slaalert.FieldNextEscalationAt] = struct{}{}
}

// NextEscalationAtCleared returns if the "next_escalation_at" field was cleared in this mutation.
func (m *SLAAlertMutation) NextEscalationAtCleared() bool {
	_, ok := m.clearedFields[slaalert.FieldNextEscalationAt]
	return ok
}

// ResetNextEscalationAt resets all changes to the "next_escalation_at" field.
func (m *SLAAlertMutation) ResetNextEscalationAt() {
	m.next_escalation_at = nil
	delete(m.clearedFields, slaalert.FieldNextEscalationAt)
}

// SetResolvedAction sets the "resolved_action" field.
func (m *SLAAlertMutation) SetResolvedAction(sa slaalert.ResolvedAction) {
	m.resolved_action = &sa
}

// ResolvedAction returns the value of the "resolved_action" field in the mutation.
func (m *SLAAlertMutation) ResolvedAction() (r slaalert.ResolvedAction, exists bool) {
	v := m.resolved_action
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAction returns the old "resolved_action" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldResolvedAction(ctx context.Context) (v *slaalert.ResolvedAction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAction: %w", err)
	}
	return oldValue.ResolvedAction, nil
}

// ClearResolvedAction clears the value of the "resolved_action" field.
func (m *SLAAlertMutation) ClearResolvedAction() {
	m.resolved_action = nil
	m.clearedFields[slaalert.FieldResolvedAction] = struct{}{}
}

// ResolvedActionCleared returns if the "resolved_action" field was cleared in this mutation.
func (m *SLAAlertMutation) ResolvedActionCleared() bool {
	_, ok := m.clearedFields[slaalert.FieldResolvedAction]
	return ok
}

// ResetResolvedAction resets all changes to the "resolved_action" field.
func (m *SLAAlertMutation) ResetResolvedAction() {
	m.resolved_action = nil
	delete(m.clearedFields, slaalert.FieldResolvedAction)
}

// SetCreatedAt sets the "created_at" field.
func (m *SLAAlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SLAAlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SLAAlert entity.
// If the SLAAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SLAAlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the ClientRequest entity.
func (m *SLAAlertMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[slaalert.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the ClientRequest entity was cleared.
func (m *SLAAlertMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *SLAAlertMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *SLAAlertMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the SLAAlertMutation builder.
func (m *SLAAlertMutation) Where(ps ...predicate.SLAAlert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SLAAlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SLAAlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SLAAlert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SLAAlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SLAAlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SLAAlert).
func (m *SLAAlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SLAAlertMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.request != nil {
		fields = append(fields, slaalert.FieldRequestID)
	}
	if m.alert_type != nil {
		fields = append(fields, slaalert.FieldAlertType)
	}
	if m.minutes_elapsed != nil {
		fields = append(fields, slaalert.FieldMinutesElapsed)
	}
	if m.escalation_level != nil {
		fields = append(fields, slaalert.FieldEscalationLevel)
	}
	if m.recipient_ids != nil {
		fields = append(fields, slaalert.FieldRecipientIds)
	}
	if m.delivery_status != nil {
		fields = append(fields, slaalert.FieldDeliveryStatus)
	}
	if m.delivered_count != nil {
		fields = append(fields, slaalert.FieldDeliveredCount)
	}
	if m.failed_count != nil {
		fields = append(fields, slaalert.FieldFailedCount)
	}
	if m.next_escalation_at != nil {
		fields = append(fields, slaalert.FieldNextEscalationAt)
	}
	if m.resolved_action != nil {
		fields = append(fields, slaalert.FieldResolvedAction)
	}
	if m.created_at != nil {
		fields = append(fields, slaalert.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SLAAlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slaalert.FieldRequestID:
		return m.RequestID()
	case slaalert.FieldAlertType:
		return m.AlertType()
	case slaalert.FieldMinutesElapsed:
		return m.MinutesElapsed()
	case slaalert.FieldEscalationLevel:
		return m.EscalationLevel()
	case slaalert.FieldRecipientIds:
		return m.RecipientIds()
	case slaalert.FieldDeliveryStatus:
		return m.DeliveryStatus()
	case slaalert.FieldDeliveredCount:
		return m.DeliveredCount()
	case slaalert.FieldFailedCount:
		return m.FailedCount()
	case slaalert.FieldNextEscalationAt:
		return m.NextEscalationAt()
	case slaalert.FieldResolvedAction:
		return m.ResolvedAction()
	case slaalert.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SLAAlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slaalert.FieldRequestID:
		return m.OldRequestID(ctx)
	case slaalert.FieldAlertType:
		return m.OldAlertType(ctx)
	case slaalert.FieldMinutesElapsed:
		return m.OldMinutesElapsed(ctx)
	case slaalert.FieldEscalationLevel:
		return m.OldEscalationLevel(ctx)
	case slaalert.FieldRecipientIds:
		return m.OldRecipientIds(ctx)
	case slaalert.FieldDeliveryStatus:
		return m.OldDeliveryStatus(ctx)
	case slaalert.FieldDeliveredCount:
		return m.OldDeliveredCount(ctx)
	case slaalert.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case slaalert.FieldNextEscalationAt:
		return m.OldNextEscalationAt(ctx)
	case slaalert.FieldResolvedAction:
		return m.OldResolvedAction(ctx)
	case slaalert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SLAAlert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SLAAlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slaalert.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case slaalert.FieldAlertType:
		v, ok := value.(slaalert.AlertType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertType(v)
		return nil
	case slaalert.FieldMinutesElapsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinutesElapsed(v)
		return nil
	case slaalert.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationLevel(v)
		return nil
	case slaalert.FieldRecipientIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientIds(v)
		return nil
	case slaalert.FieldDeliveryStatus:
		v, ok := value.(slaalert.DeliveryStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryStatus(v)
		return nil
	case slaalert.FieldDeliveredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredCount(v)
		return nil
	case slaalert.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case slaalert.FieldNextEscalationAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextEscalationAt(v)
		return nil
	case slaalert.FieldResolvedAction:
		v, ok := value.(slaalert.ResolvedAction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAction(v)
		return nil
	case slaalert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SLAAlert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SLAAlertMutation) AddedFields() []string {
	var fields []string
	if m.addminutes_elapsed != nil {
		fields = append(fields, slaalert.FieldMinutesElapsed)
	}
	if m.addescalation_level != nil {
		fields = append(fields, slaalert.FieldEscalationLevel)
	}
	if m.adddelivered_count != nil {
		fields = append(fields, slaalert.FieldDeliveredCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, slaalert.FieldFailedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SLAAlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slaalert.FieldMinutesElapsed:
		return m.AddedMinutesElapsed()
	case slaalert.FieldEscalationLevel:
		return m.AddedEscalationLevel()
	case slaalert.FieldDeliveredCount:
		return m.AddedDeliveredCount()
	case slaalert.FieldFailedCount:
		return m.AddedFailedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SLAAlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slaalert.FieldMinutesElapsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinutesElapsed(v)
		return nil
	case slaalert.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEscalationLevel(v)
		return nil
	case slaalert.FieldDeliveredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeliveredCount(v)
		return nil
	case slaalert.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	}
	return fmt.Errorf("unknown SLAAlert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SLAAlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slaalert.FieldRecipientIds) {
		fields = append(fields, slaalert.FieldRecipientIds)
	}
	if m.FieldCleared(slaalert.FieldNextEscalationAt) {
		fields = append(fields, slaalert.FieldNextEscalationAt)
	}
	if m.FieldCleared(slaalert.FieldResolvedAction) {
		fields = append(fields, slaalert.FieldResolvedAction)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SLAAlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SLAAlertMutation) ClearField(name string) error {
	switch name {
	case slaalert.FieldRecipientIds:
		m.ClearRecipientIds()
		return nil
	case slaalert.FieldNextEscalationAt:
		m.ClearNextEscalationAt()
		return nil
	case slaalert.FieldResolvedAction:
		m.ClearResolvedAction()
		return nil
	}
	return fmt.Errorf("unknown SLAAlert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SLAAlertMutation) ResetField(name string) error {
	switch name {
	case slaalert.FieldRequestID:
		m.ResetRequestID()
		return nil
	case slaalert.FieldAlertType:
		m.ResetAlertType()
		return nil
	case slaalert.FieldMinutesElapsed:
		m.ResetMinutesElapsed()
		return nil
	case slaalert.FieldEscalationLevel:
		m.ResetEscalationLevel()
		return nil
	case slaalert.FieldRecipientIds:
		m.ResetRecipientIds()
		return nil
	case slaalert.FieldDeliveryStatus:
		m.ResetDeliveryStatus()
		return nil
	case slaalert.FieldDeliveredCount:
		m.ResetDeliveredCount()
		return nil
	case slaalert.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case slaalert.FieldNextEscalationAt:
		m.ResetNextEscalationAt()
		return nil
	case slaalert.FieldResolvedAction:
		m.ResetResolvedAction()
		return nil
	case slaalert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SLAAlert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SLAAlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, slaalert.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SLAAlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case slaalert.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SLAAlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SLAAlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SLAAlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, slaalert.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SLAAlertMutation) EdgeCleared(name string) bool {
	switch name {
	case slaalert.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SLAAlertMutation) ClearEdge(name string) error {
	switch name {
	case slaalert.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown SLAAlert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SLAAlertMutation) ResetEdge(name string) error {
	switch name {
	case slaalert.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown SLAAlert edge %s", name)
}

// TimerJobMutation represents an operation that mutates the TimerJob nodes in the graph.
type TimerJobMutation struct {
	config
	op            Op
	typ           string
	id            *string
	job_type      *timerjob.JobType
	payload       *models.TimerPayload
	due_at        *time.Time
	status        *timerjob.Status
	attempts      *int
	addattempts   *int
	locked_by     *string
	locked_at     *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TimerJob, error)
	predicates    []predicate.TimerJob
}

var _ ent.Mutation = (*TimerJobMutation)(nil)

// timerjobOption allows management of the mutation configuration using functional options.
type timerjobOption func(*TimerJobMutation)

// newTimerJobMutation creates new mutation for the TimerJob entity.
func newTimerJobMutation(c config, op Op, opts ...timerjobOption) *TimerJobMutation {
	m := &TimerJobMutation{
		config:        c,
		op:            op,
		typ:           TypeTimerJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimerJobID sets the ID field of the mutation.
func withTimerJobID(id string) timerjobOption {
	return func(m *TimerJobMutation) {
		var (
			err   error
			once  sync.Once
			value *TimerJob
		)
		m.oldValue = func(ctx context.Context) (*TimerJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimerJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimerJob sets the old TimerJob of the mutation.
func withTimerJob(node *TimerJob) timerjobOption {
	return func(m *TimerJobMutation) {
		m.oldValue = func(context.Context) (*TimerJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimerJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimerJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimerJob entities.
func (m *TimerJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimerJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimerJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimerJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobType sets the "job_type" field.
func (m *TimerJobMutation) SetJobType(tt timerjob.JobType) {
	m.job_type = &tt
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *TimerJobMutation) JobType() (r timerjob.JobType, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the TimerJob entity.
// If the TimerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimerJobMutation) OldJobType(ctx context.Context) (v timerjob.JobType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *TimerJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetPayload sets the "payload" field.
func (m *TimerJobMutation) SetPayload(mp models.TimerPayload) {
	m.payload = &mp
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TimerJobMutation) Payload() (r models.TimerPayload, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the TimerJob entity.
// If the TimerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimerJobMutation) OldPayload(ctx context.Context) (v models.TimerPayload, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *TimerJobMutation) ResetPayload() {
	m.payload = nil
}

// SetDueAt sets the "due_at" field.
func (m *TimerJobMutation) SetDueAt(t time.Time) {
	m.due_at = &t
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *TimerJobMutation) DueAt() (r time.Time, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the TimerJob entity.
// If the TimerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimerJobMutation) OldDueAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *TimerJobMutation) ResetDueAt() {
	m.due_at = nil
}

// SetStatus sets the "status" field.
func (m *TimerJobMutation) SetStatus(t timerjob.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TimerJobMutation) Status() (r timerjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TimerJob entity.
// If the TimerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimerJobMutation) OldStatus(ctx context.Context) (v timerjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TimerJobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *TimerJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TimerJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the TimerJob entity.
// If the TimerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimerJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TimerJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TimerJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TimerJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLockedBy sets the "locked_by" field.
func (m *TimerJobMutation) SetLockedBy(s string) {
	m.locked_by = &s
}

// LockedBy returns the value of the "locked_by" field in the mutation.
func (m *TimerJobMutation) LockedBy() (r string, exists bool) {
	v := m.locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedBy returns the old "locked_by" field's value of the TimerJob entity.
// If the TimerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimerJobMutation) OldLockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedBy: %w", err)
	}
	return oldValue.LockedBy, nil
}

// ClearLockedBy clears the value of the "locked_by" field.
func (m *TimerJobMutation) ClearLockedBy() {
	m.locked_by = nil
	m.clearedFields[timerjob.FieldLockedBy] = struct{}{}
}

// LockedByCleared returns if the "locked_by" field was cleared in this mutation.
func (m *TimerJobMutation) LockedByCleared() bool {
	_, ok := m.clearedFields[timerjob.FieldLockedBy]
	return ok
}

// ResetLockedBy resets all changes to the "locked_by" field.
func (m *TimerJobMutation) ResetLockedBy() {
	m.locked_by = nil
	delete(m.clearedFields, timerjob.FieldLockedBy)
}

// SetLockedAt sets the "locked_at" field.
func (m *TimerJobMutation) SetLockedAt(t time.Time) {
	m.locked_at = &t
}

// LockedAt returns the value of the "locked_at" field in the mutation.
func (m *TimerJobMutation) LockedAt() (r time.Time, exists bool) {
	v := m.locked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedAt returns the old "locked_at" field's value of the TimerJob entity.
// If the TimerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimerJobMutation) OldLockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedAt: %w", err)
	}
	return oldValue.LockedAt, nil
}

// ClearLockedAt clears the value of the "locked_at" field.
func (m *TimerJobMutation) ClearLockedAt() {
	m.locked_at = nil
	m.clearedFields[timerjob.FieldLockedAt] = struct{}{}
}

// LockedAtCleared returns if the "locked_at" field was cleared in this mutation.
func (m *TimerJobMutation) LockedAtCleared() bool {
	_, ok := m.clearedFields[timerjob.FieldLockedAt]
	return ok
}

// ResetLockedAt resets all changes to the "locked_at" field.
func (m *TimerJobMutation) ResetLockedAt() {
	m.locked_at = nil
	delete(m.clearedFields, timerjob.FieldLockedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TimerJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimerJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimerJob entity.
// If the TimerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimerJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimerJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TimerJobMutation builder.
func (m *TimerJobMutation) Where(ps ...predicate.TimerJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimerJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimerJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimerJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimerJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimerJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimerJob).
func (m *TimerJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimerJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.job_type != nil {
		fields = append(fields, timerjob.FieldJobType)
	}
	if m.payload != nil {
		fields = append(fields, timerjob.FieldPayload)
	}
	if m.due_at != nil {
		fields = append(fields, timerjob.FieldDueAt)
	}
	if m.status != nil {
		fields = append(fields, timerjob.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, timerjob.FieldAttempts)
	}
	if m.locked_by != nil {
		fields = append(fields, timerjob.FieldLockedBy)
	}
	if m.locked_at != nil {
		fields = append(fields, timerjob.FieldLockedAt)
	}
	if m.created_at != nil {
		fields = append(fields, timerjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimerJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timerjob.FieldJobType:
		return m.JobType()
	case timerjob.FieldPayload:
		return m.Payload()
	case timerjob.FieldDueAt:
		return m.DueAt()
	case timerjob.FieldStatus:
		return m.Status()
	case timerjob.FieldAttempts:
		return m.Attempts()
	case timerjob.FieldLockedBy:
		return m.LockedBy()
	case timerjob.FieldLockedAt:
		return m.LockedAt()
	case timerjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimerJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timerjob.FieldJobType:
		return m.OldJobType(ctx)
	case timerjob.FieldPayload:
		return m.OldPayload(ctx)
	case timerjob.FieldDueAt:
		return m.OldDueAt(ctx)
	case timerjob.FieldStatus:
		return m.OldStatus(ctx)
	case timerjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case timerjob.FieldLockedBy:
		return m.OldLockedBy(ctx)
	case timerjob.FieldLockedAt:
		return m.OldLockedAt(ctx)
	case timerjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TimerJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimerJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timerjob.FieldJobType:
		v, ok := value.(timerjob.JobType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case timerjob.FieldPayload:
		v, ok := value.(models.TimerPayload)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case timerjob.FieldDueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case timerjob.FieldStatus:
		v, ok := value.(timerjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case timerjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case timerjob.FieldLockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedBy(v)
		return nil
	case timerjob.FieldLockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedAt(v)
		return nil
	case timerjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TimerJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimerJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, timerjob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimerJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case timerjob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimerJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case timerjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown TimerJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimerJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(timerjob.FieldLockedBy) {
		fields = append(fields, timerjob.FieldLockedBy)
	}
	if m.FieldCleared(timerjob.FieldLockedAt) {
		fields = append(fields, timerjob.FieldLockedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimerJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimerJobMutation) ClearField(name string) error {
	switch name {
	case timerjob.FieldLockedBy:
		m.ClearLockedBy()
		return nil
	case timerjob.FieldLockedAt:
		m.ClearLockedAt()
		return nil
	}
	return fmt.Errorf("unknown TimerJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimerJobMutation) ResetField(name string) error {
	switch name {
	case timerjob.FieldJobType:
		m.ResetJobType()
		return nil
	case timerjob.FieldPayload:
		m.ResetPayload()
		return nil
	case timerjob.FieldDueAt:
		m.ResetDueAt()
		return nil
	case timerjob.FieldStatus:
		m.ResetStatus()
		return nil
	case timerjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case timerjob.FieldLockedBy:
		m.ResetLockedBy()
		return nil
	case timerjob.FieldLockedAt:
		m.ResetLockedAt()
		return nil
	case timerjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TimerJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimerJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimerJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimerJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimerJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimerJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimerJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimerJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TimerJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimerJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TimerJob edge %s", name)
}
