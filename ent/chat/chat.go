// Code generated by ent, DO NOT EDIT.

package chat

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chat type in the database.
	Label = "chat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "chat_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldChatType holds the string denoting the chat_type field in the database.
	FieldChatType = "chat_type"
	// FieldSLAEnabled holds the string denoting the sla_enabled field in the database.
	FieldSLAEnabled = "sla_enabled"
	// FieldSLAThresholdMinutes holds the string denoting the sla_threshold_minutes field in the database.
	FieldSLAThresholdMinutes = "sla_threshold_minutes"
	// FieldMonitoringEnabled holds the string denoting the monitoring_enabled field in the database.
	FieldMonitoringEnabled = "monitoring_enabled"
	// FieldIs24x7 holds the string denoting the is_24x7 field in the database.
	FieldIs24x7 = "is_24x7"
	// FieldManagerIds holds the string denoting the manager_ids field in the database.
	FieldManagerIds = "manager_ids"
	// FieldAccountantIds holds the string denoting the accountant_ids field in the database.
	FieldAccountantIds = "accountant_ids"
	// FieldNotifyInChatOnBreach holds the string denoting the notify_in_chat_on_breach field in the database.
	FieldNotifyInChatOnBreach = "notify_in_chat_on_breach"
	// FieldClientTier holds the string denoting the client_tier field in the database.
	FieldClientTier = "client_tier"
	// FieldInviteURL holds the string denoting the invite_url field in the database.
	FieldInviteURL = "invite_url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeRequests holds the string denoting the requests edge name in mutations.
	EdgeRequests = "requests"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeFeedback holds the string denoting the feedback edge name in mutations.
	EdgeFeedback = "feedback"
	// EdgeInvitations holds the string denoting the invitations edge name in mutations.
	EdgeInvitations = "invitations"
	// ClientRequestFieldID holds the string denoting the ID field of the ClientRequest.
	ClientRequestFieldID = "request_id"
	// ChatMessageFieldID holds the string denoting the ID field of the ChatMessage.
	ChatMessageFieldID = "chat_message_id"
	// FeedbackResponseFieldID holds the string denoting the ID field of the FeedbackResponse.
	FeedbackResponseFieldID = "feedback_id"
	// ChatInvitationFieldID holds the string denoting the ID field of the ChatInvitation.
	ChatInvitationFieldID = "token"
	// Table holds the table name of the chat in the database.
	Table = "chats"
	// RequestsTable is the table that holds the requests relation/edge.
	RequestsTable = "client_requests"
	// RequestsInverseTable is the table name for the ClientRequest entity.
	// It exists in this package in order to avoid circular dependency with the "clientrequest" package.
	RequestsInverseTable = "client_requests"
	// RequestsColumn is the table column denoting the requests relation/edge.
	RequestsColumn = "chat_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "chat_messages"
	// MessagesInverseTable is the table name for the ChatMessage entity.
	// It exists in this package in order to avoid circular dependency with the "chatmessage" package.
	MessagesInverseTable = "chat_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "chat_id"
	// FeedbackTable is the table that holds the feedback relation/edge.
	FeedbackTable = "feedback_responses"
	// FeedbackInverseTable is the table name for the FeedbackResponse entity.
	// It exists in this package in order to avoid circular dependency with the "feedbackresponse" package.
	FeedbackInverseTable = "feedback_responses"
	// FeedbackColumn is the table column denoting the feedback relation/edge.
	FeedbackColumn = "chat_id"
	// InvitationsTable is the table that holds the invitations relation/edge.
	InvitationsTable = "chat_invitations"
	// InvitationsInverseTable is the table name for the ChatInvitation entity.
	// It exists in this package in order to avoid circular dependency with the "chatinvitation" package.
	InvitationsInverseTable = "chat_invitations"
	// InvitationsColumn is the table column denoting the invitations relation/edge.
	InvitationsColumn = "chat_id"
)

// Columns holds all SQL columns for chat fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldChatType,
	FieldSLAEnabled,
	FieldSLAThresholdMinutes,
	FieldMonitoringEnabled,
	FieldIs24x7,
	FieldManagerIds,
	FieldAccountantIds,
	FieldNotifyInChatOnBreach,
	FieldClientTier,
	FieldInviteURL,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultSLAEnabled holds the default value on creation for the "sla_enabled" field.
	DefaultSLAEnabled bool
	// SLAThresholdMinutesValidator is a validator for the "sla_threshold_minutes" field. It is called by the builders before save.
	SLAThresholdMinutesValidator func(int) error
	// DefaultMonitoringEnabled holds the default value on creation for the "monitoring_enabled" field.
	DefaultMonitoringEnabled bool
	// DefaultIs24x7 holds the default value on creation for the "is_24x7" field.
	DefaultIs24x7 bool
	// DefaultNotifyInChatOnBreach holds the default value on creation for the "notify_in_chat_on_breach" field.
	DefaultNotifyInChatOnBreach bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ChatType defines the type for the "chat_type" enum field.
type ChatType string

// ChatTypeGroup is the default value of the ChatType enum.
const DefaultChatType = ChatTypeGroup

// ChatType values.
const (
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypePrivate    ChatType = "private"
)

func (ct ChatType) String() string {
	return string(ct)
}

// ChatTypeValidator is a validator for the "chat_type" field enum values. It is called by the builders before save.
func ChatTypeValidator(ct ChatType) error {
	switch ct {
	case ChatTypeGroup, ChatTypeSupergroup, ChatTypePrivate:
		return nil
	default:
		return fmt.Errorf("chat: invalid enum value for chat_type field: %q", ct)
	}
}

// ClientTier defines the type for the "client_tier" enum field.
type ClientTier string

// ClientTierStandard is the default value of the ClientTier enum.
const DefaultClientTier = ClientTierStandard

// ClientTier values.
const (
	ClientTierStandard ClientTier = "standard"
	ClientTierPriority ClientTier = "priority"
)

func (ct ClientTier) String() string {
	return string(ct)
}

// ClientTierValidator is a validator for the "client_tier" field enum values. It is called by the builders before save.
func ClientTierValidator(ct ClientTier) error {
	switch ct {
	case ClientTierStandard, ClientTierPriority:
		return nil
	default:
		return fmt.Errorf("chat: invalid enum value for client_tier field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Chat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByChatType orders the results by the chat_type field.
func ByChatType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatType, opts...).ToFunc()
}

// BySLAEnabled orders the results by the sla_enabled field.
func BySLAEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSLAEnabled, opts...).ToFunc()
}

// BySLAThresholdMinutes orders the results by the sla_threshold_minutes field.
func BySLAThresholdMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSLAThresholdMinutes, opts...).ToFunc()
}

// ByMonitoringEnabled orders the results by the monitoring_enabled field.
func ByMonitoringEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonitoringEnabled, opts...).ToFunc()
}

// ByIs24x7 orders the results by the is_24x7 field.
func ByIs24x7(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIs24x7, opts...).ToFunc()
}

// ByNotifyInChatOnBreach orders the results by the notify_in_chat_on_breach field.
func ByNotifyInChatOnBreach(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotifyInChatOnBreach, opts...).ToFunc()
}

// ByClientTier orders the results by the client_tier field.
func ByClientTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientTier, opts...).ToFunc()
}

// ByInviteURL orders the results by the invite_url field.
func ByInviteURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInviteURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByRequestsCount orders the results by requests count.
func ByRequestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRequestsStep(), opts...)
	}
}

// ByRequests orders the results by requests terms.
func ByRequests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFeedbackCount orders the results by feedback count.
func ByFeedbackCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeedbackStep(), opts...)
	}
}

// ByFeedback orders the results by feedback terms.
func ByFeedback(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeedbackStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInvitationsCount orders the results by invitations count.
func ByInvitationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInvitationsStep(), opts...)
	}
}

// ByInvitations orders the results by invitations terms.
func ByInvitations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvitationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRequestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestsInverseTable, ClientRequestFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RequestsTable, RequestsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, ChatMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newFeedbackStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeedbackInverseTable, FeedbackResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeedbackTable, FeedbackColumn),
	)
}
func newInvitationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvitationsInverseTable, ChatInvitationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InvitationsTable, InvitationsColumn),
	)
}
