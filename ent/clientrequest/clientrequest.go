// Code generated by ent, DO NOT EDIT.

package clientrequest

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the clientrequest type in the database.
	Label = "client_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldClientUsername holds the string denoting the client_username field in the database.
	FieldClientUsername = "client_username"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldMessageText holds the string denoting the message_text field in the database.
	FieldMessageText = "message_text"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSLABreached holds the string denoting the sla_breached field in the database.
	FieldSLABreached = "sla_breached"
	// FieldResponseMessageID holds the string denoting the response_message_id field in the database.
	FieldResponseMessageID = "response_message_id"
	// FieldResponseTimeMinutes holds the string denoting the response_time_minutes field in the database.
	FieldResponseTimeMinutes = "response_time_minutes"
	// FieldAnsweredAt holds the string denoting the answered_at field in the database.
	FieldAnsweredAt = "answered_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeChat holds the string denoting the chat edge name in mutations.
	EdgeChat = "chat"
	// EdgeAlerts holds the string denoting the alerts edge name in mutations.
	EdgeAlerts = "alerts"
	// ChatFieldID holds the string denoting the ID field of the Chat.
	ChatFieldID = "chat_id"
	// SLAAlertFieldID holds the string denoting the ID field of the SLAAlert.
	SLAAlertFieldID = "alert_id"
	// Table holds the table name of the clientrequest in the database.
	Table = "client_requests"
	// ChatTable is the table that holds the chat relation/edge.
	ChatTable = "client_requests"
	// ChatInverseTable is the table name for the Chat entity.
	// It exists in this package in order to avoid circular dependency with the "chat" package.
	ChatInverseTable = "chats"
	// ChatColumn is the table column denoting the chat relation/edge.
	ChatColumn = "chat_id"
	// AlertsTable is the table that holds the alerts relation/edge.
	AlertsTable = "sla_alerts"
	// AlertsInverseTable is the table name for the SLAAlert entity.
	// It exists in this package in order to avoid circular dependency with the "slaalert" package.
	AlertsInverseTable = "sla_alerts"
	// AlertsColumn is the table column denoting the alerts relation/edge.
	AlertsColumn = "request_id"
)

// Columns holds all SQL columns for clientrequest fields.
var Columns = []string{
	FieldID,
	FieldChatID,
	FieldClientUsername,
	FieldClientID,
	FieldMessageText,
	FieldMessageID,
	FieldThreadID,
	FieldClassification,
	FieldReceivedAt,
	FieldStatus,
	FieldSLABreached,
	FieldResponseMessageID,
	FieldResponseTimeMinutes,
	FieldAnsweredAt,
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
	// DefaultClientUsername holds the default value on creation for the "client_username" field.
	DefaultClientUsername string
	// DefaultSLABreached holds the default value on creation for the "sla_breached" field.
	DefaultSLABreached bool
)

// Classification defines the type for the "classification" enum field.
type Classification string

// Classification values.
const (
	ClassificationREQUEST       Classification = "REQUEST"
	ClassificationSPAM          Classification = "SPAM"
	ClassificationGRATITUDE     Classification = "GRATITUDE"
	ClassificationCLARIFICATION Classification = "CLARIFICATION"
)

func (c Classification) String() string {
	return string(c)
}

// ClassificationValidator is a validator for the "classification" field enum values. It is called by the builders before save.
func ClassificationValidator(c Classification) error {
	switch c {
	case ClassificationREQUEST, ClassificationSPAM, ClassificationGRATITUDE, ClassificationCLARIFICATION:
		return nil
	default:
		return fmt.Errorf("clientrequest: invalid enum value for classification field: %q", c)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending       Status = "pending"
	StatusInProgress    Status = "in_progress"
	StatusWaitingClient Status = "waiting_client"
	StatusTransferred   Status = "transferred"
	StatusAnswered      Status = "answered"
	StatusEscalated     Status = "escalated"
	StatusClosed        Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusWaitingClient, StatusTransferred, StatusAnswered, StatusEscalated, StatusClosed:
		return nil
	default:
		return fmt.Errorf("clientrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ClientRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByClientUsername orders the results by the client_username field.
func ByClientUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientUsername, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByMessageText orders the results by the message_text field.
func ByMessageText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageText, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySLABreached orders the results by the sla_breached field.
func BySLABreached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSLABreached, opts...).ToFunc()
}

// ByResponseMessageID orders the results by the response_message_id field.
func ByResponseMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseMessageID, opts...).ToFunc()
}

// ByResponseTimeMinutes orders the results by the response_time_minutes field.
func ByResponseTimeMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeMinutes, opts...).ToFunc()
}

// ByAnsweredAt orders the results by the answered_at field.
func ByAnsweredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByChatField orders the results by chat field.
func ByChatField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatStep(), sql.OrderByField(field, opts...))
	}
}

// ByAlertsCount orders the results by alerts count.
func ByAlertsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertsStep(), opts...)
	}
}

// ByAlerts orders the results by alerts terms.
func ByAlerts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChatStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatInverseTable, ChatFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChatTable, ChatColumn),
	)
}
func newAlertsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertsInverseTable, SLAAlertFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
	)
}
