// Code generated by ent, DO NOT EDIT.

package slaalert

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the slaalert type in the database.
	Label = "sla_alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "alert_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldAlertType holds the string denoting the alert_type field in the database.
	FieldAlertType = "alert_type"
	// FieldMinutesElapsed holds the string denoting the minutes_elapsed field in the database.
	FieldMinutesElapsed = "minutes_elapsed"
	// FieldEscalationLevel holds the string denoting the escalation_level field in the database.
	FieldEscalationLevel = "escalation_level"
	// FieldRecipientIds holds the string denoting the recipient_ids field in the database.
	FieldRecipientIds = "recipient_ids"
	// FieldDeliveryStatus holds the string denoting the delivery_status field in the database.
	FieldDeliveryStatus = "delivery_status"
	// FieldDeliveredCount holds the string denoting the delivered_count field in the database.
	FieldDeliveredCount = "delivered_count"
	// FieldFailedCount holds the string denoting the failed_count field in the database.
	FieldFailedCount = "failed_count"
	// FieldNextEscalationAt holds the string denoting the next_escalation_at field in the database.
	FieldNextEscalationAt = "next_escalation_at"
	// FieldResolvedAction holds the string denoting the resolved_action field in the database.
	FieldResolvedAction = "resolved_action"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// ClientRequestFieldID holds the string denoting the ID field of the ClientRequest.
	ClientRequestFieldID = "request_id"
	// Table holds the table name of the slaalert in the database.
	Table = "sla_alerts"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "sla_alerts"
	// RequestInverseTable is the table name for the ClientRequest entity.
	// It exists in this package in order to avoid circular dependency with the "clientrequest" package.
	RequestInverseTable = "client_requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for slaalert fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldAlertType,
	FieldMinutesElapsed,
	FieldEscalationLevel,
	FieldRecipientIds,
	FieldDeliveryStatus,
	FieldDeliveredCount,
	FieldFailedCount,
	FieldNextEscalationAt,
	FieldResolvedAction,
	FieldCreatedAt,
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
	// EscalationLevelValidator is a validator for the "escalation_level" field. It is called by the builders before save.
	EscalationLevelValidator func(int) error
	// DefaultDeliveredCount holds the default value on creation for the "delivered_count" field.
	DefaultDeliveredCount int
	// DefaultFailedCount holds the default value on creation for the "failed_count" field.
	DefaultFailedCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AlertType defines the type for the "alert_type" enum field.
type AlertType string

// AlertType values.
const (
	AlertTypeWarning AlertType = "warning"
	AlertTypeBreach  AlertType = "breach"
)

func (at AlertType) String() string {
	return string(at)
}

// AlertTypeValidator is a validator for the "alert_type" field enum values. It is called by the builders before save.
func AlertTypeValidator(at AlertType) error {
	switch at {
	case AlertTypeWarning, AlertTypeBreach:
		return nil
	default:
		return fmt.Errorf("slaalert: invalid enum value for alert_type field: %q", at)
	}
}

// DeliveryStatus defines the type for the "delivery_status" enum field.
type DeliveryStatus string

// DeliveryStatusPending is the default value of the DeliveryStatus enum.
const DefaultDeliveryStatus = DeliveryStatusPending

// DeliveryStatus values.
const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

func (ds DeliveryStatus) String() string {
	return string(ds)
}

// DeliveryStatusValidator is a validator for the "delivery_status" field enum values. It is called by the builders before save.
func DeliveryStatusValidator(ds DeliveryStatus) error {
	switch ds {
	case DeliveryStatusPending, DeliveryStatusDelivered, DeliveryStatusFailed:
		return nil
	default:
		return fmt.Errorf("slaalert: invalid enum value for delivery_status field: %q", ds)
	}
}

// ResolvedAction defines the type for the "resolved_action" enum field.
type ResolvedAction string

// ResolvedAction values.
const (
	ResolvedActionMarkResolved        ResolvedAction = "mark_resolved"
	ResolvedActionAccountantResponded ResolvedAction = "accountant_responded"
	ResolvedActionAutoExpired         ResolvedAction = "auto_expired"
)

func (ra ResolvedAction) String() string {
	return string(ra)
}

// ResolvedActionValidator is a validator for the "resolved_action" field enum values. It is called by the builders before save.
func ResolvedActionValidator(ra ResolvedAction) error {
	switch ra {
	case ResolvedActionMarkResolved, ResolvedActionAccountantResponded, ResolvedActionAutoExpired:
		return nil
	default:
		return fmt.Errorf("slaalert: invalid enum value for resolved_action field: %q", ra)
	}
}

// OrderOption defines the ordering options for the SLAAlert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByAlertType orders the results by the alert_type field.
func ByAlertType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertType, opts...).ToFunc()
}

// ByMinutesElapsed orders the results by the minutes_elapsed field.
func ByMinutesElapsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinutesElapsed, opts...).ToFunc()
}

// ByEscalationLevel orders the results by the escalation_level field.
func ByEscalationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationLevel, opts...).ToFunc()
}

// ByDeliveryStatus orders the results by the delivery_status field.
func ByDeliveryStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryStatus, opts...).ToFunc()
}

// ByDeliveredCount orders the results by the delivered_count field.
func ByDeliveredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredCount, opts...).ToFunc()
}

// ByFailedCount orders the results by the failed_count field.
func ByFailedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedCount, opts...).ToFunc()
}

// ByNextEscalationAt orders the results by the next_escalation_at field.
func ByNextEscalationAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextEscalationAt, opts...).ToFunc()
}

// ByResolvedAction orders the results by the resolved_action field.
func ByResolvedAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAction, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, ClientRequestFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
	)
}
