// Code generated by ent, DO NOT EDIT.

package slaalert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/teambuh/slamon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldRequestID, v))
}

// MinutesElapsed applies equality check predicate on the "minutes_elapsed" field. It's identical to MinutesElapsedEQ.
func MinutesElapsed(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldMinutesElapsed, v))
}

// EscalationLevel applies equality check predicate on the "escalation_level" field. It's identical to EscalationLevelEQ.
func EscalationLevel(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldEscalationLevel, v))
}

// DeliveredCount applies equality check predicate on the "delivered_count" field. It's identical to DeliveredCountEQ.
func DeliveredCount(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldDeliveredCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldFailedCount, v))
}

// NextEscalationAt applies equality check predicate on the "next_escalation_at" field. It's identical to NextEscalationAtEQ.
func NextEscalationAt(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldNextEscalationAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldContainsFold(FieldRequestID, v))
}

// AlertTypeEQ applies the EQ predicate on the "alert_type" field.
func AlertTypeEQ(v AlertType) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldAlertType, v))
}

// AlertTypeNEQ applies the NEQ predicate on the "alert_type" field.
func AlertTypeNEQ(v AlertType) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldAlertType, v))
}

// AlertTypeIn applies the In predicate on the "alert_type" field.
func AlertTypeIn(vs ...AlertType) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldAlertType, vs...))
}

// AlertTypeNotIn applies the NotIn predicate on the "alert_type" field.
func AlertTypeNotIn(vs ...AlertType) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldAlertType, vs...))
}

// MinutesElapsedEQ applies the EQ predicate on the "minutes_elapsed" field.
func MinutesElapsedEQ(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldMinutesElapsed, v))
}

// MinutesElapsedNEQ applies the NEQ predicate on the "minutes_elapsed" field.
func MinutesElapsedNEQ(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldMinutesElapsed, v))
}

// MinutesElapsedIn applies the In predicate on the "minutes_elapsed" field.
func MinutesElapsedIn(vs ...int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldMinutesElapsed, vs...))
}

// MinutesElapsedNotIn applies the NotIn predicate on the "minutes_elapsed" field.
func MinutesElapsedNotIn(vs ...int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldMinutesElapsed, vs...))
}

// MinutesElapsedGT applies the GT predicate on the "minutes_elapsed" field.
func MinutesElapsedGT(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGT(FieldMinutesElapsed, v))
}

// MinutesElapsedGTE applies the GTE predicate on the "minutes_elapsed" field.
func MinutesElapsedGTE(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGTE(FieldMinutesElapsed, v))
}

// MinutesElapsedLT applies the LT predicate on the "minutes_elapsed" field.
func MinutesElapsedLT(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLT(FieldMinutesElapsed, v))
}

// MinutesElapsedLTE applies the LTE predicate on the "minutes_elapsed" field.
func MinutesElapsedLTE(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLTE(FieldMinutesElapsed, v))
}

// EscalationLevelEQ applies the EQ predicate on the "escalation_level" field.
func EscalationLevelEQ(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldEscalationLevel, v))
}

// EscalationLevelNEQ applies the NEQ predicate on the "escalation_level" field.
func EscalationLevelNEQ(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldEscalationLevel, v))
}

// EscalationLevelIn applies the In predicate on the "escalation_level" field.
func EscalationLevelIn(vs ...int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldEscalationLevel, vs...))
}

// EscalationLevelNotIn applies the NotIn predicate on the "escalation_level" field.
func EscalationLevelNotIn(vs ...int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldEscalationLevel, vs...))
}

// EscalationLevelGT applies the GT predicate on the "escalation_level" field.
func EscalationLevelGT(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGT(FieldEscalationLevel, v))
}

// EscalationLevelGTE applies the GTE predicate on the "escalation_level" field.
func EscalationLevelGTE(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGTE(FieldEscalationLevel, v))
}

// EscalationLevelLT applies the LT predicate on the "escalation_level" field.
func EscalationLevelLT(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLT(FieldEscalationLevel, v))
}

// EscalationLevelLTE applies the LTE predicate on the "escalation_level" field.
func EscalationLevelLTE(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLTE(FieldEscalationLevel, v))
}

// RecipientIdsIsNil applies the IsNil predicate on the "recipient_ids" field.
func RecipientIdsIsNil() predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIsNull(FieldRecipientIds))
}

// RecipientIdsNotNil applies the NotNil predicate on the "recipient_ids" field.
func RecipientIdsNotNil() predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotNull(FieldRecipientIds))
}

// DeliveryStatusEQ applies the EQ predicate on the "delivery_status" field.
func DeliveryStatusEQ(v DeliveryStatus) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldDeliveryStatus, v))
}

// DeliveryStatusNEQ applies the NEQ predicate on the "delivery_status" field.
func DeliveryStatusNEQ(v DeliveryStatus) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldDeliveryStatus, v))
}

// DeliveryStatusIn applies the In predicate on the "delivery_status" field.
func DeliveryStatusIn(vs ...DeliveryStatus) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldDeliveryStatus, vs...))
}

// DeliveryStatusNotIn applies the NotIn predicate on the "delivery_status" field.
func DeliveryStatusNotIn(vs ...DeliveryStatus) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldDeliveryStatus, vs...))
}

// DeliveredCountEQ applies the EQ predicate on the "delivered_count" field.
func DeliveredCountEQ(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldDeliveredCount, v))
}

// DeliveredCountNEQ applies the NEQ predicate on the "delivered_count" field.
func DeliveredCountNEQ(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldDeliveredCount, v))
}

// DeliveredCountIn applies the In predicate on the "delivered_count" field.
func DeliveredCountIn(vs ...int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldDeliveredCount, vs...))
}

// DeliveredCountNotIn applies the NotIn predicate on the "delivered_count" field.
func DeliveredCountNotIn(vs ...int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldDeliveredCount, vs...))
}

// DeliveredCountGT applies the GT predicate on the "delivered_count" field.
func DeliveredCountGT(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGT(FieldDeliveredCount, v))
}

// DeliveredCountGTE applies the GTE predicate on the "delivered_count" field.
func DeliveredCountGTE(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGTE(FieldDeliveredCount, v))
}

// DeliveredCountLT applies the LT predicate on the "delivered_count" field.
func DeliveredCountLT(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLT(FieldDeliveredCount, v))
}

// DeliveredCountLTE applies the LTE predicate on the "delivered_count" field.
func DeliveredCountLTE(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLTE(FieldDeliveredCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLTE(FieldFailedCount, v))
}

// NextEscalationAtEQ applies the EQ predicate on the "next_escalation_at" field.
func NextEscalationAtEQ(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldNextEscalationAt, v))
}

// NextEscalationAtNEQ applies the NEQ predicate on the "next_escalation_at" field.
func NextEscalationAtNEQ(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldNextEscalationAt, v))
}

// NextEscalationAtIn applies the In predicate on the "next_escalation_at" field.
func NextEscalationAtIn(vs ...time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldNextEscalationAt, vs...))
}

// NextEscalationAtNotIn applies the NotIn predicate on the "next_escalation_at" field.
func NextEscalationAtNotIn(vs ...time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldNextEscalationAt, vs...))
}

// NextEscalationAtGT applies the GT predicate on the "next_escalation_at" field.
func NextEscalationAtGT(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGT(FieldNextEscalationAt, v))
}

// NextEscalationAtGTE applies the GTE predicate on the "next_escalation_at" field.
func NextEscalationAtGTE(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGTE(FieldNextEscalationAt, v))
}

// NextEscalationAtLT applies the LT predicate on the "next_escalation_at" field.
func NextEscalationAtLT(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLT(FieldNextEscalationAt, v))
}

// NextEscalationAtLTE applies the LTE predicate on the "next_escalation_at" field.
func NextEscalationAtLTE(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLTE(FieldNextEscalationAt, v))
}

// NextEscalationAtIsNil applies the IsNil predicate on the "next_escalation_at" field.
func NextEscalationAtIsNil() predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIsNull(FieldNextEscalationAt))
}

// NextEscalationAtNotNil applies the NotNil predicate on the "next_escalation_at" field.
func NextEscalationAtNotNil() predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotNull(FieldNextEscalationAt))
}

// ResolvedActionEQ applies the EQ predicate on the "resolved_action" field.
func ResolvedActionEQ(v ResolvedAction) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldResolvedAction, v))
}

// ResolvedActionNEQ applies the NEQ predicate on the "resolved_action" field.
func ResolvedActionNEQ(v ResolvedAction) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldResolvedAction, v))
}

// ResolvedActionIn applies the In predicate on the "resolved_action" field.
func ResolvedActionIn(vs ...ResolvedAction) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldResolvedAction, vs...))
}

// ResolvedActionNotIn applies the NotIn predicate on the "resolved_action" field.
func ResolvedActionNotIn(vs ...ResolvedAction) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldResolvedAction, vs...))
}

// ResolvedActionIsNil applies the IsNil predicate on the "resolved_action" field.
func ResolvedActionIsNil() predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIsNull(FieldResolvedAction))
}

// ResolvedActionNotNil applies the NotNil predicate on the "resolved_action" field.
func ResolvedActionNotNil() predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotNull(FieldResolvedAction))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SLAAlert {
	return predicate.SLAAlert(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.SLAAlert {
	return predicate.SLAAlert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.ClientRequest) predicate.SLAAlert {
	return predicate.SLAAlert(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SLAAlert) predicate.SLAAlert {
	return predicate.SLAAlert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SLAAlert) predicate.SLAAlert {
	return predicate.SLAAlert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SLAAlert) predicate.SLAAlert {
	return predicate.SLAAlert(sql.NotPredicates(p))
}
