// Code generated by ent, DO NOT EDIT.

package clientrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/teambuh/slamon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldContainsFold(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldChatID, v))
}

// ClientUsername applies equality check predicate on the "client_username" field. It's identical to ClientUsernameEQ.
func ClientUsername(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldClientUsername, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldClientID, v))
}

// MessageText applies equality check predicate on the "message_text" field. It's identical to MessageTextEQ.
func MessageText(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldMessageText, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldMessageID, v))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldThreadID, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldReceivedAt, v))
}

// SLABreached applies equality check predicate on the "sla_breached" field. It's identical to SLABreachedEQ.
func SLABreached(v bool) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldSLABreached, v))
}

// ResponseMessageID applies equality check predicate on the "response_message_id" field. It's identical to ResponseMessageIDEQ.
func ResponseMessageID(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldResponseMessageID, v))
}

// ResponseTimeMinutes applies equality check predicate on the "response_time_minutes" field. It's identical to ResponseTimeMinutesEQ.
func ResponseTimeMinutes(v int) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldResponseTimeMinutes, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldAnsweredAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldDeletedAt, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldChatID, vs...))
}

// ClientUsernameEQ applies the EQ predicate on the "client_username" field.
func ClientUsernameEQ(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldClientUsername, v))
}

// ClientUsernameNEQ applies the NEQ predicate on the "client_username" field.
func ClientUsernameNEQ(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldClientUsername, v))
}

// ClientUsernameIn applies the In predicate on the "client_username" field.
func ClientUsernameIn(vs ...string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldClientUsername, vs...))
}

// ClientUsernameNotIn applies the NotIn predicate on the "client_username" field.
func ClientUsernameNotIn(vs ...string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldClientUsername, vs...))
}

// ClientUsernameGT applies the GT predicate on the "client_username" field.
func ClientUsernameGT(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldClientUsername, v))
}

// ClientUsernameGTE applies the GTE predicate on the "client_username" field.
func ClientUsernameGTE(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldClientUsername, v))
}

// ClientUsernameLT applies the LT predicate on the "client_username" field.
func ClientUsernameLT(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldClientUsername, v))
}

// ClientUsernameLTE applies the LTE predicate on the "client_username" field.
func ClientUsernameLTE(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldClientUsername, v))
}

// ClientUsernameContains applies the Contains predicate on the "client_username" field.
func ClientUsernameContains(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldContains(FieldClientUsername, v))
}

// ClientUsernameHasPrefix applies the HasPrefix predicate on the "client_username" field.
func ClientUsernameHasPrefix(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldHasPrefix(FieldClientUsername, v))
}

// ClientUsernameHasSuffix applies the HasSuffix predicate on the "client_username" field.
func ClientUsernameHasSuffix(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldHasSuffix(FieldClientUsername, v))
}

// ClientUsernameEqualFold applies the EqualFold predicate on the "client_username" field.
func ClientUsernameEqualFold(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEqualFold(FieldClientUsername, v))
}

// ClientUsernameContainsFold applies the ContainsFold predicate on the "client_username" field.
func ClientUsernameContainsFold(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldContainsFold(FieldClientUsername, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldClientID, v))
}

// ClientIDIsNil applies the IsNil predicate on the "client_id" field.
func ClientIDIsNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIsNull(FieldClientID))
}

// ClientIDNotNil applies the NotNil predicate on the "client_id" field.
func ClientIDNotNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotNull(FieldClientID))
}

// MessageTextEQ applies the EQ predicate on the "message_text" field.
func MessageTextEQ(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldMessageText, v))
}

// MessageTextNEQ applies the NEQ predicate on the "message_text" field.
func MessageTextNEQ(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldMessageText, v))
}

// MessageTextIn applies the In predicate on the "message_text" field.
func MessageTextIn(vs ...string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldMessageText, vs...))
}

// MessageTextNotIn applies the NotIn predicate on the "message_text" field.
func MessageTextNotIn(vs ...string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldMessageText, vs...))
}

// MessageTextGT applies the GT predicate on the "message_text" field.
func MessageTextGT(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldMessageText, v))
}

// MessageTextGTE applies the GTE predicate on the "message_text" field.
func MessageTextGTE(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldMessageText, v))
}

// MessageTextLT applies the LT predicate on the "message_text" field.
func MessageTextLT(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldMessageText, v))
}

// MessageTextLTE applies the LTE predicate on the "message_text" field.
func MessageTextLTE(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldMessageText, v))
}

// MessageTextContains applies the Contains predicate on the "message_text" field.
func MessageTextContains(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldContains(FieldMessageText, v))
}

// MessageTextHasPrefix applies the HasPrefix predicate on the "message_text" field.
func MessageTextHasPrefix(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldHasPrefix(FieldMessageText, v))
}

// MessageTextHasSuffix applies the HasSuffix predicate on the "message_text" field.
func MessageTextHasSuffix(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldHasSuffix(FieldMessageText, v))
}

// MessageTextEqualFold applies the EqualFold predicate on the "message_text" field.
func MessageTextEqualFold(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEqualFold(FieldMessageText, v))
}

// MessageTextContainsFold applies the ContainsFold predicate on the "message_text" field.
func MessageTextContainsFold(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldContainsFold(FieldMessageText, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldMessageID, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDIsNil applies the IsNil predicate on the "thread_id" field.
func ThreadIDIsNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIsNull(FieldThreadID))
}

// ThreadIDNotNil applies the NotNil predicate on the "thread_id" field.
func ThreadIDNotNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotNull(FieldThreadID))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldContainsFold(FieldThreadID, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v Classification) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v Classification) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...Classification) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...Classification) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldClassification, vs...))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldReceivedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// SLABreachedEQ applies the EQ predicate on the "sla_breached" field.
func SLABreachedEQ(v bool) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldSLABreached, v))
}

// SLABreachedNEQ applies the NEQ predicate on the "sla_breached" field.
func SLABreachedNEQ(v bool) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldSLABreached, v))
}

// ResponseMessageIDEQ applies the EQ predicate on the "response_message_id" field.
func ResponseMessageIDEQ(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldResponseMessageID, v))
}

// ResponseMessageIDNEQ applies the NEQ predicate on the "response_message_id" field.
func ResponseMessageIDNEQ(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldResponseMessageID, v))
}

// ResponseMessageIDIn applies the In predicate on the "response_message_id" field.
func ResponseMessageIDIn(vs ...int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldResponseMessageID, vs...))
}

// ResponseMessageIDNotIn applies the NotIn predicate on the "response_message_id" field.
func ResponseMessageIDNotIn(vs ...int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldResponseMessageID, vs...))
}

// ResponseMessageIDGT applies the GT predicate on the "response_message_id" field.
func ResponseMessageIDGT(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldResponseMessageID, v))
}

// ResponseMessageIDGTE applies the GTE predicate on the "response_message_id" field.
func ResponseMessageIDGTE(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldResponseMessageID, v))
}

// ResponseMessageIDLT applies the LT predicate on the "response_message_id" field.
func ResponseMessageIDLT(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldResponseMessageID, v))
}

// ResponseMessageIDLTE applies the LTE predicate on the "response_message_id" field.
func ResponseMessageIDLTE(v int64) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldResponseMessageID, v))
}

// ResponseMessageIDIsNil applies the IsNil predicate on the "response_message_id" field.
func ResponseMessageIDIsNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIsNull(FieldResponseMessageID))
}

// ResponseMessageIDNotNil applies the NotNil predicate on the "response_message_id" field.
func ResponseMessageIDNotNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotNull(FieldResponseMessageID))
}

// ResponseTimeMinutesEQ applies the EQ predicate on the "response_time_minutes" field.
func ResponseTimeMinutesEQ(v int) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldResponseTimeMinutes, v))
}

// ResponseTimeMinutesNEQ applies the NEQ predicate on the "response_time_minutes" field.
func ResponseTimeMinutesNEQ(v int) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldResponseTimeMinutes, v))
}

// ResponseTimeMinutesIn applies the In predicate on the "response_time_minutes" field.
func ResponseTimeMinutesIn(vs ...int) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldResponseTimeMinutes, vs...))
}

// ResponseTimeMinutesNotIn applies the NotIn predicate on the "response_time_minutes" field.
func ResponseTimeMinutesNotIn(vs ...int) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldResponseTimeMinutes, vs...))
}

// ResponseTimeMinutesGT applies the GT predicate on the "response_time_minutes" field.
func ResponseTimeMinutesGT(v int) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldResponseTimeMinutes, v))
}

// ResponseTimeMinutesGTE applies the GTE predicate on the "response_time_minutes" field.
func ResponseTimeMinutesGTE(v int) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldResponseTimeMinutes, v))
}

// ResponseTimeMinutesLT applies the LT predicate on the "response_time_minutes" field.
func ResponseTimeMinutesLT(v int) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldResponseTimeMinutes, v))
}

// ResponseTimeMinutesLTE applies the LTE predicate on the "response_time_minutes" field.
func ResponseTimeMinutesLTE(v int) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldResponseTimeMinutes, v))
}

// ResponseTimeMinutesIsNil applies the IsNil predicate on the "response_time_minutes" field.
func ResponseTimeMinutesIsNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIsNull(FieldResponseTimeMinutes))
}

// ResponseTimeMinutesNotNil applies the NotNil predicate on the "response_time_minutes" field.
func ResponseTimeMinutesNotNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotNull(FieldResponseTimeMinutes))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldAnsweredAt, v))
}

// AnsweredAtIsNil applies the IsNil predicate on the "answered_at" field.
func AnsweredAtIsNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIsNull(FieldAnsweredAt))
}

// AnsweredAtNotNil applies the NotNil predicate on the "answered_at" field.
func AnsweredAtNotNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotNull(FieldAnsweredAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ClientRequest {
	return predicate.ClientRequest(sql.FieldNotNull(FieldDeletedAt))
}

// HasChat applies the HasEdge predicate on the "chat" edge.
func HasChat() predicate.ClientRequest {
	return predicate.ClientRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChatTable, ChatColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatWith applies the HasEdge predicate on the "chat" edge with a given conditions (other predicates).
func HasChatWith(preds ...predicate.Chat) predicate.ClientRequest {
	return predicate.ClientRequest(func(s *sql.Selector) {
		step := newChatStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAlerts applies the HasEdge predicate on the "alerts" edge.
func HasAlerts() predicate.ClientRequest {
	return predicate.ClientRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertsWith applies the HasEdge predicate on the "alerts" edge with a given conditions (other predicates).
func HasAlertsWith(preds ...predicate.SLAAlert) predicate.ClientRequest {
	return predicate.ClientRequest(func(s *sql.Selector) {
		step := newAlertsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientRequest) predicate.ClientRequest {
	return predicate.ClientRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientRequest) predicate.ClientRequest {
	return predicate.ClientRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientRequest) predicate.ClientRequest {
	return predicate.ClientRequest(sql.NotPredicates(p))
}
