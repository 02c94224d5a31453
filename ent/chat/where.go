// Code generated by ent, DO NOT EDIT.

package chat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/teambuh/slamon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldTitle, v))
}

// SLAEnabled applies equality check predicate on the "sla_enabled" field. It's identical to SLAEnabledEQ.
func SLAEnabled(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldSLAEnabled, v))
}

// SLAThresholdMinutes applies equality check predicate on the "sla_threshold_minutes" field. It's identical to SLAThresholdMinutesEQ.
func SLAThresholdMinutes(v int) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldSLAThresholdMinutes, v))
}

// MonitoringEnabled applies equality check predicate on the "monitoring_enabled" field. It's identical to MonitoringEnabledEQ.
func MonitoringEnabled(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldMonitoringEnabled, v))
}

// Is24x7 applies equality check predicate on the "is_24x7" field. It's identical to Is24x7EQ.
func Is24x7(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldIs24x7, v))
}

// NotifyInChatOnBreach applies equality check predicate on the "notify_in_chat_on_breach" field. It's identical to NotifyInChatOnBreachEQ.
func NotifyInChatOnBreach(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldNotifyInChatOnBreach, v))
}

// InviteURL applies equality check predicate on the "invite_url" field. It's identical to InviteURLEQ.
func InviteURL(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldInviteURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldDeletedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Chat {
	return predicate.Chat(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Chat {
	return predicate.Chat(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Chat {
	return predicate.Chat(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Chat {
	return predicate.Chat(sql.FieldContainsFold(FieldTitle, v))
}

// ChatTypeEQ applies the EQ predicate on the "chat_type" field.
func ChatTypeEQ(v ChatType) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldChatType, v))
}

// ChatTypeNEQ applies the NEQ predicate on the "chat_type" field.
func ChatTypeNEQ(v ChatType) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldChatType, v))
}

// ChatTypeIn applies the In predicate on the "chat_type" field.
func ChatTypeIn(vs ...ChatType) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldChatType, vs...))
}

// ChatTypeNotIn applies the NotIn predicate on the "chat_type" field.
func ChatTypeNotIn(vs ...ChatType) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldChatType, vs...))
}

// SLAEnabledEQ applies the EQ predicate on the "sla_enabled" field.
func SLAEnabledEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldSLAEnabled, v))
}

// SLAEnabledNEQ applies the NEQ predicate on the "sla_enabled" field.
func SLAEnabledNEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldSLAEnabled, v))
}

// SLAThresholdMinutesEQ applies the EQ predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesEQ(v int) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldSLAThresholdMinutes, v))
}

// SLAThresholdMinutesNEQ applies the NEQ predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesNEQ(v int) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldSLAThresholdMinutes, v))
}

// SLAThresholdMinutesIn applies the In predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesIn(vs ...int) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldSLAThresholdMinutes, vs...))
}

// SLAThresholdMinutesNotIn applies the NotIn predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesNotIn(vs ...int) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldSLAThresholdMinutes, vs...))
}

// SLAThresholdMinutesGT applies the GT predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesGT(v int) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldSLAThresholdMinutes, v))
}

// SLAThresholdMinutesGTE applies the GTE predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesGTE(v int) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldSLAThresholdMinutes, v))
}

// SLAThresholdMinutesLT applies the LT predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesLT(v int) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldSLAThresholdMinutes, v))
}

// SLAThresholdMinutesLTE applies the LTE predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesLTE(v int) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldSLAThresholdMinutes, v))
}

// SLAThresholdMinutesIsNil applies the IsNil predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesIsNil() predicate.Chat {
	return predicate.Chat(sql.FieldIsNull(FieldSLAThresholdMinutes))
}

// SLAThresholdMinutesNotNil applies the NotNil predicate on the "sla_threshold_minutes" field.
func SLAThresholdMinutesNotNil() predicate.Chat {
	return predicate.Chat(sql.FieldNotNull(FieldSLAThresholdMinutes))
}

// MonitoringEnabledEQ applies the EQ predicate on the "monitoring_enabled" field.
func MonitoringEnabledEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldMonitoringEnabled, v))
}

// MonitoringEnabledNEQ applies the NEQ predicate on the "monitoring_enabled" field.
func MonitoringEnabledNEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldMonitoringEnabled, v))
}

// Is24x7EQ applies the EQ predicate on the "is_24x7" field.
func Is24x7EQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldIs24x7, v))
}

// Is24x7NEQ applies the NEQ predicate on the "is_24x7" field.
func Is24x7NEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldIs24x7, v))
}

// ManagerIdsIsNil applies the IsNil predicate on the "manager_ids" field.
func ManagerIdsIsNil() predicate.Chat {
	return predicate.Chat(sql.FieldIsNull(FieldManagerIds))
}

// ManagerIdsNotNil applies the NotNil predicate on the "manager_ids" field.
func ManagerIdsNotNil() predicate.Chat {
	return predicate.Chat(sql.FieldNotNull(FieldManagerIds))
}

// AccountantIdsIsNil applies the IsNil predicate on the "accountant_ids" field.
func AccountantIdsIsNil() predicate.Chat {
	return predicate.Chat(sql.FieldIsNull(FieldAccountantIds))
}

// AccountantIdsNotNil applies the NotNil predicate on the "accountant_ids" field.
func AccountantIdsNotNil() predicate.Chat {
	return predicate.Chat(sql.FieldNotNull(FieldAccountantIds))
}

// NotifyInChatOnBreachEQ applies the EQ predicate on the "notify_in_chat_on_breach" field.
func NotifyInChatOnBreachEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldNotifyInChatOnBreach, v))
}

// NotifyInChatOnBreachNEQ applies the NEQ predicate on the "notify_in_chat_on_breach" field.
func NotifyInChatOnBreachNEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldNotifyInChatOnBreach, v))
}

// ClientTierEQ applies the EQ predicate on the "client_tier" field.
func ClientTierEQ(v ClientTier) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldClientTier, v))
}

// ClientTierNEQ applies the NEQ predicate on the "client_tier" field.
func ClientTierNEQ(v ClientTier) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldClientTier, v))
}

// ClientTierIn applies the In predicate on the "client_tier" field.
func ClientTierIn(vs ...ClientTier) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldClientTier, vs...))
}

// ClientTierNotIn applies the NotIn predicate on the "client_tier" field.
func ClientTierNotIn(vs ...ClientTier) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldClientTier, vs...))
}

// InviteURLEQ applies the EQ predicate on the "invite_url" field.
func InviteURLEQ(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldInviteURL, v))
}

// InviteURLNEQ applies the NEQ predicate on the "invite_url" field.
func InviteURLNEQ(v string) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldInviteURL, v))
}

// InviteURLIn applies the In predicate on the "invite_url" field.
func InviteURLIn(vs ...string) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldInviteURL, vs...))
}

// InviteURLNotIn applies the NotIn predicate on the "invite_url" field.
func InviteURLNotIn(vs ...string) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldInviteURL, vs...))
}

// InviteURLGT applies the GT predicate on the "invite_url" field.
func InviteURLGT(v string) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldInviteURL, v))
}

// InviteURLGTE applies the GTE predicate on the "invite_url" field.
func InviteURLGTE(v string) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldInviteURL, v))
}

// InviteURLLT applies the LT predicate on the "invite_url" field.
func InviteURLLT(v string) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldInviteURL, v))
}

// InviteURLLTE applies the LTE predicate on the "invite_url" field.
func InviteURLLTE(v string) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldInviteURL, v))
}

// InviteURLContains applies the Contains predicate on the "invite_url" field.
func InviteURLContains(v string) predicate.Chat {
	return predicate.Chat(sql.FieldContains(FieldInviteURL, v))
}

// InviteURLHasPrefix applies the HasPrefix predicate on the "invite_url" field.
func InviteURLHasPrefix(v string) predicate.Chat {
	return predicate.Chat(sql.FieldHasPrefix(FieldInviteURL, v))
}

// InviteURLHasSuffix applies the HasSuffix predicate on the "invite_url" field.
func InviteURLHasSuffix(v string) predicate.Chat {
	return predicate.Chat(sql.FieldHasSuffix(FieldInviteURL, v))
}

// InviteURLIsNil applies the IsNil predicate on the "invite_url" field.
func InviteURLIsNil() predicate.Chat {
	return predicate.Chat(sql.FieldIsNull(FieldInviteURL))
}

// InviteURLNotNil applies the NotNil predicate on the "invite_url" field.
func InviteURLNotNil() predicate.Chat {
	return predicate.Chat(sql.FieldNotNull(FieldInviteURL))
}

// InviteURLEqualFold applies the EqualFold predicate on the "invite_url" field.
func InviteURLEqualFold(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEqualFold(FieldInviteURL, v))
}

// InviteURLContainsFold applies the ContainsFold predicate on the "invite_url" field.
func InviteURLContainsFold(v string) predicate.Chat {
	return predicate.Chat(sql.FieldContainsFold(FieldInviteURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Chat {
	return predicate.Chat(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Chat {
	return predicate.Chat(sql.FieldNotNull(FieldDeletedAt))
}

// HasRequests applies the HasEdge predicate on the "requests" edge.
func HasRequests() predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RequestsTable, RequestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestsWith applies the HasEdge predicate on the "requests" edge with a given conditions (other predicates).
func HasRequestsWith(preds ...predicate.ClientRequest) predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := newRequestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ChatMessage) predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeedback applies the HasEdge predicate on the "feedback" edge.
func HasFeedback() predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FeedbackTable, FeedbackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedbackWith applies the HasEdge predicate on the "feedback" edge with a given conditions (other predicates).
func HasFeedbackWith(preds ...predicate.FeedbackResponse) predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := newFeedbackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvitations applies the HasEdge predicate on the "invitations" edge.
func HasInvitations() predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvitationsTable, InvitationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvitationsWith applies the HasEdge predicate on the "invitations" edge with a given conditions (other predicates).
func HasInvitationsWith(preds ...predicate.ChatInvitation) predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := newInvitationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Chat) predicate.Chat {
	return predicate.Chat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Chat) predicate.Chat {
	return predicate.Chat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Chat) predicate.Chat {
	return predicate.Chat(sql.NotPredicates(p))
}
