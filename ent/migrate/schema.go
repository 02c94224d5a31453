// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatsColumns holds the columns for the "chats" table.
	ChatsColumns = []*schema.Column{
		{Name: "chat_id", Type: field.TypeInt64, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "chat_type", Type: field.TypeEnum, Enums: []string{"group", "supergroup", "private"}, Default: "group"},
		{Name: "sla_enabled", Type: field.TypeBool, Default: true},
		{Name: "sla_threshold_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "monitoring_enabled", Type: field.TypeBool, Default: true},
		{Name: "is_24x7", Type: field.TypeBool, Default: false},
		{Name: "manager_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "accountant_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "notify_in_chat_on_breach", Type: field.TypeBool, Default: false},
		{Name: "client_tier", Type: field.TypeEnum, Enums: []string{"standard", "priority"}, Default: "standard"},
		{Name: "invite_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ChatsTable holds the schema information for the "chats" table.
	ChatsTable = &schema.Table{
		Name:       "chats",
		Columns:    ChatsColumns,
		PrimaryKey: []*schema.Column{ChatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chat_monitoring_enabled_sla_enabled",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[5], ChatsColumns[3]},
			},
			{
				Name:    "chat_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ChatInvitationsColumns holds the columns for the "chat_invitations" table.
	ChatInvitationsColumns = []*schema.Column{
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "used", "expired", "revoked"}, Default: "pending"},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "used_by", Type: field.TypeInt64, Nullable: true},
		{Name: "used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeInt64},
	}
	// ChatInvitationsTable holds the schema information for the "chat_invitations" table.
	ChatInvitationsTable = &schema.Table{
		Name:       "chat_invitations",
		Columns:    ChatInvitationsColumns,
		PrimaryKey: []*schema.Column{ChatInvitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_invitations_chats_invitations",
				Columns:    []*schema.Column{ChatInvitationsColumns[6]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatinvitation_chat_id_status",
				Unique:  false,
				Columns: []*schema.Column{ChatInvitationsColumns[6], ChatInvitationsColumns[1]},
			},
			{
				Name:    "chatinvitation_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ChatInvitationsColumns[1], ChatInvitationsColumns[2]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "chat_message_id", Type: field.TypeString, Unique: true},
		{Name: "message_id", Type: field.TypeInt64},
		{Name: "sender_id", Type: field.TypeInt64},
		{Name: "sender_username", Type: field.TypeString, Default: ""},
		{Name: "text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "from_accountant", Type: field.TypeBool, Default: false},
		{Name: "faq_handled", Type: field.TypeBool, Default: false},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeInt64},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chats_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[9]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_chat_id_message_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[9], ChatMessagesColumns[1]},
			},
			{
				Name:    "chatmessage_chat_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[9], ChatMessagesColumns[8]},
			},
		},
	}
	// ClassificationCachesColumns holds the columns for the "classification_caches" table.
	ClassificationCachesColumns = []*schema.Column{
		{Name: "text_hash", Type: field.TypeString, Unique: true},
		{Name: "classification", Type: field.TypeEnum, Enums: []string{"REQUEST", "SPAM", "GRATITUDE", "CLARIFICATION"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "source", Type: field.TypeString, Default: "ai"},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ClassificationCachesTable holds the schema information for the "classification_caches" table.
	ClassificationCachesTable = &schema.Table{
		Name:       "classification_caches",
		Columns:    ClassificationCachesColumns,
		PrimaryKey: []*schema.Column{ClassificationCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "classificationcache_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ClassificationCachesColumns[4]},
			},
		},
	}
	// ClientRequestsColumns holds the columns for the "client_requests" table.
	ClientRequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "client_username", Type: field.TypeString, Default: ""},
		{Name: "client_id", Type: field.TypeInt64, Nullable: true},
		{Name: "message_text", Type: field.TypeString, Size: 2147483647},
		{Name: "message_id", Type: field.TypeInt64},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "classification", Type: field.TypeEnum, Enums: []string{"REQUEST", "SPAM", "GRATITUDE", "CLARIFICATION"}},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "waiting_client", "transferred", "answered", "escalated", "closed"}, Default: "pending"},
		{Name: "sla_breached", Type: field.TypeBool, Default: false},
		{Name: "response_message_id", Type: field.TypeInt64, Nullable: true},
		{Name: "response_time_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "answered_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "chat_id", Type: field.TypeInt64},
	}
	// ClientRequestsTable holds the schema information for the "client_requests" table.
	ClientRequestsTable = &schema.Table{
		Name:       "client_requests",
		Columns:    ClientRequestsColumns,
		PrimaryKey: []*schema.Column{ClientRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "client_requests_chats_requests",
				Columns:    []*schema.Column{ClientRequestsColumns[14]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clientrequest_chat_id_status_received_at",
				Unique:  false,
				Columns: []*schema.Column{ClientRequestsColumns[14], ClientRequestsColumns[8], ClientRequestsColumns[7]},
			},
			{
				Name:    "clientrequest_status_received_at",
				Unique:  false,
				Columns: []*schema.Column{ClientRequestsColumns[8], ClientRequestsColumns[7]},
			},
			{
				Name:    "clientrequest_chat_id_message_id",
				Unique:  false,
				Columns: []*schema.Column{ClientRequestsColumns[14], ClientRequestsColumns[4]},
			},
			{
				Name:    "clientrequest_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ClientRequestsColumns[13]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// FaqItemsColumns holds the columns for the "faq_items" table.
	FaqItemsColumns = []*schema.Column{
		{Name: "faq_id", Type: field.TypeString, Unique: true},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "keywords", Type: field.TypeJSON},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FaqItemsTable holds the schema information for the "faq_items" table.
	FaqItemsTable = &schema.Table{
		Name:       "faq_items",
		Columns:    FaqItemsColumns,
		PrimaryKey: []*schema.Column{FaqItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "faqitem_is_active",
				Unique:  false,
				Columns: []*schema.Column{FaqItemsColumns[4]},
			},
		},
	}
	// FeedbackResponsesColumns holds the columns for the "feedback_responses" table.
	FeedbackResponsesColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeInt64},
	}
	// FeedbackResponsesTable holds the schema information for the "feedback_responses" table.
	FeedbackResponsesTable = &schema.Table{
		Name:       "feedback_responses",
		Columns:    FeedbackResponsesColumns,
		PrimaryKey: []*schema.Column{FeedbackResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedback_responses_chats_feedback",
				Columns:    []*schema.Column{FeedbackResponsesColumns[4]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackresponse_chat_id_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackResponsesColumns[4], FeedbackResponsesColumns[3]},
			},
			{
				Name:    "feedbackresponse_rating",
				Unique:  false,
				Columns: []*schema.Column{FeedbackResponsesColumns[1]},
			},
		},
	}
	// GlobalSettingsColumns holds the columns for the "global_settings" table.
	GlobalSettingsColumns = []*schema.Column{
		{Name: "settings_id", Type: field.TypeString, Unique: true},
		{Name: "default_sla_threshold_minutes", Type: field.TypeInt, Default: 60},
		{Name: "warning_offset_minutes", Type: field.TypeInt, Default: 12},
		{Name: "escalation_interval_minutes", Type: field.TypeInt, Default: 30},
		{Name: "max_escalation_level", Type: field.TypeInt, Default: 5},
		{Name: "global_manager_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "low_rating_threshold", Type: field.TypeInt, Default: 3},
		{Name: "sla_concurrency", Type: field.TypeInt, Default: 5},
		{Name: "sla_rate_limit_max", Type: field.TypeInt, Default: 30},
		{Name: "sla_rate_limit_window_ms", Type: field.TypeInt, Default: 1000},
		{Name: "reconcile_interval_minutes", Type: field.TypeInt, Default: 5},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GlobalSettingsTable holds the schema information for the "global_settings" table.
	GlobalSettingsTable = &schema.Table{
		Name:       "global_settings",
		Columns:    GlobalSettingsColumns,
		PrimaryKey: []*schema.Column{GlobalSettingsColumns[0]},
	}
	// LeasesColumns holds the columns for the "leases" table.
	LeasesColumns = []*schema.Column{
		{Name: "lease_name", Type: field.TypeString, Unique: true},
		{Name: "holder", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "acquired_at", Type: field.TypeTime},
	}
	// LeasesTable holds the schema information for the "leases" table.
	LeasesTable = &schema.Table{
		Name:       "leases",
		Columns:    LeasesColumns,
		PrimaryKey: []*schema.Column{LeasesColumns[0]},
	}
	// SLAAlertsColumns holds the columns for the "sla_alerts" table.
	SLAAlertsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "alert_type", Type: field.TypeEnum, Enums: []string{"warning", "breach"}},
		{Name: "minutes_elapsed", Type: field.TypeInt},
		{Name: "escalation_level", Type: field.TypeInt},
		{Name: "recipient_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "delivery_status", Type: field.TypeEnum, Enums: []string{"pending", "delivered", "failed"}, Default: "pending"},
		{Name: "delivered_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "next_escalation_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_action", Type: field.TypeEnum, Nullable: true, Enums: []string{"mark_resolved", "accountant_responded", "auto_expired"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// SLAAlertsTable holds the schema information for the "sla_alerts" table.
	SLAAlertsTable = &schema.Table{
		Name:       "sla_alerts",
		Columns:    SLAAlertsColumns,
		PrimaryKey: []*schema.Column{SLAAlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sla_alerts_client_requests_alerts",
				Columns:    []*schema.Column{SLAAlertsColumns[11]},
				RefColumns: []*schema.Column{ClientRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "slaalert_request_id_alert_type_escalation_level",
				Unique:  false,
				Columns: []*schema.Column{SLAAlertsColumns[11], SLAAlertsColumns[1], SLAAlertsColumns[3]},
			},
			{
				Name:    "slaalert_delivery_status",
				Unique:  false,
				Columns: []*schema.Column{SLAAlertsColumns[5]},
			},
			{
				Name:    "slaalert_created_at",
				Unique:  false,
				Columns: []*schema.Column{SLAAlertsColumns[10]},
			},
		},
	}
	// TimerJobsColumns holds the columns for the "timer_jobs" table.
	TimerJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "job_type", Type: field.TypeEnum, Enums: []string{"warning", "breach", "escalation", "reconcile", "delivery", "survey"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "running", "failed"}, Default: "scheduled"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TimerJobsTable holds the schema information for the "timer_jobs" table.
	TimerJobsTable = &schema.Table{
		Name:       "timer_jobs",
		Columns:    TimerJobsColumns,
		PrimaryKey: []*schema.Column{TimerJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "timerjob_job_type_status_due_at",
				Unique:  false,
				Columns: []*schema.Column{TimerJobsColumns[1], TimerJobsColumns[4], TimerJobsColumns[3]},
			},
			{
				Name:    "timerjob_status_locked_at",
				Unique:  false,
				Columns: []*schema.Column{TimerJobsColumns[4], TimerJobsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatsTable,
		ChatInvitationsTable,
		ChatMessagesTable,
		ClassificationCachesTable,
		ClientRequestsTable,
		FaqItemsTable,
		FeedbackResponsesTable,
		GlobalSettingsTable,
		LeasesTable,
		SLAAlertsTable,
		TimerJobsTable,
	}
)

func init() {
	ChatInvitationsTable.ForeignKeys[0].RefTable = ChatsTable
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatsTable
	ClientRequestsTable.ForeignKeys[0].RefTable = ChatsTable
	FeedbackResponsesTable.ForeignKeys[0].RefTable = ChatsTable
	SLAAlertsTable.ForeignKeys[0].RefTable = ClientRequestsTable
}
