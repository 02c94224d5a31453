// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/teambuh/slamon/ent/chat"
)

// Chat is the model entity for the Chat schema.
type Chat struct {
	config `json:"-"`
	// ID of the ent.
	// External Telegram chat id (negative for groups)
	ID int64 `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// ChatType holds the value of the "chat_type" field.
	ChatType chat.ChatType `json:"chat_type,omitempty"`
	// SLAEnabled holds the value of the "sla_enabled" field.
	SLAEnabled bool `json:"sla_enabled,omitempty"`
	// Per-chat override; nil falls back to global default
	SLAThresholdMinutes *int `json:"sla_threshold_minutes,omitempty"`
	// MonitoringEnabled holds the value of the "monitoring_enabled" field.
	MonitoringEnabled bool `json:"monitoring_enabled,omitempty"`
	// Is24x7 holds the value of the "is_24x7" field.
	Is24x7 bool `json:"is_24x7,omitempty"`
	// ManagerIds holds the value of the "manager_ids" field.
	ManagerIds []string `json:"manager_ids,omitempty"`
	// AccountantIds holds the value of the "accountant_ids" field.
	AccountantIds []string `json:"accountant_ids,omitempty"`
	// Off by default to avoid chat-wide noise on breach
	NotifyInChatOnBreach bool `json:"notify_in_chat_on_breach,omitempty"`
	// ClientTier holds the value of the "client_tier" field.
	ClientTier chat.ClientTier `json:"client_tier,omitempty"`
	// InviteURL holds the value of the "invite_url" field.
	InviteURL *string `json:"invite_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete; set on bot removal
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatQuery when eager-loading is set.
	Edges        ChatEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatEdges holds the relations/edges for other nodes in the graph.
type ChatEdges struct {
	// Requests holds the value of the requests edge.
	Requests []*ClientRequest `json:"requests,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*ChatMessage `json:"messages,omitempty"`
	// Feedback holds the value of the feedback edge.
	Feedback []*FeedbackResponse `json:"feedback,omitempty"`
	// Invitations holds the value of the invitations edge.
	Invitations []*ChatInvitation `json:"invitations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// RequestsOrErr returns the Requests value or an error if the edge
// was not loaded in eager-loading.
func (e ChatEdges) RequestsOrErr() ([]*ClientRequest, error) {
	if e.loadedTypes[0] {
		return e.Requests, nil
	}
	return nil, &NotLoadedError{edge: "requests"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ChatEdges) MessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// FeedbackOrErr returns the Feedback value or an error if the edge
// was not loaded in eager-loading.
func (e ChatEdges) FeedbackOrErr() ([]*FeedbackResponse, error) {
	if e.loadedTypes[2] {
		return e.Feedback, nil
	}
	return nil, &NotLoadedError{edge: "feedback"}
}

// InvitationsOrErr returns the Invitations value or an error if the edge
// was not loaded in eager-loading.
func (e ChatEdges) InvitationsOrErr() ([]*ChatInvitation, error) {
	if e.loadedTypes[3] {
		return e.Invitations, nil
	}
	return nil, &NotLoadedError{edge: "invitations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Chat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chat.FieldManagerIds, chat.FieldAccountantIds:
			values[i] = new([]byte)
		case chat.FieldSLAEnabled, chat.FieldMonitoringEnabled, chat.FieldIs24x7, chat.FieldNotifyInChatOnBreach:
			values[i] = new(sql.NullBool)
		case chat.FieldID, chat.FieldSLAThresholdMinutes:
			values[i] = new(sql.NullInt64)
		case chat.FieldTitle, chat.FieldChatType, chat.FieldClientTier, chat.FieldInviteURL:
			values[i] = new(sql.NullString)
		case chat.FieldCreatedAt, chat.FieldUpdatedAt, chat.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Chat fields.
func (_m *Chat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case chat.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case chat.FieldChatType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_type", values[i])
			} else if value.Valid {
				_m.ChatType = chat.ChatType(value.String)
			}
		case chat.FieldSLAEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sla_enabled", values[i])
			} else if value.Valid {
				_m.SLAEnabled = value.Bool
			}
		case chat.FieldSLAThresholdMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sla_threshold_minutes", values[i])
			} else if value.Valid {
				_m.SLAThresholdMinutes = new(int)
				*_m.SLAThresholdMinutes = int(value.Int64)
			}
		case chat.FieldMonitoringEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_enabled", values[i])
			} else if value.Valid {
				_m.MonitoringEnabled = value.Bool
			}
		case chat.FieldIs24x7:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_24x7", values[i])
			} else if value.Valid {
				_m.Is24x7 = value.Bool
			}
		case chat.FieldManagerIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field manager_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ManagerIds); err != nil {
					return fmt.Errorf("unmarshal field manager_ids: %w", err)
				}
			}
		case chat.FieldAccountantIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field accountant_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AccountantIds); err != nil {
					return fmt.Errorf("unmarshal field accountant_ids: %w", err)
				}
			}
		case chat.FieldNotifyInChatOnBreach:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field notify_in_chat_on_breach", values[i])
			} else if value.Valid {
				_m.NotifyInChatOnBreach = value.Bool
			}
		case chat.FieldClientTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_tier", values[i])
			} else if value.Valid {
				_m.ClientTier = chat.ClientTier(value.String)
			}
		case chat.FieldInviteURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invite_url", values[i])
			} else if value.Valid {
				_m.InviteURL = new(string)
				*_m.InviteURL = value.String
			}
		case chat.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chat.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case chat.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Chat.
// This includes values selected through modifiers, order, etc.
func (_m *Chat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequests queries the "requests" edge of the Chat entity.
func (_m *Chat) QueryRequests() *ClientRequestQuery {
	return NewChatClient(_m.config).QueryRequests(_m)
}

// QueryMessages queries the "messages" edge of the Chat entity.
func (_m *Chat) QueryMessages() *ChatMessageQuery {
	return NewChatClient(_m.config).QueryMessages(_m)
}

// QueryFeedback queries the "feedback" edge of the Chat entity.
func (_m *Chat) QueryFeedback() *FeedbackResponseQuery {
	return NewChatClient(_m.config).QueryFeedback(_m)
}

// QueryInvitations queries the "invitations" edge of the Chat entity.
func (_m *Chat) QueryInvitations() *ChatInvitationQuery {
	return NewChatClient(_m.config).QueryInvitations(_m)
}

// Update returns a builder for updating this Chat.
// Note that you need to call Chat.Unwrap() before calling this method if this Chat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Chat) Update() *ChatUpdateOne {
	return NewChatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Chat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Chat) Unwrap() *Chat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Chat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Chat) String() string {
	var builder strings.Builder
	builder.WriteString("Chat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("chat_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChatType))
	builder.WriteString(", ")
	builder.WriteString("sla_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.SLAEnabled))
	builder.WriteString(", ")
	if v := _m.SLAThresholdMinutes; v != nil {
		builder.WriteString("sla_threshold_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("monitoring_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonitoringEnabled))
	builder.WriteString(", ")
	builder.WriteString("is_24x7=")
	builder.WriteString(fmt.Sprintf("%v", _m.Is24x7))
	builder.WriteString(", ")
	builder.WriteString("manager_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ManagerIds))
	builder.WriteString(", ")
	builder.WriteString("accountant_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountantIds))
	builder.WriteString(", ")
	builder.WriteString("notify_in_chat_on_breach=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotifyInChatOnBreach))
	builder.WriteString(", ")
	builder.WriteString("client_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientTier))
	builder.WriteString(", ")
	if v := _m.InviteURL; v != nil {
		builder.WriteString("invite_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Chats is a parsable slice of Chat.
type Chats []*Chat
