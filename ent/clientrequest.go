// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/clientrequest"
)

// ClientRequest is the model entity for the ClientRequest schema.
type ClientRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Mutable: repointed in bulk on supergroup migration
	ChatID int64 `json:"chat_id,omitempty"`
	// ClientUsername holds the value of the "client_username" field.
	ClientUsername string `json:"client_username,omitempty"`
	// Telegram user id of the sender
	ClientID int64 `json:"client_id,omitempty"`
	// MessageText holds the value of the "message_text" field.
	MessageText string `json:"message_text,omitempty"`
	// Telegram message id of the inbound message
	MessageID int64 `json:"message_id,omitempty"`
	// Links CLARIFICATION messages to an open prior request
	ThreadID *string `json:"thread_id,omitempty"`
	// Classification holds the value of the "classification" field.
	Classification clientrequest.Classification `json:"classification,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// Status holds the value of the "status" field.
	Status clientrequest.Status `json:"status,omitempty"`
	// Monotonic: false -> true only
	SLABreached bool `json:"sla_breached,omitempty"`
	// ResponseMessageID holds the value of the "response_message_id" field.
	ResponseMessageID *int64 `json:"response_message_id,omitempty"`
	// Immutable once set
	ResponseTimeMinutes *int `json:"response_time_minutes,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClientRequestQuery when eager-loading is set.
	Edges        ClientRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClientRequestEdges holds the relations/edges for other nodes in the graph.
type ClientRequestEdges struct {
	// Chat holds the value of the chat edge.
	Chat *Chat `json:"chat,omitempty"`
	// Alerts holds the value of the alerts edge.
	Alerts []*SLAAlert `json:"alerts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ChatOrErr returns the Chat value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClientRequestEdges) ChatOrErr() (*Chat, error) {
	if e.Chat != nil {
		return e.Chat, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chat.Label}
	}
	return nil, &NotLoadedError{edge: "chat"}
}

// AlertsOrErr returns the Alerts value or an error if the edge
// was not loaded in eager-loading.
func (e ClientRequestEdges) AlertsOrErr() ([]*SLAAlert, error) {
	if e.loadedTypes[1] {
		return e.Alerts, nil
	}
	return nil, &NotLoadedError{edge: "alerts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientrequest.FieldSLABreached:
			values[i] = new(sql.NullBool)
		case clientrequest.FieldChatID, clientrequest.FieldClientID, clientrequest.FieldMessageID, clientrequest.FieldResponseMessageID, clientrequest.FieldResponseTimeMinutes:
			values[i] = new(sql.NullInt64)
		case clientrequest.FieldID, clientrequest.FieldClientUsername, clientrequest.FieldMessageText, clientrequest.FieldThreadID, clientrequest.FieldClassification, clientrequest.FieldStatus:
			values[i] = new(sql.NullString)
		case clientrequest.FieldReceivedAt, clientrequest.FieldAnsweredAt, clientrequest.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientRequest fields.
func (_m *ClientRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case clientrequest.FieldChatID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.Int64
			}
		case clientrequest.FieldClientUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_username", values[i])
			} else if value.Valid {
				_m.ClientUsername = value.String
			}
		case clientrequest.FieldClientID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				_m.ClientID = value.Int64
			}
		case clientrequest.FieldMessageText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_text", values[i])
			} else if value.Valid {
				_m.MessageText = value.String
			}
		case clientrequest.FieldMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.Int64
			}
		case clientrequest.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = new(string)
				*_m.ThreadID = value.String
			}
		case clientrequest.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = clientrequest.Classification(value.String)
			}
		case clientrequest.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case clientrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = clientrequest.Status(value.String)
			}
		case clientrequest.FieldSLABreached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sla_breached", values[i])
			} else if value.Valid {
				_m.SLABreached = value.Bool
			}
		case clientrequest.FieldResponseMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_message_id", values[i])
			} else if value.Valid {
				_m.ResponseMessageID = new(int64)
				*_m.ResponseMessageID = value.Int64
			}
		case clientrequest.FieldResponseTimeMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_minutes", values[i])
			} else if value.Valid {
				_m.ResponseTimeMinutes = new(int)
				*_m.ResponseTimeMinutes = int(value.Int64)
			}
		case clientrequest.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = new(time.Time)
				*_m.AnsweredAt = value.Time
			}
		case clientrequest.FieldDeletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ClientRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ClientRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChat queries the "chat" edge of the ClientRequest entity.
func (_m *ClientRequest) QueryChat() *ChatQuery {
	return NewClientRequestClient(_m.config).QueryChat(_m)
}

// QueryAlerts queries the "alerts" edge of the ClientRequest entity.
func (_m *ClientRequest) QueryAlerts() *SLAAlertQuery {
	return NewClientRequestClient(_m.config).QueryAlerts(_m)
}

// Update returns a builder for updating this ClientRequest.
// Note that you need to call ClientRequest.Unwrap() before calling this method if this ClientRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClientRequest) Update() *ClientRequestUpdateOne {
	return NewClientRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClientRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClientRequest) Unwrap() *ClientRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClientRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClientRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ClientRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChatID))
	builder.WriteString(", ")
	builder.WriteString("client_username=")
	builder.WriteString(_m.ClientUsername)
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteString(", ")
	builder.WriteString("message_text=")
	builder.WriteString(_m.MessageText)
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageID))
	builder.WriteString(", ")
	if v := _m.ThreadID; v != nil {
		builder.WriteString("thread_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(fmt.Sprintf("%v", _m.Classification))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("sla_breached=")
	builder.WriteString(fmt.Sprintf("%v", _m.SLABreached))
	builder.WriteString(", ")
	if v := _m.ResponseMessageID; v != nil {
		builder.WriteString("response_message_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResponseTimeMinutes; v != nil {
		builder.WriteString("response_time_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AnsweredAt; v != nil {
		builder.WriteString("answered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ClientRequests is a parsable slice of ClientRequest.
type ClientRequests []*ClientRequest
