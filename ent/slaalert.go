// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/slaalert"
)

// SLAAlert is the model entity for the SLAAlert schema.
type SLAAlert struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// AlertType holds the value of the "alert_type" field.
	AlertType slaalert.AlertType `json:"alert_type,omitempty"`
	// Minutes since received_at when the alert was created
	MinutesElapsed int `json:"minutes_elapsed,omitempty"`
	// 0 = warning, 1 = first breach, 2.. = escalations
	EscalationLevel int `json:"escalation_level,omitempty"`
	// RecipientIds holds the value of the "recipient_ids" field.
	RecipientIds []string `json:"recipient_ids,omitempty"`
	// DeliveryStatus holds the value of the "delivery_status" field.
	DeliveryStatus slaalert.DeliveryStatus `json:"delivery_status,omitempty"`
	// DeliveredCount holds the value of the "delivered_count" field.
	DeliveredCount int `json:"delivered_count,omitempty"`
	// FailedCount holds the value of the "failed_count" field.
	FailedCount int `json:"failed_count,omitempty"`
	// NextEscalationAt holds the value of the "next_escalation_at" field.
	NextEscalationAt *time.Time `json:"next_escalation_at,omitempty"`
	// nil while the alert is open
	ResolvedAction *slaalert.ResolvedAction `json:"resolved_action,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SLAAlertQuery when eager-loading is set.
	Edges        SLAAlertEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SLAAlertEdges holds the relations/edges for other nodes in the graph.
type SLAAlertEdges struct {
	// Request holds the value of the request edge.
	Request *ClientRequest `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SLAAlertEdges) RequestOrErr() (*ClientRequest, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clientrequest.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SLAAlert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slaalert.FieldRecipientIds:
			values[i] = new([]byte)
		case slaalert.FieldMinutesElapsed, slaalert.FieldEscalationLevel, slaalert.FieldDeliveredCount, slaalert.FieldFailedCount:
			values[i] = new(sql.NullInt64)
		case slaalert.FieldID, slaalert.FieldRequestID, slaalert.FieldAlertType, slaalert.FieldDeliveryStatus, slaalert.FieldResolvedAction:
			values[i] = new(sql.NullString)
		case slaalert.FieldNextEscalationAt, slaalert.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SLAAlert fields.
func (_m *SLAAlert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slaalert.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case slaalert.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case slaalert.FieldAlertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_type", values[i])
			} else if value.Valid {
				_m.AlertType = slaalert.AlertType(value.String)
			}
		case slaalert.FieldMinutesElapsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minutes_elapsed", values[i])
			} else if value.Valid {
				_m.MinutesElapsed = int(value.Int64)
			}
		case slaalert.FieldEscalationLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_level", values[i])
			} else if value.Valid {
				_m.EscalationLevel = int(value.Int64)
			}
		case slaalert.FieldRecipientIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecipientIds); err != nil {
					return fmt.Errorf("unmarshal field recipient_ids: %w", err)
				}
			}
		case slaalert.FieldDeliveryStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_status", values[i])
			} else if value.Valid {
				_m.DeliveryStatus = slaalert.DeliveryStatus(value.String)
			}
		case slaalert.FieldDeliveredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_count", values[i])
			} else if value.Valid {
				_m.DeliveredCount = int(value.Int64)
			}
		case slaalert.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				_m.FailedCount = int(value.Int64)
			}
		case slaalert.FieldNextEscalationAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_escalation_at", values[i])
			} else if value.Valid {
				_m.NextEscalationAt = new(time.Time)
				*_m.NextEscalationAt = value.Time
			}
		case slaalert.FieldResolvedAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_action", values[i])
			} else if value.Valid {
				_m.ResolvedAction = new(slaalert.ResolvedAction)
				*_m.ResolvedAction = slaalert.ResolvedAction(value.String)
			}
		case slaalert.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SLAAlert.
// This includes values selected through modifiers, order, etc.
func (_m *SLAAlert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the SLAAlert entity.
func (_m *SLAAlert) QueryRequest() *ClientRequestQuery {
	return NewSLAAlertClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this SLAAlert.
// Note that you need to call SLAAlert.Unwrap() before calling this method if this SLAAlert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SLAAlert) Update() *SLAAlertUpdateOne {
	return NewSLAAlertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SLAAlert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SLAAlert) Unwrap() *SLAAlert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SLAAlert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SLAAlert) String() string {
	var builder strings.Builder
	builder.WriteString("SLAAlert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("alert_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertType))
	builder.WriteString(", ")
	builder.WriteString("minutes_elapsed=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinutesElapsed))
	builder.WriteString(", ")
	builder.WriteString("escalation_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.EscalationLevel))
	builder.WriteString(", ")
	builder.WriteString("recipient_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecipientIds))
	builder.WriteString(", ")
	builder.WriteString("delivery_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveryStatus))
	builder.WriteString(", ")
	builder.WriteString("delivered_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveredCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCount))
	builder.WriteString(", ")
	if v := _m.NextEscalationAt; v != nil {
		builder.WriteString("next_escalation_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedAction; v != nil {
		builder.WriteString("resolved_action=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SLAAlerts is a parsable slice of SLAAlert.
type SLAAlerts []*SLAAlert
