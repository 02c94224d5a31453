// Code generated by ent, DO NOT EDIT.

package timerjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the timerjob type in the database.
	Label = "timer_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldDueAt holds the string denoting the due_at field in the database.
	FieldDueAt = "due_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldLockedBy holds the string denoting the locked_by field in the database.
	FieldLockedBy = "locked_by"
	// FieldLockedAt holds the string denoting the locked_at field in the database.
	FieldLockedAt = "locked_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the timerjob in the database.
	Table = "timer_jobs"
)

// Columns holds all SQL columns for timerjob fields.
var Columns = []string{
	FieldID,
	FieldJobType,
	FieldPayload,
	FieldDueAt,
	FieldStatus,
	FieldAttempts,
	FieldLockedBy,
	FieldLockedAt,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// JobType defines the type for the "job_type" enum field.
type JobType string

// JobType values.
const (
	JobTypeWarning    JobType = "warning"
	JobTypeBreach     JobType = "breach"
	JobTypeEscalation JobType = "escalation"
	JobTypeReconcile  JobType = "reconcile"
	JobTypeDelivery   JobType = "delivery"
	JobTypeSurvey     JobType = "survey"
)

func (jt JobType) String() string {
	return string(jt)
}

// JobTypeValidator is a validator for the "job_type" field enum values. It is called by the builders before save.
func JobTypeValidator(jt JobType) error {
	switch jt {
	case JobTypeWarning, JobTypeBreach, JobTypeEscalation, JobTypeReconcile, JobTypeDelivery, JobTypeSurvey:
		return nil
	default:
		return fmt.Errorf("timerjob: invalid enum value for job_type field: %q", jt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusScheduled is the default value of the Status enum.
const DefaultStatus = StatusScheduled

// Status values.
const (
	StatusScheduled Status = "scheduled"
	StatusRunning   Status = "running"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusScheduled, StatusRunning, StatusFailed:
		return nil
	default:
		return fmt.Errorf("timerjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TimerJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// ByDueAt orders the results by the due_at field.
func ByDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByLockedBy orders the results by the locked_by field.
func ByLockedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedBy, opts...).ToFunc()
}

// ByLockedAt orders the results by the locked_at field.
func ByLockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
