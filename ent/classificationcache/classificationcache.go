// Code generated by ent, DO NOT EDIT.

package classificationcache

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the classificationcache type in the database.
	Label = "classification_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "text_hash"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the classificationcache in the database.
	Table = "classification_caches"
)

// Columns holds all SQL columns for classificationcache fields.
var Columns = []string{
	FieldID,
	FieldClassification,
	FieldConfidence,
	FieldSource,
	FieldExpiresAt,
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
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
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
		return fmt.Errorf("classificationcache: invalid enum value for classification field: %q", c)
	}
}

// OrderOption defines the ordering options for the ClassificationCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
