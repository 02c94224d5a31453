// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/teambuh/slamon/ent/classificationcache"
	"github.com/teambuh/slamon/ent/predicate"
)

// ClassificationCacheUpdate is the builder for updating ClassificationCache entities.
type ClassificationCacheUpdate struct {
	config
	hooks    []Hook
	mutation *ClassificationCacheMutation
}

// Where appends a list predicates to the ClassificationCacheUpdate builder.
func (_u *ClassificationCacheUpdate) Where(ps ...predicate.ClassificationCache) *ClassificationCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *ClassificationCacheUpdate) SetClassification(v classificationcache.Classification) *ClassificationCacheUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ClassificationCacheUpdate) SetNillableClassification(v *classificationcache.Classification) *ClassificationCacheUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClassificationCacheUpdate) SetConfidence(v float64) *ClassificationCacheUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClassificationCacheUpdate) SetNillableConfidence(v *float64) *ClassificationCacheUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClassificationCacheUpdate) AddConfidence(v float64) *ClassificationCacheUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ClassificationCacheUpdate) SetSource(v string) *ClassificationCacheUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ClassificationCacheUpdate) SetNillableSource(v *string) *ClassificationCacheUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ClassificationCacheUpdate) SetExpiresAt(v time.Time) *ClassificationCacheUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ClassificationCacheUpdate) SetNillableExpiresAt(v *time.Time) *ClassificationCacheUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ClassificationCacheMutation object of the builder.
func (_u *ClassificationCacheUpdate) Mutation() *ClassificationCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClassificationCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassificationCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClassificationCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassificationCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassificationCacheUpdate) check() error {
	if v, ok := _u.mutation.Classification(); ok {
		if err := classificationcache.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ClassificationCache.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := classificationcache.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ClassificationCache.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassificationCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classificationcache.Table, classificationcache.Columns, sqlgraph.NewFieldSpec(classificationcache.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(classificationcache.FieldClassification, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(classificationcache.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(classificationcache.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(classificationcache.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(classificationcache.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classificationcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClassificationCacheUpdateOne is the builder for updating a single ClassificationCache entity.
type ClassificationCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClassificationCacheMutation
}

// SetClassification sets the "classification" field.
func (_u *ClassificationCacheUpdateOne) SetClassification(v classificationcache.Classification) *ClassificationCacheUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ClassificationCacheUpdateOne) SetNillableClassification(v *classificationcache.Classification) *ClassificationCacheUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClassificationCacheUpdateOne) SetConfidence(v float64) *ClassificationCacheUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClassificationCacheUpdateOne) SetNillableConfidence(v *float64) *ClassificationCacheUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClassificationCacheUpdateOne) AddConfidence(v float64) *ClassificationCacheUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ClassificationCacheUpdateOne) SetSource(v string) *ClassificationCacheUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ClassificationCacheUpdateOne) SetNillableSource(v *string) *ClassificationCacheUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ClassificationCacheUpdateOne) SetExpiresAt(v time.Time) *ClassificationCacheUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ClassificationCacheUpdateOne) SetNillableExpiresAt(v *time.Time) *ClassificationCacheUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ClassificationCacheMutation object of the builder.
func (_u *ClassificationCacheUpdateOne) Mutation() *ClassificationCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClassificationCacheUpdate builder.
func (_u *ClassificationCacheUpdateOne) Where(ps ...predicate.ClassificationCache) *ClassificationCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClassificationCacheUpdateOne) Select(field string, fields ...string) *ClassificationCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClassificationCache entity.
func (_u *ClassificationCacheUpdateOne) Save(ctx context.Context) (*ClassificationCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassificationCacheUpdateOne) SaveX(ctx context.Context) *ClassificationCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClassificationCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassificationCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassificationCacheUpdateOne) check() error {
	if v, ok := _u.mutation.Classification(); ok {
		if err := classificationcache.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ClassificationCache.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := classificationcache.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ClassificationCache.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassificationCacheUpdateOne) sqlSave(ctx context.Context) (_node *ClassificationCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classificationcache.Table, classificationcache.Columns, sqlgraph.NewFieldSpec(classificationcache.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClassificationCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, classificationcache.FieldID)
		for _, f := range fields {
			if !classificationcache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != classificationcache.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(classificationcache.FieldClassification, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(classificationcache.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(classificationcache.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(classificationcache.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(classificationcache.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &ClassificationCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classificationcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
