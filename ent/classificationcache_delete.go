// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/teambuh/slamon/ent/classificationcache"
	"github.com/teambuh/slamon/ent/predicate"
)

// ClassificationCacheDelete is the builder for deleting a ClassificationCache entity.
type ClassificationCacheDelete struct {
	config
	hooks    []Hook
	mutation *ClassificationCacheMutation
}

// Where appends a list predicates to the ClassificationCacheDelete builder.
func (_d *ClassificationCacheDelete) Where(ps ...predicate.ClassificationCache) *ClassificationCacheDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ClassificationCacheDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClassificationCacheDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ClassificationCacheDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(classificationcache.Table, sqlgraph.NewFieldSpec(classificationcache.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ClassificationCacheDeleteOne is the builder for deleting a single ClassificationCache entity.
type ClassificationCacheDeleteOne struct {
	_d *ClassificationCacheDelete
}

// Where appends a list predicates to the ClassificationCacheDelete builder.
func (_d *ClassificationCacheDeleteOne) Where(ps ...predicate.ClassificationCache) *ClassificationCacheDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ClassificationCacheDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{classificationcache.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClassificationCacheDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
