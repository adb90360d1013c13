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
	"github.com/fachebot/chat-digest-bot/internal/ent/dailyrun"
	"github.com/fachebot/chat-digest-bot/internal/ent/predicate"
)

// DailyRunUpdate is the builder for updating DailyRun entities.
type DailyRunUpdate struct {
	config
	hooks    []Hook
	mutation *DailyRunMutation
}

// Where appends a list predicates to the DailyRunUpdate builder.
func (dru *DailyRunUpdate) Where(ps ...predicate.DailyRun) *DailyRunUpdate {
	dru.mutation.Where(ps...)
	return dru
}

// SetUpdateTime sets the "update_time" field.
func (dru *DailyRunUpdate) SetUpdateTime(t time.Time) *DailyRunUpdate {
	dru.mutation.SetUpdateTime(t)
	return dru
}

// SetStartTime sets the "start_time" field.
func (dru *DailyRunUpdate) SetStartTime(t time.Time) *DailyRunUpdate {
	dru.mutation.SetStartTime(t)
	return dru
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (dru *DailyRunUpdate) SetNillableStartTime(t *time.Time) *DailyRunUpdate {
	if t != nil {
		dru.SetStartTime(*t)
	}
	return dru
}

// SetEndTime sets the "end_time" field.
func (dru *DailyRunUpdate) SetEndTime(t time.Time) *DailyRunUpdate {
	dru.mutation.SetEndTime(t)
	return dru
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (dru *DailyRunUpdate) SetNillableEndTime(t *time.Time) *DailyRunUpdate {
	if t != nil {
		dru.SetEndTime(*t)
	}
	return dru
}

// SetStatus sets the "status" field.
func (dru *DailyRunUpdate) SetStatus(d dailyrun.Status) *DailyRunUpdate {
	dru.mutation.SetStatus(d)
	return dru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (dru *DailyRunUpdate) SetNillableStatus(d *dailyrun.Status) *DailyRunUpdate {
	if d != nil {
		dru.SetStatus(*d)
	}
	return dru
}

// SetErrorMessage sets the "error_message" field.
func (dru *DailyRunUpdate) SetErrorMessage(s string) *DailyRunUpdate {
	dru.mutation.SetErrorMessage(s)
	return dru
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (dru *DailyRunUpdate) SetNillableErrorMessage(s *string) *DailyRunUpdate {
	if s != nil {
		dru.SetErrorMessage(*s)
	}
	return dru
}

// ClearErrorMessage clears the value of the "error_message" field.
func (dru *DailyRunUpdate) ClearErrorMessage() *DailyRunUpdate {
	dru.mutation.ClearErrorMessage()
	return dru
}

// Mutation returns the DailyRunMutation object of the builder.
func (dru *DailyRunUpdate) Mutation() *DailyRunMutation {
	return dru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dru *DailyRunUpdate) Save(ctx context.Context) (int, error) {
	dru.defaults()
	return withHooks(ctx, dru.sqlSave, dru.mutation, dru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dru *DailyRunUpdate) SaveX(ctx context.Context) int {
	affected, err := dru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dru *DailyRunUpdate) Exec(ctx context.Context) error {
	_, err := dru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dru *DailyRunUpdate) ExecX(ctx context.Context) {
	if err := dru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dru *DailyRunUpdate) defaults() {
	if _, ok := dru.mutation.UpdateTime(); !ok {
		v := dailyrun.UpdateDefaultUpdateTime()
		dru.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dru *DailyRunUpdate) check() error {
	if v, ok := dru.mutation.Status(); ok {
		if err := dailyrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DailyRun.status": %w`, err)}
		}
	}
	return nil
}

func (dru *DailyRunUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyrun.Table, dailyrun.Columns, sqlgraph.NewFieldSpec(dailyrun.FieldID, field.TypeInt))
	if ps := dru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dru.mutation.UpdateTime(); ok {
		_spec.SetField(dailyrun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := dru.mutation.StartTime(); ok {
		_spec.SetField(dailyrun.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := dru.mutation.EndTime(); ok {
		_spec.SetField(dailyrun.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := dru.mutation.Status(); ok {
		_spec.SetField(dailyrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := dru.mutation.ErrorMessage(); ok {
		_spec.SetField(dailyrun.FieldErrorMessage, field.TypeString, value)
	}
	if dru.mutation.ErrorMessageCleared() {
		_spec.ClearField(dailyrun.FieldErrorMessage, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dru.mutation.done = true
	return n, nil
}

// DailyRunUpdateOne is the builder for updating a single DailyRun entity.
type DailyRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyRunMutation
}

// SetUpdateTime sets the "update_time" field.
func (druo *DailyRunUpdateOne) SetUpdateTime(t time.Time) *DailyRunUpdateOne {
	druo.mutation.SetUpdateTime(t)
	return druo
}

// SetStartTime sets the "start_time" field.
func (druo *DailyRunUpdateOne) SetStartTime(t time.Time) *DailyRunUpdateOne {
	druo.mutation.SetStartTime(t)
	return druo
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (druo *DailyRunUpdateOne) SetNillableStartTime(t *time.Time) *DailyRunUpdateOne {
	if t != nil {
		druo.SetStartTime(*t)
	}
	return druo
}

// SetEndTime sets the "end_time" field.
func (druo *DailyRunUpdateOne) SetEndTime(t time.Time) *DailyRunUpdateOne {
	druo.mutation.SetEndTime(t)
	return druo
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (druo *DailyRunUpdateOne) SetNillableEndTime(t *time.Time) *DailyRunUpdateOne {
	if t != nil {
		druo.SetEndTime(*t)
	}
	return druo
}

// SetStatus sets the "status" field.
func (druo *DailyRunUpdateOne) SetStatus(d dailyrun.Status) *DailyRunUpdateOne {
	druo.mutation.SetStatus(d)
	return druo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (druo *DailyRunUpdateOne) SetNillableStatus(d *dailyrun.Status) *DailyRunUpdateOne {
	if d != nil {
		druo.SetStatus(*d)
	}
	return druo
}

// SetErrorMessage sets the "error_message" field.
func (druo *DailyRunUpdateOne) SetErrorMessage(s string) *DailyRunUpdateOne {
	druo.mutation.SetErrorMessage(s)
	return druo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (druo *DailyRunUpdateOne) SetNillableErrorMessage(s *string) *DailyRunUpdateOne {
	if s != nil {
		druo.SetErrorMessage(*s)
	}
	return druo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (druo *DailyRunUpdateOne) ClearErrorMessage() *DailyRunUpdateOne {
	druo.mutation.ClearErrorMessage()
	return druo
}

// Mutation returns the DailyRunMutation object of the builder.
func (druo *DailyRunUpdateOne) Mutation() *DailyRunMutation {
	return druo.mutation
}

// Where appends a list predicates to the DailyRunUpdate builder.
func (druo *DailyRunUpdateOne) Where(ps ...predicate.DailyRun) *DailyRunUpdateOne {
	druo.mutation.Where(ps...)
	return druo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (druo *DailyRunUpdateOne) Select(field string, fields ...string) *DailyRunUpdateOne {
	druo.fields = append([]string{field}, fields...)
	return druo
}

// Save executes the query and returns the updated DailyRun entity.
func (druo *DailyRunUpdateOne) Save(ctx context.Context) (*DailyRun, error) {
	druo.defaults()
	return withHooks(ctx, druo.sqlSave, druo.mutation, druo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (druo *DailyRunUpdateOne) SaveX(ctx context.Context) *DailyRun {
	node, err := druo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (druo *DailyRunUpdateOne) Exec(ctx context.Context) error {
	_, err := druo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (druo *DailyRunUpdateOne) ExecX(ctx context.Context) {
	if err := druo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (druo *DailyRunUpdateOne) defaults() {
	if _, ok := druo.mutation.UpdateTime(); !ok {
		v := dailyrun.UpdateDefaultUpdateTime()
		druo.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (druo *DailyRunUpdateOne) check() error {
	if v, ok := druo.mutation.Status(); ok {
		if err := dailyrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DailyRun.status": %w`, err)}
		}
	}
	return nil
}

func (druo *DailyRunUpdateOne) sqlSave(ctx context.Context) (_node *DailyRun, err error) {
	if err := druo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyrun.Table, dailyrun.Columns, sqlgraph.NewFieldSpec(dailyrun.FieldID, field.TypeInt))
	id, ok := druo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := druo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailyrun.FieldID)
		for _, f := range fields {
			if !dailyrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailyrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := druo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := druo.mutation.UpdateTime(); ok {
		_spec.SetField(dailyrun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := druo.mutation.StartTime(); ok {
		_spec.SetField(dailyrun.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := druo.mutation.EndTime(); ok {
		_spec.SetField(dailyrun.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := druo.mutation.Status(); ok {
		_spec.SetField(dailyrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := druo.mutation.ErrorMessage(); ok {
		_spec.SetField(dailyrun.FieldErrorMessage, field.TypeString, value)
	}
	if druo.mutation.ErrorMessageCleared() {
		_spec.ClearField(dailyrun.FieldErrorMessage, field.TypeString)
	}
	_node = &DailyRun{config: druo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, druo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	druo.mutation.done = true
	return _node, nil
}
