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
	"github.com/fachebot/chat-digest-bot/internal/ent/predicate"
	"github.com/fachebot/chat-digest-bot/internal/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tu *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetUpdateTime sets the "update_time" field.
func (tu *TaskUpdate) SetUpdateTime(t time.Time) *TaskUpdate {
	tu.mutation.SetUpdateTime(t)
	return tu
}

// SetChatID sets the "chat_id" field.
func (tu *TaskUpdate) SetChatID(i int64) *TaskUpdate {
	tu.mutation.ResetChatID()
	tu.mutation.SetChatID(i)
	return tu
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableChatID(i *int64) *TaskUpdate {
	if i != nil {
		tu.SetChatID(*i)
	}
	return tu
}

// AddChatID adds i to the "chat_id" field.
func (tu *TaskUpdate) AddChatID(i int64) *TaskUpdate {
	tu.mutation.AddChatID(i)
	return tu
}

// SetGuild sets the "guild" field.
func (tu *TaskUpdate) SetGuild(s string) *TaskUpdate {
	tu.mutation.SetGuild(s)
	return tu
}

// SetNillableGuild sets the "guild" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableGuild(s *string) *TaskUpdate {
	if s != nil {
		tu.SetGuild(*s)
	}
	return tu
}

// SetStartTime sets the "start_time" field.
func (tu *TaskUpdate) SetStartTime(t time.Time) *TaskUpdate {
	tu.mutation.SetStartTime(t)
	return tu
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableStartTime(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetStartTime(*t)
	}
	return tu
}

// SetEndTime sets the "end_time" field.
func (tu *TaskUpdate) SetEndTime(t time.Time) *TaskUpdate {
	tu.mutation.SetEndTime(t)
	return tu
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableEndTime(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetEndTime(*t)
	}
	return tu
}

// SetStatus sets the "status" field.
func (tu *TaskUpdate) SetStatus(t task.Status) *TaskUpdate {
	tu.mutation.SetStatus(t)
	return tu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableStatus(t *task.Status) *TaskUpdate {
	if t != nil {
		tu.SetStatus(*t)
	}
	return tu
}

// SetCompletedAt sets the "completed_at" field.
func (tu *TaskUpdate) SetCompletedAt(t time.Time) *TaskUpdate {
	tu.mutation.SetCompletedAt(t)
	return tu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableCompletedAt(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetCompletedAt(*t)
	}
	return tu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (tu *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	tu.mutation.ClearCompletedAt()
	return tu
}

// SetErrorMessage sets the "error_message" field.
func (tu *TaskUpdate) SetErrorMessage(s string) *TaskUpdate {
	tu.mutation.SetErrorMessage(s)
	return tu
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableErrorMessage(s *string) *TaskUpdate {
	if s != nil {
		tu.SetErrorMessage(*s)
	}
	return tu
}

// ClearErrorMessage clears the value of the "error_message" field.
func (tu *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	tu.mutation.ClearErrorMessage()
	return tu
}

// SetSummaryContent sets the "summary_content" field.
func (tu *TaskUpdate) SetSummaryContent(s string) *TaskUpdate {
	tu.mutation.SetSummaryContent(s)
	return tu
}

// SetNillableSummaryContent sets the "summary_content" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableSummaryContent(s *string) *TaskUpdate {
	if s != nil {
		tu.SetSummaryContent(*s)
	}
	return tu
}

// ClearSummaryContent clears the value of the "summary_content" field.
func (tu *TaskUpdate) ClearSummaryContent() *TaskUpdate {
	tu.mutation.ClearSummaryContent()
	return tu
}

// Mutation returns the TaskMutation object of the builder.
func (tu *TaskUpdate) Mutation() *TaskMutation {
	return tu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TaskUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TaskUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TaskUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TaskUpdate) defaults() {
	if _, ok := tu.mutation.UpdateTime(); !ok {
		v := task.UpdateDefaultUpdateTime()
		tu.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TaskUpdate) check() error {
	if v, ok := tu.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (tu *TaskUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.UpdateTime(); ok {
		_spec.SetField(task.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := tu.mutation.ChatID(); ok {
		_spec.SetField(task.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.AddedChatID(); ok {
		_spec.AddField(task.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.Guild(); ok {
		_spec.SetField(task.FieldGuild, field.TypeString, value)
	}
	if value, ok := tu.mutation.StartTime(); ok {
		_spec.SetField(task.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := tu.mutation.EndTime(); ok {
		_spec.SetField(task.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := tu.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if tu.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := tu.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if tu.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := tu.mutation.SummaryContent(); ok {
		_spec.SetField(task.FieldSummaryContent, field.TypeString, value)
	}
	if tu.mutation.SummaryContentCleared() {
		_spec.ClearField(task.FieldSummaryContent, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetUpdateTime sets the "update_time" field.
func (tuo *TaskUpdateOne) SetUpdateTime(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetUpdateTime(t)
	return tuo
}

// SetChatID sets the "chat_id" field.
func (tuo *TaskUpdateOne) SetChatID(i int64) *TaskUpdateOne {
	tuo.mutation.ResetChatID()
	tuo.mutation.SetChatID(i)
	return tuo
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableChatID(i *int64) *TaskUpdateOne {
	if i != nil {
		tuo.SetChatID(*i)
	}
	return tuo
}

// AddChatID adds i to the "chat_id" field.
func (tuo *TaskUpdateOne) AddChatID(i int64) *TaskUpdateOne {
	tuo.mutation.AddChatID(i)
	return tuo
}

// SetGuild sets the "guild" field.
func (tuo *TaskUpdateOne) SetGuild(s string) *TaskUpdateOne {
	tuo.mutation.SetGuild(s)
	return tuo
}

// SetNillableGuild sets the "guild" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableGuild(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetGuild(*s)
	}
	return tuo
}

// SetStartTime sets the "start_time" field.
func (tuo *TaskUpdateOne) SetStartTime(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetStartTime(t)
	return tuo
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableStartTime(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetStartTime(*t)
	}
	return tuo
}

// SetEndTime sets the "end_time" field.
func (tuo *TaskUpdateOne) SetEndTime(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetEndTime(t)
	return tuo
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableEndTime(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetEndTime(*t)
	}
	return tuo
}

// SetStatus sets the "status" field.
func (tuo *TaskUpdateOne) SetStatus(t task.Status) *TaskUpdateOne {
	tuo.mutation.SetStatus(t)
	return tuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableStatus(t *task.Status) *TaskUpdateOne {
	if t != nil {
		tuo.SetStatus(*t)
	}
	return tuo
}

// SetCompletedAt sets the "completed_at" field.
func (tuo *TaskUpdateOne) SetCompletedAt(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetCompletedAt(t)
	return tuo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableCompletedAt(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetCompletedAt(*t)
	}
	return tuo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (tuo *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	tuo.mutation.ClearCompletedAt()
	return tuo
}

// SetErrorMessage sets the "error_message" field.
func (tuo *TaskUpdateOne) SetErrorMessage(s string) *TaskUpdateOne {
	tuo.mutation.SetErrorMessage(s)
	return tuo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableErrorMessage(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetErrorMessage(*s)
	}
	return tuo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (tuo *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	tuo.mutation.ClearErrorMessage()
	return tuo
}

// SetSummaryContent sets the "summary_content" field.
func (tuo *TaskUpdateOne) SetSummaryContent(s string) *TaskUpdateOne {
	tuo.mutation.SetSummaryContent(s)
	return tuo
}

// SetNillableSummaryContent sets the "summary_content" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableSummaryContent(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetSummaryContent(*s)
	}
	return tuo
}

// ClearSummaryContent clears the value of the "summary_content" field.
func (tuo *TaskUpdateOne) ClearSummaryContent() *TaskUpdateOne {
	tuo.mutation.ClearSummaryContent()
	return tuo
}

// Mutation returns the TaskMutation object of the builder.
func (tuo *TaskUpdateOne) Mutation() *TaskMutation {
	return tuo.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tuo *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Task entity.
func (tuo *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TaskUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdateTime(); !ok {
		v := task.UpdateDefaultUpdateTime()
		tuo.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TaskUpdateOne) check() error {
	if v, ok := tuo.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (tuo *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.UpdateTime(); ok {
		_spec.SetField(task.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.ChatID(); ok {
		_spec.SetField(task.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.AddedChatID(); ok {
		_spec.AddField(task.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.Guild(); ok {
		_spec.SetField(task.FieldGuild, field.TypeString, value)
	}
	if value, ok := tuo.mutation.StartTime(); ok {
		_spec.SetField(task.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.EndTime(); ok {
		_spec.SetField(task.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if tuo.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := tuo.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if tuo.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := tuo.mutation.SummaryContent(); ok {
		_spec.SetField(task.FieldSummaryContent, field.TypeString, value)
	}
	if tuo.mutation.SummaryContentCleared() {
		_spec.ClearField(task.FieldSummaryContent, field.TypeString)
	}
	_node = &Task{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
