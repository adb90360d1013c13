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
	"github.com/fachebot/chat-digest-bot/internal/ent/summary"
)

// SummaryUpdate is the builder for updating Summary entities.
type SummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryMutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (su *SummaryUpdate) Where(ps ...predicate.Summary) *SummaryUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetUpdateTime sets the "update_time" field.
func (su *SummaryUpdate) SetUpdateTime(t time.Time) *SummaryUpdate {
	su.mutation.SetUpdateTime(t)
	return su
}

// SetChatID sets the "chat_id" field.
func (su *SummaryUpdate) SetChatID(i int64) *SummaryUpdate {
	su.mutation.ResetChatID()
	su.mutation.SetChatID(i)
	return su
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableChatID(i *int64) *SummaryUpdate {
	if i != nil {
		su.SetChatID(*i)
	}
	return su
}

// AddChatID adds i to the "chat_id" field.
func (su *SummaryUpdate) AddChatID(i int64) *SummaryUpdate {
	su.mutation.AddChatID(i)
	return su
}

// SetStartTime sets the "start_time" field.
func (su *SummaryUpdate) SetStartTime(t time.Time) *SummaryUpdate {
	su.mutation.SetStartTime(t)
	return su
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableStartTime(t *time.Time) *SummaryUpdate {
	if t != nil {
		su.SetStartTime(*t)
	}
	return su
}

// SetEndTime sets the "end_time" field.
func (su *SummaryUpdate) SetEndTime(t time.Time) *SummaryUpdate {
	su.mutation.SetEndTime(t)
	return su
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableEndTime(t *time.Time) *SummaryUpdate {
	if t != nil {
		su.SetEndTime(*t)
	}
	return su
}

// SetStatus sets the "status" field.
func (su *SummaryUpdate) SetStatus(s summary.Status) *SummaryUpdate {
	su.mutation.SetStatus(s)
	return su
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableStatus(s *summary.Status) *SummaryUpdate {
	if s != nil {
		su.SetStatus(*s)
	}
	return su
}

// SetBackend sets the "backend" field.
func (su *SummaryUpdate) SetBackend(s string) *SummaryUpdate {
	su.mutation.SetBackend(s)
	return su
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableBackend(s *string) *SummaryUpdate {
	if s != nil {
		su.SetBackend(*s)
	}
	return su
}

// ClearBackend clears the value of the "backend" field.
func (su *SummaryUpdate) ClearBackend() *SummaryUpdate {
	su.mutation.ClearBackend()
	return su
}

// SetContent sets the "content" field.
func (su *SummaryUpdate) SetContent(s string) *SummaryUpdate {
	su.mutation.SetContent(s)
	return su
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableContent(s *string) *SummaryUpdate {
	if s != nil {
		su.SetContent(*s)
	}
	return su
}

// SetSegmentCount sets the "segment_count" field.
func (su *SummaryUpdate) SetSegmentCount(i int) *SummaryUpdate {
	su.mutation.ResetSegmentCount()
	su.mutation.SetSegmentCount(i)
	return su
}

// SetNillableSegmentCount sets the "segment_count" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableSegmentCount(i *int) *SummaryUpdate {
	if i != nil {
		su.SetSegmentCount(*i)
	}
	return su
}

// AddSegmentCount adds i to the "segment_count" field.
func (su *SummaryUpdate) AddSegmentCount(i int) *SummaryUpdate {
	su.mutation.AddSegmentCount(i)
	return su
}

// SetParticipantCount sets the "participant_count" field.
func (su *SummaryUpdate) SetParticipantCount(i int) *SummaryUpdate {
	su.mutation.ResetParticipantCount()
	su.mutation.SetParticipantCount(i)
	return su
}

// SetNillableParticipantCount sets the "participant_count" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableParticipantCount(i *int) *SummaryUpdate {
	if i != nil {
		su.SetParticipantCount(*i)
	}
	return su
}

// AddParticipantCount adds i to the "participant_count" field.
func (su *SummaryUpdate) AddParticipantCount(i int) *SummaryUpdate {
	su.mutation.AddParticipantCount(i)
	return su
}

// SetGeneratedAt sets the "generated_at" field.
func (su *SummaryUpdate) SetGeneratedAt(t time.Time) *SummaryUpdate {
	su.mutation.SetGeneratedAt(t)
	return su
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (su *SummaryUpdate) SetNillableGeneratedAt(t *time.Time) *SummaryUpdate {
	if t != nil {
		su.SetGeneratedAt(*t)
	}
	return su
}

// Mutation returns the SummaryMutation object of the builder.
func (su *SummaryUpdate) Mutation() *SummaryMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SummaryUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SummaryUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SummaryUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *SummaryUpdate) defaults() {
	if _, ok := su.mutation.UpdateTime(); !ok {
		v := summary.UpdateDefaultUpdateTime()
		su.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *SummaryUpdate) check() error {
	if v, ok := su.mutation.Status(); ok {
		if err := summary.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Summary.status": %w`, err)}
		}
	}
	return nil
}

func (su *SummaryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.UpdateTime(); ok {
		_spec.SetField(summary.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := su.mutation.ChatID(); ok {
		_spec.SetField(summary.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := su.mutation.AddedChatID(); ok {
		_spec.AddField(summary.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := su.mutation.StartTime(); ok {
		_spec.SetField(summary.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := su.mutation.EndTime(); ok {
		_spec.SetField(summary.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := su.mutation.Status(); ok {
		_spec.SetField(summary.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := su.mutation.Backend(); ok {
		_spec.SetField(summary.FieldBackend, field.TypeString, value)
	}
	if su.mutation.BackendCleared() {
		_spec.ClearField(summary.FieldBackend, field.TypeString)
	}
	if value, ok := su.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
	}
	if value, ok := su.mutation.SegmentCount(); ok {
		_spec.SetField(summary.FieldSegmentCount, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedSegmentCount(); ok {
		_spec.AddField(summary.FieldSegmentCount, field.TypeInt, value)
	}
	if value, ok := su.mutation.ParticipantCount(); ok {
		_spec.SetField(summary.FieldParticipantCount, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedParticipantCount(); ok {
		_spec.AddField(summary.FieldParticipantCount, field.TypeInt, value)
	}
	if value, ok := su.mutation.GeneratedAt(); ok {
		_spec.SetField(summary.FieldGeneratedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SummaryUpdateOne is the builder for updating a single Summary entity.
type SummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryMutation
}

// SetUpdateTime sets the "update_time" field.
func (suo *SummaryUpdateOne) SetUpdateTime(t time.Time) *SummaryUpdateOne {
	suo.mutation.SetUpdateTime(t)
	return suo
}

// SetChatID sets the "chat_id" field.
func (suo *SummaryUpdateOne) SetChatID(i int64) *SummaryUpdateOne {
	suo.mutation.ResetChatID()
	suo.mutation.SetChatID(i)
	return suo
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableChatID(i *int64) *SummaryUpdateOne {
	if i != nil {
		suo.SetChatID(*i)
	}
	return suo
}

// AddChatID adds i to the "chat_id" field.
func (suo *SummaryUpdateOne) AddChatID(i int64) *SummaryUpdateOne {
	suo.mutation.AddChatID(i)
	return suo
}

// SetStartTime sets the "start_time" field.
func (suo *SummaryUpdateOne) SetStartTime(t time.Time) *SummaryUpdateOne {
	suo.mutation.SetStartTime(t)
	return suo
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableStartTime(t *time.Time) *SummaryUpdateOne {
	if t != nil {
		suo.SetStartTime(*t)
	}
	return suo
}

// SetEndTime sets the "end_time" field.
func (suo *SummaryUpdateOne) SetEndTime(t time.Time) *SummaryUpdateOne {
	suo.mutation.SetEndTime(t)
	return suo
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableEndTime(t *time.Time) *SummaryUpdateOne {
	if t != nil {
		suo.SetEndTime(*t)
	}
	return suo
}

// SetStatus sets the "status" field.
func (suo *SummaryUpdateOne) SetStatus(s summary.Status) *SummaryUpdateOne {
	suo.mutation.SetStatus(s)
	return suo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableStatus(s *summary.Status) *SummaryUpdateOne {
	if s != nil {
		suo.SetStatus(*s)
	}
	return suo
}

// SetBackend sets the "backend" field.
func (suo *SummaryUpdateOne) SetBackend(s string) *SummaryUpdateOne {
	suo.mutation.SetBackend(s)
	return suo
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableBackend(s *string) *SummaryUpdateOne {
	if s != nil {
		suo.SetBackend(*s)
	}
	return suo
}

// ClearBackend clears the value of the "backend" field.
func (suo *SummaryUpdateOne) ClearBackend() *SummaryUpdateOne {
	suo.mutation.ClearBackend()
	return suo
}

// SetContent sets the "content" field.
func (suo *SummaryUpdateOne) SetContent(s string) *SummaryUpdateOne {
	suo.mutation.SetContent(s)
	return suo
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableContent(s *string) *SummaryUpdateOne {
	if s != nil {
		suo.SetContent(*s)
	}
	return suo
}

// SetSegmentCount sets the "segment_count" field.
func (suo *SummaryUpdateOne) SetSegmentCount(i int) *SummaryUpdateOne {
	suo.mutation.ResetSegmentCount()
	suo.mutation.SetSegmentCount(i)
	return suo
}

// SetNillableSegmentCount sets the "segment_count" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableSegmentCount(i *int) *SummaryUpdateOne {
	if i != nil {
		suo.SetSegmentCount(*i)
	}
	return suo
}

// AddSegmentCount adds i to the "segment_count" field.
func (suo *SummaryUpdateOne) AddSegmentCount(i int) *SummaryUpdateOne {
	suo.mutation.AddSegmentCount(i)
	return suo
}

// SetParticipantCount sets the "participant_count" field.
func (suo *SummaryUpdateOne) SetParticipantCount(i int) *SummaryUpdateOne {
	suo.mutation.ResetParticipantCount()
	suo.mutation.SetParticipantCount(i)
	return suo
}

// SetNillableParticipantCount sets the "participant_count" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableParticipantCount(i *int) *SummaryUpdateOne {
	if i != nil {
		suo.SetParticipantCount(*i)
	}
	return suo
}

// AddParticipantCount adds i to the "participant_count" field.
func (suo *SummaryUpdateOne) AddParticipantCount(i int) *SummaryUpdateOne {
	suo.mutation.AddParticipantCount(i)
	return suo
}

// SetGeneratedAt sets the "generated_at" field.
func (suo *SummaryUpdateOne) SetGeneratedAt(t time.Time) *SummaryUpdateOne {
	suo.mutation.SetGeneratedAt(t)
	return suo
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (suo *SummaryUpdateOne) SetNillableGeneratedAt(t *time.Time) *SummaryUpdateOne {
	if t != nil {
		suo.SetGeneratedAt(*t)
	}
	return suo
}

// Mutation returns the SummaryMutation object of the builder.
func (suo *SummaryUpdateOne) Mutation() *SummaryMutation {
	return suo.mutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (suo *SummaryUpdateOne) Where(ps ...predicate.Summary) *SummaryUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SummaryUpdateOne) Select(field string, fields ...string) *SummaryUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Summary entity.
func (suo *SummaryUpdateOne) Save(ctx context.Context) (*Summary, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SummaryUpdateOne) SaveX(ctx context.Context) *Summary {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SummaryUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *SummaryUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdateTime(); !ok {
		v := summary.UpdateDefaultUpdateTime()
		suo.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *SummaryUpdateOne) check() error {
	if v, ok := suo.mutation.Status(); ok {
		if err := summary.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Summary.status": %w`, err)}
		}
	}
	return nil
}

func (suo *SummaryUpdateOne) sqlSave(ctx context.Context) (_node *Summary, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Summary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for _, f := range fields {
			if !summary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summary.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.UpdateTime(); ok {
		_spec.SetField(summary.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := suo.mutation.ChatID(); ok {
		_spec.SetField(summary.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := suo.mutation.AddedChatID(); ok {
		_spec.AddField(summary.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := suo.mutation.StartTime(); ok {
		_spec.SetField(summary.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := suo.mutation.EndTime(); ok {
		_spec.SetField(summary.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := suo.mutation.Status(); ok {
		_spec.SetField(summary.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := suo.mutation.Backend(); ok {
		_spec.SetField(summary.FieldBackend, field.TypeString, value)
	}
	if suo.mutation.BackendCleared() {
		_spec.ClearField(summary.FieldBackend, field.TypeString)
	}
	if value, ok := suo.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
	}
	if value, ok := suo.mutation.SegmentCount(); ok {
		_spec.SetField(summary.FieldSegmentCount, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedSegmentCount(); ok {
		_spec.AddField(summary.FieldSegmentCount, field.TypeInt, value)
	}
	if value, ok := suo.mutation.ParticipantCount(); ok {
		_spec.SetField(summary.FieldParticipantCount, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedParticipantCount(); ok {
		_spec.AddField(summary.FieldParticipantCount, field.TypeInt, value)
	}
	if value, ok := suo.mutation.GeneratedAt(); ok {
		_spec.SetField(summary.FieldGeneratedAt, field.TypeTime, value)
	}
	_node = &Summary{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
