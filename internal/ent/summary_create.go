// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-digest-bot/internal/ent/summary"
)

// SummaryCreate is the builder for creating a Summary entity.
type SummaryCreate struct {
	config
	mutation *SummaryMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (sc *SummaryCreate) SetCreateTime(t time.Time) *SummaryCreate {
	sc.mutation.SetCreateTime(t)
	return sc
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (sc *SummaryCreate) SetNillableCreateTime(t *time.Time) *SummaryCreate {
	if t != nil {
		sc.SetCreateTime(*t)
	}
	return sc
}

// SetUpdateTime sets the "update_time" field.
func (sc *SummaryCreate) SetUpdateTime(t time.Time) *SummaryCreate {
	sc.mutation.SetUpdateTime(t)
	return sc
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (sc *SummaryCreate) SetNillableUpdateTime(t *time.Time) *SummaryCreate {
	if t != nil {
		sc.SetUpdateTime(*t)
	}
	return sc
}

// SetChatID sets the "chat_id" field.
func (sc *SummaryCreate) SetChatID(i int64) *SummaryCreate {
	sc.mutation.SetChatID(i)
	return sc
}

// SetStartTime sets the "start_time" field.
func (sc *SummaryCreate) SetStartTime(t time.Time) *SummaryCreate {
	sc.mutation.SetStartTime(t)
	return sc
}

// SetEndTime sets the "end_time" field.
func (sc *SummaryCreate) SetEndTime(t time.Time) *SummaryCreate {
	sc.mutation.SetEndTime(t)
	return sc
}

// SetStatus sets the "status" field.
func (sc *SummaryCreate) SetStatus(s summary.Status) *SummaryCreate {
	sc.mutation.SetStatus(s)
	return sc
}

// SetBackend sets the "backend" field.
func (sc *SummaryCreate) SetBackend(s string) *SummaryCreate {
	sc.mutation.SetBackend(s)
	return sc
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (sc *SummaryCreate) SetNillableBackend(s *string) *SummaryCreate {
	if s != nil {
		sc.SetBackend(*s)
	}
	return sc
}

// SetContent sets the "content" field.
func (sc *SummaryCreate) SetContent(s string) *SummaryCreate {
	sc.mutation.SetContent(s)
	return sc
}

// SetSegmentCount sets the "segment_count" field.
func (sc *SummaryCreate) SetSegmentCount(i int) *SummaryCreate {
	sc.mutation.SetSegmentCount(i)
	return sc
}

// SetNillableSegmentCount sets the "segment_count" field if the given value is not nil.
func (sc *SummaryCreate) SetNillableSegmentCount(i *int) *SummaryCreate {
	if i != nil {
		sc.SetSegmentCount(*i)
	}
	return sc
}

// SetParticipantCount sets the "participant_count" field.
func (sc *SummaryCreate) SetParticipantCount(i int) *SummaryCreate {
	sc.mutation.SetParticipantCount(i)
	return sc
}

// SetNillableParticipantCount sets the "participant_count" field if the given value is not nil.
func (sc *SummaryCreate) SetNillableParticipantCount(i *int) *SummaryCreate {
	if i != nil {
		sc.SetParticipantCount(*i)
	}
	return sc
}

// SetGeneratedAt sets the "generated_at" field.
func (sc *SummaryCreate) SetGeneratedAt(t time.Time) *SummaryCreate {
	sc.mutation.SetGeneratedAt(t)
	return sc
}

// Mutation returns the SummaryMutation object of the builder.
func (sc *SummaryCreate) Mutation() *SummaryMutation {
	return sc.mutation
}

// Save creates the Summary in the database.
func (sc *SummaryCreate) Save(ctx context.Context) (*Summary, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SummaryCreate) SaveX(ctx context.Context) *Summary {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SummaryCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SummaryCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *SummaryCreate) defaults() {
	if _, ok := sc.mutation.CreateTime(); !ok {
		v := summary.DefaultCreateTime()
		sc.mutation.SetCreateTime(v)
	}
	if _, ok := sc.mutation.UpdateTime(); !ok {
		v := summary.DefaultUpdateTime()
		sc.mutation.SetUpdateTime(v)
	}
	if _, ok := sc.mutation.SegmentCount(); !ok {
		v := summary.DefaultSegmentCount
		sc.mutation.SetSegmentCount(v)
	}
	if _, ok := sc.mutation.ParticipantCount(); !ok {
		v := summary.DefaultParticipantCount
		sc.mutation.SetParticipantCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SummaryCreate) check() error {
	if _, ok := sc.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "Summary.create_time"`)}
	}
	if _, ok := sc.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Summary.update_time"`)}
	}
	if _, ok := sc.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "Summary.chat_id"`)}
	}
	if _, ok := sc.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Summary.start_time"`)}
	}
	if _, ok := sc.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "Summary.end_time"`)}
	}
	if _, ok := sc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Summary.status"`)}
	}
	if v, ok := sc.mutation.Status(); ok {
		if err := summary.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Summary.status": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Summary.content"`)}
	}
	if _, ok := sc.mutation.SegmentCount(); !ok {
		return &ValidationError{Name: "segment_count", err: errors.New(`ent: missing required field "Summary.segment_count"`)}
	}
	if _, ok := sc.mutation.ParticipantCount(); !ok {
		return &ValidationError{Name: "participant_count", err: errors.New(`ent: missing required field "Summary.participant_count"`)}
	}
	if _, ok := sc.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "Summary.generated_at"`)}
	}
	return nil
}

func (sc *SummaryCreate) sqlSave(ctx context.Context) (*Summary, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SummaryCreate) createSpec() (*Summary, *sqlgraph.CreateSpec) {
	var (
		_node = &Summary{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(summary.Table, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	)
	if value, ok := sc.mutation.CreateTime(); ok {
		_spec.SetField(summary.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := sc.mutation.UpdateTime(); ok {
		_spec.SetField(summary.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := sc.mutation.ChatID(); ok {
		_spec.SetField(summary.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := sc.mutation.StartTime(); ok {
		_spec.SetField(summary.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := sc.mutation.EndTime(); ok {
		_spec.SetField(summary.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := sc.mutation.Status(); ok {
		_spec.SetField(summary.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := sc.mutation.Backend(); ok {
		_spec.SetField(summary.FieldBackend, field.TypeString, value)
		_node.Backend = value
	}
	if value, ok := sc.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := sc.mutation.SegmentCount(); ok {
		_spec.SetField(summary.FieldSegmentCount, field.TypeInt, value)
		_node.SegmentCount = value
	}
	if value, ok := sc.mutation.ParticipantCount(); ok {
		_spec.SetField(summary.FieldParticipantCount, field.TypeInt, value)
		_node.ParticipantCount = value
	}
	if value, ok := sc.mutation.GeneratedAt(); ok {
		_spec.SetField(summary.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	return _node, _spec
}

// SummaryCreateBulk is the builder for creating many Summary entities in bulk.
type SummaryCreateBulk struct {
	config
	err      error
	builders []*SummaryCreate
}

// Save creates the Summary entities in the database.
func (scb *SummaryCreateBulk) Save(ctx context.Context) ([]*Summary, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Summary, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SummaryCreateBulk) SaveX(ctx context.Context) []*Summary {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SummaryCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
