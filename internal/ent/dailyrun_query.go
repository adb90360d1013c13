// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-digest-bot/internal/ent/dailyrun"
	"github.com/fachebot/chat-digest-bot/internal/ent/predicate"
)

// DailyRunQuery is the builder for querying DailyRun entities.
type DailyRunQuery struct {
	config
	ctx        *QueryContext
	order      []dailyrun.OrderOption
	inters     []Interceptor
	predicates []predicate.DailyRun
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DailyRunQuery builder.
func (drq *DailyRunQuery) Where(ps ...predicate.DailyRun) *DailyRunQuery {
	drq.predicates = append(drq.predicates, ps...)
	return drq
}

// Limit the number of records to be returned by this query.
func (drq *DailyRunQuery) Limit(limit int) *DailyRunQuery {
	drq.ctx.Limit = &limit
	return drq
}

// Offset to start from.
func (drq *DailyRunQuery) Offset(offset int) *DailyRunQuery {
	drq.ctx.Offset = &offset
	return drq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (drq *DailyRunQuery) Unique(unique bool) *DailyRunQuery {
	drq.ctx.Unique = &unique
	return drq
}

// Order specifies how the records should be ordered.
func (drq *DailyRunQuery) Order(o ...dailyrun.OrderOption) *DailyRunQuery {
	drq.order = append(drq.order, o...)
	return drq
}

// First returns the first DailyRun entity from the query.
// Returns a *NotFoundError when no DailyRun was found.
func (drq *DailyRunQuery) First(ctx context.Context) (*DailyRun, error) {
	nodes, err := drq.Limit(1).All(setContextOp(ctx, drq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dailyrun.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (drq *DailyRunQuery) FirstX(ctx context.Context) *DailyRun {
	node, err := drq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DailyRun ID from the query.
// Returns a *NotFoundError when no DailyRun ID was found.
func (drq *DailyRunQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = drq.Limit(1).IDs(setContextOp(ctx, drq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dailyrun.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (drq *DailyRunQuery) FirstIDX(ctx context.Context) int {
	id, err := drq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DailyRun entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DailyRun entity is found.
// Returns a *NotFoundError when no DailyRun entities are found.
func (drq *DailyRunQuery) Only(ctx context.Context) (*DailyRun, error) {
	nodes, err := drq.Limit(2).All(setContextOp(ctx, drq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dailyrun.Label}
	default:
		return nil, &NotSingularError{dailyrun.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (drq *DailyRunQuery) OnlyX(ctx context.Context) *DailyRun {
	node, err := drq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DailyRun ID in the query.
// Returns a *NotSingularError when more than one DailyRun ID is found.
// Returns a *NotFoundError when no entities are found.
func (drq *DailyRunQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = drq.Limit(2).IDs(setContextOp(ctx, drq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dailyrun.Label}
	default:
		err = &NotSingularError{dailyrun.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (drq *DailyRunQuery) OnlyIDX(ctx context.Context) int {
	id, err := drq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DailyRuns.
func (drq *DailyRunQuery) All(ctx context.Context) ([]*DailyRun, error) {
	ctx = setContextOp(ctx, drq.ctx, "All")
	if err := drq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DailyRun, *DailyRunQuery]()
	return withInterceptors[[]*DailyRun](ctx, drq, qr, drq.inters)
}

// AllX is like All, but panics if an error occurs.
func (drq *DailyRunQuery) AllX(ctx context.Context) []*DailyRun {
	nodes, err := drq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DailyRun IDs.
func (drq *DailyRunQuery) IDs(ctx context.Context) (ids []int, err error) {
	if drq.ctx.Unique == nil && drq.path != nil {
		drq.Unique(true)
	}
	ctx = setContextOp(ctx, drq.ctx, "IDs")
	if err = drq.Select(dailyrun.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (drq *DailyRunQuery) IDsX(ctx context.Context) []int {
	ids, err := drq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (drq *DailyRunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, drq.ctx, "Count")
	if err := drq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, drq, querierCount[*DailyRunQuery](), drq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (drq *DailyRunQuery) CountX(ctx context.Context) int {
	count, err := drq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (drq *DailyRunQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, drq.ctx, "Exist")
	switch _, err := drq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (drq *DailyRunQuery) ExistX(ctx context.Context) bool {
	exist, err := drq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DailyRunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (drq *DailyRunQuery) Clone() *DailyRunQuery {
	if drq == nil {
		return nil
	}
	return &DailyRunQuery{
		config:     drq.config,
		ctx:        drq.ctx.Clone(),
		order:      append([]dailyrun.OrderOption{}, drq.order...),
		inters:     append([]Interceptor{}, drq.inters...),
		predicates: append([]predicate.DailyRun{}, drq.predicates...),
		// clone intermediate query.
		sql:  drq.sql.Clone(),
		path: drq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DailyRun.Query().
//		GroupBy(dailyrun.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (drq *DailyRunQuery) GroupBy(field string, fields ...string) *DailyRunGroupBy {
	drq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DailyRunGroupBy{build: drq}
	grbuild.flds = &drq.ctx.Fields
	grbuild.label = dailyrun.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//	}
//
//	client.DailyRun.Query().
//		Select(dailyrun.FieldCreateTime).
//		Scan(ctx, &v)
func (drq *DailyRunQuery) Select(fields ...string) *DailyRunSelect {
	drq.ctx.Fields = append(drq.ctx.Fields, fields...)
	sbuild := &DailyRunSelect{DailyRunQuery: drq}
	sbuild.label = dailyrun.Label
	sbuild.flds, sbuild.scan = &drq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DailyRunSelect configured with the given aggregations.
func (drq *DailyRunQuery) Aggregate(fns ...AggregateFunc) *DailyRunSelect {
	return drq.Select().Aggregate(fns...)
}

func (drq *DailyRunQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range drq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, drq); err != nil {
				return err
			}
		}
	}
	for _, f := range drq.ctx.Fields {
		if !dailyrun.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if drq.path != nil {
		prev, err := drq.path(ctx)
		if err != nil {
			return err
		}
		drq.sql = prev
	}
	return nil
}

func (drq *DailyRunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DailyRun, error) {
	var (
		nodes = []*DailyRun{}
		_spec = drq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DailyRun).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DailyRun{config: drq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, drq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (drq *DailyRunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := drq.querySpec()
	_spec.Node.Columns = drq.ctx.Fields
	if len(drq.ctx.Fields) > 0 {
		_spec.Unique = drq.ctx.Unique != nil && *drq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, drq.driver, _spec)
}

func (drq *DailyRunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dailyrun.Table, dailyrun.Columns, sqlgraph.NewFieldSpec(dailyrun.FieldID, field.TypeInt))
	_spec.From = drq.sql
	if unique := drq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if drq.path != nil {
		_spec.Unique = true
	}
	if fields := drq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailyrun.FieldID)
		for i := range fields {
			if fields[i] != dailyrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := drq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := drq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := drq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := drq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (drq *DailyRunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(drq.driver.Dialect())
	t1 := builder.Table(dailyrun.Table)
	columns := drq.ctx.Fields
	if len(columns) == 0 {
		columns = dailyrun.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if drq.sql != nil {
		selector = drq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if drq.ctx.Unique != nil && *drq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range drq.predicates {
		p(selector)
	}
	for _, p := range drq.order {
		p(selector)
	}
	if offset := drq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := drq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DailyRunGroupBy is the group-by builder for DailyRun entities.
type DailyRunGroupBy struct {
	selector
	build *DailyRunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (drgb *DailyRunGroupBy) Aggregate(fns ...AggregateFunc) *DailyRunGroupBy {
	drgb.fns = append(drgb.fns, fns...)
	return drgb
}

// Scan applies the selector query and scans the result into the given value.
func (drgb *DailyRunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, drgb.build.ctx, "GroupBy")
	if err := drgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DailyRunQuery, *DailyRunGroupBy](ctx, drgb.build, drgb, drgb.build.inters, v)
}

func (drgb *DailyRunGroupBy) sqlScan(ctx context.Context, root *DailyRunQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(drgb.fns))
	for _, fn := range drgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*drgb.flds)+len(drgb.fns))
		for _, f := range *drgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*drgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := drgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DailyRunSelect is the builder for selecting fields of DailyRun entities.
type DailyRunSelect struct {
	*DailyRunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (drs *DailyRunSelect) Aggregate(fns ...AggregateFunc) *DailyRunSelect {
	drs.fns = append(drs.fns, fns...)
	return drs
}

// Scan applies the selector query and scans the result into the given value.
func (drs *DailyRunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, drs.ctx, "Select")
	if err := drs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DailyRunQuery, *DailyRunSelect](ctx, drs.DailyRunQuery, drs, drs.inters, v)
}

func (drs *DailyRunSelect) sqlScan(ctx context.Context, root *DailyRunQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(drs.fns))
	for _, fn := range drs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*drs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := drs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
