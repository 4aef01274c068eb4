// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/mfadevice"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/predicate"
)

// MFADeviceQuery is the builder for querying MFADevice entities.
type MFADeviceQuery struct {
	config
	ctx        *QueryContext
	order      []mfadevice.OrderOption
	inters     []Interceptor
	predicates []predicate.MFADevice
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MFADeviceQuery builder.
func (mdq *MFADeviceQuery) Where(ps ...predicate.MFADevice) *MFADeviceQuery {
	mdq.predicates = append(mdq.predicates, ps...)
	return mdq
}

// Limit the number of records to be returned by this query.
func (mdq *MFADeviceQuery) Limit(limit int) *MFADeviceQuery {
	mdq.ctx.Limit = &limit
	return mdq
}

// Offset to start from.
func (mdq *MFADeviceQuery) Offset(offset int) *MFADeviceQuery {
	mdq.ctx.Offset = &offset
	return mdq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (mdq *MFADeviceQuery) Unique(unique bool) *MFADeviceQuery {
	mdq.ctx.Unique = &unique
	return mdq
}

// Order specifies how the records should be ordered.
func (mdq *MFADeviceQuery) Order(o ...mfadevice.OrderOption) *MFADeviceQuery {
	mdq.order = append(mdq.order, o...)
	return mdq
}

// First returns the first MFADevice entity from the query.
// Returns a *NotFoundError when no MFADevice was found.
func (mdq *MFADeviceQuery) First(ctx context.Context) (*MFADevice, error) {
	nodes, err := mdq.Limit(1).All(setContextOp(ctx, mdq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{mfadevice.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (mdq *MFADeviceQuery) FirstX(ctx context.Context) *MFADevice {
	node, err := mdq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MFADevice ID from the query.
// Returns a *NotFoundError when no MFADevice ID was found.
func (mdq *MFADeviceQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = mdq.Limit(1).IDs(setContextOp(ctx, mdq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{mfadevice.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (mdq *MFADeviceQuery) FirstIDX(ctx context.Context) string {
	id, err := mdq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MFADevice entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MFADevice entity is found.
// Returns a *NotFoundError when no MFADevice entities are found.
func (mdq *MFADeviceQuery) Only(ctx context.Context) (*MFADevice, error) {
	nodes, err := mdq.Limit(2).All(setContextOp(ctx, mdq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{mfadevice.Label}
	default:
		return nil, &NotSingularError{mfadevice.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (mdq *MFADeviceQuery) OnlyX(ctx context.Context) *MFADevice {
	node, err := mdq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MFADevice ID in the query.
// Returns a *NotSingularError when more than one MFADevice ID is found.
// Returns a *NotFoundError when no entities are found.
func (mdq *MFADeviceQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = mdq.Limit(2).IDs(setContextOp(ctx, mdq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{mfadevice.Label}
	default:
		err = &NotSingularError{mfadevice.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (mdq *MFADeviceQuery) OnlyIDX(ctx context.Context) string {
	id, err := mdq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MFADevices.
func (mdq *MFADeviceQuery) All(ctx context.Context) ([]*MFADevice, error) {
	ctx = setContextOp(ctx, mdq.ctx, ent.OpQueryAll)
	if err := mdq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MFADevice, *MFADeviceQuery]()
	return withInterceptors[[]*MFADevice](ctx, mdq, qr, mdq.inters)
}

// AllX is like All, but panics if an error occurs.
func (mdq *MFADeviceQuery) AllX(ctx context.Context) []*MFADevice {
	nodes, err := mdq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MFADevice IDs.
func (mdq *MFADeviceQuery) IDs(ctx context.Context) (ids []string, err error) {
	if mdq.ctx.Unique == nil && mdq.path != nil {
		mdq.Unique(true)
	}
	ctx = setContextOp(ctx, mdq.ctx, ent.OpQueryIDs)
	if err = mdq.Select(mfadevice.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (mdq *MFADeviceQuery) IDsX(ctx context.Context) []string {
	ids, err := mdq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (mdq *MFADeviceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, mdq.ctx, ent.OpQueryCount)
	if err := mdq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, mdq, querierCount[*MFADeviceQuery](), mdq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (mdq *MFADeviceQuery) CountX(ctx context.Context) int {
	count, err := mdq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (mdq *MFADeviceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, mdq.ctx, ent.OpQueryExist)
	switch _, err := mdq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (mdq *MFADeviceQuery) ExistX(ctx context.Context) bool {
	exist, err := mdq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MFADeviceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (mdq *MFADeviceQuery) Clone() *MFADeviceQuery {
	if mdq == nil {
		return nil
	}
	return &MFADeviceQuery{
		config:     mdq.config,
		ctx:        mdq.ctx.Clone(),
		order:      append([]mfadevice.OrderOption{}, mdq.order...),
		inters:     append([]Interceptor{}, mdq.inters...),
		predicates: append([]predicate.MFADevice{}, mdq.predicates...),
		// clone intermediate query.
		sql:  mdq.sql.Clone(),
		path: mdq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MFADevice.Query().
//		GroupBy(mfadevice.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (mdq *MFADeviceQuery) GroupBy(field string, fields ...string) *MFADeviceGroupBy {
	mdq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MFADeviceGroupBy{build: mdq}
	grbuild.flds = &mdq.ctx.Fields
	grbuild.label = mfadevice.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.MFADevice.Query().
//		Select(mfadevice.FieldUserID).
//		Scan(ctx, &v)
func (mdq *MFADeviceQuery) Select(fields ...string) *MFADeviceSelect {
	mdq.ctx.Fields = append(mdq.ctx.Fields, fields...)
	sbuild := &MFADeviceSelect{MFADeviceQuery: mdq}
	sbuild.label = mfadevice.Label
	sbuild.flds, sbuild.scan = &mdq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MFADeviceSelect configured with the given aggregations.
func (mdq *MFADeviceQuery) Aggregate(fns ...AggregateFunc) *MFADeviceSelect {
	return mdq.Select().Aggregate(fns...)
}

func (mdq *MFADeviceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range mdq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, mdq); err != nil {
				return err
			}
		}
	}
	for _, f := range mdq.ctx.Fields {
		if !mfadevice.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if mdq.path != nil {
		prev, err := mdq.path(ctx)
		if err != nil {
			return err
		}
		mdq.sql = prev
	}
	return nil
}

func (mdq *MFADeviceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MFADevice, error) {
	var (
		nodes = []*MFADevice{}
		_spec = mdq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MFADevice).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MFADevice{config: mdq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, mdq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (mdq *MFADeviceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := mdq.querySpec()
	_spec.Node.Columns = mdq.ctx.Fields
	if len(mdq.ctx.Fields) > 0 {
		_spec.Unique = mdq.ctx.Unique != nil && *mdq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, mdq.driver, _spec)
}

func (mdq *MFADeviceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(mfadevice.Table, mfadevice.Columns, sqlgraph.NewFieldSpec(mfadevice.FieldID, field.TypeString))
	_spec.From = mdq.sql
	if unique := mdq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if mdq.path != nil {
		_spec.Unique = true
	}
	if fields := mdq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mfadevice.FieldID)
		for i := range fields {
			if fields[i] != mfadevice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := mdq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := mdq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := mdq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := mdq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (mdq *MFADeviceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(mdq.driver.Dialect())
	t1 := builder.Table(mfadevice.Table)
	columns := mdq.ctx.Fields
	if len(columns) == 0 {
		columns = mfadevice.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if mdq.sql != nil {
		selector = mdq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if mdq.ctx.Unique != nil && *mdq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range mdq.predicates {
		p(selector)
	}
	for _, p := range mdq.order {
		p(selector)
	}
	if offset := mdq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := mdq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// MFADeviceGroupBy is the group-by builder for MFADevice entities.
type MFADeviceGroupBy struct {
	selector
	build *MFADeviceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (mdgb *MFADeviceGroupBy) Aggregate(fns ...AggregateFunc) *MFADeviceGroupBy {
	mdgb.fns = append(mdgb.fns, fns...)
	return mdgb
}

// Scan applies the selector query and scans the result into the given value.
func (mdgb *MFADeviceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mdgb.build.ctx, ent.OpQueryGroupBy)
	if err := mdgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MFADeviceQuery, *MFADeviceGroupBy](ctx, mdgb.build, mdgb, mdgb.build.inters, v)
}

func (mdgb *MFADeviceGroupBy) sqlScan(ctx context.Context, root *MFADeviceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(mdgb.fns))
	for _, fn := range mdgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*mdgb.flds)+len(mdgb.fns))
		for _, f := range *mdgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*mdgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mdgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MFADeviceSelect is the builder for selecting fields of MFADevice entities.
type MFADeviceSelect struct {
	*MFADeviceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (mds *MFADeviceSelect) Aggregate(fns ...AggregateFunc) *MFADeviceSelect {
	mds.fns = append(mds.fns, fns...)
	return mds
}

// Scan applies the selector query and scans the result into the given value.
func (mds *MFADeviceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mds.ctx, ent.OpQuerySelect)
	if err := mds.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MFADeviceQuery, *MFADeviceSelect](ctx, mds.MFADeviceQuery, mds, mds.inters, v)
}

func (mds *MFADeviceSelect) sqlScan(ctx context.Context, root *MFADeviceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(mds.fns))
	for _, fn := range mds.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*mds.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mds.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
