// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/mfadevice"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/predicate"
)

// MFADeviceDelete is the builder for deleting a MFADevice entity.
type MFADeviceDelete struct {
	config
	hooks    []Hook
	mutation *MFADeviceMutation
}

// Where appends a list predicates to the MFADeviceDelete builder.
func (mdd *MFADeviceDelete) Where(ps ...predicate.MFADevice) *MFADeviceDelete {
	mdd.mutation.Where(ps...)
	return mdd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (mdd *MFADeviceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, mdd.sqlExec, mdd.mutation, mdd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (mdd *MFADeviceDelete) ExecX(ctx context.Context) int {
	n, err := mdd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (mdd *MFADeviceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mfadevice.Table, sqlgraph.NewFieldSpec(mfadevice.FieldID, field.TypeString))
	if ps := mdd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, mdd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	mdd.mutation.done = true
	return affected, err
}

// MFADeviceDeleteOne is the builder for deleting a single MFADevice entity.
type MFADeviceDeleteOne struct {
	mdd *MFADeviceDelete
}

// Where appends a list predicates to the MFADeviceDelete builder.
func (mddo *MFADeviceDeleteOne) Where(ps ...predicate.MFADevice) *MFADeviceDeleteOne {
	mddo.mdd.mutation.Where(ps...)
	return mddo
}

// Exec executes the deletion query.
func (mddo *MFADeviceDeleteOne) Exec(ctx context.Context) error {
	n, err := mddo.mdd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mfadevice.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (mddo *MFADeviceDeleteOne) ExecX(ctx context.Context) {
	if err := mddo.Exec(ctx); err != nil {
		panic(err)
	}
}
