// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/mfadevice"
)

// MFADeviceCreate is the builder for creating a MFADevice entity.
type MFADeviceCreate struct {
	config
	mutation *MFADeviceMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (mdc *MFADeviceCreate) SetUserID(s string) *MFADeviceCreate {
	mdc.mutation.SetUserID(s)
	return mdc
}

// SetDeviceType sets the "device_type" field.
func (mdc *MFADeviceCreate) SetDeviceType(s string) *MFADeviceCreate {
	mdc.mutation.SetDeviceType(s)
	return mdc
}

// SetName sets the "name" field.
func (mdc *MFADeviceCreate) SetName(s string) *MFADeviceCreate {
	mdc.mutation.SetName(s)
	return mdc
}

// SetSecret sets the "secret" field.
func (mdc *MFADeviceCreate) SetSecret(s string) *MFADeviceCreate {
	mdc.mutation.SetSecret(s)
	return mdc
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (mdc *MFADeviceCreate) SetNillableSecret(s *string) *MFADeviceCreate {
	if s != nil {
		mdc.SetSecret(*s)
	}
	return mdc
}

// SetBackupCodes sets the "backup_codes" field.
func (mdc *MFADeviceCreate) SetBackupCodes(s []string) *MFADeviceCreate {
	mdc.mutation.SetBackupCodes(s)
	return mdc
}

// SetDestination sets the "destination" field.
func (mdc *MFADeviceCreate) SetDestination(s string) *MFADeviceCreate {
	mdc.mutation.SetDestination(s)
	return mdc
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (mdc *MFADeviceCreate) SetNillableDestination(s *string) *MFADeviceCreate {
	if s != nil {
		mdc.SetDestination(*s)
	}
	return mdc
}

// SetIsActive sets the "is_active" field.
func (mdc *MFADeviceCreate) SetIsActive(b bool) *MFADeviceCreate {
	mdc.mutation.SetIsActive(b)
	return mdc
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (mdc *MFADeviceCreate) SetNillableIsActive(b *bool) *MFADeviceCreate {
	if b != nil {
		mdc.SetIsActive(*b)
	}
	return mdc
}

// SetCreatedAt sets the "created_at" field.
func (mdc *MFADeviceCreate) SetCreatedAt(t time.Time) *MFADeviceCreate {
	mdc.mutation.SetCreatedAt(t)
	return mdc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mdc *MFADeviceCreate) SetNillableCreatedAt(t *time.Time) *MFADeviceCreate {
	if t != nil {
		mdc.SetCreatedAt(*t)
	}
	return mdc
}

// SetLastUsedAt sets the "last_used_at" field.
func (mdc *MFADeviceCreate) SetLastUsedAt(t time.Time) *MFADeviceCreate {
	mdc.mutation.SetLastUsedAt(t)
	return mdc
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (mdc *MFADeviceCreate) SetNillableLastUsedAt(t *time.Time) *MFADeviceCreate {
	if t != nil {
		mdc.SetLastUsedAt(*t)
	}
	return mdc
}

// SetUsageCount sets the "usage_count" field.
func (mdc *MFADeviceCreate) SetUsageCount(i int) *MFADeviceCreate {
	mdc.mutation.SetUsageCount(i)
	return mdc
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (mdc *MFADeviceCreate) SetNillableUsageCount(i *int) *MFADeviceCreate {
	if i != nil {
		mdc.SetUsageCount(*i)
	}
	return mdc
}

// SetID sets the "id" field.
func (mdc *MFADeviceCreate) SetID(s string) *MFADeviceCreate {
	mdc.mutation.SetID(s)
	return mdc
}

// Mutation returns the MFADeviceMutation object of the builder.
func (mdc *MFADeviceCreate) Mutation() *MFADeviceMutation {
	return mdc.mutation
}

// Save creates the MFADevice in the database.
func (mdc *MFADeviceCreate) Save(ctx context.Context) (*MFADevice, error) {
	mdc.defaults()
	return withHooks(ctx, mdc.sqlSave, mdc.mutation, mdc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mdc *MFADeviceCreate) SaveX(ctx context.Context) *MFADevice {
	v, err := mdc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mdc *MFADeviceCreate) Exec(ctx context.Context) error {
	_, err := mdc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mdc *MFADeviceCreate) ExecX(ctx context.Context) {
	if err := mdc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mdc *MFADeviceCreate) defaults() {
	if _, ok := mdc.mutation.IsActive(); !ok {
		v := mfadevice.DefaultIsActive
		mdc.mutation.SetIsActive(v)
	}
	if _, ok := mdc.mutation.CreatedAt(); !ok {
		v := mfadevice.DefaultCreatedAt()
		mdc.mutation.SetCreatedAt(v)
	}
	if _, ok := mdc.mutation.UsageCount(); !ok {
		v := mfadevice.DefaultUsageCount
		mdc.mutation.SetUsageCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mdc *MFADeviceCreate) check() error {
	if _, ok := mdc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MFADevice.user_id"`)}
	}
	if _, ok := mdc.mutation.DeviceType(); !ok {
		return &ValidationError{Name: "device_type", err: errors.New(`ent: missing required field "MFADevice.device_type"`)}
	}
	if _, ok := mdc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MFADevice.name"`)}
	}
	if _, ok := mdc.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "MFADevice.is_active"`)}
	}
	if _, ok := mdc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MFADevice.created_at"`)}
	}
	if _, ok := mdc.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "MFADevice.usage_count"`)}
	}
	return nil
}

func (mdc *MFADeviceCreate) sqlSave(ctx context.Context) (*MFADevice, error) {
	if err := mdc.check(); err != nil {
		return nil, err
	}
	_node, _spec := mdc.createSpec()
	if err := sqlgraph.CreateNode(ctx, mdc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MFADevice.ID type: %T", _spec.ID.Value)
		}
	}
	mdc.mutation.id = &_node.ID
	mdc.mutation.done = true
	return _node, nil
}

func (mdc *MFADeviceCreate) createSpec() (*MFADevice, *sqlgraph.CreateSpec) {
	var (
		_node = &MFADevice{config: mdc.config}
		_spec = sqlgraph.NewCreateSpec(mfadevice.Table, sqlgraph.NewFieldSpec(mfadevice.FieldID, field.TypeString))
	)
	if id, ok := mdc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := mdc.mutation.UserID(); ok {
		_spec.SetField(mfadevice.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := mdc.mutation.DeviceType(); ok {
		_spec.SetField(mfadevice.FieldDeviceType, field.TypeString, value)
		_node.DeviceType = value
	}
	if value, ok := mdc.mutation.Name(); ok {
		_spec.SetField(mfadevice.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := mdc.mutation.Secret(); ok {
		_spec.SetField(mfadevice.FieldSecret, field.TypeString, value)
		_node.Secret = value
	}
	if value, ok := mdc.mutation.BackupCodes(); ok {
		_spec.SetField(mfadevice.FieldBackupCodes, field.TypeJSON, value)
		_node.BackupCodes = value
	}
	if value, ok := mdc.mutation.Destination(); ok {
		_spec.SetField(mfadevice.FieldDestination, field.TypeString, value)
		_node.Destination = value
	}
	if value, ok := mdc.mutation.IsActive(); ok {
		_spec.SetField(mfadevice.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := mdc.mutation.CreatedAt(); ok {
		_spec.SetField(mfadevice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := mdc.mutation.LastUsedAt(); ok {
		_spec.SetField(mfadevice.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := mdc.mutation.UsageCount(); ok {
		_spec.SetField(mfadevice.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	return _node, _spec
}

// MFADeviceCreateBulk is the builder for creating many MFADevice entities in bulk.
type MFADeviceCreateBulk struct {
	config
	err      error
	builders []*MFADeviceCreate
}

// Save creates the MFADevice entities in the database.
func (mdcb *MFADeviceCreateBulk) Save(ctx context.Context) ([]*MFADevice, error) {
	if mdcb.err != nil {
		return nil, mdcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mdcb.builders))
	nodes := make([]*MFADevice, len(mdcb.builders))
	mutators := make([]Mutator, len(mdcb.builders))
	for i := range mdcb.builders {
		func(i int, root context.Context) {
			builder := mdcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MFADeviceMutation)
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
					_, err = mutators[i+1].Mutate(root, mdcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mdcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, mdcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mdcb *MFADeviceCreateBulk) SaveX(ctx context.Context) []*MFADevice {
	v, err := mdcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mdcb *MFADeviceCreateBulk) Exec(ctx context.Context) error {
	_, err := mdcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mdcb *MFADeviceCreateBulk) ExecX(ctx context.Context) {
	if err := mdcb.Exec(ctx); err != nil {
		panic(err)
	}
}
