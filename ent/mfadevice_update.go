// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/mfadevice"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/predicate"
)

// MFADeviceUpdate is the builder for updating MFADevice entities.
type MFADeviceUpdate struct {
	config
	hooks    []Hook
	mutation *MFADeviceMutation
}

// Where appends a list predicates to the MFADeviceUpdate builder.
func (mdu *MFADeviceUpdate) Where(ps ...predicate.MFADevice) *MFADeviceUpdate {
	mdu.mutation.Where(ps...)
	return mdu
}

// SetUserID sets the "user_id" field.
func (mdu *MFADeviceUpdate) SetUserID(s string) *MFADeviceUpdate {
	mdu.mutation.SetUserID(s)
	return mdu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (mdu *MFADeviceUpdate) SetNillableUserID(s *string) *MFADeviceUpdate {
	if s != nil {
		mdu.SetUserID(*s)
	}
	return mdu
}

// SetDeviceType sets the "device_type" field.
func (mdu *MFADeviceUpdate) SetDeviceType(s string) *MFADeviceUpdate {
	mdu.mutation.SetDeviceType(s)
	return mdu
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (mdu *MFADeviceUpdate) SetNillableDeviceType(s *string) *MFADeviceUpdate {
	if s != nil {
		mdu.SetDeviceType(*s)
	}
	return mdu
}

// SetName sets the "name" field.
func (mdu *MFADeviceUpdate) SetName(s string) *MFADeviceUpdate {
	mdu.mutation.SetName(s)
	return mdu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (mdu *MFADeviceUpdate) SetNillableName(s *string) *MFADeviceUpdate {
	if s != nil {
		mdu.SetName(*s)
	}
	return mdu
}

// SetSecret sets the "secret" field.
func (mdu *MFADeviceUpdate) SetSecret(s string) *MFADeviceUpdate {
	mdu.mutation.SetSecret(s)
	return mdu
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (mdu *MFADeviceUpdate) SetNillableSecret(s *string) *MFADeviceUpdate {
	if s != nil {
		mdu.SetSecret(*s)
	}
	return mdu
}

// ClearSecret clears the value of the "secret" field.
func (mdu *MFADeviceUpdate) ClearSecret() *MFADeviceUpdate {
	mdu.mutation.ClearSecret()
	return mdu
}

// SetBackupCodes sets the "backup_codes" field.
func (mdu *MFADeviceUpdate) SetBackupCodes(s []string) *MFADeviceUpdate {
	mdu.mutation.SetBackupCodes(s)
	return mdu
}

// AppendBackupCodes appends s to the "backup_codes" field.
func (mdu *MFADeviceUpdate) AppendBackupCodes(s []string) *MFADeviceUpdate {
	mdu.mutation.AppendBackupCodes(s)
	return mdu
}

// ClearBackupCodes clears the value of the "backup_codes" field.
func (mdu *MFADeviceUpdate) ClearBackupCodes() *MFADeviceUpdate {
	mdu.mutation.ClearBackupCodes()
	return mdu
}

// SetDestination sets the "destination" field.
func (mdu *MFADeviceUpdate) SetDestination(s string) *MFADeviceUpdate {
	mdu.mutation.SetDestination(s)
	return mdu
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (mdu *MFADeviceUpdate) SetNillableDestination(s *string) *MFADeviceUpdate {
	if s != nil {
		mdu.SetDestination(*s)
	}
	return mdu
}

// ClearDestination clears the value of the "destination" field.
func (mdu *MFADeviceUpdate) ClearDestination() *MFADeviceUpdate {
	mdu.mutation.ClearDestination()
	return mdu
}

// SetIsActive sets the "is_active" field.
func (mdu *MFADeviceUpdate) SetIsActive(b bool) *MFADeviceUpdate {
	mdu.mutation.SetIsActive(b)
	return mdu
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (mdu *MFADeviceUpdate) SetNillableIsActive(b *bool) *MFADeviceUpdate {
	if b != nil {
		mdu.SetIsActive(*b)
	}
	return mdu
}

// SetLastUsedAt sets the "last_used_at" field.
func (mdu *MFADeviceUpdate) SetLastUsedAt(t time.Time) *MFADeviceUpdate {
	mdu.mutation.SetLastUsedAt(t)
	return mdu
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (mdu *MFADeviceUpdate) SetNillableLastUsedAt(t *time.Time) *MFADeviceUpdate {
	if t != nil {
		mdu.SetLastUsedAt(*t)
	}
	return mdu
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (mdu *MFADeviceUpdate) ClearLastUsedAt() *MFADeviceUpdate {
	mdu.mutation.ClearLastUsedAt()
	return mdu
}

// SetUsageCount sets the "usage_count" field.
func (mdu *MFADeviceUpdate) SetUsageCount(i int) *MFADeviceUpdate {
	mdu.mutation.ResetUsageCount()
	mdu.mutation.SetUsageCount(i)
	return mdu
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (mdu *MFADeviceUpdate) SetNillableUsageCount(i *int) *MFADeviceUpdate {
	if i != nil {
		mdu.SetUsageCount(*i)
	}
	return mdu
}

// AddUsageCount adds i to the "usage_count" field.
func (mdu *MFADeviceUpdate) AddUsageCount(i int) *MFADeviceUpdate {
	mdu.mutation.AddUsageCount(i)
	return mdu
}

// Mutation returns the MFADeviceMutation object of the builder.
func (mdu *MFADeviceUpdate) Mutation() *MFADeviceMutation {
	return mdu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mdu *MFADeviceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, mdu.sqlSave, mdu.mutation, mdu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mdu *MFADeviceUpdate) SaveX(ctx context.Context) int {
	affected, err := mdu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mdu *MFADeviceUpdate) Exec(ctx context.Context) error {
	_, err := mdu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mdu *MFADeviceUpdate) ExecX(ctx context.Context) {
	if err := mdu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (mdu *MFADeviceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mfadevice.Table, mfadevice.Columns, sqlgraph.NewFieldSpec(mfadevice.FieldID, field.TypeString))
	if ps := mdu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mdu.mutation.UserID(); ok {
		_spec.SetField(mfadevice.FieldUserID, field.TypeString, value)
	}
	if value, ok := mdu.mutation.DeviceType(); ok {
		_spec.SetField(mfadevice.FieldDeviceType, field.TypeString, value)
	}
	if value, ok := mdu.mutation.Name(); ok {
		_spec.SetField(mfadevice.FieldName, field.TypeString, value)
	}
	if value, ok := mdu.mutation.Secret(); ok {
		_spec.SetField(mfadevice.FieldSecret, field.TypeString, value)
	}
	if mdu.mutation.SecretCleared() {
		_spec.ClearField(mfadevice.FieldSecret, field.TypeString)
	}
	if value, ok := mdu.mutation.BackupCodes(); ok {
		_spec.SetField(mfadevice.FieldBackupCodes, field.TypeJSON, value)
	}
	if value, ok := mdu.mutation.AppendedBackupCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mfadevice.FieldBackupCodes, value)
		})
	}
	if mdu.mutation.BackupCodesCleared() {
		_spec.ClearField(mfadevice.FieldBackupCodes, field.TypeJSON)
	}
	if value, ok := mdu.mutation.Destination(); ok {
		_spec.SetField(mfadevice.FieldDestination, field.TypeString, value)
	}
	if mdu.mutation.DestinationCleared() {
		_spec.ClearField(mfadevice.FieldDestination, field.TypeString)
	}
	if value, ok := mdu.mutation.IsActive(); ok {
		_spec.SetField(mfadevice.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := mdu.mutation.LastUsedAt(); ok {
		_spec.SetField(mfadevice.FieldLastUsedAt, field.TypeTime, value)
	}
	if mdu.mutation.LastUsedAtCleared() {
		_spec.ClearField(mfadevice.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := mdu.mutation.UsageCount(); ok {
		_spec.SetField(mfadevice.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := mdu.mutation.AddedUsageCount(); ok {
		_spec.AddField(mfadevice.FieldUsageCount, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mdu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mfadevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mdu.mutation.done = true
	return n, nil
}

// MFADeviceUpdateOne is the builder for updating a single MFADevice entity.
type MFADeviceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MFADeviceMutation
}

// SetUserID sets the "user_id" field.
func (mduo *MFADeviceUpdateOne) SetUserID(s string) *MFADeviceUpdateOne {
	mduo.mutation.SetUserID(s)
	return mduo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (mduo *MFADeviceUpdateOne) SetNillableUserID(s *string) *MFADeviceUpdateOne {
	if s != nil {
		mduo.SetUserID(*s)
	}
	return mduo
}

// SetDeviceType sets the "device_type" field.
func (mduo *MFADeviceUpdateOne) SetDeviceType(s string) *MFADeviceUpdateOne {
	mduo.mutation.SetDeviceType(s)
	return mduo
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (mduo *MFADeviceUpdateOne) SetNillableDeviceType(s *string) *MFADeviceUpdateOne {
	if s != nil {
		mduo.SetDeviceType(*s)
	}
	return mduo
}

// SetName sets the "name" field.
func (mduo *MFADeviceUpdateOne) SetName(s string) *MFADeviceUpdateOne {
	mduo.mutation.SetName(s)
	return mduo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (mduo *MFADeviceUpdateOne) SetNillableName(s *string) *MFADeviceUpdateOne {
	if s != nil {
		mduo.SetName(*s)
	}
	return mduo
}

// SetSecret sets the "secret" field.
func (mduo *MFADeviceUpdateOne) SetSecret(s string) *MFADeviceUpdateOne {
	mduo.mutation.SetSecret(s)
	return mduo
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (mduo *MFADeviceUpdateOne) SetNillableSecret(s *string) *MFADeviceUpdateOne {
	if s != nil {
		mduo.SetSecret(*s)
	}
	return mduo
}

// ClearSecret clears the value of the "secret" field.
func (mduo *MFADeviceUpdateOne) ClearSecret() *MFADeviceUpdateOne {
	mduo.mutation.ClearSecret()
	return mduo
}

// SetBackupCodes sets the "backup_codes" field.
func (mduo *MFADeviceUpdateOne) SetBackupCodes(s []string) *MFADeviceUpdateOne {
	mduo.mutation.SetBackupCodes(s)
	return mduo
}

// AppendBackupCodes appends s to the "backup_codes" field.
func (mduo *MFADeviceUpdateOne) AppendBackupCodes(s []string) *MFADeviceUpdateOne {
	mduo.mutation.AppendBackupCodes(s)
	return mduo
}

// ClearBackupCodes clears the value of the "backup_codes" field.
func (mduo *MFADeviceUpdateOne) ClearBackupCodes() *MFADeviceUpdateOne {
	mduo.mutation.ClearBackupCodes()
	return mduo
}

// SetDestination sets the "destination" field.
func (mduo *MFADeviceUpdateOne) SetDestination(s string) *MFADeviceUpdateOne {
	mduo.mutation.SetDestination(s)
	return mduo
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (mduo *MFADeviceUpdateOne) SetNillableDestination(s *string) *MFADeviceUpdateOne {
	if s != nil {
		mduo.SetDestination(*s)
	}
	return mduo
}

// ClearDestination clears the value of the "destination" field.
func (mduo *MFADeviceUpdateOne) ClearDestination() *MFADeviceUpdateOne {
	mduo.mutation.ClearDestination()
	return mduo
}

// SetIsActive sets the "is_active" field.
func (mduo *MFADeviceUpdateOne) SetIsActive(b bool) *MFADeviceUpdateOne {
	mduo.mutation.SetIsActive(b)
	return mduo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (mduo *MFADeviceUpdateOne) SetNillableIsActive(b *bool) *MFADeviceUpdateOne {
	if b != nil {
		mduo.SetIsActive(*b)
	}
	return mduo
}

// SetLastUsedAt sets the "last_used_at" field.
func (mduo *MFADeviceUpdateOne) SetLastUsedAt(t time.Time) *MFADeviceUpdateOne {
	mduo.mutation.SetLastUsedAt(t)
	return mduo
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (mduo *MFADeviceUpdateOne) SetNillableLastUsedAt(t *time.Time) *MFADeviceUpdateOne {
	if t != nil {
		mduo.SetLastUsedAt(*t)
	}
	return mduo
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (mduo *MFADeviceUpdateOne) ClearLastUsedAt() *MFADeviceUpdateOne {
	mduo.mutation.ClearLastUsedAt()
	return mduo
}

// SetUsageCount sets the "usage_count" field.
func (mduo *MFADeviceUpdateOne) SetUsageCount(i int) *MFADeviceUpdateOne {
	mduo.mutation.ResetUsageCount()
	mduo.mutation.SetUsageCount(i)
	return mduo
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (mduo *MFADeviceUpdateOne) SetNillableUsageCount(i *int) *MFADeviceUpdateOne {
	if i != nil {
		mduo.SetUsageCount(*i)
	}
	return mduo
}

// AddUsageCount adds i to the "usage_count" field.
func (mduo *MFADeviceUpdateOne) AddUsageCount(i int) *MFADeviceUpdateOne {
	mduo.mutation.AddUsageCount(i)
	return mduo
}

// Mutation returns the MFADeviceMutation object of the builder.
func (mduo *MFADeviceUpdateOne) Mutation() *MFADeviceMutation {
	return mduo.mutation
}

// Where appends a list predicates to the MFADeviceUpdate builder.
func (mduo *MFADeviceUpdateOne) Where(ps ...predicate.MFADevice) *MFADeviceUpdateOne {
	mduo.mutation.Where(ps...)
	return mduo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (mduo *MFADeviceUpdateOne) Select(field string, fields ...string) *MFADeviceUpdateOne {
	mduo.fields = append([]string{field}, fields...)
	return mduo
}

// Save executes the query and returns the updated MFADevice entity.
func (mduo *MFADeviceUpdateOne) Save(ctx context.Context) (*MFADevice, error) {
	return withHooks(ctx, mduo.sqlSave, mduo.mutation, mduo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mduo *MFADeviceUpdateOne) SaveX(ctx context.Context) *MFADevice {
	node, err := mduo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (mduo *MFADeviceUpdateOne) Exec(ctx context.Context) error {
	_, err := mduo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mduo *MFADeviceUpdateOne) ExecX(ctx context.Context) {
	if err := mduo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (mduo *MFADeviceUpdateOne) sqlSave(ctx context.Context) (_node *MFADevice, err error) {
	_spec := sqlgraph.NewUpdateSpec(mfadevice.Table, mfadevice.Columns, sqlgraph.NewFieldSpec(mfadevice.FieldID, field.TypeString))
	id, ok := mduo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MFADevice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := mduo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mfadevice.FieldID)
		for _, f := range fields {
			if !mfadevice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mfadevice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := mduo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mduo.mutation.UserID(); ok {
		_spec.SetField(mfadevice.FieldUserID, field.TypeString, value)
	}
	if value, ok := mduo.mutation.DeviceType(); ok {
		_spec.SetField(mfadevice.FieldDeviceType, field.TypeString, value)
	}
	if value, ok := mduo.mutation.Name(); ok {
		_spec.SetField(mfadevice.FieldName, field.TypeString, value)
	}
	if value, ok := mduo.mutation.Secret(); ok {
		_spec.SetField(mfadevice.FieldSecret, field.TypeString, value)
	}
	if mduo.mutation.SecretCleared() {
		_spec.ClearField(mfadevice.FieldSecret, field.TypeString)
	}
	if value, ok := mduo.mutation.BackupCodes(); ok {
		_spec.SetField(mfadevice.FieldBackupCodes, field.TypeJSON, value)
	}
	if value, ok := mduo.mutation.AppendedBackupCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mfadevice.FieldBackupCodes, value)
		})
	}
	if mduo.mutation.BackupCodesCleared() {
		_spec.ClearField(mfadevice.FieldBackupCodes, field.TypeJSON)
	}
	if value, ok := mduo.mutation.Destination(); ok {
		_spec.SetField(mfadevice.FieldDestination, field.TypeString, value)
	}
	if mduo.mutation.DestinationCleared() {
		_spec.ClearField(mfadevice.FieldDestination, field.TypeString)
	}
	if value, ok := mduo.mutation.IsActive(); ok {
		_spec.SetField(mfadevice.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := mduo.mutation.LastUsedAt(); ok {
		_spec.SetField(mfadevice.FieldLastUsedAt, field.TypeTime, value)
	}
	if mduo.mutation.LastUsedAtCleared() {
		_spec.ClearField(mfadevice.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := mduo.mutation.UsageCount(); ok {
		_spec.SetField(mfadevice.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := mduo.mutation.AddedUsageCount(); ok {
		_spec.AddField(mfadevice.FieldUsageCount, field.TypeInt, value)
	}
	_node = &MFADevice{config: mduo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, mduo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mfadevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	mduo.mutation.done = true
	return _node, nil
}
