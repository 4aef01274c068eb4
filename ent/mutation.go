// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/mfadevice"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeMFADevice = "MFADevice"
)

// MFADeviceMutation represents an operation that mutates the MFADevice nodes in the graph.
type MFADeviceMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	device_type        *string
	name               *string
	secret             *string
	backup_codes       *[]string
	appendbackup_codes []string
	destination        *string
	is_active          *bool
	created_at         *time.Time
	last_used_at       *time.Time
	usage_count        *int
	addusage_count     *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*MFADevice, error)
	predicates         []predicate.MFADevice
}

var _ ent.Mutation = (*MFADeviceMutation)(nil)

// mfadeviceOption allows management of the mutation configuration using functional options.
type mfadeviceOption func(*MFADeviceMutation)

// newMFADeviceMutation creates new mutation for the MFADevice entity.
func newMFADeviceMutation(c config, op Op, opts ...mfadeviceOption) *MFADeviceMutation {
	m := &MFADeviceMutation{
		config:        c,
		op:            op,
		typ:           TypeMFADevice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMFADeviceID sets the ID field of the mutation.
func withMFADeviceID(id string) mfadeviceOption {
	return func(m *MFADeviceMutation) {
		var (
			err   error
			once  sync.Once
			value *MFADevice
		)
		m.oldValue = func(ctx context.Context) (*MFADevice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MFADevice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMFADevice sets the old MFADevice of the mutation.
func withMFADevice(node *MFADevice) mfadeviceOption {
	return func(m *MFADeviceMutation) {
		m.oldValue = func(context.Context) (*MFADevice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MFADeviceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MFADeviceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MFADevice entities.
func (m *MFADeviceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MFADeviceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MFADeviceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MFADevice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MFADeviceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MFADeviceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MFADeviceMutation) ResetUserID() {
	m.user_id = nil
}

// SetDeviceType sets the "device_type" field.
func (m *MFADeviceMutation) SetDeviceType(s string) {
	m.device_type = &s
}

// DeviceType returns the value of the "device_type" field in the mutation.
func (m *MFADeviceMutation) DeviceType() (r string, exists bool) {
	v := m.device_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceType returns the old "device_type" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldDeviceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceType: %w", err)
	}
	return oldValue.DeviceType, nil
}

// ResetDeviceType resets all changes to the "device_type" field.
func (m *MFADeviceMutation) ResetDeviceType() {
	m.device_type = nil
}

// SetName sets the "name" field.
func (m *MFADeviceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MFADeviceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MFADeviceMutation) ResetName() {
	m.name = nil
}

// SetSecret sets the "secret" field.
func (m *MFADeviceMutation) SetSecret(s string) {
	m.secret = &s
}

// Secret returns the value of the "secret" field in the mutation.
func (m *MFADeviceMutation) Secret() (r string, exists bool) {
	v := m.secret
	if v == nil {
		return
	}
	return *v, true
}

// OldSecret returns the old "secret" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecret: %w", err)
	}
	return oldValue.Secret, nil
}

// ClearSecret clears the value of the "secret" field.
func (m *MFADeviceMutation) ClearSecret() {
	m.secret = nil
	m.clearedFields[mfadevice.FieldSecret] = struct{}{}
}

// SecretCleared returns if the "secret" field was cleared in this mutation.
func (m *MFADeviceMutation) SecretCleared() bool {
	_, ok := m.clearedFields[mfadevice.FieldSecret]
	return ok
}

// ResetSecret resets all changes to the "secret" field.
func (m *MFADeviceMutation) ResetSecret() {
	m.secret = nil
	delete(m.clearedFields, mfadevice.FieldSecret)
}

// SetBackupCodes sets the "backup_codes" field.
func (m *MFADeviceMutation) SetBackupCodes(s []string) {
	m.backup_codes = &s
	m.appendbackup_codes = nil
}

// BackupCodes returns the value of the "backup_codes" field in the mutation.
func (m *MFADeviceMutation) BackupCodes() (r []string, exists bool) {
	v := m.backup_codes
	if v == nil {
		return
	}
	return *v, true
}

// OldBackupCodes returns the old "backup_codes" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldBackupCodes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackupCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackupCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackupCodes: %w", err)
	}
	return oldValue.BackupCodes, nil
}

// AppendBackupCodes adds s to the "backup_codes" field.
func (m *MFADeviceMutation) AppendBackupCodes(s []string) {
	m.appendbackup_codes = append(m.appendbackup_codes, s...)
}

// AppendedBackupCodes returns the list of values that were appended to the "backup_codes" field in this mutation.
func (m *MFADeviceMutation) AppendedBackupCodes() ([]string, bool) {
	if len(m.appendbackup_codes) == 0 {
		return nil, false
	}
	return m.appendbackup_codes, true
}

// ClearBackupCodes clears the value of the "backup_codes" field.
func (m *MFADeviceMutation) ClearBackupCodes() {
	m.backup_codes = nil
	m.appendbackup_codes = nil
	m.clearedFields[mfadevice.FieldBackupCodes] = struct{}{}
}

// BackupCodesCleared returns if the "backup_codes" field was cleared in this mutation.
func (m *MFADeviceMutation) BackupCodesCleared() bool {
	_, ok := m.clearedFields[mfadevice.FieldBackupCodes]
	return ok
}

// ResetBackupCodes resets all changes to the "backup_codes" field.
func (m *MFADeviceMutation) ResetBackupCodes() {
	m.backup_codes = nil
	m.appendbackup_codes = nil
	delete(m.clearedFields, mfadevice.FieldBackupCodes)
}

// SetDestination sets the "destination" field.
func (m *MFADeviceMutation) SetDestination(s string) {
	m.destination = &s
}

// Destination returns the value of the "destination" field in the mutation.
func (m *MFADeviceMutation) Destination() (r string, exists bool) {
	v := m.destination
	if v == nil {
		return
	}
	return *v, true
}

// OldDestination returns the old "destination" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldDestination(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestination: %w", err)
	}
	return oldValue.Destination, nil
}

// ClearDestination clears the value of the "destination" field.
func (m *MFADeviceMutation) ClearDestination() {
	m.destination = nil
	m.clearedFields[mfadevice.FieldDestination] = struct{}{}
}

// DestinationCleared returns if the "destination" field was cleared in this mutation.
func (m *MFADeviceMutation) DestinationCleared() bool {
	_, ok := m.clearedFields[mfadevice.FieldDestination]
	return ok
}

// ResetDestination resets all changes to the "destination" field.
func (m *MFADeviceMutation) ResetDestination() {
	m.destination = nil
	delete(m.clearedFields, mfadevice.FieldDestination)
}

// SetIsActive sets the "is_active" field.
func (m *MFADeviceMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *MFADeviceMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *MFADeviceMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MFADeviceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MFADeviceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MFADeviceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *MFADeviceMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *MFADeviceMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *MFADeviceMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[mfadevice.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *MFADeviceMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[mfadevice.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *MFADeviceMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, mfadevice.FieldLastUsedAt)
}

// SetUsageCount sets the "usage_count" field.
func (m *MFADeviceMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *MFADeviceMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the MFADevice entity.
// If the MFADevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MFADeviceMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *MFADeviceMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *MFADeviceMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *MFADeviceMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// Where appends a list predicates to the MFADeviceMutation builder.
func (m *MFADeviceMutation) Where(ps ...predicate.MFADevice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MFADeviceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MFADeviceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MFADevice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MFADeviceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MFADeviceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MFADevice).
func (m *MFADeviceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MFADeviceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, mfadevice.FieldUserID)
	}
	if m.device_type != nil {
		fields = append(fields, mfadevice.FieldDeviceType)
	}
	if m.name != nil {
		fields = append(fields, mfadevice.FieldName)
	}
	if m.secret != nil {
		fields = append(fields, mfadevice.FieldSecret)
	}
	if m.backup_codes != nil {
		fields = append(fields, mfadevice.FieldBackupCodes)
	}
	if m.destination != nil {
		fields = append(fields, mfadevice.FieldDestination)
	}
	if m.is_active != nil {
		fields = append(fields, mfadevice.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, mfadevice.FieldCreatedAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, mfadevice.FieldLastUsedAt)
	}
	if m.usage_count != nil {
		fields = append(fields, mfadevice.FieldUsageCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MFADeviceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mfadevice.FieldUserID:
		return m.UserID()
	case mfadevice.FieldDeviceType:
		return m.DeviceType()
	case mfadevice.FieldName:
		return m.Name()
	case mfadevice.FieldSecret:
		return m.Secret()
	case mfadevice.FieldBackupCodes:
		return m.BackupCodes()
	case mfadevice.FieldDestination:
		return m.Destination()
	case mfadevice.FieldIsActive:
		return m.IsActive()
	case mfadevice.FieldCreatedAt:
		return m.CreatedAt()
	case mfadevice.FieldLastUsedAt:
		return m.LastUsedAt()
	case mfadevice.FieldUsageCount:
		return m.UsageCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MFADeviceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mfadevice.FieldUserID:
		return m.OldUserID(ctx)
	case mfadevice.FieldDeviceType:
		return m.OldDeviceType(ctx)
	case mfadevice.FieldName:
		return m.OldName(ctx)
	case mfadevice.FieldSecret:
		return m.OldSecret(ctx)
	case mfadevice.FieldBackupCodes:
		return m.OldBackupCodes(ctx)
	case mfadevice.FieldDestination:
		return m.OldDestination(ctx)
	case mfadevice.FieldIsActive:
		return m.OldIsActive(ctx)
	case mfadevice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mfadevice.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case mfadevice.FieldUsageCount:
		return m.OldUsageCount(ctx)
	}
	return nil, fmt.Errorf("unknown MFADevice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MFADeviceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mfadevice.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case mfadevice.FieldDeviceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceType(v)
		return nil
	case mfadevice.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case mfadevice.FieldSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecret(v)
		return nil
	case mfadevice.FieldBackupCodes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackupCodes(v)
		return nil
	case mfadevice.FieldDestination:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestination(v)
		return nil
	case mfadevice.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case mfadevice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mfadevice.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case mfadevice.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown MFADevice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MFADeviceMutation) AddedFields() []string {
	var fields []string
	if m.addusage_count != nil {
		fields = append(fields, mfadevice.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MFADeviceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mfadevice.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MFADeviceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mfadevice.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown MFADevice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MFADeviceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mfadevice.FieldSecret) {
		fields = append(fields, mfadevice.FieldSecret)
	}
	if m.FieldCleared(mfadevice.FieldBackupCodes) {
		fields = append(fields, mfadevice.FieldBackupCodes)
	}
	if m.FieldCleared(mfadevice.FieldDestination) {
		fields = append(fields, mfadevice.FieldDestination)
	}
	if m.FieldCleared(mfadevice.FieldLastUsedAt) {
		fields = append(fields, mfadevice.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MFADeviceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MFADeviceMutation) ClearField(name string) error {
	switch name {
	case mfadevice.FieldSecret:
		m.ClearSecret()
		return nil
	case mfadevice.FieldBackupCodes:
		m.ClearBackupCodes()
		return nil
	case mfadevice.FieldDestination:
		m.ClearDestination()
		return nil
	case mfadevice.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown MFADevice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MFADeviceMutation) ResetField(name string) error {
	switch name {
	case mfadevice.FieldUserID:
		m.ResetUserID()
		return nil
	case mfadevice.FieldDeviceType:
		m.ResetDeviceType()
		return nil
	case mfadevice.FieldName:
		m.ResetName()
		return nil
	case mfadevice.FieldSecret:
		m.ResetSecret()
		return nil
	case mfadevice.FieldBackupCodes:
		m.ResetBackupCodes()
		return nil
	case mfadevice.FieldDestination:
		m.ResetDestination()
		return nil
	case mfadevice.FieldIsActive:
		m.ResetIsActive()
		return nil
	case mfadevice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mfadevice.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case mfadevice.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	}
	return fmt.Errorf("unknown MFADevice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MFADeviceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MFADeviceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MFADeviceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MFADeviceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MFADeviceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MFADeviceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MFADeviceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MFADevice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MFADeviceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MFADevice edge %s", name)
}
