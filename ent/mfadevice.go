// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/mfadevice"
)

// MFADevice is the model entity for the MFADevice schema.
type MFADevice struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// totp, backup_codes, sms, email
	DeviceType string `json:"device_type,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Secret holds the value of the "secret" field.
	Secret string `json:"-"`
	// BackupCodes holds the value of the "backup_codes" field.
	BackupCodes []string `json:"backup_codes,omitempty"`
	// phone number or email address
	Destination string `json:"destination,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	// UsageCount holds the value of the "usage_count" field.
	UsageCount   int `json:"usage_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MFADevice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mfadevice.FieldBackupCodes:
			values[i] = new([]byte)
		case mfadevice.FieldIsActive:
			values[i] = new(sql.NullBool)
		case mfadevice.FieldUsageCount:
			values[i] = new(sql.NullInt64)
		case mfadevice.FieldID, mfadevice.FieldUserID, mfadevice.FieldDeviceType, mfadevice.FieldName, mfadevice.FieldSecret, mfadevice.FieldDestination:
			values[i] = new(sql.NullString)
		case mfadevice.FieldCreatedAt, mfadevice.FieldLastUsedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MFADevice fields.
func (md *MFADevice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mfadevice.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				md.ID = value.String
			}
		case mfadevice.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				md.UserID = value.String
			}
		case mfadevice.FieldDeviceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_type", values[i])
			} else if value.Valid {
				md.DeviceType = value.String
			}
		case mfadevice.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				md.Name = value.String
			}
		case mfadevice.FieldSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secret", values[i])
			} else if value.Valid {
				md.Secret = value.String
			}
		case mfadevice.FieldBackupCodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field backup_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &md.BackupCodes); err != nil {
					return fmt.Errorf("unmarshal field backup_codes: %w", err)
				}
			}
		case mfadevice.FieldDestination:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destination", values[i])
			} else if value.Valid {
				md.Destination = value.String
			}
		case mfadevice.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				md.IsActive = value.Bool
			}
		case mfadevice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				md.CreatedAt = value.Time
			}
		case mfadevice.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				md.LastUsedAt = new(time.Time)
				*md.LastUsedAt = value.Time
			}
		case mfadevice.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				md.UsageCount = int(value.Int64)
			}
		default:
			md.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MFADevice.
// This includes values selected through modifiers, order, etc.
func (md *MFADevice) Value(name string) (ent.Value, error) {
	return md.selectValues.Get(name)
}

// Update returns a builder for updating this MFADevice.
// Note that you need to call MFADevice.Unwrap() before calling this method if this MFADevice
// was returned from a transaction, and the transaction was committed or rolled back.
func (md *MFADevice) Update() *MFADeviceUpdateOne {
	return NewMFADeviceClient(md.config).UpdateOne(md)
}

// Unwrap unwraps the MFADevice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (md *MFADevice) Unwrap() *MFADevice {
	_tx, ok := md.config.driver.(*txDriver)
	if !ok {
		panic("ent: MFADevice is not a transactional entity")
	}
	md.config.driver = _tx.drv
	return md
}

// String implements the fmt.Stringer.
func (md *MFADevice) String() string {
	var builder strings.Builder
	builder.WriteString("MFADevice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", md.ID))
	builder.WriteString("user_id=")
	builder.WriteString(md.UserID)
	builder.WriteString(", ")
	builder.WriteString("device_type=")
	builder.WriteString(md.DeviceType)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(md.Name)
	builder.WriteString(", ")
	builder.WriteString("secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("backup_codes=")
	builder.WriteString(fmt.Sprintf("%v", md.BackupCodes))
	builder.WriteString(", ")
	builder.WriteString("destination=")
	builder.WriteString(md.Destination)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", md.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(md.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := md.LastUsedAt; v != nil {
		builder.WriteString("last_used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", md.UsageCount))
	builder.WriteByte(')')
	return builder.String()
}

// MFADevices is a parsable slice of MFADevice.
type MFADevices []*MFADevice
