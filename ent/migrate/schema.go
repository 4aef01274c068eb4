// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MfaDevicesColumns holds the columns for the "mfa_devices" table.
	MfaDevicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "device_type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "secret", Type: field.TypeString, Nullable: true},
		{Name: "backup_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "destination", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
	}
	// MfaDevicesTable holds the schema information for the "mfa_devices" table.
	MfaDevicesTable = &schema.Table{
		Name:       "mfa_devices",
		Columns:    MfaDevicesColumns,
		PrimaryKey: []*schema.Column{MfaDevicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mfadevice_user_id",
				Unique:  false,
				Columns: []*schema.Column{MfaDevicesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MfaDevicesTable,
	}
)

func init() {
}
