// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/ent/mfadevice"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	mfadeviceFields := schema.MFADevice{}.Fields()
	_ = mfadeviceFields
	// mfadeviceDescIsActive is the schema descriptor for is_active field.
	mfadeviceDescIsActive := mfadeviceFields[7].Descriptor()
	// mfadevice.DefaultIsActive holds the default value on creation for the is_active field.
	mfadevice.DefaultIsActive = mfadeviceDescIsActive.Default.(bool)
	// mfadeviceDescCreatedAt is the schema descriptor for created_at field.
	mfadeviceDescCreatedAt := mfadeviceFields[8].Descriptor()
	// mfadevice.DefaultCreatedAt holds the default value on creation for the created_at field.
	mfadevice.DefaultCreatedAt = mfadeviceDescCreatedAt.Default.(func() time.Time)
	// mfadeviceDescUsageCount is the schema descriptor for usage_count field.
	mfadeviceDescUsageCount := mfadeviceFields[10].Descriptor()
	// mfadevice.DefaultUsageCount holds the default value on creation for the usage_count field.
	mfadevice.DefaultUsageCount = mfadeviceDescUsageCount.Default.(int)
}
