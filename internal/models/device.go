package models

import (
	"time"
)

// DeviceType identifies the kind of factor a device represents.
type DeviceType string

const (
	DeviceTypeTOTP        DeviceType = "totp"
	DeviceTypeBackupCodes DeviceType = "backup_codes"
	DeviceTypeSMS         DeviceType = "sms"
	DeviceTypeEmail       DeviceType = "email"
)

// Device represents a registered MFA factor for a user.
//
// A TOTP, SMS or email device starts inactive and is activated by its first
// successful verification. A backup-codes device is active on creation.
type Device struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Type        DeviceType `json:"type"`
	Name        string     `json:"name"`
	Secret      string     `json:"-"` // base32 TOTP secret, TOTP devices only
	BackupCodes []string   `json:"-"` // current code set, backup-codes devices only
	Destination string     `json:"-"` // phone number or email address, SMS/email devices only
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
	UsageCount  int        `json:"usageCount"`
}

// MarkUsed stamps the device as just used for a successful verification.
func (d *Device) MarkUsed(at time.Time) {
	d.LastUsedAt = &at
	d.UsageCount++
}
