package models

import (
	"time"
)

// Challenge represents a single time-boxed, attempt-limited authentication
// attempt window tied to one device.
type Challenge struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	DeviceID    string     `json:"deviceId"`
	Type        DeviceType `json:"type"`
	Code        string     `json:"-"` // out-of-band code, SMS/email challenges only
	ExpiresAt   time.Time  `json:"expiresAt"`
	Attempts    int        `json:"attempts"`
	MaxAttempts int        `json:"maxAttempts"`
	Verified    bool       `json:"verified"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// IsExpired checks if the challenge is past its expiry timestamp.
func (c *Challenge) IsExpired() bool {
	return time.Now().UTC().After(c.ExpiresAt)
}

// IsExhausted reports whether the attempt budget has been spent.
func (c *Challenge) IsExhausted() bool {
	return c.Attempts >= c.MaxAttempts
}

// RemainingAttempts never goes below zero.
func (c *Challenge) RemainingAttempts() int {
	if c.Attempts >= c.MaxAttempts {
		return 0
	}
	return c.MaxAttempts - c.Attempts
}
