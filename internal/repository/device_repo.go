package repository

import (
	"context"
	"errors"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
)

// ErrDeviceNotFound is returned when a device id is not found.
var ErrDeviceNotFound = errors.New("mfa device not found")

// DeviceRepository defines persistence for registered MFA devices.
type DeviceRepository interface {
	// Create stores a new device. The device must have ID and UserID set.
	Create(ctx context.Context, device *models.Device) error
	// GetByID retrieves a device by its id.
	// It should return ErrDeviceNotFound if the device doesn't exist.
	GetByID(ctx context.Context, deviceID string) (*models.Device, error)
	// Update replaces the stored device state.
	Update(ctx context.Context, device *models.Device) error
	// Delete removes a device. Deleting an unknown id is not an error.
	Delete(ctx context.Context, deviceID string) error
	// GetByUser returns all devices for a user, most-recently-created first.
	GetByUser(ctx context.Context, userID string) ([]*models.Device, error)
	// DeactivateByUser clears the active flag on every device the user owns
	// and returns how many devices were deactivated.
	DeactivateByUser(ctx context.Context, userID string) (int64, error)
}
