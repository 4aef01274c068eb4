package ent_repo

import (
	"context"
	"fmt"

	"github.com/SimpnicServerTeam/scs-mfa-server/ent"
	"github.com/SimpnicServerTeam/scs-mfa-server/ent/mfadevice"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
)

// EntDeviceRepository implements DeviceRepository backed by Ent.
type EntDeviceRepository struct {
	client *ent.Client
}

func NewEntDeviceRepository(client *ent.Client) repository.DeviceRepository {
	return &EntDeviceRepository{
		client: client,
	}
}

// Create stores a new device row.
func (r *EntDeviceRepository) Create(ctx context.Context, device *models.Device) error {
	builder := r.client.MFADevice.
		Create().
		SetID(device.ID).
		SetUserID(device.UserID).
		SetDeviceType(string(device.Type)).
		SetName(device.Name).
		SetSecret(device.Secret).
		SetBackupCodes(device.BackupCodes).
		SetDestination(device.Destination).
		SetIsActive(device.IsActive).
		SetCreatedAt(device.CreatedAt).
		SetUsageCount(device.UsageCount)
	if device.LastUsedAt != nil {
		builder.SetLastUsedAt(*device.LastUsedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to create mfa device: %w", err)
	}
	return nil
}

// GetByID retrieves a device by its id.
func (r *EntDeviceRepository) GetByID(ctx context.Context, deviceID string) (*models.Device, error) {
	row, err := r.client.MFADevice.Get(ctx, deviceID)
	if err != nil && ent.IsNotFound(err) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database query failed for mfa device: %w", err)
	}
	return rowToDevice(row), nil
}

// Update replaces the mutable device state.
func (r *EntDeviceRepository) Update(ctx context.Context, device *models.Device) error {
	builder := r.client.MFADevice.
		UpdateOneID(device.ID).
		SetName(device.Name).
		SetSecret(device.Secret).
		SetBackupCodes(device.BackupCodes).
		SetDestination(device.Destination).
		SetIsActive(device.IsActive).
		SetUsageCount(device.UsageCount)
	if device.LastUsedAt != nil {
		builder.SetLastUsedAt(*device.LastUsedAt)
	}
	err := builder.Exec(ctx)
	if err != nil && ent.IsNotFound(err) {
		return repository.ErrDeviceNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update mfa device: %w", err)
	}
	return nil
}

// Delete removes a device row. Deleting an unknown id is not an error.
func (r *EntDeviceRepository) Delete(ctx context.Context, deviceID string) error {
	err := r.client.MFADevice.DeleteOneID(deviceID).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete mfa device: %w", err)
	}
	return nil
}

// GetByUser returns all devices for a user, most-recently-created first.
func (r *EntDeviceRepository) GetByUser(ctx context.Context, userID string) ([]*models.Device, error) {
	rows, err := r.client.MFADevice.
		Query().
		Where(mfadevice.UserID(userID)).
		Order(ent.Desc(mfadevice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("database query failed for user devices: %w", err)
	}

	devices := make([]*models.Device, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, rowToDevice(row))
	}
	return devices, nil
}

// DeactivateByUser clears the active flag on every device the user owns.
func (r *EntDeviceRepository) DeactivateByUser(ctx context.Context, userID string) (int64, error) {
	n, err := r.client.MFADevice.
		Update().
		Where(mfadevice.UserID(userID), mfadevice.IsActive(true)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate user devices: %w", err)
	}
	return int64(n), nil
}

func rowToDevice(row *ent.MFADevice) *models.Device {
	return &models.Device{
		ID:          row.ID,
		UserID:      row.UserID,
		Type:        models.DeviceType(row.DeviceType),
		Name:        row.Name,
		Secret:      row.Secret,
		BackupCodes: row.BackupCodes,
		Destination: row.Destination,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		LastUsedAt:  row.LastUsedAt,
		UsageCount:  row.UsageCount,
	}
}
