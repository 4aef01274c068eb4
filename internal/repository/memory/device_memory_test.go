package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDevice(id, userID string, deviceType models.DeviceType, createdAt time.Time) *models.Device {
	return &models.Device{
		ID:        id,
		UserID:    userID,
		Type:      deviceType,
		Name:      "Test Device",
		IsActive:  true,
		CreatedAt: createdAt,
	}
}

func TestMemoryDeviceRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDeviceRepository()

	device := testDevice("dev-1", "user-1", models.DeviceTypeTOTP, time.Now().UTC())
	device.Secret = "JBSWY3DPEHPK3PXP"
	require.NoError(t, repo.Create(ctx, device))

	got, err := repo.GetByID(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, device.ID, got.ID)
	assert.Equal(t, device.Secret, got.Secret)

	// The store holds a copy; mutating the returned value has no effect.
	got.IsActive = false
	again, err := repo.GetByID(ctx, "dev-1")
	require.NoError(t, err)
	assert.True(t, again.IsActive)
}

func TestMemoryDeviceRepository_CreateInvalid(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDeviceRepository()

	require.Error(t, repo.Create(ctx, nil))
	require.Error(t, repo.Create(ctx, &models.Device{}))
	require.Error(t, repo.Create(ctx, &models.Device{ID: "dev-1"}))
}

func TestMemoryDeviceRepository_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryDeviceRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))
}

func TestMemoryDeviceRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDeviceRepository()

	device := testDevice("dev-1", "user-1", models.DeviceTypeTOTP, time.Now().UTC())
	device.IsActive = false
	require.NoError(t, repo.Create(ctx, device))

	device.IsActive = true
	device.UsageCount = 1
	require.NoError(t, repo.Update(ctx, device))

	got, err := repo.GetByID(ctx, "dev-1")
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, 1, got.UsageCount)

	err = repo.Update(ctx, testDevice("missing", "user-1", models.DeviceTypeTOTP, time.Now().UTC()))
	assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))
}

func TestMemoryDeviceRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDeviceRepository()

	require.NoError(t, repo.Create(ctx, testDevice("dev-1", "user-1", models.DeviceTypeTOTP, time.Now().UTC())))
	require.NoError(t, repo.Delete(ctx, "dev-1"))

	_, err := repo.GetByID(ctx, "dev-1")
	assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))

	devices, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, devices)

	// Deleting a missing device is a no-op.
	require.NoError(t, repo.Delete(ctx, "dev-1"))
}

func TestMemoryDeviceRepository_GetByUser_Ordering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDeviceRepository()

	base := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, testDevice("dev-old", "user-1", models.DeviceTypeTOTP, base.Add(-2*time.Hour))))
	require.NoError(t, repo.Create(ctx, testDevice("dev-new", "user-1", models.DeviceTypeBackupCodes, base)))
	require.NoError(t, repo.Create(ctx, testDevice("dev-mid", "user-1", models.DeviceTypeSMS, base.Add(-time.Hour))))
	require.NoError(t, repo.Create(ctx, testDevice("dev-other", "user-2", models.DeviceTypeTOTP, base)))

	devices, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, devices, 3)
	assert.Equal(t, "dev-new", devices[0].ID)
	assert.Equal(t, "dev-mid", devices[1].ID)
	assert.Equal(t, "dev-old", devices[2].ID)
}

func TestMemoryDeviceRepository_GetByUser_Empty(t *testing.T) {
	repo := NewMemoryDeviceRepository()

	devices, err := repo.GetByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestMemoryDeviceRepository_DeactivateByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDeviceRepository()

	active := testDevice("dev-1", "user-1", models.DeviceTypeTOTP, time.Now().UTC())
	inactive := testDevice("dev-2", "user-1", models.DeviceTypeSMS, time.Now().UTC())
	inactive.IsActive = false
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	n, err := repo.DeactivateByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "only active devices count")

	devices, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	for _, d := range devices {
		assert.False(t, d.IsActive)
	}

	n, err = repo.DeactivateByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, n)
}
