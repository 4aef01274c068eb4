package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
)

// MemoryDeviceRepository implements DeviceRepository in memory (NOT FOR PRODUCTION).
type MemoryDeviceRepository struct {
	devices     map[string]models.Device
	userDevices map[string]map[string]struct{} // UserID -> {DeviceID: {}}
	mutex       sync.RWMutex
}

// NewMemoryDeviceRepository creates a new in-memory device repository.
func NewMemoryDeviceRepository() repository.DeviceRepository {
	return &MemoryDeviceRepository{
		devices:     make(map[string]models.Device),
		userDevices: make(map[string]map[string]struct{}),
	}
}

// Create stores a new device and indexes it by owner.
func (r *MemoryDeviceRepository) Create(ctx context.Context, device *models.Device) error {
	if device == nil || device.ID == "" {
		return errors.New("invalid device data")
	}
	if device.UserID == "" {
		return errors.New("device UserID must be set")
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.devices[device.ID] = *device
	r.addUserDeviceIndex(device.UserID, device.ID)
	return nil
}

// GetByID retrieves a device by its id.
func (r *MemoryDeviceRepository) GetByID(ctx context.Context, deviceID string) (*models.Device, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	device, exists := r.devices[deviceID]
	if !exists {
		return nil, repository.ErrDeviceNotFound
	}
	return &device, nil
}

// Update replaces the stored device state.
func (r *MemoryDeviceRepository) Update(ctx context.Context, device *models.Device) error {
	if device == nil || device.ID == "" {
		return errors.New("invalid device data")
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.devices[device.ID]; !exists {
		return repository.ErrDeviceNotFound
	}
	r.devices[device.ID] = *device
	return nil
}

// Delete removes a device and its user index entry.
func (r *MemoryDeviceRepository) Delete(ctx context.Context, deviceID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	device, exists := r.devices[deviceID]
	if exists {
		delete(r.devices, deviceID)
		r.removeUserDeviceIndex(device.UserID, deviceID)
	}
	return nil
}

// GetByUser returns all devices for a user, most-recently-created first.
func (r *MemoryDeviceRepository) GetByUser(ctx context.Context, userID string) ([]*models.Device, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	deviceIDs, exists := r.userDevices[userID]
	if !exists || len(deviceIDs) == 0 {
		return []*models.Device{}, nil
	}

	devices := make([]*models.Device, 0, len(deviceIDs))
	for deviceID := range deviceIDs {
		if device, ok := r.devices[deviceID]; ok {
			devices = append(devices, &device)
		}
	}
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].CreatedAt.After(devices[j].CreatedAt)
	})
	return devices, nil
}

// DeactivateByUser clears the active flag on every device the user owns.
func (r *MemoryDeviceRepository) DeactivateByUser(ctx context.Context, userID string) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	deviceIDs, exists := r.userDevices[userID]
	if !exists {
		return 0, nil
	}

	deactivated := int64(0)
	for deviceID := range deviceIDs {
		device, ok := r.devices[deviceID]
		if ok && device.IsActive {
			device.IsActive = false
			r.devices[deviceID] = device
			deactivated++
		}
	}
	return deactivated, nil
}

func (r *MemoryDeviceRepository) addUserDeviceIndex(userID, deviceID string) {
	if _, ok := r.userDevices[userID]; !ok {
		r.userDevices[userID] = make(map[string]struct{})
	}
	r.userDevices[userID][deviceID] = struct{}{}
}

func (r *MemoryDeviceRepository) removeUserDeviceIndex(userID, deviceID string) {
	if userDevices, ok := r.userDevices[userID]; ok {
		delete(userDevices, deviceID)
		if len(userDevices) == 0 {
			delete(r.userDevices, userID)
		}
	}
}
