package mocks

import (
	"context"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) Create(ctx context.Context, device *models.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepository) GetByID(ctx context.Context, deviceID string) (*models.Device, error) {
	args := m.Called(ctx, deviceID)
	device, _ := args.Get(0).(*models.Device) // Handle nil case if needed
	return device, args.Error(1)
}

func (m *MockDeviceRepository) Update(ctx context.Context, device *models.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepository) Delete(ctx context.Context, deviceID string) error {
	args := m.Called(ctx, deviceID)
	return args.Error(0)
}

func (m *MockDeviceRepository) GetByUser(ctx context.Context, userID string) ([]*models.Device, error) {
	args := m.Called(ctx, userID)
	devices, _ := args.Get(0).([]*models.Device)
	return devices, args.Error(1)
}

func (m *MockDeviceRepository) DeactivateByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
