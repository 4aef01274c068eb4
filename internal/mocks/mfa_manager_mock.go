package mocks

import (
	"context"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockMFAManager struct {
	mock.Mock
}

func (m *MockMFAManager) SetupTOTP(ctx context.Context, userID, deviceName, label string) (*models.SetupTOTPResponse, error) {
	args := m.Called(ctx, userID, deviceName, label)
	resp, _ := args.Get(0).(*models.SetupTOTPResponse)
	return resp, args.Error(1)
}

func (m *MockMFAManager) SetupBackupCodes(ctx context.Context, userID string) (*models.SetupBackupCodesResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*models.SetupBackupCodesResponse)
	return resp, args.Error(1)
}

func (m *MockMFAManager) VerifyTOTPSetup(ctx context.Context, deviceID, token string) (bool, error) {
	args := m.Called(ctx, deviceID, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockMFAManager) CreateChallenge(ctx context.Context, userID, deviceID string) (*models.Challenge, error) {
	args := m.Called(ctx, userID, deviceID)
	challenge, _ := args.Get(0).(*models.Challenge)
	return challenge, args.Error(1)
}

func (m *MockMFAManager) VerifyChallenge(ctx context.Context, challengeID, token string) (*models.VerifyChallengeResult, error) {
	args := m.Called(ctx, challengeID, token)
	result, _ := args.Get(0).(*models.VerifyChallengeResult)
	return result, args.Error(1)
}

func (m *MockMFAManager) GetUserDevices(ctx context.Context, userID string) ([]*models.Device, error) {
	args := m.Called(ctx, userID)
	devices, _ := args.Get(0).([]*models.Device)
	return devices, args.Error(1)
}

func (m *MockMFAManager) HasUserMFAEnabled(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMFAManager) RemoveDevice(ctx context.Context, deviceID, userID string) error {
	args := m.Called(ctx, deviceID, userID)
	return args.Error(0)
}

func (m *MockMFAManager) RegenerateBackupCodes(ctx context.Context, deviceID, userID string) ([]string, error) {
	args := m.Called(ctx, deviceID, userID)
	codes, _ := args.Get(0).([]string)
	return codes, args.Error(1)
}

func (m *MockMFAManager) GetMFAStatus(ctx context.Context, userID string) (*models.MFAStatus, error) {
	args := m.Called(ctx, userID)
	status, _ := args.Get(0).(*models.MFAStatus)
	return status, args.Error(1)
}

func (m *MockMFAManager) ForceDisableMFA(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
