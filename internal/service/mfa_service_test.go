package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/config"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/mocks"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUserID        = "user-1"
	testOtherUserID   = "user-2"
	testDeviceID      = "device-1"
	testChallengeID   = "challenge-1"
	testPhoneNumber   = "+85291234567"
	genericErrMsg     = "a generic error occurred"
	testUsedCodeValue = "ABCD1234"
)

// mfaServiceTestDeps holds common dependencies for MFAService tests.
type mfaServiceTestDeps struct {
	mockDeviceRepo    *mocks.MockDeviceRepository
	mockChallengeRepo *mocks.MockChallengeRepository
	mockUsedCodeRepo  *mocks.MockUsedCodeRepository
	mockSMSSender     *mocks.MockCodeSender
	mockEmailSender   *mocks.MockCodeSender
	service           MFAManager
}

func setupMFAServiceTest(t *testing.T) mfaServiceTestDeps {
	t.Helper()
	deps := mfaServiceTestDeps{
		mockDeviceRepo:    new(mocks.MockDeviceRepository),
		mockChallengeRepo: new(mocks.MockChallengeRepository),
		mockUsedCodeRepo:  new(mocks.MockUsedCodeRepository),
		mockSMSSender:     new(mocks.MockCodeSender),
		mockEmailSender:   new(mocks.MockCodeSender),
	}
	deps.service = NewMFAService(
		deps.mockDeviceRepo,
		deps.mockChallengeRepo,
		deps.mockUsedCodeRepo,
		deps.mockSMSSender,
		deps.mockEmailSender,
		config.MFAConfig{
			Issuer:          "SCS",
			ChallengeExpiry: 5 * time.Minute,
			MaxAttempts:     3,
			BackupCodeCount: 10,
		},
	)
	return deps
}

func activeTOTPDevice(t *testing.T) *models.Device {
	t.Helper()
	secret, err := totp.GenerateSecret()
	require.NoError(t, err)
	return &models.Device{
		ID:        testDeviceID,
		UserID:    testUserID,
		Type:      models.DeviceTypeTOTP,
		Name:      "Authenticator App",
		Secret:    secret,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

func pendingChallenge(deviceType models.DeviceType) *models.Challenge {
	return &models.Challenge{
		ID:          testChallengeID,
		UserID:      testUserID,
		DeviceID:    testDeviceID,
		Type:        deviceType,
		ExpiresAt:   time.Now().UTC().Add(5 * time.Minute),
		MaxAttempts: 3,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestMFAService_SetupTOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SetupTOTP", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		deps.mockDeviceRepo.On("Create", ctx, mock.AnythingOfType("*models.Device")).
			Run(func(args mock.Arguments) {
				device := args.Get(1).(*models.Device)
				assert.Equal(t, testUserID, device.UserID)
				assert.Equal(t, models.DeviceTypeTOTP, device.Type)
				assert.Equal(t, "My Phone", device.Name)
				assert.False(t, device.IsActive, "TOTP device must stay inactive until setup verification")
				assert.NotEmpty(t, device.Secret)
			}).Return(nil).Once()

		resp, err := deps.service.SetupTOTP(ctx, testUserID, "My Phone", "alice@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.DeviceID)
		assert.Len(t, resp.Secret, 32)
		assert.Contains(t, resp.QRCodeURL, "otpauth://totp/")
		assert.Contains(t, resp.QRCodeURL, "issuer=SCS")
		deps.mockDeviceRepo.AssertExpectations(t)
	})

	t.Run("Success_DefaultNameAndLabel", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		deps.mockDeviceRepo.On("Create", ctx, mock.AnythingOfType("*models.Device")).
			Run(func(args mock.Arguments) {
				assert.Equal(t, "Authenticator App", args.Get(1).(*models.Device).Name)
			}).Return(nil).Once()

		resp, err := deps.service.SetupTOTP(ctx, testUserID, "", "")
		require.NoError(t, err)
		assert.Contains(t, resp.QRCodeURL, testUserID)
		deps.mockDeviceRepo.AssertExpectations(t)
	})

	t.Run("ErrorEmptyUserID_SetupTOTP", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		_, err := deps.service.SetupTOTP(ctx, "", "", "")
		require.Error(t, err)
		deps.mockDeviceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ErrorRepoFailure_SetupTOTP", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		repoErr := errors.New(genericErrMsg)
		deps.mockDeviceRepo.On("Create", ctx, mock.AnythingOfType("*models.Device")).Return(repoErr).Once()

		_, err := deps.service.SetupTOTP(ctx, testUserID, "", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, repoErr))
		deps.mockDeviceRepo.AssertExpectations(t)
	})
}

func TestMFAService_SetupBackupCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SetupBackupCodes", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		deps.mockDeviceRepo.On("Create", ctx, mock.AnythingOfType("*models.Device")).
			Run(func(args mock.Arguments) {
				device := args.Get(1).(*models.Device)
				assert.Equal(t, models.DeviceTypeBackupCodes, device.Type)
				assert.True(t, device.IsActive, "backup codes are usable immediately")
				assert.Len(t, device.BackupCodes, 10)
			}).Return(nil).Once()

		resp, err := deps.service.SetupBackupCodes(ctx, testUserID)
		require.NoError(t, err)
		assert.Len(t, resp.BackupCodes, 10)
		for _, code := range resp.BackupCodes {
			assert.True(t, totp.ValidateBackupCode(code))
		}
		deps.mockDeviceRepo.AssertExpectations(t)
	})

	t.Run("ErrorEmptyUserID_SetupBackupCodes", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		_, err := deps.service.SetupBackupCodes(ctx, "")
		require.Error(t, err)
		deps.mockDeviceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMFAService_VerifyTOTPSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ActivatesDevice", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := activeTOTPDevice(t)
		device.IsActive = false

		code, err := totp.GenerateTOTP(device.Secret, time.Now().UTC())
		require.NoError(t, err)

		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()
		deps.mockDeviceRepo.On("Update", ctx, mock.AnythingOfType("*models.Device")).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*models.Device)
				assert.True(t, updated.IsActive)
				assert.NotNil(t, updated.LastUsedAt)
				assert.Equal(t, 1, updated.UsageCount)
			}).Return(nil).Once()

		ok, err := deps.service.VerifyTOTPSetup(ctx, testDeviceID, code)
		require.NoError(t, err)
		assert.True(t, ok)
		deps.mockDeviceRepo.AssertExpectations(t)
	})

	t.Run("FailedToken_DeviceUntouched", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := activeTOTPDevice(t)
		device.IsActive = false

		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()

		ok, err := deps.service.VerifyTOTPSetup(ctx, testDeviceID, "000000")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, device.IsActive)
		deps.mockDeviceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("ErrorDeviceNotFound_VerifyTOTPSetup", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(nil, repository.ErrDeviceNotFound).Once()

		_, err := deps.service.VerifyTOTPSetup(ctx, testDeviceID, "123456")
		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))
	})

	t.Run("ErrorWrongDeviceType_VerifyTOTPSetup", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := &models.Device{ID: testDeviceID, UserID: testUserID, Type: models.DeviceTypeBackupCodes}
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()

		_, err := deps.service.VerifyTOTPSetup(ctx, testDeviceID, "123456")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrWrongDeviceType))
	})
}

func TestMFAService_CreateChallenge(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PrefersTOTPDevice", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		smsDevice := &models.Device{ID: "device-sms", UserID: testUserID, Type: models.DeviceTypeSMS, Destination: testPhoneNumber, IsActive: true}
		totpDevice := activeTOTPDevice(t)

		deps.mockChallengeRepo.On("DeleteExpired", ctx).Return(int64(0), nil).Once()
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{smsDevice, totpDevice}, nil).Once()
		deps.mockChallengeRepo.On("Create", ctx, mock.AnythingOfType("*models.Challenge")).Return(nil).Once()

		challenge, err := deps.service.CreateChallenge(ctx, testUserID, "")
		require.NoError(t, err)
		assert.Equal(t, totpDevice.ID, challenge.DeviceID)
		assert.Equal(t, models.DeviceTypeTOTP, challenge.Type)
		assert.Empty(t, challenge.Code, "TOTP challenges carry no server-side code")
		assert.Equal(t, 3, challenge.MaxAttempts)
		assert.WithinDuration(t, time.Now().UTC().Add(5*time.Minute), challenge.ExpiresAt, 5*time.Second)
		deps.mockSMSSender.AssertNotCalled(t, "SendCode", mock.Anything, mock.Anything, mock.Anything)
		deps.mockChallengeRepo.AssertExpectations(t)
	})

	t.Run("Success_RequestedDeviceWins", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		smsDevice := &models.Device{ID: "device-sms", UserID: testUserID, Type: models.DeviceTypeSMS, Destination: testPhoneNumber, IsActive: true}
		totpDevice := activeTOTPDevice(t)

		sent := make(chan string, 1)
		deps.mockChallengeRepo.On("DeleteExpired", ctx).Return(int64(0), nil).Once()
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{totpDevice, smsDevice}, nil).Once()
		deps.mockSMSSender.On("SendCode", mock.Anything, testPhoneNumber, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { sent <- args.String(2) }).Return(nil).Once()
		deps.mockChallengeRepo.On("Create", ctx, mock.AnythingOfType("*models.Challenge")).Return(nil).Once()

		challenge, err := deps.service.CreateChallenge(ctx, testUserID, "device-sms")
		require.NoError(t, err)
		assert.Equal(t, "device-sms", challenge.DeviceID)
		assert.Equal(t, models.DeviceTypeSMS, challenge.Type)
		require.Len(t, challenge.Code, 6)

		select {
		case code := <-sent:
			assert.Equal(t, challenge.Code, code)
		case <-time.After(2 * time.Second):
			t.Fatal("SMS code was never dispatched")
		}
		deps.mockSMSSender.AssertExpectations(t)
	})

	t.Run("Success_EmailDispatch", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		emailDevice := &models.Device{ID: testDeviceID, UserID: testUserID, Type: models.DeviceTypeEmail, Destination: "alice@example.com", IsActive: true}

		sent := make(chan string, 1)
		deps.mockChallengeRepo.On("DeleteExpired", ctx).Return(int64(0), nil).Once()
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{emailDevice}, nil).Once()
		deps.mockEmailSender.On("SendCode", mock.Anything, "alice@example.com", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { sent <- args.String(2) }).Return(nil).Once()
		deps.mockChallengeRepo.On("Create", ctx, mock.AnythingOfType("*models.Challenge")).Return(nil).Once()

		challenge, err := deps.service.CreateChallenge(ctx, testUserID, "")
		require.NoError(t, err)

		select {
		case code := <-sent:
			assert.Equal(t, challenge.Code, code)
		case <-time.After(2 * time.Second):
			t.Fatal("email code was never dispatched")
		}
		deps.mockEmailSender.AssertExpectations(t)
	})

	t.Run("ErrorNoActiveDevice_CreateChallenge", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		inactive := activeTOTPDevice(t)
		inactive.IsActive = false

		deps.mockChallengeRepo.On("DeleteExpired", ctx).Return(int64(0), nil).Once()
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{inactive}, nil).Once()

		_, err := deps.service.CreateChallenge(ctx, testUserID, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoActiveDevice))
		deps.mockChallengeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("StoreFailureSuppressesDispatch", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		smsDevice := &models.Device{ID: testDeviceID, UserID: testUserID, Type: models.DeviceTypeSMS, Destination: testPhoneNumber, IsActive: true}

		deps.mockChallengeRepo.On("DeleteExpired", ctx).Return(int64(0), nil).Once()
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{smsDevice}, nil).Once()
		deps.mockChallengeRepo.On("Create", ctx, mock.AnythingOfType("*models.Challenge")).Return(errors.New(genericErrMsg)).Once()

		_, err := deps.service.CreateChallenge(ctx, testUserID, "")
		require.Error(t, err)
		// No code may go out for a challenge that was never stored.
		deps.mockSMSSender.AssertNotCalled(t, "SendCode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AbandonedLockEntriesPruned", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		svc := deps.service.(*MFAService)

		svc.challengeLock("challenge-stale")
		svc.locksMu.Lock()
		svc.locks["challenge-stale"].touched = time.Now().UTC().Add(-10 * time.Minute)
		svc.locksMu.Unlock()

		deps.mockChallengeRepo.On("DeleteExpired", ctx).Return(int64(0), nil).Once()
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{activeTOTPDevice(t)}, nil).Once()
		deps.mockChallengeRepo.On("Create", ctx, mock.AnythingOfType("*models.Challenge")).Return(nil).Once()

		_, err := deps.service.CreateChallenge(ctx, testUserID, "")
		require.NoError(t, err)

		svc.locksMu.Lock()
		_, stale := svc.locks["challenge-stale"]
		svc.locksMu.Unlock()
		assert.False(t, stale, "stale lock entry must not survive the sweep")
	})

	t.Run("SweepFailureIsNonFatal_CreateChallenge", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		totpDevice := activeTOTPDevice(t)

		deps.mockChallengeRepo.On("DeleteExpired", ctx).Return(int64(0), errors.New(genericErrMsg)).Once()
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{totpDevice}, nil).Once()
		deps.mockChallengeRepo.On("Create", ctx, mock.AnythingOfType("*models.Challenge")).Return(nil).Once()

		_, err := deps.service.CreateChallenge(ctx, testUserID, "")
		require.NoError(t, err)
		deps.mockChallengeRepo.AssertExpectations(t)
	})
}

func TestMFAService_VerifyChallenge_TOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_VerifiesAndConsumesChallenge", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := activeTOTPDevice(t)
		challenge := pendingChallenge(models.DeviceTypeTOTP)

		code, err := totp.GenerateTOTP(device.Secret, time.Now().UTC())
		require.NoError(t, err)

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Once()
		deps.mockChallengeRepo.On("Update", ctx, challenge).Return(nil).Once()
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Twice()
		deps.mockDeviceRepo.On("Update", ctx, device).Return(nil).Once()
		deps.mockChallengeRepo.On("Delete", ctx, testChallengeID).Return(nil).Once()

		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, code)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.True(t, result.Challenge.Verified)
		assert.Equal(t, 1, result.Challenge.Attempts)
		assert.Equal(t, 1, device.UsageCount)
		deps.mockChallengeRepo.AssertExpectations(t)
		deps.mockDeviceRepo.AssertExpectations(t)
	})

	t.Run("FailedAttempts_CountDownToExhaustion", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := activeTOTPDevice(t)
		challenge := pendingChallenge(models.DeviceTypeTOTP)

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Times(4)
		deps.mockChallengeRepo.On("Update", ctx, challenge).Return(nil).Times(3)
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Times(3)

		for _, wantRemaining := range []int{2, 1, 0} {
			result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "000000")
			require.NoError(t, err)
			assert.False(t, result.IsValid)
			assert.Equal(t, wantRemaining, result.RemainingAttempts)
		}

		// Budget spent: the fourth attempt is rejected without a token check.
		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "000000")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, 3, result.Challenge.Attempts)
		deps.mockChallengeRepo.AssertExpectations(t)
	})

	t.Run("ExhaustedChallengeDropsLockEntry", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		challenge := pendingChallenge(models.DeviceTypeTOTP)
		challenge.Attempts = 3

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Once()

		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "000000")
		require.NoError(t, err)
		assert.False(t, result.IsValid)

		svc := deps.service.(*MFAService)
		svc.locksMu.Lock()
		_, held := svc.locks[testChallengeID]
		svc.locksMu.Unlock()
		assert.False(t, held, "spent challenges must not pin lock entries")
	})

	t.Run("UnknownChallenge_FailsClosed", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(nil, repository.ErrChallengeNotFound).Once()

		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "123456")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Nil(t, result.Challenge)
	})

	t.Run("DeviceGoneMidChallenge_InvalidNotError", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		challenge := pendingChallenge(models.DeviceTypeTOTP)

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Once()
		deps.mockChallengeRepo.On("Update", ctx, challenge).Return(nil).Once()
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(nil, repository.ErrDeviceNotFound).Once()

		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "123456")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
	})

	t.Run("ErrorEmptyChallengeID_VerifyChallenge", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		_, err := deps.service.VerifyChallenge(ctx, "", "123456")
		require.Error(t, err)
	})
}

func TestMFAService_VerifyChallenge_OutOfBandCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SMSCodeMatches", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		challenge := pendingChallenge(models.DeviceTypeSMS)
		challenge.Code = "482913"
		device := &models.Device{ID: testDeviceID, UserID: testUserID, Type: models.DeviceTypeSMS, IsActive: true}

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Once()
		deps.mockChallengeRepo.On("Update", ctx, challenge).Return(nil).Once()
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()
		deps.mockDeviceRepo.On("Update", ctx, device).Return(nil).Once()
		deps.mockChallengeRepo.On("Delete", ctx, testChallengeID).Return(nil).Once()

		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "482913")
		require.NoError(t, err)
		assert.True(t, result.IsValid)
	})

	t.Run("WrongCode_Invalid", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		challenge := pendingChallenge(models.DeviceTypeEmail)
		challenge.Code = "482913"

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Once()
		deps.mockChallengeRepo.On("Update", ctx, challenge).Return(nil).Once()

		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "000000")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, 2, result.RemainingAttempts)
	})
}

func TestMFAService_VerifyChallenge_BackupCodes(t *testing.T) {
	ctx := context.Background()

	backupDevice := func() *models.Device {
		return &models.Device{
			ID:          testDeviceID,
			UserID:      testUserID,
			Type:        models.DeviceTypeBackupCodes,
			BackupCodes: []string{testUsedCodeValue, "1234ABCD"},
			IsActive:    true,
		}
	}

	t.Run("Success_ConsumesCode", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := backupDevice()
		challenge := pendingChallenge(models.DeviceTypeBackupCodes)

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Once()
		deps.mockChallengeRepo.On("Update", ctx, challenge).Return(nil).Once()
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Twice()
		deps.mockUsedCodeRepo.On("IsUsed", ctx, testUserID, testUsedCodeValue).Return(false, nil).Once()
		deps.mockUsedCodeRepo.On("MarkUsed", ctx, testUserID, testUsedCodeValue).Return(nil).Once()
		deps.mockDeviceRepo.On("Update", ctx, device).Return(nil).Once()
		deps.mockChallengeRepo.On("Delete", ctx, testChallengeID).Return(nil).Once()

		// Lowercase input normalizes before hitting the ledger.
		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "abcd1234")
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		deps.mockUsedCodeRepo.AssertExpectations(t)
	})

	t.Run("AlreadyConsumed_Rejected", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := backupDevice()
		challenge := pendingChallenge(models.DeviceTypeBackupCodes)

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Once()
		deps.mockChallengeRepo.On("Update", ctx, challenge).Return(nil).Once()
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()
		deps.mockUsedCodeRepo.On("IsUsed", ctx, testUserID, testUsedCodeValue).Return(true, nil).Once()

		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, testUsedCodeValue)
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		deps.mockUsedCodeRepo.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MalformedCode_SkipsLedger", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := backupDevice()
		challenge := pendingChallenge(models.DeviceTypeBackupCodes)

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Once()
		deps.mockChallengeRepo.On("Update", ctx, challenge).Return(nil).Once()
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()

		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "not-a-code")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		deps.mockUsedCodeRepo.AssertNotCalled(t, "IsUsed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnlistedCode_Rejected", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := backupDevice()
		challenge := pendingChallenge(models.DeviceTypeBackupCodes)

		deps.mockChallengeRepo.On("GetByID", ctx, testChallengeID).Return(challenge, nil).Once()
		deps.mockChallengeRepo.On("Update", ctx, challenge).Return(nil).Once()
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()
		deps.mockUsedCodeRepo.On("IsUsed", ctx, testUserID, "FFFF0000").Return(false, nil).Once()

		result, err := deps.service.VerifyChallenge(ctx, testChallengeID, "FFFF0000")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		deps.mockUsedCodeRepo.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMFAService_GetUserDevices(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_GetUserDevices", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		devices := []*models.Device{activeTOTPDevice(t)}
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return(devices, nil).Once()

		got, err := deps.service.GetUserDevices(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, devices, got)
	})

	t.Run("ErrorEmptyUserID_GetUserDevices", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		_, err := deps.service.GetUserDevices(ctx, "")
		require.Error(t, err)
	})
}

func TestMFAService_HasUserMFAEnabled(t *testing.T) {
	ctx := context.Background()

	t.Run("TrueWithActiveDevice", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{activeTOTPDevice(t)}, nil).Once()

		enabled, err := deps.service.HasUserMFAEnabled(ctx, testUserID)
		require.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("FalseWithOnlyPendingDevices", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		pending := activeTOTPDevice(t)
		pending.IsActive = false
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{pending}, nil).Once()

		enabled, err := deps.service.HasUserMFAEnabled(ctx, testUserID)
		require.NoError(t, err)
		assert.False(t, enabled)
	})
}

func TestMFAService_RemoveDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CascadesChallengeDeletion", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := activeTOTPDevice(t)

		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()
		deps.mockDeviceRepo.On("Delete", ctx, testDeviceID).Return(nil).Once()
		deps.mockChallengeRepo.On("DeleteByDevice", ctx, testDeviceID).Return(int64(1), nil).Once()

		err := deps.service.RemoveDevice(ctx, testDeviceID, testUserID)
		require.NoError(t, err)
		deps.mockChallengeRepo.AssertExpectations(t)
	})

	t.Run("ErrorNotOwner_RemoveDevice", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := activeTOTPDevice(t)

		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()

		err := deps.service.RemoveDevice(ctx, testDeviceID, testOtherUserID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnauthorized))
		deps.mockDeviceRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("ErrorNotFound_RemoveDevice", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(nil, repository.ErrDeviceNotFound).Once()

		err := deps.service.RemoveDevice(ctx, testDeviceID, testUserID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))
	})
}

func TestMFAService_RegenerateBackupCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ClearsLedgerAndResetsUsage", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := &models.Device{
			ID:          testDeviceID,
			UserID:      testUserID,
			Type:        models.DeviceTypeBackupCodes,
			BackupCodes: []string{testUsedCodeValue},
			UsageCount:  4,
			IsActive:    true,
		}

		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()
		deps.mockDeviceRepo.On("Update", ctx, device).Return(nil).Once()
		deps.mockUsedCodeRepo.On("ClearUser", ctx, testUserID).Return(nil).Once()

		codes, err := deps.service.RegenerateBackupCodes(ctx, testDeviceID, testUserID)
		require.NoError(t, err)
		assert.Len(t, codes, 10)
		assert.NotContains(t, codes, testUsedCodeValue)
		assert.Equal(t, 0, device.UsageCount)
		assert.Equal(t, codes, device.BackupCodes)
		deps.mockUsedCodeRepo.AssertExpectations(t)
	})

	t.Run("ErrorNotOwner_RegenerateBackupCodes", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := &models.Device{ID: testDeviceID, UserID: testUserID, Type: models.DeviceTypeBackupCodes}
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()

		_, err := deps.service.RegenerateBackupCodes(ctx, testDeviceID, testOtherUserID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("ErrorWrongType_RegenerateBackupCodes", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		device := activeTOTPDevice(t)
		deps.mockDeviceRepo.On("GetByID", ctx, testDeviceID).Return(device, nil).Once()

		_, err := deps.service.RegenerateBackupCodes(ctx, testDeviceID, testUserID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrWrongDeviceType))
	})
}

func TestMFAService_GetMFAStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_MixedDevices", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		active := activeTOTPDevice(t)
		pending := &models.Device{ID: "device-2", UserID: testUserID, Type: models.DeviceTypeSMS, Name: "Phone", IsActive: false}
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{active, pending}, nil).Once()

		status, err := deps.service.GetMFAStatus(ctx, testUserID)
		require.NoError(t, err)
		assert.True(t, status.IsEnabled)
		assert.Equal(t, 2, status.DeviceCount)
		require.Len(t, status.Devices, 2)
		assert.Equal(t, active.ID, status.Devices[0].ID)
		assert.False(t, status.Devices[1].IsActive)
	})

	t.Run("Success_NoDevices", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		deps.mockDeviceRepo.On("GetByUser", ctx, testUserID).Return([]*models.Device{}, nil).Once()

		status, err := deps.service.GetMFAStatus(ctx, testUserID)
		require.NoError(t, err)
		assert.False(t, status.IsEnabled)
		assert.Zero(t, status.DeviceCount)
	})
}

func TestMFAService_ForceDisableMFA(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ForceDisableMFA", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		deps.mockDeviceRepo.On("DeactivateByUser", ctx, testUserID).Return(int64(2), nil).Once()
		deps.mockChallengeRepo.On("DeleteByUser", ctx, testUserID).Return(int64(1), nil).Once()

		disabled, err := deps.service.ForceDisableMFA(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), disabled)
		deps.mockChallengeRepo.AssertExpectations(t)
	})

	t.Run("ErrorEmptyUserID_ForceDisableMFA", func(t *testing.T) {
		deps := setupMFAServiceTest(t)
		_, err := deps.service.ForceDisableMFA(ctx, "")
		require.Error(t, err)
		deps.mockDeviceRepo.AssertNotCalled(t, "DeactivateByUser", mock.Anything, mock.Anything)
	})
}
