package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/config"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/totp"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const challengeCodeDigits = 6

var _ MFAManager = (*MFAService)(nil)

// MFAService is the challenge engine. All device, challenge and used-code
// state lives behind the injected repositories; verification of a given
// challenge id is serialized so two concurrent attempts cannot both slip
// past the attempt-limit check.
type MFAService struct {
	deviceRepo    repository.DeviceRepository
	challengeRepo repository.ChallengeRepository
	usedCodeRepo  repository.UsedCodeRepository
	smsSender     CodeSender
	emailSender   CodeSender
	cfg           config.MFAConfig

	locksMu sync.Mutex
	locks   map[string]*challengeLockEntry
}

// challengeLockEntry serializes verification of one challenge id. touched
// records the last acquisition so abandoned entries can be pruned once the
// challenge itself is guaranteed expired.
type challengeLockEntry struct {
	mu      sync.Mutex
	touched time.Time
}

// NewMFAService creates the challenge engine with explicit store and
// delivery dependencies.
func NewMFAService(
	deviceRepo repository.DeviceRepository,
	challengeRepo repository.ChallengeRepository,
	usedCodeRepo repository.UsedCodeRepository,
	smsSender CodeSender,
	emailSender CodeSender,
	cfg config.MFAConfig,
) *MFAService {
	if cfg.ChallengeExpiry <= 0 {
		cfg.ChallengeExpiry = repository.DefaultChallengeTTL
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = repository.DefaultMaxAttempts
	}
	if cfg.BackupCodeCount <= 0 {
		cfg.BackupCodeCount = totp.DefaultBackupCodeCount
	}
	return &MFAService{
		deviceRepo:    deviceRepo,
		challengeRepo: challengeRepo,
		usedCodeRepo:  usedCodeRepo,
		smsSender:     smsSender,
		emailSender:   emailSender,
		cfg:           cfg,
		locks:         make(map[string]*challengeLockEntry),
	}
}

// SetupTOTP registers a new TOTP device in pending-setup state and returns
// the secret plus provisioning URI. The device stays inactive until
// VerifyTOTPSetup succeeds.
func (s *MFAService) SetupTOTP(ctx context.Context, userID, deviceName, label string) (*models.SetupTOTPResponse, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}

	secret, err := totp.GenerateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate totp secret: %w", err)
	}

	if deviceName == "" {
		deviceName = "Authenticator App"
	}
	if label == "" {
		label = userID
	}

	device := &models.Device{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      models.DeviceTypeTOTP,
		Name:      deviceName,
		Secret:    secret,
		IsActive:  false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to store totp device: %w", err)
	}

	log.Info().Str("userId", userID).Str("deviceId", device.ID).Msg("TOTP device registered, awaiting setup verification")

	return &models.SetupTOTPResponse{
		DeviceID:  device.ID,
		Secret:    secret,
		QRCodeURL: totp.GenerateQRCodeURL(secret, label, s.cfg.Issuer),
	}, nil
}

// SetupBackupCodes registers an immediately active backup-codes device
// holding a freshly generated code set.
func (s *MFAService) SetupBackupCodes(ctx context.Context, userID string) (*models.SetupBackupCodesResponse, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}

	codes, err := totp.GenerateBackupCodes(s.cfg.BackupCodeCount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate backup codes: %w", err)
	}

	device := &models.Device{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        models.DeviceTypeBackupCodes,
		Name:        "Backup Codes",
		BackupCodes: codes,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to store backup codes device: %w", err)
	}

	log.Info().Str("userId", userID).Str("deviceId", device.ID).Int("codes", len(codes)).Msg("Backup codes device registered")

	return &models.SetupBackupCodesResponse{
		DeviceID:    device.ID,
		BackupCodes: codes,
	}, nil
}

// VerifyTOTPSetup checks the first token against a pending TOTP device and
// activates it on success. A failed token leaves the device untouched.
func (s *MFAService) VerifyTOTPSetup(ctx context.Context, deviceID, token string) (bool, error) {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return false, err
	}
	if device.Type != models.DeviceTypeTOTP || device.Secret == "" {
		return false, ErrWrongDeviceType
	}

	if !totp.VerifyTOTP(device.Secret, token, time.Now().UTC()) {
		log.Warn().Str("deviceId", deviceID).Msg("TOTP setup verification failed")
		return false, nil
	}

	device.IsActive = true
	device.MarkUsed(time.Now().UTC())
	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return false, fmt.Errorf("failed to activate totp device: %w", err)
	}

	log.Info().Str("userId", device.UserID).Str("deviceId", deviceID).Msg("TOTP device activated")
	return true, nil
}

// CreateChallenge opens a new verification window against one of the user's
// active devices: the requested one when given and active, else a TOTP
// device when available, else the first active device. For SMS and email
// devices a one-time numeric code is generated and dispatched out of band.
// Already-expired challenges are swept opportunistically.
func (s *MFAService) CreateChallenge(ctx context.Context, userID, deviceID string) (*models.Challenge, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}

	if swept, err := s.challengeRepo.DeleteExpired(ctx); err != nil {
		log.Warn().Err(err).Msg("Expired challenge sweep failed")
	} else if swept > 0 {
		log.Debug().Int64("swept", swept).Msg("Swept expired challenges")
	}
	s.pruneChallengeLocks()

	devices, err := s.deviceRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user devices: %w", err)
	}

	device := pickChallengeDevice(devices, deviceID)
	if device == nil {
		return nil, ErrNoActiveDevice
	}

	challenge := &models.Challenge{
		ID:          uuid.NewString(),
		UserID:      userID,
		DeviceID:    device.ID,
		Type:        device.Type,
		ExpiresAt:   time.Now().UTC().Add(s.cfg.ChallengeExpiry),
		MaxAttempts: s.cfg.MaxAttempts,
		CreatedAt:   time.Now().UTC(),
	}

	if device.Type == models.DeviceTypeSMS || device.Type == models.DeviceTypeEmail {
		code, err := generateChallengeCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate challenge code: %w", err)
		}
		challenge.Code = code
	}

	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to store challenge: %w", err)
	}

	// Dispatch only once the challenge is durably stored; a code for a
	// challenge that never existed must not reach the user.
	if challenge.Code != "" {
		s.dispatchCode(device, challenge.Code)
	}

	log.Info().Str("userId", userID).Str("deviceId", device.ID).Str("challengeId", challenge.ID).
		Str("type", string(device.Type)).Msg("MFA challenge created")
	return challenge, nil
}

// pickChallengeDevice selects among active devices: the explicitly requested
// one if active, else preferring TOTP, else the first active device found.
func pickChallengeDevice(devices []*models.Device, requestedID string) *models.Device {
	var firstActive, totpDevice *models.Device
	for _, d := range devices {
		if !d.IsActive {
			continue
		}
		if requestedID != "" && d.ID == requestedID {
			return d
		}
		if firstActive == nil {
			firstActive = d
		}
		if totpDevice == nil && d.Type == models.DeviceTypeTOTP {
			totpDevice = d
		}
	}
	if totpDevice != nil {
		return totpDevice
	}
	return firstActive
}

// dispatchCode sends the out-of-band code without blocking challenge
// creation. Delivery failure is logged, never surfaced to the caller.
func (s *MFAService) dispatchCode(device *models.Device, code string) {
	var sender CodeSender
	switch device.Type {
	case models.DeviceTypeSMS:
		sender = s.smsSender
	case models.DeviceTypeEmail:
		sender = s.emailSender
	}
	if sender == nil {
		log.Warn().Str("deviceId", device.ID).Str("type", string(device.Type)).Msg("No sender configured for device type")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := sender.SendCode(ctx, device.Destination, code); err != nil {
			log.Error().Err(err).Str("deviceId", device.ID).Str("type", string(device.Type)).Msg("Failed to deliver challenge code")
		}
	}()
}

// VerifyChallenge runs one verification attempt. It fails closed on unknown,
// expired or exhausted challenges; otherwise the attempt counter is
// incremented before the token is checked, then the token is dispatched by
// challenge kind. A verified challenge is removed (one-time use); a failed
// attempt is retained so the caller can retry up to the limit.
func (s *MFAService) VerifyChallenge(ctx context.Context, challengeID, token string) (*models.VerifyChallengeResult, error) {
	if challengeID == "" {
		return nil, errors.New("challengeID cannot be empty")
	}

	lock := s.challengeLock(challengeID)
	lock.Lock()
	defer lock.Unlock()

	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			// Expired challenges are purged by the store on lookup.
			s.releaseChallengeLock(challengeID)
			return &models.VerifyChallengeResult{IsValid: false}, nil
		}
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}

	if challenge.IsExhausted() {
		// A spent challenge can never verify, so its lock entry is done too.
		s.releaseChallengeLock(challengeID)
		log.Warn().Str("challengeId", challengeID).Msg("Challenge attempt budget exhausted")
		return &models.VerifyChallengeResult{IsValid: false, Challenge: challenge}, nil
	}

	challenge.Attempts++
	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to record challenge attempt: %w", err)
	}

	valid, err := s.checkToken(ctx, challenge, token)
	if err != nil {
		return nil, err
	}

	if !valid {
		log.Warn().Str("challengeId", challengeID).Int("attempts", challenge.Attempts).Msg("Challenge verification failed")
		return &models.VerifyChallengeResult{
			IsValid:           false,
			Challenge:         challenge,
			RemainingAttempts: challenge.RemainingAttempts(),
		}, nil
	}

	challenge.Verified = true

	if device, err := s.deviceRepo.GetByID(ctx, challenge.DeviceID); err == nil {
		device.MarkUsed(time.Now().UTC())
		if err := s.deviceRepo.Update(ctx, device); err != nil {
			log.Warn().Err(err).Str("deviceId", device.ID).Msg("Failed to update device usage")
		}
	}

	// One-time use: a verified challenge never satisfies a second call.
	if err := s.challengeRepo.Delete(ctx, challengeID); err != nil {
		log.Warn().Err(err).Str("challengeId", challengeID).Msg("Failed to remove verified challenge")
	}
	s.releaseChallengeLock(challengeID)

	log.Info().Str("userId", challenge.UserID).Str("challengeId", challengeID).Msg("MFA challenge verified")
	return &models.VerifyChallengeResult{
		IsValid:           true,
		Challenge:         challenge,
		RemainingAttempts: challenge.RemainingAttempts(),
	}, nil
}

// checkToken dispatches verification by challenge kind. Only environmental
// failures are returned as errors; a mismatched token is (false, nil).
func (s *MFAService) checkToken(ctx context.Context, challenge *models.Challenge, token string) (bool, error) {
	switch challenge.Type {
	case models.DeviceTypeTOTP:
		device, err := s.deviceRepo.GetByID(ctx, challenge.DeviceID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("failed to load challenge device: %w", err)
		}
		return totp.VerifyTOTP(device.Secret, token, time.Now().UTC()), nil

	case models.DeviceTypeBackupCodes:
		device, err := s.deviceRepo.GetByID(ctx, challenge.DeviceID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("failed to load challenge device: %w", err)
		}
		return s.consumeBackupCode(ctx, device, token)

	case models.DeviceTypeSMS, models.DeviceTypeEmail:
		return challenge.Code != "" && totp.ConstantTimeEquals(challenge.Code, token), nil

	default:
		return false, nil
	}
}

// consumeBackupCode accepts a recovery code at most once per user. The
// used-code ledger, not the device's code list, is the source of truth for
// consumption.
func (s *MFAService) consumeBackupCode(ctx context.Context, device *models.Device, candidate string) (bool, error) {
	if len(device.BackupCodes) == 0 || !totp.ValidateBackupCode(candidate) {
		return false, nil
	}

	normalized := strings.ToUpper(candidate)

	used, err := s.usedCodeRepo.IsUsed(ctx, device.UserID, normalized)
	if err != nil {
		return false, fmt.Errorf("failed to check used-code ledger: %w", err)
	}
	if used {
		log.Warn().Str("userId", device.UserID).Msg("Backup code already consumed")
		return false, nil
	}

	listed := false
	for _, code := range device.BackupCodes {
		if totp.ConstantTimeEquals(code, normalized) {
			listed = true
		}
	}
	if !listed {
		return false, nil
	}

	if err := s.usedCodeRepo.MarkUsed(ctx, device.UserID, normalized); err != nil {
		return false, fmt.Errorf("failed to mark backup code used: %w", err)
	}
	return true, nil
}

// GetUserDevices returns all of a user's devices, most-recently-created first.
func (s *MFAService) GetUserDevices(ctx context.Context, userID string) ([]*models.Device, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}
	devices, err := s.deviceRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user devices: %w", err)
	}
	return devices, nil
}

// HasUserMFAEnabled is true iff the user has at least one active device.
func (s *MFAService) HasUserMFAEnabled(ctx context.Context, userID string) (bool, error) {
	devices, err := s.GetUserDevices(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, d := range devices {
		if d.IsActive {
			return true, nil
		}
	}
	return false, nil
}

// RemoveDevice deletes a device the user owns and cascades deletion of any
// pending challenges referencing it.
func (s *MFAService) RemoveDevice(ctx context.Context, deviceID, userID string) error {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return err
	}
	if device.UserID != userID {
		return ErrUnauthorized
	}

	if err := s.deviceRepo.Delete(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if _, err := s.challengeRepo.DeleteByDevice(ctx, deviceID); err != nil {
		log.Warn().Err(err).Str("deviceId", deviceID).Msg("Failed to cascade challenge deletion")
	}

	log.Info().Str("userId", userID).Str("deviceId", deviceID).Msg("MFA device removed")
	return nil
}

// RegenerateBackupCodes replaces the code set on a backup-codes device the
// user owns, resets its usage counter and clears the user's consumed-code
// ledger so the one-time-use history starts fresh.
func (s *MFAService) RegenerateBackupCodes(ctx context.Context, deviceID, userID string) ([]string, error) {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if device.UserID != userID {
		return nil, ErrUnauthorized
	}
	if device.Type != models.DeviceTypeBackupCodes {
		return nil, ErrWrongDeviceType
	}

	codes, err := totp.GenerateBackupCodes(s.cfg.BackupCodeCount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate backup codes: %w", err)
	}

	device.BackupCodes = codes
	device.UsageCount = 0
	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to store regenerated codes: %w", err)
	}
	if err := s.usedCodeRepo.ClearUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear used-code ledger: %w", err)
	}

	log.Info().Str("userId", userID).Str("deviceId", deviceID).Msg("Backup codes regenerated")
	return codes, nil
}

// GetMFAStatus builds the summary view of a user's MFA enrollment.
func (s *MFAService) GetMFAStatus(ctx context.Context, userID string) (*models.MFAStatus, error) {
	devices, err := s.GetUserDevices(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := &models.MFAStatus{
		DeviceCount: len(devices),
		Devices:     make([]models.DeviceSummary, 0, len(devices)),
	}
	for _, d := range devices {
		if d.IsActive {
			status.IsEnabled = true
		}
		status.Devices = append(status.Devices, models.DeviceSummary{
			ID:       d.ID,
			Type:     d.Type,
			Name:     d.Name,
			IsActive: d.IsActive,
			LastUsed: d.LastUsedAt,
		})
	}
	return status, nil
}

// ForceDisableMFA is the administrative override: every device the user owns
// is deactivated (not deleted) and all pending challenges are purged.
func (s *MFAService) ForceDisableMFA(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errors.New("userID cannot be empty")
	}

	disabled, err := s.deviceRepo.DeactivateByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate user devices: %w", err)
	}
	if _, err := s.challengeRepo.DeleteByUser(ctx, userID); err != nil {
		return disabled, fmt.Errorf("failed to purge user challenges: %w", err)
	}

	log.Info().Str("userId", userID).Int64("disabled", disabled).Msg("MFA force-disabled for user")
	return disabled, nil
}

// challengeLock returns the mutex serializing verification for one challenge id.
func (s *MFAService) challengeLock(challengeID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	entry, ok := s.locks[challengeID]
	if !ok {
		entry = &challengeLockEntry{}
		s.locks[challengeID] = entry
	}
	entry.touched = time.Now().UTC()
	return &entry.mu
}

// releaseChallengeLock drops the map entry once the challenge is gone.
// Waiters already holding the old mutex pointer re-check existence after
// acquiring it and fail closed.
func (s *MFAService) releaseChallengeLock(challengeID string) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	delete(s.locks, challengeID)
}

// pruneChallengeLocks drops lock entries untouched for a full challenge
// lifetime. Any challenge they guarded has expired, so a late waiter only
// hits the fail-closed not-found path.
func (s *MFAService) pruneChallengeLocks() {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	cutoff := time.Now().UTC().Add(-s.cfg.ChallengeExpiry)
	for challengeID, entry := range s.locks {
		if entry.touched.Before(cutoff) {
			delete(s.locks, challengeID)
		}
	}
}

// generateChallengeCode returns a 6-digit numeric out-of-band code.
func generateChallengeCode() (string, error) {
	buf := make([]byte, challengeCodeDigits)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	digits := make([]byte, challengeCodeDigits)
	for i := 0; i < challengeCodeDigits; i++ {
		digits[i] = '0' + (buf[i] % 10)
	}
	return string(digits), nil
}
