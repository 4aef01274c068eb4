package service

import (
	"context"
	"errors"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoActiveDevice is returned when a challenge is requested for a user with
// no active MFA device.
var ErrNoActiveDevice = errors.New("user has no active mfa device")

// ErrUnauthorized is returned when a device operation is attempted by a user
// who does not own the device.
var ErrUnauthorized = errors.New("device is not owned by this user")

// ErrWrongDeviceType is returned when an operation targets a device of an
// incompatible factor kind.
var ErrWrongDeviceType = errors.New("operation not supported for this device type")

// MFAManager is the challenge engine: device registration, setup
// verification, challenge issuance and verification, and admin controls.
type MFAManager interface {
	SetupTOTP(ctx context.Context, userID, deviceName, label string) (*models.SetupTOTPResponse, error)
	SetupBackupCodes(ctx context.Context, userID string) (*models.SetupBackupCodesResponse, error)
	VerifyTOTPSetup(ctx context.Context, deviceID, token string) (bool, error)
	CreateChallenge(ctx context.Context, userID, deviceID string) (*models.Challenge, error)
	VerifyChallenge(ctx context.Context, challengeID, token string) (*models.VerifyChallengeResult, error)
	GetUserDevices(ctx context.Context, userID string) ([]*models.Device, error)
	HasUserMFAEnabled(ctx context.Context, userID string) (bool, error)
	RemoveDevice(ctx context.Context, deviceID, userID string) error
	RegenerateBackupCodes(ctx context.Context, deviceID, userID string) ([]string, error)
	GetMFAStatus(ctx context.Context, userID string) (*models.MFAStatus, error)
	ForceDisableMFA(ctx context.Context, userID string) (int64, error)
}

// CodeSender delivers an out-of-band challenge code to a destination
// (phone number or email address). Delivery is fire-and-forget from the
// engine's perspective.
type CodeSender interface {
	SendCode(ctx context.Context, destination, code string) error
}

// JWTGenerator issues and validates the bearer tokens that protect the MFA
// HTTP surface. ParseToken backs the router's auth middleware.
type JWTGenerator interface {
	GenerateToken(userID string) (string, time.Time, error)
	ParseToken(tokenString string) (*jwt.Token, error)
	ValidateToken(tokenString string) (string, error)
}
