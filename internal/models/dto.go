package models

import (
	"time"
)

// --- Setup ---

type SetupTOTPRequest struct {
	DeviceName string `json:"deviceName"`
	Label      string `json:"label"` // optional account label for the provisioning URI
}

type SetupTOTPResponse struct {
	DeviceID  string `json:"deviceId"`
	Secret    string `json:"secret"`
	QRCodeURL string `json:"qrCodeUrl"`
}

type SetupBackupCodesResponse struct {
	DeviceID    string   `json:"deviceId"`
	BackupCodes []string `json:"backupCodes"`
}

type VerifyTOTPSetupRequest struct {
	DeviceID string `json:"deviceId"`
	Token    string `json:"token"`
}

// --- Challenges ---

type CreateChallengeRequest struct {
	DeviceID string `json:"deviceId"` // optional; engine picks a device when empty
}

type CreateChallengeResponse struct {
	ChallengeID string     `json:"challengeId"`
	DeviceID    string     `json:"deviceId"`
	Type        DeviceType `json:"type"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	MaxAttempts int        `json:"maxAttempts"`
}

type VerifyChallengeRequest struct {
	ChallengeID string `json:"challengeId"`
	Token       string `json:"token"`
}

// VerifyChallengeResult is what the engine reports for every verification
// attempt, valid or not.
type VerifyChallengeResult struct {
	IsValid           bool       `json:"isValid"`
	Challenge         *Challenge `json:"challenge,omitempty"`
	RemainingAttempts int        `json:"remainingAttempts"`
}

// --- Status ---

// DeviceSummary is the per-device slice of an MFA status report.
type DeviceSummary struct {
	ID       string     `json:"id"`
	Type     DeviceType `json:"type"`
	Name     string     `json:"name"`
	IsActive bool       `json:"isActive"`
	LastUsed *time.Time `json:"lastUsed,omitempty"`
}

type MFAStatus struct {
	IsEnabled   bool            `json:"isEnabled"`
	DeviceCount int             `json:"deviceCount"`
	Devices     []DeviceSummary `json:"devices"`
}

type RegenerateBackupCodesRequest struct {
	DeviceID string `json:"deviceId"`
}

type RegenerateBackupCodesResponse struct {
	BackupCodes []string `json:"backupCodes"`
}

type ForceDisableMFAResponse struct {
	DisabledCount int64 `json:"disabledCount"`
}
