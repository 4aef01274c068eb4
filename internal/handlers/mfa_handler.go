package handlers

import (
	"errors"
	"net/http"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// MFAHandler handles MFA device and challenge HTTP requests.
type MFAHandler struct {
	MFAService service.MFAManager
}

// NewMFAHandler creates a new MFAHandler
func NewMFAHandler(mfaService service.MFAManager) *MFAHandler {
	return &MFAHandler{MFAService: mfaService}
}

// userIDFromContext extracts the authenticated user id the JWT middleware
// stored on the request.
func userIDFromContext(c echo.Context) (string, error) {
	userContext := c.Get("user")
	if userContext == nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated: context missing user information")
	}
	token, ok := userContext.(*jwt.Token)
	if !ok {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "Internal server error: user context type mismatch")
	}
	userID, err := token.Claims.GetSubject()
	if err != nil || userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid token: cannot get subject")
	}
	return userID, nil
}

// SetupTOTP registers a new TOTP device and returns the provisioning secret.
func (h *MFAHandler) SetupTOTP(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	req := new(models.SetupTOTPRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.MFAService.SetupTOTP(c.Request().Context(), userID, req.DeviceName, req.Label)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("TOTP setup failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to set up TOTP device")
	}
	return c.JSON(http.StatusCreated, resp)
}

// VerifyTOTPSetup activates a pending TOTP device with its first valid token.
func (h *MFAHandler) VerifyTOTPSetup(c echo.Context) error {
	if _, err := userIDFromContext(c); err != nil {
		return err
	}

	req := new(models.VerifyTOTPSetupRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.DeviceID == "" || req.Token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "deviceId and token are required")
	}

	ok, err := h.MFAService.VerifyTOTPSetup(c.Request().Context(), req.DeviceID, req.Token)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Device not found")
		}
		if errors.Is(err, service.ErrWrongDeviceType) {
			return echo.NewHTTPError(http.StatusConflict, "Device is not a TOTP device")
		}
		log.Error().Err(err).Str("deviceId", req.DeviceID).Msg("TOTP setup verification failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify TOTP setup")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid TOTP token")
	}
	return c.JSON(http.StatusOK, echo.Map{"verified": true})
}

// SetupBackupCodes registers an immediately active backup-codes device.
func (h *MFAHandler) SetupBackupCodes(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	resp, err := h.MFAService.SetupBackupCodes(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("Backup codes setup failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to set up backup codes")
	}
	return c.JSON(http.StatusCreated, resp)
}

// RegenerateBackupCodes replaces the code set on a backup-codes device.
func (h *MFAHandler) RegenerateBackupCodes(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	req := new(models.RegenerateBackupCodesRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.DeviceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "deviceId is required")
	}

	codes, err := h.MFAService.RegenerateBackupCodes(c.Request().Context(), req.DeviceID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) || errors.Is(err, service.ErrUnauthorized) {
			// Ownership mismatch is reported as not-found so device ids
			// can't be probed across users.
			return echo.NewHTTPError(http.StatusNotFound, "Device not found")
		}
		if errors.Is(err, service.ErrWrongDeviceType) {
			return echo.NewHTTPError(http.StatusConflict, "Device is not a backup codes device")
		}
		log.Error().Err(err).Str("userId", userID).Str("deviceId", req.DeviceID).Msg("Backup code regeneration failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to regenerate backup codes")
	}
	return c.JSON(http.StatusOK, models.RegenerateBackupCodesResponse{BackupCodes: codes})
}

// GetDevices lists the user's registered devices.
func (h *MFAHandler) GetDevices(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	devices, err := h.MFAService.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("Device listing failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list devices")
	}
	return c.JSON(http.StatusOK, echo.Map{"devices": devices})
}

// GetStatus reports the user's MFA enrollment summary.
func (h *MFAHandler) GetStatus(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	status, err := h.MFAService.GetMFAStatus(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("MFA status lookup failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get MFA status")
	}
	return c.JSON(http.StatusOK, status)
}

// RemoveDevice deletes a device the user owns.
func (h *MFAHandler) RemoveDevice(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	deviceID := c.Param("deviceId")
	if deviceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "deviceId is required")
	}

	if err := h.MFAService.RemoveDevice(c.Request().Context(), deviceID, userID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) || errors.Is(err, service.ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusNotFound, "Device not found")
		}
		log.Error().Err(err).Str("userId", userID).Str("deviceId", deviceID).Msg("Device removal failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to remove device")
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateChallenge opens a new verification window for the user.
func (h *MFAHandler) CreateChallenge(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	req := new(models.CreateChallengeRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	challenge, err := h.MFAService.CreateChallenge(c.Request().Context(), userID, req.DeviceID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveDevice) {
			return echo.NewHTTPError(http.StatusNotFound, "No active MFA device")
		}
		log.Error().Err(err).Str("userId", userID).Msg("Challenge creation failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create challenge")
	}

	// The out-of-band code never leaves through this response.
	return c.JSON(http.StatusCreated, models.CreateChallengeResponse{
		ChallengeID: challenge.ID,
		DeviceID:    challenge.DeviceID,
		Type:        challenge.Type,
		ExpiresAt:   challenge.ExpiresAt,
		MaxAttempts: challenge.MaxAttempts,
	})
}

// VerifyChallenge runs one verification attempt against a pending challenge.
func (h *MFAHandler) VerifyChallenge(c echo.Context) error {
	if _, err := userIDFromContext(c); err != nil {
		return err
	}

	req := new(models.VerifyChallengeRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.ChallengeID == "" || req.Token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "challengeId and token are required")
	}

	result, err := h.MFAService.VerifyChallenge(c.Request().Context(), req.ChallengeID, req.Token)
	if err != nil {
		log.Error().Err(err).Str("challengeId", req.ChallengeID).Msg("Challenge verification failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify challenge")
	}

	status := http.StatusOK
	if !result.IsValid {
		status = http.StatusUnauthorized
	}
	return c.JSON(status, echo.Map{
		"isValid":           result.IsValid,
		"remainingAttempts": result.RemainingAttempts,
	})
}

// ForceDisableMFA is the administrative override deactivating every device
// for the target user.
func (h *MFAHandler) ForceDisableMFA(c echo.Context) error {
	if _, err := userIDFromContext(c); err != nil {
		return err
	}

	targetUserID := c.Param("userId")
	if targetUserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	disabled, err := h.MFAService.ForceDisableMFA(c.Request().Context(), targetUserID)
	if err != nil {
		log.Error().Err(err).Str("userId", targetUserID).Msg("Force-disable MFA failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to disable MFA")
	}
	return c.JSON(http.StatusOK, models.ForceDisableMFAResponse{DisabledCount: disabled})
}
