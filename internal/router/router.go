package router

import (
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/handlers"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/service"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// SetupMFARoutes defines the authenticated MFA device and challenge routes.
// Every bearer token is validated by tokenSvc; the parsed token lands on the
// "user" context key the handlers read.
func SetupMFARoutes(app *echo.Echo, mfaHandler *handlers.MFAHandler, tokenSvc service.JWTGenerator) {
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (any, error) {
			return tokenSvc.ParseToken(auth)
		},
	})

	api := app.Group("/api/mfa", jwtMiddleware)

	api.POST("/setup/totp", mfaHandler.SetupTOTP)                // Register a TOTP device (pending setup)
	api.POST("/setup/totp/verify", mfaHandler.VerifyTOTPSetup)   // Activate it with the first valid token
	api.POST("/setup/backup-codes", mfaHandler.SetupBackupCodes) // Register backup codes (active immediately)
	api.POST("/backup-codes/regenerate", mfaHandler.RegenerateBackupCodes)
	api.GET("/devices", mfaHandler.GetDevices)
	api.DELETE("/devices/:deviceId", mfaHandler.RemoveDevice)
	api.GET("/status", mfaHandler.GetStatus)
	api.POST("/challenges", mfaHandler.CreateChallenge)
	api.POST("/challenges/verify", mfaHandler.VerifyChallenge)

	admin := app.Group("/api/admin", jwtMiddleware)
	admin.POST("/users/:userId/mfa/disable", mfaHandler.ForceDisableMFA)
}
