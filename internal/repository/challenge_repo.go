package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
)

// ErrChallengeNotFound is returned when a challenge id is not found or has expired.
var ErrChallengeNotFound = errors.New("mfa challenge not found or expired")

// DefaultChallengeTTL is the default challenge expiry window.
const DefaultChallengeTTL = 5 * time.Minute

// DefaultMaxAttempts is the default verification attempt budget per challenge.
const DefaultMaxAttempts = 3

// ChallengeRepository defines persistence for pending MFA challenges.
type ChallengeRepository interface {
	// Create stores a new challenge. The challenge must have ID set.
	Create(ctx context.Context, challenge *models.Challenge) error
	// GetByID retrieves a challenge by its id.
	// It should return ErrChallengeNotFound if the challenge doesn't exist or is expired.
	GetByID(ctx context.Context, challengeID string) (*models.Challenge, error)
	// Update replaces the stored challenge state (attempt counter, verified flag).
	Update(ctx context.Context, challenge *models.Challenge) error
	// Delete removes a challenge. Deleting an unknown id is not an error.
	Delete(ctx context.Context, challengeID string) error
	// DeleteByUser removes every pending challenge for a user and returns the count.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	// DeleteByDevice removes every pending challenge referencing a device.
	DeleteByDevice(ctx context.Context, deviceID string) (int64, error)
	// DeleteExpired sweeps challenges past their expiry and returns the count.
	// Backends with native key expiry may report 0.
	DeleteExpired(ctx context.Context) (int64, error)
}
