package repository

import (
	"context"
)

// UsedCodeRepository is the one-time-consumption ledger for backup codes.
// A (userID, code) pair that was marked used can never satisfy a challenge
// for that user again, even if the code is still listed on the device.
type UsedCodeRepository interface {
	// IsUsed reports whether the normalized code was already consumed by the user.
	IsUsed(ctx context.Context, userID, code string) (bool, error)
	// MarkUsed records the consumption of a code by a user.
	MarkUsed(ctx context.Context, userID, code string) error
	// ClearUser forgets every consumed code for a user (backup code regeneration).
	ClearUser(ctx context.Context, userID string) error
}
