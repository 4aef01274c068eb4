package memory

import (
	"context"
	"sync"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
)

// MemoryUsedCodeRepository implements UsedCodeRepository in memory (NOT FOR PRODUCTION).
type MemoryUsedCodeRepository struct {
	used  map[string]map[string]struct{} // UserID -> {Code: {}}
	mutex sync.RWMutex
}

// NewMemoryUsedCodeRepository creates a new in-memory used-code ledger.
func NewMemoryUsedCodeRepository() repository.UsedCodeRepository {
	return &MemoryUsedCodeRepository{
		used: make(map[string]map[string]struct{}),
	}
}

// IsUsed reports whether the code was already consumed by the user.
func (r *MemoryUsedCodeRepository) IsUsed(ctx context.Context, userID, code string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	codes, exists := r.used[userID]
	if !exists {
		return false, nil
	}
	_, used := codes[code]
	return used, nil
}

// MarkUsed records the consumption of a code by a user.
func (r *MemoryUsedCodeRepository) MarkUsed(ctx context.Context, userID, code string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.used[userID]; !ok {
		r.used[userID] = make(map[string]struct{})
	}
	r.used[userID][code] = struct{}{}
	return nil
}

// ClearUser forgets every consumed code for a user.
func (r *MemoryUsedCodeRepository) ClearUser(ctx context.Context, userID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.used, userID)
	return nil
}
