package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
)

// MemoryChallengeRepository implements ChallengeRepository in memory (NOT FOR PRODUCTION).
type MemoryChallengeRepository struct {
	challenges     map[string]models.Challenge
	userChallenges map[string]map[string]struct{} // UserID -> {ChallengeID: {}}
	mutex          sync.RWMutex
	cleanupTicker  *time.Ticker
	stopCleanup    chan struct{}
	stopOnce       sync.Once
}

// NewMemoryChallengeRepository creates a new in-memory challenge repository.
// cleanupInterval defines how often expired challenges are automatically removed.
func NewMemoryChallengeRepository(cleanupInterval time.Duration) *MemoryChallengeRepository {
	r := &MemoryChallengeRepository{
		challenges:     make(map[string]models.Challenge),
		userChallenges: make(map[string]map[string]struct{}),
		cleanupTicker:  time.NewTicker(cleanupInterval),
		stopCleanup:    make(chan struct{}),
	}
	go r.startCleanup()
	return r
}

// startCleanup runs the periodic sweep in a background goroutine.
func (r *MemoryChallengeRepository) startCleanup() {
	for {
		select {
		case <-r.cleanupTicker.C:
			_, _ = r.DeleteExpired(context.Background())
		case <-r.stopCleanup:
			r.cleanupTicker.Stop()
			return
		}
	}
}

// StopCleanup stops the background sweep task.
func (r *MemoryChallengeRepository) StopCleanup() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Create stores a new challenge and indexes it by owner.
func (r *MemoryChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	if challenge == nil || challenge.ID == "" {
		return errors.New("invalid challenge data")
	}
	if challenge.UserID == "" {
		return errors.New("challenge UserID must be set")
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.challenges[challenge.ID] = *challenge
	r.addUserChallengeIndex(challenge.UserID, challenge.ID)
	return nil
}

// GetByID retrieves a challenge by its id. Expired challenges are reported
// as not found and cleaned up lazily.
func (r *MemoryChallengeRepository) GetByID(ctx context.Context, challengeID string) (*models.Challenge, error) {
	r.mutex.RLock()
	challenge, exists := r.challenges[challengeID]
	r.mutex.RUnlock()

	if !exists {
		return nil, repository.ErrChallengeNotFound
	}
	if challenge.IsExpired() {
		_ = r.Delete(ctx, challengeID)
		return nil, repository.ErrChallengeNotFound
	}
	return &challenge, nil
}

// Update replaces the stored challenge state.
func (r *MemoryChallengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	if challenge == nil || challenge.ID == "" {
		return errors.New("invalid challenge data")
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.challenges[challenge.ID]; !exists {
		return repository.ErrChallengeNotFound
	}
	r.challenges[challenge.ID] = *challenge
	return nil
}

// Delete removes a challenge and its user index entry.
func (r *MemoryChallengeRepository) Delete(ctx context.Context, challengeID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.deleteLocked(challengeID)
	return nil
}

// DeleteByUser removes every pending challenge for a user.
func (r *MemoryChallengeRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	challengeIDs, exists := r.userChallenges[userID]
	if !exists || len(challengeIDs) == 0 {
		return 0, nil
	}

	toDelete := make([]string, 0, len(challengeIDs))
	for challengeID := range challengeIDs {
		toDelete = append(toDelete, challengeID)
	}
	for _, challengeID := range toDelete {
		r.deleteLocked(challengeID)
	}
	return int64(len(toDelete)), nil
}

// DeleteByDevice removes every pending challenge referencing a device.
func (r *MemoryChallengeRepository) DeleteByDevice(ctx context.Context, deviceID string) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	toDelete := []string{}
	for challengeID, challenge := range r.challenges {
		if challenge.DeviceID == deviceID {
			toDelete = append(toDelete, challengeID)
		}
	}
	for _, challengeID := range toDelete {
		r.deleteLocked(challengeID)
	}
	return int64(len(toDelete)), nil
}

// DeleteExpired sweeps all challenges past their expiry.
func (r *MemoryChallengeRepository) DeleteExpired(ctx context.Context) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := time.Now().UTC()
	toDelete := []string{}
	for challengeID, challenge := range r.challenges {
		if now.After(challenge.ExpiresAt) {
			toDelete = append(toDelete, challengeID)
		}
	}
	for _, challengeID := range toDelete {
		r.deleteLocked(challengeID)
	}
	return int64(len(toDelete)), nil
}

// deleteLocked must be called with the write lock held.
func (r *MemoryChallengeRepository) deleteLocked(challengeID string) {
	challenge, exists := r.challenges[challengeID]
	if !exists {
		return
	}
	delete(r.challenges, challengeID)
	r.removeUserChallengeIndex(challenge.UserID, challengeID)
}

func (r *MemoryChallengeRepository) addUserChallengeIndex(userID, challengeID string) {
	if _, ok := r.userChallenges[userID]; !ok {
		r.userChallenges[userID] = make(map[string]struct{})
	}
	r.userChallenges[userID][challengeID] = struct{}{}
}

func (r *MemoryChallengeRepository) removeUserChallengeIndex(userID, challengeID string) {
	if userChallenges, ok := r.userChallenges[userID]; ok {
		delete(userChallenges, challengeID)
		if len(userChallenges) == 0 {
			delete(r.userChallenges, userID)
		}
	}
}
