package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChallengeRepo(t *testing.T) *MemoryChallengeRepository {
	t.Helper()
	repo := NewMemoryChallengeRepository(time.Hour) // sweep never fires during a test
	t.Cleanup(repo.StopCleanup)
	return repo
}

func testChallenge(id, userID, deviceID string, ttl time.Duration) *models.Challenge {
	return &models.Challenge{
		ID:          id,
		UserID:      userID,
		DeviceID:    deviceID,
		Type:        models.DeviceTypeTOTP,
		ExpiresAt:   time.Now().UTC().Add(ttl),
		MaxAttempts: 3,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestMemoryChallengeRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestChallengeRepo(t)

	challenge := testChallenge("ch-1", "user-1", "dev-1", time.Minute)
	require.NoError(t, repo.Create(ctx, challenge))

	got, err := repo.GetByID(ctx, "ch-1")
	require.NoError(t, err)
	assert.Equal(t, challenge.ID, got.ID)
	assert.Equal(t, challenge.UserID, got.UserID)

	// The store holds a copy; mutating the returned value has no effect.
	got.Attempts = 99
	again, err := repo.GetByID(ctx, "ch-1")
	require.NoError(t, err)
	assert.Zero(t, again.Attempts)
}

func TestMemoryChallengeRepository_CreateInvalid(t *testing.T) {
	ctx := context.Background()
	repo := newTestChallengeRepo(t)

	require.Error(t, repo.Create(ctx, nil))
	require.Error(t, repo.Create(ctx, &models.Challenge{}))
	require.Error(t, repo.Create(ctx, &models.Challenge{ID: "ch-1"}))
}

func TestMemoryChallengeRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestChallengeRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrChallengeNotFound))
}

func TestMemoryChallengeRepository_GetByID_ExpiredIsPurged(t *testing.T) {
	ctx := context.Background()
	repo := newTestChallengeRepo(t)

	require.NoError(t, repo.Create(ctx, testChallenge("ch-1", "user-1", "dev-1", -time.Second)))

	_, err := repo.GetByID(ctx, "ch-1")
	assert.True(t, errors.Is(err, repository.ErrChallengeNotFound))

	// Lazy purge also cleared the user index.
	n, err := repo.DeleteByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryChallengeRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newTestChallengeRepo(t)

	challenge := testChallenge("ch-1", "user-1", "dev-1", time.Minute)
	require.NoError(t, repo.Create(ctx, challenge))

	challenge.Attempts = 2
	require.NoError(t, repo.Update(ctx, challenge))

	got, err := repo.GetByID(ctx, "ch-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Attempts)

	err = repo.Update(ctx, testChallenge("missing", "user-1", "dev-1", time.Minute))
	assert.True(t, errors.Is(err, repository.ErrChallengeNotFound))
}

func TestMemoryChallengeRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestChallengeRepo(t)

	require.NoError(t, repo.Create(ctx, testChallenge("ch-1", "user-1", "dev-1", time.Minute)))
	require.NoError(t, repo.Delete(ctx, "ch-1"))

	_, err := repo.GetByID(ctx, "ch-1")
	assert.True(t, errors.Is(err, repository.ErrChallengeNotFound))

	// Deleting a missing challenge is a no-op.
	require.NoError(t, repo.Delete(ctx, "ch-1"))
}

func TestMemoryChallengeRepository_DeleteByUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestChallengeRepo(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, testChallenge(fmt.Sprintf("ch-%d", i), "user-1", "dev-1", time.Minute)))
	}
	require.NoError(t, repo.Create(ctx, testChallenge("ch-other", "user-2", "dev-2", time.Minute)))

	n, err := repo.DeleteByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = repo.GetByID(ctx, "ch-0")
	assert.True(t, errors.Is(err, repository.ErrChallengeNotFound))

	// The other user's challenge survives.
	_, err = repo.GetByID(ctx, "ch-other")
	require.NoError(t, err)
}

func TestMemoryChallengeRepository_DeleteByDevice(t *testing.T) {
	ctx := context.Background()
	repo := newTestChallengeRepo(t)

	require.NoError(t, repo.Create(ctx, testChallenge("ch-1", "user-1", "dev-1", time.Minute)))
	require.NoError(t, repo.Create(ctx, testChallenge("ch-2", "user-1", "dev-2", time.Minute)))

	n, err := repo.DeleteByDevice(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByID(ctx, "ch-1")
	assert.True(t, errors.Is(err, repository.ErrChallengeNotFound))
	_, err = repo.GetByID(ctx, "ch-2")
	require.NoError(t, err)
}

func TestMemoryChallengeRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := newTestChallengeRepo(t)

	require.NoError(t, repo.Create(ctx, testChallenge("ch-live", "user-1", "dev-1", time.Minute)))
	require.NoError(t, repo.Create(ctx, testChallenge("ch-dead-1", "user-1", "dev-1", -time.Second)))
	require.NoError(t, repo.Create(ctx, testChallenge("ch-dead-2", "user-2", "dev-2", -time.Minute)))

	n, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = repo.GetByID(ctx, "ch-live")
	require.NoError(t, err)
}
