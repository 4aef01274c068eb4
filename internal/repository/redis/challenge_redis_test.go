package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisChallengeRepo(t *testing.T) (repo repository.ChallengeRepository, mr *miniredis.Miniredis, client *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	repo = NewRedisChallengeRepository(client)
	return repo, mr, client
}

func newRedisTestChallenge(id, userID, deviceID string, ttl time.Duration) *models.Challenge {
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

func TestNewRedisChallengeRepository(t *testing.T) {
	repo, mr, _ := newTestRedisChallengeRepo(t)
	defer mr.Close()
	assert.NotNil(t, repo)
}

func TestRedisChallengeRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mr, client := newTestRedisChallengeRepo(t)
		defer mr.Close()

		challenge := newRedisTestChallenge("ch-1", "user-1", "dev-1", 5*time.Minute)
		require.NoError(t, repo.Create(ctx, challenge))

		// Data key carries a TTL tied to the challenge expiry.
		assert.True(t, mr.Exists(makeChallengeKey("ch-1")))
		ttl := client.TTL(ctx, makeChallengeKey("ch-1")).Val()
		assert.Greater(t, ttl, 4*time.Minute)

		// Both index sets reference the challenge.
		userMembers, err := client.SMembers(ctx, makeUserChallengesKey("user-1")).Result()
		require.NoError(t, err)
		assert.Contains(t, userMembers, "ch-1")

		deviceMembers, err := client.SMembers(ctx, makeDeviceChallengesKey("dev-1")).Result()
		require.NoError(t, err)
		assert.Contains(t, deviceMembers, "ch-1")
	})

	t.Run("ErrorInvalidData", func(t *testing.T) {
		repo, mr, _ := newTestRedisChallengeRepo(t)
		defer mr.Close()

		require.Error(t, repo.Create(ctx, nil))
		require.Error(t, repo.Create(ctx, &models.Challenge{ID: "ch-1"}))
	})

	t.Run("ErrorAlreadyExpired", func(t *testing.T) {
		repo, mr, _ := newTestRedisChallengeRepo(t)
		defer mr.Close()

		err := repo.Create(ctx, newRedisTestChallenge("ch-1", "user-1", "dev-1", -time.Second))
		require.Error(t, err)
	})
}

func TestRedisChallengeRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mr, _ := newTestRedisChallengeRepo(t)
		defer mr.Close()

		challenge := newRedisTestChallenge("ch-1", "user-1", "dev-1", 5*time.Minute)
		challenge.Code = "482913"
		require.NoError(t, repo.Create(ctx, challenge))

		got, err := repo.GetByID(ctx, "ch-1")
		require.NoError(t, err)
		assert.Equal(t, challenge.ID, got.ID)
		assert.Equal(t, challenge.UserID, got.UserID)
		assert.Equal(t, "482913", got.Code, "server-side code must survive the round trip")
		assert.WithinDuration(t, challenge.ExpiresAt, got.ExpiresAt, time.Second)
	})

	t.Run("ErrorNotFound", func(t *testing.T) {
		repo, mr, _ := newTestRedisChallengeRepo(t)
		defer mr.Close()

		_, err := repo.GetByID(ctx, "missing")
		assert.True(t, errors.Is(err, repository.ErrChallengeNotFound))
	})

	t.Run("ErrorExpiredByTTL", func(t *testing.T) {
		repo, mr, _ := newTestRedisChallengeRepo(t)
		defer mr.Close()

		require.NoError(t, repo.Create(ctx, newRedisTestChallenge("ch-1", "user-1", "dev-1", time.Minute)))
		mr.FastForward(2 * time.Minute)

		_, err := repo.GetByID(ctx, "ch-1")
		assert.True(t, errors.Is(err, repository.ErrChallengeNotFound))
	})
}

func TestRedisChallengeRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PreservesTTL", func(t *testing.T) {
		repo, mr, client := newTestRedisChallengeRepo(t)
		defer mr.Close()

		challenge := newRedisTestChallenge("ch-1", "user-1", "dev-1", 5*time.Minute)
		require.NoError(t, repo.Create(ctx, challenge))

		challenge.Attempts = 2
		require.NoError(t, repo.Update(ctx, challenge))

		got, err := repo.GetByID(ctx, "ch-1")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Attempts)

		ttl := client.TTL(ctx, makeChallengeKey("ch-1")).Val()
		assert.Greater(t, ttl, 4*time.Minute)
		assert.LessOrEqual(t, ttl, 5*time.Minute)
	})

	t.Run("ErrorNotFound", func(t *testing.T) {
		repo, mr, _ := newTestRedisChallengeRepo(t)
		defer mr.Close()

		err := repo.Update(ctx, newRedisTestChallenge("missing", "user-1", "dev-1", time.Minute))
		assert.True(t, errors.Is(err, repository.ErrChallengeNotFound))
	})
}

func TestRedisChallengeRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CleansIndexes", func(t *testing.T) {
		repo, mr, client := newTestRedisChallengeRepo(t)
		defer mr.Close()

		require.NoError(t, repo.Create(ctx, newRedisTestChallenge("ch-1", "user-1", "dev-1", time.Minute)))
		require.NoError(t, repo.Delete(ctx, "ch-1"))

		assert.False(t, mr.Exists(makeChallengeKey("ch-1")))
		assert.Zero(t, client.SCard(ctx, makeUserChallengesKey("user-1")).Val())
		assert.Zero(t, client.SCard(ctx, makeDeviceChallengesKey("dev-1")).Val())
	})

	t.Run("SuccessWhenMissing", func(t *testing.T) {
		repo, mr, _ := newTestRedisChallengeRepo(t)
		defer mr.Close()

		require.NoError(t, repo.Delete(ctx, "missing"))
	})
}

func TestRedisChallengeRepository_DeleteByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mr, client := newTestRedisChallengeRepo(t)
		defer mr.Close()

		require.NoError(t, repo.Create(ctx, newRedisTestChallenge("ch-1", "user-1", "dev-1", time.Minute)))
		require.NoError(t, repo.Create(ctx, newRedisTestChallenge("ch-2", "user-1", "dev-2", time.Minute)))
		require.NoError(t, repo.Create(ctx, newRedisTestChallenge("ch-other", "user-2", "dev-3", time.Minute)))

		n, err := repo.DeleteByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		assert.False(t, mr.Exists(makeChallengeKey("ch-1")))
		assert.False(t, mr.Exists(makeChallengeKey("ch-2")))
		assert.False(t, mr.Exists(makeUserChallengesKey("user-1")))

		// The other user's challenge survives.
		_, err = repo.GetByID(ctx, "ch-other")
		require.NoError(t, err)
		assert.Equal(t, int64(1), client.SCard(ctx, makeUserChallengesKey("user-2")).Val())
	})

	t.Run("ZeroWhenEmpty", func(t *testing.T) {
		repo, mr, _ := newTestRedisChallengeRepo(t)
		defer mr.Close()

		n, err := repo.DeleteByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestRedisChallengeRepository_DeleteByDevice(t *testing.T) {
	ctx := context.Background()
	repo, mr, _ := newTestRedisChallengeRepo(t)
	defer mr.Close()

	require.NoError(t, repo.Create(ctx, newRedisTestChallenge("ch-1", "user-1", "dev-1", time.Minute)))
	require.NoError(t, repo.Create(ctx, newRedisTestChallenge("ch-2", "user-1", "dev-2", time.Minute)))

	n, err := repo.DeleteByDevice(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.False(t, mr.Exists(makeChallengeKey("ch-1")))
	_, err = repo.GetByID(ctx, "ch-2")
	require.NoError(t, err)
}

func TestRedisChallengeRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo, mr, client := newTestRedisChallengeRepo(t)
	defer mr.Close()

	require.NoError(t, repo.Create(ctx, newRedisTestChallenge("ch-live", "user-1", "dev-1", time.Hour)))
	require.NoError(t, repo.Create(ctx, newRedisTestChallenge("ch-dead", "user-1", "dev-1", time.Minute)))

	// TTL removes the data key but leaves the index members behind.
	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(makeChallengeKey("ch-dead")))
	assert.Equal(t, int64(2), client.SCard(ctx, makeUserChallengesKey("user-1")).Val())

	// One stale member in each of the user and device index sets.
	pruned, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pruned)

	members, err := client.SMembers(ctx, makeUserChallengesKey("user-1")).Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"ch-live"}, members)
}
