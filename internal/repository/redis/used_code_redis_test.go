package redis

import (
	"context"
	"testing"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisUsedCodeRepo(t *testing.T) (repo repository.UsedCodeRepository, mr *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	repo = NewRedisUsedCodeRepository(client)
	return repo, mr
}

func TestRedisUsedCodeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("MarkAndCheck", func(t *testing.T) {
		repo, mr := newTestRedisUsedCodeRepo(t)
		defer mr.Close()

		used, err := repo.IsUsed(ctx, "user-1", "ABCD1234")
		require.NoError(t, err)
		assert.False(t, used)

		require.NoError(t, repo.MarkUsed(ctx, "user-1", "ABCD1234"))

		used, err = repo.IsUsed(ctx, "user-1", "ABCD1234")
		require.NoError(t, err)
		assert.True(t, used)
	})

	t.Run("ScopedPerUser", func(t *testing.T) {
		repo, mr := newTestRedisUsedCodeRepo(t)
		defer mr.Close()

		require.NoError(t, repo.MarkUsed(ctx, "user-1", "ABCD1234"))

		used, err := repo.IsUsed(ctx, "user-2", "ABCD1234")
		require.NoError(t, err)
		assert.False(t, used, "consumption must not leak across users")
	})

	t.Run("ClearUser", func(t *testing.T) {
		repo, mr := newTestRedisUsedCodeRepo(t)
		defer mr.Close()

		require.NoError(t, repo.MarkUsed(ctx, "user-1", "ABCD1234"))
		require.NoError(t, repo.MarkUsed(ctx, "user-1", "1234ABCD"))

		require.NoError(t, repo.ClearUser(ctx, "user-1"))
		assert.False(t, mr.Exists(makeUsedCodesKey("user-1")))

		used, err := repo.IsUsed(ctx, "user-1", "ABCD1234")
		require.NoError(t, err)
		assert.False(t, used)

		// Clearing an unknown user is a no-op.
		require.NoError(t, repo.ClearUser(ctx, "nobody"))
	})
}
