package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUsedCodeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("MarkAndCheck", func(t *testing.T) {
		repo := NewMemoryUsedCodeRepository()

		used, err := repo.IsUsed(ctx, "user-1", "ABCD1234")
		require.NoError(t, err)
		assert.False(t, used)

		require.NoError(t, repo.MarkUsed(ctx, "user-1", "ABCD1234"))

		used, err = repo.IsUsed(ctx, "user-1", "ABCD1234")
		require.NoError(t, err)
		assert.True(t, used)
	})

	t.Run("ScopedPerUser", func(t *testing.T) {
		repo := NewMemoryUsedCodeRepository()
		require.NoError(t, repo.MarkUsed(ctx, "user-1", "ABCD1234"))

		used, err := repo.IsUsed(ctx, "user-2", "ABCD1234")
		require.NoError(t, err)
		assert.False(t, used, "consumption must not leak across users")
	})

	t.Run("ClearUser", func(t *testing.T) {
		repo := NewMemoryUsedCodeRepository()
		require.NoError(t, repo.MarkUsed(ctx, "user-1", "ABCD1234"))
		require.NoError(t, repo.MarkUsed(ctx, "user-1", "1234ABCD"))
		require.NoError(t, repo.MarkUsed(ctx, "user-2", "FFFF0000"))

		require.NoError(t, repo.ClearUser(ctx, "user-1"))

		used, err := repo.IsUsed(ctx, "user-1", "ABCD1234")
		require.NoError(t, err)
		assert.False(t, used)

		used, err = repo.IsUsed(ctx, "user-2", "FFFF0000")
		require.NoError(t, err)
		assert.True(t, used, "other users' ledgers are untouched")

		// Clearing an unknown user is a no-op.
		require.NoError(t, repo.ClearUser(ctx, "nobody"))
	})

	t.Run("MarkUsedIdempotent", func(t *testing.T) {
		repo := NewMemoryUsedCodeRepository()
		require.NoError(t, repo.MarkUsed(ctx, "user-1", "ABCD1234"))
		require.NoError(t, repo.MarkUsed(ctx, "user-1", "ABCD1234"))

		used, err := repo.IsUsed(ctx, "user-1", "ABCD1234")
		require.NoError(t, err)
		assert.True(t, used)
	})
}
