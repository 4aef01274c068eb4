package redis

import (
	"context"
	"fmt"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
	"github.com/redis/go-redis/v9"
)

// RedisUsedCodeRepository implements UsedCodeRepository using a Redis set per user.
type RedisUsedCodeRepository struct {
	client *redis.Client
}

// Helper to construct used-code ledger key
func makeUsedCodesKey(userID string) string {
	return fmt.Sprintf("mfa_used_codes:%s", userID)
}

func NewRedisUsedCodeRepository(client *redis.Client) repository.UsedCodeRepository {
	return &RedisUsedCodeRepository{
		client: client,
	}
}

// IsUsed reports whether the code was already consumed by the user.
func (r *RedisUsedCodeRepository) IsUsed(ctx context.Context, userID, code string) (bool, error) {
	used, err := r.client.SIsMember(ctx, makeUsedCodesKey(userID), code).Result()
	if err != nil {
		return false, fmt.Errorf("redis SISMEMBER failed: %w", err)
	}
	return used, nil
}

// MarkUsed records the consumption of a code by a user.
func (r *RedisUsedCodeRepository) MarkUsed(ctx context.Context, userID, code string) error {
	if err := r.client.SAdd(ctx, makeUsedCodesKey(userID), code).Err(); err != nil {
		return fmt.Errorf("redis SADD failed: %w", err)
	}
	return nil
}

// ClearUser forgets every consumed code for a user.
func (r *RedisUsedCodeRepository) ClearUser(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, makeUsedCodesKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis DEL failed: %w", err)
	}
	return nil
}
