package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/models"
	"github.com/SimpnicServerTeam/scs-mfa-server/internal/repository"
	"github.com/redis/go-redis/v9"
)

// RedisChallengeRepository implements ChallengeRepository using Redis.
// Challenge expiry is enforced by key TTL; DeleteExpired only prunes the
// secondary index sets.
type RedisChallengeRepository struct {
	client *redis.Client
}

// Helper to construct challenge key
func makeChallengeKey(challengeID string) string {
	return fmt.Sprintf("mfa_challenge:%s", challengeID)
}

// Helper to construct user index key
func makeUserChallengesKey(userID string) string {
	return fmt.Sprintf("user_mfa_challenges:%s", userID)
}

// Helper to construct device index key
func makeDeviceChallengesKey(deviceID string) string {
	return fmt.Sprintf("device_mfa_challenges:%s", deviceID)
}

func NewRedisChallengeRepository(client *redis.Client) repository.ChallengeRepository {
	return &RedisChallengeRepository{
		client: client,
	}
}

// Create saves the challenge data and adds it to the user and device indexes.
func (r *RedisChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	if challenge == nil || challenge.ID == "" || challenge.UserID == "" {
		return errors.New("invalid challenge data: ID and UserID must be set")
	}

	jsonData, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	ttl := time.Until(challenge.ExpiresAt)
	if ttl <= 0 {
		return errors.New("challenge expiry must be in the future")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, makeChallengeKey(challenge.ID), jsonData, ttl)
	pipe.SAdd(ctx, makeUserChallengesKey(challenge.UserID), challenge.ID)
	pipe.SAdd(ctx, makeDeviceChallengesKey(challenge.DeviceID), challenge.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute challenge store pipeline: %w", err)
	}
	return nil
}

// GetByID retrieves a challenge by its id.
// Redis TTL removes expired challenges; the deserialized expiry is checked as well.
func (r *RedisChallengeRepository) GetByID(ctx context.Context, challengeID string) (*models.Challenge, error) {
	jsonData, err := r.client.Get(ctx, makeChallengeKey(challengeID)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrChallengeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET failed: %w", err)
	}

	var challenge models.Challenge
	if err := json.Unmarshal(jsonData, &challenge); err != nil {
		return nil, fmt.Errorf("json unmarshal failed: %w", err)
	}

	if challenge.IsExpired() {
		_ = r.Delete(ctx, challengeID)
		return nil, repository.ErrChallengeNotFound
	}
	return &challenge, nil
}

// Update replaces the stored challenge state, preserving the original expiry TTL.
func (r *RedisChallengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	if challenge == nil || challenge.ID == "" {
		return errors.New("invalid challenge data: ID must be set")
	}

	key := makeChallengeKey(challenge.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("redis EXISTS failed: %w", err)
	}
	if exists == 0 {
		return repository.ErrChallengeNotFound
	}

	jsonData, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	ttl := time.Until(challenge.ExpiresAt)
	if ttl <= 0 {
		return r.Delete(ctx, challenge.ID)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("redis SET failed during update: %w", err)
	}
	return nil
}

// Delete removes a challenge and its index entries.
func (r *RedisChallengeRepository) Delete(ctx context.Context, challengeID string) error {
	key := makeChallengeKey(challengeID)

	jsonData, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get challenge before delete: %w", err)
	}

	var challenge models.Challenge
	if err := json.Unmarshal(jsonData, &challenge); err != nil {
		r.client.Del(ctx, key)
		return fmt.Errorf("failed to unmarshal challenge before delete (key deleted): %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, makeUserChallengesKey(challenge.UserID), challengeID)
	pipe.SRem(ctx, makeDeviceChallengesKey(challenge.DeviceID), challengeID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute challenge delete pipeline: %w", err)
	}
	return nil
}

// DeleteByUser deletes all pending challenges for a user.
func (r *RedisChallengeRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return r.deleteByIndex(ctx, makeUserChallengesKey(userID))
}

// DeleteByDevice deletes all pending challenges referencing a device.
func (r *RedisChallengeRepository) DeleteByDevice(ctx context.Context, deviceID string) (int64, error) {
	return r.deleteByIndex(ctx, makeDeviceChallengesKey(deviceID))
}

func (r *RedisChallengeRepository) deleteByIndex(ctx context.Context, indexKey string) (int64, error) {
	challengeIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get challenge index with SMEMBERS: %w", err)
	}
	if len(challengeIDs) == 0 {
		return 0, nil
	}

	deleted := int64(0)
	for _, challengeID := range challengeIDs {
		// Only count challenges whose data key still existed; index entries
		// can outlive the TTL'd data key.
		existed, err := r.client.Exists(ctx, makeChallengeKey(challengeID)).Result()
		if err != nil {
			return deleted, fmt.Errorf("redis EXISTS failed during index delete: %w", err)
		}
		if err := r.Delete(ctx, challengeID); err != nil {
			return deleted, err
		}
		deleted += existed
	}

	// The index set itself may still hold stale members whose data keys
	// expired; drop it wholesale.
	if err := r.client.Del(ctx, indexKey).Err(); err != nil {
		return deleted, fmt.Errorf("failed to delete challenge index: %w", err)
	}
	return deleted, nil
}

// DeleteExpired prunes index-set members whose data keys were expired by
// Redis TTL. The data keys themselves never outlive their expiry.
func (r *RedisChallengeRepository) DeleteExpired(ctx context.Context) (int64, error) {
	pruned := int64(0)
	for _, pattern := range []string{"user_mfa_challenges:*", "device_mfa_challenges:*"} {
		iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			indexKey := iter.Val()
			challengeIDs, err := r.client.SMembers(ctx, indexKey).Result()
			if err != nil {
				return pruned, fmt.Errorf("SMEMBERS failed during expiry sweep: %w", err)
			}
			for _, challengeID := range challengeIDs {
				exists, err := r.client.Exists(ctx, makeChallengeKey(challengeID)).Result()
				if err != nil {
					return pruned, fmt.Errorf("EXISTS failed during expiry sweep: %w", err)
				}
				if exists == 0 {
					if err := r.client.SRem(ctx, indexKey, challengeID).Err(); err != nil {
						return pruned, fmt.Errorf("SREM failed during expiry sweep: %w", err)
					}
					pruned++
				}
			}
		}
		if err := iter.Err(); err != nil {
			return pruned, fmt.Errorf("SCAN failed during expiry sweep: %w", err)
		}
	}
	return pruned, nil
}
