package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-governance/internal/logger"
)

// BalanceCacheRepository caches token balances at fixed historical blocks in Redis.
type BalanceCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewBalanceCacheRepository creates a cache whose entries expire after expiration.
// Zero keeps entries until evicted.
func NewBalanceCacheRepository(client *redis.Client, expiration time.Duration) *BalanceCacheRepository {
	return &BalanceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func balanceKey(address string, block uint64) string {
	return fmt.Sprintf("balance:%d:%s", block, address)
}

// Get returns the cached raw balance of address at block and whether it was present.
func (r *BalanceCacheRepository) Get(ctx context.Context, address string, block uint64) (string, bool, error) {
	key := balanceKey(address, block)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores the raw balance of address at block.
func (r *BalanceCacheRepository) Set(ctx context.Context, address string, block uint64, balance string) error {
	key := balanceKey(address, block)

	err := r.client.Set(ctx, key, balance, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", balance,
		"result", "ok",
		"error", err,
	)

	return err
}
