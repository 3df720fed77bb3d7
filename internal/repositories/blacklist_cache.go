package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
)

// BlacklistCacheRepository remembers revoked tokens in redis.
// Only revocations are cached: a miss always falls through to postgres.
type BlacklistCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewBlacklistCacheRepository creates the cache. A zero expiration keeps keys forever.
func NewBlacklistCacheRepository(client *redis.Client, expiration time.Duration) *BlacklistCacheRepository {
	return &BlacklistCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// IsRevoked reports whether token is cached as revoked
func (r *BlacklistCacheRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := blacklistKey(token)

	err := r.client.Get(ctx, key).Err()

	logger.Log.Infow("blacklist cache get",
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetRevoked caches token as revoked
func (r *BlacklistCacheRepository) SetRevoked(ctx context.Context, token string) error {
	key := blacklistKey(token)
	err := r.client.Set(ctx, key, "1", r.exp).Err()

	logger.Log.Infow("blacklist cache set",
		"key", key,
		"error", err,
	)

	return err
}

func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "jwt_blacklist:" + hex.EncodeToString(sum[:])
}
