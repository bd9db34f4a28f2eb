package auth

import (
	"context"
	"time"

	"staynest/utils"

	"github.com/go-redis/redis/v8"
)

// RedisRevocationStore keeps hashes of revoked tokens in Redis.
type RedisRevocationStore struct {
	client *redis.Client
	// maxTTL bounds entries for tokens that carry no expiry.
	maxTTL time.Duration
}

func NewRedisRevocationStore(client *redis.Client, maxTTL time.Duration) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, maxTTL: maxTTL}
}

func revocationKey(token string) string {
	return utils.RevokedTokenPrefix + utils.HashToken(token)
}

// IsRevoked reports whether token was revoked.
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, revocationKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Revoke adds token to the revocation list until expiresAt, after which the
// token is rejected on its own. A zero expiresAt falls back to maxTTL; an
// expiry already in the past writes nothing.
func (s *RedisRevocationStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := revocationTTL(expiresAt, s.maxTTL, time.Now())
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revocationKey(token), 1, ttl).Err()
}

func revocationTTL(expiresAt time.Time, maxTTL time.Duration, now time.Time) time.Duration {
	if expiresAt.IsZero() {
		return maxTTL
	}
	return expiresAt.Sub(now)
}
