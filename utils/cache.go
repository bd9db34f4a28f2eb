// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"staynest/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCacheClient is the dedicated client for the token revocation list.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization data (using DB from AppConfig).
// An unreachable Redis is logged, not fatal: revocation checks then fail open.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Failed to connect to Redis (Auth Cache)", zap.Error(err))
	}
}

// GetAuthCacheClient returns the Redis client for authorization data.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
