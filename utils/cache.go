package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"mentorify/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// AuthCacheClient is the dedicated client for auth token caching.
	AuthCacheClient *redis.Client
	// OTPCacheClient is the dedicated client for signup OTP storage.
	OTPCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes the Redis clients used for auth and OTP caching.
func InitRedis() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB)
}

// GetAuthCacheClient returns the Redis client for auth token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetOTPCacheClient returns the Redis client for OTP storage.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB)
	}
	return OTPCacheClient
}

// The auth cache holds each principal's active token hash so request auth
// does not hit Mongo on every call. Login primes it, logout drops it, and a
// short TTL bounds staleness if either write is missed.
const authCacheTTL = 10 * time.Minute

func authCacheKey(role, id string) string {
	return fmt.Sprintf("auth:%s:%s", role, id)
}

func cacheCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}

// CacheTokenHash records the principal's current token hash.
func CacheTokenHash(role, id, tokenHash string) {
	ctx, cancel := cacheCtx()
	defer cancel()
	if err := GetAuthCacheClient().Set(ctx, authCacheKey(role, id), tokenHash, authCacheTTL).Err(); err != nil {
		GetLogger().Warn("failed to cache token hash", zap.String("role", role), zap.Error(err))
	}
}

// CachedTokenHash returns the cached token hash for the principal, if any.
func CachedTokenHash(role, id string) (string, bool) {
	ctx, cancel := cacheCtx()
	defer cancel()
	hash, err := GetAuthCacheClient().Get(ctx, authCacheKey(role, id)).Result()
	if err != nil {
		return "", false
	}
	return hash, true
}

// DropCachedTokenHash removes the principal's cached token hash.
func DropCachedTokenHash(role, id string) {
	ctx, cancel := cacheCtx()
	defer cancel()
	if err := GetAuthCacheClient().Del(ctx, authCacheKey(role, id)).Err(); err != nil {
		GetLogger().Warn("failed to drop cached token hash", zap.String("role", role), zap.Error(err))
	}
}
