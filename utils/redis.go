package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventgate/ticketing-backend/config"
)

var (
	redisClient *redis.Client
	redisCtx    = context.Background()
)

// InitRedis connects the shared Redis client used for short-lived tokens
func InitRedis(cfg *config.Config) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(redisCtx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("✅ Connected to Redis")
	return nil
}

// SetToken stores a value with TTL (used for password reset tokens)
func SetToken(key, value string, ttl time.Duration) error {
	if redisClient == nil {
		return fmt.Errorf("redis not initialized")
	}
	return redisClient.Set(redisCtx, key, value, ttl).Err()
}

// GetToken fetches a stored token value; returns an error when missing/expired
func GetToken(key string) (string, error) {
	if redisClient == nil {
		return "", fmt.Errorf("redis not initialized")
	}
	val, err := redisClient.Get(redisCtx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("token not found or expired")
	}
	return val, err
}

// DeleteToken removes a token after use
func DeleteToken(key string) error {
	if redisClient == nil {
		return fmt.Errorf("redis not initialized")
	}
	return redisClient.Del(redisCtx, key).Err()
}
