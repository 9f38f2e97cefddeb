package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initializes Redis connection
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         redisURL,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return nil
}

// CloseRedis closes Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// IsRedisAvailable checks if Redis is connected
func IsRedisAvailable() bool {
	if RedisClient == nil {
		return false
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err == nil
}

// ==================== CACHE KEYS ====================

const (
	// Review list caching
	ReviewsCachePrefix = "reviews:list:" // reviews:list:10, reviews:list:all

	// External catalog caching
	RecentGamesCacheKey = "games:recent"
)

// ==================== GENERIC CACHE OPERATIONS ====================

// Set stores any value in cache with TTL
func Set(key string, value interface{}, ttl time.Duration) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// Get retrieves value from cache
func Get(key string, dest interface{}) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}

	val, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss")
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return nil
}

// Delete removes key from cache
func Delete(key string) error {
	if !IsRedisAvailable() {
		return nil
	}
	return RedisClient.Del(ctx, key).Err()
}

// DeletePattern removes all keys matching pattern
func DeletePattern(pattern string) error {
	if !IsRedisAvailable() {
		return nil
	}

	iter := RedisClient.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// ==================== REVIEW LIST CACHING ====================

func reviewsKey(limit int) string {
	if limit > 0 {
		return fmt.Sprintf("%s%d", ReviewsCachePrefix, limit)
	}
	return ReviewsCachePrefix + "all"
}

// GetReviews returns a cached review listing for the given limit
func GetReviews(limit int, dest interface{}) error {
	return Get(reviewsKey(limit), dest)
}

// SetReviews caches a review listing for 1 minute
func SetReviews(limit int, reviews interface{}) error {
	return Set(reviewsKey(limit), reviews, time.Minute)
}

// InvalidateReviews drops every cached review listing
func InvalidateReviews() error {
	return DeletePattern(ReviewsCachePrefix + "*")
}

// ==================== RECENT GAMES CACHING ====================

// GetRecentGames returns the cached catalog payload
func GetRecentGames() ([]byte, error) {
	if !IsRedisAvailable() {
		return nil, fmt.Errorf("redis not available")
	}
	val, err := RedisClient.Get(ctx, RecentGamesCacheKey).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("cache miss")
	}
	return val, err
}

// SetRecentGames caches the catalog payload for 5 minutes
func SetRecentGames(payload []byte) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}
	return RedisClient.Set(ctx, RecentGamesCacheKey, payload, 5*time.Minute).Err()
}
