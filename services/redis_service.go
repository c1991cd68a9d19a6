package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"candyshop-http-service/config"
)

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheAdminStats caches the admin dashboard statistics
func (s *RedisService) CacheAdminStats(stats interface{}, expiration time.Duration) error {
	return s.Set("admin:stats", stats, expiration)
}

// GetAdminStats gets the cached admin dashboard statistics
func (s *RedisService) GetAdminStats(dest interface{}) error {
	return s.Get("admin:stats", dest)
}

// InvalidateAdminStats drops the cached statistics after data changes
func (s *RedisService) InvalidateAdminStats() error {
	return s.Delete("admin:stats")
}

// CacheActivePromotions caches the currently active promotions list
func (s *RedisService) CacheActivePromotions(promotions interface{}, expiration time.Duration) error {
	return s.Set("promotions:active", promotions, expiration)
}

// GetActivePromotions gets the cached active promotions list
func (s *RedisService) GetActivePromotions(dest interface{}) error {
	return s.Get("promotions:active", dest)
}

// InvalidateActivePromotions drops the cached promotions list
func (s *RedisService) InvalidateActivePromotions() error {
	return s.Delete("promotions:active")
}
