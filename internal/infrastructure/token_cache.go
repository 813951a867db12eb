package infrastructure

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenCache is a write-through cache in front of token resolution. When
// redis is unconfigured or unreachable the cache degrades to a no-op and
// every lookup falls through to the store.
type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(redisURL string) *TokenCache {
	if redisURL == "" {
		return &TokenCache{client: nil}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Warning: invalid REDIS_URL, token cache disabled: %v", err)
		return &TokenCache{client: nil}
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: redis connection failed, token cache disabled: %v", err)
		return &TokenCache{client: nil}
	}

	log.Println("Connected to Redis token cache")
	return &TokenCache{client: client}
}

func (tc *TokenCache) Set(ctx context.Context, value, userId string, ttl time.Duration) error {
	if tc.client == nil {
		return nil
	}
	return tc.client.Set(ctx, "token:"+value, userId, ttl).Err()
}

// Get returns the cached owner id, or redis.Nil when the value is not
// cached (including when the cache is disabled).
func (tc *TokenCache) Get(ctx context.Context, value string) (string, error) {
	if tc.client == nil {
		return "", redis.Nil
	}
	return tc.client.Get(ctx, "token:"+value).Result()
}
