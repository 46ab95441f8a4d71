package book

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bookhaven/bookhaven/internal/platform/constants"
)

// RedisCache implements [Cache] on a Redis client.
//
// Cached entries are fully aggregated responses keyed by book id and bounded
// by [constants.BookCacheTTL]; delete and rate invalidate eagerly, the TTL
// covers everything else.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (cache *RedisCache) GetResponse(ctx context.Context, id string) (*Response, error) {
	payload, err := cache.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("book cache get failed: %w", err)
	}

	response := &Response{}
	if err := json.Unmarshal(payload, response); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, fmt.Errorf("book cache entry corrupt: %w", err)
	}
	return response, nil
}

func (cache *RedisCache) SetResponse(ctx context.Context, response *Response) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("book cache marshal failed: %w", err)
	}

	if err := cache.client.Set(ctx, cacheKey(response.ID), payload, constants.BookCacheTTL).Err(); err != nil {
		return fmt.Errorf("book cache set failed: %w", err)
	}
	return nil
}

func (cache *RedisCache) Invalidate(ctx context.Context, id string) error {
	if err := cache.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("book cache invalidate failed: %w", err)
	}
	return nil
}

func cacheKey(id string) string {
	return constants.RedisPrefixBook + id
}
