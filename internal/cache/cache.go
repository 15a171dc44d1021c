package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key prefixes
const (
	KeyPrefixEnterprise     = "enterprise:"
	KeyPrefixEnterpriseList = "enterprise:list:"
)

// Cache TTLs
const (
	TTLEnterprise     = time.Hour        // single entities
	TTLEnterpriseList = 30 * time.Minute // list query results
)

// Key returns a prefixed cache key
func Key(prefix, key string) string {
	return prefix + key
}

// Cache is a thin JSON wrapper over a redis client
type Cache struct {
	rdb *redis.Client
}

// NewRedisClient connects to redis and verifies the connection
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// New returns a Cache backed by the given redis client
func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// GetJSON reads key into dest. Returns false on a cache miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key with the given TTL
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

// Delete removes the given keys
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// DeletePrefix removes every key under prefix. List cache keys embed the
// serialized query, so invalidation has to sweep the whole namespace.
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
