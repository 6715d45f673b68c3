package cache

import (
	"time"

	"github.com/go-redis/redis/v7"
)

// Redis is a Cache backed by a Redis server, for callers that want
// n-gram memoization to survive across process runs against the same
// corpus of response bodies. Keys are namespaced under a caller-chosen
// prefix so multiple callers can share one Redis instance.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis wraps an existing *redis.Client. ttl of zero means entries
// never expire.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (c *Redis) Get(key string) (string, bool, error) {
	v, err := c.client.Get(c.prefix + key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *Redis) Set(key, value string) error {
	return c.client.Set(c.prefix+key, value, c.ttl).Err()
}
