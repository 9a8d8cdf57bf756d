package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps a Redis client with JSON helpers for cached admin aggregates.
type Client struct {
	rdb *redis.Client
	ctx context.Context
}

// New initializes a new Redis client.
func New(addr, password string, db int) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Client{rdb: rdb, ctx: context.Background()}
}

// Ping helper
func (c *Client) Ping() error { return c.rdb.Ping(c.ctx).Err() }

// SetJSON stores v marshalled as JSON under key with a TTL.
func (c *Client) SetJSON(key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(c.ctx, key, data, ttl).Err()
}

// GetJSON loads key into dest. The bool reports whether the key existed.
func (c *Client) GetJSON(key string, dest interface{}) (bool, error) {
	raw, err := c.rdb.Get(c.ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes keys; used after admin writes invalidate cached aggregates.
func (c *Client) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(c.ctx, keys...).Err()
}
