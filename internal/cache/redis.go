package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// customerInfoTTL keeps the customer screen fresh enough; writes invalidate
// eagerly anyway.
const customerInfoTTL = 5 * time.Minute

// Client is a small JSON read-through cache over Redis. A nil Client (Redis
// unreachable or not configured) degrades to a no-op: every Get is a miss and
// writes are dropped.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis using the REDIS_* environment. It returns nil when
// the server is unreachable; callers keep the nil and run uncached.
func New() *Client {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
		return nil
	}

	log.Printf("[Cache] Connected to Redis at %s:%s", host, port)
	return &Client{rdb: rdb}
}

// Get unmarshals the cached value into dest and reports whether it was a hit.
func (c *Client) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Stale or corrupt entry; drop it and treat as a miss.
		c.rdb.Del(ctx, key)
		return false
	}
	return true
}

// Set stores the value as JSON. Failures are logged and swallowed.
func (c *Client) Set(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, customerInfoTTL).Err(); err != nil {
		log.Printf("[Cache] Set %s failed: %v", key, err)
	}
}

// Delete drops a key. Failures are logged and swallowed.
func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("[Cache] Delete %s failed: %v", key, err)
	}
}

// Close releases the underlying connection.
func (c *Client) Close() {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Close()
}
