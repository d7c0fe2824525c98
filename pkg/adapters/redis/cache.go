// Package redis provides a Redis-backed document cache.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

const defaultPrefix = "flowsuite:doc:"

// farFuture scores index members of entries that never expire (2100-01-01).
const farFuture = 4102444800

// Cache implements ports.DocumentCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration of cached documents. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a cache with its own client.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) key(fingerprint string) string {
	return c.prefix + fingerprint
}

func (c *Cache) indexKey() string {
	return c.prefix + "index"
}

// Get retrieves a document.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Put stores the document and records it in the index.
func (c *Cache) Put(ctx context.Context, key string, doc []byte) error {
	pipe := c.client.Pipeline()
	pipe.Set(ctx, c.key(key), doc, c.ttl)

	score := float64(time.Now().Add(c.ttl).Unix())
	if c.ttl == 0 {
		score = farFuture
	}
	pipe.ZAdd(ctx, c.indexKey(), backend.Z{Score: score, Member: key})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Delete removes the document and its index entry.
func (c *Cache) Delete(ctx context.Context, key string) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, c.key(key))
	pipe.ZRem(ctx, c.indexKey(), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Keys lists cached fingerprints, dropping expired ones from the index first.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := c.client.ZRemRangeByScore(ctx, c.indexKey(), "-inf", fmt.Sprintf("(%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune redis index: %w", err)
	}
	keys, err := c.client.ZRange(ctx, c.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list redis index: %w", err)
	}
	return keys, nil
}
