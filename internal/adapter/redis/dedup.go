// Package redis de-duplicates Telegram webhook deliveries. Telegram retries
// an update until it sees a 2xx, so the same update_id can arrive twice.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sthacker-ai/NexusLog/internal/config"
)

const (
	keyPrefix  = "nexuslog:tg:update:"
	defaultTTL = 24 * time.Hour
)

// Deduper remembers update ids for a TTL.
type Deduper struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewClient opens a go-redis client for cfg.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewDeduper wraps client. A non-positive ttl uses 24h.
func NewDeduper(client *goredis.Client, ttl time.Duration) *Deduper {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Deduper{client: client, ttl: ttl}
}

// FirstSeen marks updateID as seen and reports whether this call was the
// first to do so.
func (d *Deduper) FirstSeen(ctx context.Context, updateID int64) (bool, error) {
	key := keyPrefix + strconv.FormatInt(updateID, 10)

	ok, err := d.client.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedup update %d: %w", updateID, err)
	}

	return ok, nil
}

// Forget clears updateID so a later delivery is processed again.
func (d *Deduper) Forget(ctx context.Context, updateID int64) error {
	key := keyPrefix + strconv.FormatInt(updateID, 10)

	if err := d.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("forget update %d: %w", updateID, err)
	}

	return nil
}

// Ping checks the connection.
func (d *Deduper) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}
