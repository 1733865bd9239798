package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/glamora/booking-api/internal/domain/appointment"
)

const availabilityTTL = 60 * time.Second

// AvailabilityCache keeps day-level conflict counts in redis for a short
// window. A nil client degrades to a cache that always misses.
type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(addr string) *AvailabilityCache {
	if addr == "" {
		return &AvailabilityCache{}
	}
	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(artistID uint, day time.Time) string {
	return fmt.Sprintf("availability:%d:%s", artistID, day.Format("2006-01-02"))
}

func (c *AvailabilityCache) Get(ctx context.Context, artistID uint, day time.Time) (domain.Conflicts, bool) {
	if c.rdb == nil {
		return domain.Conflicts{}, false
	}

	raw, err := c.rdb.Get(ctx, key(artistID, day)).Result()
	if err != nil {
		return domain.Conflicts{}, false
	}

	var conflicts domain.Conflicts
	if err := json.Unmarshal([]byte(raw), &conflicts); err != nil {
		return domain.Conflicts{}, false
	}
	return conflicts, true
}

func (c *AvailabilityCache) Set(ctx context.Context, artistID uint, day time.Time, conflicts domain.Conflicts) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(conflicts)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(artistID, day), raw, availabilityTTL)
}

// Invalidate drops the cached day after any write that changes the
// artist's calendar.
func (c *AvailabilityCache) Invalidate(ctx context.Context, artistID uint, day time.Time) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key(artistID, day))
}
