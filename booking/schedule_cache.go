package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const occupancyTTL = 5 * time.Minute

// RedisScheduleCache keeps per-day occupancy lists in Redis so week views
// don't hammer the bookings table. Entries expire on their own and are
// dropped eagerly whenever a booking for the day is created or cancelled.
type RedisScheduleCache struct {
	client *redis.Client
}

func NewRedisScheduleCache(client *redis.Client) *RedisScheduleCache {
	return &RedisScheduleCache{client: client}
}

func (c *RedisScheduleCache) GetOccupancies(ctx context.Context, date string) ([]Occupancy, bool, error) {
	val, err := c.client.Get(ctx, occupancyCacheKey(date)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to read occupancy cache: %w", err)
	}

	var occupancies []Occupancy

	if err := json.Unmarshal([]byte(val), &occupancies); err != nil {
		return nil, false, fmt.Errorf("failed to decode occupancy cache: %w", err)
	}

	return occupancies, true, nil
}

func (c *RedisScheduleCache) SetOccupancies(ctx context.Context, date string, occupancies []Occupancy) error {
	data, err := json.Marshal(occupancies)

	if err != nil {
		return fmt.Errorf("failed to encode occupancies: %w", err)
	}

	if err := c.client.Set(ctx, occupancyCacheKey(date), data, occupancyTTL).Err(); err != nil {
		return fmt.Errorf("failed to write occupancy cache: %w", err)
	}

	return nil
}

func (c *RedisScheduleCache) Invalidate(ctx context.Context, date string) error {
	return c.client.Del(ctx, occupancyCacheKey(date)).Err()
}

func occupancyCacheKey(date string) string {
	return "occupancy:" + date
}
