package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shipment-leg-service/internal/domain"
)

// TruckCache is a Redis-backed cache for truck records. Fleet inventory data
// moves slowly; a short TTL keeps the estimation path from hammering the
// fleet service on repeated re-estimates of the same leg.
type TruckCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTruckCache(rdb *redis.Client, ttl time.Duration) *TruckCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TruckCache{rdb: rdb, ttl: ttl}
}

func key(plate string) string { return "truck:" + plate }

// Get returns the cached record for a plate, or nil on a miss.
func (c *TruckCache) Get(ctx context.Context, plate string) (*domain.TruckRecord, error) {
	if c.rdb == nil {
		return nil, errors.New("truck cache: redis client is nil")
	}

	raw, err := c.rdb.Get(ctx, key(plate)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("truck cache get %s: %w", plate, err)
	}

	var record domain.TruckRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("truck cache get %s: unmarshal: %w", plate, err)
	}
	return &record, nil
}

// Put stores a record under the cache TTL.
func (c *TruckCache) Put(ctx context.Context, plate string, record *domain.TruckRecord) error {
	if c.rdb == nil {
		return errors.New("truck cache: redis client is nil")
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("truck cache put %s: marshal: %w", plate, err)
	}
	if err := c.rdb.Set(ctx, key(plate), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("truck cache put %s: %w", plate, err)
	}
	return nil
}
