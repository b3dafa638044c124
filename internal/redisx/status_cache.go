package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/redis/go-redis/v9"
)

// StatusCache keeps order statuses in Redis for the status endpoint. The
// database stays the source of truth; a cache error only means a miss.
type StatusCache struct {
	RDB *redis.Client
}

type cachedStatus struct {
	Status orders.Status `json:"status"`
}

func (c *StatusCache) Get(ctx context.Context, orderID int64) (orders.Status, bool, error) {
	s, err := c.RDB.Get(ctx, fmt.Sprintf(KeyOrderStatus, orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	var v cachedStatus
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return "", false, err
	}
	return v.Status, true, nil
}

func (c *StatusCache) Set(ctx context.Context, orderID int64, s orders.Status) error {
	b, err := json.Marshal(cachedStatus{Status: s})
	if err != nil {
		return err
	}
	return c.RDB.Set(ctx, fmt.Sprintf(KeyOrderStatus, orderID), b, TTLStatusCache).Err()
}
