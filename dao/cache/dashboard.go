package cache

import (
	"context"
	"encoding/json"
	"time"

	"SnackShop/types"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardKey = "staff:dashboard"
	dashboardTTL = 30 * time.Second
)

// DashboardCache 后台聚合短缓存，核心下单/评价路径不走缓存
type DashboardCache struct {
	redis *redis.Client
}

func NewDashboardCache(rds *redis.Client) *DashboardCache {
	return &DashboardCache{redis: rds}
}

func (c *DashboardCache) Get(ctx context.Context) (*types.Dashboard, bool) {
	raw, err := c.redis.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		return nil, false
	}
	var d types.Dashboard
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, false
	}
	return &d, true
}

func (c *DashboardCache) Set(ctx context.Context, d *types.Dashboard) {
	raw, err := json.Marshal(d)
	if err != nil {
		return
	}
	c.redis.Set(ctx, dashboardKey, raw, dashboardTTL)
}

// Invalidate 订单状态变更后主动失效
func (c *DashboardCache) Invalidate(ctx context.Context) {
	c.redis.Del(ctx, dashboardKey)
}
