package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

// CatalogCache stores the last loaded catalog snapshot so that restarts and
// sibling instances skip the database round trip.
type CatalogCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context) (*catalog.Snapshot, error)
	Set(ctx context.Context, snap *catalog.Snapshot) error
	Invalidate(ctx context.Context) error
}

const catalogSnapshotKey = "catalog:snapshot:v1"

type cachedPlan struct {
	ID        uint                   `json:"id"`
	Attrs     catalog.PlanAttributes `json:"attrs"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type cachedAddon struct {
	ID        uint                    `json:"id"`
	Attrs     catalog.AddonAttributes `json:"attrs"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

type cachedCatalog struct {
	Plans  []cachedPlan  `json:"plans"`
	Addons []cachedAddon `json:"addons"`
}

// RedisCatalogCache keeps the snapshot as one JSON string with a TTL.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisCatalogCache {
	return &RedisCatalogCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCatalogCache) Get(ctx context.Context) (*catalog.Snapshot, error) {
	data, err := c.client.Get(ctx, catalogSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog from cache: %w", err)
	}

	var cached cachedCatalog
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warnw("dropping unreadable catalog cache entry", "error", err)
		_ = c.Invalidate(ctx)
		return nil, nil
	}

	plans := make([]*catalog.Plan, 0, len(cached.Plans))
	for _, cp := range cached.Plans {
		p, err := catalog.ReconstructPlan(cp.ID, cp.Attrs, cp.CreatedAt, cp.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to restore cached plan %s: %w", cp.Attrs.Code, err)
		}
		plans = append(plans, p)
	}

	addons := make([]*catalog.Addon, 0, len(cached.Addons))
	for _, ca := range cached.Addons {
		a, err := catalog.ReconstructAddon(ca.ID, ca.Attrs, ca.CreatedAt, ca.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to restore cached add-on %s: %w", ca.Attrs.Code, err)
		}
		addons = append(addons, a)
	}

	return catalog.NewSnapshot(plans, addons), nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, snap *catalog.Snapshot) error {
	cached := cachedCatalog{
		Plans:  make([]cachedPlan, 0, len(snap.Plans())),
		Addons: make([]cachedAddon, 0, len(snap.Addons())),
	}
	for _, p := range snap.Plans() {
		cached.Plans = append(cached.Plans, cachedPlan{
			ID: p.ID(), Attrs: p.Attributes(), CreatedAt: p.CreatedAt(), UpdatedAt: p.UpdatedAt(),
		})
	}
	for _, a := range snap.Addons() {
		cached.Addons = append(cached.Addons, cachedAddon{
			ID: a.ID(), Attrs: a.Attributes(), CreatedAt: a.CreatedAt(), UpdatedAt: a.UpdatedAt(),
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := c.client.Set(ctx, catalogSnapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set catalog in cache: %w", err)
	}
	return nil
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogSnapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}
