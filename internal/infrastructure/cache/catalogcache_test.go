package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

func setupCatalogCache(t *testing.T, ttl time.Duration) (*RedisCatalogCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return NewRedisCatalogCache(client, ttl, logger.NewNopLogger()), mr
}

func testSnapshot(t *testing.T) *catalog.Snapshot {
	plan, err := catalog.ReconstructPlan(7, catalog.PlanAttributes{
		Code:                "P-0026",
		Name:                i18n.T("Professional", "الاحترافية"),
		YearlyPrice:         decimal.RequireFromString("13800.50"),
		DiscountPercentage:  decimal.NewFromInt(15),
		UnitsQuota:          60,
		AdditionalUnitPrice: decimal.RequireFromString("172.5"),
		ReservationsQuota:   catalog.UnlimitedReservations,
		SortOrder:           3,
		IsActive:            true,
	}, time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)

	addon, err := catalog.ReconstructAddon(3, catalog.AddonAttributes{
		Code:         "ota_registration",
		Name:         i18n.T("OTA Registration", "التسجيل في منصات الحجز"),
		IsOnetime:    true,
		OnetimePrice: decimal.NewFromInt(575),
		IsActive:     true,
	}, time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)

	return catalog.NewSnapshot([]*catalog.Plan{plan}, []*catalog.Addon{addon})
}

func TestRedisCatalogCache_Miss(t *testing.T) {
	c, _ := setupCatalogCache(t, time.Minute)

	snap, err := c.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisCatalogCache_SetGet(t *testing.T) {
	c, mr := setupCatalogCache(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testSnapshot(t)))
	assert.Equal(t, 5*time.Minute, mr.TTL(catalogSnapshotKey))

	snap, err := c.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Len(t, snap.Plans(), 1)
	require.Len(t, snap.Addons(), 1)

	p := snap.Plans()[0]
	assert.Equal(t, uint(7), p.ID())
	assert.Equal(t, "الاحترافية", p.Name().AR)
	assert.True(t, p.YearlyPrice().Equal(decimal.RequireFromString("13800.5")))
	assert.True(t, p.HasUnlimitedReservations())

	a := snap.Addons()[0]
	assert.True(t, a.IsOnetime())
	assert.Equal(t, "575", a.ListPrice().String())
}

func TestRedisCatalogCache_Expires(t *testing.T) {
	c, mr := setupCatalogCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testSnapshot(t)))
	mr.FastForward(2 * time.Minute)

	snap, err := c.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisCatalogCache_Invalidate(t *testing.T) {
	c, _ := setupCatalogCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testSnapshot(t)))
	require.NoError(t, c.Invalidate(ctx))

	snap, err := c.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisCatalogCache_CorruptEntryIsDropped(t *testing.T) {
	c, mr := setupCatalogCache(t, time.Minute)
	require.NoError(t, mr.Set(catalogSnapshotKey, "{not json"))

	snap, err := c.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, snap)
	assert.False(t, mr.Exists(catalogSnapshotKey))
}
