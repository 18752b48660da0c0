package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	catalogKeyPrefix   = "quote:catalog:"
	buildingTypesKey   = catalogKeyPrefix + "building-types"
	regionsKey         = catalogKeyPrefix + "regions"
	catalogSlugKeyPart = catalogKeyPrefix + "slug:"
	scanBatch          = 100
)

// RedisCatalogCache keeps JSON snapshots of the public catalog reads.
type RedisCatalogCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.ICatalogCache = (*RedisCatalogCache)(nil)

func NewRedisCatalogCache(client redis.Cmdable, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl}
}

func (c *RedisCatalogCache) GetBuildingTypes(ctx context.Context) ([]entities.BuildingTypeConfig, bool) {
	var configs []entities.BuildingTypeConfig
	return configs, c.get(ctx, buildingTypesKey, &configs)
}

func (c *RedisCatalogCache) SetBuildingTypes(ctx context.Context, configs []entities.BuildingTypeConfig) error {
	return c.set(ctx, buildingTypesKey, configs)
}

func (c *RedisCatalogCache) GetCatalog(ctx context.Context, slug string) (entities.PricingCatalog, bool) {
	var catalog entities.PricingCatalog
	return catalog, c.get(ctx, catalogKey(slug), &catalog)
}

func (c *RedisCatalogCache) SetCatalog(ctx context.Context, slug string, catalog entities.PricingCatalog) error {
	return c.set(ctx, catalogKey(slug), catalog)
}

func (c *RedisCatalogCache) GetRegions(ctx context.Context) ([]entities.RegionModifier, bool) {
	var regions []entities.RegionModifier
	return regions, c.get(ctx, regionsKey, &regions)
}

func (c *RedisCatalogCache) SetRegions(ctx context.Context, regions []entities.RegionModifier) error {
	return c.set(ctx, regionsKey, regions)
}

// Invalidate deletes every key under the catalog prefix.
func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, catalogKeyPrefix+"*", scanBatch).Iterator()

	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return err
	}
	log.Printf("[cache][redis] catalog invalidated keys=%d", len(keys))
	return nil
}

func (c *RedisCatalogCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[cache][redis] get failed key=%s err=%v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("[cache][redis] corrupt entry key=%s err=%v", key, err)
		return false
	}
	return true
}

func (c *RedisCatalogCache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func catalogKey(slug string) string {
	return catalogSlugKeyPart + slug
}

// NoopCatalogCache is used when no Redis is configured: every read is a miss.
type NoopCatalogCache struct{}

var _ interfaces.ICatalogCache = NoopCatalogCache{}

func (NoopCatalogCache) GetBuildingTypes(context.Context) ([]entities.BuildingTypeConfig, bool) {
	return nil, false
}

func (NoopCatalogCache) SetBuildingTypes(context.Context, []entities.BuildingTypeConfig) error {
	return nil
}

func (NoopCatalogCache) GetCatalog(context.Context, string) (entities.PricingCatalog, bool) {
	return entities.PricingCatalog{}, false
}

func (NoopCatalogCache) SetCatalog(context.Context, string, entities.PricingCatalog) error {
	return nil
}

func (NoopCatalogCache) GetRegions(context.Context) ([]entities.RegionModifier, bool) {
	return nil, false
}

func (NoopCatalogCache) SetRegions(context.Context, []entities.RegionModifier) error { return nil }

func (NoopCatalogCache) Invalidate(context.Context) error { return nil }
