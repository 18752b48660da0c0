package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"construction_quote/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

// fakeRedis overrides the commands the cache uses; anything else panics on the nil embed.
type fakeRedis struct {
	redis.Cmdable

	store   map[string]string
	ttls    map[string]time.Duration
	getErr  error
	deleted []string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.store[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.store[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Scan(_ context.Context, _ uint64, _ string, _ int64) *redis.ScanCmd {
	keys := make([]string, 0, len(f.store))
	for k := range f.store {
		keys = append(keys, k)
	}
	return redis.NewScanCmdResult(keys, 0, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.store, k)
	}
	f.deleted = append(f.deleted, keys...)
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestRedisCatalogCache_CatalogRoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	cache := NewRedisCatalogCache(rdb, 5*time.Minute)
	ctx := context.Background()

	if _, ok := cache.GetCatalog(ctx, "sklad"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	catalog := entities.PricingCatalog{
		Config:  entities.BuildingTypeConfig{ID: "cfg-1", Slug: "sklad", BasePriceMin: 14000},
		Options: []entities.CalculatorOption{{ID: "opt-1", Name: "Кран-балка", AddPriceMin: 1200}},
	}
	if err := cache.SetCatalog(ctx, "sklad", catalog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rdb.ttls["quote:catalog:slug:sklad"] != 5*time.Minute {
		t.Fatalf("expected ttl to be applied, got %v", rdb.ttls)
	}

	got, ok := cache.GetCatalog(ctx, "sklad")
	if !ok || got.Config.ID != "cfg-1" || len(got.Options) != 1 || got.Options[0].Name != "Кран-балка" {
		t.Fatalf("unexpected cached catalog ok=%v %+v", ok, got)
	}
}

func TestRedisCatalogCache_ErrorsAreMisses(t *testing.T) {
	rdb := newFakeRedis()
	cache := NewRedisCatalogCache(rdb, time.Minute)
	ctx := context.Background()

	rdb.store[regionsKey] = "{not json"
	if _, ok := cache.GetRegions(ctx); ok {
		t.Fatalf("corrupt entry must be a miss")
	}

	rdb.getErr = errors.New("connection refused")
	if _, ok := cache.GetBuildingTypes(ctx); ok {
		t.Fatalf("redis failure must be a miss")
	}
}

func TestRedisCatalogCache_Invalidate(t *testing.T) {
	rdb := newFakeRedis()
	cache := NewRedisCatalogCache(rdb, time.Minute)
	ctx := context.Background()

	_ = cache.SetBuildingTypes(ctx, []entities.BuildingTypeConfig{{ID: "cfg-1"}})
	_ = cache.SetRegions(ctx, []entities.RegionModifier{{ID: "r-1", Region: "Москва", Coefficient: 1}})

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rdb.deleted) != 2 || len(rdb.store) != 0 {
		t.Fatalf("expected all catalog keys deleted, got deleted=%v store=%v", rdb.deleted, rdb.store)
	}
	if _, ok := cache.GetRegions(ctx); ok {
		t.Fatalf("expected miss after invalidation")
	}
}

func TestRedisCatalogCache_InvalidateEmpty(t *testing.T) {
	rdb := newFakeRedis()
	if err := NewRedisCatalogCache(rdb, time.Minute).Invalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rdb.deleted) != 0 {
		t.Fatalf("nothing to delete")
	}
}

func TestNoopCatalogCache(t *testing.T) {
	var cache NoopCatalogCache
	ctx := context.Background()

	if err := cache.SetCatalog(ctx, "sklad", entities.PricingCatalog{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.GetCatalog(ctx, "sklad"); ok {
		t.Fatalf("noop cache never hits")
	}
	if _, ok := cache.GetBuildingTypes(ctx); ok {
		t.Fatalf("noop cache never hits")
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
