package interfaces

import (
	"context"
	"construction_quote/internal/domain/entities"
)

// ICatalogCache caches what the public calculator reads from the configuration store.
//
// Get methods report a miss with ok=false; cache failures are misses too.
// Invalidate drops every entry and is called after each admin write.
type ICatalogCache interface {
	GetBuildingTypes(ctx context.Context) ([]entities.BuildingTypeConfig, bool)
	SetBuildingTypes(ctx context.Context, configs []entities.BuildingTypeConfig) error
	GetCatalog(ctx context.Context, slug string) (entities.PricingCatalog, bool)
	SetCatalog(ctx context.Context, slug string, catalog entities.PricingCatalog) error
	GetRegions(ctx context.Context) ([]entities.RegionModifier, bool)
	SetRegions(ctx context.Context, regions []entities.RegionModifier) error
	Invalidate(ctx context.Context) error
}
