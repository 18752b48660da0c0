package interfaces

import (
	"context"
	"construction_quote/internal/domain/entities"
)

// IRegionModifierRepository abstracts the calculator_regions collection.

type IRegionModifierRepository interface {
	List(ctx context.Context) ([]entities.RegionModifier, error)
	GetByID(ctx context.Context, id string) (entities.RegionModifier, error)
	Create(ctx context.Context, r entities.RegionModifier) (entities.RegionModifier, error)
	Update(ctx context.Context, r entities.RegionModifier) (entities.RegionModifier, error)
	Delete(ctx context.Context, id string) (bool, error)
}
