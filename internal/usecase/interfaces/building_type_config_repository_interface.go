package interfaces

import (
	"context"
	"construction_quote/internal/domain/entities"
)

// IBuildingTypeConfigRepository abstracts the calculator_configs collection.
//
// Contract shared by every implementation:
//   - lists are ordered by sort_order ascending, ties by insertion order
//   - publishedOnly is applied by the store query itself
//   - a missing record is returned as a zero value (empty ID), not as an error
//   - Delete removes the config's options in the same operation

type IBuildingTypeConfigRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]entities.BuildingTypeConfig, error)
	GetByID(ctx context.Context, id string) (entities.BuildingTypeConfig, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (entities.BuildingTypeConfig, error)
	Create(ctx context.Context, c entities.BuildingTypeConfig) (entities.BuildingTypeConfig, error)
	Update(ctx context.Context, c entities.BuildingTypeConfig) (entities.BuildingTypeConfig, error)
	Delete(ctx context.Context, id string) (bool, error)
}
