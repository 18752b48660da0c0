package interfaces

import (
	"context"
	"construction_quote/internal/domain/entities"
)

// ICalculatorOptionRepository abstracts the calculator_options collection.

type ICalculatorOptionRepository interface {
	List(ctx context.Context) ([]entities.CalculatorOption, error)
	ListByConfigID(ctx context.Context, configID string) ([]entities.CalculatorOption, error)
	GetByID(ctx context.Context, id string) (entities.CalculatorOption, error)
	Create(ctx context.Context, o entities.CalculatorOption) (entities.CalculatorOption, error)
	Update(ctx context.Context, o entities.CalculatorOption) (entities.CalculatorOption, error)
	Delete(ctx context.Context, id string) (bool, error)
}
