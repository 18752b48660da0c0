package repository

import (
	"context"
	"fmt"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/usecase/interfaces"
)

const optionColumns = `id, config_id, name, add_price_min, add_price_max, sort_order, created_at, updated_at`

type CalculatorOptionPostgresRepository struct {
	db sqlDB
}

var _ interfaces.ICalculatorOptionRepository = (*CalculatorOptionPostgresRepository)(nil)

func NewCalculatorOptionPostgresRepository(db sqlDB) *CalculatorOptionPostgresRepository {
	return &CalculatorOptionPostgresRepository{db: db}
}

func (r *CalculatorOptionPostgresRepository) List(ctx context.Context) ([]entities.CalculatorOption, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+optionColumns+` FROM calculator_options ORDER BY sort_order ASC, created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	return collectRows(rows, scanOption)
}

func (r *CalculatorOptionPostgresRepository) ListByConfigID(ctx context.Context, configID string) ([]entities.CalculatorOption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+optionColumns+` FROM calculator_options
		WHERE config_id = $1
		ORDER BY sort_order ASC, created_at ASC, id ASC`, configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options for config %s: %w", configID, err)
	}
	return collectRows(rows, scanOption)
}

func (r *CalculatorOptionPostgresRepository) GetByID(ctx context.Context, id string) (entities.CalculatorOption, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+optionColumns+` FROM calculator_options WHERE id = $1`, id)
	return zeroOnNoRows(scanOption(row))
}

func (r *CalculatorOptionPostgresRepository) Create(ctx context.Context, o entities.CalculatorOption) (entities.CalculatorOption, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calculator_options (`+optionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.ConfigID, o.Name, o.AddPriceMin, o.AddPriceMax, o.SortOrder, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return entities.CalculatorOption{}, fmt.Errorf("failed to insert option: %w", err)
	}
	return o, nil
}

func (r *CalculatorOptionPostgresRepository) Update(ctx context.Context, o entities.CalculatorOption) (entities.CalculatorOption, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calculator_options
		SET name = $2, add_price_min = $3, add_price_max = $4, sort_order = $5, updated_at = $6
		WHERE id = $1`,
		o.ID, o.Name, o.AddPriceMin, o.AddPriceMax, o.SortOrder, o.UpdatedAt,
	)
	if err != nil {
		return entities.CalculatorOption{}, fmt.Errorf("failed to update option: %w", err)
	}
	if ok, err := affected(res); err != nil || !ok {
		return entities.CalculatorOption{}, err
	}
	return o, nil
}

func (r *CalculatorOptionPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calculator_options WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete option: %w", err)
	}
	return affected(res)
}

func scanOption(s rowScanner) (entities.CalculatorOption, error) {
	var o entities.CalculatorOption
	err := s.Scan(&o.ID, &o.ConfigID, &o.Name, &o.AddPriceMin, &o.AddPriceMax, &o.SortOrder, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}
