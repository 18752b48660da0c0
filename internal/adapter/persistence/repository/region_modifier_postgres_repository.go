package repository

import (
	"context"
	"fmt"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/usecase/interfaces"
)

const regionColumns = `id, region, coefficient, sort_order, created_at, updated_at`

type RegionModifierPostgresRepository struct {
	db sqlDB
}

var _ interfaces.IRegionModifierRepository = (*RegionModifierPostgresRepository)(nil)

func NewRegionModifierPostgresRepository(db sqlDB) *RegionModifierPostgresRepository {
	return &RegionModifierPostgresRepository{db: db}
}

func (r *RegionModifierPostgresRepository) List(ctx context.Context) ([]entities.RegionModifier, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+regionColumns+` FROM calculator_regions ORDER BY sort_order ASC, created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	return collectRows(rows, scanRegion)
}

func (r *RegionModifierPostgresRepository) GetByID(ctx context.Context, id string) (entities.RegionModifier, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+regionColumns+` FROM calculator_regions WHERE id = $1`, id)
	return zeroOnNoRows(scanRegion(row))
}

func (r *RegionModifierPostgresRepository) Create(ctx context.Context, m entities.RegionModifier) (entities.RegionModifier, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calculator_regions (`+regionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Region, m.Coefficient, m.SortOrder, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return entities.RegionModifier{}, fmt.Errorf("failed to insert region: %w", err)
	}
	return m, nil
}

func (r *RegionModifierPostgresRepository) Update(ctx context.Context, m entities.RegionModifier) (entities.RegionModifier, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calculator_regions
		SET region = $2, coefficient = $3, sort_order = $4, updated_at = $5
		WHERE id = $1`,
		m.ID, m.Region, m.Coefficient, m.SortOrder, m.UpdatedAt,
	)
	if err != nil {
		return entities.RegionModifier{}, fmt.Errorf("failed to update region: %w", err)
	}
	if ok, err := affected(res); err != nil || !ok {
		return entities.RegionModifier{}, err
	}
	return m, nil
}

func (r *RegionModifierPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calculator_regions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete region: %w", err)
	}
	return affected(res)
}

func scanRegion(s rowScanner) (entities.RegionModifier, error) {
	var m entities.RegionModifier
	err := s.Scan(&m.ID, &m.Region, &m.Coefficient, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
