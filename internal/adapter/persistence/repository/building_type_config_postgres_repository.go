package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/usecase/interfaces"
)

const configColumns = `id, slug, building_type, base_price_min, base_price_max,
	duration_min_weeks, duration_max_weeks, notes, is_published, sort_order, created_at, updated_at`

// BuildingTypeConfigPostgresRepository relies on ON DELETE CASCADE to drop a
// config's options.
type BuildingTypeConfigPostgresRepository struct {
	db sqlDB
}

var _ interfaces.IBuildingTypeConfigRepository = (*BuildingTypeConfigPostgresRepository)(nil)

func NewBuildingTypeConfigPostgresRepository(db sqlDB) *BuildingTypeConfigPostgresRepository {
	return &BuildingTypeConfigPostgresRepository{db: db}
}

func (r *BuildingTypeConfigPostgresRepository) List(ctx context.Context, publishedOnly bool) ([]entities.BuildingTypeConfig, error) {
	query := `SELECT ` + configColumns + ` FROM calculator_configs`
	if publishedOnly {
		query += ` WHERE is_published = TRUE`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query configs: %w", err)
	}
	return collectRows(rows, scanConfig)
}

func (r *BuildingTypeConfigPostgresRepository) GetByID(ctx context.Context, id string) (entities.BuildingTypeConfig, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+configColumns+` FROM calculator_configs WHERE id = $1`, id)
	return zeroOnNoRows(scanConfig(row))
}

func (r *BuildingTypeConfigPostgresRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (entities.BuildingTypeConfig, error) {
	query := `SELECT ` + configColumns + ` FROM calculator_configs WHERE slug = $1`
	if publishedOnly {
		query += ` AND is_published = TRUE`
	}
	return zeroOnNoRows(scanConfig(r.db.QueryRowContext(ctx, query, slug)))
}

func (r *BuildingTypeConfigPostgresRepository) Create(ctx context.Context, c entities.BuildingTypeConfig) (entities.BuildingTypeConfig, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calculator_configs (`+configColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.Slug, c.BuildingType, c.BasePriceMin, c.BasePriceMax,
		c.DurationMinWeeks, c.DurationMaxWeeks, c.Notes, c.IsPublished, c.SortOrder,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return entities.BuildingTypeConfig{}, fmt.Errorf("failed to insert config: %w", err)
	}
	return c, nil
}

func (r *BuildingTypeConfigPostgresRepository) Update(ctx context.Context, c entities.BuildingTypeConfig) (entities.BuildingTypeConfig, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calculator_configs
		SET slug = $2, building_type = $3, base_price_min = $4, base_price_max = $5,
		    duration_min_weeks = $6, duration_max_weeks = $7, notes = $8,
		    is_published = $9, sort_order = $10, updated_at = $11
		WHERE id = $1`,
		c.ID, c.Slug, c.BuildingType, c.BasePriceMin, c.BasePriceMax,
		c.DurationMinWeeks, c.DurationMaxWeeks, c.Notes, c.IsPublished, c.SortOrder,
		c.UpdatedAt,
	)
	if err != nil {
		return entities.BuildingTypeConfig{}, fmt.Errorf("failed to update config: %w", err)
	}
	if ok, err := affected(res); err != nil || !ok {
		return entities.BuildingTypeConfig{}, err
	}
	return c, nil
}

func (r *BuildingTypeConfigPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calculator_configs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete config: %w", err)
	}
	return affected(res)
}

func scanConfig(s rowScanner) (entities.BuildingTypeConfig, error) {
	var c entities.BuildingTypeConfig
	err := s.Scan(
		&c.ID, &c.Slug, &c.BuildingType, &c.BasePriceMin, &c.BasePriceMax,
		&c.DurationMinWeeks, &c.DurationMaxWeeks, &c.Notes, &c.IsPublished, &c.SortOrder,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// zeroOnNoRows maps a missing row to the zero value, matching the DynamoDB repositories.
func zeroOnNoRows[T any](v T, err error) (T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
