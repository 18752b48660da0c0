package repository

import (
	"context"
	"fmt"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/usecase/interfaces"
)

const leadColumns = `id, name, phone, email, building_type, area_m2, region, message,
	meeting_preference, source, status, created_at`

type LeadPostgresRepository struct {
	db sqlDB
}

var _ interfaces.ILeadRepository = (*LeadPostgresRepository)(nil)

func NewLeadPostgresRepository(db sqlDB) *LeadPostgresRepository {
	return &LeadPostgresRepository{db: db}
}

func (r *LeadPostgresRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leads (`+leadColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		l.ID, l.Name, l.Phone, l.Email, l.BuildingType, l.AreaM2, l.Region, l.Message,
		l.MeetingPreference, string(l.Source), string(l.Status), l.CreatedAt,
	)
	if err != nil {
		return entities.Lead{}, fmt.Errorf("failed to insert lead: %w", err)
	}
	return l, nil
}

func (r *LeadPostgresRepository) List(ctx context.Context) ([]entities.Lead, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	return collectRows(rows, scanLead)
}

func (r *LeadPostgresRepository) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE leads SET status = $2 WHERE id = $1 RETURNING `+leadColumns, id, string(status))
	return zeroOnNoRows(scanLead(row))
}

func (r *LeadPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete lead: %w", err)
	}
	return affected(res)
}

func scanLead(s rowScanner) (entities.Lead, error) {
	var (
		l              entities.Lead
		source, status string
	)
	err := s.Scan(
		&l.ID, &l.Name, &l.Phone, &l.Email, &l.BuildingType, &l.AreaM2, &l.Region, &l.Message,
		&l.MeetingPreference, &source, &status, &l.CreatedAt,
	)
	l.Source = entities.LeadSource(source)
	l.Status = entities.LeadStatus(status)
	return l, err
}
