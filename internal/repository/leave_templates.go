package repository

import (
	"context"
	"time"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

func (r *Repository) GetAllLeaveTemplates() ([]*domain.LeaveTemplate, error) {
	query := `
		SELECT id, name, is_compensatory_time_off, created_at, version
		FROM leave_templates
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.LeaveTemplate, 0)
	for rows.Next() {
		lt := &domain.LeaveTemplate{}
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.IsCompensatoryTimeOff, &lt.CreatedAt, &lt.Version); err != nil {
			return nil, err
		}
		templates = append(templates, lt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repository) GetLeaveTemplateByID(id int64) (*domain.LeaveTemplate, error) {
	query := `
		SELECT name, is_compensatory_time_off, created_at, version
		FROM leave_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	lt := &domain.LeaveTemplate{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&lt.Name, &lt.IsCompensatoryTimeOff, &lt.CreatedAt, &lt.Version); err != nil {
		return nil, err
	}

	return lt, nil
}

func (r *Repository) CreateLeaveTemplate(lt *domain.LeaveTemplate) error {
	query := `
		INSERT INTO leave_templates (name, is_compensatory_time_off)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, lt.Name, lt.IsCompensatoryTimeOff).Scan(&lt.ID, &lt.CreatedAt, &lt.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateLeaveTemplate(lt *domain.LeaveTemplate) error {
	query := `
		UPDATE leave_templates
		SET
			name = $1,
			is_compensatory_time_off = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{lt.Name, lt.IsCompensatoryTimeOff, lt.ID, lt.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&lt.CreatedAt, &lt.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteLeaveTemplate(id int64) error {
	query := `
		DELETE FROM leave_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
