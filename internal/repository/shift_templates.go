package repository

import (
	"context"
	"time"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

func (r *Repository) GetAllShiftTemplates() ([]*domain.ShiftTemplate, error) {
	query := `
		SELECT id, name, type, status, morning_in, morning_out, afternoon_in, afternoon_out,
			start_time, end_time, is_night_differential, color, created_at, version
		FROM shift_templates
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.ShiftTemplate, 0)
	for rows.Next() {
		st := &domain.ShiftTemplate{}
		dst := []any{&st.ID, &st.Name, &st.Type, &st.Status, &st.MorningIn, &st.MorningOut, &st.AfternoonIn, &st.AfternoonOut, &st.StartTime, &st.EndTime, &st.IsNightDifferential, &st.Color, &st.CreatedAt, &st.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		templates = append(templates, st)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repository) GetShiftTemplateByID(id int64) (*domain.ShiftTemplate, error) {
	query := `
		SELECT name, type, status, morning_in, morning_out, afternoon_in, afternoon_out,
			start_time, end_time, is_night_differential, color, created_at, version
		FROM shift_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	st := &domain.ShiftTemplate{
		ID: id,
	}

	dst := []any{&st.Name, &st.Type, &st.Status, &st.MorningIn, &st.MorningOut, &st.AfternoonIn, &st.AfternoonOut, &st.StartTime, &st.EndTime, &st.IsNightDifferential, &st.Color, &st.CreatedAt, &st.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return st, nil
}

func (r *Repository) CreateShiftTemplate(st *domain.ShiftTemplate) error {
	query := `
		INSERT INTO shift_templates (name, type, status, morning_in, morning_out, afternoon_in, afternoon_out,
			start_time, end_time, is_night_differential, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{st.Name, st.Type, st.Status, st.MorningIn, st.MorningOut, st.AfternoonIn, st.AfternoonOut, st.StartTime, st.EndTime, st.IsNightDifferential, st.Color}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&st.ID, &st.CreatedAt, &st.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShiftTemplate(st *domain.ShiftTemplate) error {
	query := `
		UPDATE shift_templates
		SET
			name = $1,
			type = $2,
			status = $3,
			morning_in = $4,
			morning_out = $5,
			afternoon_in = $6,
			afternoon_out = $7,
			start_time = $8,
			end_time = $9,
			is_night_differential = $10,
			color = $11,
			version = version + 1
		WHERE id = $12 AND version = $13
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{st.Name, st.Type, st.Status, st.MorningIn, st.MorningOut, st.AfternoonIn, st.AfternoonOut, st.StartTime, st.EndTime, st.IsNightDifferential, st.Color, st.ID, st.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&st.CreatedAt, &st.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftTemplate(id int64) error {
	query := `
		DELETE FROM shift_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
