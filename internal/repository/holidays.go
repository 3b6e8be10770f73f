package repository

import (
	"context"
	"time"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

func (r *Repository) GetAllHolidays() ([]*domain.Holiday, error) {
	query := `
		SELECT id, to_char(date, 'YYYY-MM-DD'), name, type, created_at, version
		FROM holidays
		ORDER BY date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		holiday := &domain.Holiday{}
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.Type, &holiday.CreatedAt, &holiday.Version); err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *Repository) GetHolidaysByRange(from, to string) ([]*domain.Holiday, error) {
	query := `
		SELECT id, to_char(date, 'YYYY-MM-DD'), name, type, created_at, version
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		holiday := &domain.Holiday{}
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.Type, &holiday.CreatedAt, &holiday.Version); err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *Repository) GetHolidayByID(id int64) (*domain.Holiday, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), name, type, created_at, version
		FROM holidays WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	holiday := &domain.Holiday{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&holiday.Date, &holiday.Name, &holiday.Type, &holiday.CreatedAt, &holiday.Version); err != nil {
		return nil, err
	}

	return holiday, nil
}

func (r *Repository) CreateHoliday(holiday *domain.Holiday) error {
	query := `
		INSERT INTO holidays (date, name, type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{holiday.Date, holiday.Name, holiday.Type}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&holiday.ID, &holiday.CreatedAt, &holiday.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateHoliday(holiday *domain.Holiday) error {
	query := `
		UPDATE holidays
		SET
			date = $1,
			name = $2,
			type = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{holiday.Date, holiday.Name, holiday.Type, holiday.ID, holiday.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&holiday.CreatedAt, &holiday.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteHoliday(id int64) error {
	query := `
		DELETE FROM holidays WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
