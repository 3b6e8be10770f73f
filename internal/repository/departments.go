package repository

import (
	"context"
	"time"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

func (r *Repository) GetAllDepartments() ([]*domain.Department, error) {
	query := `
		SELECT id, name, created_at, version FROM departments ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]*domain.Department, 0)
	for rows.Next() {
		department := &domain.Department{}
		if err := rows.Scan(&department.ID, &department.Name, &department.CreatedAt, &department.Version); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *Repository) GetDepartmentByID(id int64) (*domain.Department, error) {
	query := `
		SELECT name, created_at, version FROM departments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	department := &domain.Department{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&department.Name, &department.CreatedAt, &department.Version); err != nil {
		return nil, err
	}

	return department, nil
}

func (r *Repository) CreateDepartment(department *domain.Department) error {
	query := `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, department.Name).Scan(&department.ID, &department.CreatedAt, &department.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateDepartment(department *domain.Department) error {
	query := `
		UPDATE departments
		SET
			name = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{department.Name, department.ID, department.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&department.CreatedAt, &department.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteDepartment(id int64) error {
	query := `
		DELETE FROM departments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
