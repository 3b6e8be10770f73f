package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

func (h *Handler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.repository.GetAllDepartments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Fetched departments.", departments)
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	department := &domain.Department{
		Name: req.Name,
	}

	if err := h.repository.CreateDepartment(department); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "departments_name_key":
			h.badRequest(w, r, errors.New("department name is already taken"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Department created.", department)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	department := r.Context().Value(DepartmentCtx).(*domain.Department)
	h.successResponse(w, r, "Fetched department.", department)
}

func (h *Handler) GetDepartmentEmployees(w http.ResponseWriter, r *http.Request) {
	department := r.Context().Value(DepartmentCtx).(*domain.Department)

	employees, err := h.repository.GetEmployeesByDepartment(department.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Fetched department employees.", employees)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name *string `json:"name"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	department := r.Context().Value(DepartmentCtx).(*domain.Department)

	if req.Name != nil {
		department.Name = *req.Name
	}

	if err := h.repository.UpdateDepartment(department); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "departments_name_key":
			h.badRequest(w, r, errors.New("department name is already taken"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Failed to update department, please try again.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Department updated.", department)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	department := r.Context().Value(DepartmentCtx).(*domain.Department)

	if err := h.repository.DeleteDepartment(department.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Department deleted.", nil)
}
