package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

func (h *Handler) GetAllLeaveTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repository.GetAllLeaveTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Fetched leave templates.", templates)
}

func (h *Handler) CreateLeaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                  string `json:"name" validate:"required"`
		IsCompensatoryTimeOff bool   `json:"isCompensatoryTimeOff"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	lt := &domain.LeaveTemplate{
		Name:                  req.Name,
		IsCompensatoryTimeOff: req.IsCompensatoryTimeOff,
	}

	if err := h.repository.CreateLeaveTemplate(lt); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "leave_templates_name_key":
			h.badRequest(w, r, errors.New("leave template name is already taken"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Leave template created.", lt)
}

func (h *Handler) GetLeaveTemplate(w http.ResponseWriter, r *http.Request) {
	lt := r.Context().Value(LeaveTemplateCtx).(*domain.LeaveTemplate)
	h.successResponse(w, r, "Fetched leave template.", lt)
}

func (h *Handler) UpdateLeaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                  *string `json:"name"`
		IsCompensatoryTimeOff *bool   `json:"isCompensatoryTimeOff"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	lt := r.Context().Value(LeaveTemplateCtx).(*domain.LeaveTemplate)

	if req.Name != nil {
		lt.Name = *req.Name
	}
	if req.IsCompensatoryTimeOff != nil {
		lt.IsCompensatoryTimeOff = *req.IsCompensatoryTimeOff
	}

	if err := h.repository.UpdateLeaveTemplate(lt); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "leave_templates_name_key":
			h.badRequest(w, r, errors.New("leave template name is already taken"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Failed to update leave template, please try again.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Leave template updated.", lt)
}

func (h *Handler) DeleteLeaveTemplate(w http.ResponseWriter, r *http.Request) {
	lt := r.Context().Value(LeaveTemplateCtx).(*domain.LeaveTemplate)

	if err := h.repository.DeleteLeaveTemplate(lt.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Leave template deleted.", nil)
}
