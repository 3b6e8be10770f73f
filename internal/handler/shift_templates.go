package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

func (h *Handler) GetAllShiftTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repository.GetAllShiftTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Fetched shift templates.", templates)
}

func (h *Handler) CreateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name" validate:"required"`
		Type   string `json:"type" validate:"required,oneof=standard shifting"`
		Status string `json:"status" validate:"omitempty,oneof=off"`

		MorningIn    string `json:"morningIn"`
		MorningOut   string `json:"morningOut"`
		AfternoonIn  string `json:"afternoonIn"`
		AfternoonOut string `json:"afternoonOut"`

		StartTime           string `json:"startTime"`
		EndTime             string `json:"endTime"`
		IsNightDifferential bool   `json:"isNightDifferential"`

		Color string `json:"color"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	st := &domain.ShiftTemplate{
		Name:                req.Name,
		Type:                domain.ShiftTemplateType(req.Type),
		Status:              req.Status,
		MorningIn:           req.MorningIn,
		MorningOut:          req.MorningOut,
		AfternoonIn:         req.AfternoonIn,
		AfternoonOut:        req.AfternoonOut,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		IsNightDifferential: req.IsNightDifferential,
		Color:               req.Color,
	}

	if err := h.repository.CreateShiftTemplate(st); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "shift_templates_name_key":
			h.badRequest(w, r, errors.New("shift template name is already taken"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Shift template created.", st)
}

func (h *Handler) GetShiftTemplate(w http.ResponseWriter, r *http.Request) {
	st := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)
	h.successResponse(w, r, "Fetched shift template.", st)
}

func (h *Handler) UpdateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   *string `json:"name"`
		Status *string `json:"status" validate:"omitempty,oneof=off"`

		MorningIn    *string `json:"morningIn"`
		MorningOut   *string `json:"morningOut"`
		AfternoonIn  *string `json:"afternoonIn"`
		AfternoonOut *string `json:"afternoonOut"`

		StartTime           *string `json:"startTime"`
		EndTime             *string `json:"endTime"`
		IsNightDifferential *bool   `json:"isNightDifferential"`

		Color *string `json:"color"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	st := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Status != nil {
		st.Status = *req.Status
	}
	if req.MorningIn != nil {
		st.MorningIn = *req.MorningIn
	}
	if req.MorningOut != nil {
		st.MorningOut = *req.MorningOut
	}
	if req.AfternoonIn != nil {
		st.AfternoonIn = *req.AfternoonIn
	}
	if req.AfternoonOut != nil {
		st.AfternoonOut = *req.AfternoonOut
	}
	if req.StartTime != nil {
		st.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		st.EndTime = *req.EndTime
	}
	if req.IsNightDifferential != nil {
		st.IsNightDifferential = *req.IsNightDifferential
	}
	if req.Color != nil {
		st.Color = *req.Color
	}

	if err := h.repository.UpdateShiftTemplate(st); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "shift_templates_name_key":
			h.badRequest(w, r, errors.New("shift template name is already taken"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Failed to update shift template, please try again.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Shift template updated.", st)
}

func (h *Handler) DeleteShiftTemplate(w http.ResponseWriter, r *http.Request) {
	st := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	if err := h.repository.DeleteShiftTemplate(st.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Shift template deleted.", nil)
}
