package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/phdate"
)

func (h *Handler) GetAllHolidays(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	var holidays []*domain.Holiday
	var err error
	if from != "" || to != "" {
		if _, perr := phdate.ParseDatePH(from); perr != nil {
			h.badRequest(w, r, errors.New("from must be formatted as YYYY-MM-DD"))
			return
		}
		if _, perr := phdate.ParseDatePH(to); perr != nil {
			h.badRequest(w, r, errors.New("to must be formatted as YYYY-MM-DD"))
			return
		}
		holidays, err = h.repository.GetHolidaysByRange(from, to)
	} else {
		holidays, err = h.repository.GetAllHolidays()
	}
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Fetched holidays.", holidays)
}

func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date" validate:"required"`
		Name string `json:"name" validate:"required"`
		Type string `json:"type" validate:"required,oneof=regular special_non_working special_working local"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := phdate.ParseDatePH(req.Date); err != nil {
		h.badRequest(w, r, errors.New("date must be formatted as YYYY-MM-DD"))
		return
	}

	holiday := &domain.Holiday{
		Date: req.Date,
		Name: req.Name,
		Type: domain.HolidayType(req.Type),
	}

	if err := h.repository.CreateHoliday(holiday); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "holidays_date_key":
			h.badRequest(w, r, errors.New("a holiday already exists on this date"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Holiday created.", holiday)
}

func (h *Handler) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date *string `json:"date"`
		Name *string `json:"name"`
		Type *string `json:"type" validate:"omitempty,oneof=regular special_non_working special_working local"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	holiday := r.Context().Value(HolidayCtx).(*domain.Holiday)

	if req.Date != nil {
		if _, err := phdate.ParseDatePH(*req.Date); err != nil {
			h.badRequest(w, r, errors.New("date must be formatted as YYYY-MM-DD"))
			return
		}
		holiday.Date = *req.Date
	}
	if req.Name != nil {
		holiday.Name = *req.Name
	}
	if req.Type != nil {
		holiday.Type = domain.HolidayType(*req.Type)
	}

	if err := h.repository.UpdateHoliday(holiday); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "holidays_date_key":
			h.badRequest(w, r, errors.New("a holiday already exists on this date"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Failed to update holiday, please try again.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Holiday updated.", holiday)
}

func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	holiday := r.Context().Value(HolidayCtx).(*domain.Holiday)

	if err := h.repository.DeleteHoliday(holiday.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Holiday deleted.", nil)
}
