package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/phdate"
	"github.com/caremetrix/duty-roster/backend/internal/roster"
)

// loadCatalog snapshots the reference data the roster engine resolves
// identities against. Holidays and templates are global; employees are
// limited to the schedule's department.
func (h *Handler) loadCatalog(departmentID int64) (*roster.Catalog, error) {
	employees, err := h.repository.GetEmployeesByDepartment(departmentID)
	if err != nil {
		return nil, err
	}
	shiftTemplates, err := h.repository.GetAllShiftTemplates()
	if err != nil {
		return nil, err
	}
	leaveTemplates, err := h.repository.GetAllLeaveTemplates()
	if err != nil {
		return nil, err
	}
	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		return nil, err
	}

	return &roster.Catalog{
		Employees:      employees,
		ShiftTemplates: shiftTemplates,
		LeaveTemplates: leaveTemplates,
		Holidays:       holidays,
	}, nil
}

func (h *Handler) GetAllDutySchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.repository.GetAllDutySchedules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Fetched duty schedules.", schedules)
}

func (h *Handler) CreateDutySchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DepartmentID  int64  `json:"departmentID" validate:"required"`
		MonthSchedule string `json:"monthSchedule" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, endDate, err := phdate.MonthRange(req.MonthSchedule)
	if err != nil {
		h.badRequest(w, r, errors.New("month must be formatted as YYYY-MM"))
		return
	}

	department, err := h.repository.GetDepartmentByID(req.DepartmentID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Department not found.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	monthLabel, err := phdate.MonthLabel(req.MonthSchedule)
	if err != nil {
		h.badRequest(w, r, errors.New("month must be formatted as YYYY-MM"))
		return
	}

	exists, err := h.repository.CheckScheduleExists(department.ID, req.MonthSchedule)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.badRequest(w, r, errors.New("this department already has a schedule for this month"))
		return
	}

	ds := &domain.DutySchedule{
		Name:          fmt.Sprintf("%s Duty Schedule - %s", department.Name, monthLabel),
		DepartmentID:  department.ID,
		StartDate:     startDate,
		EndDate:       endDate,
		MonthSchedule: req.MonthSchedule,
	}

	if err := h.repository.CreateDutySchedule(ds); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "duty_schedules_department_id_month_schedule_key":
			h.badRequest(w, r, errors.New("this department already has a schedule for this month"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Duty schedule created.", ds)
}

func (h *Handler) GetDutySchedule(w http.ResponseWriter, r *http.Request) {
	ds := r.Context().Value(DutyScheduleCtx).(*domain.DutySchedule)
	h.successResponse(w, r, "Fetched duty schedule.", ds)
}

// GetDutyScheduleByPublicID serves the shareable form of a schedule
// link, looked up by its UUID instead of the serial ID.
func (h *Handler) GetDutyScheduleByPublicID(w http.ResponseWriter, r *http.Request) {
	publicID, err := uuid.Parse(chi.URLParam(r, "publicID"))
	if err != nil {
		h.errorResponse(w, r, "Invalid schedule link.")
		return
	}

	ds, err := h.repository.GetDutyScheduleByPublicID(publicID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Duty schedule not found.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Fetched duty schedule.", ds)
}

func (h *Handler) DeleteDutySchedule(w http.ResponseWriter, r *http.Request) {
	ds := r.Context().Value(DutyScheduleCtx).(*domain.DutySchedule)

	if err := h.repository.DeleteDutySchedule(ds.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Duty schedule deleted.", nil)
}

// ReplaceDutyScheduleEntries swaps the whole working copy, the save
// path for bulk edits. Every incoming assignment is validated and
// re-committed through the entry store, so the stored data honors the
// one-assignment-per-employee invariant no matter what the client sent.
func (h *Handler) ReplaceDutyScheduleEntries(w http.ResponseWriter, r *http.Request) {
	ds := r.Context().Value(DutyScheduleCtx).(*domain.DutySchedule)

	var req struct {
		Entries []domain.DutyScheduleEntry `json:"entries"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	cat, err := h.loadCatalog(ds.DepartmentID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// Padded calendar grids submit adjacent-month days; those entries
	// are trimmed rather than failing the save.
	var entries []domain.DutyScheduleEntry
	for _, entry := range roster.FilterEntriesByRange(req.Entries, ds.StartDate, ds.EndDate) {
		for _, a := range entry.EmployeeSchedules {
			if result := roster.ValidateAssignment(a, entry.Date, cat); !result.Valid() {
				h.validationErrorResponse(w, r, fmt.Sprintf("Invalid assignment on %s.", entry.Date), result.Errors)
				return
			}
			entries = roster.UpsertAssignment(entries, entry.Date, a, cat)
		}
	}

	if err := h.repository.ReplaceEntries(ds, entries); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "The schedule was modified by someone else, please reload and try again.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Schedule entries saved.", ds)
}

// UpsertDutyScheduleAssignment commits one employee-date assignment.
func (h *Handler) UpsertDutyScheduleAssignment(w http.ResponseWriter, r *http.Request) {
	ds := r.Context().Value(DutyScheduleCtx).(*domain.DutySchedule)

	var req struct {
		Date       string                            `json:"date" validate:"required"`
		Assignment domain.EmployeeScheduleAssignment `json:"assignment"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Date < ds.StartDate || req.Date > ds.EndDate {
		h.badRequest(w, r, errors.New("date is outside the schedule month"))
		return
	}

	cat, err := h.loadCatalog(ds.DepartmentID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if result := roster.ValidateAssignment(req.Assignment, req.Date, cat); !result.Valid() {
		h.validationErrorResponse(w, r, "The assignment is incomplete.", result.Errors)
		return
	}

	// CTO work dates also have to predate the leave and not repeat.
	for i, wd := range req.Assignment.CompensatoryWorkDates {
		if err := roster.CheckCompensatoryWorkDate(wd.Date, req.Date, req.Assignment.CompensatoryWorkDates[:i]); err != nil {
			h.validationErrorResponse(w, r, "The assignment is incomplete.", map[string]string{
				"compensatoryWorkDates": err.Error(),
			})
			return
		}
	}

	entries := roster.UpsertAssignment(ds.Entries, req.Date, req.Assignment, cat)

	if err := h.repository.ReplaceEntries(ds, entries); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "The schedule was modified by someone else, please reload and try again.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Assignment saved.", ds)
}

func (h *Handler) RemoveDutyScheduleAssignment(w http.ResponseWriter, r *http.Request) {
	ds := r.Context().Value(DutyScheduleCtx).(*domain.DutySchedule)

	date := chi.URLParam(r, "date")
	employeeIDParam := chi.URLParam(r, "employeeID")
	employeeID, err := strconv.ParseInt(employeeIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "Invalid employee ID.")
		return
	}

	if roster.FindAssignment(roster.FindEntry(ds.Entries, date), employeeID) == nil {
		h.errorResponse(w, r, "No assignment found for this employee on this date.")
		return
	}

	entries := roster.RemoveAssignment(ds.Entries, date, employeeID)

	if err := h.repository.ReplaceEntries(ds, entries); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "The schedule was modified by someone else, please reload and try again.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Assignment removed.", ds)
}

// GetDutyScheduleDay renders one date as display groups, plus the
// holiday marker for the day header.
func (h *Handler) GetDutyScheduleDay(w http.ResponseWriter, r *http.Request) {
	ds := r.Context().Value(DutyScheduleCtx).(*domain.DutySchedule)
	date := chi.URLParam(r, "date")

	cat, err := h.loadCatalog(ds.DepartmentID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	groups := roster.ProjectDate(ds.Entries, date, cat)

	day := map[string]any{
		"date":   date,
		"groups": groups,
	}
	if holiday := cat.HolidayOn(date); holiday != nil {
		day["holiday"] = map[string]any{
			"name":         holiday.Name,
			"type":         holiday.Type,
			"abbreviation": holiday.Abbreviation(),
		}
	}

	h.successResponse(w, r, "Fetched day view.", day)
}

func (h *Handler) GetDutyScheduleSummary(w http.ResponseWriter, r *http.Request) {
	ds := r.Context().Value(DutyScheduleCtx).(*domain.DutySchedule)

	days, err := phdate.MonthDays(ds.MonthSchedule)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cat, err := h.loadCatalog(ds.DepartmentID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	summary := roster.BuildSummary(days, ds.Entries, cat)

	h.successResponse(w, r, "Fetched schedule summary.", summary)
}

// CopyDutyScheduleEntries propagates assignments from one date onto
// others under the eligibility rules. Ineligible copies are skipped
// silently; the response reports how many assignments landed.
func (h *Handler) CopyDutyScheduleEntries(w http.ResponseWriter, r *http.Request) {
	ds := r.Context().Value(DutyScheduleCtx).(*domain.DutySchedule)

	var req roster.CopyRequest
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.SourceDate == "" || len(req.TargetDates) == 0 {
		h.badRequest(w, r, errors.New("sourceDate and targetDates are required"))
		return
	}

	for _, target := range req.TargetDates {
		if target < ds.StartDate || target > ds.EndDate {
			h.badRequest(w, r, fmt.Errorf("target date %s is outside the schedule month", target))
			return
		}
	}

	cat, err := h.loadCatalog(ds.DepartmentID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	engine := roster.NewCopyEngine(cat, h.weekdayRules())
	entries, copied := engine.Apply(ds.Entries, req)

	if copied > 0 {
		if err := h.repository.ReplaceEntries(ds, entries); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "The schedule was modified by someone else, please reload and try again.")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	}

	h.successResponse(w, r, fmt.Sprintf("Copied %d assignments.", copied), map[string]any{
		"copied":   copied,
		"schedule": ds,
	})
}

// FinalizeDutySchedule locks the schedule. HR re-enters their password
// as an explicit sign-off, and the department's managers are notified.
func (h *Handler) FinalizeDutySchedule(w http.ResponseWriter, r *http.Request) {
	ds := r.Context().Value(DutyScheduleCtx).(*domain.DutySchedule)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if ds.IsFinalized {
		h.errorResponse(w, r, "This schedule has already been finalized.")
		return
	}

	var req struct {
		Password string `json:"password" validate:"required"`
		Reason   string `json:"reason" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(myInfo.PasswordHash), []byte(req.Password)); err != nil {
		h.errorResponse(w, r, "Incorrect password.")
		return
	}

	department, err := h.repository.GetDepartmentByID(ds.DepartmentID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.FinalizeDutySchedule(ds); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "The schedule was modified by someone else, please reload and try again.")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	managers, err := h.repository.GetUsersByRole(domain.RoleManager)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	for _, manager := range managers {
		if !manager.IsActive {
			continue
		}

		mailMessage := domain.MailMessage{
			Type: "schedule_finalized",
			To:   manager.Email,
			Data: domain.ScheduleFinalizedMailData{
				ScheduleName:   ds.Name,
				DepartmentName: department.Name,
				ApprovedBy:     myInfo.FullName,
				Reason:         req.Reason,
			},
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
		err = h.mailChannel.PublishWithContext(
			ctx,
			"",
			"email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		)
		cancel()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "Schedule finalized.", ds)
}
