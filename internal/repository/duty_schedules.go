package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/phdate"
)

func (r *Repository) GetAllDutySchedules() ([]*domain.DutySchedule, error) {
	query := `
		SELECT id, public_id, name, department_id,
			to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
			month_schedule, is_finalized, created_at, version
		FROM duty_schedules
		ORDER BY month_schedule DESC, department_id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*domain.DutySchedule, 0)
	for rows.Next() {
		ds := &domain.DutySchedule{}
		dst := []any{&ds.ID, &ds.PublicID, &ds.Name, &ds.DepartmentID, &ds.StartDate, &ds.EndDate, &ds.MonthSchedule, &ds.IsFinalized, &ds.CreatedAt, &ds.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		schedules = append(schedules, ds)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) CreateDutySchedule(ds *domain.DutySchedule) error {
	query := `
		INSERT INTO duty_schedules (name, department_id, start_date, end_date, month_schedule)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, public_id, is_finalized, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{ds.Name, ds.DepartmentID, ds.StartDate, ds.EndDate, ds.MonthSchedule}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&ds.ID, &ds.PublicID, &ds.IsFinalized, &ds.CreatedAt, &ds.Version); err != nil {
		return err
	}

	ds.Entries = make([]domain.DutyScheduleEntry, 0)

	return nil
}

func (r *Repository) GetDutyScheduleByID(id int64) (*domain.DutySchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT public_id, name, department_id,
			to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
			month_schedule, is_finalized, created_at, version
		FROM duty_schedules WHERE id = $1
	`

	ds := &domain.DutySchedule{
		ID: id,
	}

	dst := []any{&ds.PublicID, &ds.Name, &ds.DepartmentID, &ds.StartDate, &ds.EndDate, &ds.MonthSchedule, &ds.IsFinalized, &ds.CreatedAt, &ds.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	entries, err := r.getScheduleEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	ds.Entries = entries

	return ds, nil
}

func (r *Repository) GetDutyScheduleByPublicID(publicID uuid.UUID) (*domain.DutySchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT id FROM duty_schedules WHERE public_id = $1`

	var id int64
	if err := r.dbpool.QueryRowContext(ctx, query, publicID).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetDutyScheduleByID(id)
}

func (r *Repository) getScheduleEntries(ctx context.Context, scheduleID int64) ([]domain.DutyScheduleEntry, error) {
	query := `
		SELECT
			e.id,
			e.date,
			e.holiday_id,
			a.id,
			a.employee_id,
			a.type,
			a.remarks,
			a.shift_template_id,
			a.leave_template_id,
			to_char(w.date, 'YYYY-MM-DD'),
			w.shift_template_id,
			w.hours_worked
		FROM duty_schedule_entries e
		LEFT JOIN duty_schedule_assignments a ON e.id = a.entry_id
		LEFT JOIN assignment_work_dates w ON a.id = w.assignment_id
		WHERE e.schedule_id = $1
		ORDER BY e.date, a.id, w.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entriesOrder := make([]int64, 0)
	entriesMap := make(map[int64]*domain.DutyScheduleEntry)
	assignmentsMap := make(map[int64]map[int64]*domain.EmployeeScheduleAssignment) // entryID -> assignmentID -> assignment
	assignmentsOrder := make(map[int64][]int64)

	for rows.Next() {
		var row struct {
			EntryID   int64
			Date      time.Time
			HolidayID sql.NullInt64

			AssignmentID    sql.NullInt64
			EmployeeID      sql.NullInt64
			Type            sql.NullString
			Remarks         sql.NullString
			ShiftTemplateID sql.NullInt64
			LeaveTemplateID sql.NullInt64

			WorkDate    sql.NullString
			WorkShiftID sql.NullInt64
			WorkHours   sql.NullString
		}

		dst := []any{
			&row.EntryID,
			&row.Date,
			&row.HolidayID,
			&row.AssignmentID,
			&row.EmployeeID,
			&row.Type,
			&row.Remarks,
			&row.ShiftTemplateID,
			&row.LeaveTemplateID,
			&row.WorkDate,
			&row.WorkShiftID,
			&row.WorkHours,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		entry, exists := entriesMap[row.EntryID]
		if !exists {
			entry = &domain.DutyScheduleEntry{
				Date:              phdate.FormatDatePH(row.Date),
				EmployeeSchedules: make([]domain.EmployeeScheduleAssignment, 0),
			}
			if row.HolidayID.Valid {
				holidayID := row.HolidayID.Int64
				entry.HolidayID = &holidayID
			}
			entriesMap[row.EntryID] = entry
			entriesOrder = append(entriesOrder, row.EntryID)
			assignmentsMap[row.EntryID] = make(map[int64]*domain.EmployeeScheduleAssignment)
		}

		if !row.AssignmentID.Valid {
			// An entry with no assignments, possible after a partial
			// delete.
			continue
		}

		assignment, exists := assignmentsMap[row.EntryID][row.AssignmentID.Int64]
		if !exists {
			assignment = &domain.EmployeeScheduleAssignment{
				Employee: domain.RefByID[domain.Employee](row.EmployeeID.Int64),
				Type:     domain.AssignmentType(row.Type.String),
				Remarks:  row.Remarks.String,
			}
			if row.ShiftTemplateID.Valid {
				ref := domain.RefByID[domain.ShiftTemplate](row.ShiftTemplateID.Int64)
				assignment.ShiftTemplate = &ref
			}
			if row.LeaveTemplateID.Valid {
				ref := domain.RefByID[domain.LeaveTemplate](row.LeaveTemplateID.Int64)
				assignment.LeaveTemplate = &ref
			}
			assignmentsMap[row.EntryID][row.AssignmentID.Int64] = assignment
			assignmentsOrder[row.EntryID] = append(assignmentsOrder[row.EntryID], row.AssignmentID.Int64)
		}

		if !row.WorkDate.Valid {
			continue
		}

		wd := domain.CompensatoryWorkDate{
			Date:        row.WorkDate.String,
			HoursWorked: row.WorkHours.String,
		}
		if row.WorkShiftID.Valid {
			wd.ShiftTemplate = domain.RefByID[domain.ShiftTemplate](row.WorkShiftID.Int64)
		}
		assignment.CompensatoryWorkDates = append(assignment.CompensatoryWorkDates, wd)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]domain.DutyScheduleEntry, 0, len(entriesOrder))
	for _, entryID := range entriesOrder {
		entry := entriesMap[entryID]
		for _, assignmentID := range assignmentsOrder[entryID] {
			entry.EmployeeSchedules = append(entry.EmployeeSchedules, *assignmentsMap[entryID][assignmentID])
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

// ReplaceEntries swaps the schedule's entry set atomically and bumps the
// schedule version. The caller passes entries already normalized by the
// roster package.
func (r *Repository) ReplaceEntries(ds *domain.DutySchedule, entries []domain.DutyScheduleEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE duty_schedules
		SET version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`
	if err := tx.QueryRowContext(ctx, query, ds.ID, ds.Version).Scan(&ds.Version); err != nil {
		return err
	}

	query = `DELETE FROM duty_schedule_entries WHERE schedule_id = $1`
	if _, err := tx.ExecContext(ctx, query, ds.ID); err != nil {
		return err
	}

	for _, entry := range entries {
		utcDate, err := phdate.ConvertDatePHToUTCISO(entry.Date)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO duty_schedule_entries (schedule_id, date, holiday_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		var entryID int64
		if err := tx.QueryRowContext(ctx, query, ds.ID, utcDate, entry.HolidayID).Scan(&entryID); err != nil {
			return err
		}

		for _, a := range entry.EmployeeSchedules {
			query = `
				INSERT INTO duty_schedule_assignments (entry_id, employee_id, type, remarks, shift_template_id, leave_template_id)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`

			var shiftTemplateID, leaveTemplateID any
			if a.ShiftTemplate != nil {
				shiftTemplateID = a.ShiftTemplate.Identity()
			}
			if a.LeaveTemplate != nil {
				leaveTemplateID = a.LeaveTemplate.Identity()
			}

			var assignmentID int64
			args := []any{entryID, a.Employee.Identity(), a.Type, a.Remarks, shiftTemplateID, leaveTemplateID}
			if err := tx.QueryRowContext(ctx, query, args...).Scan(&assignmentID); err != nil {
				return err
			}

			for _, wd := range a.CompensatoryWorkDates {
				query = `
					INSERT INTO assignment_work_dates (assignment_id, date, shift_template_id, hours_worked)
					VALUES ($1, $2, $3, $4)
				`

				var workShiftID any
				if wd.ShiftTemplate.Identity() != 0 {
					workShiftID = wd.ShiftTemplate.Identity()
				}
				if _, err := tx.ExecContext(ctx, query, assignmentID, wd.Date, workShiftID, wd.HoursWorked); err != nil {
					return err
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	ds.Entries = entries

	return nil
}

func (r *Repository) FinalizeDutySchedule(ds *domain.DutySchedule) error {
	query := `
		UPDATE duty_schedules
		SET
			is_finalized = TRUE,
			version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, ds.ID, ds.Version).Scan(&ds.Version); err != nil {
		return err
	}
	ds.IsFinalized = true

	return nil
}

func (r *Repository) DeleteDutySchedule(id int64) error {
	query := `
		DELETE FROM duty_schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// CheckScheduleExists reports whether a department already has a
// schedule for the month.
func (r *Repository) CheckScheduleExists(departmentID int64, monthSchedule string) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM duty_schedules WHERE department_id = $1 AND month_schedule = $2)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, departmentID, monthSchedule).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
