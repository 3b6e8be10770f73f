package roster

import (
	"errors"
	"fmt"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

// ValidationResult carries per-field messages for one assignment. An
// empty map means the assignment may be committed to the entry store.
type ValidationResult struct {
	Errors map[string]string `json:"errors"`
}

func (v ValidationResult) Valid() bool {
	return len(v.Errors) == 0
}

// ValidateAssignment runs the pre-commit checks for one assignment on
// one date. Failures are field messages, never errors: the caller shows
// them and skips the store mutation.
func ValidateAssignment(a domain.EmployeeScheduleAssignment, date string, cat *Catalog) ValidationResult {
	result := ValidationResult{Errors: make(map[string]string)}

	if a.Employee.Identity() == 0 {
		result.Errors["employee"] = "Employee is required."
	}

	if a.Type == "" {
		result.Errors["type"] = "Type is required."
		return result
	}

	switch a.Type {
	case domain.AssignmentDuty:
		if a.ShiftTemplate == nil || a.ShiftTemplate.Identity() == 0 {
			result.Errors["shiftTemplate"] = "Shift is required."
		}
	case domain.AssignmentLeave:
		if a.LeaveTemplate == nil || a.LeaveTemplate.Identity() == 0 {
			result.Errors["leaveTemplate"] = "Leave type is required."
			break
		}
		lt := cat.ResolveLeaveTemplate(a.LeaveTemplate)
		if lt != nil && lt.IsCompensatoryTimeOff {
			if msg := validateCompensatoryWorkDates(a.CompensatoryWorkDates); msg != "" {
				result.Errors["compensatoryWorkDates"] = msg
			}
		}
	case domain.AssignmentHolidayOff:
		if !cat.IsHoliday(date) {
			result.Errors["holiday"] = "Holiday Off is only allowed on a holiday."
		}
	}

	return result
}

// validateCompensatoryWorkDates requires at least one row and, for each
// row, both a date and a shift. The first incomplete row decides the
// message; wording is singular when there is exactly one row.
func validateCompensatoryWorkDates(workDates []domain.CompensatoryWorkDate) string {
	if len(workDates) == 0 {
		return "At least one work date is required."
	}

	single := len(workDates) == 1
	for i, wd := range workDates {
		if wd.Date == "" {
			if single {
				return "Work date is required."
			}
			return fmt.Sprintf("Work date #%d is required.", i+1)
		}
		if wd.ShiftTemplate.Identity() == 0 && wd.ShiftTemplate.Record == nil {
			if single {
				return "Work shift is required."
			}
			return fmt.Sprintf("Work shift for date #%d is required.", i+1)
		}
	}
	return ""
}

var (
	ErrWorkDateNotBeforeLeave = errors.New("work date must be before the leave date")
	ErrWorkDateDuplicate      = errors.New("work date is already added")
)

// CheckCompensatoryWorkDate is the row-level guard applied while the
// work-date list is being built: a work date must fall strictly before
// the leave date and must not repeat a date already in the list. Dates
// are canonical "YYYY-MM-DD", so ordering is string comparison.
func CheckCompensatoryWorkDate(workDate, leaveDate string, existing []domain.CompensatoryWorkDate) error {
	if leaveDate != "" && workDate >= leaveDate {
		return ErrWorkDateNotBeforeLeave
	}
	for _, wd := range existing {
		if wd.Date == workDate {
			return ErrWorkDateDuplicate
		}
	}
	return nil
}
