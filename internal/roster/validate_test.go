package roster_test

import (
	"errors"
	"testing"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/roster"
)

func workDate(date string, shiftID int64) domain.CompensatoryWorkDate {
	return domain.CompensatoryWorkDate{
		Date:          date,
		ShiftTemplate: domain.RefByID[domain.ShiftTemplate](shiftID),
	}
}

func TestValidateAssignment(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name      string
		a         domain.EmployeeScheduleAssignment
		date      string
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing employee",
			a:         domain.EmployeeScheduleAssignment{Type: domain.AssignmentDuty},
			date:      "2025-06-02",
			wantField: "employee",
			wantMsg:   "Employee is required.",
		},
		{
			name:      "missing type",
			a:         domain.EmployeeScheduleAssignment{Employee: domain.RefByID[domain.Employee](empCruz)},
			date:      "2025-06-02",
			wantField: "type",
			wantMsg:   "Type is required.",
		},
		{
			name: "duty without shift",
			a: domain.EmployeeScheduleAssignment{
				Employee: domain.RefByID[domain.Employee](empCruz),
				Type:     domain.AssignmentDuty,
			},
			date:      "2025-06-02",
			wantField: "shiftTemplate",
			wantMsg:   "Shift is required.",
		},
		{
			name: "leave without template",
			a: domain.EmployeeScheduleAssignment{
				Employee: domain.RefByID[domain.Employee](empCruz),
				Type:     domain.AssignmentLeave,
			},
			date:      "2025-06-02",
			wantField: "leaveTemplate",
			wantMsg:   "Leave type is required.",
		},
		{
			name:      "cto without work dates",
			a:         leaveAssignment(empCruz, leaveCTO),
			date:      "2025-06-02",
			wantField: "compensatoryWorkDates",
			wantMsg:   "At least one work date is required.",
		},
		{
			name:      "cto single row missing date uses singular wording",
			a:         leaveAssignment(empCruz, leaveCTO, workDate("", shiftMorning)),
			date:      "2025-06-02",
			wantField: "compensatoryWorkDates",
			wantMsg:   "Work date is required.",
		},
		{
			name:      "cto single row missing shift uses singular wording",
			a:         leaveAssignment(empCruz, leaveCTO, domain.CompensatoryWorkDate{Date: "2025-05-20"}),
			date:      "2025-06-02",
			wantField: "compensatoryWorkDates",
			wantMsg:   "Work shift is required.",
		},
		{
			name: "cto reports first incomplete row index",
			a: leaveAssignment(empCruz, leaveCTO,
				workDate("2025-05-19", shiftMorning),
				workDate("", shiftMorning),
			),
			date:      "2025-06-02",
			wantField: "compensatoryWorkDates",
			wantMsg:   "Work date #2 is required.",
		},
		{
			name: "cto reports missing shift with row index",
			a: leaveAssignment(empCruz, leaveCTO,
				workDate("2025-05-19", shiftMorning),
				domain.CompensatoryWorkDate{Date: "2025-05-20"},
			),
			date:      "2025-06-02",
			wantField: "compensatoryWorkDates",
			wantMsg:   "Work shift for date #2 is required.",
		},
		{
			name:      "holiday off on a working day",
			a:         holidayOffAssignment(empCruz),
			date:      "2025-06-02",
			wantField: "holiday",
			wantMsg:   "Holiday Off is only allowed on a holiday.",
		},
	}

	for _, tt := range tests {
		result := roster.ValidateAssignment(tt.a, tt.date, cat)
		if result.Valid() {
			t.Errorf("%s: expected invalid", tt.name)
			continue
		}
		if got := result.Errors[tt.wantField]; got != tt.wantMsg {
			t.Errorf("%s: errors[%q] = %q, want %q (all: %v)", tt.name, tt.wantField, got, tt.wantMsg, result.Errors)
		}
	}
}

func TestValidateAssignmentAccepts(t *testing.T) {
	cat := testCatalog()

	valid := []struct {
		name string
		a    domain.EmployeeScheduleAssignment
		date string
	}{
		{"duty", dutyAssignment(empCruz, shiftMorning), "2025-06-02"},
		{"plain leave", leaveAssignment(empCruz, leaveSick), "2025-06-02"},
		{"cto with complete rows", leaveAssignment(empCruz, leaveCTO, workDate("2025-05-20", shiftMorning)), "2025-06-02"},
		{"off", offAssignment(empCruz), "2025-06-02"},
		{"holiday off on a holiday", holidayOffAssignment(empCruz), holidayIndependence},
	}
	for _, tt := range valid {
		if result := roster.ValidateAssignment(tt.a, tt.date, cat); !result.Valid() {
			t.Errorf("%s: unexpected errors %v", tt.name, result.Errors)
		}
	}
}

func TestValidateAssignmentUnresolvableLeaveTemplate(t *testing.T) {
	// A leave template missing from the catalog snapshot cannot be
	// checked for the CTO flag; the assignment passes and rendering
	// degrades instead of blocking the user.
	cat := testCatalog()
	a := leaveAssignment(empCruz, 88)
	if result := roster.ValidateAssignment(a, "2025-06-02", cat); !result.Valid() {
		t.Errorf("unexpected errors %v", result.Errors)
	}
}

func TestCheckCompensatoryWorkDate(t *testing.T) {
	existing := []domain.CompensatoryWorkDate{workDate("2025-05-20", shiftMorning)}

	if err := roster.CheckCompensatoryWorkDate("2025-05-21", "2025-06-02", existing); err != nil {
		t.Errorf("valid work date rejected: %v", err)
	}
	if err := roster.CheckCompensatoryWorkDate("2025-06-02", "2025-06-02", existing); !errors.Is(err, roster.ErrWorkDateNotBeforeLeave) {
		t.Errorf("same-day work date: err = %v", err)
	}
	if err := roster.CheckCompensatoryWorkDate("2025-06-10", "2025-06-02", existing); !errors.Is(err, roster.ErrWorkDateNotBeforeLeave) {
		t.Errorf("work date after leave: err = %v", err)
	}
	if err := roster.CheckCompensatoryWorkDate("2025-05-20", "2025-06-02", existing); !errors.Is(err, roster.ErrWorkDateDuplicate) {
		t.Errorf("duplicate work date: err = %v", err)
	}
}
