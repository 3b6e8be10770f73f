package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentType string

const (
	AssignmentDuty       AssignmentType = "duty"
	AssignmentOff        AssignmentType = "off"
	AssignmentLeave      AssignmentType = "leave"
	AssignmentHolidayOff AssignmentType = "holiday_off"
)

// CompensatoryWorkDate records one prior work date backing a
// compensatory-time-off leave.
type CompensatoryWorkDate struct {
	Date          string             `json:"date"`
	ShiftTemplate Ref[ShiftTemplate] `json:"shiftTemplate"`
	HoursWorked   string             `json:"hoursWorked,omitempty"`
}

// EmployeeScheduleAssignment is the atomic roster unit: one employee on
// one date. Which reference field is meaningful is determined by Type;
// the validation layer rejects mismatches before the entry store ever
// sees them.
type EmployeeScheduleAssignment struct {
	Employee              Ref[Employee]          `json:"employee"`
	Type                  AssignmentType         `json:"type"`
	Remarks               string                 `json:"remarks,omitempty"`
	ShiftTemplate         *Ref[ShiftTemplate]    `json:"shiftTemplate,omitempty"`
	LeaveTemplate         *Ref[LeaveTemplate]    `json:"leaveTemplate,omitempty"`
	CompensatoryWorkDates []CompensatoryWorkDate `json:"compensatoryWorkDates,omitempty"`
}

// DutyScheduleEntry holds every assignment for one calendar day. An
// entry never carries two assignments for the same employee, and an
// entry emptied of assignments is pruned rather than kept.
type DutyScheduleEntry struct {
	Date              string                       `json:"date"`
	EmployeeSchedules []EmployeeScheduleAssignment `json:"employeeSchedules"`
	HolidayID         *int64                       `json:"holidayID,omitempty"`
}

// DutySchedule is the month-scoped aggregate root. Entries are the
// editing session's working copy; derived views are recomputed from
// them on every read.
type DutySchedule struct {
	ID            int64               `json:"id"`
	PublicID      uuid.UUID           `json:"publicID"`
	Name          string              `json:"name"`
	DepartmentID  int64               `json:"departmentID"`
	StartDate     string              `json:"startDate"`
	EndDate       string              `json:"endDate"`
	MonthSchedule string              `json:"monthSchedule"`
	Entries       []DutyScheduleEntry `json:"entries"`
	IsFinalized   bool                `json:"isFinalized"`
	CreatedAt     time.Time           `json:"createdAt"`
	Version       int32               `json:"-"`
}
