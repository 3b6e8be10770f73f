package roster_test

import (
	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/roster"
)

// Shared fixtures for the roster engine tests.

const (
	empCruz    int64 = 1 // Cruz, Ana
	empReyes   int64 = 2 // Reyes, Ben
	empSantos  int64 = 3 // Santos, Carla
	empVillar  int64 = 4 // Villar, Dan
	empUnknown int64 = 99

	shiftMorning  int64 = 1 // Standard 08:00-12:00, 13:00-17:00
	shiftNight    int64 = 2 // Shifting 22:00-06:00
	shiftFriday   int64 = 3 // Standard, Friday-only by name
	shiftSat      int64 = 4 // Shifting, Saturday-only by name
	shiftRestDay  int64 = 5 // status=off
	shiftMidShift int64 = 6 // Shifting 10:00-18:00

	leaveSick int64 = 1
	leaveCTO  int64 = 2

	holidayIndependence = "2025-06-12"
)

func testCatalog() *roster.Catalog {
	return &roster.Catalog{
		Employees: []*domain.Employee{
			{ID: empCruz, FirstName: "Ana", LastName: "Cruz"},
			{ID: empReyes, FirstName: "Ben", LastName: "Reyes"},
			{ID: empSantos, FirstName: "Carla", LastName: "Santos"},
			{ID: empVillar, FirstName: "Dan", LastName: "Villar"},
		},
		ShiftTemplates: []*domain.ShiftTemplate{
			{
				ID: shiftMorning, Name: "Morning", Type: domain.ShiftTemplateStandard,
				MorningIn: "08:00", MorningOut: "12:00",
				AfternoonIn: "13:00", AfternoonOut: "17:00",
				Color: "#42A5F5",
			},
			{
				ID: shiftNight, Name: "Night", Type: domain.ShiftTemplateShifting,
				StartTime: "22:00", EndTime: "06:00", IsNightDifferential: true,
				Color: "#5C6BC0",
			},
			{
				ID: shiftFriday, Name: "Office Friday", Type: domain.ShiftTemplateStandard,
				MorningIn: "08:00", MorningOut: "12:00",
				AfternoonIn: "13:00", AfternoonOut: "16:00",
			},
			{
				ID: shiftSat, Name: "Billing Sat", Type: domain.ShiftTemplateShifting,
				StartTime: "08:00", EndTime: "12:00",
			},
			{
				ID: shiftRestDay, Name: "Rest Day", Type: domain.ShiftTemplateShifting,
				Status: domain.ShiftStatusOff,
			},
			{
				ID: shiftMidShift, Name: "Mid Shift", Type: domain.ShiftTemplateShifting,
				StartTime: "10:00", EndTime: "18:00",
			},
		},
		LeaveTemplates: []*domain.LeaveTemplate{
			{ID: leaveSick, Name: "Sick Leave"},
			{ID: leaveCTO, Name: "Compensatory Time Off", IsCompensatoryTimeOff: true},
		},
		Holidays: []*domain.Holiday{
			{ID: 1, Date: holidayIndependence, Name: "Independence Day", Type: domain.HolidayRegular},
		},
	}
}

func dutyAssignment(employeeID, shiftTemplateID int64) domain.EmployeeScheduleAssignment {
	ref := domain.RefByID[domain.ShiftTemplate](shiftTemplateID)
	return domain.EmployeeScheduleAssignment{
		Employee:      domain.RefByID[domain.Employee](employeeID),
		Type:          domain.AssignmentDuty,
		ShiftTemplate: &ref,
	}
}

func leaveAssignment(employeeID, leaveTemplateID int64, workDates ...domain.CompensatoryWorkDate) domain.EmployeeScheduleAssignment {
	ref := domain.RefByID[domain.LeaveTemplate](leaveTemplateID)
	return domain.EmployeeScheduleAssignment{
		Employee:              domain.RefByID[domain.Employee](employeeID),
		Type:                  domain.AssignmentLeave,
		LeaveTemplate:         &ref,
		CompensatoryWorkDates: workDates,
	}
}

func offAssignment(employeeID int64) domain.EmployeeScheduleAssignment {
	return domain.EmployeeScheduleAssignment{
		Employee: domain.RefByID[domain.Employee](employeeID),
		Type:     domain.AssignmentOff,
	}
}

func holidayOffAssignment(employeeID int64) domain.EmployeeScheduleAssignment {
	return domain.EmployeeScheduleAssignment{
		Employee: domain.RefByID[domain.Employee](employeeID),
		Type:     domain.AssignmentHolidayOff,
	}
}
