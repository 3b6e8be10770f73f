package roster

import (
	"sort"
	"strings"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/phdate"
)

// SummaryCell is one employee-day in a week table. Hours is a numeric
// string for resolvable duty shifts and empty for everything else:
// unlike the per-date projection, the summary never surfaces the "off"
// sentinel, it just leaves the cell blank.
type SummaryCell struct {
	Date  string `json:"date,omitempty"`
	Hours string `json:"hours,omitempty"`
}

type SummaryRow struct {
	EmployeeID int64          `json:"employeeID"`
	Name       string         `json:"name"`
	Cells      [7]SummaryCell `json:"cells"`
	Total      float64        `json:"total"`
}

// WeekBlock is one rendered week table: seven day slots (empty string
// for padding outside the month) and one row per employee.
type WeekBlock struct {
	Days [7]string    `json:"days"`
	Rows []SummaryRow `json:"rows"`
}

type MonthlyTotalRow struct {
	EmployeeID int64   `json:"employeeID"`
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
}

type ScheduleSummary struct {
	Weeks         []WeekBlock       `json:"weeks"`
	MonthlyTotals []MonthlyTotalRow `json:"monthlyTotals"`
}

type summaryEmployee struct {
	id       int64
	name     string
	lastName string
}

// BuildSummary folds the entry store over the month's day sequence into
// per-week hour tables and per-employee monthly totals. Monthly totals
// are accumulated in a single pass over the raw entries, independent of
// the week partitioning.
func BuildSummary(days []string, entries []domain.DutyScheduleEntry, cat *Catalog) *ScheduleSummary {
	employees := collectEmployees(entries, cat)
	weeks := phdate.PartitionWeeks(days)

	summary := &ScheduleSummary{
		Weeks:         make([]WeekBlock, 0, len(weeks)),
		MonthlyTotals: make([]MonthlyTotalRow, 0, len(employees)),
	}

	for _, week := range weeks {
		block := WeekBlock{Days: week, Rows: make([]SummaryRow, 0, len(employees))}
		for _, emp := range employees {
			row := SummaryRow{EmployeeID: emp.id, Name: emp.name}
			for slot, date := range week {
				if date == "" {
					continue
				}
				hours := dutyCellHours(entries, date, emp.id, cat)
				row.Cells[slot] = SummaryCell{Date: date, Hours: hours}
				row.Total += HoursValue(hours)
			}
			block.Rows = append(block.Rows, row)
		}
		summary.Weeks = append(summary.Weeks, block)
	}

	totals := make(map[int64]float64, len(employees))
	for _, entry := range entries {
		for _, a := range entry.EmployeeSchedules {
			if a.Type != domain.AssignmentDuty {
				continue
			}
			hours := ComputeShiftHours(cat.ResolveShiftTemplate(a.ShiftTemplate))
			totals[a.Employee.Identity()] += HoursValue(hours)
		}
	}
	for _, emp := range employees {
		summary.MonthlyTotals = append(summary.MonthlyTotals, MonthlyTotalRow{
			EmployeeID: emp.id,
			Name:       emp.name,
			Total:      totals[emp.id],
		})
	}

	return summary
}

// dutyCellHours resolves one week-table cell. Only a resolvable duty
// shift yields hours; the off sentinel degrades to a blank cell here.
func dutyCellHours(entries []domain.DutyScheduleEntry, date string, employeeID int64, cat *Catalog) string {
	assignment := FindAssignment(FindEntry(entries, date), employeeID)
	if assignment == nil || assignment.Type != domain.AssignmentDuty {
		return ""
	}
	st := cat.ResolveShiftTemplate(assignment.ShiftTemplate)
	if st == nil {
		return ""
	}
	hours := ComputeShiftHours(st)
	if hours == HoursOff {
		return ""
	}
	return hours
}

// collectEmployees gathers every employee identity appearing in the
// month, resolved embedded-first, sorted by last name.
func collectEmployees(entries []domain.DutyScheduleEntry, cat *Catalog) []summaryEmployee {
	seen := make(map[int64]bool)
	employees := make([]summaryEmployee, 0)

	for _, entry := range entries {
		for _, a := range entry.EmployeeSchedules {
			id := a.Employee.Identity()
			if id == 0 || seen[id] {
				continue
			}
			seen[id] = true

			emp := summaryEmployee{id: id, name: UnknownEmployeeName}
			if e := cat.ResolveEmployee(a.Employee); e != nil {
				emp.name = e.DisplayName()
				emp.lastName = strings.ToLower(e.LastName)
			}
			employees = append(employees, emp)
		}
	}

	sort.SliceStable(employees, func(i, j int) bool {
		if employees[i].lastName != employees[j].lastName {
			return employees[i].lastName < employees[j].lastName
		}
		return employees[i].id < employees[j].id
	})
	return employees
}
