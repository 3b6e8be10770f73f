package roster_test

import (
	"math"
	"testing"

	"github.com/caremetrix/duty-roster/backend/internal/phdate"
	"github.com/caremetrix/duty-roster/backend/internal/roster"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildSummaryWeeklyCells(t *testing.T) {
	cat := testCatalog()
	days, _ := phdate.MonthDays("2025-06") // June 2025 starts on a Sunday

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-03", dutyAssignment(empCruz, shiftNight), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-04", leaveAssignment(empCruz, leaveSick), cat)

	summary := roster.BuildSummary(days, entries, cat)
	if len(summary.Weeks) != 5 {
		t.Fatalf("weeks = %d, want 5", len(summary.Weeks))
	}

	week := summary.Weeks[0]
	if len(week.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(week.Rows))
	}
	row := week.Rows[0]
	if row.Name != "Cruz, A." {
		t.Errorf("row name = %q", row.Name)
	}

	// Mon 2025-06-02 is slot 1 in a Sunday-first week.
	if row.Cells[1].Hours != "8.00" {
		t.Errorf("monday cell = %q, want 8.00", row.Cells[1].Hours)
	}
	if row.Cells[2].Hours != "8.00" {
		t.Errorf("tuesday cell = %q, want 8.00 (overnight shift)", row.Cells[2].Hours)
	}
	// Leave contributes a blank cell, not "off" and not zero hours.
	if row.Cells[3].Hours != "" {
		t.Errorf("leave cell = %q, want blank", row.Cells[3].Hours)
	}
	if !almostEqual(row.Total, 16) {
		t.Errorf("week total = %v, want 16", row.Total)
	}
}

func TestBuildSummaryOffTemplateIsBlankNotOff(t *testing.T) {
	// The per-date projection shows "off" for an off-status template;
	// the weekly summary deliberately leaves that cell blank. Both
	// behaviors are intended, and this test pins the asymmetry.
	cat := testCatalog()
	days, _ := phdate.MonthDays("2025-06")

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftRestDay), cat)

	groups := roster.ProjectDate(entries, "2025-06-02", cat)
	if groups[0].Members[0].Hours != "off" {
		t.Fatalf("projection hours = %q, want off", groups[0].Members[0].Hours)
	}

	summary := roster.BuildSummary(days, entries, cat)
	cell := summary.Weeks[0].Rows[0].Cells[1]
	if cell.Hours != "" {
		t.Errorf("summary cell = %q, want blank", cell.Hours)
	}
	if summary.Weeks[0].Rows[0].Total != 0 {
		t.Errorf("week total = %v, want 0", summary.Weeks[0].Rows[0].Total)
	}
}

func TestBuildSummaryRowsSortedByLastName(t *testing.T) {
	cat := testCatalog()
	days, _ := phdate.MonthDays("2025-06")

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empVillar, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-05", dutyAssignment(empCruz, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-10", dutyAssignment(empReyes, shiftMorning), cat)

	summary := roster.BuildSummary(days, entries, cat)
	names := []string{}
	for _, row := range summary.Weeks[0].Rows {
		names = append(names, row.Name)
	}
	want := []string{"Cruz, A.", "Reyes, B.", "Villar, D."}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("row order = %v, want %v", names, want)
		}
	}
}

func TestBuildSummaryMonthlyTotals(t *testing.T) {
	cat := testCatalog()
	days, _ := phdate.MonthDays("2025-06")

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat) // 8
	entries = roster.UpsertAssignment(entries, "2025-06-09", dutyAssignment(empCruz, shiftNight), cat) // 8
	entries = roster.UpsertAssignment(entries, "2025-06-16", dutyAssignment(empCruz, shiftRestDay), cat) // off -> 0
	entries = roster.UpsertAssignment(entries, "2025-06-17", leaveAssignment(empCruz, leaveSick), cat)   // blank
	entries = roster.UpsertAssignment(entries, "2025-06-18", offAssignment(empCruz), cat)                // blank
	entries = roster.UpsertAssignment(entries, "2025-06-20", dutyAssignment(empReyes, shiftMidShift), cat) // 8

	summary := roster.BuildSummary(days, entries, cat)
	if len(summary.MonthlyTotals) != 2 {
		t.Fatalf("monthly rows = %d, want 2", len(summary.MonthlyTotals))
	}

	totals := map[int64]float64{}
	for _, row := range summary.MonthlyTotals {
		totals[row.EmployeeID] = row.Total
	}
	if !almostEqual(totals[empCruz], 16) {
		t.Errorf("Cruz monthly total = %v, want 16", totals[empCruz])
	}
	if !almostEqual(totals[empReyes], 8) {
		t.Errorf("Reyes monthly total = %v, want 8", totals[empReyes])
	}

	// The monthly total must equal the sum of weekly totals: both are
	// sums of the same numeric duty cells, independent of how the week
	// padding slices the month.
	weekSum := 0.0
	for _, week := range summary.Weeks {
		for _, row := range week.Rows {
			if row.EmployeeID == empCruz {
				weekSum += row.Total
			}
		}
	}
	if !almostEqual(weekSum, totals[empCruz]) {
		t.Errorf("sum of weekly totals = %v, monthly total = %v", weekSum, totals[empCruz])
	}
}

func TestBuildSummaryUnknownEmployee(t *testing.T) {
	cat := testCatalog()
	days, _ := phdate.MonthDays("2025-06")

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empUnknown, shiftMorning), cat)

	summary := roster.BuildSummary(days, entries, cat)
	if len(summary.MonthlyTotals) != 1 {
		t.Fatalf("monthly rows = %d, want 1", len(summary.MonthlyTotals))
	}
	if summary.MonthlyTotals[0].Name != "Unknown Employee" {
		t.Errorf("name = %q, want Unknown Employee", summary.MonthlyTotals[0].Name)
	}
	// Hours still count: the shift template is resolvable even though
	// the employee record is not.
	if !almostEqual(summary.MonthlyTotals[0].Total, 8) {
		t.Errorf("total = %v, want 8", summary.MonthlyTotals[0].Total)
	}
}
