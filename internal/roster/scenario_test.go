package roster_test

import (
	"testing"

	"github.com/caremetrix/duty-roster/backend/internal/phdate"
	"github.com/caremetrix/duty-roster/backend/internal/roster"
)

// Walks one month of editing the way the UI drives it: add an
// assignment, read the projection and the summary, propagate to a
// second week, and confirm the copy is independent of its source.
func TestMonthEditingScenario(t *testing.T) {
	cat := testCatalog()

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)

	groups := roster.ProjectDate(entries, "2025-06-02", cat)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].Key != "8:00 AM-12:00 PM, 1:00 PM-5:00 PM" {
		t.Errorf("group key = %q", groups[0].Key)
	}
	if len(groups[0].Members) != 1 || groups[0].Members[0].Name != "Cruz, A." {
		t.Fatalf("members = %+v", groups[0].Members)
	}
	if groups[0].Members[0].Hours != "8.00" {
		t.Errorf("member hours = %q, want 8.00", groups[0].Members[0].Hours)
	}

	days, err := phdate.MonthDays("2025-06")
	if err != nil {
		t.Fatal(err)
	}
	summary := roster.BuildSummary(days, entries, cat)
	// 2025-06-02 is the Monday of the first week.
	if got := summary.Weeks[0].Rows[0].Cells[1].Hours; got != "8.00" {
		t.Errorf("summary cell = %q, want 8.00", got)
	}
	if summary.Weeks[0].Rows[0].Total != 8 {
		t.Errorf("week total = %v, want 8", summary.Weeks[0].Rows[0].Total)
	}

	engine := roster.NewCopyEngine(cat, nil)
	entries, copied := engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-02",
		TargetDates: []string{"2025-06-09"},
	})
	if copied != 1 {
		t.Fatalf("copied = %d, want 1", copied)
	}

	source := roster.FindAssignment(roster.FindEntry(entries, "2025-06-02"), empCruz)
	target := roster.FindAssignment(roster.FindEntry(entries, "2025-06-09"), empCruz)
	if target == nil || target.Type != source.Type || target.ShiftTemplate.Identity() != source.ShiftTemplate.Identity() {
		t.Fatalf("copy does not match source: %+v vs %+v", target, source)
	}

	// Independently mutable: editing the target leaves the source as is.
	target.Remarks = "swap approved"
	if source.Remarks != "" {
		t.Error("target mutation leaked into the source assignment")
	}

	summary = roster.BuildSummary(days, entries, cat)
	totals := summary.MonthlyTotals
	if len(totals) != 1 || totals[0].Total != 16 {
		t.Errorf("monthly totals = %+v, want one row with 16", totals)
	}
}

// Every entry keeps at most one assignment per employee across a mix of
// upserts and copies.
func TestNoDuplicateEmployeesPerDate(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-02", dutyAssignment(empCruz, shiftNight), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-02", offAssignment(empReyes), cat)
	entries, _ = engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-02",
		TargetDates: []string{"2025-06-03", "2025-06-04"},
	})
	entries, _ = engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-03",
		TargetDates: []string{"2025-06-04"},
	})

	for _, entry := range entries {
		seen := map[int64]bool{}
		for _, a := range entry.EmployeeSchedules {
			id := a.Employee.Identity()
			if seen[id] {
				t.Fatalf("duplicate employee %d on %s", id, entry.Date)
			}
			seen[id] = true
		}
	}
}
