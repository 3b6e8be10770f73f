package roster_test

import (
	"testing"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/roster"
)

func TestCopyWholeDate(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-02", leaveAssignment(empReyes, leaveSick), cat)

	entries, copied := engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-02",
		TargetDates: []string{"2025-06-09"},
	})
	if copied != 2 {
		t.Fatalf("copied = %d, want 2", copied)
	}

	target := roster.FindEntry(entries, "2025-06-09")
	if target == nil || len(target.EmployeeSchedules) != 2 {
		t.Fatalf("target entry = %+v", target)
	}
	// Types and references survive the copy.
	if a := roster.FindAssignment(target, empCruz); a == nil || a.Type != domain.AssignmentDuty || a.ShiftTemplate.Identity() != shiftMorning {
		t.Errorf("duty assignment not carried: %+v", a)
	}
	if a := roster.FindAssignment(target, empReyes); a == nil || a.Type != domain.AssignmentLeave {
		t.Errorf("leave assignment not carried: %+v", a)
	}
}

func TestCopyBroadcastToManyDates(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)

	entries, copied := engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-02",
		TargetDates: []string{"2025-06-03", "2025-06-04", "2025-06-05"},
	})
	if copied != 3 {
		t.Fatalf("copied = %d, want 3", copied)
	}
	for _, date := range []string{"2025-06-03", "2025-06-04", "2025-06-05"} {
		if roster.FindEntry(entries, date) == nil {
			t.Errorf("no entry created on %s", date)
		}
	}
}

func TestCopySingleAssignmentSubset(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-02", dutyAssignment(empReyes, shiftNight), cat)

	// Drag one member only.
	entries, copied := engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-02",
		Assignments: []domain.EmployeeScheduleAssignment{dutyAssignment(empReyes, shiftNight)},
		TargetDates: []string{"2025-06-09"},
	})
	if copied != 1 {
		t.Fatalf("copied = %d, want 1", copied)
	}
	target := roster.FindEntry(entries, "2025-06-09")
	if len(target.EmployeeSchedules) != 1 || target.EmployeeSchedules[0].Employee.Identity() != empReyes {
		t.Errorf("target = %+v", target.EmployeeSchedules)
	}
}

func TestCopySkipsExistingEmployee(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-09", dutyAssignment(empCruz, shiftNight), cat)

	entries, copied := engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-02",
		TargetDates: []string{"2025-06-09"},
	})
	if copied != 0 {
		t.Fatalf("copied = %d, want 0", copied)
	}

	// The pre-existing assignment is untouched.
	a := roster.FindAssignment(roster.FindEntry(entries, "2025-06-09"), empCruz)
	if a == nil || a.ShiftTemplate.Identity() != shiftNight {
		t.Errorf("existing assignment was overwritten: %+v", a)
	}
}

func TestCopyHolidayOffGate(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	entries := roster.UpsertAssignment(nil, holidayIndependence, holidayOffAssignment(empCruz), cat)

	// 2025-06-13 is not a holiday: the copy is silently skipped and no
	// target entry is created.
	entries, copied := engine.Apply(entries, roster.CopyRequest{
		SourceDate:  holidayIndependence,
		TargetDates: []string{"2025-06-13"},
	})
	if copied != 0 {
		t.Fatalf("copied = %d, want 0", copied)
	}
	if roster.FindEntry(entries, "2025-06-13") != nil {
		t.Error("target entry created for an ineligible copy")
	}
}

func TestCopyWeekdayRestrictedTemplates(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	// 2025-06-06 is a Friday.
	entries := roster.UpsertAssignment(nil, "2025-06-06", dutyAssignment(empCruz, shiftFriday), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-06", dutyAssignment(empReyes, shiftMorning), cat)

	// Monday target: the "Office Friday" template is skipped, the
	// unrestricted one copies.
	entries, copied := engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-06",
		TargetDates: []string{"2025-06-09"},
	})
	if copied != 1 {
		t.Fatalf("copied = %d, want 1", copied)
	}
	target := roster.FindEntry(entries, "2025-06-09")
	if roster.FindAssignment(target, empCruz) != nil {
		t.Error("Friday-only template copied onto a Monday")
	}
	if roster.FindAssignment(target, empReyes) == nil {
		t.Error("unrestricted template failed to copy")
	}

	// Friday target: both copy.
	entries, copied = engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-06",
		TargetDates: []string{"2025-06-13"},
	})
	if copied != 2 {
		t.Fatalf("copied to Friday = %d, want 2", copied)
	}

	// Saturday-only template behaves the same way.
	entries = roster.UpsertAssignment(entries, "2025-06-07", dutyAssignment(empSantos, shiftSat), cat)
	entries, copied = engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-07",
		TargetDates: []string{"2025-06-10"}, // Tuesday
	})
	if copied != 0 {
		t.Errorf("Saturday-only template copied onto a Tuesday")
	}
	_, copied = engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-07",
		TargetDates: []string{"2025-06-14"}, // Saturday
	})
	if copied != 1 {
		t.Errorf("Saturday-only template failed to copy onto a Saturday")
	}
}

func TestCopyDeepCopies(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	source := leaveAssignment(empCruz, leaveCTO, domain.CompensatoryWorkDate{
		Date:          "2025-05-20",
		ShiftTemplate: domain.RefByID[domain.ShiftTemplate](shiftMorning),
	})
	entries := roster.UpsertAssignment(nil, "2025-06-02", source, cat)

	entries, _ = engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-02",
		TargetDates: []string{"2025-06-09"},
	})

	// Mutating the copy must not leak into the source.
	target := roster.FindAssignment(roster.FindEntry(entries, "2025-06-09"), empCruz)
	target.CompensatoryWorkDates[0].Date = "2025-05-21"

	original := roster.FindAssignment(roster.FindEntry(entries, "2025-06-02"), empCruz)
	if original.CompensatoryWorkDates[0].Date != "2025-05-20" {
		t.Error("copied assignment shares mutable state with its source")
	}
}

func TestCopyPartialSkipOnTarget(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	// The duplicate filter is evaluated against one pre-copy snapshot
	// of the target per batch: members already on the target are
	// skipped, the rest land, and a repeat of the same batch copies
	// nothing.
	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-02", dutyAssignment(empReyes, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-09", offAssignment(empCruz), cat)

	req := roster.CopyRequest{SourceDate: "2025-06-02", TargetDates: []string{"2025-06-09"}}

	entries, copied := engine.Apply(entries, req)
	if copied != 1 {
		t.Fatalf("copied = %d, want 1 (Cruz already scheduled)", copied)
	}
	target := roster.FindEntry(entries, "2025-06-09")
	if a := roster.FindAssignment(target, empCruz); a == nil || a.Type != domain.AssignmentOff {
		t.Errorf("pre-existing assignment disturbed: %+v", a)
	}
	if roster.FindAssignment(target, empReyes) == nil {
		t.Error("eligible member was not copied")
	}

	_, copied = engine.Apply(entries, req)
	if copied != 0 {
		t.Errorf("repeat batch copied = %d, want 0", copied)
	}
}

func TestCopyIgnoresSelfTarget(t *testing.T) {
	cat := testCatalog()
	engine := roster.NewCopyEngine(cat, nil)

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)
	next, copied := engine.Apply(entries, roster.CopyRequest{
		SourceDate:  "2025-06-02",
		TargetDates: []string{"2025-06-02"},
	})
	if copied != 0 {
		t.Errorf("copied = %d, want 0", copied)
	}
	if len(next) != 1 || len(next[0].EmployeeSchedules) != 1 {
		t.Errorf("self-copy changed the entry list: %+v", next)
	}
}
