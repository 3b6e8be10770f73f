package roster_test

import (
	"testing"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/roster"
)

func TestProjectDateEmpty(t *testing.T) {
	groups := roster.ProjectDate(nil, "2025-06-02", testCatalog())
	if len(groups) != 0 {
		t.Errorf("projection of a missing date = %d groups, want 0", len(groups))
	}
}

func TestProjectDateGroupPriority(t *testing.T) {
	cat := testCatalog()
	date := holidayIndependence // holiday_off must be legal here

	entries := roster.UpsertAssignment(nil, date, dutyAssignment(empCruz, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, date, leaveAssignment(empReyes, leaveSick), cat)
	entries = roster.UpsertAssignment(entries, date, offAssignment(empSantos), cat)
	entries = roster.UpsertAssignment(entries, date, holidayOffAssignment(empVillar), cat)

	groups := roster.ProjectDate(entries, date, cat)
	if len(groups) != 4 {
		t.Fatalf("groups = %d, want 4", len(groups))
	}

	wantTypes := []domain.AssignmentType{
		domain.AssignmentDuty,
		domain.AssignmentLeave,
		domain.AssignmentOff,
		domain.AssignmentHolidayOff,
	}
	for i, want := range wantTypes {
		if groups[i].Type != want {
			t.Errorf("group %d type = %q, want %q", i, groups[i].Type, want)
		}
	}

	if groups[0].Key != "8:00 AM-12:00 PM, 1:00 PM-5:00 PM" {
		t.Errorf("duty group key = %q", groups[0].Key)
	}
	if groups[1].Key != "LEAVE" || groups[1].Label != "LEAVE" {
		t.Errorf("leave group = %q/%q", groups[1].Key, groups[1].Label)
	}
	if groups[2].Label != "Day Off" || groups[3].Label != "Day Off" {
		t.Errorf("off labels = %q/%q, want Day Off", groups[2].Label, groups[3].Label)
	}
	if groups[2].Key == groups[3].Key {
		t.Error("off and holiday_off collapsed into one group")
	}
}

func TestProjectDateDutyGroupsSplitByTime(t *testing.T) {
	cat := testCatalog()

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftNight), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-02", dutyAssignment(empReyes, shiftMorning), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-02", dutyAssignment(empSantos, shiftMorning), cat)

	groups := roster.ProjectDate(entries, "2025-06-02", cat)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2 (separate times, same type)", len(groups))
	}

	// Morning (08:00) sorts before Night (22:00).
	if len(groups[0].Members) != 2 {
		t.Errorf("morning group members = %d, want 2", len(groups[0].Members))
	}
	if groups[1].Key != "10:00 PM-6:00 AM" {
		t.Errorf("night group key = %q", groups[1].Key)
	}

	// Members inside a group are ordered by last name.
	if groups[0].Members[0].Name != "Reyes, B." || groups[0].Members[1].Name != "Santos, C." {
		t.Errorf("member order = %q, %q", groups[0].Members[0].Name, groups[0].Members[1].Name)
	}
}

func TestProjectDateDutyColor(t *testing.T) {
	cat := testCatalog()
	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftMorning), cat)

	groups := roster.ProjectDate(entries, "2025-06-02", cat)
	if groups[0].Color != "#42A5F5" {
		t.Errorf("duty group color = %q, want the Morning template color", groups[0].Color)
	}
}

func TestProjectDateOffTemplateSortsLast(t *testing.T) {
	cat := testCatalog()

	entries := roster.UpsertAssignment(nil, "2025-06-02", dutyAssignment(empCruz, shiftRestDay), cat)
	entries = roster.UpsertAssignment(entries, "2025-06-02", dutyAssignment(empReyes, shiftMorning), cat)

	groups := roster.ProjectDate(entries, "2025-06-02", cat)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Members[0].EmployeeID != empReyes {
		t.Error("timed duty should sort before an off-template duty")
	}
	if got := groups[1].Members[0].Hours; got != "off" {
		t.Errorf("off-template duty hours = %q, want off sentinel in the projection", got)
	}
}

func TestProjectDateUnknownReferencesDegrade(t *testing.T) {
	cat := testCatalog()

	a := dutyAssignment(empUnknown, 77) // neither resolvable
	entries := roster.UpsertAssignment(nil, "2025-06-02", a, cat)

	groups := roster.ProjectDate(entries, "2025-06-02", cat)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	m := groups[0].Members[0]
	if m.Name != "Unknown Employee" {
		t.Errorf("name = %q, want Unknown Employee", m.Name)
	}
	if m.ShiftLabel != "" {
		t.Errorf("shift label = %q, want blank", m.ShiftLabel)
	}
	if m.Hours != "0" {
		t.Errorf("hours = %q, want 0", m.Hours)
	}
}

func TestProjectDateDeduplicatesByPriority(t *testing.T) {
	cat := testCatalog()

	// Merge artifact: the same employee twice in one entry. The
	// projection keeps the duty and unions the work dates.
	entry := domain.DutyScheduleEntry{
		Date: "2025-06-02",
		EmployeeSchedules: []domain.EmployeeScheduleAssignment{
			leaveAssignment(empCruz, leaveCTO, domain.CompensatoryWorkDate{
				Date:          "2025-05-20",
				ShiftTemplate: domain.RefByID[domain.ShiftTemplate](shiftMorning),
			}),
			dutyAssignment(empCruz, shiftMorning),
		},
	}

	groups := roster.ProjectDate([]domain.DutyScheduleEntry{entry}, "2025-06-02", cat)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1 (single employee)", len(groups))
	}
	m := groups[0].Members[0]
	if m.Type != domain.AssignmentDuty {
		t.Errorf("kept type = %q, want duty", m.Type)
	}
	if len(m.CompensatoryWorkDates) != 1 {
		t.Errorf("work dates not unioned: %+v", m.CompensatoryWorkDates)
	}
}

func TestLeaveAbbreviation(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Sick Leave", "SL"},
		{"sick leave ", "SL"},
		{"Vacation Leave", "VL"},
		{"Compensatory Time Off", "CTO"},
		{"Quarantine Leave", "QL"},
		{"Wellness", "WE"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := roster.LeaveAbbreviation(tt.name); got != tt.want {
			t.Errorf("LeaveAbbreviation(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestShiftTimeLabel(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		id   int64
		want string
	}{
		{shiftMorning, "8:00 AM-12:00 PM, 1:00 PM-5:00 PM"},
		{shiftNight, "10:00 PM-6:00 AM"},
		{shiftMidShift, "10:00 AM-6:00 PM"},
	}
	for _, tt := range tests {
		if got := roster.ShiftTimeLabel(cat.ShiftTemplateByID(tt.id)); got != tt.want {
			t.Errorf("ShiftTimeLabel(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}

	if got := roster.ShiftTimeLabel(nil); got != "" {
		t.Errorf("ShiftTimeLabel(nil) = %q, want blank", got)
	}
}
