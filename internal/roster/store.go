package roster

import (
	"sort"
	"strings"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

// The entry store operates on []domain.DutyScheduleEntry as an
// immutable value: every mutation returns a new slice that shares the
// untouched entries with its input, so a previously rendered projection
// never aliases the working copy.

// FindEntryIndex locates the entry for a canonical day, -1 if absent.
func FindEntryIndex(entries []domain.DutyScheduleEntry, date string) int {
	for i := range entries {
		if entries[i].Date == date {
			return i
		}
	}
	return -1
}

func FindEntry(entries []domain.DutyScheduleEntry, date string) *domain.DutyScheduleEntry {
	if i := FindEntryIndex(entries, date); i >= 0 {
		return &entries[i]
	}
	return nil
}

// FilterEntriesByRange drops entries dated outside [startDate, endDate].
// Calendar views pad the month grid with adjacent-month days, so a
// submitted working copy may carry entries the schedule does not own;
// those are trimmed on save rather than failing the whole submission.
func FilterEntriesByRange(entries []domain.DutyScheduleEntry, startDate, endDate string) []domain.DutyScheduleEntry {
	kept := make([]domain.DutyScheduleEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date < startDate || e.Date > endDate {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// FindAssignment locates an employee's assignment inside one entry.
func FindAssignment(entry *domain.DutyScheduleEntry, employeeID int64) *domain.EmployeeScheduleAssignment {
	if entry == nil || employeeID == 0 {
		return nil
	}
	for i := range entry.EmployeeSchedules {
		if entry.EmployeeSchedules[i].Employee.Identity() == employeeID {
			return &entry.EmployeeSchedules[i]
		}
	}
	return nil
}

// UpsertAssignment commits one assignment to a date: replace when the
// employee already has one there, append otherwise. A missing date or
// employee identity is a no-op; callers validate first. The entry's
// assignment list is kept sorted by employee last name so downstream
// grouping is deterministic.
func UpsertAssignment(entries []domain.DutyScheduleEntry, date string, a domain.EmployeeScheduleAssignment, cat *Catalog) []domain.DutyScheduleEntry {
	if date == "" || a.Employee.Identity() == 0 {
		return entries
	}

	a = normalizeAssignment(cloneAssignment(a), cat)

	idx := FindEntryIndex(entries, date)
	if idx < 0 {
		entry := domain.DutyScheduleEntry{
			Date:              date,
			EmployeeSchedules: []domain.EmployeeScheduleAssignment{a},
		}
		if h := cat.HolidayOn(date); h != nil {
			id := h.ID
			entry.HolidayID = &id
		}

		next := make([]domain.DutyScheduleEntry, 0, len(entries)+1)
		next = append(next, entries...)
		next = append(next, entry)
		sort.SliceStable(next, func(i, j int) bool { return next[i].Date < next[j].Date })
		return next
	}

	entry := entries[idx]
	schedules := make([]domain.EmployeeScheduleAssignment, len(entry.EmployeeSchedules))
	copy(schedules, entry.EmployeeSchedules)

	replaced := false
	for i := range schedules {
		if schedules[i].Employee.Identity() == a.Employee.Identity() {
			schedules[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		schedules = append(schedules, a)
	}
	sortAssignmentsByLastName(schedules, cat)

	entry.EmployeeSchedules = schedules

	next := make([]domain.DutyScheduleEntry, len(entries))
	copy(next, entries)
	next[idx] = entry
	return next
}

// RemoveAssignment drops an employee's assignment from a date. An entry
// left with no assignments is pruned from the collection entirely.
func RemoveAssignment(entries []domain.DutyScheduleEntry, date string, employeeID int64) []domain.DutyScheduleEntry {
	if date == "" || employeeID == 0 {
		return entries
	}

	idx := FindEntryIndex(entries, date)
	if idx < 0 {
		return entries
	}

	entry := entries[idx]
	schedules := make([]domain.EmployeeScheduleAssignment, 0, len(entry.EmployeeSchedules))
	removed := false
	for _, s := range entry.EmployeeSchedules {
		if s.Employee.Identity() == employeeID {
			removed = true
			continue
		}
		schedules = append(schedules, s)
	}
	if !removed {
		return entries
	}

	if len(schedules) == 0 {
		next := make([]domain.DutyScheduleEntry, 0, len(entries)-1)
		next = append(next, entries[:idx]...)
		next = append(next, entries[idx+1:]...)
		return next
	}

	entry.EmployeeSchedules = schedules
	next := make([]domain.DutyScheduleEntry, len(entries))
	copy(next, entries)
	next[idx] = entry
	return next
}

// cloneAssignment deep-copies the assignment's owned slices so that
// store state never shares mutable structure with caller input or with
// a copy source. Catalog records behind references are read-only and
// may be shared.
func cloneAssignment(a domain.EmployeeScheduleAssignment) domain.EmployeeScheduleAssignment {
	if a.ShiftTemplate != nil {
		ref := *a.ShiftTemplate
		a.ShiftTemplate = &ref
	}
	if a.LeaveTemplate != nil {
		ref := *a.LeaveTemplate
		a.LeaveTemplate = &ref
	}
	if a.CompensatoryWorkDates != nil {
		dates := make([]domain.CompensatoryWorkDate, len(a.CompensatoryWorkDates))
		copy(dates, a.CompensatoryWorkDates)
		a.CompensatoryWorkDates = dates
	}
	return a
}

// normalizeAssignment clears the reference fields the assignment's type
// does not use, keeping the exactly-one-reference invariant true in
// stored data even when callers hand in a stale form state.
func normalizeAssignment(a domain.EmployeeScheduleAssignment, cat *Catalog) domain.EmployeeScheduleAssignment {
	switch a.Type {
	case domain.AssignmentDuty:
		a.LeaveTemplate = nil
		a.CompensatoryWorkDates = nil
	case domain.AssignmentLeave:
		a.ShiftTemplate = nil
		// Work dates only accompany a compensatory-time-off leave.
		if lt := cat.ResolveLeaveTemplate(a.LeaveTemplate); lt == nil || !lt.IsCompensatoryTimeOff {
			a.CompensatoryWorkDates = nil
		}
	default:
		a.ShiftTemplate = nil
		a.LeaveTemplate = nil
		a.CompensatoryWorkDates = nil
	}
	return a
}

func sortAssignmentsByLastName(schedules []domain.EmployeeScheduleAssignment, cat *Catalog) {
	sort.SliceStable(schedules, func(i, j int) bool {
		li := assignmentLastName(schedules[i], cat)
		lj := assignmentLastName(schedules[j], cat)
		if li != lj {
			return li < lj
		}
		return schedules[i].Employee.Identity() < schedules[j].Employee.Identity()
	})
}

func assignmentLastName(a domain.EmployeeScheduleAssignment, cat *Catalog) string {
	if e := cat.ResolveEmployee(a.Employee); e != nil {
		return strings.ToLower(e.LastName)
	}
	return ""
}
