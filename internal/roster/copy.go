package roster

import (
	"sort"
	"strings"
	"time"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/phdate"
)

// WeekdayRule restricts copying of shift templates whose name matches a
// pattern to one day of the week. The gating is name-based because the
// templates themselves carry no weekday schema; the patterns are
// configuration, not hardcoded template names.
type WeekdayRule struct {
	NamePattern string
	Weekday     time.Weekday
}

// DefaultWeekdayRules reproduces the stock restrictions: templates
// named for Friday or Saturday only propagate onto that weekday.
func DefaultWeekdayRules() []WeekdayRule {
	return []WeekdayRule{
		{NamePattern: "friday", Weekday: time.Friday},
		{NamePattern: "fri", Weekday: time.Friday},
		{NamePattern: "saturday", Weekday: time.Saturday},
		{NamePattern: "sat", Weekday: time.Saturday},
	}
}

// CopyRequest describes one propagation operation. All four UI modes
// funnel into this shape: a single dragged assignment or a dragged
// group arrives in Assignments; a whole-day copy or a multi-date
// broadcast leaves Assignments nil and names only the source date.
type CopyRequest struct {
	SourceDate string `json:"sourceDate"`
	// Assignments, when non-nil, is the subset of the source date's
	// assignments to propagate. Nil means the entire source entry.
	Assignments []domain.EmployeeScheduleAssignment `json:"assignments,omitempty"`
	TargetDates []string                            `json:"targetDates"`
}

// CopyEngine clones assignments across dates under the eligibility
// rules. It is purely additive: it never overwrites or removes anything
// already on a target date.
type CopyEngine struct {
	catalog *Catalog
	rules   []WeekdayRule
}

func NewCopyEngine(cat *Catalog, rules []WeekdayRule) *CopyEngine {
	if rules == nil {
		rules = DefaultWeekdayRules()
	}
	return &CopyEngine{catalog: cat, rules: rules}
}

// Apply executes one copy request as a single batch and returns the
// next entry list plus the number of assignments copied. For each
// target date the existing-employee set is snapshotted once before any
// assignment is applied, so assignments copied within the same request
// do not shadow each other's duplicate check differently than a
// one-shot copy would.
func (e *CopyEngine) Apply(entries []domain.DutyScheduleEntry, req CopyRequest) ([]domain.DutyScheduleEntry, int) {
	source := req.Assignments
	if source == nil {
		if entry := FindEntry(entries, req.SourceDate); entry != nil {
			source = entry.EmployeeSchedules
		}
	}
	if len(source) == 0 || len(req.TargetDates) == 0 {
		return entries, 0
	}

	copied := 0
	for _, target := range req.TargetDates {
		if target == "" || target == req.SourceDate {
			continue
		}

		// Pre-copy snapshot of who is already scheduled on the target.
		existing := make(map[int64]bool)
		if entry := FindEntry(entries, target); entry != nil {
			for _, a := range entry.EmployeeSchedules {
				existing[a.Employee.Identity()] = true
			}
		}

		for _, a := range source {
			if !e.eligible(a, target, existing) {
				continue
			}
			entries = e.appendAssignment(entries, target, cloneAssignment(a))
			copied++
		}
	}

	return entries, copied
}

// eligible applies the per-(assignment, target) filters: never
// duplicate an employee on a date, never place holiday_off on a
// non-holiday, and honor weekday-restricted template names.
func (e *CopyEngine) eligible(a domain.EmployeeScheduleAssignment, target string, existing map[int64]bool) bool {
	id := a.Employee.Identity()
	if id == 0 || existing[id] {
		return false
	}

	if a.Type == domain.AssignmentHolidayOff && !e.catalog.IsHoliday(target) {
		return false
	}

	if name := e.shiftTemplateName(a); name != "" {
		weekday, err := phdate.Weekday(target)
		if err != nil {
			return false
		}
		lower := strings.ToLower(name)
		for _, rule := range e.rules {
			if strings.Contains(lower, strings.ToLower(rule.NamePattern)) && weekday != rule.Weekday {
				return false
			}
		}
	}

	return true
}

func (e *CopyEngine) shiftTemplateName(a domain.EmployeeScheduleAssignment) string {
	st := e.catalog.ResolveShiftTemplate(a.ShiftTemplate)
	if st == nil {
		return ""
	}
	return st.Name
}

// appendAssignment adds a cloned assignment to the target entry,
// creating the entry (with its holiday identity) when needed. Unlike
// UpsertAssignment it never replaces: eligibility already guaranteed
// the employee is absent.
func (e *CopyEngine) appendAssignment(entries []domain.DutyScheduleEntry, date string, a domain.EmployeeScheduleAssignment) []domain.DutyScheduleEntry {
	idx := FindEntryIndex(entries, date)
	if idx < 0 {
		entry := domain.DutyScheduleEntry{
			Date:              date,
			EmployeeSchedules: []domain.EmployeeScheduleAssignment{a},
		}
		if h := e.catalog.HolidayOn(date); h != nil {
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
	schedules := make([]domain.EmployeeScheduleAssignment, 0, len(entry.EmployeeSchedules)+1)
	schedules = append(schedules, entry.EmployeeSchedules...)
	schedules = append(schedules, a)
	sortAssignmentsByLastName(schedules, e.catalog)
	entry.EmployeeSchedules = schedules

	next := make([]domain.DutyScheduleEntry, len(entries))
	copy(next, entries)
	next[idx] = entry
	return next
}
