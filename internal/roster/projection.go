package roster

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

// Display labels and group keys. Duty groups are keyed by their literal
// shift-time string so two templates with different hours form separate
// groups; all leaves collapse into one group.
const (
	GroupKeyLeave      = "LEAVE"
	GroupKeyDayOff     = "day-off"
	GroupKeyHolidayOff = "holiday-off"

	LabelLeave  = "LEAVE"
	LabelDayOff = "Day Off"

	UnknownEmployeeName = "Unknown Employee"
)

// Fixed colors for the non-duty groups; duty groups take their shift
// template's color.
const (
	colorDayOff     = "#BDBDBD"
	colorHolidayOff = "#FF8A65"
	colorLeave      = "#4DB6AC"
	colorDefault    = "#9E9E9E"
)

// sortLast pushes members without a computable start time behind every
// timed duty member.
const sortLast = math.MaxInt32

// DisplayAssignment is one employee's assignment prepared for
// rendering: resolved name, type-specific descriptor and sort keys.
type DisplayAssignment struct {
	EmployeeID            int64                         `json:"employeeID"`
	Name                  string                        `json:"name"`
	Type                  domain.AssignmentType         `json:"type"`
	ShiftLabel            string                        `json:"shiftLabel"`
	Hours                 string                        `json:"hours"`
	LeaveName             string                        `json:"leaveName,omitempty"`
	LeaveAbbreviation     string                        `json:"leaveAbbreviation,omitempty"`
	CompensatoryWorkDates []domain.CompensatoryWorkDate `json:"compensatoryWorkDates,omitempty"`
	Remarks               string                        `json:"remarks,omitempty"`

	startMinutes int
	lastName     string
}

// ShiftGroup is one rendered roster block for a date.
type ShiftGroup struct {
	Key     string                `json:"key"`
	Label   string                `json:"label"`
	Type    domain.AssignmentType `json:"type"`
	Color   string                `json:"color"`
	Members []DisplayAssignment   `json:"members"`

	startMinutes int
}

// ProjectDate derives the display groups for one date. The projection
// is a pure read: unknown references degrade to placeholders and the
// rest of the day still renders.
func ProjectDate(entries []domain.DutyScheduleEntry, date string, cat *Catalog) []ShiftGroup {
	entry := FindEntry(entries, date)
	if entry == nil {
		return []ShiftGroup{}
	}

	// Resolve each assignment, deduplicating by employee identity.
	// Merge artifacts keep the highest-priority type and union their
	// compensatory work dates.
	byEmployee := make(map[int64]DisplayAssignment)
	order := make([]int64, 0, len(entry.EmployeeSchedules))

	for _, a := range entry.EmployeeSchedules {
		id := a.Employee.Identity()
		if id == 0 {
			continue
		}
		display := buildDisplayAssignment(a, cat)

		existing, seen := byEmployee[id]
		if !seen {
			byEmployee[id] = display
			order = append(order, id)
			continue
		}
		if typePriority(display.Type) < typePriority(existing.Type) {
			display.CompensatoryWorkDates = unionWorkDates(display.CompensatoryWorkDates, existing.CompensatoryWorkDates)
			byEmployee[id] = display
		} else {
			existing.CompensatoryWorkDates = unionWorkDates(existing.CompensatoryWorkDates, display.CompensatoryWorkDates)
			byEmployee[id] = existing
		}
	}

	members := make([]DisplayAssignment, 0, len(order))
	for _, id := range order {
		members = append(members, byEmployee[id])
	}

	sort.SliceStable(members, func(i, j int) bool {
		pi, pj := typePriority(members[i].Type), typePriority(members[j].Type)
		if pi != pj {
			return pi < pj
		}
		if members[i].startMinutes != members[j].startMinutes {
			return members[i].startMinutes < members[j].startMinutes
		}
		return members[i].lastName < members[j].lastName
	})

	// Group by key, preserving member order.
	groupIndex := make(map[string]int)
	groups := make([]ShiftGroup, 0)

	for _, m := range members {
		key := groupKey(m)
		idx, exists := groupIndex[key]
		if !exists {
			groups = append(groups, ShiftGroup{
				Key:          key,
				Label:        groupLabel(m),
				Type:         m.Type,
				Color:        resolveGroupColor(m, cat),
				startMinutes: m.startMinutes,
			})
			idx = len(groups) - 1
			groupIndex[key] = idx
		}
		if m.startMinutes < groups[idx].startMinutes {
			groups[idx].startMinutes = m.startMinutes
		}
		groups[idx].Members = append(groups[idx].Members, m)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		pi, pj := typePriority(groups[i].Type), typePriority(groups[j].Type)
		if pi != pj {
			return pi < pj
		}
		return groups[i].startMinutes < groups[j].startMinutes
	})

	return groups
}

func buildDisplayAssignment(a domain.EmployeeScheduleAssignment, cat *Catalog) DisplayAssignment {
	display := DisplayAssignment{
		EmployeeID:   a.Employee.Identity(),
		Name:         UnknownEmployeeName,
		Type:         a.Type,
		Remarks:      a.Remarks,
		startMinutes: sortLast,
	}
	if e := cat.ResolveEmployee(a.Employee); e != nil {
		display.Name = e.DisplayName()
		display.lastName = strings.ToLower(e.LastName)
	}

	switch a.Type {
	case domain.AssignmentDuty:
		st := cat.ResolveShiftTemplate(a.ShiftTemplate)
		display.ShiftLabel = ShiftTimeLabel(st)
		display.Hours = ComputeShiftHours(st)
		if start, ok := shiftStartMinutes(st); ok {
			display.startMinutes = start
		}
	case domain.AssignmentLeave:
		display.ShiftLabel = LabelLeave
		lt := cat.ResolveLeaveTemplate(a.LeaveTemplate)
		if lt != nil {
			display.LeaveName = lt.Name
			display.LeaveAbbreviation = LeaveAbbreviation(lt.Name)
		}
		display.CompensatoryWorkDates = a.CompensatoryWorkDates
	default:
		display.ShiftLabel = LabelDayOff
	}

	return display
}

// typePriority orders duty before leave before off before holiday_off.
func typePriority(t domain.AssignmentType) int {
	switch t {
	case domain.AssignmentDuty:
		return 0
	case domain.AssignmentLeave:
		return 1
	case domain.AssignmentOff:
		return 2
	case domain.AssignmentHolidayOff:
		return 3
	default:
		return 4
	}
}

func groupKey(m DisplayAssignment) string {
	switch m.Type {
	case domain.AssignmentDuty:
		return m.ShiftLabel
	case domain.AssignmentLeave:
		return GroupKeyLeave
	case domain.AssignmentHolidayOff:
		return GroupKeyHolidayOff
	default:
		return GroupKeyDayOff
	}
}

func groupLabel(m DisplayAssignment) string {
	switch m.Type {
	case domain.AssignmentDuty:
		return m.ShiftLabel
	case domain.AssignmentLeave:
		return LabelLeave
	default:
		return LabelDayOff
	}
}

func resolveGroupColor(m DisplayAssignment, cat *Catalog) string {
	switch m.Type {
	case domain.AssignmentOff:
		return colorDayOff
	case domain.AssignmentHolidayOff:
		return colorHolidayOff
	case domain.AssignmentLeave:
		return colorLeave
	}
	return ShiftColor(m.ShiftLabel, cat)
}

// ShiftColor looks up a duty group's color: first a template whose time
// label matches, then a template name match, then the neutral default.
func ShiftColor(label string, cat *Catalog) string {
	if cat != nil {
		for _, st := range cat.ShiftTemplates {
			if st == nil {
				continue
			}
			if strings.EqualFold(ShiftTimeLabel(st), label) || strings.EqualFold(st.Name, label) {
				if st.Color != "" {
					return st.Color
				}
				break
			}
		}
	}
	return colorDefault
}

// ShiftTimeLabel renders the human time range of a template:
// "8:00 AM-12:00 PM, 1:00 PM-5:00 PM" for a Standard template,
// "10:00 PM-6:00 AM" for a Shifting one. Empty when not renderable.
func ShiftTimeLabel(st *domain.ShiftTemplate) string {
	if st == nil {
		return ""
	}
	switch st.Type {
	case domain.ShiftTemplateStandard:
		morning := clockRangeLabel(st.MorningIn, st.MorningOut)
		afternoon := clockRangeLabel(st.AfternoonIn, st.AfternoonOut)
		if morning == "" || afternoon == "" {
			return ""
		}
		return morning + ", " + afternoon
	case domain.ShiftTemplateShifting:
		return clockRangeLabel(st.StartTime, st.EndTime)
	default:
		return ""
	}
}

func clockRangeLabel(start, end string) string {
	s := clock12Label(start)
	e := clock12Label(end)
	if s == "" || e == "" {
		return ""
	}
	return s + "-" + e
}

// clock12Label renders "13:30" as "1:30 PM".
func clock12Label(clock string) string {
	minutes, err := parseClock(clock)
	if err != nil {
		return ""
	}
	h := minutes / 60
	m := minutes % 60
	meridiem := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		meridiem = "PM"
	case h > 12:
		h -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, m, meridiem)
}

func shiftStartMinutes(st *domain.ShiftTemplate) (int, bool) {
	if st == nil || st.IsOff() {
		return 0, false
	}
	var clock string
	switch st.Type {
	case domain.ShiftTemplateStandard:
		clock = st.MorningIn
	case domain.ShiftTemplateShifting:
		clock = st.StartTime
	default:
		return 0, false
	}
	minutes, err := parseClock(clock)
	if err != nil {
		return 0, false
	}
	return minutes, true
}

// leaveAbbreviations covers the common leave types; anything else gets
// a derived abbreviation.
var leaveAbbreviations = map[string]string{
	"sick leave":              "SL",
	"vacation leave":          "VL",
	"emergency leave":         "EL",
	"maternity leave":         "ML",
	"paternity leave":         "PL",
	"solo parent leave":       "SPL",
	"bereavement leave":       "BL",
	"service incentive leave": "SIL",
	"special privilege leave": "SPV",
	"compensatory time off":   "CTO",
	"leave without pay":       "LWOP",
}

// LeaveAbbreviation maps a leave-type name to its short form: a fixed
// table first, otherwise initials for multi-word names and the first
// two letters for single-word names.
func LeaveAbbreviation(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ""
	}
	if abbrev, ok := leaveAbbreviations[normalized]; ok {
		return abbrev
	}

	words := strings.Fields(normalized)
	if len(words) == 1 {
		word := []rune(words[0])
		if len(word) == 1 {
			return strings.ToUpper(string(word))
		}
		return strings.ToUpper(string(word[:2]))
	}

	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(string([]rune(w)[0])))
	}
	return b.String()
}

func unionWorkDates(a, b []domain.CompensatoryWorkDate) []domain.CompensatoryWorkDate {
	if len(b) == 0 {
		return a
	}
	merged := make([]domain.CompensatoryWorkDate, 0, len(a)+len(b))
	merged = append(merged, a...)
	for _, wd := range b {
		duplicate := false
		for _, existing := range merged {
			if existing.Date == wd.Date {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, wd)
		}
	}
	return merged
}
