package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

// HoursOff is the sentinel returned for non-working templates. The
// per-date projection displays it as-is; the summary engine treats it
// as a blank cell.
const HoursOff = "off"

const minutesPerDay = 24 * 60

// ComputeShiftHours returns the duration of one shift template as a
// decimal-hours string with two digits ("8.00"), HoursOff for an off
// template, or "0" when the template is missing or not computable.
// "0" means "no computable hours", not a zero-length working shift.
func ComputeShiftHours(st *domain.ShiftTemplate) string {
	if st == nil {
		return "0"
	}
	if st.IsOff() {
		return HoursOff
	}

	var minutes int
	switch st.Type {
	case domain.ShiftTemplateStandard:
		morning, err := blockMinutes(st.MorningIn, st.MorningOut)
		if err != nil {
			return "0"
		}
		afternoon, err := blockMinutes(st.AfternoonIn, st.AfternoonOut)
		if err != nil {
			return "0"
		}
		minutes = morning + afternoon
	case domain.ShiftTemplateShifting:
		start, err := parseClock(st.StartTime)
		if err != nil {
			return "0"
		}
		end, err := parseClock(st.EndTime)
		if err != nil {
			return "0"
		}
		minutes = end - start
		if minutes <= 0 {
			// Overnight shift wraps past midnight.
			minutes += minutesPerDay
		}
	default:
		return "0"
	}

	return strconv.FormatFloat(float64(minutes)/60, 'f', 2, 64)
}

func blockMinutes(in, out string) (int, error) {
	start, err := parseClock(in)
	if err != nil {
		return 0, err
	}
	end, err := parseClock(out)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// parseClock converts "HH:MM" (seconds tolerated) to minutes since
// midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hour*60 + minute, nil
}

// HoursValue converts a calculator result to a number for summation.
// The off sentinel and anything unparseable contribute zero.
func HoursValue(hours string) float64 {
	if hours == "" || hours == HoursOff {
		return 0
	}
	v, err := strconv.ParseFloat(hours, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatHoursLabel renders a decimal-hours string as "H h M min",
// dropping whichever part is zero. The off sentinel and empty input
// pass through unchanged.
func FormatHoursLabel(hours string) string {
	if hours == "" || hours == HoursOff {
		return hours
	}
	v, err := strconv.ParseFloat(hours, 64)
	if err != nil {
		return hours
	}

	total := int(math.Round(v * 60))
	h := total / 60
	m := total % 60
	switch {
	case h == 0 && m == 0:
		return "0 h"
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d h", h)
	default:
		return fmt.Sprintf("%d h %d min", h, m)
	}
}
