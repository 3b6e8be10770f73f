// Package phdate implements the fixed Philippine civil calendar used as
// the canonical date representation for the roster. Every date that
// crosses a package boundary is a "YYYY-MM-DD" string rendered in this
// zone, so equality is always plain string equality.
package phdate

import (
	"fmt"
	"time"
)

// Location is pinned to UTC+8. A fixed zone keeps the binary
// independent of the host tzdata.
var Location = time.FixedZone("Asia/Manila", 8*60*60)

const (
	DayFormat   = "2006-01-02"
	MonthFormat = "2006-01"
)

// FormatDatePH renders an instant as a Philippine calendar day.
func FormatDatePH(t time.Time) string {
	return t.In(Location).Format(DayFormat)
}

// ParseDatePH parses a "YYYY-MM-DD" day as civil midnight in Manila.
func ParseDatePH(date string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, date, Location)
}

// ConvertDatePHToUTCISO maps a Philippine civil midnight to its UTC
// instant, the representation sent to the persistence layer.
func ConvertDatePHToUTCISO(date string) (string, error) {
	t, err := ParseDatePH(date)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

// MonthRange returns the first and last day of a "YYYY-MM" month.
func MonthRange(month string) (string, string, error) {
	first, err := time.ParseInLocation(MonthFormat, month, Location)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	last := first.AddDate(0, 1, -1)
	return first.Format(DayFormat), last.Format(DayFormat), nil
}

// MonthDays enumerates every calendar day of a "YYYY-MM" month in order.
func MonthDays(month string) ([]string, error) {
	first, err := time.ParseInLocation(MonthFormat, month, Location)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	days := make([]string, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayFormat))
	}
	return days, nil
}

// Weekday reports the day of week of a canonical day (Sunday = 0).
func Weekday(date string) (time.Weekday, error) {
	t, err := ParseDatePH(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// PartitionWeeks splits an ordered day sequence into Sunday-first weeks
// of exactly seven slots, padding the edges with empty strings. Days
// are assumed consecutive; the first day's weekday decides the left
// padding.
func PartitionWeeks(days []string) [][7]string {
	if len(days) == 0 {
		return nil
	}

	offset := 0
	if wd, err := Weekday(days[0]); err == nil {
		offset = int(wd)
	}

	weeks := make([][7]string, 0, (offset+len(days)+6)/7)
	var week [7]string
	slot := offset

	for _, day := range days {
		week[slot] = day
		slot++
		if slot == 7 {
			weeks = append(weeks, week)
			week = [7]string{}
			slot = 0
		}
	}
	if slot > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// MonthLabel renders "YYYY-MM" as a human heading, e.g. "June 2025".
func MonthLabel(month string) (string, error) {
	t, err := time.ParseInLocation(MonthFormat, month, Location)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t.Format("January 2006"), nil
}

// Today is the current Philippine calendar day.
func Today() string {
	return FormatDatePH(time.Now())
}
