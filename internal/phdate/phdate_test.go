package phdate_test

import (
	"testing"
	"time"

	"github.com/caremetrix/duty-roster/backend/internal/phdate"
)

func TestFormatDatePH(t *testing.T) {
	// 2025-06-01 16:30 UTC is already 2025-06-02 00:30 in Manila.
	instant := time.Date(2025, 6, 1, 16, 30, 0, 0, time.UTC)
	if got := phdate.FormatDatePH(instant); got != "2025-06-02" {
		t.Errorf("FormatDatePH = %q, want %q", got, "2025-06-02")
	}
}

func TestConvertDatePHToUTCISO(t *testing.T) {
	got, err := phdate.ConvertDatePHToUTCISO("2025-06-02")
	if err != nil {
		t.Fatalf("ConvertDatePHToUTCISO: %v", err)
	}
	if got != "2025-06-01T16:00:00Z" {
		t.Errorf("ConvertDatePHToUTCISO = %q, want %q", got, "2025-06-01T16:00:00Z")
	}

	if _, err := phdate.ConvertDatePHToUTCISO("06/02/2025"); err == nil {
		t.Error("ConvertDatePHToUTCISO accepted a non-canonical date")
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		month string
		first string
		last  string
	}{
		{"2025-06", "2025-06-01", "2025-06-30"},
		{"2025-02", "2025-02-01", "2025-02-28"},
		{"2024-02", "2024-02-01", "2024-02-29"},
		{"2025-12", "2025-12-01", "2025-12-31"},
	}
	for _, tt := range tests {
		first, last, err := phdate.MonthRange(tt.month)
		if err != nil {
			t.Fatalf("MonthRange(%q): %v", tt.month, err)
		}
		if first != tt.first || last != tt.last {
			t.Errorf("MonthRange(%q) = %q..%q, want %q..%q", tt.month, first, last, tt.first, tt.last)
		}
	}
}

func TestMonthDays(t *testing.T) {
	days, err := phdate.MonthDays("2025-06")
	if err != nil {
		t.Fatalf("MonthDays: %v", err)
	}
	if len(days) != 30 {
		t.Fatalf("MonthDays length = %d, want 30", len(days))
	}
	if days[0] != "2025-06-01" || days[29] != "2025-06-30" {
		t.Errorf("MonthDays bounds = %q..%q", days[0], days[29])
	}
}

func TestPartitionWeeks(t *testing.T) {
	days, err := phdate.MonthDays("2025-06")
	if err != nil {
		t.Fatalf("MonthDays: %v", err)
	}

	weeks := phdate.PartitionWeeks(days)
	// June 2025 starts on a Sunday and spans exactly five weeks.
	if len(weeks) != 5 {
		t.Fatalf("weeks = %d, want 5", len(weeks))
	}
	if weeks[0][0] != "2025-06-01" {
		t.Errorf("first slot = %q, want 2025-06-01", weeks[0][0])
	}
	if weeks[4][1] != "2025-06-30" {
		t.Errorf("last day slot = %q, want 2025-06-30", weeks[4][1])
	}
	for slot := 2; slot < 7; slot++ {
		if weeks[4][slot] != "" {
			t.Errorf("trailing slot %d = %q, want empty", slot, weeks[4][slot])
		}
	}

	// July 2025 starts on a Tuesday: two leading blanks.
	days, _ = phdate.MonthDays("2025-07")
	weeks = phdate.PartitionWeeks(days)
	if weeks[0][0] != "" || weeks[0][1] != "" {
		t.Errorf("leading padding = %q,%q, want blanks", weeks[0][0], weeks[0][1])
	}
	if weeks[0][2] != "2025-07-01" {
		t.Errorf("first day slot = %q, want 2025-07-01", weeks[0][2])
	}
}

func TestWeekday(t *testing.T) {
	wd, err := phdate.Weekday("2025-06-06")
	if err != nil {
		t.Fatalf("Weekday: %v", err)
	}
	if wd != time.Friday {
		t.Errorf("Weekday(2025-06-06) = %v, want Friday", wd)
	}
}

func TestMonthLabel(t *testing.T) {
	label, err := phdate.MonthLabel("2025-06")
	if err != nil {
		t.Fatalf("MonthLabel: %v", err)
	}
	if label != "June 2025" {
		t.Errorf("MonthLabel = %q, want %q", label, "June 2025")
	}
}
