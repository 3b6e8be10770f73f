package domain

import "time"

type ShiftTemplateType string

const (
	// Standard is the two-block office shift with separate morning and
	// afternoon in/out times.
	ShiftTemplateStandard ShiftTemplateType = "standard"
	// Shifting is a single start/end block that may wrap past midnight.
	ShiftTemplateShifting ShiftTemplateType = "shifting"
)

// ShiftStatusOff marks a non-working template ("Day Off" entries on the
// roster that still carry a template for display purposes).
const ShiftStatusOff = "off"

type ShiftTemplate struct {
	ID     int64             `json:"id"`
	Name   string            `json:"name"`
	Type   ShiftTemplateType `json:"type"`
	Status string            `json:"status,omitempty"`

	// Standard fields, "HH:MM".
	MorningIn    string `json:"morningIn,omitempty"`
	MorningOut   string `json:"morningOut,omitempty"`
	AfternoonIn  string `json:"afternoonIn,omitempty"`
	AfternoonOut string `json:"afternoonOut,omitempty"`

	// Shifting fields, "HH:MM".
	StartTime           string `json:"startTime,omitempty"`
	EndTime             string `json:"endTime,omitempty"`
	IsNightDifferential bool   `json:"isNightDifferential,omitempty"`

	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

func (st *ShiftTemplate) IsOff() bool {
	return st != nil && st.Status == ShiftStatusOff
}
