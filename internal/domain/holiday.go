package domain

import "time"

type HolidayType string

const (
	HolidayRegular           HolidayType = "regular"
	HolidaySpecialNonWorking HolidayType = "special_non_working"
	HolidaySpecialWorking    HolidayType = "special_working"
	HolidayLocal             HolidayType = "local"
)

type Holiday struct {
	ID   int64 `json:"id"`
	// Date is the canonical calendar day, "YYYY-MM-DD".
	Date      string      `json:"date"`
	Name      string      `json:"name"`
	Type      HolidayType `json:"type"`
	CreatedAt time.Time   `json:"createdAt"`
	Version   int32       `json:"-"`
}

// Abbreviation is the 2-letter marker shown on day headers.
func (h *Holiday) Abbreviation() string {
	switch h.Type {
	case HolidayRegular:
		return "RH"
	case HolidaySpecialNonWorking:
		return "SN"
	case HolidaySpecialWorking:
		return "SW"
	case HolidayLocal:
		return "LH"
	default:
		return "HO"
	}
}
