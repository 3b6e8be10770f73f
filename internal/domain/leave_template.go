package domain

import "time"

type LeaveTemplate struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// IsCompensatoryTimeOff gates the required prior-work-dates
	// sub-structure on assignments that use this template.
	IsCompensatoryTimeOff bool      `json:"isCompensatoryTimeOff"`
	CreatedAt             time.Time `json:"createdAt"`
	Version               int32     `json:"-"`
}
