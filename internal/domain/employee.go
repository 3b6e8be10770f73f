package domain

import (
	"strings"
	"time"
)

type Employee struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	MiddleName   string    `json:"middleName"`
	LastName     string    `json:"lastName"`
	Position     string    `json:"position"`
	DepartmentID int64     `json:"departmentID"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

// DisplayName renders the roster form of the name, e.g. "Santos, M.".
func (e *Employee) DisplayName() string {
	last := strings.TrimSpace(e.LastName)
	first := strings.TrimSpace(e.FirstName)
	if last == "" && first == "" {
		return ""
	}
	if first == "" {
		return last
	}
	initial := string([]rune(first)[0])
	if last == "" {
		return first
	}
	return last + ", " + strings.ToUpper(initial) + "."
}

func (e *Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " ")
}
