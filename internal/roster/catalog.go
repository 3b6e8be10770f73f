// Package roster implements the duty-schedule editing core: the entry
// store, the shift-hours calculator, the per-date display projection,
// the weekly/monthly summary engine, the copy/propagation engine and
// the pre-commit validation rules. Everything operates on plain domain
// values and canonical "YYYY-MM-DD" date strings; nothing in here talks
// to the database or the HTTP layer.
package roster

import (
	"strings"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

// Catalog bundles the read-only reference data a projection needs to
// resolve bare identities. A stale or partial catalog degrades output
// (unknown employee, blank shift) but never fails a computation.
type Catalog struct {
	Employees      []*domain.Employee
	ShiftTemplates []*domain.ShiftTemplate
	LeaveTemplates []*domain.LeaveTemplate
	Holidays       []*domain.Holiday
}

func (c *Catalog) EmployeeByID(id int64) *domain.Employee {
	if c == nil {
		return nil
	}
	for _, e := range c.Employees {
		if e != nil && e.ID == id {
			return e
		}
	}
	return nil
}

func (c *Catalog) ShiftTemplateByID(id int64) *domain.ShiftTemplate {
	if c == nil {
		return nil
	}
	for _, st := range c.ShiftTemplates {
		if st != nil && st.ID == id {
			return st
		}
	}
	return nil
}

func (c *Catalog) ShiftTemplateByName(name string) *domain.ShiftTemplate {
	if c == nil {
		return nil
	}
	for _, st := range c.ShiftTemplates {
		if st != nil && strings.EqualFold(st.Name, name) {
			return st
		}
	}
	return nil
}

func (c *Catalog) LeaveTemplateByID(id int64) *domain.LeaveTemplate {
	if c == nil {
		return nil
	}
	for _, lt := range c.LeaveTemplates {
		if lt != nil && lt.ID == id {
			return lt
		}
	}
	return nil
}

// HolidayOn returns the holiday falling on a canonical day, nil if the
// day is a working day.
func (c *Catalog) HolidayOn(date string) *domain.Holiday {
	if c == nil {
		return nil
	}
	for _, h := range c.Holidays {
		if h != nil && h.Date == date {
			return h
		}
	}
	return nil
}

func (c *Catalog) IsHoliday(date string) bool {
	return c.HolidayOn(date) != nil
}

// ResolveEmployee prefers the embedded record and falls back to the
// catalog. Nil means the reference cannot be resolved right now.
func (c *Catalog) ResolveEmployee(ref domain.Ref[domain.Employee]) *domain.Employee {
	if ref.Record != nil {
		return ref.Record
	}
	return c.EmployeeByID(ref.ID)
}

func (c *Catalog) ResolveShiftTemplate(ref *domain.Ref[domain.ShiftTemplate]) *domain.ShiftTemplate {
	if ref == nil {
		return nil
	}
	if ref.Record != nil {
		return ref.Record
	}
	return c.ShiftTemplateByID(ref.ID)
}

func (c *Catalog) ResolveLeaveTemplate(ref *domain.Ref[domain.LeaveTemplate]) *domain.LeaveTemplate {
	if ref == nil {
		return nil
	}
	if ref.Record != nil {
		return ref.Record
	}
	return c.LeaveTemplateByID(ref.ID)
}
