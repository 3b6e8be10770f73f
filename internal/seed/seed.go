package seed

import (
	"log/slog"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/repository"
)

var departments = []string{
	"Nursing Services",
	"Emergency Room",
	"Laboratory",
	"Radiology",
	"Pharmacy",
	"Billing",
}

var shiftTemplates = []domain.ShiftTemplate{
	{
		Name:         "Office Hours",
		Type:         domain.ShiftTemplateStandard,
		MorningIn:    "08:00",
		MorningOut:   "12:00",
		AfternoonIn:  "13:00",
		AfternoonOut: "17:00",
		Color:        "#42A5F5",
	},
	{
		Name:         "Office Friday",
		Type:         domain.ShiftTemplateStandard,
		MorningIn:    "08:00",
		MorningOut:   "12:00",
		AfternoonIn:  "12:30",
		AfternoonOut: "16:30",
		Color:        "#5C6BC0",
	},
	{
		Name:      "Billing Sat",
		Type:      domain.ShiftTemplateShifting,
		StartTime: "08:00",
		EndTime:   "12:00",
		Color:     "#8D6E63",
	},
	{
		Name:      "Morning Shift",
		Type:      domain.ShiftTemplateShifting,
		StartTime: "06:00",
		EndTime:   "14:00",
		Color:     "#66BB6A",
	},
	{
		Name:      "Mid Shift",
		Type:      domain.ShiftTemplateShifting,
		StartTime: "10:00",
		EndTime:   "18:00",
		Color:     "#FFA726",
	},
	{
		Name:                "Night Shift",
		Type:                domain.ShiftTemplateShifting,
		StartTime:           "22:00",
		EndTime:             "06:00",
		IsNightDifferential: true,
		Color:               "#7E57C2",
	},
	{
		Name:   "Day Off",
		Type:   domain.ShiftTemplateShifting,
		Status: domain.ShiftStatusOff,
		Color:  "#BDBDBD",
	},
}

var leaveTemplates = []domain.LeaveTemplate{
	{Name: "Sick Leave"},
	{Name: "Vacation Leave"},
	{Name: "Emergency Leave"},
	{Name: "Maternity Leave"},
	{Name: "Paternity Leave"},
	{Name: "Solo Parent Leave"},
	{Name: "Bereavement Leave"},
	{Name: "Service Incentive Leave"},
	{Name: "Compensatory Time Off", IsCompensatoryTimeOff: true},
	{Name: "Leave Without Pay"},
}

// Philippine holidays, 2025.
var holidays = []domain.Holiday{
	{Date: "2025-01-01", Name: "New Year's Day", Type: domain.HolidayRegular},
	{Date: "2025-01-29", Name: "Chinese New Year", Type: domain.HolidaySpecialNonWorking},
	{Date: "2025-04-09", Name: "Araw ng Kagitingan", Type: domain.HolidayRegular},
	{Date: "2025-04-17", Name: "Maundy Thursday", Type: domain.HolidayRegular},
	{Date: "2025-04-18", Name: "Good Friday", Type: domain.HolidayRegular},
	{Date: "2025-04-19", Name: "Black Saturday", Type: domain.HolidaySpecialNonWorking},
	{Date: "2025-05-01", Name: "Labor Day", Type: domain.HolidayRegular},
	{Date: "2025-06-12", Name: "Independence Day", Type: domain.HolidayRegular},
	{Date: "2025-08-21", Name: "Ninoy Aquino Day", Type: domain.HolidaySpecialNonWorking},
	{Date: "2025-08-25", Name: "National Heroes Day", Type: domain.HolidayRegular},
	{Date: "2025-11-01", Name: "All Saints' Day", Type: domain.HolidaySpecialNonWorking},
	{Date: "2025-11-30", Name: "Bonifacio Day", Type: domain.HolidayRegular},
	{Date: "2025-12-08", Name: "Feast of the Immaculate Conception", Type: domain.HolidaySpecialNonWorking},
	{Date: "2025-12-24", Name: "Christmas Eve", Type: domain.HolidaySpecialNonWorking},
	{Date: "2025-12-25", Name: "Christmas Day", Type: domain.HolidayRegular},
	{Date: "2025-12-30", Name: "Rizal Day", Type: domain.HolidayRegular},
	{Date: "2025-12-31", Name: "Last Day of the Year", Type: domain.HolidaySpecialNonWorking},
}

// SeedReferenceData inserts the baseline catalog: departments, shift
// and leave templates, and the holiday calendar. Inserts that collide
// with existing rows are logged and skipped, so reseeding is safe.
func SeedReferenceData(r *repository.Repository) {
	for _, name := range departments {
		department := &domain.Department{Name: name}
		if err := r.CreateDepartment(department); err != nil {
			slog.Error("failed to insert department", slog.String("name", name), slog.String("error", err.Error()))
			continue
		}
	}
	slog.Info("departments seeded", slog.Int("count", len(departments)))

	for i := range shiftTemplates {
		st := shiftTemplates[i]
		if err := r.CreateShiftTemplate(&st); err != nil {
			slog.Error("failed to insert shift template", slog.String("name", st.Name), slog.String("error", err.Error()))
			continue
		}
	}
	slog.Info("shift templates seeded", slog.Int("count", len(shiftTemplates)))

	for i := range leaveTemplates {
		lt := leaveTemplates[i]
		if err := r.CreateLeaveTemplate(&lt); err != nil {
			slog.Error("failed to insert leave template", slog.String("name", lt.Name), slog.String("error", err.Error()))
			continue
		}
	}
	slog.Info("leave templates seeded", slog.Int("count", len(leaveTemplates)))

	for i := range holidays {
		holiday := holidays[i]
		if err := r.CreateHoliday(&holiday); err != nil {
			slog.Error("failed to insert holiday", slog.String("date", holiday.Date), slog.String("error", err.Error()))
			continue
		}
	}
	slog.Info("holidays seeded", slog.Int("count", len(holidays)))
}
