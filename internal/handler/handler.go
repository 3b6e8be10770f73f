package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/caremetrix/duty-roster/backend/internal/config"
	"github.com/caremetrix/duty-roster/backend/internal/domain"
	"github.com/caremetrix/duty-roster/backend/internal/repository"
	"github.com/caremetrix/duty-roster/backend/internal/roster"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

// weekdayRules builds the copy eligibility rules out of the configured
// template name patterns.
func (h *Handler) weekdayRules() []roster.WeekdayRule {
	rules := make([]roster.WeekdayRule, 0, len(h.config.Roster.FridayOnlyPatterns)+len(h.config.Roster.SaturdayOnlyPatterns))
	for _, pattern := range h.config.Roster.FridayOnlyPatterns {
		rules = append(rules, roster.WeekdayRule{NamePattern: pattern, Weekday: time.Friday})
	}
	for _, pattern := range h.config.Roster.SaturdayOnlyPatterns {
		rules = append(rules, roster.WeekdayRule{NamePattern: pattern, Weekday: time.Saturday})
	}
	return rules
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a login.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleHR})).Post("/", h.CreateUser)
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleHR})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleHR})).Delete("/", h.DeleteUser)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleHR})).Post("/", h.CreateDepartment)
			r.Get("/", h.GetAllDepartments)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.department)
				r.Get("/", h.GetDepartment)
				r.Get("/employees", h.GetDepartmentEmployees)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHR})).Patch("/", h.UpdateDepartment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHR})).Delete("/", h.DeleteDepartment)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Post("/", h.CreateEmployee)
			r.Get("/", h.GetAllEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employee)
				r.Get("/", h.GetEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Patch("/", h.UpdateEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHR})).Delete("/", h.DeleteEmployee)
			})
		})

		r.Route("/shift-templates", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Post("/", h.CreateShiftTemplate)
			r.Get("/", h.GetAllShiftTemplates)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftTemplate)
				r.Get("/", h.GetShiftTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Patch("/", h.UpdateShiftTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Delete("/", h.DeleteShiftTemplate)
			})
		})

		r.Route("/leave-templates", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Post("/", h.CreateLeaveTemplate)
			r.Get("/", h.GetAllLeaveTemplates)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.leaveTemplate)
				r.Get("/", h.GetLeaveTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Patch("/", h.UpdateLeaveTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Delete("/", h.DeleteLeaveTemplate)
			})
		})

		r.Route("/holidays", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleHR})).Post("/", h.CreateHoliday)
			r.Get("/", h.GetAllHolidays)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.holiday)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHR})).Patch("/", h.UpdateHoliday)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHR})).Delete("/", h.DeleteHoliday)
			})
		})

		r.Route("/duty-schedules", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR})).Post("/", h.CreateDutySchedule)
			r.Get("/", h.GetAllDutySchedules)
			r.Get("/public/{publicID}", h.GetDutyScheduleByPublicID)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.dutySchedule)
				r.Get("/", h.GetDutySchedule)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHR})).Delete("/", h.DeleteDutySchedule)
				r.Get("/days/{date}", h.GetDutyScheduleDay)
				r.Get("/summary", h.GetDutyScheduleSummary)

				r.Group(func(r chi.Router) {
					r.Use(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHR}))
					r.Use(h.preventEditFinalizedSchedule)
					r.Put("/entries", h.ReplaceDutyScheduleEntries)
					r.Post("/entries", h.UpsertDutyScheduleAssignment)
					r.Delete("/entries/{date}/{employeeID}", h.RemoveDutyScheduleAssignment)
					r.Post("/copy", h.CopyDutyScheduleEntries)
				})

				r.With(h.myInfo).With(h.RequiredRole([]domain.Role{domain.RoleHR})).Post("/finalize", h.FinalizeDutySchedule)
			})
		})
	})
}
