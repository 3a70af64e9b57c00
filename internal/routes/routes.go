package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/therapy-scheduler/internal/config"
	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/handlers"
	"github.com/BruksfildServices01/therapy-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/therapy-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/therapy-scheduler/internal/middleware"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
	"github.com/BruksfildServices01/therapy-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/therapy-scheduler/internal/usecase/appointment"
)

// Dependencies are the process-wide singletons built by main.
type Dependencies struct {
	DB    *gorm.DB
	Redis *redis.Client // nil disables the availability cache
	Clock timezone.Clock
	Audit ucAppointment.Auditor
	Log   *zap.Logger
}

// NewScheduling builds the window policy and resolver from config.
func NewScheduling(cfg *config.Config, clock timezone.Clock) ucAppointment.Scheduling {
	return ucAppointment.Scheduling{
		Policy: schedule.Policy{
			MinNotice:       cfg.MinNotice,
			MaxRange:        cfg.MaxRange,
			PrivilegedRange: cfg.PrivilegedRange,
			Authorizer:      schedule.NewRoleAuthorizer(cfg.UnrestrictedRoles...),
		},
		Resolver: schedule.NewResolver(cfg.SlotMinutes, cfg.HorizonDays, schedule.NewLabeler(cfg.Locale)),
		Clock:    clock,
	}
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Dependencies) error {
	if err := handlers.RegisterValidators(); err != nil {
		return err
	}

	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		gin.Recovery(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// INFRA
	// ======================================================
	var repo domain.Repository = infraRepo.NewSchedulingGormRepository(deps.DB)
	if deps.Redis != nil {
		repo = cache.NewCachedRepository(repo, deps.Redis, cfg.CacheTTL, log)
	}

	sched := NewScheduling(cfg, deps.Clock)

	// ======================================================
	// USE CASES
	// ======================================================
	listProvidersUC := ucAppointment.NewListProviders(repo)
	getDateOptionsUC := ucAppointment.NewGetDateOptions(repo, sched)
	getTimeOptionsUC := ucAppointment.NewGetTimeOptions(repo, sched)

	createAppointmentUC := ucAppointment.NewCreateAppointment(repo, sched, deps.Audit)
	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(repo, sched, deps.Audit)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(repo, sched, deps.Audit)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(repo, sched, deps.Audit)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(repo, sched)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(repo, sched)

	getAvailabilityUC := ucAppointment.NewGetWeeklyAvailability(repo)
	replaceAvailabilityUC := ucAppointment.NewReplaceWeeklyAvailability(repo, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		listProvidersUC,
		getDateOptionsUC,
		getTimeOptionsUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	availabilityHandler := handlers.NewWeeklyAvailabilityHandler(
		getAvailabilityUC,
		replaceAvailabilityUC,
	)

	meHandler := handlers.NewMeHandler(deps.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	bookingLimiter := middleware.NewRateLimiter(cfg.BookingRatePerMin, cfg.BookingBurst, log)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   deps.Clock.Now().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		public := api.Group("/")
		public.Use(middleware.OptionalAuth(cfg))
		{
			public.GET("/providers", publicHandler.ListProviders)
			public.GET("/providers/:id/date-options", publicHandler.DateOptions)
			public.GET("/providers/:id/time-options", publicHandler.TimeOptions)
		}

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/appointments", bookingLimiter.Middleware(), appointmentHandler.Create)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			provider := secured.Group("/")
			provider.Use(middleware.RequireRole(models.RolePsychologist))
			{
				provider.GET("/me/availability", availabilityHandler.Get)
				provider.PUT("/me/availability", availabilityHandler.Update)

				provider.GET("/me/appointments", appointmentHandler.ListByDate)
				provider.GET("/me/appointments/month", appointmentHandler.ListByMonth)

				provider.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				provider.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			}

			operator := secured.Group("/")
			operator.Use(middleware.RequireRole(operatorRoles(cfg)...))
			{
				operator.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return nil
}

// operatorRoles are the unrestricted roles, defaulting to operator.
func operatorRoles(cfg *config.Config) []string {
	var roles []string
	for _, r := range cfg.UnrestrictedRoles {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		return []string{models.RoleOperator}
	}
	return roles
}
