package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/lumeabeauty/studio-scheduler/internal/audit"
	"github.com/lumeabeauty/studio-scheduler/internal/calendar"
	"github.com/lumeabeauty/studio-scheduler/internal/config"
	"github.com/lumeabeauty/studio-scheduler/internal/handlers"
	infraRepo "github.com/lumeabeauty/studio-scheduler/internal/infra/repository"
	"github.com/lumeabeauty/studio-scheduler/internal/middleware"
	"github.com/lumeabeauty/studio-scheduler/internal/notify"
	ucBooking "github.com/lumeabeauty/studio-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	notifyDispatcher := notify.NewDispatcher(mailer, cfg.OperatorEmail)

	var cal calendar.Client = calendar.Disabled{}
	if cfg.CalendarEnabled() {
		cal = calendar.NewHTTPClient(cfg)
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cal,
	)

	approveBookingUC := ucBooking.NewApproveBooking(
		bookingRepo,
		cal,
		notifyDispatcher,
		auditDispatcher,
	)

	rejectBookingUC := ucBooking.NewRejectBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	modifyBookingUC := ucBooking.NewModifyBooking(
		bookingRepo,
		auditDispatcher,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		cal,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookingsByStatus(bookingRepo)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(createBookingUC, availabilityUC)
	staffHandler := handlers.NewStaffHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		listBookingsUC,
		getBookingUC,
		approveBookingUC,
		rejectBookingUC,
		modifyBookingUC,
		deleteBookingUC,
	)

	rateLimiter := middleware.NewRateLimiter(rdb, 60, time.Minute)

	// ======================================================
	// PUBLIC
	// ======================================================
	public := r.Group("/")
	public.Use(rateLimiter.Middleware())
	{
		public.POST("/bookings", publicHandler.CreateBooking)
		public.GET("/bookings/availability", publicHandler.Availability)
		public.GET("/staff", staffHandler.List)
	}

	r.POST("/admin/login", authHandler.Login)

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.POST("/logout", authHandler.Logout)
		admin.GET("/me", authHandler.Me)

		admin.GET("/bookings/pending", bookingHandler.ListPending)
		admin.GET("/bookings/confirmed", bookingHandler.ListConfirmed)
		admin.GET("/bookings/:id", bookingHandler.Get)
		admin.POST("/bookings/:id/approve", bookingHandler.Approve)
		admin.POST("/bookings/:id/reject", bookingHandler.Reject)
		admin.PUT("/bookings/:id/modify", bookingHandler.Modify)
		admin.DELETE("/bookings/:id", bookingHandler.Delete)

		admin.POST("/staff", staffHandler.Create)
		admin.PUT("/staff/:id", staffHandler.Update)
		admin.DELETE("/staff/:id", staffHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
