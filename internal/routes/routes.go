package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamora/booking-api/internal/audit"
	"github.com/glamora/booking-api/internal/cache"
	"github.com/glamora/booking-api/internal/config"
	"github.com/glamora/booking-api/internal/handlers"
	"github.com/glamora/booking-api/internal/infra/repository"
	"github.com/glamora/booking-api/internal/middleware"
	"github.com/glamora/booking-api/internal/models"
	"github.com/glamora/booking-api/internal/notify"
	"github.com/glamora/booking-api/internal/payments"
	ucappointment "github.com/glamora/booking-api/internal/usecase/appointment"
	ucpayment "github.com/glamora/booking-api/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewBookingGormRepository(db)
	auditor := audit.NewDispatcher(audit.New(db))
	availabilityCache := cache.NewAvailabilityCache(cfg.RedisAddr)

	var processor payments.Processor = payments.Disabled{}
	if cfg.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			log.Println("payments disabled:", err)
		} else {
			processor = mp
		}
	}

	var mailer notify.Sender = notify.NopSender{}
	if cfg.SendGridKey != "" {
		mailer = notify.NewSendGridSender(cfg.SendGridKey, cfg.SendGridFromName, cfg.SendGridFromEmail)
	}

	createBooking := ucappointment.NewCreateBooking(repo, auditor, availabilityCache, cfg.ServiceFee, cfg.Timezone)
	createAppointment := ucappointment.NewCreateArtistAppointment(repo, auditor, availabilityCache, cfg.ServiceFee, cfg.Timezone)
	updateStatus := ucappointment.NewUpdateStatus(repo, auditor, mailer, cfg.Timezone)
	listAppointments := ucappointment.NewListAppointments(repo)
	checkAvailability := ucappointment.NewCheckAvailability(repo, availabilityCache)
	processPayment := ucpayment.NewProcessPayment(repo, processor, auditor, mailer)
	requestRefund := ucpayment.NewRequestRefund(repo, processor, auditor)

	authHandler := handlers.NewAuthHandler(db, cfg, auditor)
	userHandler := handlers.NewUserHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(checkAvailability, cfg.Timezone)
	bookingHandler := handlers.NewBookingHandler(createBooking, listAppointments, repo)
	appointmentHandler := handlers.NewAppointmentHandler(createAppointment, updateStatus, listAppointments, repo, cfg.Timezone)
	blockedTimeHandler := handlers.NewBlockedTimeHandler(db, availabilityCache, auditor, cfg.Timezone)
	paymentHandler := handlers.NewPaymentHandler(processPayment, requestRefund)
	transactionHandler := handlers.NewTransactionHandler(db, auditor)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	auditLogHandler := handlers.NewAuditLogHandler(db)
	adminHandler := handlers.NewAdminHandler(db, auditor, mailer)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Public browsing: no token required.
	api.GET("/artists/:id/availability", availabilityHandler.Check)
	api.GET("/artists/:id/services", serviceHandler.ListForArtist)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/me", userHandler.Me)
	}

	client := api.Group("/client")
	client.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleClient))
	{
		client.POST("/bookings", bookingHandler.Create)
		client.GET("/bookings", bookingHandler.List)
		client.GET("/bookings/:id", bookingHandler.Get)
		client.POST("/payments/process", paymentHandler.Process)
		client.POST("/payments/refund", paymentHandler.Refund)
	}

	artist := api.Group("/artist")
	artist.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleArtist))
	{
		artist.POST("/appointments", appointmentHandler.Create)
		artist.GET("/appointments", appointmentHandler.List)
		artist.GET("/appointments/:id", appointmentHandler.Get)
		artist.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)

		artist.POST("/blocked-time", blockedTimeHandler.CreateBlockedTime)
		artist.GET("/blocked-time", blockedTimeHandler.ListBlockedTimes)
		artist.DELETE("/blocked-time/:id", blockedTimeHandler.DeleteBlockedTime)

		artist.POST("/vacations", blockedTimeHandler.CreateVacation)
		artist.GET("/vacations", blockedTimeHandler.ListVacations)
		artist.DELETE("/vacations/:id", blockedTimeHandler.DeleteVacation)

		artist.POST("/services", serviceHandler.Create)
		artist.GET("/services", serviceHandler.ListMine)
		artist.PUT("/services/:id", serviceHandler.Update)
		artist.DELETE("/services/:id", serviceHandler.Delete)

		artist.GET("/payments/transactions", transactionHandler.List)
		artist.GET("/payments/balance", transactionHandler.Balance)
		artist.POST("/payments/withdraw", transactionHandler.Withdraw)

		artist.GET("/clients", clientHandler.List)
		artist.GET("/audit-logs", auditLogHandler.List)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/artists", adminHandler.ListArtists)
		admin.PUT("/artists/:id/approve", adminHandler.ApproveArtist)
		admin.PUT("/artists/:id/reject", adminHandler.RejectArtist)
	}
}
