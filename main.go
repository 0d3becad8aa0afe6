// File: noushy/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"github.com/bholdsworth/mindful-booking-noushy/config"
	"github.com/bholdsworth/mindful-booking-noushy/cron"
	"github.com/bholdsworth/mindful-booking-noushy/database"
	availabilityRepoPkg "github.com/bholdsworth/mindful-booking-noushy/database/repository/availability"
	bookingRepoPkg "github.com/bholdsworth/mindful-booking-noushy/database/repository/booking"
	invoiceRepoPkg "github.com/bholdsworth/mindful-booking-noushy/database/repository/invoice"
	messageRepoPkg "github.com/bholdsworth/mindful-booking-noushy/database/repository/message"
	patientRepoPkg "github.com/bholdsworth/mindful-booking-noushy/database/repository/patient"
	practitionerRepoPkg "github.com/bholdsworth/mindful-booking-noushy/database/repository/practitioner"
	staffRepoPkg "github.com/bholdsworth/mindful-booking-noushy/database/repository/staff"
	"github.com/bholdsworth/mindful-booking-noushy/handlers"
	"github.com/bholdsworth/mindful-booking-noushy/middleware"
	"github.com/bholdsworth/mindful-booking-noushy/routes"
	"github.com/bholdsworth/mindful-booking-noushy/services/auth"
	"github.com/bholdsworth/mindful-booking-noushy/services/booking"
	"github.com/bholdsworth/mindful-booking-noushy/services/dashboard"
	"github.com/bholdsworth/mindful-booking-noushy/services/invoice"
	"github.com/bholdsworth/mindful-booking-noushy/services/message"
	"github.com/bholdsworth/mindful-booking-noushy/services/notification"
	"github.com/bholdsworth/mindful-booking-noushy/services/patient"
	"github.com/bholdsworth/mindful-booking-noushy/services/practitioner"
	"github.com/bholdsworth/mindful-booking-noushy/services/tasks"
	"github.com/bholdsworth/mindful-booking-noushy/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepoPkg.NewRedisAvailabilityRepo(utils.GetCacheClient())
	bkRepo := bookingRepoPkg.NewMongoBookingRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()
	pracRepo := practitionerRepoPkg.NewMongoPractitionerRepo()
	invRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	msgRepo := messageRepoPkg.NewMongoMessageRepo()
	stfRepo := staffRepoPkg.NewMongoStaffRepo()

	// reminder queue.
	queueOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	reminderScheduler := tasks.NewAsynqReminderScheduler(queueOpts)

	// services.
	availabilityService := &booking.DefaultAvailabilityService{
		Repo:             availRepo,
		MaxAdvanceMonths: config.AppConfig.MaxAdvanceBookingMonths,
	}
	slotGenerator := &booking.DefaultSlotGenerator{
		Availability:     availabilityService,
		Occupancy:        booking.BookedOccupancy{Repo: bkRepo},
		DefaultOpenTime:  config.AppConfig.DefaultOpenTime,
		DefaultCloseTime: config.AppConfig.DefaultCloseTime,
		SlotDuration:     time.Duration(config.AppConfig.SlotDurationMinutes) * time.Minute,
		BufferTime:       time.Duration(config.AppConfig.BufferMinutes) * time.Minute,
	}
	sessionService := &booking.DefaultSessionService{
		Cache:        utils.GetCacheClient(),
		Availability: availabilityService,
		Slots:        slotGenerator,
		Repo:         bkRepo,
		Reminders:    reminderScheduler,
	}

	authService := &auth.DefaultAuthService{
		Repo:  stfRepo,
		Cache: utils.GetAuthCacheClient(),
	}
	patientService := &patient.DefaultPatientService{Repo: patRepo}
	practitionerService := &practitioner.DefaultPractitionerService{Repo: pracRepo}
	invoiceService := &invoice.DefaultInvoiceService{
		Repo:        invRepo,
		PatientRepo: patRepo,
	}
	messageService := &message.DefaultMessageService{
		Repo:        msgRepo,
		PatientRepo: patRepo,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		Bookings: bkRepo,
		Invoices: invRepo,
		Messages: msgRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService: authService,

		Auth:         handlers.NewAuthHandler(authService, logger),
		Booking:      handlers.NewBookingHandler(availabilityService, slotGenerator, sessionService, logger),
		Availability: handlers.NewAvailabilityAdminHandler(availRepo, logger),
		Patients:     handlers.NewPatientHandler(patientService, logger),
		Practitioner: handlers.NewPractitionerHandler(practitionerService, logger),
		Invoices:     handlers.NewInvoiceHandler(invoiceService, logger),
		Messages:     handlers.NewMessageHandler(messageService, logger),
		Dashboard:    handlers.NewDashboardHandler(dashboardService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	notificationService := &notification.DefaultNotificationService{
		Email: &notification.SMTPSender{
			Addr: config.AppConfig.SMTPAddr,
			From: config.AppConfig.SMTPFrom,
		},
	}
	cron.InitReminderWorker(notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
