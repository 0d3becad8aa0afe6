package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bholdsworth/mindful-booking-noushy/handlers"
	"github.com/bholdsworth/mindful-booking-noushy/middleware"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Noushy Physiotherapy booking server"})
	})
}

// RegisterAuthRoutes registers staff sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.POST("/logout", hb.Auth.Logout)
	}
}

// RegisterBookingRoutes sets up the public booking site endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/reference", hb.Booking.GetReferenceData)
		api.GET("/dates", hb.Booking.GetAvailableDates)
		api.GET("/slots", hb.Booking.GetTimeSlots)

		api.POST("/session", hb.Booking.StartSession)
		api.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		api.POST("/confirm", hb.Booking.ConfirmBooking)
		api.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterAdminRoutes sets up availability administration endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("/available-days", hb.Availability.GetAvailableDays)
		api.PUT("/available-days", hb.Availability.SaveAvailableDays)
		api.POST("/staff", hb.Auth.CreateStaff)
	}
}

// RegisterManagementRoutes sets up the clinic management console endpoints.
func RegisterManagementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/management")
	api.Use(middleware.JWTAuthStaffMiddleware(hb.AuthService))
	{
		api.GET("/dashboard", hb.Dashboard.GetSummary)
		api.GET("/bookings/:id", hb.Dashboard.GetBooking)
		api.GET("/me", hb.Auth.Me)

		api.GET("/patients", hb.Patients.ListPatients)
		api.POST("/patients", hb.Patients.CreatePatient)
		api.GET("/patients/:id", hb.Patients.GetPatient)
		api.PUT("/patients/:id", hb.Patients.UpdatePatient)
		api.DELETE("/patients/:id", hb.Patients.DeletePatient)
		api.GET("/patients/:id/notes", hb.Patients.GetTreatmentNotes)
		api.POST("/patients/:id/notes", hb.Patients.AddTreatmentNote)

		api.GET("/practitioners", hb.Practitioner.ListPractitioners)
		api.POST("/practitioners", hb.Practitioner.CreatePractitioner)
		api.GET("/practitioners/:id", hb.Practitioner.GetPractitioner)
		api.PUT("/practitioners/:id", hb.Practitioner.UpdatePractitioner)
		api.PUT("/practitioners/:id/deactivate", hb.Practitioner.DeactivatePractitioner)
		api.DELETE("/practitioners/:id", hb.Practitioner.DeletePractitioner)

		api.GET("/invoices", hb.Invoices.ListInvoices)
		api.POST("/invoices", hb.Invoices.CreateInvoice)
		api.GET("/invoices/:id", hb.Invoices.GetInvoice)
		api.PUT("/invoices/:id/status", hb.Invoices.UpdateInvoiceStatus)
		api.POST("/invoices/:id/payment-intent", hb.Invoices.CreatePaymentIntent)

		api.GET("/messages", hb.Messages.ListThreads)
		api.POST("/messages", hb.Messages.SendMessage)
		api.GET("/messages/:id", hb.Messages.GetThreadMessages)
		api.PUT("/messages/:id/read", hb.Messages.MarkThreadRead)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterManagementRoutes(r, hb)
}
