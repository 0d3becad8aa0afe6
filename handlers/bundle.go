package handlers

import "github.com/bholdsworth/mindful-booking-noushy/services/auth"

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	AuthService auth.AuthService

	Auth         *AuthHandler
	Booking      *BookingHandler
	Availability *AvailabilityAdminHandler
	Patients     *PatientHandler
	Practitioner *PractitionerHandler
	Invoices     *InvoiceHandler
	Messages     *MessageHandler
	Dashboard    *DashboardHandler
}
