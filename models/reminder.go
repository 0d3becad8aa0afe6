package models

// ReminderPayload is the task payload queued when a booking is confirmed,
// consumed by the reminder worker shortly before the appointment.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	FirstName   string `json:"firstName"`
	Date        string `json:"date"` // "YYYY-MM-DD"
	SlotTime    string `json:"slotTime"`
	ServiceType string `json:"serviceType"`
}
