package models

import "time"

// BookingFormData is the draft record a visitor assembles through the
// booking wizard. It lives only inside a cached booking session.
type BookingFormData struct {
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Date         string    `json:"date,omitempty"` // "YYYY-MM-DD", empty until a date is chosen
	TimeSlot     *TimeSlot `json:"timeSlot,omitempty"`
	ServiceType  string    `json:"serviceType"`
	MedicareCode string    `json:"medicareCode"`
	Notes        string    `json:"notes"`
}

// BookingSession tracks a visitor's progress through the booking wizard.
// Sessions are cached in Redis with a TTL and discarded after confirmation.
type BookingSession struct {
	Form          BookingFormData `json:"form"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID           string    `bson:"id" json:"id"`                     // Unique booking identifier (UUID)
	FirstName    string    `bson:"first_name" json:"first_name"`     // Visitor's given name
	LastName     string    `bson:"last_name" json:"last_name"`       // Visitor's family name
	Email        string    `bson:"email" json:"email"`               // Contact email
	Phone        string    `bson:"phone" json:"phone"`               // Contact phone
	Date         string    `bson:"date" json:"date"`                 // Booking date in "YYYY-MM-DD" format
	SlotID       string    `bson:"slot_id" json:"slot_id"`           // Chosen slot identifier
	Start        time.Time `bson:"start" json:"start"`               // Slot start instant
	ServiceType  string    `bson:"service_type" json:"service_type"` // e.g., "Manual Therapy"
	MedicareCode string    `bson:"medicare_code,omitempty" json:"medicare_code,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status       string    `bson:"status" json:"status"`         // e.g., "Confirmed"
	CreatedAt    time.Time `bson:"created_at" json:"created_at"` // Timestamp when booking was created
}
