package booking

import (
	"regexp"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateBookingData checks a draft booking for completeness and returns
// every applicable failure message; an empty list means the draft is valid.
// Call sites that collect the Medicare code later pass requireMedicareCode
// as false to skip that one rule.
func ValidateBookingData(data models.BookingFormData, requireMedicareCode bool) []string {
	errors := []string{}

	if data.FirstName == "" {
		errors = append(errors, "First name is required")
	}
	if data.LastName == "" {
		errors = append(errors, "Last name is required")
	}
	if data.Email == "" {
		errors = append(errors, "Email is required")
	} else if !emailPattern.MatchString(data.Email) {
		errors = append(errors, "Email is invalid")
	}
	if data.Phone == "" {
		errors = append(errors, "Phone number is required")
	}
	if data.Date == "" {
		errors = append(errors, "Date is required")
	}
	if data.TimeSlot == nil {
		errors = append(errors, "Time slot is required")
	}
	if data.ServiceType == "" {
		errors = append(errors, "Service type is required")
	}
	if requireMedicareCode && data.MedicareCode == "" {
		errors = append(errors, "Medicare code is required")
	}

	return errors
}
