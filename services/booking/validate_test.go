package booking

import (
	"testing"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

func validForm() models.BookingFormData {
	return models.BookingFormData{
		FirstName:    "Alice",
		LastName:     "Nguyen",
		Email:        "alice@example.com",
		Phone:        "0412 345 678",
		Date:         "2026-03-12",
		TimeSlot:     &models.TimeSlot{ID: "2026-03-12-09-00"},
		ServiceType:  "Manual Therapy",
		MedicareCode: "105",
	}
}

func TestValidateBookingDataValid(t *testing.T) {
	if errs := ValidateBookingData(validForm(), true); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateBookingDataMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.BookingFormData)
		want   string
	}{
		{"first name", func(f *models.BookingFormData) { f.FirstName = "" }, "First name is required"},
		{"last name", func(f *models.BookingFormData) { f.LastName = "" }, "Last name is required"},
		{"email", func(f *models.BookingFormData) { f.Email = "" }, "Email is required"},
		{"phone", func(f *models.BookingFormData) { f.Phone = "" }, "Phone number is required"},
		{"date", func(f *models.BookingFormData) { f.Date = "" }, "Date is required"},
		{"time slot", func(f *models.BookingFormData) { f.TimeSlot = nil }, "Time slot is required"},
		{"service type", func(f *models.BookingFormData) { f.ServiceType = "" }, "Service type is required"},
		{"medicare code", func(f *models.BookingFormData) { f.MedicareCode = "" }, "Medicare code is required"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			form := validForm()
			c.mutate(&form)
			errs := ValidateBookingData(form, true)
			if len(errs) != 1 || errs[0] != c.want {
				t.Fatalf("got %v, want exactly [%q]", errs, c.want)
			}
		})
	}
}

func TestValidateBookingDataInvalidEmail(t *testing.T) {
	form := validForm()
	form.Email = "not-an-email"
	errs := ValidateBookingData(form, true)
	if len(errs) != 1 || errs[0] != "Email is invalid" {
		t.Fatalf("got %v, want exactly [\"Email is invalid\"]", errs)
	}
}

func TestValidateBookingDataCollectsAllErrors(t *testing.T) {
	errs := ValidateBookingData(models.BookingFormData{}, true)
	want := []string{
		"First name is required",
		"Last name is required",
		"Email is required",
		"Phone number is required",
		"Date is required",
		"Time slot is required",
		"Service type is required",
		"Medicare code is required",
	}
	if len(errs) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(errs), len(want), errs)
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Fatalf("errs[%d] = %q, want %q", i, errs[i], want[i])
		}
	}
}

func TestValidateBookingDataMedicareOptional(t *testing.T) {
	form := validForm()
	form.MedicareCode = ""
	if errs := ValidateBookingData(form, false); len(errs) != 0 {
		t.Fatalf("expected medicare code to be skippable, got %v", errs)
	}
}
