package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

func newDateTestService(repo *fakeAvailabilityRepo, now time.Time) *DefaultSessionService {
	return &DefaultSessionService{
		Availability: &DefaultAvailabilityService{Repo: repo},
		Clock:        func() time.Time { return now },
	}
}

func bookingErrCode(t *testing.T, err error) string {
	t.Helper()
	var bookingErr *BookingError
	if !errors.As(err, &bookingErr) {
		t.Fatalf("expected a BookingError, got %v", err)
	}
	return bookingErr.Code
}

func TestApplyDateRejectsPastDates(t *testing.T) {
	// A stale record for yesterday is still in the store and marked open.
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-03-11", Available: true},
		{Date: "2026-03-12", Available: true},
	}}
	now := time.Date(2026, 3, 12, 12, 0, 0, 0, time.Local)
	svc := newDateTestService(repo, now)
	session := &models.BookingSession{}

	err := svc.applyDate(context.Background(), session, "2026-03-11")
	if code := bookingErrCode(t, err); code != "dateUnavailable" {
		t.Fatalf("past date gave code %q, want dateUnavailable", code)
	}
	if session.Form.Date != "" {
		t.Fatalf("rejected date leaked into the draft: %q", session.Form.Date)
	}

	if err := svc.applyDate(context.Background(), session, "2026-03-12"); err != nil {
		t.Fatalf("today should be selectable: %v", err)
	}
	if session.Form.Date != "2026-03-12" {
		t.Fatalf("draft date = %q, want 2026-03-12", session.Form.Date)
	}
}

func TestApplyDateRejectsTooFarAhead(t *testing.T) {
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-05-01", Available: true},
	}}
	svc := newDateTestService(repo, time.Date(2026, 3, 12, 12, 0, 0, 0, time.Local))
	session := &models.BookingSession{}

	err := svc.applyDate(context.Background(), session, "2026-05-01")
	if code := bookingErrCode(t, err); code != "dateTooFarAhead" {
		t.Fatalf("far-future date gave code %q, want dateTooFarAhead", code)
	}
}

func TestApplyDateRejectsClosedDays(t *testing.T) {
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-03-13", Available: false},
	}}
	svc := newDateTestService(repo, time.Date(2026, 3, 12, 12, 0, 0, 0, time.Local))
	session := &models.BookingSession{}

	// Explicitly closed and never configured both read as unavailable.
	for _, date := range []string{"2026-03-13", "2026-03-14"} {
		err := svc.applyDate(context.Background(), session, date)
		if code := bookingErrCode(t, err); code != "dateUnavailable" {
			t.Fatalf("%s gave code %q, want dateUnavailable", date, code)
		}
	}
}

func TestApplyDateChangeClearsChosenSlot(t *testing.T) {
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-03-12", Available: true},
		{Date: "2026-03-13", Available: true},
	}}
	svc := newDateTestService(repo, time.Date(2026, 3, 12, 8, 0, 0, 0, time.Local))
	session := &models.BookingSession{Form: models.BookingFormData{
		Date:     "2026-03-12",
		TimeSlot: &models.TimeSlot{ID: "2026-03-12-09-00"},
	}}

	if err := svc.applyDate(context.Background(), session, "2026-03-13"); err != nil {
		t.Fatalf("applyDate failed: %v", err)
	}
	if session.Form.TimeSlot != nil {
		t.Fatal("changing the date should clear the chosen slot")
	}
}
