package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	availabilityRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/availability"
	"github.com/bholdsworth/mindful-booking-noushy/models"
)

// DateLayout is the canonical wall-clock date form used throughout the booking core.
const DateLayout = "2006-01-02"

// AvailabilityService answers which dates a visitor may choose. Days are
// opt-in: a date with no record, or a record with available=false, is closed.
type AvailabilityService interface {
	AvailableDates(ctx context.Context, today time.Time) ([]time.Time, error)
	IsDateTooFarAhead(date, today time.Time) bool
	IsDayAvailable(ctx context.Context, date time.Time) (bool, error)
	DayRecord(ctx context.Context, date time.Time) (*models.DayAvailability, error)
}

// DefaultAvailabilityService is the concrete implementation over the
// availability repository.
type DefaultAvailabilityService struct {
	Repo availabilityRepo.AvailabilityRepository
	// MaxAdvanceMonths bounds the rolling booking window. Zero means one month.
	MaxAdvanceMonths int
}

func (s *DefaultAvailabilityService) advanceMonths() int {
	if s.MaxAdvanceMonths <= 0 {
		return 1
	}
	return s.MaxAdvanceMonths
}

// AvailableDates returns the open days inside the half-open window
// [today, today + MaxAdvanceMonths), sorted ascending. An unconfigured
// store yields the empty list.
func (s *DefaultAvailabilityService) AvailableDates(ctx context.Context, today time.Time) ([]time.Time, error) {
	records, err := s.Repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability records: %w", err)
	}

	windowStart := Midnight(today)
	windowEnd := windowStart.AddDate(0, s.advanceMonths(), 0)

	var dates []time.Time
	for _, rec := range records {
		if !rec.Available {
			continue
		}
		d, err := time.ParseInLocation(DateLayout, rec.Date, today.Location())
		if err != nil {
			continue
		}
		if d.Before(windowStart) || !d.Before(windowEnd) {
			continue
		}
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// IsDateTooFarAhead reports whether date lies strictly beyond the booking window.
func (s *DefaultAvailabilityService) IsDateTooFarAhead(date, today time.Time) bool {
	limit := Midnight(today).AddDate(0, s.advanceMonths(), 0)
	return Midnight(date).After(limit)
}

// IsDayAvailable reports whether the store holds an open record for date.
func (s *DefaultAvailabilityService) IsDayAvailable(ctx context.Context, date time.Time) (bool, error) {
	rec, err := s.DayRecord(ctx, date)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.Available, nil
}

// DayRecord returns the configured record for date, or nil if the day was
// never configured.
func (s *DefaultAvailabilityService) DayRecord(ctx context.Context, date time.Time) (*models.DayAvailability, error) {
	records, err := s.Repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability records: %w", err)
	}

	key := date.Format(DateLayout)
	for i := range records {
		if records[i].Date == key {
			return &records[i], nil
		}
	}
	return nil, nil
}

// Midnight truncates t to the start of its wall-clock day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
