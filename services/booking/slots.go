package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

// SlotGenerator produces the ordered candidate slots for one calendar date.
// The caller is expected to have already confirmed the day is open; the
// generator only resolves the day's time range and does not re-check
// availability.
type SlotGenerator interface {
	SlotsForDay(ctx context.Context, date time.Time) ([]models.TimeSlot, error)
}

// DefaultSlotGenerator walks the day's open/close range emitting fixed-length
// slots separated by a buffer.
type DefaultSlotGenerator struct {
	Availability AvailabilityService
	Occupancy    SlotOccupancy

	DefaultOpenTime  string        // "HH:MM", used when the day has no custom range
	DefaultCloseTime string        // "HH:MM", exclusive
	SlotDuration     time.Duration // session length
	BufferTime       time.Duration // reserved after each session before the next may start

	// Clock allows tests to pin "now". Nil means time.Now.
	Clock func() time.Time
}

func (g *DefaultSlotGenerator) now() time.Time {
	if g.Clock != nil {
		return g.Clock()
	}
	return time.Now()
}

// SlotsForDay emits slots from the day's open time, advancing by
// SlotDuration+BufferTime, until the cursor reaches the exclusive close time.
// Slots on today that have already started are forced unavailable.
func (g *DefaultSlotGenerator) SlotsForDay(ctx context.Context, date time.Time) ([]models.TimeSlot, error) {
	openStr, closeStr := g.DefaultOpenTime, g.DefaultCloseTime
	rec, err := g.Availability.DayRecord(ctx, date)
	if err != nil {
		return nil, err
	}
	if rec != nil && rec.CustomTimeRange != nil {
		openStr = rec.CustomTimeRange.Start
		closeStr = rec.CustomTimeRange.End
	}

	open, err := atTimeOfDay(date, openStr)
	if err != nil {
		return nil, fmt.Errorf("invalid open time %q: %w", openStr, err)
	}
	close, err := atTimeOfDay(date, closeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid close time %q: %w", closeStr, err)
	}

	now := g.now()
	isToday := Midnight(date).Equal(Midnight(now))
	step := g.SlotDuration + g.BufferTime

	var slots []models.TimeSlot
	for cursor := open; cursor.Before(close); cursor = cursor.Add(step) {
		taken, err := g.Occupancy.IsTaken(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to check slot occupancy: %w", err)
		}
		available := !taken
		if isToday && !cursor.After(now) {
			available = false
		}
		slots = append(slots, models.TimeSlot{
			ID:            cursor.Format("2006-01-02-15-04"),
			Time:          cursor,
			FormattedTime: cursor.Format("3:04 PM"),
			Duration:      int(g.SlotDuration.Minutes()),
			BufferTime:    int(g.BufferTime.Minutes()),
			Available:     available,
		})
	}
	return slots, nil
}

// atTimeOfDay combines a calendar date with a "HH:MM" wall-clock time.
func atTimeOfDay(date time.Time, hhmm string) (time.Time, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("expected HH:MM, got %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("bad hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("bad minute in %q", hhmm)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}
