package booking

import (
	"context"
	"testing"
	"time"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

// occupancyFunc adapts a function to SlotOccupancy.
type occupancyFunc func(ctx context.Context, start time.Time) (bool, error)

func (f occupancyFunc) IsTaken(ctx context.Context, start time.Time) (bool, error) {
	return f(ctx, start)
}

func neverTaken(ctx context.Context, start time.Time) (bool, error) { return false, nil }

func newTestGenerator(repo *fakeAvailabilityRepo, clock func() time.Time) *DefaultSlotGenerator {
	return &DefaultSlotGenerator{
		Availability:     &DefaultAvailabilityService{Repo: repo},
		Occupancy:        occupancyFunc(neverTaken),
		DefaultOpenTime:  "08:00",
		DefaultCloseTime: "19:00",
		SlotDuration:     30 * time.Minute,
		BufferTime:       15 * time.Minute,
		Clock:            clock,
	}
}

func TestSlotsForDayDefaultRange(t *testing.T) {
	date := day(t, "2026-03-12")
	now := day(t, "2026-03-10") // not the slot day, so no past-slot cutoff
	gen := newTestGenerator(&fakeAvailabilityRepo{}, func() time.Time { return now })

	slots, err := gen.SlotsForDay(context.Background(), date)
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}

	// 08:00 to 19:00 exclusive with a 45 minute stride gives 15 slots.
	if len(slots) != 15 {
		t.Fatalf("got %d slots, want 15", len(slots))
	}
	if first := slots[0].Time; first.Hour() != 8 || first.Minute() != 0 {
		t.Fatalf("first slot at %v, want 08:00", first)
	}
	if last := slots[len(slots)-1].Time; last.Hour() != 18 || last.Minute() != 30 {
		t.Fatalf("last slot at %v, want 18:30", last)
	}

	closeAt := time.Date(date.Year(), date.Month(), date.Day(), 19, 0, 0, 0, date.Location())
	for i, s := range slots {
		if !s.Time.Before(closeAt) {
			t.Fatalf("slot %d at %v is at or past closing", i, s.Time)
		}
		if i > 0 {
			if gap := s.Time.Sub(slots[i-1].Time); gap != 45*time.Minute {
				t.Fatalf("gap between slots %d and %d is %v, want 45m", i-1, i, gap)
			}
		}
		if s.Duration != 30 || s.BufferTime != 15 {
			t.Fatalf("slot %d has duration=%d buffer=%d, want 30/15", i, s.Duration, s.BufferTime)
		}
		if !s.Available {
			t.Fatalf("slot %d should be available when nothing is taken", i)
		}
	}
}

func TestSlotsForDayCustomRange(t *testing.T) {
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-03-12", Available: true, CustomTimeRange: &models.TimeRange{Start: "09:00", End: "10:30"}},
	}}
	gen := newTestGenerator(repo, func() time.Time { return day(t, "2026-03-10") })

	slots, err := gen.SlotsForDay(context.Background(), day(t, "2026-03-12"))
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}

	// 09:00 and 09:45 fit; 10:30 is the exclusive close.
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2: %+v", len(slots), slots)
	}
	if slots[0].FormattedTime != "9:00 AM" || slots[1].FormattedTime != "9:45 AM" {
		t.Fatalf("unexpected slot times: %q, %q", slots[0].FormattedTime, slots[1].FormattedTime)
	}
	if slots[0].ID != "2026-03-12-09-00" {
		t.Fatalf("unexpected slot ID %q", slots[0].ID)
	}
}

func TestSlotsForDayDeterministicStructure(t *testing.T) {
	gen := newTestGenerator(&fakeAvailabilityRepo{}, func() time.Time { return day(t, "2026-03-10") })
	ctx := context.Background()
	date := day(t, "2026-03-12")

	first, err := gen.SlotsForDay(ctx, date)
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	second, err := gen.SlotsForDay(ctx, date)
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("slot counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || !first[i].Time.Equal(second[i].Time) {
			t.Fatalf("slot %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSlotsForDayPastSlotsUnavailableToday(t *testing.T) {
	date := day(t, "2026-03-12")
	noon := time.Date(2026, 3, 12, 12, 0, 0, 0, time.Local)
	gen := newTestGenerator(&fakeAvailabilityRepo{}, func() time.Time { return noon })

	slots, err := gen.SlotsForDay(context.Background(), date)
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	for _, s := range slots {
		started := !s.Time.After(noon)
		if started && s.Available {
			t.Fatalf("slot %v already started but is available", s.Time)
		}
		if !started && !s.Available {
			t.Fatalf("future slot %v should be available", s.Time)
		}
	}
}

func TestSlotsForDayOccupiedSlots(t *testing.T) {
	taken := map[string]bool{"09:30": true, "12:30": true}
	gen := newTestGenerator(&fakeAvailabilityRepo{}, func() time.Time { return day(t, "2026-03-10") })
	gen.Occupancy = occupancyFunc(func(ctx context.Context, start time.Time) (bool, error) {
		return taken[start.Format("15:04")], nil
	})

	slots, err := gen.SlotsForDay(context.Background(), day(t, "2026-03-12"))
	if err != nil {
		t.Fatalf("SlotsForDay failed: %v", err)
	}
	for _, s := range slots {
		wantTaken := taken[s.Time.Format("15:04")]
		if s.Available == wantTaken {
			t.Fatalf("slot %s available=%v, want %v", s.Time.Format("15:04"), s.Available, !wantTaken)
		}
	}
}

func TestSlotsForDayBadTimeRange(t *testing.T) {
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-03-12", Available: true, CustomTimeRange: &models.TimeRange{Start: "9am", End: "5pm"}},
	}}
	gen := newTestGenerator(repo, func() time.Time { return day(t, "2026-03-10") })

	if _, err := gen.SlotsForDay(context.Background(), day(t, "2026-03-12")); err == nil {
		t.Fatal("expected an error for a malformed time range")
	}
}
