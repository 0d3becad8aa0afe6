package booking

import (
	"context"
	"testing"
	"time"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

// fakeAvailabilityRepo is an in-memory stand-in for the Redis-backed store.
type fakeAvailabilityRepo struct {
	records []models.DayAvailability
	err     error
}

func (f *fakeAvailabilityRepo) Save(ctx context.Context, days []models.DayAvailability) error {
	f.records = days
	return f.err
}

func (f *fakeAvailabilityRepo) Load(ctx context.Context) ([]models.DayAvailability, error) {
	return f.records, f.err
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestAvailableDatesFiltersWindow(t *testing.T) {
	today := day(t, "2026-03-10")
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-03-09", Available: true},  // yesterday, out
		{Date: "2026-03-10", Available: true},  // today, in
		{Date: "2026-03-25", Available: true},  // inside window
		{Date: "2026-03-26", Available: false}, // explicitly closed
		{Date: "2026-04-09", Available: true},  // last day inside window
		{Date: "2026-04-10", Available: true},  // window end, exclusive
		{Date: "2026-05-01", Available: true},  // far out
	}}
	svc := &DefaultAvailabilityService{Repo: repo}

	dates, err := svc.AvailableDates(context.Background(), today)
	if err != nil {
		t.Fatalf("AvailableDates failed: %v", err)
	}

	want := []string{"2026-03-10", "2026-03-25", "2026-04-09"}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d: %v", len(dates), len(want), dates)
	}
	for i, w := range want {
		if got := dates[i].Format(DateLayout); got != w {
			t.Fatalf("dates[%d] = %s, want %s", i, got, w)
		}
	}
}

func TestAvailableDatesSortsAscending(t *testing.T) {
	today := day(t, "2026-03-10")
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-03-20", Available: true},
		{Date: "2026-03-11", Available: true},
		{Date: "2026-03-15", Available: true},
	}}
	svc := &DefaultAvailabilityService{Repo: repo}

	dates, err := svc.AvailableDates(context.Background(), today)
	if err != nil {
		t.Fatalf("AvailableDates failed: %v", err)
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].Before(dates[i]) {
			t.Fatalf("dates not strictly ascending: %v", dates)
		}
	}
}

func TestAvailableDatesEmptyStore(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &fakeAvailabilityRepo{}}
	dates, err := svc.AvailableDates(context.Background(), day(t, "2026-03-10"))
	if err != nil {
		t.Fatalf("AvailableDates failed: %v", err)
	}
	if len(dates) != 0 {
		t.Fatalf("expected no bookable dates from an unconfigured store, got %v", dates)
	}
}

func TestAvailableDatesSkipsMalformedRecords(t *testing.T) {
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "not-a-date", Available: true},
		{Date: "2026-03-12", Available: true},
	}}
	svc := &DefaultAvailabilityService{Repo: repo}

	dates, err := svc.AvailableDates(context.Background(), day(t, "2026-03-10"))
	if err != nil {
		t.Fatalf("AvailableDates failed: %v", err)
	}
	if len(dates) != 1 || dates[0].Format(DateLayout) != "2026-03-12" {
		t.Fatalf("expected only the well-formed record, got %v", dates)
	}
}

func TestIsDateTooFarAhead(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &fakeAvailabilityRepo{}}
	today := day(t, "2026-03-10")

	cases := []struct {
		date string
		want bool
	}{
		{"2026-03-10", false},
		{"2026-04-09", false},
		{"2026-04-10", false}, // limit itself is allowed for selection checks
		{"2026-04-11", true},
		{"2026-07-01", true},
	}
	for _, c := range cases {
		if got := svc.IsDateTooFarAhead(day(t, c.date), today); got != c.want {
			t.Fatalf("IsDateTooFarAhead(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestIsDayAvailable(t *testing.T) {
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-03-12", Available: true},
		{Date: "2026-03-13", Available: false},
	}}
	svc := &DefaultAvailabilityService{Repo: repo}
	ctx := context.Background()

	open, err := svc.IsDayAvailable(ctx, day(t, "2026-03-12"))
	if err != nil || !open {
		t.Fatalf("expected 2026-03-12 open, got open=%v err=%v", open, err)
	}
	open, err = svc.IsDayAvailable(ctx, day(t, "2026-03-13"))
	if err != nil || open {
		t.Fatalf("expected 2026-03-13 closed, got open=%v err=%v", open, err)
	}
	// Never configured means closed.
	open, err = svc.IsDayAvailable(ctx, day(t, "2026-03-14"))
	if err != nil || open {
		t.Fatalf("expected unconfigured day closed, got open=%v err=%v", open, err)
	}
}

func TestDayRecordReturnsCustomRange(t *testing.T) {
	repo := &fakeAvailabilityRepo{records: []models.DayAvailability{
		{Date: "2026-03-12", Available: true, CustomTimeRange: &models.TimeRange{Start: "09:00", End: "12:00"}},
	}}
	svc := &DefaultAvailabilityService{Repo: repo}

	rec, err := svc.DayRecord(context.Background(), day(t, "2026-03-12"))
	if err != nil {
		t.Fatalf("DayRecord failed: %v", err)
	}
	if rec == nil || rec.CustomTimeRange == nil {
		t.Fatal("expected a record with a custom time range")
	}
	if rec.CustomTimeRange.Start != "09:00" || rec.CustomTimeRange.End != "12:00" {
		t.Fatalf("unexpected custom range: %+v", rec.CustomTimeRange)
	}

	rec, err = svc.DayRecord(context.Background(), day(t, "2026-03-13"))
	if err != nil {
		t.Fatalf("DayRecord failed: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record for an unconfigured day, got %+v", rec)
	}
}
