package booking

import (
	"context"
	"math/rand"
	"time"

	bookingRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/booking"
)

// SlotOccupancy decides whether a slot starting at the given instant is
// already taken. The slot generator consults it for every candidate slot.
type SlotOccupancy interface {
	IsTaken(ctx context.Context, start time.Time) (bool, error)
}

// RandomOccupancy marks slots taken at a fixed rate. It is a demo stand-in
// for a real occupancy source and is deliberately not seeded.
type RandomOccupancy struct {
	// Rate is the probability a slot is taken, e.g. 0.3.
	Rate float64
}

func (o RandomOccupancy) IsTaken(ctx context.Context, start time.Time) (bool, error) {
	return rand.Float64() < o.Rate, nil
}

// BookedOccupancy reports a slot taken when a confirmed booking already
// holds its start instant.
type BookedOccupancy struct {
	Repo bookingRepo.BookingRepository
}

func (o BookedOccupancy) IsTaken(ctx context.Context, start time.Time) (bool, error) {
	bookings, err := o.Repo.GetByDate(ctx, start.Format(DateLayout))
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		if b.Start.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}
