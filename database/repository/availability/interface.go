// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

// AvailabilityRepository is the durable mapping from calendar day to its
// availability record. Save replaces the entire persisted collection.
type AvailabilityRepository interface {
	Save(ctx context.Context, records []models.DayAvailability) error
	Load(ctx context.Context) ([]models.DayAvailability, error)
}
