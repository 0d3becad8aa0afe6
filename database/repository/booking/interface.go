// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"github.com/bholdsworth/mindful-booking-noushy/database"
	"github.com/bholdsworth/mindful-booking-noushy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	CountByDate(ctx context.Context, date string) (int64, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
