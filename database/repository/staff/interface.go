// File: database/repository/staff/interface.go
package staffRepo

import (
	"context"

	"github.com/bholdsworth/mindful-booking-noushy/database"
	"github.com/bholdsworth/mindful-booking-noushy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type StaffRepository interface {
	Create(ctx context.Context, account models.StaffAccount) error
	GetByEmail(ctx context.Context, email string) (*models.StaffAccount, error)
	GetByID(ctx context.Context, id string) (*models.StaffAccount, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoStaffRepo{
		coll: db.Collection("staff_accounts"),
	}
}
