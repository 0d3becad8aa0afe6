// File: database/repository/practitioner/interface.go
package practitionerRepo

import (
	"context"

	"github.com/bholdsworth/mindful-booking-noushy/database"
	"github.com/bholdsworth/mindful-booking-noushy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PractitionerRepository interface {
	Create(ctx context.Context, practitioner models.Practitioner) error
	GetByID(ctx context.Context, id string) (*models.Practitioner, error)
	Update(ctx context.Context, practitioner models.Practitioner) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Practitioner, error)
}

type mongoPractitionerRepo struct {
	coll *mongo.Collection
}

// NewMongoPractitionerRepo constructs a new MongoDB PractitionerRepository.
func NewMongoPractitionerRepo() PractitionerRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoPractitionerRepo{
		coll: db.Collection("practitioners"),
	}
}
