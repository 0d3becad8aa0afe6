// File: database/repository/patient/interface.go
package patientRepo

import (
	"context"

	"github.com/bholdsworth/mindful-booking-noushy/database"
	"github.com/bholdsworth/mindful-booking-noushy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PatientRepository interface {
	Create(ctx context.Context, patient models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	Update(ctx context.Context, patient models.Patient) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]models.Patient, error)
	AddNote(ctx context.Context, note models.TreatmentNote) error
	GetNotesByPatient(ctx context.Context, patientID string) ([]models.TreatmentNote, error)
}

type mongoPatientRepo struct {
	coll      *mongo.Collection
	notesColl *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoPatientRepo{
		coll:      db.Collection("patients"),
		notesColl: db.Collection("treatment_notes"),
	}
}
