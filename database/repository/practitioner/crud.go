// File: database/repository/practitioner/crud.go
package practitionerRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

func (r *mongoPractitionerRepo) Create(ctx context.Context, practitioner models.Practitioner) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if practitioner.ID == "" {
		practitioner.ID = uuid.New().String()
	}
	now := time.Now()
	practitioner.CreatedAt = now
	practitioner.UpdatedAt = now
	if practitioner.Status == "" {
		practitioner.Status = "Active"
	}
	_, err := r.coll.InsertOne(ctx, practitioner)
	return err
}

func (r *mongoPractitionerRepo) GetByID(ctx context.Context, id string) (*models.Practitioner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var practitioner models.Practitioner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&practitioner); err != nil {
		return nil, err
	}
	return &practitioner, nil
}

func (r *mongoPractitionerRepo) Update(ctx context.Context, practitioner models.Practitioner) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	practitioner.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": practitioner.ID}, practitioner)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPractitionerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPractitionerRepo) List(ctx context.Context) ([]models.Practitioner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var practitioners []models.Practitioner
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, err
	}
	return practitioners, nil
}
