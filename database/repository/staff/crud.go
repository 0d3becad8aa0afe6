// File: database/repository/staff/crud.go
package staffRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

func (r *mongoStaffRepo) Create(ctx context.Context, account models.StaffAccount) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, account)
	return err
}

func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.StaffAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var account models.StaffAccount
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var account models.StaffAccount
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}
