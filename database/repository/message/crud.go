// File: database/repository/message/crud.go
package messageRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

func (r *mongoMessageRepo) ListThreads(ctx context.Context) ([]models.MessageThread, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	cursor, err := r.threadsColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var threads []models.MessageThread
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *mongoMessageRepo) GetThread(ctx context.Context, threadID string) (*models.MessageThread, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var thread models.MessageThread
	if err := r.threadsColl.FindOne(ctx, bson.M{"id": threadID}).Decode(&thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *mongoMessageRepo) GetThreadByPatient(ctx context.Context, patientID string) (*models.MessageThread, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var thread models.MessageThread
	if err := r.threadsColl.FindOne(ctx, bson.M{"patient_id": patientID}).Decode(&thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *mongoMessageRepo) CreateThread(ctx context.Context, thread models.MessageThread) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if thread.ID == "" {
		thread.ID = uuid.New().String()
	}
	now := time.Now()
	thread.CreatedAt = now
	thread.UpdatedAt = now
	_, err := r.threadsColl.InsertOne(ctx, thread)
	return err
}

// AddMessage appends a message and denormalizes it onto the thread. A patient
// message flips the thread's unread flag.
func (r *mongoMessageRepo) AddMessage(ctx context.Context, message models.Message) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	if _, err := r.messagesColl.InsertOne(ctx, message); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"last_message": message,
		"updated_at":   message.CreatedAt,
	}}
	if message.Sender == models.MessageSenderPatient {
		update["$set"].(bson.M)["unread"] = true
	}
	res, err := r.threadsColl.UpdateOne(ctx, bson.M{"id": message.ThreadID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoMessageRepo) ListMessages(ctx context.Context, threadID string) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.messagesColl.Find(ctx, bson.M{"thread_id": threadID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *mongoMessageRepo) MarkThreadRead(ctx context.Context, threadID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.messagesColl.UpdateMany(ctx,
		bson.M{"thread_id": threadID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	); err != nil {
		return err
	}

	res, err := r.threadsColl.UpdateOne(ctx,
		bson.M{"id": threadID},
		bson.M{"$set": bson.M{"unread": false}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoMessageRepo) CountUnreadThreads(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.threadsColl.CountDocuments(ctx, bson.M{"unread": true})
}
