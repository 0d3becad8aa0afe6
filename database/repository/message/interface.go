// File: database/repository/message/interface.go
package messageRepo

import (
	"context"

	"github.com/bholdsworth/mindful-booking-noushy/database"
	"github.com/bholdsworth/mindful-booking-noushy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MessageRepository interface {
	ListThreads(ctx context.Context) ([]models.MessageThread, error)
	GetThread(ctx context.Context, threadID string) (*models.MessageThread, error)
	GetThreadByPatient(ctx context.Context, patientID string) (*models.MessageThread, error)
	CreateThread(ctx context.Context, thread models.MessageThread) error
	AddMessage(ctx context.Context, message models.Message) error
	ListMessages(ctx context.Context, threadID string) ([]models.Message, error)
	MarkThreadRead(ctx context.Context, threadID string) error
	CountUnreadThreads(ctx context.Context) (int64, error)
}

type mongoMessageRepo struct {
	threadsColl  *mongo.Collection
	messagesColl *mongo.Collection
}

// NewMongoMessageRepo constructs a new MongoDB MessageRepository.
func NewMongoMessageRepo() MessageRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoMessageRepo{
		threadsColl:  db.Collection("message_threads"),
		messagesColl: db.Collection("messages"),
	}
}
