// File: database/repository/invoice/interface.go
package invoiceRepo

import (
	"context"

	"github.com/bholdsworth/mindful-booking-noushy/database"
	"github.com/bholdsworth/mindful-booking-noushy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	List(ctx context.Context, status string) ([]models.Invoice, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetPaymentIntent(ctx context.Context, id, paymentIntentID string) error
	Count(ctx context.Context) (int64, error)
	SumAmountByStatus(ctx context.Context, status string) (float64, error)
}

type mongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo constructs a new MongoDB InvoiceRepository.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoInvoiceRepo{
		coll: db.Collection("invoices"),
	}
}
