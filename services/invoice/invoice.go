package invoice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	invoiceRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/invoice"
	patientRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/patient"
	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/utils"
)

// InvoiceService manages patient invoices and online payment intents.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error)
	GetInvoiceByID(ctx context.Context, id string) (*models.Invoice, error)
	ListInvoices(ctx context.Context, status string) ([]models.Invoice, error)
	MarkInvoiceStatus(ctx context.Context, id, status string) error
	CreatePaymentIntent(ctx context.Context, invoiceID string) (clientSecret string, err error)
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo        invoiceRepo.InvoiceRepository
	PatientRepo patientRepo.PatientRepository
}

// CreateInvoice totals the line items, assigns a sequential "INV-NNN" number
// and persists the invoice as Pending.
func (s *DefaultInvoiceService) CreateInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error) {
	if invoice.PatientID == "" {
		return nil, fmt.Errorf("invoice needs a patient")
	}
	if len(invoice.Items) == 0 {
		return nil, fmt.Errorf("invoice needs at least one line item")
	}

	patient, err := s.PatientRepo.GetByID(ctx, invoice.PatientID)
	if err != nil {
		return nil, fmt.Errorf("patient not found: %w", err)
	}
	invoice.PatientName = patient.Name

	var amount float64
	for i := range invoice.Items {
		invoice.Items[i].Total = float64(invoice.Items[i].Quantity) * invoice.Items[i].Rate
		amount += invoice.Items[i].Total
	}
	invoice.Amount = amount

	if invoice.ID == "" {
		count, err := s.Repo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to number invoice: %w", err)
		}
		invoice.ID = fmt.Sprintf("INV-%03d", count+1)
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusPending
	}
	if invoice.Date == "" {
		invoice.Date = time.Now().Format("2006-01-02")
	}

	if err := s.Repo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

func (s *DefaultInvoiceService) GetInvoiceByID(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}
	return invoice, nil
}

func (s *DefaultInvoiceService) ListInvoices(ctx context.Context, status string) ([]models.Invoice, error) {
	invoices, err := s.Repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *DefaultInvoiceService) MarkInvoiceStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.InvoiceStatusPaid, models.InvoiceStatusPending, models.InvoiceStatusOverdue:
	default:
		return fmt.Errorf("unknown invoice status %q", status)
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	return nil
}

// CreatePaymentIntent opens a Stripe payment intent for an unpaid invoice and
// records the intent ID against it.
func (s *DefaultInvoiceService) CreatePaymentIntent(ctx context.Context, invoiceID string) (string, error) {
	invoice, err := s.Repo.GetByID(ctx, invoiceID)
	if err != nil {
		return "", fmt.Errorf("invoice not found: %w", err)
	}
	if invoice.Status == models.InvoiceStatusPaid {
		return "", fmt.Errorf("invoice %s is already paid", invoiceID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(invoice.Amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyAUD)),
		Metadata: map[string]string{
			"invoiceId": invoice.ID,
			"patientId": invoice.PatientID,
		},
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	if err := s.Repo.SetPaymentIntent(ctx, invoice.ID, intent.ID); err != nil {
		utils.GetLogger().Warn("Failed to record payment intent on invoice",
			zap.String("invoiceID", invoice.ID), zap.Error(err))
	}
	return intent.ClientSecret, nil
}
