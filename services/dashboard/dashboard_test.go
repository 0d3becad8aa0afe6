package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

type fakeBookingRepo struct {
	countsByDate map[string]int64
	recent       []models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking models.Booking) error { return nil }
func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.recent {
		if f.recent[i].ID == id {
			return &f.recent[i], nil
		}
	}
	return nil, errors.New("not found")
}
func (f *fakeBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) CountByDate(ctx context.Context, date string) (int64, error) {
	return f.countsByDate[date], nil
}
func (f *fakeBookingRepo) ListRecent(ctx context.Context, limit int64) ([]models.Booking, error) {
	if int64(len(f.recent)) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeInvoiceRepo struct {
	sums map[string]float64
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice models.Invoice) error { return nil }
func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) List(ctx context.Context, status string) ([]models.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (f *fakeInvoiceRepo) SetPaymentIntent(ctx context.Context, id, paymentIntentID string) error {
	return nil
}
func (f *fakeInvoiceRepo) Count(ctx context.Context) (int64, error) { return 0, nil }
func (f *fakeInvoiceRepo) SumAmountByStatus(ctx context.Context, status string) (float64, error) {
	return f.sums[status], nil
}

type fakeMessageRepo struct {
	unread int64
}

func (f *fakeMessageRepo) ListThreads(ctx context.Context) ([]models.MessageThread, error) {
	return nil, nil
}
func (f *fakeMessageRepo) GetThread(ctx context.Context, threadID string) (*models.MessageThread, error) {
	return nil, nil
}
func (f *fakeMessageRepo) GetThreadByPatient(ctx context.Context, patientID string) (*models.MessageThread, error) {
	return nil, nil
}
func (f *fakeMessageRepo) CreateThread(ctx context.Context, thread models.MessageThread) error {
	return nil
}
func (f *fakeMessageRepo) AddMessage(ctx context.Context, message models.Message) error { return nil }
func (f *fakeMessageRepo) ListMessages(ctx context.Context, threadID string) ([]models.Message, error) {
	return nil, nil
}
func (f *fakeMessageRepo) MarkThreadRead(ctx context.Context, threadID string) error { return nil }
func (f *fakeMessageRepo) CountUnreadThreads(ctx context.Context) (int64, error) {
	return f.unread, nil
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 3, 12, 9, 30, 0, 0, time.Local)
	svc := &DefaultDashboardService{
		Bookings: &fakeBookingRepo{
			countsByDate: map[string]int64{"2026-03-12": 4},
			recent: []models.Booking{
				{ID: "b-2", Date: "2026-03-12"},
				{ID: "b-1", Date: "2026-03-11"},
			},
		},
		Invoices: &fakeInvoiceRepo{sums: map[string]float64{
			models.InvoiceStatusPending: 320.50,
			models.InvoiceStatusOverdue: 85.00,
			models.InvoiceStatusPaid:    1210.00,
		}},
		Messages: &fakeMessageRepo{unread: 3},
		Clock:    func() time.Time { return now },
	}

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.TodaysBookings != 4 {
		t.Fatalf("TodaysBookings = %d, want 4", summary.TodaysBookings)
	}
	if summary.PendingRevenue != 320.50 || summary.OverdueRevenue != 85.00 || summary.PaidRevenue != 1210.00 {
		t.Fatalf("unexpected revenue figures: %+v", summary)
	}
	if summary.UnreadThreads != 3 {
		t.Fatalf("UnreadThreads = %d, want 3", summary.UnreadThreads)
	}
	if len(summary.RecentBookings) != 2 || summary.RecentBookings[0].ID != "b-2" {
		t.Fatalf("unexpected recent bookings: %+v", summary.RecentBookings)
	}
	if summary.GeneratedAt != now.Format(time.RFC3339) {
		t.Fatalf("GeneratedAt = %q", summary.GeneratedAt)
	}
}

func TestGetBooking(t *testing.T) {
	svc := &DefaultDashboardService{
		Bookings: &fakeBookingRepo{recent: []models.Booking{{ID: "b-1", Date: "2026-03-11"}}},
		Invoices: &fakeInvoiceRepo{},
		Messages: &fakeMessageRepo{},
	}

	booking, err := svc.GetBooking(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("GetBooking failed: %v", err)
	}
	if booking.Date != "2026-03-11" {
		t.Fatalf("unexpected booking: %+v", booking)
	}
	if _, err := svc.GetBooking(context.Background(), "missing"); err == nil {
		t.Fatal("expected an error for an unknown booking")
	}
}
