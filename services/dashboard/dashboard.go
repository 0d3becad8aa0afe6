package dashboard

import (
	"context"
	"fmt"
	"time"

	bookingRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/booking"
	invoiceRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/invoice"
	messageRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/message"
	"github.com/bholdsworth/mindful-booking-noushy/models"
)

// Summary is the management console's landing snapshot.
type Summary struct {
	TodaysBookings int64            `json:"todaysBookings"`
	PendingRevenue float64          `json:"pendingRevenue"`
	OverdueRevenue float64          `json:"overdueRevenue"`
	PaidRevenue    float64          `json:"paidRevenue"`
	UnreadThreads  int64            `json:"unreadThreads"`
	RecentBookings []models.Booking `json:"recentBookings"`
	GeneratedAt    string           `json:"generatedAt"`
}

// recentBookingsLimit caps the landing page's recent-bookings list.
const recentBookingsLimit = 5

// DashboardService aggregates the console's headline numbers.
type DashboardService interface {
	Summarize(ctx context.Context) (*Summary, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Bookings bookingRepo.BookingRepository
	Invoices invoiceRepo.InvoiceRepository
	Messages messageRepo.MessageRepository

	// Clock allows tests to pin "today". Nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultDashboardService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultDashboardService) Summarize(ctx context.Context) (*Summary, error) {
	now := s.now()
	today := now.Format("2006-01-02")

	bookings, err := s.Bookings.CountByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's bookings: %w", err)
	}
	pending, err := s.Invoices.SumAmountByStatus(ctx, models.InvoiceStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to total pending invoices: %w", err)
	}
	overdue, err := s.Invoices.SumAmountByStatus(ctx, models.InvoiceStatusOverdue)
	if err != nil {
		return nil, fmt.Errorf("failed to total overdue invoices: %w", err)
	}
	paid, err := s.Invoices.SumAmountByStatus(ctx, models.InvoiceStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to total paid invoices: %w", err)
	}
	unread, err := s.Messages.CountUnreadThreads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread threads: %w", err)
	}
	recent, err := s.Bookings.ListRecent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent bookings: %w", err)
	}

	return &Summary{
		TodaysBookings: bookings,
		PendingRevenue: pending,
		OverdueRevenue: overdue,
		PaidRevenue:    paid,
		UnreadThreads:  unread,
		RecentBookings: recent,
		GeneratedAt:    now.Format(time.RFC3339),
	}, nil
}

// GetBooking backs the console's booking detail view.
func (s *DefaultDashboardService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return booking, nil
}
