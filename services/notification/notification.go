package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/utils"
)

// NotificationService delivers appointment reminders to visitors.
type NotificationService interface {
	SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error
}

// EmailSender sends one plain-text email.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends email via unauthenticated SMTP (Mailpit-compatible in development).
type SMTPSender struct {
	Addr string // host:port
	From string
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		s.From, to, subject, body,
	)
	return smtp.SendMail(s.Addr, nil, s.From, []string{to}, []byte(msg))
}

// DefaultNotificationService emails the visitor a reminder the day before
// their appointment.
type DefaultNotificationService struct {
	Email EmailSender
}

func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	if payload.Email == "" {
		return fmt.Errorf("reminder for booking %s has no email", payload.BookingID)
	}

	subject := "Your physiotherapy appointment reminder"
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder of your %s appointment on %s at %s.\n\nIf you need to reschedule, please contact the clinic.\n\nNoushy Physiotherapy",
		payload.FirstName, payload.ServiceType, payload.Date, payload.SlotTime,
	)
	if err := s.Email.Send(payload.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	utils.GetLogger().Info("Sent booking reminder",
		zap.String("bookingID", payload.BookingID), zap.String("date", payload.Date))
	return nil
}
