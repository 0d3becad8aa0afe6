package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/booking"
	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/services/tasks"
	"github.com/bholdsworth/mindful-booking-noushy/utils"
)

const (
	sessionPrefix = "bookingSession:"
	sessionTTL    = 30 * time.Minute
)

// SessionUpdate carries the fields a wizard step wants to change. Nil fields
// are left untouched.
type SessionUpdate struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Date         *string `json:"date,omitempty"` // "YYYY-MM-DD"
	TimeSlotID   *string `json:"timeSlotId,omitempty"`
	ServiceType  *string `json:"serviceType,omitempty"`
	MedicareCode *string `json:"medicareCode,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// SessionService drives the visitor's booking wizard: a Redis-cached draft
// that is validated and persisted only on confirmation.
type SessionService interface {
	StartSession(ctx context.Context) (string, *models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, sessionID string, update SessionUpdate) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string, requireMedicareCode bool) (*models.Booking, []string, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Cache        *redis.Client
	Availability AvailabilityService
	Slots        SlotGenerator
	Repo         bookingRepo.BookingRepository
	Reminders    tasks.ReminderScheduler // nil disables reminder scheduling

	// Clock allows tests to pin "now". Nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultSessionService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// StartSession creates an empty draft and caches it under a fresh session ID.
func (s *DefaultSessionService) StartSession(ctx context.Context) (string, *models.BookingSession, error) {
	session := &models.BookingSession{
		Form:      models.BookingFormData{},
		CreatedAt: s.now(),
	}
	sessionID := uuid.New().String()
	if err := s.saveSession(ctx, sessionID, session); err != nil {
		return "", nil, err
	}
	return sessionID, session, nil
}

func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, NewSessionNotFoundError("booking session not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// UpdateSession merges the update into the draft. Date and slot selections
// are checked at selection time so the visitor gets a specific rejection;
// a rejected selection leaves the draft unchanged.
func (s *DefaultSessionService) UpdateSession(ctx context.Context, sessionID string, update SessionUpdate) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if update.Date != nil {
		if err := s.applyDate(ctx, session, *update.Date); err != nil {
			return nil, err
		}
	}
	if update.TimeSlotID != nil {
		if err := s.applySlot(ctx, session, *update.TimeSlotID); err != nil {
			return nil, err
		}
	}
	if update.ServiceType != nil {
		if *update.ServiceType != "" && !models.IsValidServiceType(*update.ServiceType) {
			return nil, NewValidationError("unknown service type")
		}
		session.Form.ServiceType = *update.ServiceType
	}
	if update.MedicareCode != nil {
		if *update.MedicareCode != "" && !models.IsValidMedicareCode(*update.MedicareCode) {
			return nil, NewValidationError("unknown Medicare code")
		}
		session.Form.MedicareCode = *update.MedicareCode
	}
	if update.FirstName != nil {
		session.Form.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		session.Form.LastName = *update.LastName
	}
	if update.Email != nil {
		session.Form.Email = *update.Email
	}
	if update.Phone != nil {
		session.Form.Phone = *update.Phone
	}
	if update.Notes != nil {
		session.Form.Notes = *update.Notes
	}

	if err := s.saveSession(ctx, sessionID, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) applyDate(ctx context.Context, session *models.BookingSession, dateStr string) error {
	date, err := time.ParseInLocation(DateLayout, dateStr, s.now().Location())
	if err != nil {
		return NewValidationError("date must be in YYYY-MM-DD form")
	}
	today := s.now()
	if Midnight(date).Before(Midnight(today)) {
		return NewDateUnavailableError("that date is not available for booking")
	}
	if s.Availability.IsDateTooFarAhead(date, today) {
		return NewDateTooFarAheadError("that date is too far ahead to book")
	}
	open, err := s.Availability.IsDayAvailable(ctx, date)
	if err != nil {
		return err
	}
	if !open {
		return NewDateUnavailableError("that date is not available for booking")
	}

	// Changing the date invalidates any previously chosen slot.
	if session.Form.Date != dateStr {
		session.Form.TimeSlot = nil
	}
	session.Form.Date = dateStr
	return nil
}

func (s *DefaultSessionService) applySlot(ctx context.Context, session *models.BookingSession, slotID string) error {
	if session.Form.Date == "" {
		return NewValidationError("choose a date before choosing a time slot")
	}
	date, err := time.ParseInLocation(DateLayout, session.Form.Date, s.now().Location())
	if err != nil {
		return NewValidationError("date must be in YYYY-MM-DD form")
	}
	slots, err := s.Slots.SlotsForDay(ctx, date)
	if err != nil {
		return err
	}
	for i := range slots {
		if slots[i].ID != slotID {
			continue
		}
		if !slots[i].Available {
			return NewSlotUnavailableError("that time slot is no longer available")
		}
		session.Form.TimeSlot = &slots[i]
		return nil
	}
	return NewSlotUnavailableError("that time slot does not exist on the chosen date")
}

// ConfirmBooking validates the draft, persists the booking, schedules a
// reminder and discards the session. Validation failures come back as the
// full message list with a nil booking.
func (s *DefaultSessionService) ConfirmBooking(ctx context.Context, sessionID string, requireMedicareCode bool) (*models.Booking, []string, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	if validationErrors := ValidateBookingData(session.Form, requireMedicareCode); len(validationErrors) > 0 {
		return nil, validationErrors, nil
	}

	booking := models.Booking{
		ID:           uuid.New().String(),
		FirstName:    session.Form.FirstName,
		LastName:     session.Form.LastName,
		Email:        session.Form.Email,
		Phone:        session.Form.Phone,
		Date:         session.Form.Date,
		SlotID:       session.Form.TimeSlot.ID,
		Start:        session.Form.TimeSlot.Time,
		ServiceType:  session.Form.ServiceType,
		MedicareCode: session.Form.MedicareCode,
		Notes:        session.Form.Notes,
		Status:       "Confirmed",
		CreatedAt:    s.now(),
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.scheduleReminder(booking)

	if err := s.Cache.Del(ctx, sessionPrefix+sessionID).Err(); err != nil {
		utils.GetLogger().Warn("Failed to discard confirmed booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return &booking, nil, nil
}

// scheduleReminder queues a reminder 24 hours before the appointment. A
// failure here never fails the confirmation.
func (s *DefaultSessionService) scheduleReminder(booking models.Booking) {
	if s.Reminders == nil {
		return
	}
	fireAt := booking.Start.Add(-24 * time.Hour)
	if fireAt.Before(s.now()) {
		fireAt = s.now()
	}
	payload := models.ReminderPayload{
		BookingID:   booking.ID,
		Email:       booking.Email,
		Phone:       booking.Phone,
		FirstName:   booking.FirstName,
		Date:        booking.Date,
		SlotTime:    booking.Start.Format("3:04 PM"),
		ServiceType: booking.ServiceType,
	}
	if err := s.Reminders.ScheduleReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("Failed to schedule booking reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	deleted, err := s.Cache.Del(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	if deleted == 0 {
		return NewSessionNotFoundError("booking session not found or expired")
	}
	return nil
}

func (s *DefaultSessionService) saveSession(ctx context.Context, sessionID string, session *models.BookingSession) error {
	session.LastUpdatedAt = s.now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionPrefix+sessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}
