package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/services/booking"
)

// BookingHandler serves the public booking site: selectable dates, day
// slots, and the wizard session endpoints.
type BookingHandler struct {
	Availability booking.AvailabilityService
	Slots        booking.SlotGenerator
	Sessions     booking.SessionService
	logger       *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(availability booking.AvailabilityService, slots booking.SlotGenerator, sessions booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Availability: availability,
		Slots:        slots,
		Sessions:     sessions,
		logger:       logger,
	}
}

// GetReferenceData returns the fixed service and Medicare code tables.
func (h *BookingHandler) GetReferenceData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"serviceTypes":  models.ServiceTypes,
		"medicareCodes": models.MedicareCodes,
	})
}

// GetAvailableDates returns the dates a visitor may currently choose.
func (h *BookingHandler) GetAvailableDates(c *gin.Context) {
	dates, err := h.Availability.AvailableDates(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("Failed to compute available dates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute available dates"})
		return
	}

	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format(booking.DateLayout))
	}
	c.JSON(http.StatusOK, gin.H{"dates": formatted})
}

// GetTimeSlots returns the slot sequence for one date (?date=YYYY-MM-DD).
func (h *BookingHandler) GetTimeSlots(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.ParseInLocation(booking.DateLayout, dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD form"})
		return
	}

	today := time.Now()
	if booking.Midnight(date).Before(booking.Midnight(today)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "That date is not available for booking"})
		return
	}
	if h.Availability.IsDateTooFarAhead(date, today) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "That date is too far ahead to book"})
		return
	}
	open, err := h.Availability.IsDayAvailable(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("Failed to check day availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check day availability"})
		return
	}
	if !open {
		c.JSON(http.StatusBadRequest, gin.H{"error": "That date is not available for booking"})
		return
	}

	slots, err := h.Slots.SlotsForDay(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("Failed to generate time slots", zap.String("date", dateStr), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate time slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}

// StartSession opens a fresh booking wizard session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	sessionID, session, err := h.Sessions.StartSession(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to start booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "session": session})
}

// UpdateSession applies one wizard step to the draft.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var update booking.SessionUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.UpdateSession(c.Request.Context(), sessionID, update)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "session": session})
}

// ConfirmBooking validates and finalizes the draft.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID        string `json:"sessionID" binding:"required"`
		SkipMedicareCode bool   `json:"skipMedicareCode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmed, validationErrors, err := h.Sessions.ConfirmBooking(c.Request.Context(), input.SessionID, !input.SkipMedicareCode)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	if len(validationErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErrors})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": confirmed})
}

// CancelSession discards a draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Sessions.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "cancelled": true})
}

// respondBookingError maps domain error codes onto HTTP statuses so the UI
// can distinguish "too far ahead" from "not available" from "gone".
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var bookingErr *booking.BookingError
	if errors.As(err, &bookingErr) {
		status := http.StatusBadRequest
		switch bookingErr.Code {
		case "sessionNotFound":
			status = http.StatusNotFound
		case "slotUnavailable":
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": bookingErr.Message, "code": bookingErr.Code})
		return
	}
	h.logger.Error("Booking operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking operation failed"})
}
