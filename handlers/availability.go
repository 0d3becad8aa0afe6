package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	availabilityRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/availability"
	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/services/booking"
)

// AvailabilityAdminHandler lets the administrator read and replace the set
// of days open for booking.
type AvailabilityAdminHandler struct {
	Repo   availabilityRepo.AvailabilityRepository
	logger *zap.Logger
}

// NewAvailabilityAdminHandler constructs an AvailabilityAdminHandler.
func NewAvailabilityAdminHandler(repo availabilityRepo.AvailabilityRepository, logger *zap.Logger) *AvailabilityAdminHandler {
	return &AvailabilityAdminHandler{Repo: repo, logger: logger}
}

// GetAvailableDays returns the full configured collection.
func (h *AvailabilityAdminHandler) GetAvailableDays(c *gin.Context) {
	records, err := h.Repo.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load available days", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load available days"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableDays": records})
}

// SaveAvailableDays replaces the configured collection wholesale.
func (h *AvailabilityAdminHandler) SaveAvailableDays(c *gin.Context) {
	var input struct {
		AvailableDays []models.DayAvailability `json:"availableDays" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	seen := make(map[string]bool, len(input.AvailableDays))
	for _, rec := range input.AvailableDays {
		if _, err := time.Parse(booking.DateLayout, rec.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be in YYYY-MM-DD form", "details": rec.Date})
			return
		}
		if seen[rec.Date] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate date in available days", "details": rec.Date})
			return
		}
		seen[rec.Date] = true
	}

	if err := h.Repo.Save(c.Request.Context(), input.AvailableDays); err != nil {
		h.logger.Error("Failed to save available days", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save available days"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": len(input.AvailableDays)})
}
