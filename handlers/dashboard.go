package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bholdsworth/mindful-booking-noushy/services/dashboard"
)

// DashboardHandler serves the console landing page's headline numbers.
type DashboardHandler struct {
	Service dashboard.DashboardService
	logger  *zap.Logger
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(service dashboard.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Service: service, logger: logger}
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.Summarize(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build dashboard summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetBooking returns one confirmed booking for the console's detail view.
func (h *DashboardHandler) GetBooking(c *gin.Context) {
	booking, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
