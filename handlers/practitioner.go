package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/services/practitioner"
)

// PractitionerHandler serves the console's staff roster screens.
type PractitionerHandler struct {
	Service practitioner.PractitionerService
	logger  *zap.Logger
}

// NewPractitionerHandler constructs a PractitionerHandler.
func NewPractitionerHandler(service practitioner.PractitionerService, logger *zap.Logger) *PractitionerHandler {
	return &PractitionerHandler{Service: service, logger: logger}
}

func (h *PractitionerHandler) ListPractitioners(c *gin.Context) {
	practitioners, err := h.Service.ListPractitioners(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list practitioners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list practitioners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioners": practitioners})
}

func (h *PractitionerHandler) GetPractitioner(c *gin.Context) {
	p, err := h.Service.GetPractitionerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Practitioner not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PractitionerHandler) CreatePractitioner(c *gin.Context) {
	var p models.Practitioner
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.CreatePractitioner(c.Request.Context(), p)
	if err != nil {
		h.logger.Error("Failed to create practitioner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create practitioner"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PractitionerHandler) UpdatePractitioner(c *gin.Context) {
	var p models.Practitioner
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p.ID = c.Param("id")
	if err := h.Service.UpdatePractitioner(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Practitioner not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeactivatePractitioner keeps the record but takes the practitioner off the roster.
func (h *PractitionerHandler) DeactivatePractitioner(c *gin.Context) {
	if err := h.Service.DeactivatePractitioner(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Practitioner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deactivated": true})
}

func (h *PractitionerHandler) DeletePractitioner(c *gin.Context) {
	if err := h.Service.DeletePractitioner(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Practitioner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
