package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/services/patient"
)

// PatientHandler serves the console's patient records screens.
type PatientHandler struct {
	Service patient.PatientService
	logger  *zap.Logger
}

// NewPatientHandler constructs a PatientHandler.
func NewPatientHandler(service patient.PatientService, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{Service: service, logger: logger}
}

// ListPatients returns patients, optionally filtered by ?search=.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.Service.SearchPatients(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.logger.Error("Failed to list patients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list patients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	p, err := h.Service.GetPatientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.CreatePatient(c.Request.Context(), p)
	if err != nil {
		h.logger.Error("Failed to create patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p.ID = c.Param("id")
	if err := h.Service.UpdatePatient(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	if err := h.Service.DeletePatient(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// AddTreatmentNote records a clinical note against the patient. The note's
// practitioner defaults to the signed-in staff member.
func (h *PatientHandler) AddTreatmentNote(c *gin.Context) {
	var note models.TreatmentNote
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	note.PatientID = c.Param("id")
	if note.PractitionerID == "" {
		if staffID, ok := c.Get("staffID"); ok {
			note.PractitionerID, _ = staffID.(string)
		}
	}
	if err := h.Service.AddTreatmentNote(c.Request.Context(), note); err != nil {
		h.logger.Error("Failed to add treatment note", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add treatment note"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"added": true})
}

func (h *PatientHandler) GetTreatmentNotes(c *gin.Context) {
	notes, err := h.Service.GetTreatmentNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to load treatment notes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load treatment notes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}
