package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/services/message"
)

// MessageHandler serves the console's patient messaging screens.
type MessageHandler struct {
	Service message.MessageService
	logger  *zap.Logger
}

// NewMessageHandler constructs a MessageHandler.
func NewMessageHandler(service message.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{Service: service, logger: logger}
}

func (h *MessageHandler) ListThreads(c *gin.Context) {
	threads, err := h.Service.ListThreads(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list message threads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list message threads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"threads": threads})
}

func (h *MessageHandler) GetThreadMessages(c *gin.Context) {
	messages, err := h.Service.GetThreadMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thread not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SendMessage posts a message into a patient's thread. The console always
// sends as staff; the sender field exists for the patient-facing surface.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var input struct {
		PatientID string `json:"patientId" binding:"required"`
		Sender    string `json:"sender"`
		Content   string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Sender == "" {
		input.Sender = models.MessageSenderStaff
	}

	sent, err := h.Service.SendMessage(c.Request.Context(), input.PatientID, input.Sender, input.Content)
	if err != nil {
		h.logger.Error("Failed to send message", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to send message", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sent)
}

func (h *MessageHandler) MarkThreadRead(c *gin.Context) {
	if err := h.Service.MarkThreadRead(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Thread not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}
