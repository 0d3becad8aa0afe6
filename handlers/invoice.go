package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/services/invoice"
)

// InvoiceHandler serves the console's invoicing screens.
type InvoiceHandler struct {
	Service invoice.InvoiceService
	logger  *zap.Logger
}

// NewInvoiceHandler constructs an InvoiceHandler.
func NewInvoiceHandler(service invoice.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{Service: service, logger: logger}
}

// ListInvoices returns invoices, optionally filtered by ?status=.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.Service.ListInvoices(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.logger.Error("Failed to list invoices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.Service.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var inv models.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.CreateInvoice(c.Request.Context(), inv)
	if err != nil {
		h.logger.Error("Failed to create invoice", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create invoice", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateInvoiceStatus moves an invoice between Paid, Pending and Overdue.
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.MarkInvoiceStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update invoice status", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// CreatePaymentIntent opens online payment for an unpaid invoice.
func (h *InvoiceHandler) CreatePaymentIntent(c *gin.Context) {
	clientSecret, err := h.Service.CreatePaymentIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to create payment intent", zap.String("invoiceID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create payment intent", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
