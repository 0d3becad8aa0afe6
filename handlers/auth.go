package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bholdsworth/mindful-booking-noushy/services/auth"
)

// AuthHandler signs management console staff in and out.
type AuthHandler struct {
	Service auth.AuthService
	logger  *zap.Logger
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(service auth.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Service: service, logger: logger}
}

// Login exchanges staff credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, account, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.logger.Warn("Failed staff login attempt", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "staff": account})
}

// CreateStaff provisions a console login. Sits behind the admin token.
func (h *AuthHandler) CreateStaff(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	account, err := h.Service.RegisterStaff(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		h.logger.Warn("Failed to create staff account", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"staff": account})
}

// Me returns the signed-in staff member's own account.
func (h *AuthHandler) Me(c *gin.Context) {
	account, err := h.Service.GetAccount(c.Request.Context(), c.GetString("staffID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": account})
}

// Logout revokes the presented bearer token.
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing bearer token"})
		return
	}
	if err := h.Service.Revoke(c.Request.Context(), tokenString); err != nil {
		h.logger.Error("Failed to revoke staff session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedOut": true})
}
