package handlers

import (
	"errors"
	"net/http"

	"futureclim/models"
	"futureclim/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the login, logout and session endpoints.
type AuthHandler struct {
	AuthSvc auth.AuthService
}

// LoginHandler verifies credentials and opens a session.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.AuthSvc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler clears the caller's session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	tokenHash := c.GetString("tokenHash")
	if err := h.AuthSvc.Logout(tokenHash); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// SessionHandler returns the authenticated user, already resolved by the
// session middleware.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid session state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
