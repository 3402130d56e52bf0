package handlers

import (
	"net/http"

	"tripdesk/models"
	"tripdesk/services/pega"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthHandler exposes the login probe. A successful probe activates the
// credential for all subsequent backend calls and mints a session token.
type AuthHandler struct {
	Auth     *pega.Authenticator
	Sessions *utils.SessionSet
}

func NewAuthHandler(auth *pega.Authenticator, sessions *utils.SessionSet) *AuthHandler {
	return &AuthHandler{Auth: auth, Sessions: sessions}
}

func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Bad credentials and an unreachable backend both come back as a plain
	// denial; no further detail is surfaced.
	if !h.Auth.Authenticate(c.Request.Context(), req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
		return
	}

	token := uuid.NewString()
	h.Sessions.Add(token)
	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}
