package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/application/services"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/performance"
)

// AuthHandlers contains token and admin authentication HTTP handlers
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetDecodeProfile handles GET /api/v1/auth/profile/decode - validates a
// bearer profile token and returns its claims
func (h *AuthHandlers) GetDecodeProfile(c *gin.Context) {
	marker := h.perfTracker.StartOperation("decode_profile_request")
	defer marker.Complete()

	authHeader := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		marker.SetSuccess(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	claims, err := h.authService.DecodeProfileToken(tokenString)
	if err != nil {
		marker.SetError(err)
		h.logger.Auth().Warn("Profile token decode failed", "error", err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"claims": claims})
}

// PostLogin handles POST /api/v1/auth/login - admin password check
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	marker := h.perfTracker.StartOperation("admin_login_request")
	defer marker.Complete()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		marker.SetSuccess(false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	if err := h.authService.CheckAdminPassword(req.Password); err != nil {
		marker.SetSuccess(false)
		h.logger.Auth().Warn("Admin login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
