package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/application/services"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/performance"
	"github.com/shelfwise/shelfwise-go/internal/presentation/http/middleware"
)

// VisitHandlers contains all visit and session-related HTTP handlers
type VisitHandlers struct {
	sessionService *services.SessionService
	profileService *services.ProfileService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// ProfileRequest represents the structure for profile creation requests
type ProfileRequest struct {
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"displayName,omitempty"`
}

// NewVisitHandlers creates visit handlers with injected dependencies
func NewVisitHandlers(sessionService *services.SessionService, profileService *services.ProfileService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *VisitHandlers {
	return &VisitHandlers{
		sessionService: sessionService,
		profileService: profileService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// PostVisit handles POST /api/v1/auth/visit - issues a fresh anonymous session
func (h *VisitHandlers) PostVisit(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_visit_request")
	defer marker.Complete()
	h.logger.Auth().Debug("Received post visit request", "method", c.Request.Method, "path", c.Request.URL.Path)

	session, err := h.sessionService.CreateVisit(c.Request.Context())
	if err != nil {
		marker.SetError(err)
		h.logger.Auth().Error("Visit creation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.SessionID,
		"expiresAt": session.ExpiresAt,
	})
}

// PostProfile handles POST /api/v1/auth/profile - registers a purchaser and
// binds them to the current session
func (h *VisitHandlers) PostProfile(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_profile_request")
	defer marker.Complete()

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		marker.SetSuccess(false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	result, err := h.profileService.CreateProfile(c.Request.Context(), middleware.GetSessionID(c), req.Email, req.DisplayName)
	if err != nil {
		marker.SetError(err)
		h.logger.Auth().Error("Profile creation failed", "email", req.Email, "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{
		"profile": result.Profile,
		"token":   result.Token,
	})
}
