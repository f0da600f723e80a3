package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/application/services"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/performance"
	"github.com/shelfwise/shelfwise-go/internal/presentation/http/middleware"
)

// NudgeHandlers contains the nudge HTTP handlers
type NudgeHandlers struct {
	nudgeService *services.NudgeService
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewNudgeHandlers creates nudge handlers with injected dependencies
func NewNudgeHandlers(nudgeService *services.NudgeService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *NudgeHandlers {
	return &NudgeHandlers{
		nudgeService: nudgeService,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

// GetNudges handles GET /api/v1/nudges
// Query params: product (viewing context, optional).
func (h *NudgeHandlers) GetNudges(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_nudges_request")
	defer marker.Complete()

	userID := middleware.GetUserID(c)
	currentProductID := catalog.ProductID(c.Query("product"))

	nudges := h.nudgeService.GetNudges(c.Request.Context(), userID, currentProductID)

	marker.SetSuccess(true)
	marker.AddMetadata("returned", len(nudges))
	c.JSON(http.StatusOK, gin.H{"nudges": nudges})
}
