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

// ProgressHandlers contains the reading progress HTTP handlers
type ProgressHandlers struct {
	progressService *services.ProgressService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewProgressHandlers creates progress handlers with injected dependencies
func NewProgressHandlers(progressService *services.ProgressService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ProgressHandlers {
	return &ProgressHandlers{
		progressService: progressService,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// GetProgress handles GET /api/v1/progress/:productId
func (h *ProgressHandlers) GetProgress(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_progress_request")
	defer marker.Complete()

	userID := middleware.GetUserID(c)
	if userID == "" {
		marker.SetSuccess(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "a bound session is required"})
		return
	}

	productID := catalog.ProductID(c.Param("productId"))
	record, err := h.progressService.GetProgress(c.Request.Context(), userID, productID)
	if err != nil {
		marker.SetError(err)
		h.logger.Engine().Error("Progress lookup failed", "userId", userID, "productId", string(productID), "error", err.Error())
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"progress": record, "completionPercentage": record.CompletionPercentage()})
}

// PostProgress handles POST /api/v1/progress/:productId
func (h *ProgressHandlers) PostProgress(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_progress_request")
	defer marker.Complete()

	userID := middleware.GetUserID(c)
	if userID == "" {
		marker.SetSuccess(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "a bound session is required"})
		return
	}

	var update services.ProgressUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		marker.SetSuccess(false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	productID := catalog.ProductID(c.Param("productId"))
	record, err := h.progressService.RecordProgress(c.Request.Context(), userID, productID, update)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"progress": record, "completionPercentage": record.CompletionPercentage()})
}
