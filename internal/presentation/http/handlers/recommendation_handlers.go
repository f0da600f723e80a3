// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/application/services"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/performance"
	"github.com/shelfwise/shelfwise-go/internal/presentation/http/middleware"
)

// RecommendationHandlers contains the recommendation HTTP handlers
type RecommendationHandlers struct {
	recommendationService *services.RecommendationService
	logger                *logging.ChanneledLogger
	perfTracker           *performance.Tracker
}

// NewRecommendationHandlers creates recommendation handlers with injected dependencies
func NewRecommendationHandlers(recommendationService *services.RecommendationService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *RecommendationHandlers {
	return &RecommendationHandlers{
		recommendationService: recommendationService,
		logger:                logger,
		perfTracker:           perfTracker,
	}
}

// GetRecommendations handles GET /api/v1/recommendations
// Query params: product (viewing context, optional), limit (optional).
func (h *RecommendationHandlers) GetRecommendations(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_recommendations_request")
	defer marker.Complete()

	userID := middleware.GetUserID(c)
	currentProductID := catalog.ProductID(c.Query("product"))

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			marker.SetSuccess(false)
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	recommendations := h.recommendationService.GetRecommendations(c.Request.Context(), userID, currentProductID, limit)

	marker.SetSuccess(true)
	marker.AddMetadata("returned", len(recommendations))
	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
