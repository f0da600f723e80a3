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

// PurchaseHandlers contains the checkout-completion HTTP handlers
type PurchaseHandlers struct {
	purchaseService *services.PurchaseService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// PurchaseRequest is the checkout-complete callback payload.
type PurchaseRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// NewPurchaseHandlers creates purchase handlers with injected dependencies
func NewPurchaseHandlers(purchaseService *services.PurchaseService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PurchaseHandlers {
	return &PurchaseHandlers{
		purchaseService: purchaseService,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// PostPurchase handles POST /api/v1/purchases
func (h *PurchaseHandlers) PostPurchase(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_purchase_request")
	defer marker.Complete()

	userID := middleware.GetUserID(c)
	if userID == "" {
		marker.SetSuccess(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "a bound session is required"})
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		marker.SetSuccess(false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	if err := h.purchaseService.RecordPurchase(c.Request.Context(), userID, catalog.ProductID(req.ProductID)); err != nil {
		marker.SetError(err)
		h.logger.System().Error("Purchase recording failed", "userId", userID, "productId", req.ProductID, "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
