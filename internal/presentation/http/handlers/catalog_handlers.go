package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/application/services"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/performance"
)

// CatalogHandlers contains the guide catalog HTTP handlers
type CatalogHandlers struct {
	catalogService *services.CatalogService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewCatalogHandlers creates catalog handlers with injected dependencies
func NewCatalogHandlers(catalogService *services.CatalogService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CatalogHandlers {
	return &CatalogHandlers{
		catalogService: catalogService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetProducts handles GET /api/v1/catalog/products
func (h *CatalogHandlers) GetProducts(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_products_request")
	defer marker.Complete()

	products := h.catalogService.ListProducts()

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /api/v1/catalog/products/:productId
func (h *CatalogHandlers) GetProduct(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_product_request")
	defer marker.Complete()

	productID := catalog.ProductID(c.Param("productId"))
	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		marker.SetSuccess(false)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetProductChapters handles GET /api/v1/catalog/products/:productId/chapters
func (h *CatalogHandlers) GetProductChapters(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_product_chapters_request")
	defer marker.Complete()

	productID := catalog.ProductID(c.Param("productId"))
	chapters, err := h.catalogService.GetChapters(productID)
	if err != nil {
		marker.SetSuccess(false)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"chapters": chapters})
}

// GetProductRelated handles GET /api/v1/catalog/products/:productId/related
func (h *CatalogHandlers) GetProductRelated(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_product_related_request")
	defer marker.Complete()

	productID := catalog.ProductID(c.Param("productId"))
	related, err := h.catalogService.GetRelated(productID)
	if err != nil {
		marker.SetSuccess(false)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"related": related})
}
