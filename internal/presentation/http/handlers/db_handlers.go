package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/performance"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/database"
)

// DBHandlers contains database status HTTP handlers
type DBHandlers struct {
	db          *database.DB
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewDBHandlers creates database handlers with injected dependencies
func NewDBHandlers(db *database.DB, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *DBHandlers {
	return &DBHandlers{
		db:          db,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetDatabaseStatus handles GET /api/v1/db/status
func (h *DBHandlers) GetDatabaseStatus(c *gin.Context) {
	marker := h.perfTracker.StartOperation("db_status_request")
	defer marker.Complete()

	if err := h.db.TestConnection(); err != nil {
		marker.SetError(err)
		h.logger.Database().Error("Database status check failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetHealth handles GET /api/v1/health
func (h *DBHandlers) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
